// Package validation holds the restaurant's reservation and table rules as
// pure checks. Every function collects all violated rules rather than
// stopping at the first, so a caller can reject a request with the complete
// list of problems.
package validation

import (
	"fmt"
	"time"

	"github.com/periodictables/reservation-app/models"
)

// Operating window, minutes from midnight. The restaurant opens at 10:30 and
// closes at 22:30; the last bookable slot is 21:30 so a party can be seated
// a full hour before closing.
const (
	openingMinute  = 10*60 + 30
	lastSlotMinute = 21*60 + 30
	closingMinute  = 22*60 + 30
)

// ReservationForm is the client-supplied reservation payload. Pointers
// distinguish a missing field from a zero value.
type ReservationForm struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	MobileNumber    *string `json:"mobile_number"`
	People          *int    `json:"people"`
	ReservationDate *string `json:"reservation_date"`
	ReservationTime *string `json:"reservation_time"`
	Status          *string `json:"status"`
}

// Reservation checks a proposed reservation against the required-field and
// business-hour rules, relative to now. It returns one message per violated
// rule, or nil when the form is acceptable.
func Reservation(form *ReservationForm, now time.Time) []string {
	var violations []string

	required := []struct {
		name    string
		present bool
	}{
		{"first_name", form.FirstName != nil && *form.FirstName != ""},
		{"last_name", form.LastName != nil && *form.LastName != ""},
		{"mobile_number", form.MobileNumber != nil && *form.MobileNumber != ""},
		{"people", form.People != nil},
		{"reservation_date", form.ReservationDate != nil && *form.ReservationDate != ""},
		{"reservation_time", form.ReservationTime != nil && *form.ReservationTime != ""},
	}
	for _, field := range required {
		if !field.present {
			violations = append(violations, fmt.Sprintf("Field required: '%s'", field.name))
		}
	}

	if form.People != nil && *form.People <= 0 {
		violations = append(violations, "'people' field must be at least 1")
	}

	if form.Status != nil && *form.Status != "" && *form.Status != models.StatusBooked {
		violations = append(violations, fmt.Sprintf("'status' field cannot be %s", *form.Status))
	}

	if form.ReservationDate != nil && *form.ReservationDate != "" &&
		form.ReservationTime != nil && *form.ReservationTime != "" {
		violations = append(violations, checkSchedule(*form.ReservationDate, *form.ReservationTime, now)...)
	}

	return violations
}

// checkSchedule applies the operating-hour rules to a parsed date and time.
func checkSchedule(date, clock string, now time.Time) []string {
	when, err := ParseDateTime(date, clock)
	if err != nil {
		return []string{"'reservation_date' or 'reservation_time' field is in an incorrect format"}
	}

	var violations []string

	if when.Weekday() == time.Tuesday {
		violations = append(violations, "'reservation_date' field: restaurant is closed on tuesday")
	}

	if !when.After(now) {
		violations = append(violations, "'reservation_date' and 'reservation_time' field must be in the future")
	}

	minute := when.Hour()*60 + when.Minute()
	switch {
	case minute < openingMinute:
		violations = append(violations, "'reservation_time' field: restaurant is not open until 10:30AM")
	case minute >= closingMinute:
		violations = append(violations, "'reservation_time' field: restaurant is closed after 10:30PM")
	case minute > lastSlotMinute:
		violations = append(violations, "'reservation_time' field: reservation must be made at least an hour before closing (10:30PM)")
	}

	return violations
}

// ReservationStatus checks a requested status change against the current
// status. All failed guards are reported together.
func ReservationStatus(current, requested string) []string {
	var violations []string

	if requested == "" {
		return []string{"body must include a status field"}
	}

	if !models.ValidReservationStatus(requested) {
		violations = append(violations, fmt.Sprintf("invalid reservation status: %s", requested))
	}

	if current == models.StatusFinished {
		violations = append(violations, "a finished reservation cannot be updated")
	}

	if len(violations) == 0 {
		r := models.Reservation{Status: current}
		if !r.CanTransitionTo(requested) {
			violations = append(violations,
				fmt.Sprintf("cannot change a %s reservation to %s", current, requested))
		}
	}

	return violations
}

// ParseDateTime combines a "YYYY-MM-DD" date and an "HH:MM" or "HH:MM:SS"
// time into a local time.Time.
func ParseDateTime(date, clock string) (time.Time, error) {
	layouts := []string{"2006-01-02 15:04:05", "2006-01-02 15:04"}
	for _, layout := range layouts {
		if when, err := time.ParseInLocation(layout, date+" "+clock, time.Local); err == nil {
			return when, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date/time %q %q", date, clock)
}
