package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/periodictables/reservation-app/models"
)

// Monday noon, so "2025-03-04" is the following Tuesday and "2025-03-05" a
// plain open Wednesday.
var testNow = time.Date(2025, 3, 3, 12, 0, 0, 0, time.Local)

func validForm() *ReservationForm {
	firstName := "Ann"
	lastName := "Lee"
	mobile := "5551234567"
	people := 2
	date := "2025-03-05"
	clock := "18:00"
	return &ReservationForm{
		FirstName:       &firstName,
		LastName:        &lastName,
		MobileNumber:    &mobile,
		People:          &people,
		ReservationDate: &date,
		ReservationTime: &clock,
	}
}

func TestReservationAcceptsValidForm(t *testing.T) {
	assert.Empty(t, Reservation(validForm(), testNow))
}

func TestReservationRequiredFields(t *testing.T) {
	form := validForm()
	form.FirstName = nil
	empty := ""
	form.LastName = &empty
	form.People = nil

	violations := Reservation(form, testNow)
	assert.Contains(t, violations, "Field required: 'first_name'")
	assert.Contains(t, violations, "Field required: 'last_name'")
	assert.Contains(t, violations, "Field required: 'people'")
}

func TestReservationPartySize(t *testing.T) {
	for _, people := range []int{0, -1, -10} {
		form := validForm()
		form.People = &people
		violations := Reservation(form, testNow)
		assert.Contains(t, violations, "'people' field must be at least 1", "people=%d", people)
	}

	one := 1
	form := validForm()
	form.People = &one
	assert.Empty(t, Reservation(form, testNow))
}

func TestReservationRejectsTuesday(t *testing.T) {
	for _, clock := range []string{"10:30", "15:00", "21:30"} {
		form := validForm()
		tuesday := "2025-03-04"
		form.ReservationDate = &tuesday
		form.ReservationTime = &clock
		violations := Reservation(form, testNow)
		assert.Contains(t, violations,
			"'reservation_date' field: restaurant is closed on tuesday", "time=%s", clock)
	}
}

func TestReservationRejectsPast(t *testing.T) {
	form := validForm()
	past := "2025-03-01"
	form.ReservationDate = &past
	violations := Reservation(form, testNow)
	assert.Contains(t, violations,
		"'reservation_date' and 'reservation_time' field must be in the future")
}

func TestReservationBusinessHours(t *testing.T) {
	cases := []struct {
		clock   string
		message string
	}{
		{"09:00", "'reservation_time' field: restaurant is not open until 10:30AM"},
		{"10:29", "'reservation_time' field: restaurant is not open until 10:30AM"},
		{"22:30", "'reservation_time' field: restaurant is closed after 10:30PM"},
		{"23:00", "'reservation_time' field: restaurant is closed after 10:30PM"},
		{"21:31", "'reservation_time' field: reservation must be made at least an hour before closing (10:30PM)"},
		{"22:00", "'reservation_time' field: reservation must be made at least an hour before closing (10:30PM)"},
	}
	for _, tc := range cases {
		form := validForm()
		form.ReservationTime = &tc.clock
		violations := Reservation(form, testNow)
		assert.Contains(t, violations, tc.message, "time=%s", tc.clock)
	}

	// The full bookable window is accepted.
	for _, clock := range []string{"10:30", "12:00", "21:30"} {
		form := validForm()
		form.ReservationTime = &clock
		assert.Empty(t, Reservation(form, testNow), "time=%s", clock)
	}
}

func TestReservationRejectsBadFormat(t *testing.T) {
	form := validForm()
	bad := "not-a-date"
	form.ReservationDate = &bad
	violations := Reservation(form, testNow)
	assert.Contains(t, violations,
		"'reservation_date' or 'reservation_time' field is in an incorrect format")
}

func TestReservationAcceptsSecondsInTime(t *testing.T) {
	form := validForm()
	clock := "18:00:00"
	form.ReservationTime = &clock
	assert.Empty(t, Reservation(form, testNow))
}

func TestReservationStatusOnCreate(t *testing.T) {
	for _, status := range []string{models.StatusSeated, models.StatusFinished, models.StatusCancelled} {
		form := validForm()
		form.Status = &status
		violations := Reservation(form, testNow)
		assert.Contains(t, violations, "'status' field cannot be "+status)
	}

	booked := models.StatusBooked
	form := validForm()
	form.Status = &booked
	assert.Empty(t, Reservation(form, testNow))
}

func TestReservationCollectsAllViolations(t *testing.T) {
	form := validForm()
	form.FirstName = nil
	zero := 0
	form.People = &zero
	tuesday := "2025-03-04"
	form.ReservationDate = &tuesday
	early := "09:00"
	form.ReservationTime = &early

	violations := Reservation(form, testNow)
	assert.Len(t, violations, 4)
}

func TestReservationStatusTransitions(t *testing.T) {
	assert.Empty(t, ReservationStatus(models.StatusBooked, models.StatusSeated))
	assert.Empty(t, ReservationStatus(models.StatusBooked, models.StatusCancelled))
	assert.Empty(t, ReservationStatus(models.StatusSeated, models.StatusFinished))
	assert.Empty(t, ReservationStatus(models.StatusSeated, models.StatusCancelled))

	assert.Contains(t, ReservationStatus(models.StatusBooked, ""),
		"body must include a status field")
	assert.Contains(t, ReservationStatus(models.StatusBooked, "eaten"),
		"invalid reservation status: eaten")
	assert.Contains(t, ReservationStatus(models.StatusFinished, models.StatusSeated),
		"a finished reservation cannot be updated")
	assert.Contains(t, ReservationStatus(models.StatusSeated, models.StatusBooked),
		"cannot change a seated reservation to booked")
	assert.Contains(t, ReservationStatus(models.StatusCancelled, models.StatusSeated),
		"cannot change a cancelled reservation to seated")
}

func TestReservationStatusAccumulatesGuards(t *testing.T) {
	// An unknown status against a finished reservation reports both guards.
	violations := ReservationStatus(models.StatusFinished, "eaten")
	assert.Len(t, violations, 2)
}
