package validation

import (
	"fmt"

	"github.com/periodictables/reservation-app/models"
)

// TableForm is the client-supplied table payload.
type TableForm struct {
	TableName *string `json:"table_name"`
	Capacity  *int    `json:"capacity"`
}

// Table checks a proposed table, returning one message per violated rule.
func Table(form *TableForm) []string {
	var violations []string

	switch {
	case form.TableName == nil || *form.TableName == "":
		violations = append(violations, "Field required: 'table_name'")
	case len(*form.TableName) < 2:
		violations = append(violations, "'table_name' field must be at least 2 characters")
	}

	switch {
	case form.Capacity == nil:
		violations = append(violations, "Field required: 'capacity'")
	case *form.Capacity < 1:
		violations = append(violations, "'capacity' field must be at least 1")
	}

	return violations
}

// Seat checks the preconditions for seating a reservation at a table. Both
// records are assumed to exist; existence is a 404 concern handled by the
// caller.
func Seat(table *models.Table, reservation *models.Reservation) []string {
	var violations []string

	if reservation.Status != models.StatusBooked {
		violations = append(violations,
			fmt.Sprintf("reservation %d is %s and cannot be seated", reservation.ID, reservation.Status))
	}
	if table.Occupied() {
		violations = append(violations,
			fmt.Sprintf("table %s is currently occupied", table.TableName))
	}
	if table.Capacity < reservation.People {
		violations = append(violations,
			fmt.Sprintf("cannot seat %d people at table %s; capacity is %d",
				reservation.People, table.TableName, table.Capacity))
	}

	return violations
}
