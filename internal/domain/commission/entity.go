package commission

import "time"

// Commission is a dated field assignment; the employee marks leaving and coming back.
type Commission struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Reason     *string
	DepartedAt *time.Time
	ReturnedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeCode *string
	EmployeeName *string
}

// MarkDeparture returns a copy with the departure set to now.
func (c Commission) MarkDeparture(now time.Time) (Commission, error) {
	if c.DepartedAt != nil {
		return Commission{}, ErrDepartureAlreadyMarked
	}
	at := now.Truncate(time.Second)
	c.DepartedAt = &at
	return c, nil
}

// MarkReturn returns a copy with the return set to now.
func (c Commission) MarkReturn(now time.Time) (Commission, error) {
	if c.DepartedAt == nil {
		return Commission{}, ErrDepartureRequired
	}
	if c.ReturnedAt != nil {
		return Commission{}, ErrReturnAlreadyMarked
	}
	at := now.Truncate(time.Second)
	c.ReturnedAt = &at
	return c, nil
}
