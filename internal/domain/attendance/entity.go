package attendance

import (
	"time"
)

// Attendance is one employee's punches for one Lima calendar day.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	LunchOut   *time.Time
	LunchIn    *time.Time
	CheckOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeCode *string
	EmployeeName *string
}

// Punch returns the recorded time for kind, or nil.
func (a Attendance) Punch(kind PunchKind) *time.Time {
	switch kind {
	case PunchCheckIn:
		return a.CheckIn
	case PunchLunchOut:
		return a.LunchOut
	case PunchLunchIn:
		return a.LunchIn
	case PunchCheckOut:
		return a.CheckOut
	}
	return nil
}

func (a *Attendance) setPunch(kind PunchKind, at time.Time) {
	switch kind {
	case PunchCheckIn:
		a.CheckIn = &at
	case PunchLunchOut:
		a.LunchOut = &at
	case PunchLunchIn:
		a.LunchIn = &at
	case PunchCheckOut:
		a.CheckOut = &at
	}
}
