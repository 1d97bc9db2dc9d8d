package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetByEmployeeAndDate returns nil, nil when the employee has no row for date.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// GetForUpdate is GetByEmployeeAndDate with a row lock; call it inside a transaction.
	GetForUpdate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// CreateIfAbsent inserts the day row. inserted is false when another writer created it first.
	CreateIfAbsent(ctx context.Context, newAttendance Attendance) (created Attendance, inserted bool, err error)

	// UpdatePunch stores the time of kind, leaving the other punches untouched.
	UpdatePunch(ctx context.Context, att Attendance, kind PunchKind) (Attendance, error)

	// ListByEmployee returns the employee's rows newest first.
	ListByEmployee(ctx context.Context, employeeID string, filter HistoryFilter) ([]Attendance, int64, error)

	// List returns rows of every employee joined with code and name.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
}
