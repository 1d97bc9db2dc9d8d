package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Punch records the next punch of the authenticated employee for today
	Punch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// Today returns the authenticated employee's record for today, if any
	Today(ctx context.Context) (TodayResponse, error)

	// History lists the authenticated employee's records with evaluations
	History(ctx context.Context, filter HistoryFilter) (ListAttendanceResponse, error)

	// ListAttendance lists everyone's records (supervisor)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
