package schedule

import "errors"

var (
	ErrScheduleNotConfigured = errors.New("schedule is not configured")
	ErrInvalidWorkdaysRule   = errors.New("invalid workdays rule")
	ErrScheduleOutOfOrder    = errors.New("expected times must follow check-in, lunch out, lunch return, check-out order")
)
