package attendance

import (
	"errors"
	"fmt"
	"time"

	"github.com/limatime/attendance-backend-go/internal/pkg/timeutil"
)

// Attendance domain errors
var (
	ErrInvalidPunchKind   = errors.New("punch_kind must be one of: check_in, lunch_out, lunch_in, check_out")
	ErrAlreadyMarked      = errors.New("punch already marked")
	ErrOutOfSequence      = errors.New("punch out of sequence")
	ErrConcurrentPunch    = errors.New("attendance record is being modified, try again")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// AlreadyMarkedError reports a punch that was already recorded for the day.
type AlreadyMarkedError struct {
	Kind     PunchKind
	MarkedAt time.Time
}

func (e *AlreadyMarkedError) Error() string {
	return fmt.Sprintf("%s already marked at %s", e.Kind.Label(), timeutil.Clock(e.MarkedAt))
}

func (e *AlreadyMarkedError) Unwrap() error {
	return ErrAlreadyMarked
}

// SequenceError reports a punch whose prerequisite is missing.
type SequenceError struct {
	Kind     PunchKind
	Requires PunchKind
	Message  string
}

func (e *SequenceError) Error() string {
	return e.Message
}

func (e *SequenceError) Unwrap() error {
	return ErrOutOfSequence
}
