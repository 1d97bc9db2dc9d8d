package attendance

import (
	"strings"
	"time"
)

type PunchKind string

const (
	PunchCheckIn  PunchKind = "check_in"
	PunchLunchOut PunchKind = "lunch_out"
	PunchLunchIn  PunchKind = "lunch_in"
	PunchCheckOut PunchKind = "check_out"
)

// PunchOrder is the canonical order of a working day.
var PunchOrder = []PunchKind{PunchCheckIn, PunchLunchOut, PunchLunchIn, PunchCheckOut}

var punchLabels = map[PunchKind]string{
	PunchCheckIn:  "Check-in",
	PunchLunchOut: "Lunch out",
	PunchLunchIn:  "Lunch return",
	PunchCheckOut: "Check-out",
}

type prerequisite struct {
	kind    PunchKind
	message string
}

var punchPrerequisites = map[PunchKind]prerequisite{
	PunchLunchOut: {PunchCheckIn, "must check in before lunch out"},
	PunchLunchIn:  {PunchLunchOut, "must mark lunch out before returning"},
	PunchCheckOut: {PunchCheckIn, "must check in before checking out"},
}

func ParsePunchKind(s string) (PunchKind, error) {
	kind := PunchKind(strings.TrimSpace(s))
	if !kind.IsValid() {
		return "", ErrInvalidPunchKind
	}
	return kind, nil
}

func (k PunchKind) IsValid() bool {
	_, ok := punchLabels[k]
	return ok
}

func (k PunchKind) Label() string {
	if label, ok := punchLabels[k]; ok {
		return label
	}
	return string(k)
}

// ApplyPunch records kind at now on a copy of day.
// The original day is never modified, so a rejected punch leaves no trace.
func ApplyPunch(day Attendance, kind PunchKind, now time.Time) (Attendance, error) {
	if !kind.IsValid() {
		return Attendance{}, ErrInvalidPunchKind
	}

	if existing := day.Punch(kind); existing != nil {
		return Attendance{}, &AlreadyMarkedError{Kind: kind, MarkedAt: *existing}
	}

	if pre, ok := punchPrerequisites[kind]; ok && day.Punch(pre.kind) == nil {
		return Attendance{}, &SequenceError{Kind: kind, Requires: pre.kind, Message: pre.message}
	}

	updated := day
	updated.setPunch(kind, now.Truncate(time.Second))
	return updated, nil
}
