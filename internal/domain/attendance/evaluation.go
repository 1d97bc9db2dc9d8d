package attendance

import (
	"fmt"

	"github.com/limatime/attendance-backend-go/internal/domain/schedule"
	"github.com/limatime/attendance-backend-go/internal/pkg/timeutil"
)

type EvaluationStatus string

const (
	StatusNotApplicable EvaluationStatus = "not_applicable"
	StatusOnTime        EvaluationStatus = "on_time"
	StatusLate          EvaluationStatus = "late"
	StatusEarly         EvaluationStatus = "early"
)

// Evaluation compares one punch with its expected time.
type Evaluation struct {
	Kind        PunchKind        `json:"punch_kind"`
	Status      EvaluationStatus `json:"status"`
	Message     string           `json:"message,omitempty"`
	MinuteDelta *int             `json:"minute_delta"`
}

type phrasing struct {
	late   string
	early  string
	onTime string
}

var evaluationPhrases = map[PunchKind]phrasing{
	PunchCheckIn:  {late: "Arrived %s late", early: "Arrived %s early", onTime: "On time"},
	PunchLunchOut: {late: "Left for lunch %s late", early: "Left for lunch %s early", onTime: "Left for lunch on time"},
	PunchLunchIn:  {late: "Returned from lunch %s late", early: "Returned from lunch %s early", onTime: "Returned from lunch on time"},
	PunchCheckOut: {late: "Left %s late", early: "Left %s early"},
}

// Evaluate classifies actual against expected (minutes since midnight) with a symmetric tolerance.
// Check-out only reports early or late departures; inside the tolerance it carries no message.
func Evaluate(kind PunchKind, actual, expected *int, tolerance int) Evaluation {
	result := Evaluation{Kind: kind, Status: StatusNotApplicable}
	if actual == nil || expected == nil {
		return result
	}

	delta := *actual - *expected
	result.MinuteDelta = &delta
	phrase := evaluationPhrases[kind]

	switch {
	case delta > tolerance:
		result.Status = StatusLate
		result.Message = fmt.Sprintf(phrase.late, minutes(delta))
	case delta < -tolerance:
		result.Status = StatusEarly
		result.Message = fmt.Sprintf(phrase.early, minutes(-delta))
	case kind != PunchCheckOut:
		result.Status = StatusOnTime
		result.Message = phrase.onTime
	}
	return result
}

func minutes(n int) string {
	if n == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", n)
}

type DayEvaluation struct {
	CheckIn  Evaluation `json:"check_in"`
	LunchOut Evaluation `json:"lunch_out"`
	LunchIn  Evaluation `json:"lunch_in"`
	CheckOut Evaluation `json:"check_out"`
}

// ByKind returns the evaluation of kind.
func (d DayEvaluation) ByKind(kind PunchKind) Evaluation {
	switch kind {
	case PunchCheckIn:
		return d.CheckIn
	case PunchLunchOut:
		return d.LunchOut
	case PunchLunchIn:
		return d.LunchIn
	default:
		return d.CheckOut
	}
}

// ExpectedMinutes returns the configured time for kind in minutes since midnight.
func ExpectedMinutes(cfg *schedule.Config, kind PunchKind) *int {
	if cfg == nil {
		return nil
	}
	switch kind {
	case PunchCheckIn:
		return timeutil.Normalize(cfg.ExpectedCheckIn)
	case PunchLunchOut:
		return timeutil.Normalize(cfg.ExpectedLunchOut)
	case PunchLunchIn:
		return timeutil.Normalize(cfg.ExpectedLunchIn)
	case PunchCheckOut:
		return timeutil.Normalize(cfg.ExpectedCheckOut)
	}
	return nil
}

// EvaluateDay evaluates every punch of day. A nil cfg yields not_applicable throughout.
func EvaluateDay(day Attendance, cfg *schedule.Config) DayEvaluation {
	tolerance := 0
	if cfg != nil {
		tolerance = cfg.ToleranceMinutes
	}

	eval := func(kind PunchKind) Evaluation {
		return Evaluate(kind, timeutil.Normalize(day.Punch(kind)), ExpectedMinutes(cfg, kind), tolerance)
	}

	return DayEvaluation{
		CheckIn:  eval(PunchCheckIn),
		LunchOut: eval(PunchLunchOut),
		LunchIn:  eval(PunchLunchIn),
		CheckOut: eval(PunchCheckOut),
	}
}
