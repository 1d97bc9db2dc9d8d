package attendance

// NextActionComplete is reported once all four punches exist.
const NextActionComplete = "complete"

type Summary struct {
	Completed  []PunchKind `json:"completed"`
	Pending    []PunchKind `json:"pending"`
	NextAction string      `json:"next_action"`
}

// Summarize splits the punches of day into completed and pending, in canonical order.
// A nil day has nothing completed.
func Summarize(day *Attendance) Summary {
	summary := Summary{
		Completed: []PunchKind{},
		Pending:   []PunchKind{},
	}

	for _, kind := range PunchOrder {
		if day != nil && day.Punch(kind) != nil {
			summary.Completed = append(summary.Completed, kind)
		} else {
			summary.Pending = append(summary.Pending, kind)
		}
	}

	summary.NextAction = NextActionComplete
	if len(summary.Pending) > 0 {
		summary.NextAction = string(summary.Pending[0])
	}
	return summary
}
