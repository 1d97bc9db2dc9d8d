package attendance

import (
	"testing"
	"time"

	"github.com/limatime/attendance-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ip(i int) *int {
	return &i
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name     string
		kind     PunchKind
		actual   *int
		expected *int
		status   EvaluationStatus
		delta    *int
		message  string
	}{
		{"late arrival", PunchCheckIn, ip(500), ip(480), StatusLate, ip(20), "Arrived 20 minutes late"},
		{"early arrival", PunchCheckIn, ip(470), ip(480), StatusEarly, ip(-10), "Arrived 10 minutes early"},
		{"within tolerance", PunchCheckIn, ip(483), ip(480), StatusOnTime, ip(3), "On time"},
		{"exactly at tolerance", PunchCheckIn, ip(485), ip(480), StatusOnTime, ip(5), "On time"},
		{"one past tolerance", PunchCheckIn, ip(486), ip(480), StatusLate, ip(6), "Arrived 6 minutes late"},
		{"early lunch return", PunchLunchIn, ip(790), ip(840), StatusEarly, ip(-50), "Returned from lunch 50 minutes early"},
		{"late lunch return", PunchLunchIn, ip(846), ip(840), StatusLate, ip(6), "Returned from lunch 6 minutes late"},
		{"lunch out on time", PunchLunchOut, ip(780), ip(780), StatusOnTime, ip(0), "Left for lunch on time"},
		{"late check out", PunchCheckOut, ip(1030), ip(1020), StatusLate, ip(10), "Left 10 minutes late"},
		{"early check out", PunchCheckOut, ip(1010), ip(1020), StatusEarly, ip(-10), "Left 10 minutes early"},
		{"check out within tolerance has no message", PunchCheckOut, ip(1023), ip(1020), StatusNotApplicable, ip(3), ""},
		{"missing actual", PunchCheckIn, nil, ip(480), StatusNotApplicable, nil, ""},
		{"missing expected", PunchCheckIn, ip(480), nil, StatusNotApplicable, nil, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Evaluate(c.kind, c.actual, c.expected, 5)
			assert.Equal(t, c.kind, got.Kind)
			assert.Equal(t, c.status, got.Status)
			assert.Equal(t, c.message, got.Message)
			if c.delta == nil {
				assert.Nil(t, got.MinuteDelta)
			} else {
				require.NotNil(t, got.MinuteDelta)
				assert.Equal(t, *c.delta, *got.MinuteDelta)
			}
		})
	}
}

func TestEvaluate_SingularMinute(t *testing.T) {
	got := Evaluate(PunchCheckIn, ip(481), ip(480), 0)
	assert.Equal(t, "Arrived 1 minute late", got.Message)
}

func TestEvaluateDay(t *testing.T) {
	cfg := &schedule.Config{
		ExpectedCheckIn:  "08:00:00",
		ExpectedLunchOut: "13:00:00",
		ExpectedLunchIn:  "14:00:00",
		ExpectedCheckOut: "17:00:00",
		ToleranceMinutes: 5,
	}
	// 08:20 and 13:10 in Lima
	checkIn := time.Date(2025, 10, 8, 13, 20, 0, 0, time.UTC)
	lunchOut := time.Date(2025, 10, 8, 18, 10, 0, 0, time.UTC)
	day := Attendance{CheckIn: &checkIn, LunchOut: &lunchOut}

	got := EvaluateDay(day, cfg)

	assert.Equal(t, StatusLate, got.CheckIn.Status)
	assert.Equal(t, 20, *got.CheckIn.MinuteDelta)
	assert.Equal(t, StatusLate, got.LunchOut.Status)
	assert.Equal(t, 10, *got.LunchOut.MinuteDelta)
	assert.Equal(t, StatusNotApplicable, got.LunchIn.Status)
	assert.Equal(t, StatusNotApplicable, got.CheckOut.Status)
	assert.Equal(t, got.CheckIn, got.ByKind(PunchCheckIn))
}

func TestEvaluateDay_WithoutSchedule(t *testing.T) {
	checkIn := time.Date(2025, 10, 8, 13, 20, 0, 0, time.UTC)

	got := EvaluateDay(Attendance{CheckIn: &checkIn}, nil)

	for _, kind := range PunchOrder {
		assert.Equal(t, StatusNotApplicable, got.ByKind(kind).Status, kind)
	}
}
