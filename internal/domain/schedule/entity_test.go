package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestConfig_IsWorkday_WeekdaysRule(t *testing.T) {
	cfg := Config{WorkdaysRule: DefaultWorkdaysRule}

	// 2025-10-08 is a Wednesday, 2025-10-11 a Saturday.
	ok, err := cfg.IsWorkday(date(2025, 10, 8))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cfg.IsWorkday(date(2025, 10, 11))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfig_IsWorkday_EmptyRuleMeansEveryDay(t *testing.T) {
	ok, err := Config{}.IsWorkday(date(2025, 10, 12))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConfig_Workdays_Range(t *testing.T) {
	cfg := Config{WorkdaysRule: DefaultWorkdaysRule}

	days, err := cfg.Workdays(date(2025, 10, 6), date(2025, 10, 12))
	require.NoError(t, err)
	require.Len(t, days, 5)
	assert.Equal(t, date(2025, 10, 6), days[0])
	assert.Equal(t, date(2025, 10, 10), days[4])
}

func TestConfig_Workdays_InvalidRule(t *testing.T) {
	_, err := Config{WorkdaysRule: "FREQ=SOMETIMES"}.Workdays(date(2025, 10, 6), date(2025, 10, 12))
	assert.ErrorIs(t, err, ErrInvalidWorkdaysRule)
}

func TestUpdateScheduleRequest_Validate(t *testing.T) {
	rule := DefaultWorkdaysRule
	valid := UpdateScheduleRequest{
		ExpectedCheckIn:  "08:00",
		ExpectedLunchOut: "13:00:00",
		ExpectedLunchIn:  "14:00",
		ExpectedCheckOut: "17:00",
		ToleranceMinutes: 5,
		WorkdaysRule:     &rule,
	}
	assert.NoError(t, valid.Validate())

	outOfOrder := valid
	outOfOrder.ExpectedLunchIn = "12:00"
	assert.Error(t, outOfOrder.Validate())

	badRule := "every weekday"
	withBadRule := valid
	withBadRule.WorkdaysRule = &badRule
	assert.Error(t, withBadRule.Validate())

	negative := valid
	negative.ToleranceMinutes = -1
	assert.Error(t, negative.Validate())
}
