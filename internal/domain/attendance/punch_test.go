package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var punchNow = time.Date(2025, 10, 8, 13, 2, 9, 500, time.UTC) // 08:02:09 in Lima

func TestParsePunchKind(t *testing.T) {
	for _, kind := range PunchOrder {
		got, err := ParsePunchKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	_, err := ParsePunchKind("entrada")
	assert.ErrorIs(t, err, ErrInvalidPunchKind)

	_, err = ParsePunchKind("")
	assert.ErrorIs(t, err, ErrInvalidPunchKind)
}

func TestApplyPunch_FirstCheckIn(t *testing.T) {
	day := Attendance{EmployeeID: "emp-1"}

	updated, err := ApplyPunch(day, PunchCheckIn, punchNow)
	require.NoError(t, err)
	require.NotNil(t, updated.CheckIn)
	assert.Equal(t, punchNow.Truncate(time.Second), *updated.CheckIn)
	assert.Nil(t, day.CheckIn, "input must not be modified")
}

func TestApplyPunch_AlreadyMarked(t *testing.T) {
	earlier := punchNow.Add(-time.Hour)
	day := Attendance{CheckIn: &earlier}

	_, err := ApplyPunch(day, PunchCheckIn, punchNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyMarked)

	var marked *AlreadyMarkedError
	require.True(t, errors.As(err, &marked))
	assert.Equal(t, earlier, marked.MarkedAt)
	assert.Equal(t, "Check-in already marked at 07:02:09", err.Error())
}

func TestApplyPunch_OutOfSequence(t *testing.T) {
	checkIn := punchNow.Add(-4 * time.Hour)

	cases := []struct {
		name    string
		day     Attendance
		kind    PunchKind
		message string
	}{
		{"lunch out before check in", Attendance{}, PunchLunchOut, "must check in before lunch out"},
		{"lunch in before lunch out", Attendance{CheckIn: &checkIn}, PunchLunchIn, "must mark lunch out before returning"},
		{"check out before check in", Attendance{}, PunchCheckOut, "must check in before checking out"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ApplyPunch(c.day, c.kind, punchNow)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfSequence)
			assert.Equal(t, c.message, err.Error())
		})
	}
}

func TestApplyPunch_CheckOutWithoutLunchIsAllowed(t *testing.T) {
	checkIn := punchNow.Add(-8 * time.Hour)

	updated, err := ApplyPunch(Attendance{CheckIn: &checkIn}, PunchCheckOut, punchNow)
	require.NoError(t, err)
	assert.NotNil(t, updated.CheckOut)
	assert.Nil(t, updated.LunchOut)
}

func TestApplyPunch_FullDay(t *testing.T) {
	day := Attendance{}
	var err error
	for i, kind := range PunchOrder {
		day, err = ApplyPunch(day, kind, punchNow.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err, kind)
	}
	assert.Equal(t, NextActionComplete, Summarize(&day).NextAction)
}
