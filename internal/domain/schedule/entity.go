package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// ConfigID is the primary key of the only schedule row.
const ConfigID = 1

const DefaultWorkdaysRule = "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"

// Config holds the expected punch times (HH:MM:SS) shared by every employee.
type Config struct {
	ID               int
	ExpectedCheckIn  string
	ExpectedLunchOut string
	ExpectedLunchIn  string
	ExpectedCheckOut string
	ToleranceMinutes int
	WorkdaysRule     string
	UpdatedAt        time.Time
}

// IsWorkday reports whether date falls on the configured working days.
// An empty rule treats every day as a workday.
func (c Config) IsWorkday(date time.Time) (bool, error) {
	day := truncateDay(date)
	days, err := c.Workdays(day, day)
	if err != nil {
		return false, err
	}
	return len(days) > 0, nil
}

// Workdays expands the workday rule between start and end, both inclusive.
func (c Config) Workdays(start, end time.Time) ([]time.Time, error) {
	start, end = truncateDay(start), truncateDay(end)
	if end.Before(start) {
		return nil, nil
	}

	if c.WorkdaysRule == "" {
		var days []time.Time
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
		return days, nil
	}

	rule, err := parseRule(c.WorkdaysRule, start)
	if err != nil {
		return nil, err
	}
	return rule.Between(start, end, true), nil
}

// ValidateWorkdaysRule checks that s is an RRULE string rrule-go understands.
func ValidateWorkdaysRule(s string) error {
	_, err := parseRule(s, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	return err
}

func parseRule(s string, dtstart time.Time) (*rrule.RRule, error) {
	opt, err := rrule.StrToROption(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkdaysRule, err)
	}
	opt.Dtstart = dtstart

	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkdaysRule, err)
	}
	return rule, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
