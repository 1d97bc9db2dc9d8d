package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Lima is the business timezone. Peru does not observe daylight saving.
var Lima = time.FixedZone("America/Lima", -5*60*60)

const (
	ClockLayout = "15:04:05"
	DateLayout  = "2006-01-02"
	EmptyCell   = "---"
)

var (
	embeddedDateTimeRegex = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[ T](\d{1,2}):(\d{2}):(\d{2})`)
	bareClockRegex        = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

// Normalize converts v to minutes since midnight in Lima.
// Strings carrying a full "YYYY-MM-DD HH:MM:SS" value are read as wall clock without conversion.
// It returns nil for nil or unparseable input.
func Normalize(v any) *int {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		m := MinutesOf(val)
		return &m
	case *time.Time:
		if val == nil {
			return nil
		}
		m := MinutesOf(*val)
		return &m
	case string:
		if m, ok := ParseClock(val); ok {
			return &m
		}
		return nil
	case *string:
		if val == nil {
			return nil
		}
		return Normalize(*val)
	default:
		return nil
	}
}

// MinutesOf returns minutes since midnight of t in Lima.
func MinutesOf(t time.Time) int {
	local := t.In(Lima)
	return local.Hour()*60 + local.Minute()
}

// ParseClock parses "HH:MM", "HH:MM:SS" or a string with an embedded
// "YYYY-MM-DD HH:MM:SS" into minutes since midnight.
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if m := embeddedDateTimeRegex.FindStringSubmatch(s); m != nil {
		return toMinutes(m[1], m[2], m[3])
	}

	if m := bareClockRegex.FindStringSubmatch(s); m != nil {
		return toMinutes(m[1], m[2], m[3])
	}

	return 0, false
}

func toMinutes(hh, mm, ss string) (int, bool) {
	h, err := strconv.Atoi(hh)
	if err != nil || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m > 59 {
		return 0, false
	}
	if ss != "" {
		sec, err := strconv.Atoi(ss)
		if err != nil || sec > 59 {
			return 0, false
		}
	}
	return h*60 + m, true
}

// Clock formats t as HH:MM:SS in Lima.
func Clock(t time.Time) string {
	return t.In(Lima).Format(ClockLayout)
}

// ShortClock formats t as HH:MM in Lima, or "---" when t is nil.
func ShortClock(t *time.Time) string {
	if t == nil {
		return EmptyCell
	}
	return t.In(Lima).Format("15:04")
}

// ClockPtr is Clock for optional values.
func ClockPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Clock(*t)
	return &s
}

// DateOf returns the Lima calendar date of t as a UTC midnight value.
func DateOf(t time.Time) time.Time {
	y, m, d := t.In(Lima).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatMinutes renders minutes since midnight as HH:MM.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
