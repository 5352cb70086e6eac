package helper

import (
	"errors"
	"regexp"
	"time"
)

// DisplayDateLayout renders dates the way the public API has always shown them,
// e.g. "Sun Jan 01 2023".
const DisplayDateLayout = "Mon Jan 02 2006"

// inputDateLayout accepts one or two digit months and days.
const inputDateLayout = "2006-1-2"

var dateInputPattern = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)

var ErrInvalidDate = errors.New("must be a valid date in YYYY-MM-DD format")

// ParseCalendarDate parses YYYY-MM-DD input (month and day may be one digit)
// into UTC midnight of that day. Impossible dates such as 2023-02-30 fail.
func ParseCalendarDate(value string) (time.Time, error) {
	if !dateInputPattern.MatchString(value) {
		return time.Time{}, ErrInvalidDate
	}

	t, err := time.Parse(inputDateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return DateOnly(t), nil
}

// DateOnly drops the time of day, keeping the calendar date t has in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in loc, as UTC midnight.
func Today(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDisplayDate(t time.Time) string {
	return t.UTC().Format(DisplayDateLayout)
}
