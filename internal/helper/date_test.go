package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"2023-01-15", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"2023-1-5", time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), true},
		{"2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), true},
		{"2023-02-29", time.Time{}, false},
		{"2023-13-01", time.Time{}, false},
		{"2023/01/15", time.Time{}, false},
		{"15-01-2023", time.Time{}, false},
		{"2023-01-15T10:00:00Z", time.Time{}, false},
		{"", time.Time{}, false},
		{"yesterday", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCalendarDate(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "Sun Jan 01 2023", FormatDisplayDate(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Wed Mar 01 2023", FormatDisplayDate(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestToday(t *testing.T) {
	now := time.Date(2023, 6, 30, 22, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC), Today(now, time.UTC))
	assert.Equal(t, time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), Today(now, tokyo))
}

func TestDateOnly(t *testing.T) {
	got := DateOnly(time.Date(2023, 3, 4, 17, 45, 12, 99, time.UTC))
	assert.Equal(t, time.Date(2023, 3, 4, 0, 0, 0, 0, time.UTC), got)
}
