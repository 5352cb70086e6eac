package webrequest

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateExerciseRequestGetDuration(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{`30`, 30, true},
		{`12.5`, 12.5, true},
		{`"45"`, 45, true},
		{`" 15 "`, 15, true},
		{`0`, 0, false},
		{`-5`, 0, false},
		{`"abc"`, 0, false},
		{`"NaN"`, 0, false},
		{`"Inf"`, 0, false},
		{`null`, 0, false},
		{`true`, 0, false},
		{``, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := CreateExerciseRequest{DurationRaw: json.RawMessage(tt.raw)}
			got, ok := r.GetDuration()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateExerciseRequestValidate(t *testing.T) {
	valid := CreateExerciseRequest{Description: "run", DurationRaw: json.RawMessage(`30`), Date: "2023-1-5"}
	assert.Empty(t, valid.Validate())

	noDate := CreateExerciseRequest{Description: "run", DurationRaw: json.RawMessage(`"30"`)}
	assert.Empty(t, noDate.Validate())

	missing := CreateExerciseRequest{}
	errs := missing.Validate()
	if assert.Len(t, errs, 2) {
		assert.Equal(t, "description", errs[0].Field)
		assert.Equal(t, "Description is required", errs[0].Message)
		assert.Equal(t, "duration", errs[1].Field)
		assert.Equal(t, "Duration is required", errs[1].Message)
	}

	bad := CreateExerciseRequest{Description: "run", DurationRaw: json.RawMessage(`-1`), Date: "01/05/2023"}
	errs = bad.Validate()
	if assert.Len(t, errs, 2) {
		assert.Equal(t, "date", errs[0].Field)
		assert.Equal(t, "Date must be a valid date in YYYY-MM-DD format", errs[0].Message)
		assert.Equal(t, "duration", errs[1].Field)
		assert.Equal(t, "Duration must be a positive number", errs[1].Message)
	}
}

func TestCreateExerciseRequestBlankFormDuration(t *testing.T) {
	for _, raw := range []string{`""`, `"   "`, `null`} {
		t.Run(raw, func(t *testing.T) {
			r := CreateExerciseRequest{Description: "run", DurationRaw: json.RawMessage(raw)}
			errs := r.Validate()
			if assert.Len(t, errs, 1) {
				assert.Equal(t, "duration", errs[0].Field)
				assert.Equal(t, "Duration is required", errs[0].Message)
			}
		})
	}
}

func TestCreateExerciseRequestGetCalendarDate(t *testing.T) {
	date, ok := CreateExerciseRequest{Date: " 2023-2-1 "}.GetCalendarDate()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), date)

	_, ok = CreateExerciseRequest{}.GetCalendarDate()
	assert.False(t, ok)
}

func TestCreateUserRequestValidate(t *testing.T) {
	assert.Empty(t, CreateUserRequest{Username: "alice"}.Validate())

	errs := CreateUserRequest{Username: "   "}.Validate()
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "Username is required", errs[0].Message)
	}

	long := make([]byte, maxUsernameLength+1)
	for i := range long {
		long[i] = 'a'
	}
	errs = CreateUserRequest{Username: string(long)}.Validate()
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "Username must be at most 64 characters", errs[0].Message)
	}
}
