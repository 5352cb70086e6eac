package webrequest

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/helper"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/data"

	ozzo "github.com/go-ozzo/ozzo-validation"
)

var errNotPositive = errors.New("must be a positive number")

// CreateExerciseRequest accepts duration as either a JSON number or a numeric
// string, since HTML forms only ever send strings.
type CreateExerciseRequest struct {
	Description string          `json:"description"`
	DurationRaw json.RawMessage `json:"duration"`
	Date        string          `json:"date"`
}

var createExerciseDisplayNames = map[string]string{
	"description": "Description",
	"duration":    "Duration",
	"date":        "Date",
}

func (r CreateExerciseRequest) Validate() []data.ValidationErrorData {
	r.Description = strings.TrimSpace(r.Description)
	r.Date = strings.TrimSpace(r.Date)
	if r.durationBlank() {
		r.DurationRaw = nil
	}
	return helper.ValidateStruct(createExerciseDisplayNames, &r,
		helper.Field(&r.Description, ozzo.Required),
		helper.Field(&r.DurationRaw, ozzo.Required, ozzo.By(func(value interface{}) error {
			if _, ok := r.GetDuration(); !ok {
				return errNotPositive
			}
			return nil
		})),
		helper.Field(&r.Date, ozzo.By(func(value interface{}) error {
			if r.Date == "" {
				return nil
			}
			_, err := helper.ParseCalendarDate(r.Date)
			return err
		})),
	)
}

// durationBlank reports a missing duration, including the empty string an
// HTML form sends for an untouched field.
func (r CreateExerciseRequest) durationBlank() bool {
	raw := strings.TrimSpace(string(r.DurationRaw))
	if raw == "" || raw == "null" {
		return true
	}

	var s string
	if err := json.Unmarshal([]byte(raw), &s); err == nil {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// GetDuration returns the parsed duration and whether it is a usable
// positive number.
func (r CreateExerciseRequest) GetDuration() (float64, bool) {
	raw := strings.TrimSpace(string(r.DurationRaw))
	if raw == "" || raw == "null" {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return 0, false
		}
		n, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
	}

	if n <= 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func (r CreateExerciseRequest) GetDescription() string {
	return strings.TrimSpace(r.Description)
}

func (r CreateExerciseRequest) GetDate() string {
	return strings.TrimSpace(r.Date)
}

// GetCalendarDate returns the parsed date, or false when none was supplied.
// Callers run Validate first, which rejects malformed dates.
func (r CreateExerciseRequest) GetCalendarDate() (time.Time, bool) {
	raw := r.GetDate()
	if raw == "" {
		return time.Time{}, false
	}
	date, err := helper.ParseCalendarDate(raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// LogQueryRequest holds the raw from/to/limit query parameters. Empty values
// mean the filter was not supplied.
type LogQueryRequest struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit string `form:"limit"`
}
