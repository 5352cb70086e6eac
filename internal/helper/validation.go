package helper

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/data"

	ozzo "github.com/go-ozzo/ozzo-validation"
)

var Field = ozzo.Field

var errorMessages = map[string]string{
	"required":   "%s is required",
	"min_length": "%s must be at least %d characters",
	"max_length": "%s must be at most %d characters",
	"positive":   "%s must be a positive number",
	"date":       "%s must be a valid date in YYYY-MM-DD format",
	"in":         "%s must be one of the allowed values",
}

func translateError(list map[string]string, field string, err error) data.ValidationErrorData {
	fieldName := getDisplayName(field, list)
	msg := err.Error()

	switch {
	case strings.Contains(msg, "cannot be blank"):
		msg = fmt.Sprintf(errorMessages["required"], fieldName)
	case strings.Contains(msg, "the length must be no less than"):
		msg = fmt.Sprintf(errorMessages["min_length"], fieldName, extractFirstNumber(msg))
	case strings.Contains(msg, "the length must be no more than"):
		msg = fmt.Sprintf(errorMessages["max_length"], fieldName, extractFirstNumber(msg))
	case strings.Contains(msg, "the length must be between"):
		msg = fmt.Sprintf(errorMessages["max_length"], fieldName, extractLastNumber(msg))
	case strings.Contains(msg, "must be a positive number"):
		msg = fmt.Sprintf(errorMessages["positive"], fieldName)
	case strings.Contains(msg, "must be a valid date"):
		msg = fmt.Sprintf(errorMessages["date"], fieldName)
	case strings.Contains(msg, "must be a valid value"):
		msg = fmt.Sprintf(errorMessages["in"], fieldName)
	default:
		msg = fmt.Sprintf("%s is invalid", fieldName)
	}

	return data.ValidationErrorData{
		Field:   field,
		Message: msg,
	}
}

var numberPattern = regexp.MustCompile(`\d+`)

func extractFirstNumber(msg string) int {
	match := numberPattern.FindString(msg)
	if match == "" {
		return 0
	}
	num, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return num
}

func extractLastNumber(msg string) int {
	matches := numberPattern.FindAllString(msg, -1)
	if len(matches) == 0 {
		return 0
	}
	num, err := strconv.Atoi(matches[len(matches)-1])
	if err != nil {
		return 0
	}
	return num
}

func getDisplayName(field string, list map[string]string) string {
	if name, exists := list[field]; exists {
		return name
	}
	return field
}

// ValidateStruct runs ozzo rules and flattens the result into display-ready
// field errors, sorted by field name so responses are stable.
func ValidateStruct(list map[string]string, s interface{}, fields ...*ozzo.FieldRules) []data.ValidationErrorData {
	err := ozzo.ValidateStruct(s, fields...)
	if err == nil {
		return nil
	}

	var errors []data.ValidationErrorData
	if validationErrors, ok := err.(ozzo.Errors); ok {
		for _, field := range sortedKeys(validationErrors) {
			errors = append(errors, translateError(list, field, validationErrors[field]))
		}
		return errors
	}

	// Internal rule errors (e.g. a misconfigured rule) surface as a single entry.
	return []data.ValidationErrorData{{Field: "", Message: err.Error()}}
}

func sortedKeys(errs ozzo.Errors) []string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
