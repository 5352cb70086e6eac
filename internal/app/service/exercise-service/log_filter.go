package exercise_service

import (
	"time"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/helper"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/entity"
)

// LogQuery bounds are inclusive calendar dates. A Limit below 1 means no limit.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

type LogResult struct {
	Entries []entity.LogEntry
	Count   int
	From    *time.Time
	To      *time.Time
}

// FilterLog keeps the entries inside [From, To], then truncates to Limit.
// Relative order of the log is preserved and the input is never modified.
func FilterLog(log []entity.LogEntry, query LogQuery) LogResult {
	entries := make([]entity.LogEntry, 0, len(log))
	for _, entry := range log {
		day := helper.DateOnly(entry.Date)
		if query.From != nil && day.Before(helper.DateOnly(*query.From)) {
			continue
		}
		if query.To != nil && day.After(helper.DateOnly(*query.To)) {
			continue
		}
		entries = append(entries, entry)
	}

	if query.Limit >= 1 && len(entries) > query.Limit {
		entries = entries[:query.Limit]
	}

	return LogResult{
		Entries: entries,
		Count:   len(entries),
		From:    query.From,
		To:      query.To,
	}
}
