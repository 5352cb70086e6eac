package entity

import "time"

// User owns an append-only exercise log. Username is unique across users.
type User struct {
	ID       string
	Username string
	Log      []LogEntry
}

// LogEntry is a single recorded exercise. Date carries no time of day and is
// kept at UTC midnight.
type LogEntry struct {
	Description string
	Duration    float64
	Date        time.Time
}
