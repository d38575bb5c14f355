package models

import "time"

// Event is a calendar entry owned by exactly one user. Only the owner may
// read, modify, or delete it.
type Event struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Date        time.Time
	EventTime   string
	Priority    int
	Category    string
	CreatedAt   time.Time
}
