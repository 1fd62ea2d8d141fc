package domain

import "time"

// ProgressEntry records a single reading-progress update for a book.
type ProgressEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// BookID links to the book being read.
	BookID string

	// Page is the page reached, zero if the update was percent-based.
	Page int

	// Percent is the share of the book completed, 0-100.
	Percent int

	// Note is an optional free-text remark.
	Note string

	// LoggedAt is when the update was recorded.
	LoggedAt time.Time
}
