package domain

import "time"

// ActivityKind identifies the type of an activity event.
type ActivityKind string

const (
	// ActivityAdded records a book entering the catalogue.
	ActivityAdded ActivityKind = "added"
	// ActivityProgress records a reading-progress update.
	ActivityProgress ActivityKind = "progress"
	// ActivityRated records a rating or review.
	ActivityRated ActivityKind = "rated"
	// ActivityStatusChanged records a reading-status change.
	ActivityStatusChanged ActivityKind = "status_changed"
)

// ActivityEvent is a single entry in the append-only activity feed.
type ActivityEvent struct {
	// ID is the unique identifier for the event.
	ID string

	// Kind is the event type.
	Kind ActivityKind

	// BookID links to the book the event concerns.
	BookID string

	// BookTitle is denormalised for feed rendering without a join.
	BookTitle string

	// Detail is a short human-readable summary, e.g. "page 120" or "4 stars".
	Detail string

	// OccurredAt is when the event happened.
	OccurredAt time.Time
}
