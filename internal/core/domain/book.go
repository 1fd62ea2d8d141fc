package domain

import "time"

// ReadingStatus tracks where a book sits in the reading lifecycle.
type ReadingStatus string

const (
	// StatusWantToRead marks a book on the wishlist.
	StatusWantToRead ReadingStatus = "want_to_read"
	// StatusReading marks a book currently being read.
	StatusReading ReadingStatus = "reading"
	// StatusFinished marks a completed book.
	StatusFinished ReadingStatus = "finished"
	// StatusAbandoned marks a book given up on.
	StatusAbandoned ReadingStatus = "abandoned"
)

// Valid reports whether the status is one of the known values.
func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusFinished, StatusAbandoned:
		return true
	default:
		return false
	}
}

// Next returns the status that follows s in the lifecycle, wrapping
// from abandoned back to want-to-read. Unknown statuses map to
// want-to-read.
func (s ReadingStatus) Next() ReadingStatus {
	switch s {
	case StatusWantToRead:
		return StatusReading
	case StatusReading:
		return StatusFinished
	case StatusFinished:
		return StatusAbandoned
	default:
		return StatusWantToRead
	}
}

// Book represents a single title in the user's catalogue.
// Books returned by the metadata search carry an empty Status until added.
type Book struct {
	// ID is the unique identifier for the book.
	ID string

	// Title is the book title.
	Title string

	// Author is the primary author's name.
	Author string

	// Genre is an optional genre or subject label.
	Genre string

	// Description is an optional free-text blurb.
	Description string

	// ISBN is the ISBN-13 where known.
	ISBN string

	// PageCount is the total number of pages, zero if unknown.
	PageCount int

	// PublishedYear is the first publication year, zero if unknown.
	PublishedYear int

	// CoverURL points at cover art, if any.
	CoverURL string

	// Status is the reading lifecycle status.
	Status ReadingStatus

	// AddedAt is when the book entered the catalogue.
	AddedAt time.Time

	// UpdatedAt is when the book was last modified.
	UpdatedAt time.Time
}

// DisplayTitle returns "Title - Author" for list rendering, falling back
// to the title alone when the author is unknown.
func (b Book) DisplayTitle() string {
	if b.Author == "" {
		return b.Title
	}
	return b.Title + " - " + b.Author
}
