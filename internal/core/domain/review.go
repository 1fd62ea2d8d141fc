package domain

import "time"

// Review holds the user's rating and optional written review for a book.
// There is at most one review per book; saving again overwrites.
type Review struct {
	// ID is the unique identifier for the review.
	ID string

	// BookID links to the reviewed book.
	BookID string

	// Rating is the star rating, 1-5.
	Rating int

	// Text is the optional written review.
	Text string

	// CreatedAt is when the review was first written.
	CreatedAt time.Time

	// UpdatedAt is when the review was last edited.
	UpdatedAt time.Time
}

// ValidRating reports whether a rating value is in the accepted 1-5 range.
func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
