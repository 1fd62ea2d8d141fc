// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// QueryChanged is sent when the search query input changes.
type QueryChanged struct {
	Query string
}

// SearchStateChanged carries an incremental-search state update.
// One message per orchestrator notification, in order.
type SearchStateChanged struct {
	State domain.SearchState
}

// ResultSelected is sent when a search result is selected.
type ResultSelected struct {
	Index int
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the incremental search view.
	ViewSearch
	// ViewLibrary is the catalogue view.
	ViewLibrary
	// ViewBookDetail shows a single book with progress and review.
	ViewBookDetail
	// ViewActivity is the recent activity feed.
	ViewActivity
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewLibrary:
		return "library"
	case ViewBookDetail:
		return "book_detail"
	case ViewActivity:
		return "activity"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// BooksLoaded carries the catalogue from the library service.
type BooksLoaded struct {
	Books []domain.Book
	Err   error
}

// BookAdded signals a book was added to the catalogue.
type BookAdded struct {
	Book domain.Book
	Err  error
}

// BookRemoved signals a book was removed from the catalogue.
type BookRemoved struct {
	ID  string
	Err error
}

// BookSelected signals a book was selected for detail view.
type BookSelected struct {
	Book domain.Book
}

// BookStatusChanged signals a reading-status update completed.
type BookStatusChanged struct {
	Book domain.Book
	Err  error
}

// ProgressLoaded carries the progress history for a book.
type ProgressLoaded struct {
	BookID  string
	Entries []domain.ProgressEntry
	Err     error
}

// ReviewLoaded carries the review for a book, nil when unrated.
type ReviewLoaded struct {
	BookID string
	Review *domain.Review
	Err    error
}

// ActivityLoaded carries the recent activity feed.
type ActivityLoaded struct {
	Events []domain.ActivityEvent
	Err    error
}
