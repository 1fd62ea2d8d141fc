// Package tui provides an interactive terminal user interface for stacks.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driving"
)

// SearchFactory builds an incremental search instance bound to a notify
// callback. The TUI owns one instance per visible search box and tears it
// down with Close when the box is dismissed.
type SearchFactory func(notify func(domain.SearchState)) driving.IncrementalSearch

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// NewSearch builds the type-ahead search behind the search box.
	NewSearch SearchFactory

	// Library manages the book catalogue.
	Library driving.LibraryService

	// Progress records and reports reading progress.
	Progress driving.ProgressService

	// Review records ratings and reviews.
	Review driving.ReviewService

	// Activity exposes the activity feed.
	Activity driving.ActivityService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.NewSearch == nil {
		return ErrMissingSearchFactory
	}
	if p.Library == nil {
		return ErrMissingLibraryService
	}
	if p.Activity == nil {
		return ErrMissingActivityService
	}
	return nil
}
