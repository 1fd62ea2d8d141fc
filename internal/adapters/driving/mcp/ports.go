package mcp

import (
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides one-shot book search.
	Search driving.SearchService

	// Library manages the book catalogue.
	Library driving.LibraryService

	// Progress records and reports reading progress.
	Progress driving.ProgressService

	// Activity exposes the activity feed.
	Activity driving.ActivityService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Library, Progress and Activity are optional; the matching tools
	// and resources degrade gracefully when absent.
	return nil
}
