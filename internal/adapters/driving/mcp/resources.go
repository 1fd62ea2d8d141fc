package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Stacks resources.
	uriScheme = "stacks://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the catalogue.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "library",
		Name:        "library",
		Description: "The full book catalogue with reading statuses",
		MIMEType:    "application/json",
	}, s.handleLibraryResource)

	// Template for per-book progress history.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "library/{bookId}/progress",
		Name:        "book-progress",
		Description: "Reading progress history for a catalogued book",
		MIMEType:    "application/json",
	}, s.handleProgressResource)

	// Static resource for the activity feed.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "activity",
		Name:        "activity",
		Description: "Recent reading activity, newest first",
		MIMEType:    "application/json",
	}, s.handleActivityResource)
}

// handleLibraryResource returns the full catalogue.
func (s *Server) handleLibraryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Library == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	books, err := s.ports.Library.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing library: %w", err)
	}

	infos := make([]BookOutput, len(books))
	for i := range books {
		infos[i] = toBookOutput(&books[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling library: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleProgressResource returns progress history for a specific book.
func (s *Server) handleProgressResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Progress == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract bookId from URI: stacks://library/{bookId}/progress
	bookID := extractBookID(req.Params.URI)
	if bookID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entries, err := s.ports.Progress.History(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("listing progress: %w", err)
	}

	type entryInfo struct {
		ID       string `json:"id"`
		Page     int    `json:"page,omitempty"`
		Percent  int    `json:"percent,omitempty"`
		Note     string `json:"note,omitempty"`
		LoggedAt string `json:"logged_at"`
	}

	infos := make([]entryInfo, len(entries))
	for i := range entries {
		infos[i] = entryInfo{
			ID:       entries[i].ID,
			Page:     entries[i].Page,
			Percent:  entries[i].Percent,
			Note:     entries[i].Note,
			LoggedAt: entries[i].LoggedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling progress: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleActivityResource returns the recent activity feed.
func (s *Server) handleActivityResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Activity == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	events, err := s.ports.Activity.Recent(ctx, 50)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}

	type eventInfo struct {
		ID         string `json:"id"`
		Kind       string `json:"kind"`
		BookID     string `json:"book_id"`
		BookTitle  string `json:"book_title"`
		Detail     string `json:"detail,omitempty"`
		OccurredAt string `json:"occurred_at"`
	}

	infos := make([]eventInfo, len(events))
	for i := range events {
		infos[i] = eventInfo{
			ID:         events[i].ID,
			Kind:       string(events[i].Kind),
			BookID:     events[i].BookID,
			BookTitle:  events[i].BookTitle,
			Detail:     events[i].Detail,
			OccurredAt: events[i].OccurredAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling activity: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractBookID extracts the book ID from a URI like stacks://library/{bookId}/progress.
func extractBookID(uri string) string {
	const prefix = uriScheme + "library/"
	const suffix = "/progress"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
