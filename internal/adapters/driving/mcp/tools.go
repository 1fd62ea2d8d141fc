package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_books tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the title or author to search for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_books tool.
type SearchOutput struct {
	Results []BookOutput `json:"results"`
	Count   int          `json:"count"`
}

// BookOutput represents a single book in tool output.
type BookOutput struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre,omitempty"`
	ISBN          string `json:"isbn,omitempty"`
	PageCount     int    `json:"page_count,omitempty"`
	PublishedYear int    `json:"published_year,omitempty"`
	Status        string `json:"status,omitempty"`
}

// ListLibraryInput is the input schema for the list_library tool.
type ListLibraryInput struct {
	Status string `json:"status,omitempty" jsonschema:"filter by reading status (want_to_read, reading, finished, abandoned)"`
}

// ListLibraryOutput is the output schema for the list_library tool.
type ListLibraryOutput struct {
	Books []BookOutput `json:"books"`
	Count int          `json:"count"`
}

// AddBookInput is the input schema for the add_book tool.
type AddBookInput struct {
	Title  string `json:"title" jsonschema:"the book title"`
	Author string `json:"author,omitempty" jsonschema:"the primary author"`
	ISBN   string `json:"isbn,omitempty" jsonschema:"the ISBN-13 if known"`
}

// AddBookOutput is the output schema for the add_book tool.
type AddBookOutput struct {
	Book BookOutput `json:"book"`
}

// LogProgressInput is the input schema for the log_progress tool.
type LogProgressInput struct {
	BookID  string `json:"book_id" jsonschema:"the catalogue ID of the book"`
	Page    int    `json:"page,omitempty" jsonschema:"the page reached"`
	Percent int    `json:"percent,omitempty" jsonschema:"the percentage completed (0-100)"`
	Note    string `json:"note,omitempty" jsonschema:"an optional remark"`
}

// LogProgressOutput is the output schema for the log_progress tool.
type LogProgressOutput struct {
	EntryID string `json:"entry_id"`
	Page    int    `json:"page,omitempty"`
	Percent int    `json:"percent,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_books",
		Description: "Search for books by title or author",
	}, s.handleSearchBooks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_library",
		Description: "List the books in the reading catalogue",
	}, s.handleListLibrary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_book",
		Description: "Add a book to the reading catalogue",
	}, s.handleAddBook)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "log_progress",
		Description: "Record reading progress for a catalogued book",
	}, s.handleLogProgress)
}

// handleSearchBooks handles the search_books tool invocation.
func (s *Server) handleSearchBooks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	opts := domain.SearchOptions{Limit: limit}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]BookOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = toBookOutput(&results[i])
	}

	return nil, output, nil
}

// handleListLibrary handles the list_library tool invocation.
func (s *Server) handleListLibrary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListLibraryInput,
) (*mcp.CallToolResult, ListLibraryOutput, error) {
	if s.ports.Library == nil {
		return nil, ListLibraryOutput{}, fmt.Errorf("library service not available")
	}

	books, err := s.ports.Library.List(ctx)
	if err != nil {
		return nil, ListLibraryOutput{}, err
	}

	output := ListLibraryOutput{Books: make([]BookOutput, 0, len(books))}
	for i := range books {
		if input.Status != "" && string(books[i].Status) != input.Status {
			continue
		}
		output.Books = append(output.Books, toBookOutput(&books[i]))
	}
	output.Count = len(output.Books)

	return nil, output, nil
}

// handleAddBook handles the add_book tool invocation.
func (s *Server) handleAddBook(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddBookInput,
) (*mcp.CallToolResult, AddBookOutput, error) {
	if s.ports.Library == nil {
		return nil, AddBookOutput{}, fmt.Errorf("library service not available")
	}

	book, err := s.ports.Library.Add(ctx, domain.Book{
		Title:  input.Title,
		Author: input.Author,
		ISBN:   input.ISBN,
	})
	if err != nil {
		return nil, AddBookOutput{}, err
	}

	return nil, AddBookOutput{Book: toBookOutput(book)}, nil
}

// handleLogProgress handles the log_progress tool invocation.
func (s *Server) handleLogProgress(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LogProgressInput,
) (*mcp.CallToolResult, LogProgressOutput, error) {
	if s.ports.Progress == nil {
		return nil, LogProgressOutput{}, fmt.Errorf("progress service not available")
	}

	entry, err := s.ports.Progress.Log(ctx, input.BookID, input.Page, input.Percent, input.Note)
	if err != nil {
		return nil, LogProgressOutput{}, err
	}

	return nil, LogProgressOutput{
		EntryID: entry.ID,
		Page:    entry.Page,
		Percent: entry.Percent,
	}, nil
}

// toBookOutput maps a domain book onto the wire shape.
func toBookOutput(book *domain.Book) BookOutput {
	return BookOutput{
		ID:            book.ID,
		Title:         book.Title,
		Author:        book.Author,
		Genre:         book.Genre,
		ISBN:          book.ISBN,
		PageCount:     book.PageCount,
		PublishedYear: book.PublishedYear,
		Status:        string(book.Status),
	}
}
