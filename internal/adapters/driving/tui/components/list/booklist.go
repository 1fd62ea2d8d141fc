// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/styles"
	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// BookList displays books in a navigable list. It is used both for
// search results and for the library catalogue.
type BookList struct {
	books      []domain.Book
	selected   int
	styles     *styles.Styles
	width      int
	height     int
	showStatus bool
}

// NewBookList creates a new book list component. When showStatus is set
// each row carries the reading status, which only makes sense for
// catalogued books.
func NewBookList(s *styles.Styles, showStatus bool) *BookList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &BookList{
		books:      nil,
		selected:   0,
		styles:     s,
		width:      80,
		height:     10,
		showStatus: showStatus,
	}
}

// Init initialises the book list.
func (r *BookList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *BookList) Update(msg tea.Msg) (*BookList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
	}
	return r, nil
}

// View renders the book list.
func (r *BookList) View() string {
	if len(r.books) == 0 {
		return r.styles.Muted.Render("No books")
	}

	lines := make([]string, 0, len(r.books)*2+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Books (%d)", len(r.books)))
	lines = append(lines, header, "")

	// Each row takes two lines plus breathing room.
	visibleCount := (r.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.books) {
		end = len(r.books)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderBook(i, &r.books[i]))
	}

	return strings.Join(lines, "\n")
}

// renderBook formats a single book row with a detail line.
func (r *BookList) renderBook(index int, book *domain.Book) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := book.DisplayTitle()
	if title == "" {
		title = "(Untitled)"
	}

	maxTitleLen := r.width - 20
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	tag := ""
	if r.showStatus {
		tag = string(book.Status)
	} else if book.PublishedYear > 0 {
		tag = fmt.Sprintf("%d", book.PublishedYear)
	}

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, tag))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			r.styles.Muted.Render(tag)
	}

	detail := book.Genre
	if detail == "" {
		detail = book.Description
	}

	maxDetailLen := r.width - 6
	if maxDetailLen < 20 {
		maxDetailLen = 20
	}
	if len(detail) > maxDetailLen {
		detail = detail[:maxDetailLen-3] + "..."
	}

	detailLine := r.styles.Muted.Render("    " + detail)

	return titleLine + "\n" + detailLine
}

// SetBooks updates the list contents and resets the selection.
func (r *BookList) SetBooks(books []domain.Book) {
	r.books = books
	r.selected = 0
}

// Books returns the current books.
func (r *BookList) Books() []domain.Book {
	return r.books
}

// Selected returns the index of the selected book.
func (r *BookList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *BookList) SetSelected(index int) {
	if index >= 0 && index < len(r.books) {
		r.selected = index
	}
}

// SelectedBook returns the currently selected book, or nil if none.
func (r *BookList) SelectedBook() *domain.Book {
	if len(r.books) == 0 || r.selected < 0 || r.selected >= len(r.books) {
		return nil
	}
	return &r.books[r.selected]
}

// MoveUp moves selection up.
func (r *BookList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *BookList) MoveDown() {
	if r.selected < len(r.books)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *BookList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *BookList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *BookList) Height() int {
	return r.height
}

// Count returns the number of books.
func (r *BookList) Count() int {
	return len(r.books)
}

// IsEmpty returns whether the list is empty.
func (r *BookList) IsEmpty() bool {
	return len(r.books) == 0
}
