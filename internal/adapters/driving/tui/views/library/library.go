// Package library provides the catalogue view component for the TUI.
package library

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/messages"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/styles"
	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driving"
)

// View is the catalogue management view.
type View struct {
	styles  *styles.Styles
	library driving.LibraryService

	books    []domain.Book
	selected int
	width    int
	height   int
	ready    bool
	err      error
	loading  bool
}

// NewView creates a new library view.
func NewView(s *styles.Styles, library driving.LibraryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		library: library,
		books:   []domain.Book{},
	}
}

// Init initialises the view and loads the catalogue.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadBooks()
}

// loadBooks returns a command that loads the catalogue from the service.
func (v *View) loadBooks() tea.Cmd {
	return func() tea.Msg {
		if v.library == nil {
			return messages.BooksLoaded{Err: fmt.Errorf("library service not available")}
		}
		books, err := v.library.List(context.Background())
		return messages.BooksLoaded{Books: books, Err: err}
	}
}

// Update handles messages for the library view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.BooksLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.books = msg.Books
			v.err = nil
			if v.selected >= len(v.books) && len(v.books) > 0 {
				v.selected = len(v.books) - 1
			}
		}
		return v, nil

	case messages.BookRemoved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadBooks()

	case messages.BookStatusChanged:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadBooks()
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.books)-1 {
			v.selected++
		}
	case "enter":
		// Navigate to book detail
		if len(v.books) > 0 && v.selected < len(v.books) {
			book := v.books[v.selected]
			return v, func() tea.Msg {
				return messages.BookSelected{Book: book}
			}
		}
	case "s":
		// Cycle the reading status of the selected book
		if len(v.books) > 0 && v.selected < len(v.books) {
			book := v.books[v.selected]
			return v, v.cycleStatus(book)
		}
	case "d", "delete", "backspace":
		// Remove selected book
		if len(v.books) > 0 && v.selected < len(v.books) {
			return v, v.removeBook(v.books[v.selected].ID)
		}
	case "r":
		// Reload catalogue
		v.loading = true
		return v, v.loadBooks()
	}

	return v, nil
}

// removeBook returns a command that removes a book from the catalogue.
func (v *View) removeBook(id string) tea.Cmd {
	return func() tea.Msg {
		if v.library == nil {
			return messages.BookRemoved{ID: id, Err: fmt.Errorf("library service not available")}
		}
		err := v.library.Remove(context.Background(), id)
		return messages.BookRemoved{ID: id, Err: err}
	}
}

// cycleStatus returns a command that advances a book's reading status.
func (v *View) cycleStatus(book domain.Book) tea.Cmd {
	next := book.Status.Next()
	return func() tea.Msg {
		if v.library == nil {
			return messages.BookStatusChanged{Err: fmt.Errorf("library service not available")}
		}
		updated, err := v.library.SetStatus(context.Background(), book.ID, next)
		if err != nil {
			return messages.BookStatusChanged{Err: err}
		}
		return messages.BookStatusChanged{Book: *updated}
	}
}

// View renders the library view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("My library"))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading catalogue..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if len(v.books) == 0 {
		b.WriteString(v.styles.Muted.Render("No books yet. Find one and add it with ctrl+a."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	for i := range v.books {
		b.WriteString(v.renderBook(i, &v.books[i]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderBook renders a single catalogue line.
func (v *View) renderBook(index int, book *domain.Book) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	statusStr := fmt.Sprintf("[%s]", book.Status)
	title := book.DisplayTitle()

	maxTitleLen := v.width - len(statusStr) - 12
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-16s %s", indicator, statusStr, title))
	}
	return v.styles.Normal.Render(indicator) +
		v.styles.Subtitle.Render(fmt.Sprintf("%-16s ", statusStr)) +
		v.styles.Normal.Render(title)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[enter] details  [s] cycle status  [d] remove  [r] reload  [esc] back  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Books returns the current catalogue.
func (v *View) Books() []domain.Book {
	return v.books
}

// SelectedIndex returns the currently selected book index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedBook returns the currently selected book.
func (v *View) SelectedBook() *domain.Book {
	if len(v.books) == 0 || v.selected >= len(v.books) {
		return nil
	}
	return &v.books[v.selected]
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
