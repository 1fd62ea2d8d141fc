// Package bookdetail provides the single-book detail view for the TUI.
package bookdetail

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

// MenuOption represents an action in the book detail menu.
type MenuOption int

const (
	OptionCycleStatus MenuOption = iota
	OptionRemoveBook
	OptionBack
)

// historyLimit caps how many progress entries are rendered.
const historyLimit = 8

// View is the book detail view: metadata, progress history and review.
type View struct {
	styles   *styles.Styles
	library  driving.LibraryService
	progress driving.ProgressService
	reviews  driving.ReviewService

	book     *domain.Book
	entries  []domain.ProgressEntry
	review   *domain.Review
	selected MenuOption
	width    int
	height   int
	ready    bool
	err      error
}

// NewView creates a new book detail view.
func NewView(
	s *styles.Styles,
	library driving.LibraryService,
	progress driving.ProgressService,
	reviews driving.ReviewService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		library:  library,
		progress: progress,
		reviews:  reviews,
		selected: OptionCycleStatus,
	}
}

// SetBook sets the book to display details for.
func (v *View) SetBook(book domain.Book) {
	v.book = &book
	v.entries = nil
	v.review = nil
	v.err = nil
	v.selected = OptionCycleStatus
}

// Init initialises the view and loads progress and review.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.loadProgress(), v.loadReview())
}

// loadProgress returns a command that loads the progress history.
func (v *View) loadProgress() tea.Cmd {
	return func() tea.Msg {
		if v.book == nil || v.progress == nil {
			return nil
		}
		entries, err := v.progress.History(context.Background(), v.book.ID)
		return messages.ProgressLoaded{BookID: v.book.ID, Entries: entries, Err: err}
	}
}

// loadReview returns a command that loads the review, if any.
func (v *View) loadReview() tea.Cmd {
	return func() tea.Msg {
		if v.book == nil || v.reviews == nil {
			return nil
		}
		review, err := v.reviews.Get(context.Background(), v.book.ID)
		if err != nil {
			// An unrated book is not an error worth surfacing.
			return messages.ReviewLoaded{BookID: v.book.ID}
		}
		return messages.ReviewLoaded{BookID: v.book.ID, Review: review}
	}
}

// Update handles messages for the book detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ProgressLoaded:
		if v.book == nil || msg.BookID != v.book.ID {
			return v, nil
		}
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.entries = msg.Entries
		}
		return v, nil

	case messages.ReviewLoaded:
		if v.book == nil || msg.BookID != v.book.ID {
			return v, nil
		}
		v.review = msg.Review
		return v, nil

	case messages.BookStatusChanged:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.book = &msg.Book
		}
		return v, nil

	case messages.BookRemoved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewLibrary}
		}

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > OptionCycleStatus {
			v.selected--
		}
	case "down", "j":
		if v.selected < OptionBack {
			v.selected++
		}
	case "enter":
		return v.handleSelect()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewLibrary}
		}
	}

	return v, nil
}

// handleSelect handles selection of a menu option.
func (v *View) handleSelect() (*View, tea.Cmd) {
	switch v.selected {
	case OptionCycleStatus:
		return v, v.cycleStatus()
	case OptionRemoveBook:
		return v, v.removeBook()
	case OptionBack:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewLibrary}
		}
	}
	return v, nil
}

// cycleStatus returns a command that advances the reading status.
func (v *View) cycleStatus() tea.Cmd {
	if v.book == nil {
		return nil
	}
	id := v.book.ID
	next := v.book.Status.Next()
	return func() tea.Msg {
		if v.library == nil {
			return messages.BookStatusChanged{Err: fmt.Errorf("library service not available")}
		}
		updated, err := v.library.SetStatus(context.Background(), id, next)
		if err != nil {
			return messages.BookStatusChanged{Err: err}
		}
		return messages.BookStatusChanged{Book: *updated}
	}
}

// removeBook returns a command that removes the book from the catalogue.
func (v *View) removeBook() tea.Cmd {
	if v.book == nil {
		return nil
	}
	id := v.book.ID
	return func() tea.Msg {
		if v.library == nil {
			return messages.BookRemoved{ID: id, Err: fmt.Errorf("library service not available")}
		}
		err := v.library.Remove(context.Background(), id)
		return messages.BookRemoved{ID: id, Err: err}
	}
}

// View renders the book detail view.
func (v *View) View() string {
	if v.book == nil {
		return v.styles.Muted.Render("No book selected")
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.book.DisplayTitle()))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Status: "))
	b.WriteString(v.styles.Normal.Render(string(v.book.Status)))
	b.WriteString("\n")

	if v.book.Genre != "" {
		b.WriteString(v.styles.Subtitle.Render("Genre: "))
		b.WriteString(v.styles.Normal.Render(v.book.Genre))
		b.WriteString("\n")
	}
	if v.book.PublishedYear > 0 {
		b.WriteString(v.styles.Subtitle.Render("Published: "))
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%d", v.book.PublishedYear)))
		b.WriteString("\n")
	}
	if v.book.PageCount > 0 {
		b.WriteString(v.styles.Subtitle.Render("Pages: "))
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%d", v.book.PageCount)))
		b.WriteString("\n")
	}
	if v.book.ISBN != "" {
		b.WriteString(v.styles.Subtitle.Render("ISBN: "))
		b.WriteString(v.styles.Muted.Render(v.book.ISBN))
		b.WriteString("\n")
	}

	if v.review != nil {
		b.WriteString(v.styles.Subtitle.Render("Rating: "))
		b.WriteString(v.styles.Normal.Render(strings.Repeat("*", v.review.Rating)))
		if v.review.Text != "" {
			b.WriteString(v.styles.Muted.Render("  " + v.review.Text))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if len(v.entries) > 0 {
		b.WriteString(v.styles.Subtitle.Render("Progress"))
		b.WriteString("\n")
		entries := v.entries
		if len(entries) > historyLimit {
			entries = entries[len(entries)-historyLimit:]
		}
		for i := range entries {
			b.WriteString(v.renderEntry(&entries[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", minInt(40, v.width-4)))
	b.WriteString("\n\n")

	options := []struct {
		option MenuOption
		label  string
	}{
		{OptionCycleStatus, "Cycle status"},
		{OptionRemoveBook, "Remove from library"},
		{OptionBack, "Back"},
	}

	for _, opt := range options {
		indicator := "  "
		if v.selected == opt.option {
			indicator = "> "
			b.WriteString(v.styles.Selected.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		} else {
			b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderEntry renders a single progress line.
func (v *View) renderEntry(entry *domain.ProgressEntry) string {
	parts := []string{entry.LoggedAt.Format("2006-01-02")}
	if entry.Page > 0 {
		parts = append(parts, fmt.Sprintf("page %d", entry.Page))
	}
	if entry.Percent > 0 {
		parts = append(parts, fmt.Sprintf("%d%%", entry.Percent))
	}
	line := "  " + strings.Join(parts, "  ")
	if entry.Note != "" {
		line += "  " + entry.Note
	}
	return v.styles.Muted.Render(line)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] navigate  [enter] select  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Book returns the current book.
func (v *View) Book() *domain.Book {
	return v.book
}

// SelectedOption returns the currently selected menu option.
func (v *View) SelectedOption() MenuOption {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
