package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/messages"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/styles"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/views/activity"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/views/bookdetail"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/views/library"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/views/menu"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/views/search"
	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// searchView is the incremental search view component.
	searchView *search.View

	// libraryView is the catalogue view component.
	libraryView *library.View

	// bookDetailView is the single-book detail view component.
	bookDetailView *bookdetail.View

	// activityView is the recent-activity feed component.
	activityView *activity.View

	// selectedBook tracks the currently selected book for navigation.
	selectedBook *domain.Book

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s)
	searchView := search.NewView(s, nil, ports.NewSearch, ports.Library)
	libraryView := library.NewView(s, ports.Library)
	bookDetailView := bookdetail.NewView(s, ports.Library, ports.Progress, ports.Review)
	activityView := activity.NewView(s, ports.Activity)

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menuView,
		searchView:     searchView,
		libraryView:    libraryView,
		bookDetailView: bookDetailView,
		activityView:   activityView,
		currentView:    messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("stacks - Reading Tracker"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.libraryView.SetDimensions(msg.Width, msg.Height)
		a.bookDetailView.SetDimensions(msg.Width, msg.Height)
		a.activityView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			a.searchView.Close()
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.err = a.searchView.Err()
			return a, cmd

		case messages.ViewLibrary:
			// Esc from the library goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			if msg.String() == "q" {
				a.searchView.Close()
				return a, tea.Quit
			}
			a.libraryView, cmd = a.libraryView.Update(msg)
			return a, cmd

		case messages.ViewBookDetail:
			a.bookDetailView, cmd = a.bookDetailView.Update(msg)
			return a, cmd

		case messages.ViewActivity:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			if msg.String() == "q" {
				a.searchView.Close()
				return a, tea.Quit
			}
			a.activityView, cmd = a.activityView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.SearchStateChanged:
		// Always forwarded to the search view so notifications keep
		// draining even while another view is active.
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewLibrary:
			return a, a.libraryView.Init()
		case messages.ViewActivity:
			return a, a.activityView.Init()
		case messages.ViewBookDetail:
			return a, a.bookDetailView.Init()
		case messages.ViewMenu, messages.ViewSearch, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.BookSelected:
		// Navigate from the library to book detail
		a.selectedBook = &msg.Book
		a.bookDetailView.SetBook(msg.Book)
		a.currentView = messages.ViewBookDetail
		return a, a.bookDetailView.Init()

	case messages.BookAdded:
		// Forward to the search view, which shows the confirmation
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewBookDetail:
			a.bookDetailView, cmd = a.bookDetailView.Update(msg)
		case messages.ViewMenu, messages.ViewLibrary, messages.ViewActivity, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		a.searchView.Close()
		return a, tea.Quit

	case messages.BooksLoaded, messages.BookRemoved, messages.BookStatusChanged:
		// Forward to whichever catalogue view is active
		if a.currentView == messages.ViewBookDetail {
			a.bookDetailView, cmd = a.bookDetailView.Update(msg)
			return a, cmd
		}
		a.libraryView, cmd = a.libraryView.Update(msg)
		return a, cmd

	case messages.ProgressLoaded, messages.ReviewLoaded:
		a.bookDetailView, cmd = a.bookDetailView.Update(msg)
		return a, cmd

	case messages.ActivityLoaded:
		a.activityView, cmd = a.activityView.Update(msg)
		return a, cmd
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewLibrary:
		a.libraryView, cmd = a.libraryView.Update(msg)
	case messages.ViewBookDetail:
		a.bookDetailView, cmd = a.bookDetailView.Update(msg)
	case messages.ViewActivity:
		a.activityView, cmd = a.activityView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewLibrary:
		return a.libraryView.View()
	case messages.ViewBookDetail:
		return a.bookDetailView.View()
	case messages.ViewActivity:
		return a.activityView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Find books:
  (type)      Search as you type
  ↑/↓         Navigate results
  ctrl+a      Add selected book to library
  esc         Back to Menu

Library:
  j/k, ↑/↓    Navigate books
  enter       Book details
  s           Cycle reading status
  d           Remove book

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	a.searchView.Close()
	return err
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Results returns the current search results.
func (a *App) Results() []domain.Book {
	return a.searchView.Results()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.searchView.SelectedIndex()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.libraryView.SetDimensions(width, height)
	a.bookDetailView.SetDimensions(width, height)
	a.activityView.SetDimensions(width, height)
}
