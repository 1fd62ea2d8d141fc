// Package search provides the type-ahead search view for the TUI.
package search

import (
	"context"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/components/input"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/components/list"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/components/status"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/keymap"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/messages"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/styles"
	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driving"
)

// stateBuffer is the capacity of the state notification channel. Notify
// runs under the orchestrator lock, so the push must never block; when
// the buffer is full the oldest pending state is dropped, which is safe
// because only the latest state matters for rendering.
const stateBuffer = 64

// View is the incremental search view: every keystroke feeds the
// orchestrator, and state notifications flow back as Bubbletea messages.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.BookList
	statusbar *status.Bar

	search  driving.IncrementalSearch
	library driving.LibraryService
	states  chan domain.SearchState
	ctx     context.Context

	width  int
	height int
	ready  bool
	err    error

	// lastSent avoids re-feeding the orchestrator when a key event did
	// not change the input text.
	lastSent string
}

// NewView creates a new search view. The factory is called once with a
// notify callback that forwards orchestrator states into the view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	factory func(notify func(domain.SearchState)) driving.IncrementalSearch,
	library driving.LibraryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		list:      list.NewBookList(s, false),
		statusbar: status.NewBar(s, km),
		library:   library,
		states:    make(chan domain.SearchState, stateBuffer),
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}

	if factory != nil {
		v.search = factory(v.pushState)
	}

	return v
}

// pushState forwards an orchestrator state into the channel without
// blocking. Called under the orchestrator lock.
func (v *View) pushState(state domain.SearchState) {
	for {
		select {
		case v.states <- state:
			return
		default:
			// Full: drop the oldest pending state and retry.
			select {
			case <-v.states:
			default:
			}
		}
	}
}

// awaitState returns a command that blocks until the next state
// notification arrives.
func (v *View) awaitState() tea.Cmd {
	return func() tea.Msg {
		state, ok := <-v.states
		if !ok {
			return nil
		}
		return messages.SearchStateChanged{State: state}
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and starts listening for search states.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.awaitState())
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchStateChanged:
		v.applyState(msg.State)
		// Keep listening for the next notification.
		return v, v.awaitState()

	case messages.BookAdded:
		if msg.Err != nil {
			v.statusbar.SetMessage("Add: " + msg.Err.Error())
		} else {
			v.statusbar.SetMessage("Added " + msg.Book.DisplayTitle())
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.feedOrchestrator()
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc dismisses the search box and returns to the menu.
	if msg.Type == tea.KeyEsc {
		v.Reset()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	key := msg.String()

	// Result navigation leaves the input text untouched.
	if keymap.Matches(key, v.keymap.Up) {
		v.list.MoveUp()
		return v, nil
	}
	if keymap.Matches(key, v.keymap.Down) {
		v.list.MoveDown()
		return v, nil
	}

	// Add the selected result to the library.
	if keymap.Matches(key, v.keymap.Add) {
		return v, v.addSelected()
	}

	// Everything else is typing: update the input and feed the
	// orchestrator if the text changed.
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.feedOrchestrator()
	return v, cmd
}

// feedOrchestrator pushes the input text as a keystroke event when it
// differs from what was last sent.
func (v *View) feedOrchestrator() {
	if v.search == nil {
		return
	}
	value := v.input.Value()
	if value == v.lastSent {
		return
	}
	v.lastSent = value
	v.search.Input(value)
}

// addSelected adds the highlighted result to the library.
func (v *View) addSelected() tea.Cmd {
	book := v.list.SelectedBook()
	if book == nil || v.library == nil {
		return nil
	}
	selected := *book
	return func() tea.Msg {
		added, err := v.library.Add(v.ctx, selected)
		if err != nil {
			return messages.BookAdded{Err: err}
		}
		return messages.BookAdded{Book: *added}
	}
}

// applyState renders an orchestrator state transition.
func (v *View) applyState(state domain.SearchState) {
	v.err = nil
	switch state.Phase {
	case domain.SearchIdle:
		v.list.SetBooks(nil)
		v.statusbar.SetState(status.StateIdle)
		v.statusbar.SetResultCount(0)
	case domain.SearchSearching:
		v.statusbar.SetState(status.StateSearching)
	case domain.SearchCompleted:
		v.list.SetBooks(state.Results)
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetResultCount(len(state.Results))
	}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("Find books")
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View())

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// Results returns the currently displayed results.
func (v *View) Results() []domain.Book {
	return v.list.Books()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedBook returns the currently selected result.
func (v *View) SelectedBook() *domain.Book {
	return v.list.SelectedBook()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// SearchState returns the orchestrator's current state.
func (v *View) SearchState() domain.SearchState {
	if v.search == nil {
		return domain.IdleSearchState()
	}
	return v.search.State()
}

// Reset returns the view to an empty input. The orchestrator keeps its
// result cache so re-opening the search box stays fast.
func (v *View) Reset() {
	v.input.SetValue("")
	v.lastSent = ""
	v.list.SetBooks(nil)
	v.err = nil
	v.statusbar.Clear()
	if v.search != nil {
		v.search.Reset()
	}
}

// Close dismisses the search box for good, clearing the result cache.
func (v *View) Close() {
	if v.search != nil {
		v.search.Close()
	}
}
