// Package activity provides the recent-activity feed view for the TUI.
package activity

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

// feedLimit is how many events the feed view requests.
const feedLimit = 25

// View is the recent activity feed.
type View struct {
	styles   *styles.Styles
	activity driving.ActivityService

	events  []domain.ActivityEvent
	width   int
	height  int
	ready   bool
	err     error
	loading bool
}

// NewView creates a new activity view.
func NewView(s *styles.Styles, activity driving.ActivityService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		activity: activity,
		events:   []domain.ActivityEvent{},
	}
}

// Init initialises the view and loads the feed.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadEvents()
}

// loadEvents returns a command that loads the feed from the service.
func (v *View) loadEvents() tea.Cmd {
	return func() tea.Msg {
		if v.activity == nil {
			return messages.ActivityLoaded{Err: fmt.Errorf("activity service not available")}
		}
		events, err := v.activity.Recent(context.Background(), feedLimit)
		return messages.ActivityLoaded{Events: events, Err: err}
	}
}

// Update handles messages for the activity view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, v.loadEvents()
		}
		return v, nil

	case messages.ActivityLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.events = msg.Events
			v.err = nil
		}
		return v, nil
	}

	return v, nil
}

// View renders the activity feed.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Activity"))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading activity..."))
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

	if len(v.events) == 0 {
		b.WriteString(v.styles.Muted.Render("Nothing yet. Add a book or log some progress."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	for i := range v.events {
		b.WriteString(v.renderEvent(&v.events[i]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderEvent renders a single feed line.
func (v *View) renderEvent(event *domain.ActivityEvent) string {
	date := event.OccurredAt.Format("2006-01-02")
	line := fmt.Sprintf("  %s  %-14s %s", date, event.Kind, event.BookTitle)
	if event.Detail != "" {
		line += "  " + event.Detail
	}
	return v.styles.Normal.Render(line)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[r] reload  [esc] back  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Events returns the current feed.
func (v *View) Events() []domain.ActivityEvent {
	return v.events
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
