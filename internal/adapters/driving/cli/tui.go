package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	// SearchFactory builds an incremental search per search box.
	SearchFactory tui.SearchFactory
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Stacks.

The TUI provides a visual interface for finding books as you type,
managing your library, and reviewing your reading activity.

Controls:
  ↑/↓      - Navigate results
  Enter    - Select
  Ctrl+A   - Add selected book to library
  Esc      - Back / Cancel
  q        - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Build ports from the wired services
	ports := &tui.Ports{
		Library:  libraryService,
		Progress: progressService,
		Review:   reviewService,
		Activity: activityService,
		Settings: settingsService,
	}
	if tuiConfig != nil {
		ports.NewSearch = tuiConfig.SearchFactory
	}

	// Create the TUI app
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	// Set up context from command
	app.WithContext(cmd.Context())

	// Create and run the bubbletea program
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
