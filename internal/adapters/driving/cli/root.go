// Package cli implements the cobra command tree that drives the core
// services from the terminal.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driving"
	"github.com/bookstack-labs/stacks-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services the commands run against, injected by main before Execute.
var (
	searchService   driving.SearchService
	libraryService  driving.LibraryService
	progressService driving.ProgressService
	reviewService   driving.ReviewService
	activityService driving.ActivityService
	settingsService driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stacks",
	Short: "Track your reading from the terminal",
	Long: `Stacks is a personal reading tracker.

Search for books on Open Library, keep a catalogue of what you want to
read and what you have read, log progress, and rate what you finish.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services bundles the driving ports the command tree needs.
type Services struct {
	Search   driving.SearchService
	Library  driving.LibraryService
	Progress driving.ProgressService
	Review   driving.ReviewService
	Activity driving.ActivityService
	Settings driving.SettingsService
}

// SetServices wires the driving ports into the command tree.
func SetServices(s Services) {
	searchService = s.Search
	libraryService = s.Library
	progressService = s.Progress
	reviewService = s.Review
	activityService = s.Activity
	settingsService = s.Settings
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, which
// commands receive via cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
