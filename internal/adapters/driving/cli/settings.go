package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting and persist it to the config file.

Available keys:
  limit       - maximum number of search results
  debounce    - incremental-search debounce window in milliseconds
  metadata-url - base URL of the book-metadata API
  data-dir    - data directory override`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	cmd.Println("Settings:")
	cmd.Printf("  limit:        %d\n", settings.SearchLimit)
	cmd.Printf("  debounce:     %dms\n", settings.DebounceMS)
	cmd.Printf("  metadata-url: %s\n", settings.MetadataBaseURL)
	if settings.DataDir != "" {
		cmd.Printf("  data-dir:     %s\n", settings.DataDir)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "limit":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("limit must be a positive number")
		}
		settings.SearchLimit = n
	case "debounce":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("debounce must be a positive number of milliseconds")
		}
		settings.DebounceMS = n
	case "metadata-url":
		settings.MetadataBaseURL = value
	case "data-dir":
		settings.DataDir = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	if err := settingsService.Save(cmd.Context(), settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}
