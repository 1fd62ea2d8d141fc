package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var activityLimit int

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent reading activity",
	RunE:  runActivity,
}

func init() {
	activityCmd.Flags().IntVarP(&activityLimit, "limit", "n", 20, "maximum number of events")
	rootCmd.AddCommand(activityCmd)
}

func runActivity(cmd *cobra.Command, _ []string) error {
	if activityService == nil {
		return errors.New("activity service not configured")
	}

	events, err := activityService.Recent(cmd.Context(), activityLimit)
	if err != nil {
		return fmt.Errorf("loading activity: %w", err)
	}

	if len(events) == 0 {
		cmd.Println("No activity yet.")
		return nil
	}

	for _, event := range events {
		line := fmt.Sprintf("  %s  %-14s %s", event.OccurredAt.Format("2006-01-02 15:04"), event.Kind, event.BookTitle)
		if event.Detail != "" {
			line += "  " + event.Detail
		}
		cmd.Println(line)
	}
	return nil
}
