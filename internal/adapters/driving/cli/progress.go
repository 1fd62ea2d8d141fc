package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	progressPage    int
	progressPercent int
	progressNote    string
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Log and review reading progress",
}

var progressLogCmd = &cobra.Command{
	Use:   "log [book-id]",
	Short: "Log a progress update",
	Long: `Record how far you have got in a book, either by page or by percent.

Examples:
  stacks progress log 2f1c... --page 120
  stacks progress log 2f1c... --percent 40 --note "slow middle section"`,
	Args: cobra.ExactArgs(1),
	RunE: runProgressLog,
}

var progressHistoryCmd = &cobra.Command{
	Use:   "history [book-id]",
	Short: "Show progress history for a book",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgressHistory,
}

func init() {
	progressLogCmd.Flags().IntVar(&progressPage, "page", 0, "page reached")
	progressLogCmd.Flags().IntVar(&progressPercent, "percent", 0, "percent completed")
	progressLogCmd.Flags().StringVar(&progressNote, "note", "", "optional note")

	progressCmd.AddCommand(progressLogCmd)
	progressCmd.AddCommand(progressHistoryCmd)
	rootCmd.AddCommand(progressCmd)
}

func runProgressLog(cmd *cobra.Command, args []string) error {
	if progressService == nil {
		return errors.New("progress service not configured")
	}

	entry, err := progressService.Log(cmd.Context(), args[0], progressPage, progressPercent, progressNote)
	if err != nil {
		return fmt.Errorf("logging progress: %w", err)
	}

	if entry.Page > 0 {
		cmd.Printf("Logged page %d (%d%%)\n", entry.Page, entry.Percent)
	} else {
		cmd.Printf("Logged %d%%\n", entry.Percent)
	}
	return nil
}

func runProgressHistory(cmd *cobra.Command, args []string) error {
	if progressService == nil {
		return errors.New("progress service not configured")
	}

	entries, err := progressService.History(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No progress logged yet.")
		return nil
	}

	for _, entry := range entries {
		line := fmt.Sprintf("  %s", entry.LoggedAt.Format("2006-01-02 15:04"))
		if entry.Page > 0 {
			line += fmt.Sprintf("  page %d", entry.Page)
		}
		if entry.Percent > 0 {
			line += fmt.Sprintf("  %d%%", entry.Percent)
		}
		if entry.Note != "" {
			line += "  " + entry.Note
		}
		cmd.Println(line)
	}
	return nil
}
