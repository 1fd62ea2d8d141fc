package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for books",
	Long: `Searches the Open Library catalogue for books matching the query.
Falls back to scanning your local library when the metadata API is unreachable.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts := domain.SearchOptions{
		Limit: searchLimit,
	}

	results, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.Book) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.Book) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	width := terminalWidth()

	cmd.Println("Results:")
	cmd.Println()
	for i, book := range results {
		line := fmt.Sprintf("  [%d] %s", i+1, book.DisplayTitle())
		if book.PublishedYear > 0 {
			line += fmt.Sprintf(" (%d)", book.PublishedYear)
		}
		cmd.Println(truncateLine(line, width))

		if book.Genre != "" {
			cmd.Println(truncateLine("      "+book.Genre, width))
		}
		if book.Description != "" {
			cmd.Println(truncateLine("      "+book.Description, width))
		}
		cmd.Println()
	}

	return nil
}

// terminalWidth returns the stdout width, or a sane default when not a TTY.
func terminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 100
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 100
	}
	return width
}

func truncateLine(s string, width int) string {
	if width < 8 {
		width = 8
	}
	runes := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(runes) <= width {
		return string(runes)
	}
	return string(runes[:width-3]) + "..."
}
