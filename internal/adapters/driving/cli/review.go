package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rateText string

var rateCmd = &cobra.Command{
	Use:   "rate [book-id] [rating]",
	Short: "Rate a book from 1 to 5 stars",
	Long: `Rate a book and optionally attach a written review.
Rating again overwrites the previous rating.`,
	Args: cobra.ExactArgs(2),
	RunE: runRate,
}

func init() {
	rateCmd.Flags().StringVar(&rateText, "review", "", "written review text")
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, args []string) error {
	if reviewService == nil {
		return errors.New("review service not configured")
	}

	rating, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("rating must be a number between 1 and 5")
	}

	review, err := reviewService.Rate(cmd.Context(), args[0], rating, rateText)
	if err != nil {
		return fmt.Errorf("rating book: %w", err)
	}

	cmd.Printf("Rated %d stars\n", review.Rating)
	return nil
}
