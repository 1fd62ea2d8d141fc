package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

var (
	addAuthor string
	addGenre  string
	addISBN   string
	addPages  int
	addYear   int
	addStatus string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a book to your library",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the books in your library",
	RunE:  runList,
}

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a book from your library",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var statusCmd = &cobra.Command{
	Use:   "status [id] [status]",
	Short: "Change a book's reading status",
	Long: `Change where a book sits in the reading lifecycle.

Valid statuses: want_to_read, reading, finished, abandoned`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

func init() {
	addCmd.Flags().StringVar(&addAuthor, "author", "", "author name")
	addCmd.Flags().StringVar(&addGenre, "genre", "", "genre or subject")
	addCmd.Flags().StringVar(&addISBN, "isbn", "", "ISBN-13")
	addCmd.Flags().IntVar(&addPages, "pages", 0, "page count")
	addCmd.Flags().IntVar(&addYear, "year", 0, "publication year")
	addCmd.Flags().StringVar(&addStatus, "status", string(domain.StatusWantToRead), "initial reading status")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(statusCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	status := domain.ReadingStatus(addStatus)
	if !status.Valid() {
		return fmt.Errorf("invalid status %q", addStatus)
	}

	book, err := libraryService.Add(cmd.Context(), domain.Book{
		Title:         args[0],
		Author:        addAuthor,
		Genre:         addGenre,
		ISBN:          addISBN,
		PageCount:     addPages,
		PublishedYear: addYear,
		Status:        status,
	})
	if err != nil {
		return fmt.Errorf("adding book: %w", err)
	}

	cmd.Printf("Added %s (%s)\n", book.DisplayTitle(), book.ID)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	books, err := libraryService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing books: %w", err)
	}

	if len(books) == 0 {
		cmd.Println("Your library is empty. Use 'stacks add' or 'stacks search' to get started.")
		return nil
	}

	width := terminalWidth()
	for _, book := range books {
		cmd.Println(truncateLine(fmt.Sprintf("  %-14s %s", book.Status, book.DisplayTitle()), width))
		cmd.Println(truncateLine(fmt.Sprintf("  %-14s id: %s", "", book.ID), width))
	}
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	if err := libraryService.Remove(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no book with id %q", args[0])
		}
		return fmt.Errorf("removing book: %w", err)
	}

	cmd.Printf("Removed %s\n", args[0])
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	status := domain.ReadingStatus(args[1])
	if !status.Valid() {
		return fmt.Errorf("invalid status %q", args[1])
	}

	book, err := libraryService.SetStatus(cmd.Context(), args[0], status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no book with id %q", args[0])
		}
		return fmt.Errorf("updating status: %w", err)
	}

	cmd.Printf("%s is now %s\n", book.DisplayTitle(), book.Status)
	return nil
}
