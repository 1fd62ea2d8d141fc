package services

import (
	"strings"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// ScanBooks performs the local fallback search over an in-memory snapshot
// of the catalogue. A book matches when any of its title, author, genre or
// description contains the query as a case-insensitive substring. Matches
// are returned in collection order without ranking.
//
// The scan is fully synchronous and never fails; it is used when the
// remote metadata search errors.
func ScanBooks(query string, books []domain.Book) []domain.Book {
	needle := strings.ToLower(query)
	matches := make([]domain.Book, 0)

	for _, b := range books {
		if bookMatches(b, needle) {
			matches = append(matches, b)
		}
	}

	return matches
}

func bookMatches(b domain.Book, needle string) bool {
	for _, field := range []string{b.Title, b.Author, b.Genre, b.Description} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
