package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

func scanFixture() []domain.Book {
	return []domain.Book{
		{ID: "1", Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction"},
		{ID: "2", Title: "1984", Author: "George Orwell", Genre: "Dystopia", Description: "Big Brother is watching"},
		{ID: "3", Title: "The Dispossessed", Author: "Ursula K. Le Guin", Genre: "Science Fiction"},
	}
}

func TestScanBooks_MatchesTitle(t *testing.T) {
	matches := ScanBooks("du", scanFixture())

	require.Len(t, matches, 1)
	assert.Equal(t, "Dune", matches[0].Title)
}

func TestScanBooks_CaseInsensitive(t *testing.T) {
	lower := ScanBooks("dune", scanFixture())
	upper := ScanBooks("DUNE", scanFixture())
	mixed := ScanBooks("DuNe", scanFixture())

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
	require.Len(t, lower, 1)
}

func TestScanBooks_MatchesAnyField(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"author", "orwell", []string{"1984"}},
		{"genre", "science fiction", []string{"Dune", "The Dispossessed"}},
		{"description", "big brother", []string{"1984"}},
		{"shared genre substring", "fiction", []string{"Dune", "The Dispossessed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := ScanBooks(tt.query, scanFixture())
			titles := make([]string, len(matches))
			for i, b := range matches {
				titles[i] = b.Title
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestScanBooks_CollectionOrderPreserved(t *testing.T) {
	// Both books match "e"; order must follow the collection, not rank.
	matches := ScanBooks("e", scanFixture())

	require.Len(t, matches, 3)
	assert.Equal(t, "Dune", matches[0].Title)
	assert.Equal(t, "1984", matches[1].Title)
	assert.Equal(t, "The Dispossessed", matches[2].Title)
}

func TestScanBooks_NoMatches(t *testing.T) {
	matches := ScanBooks("zzzzz", scanFixture())

	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestScanBooks_EmptyCollection(t *testing.T) {
	assert.Empty(t, ScanBooks("dune", nil))
	assert.Empty(t, ScanBooks("dune", []domain.Book{}))
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "dune", "dune"},
		{"leading and trailing space", "  dune  ", "dune"},
		{"tabs and newlines", "\tdune\n", "dune"},
		{"whitespace only", "   \t ", ""},
		{"empty", "", ""},
		{"case preserved", "  DuNe ", "DuNe"},
		{"interior space preserved", " frank herbert ", "frank herbert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuery(tt.raw))
		})
	}
}
