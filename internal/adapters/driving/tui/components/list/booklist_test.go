package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/tui/styles"
	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

func testBooks() []domain.Book {
	return []domain.Book{
		{
			ID:            "b1",
			Title:         "Dune",
			Author:        "Frank Herbert",
			Genre:         "Science Fiction",
			PublishedYear: 1965,
			Status:        domain.StatusReading,
		},
		{
			ID:          "b2",
			Title:       "Piranesi",
			Author:      "Susanna Clarke",
			Description: "A man explores an endless house",
			Status:      domain.StatusWantToRead,
		},
		{
			ID:     "b3",
			Title:  "The Dispossessed",
			Author: "Ursula K. Le Guin",
			Status: domain.StatusFinished,
		},
	}
}

func TestNewBookList(t *testing.T) {
	s := styles.DefaultStyles()
	list := NewBookList(s, false)

	require.NotNil(t, list)
	assert.Equal(t, 0, list.Count())
	assert.True(t, list.IsEmpty())
	assert.Equal(t, 0, list.Selected())
}

func TestNewBookList_NilStyles(t *testing.T) {
	list := NewBookList(nil, false)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
}

func TestBookList_SetBooks(t *testing.T) {
	list := NewBookList(nil, false)

	list.SetBooks(testBooks())

	assert.Equal(t, 3, list.Count())
	assert.False(t, list.IsEmpty())
	assert.Equal(t, 0, list.Selected())
}

func TestBookList_SetBooks_ResetsSelection(t *testing.T) {
	list := NewBookList(nil, false)
	list.SetBooks(testBooks())
	list.SetSelected(2)

	list.SetBooks(testBooks()[:1])

	assert.Equal(t, 0, list.Selected())
}

func TestBookList_MoveDown(t *testing.T) {
	list := NewBookList(nil, false)
	list.SetBooks(testBooks())

	list.MoveDown()
	assert.Equal(t, 1, list.Selected())

	list.MoveDown()
	list.MoveDown() // Boundary
	assert.Equal(t, 2, list.Selected())
}

func TestBookList_MoveUp(t *testing.T) {
	list := NewBookList(nil, false)
	list.SetBooks(testBooks())
	list.SetSelected(2)

	list.MoveUp()
	assert.Equal(t, 1, list.Selected())

	list.MoveUp()
	list.MoveUp() // Boundary
	assert.Equal(t, 0, list.Selected())
}

func TestBookList_Update_ArrowKeys(t *testing.T) {
	list := NewBookList(nil, false)
	list.SetBooks(testBooks())

	list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, list.Selected())

	list.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, list.Selected())
}

func TestBookList_SelectedBook(t *testing.T) {
	list := NewBookList(nil, false)

	assert.Nil(t, list.SelectedBook())

	list.SetBooks(testBooks())
	list.SetSelected(1)

	book := list.SelectedBook()
	require.NotNil(t, book)
	assert.Equal(t, "b2", book.ID)
}

func TestBookList_SetSelected_OutOfRange(t *testing.T) {
	list := NewBookList(nil, false)
	list.SetBooks(testBooks())

	list.SetSelected(99)
	assert.Equal(t, 0, list.Selected())

	list.SetSelected(-1)
	assert.Equal(t, 0, list.Selected())
}

func TestBookList_View_Empty(t *testing.T) {
	list := NewBookList(nil, false)
	list.SetDimensions(80, 24)

	assert.Contains(t, list.View(), "No books")
}

func TestBookList_View_RendersTitlesAndDetail(t *testing.T) {
	list := NewBookList(nil, false)
	list.SetDimensions(80, 24)
	list.SetBooks(testBooks())

	output := list.View()

	assert.Contains(t, output, "Books (3)")
	assert.Contains(t, output, "Dune")
	assert.Contains(t, output, "Science Fiction")
	assert.Contains(t, output, "1965")
	assert.Contains(t, output, "endless house")
}

func TestBookList_View_ShowStatus(t *testing.T) {
	list := NewBookList(nil, true)
	list.SetDimensions(80, 24)
	list.SetBooks(testBooks())

	output := list.View()

	assert.Contains(t, output, "reading")
}

func TestBookList_View_WindowFollowsSelection(t *testing.T) {
	list := NewBookList(nil, false)
	// Room for only two visible rows.
	list.SetDimensions(80, 10)
	list.SetBooks(testBooks())
	list.SetSelected(2)

	output := list.View()

	assert.Contains(t, output, "The Dispossessed")
	assert.NotContains(t, output, "Dune -")
}

func TestBookList_SetDimensions(t *testing.T) {
	list := NewBookList(nil, false)

	list.SetDimensions(100, 40)

	assert.Equal(t, 100, list.Width())
	assert.Equal(t, 40, list.Height())
}
