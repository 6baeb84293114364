package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/library-manager/internal/config"
	"github.com/ytget/library-manager/internal/registry"
)

func newTestUI(t *testing.T, seed bool) (*RootUI, *registry.Registry) {
	t.Helper()

	app := test.NewApp()
	window := test.NewWindow(nil)

	reg := registry.New()
	if seed {
		reg.Seed()
	}
	return NewRootUI(window, app, reg, config.NewSettings(app), zerolog.Nop()), reg
}

func TestNewRootUI(t *testing.T) {
	ui, _ := newTestUI(t, true)

	assert.Equal(t, "Library Management System", ui.window.Title())
	require.Len(t, ui.actions, 7)

	var labels []string
	for _, a := range ui.actions {
		labels = append(labels, a.button.Text)
	}
	assert.Equal(t, []string{
		"Add Book", "Display Books", "List Books by Author",
		"Borrow Book", "Return Book", "Count Books", "Exit",
	}, labels)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _ := newTestUI(t, true)

	ui.onLanguageChange("pt")

	assert.Equal(t, "pt", ui.settings.GetLanguage())
	assert.Equal(t, "Sistema de Gestão de Biblioteca", ui.window.Title())
	assert.Equal(t, "Adicionar Livro", ui.actions[0].button.Text)
}

func TestRootUI_SubmitAdd(t *testing.T) {
	ui, reg := newTestUI(t, true)

	notice := ui.submitAdd("Dune", "Frank Herbert", "412", "12.50")
	assert.False(t, notice.Warning)
	assert.Equal(t, "Book added successfully!", notice.Message)
	assert.Equal(t, 6, reg.Count())

	notice = ui.submitAdd("Dune", "", "412", "12.50")
	assert.True(t, notice.Warning)
	assert.Equal(t, "Please fill in all fields.", notice.Message)

	notice = ui.submitAdd("Dune", "Frank Herbert", "lots", "12.50")
	assert.True(t, notice.Warning)
	assert.Equal(t, 6, reg.Count())
}

func TestRootUI_DisplayBooks(t *testing.T) {
	ui, _ := newTestUI(t, false)

	books, notice := ui.displayBooks()
	assert.Nil(t, books)
	require.NotNil(t, notice)
	assert.Equal(t, "No books available.", notice.Message)

	ui.submitAdd("Dune", "Frank Herbert", "412", "12.50")
	books, notice = ui.displayBooks()
	assert.Nil(t, notice)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestRootUI_ListByAuthor(t *testing.T) {
	ui, _ := newTestUI(t, true)

	books, notice := ui.submitListByAuthor("George Orwell")
	assert.Nil(t, notice)
	require.Len(t, books, 1)
	assert.Equal(t, "1984", books[0].Title)

	_, notice = ui.submitListByAuthor("Nonexistent Author")
	require.NotNil(t, notice)
	assert.Equal(t, "No books found by this author.", notice.Message)

	_, notice = ui.submitListByAuthor("")
	require.NotNil(t, notice)
	assert.True(t, notice.Warning)
}

func TestRootUI_BorrowAndReturn(t *testing.T) {
	ui, reg := newTestUI(t, true)

	assert.Equal(t, "Book '1984' borrowed successfully by Alice.", ui.submitBorrow("1984", "Alice").Message)
	assert.Equal(t, "Book '1984' is already borrowed by Alice.", ui.submitBorrow("1984", "Bob").Message)
	assert.Equal(t, "Book 'Missing' not found.", ui.submitBorrow("Missing", "Bob").Message)
	assert.True(t, ui.submitBorrow("", "Bob").Warning)

	books, _ := reg.ListAll()
	assert.Equal(t, "Alice", books[1].Borrower)

	assert.Equal(t, "Book '1984' returned successfully.", ui.submitReturn("1984").Message)
	assert.Equal(t, "Book '1984' is not currently borrowed.", ui.submitReturn("1984").Message)
	assert.Equal(t, "Book 'Missing' not found.", ui.submitReturn("Missing").Message)
	assert.True(t, ui.submitReturn("").Warning)
}

func TestRootUI_BookTable(t *testing.T) {
	ui, reg := newTestUI(t, true)
	books, _ := reg.ListAll()

	table := newBookTable(ui.localization, books, float32(ui.settings.GetColumnWidth()))
	rows, cols := table.Length()
	assert.Equal(t, 5, rows)
	assert.Equal(t, ColumnCount, cols)
	assert.True(t, table.ShowHeaderRow)
}
