package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/library-manager/internal/model"
)

// newBookTable builds a read-only table of books with a header row
func newBookTable(l *Localization, books []model.Book, columnWidth float32) *widget.Table {
	headers := columnHeaders(l)

	table := widget.NewTable(
		func() (int, int) {
			return len(books), ColumnCount
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Alignment = fyne.TextAlignCenter
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			if id.Row < 0 || id.Row >= len(books) {
				return
			}
			if label, ok := obj.(*widget.Label); ok {
				label.SetText(bookCell(l, books[id.Row], id.Col))
			}
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.Alignment = fyne.TextAlignCenter
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		if id.Col < 0 || id.Col >= len(headers) {
			return
		}
		if label, ok := obj.(*widget.Label); ok {
			label.SetText(headers[id.Col])
		}
	}

	for col := 0; col < ColumnCount; col++ {
		table.SetColumnWidth(col, columnWidth)
	}
	return table
}

// showBookTable opens a separate window listing the given books
func (ui *RootUI) showBookTable(title string, books []model.Book) {
	w := ui.app.NewWindow(title)
	w.Resize(fyne.NewSize(TableWindowWidth, TableWindowHeight))
	w.SetContent(newBookTable(ui.localization, books, float32(ui.settings.GetColumnWidth())))
	w.Show()

	ui.log.Debug().Str("window", title).Int("rows", len(books)).Msg("book table opened")
}
