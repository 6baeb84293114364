package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Main window sizing
const (
	MainWindowWidth  float32 = 400
	MainWindowHeight float32 = 500
)

// Book table window sizing
const (
	TableWindowWidth  float32 = 700
	TableWindowHeight float32 = 400
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 320
)

// Book table columns, in display order
const (
	ColBookName = iota
	ColAuthor
	ColPages
	ColPrice
	ColBorrower

	ColumnCount
)
