package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// LibraryTheme enlarges text for the button-driven main window
type LibraryTheme struct {
	textSize float32
}

// NewLibraryTheme creates a theme with the given base text size
func NewLibraryTheme(textSize int) fyne.Theme {
	return &LibraryTheme{textSize: float32(textSize)}
}

// Color returns theme colors
func (t *LibraryTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *LibraryTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *LibraryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; text sizes scale from the base text size
func (t *LibraryTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return t.textSize
	case theme.SizeNameHeadingText:
		return t.textSize + 6
	case theme.SizeNameSubHeadingText:
		return t.textSize + 2
	case theme.SizeNameCaptionText:
		return t.textSize - 3
	}

	return theme.DefaultTheme().Size(name)
}
