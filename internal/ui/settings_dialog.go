package ui

import (
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/library-manager/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect   *widget.Select
	columnWidthEntry *widget.Entry
	textSizeEntry    *widget.Entry
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been written to preferences.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	slices.Sort(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.columnWidthEntry = widget.NewEntry()
	sd.columnWidthEntry.SetPlaceHolder(strconv.Itoa(config.MinColumnWidth) + "-" + strconv.Itoa(config.MaxColumnWidth))

	sd.textSizeEntry = widget.NewEntry()
	sd.textSizeEntry.SetPlaceHolder(strconv.Itoa(config.MinTextSize) + "-" + strconv.Itoa(config.MaxTextSize))

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyColumnWidth)+":"),
		sd.columnWidthEntry,

		widget.NewLabel(sd.localization.GetText(KeyTextSize)+":"),
		sd.textSizeEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.columnWidthEntry.SetText(strconv.Itoa(sd.settings.GetColumnWidth()))
	sd.textSizeEntry.SetText(strconv.Itoa(sd.settings.GetTextSize()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if width, err := strconv.Atoi(sd.columnWidthEntry.Text); err == nil {
		sd.settings.SetColumnWidth(width)
	}

	if size, err := strconv.Atoi(sd.textSizeEntry.Text); err == nil {
		sd.settings.SetTextSize(size)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
