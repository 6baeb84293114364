package ui

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/library-manager/internal/config"
	"github.com/ytget/library-manager/internal/model"
	"github.com/ytget/library-manager/internal/registry"
)

// action is one main-window button
type action struct {
	key     string
	handler func()
	button  *widget.Button
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	catalog      registry.Catalog
	settings     *config.Settings
	localization *Localization
	log          zerolog.Logger

	actions []*action
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, catalog registry.Catalog, settings *config.Settings, logger zerolog.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		catalog:      catalog,
		settings:     settings,
		localization: localization,
		log:          logger.With().Str("component", "ui").Logger(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.actions = []*action{
		{key: KeyAddBook, handler: ui.onAddBook},
		{key: KeyDisplayBooks, handler: ui.onDisplayBooks},
		{key: KeyListByAuthor, handler: ui.onListByAuthor},
		{key: KeyBorrowBook, handler: ui.onBorrowBook},
		{key: KeyReturnBook, handler: ui.onReturnBook},
		{key: KeyCountBooks, handler: ui.onCountBooks},
		{key: KeyExit, handler: ui.onExit},
	}

	buttons := container.NewVBox()
	for _, a := range ui.actions {
		a.button = widget.NewButton(ui.localization.GetText(a.key), a.handler)
		buttons.Add(container.NewPadded(a.button))
	}

	ui.window.SetContent(container.NewPadded(buttons))
	ui.log.Debug().Int("actions", len(ui.actions)).Msg("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	for _, a := range ui.actions {
		a.button.SetText(ui.localization.GetText(a.key))
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the running UI
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.app.Settings().SetTheme(NewLibraryTheme(ui.settings.GetTextSize()))
	ui.refreshUITexts()
	ui.createMenu()

	ui.log.Info().
		Str("language", ui.settings.GetLanguage()).
		Int("column_width", ui.settings.GetColumnWidth()).
		Int("text_size", ui.settings.GetTextSize()).
		Msg("settings saved")
	ui.showNotice(infoNotice(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved)))
}

// showNotice displays a modal message. Warnings carry a warning icon.
func (ui *RootUI) showNotice(n Notice) {
	if !n.Warning {
		dialog.ShowInformation(n.Title, n.Message, ui.window)
		return
	}

	content := container.NewHBox(widget.NewIcon(theme.WarningIcon()), widget.NewLabel(n.Message))
	dialog.NewCustom(n.Title, ui.localization.GetText(KeyOK), content, ui.window).Show()
}

// showForm asks for one or more text fields. Nothing happens on cancel.
func (ui *RootUI) showForm(titleKey string, promptKeys []string, onSubmit func(values []string)) {
	entries := make([]*widget.Entry, len(promptKeys))
	items := make([]*widget.FormItem, len(promptKeys))
	for i, key := range promptKeys {
		entries[i] = widget.NewEntry()
		items[i] = widget.NewFormItem(ui.localization.GetText(key), entries[i])
	}

	form := dialog.NewForm(
		ui.localization.GetText(titleKey),
		ui.localization.GetText(KeyOK),
		ui.localization.GetText(KeyCancel),
		items,
		func(confirmed bool) {
			if !confirmed {
				ui.log.Debug().Str("form", titleKey).Msg("form cancelled")
				return
			}
			values := make([]string, len(entries))
			for i, e := range entries {
				values[i] = e.Text
			}
			onSubmit(values)
		},
		ui.window,
	)
	form.Show()
}

// onAddBook handles the Add Book button
func (ui *RootUI) onAddBook() {
	prompts := []string{KeyEnterBookName, KeyEnterAuthorName, KeyEnterPages, KeyEnterPrice}
	ui.showForm(KeyAddBook, prompts, func(v []string) {
		ui.showNotice(ui.submitAdd(v[0], v[1], v[2], v[3]))
	})
}

// submitAdd adds a book from raw form values
func (ui *RootUI) submitAdd(title, author, pages, price string) Notice {
	_, err := ui.catalog.Add(parseBookForm(title, author, pages, price))
	if err != nil {
		ui.log.Warn().Err(err).Msg("add book rejected")
	}
	return addNotice(ui.localization, err)
}

// onDisplayBooks handles the Display Books button
func (ui *RootUI) onDisplayBooks() {
	books, notice := ui.displayBooks()
	if notice != nil {
		ui.showNotice(*notice)
		return
	}
	ui.showBookTable(ui.localization.GetText(KeyBooksList), books)
}

// displayBooks returns every book, or a notice when there is nothing to show
func (ui *RootUI) displayBooks() ([]model.Book, *Notice) {
	books, outcome := ui.catalog.ListAll()
	if outcome.Status == model.StatusEmpty {
		n := emptyNotice(ui.localization)
		return nil, &n
	}
	return books, nil
}

// onListByAuthor handles the List Books by Author button
func (ui *RootUI) onListByAuthor() {
	ui.showForm(KeyListByAuthor, []string{KeyEnterAuthorName}, func(v []string) {
		books, notice := ui.submitListByAuthor(v[0])
		if notice != nil {
			ui.showNotice(*notice)
			return
		}
		ui.showBookTable(ui.localization.Textf(KeyBooksByAuthor, v[0]), books)
	})
}

// submitListByAuthor returns the author's books, or a notice when there is no table to show
func (ui *RootUI) submitListByAuthor(author string) ([]model.Book, *Notice) {
	books, outcome, err := ui.catalog.ListByAuthor(author)
	if err != nil || outcome.Status != model.StatusSuccess {
		n := authorNotice(ui.localization, err)
		return nil, &n
	}
	return books, nil
}

// onBorrowBook handles the Borrow Book button
func (ui *RootUI) onBorrowBook() {
	ui.showForm(KeyBorrowBook, []string{KeyEnterBorrowTitle, KeyEnterYourName}, func(v []string) {
		ui.showNotice(ui.submitBorrow(v[0], v[1]))
	})
}

// submitBorrow checks out a book
func (ui *RootUI) submitBorrow(title, borrower string) Notice {
	outcome, err := ui.catalog.Borrow(title, borrower)
	ui.log.Debug().Str("title", title).Str("status", outcome.Status.String()).AnErr("error", err).Msg("borrow")
	return borrowNotice(ui.localization, outcome, err)
}

// onReturnBook handles the Return Book button
func (ui *RootUI) onReturnBook() {
	ui.showForm(KeyReturnBook, []string{KeyEnterReturnTitle}, func(v []string) {
		ui.showNotice(ui.submitReturn(v[0]))
	})
}

// submitReturn checks in a book
func (ui *RootUI) submitReturn(title string) Notice {
	outcome, err := ui.catalog.Return(title)
	ui.log.Debug().Str("title", title).Str("status", outcome.Status.String()).AnErr("error", err).Msg("return")
	return returnNotice(ui.localization, outcome, err)
}

// onCountBooks handles the Count Books button
func (ui *RootUI) onCountBooks() {
	ui.showNotice(countNotice(ui.localization, ui.catalog.Count()))
}

// onExit quits the application
func (ui *RootUI) onExit() {
	ui.log.Info().Msg("exit requested")
	ui.app.Quit()
}
