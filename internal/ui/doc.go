package ui

// Package ui contains the Fyne-based desktop user interface. It collects input
// through form dialogs, calls the book registry and reports every outcome in a
// modal dialog or a book table window. All UI strings are localized via
// Localization.
