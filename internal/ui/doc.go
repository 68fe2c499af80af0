package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It owns the quote label, wires the refresh button and menu to the quote
// fetcher, and reports fetch failures in a modal dialog. All UI strings are
// localized via Localization.
