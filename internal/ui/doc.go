package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the automation service and renders the workbook
// tasks, run controls, progress, and settings. All UI strings are localized via
// Localization.
