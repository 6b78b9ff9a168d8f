package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconStop     = "⏹"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconCopy     = "📋"
	IconError    = "❌"
	IconDone     = "✔"
	IconWaiting  = "⏳"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing (TaskRow / lists)
const (
	StatusLabelWidth float32 = 96
	RowNumberWidth   float32 = 44

	RowMinWidth  float32 = 420
	RowMinHeight float32 = 56
	RowDefaultH  float32 = 56

	LogPaneHeight float32 = 140
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 460
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)

// Log pane behavior
const (
	MaxLogLines = 500
)
