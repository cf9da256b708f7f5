package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconError    = "❌"
	IconDone     = "✅"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Layout sizing
const (
	HistoryRowMinWidth  float32 = 400
	HistoryRowMinHeight float32 = 56

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360
)

// Log behavior
const (
	MaxLogLines = 200
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
