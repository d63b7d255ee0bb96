package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconFolder   = "📁"
	IconError    = "❌"
	IconGamepad  = "🎮"
	IconSync     = "⟳"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (GameRow / lists)
const (
	StatusLabelWidth float32 = 84
	RunnerLabelWidth float32 = 100

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56
	RowDefaultH  float32 = 48

	GameIconSize float32 = 32
)

// Debounce durations
const (
	SearchDebounce   = 200 * time.Millisecond
	UIUpdateDebounce = 100 * time.Millisecond
)
