package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Text fragments
const (
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d / %d"
)

// Layout sizing (FileRow / lists)
const (
	SizeLabelWidth float32 = 96

	RowMinWidth  float32 = 320
	RowMinHeight float32 = 28

	// Minimum visible height of one input list
	ListMinHeight float32 = 160
)

// Dialog sizing
const (
	PromptDialogWidth    float32 = 460
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360
)
