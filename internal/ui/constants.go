package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Layout sizing
const (
	CardMaxWidth     float32 = 448
	UploadAreaHeight float32 = 120
	LoginDialogWidth float32 = 420

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 360

	// Mobile-specific sizing
	MobileButtonWidth     float32 = 60
	MobileRowButtonHeight float32 = 52
)

// Typography
const (
	BrandTextSize    float32 = 20
	HeroTitleSize    float32 = 30
	HeroSubtitleSize float32 = 18
)

// Feature cards per row on desktop
const (
	FeatureColumns = 3
)
