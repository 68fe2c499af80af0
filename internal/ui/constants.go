package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Menu item glyphs
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
)

// Text fragments
const (
	QuoteLineSeparator = "\n"
	PricePrefix        = "$"
)

// Layout sizing
const (
	TitleTextSize float32 = 32
	QuoteTextSize float32 = 24

	RefreshButtonWidth  float32 = 200
	RefreshButtonHeight float32 = 50
	RefreshButtonRadius float32 = 10

	// Mobile-specific sizing
	MobileButtonWidth  float32 = 240
	MobileButtonHeight float32 = 60

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	ErrorDialogWidth  float32 = 360
	ErrorDialogHeight float32 = 200
)

// Press animation
const (
	PressScale            float32 = 0.98
	PressAnimationTime            = 100 * time.Millisecond
	PressedButtonDarkenBy uint8   = 30
)

// Colors
var (
	ColorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorButton     = color.RGBA{R: 26, G: 153, B: 153, A: 255} // teal
)
