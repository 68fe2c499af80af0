package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// QuoteTheme is a dark theme with a black background and teal accents
type QuoteTheme struct{}

// NewQuoteTheme creates a new quote theme
func NewQuoteTheme() fyne.Theme {
	return &QuoteTheme{}
}

// Color returns theme colors. The window is always dark regardless of variant.
func (t *QuoteTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameForeground:
		return ColorText
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorButton
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return color.RGBA{R: 28, G: 28, B: 30, A: 255}
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 40, G: 40, B: 42, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *QuoteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *QuoteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with roomier padding
func (t *QuoteTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInnerPadding:
		return 10
	case theme.SizeNameText:
		return 16
	case theme.SizeNameHeadingText:
		return TitleTextSize
	case theme.SizeNameSubHeadingText:
		return QuoteTextSize
	}

	return theme.DefaultTheme().Size(name)
}
