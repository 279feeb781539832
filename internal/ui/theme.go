package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Brand palette
var (
	ColorBrandPurple  = color.NRGBA{R: 147, G: 51, B: 234, A: 255}
	ColorGradientFrom = color.NRGBA{R: 192, G: 132, B: 252, A: 255}
	ColorGradientTo   = color.NRGBA{R: 239, G: 68, B: 68, A: 255}
	ColorSuccess      = color.NRGBA{R: 34, G: 197, B: 94, A: 255}
	ColorErrorText    = color.NRGBA{R: 185, G: 28, B: 28, A: 255}
	ColorErrorFill    = color.NRGBA{R: 254, G: 226, B: 226, A: 255}
	ColorSurface      = color.NRGBA{R: 255, G: 255, B: 255, A: 230}
	ColorUploadBorder = color.NRGBA{R: 209, G: 213, B: 219, A: 255}
)

// BrandTheme applies the purple TranslateAI palette on top of the default theme
type BrandTheme struct{}

// NewBrandTheme creates the application theme
func NewBrandTheme() fyne.Theme {
	return &BrandTheme{}
}

// Color returns theme colors
func (t *BrandTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameHyperlink:
		return ColorBrandPurple
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameError:
		return ColorErrorText
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 243, G: 244, B: 246, A: 255}
		}
		return color.NRGBA{R: 17, G: 24, B: 39, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *BrandTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *BrandTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; inputs and cards get rounder corners
func (t *BrandTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	case theme.SizeNameHeadingText:
		return 22
	}

	return theme.DefaultTheme().Size(name)
}
