package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SpeedoTheme is the default light theme on a plain white background so the
// gauge on screen matches exported images.
type SpeedoTheme struct{}

var _ fyne.Theme = SpeedoTheme{}

func (m SpeedoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.White
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0x21, G: 0x99, B: 0xF3, A: 255}
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

func (m SpeedoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m SpeedoTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m SpeedoTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 0
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInputRadius:
		return 5
	}
	return theme.DefaultTheme().Size(name)
}
