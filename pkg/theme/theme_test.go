package theme

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestSpeedoTheme(t *testing.T) {
	th := SpeedoTheme{}
	for _, v := range []fyne.ThemeVariant{theme.VariantLight, theme.VariantDark} {
		if got := th.Color(theme.ColorNameBackground, v); got != color.White {
			t.Errorf("background for variant %d = %v, want white", v, got)
		}
	}
	if got := th.Color(theme.ColorNameForeground, theme.VariantDark); got != theme.DefaultTheme().Color(theme.ColorNameForeground, theme.VariantLight) {
		t.Errorf("foreground does not follow the light variant: %v", got)
	}
	if got := th.Size(theme.SizeNameSeparatorThickness); got != 0 {
		t.Errorf("separator thickness = %v, want 0", got)
	}
	if got := th.Size(theme.SizeNameText); got != theme.DefaultTheme().Size(theme.SizeNameText) {
		t.Errorf("text size = %v, want default", got)
	}
}
