package colors

import (
	"image/color"
	"strings"
)

type ColorBlindMode int

var SupportedColorBlindModes = [...]string{
	Normal,
	Universal,
	Protanopia,
	Tritanopia,
	Deuteranomaly,
}

const (
	Normal        = "Normal"
	Universal     = "Universal"
	Protanopia    = "Protanopia"
	Tritanopia    = "Tritanopia"
	Deuteranomaly = "Deuteranomaly"
	Unknown       = "Unknown"
)

const (
	ModeNormal        ColorBlindMode = iota // Green → Yellow → Red
	ModeUniversal                           // Blue → Gray → Orange
	ModeProtanopia                          // Blue → White → Brown
	ModeTritanopia                          // Teal → Gray → Red
	ModeDeuteranomaly                       // Blue → Beige → Brown
)

func (m ColorBlindMode) String() string {
	switch m {
	case ModeNormal:
		return Normal
	case ModeUniversal:
		return Universal
	case ModeProtanopia:
		return Protanopia
	case ModeTritanopia:
		return Tritanopia
	case ModeDeuteranomaly:
		return Deuteranomaly
	default:
		return Unknown
	}
}

func StringToColorBlindMode(s string) ColorBlindMode {
	for i, name := range SupportedColorBlindModes {
		if strings.EqualFold(s, name) {
			return ColorBlindMode(i)
		}
	}
	return ModeNormal
}

// BandColors returns the low, mid and max band colors for mode.
func BandColors(mode ColorBlindMode) (low, mid, high color.RGBA) {
	switch mode {
	case ModeUniversal:
		return color.RGBA{33, 102, 172, 255}, // #2166AC
			color.RGBA{247, 247, 247, 255}, // #F7F7F7
			color.RGBA{255, 165, 0, 255} // #FFA500
	case ModeProtanopia:
		return color.RGBA{5, 113, 176, 255}, // #0571B0
			color.RGBA{247, 247, 247, 255}, // #F7F7F7
			color.RGBA{150, 75, 0, 255} // #964B00
	case ModeTritanopia:
		return color.RGBA{0, 128, 128, 255}, // #008080
			color.RGBA{247, 247, 247, 255}, // #F7F7F7
			color.RGBA{215, 48, 39, 255} // #D73027
	case ModeDeuteranomaly:
		return color.RGBA{0x4A, 0x90, 0xE2, 255}, // medium blue
			color.RGBA{0xF5, 0xE6, 0xB3, 255}, // beige
			color.RGBA{0x8B, 0x45, 0x13, 255} // dark brown
	default:
		return Green, Yellow, Red
	}
}
