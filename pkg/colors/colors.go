package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	Black  = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	White  = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Red    = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	Green  = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
	Blue   = color.RGBA{0x00, 0x00, 0xFF, 0xFF}
	Yellow = color.RGBA{0xFF, 0xFF, 0x00, 0xFF}
	Gray   = color.RGBA{0x88, 0x88, 0x88, 0xFF}
)

var colorMap = map[string]color.RGBA{
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"gray":        Gray,
	"grey":        Gray,
	"cyan":        {0x00, 0xFF, 0xFF, 0xFF},
	"magenta":     {0xFF, 0x00, 0xFF, 0xFF},
	"transparent": {0x00, 0x00, 0x00, 0x00},
}

// Parse accepts a color name or a "#rrggbb" / "#rrggbbaa" hex string.
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colorMap[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	alpha := uint64(0xFF)
	switch len(s) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		alpha = a
		s = s[:7]
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(alpha)}, nil
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when c is not opaque.
func Hex(c color.RGBA) string {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	if c.A == 0xFF {
		return cf.Hex()
	}
	return fmt.Sprintf("%s%02x", cf.Hex(), c.A)
}

// ToRGBA converts any color.Color to non-premultiplied RGBA.
func ToRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}
