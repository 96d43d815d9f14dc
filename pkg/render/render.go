// Package render draws a speedometer offscreen with gg and encodes it as PNG.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/roffe/speedometer/pkg/common"
	"github.com/roffe/speedometer/pkg/speedometer"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce sync.Once
	fontErr  error
	regular  *opentype.Font
)

func loadFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		regular, fontErr = opentype.Parse(goregular.TTF)
	})
	return regular, fontErr
}

// Surface is a speedometer.Surface backed by a gg context. Logical
// coordinates span speedometer.ViewSize on each axis and are scaled to the
// pixel size given to New.
type Surface struct {
	dc     *gg.Context
	font   *opentype.Font
	faces  map[float64]font.Face
	scale  float64
	tx, ty float64
}

// New returns a size x size pixel surface filled with background, a nil
// background leaves it transparent.
func New(size int, background color.Color) (*Surface, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid image size %d", size)
	}
	f, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc := gg.NewContext(size, size)
	if background != nil {
		dc.SetColor(background)
		dc.Clear()
	}
	dc.SetLineCap(gg.LineCapButt)
	return &Surface{
		dc:    dc,
		font:  f,
		faces: make(map[float64]font.Face),
		scale: float64(size) / speedometer.ViewSize,
	}, nil
}

func (s *Surface) x(v float64) float64 { return (v + s.tx) * s.scale }
func (s *Surface) y(v float64) float64 { return (v + s.ty) * s.scale }

func (s *Surface) face(size float64) (font.Face, error) {
	size *= s.scale
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	s.faces[size] = f
	return f, nil
}

func (s *Surface) Translate(dx, dy float64) {
	s.tx += dx
	s.ty += dy
}

func (s *Surface) DrawArc(oval speedometer.Rect, startAngle, sweepAngle float64, p speedometer.Paint) {
	cx := s.x(oval.Left + oval.Width()*common.OneHalf)
	cy := s.y(oval.Top + oval.Height()*common.OneHalf)
	rx := oval.Width() * common.OneHalf * s.scale
	ry := oval.Height() * common.OneHalf * s.scale
	a1 := common.Radians(startAngle)
	a2 := common.Radians(startAngle + sweepAngle)
	s.dc.NewSubPath()
	s.dc.DrawEllipticalArc(cx, cy, rx, ry, a1, a2)
	s.paint(p)
}

func (s *Surface) TextBounds(text string, p speedometer.Paint) speedometer.Rect {
	f, err := s.face(p.TextSize)
	if err != nil {
		return speedometer.Rect{}
	}
	b, _ := font.BoundString(f, text)
	return speedometer.Rect{
		Left:   fixedToFloat(b.Min.X) / s.scale,
		Top:    fixedToFloat(b.Min.Y) / s.scale,
		Right:  fixedToFloat(b.Max.X) / s.scale,
		Bottom: fixedToFloat(b.Max.Y) / s.scale,
	}
}

func (s *Surface) DrawText(text string, x, y float64, p speedometer.Paint) {
	f, err := s.face(p.TextSize)
	if err != nil {
		return
	}
	s.dc.SetFontFace(f)
	s.dc.SetColor(p.Color)
	s.dc.DrawString(text, s.x(x), s.y(y))
}

func (s *Surface) DrawLine(x1, y1, x2, y2 float64, p speedometer.Paint) {
	s.dc.DrawLine(s.x(x1), s.y(y1), s.x(x2), s.y(y2))
	s.paint(p)
}

func (s *Surface) paint(p speedometer.Paint) {
	s.dc.SetColor(p.Color)
	if p.Style == speedometer.Stroke {
		s.dc.SetLineWidth(p.StrokeWidth * s.scale)
		s.dc.Stroke()
		return
	}
	s.dc.Fill()
}

func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

// Snapshot renders sm into a new size x size image.
func Snapshot(sm *speedometer.Speedometer, size int, background color.Color) (*Surface, error) {
	s, err := New(size, background)
	if err != nil {
		return nil, err
	}
	sm.Render(s)
	return s, nil
}

// WritePNG renders cfg at speed and writes the PNG to w.
func WritePNG(w io.Writer, cfg speedometer.Config, speed float64, size int, background color.Color) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s, err := New(size, background)
	if err != nil {
		return err
	}
	speedometer.Draw(s, cfg, speed)
	return s.EncodePNG(w)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
