package speedometer

import "image/color"

type PaintStyle int

const (
	Fill PaintStyle = iota
	Stroke
)

func (s PaintStyle) String() string {
	if s == Stroke {
		return "stroke"
	}
	return "fill"
}

type Paint struct {
	Color       color.RGBA
	Style       PaintStyle
	StrokeWidth float64
	TextSize    float64
}

// Rect is an axis aligned rectangle. For text bounds the origin is the start
// of the baseline, so Top is negative and Bottom is the descent.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Surface is the drawing target. Angles are in degrees, zero points along
// the positive x axis and positive sweeps turn clockwise on screen (y grows
// downwards).
type Surface interface {
	// Translate moves the origin for every following call.
	Translate(dx, dy float64)
	DrawArc(oval Rect, startAngle, sweepAngle float64, p Paint)
	TextBounds(text string, p Paint) Rect
	// DrawText draws text with its baseline starting at x, y.
	DrawText(text string, x, y float64, p Paint)
	DrawLine(x1, y1, x2, y2 float64, p Paint)
}
