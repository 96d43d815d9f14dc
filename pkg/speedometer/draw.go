package speedometer

import (
	"image/color"
	"math"
	"strconv"

	"github.com/roffe/speedometer/pkg/common"
)

type Segment struct {
	From, To   float64
	StartAngle float64
	SweepAngle float64
	Color      color.RGBA
}

// Segments returns the low, mid and max bands in drawing order.
func Segments(cfg Config) [3]Segment {
	return [3]Segment{
		segment(cfg, cfg.LowSpeedColor, 0, cfg.LowSpeed),
		segment(cfg, cfg.MidSpeedColor, cfg.LowSpeed, cfg.MidSpeed),
		segment(cfg, cfg.MaxSpeedColor, cfg.MidSpeed, cfg.MaxSpeed),
	}
}

func segment(cfg Config, col color.RGBA, previousSpeed, nextSpeed float64) Segment {
	return Segment{
		From:       previousSpeed,
		To:         nextSpeed,
		StartAngle: StartAngle + TotalAngle/cfg.MaxSpeed*previousSpeed,
		SweepAngle: TotalAngle / cfg.MaxSpeed * (nextSpeed - previousSpeed),
		Color:      col,
	}
}

// NeedleAngle maps speed linearly onto [StartAngle, StartAngle+TotalAngle].
func NeedleAngle(speed, maxSpeed float64) float64 {
	return StartAngle + TotalAngle*speed/maxSpeed
}

// NeedleEnd returns the needle tip relative to the scale origin.
func NeedleEnd(speed, maxSpeed float64) (x, y float64) {
	sin, cos := math.Sincos(common.Radians(NeedleAngle(speed, maxSpeed)))
	center := SpeedometerSize * common.OneHalf
	return center + ArrowLength*cos, center + ArrowLength*sin
}

// TextOrigin returns the baseline start that centers text with the given
// bounds horizontally and puts its bottom at the readout line.
func TextOrigin(bounds Rect) (x, y float64) {
	x = SpeedometerSize*common.OneHalf - bounds.Width()*common.OneHalf - bounds.Left
	y = SpeedometerSize*SpeedTextYPositionRatio - bounds.Bottom
	return x, y
}

func FormatSpeed(currentSpeed, maxSpeed float64) string {
	buf := make([]byte, 0, 16)
	buf = strconv.AppendFloat(buf, currentSpeed, 'f', -1, 64)
	buf = append(buf, '/')
	buf = strconv.AppendFloat(buf, maxSpeed, 'f', -1, 64)
	return string(buf)
}

// Draw renders scale, readout and needle in that order. cfg must be valid,
// see Config.Validate.
func Draw(s Surface, cfg Config, currentSpeed float64) {
	s.Translate(CirclePaintStrokeWidth*common.OneHalf, CirclePaintStrokeWidth*common.OneHalf)
	DrawScale(s, cfg)
	DrawSpeedText(s, cfg, currentSpeed)
	DrawArrow(s, cfg, currentSpeed)
}

func DrawScale(s Surface, cfg Config) {
	oval := Rect{Right: SpeedometerSize, Bottom: SpeedometerSize}
	p := Paint{Style: Stroke, StrokeWidth: CirclePaintStrokeWidth}
	for _, seg := range Segments(cfg) {
		p.Color = seg.Color
		s.DrawArc(oval, seg.StartAngle, seg.SweepAngle, p)
	}
}

func DrawSpeedText(s Surface, cfg Config, currentSpeed float64) {
	text := FormatSpeed(currentSpeed, cfg.MaxSpeed)
	p := Paint{Color: cfg.TextColor, Style: Fill, TextSize: cfg.TextSize}
	x, y := TextOrigin(s.TextBounds(text, p))
	s.DrawText(text, x, y, p)
}

func DrawArrow(s Surface, cfg Config, currentSpeed float64) {
	center := SpeedometerSize * common.OneHalf
	endX, endY := NeedleEnd(currentSpeed, cfg.MaxSpeed)
	s.DrawLine(center, center, endX, endY, Paint{
		Color:       cfg.ArrowColor,
		Style:       Stroke,
		StrokeWidth: ArrowStrokeWidth,
	})
}
