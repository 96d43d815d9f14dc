package speedometer

import (
	"fmt"
	"unicode/utf8"
)

type CommandKind int

const (
	CmdTranslate CommandKind = iota
	CmdArc
	CmdText
	CmdLine
)

func (k CommandKind) String() string {
	switch k {
	case CmdTranslate:
		return "translate"
	case CmdArc:
		return "arc"
	case CmdText:
		return "text"
	case CmdLine:
		return "line"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is one recorded draw call. Which fields are set depends on Kind:
// translate uses X1/Y1, arc uses Oval/Start/Sweep, text uses Text/X1/Y1 and
// line uses X1/Y1/X2/Y2.
type Command struct {
	Kind           CommandKind
	Oval           Rect
	Start, Sweep   float64
	Text           string
	X1, Y1, X2, Y2 float64
	Paint          Paint
}

// MeasureFunc returns text bounds relative to the baseline start.
type MeasureFunc func(text string, p Paint) Rect

// Recorder is a Surface that keeps every call in Commands.
type Recorder struct {
	Commands []Command
	measure  MeasureFunc
}

// NewRecorder returns a Recorder measuring text with measure, or with
// FixedAdvance(0.5) when measure is nil.
func NewRecorder(measure MeasureFunc) *Recorder {
	if measure == nil {
		measure = FixedAdvance(0.5)
	}
	return &Recorder{measure: measure}
}

// FixedAdvance measures every rune as advance*TextSize wide, with the cap
// height at 0.7 and the descent at 0.2 of the text size.
func FixedAdvance(advance float64) MeasureFunc {
	return func(text string, p Paint) Rect {
		return Rect{
			Right:  float64(utf8.RuneCountInString(text)) * advance * p.TextSize,
			Top:    -0.7 * p.TextSize,
			Bottom: 0.2 * p.TextSize,
		}
	}
}

func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

func (r *Recorder) Translate(dx, dy float64) {
	r.Commands = append(r.Commands, Command{Kind: CmdTranslate, X1: dx, Y1: dy})
}

func (r *Recorder) DrawArc(oval Rect, startAngle, sweepAngle float64, p Paint) {
	r.Commands = append(r.Commands, Command{Kind: CmdArc, Oval: oval, Start: startAngle, Sweep: sweepAngle, Paint: p})
}

func (r *Recorder) TextBounds(text string, p Paint) Rect {
	return r.measure(text, p)
}

func (r *Recorder) DrawText(text string, x, y float64, p Paint) {
	r.Commands = append(r.Commands, Command{Kind: CmdText, Text: text, X1: x, Y1: y, Paint: p})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, p Paint) {
	r.Commands = append(r.Commands, Command{Kind: CmdLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Paint: p})
}

// Filter returns the recorded commands of kind k.
func (r *Recorder) Filter(k CommandKind) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}
