package speedometer_test

import (
	"math"
	"testing"

	"github.com/roffe/speedometer/pkg/speedometer"
)

func render(t *testing.T, s *speedometer.Speedometer, measure speedometer.MeasureFunc) *speedometer.Recorder {
	t.Helper()
	rec := speedometer.NewRecorder(measure)
	s.Render(rec)
	return rec
}

func TestRenderOrder(t *testing.T) {
	rec := render(t, speedometer.MustNew(), nil)
	want := []speedometer.CommandKind{
		speedometer.CmdTranslate,
		speedometer.CmdArc, speedometer.CmdArc, speedometer.CmdArc,
		speedometer.CmdText,
		speedometer.CmdLine,
	}
	if len(rec.Commands) != len(want) {
		t.Fatalf("got %d commands, want %d", len(rec.Commands), len(want))
	}
	for i, c := range rec.Commands {
		if c.Kind != want[i] {
			t.Errorf("command %d = %v, want %v", i, c.Kind, want[i])
		}
	}
	tr := rec.Commands[0]
	if tr.X1 != 64 || tr.Y1 != 64 {
		t.Errorf("translate = (%v, %v), want (64, 64)", tr.X1, tr.Y1)
	}
}

func TestRenderArcs(t *testing.T) {
	rec := render(t, speedometer.MustNew(), nil)
	arcs := rec.Filter(speedometer.CmdArc)
	wantStart := []float64{135, 225, 315}
	for i, a := range arcs {
		if a.Oval != (speedometer.Rect{Right: 700, Bottom: 700}) {
			t.Errorf("arc %d oval = %+v", i, a.Oval)
		}
		if !almostEqual(a.Start, wantStart[i]) || !almostEqual(a.Sweep, 90) {
			t.Errorf("arc %d = start %v sweep %v, want start %v sweep 90", i, a.Start, a.Sweep, wantStart[i])
		}
		if a.Paint.Style != speedometer.Stroke || a.Paint.StrokeWidth != 128 {
			t.Errorf("arc %d paint = %+v", i, a.Paint)
		}
	}
}

func TestRenderNeedle(t *testing.T) {
	s := speedometer.MustNew()
	s.SetCurrentSpeed(90)
	rec := render(t, s, nil)
	lines := rec.Filter(speedometer.CmdLine)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	l := lines[0]
	if l.X1 != 350 || l.Y1 != 350 {
		t.Errorf("needle starts at (%v, %v), want center", l.X1, l.Y1)
	}
	if !almostEqual(l.X2, 350) || !almostEqual(l.Y2, 0) {
		t.Errorf("needle ends at (%v, %v), want (350, 0)", l.X2, l.Y2)
	}
	if l.Paint.StrokeWidth != 10 || l.Paint.Style != speedometer.Stroke || l.Paint.Color != speedometer.ArrowColor {
		t.Errorf("needle paint = %+v", l.Paint)
	}
	if got := math.Hypot(l.X2-l.X1, l.Y2-l.Y1); !almostEqual(got, 350) {
		t.Errorf("needle length = %v, want 350", got)
	}
}

func TestRenderText(t *testing.T) {
	const width, left, bottom = 120.0, 3.0, 7.0
	measure := func(text string, p speedometer.Paint) speedometer.Rect {
		return speedometer.Rect{Left: left, Top: -30, Right: left + width, Bottom: bottom}
	}
	s := speedometer.MustNew(speedometer.WithTextSize(32))
	s.SetCurrentSpeed(42)
	rec := render(t, s, measure)
	texts := rec.Filter(speedometer.CmdText)
	if len(texts) != 1 {
		t.Fatalf("got %d texts, want 1", len(texts))
	}
	txt := texts[0]
	if txt.Text != "42/180" {
		t.Errorf("text = %q, want %q", txt.Text, "42/180")
	}
	if want := 700/2.0 - width/2 - left; !almostEqual(txt.X1, want) {
		t.Errorf("text x = %v, want %v", txt.X1, want)
	}
	if want := 700*0.9 - bottom; !almostEqual(txt.Y1, want) {
		t.Errorf("text y = %v, want %v", txt.Y1, want)
	}
	if txt.Paint.TextSize != 32 || txt.Paint.Color != speedometer.TextColor {
		t.Errorf("text paint = %+v", txt.Paint)
	}
}

func TestReconfigureKeepsSpeed(t *testing.T) {
	s := speedometer.MustNew()
	s.SetCurrentSpeed(90)
	if err := s.Configure(speedometer.WithMaxSpeed(360)); err != nil {
		t.Fatal(err)
	}
	if s.CurrentSpeed() != 90 {
		t.Fatalf("CurrentSpeed() = %v, want 90", s.CurrentSpeed())
	}
	rec := render(t, s, nil)
	l := rec.Filter(speedometer.CmdLine)[0]
	// 135 + 270*90/360 = 202.5 degrees
	wantX := 350 + 350*math.Cos(202.5*math.Pi/180)
	wantY := 350 + 350*math.Sin(202.5*math.Pi/180)
	if !almostEqual(l.X2, wantX) || !almostEqual(l.Y2, wantY) {
		t.Errorf("needle end = (%v, %v), want (%v, %v)", l.X2, l.Y2, wantX, wantY)
	}
	arcs := rec.Filter(speedometer.CmdArc)
	if !almostEqual(arcs[0].Sweep, 45) {
		t.Errorf("low band sweep = %v, want 45", arcs[0].Sweep)
	}
	if txt := rec.Filter(speedometer.CmdText)[0].Text; txt != "90/360" {
		t.Errorf("text = %q, want 90/360", txt)
	}
}
