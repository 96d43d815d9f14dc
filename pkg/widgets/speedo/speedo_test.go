package speedo

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/speedometer"
)

func near(a, b float32) bool {
	d := a - b
	return d < 0.01 && d > -0.01
}

func newRendered(t *testing.T, size fyne.Size, opts ...speedometer.Option) (*Speedo, *speedoRenderer) {
	t.Helper()
	test.NewApp()
	s, err := New(opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	r := test.WidgetRenderer(s).(*speedoRenderer)
	r.Layout(size)
	return s, r
}

func TestNeedleFollowsValue(t *testing.T) {
	s, _ := newRendered(t, fyne.NewSize(speedometer.ViewSize, speedometer.ViewSize))
	if p := s.needle.Position1; !near(p.X, 414) || !near(p.Y, 414) {
		t.Errorf("needle starts at %v, want (414, 414)", p)
	}
	s.SetValue(90)
	if p := s.needle.Position2; !near(p.X, 414) || !near(p.Y, 64) {
		t.Errorf("needle ends at %v, want (414, 64)", p)
	}
	if s.needle.StrokeWidth != speedometer.ArrowStrokeWidth {
		t.Errorf("needle width = %v, want %v", s.needle.StrokeWidth, speedometer.ArrowStrokeWidth)
	}
	if s.displayText.Text != "90/180" {
		t.Errorf("text = %q, want 90/180", s.displayText.Text)
	}
}

func TestScaledLayout(t *testing.T) {
	// 414 wide square centered in a 600 wide space, half scale
	s, _ := newRendered(t, fyne.NewSize(600, 414))
	if p := s.needle.Position1; !near(p.X, 300) || !near(p.Y, 207) {
		t.Errorf("needle starts at %v, want (300, 207)", p)
	}
	if !near(s.needle.StrokeWidth, 5) {
		t.Errorf("needle width = %v, want 5", s.needle.StrokeWidth)
	}
	if p := s.face.Position(); !near(p.X, 93) || !near(p.Y, 0) {
		t.Errorf("face at %v, want (93, 0)", p)
	}
}

func TestTextCentered(t *testing.T) {
	s, _ := newRendered(t, fyne.NewSize(speedometer.ViewSize, speedometer.ViewSize))
	txt := s.displayText
	mid := txt.Position().X + txt.MinSize().Width/2
	if mid < 412 || mid > 416 {
		t.Errorf("text center = %v, want about 414", mid)
	}
	if txt.Color != speedometer.TextColor {
		t.Errorf("text color = %v, want %v", txt.Color, speedometer.TextColor)
	}
}

func TestConfigureRedraws(t *testing.T) {
	s, r := newRendered(t, fyne.NewSize(speedometer.ViewSize, speedometer.ViewSize))
	s.SetValue(90)
	if err := s.Configure(speedometer.WithMaxSpeed(360), speedometer.WithArrowColor(colors.Blue)); err != nil {
		t.Fatal(err)
	}
	if s.displayText.Text != "90/360" {
		t.Errorf("text = %q, want 90/360", s.displayText.Text)
	}
	if s.needle.StrokeColor != colors.Blue {
		t.Errorf("needle color = %v, want blue", s.needle.StrokeColor)
	}
	if len(r.arcs) != 3 {
		t.Fatalf("got %d arcs, want 3", len(r.arcs))
	}
	if a := r.arcs[0]; a.sweep != 45 || a.oval.Left != 64 {
		t.Errorf("low arc = %+v, want sweep 45 at left 64", a)
	}
	if err := s.Configure(speedometer.WithMaxSpeed(0)); err == nil {
		t.Error("Configure() with zero max speed succeeded unexpectedly")
	}
	if s.GetConfig().MaxSpeed != 360 {
		t.Errorf("MaxSpeed = %v, want 360", s.GetConfig().MaxSpeed)
	}
}

func TestDrawScaleImage(t *testing.T) {
	s, _ := newRendered(t, fyne.NewSize(speedometer.ViewSize, speedometer.ViewSize))
	img := s.drawScale(speedometer.ViewSize, speedometer.ViewSize)
	if got := colors.ToRGBA(img.At(64, 414)); got != colors.Green {
		t.Errorf("low band pixel = %v, want green", got)
	}
	if got := colors.ToRGBA(img.At(414, 414)); got.A != 0 {
		t.Errorf("center pixel = %v, want transparent", got)
	}
}
