package speedo

import (
	"image"
	"image/color"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/speedometer/pkg/ebus"
	"github.com/roffe/speedometer/pkg/render"
	"github.com/roffe/speedometer/pkg/speedometer"
)

type Speedo struct {
	widget.BaseWidget

	sm *speedometer.Speedometer

	face        *canvas.Raster
	displayText *canvas.Text
	needle      *canvas.Line

	// arcs recorded by the last draw, read by the raster generator
	arcs []arc

	minsize fyne.Size
}

func New(opts ...speedometer.Option) (*Speedo, error) {
	sm, err := speedometer.New(opts...)
	if err != nil {
		return nil, err
	}
	s := &Speedo{
		sm:      sm,
		minsize: fyne.NewSize(100, 100),
	}
	s.ExtendBaseWidget(s)

	s.displayText = &canvas.Text{TextStyle: fyne.TextStyle{Monospace: true}}
	s.needle = &canvas.Line{}
	s.face = canvas.NewRaster(s.drawScale)
	s.face.ScaleMode = canvas.ImageScaleSmooth

	sm.OnInvalidate(s.Refresh)
	return s, nil
}

// SetValue moves the needle, it must be called from the fyne thread.
func (s *Speedo) SetValue(value float64) {
	if value == s.sm.CurrentSpeed() {
		return
	}
	s.sm.SetCurrentSpeed(value)
}

func (s *Speedo) Value() float64 { return s.sm.CurrentSpeed() }

func (s *Speedo) Configure(opts ...speedometer.Option) error { return s.sm.Configure(opts...) }

func (s *Speedo) SetConfig(cfg speedometer.Config) error { return s.sm.SetConfig(cfg) }

func (s *Speedo) GetConfig() speedometer.Config { return s.sm.Config() }

func (s *Speedo) Speedometer() *speedometer.Speedometer { return s.sm }

// Subscribe feeds values published on topic into the gauge.
func (s *Speedo) Subscribe(b *ebus.Bus, topic string) func() {
	return b.SubscribeFunc(topic, func(v float64) {
		fyne.Do(func() { s.SetValue(v) })
	})
}

func (s *Speedo) drawScale(w, h int) image.Image {
	side := min(w, h)
	rs, err := render.New(max(side, 1), nil)
	if err != nil {
		fyne.LogError("Failed to create scale surface", err)
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	for _, a := range s.arcs {
		rs.DrawArc(a.oval, a.start, a.sweep, a.paint)
	}
	return rs.Image()
}

func (s *Speedo) CreateRenderer() fyne.WidgetRenderer {
	return &speedoRenderer{Speedo: s}
}

type speedoRenderer struct {
	*Speedo
	size    fyne.Size
	surface surface
	objects []fyne.CanvasObject
}

func (r *speedoRenderer) Layout(space fyne.Size) {
	if r.size == space {
		return
	}
	r.size = space
	side := fyne.Min(space.Width, space.Height)
	r.surface.scale = side / speedometer.ViewSize
	r.surface.origin = fyne.NewPos((space.Width-side)*0.5, (space.Height-side)*0.5)
	r.face.Move(r.surface.origin)
	r.face.Resize(fyne.NewSize(side, side))
	r.draw(true)
}

func (r *speedoRenderer) draw(force bool) {
	r.surface.reset(r.Speedo)
	r.sm.Render(&r.surface)
	if force || !slices.Equal(r.surface.arcs, r.arcs) {
		r.arcs = slices.Clone(r.surface.arcs)
		canvas.Refresh(r.face)
	}
	canvas.Refresh(r.displayText)
	canvas.Refresh(r.needle)
}

func (r *speedoRenderer) MinSize() fyne.Size { return r.minsize }

func (r *speedoRenderer) Refresh() {
	if r.size.IsZero() {
		return
	}
	r.draw(false)
}

func (r *speedoRenderer) Destroy() {}

func (r *speedoRenderer) Objects() []fyne.CanvasObject {
	if r.objects == nil {
		r.objects = []fyne.CanvasObject{r.face, r.displayText, r.needle}
	}
	return r.objects
}

type arc struct {
	oval         speedometer.Rect
	start, sweep float64
	paint        speedometer.Paint
}

// surface maps speedometer draw calls onto the widget's canvas objects.
// Arcs are only collected, the raster draws them.
type surface struct {
	w      *Speedo
	scale  float32
	origin fyne.Position
	tx, ty float64
	arcs   []arc
}

func (s *surface) reset(w *Speedo) {
	s.w = w
	s.tx, s.ty = 0, 0
	s.arcs = s.arcs[:0]
}

func (s *surface) pos(x, y float64) fyne.Position {
	return fyne.NewPos(
		s.origin.X+float32(x+s.tx)*s.scale,
		s.origin.Y+float32(y+s.ty)*s.scale,
	)
}

func (s *surface) Translate(dx, dy float64) {
	s.tx += dx
	s.ty += dy
}

func (s *surface) DrawArc(oval speedometer.Rect, startAngle, sweepAngle float64, p speedometer.Paint) {
	oval.Left += s.tx
	oval.Right += s.tx
	oval.Top += s.ty
	oval.Bottom += s.ty
	s.arcs = append(s.arcs, arc{oval: oval, start: startAngle, sweep: sweepAngle, paint: p})
}

func (s *surface) measure(text string, p speedometer.Paint) (fyne.Size, float32) {
	return fyne.MeasureText(text, float32(p.TextSize)*s.scale, s.w.displayText.TextStyle)
}

func (s *surface) TextBounds(text string, p speedometer.Paint) speedometer.Rect {
	if s.scale <= 0 {
		return speedometer.Rect{}
	}
	size, baseline := s.measure(text, p)
	k := float64(s.scale)
	return speedometer.Rect{
		Top:    -float64(baseline) / k,
		Right:  float64(size.Width) / k,
		Bottom: float64(size.Height-baseline) / k,
	}
}

func (s *surface) DrawText(text string, x, y float64, p speedometer.Paint) {
	t := s.w.displayText
	_, baseline := s.measure(text, p)
	t.Text = text
	t.Color = p.Color
	t.TextSize = float32(p.TextSize) * s.scale
	t.Move(s.pos(x, y).SubtractXY(0, baseline))
	t.Resize(t.MinSize())
}

func (s *surface) DrawLine(x1, y1, x2, y2 float64, p speedometer.Paint) {
	l := s.w.needle
	l.Position1 = s.pos(x1, y1)
	l.Position2 = s.pos(x2, y2)
	l.StrokeWidth = float32(p.StrokeWidth) * s.scale
	l.StrokeColor = color.Color(p.Color)
}
