// Package speedometer draws a three band arc gauge with a numeric readout and
// a needle onto an abstract Surface.
package speedometer

import "image/color"

const (
	SpeedometerSize         = 700
	CirclePaintStrokeWidth  = 128
	StartAngle              = 135
	TotalAngle              = 270
	ArrowLength             = 350
	ArrowStrokeWidth        = 10
	SpeedTextYPositionRatio = 9 / 10.0

	// ViewSize is the side of the square needed to show the whole scale,
	// the arc stroke sticks out half its width on every side.
	ViewSize = SpeedometerSize + CirclePaintStrokeWidth
)

// Speedometer owns the configuration and the current speed. It is not safe
// for concurrent use, hosts call it from their UI thread.
type Speedometer struct {
	cfg          Config
	currentSpeed float64
	dirty        bool

	onInvalidate func()
}

func New(opts ...Option) (*Speedometer, error) {
	cfg := NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Speedometer{cfg: cfg, dirty: true}, nil
}

func MustNew(opts ...Option) *Speedometer {
	s, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// OnInvalidate registers f to be called after every state change.
func (s *Speedometer) OnInvalidate(f func()) {
	s.onInvalidate = f
}

func (s *Speedometer) invalidate() {
	s.dirty = true
	if s.onInvalidate != nil {
		s.onInvalidate()
	}
}

// Configure replaces the whole configuration. Fields not set by opts get
// their default value. On error the current configuration is kept.
func (s *Speedometer) Configure(opts ...Option) error {
	return s.SetConfig(NewConfig(opts...))
}

func (s *Speedometer) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	s.invalidate()
	return nil
}

func (s *Speedometer) update(opt Option) error {
	cfg := s.cfg
	opt(&cfg)
	return s.SetConfig(cfg)
}

func (s *Speedometer) SetMaxSpeed(maxSpeed float64) error {
	return s.update(WithMaxSpeed(maxSpeed))
}

func (s *Speedometer) SetLowSpeedColor(c color.RGBA) {
	_ = s.update(WithLowSpeedColor(c))
}

func (s *Speedometer) SetMidSpeedColor(c color.RGBA) {
	_ = s.update(WithMidSpeedColor(c))
}

func (s *Speedometer) SetMaxSpeedColor(c color.RGBA) {
	_ = s.update(WithMaxSpeedColor(c))
}

func (s *Speedometer) SetArrowColor(c color.RGBA) {
	_ = s.update(WithArrowColor(c))
}

// SetCurrentSpeed stores value as is, values outside [0, MaxSpeed] put the
// needle outside the scale.
func (s *Speedometer) SetCurrentSpeed(value float64) {
	s.currentSpeed = value
	s.invalidate()
}

func (s *Speedometer) CurrentSpeed() float64 { return s.currentSpeed }

func (s *Speedometer) Config() Config { return s.cfg }

// Dirty reports whether the state changed since the last Render.
func (s *Speedometer) Dirty() bool { return s.dirty }

func (s *Speedometer) Render(surface Surface) {
	Draw(surface, s.cfg, s.currentSpeed)
	s.dirty = false
}
