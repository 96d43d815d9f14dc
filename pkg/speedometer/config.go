package speedometer

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/roffe/speedometer/pkg/colors"
)

// default values
const (
	LowSpeed        = 60
	MidSpeed        = 120
	MaxSpeed        = 180
	DefaultTextSize = 64
)

var (
	LowSpeedColor = colors.Green
	MidSpeedColor = colors.Yellow
	MaxSpeedColor = colors.Red
	TextColor     = colors.Black
	ArrowColor    = colors.Black
)

// ErrInvalidMaxSpeed is returned when the max speed can not be used as a divisor.
var ErrInvalidMaxSpeed = errors.New("max speed must be greater than zero")

// Config holds everything the gauge needs to draw besides the current speed.
// Thresholds are not checked against each other, a low speed above the mid
// speed just draws overlapping bands.
type Config struct {
	LowSpeed      float64
	MidSpeed      float64
	MaxSpeed      float64
	LowSpeedColor color.RGBA
	MidSpeedColor color.RGBA
	MaxSpeedColor color.RGBA
	TextColor     color.RGBA
	ArrowColor    color.RGBA
	TextSize      float64
}

func DefaultConfig() Config {
	return Config{
		LowSpeed:      LowSpeed,
		MidSpeed:      MidSpeed,
		MaxSpeed:      MaxSpeed,
		LowSpeedColor: LowSpeedColor,
		MidSpeedColor: MidSpeedColor,
		MaxSpeedColor: MaxSpeedColor,
		TextColor:     TextColor,
		ArrowColor:    ArrowColor,
		TextSize:      DefaultTextSize,
	}
}

// Validate checks the only precondition of the gauge geometry.
func (c Config) Validate() error {
	if !(c.MaxSpeed > 0) || math.IsInf(c.MaxSpeed, 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidMaxSpeed, c.MaxSpeed)
	}
	return nil
}

type Option func(*Config)

// NewConfig returns DefaultConfig with opts applied.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func WithLowSpeed(v float64) Option { return func(c *Config) { c.LowSpeed = v } }
func WithMidSpeed(v float64) Option { return func(c *Config) { c.MidSpeed = v } }
func WithMaxSpeed(v float64) Option { return func(c *Config) { c.MaxSpeed = v } }

func WithLowSpeedColor(col color.RGBA) Option { return func(c *Config) { c.LowSpeedColor = col } }
func WithMidSpeedColor(col color.RGBA) Option { return func(c *Config) { c.MidSpeedColor = col } }
func WithMaxSpeedColor(col color.RGBA) Option { return func(c *Config) { c.MaxSpeedColor = col } }
func WithTextColor(col color.RGBA) Option     { return func(c *Config) { c.TextColor = col } }
func WithArrowColor(col color.RGBA) Option    { return func(c *Config) { c.ArrowColor = col } }

func WithTextSize(size float64) Option { return func(c *Config) { c.TextSize = size } }

// WithConfig replaces every field with the ones from cfg.
func WithConfig(cfg Config) Option { return func(c *Config) { *c = cfg } }
