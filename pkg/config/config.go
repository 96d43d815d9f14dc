// Package config loads a speedometer configuration from a file and the
// environment.
package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/speedometer"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "SPEEDOMETER"

const (
	KeyLowSpeed      = "low_speed"
	KeyMidSpeed      = "mid_speed"
	KeyMaxSpeed      = "max_speed"
	KeyLowSpeedColor = "low_speed_color"
	KeyMidSpeedColor = "mid_speed_color"
	KeyMaxSpeedColor = "max_speed_color"
	KeyTextColor     = "text_color"
	KeyArrowColor    = "arrow_color"
	KeyTextSize      = "text_size"
)

// File mirrors speedometer.Config with colors as names or hex strings.
type File struct {
	LowSpeed      float64 `mapstructure:"low_speed"`
	MidSpeed      float64 `mapstructure:"mid_speed"`
	MaxSpeed      float64 `mapstructure:"max_speed"`
	LowSpeedColor string  `mapstructure:"low_speed_color"`
	MidSpeedColor string  `mapstructure:"mid_speed_color"`
	MaxSpeedColor string  `mapstructure:"max_speed_color"`
	TextColor     string  `mapstructure:"text_color"`
	ArrowColor    string  `mapstructure:"arrow_color"`
	TextSize      float64 `mapstructure:"text_size"`
}

// Gauge converts f into a validated speedometer.Config.
func (f File) Gauge() (speedometer.Config, error) {
	cfg := speedometer.Config{
		LowSpeed: f.LowSpeed,
		MidSpeed: f.MidSpeed,
		MaxSpeed: f.MaxSpeed,
		TextSize: f.TextSize,
	}
	for _, c := range []struct {
		key string
		in  string
		out *color.RGBA
	}{
		{KeyLowSpeedColor, f.LowSpeedColor, &cfg.LowSpeedColor},
		{KeyMidSpeedColor, f.MidSpeedColor, &cfg.MidSpeedColor},
		{KeyMaxSpeedColor, f.MaxSpeedColor, &cfg.MaxSpeedColor},
		{KeyTextColor, f.TextColor, &cfg.TextColor},
		{KeyArrowColor, f.ArrowColor, &cfg.ArrowColor},
	} {
		col, err := colors.Parse(c.in)
		if err != nil {
			return speedometer.Config{}, fmt.Errorf("%s: %w", c.key, err)
		}
		*c.out = col
	}
	if err := cfg.Validate(); err != nil {
		return speedometer.Config{}, err
	}
	return cfg, nil
}

type Loader struct {
	v *viper.Viper
}

// New returns a Loader reading path, an empty path means defaults and
// environment only.
func New(path string) *Loader {
	v := viper.New()
	def := speedometer.DefaultConfig()
	v.SetDefault(KeyLowSpeed, def.LowSpeed)
	v.SetDefault(KeyMidSpeed, def.MidSpeed)
	v.SetDefault(KeyMaxSpeed, def.MaxSpeed)
	v.SetDefault(KeyLowSpeedColor, colors.Hex(def.LowSpeedColor))
	v.SetDefault(KeyMidSpeedColor, colors.Hex(def.MidSpeedColor))
	v.SetDefault(KeyMaxSpeedColor, colors.Hex(def.MaxSpeedColor))
	v.SetDefault(KeyTextColor, colors.Hex(def.TextColor))
	v.SetDefault(KeyArrowColor, colors.Hex(def.ArrowColor))
	v.SetDefault(KeyTextSize, def.TextSize)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	}
	return &Loader{v: v}
}

// BindFlag lets a command line flag override key when it is set.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	return l.v.BindPFlag(key, flag)
}

func (l *Loader) Load() (speedometer.Config, error) {
	if l.v.ConfigFileUsed() != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return speedometer.Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	var f File
	if err := l.v.Unmarshal(&f); err != nil {
		return speedometer.Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg, err := f.Gauge()
	if err != nil {
		return speedometer.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Watch calls f with the reloaded configuration every time the config file
// changes. It does nothing without a config file.
func (l *Loader) Watch(f func(speedometer.Config, fsnotify.Op, error)) {
	if l.v.ConfigFileUsed() == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := l.Load()
		f(cfg, e.Op, err)
	})
	l.v.WatchConfig()
}
