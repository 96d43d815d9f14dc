// Package prefs persists the gauge configuration in fyne preferences.
package prefs

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/speedometer"
)

const (
	prefsLowSpeed       = "speedometer.low"
	prefsMidSpeed       = "speedometer.mid"
	prefsMaxSpeed       = "speedometer.max"
	prefsLowSpeedColor  = "speedometer.lowColor"
	prefsMidSpeedColor  = "speedometer.midColor"
	prefsMaxSpeedColor  = "speedometer.maxColor"
	prefsTextColor      = "speedometer.textColor"
	prefsArrowColor     = "speedometer.arrowColor"
	prefsTextSize       = "speedometer.textSize"
	prefsUseMPH         = "speedometer.useMPH"
	prefsColorBlindMode = "speedometer.colorBlindMode"
)

type Settings struct {
	Gauge          speedometer.Config
	UseMPH         bool
	ColorBlindMode colors.ColorBlindMode
}

// Load reads the stored settings. Missing keys and values that do not parse
// or validate fall back to the defaults.
func Load(p fyne.Preferences) Settings {
	def := speedometer.DefaultConfig()
	cfg := speedometer.Config{
		LowSpeed:      p.FloatWithFallback(prefsLowSpeed, def.LowSpeed),
		MidSpeed:      p.FloatWithFallback(prefsMidSpeed, def.MidSpeed),
		MaxSpeed:      p.FloatWithFallback(prefsMaxSpeed, def.MaxSpeed),
		LowSpeedColor: loadColor(p, prefsLowSpeedColor, def.LowSpeedColor),
		MidSpeedColor: loadColor(p, prefsMidSpeedColor, def.MidSpeedColor),
		MaxSpeedColor: loadColor(p, prefsMaxSpeedColor, def.MaxSpeedColor),
		TextColor:     loadColor(p, prefsTextColor, def.TextColor),
		ArrowColor:    loadColor(p, prefsArrowColor, def.ArrowColor),
		TextSize:      p.FloatWithFallback(prefsTextSize, def.TextSize),
	}
	if err := cfg.Validate(); err != nil {
		log.Println("stored speedometer settings:", err)
		cfg.MaxSpeed = def.MaxSpeed
	}
	return Settings{
		Gauge:          cfg,
		UseMPH:         p.BoolWithFallback(prefsUseMPH, false),
		ColorBlindMode: colors.StringToColorBlindMode(p.StringWithFallback(prefsColorBlindMode, colors.Normal)),
	}
}

func loadColor(p fyne.Preferences, key string, fallback color.RGBA) color.RGBA {
	s := p.String(key)
	if s == "" {
		return fallback
	}
	c, err := colors.Parse(s)
	if err != nil {
		log.Printf("stored %s: %v", key, err)
		return fallback
	}
	return c
}

// Save stores s, it refuses configurations that do not validate.
func Save(p fyne.Preferences, s Settings) error {
	cfg := s.Gauge
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.SetFloat(prefsLowSpeed, cfg.LowSpeed)
	p.SetFloat(prefsMidSpeed, cfg.MidSpeed)
	p.SetFloat(prefsMaxSpeed, cfg.MaxSpeed)
	p.SetString(prefsLowSpeedColor, colors.Hex(cfg.LowSpeedColor))
	p.SetString(prefsMidSpeedColor, colors.Hex(cfg.MidSpeedColor))
	p.SetString(prefsMaxSpeedColor, colors.Hex(cfg.MaxSpeedColor))
	p.SetString(prefsTextColor, colors.Hex(cfg.TextColor))
	p.SetString(prefsArrowColor, colors.Hex(cfg.ArrowColor))
	p.SetFloat(prefsTextSize, cfg.TextSize)
	p.SetBool(prefsUseMPH, s.UseMPH)
	p.SetString(prefsColorBlindMode, s.ColorBlindMode.String())
	return nil
}
