package windows

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/roffe/speedometer/pkg/ebus"
	"github.com/roffe/speedometer/pkg/prefs"
	"github.com/roffe/speedometer/pkg/speedometer"
)

func TestApplySettings(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	mw, err := NewMainWindow(a, ebus.New())
	if err != nil {
		t.Fatalf("NewMainWindow() failed: %v", err)
	}
	mw.gauge.SetValue(90)

	s := mw.settings
	s.Gauge = speedometer.NewConfig(speedometer.WithMaxSpeed(300))
	s.UseMPH = true
	if err := mw.applySettings(s); err != nil {
		t.Fatalf("applySettings() failed: %v", err)
	}
	if mw.slider.Max != 300 {
		t.Errorf("slider max = %v, want 300", mw.slider.Max)
	}
	if mw.gauge.Value() != 90 {
		t.Errorf("gauge value = %v, want 90 after reconfigure", mw.gauge.Value())
	}
	if mw.topic() != ebus.TopicSpeedMPH {
		t.Errorf("topic = %q, want %q", mw.topic(), ebus.TopicSpeedMPH)
	}
	if got := prefs.Load(a.Preferences()); got != s {
		t.Errorf("stored settings = %+v, want %+v", got, s)
	}

	bad := s
	bad.Gauge.MaxSpeed = 0
	if err := mw.applySettings(bad); !errors.Is(err, speedometer.ErrInvalidMaxSpeed) {
		t.Errorf("applySettings() error = %v, want ErrInvalidMaxSpeed", err)
	}
	if mw.gauge.GetConfig().MaxSpeed != 300 {
		t.Errorf("max speed changed to %v by a rejected config", mw.gauge.GetConfig().MaxSpeed)
	}
}

func TestSnapshot(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	mw, err := NewMainWindow(a, ebus.New())
	if err != nil {
		t.Fatal(err)
	}
	data, err := mw.snapshot()
	if err != nil {
		t.Fatalf("snapshot() failed: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("snapshot() did not return a PNG")
	}
}
