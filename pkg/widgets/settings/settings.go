package settings

import (
	"errors"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/prefs"
	"github.com/roffe/speedometer/pkg/speedometer"
	"github.com/roffe/speedometer/pkg/widgets/numericentry"
)

const (
	colorLow = iota
	colorMid
	colorMax
	colorText
	colorArrow
	numColors
)

var colorNames = [numColors]string{"Low speed", "Mid speed", "Max speed", "Text", "Arrow"}

type Widget struct {
	widget.BaseWidget

	onApply func(prefs.Settings) error

	lowEntry       *numericentry.Widget
	midEntry       *numericentry.Widget
	maxEntry       *numericentry.Widget
	textSize       *widget.Slider
	textSizeValue  *widget.Label
	useMPH         *widget.Check
	colorBlindMode *widget.Select
	errorLabel     *widget.Label

	colors   [numColors]color.RGBA
	swatches [numColors]*canvas.Rectangle

	container *fyne.Container
}

// New returns a settings form filled from s. onApply is called with the
// edited settings when the user presses Apply.
func New(s prefs.Settings, onApply func(prefs.Settings) error) *Widget {
	sw := &Widget{
		onApply: onApply,
	}
	sw.ExtendBaseWidget(sw)

	sw.lowEntry = numericentry.New()
	sw.midEntry = numericentry.New()
	sw.maxEntry = numericentry.New()

	sw.textSizeValue = widget.NewLabel("")
	sw.textSize = widget.NewSlider(8, 160)
	sw.textSize.Step = 1
	sw.textSize.OnChanged = func(f float64) {
		sw.textSizeValue.SetText(fmt.Sprintf("%.0f", f))
	}

	sw.useMPH = widget.NewCheck("Show mph", nil)
	sw.colorBlindMode = widget.NewSelect(colors.SupportedColorBlindModes[:], func(s string) {
		low, mid, high := colors.BandColors(colors.StringToColorBlindMode(s))
		sw.setColor(colorLow, low)
		sw.setColor(colorMid, mid)
		sw.setColor(colorMax, high)
	})

	sw.errorLabel = widget.NewLabel("")
	sw.errorLabel.Importance = widget.DangerImportance

	form := widget.NewForm(
		widget.NewFormItem("Low speed", sw.lowEntry),
		widget.NewFormItem("Mid speed", sw.midEntry),
		widget.NewFormItem("Max speed", sw.maxEntry),
		widget.NewFormItem("Text size", container.NewBorder(nil, nil, nil, sw.textSizeValue, sw.textSize)),
		widget.NewFormItem("Palette", sw.colorBlindMode),
	)
	for i := 0; i < numColors; i++ {
		sw.swatches[i] = canvas.NewRectangle(color.Transparent)
		sw.swatches[i].SetMinSize(fyne.NewSize(24, 24))
		form.Append(colorNames[i]+" color", container.NewHBox(sw.swatches[i], sw.newColorButton(i)))
	}
	form.Append("", sw.useMPH)

	sw.container = container.NewVBox(
		form,
		sw.errorLabel,
		widget.NewButton("Apply", sw.apply),
	)

	sw.Load(s)
	return sw
}

// Load fills the form from s without applying it.
func (sw *Widget) Load(s prefs.Settings) {
	cfg := s.Gauge
	sw.lowEntry.SetFloat(cfg.LowSpeed)
	sw.midEntry.SetFloat(cfg.MidSpeed)
	sw.maxEntry.SetFloat(cfg.MaxSpeed)
	sw.textSize.SetValue(cfg.TextSize)
	sw.useMPH.SetChecked(s.UseMPH)
	// set the palette first, its callback overwrites the band colors
	sw.colorBlindMode.SetSelectedIndex(int(s.ColorBlindMode))
	sw.setColor(colorLow, cfg.LowSpeedColor)
	sw.setColor(colorMid, cfg.MidSpeedColor)
	sw.setColor(colorMax, cfg.MaxSpeedColor)
	sw.setColor(colorText, cfg.TextColor)
	sw.setColor(colorArrow, cfg.ArrowColor)
	sw.errorLabel.SetText("")
}

// Settings returns the values currently in the form.
func (sw *Widget) Settings() (prefs.Settings, error) {
	low, err := sw.lowEntry.Float()
	if err != nil {
		return prefs.Settings{}, fmt.Errorf("low speed: %w", err)
	}
	mid, err := sw.midEntry.Float()
	if err != nil {
		return prefs.Settings{}, fmt.Errorf("mid speed: %w", err)
	}
	maxSpeed, err := sw.maxEntry.Float()
	if err != nil {
		return prefs.Settings{}, fmt.Errorf("max speed: %w", err)
	}
	cfg := speedometer.NewConfig(
		speedometer.WithLowSpeed(low),
		speedometer.WithMidSpeed(mid),
		speedometer.WithMaxSpeed(maxSpeed),
		speedometer.WithTextSize(sw.textSize.Value),
		speedometer.WithLowSpeedColor(sw.colors[colorLow]),
		speedometer.WithMidSpeedColor(sw.colors[colorMid]),
		speedometer.WithMaxSpeedColor(sw.colors[colorMax]),
		speedometer.WithTextColor(sw.colors[colorText]),
		speedometer.WithArrowColor(sw.colors[colorArrow]),
	)
	if err := cfg.Validate(); err != nil {
		return prefs.Settings{}, err
	}
	return prefs.Settings{
		Gauge:          cfg,
		UseMPH:         sw.useMPH.Checked,
		ColorBlindMode: colors.ColorBlindMode(sw.colorBlindMode.SelectedIndex()),
	}, nil
}

func (sw *Widget) apply() {
	s, err := sw.Settings()
	if err == nil && sw.onApply != nil {
		err = sw.onApply(s)
	}
	if err != nil {
		var msg string
		if errors.Is(err, speedometer.ErrInvalidMaxSpeed) {
			msg = "Max speed must be greater than zero"
		} else {
			msg = err.Error()
		}
		sw.errorLabel.SetText(msg)
		return
	}
	sw.errorLabel.SetText("")
}

func (sw *Widget) setColor(idx int, c color.RGBA) {
	sw.colors[idx] = c
	if sw.swatches[idx] != nil {
		sw.swatches[idx].FillColor = c
		sw.swatches[idx].Refresh()
	}
}

func (sw *Widget) newColorButton(idx int) *widget.Button {
	return widget.NewButton("Pick", func() {
		picker := colorpicker.New(250, colorpicker.StyleHueCircle)
		picker.SetColor(sw.colors[idx])
		picker.SetOnChanged(func(c color.Color) {
			sw.setColor(idx, colors.ToRGBA(c))
		})

		c := fyne.CurrentApp().Driver().CanvasForObject(sw)
		var modal *widget.PopUp
		modal = widget.NewModalPopUp(container.NewVBox(
			widget.NewLabel(colorNames[idx]+" color"),
			picker,
			widget.NewButton("Close", func() {
				modal.Hide()
			}),
		), c)
		modal.Show()
	})
}

func (sw *Widget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sw.container)
}
