package windows

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/speedometer/pkg/ebus"
	"github.com/roffe/speedometer/pkg/prefs"
	"github.com/roffe/speedometer/pkg/widgets/speedo"
)

type MainWindow struct {
	fyne.Window
	app fyne.App
	bus *ebus.Bus

	settings prefs.Settings

	gauge      *speedo.Speedo
	slider     *widget.Slider
	speedLabel *widget.Label
	unsub      func()

	content *fyne.Container
}

func NewMainWindow(app fyne.App, bus *ebus.Bus) (*MainWindow, error) {
	mw := &MainWindow{
		Window:     app.NewWindow("Speedometer"),
		app:        app,
		bus:        bus,
		settings:   prefs.Load(app.Preferences()),
		speedLabel: widget.NewLabel("0"),
	}

	gauge, err := speedo.New()
	if err != nil {
		return nil, err
	}
	if err := gauge.SetConfig(mw.settings.Gauge); err != nil {
		return nil, err
	}
	mw.gauge = gauge

	mw.slider = widget.NewSlider(0, mw.settings.Gauge.MaxSpeed)
	mw.slider.Step = 1
	mw.slider.OnChanged = mw.onSpeedChanged

	bus.RegisterAggregator(ebus.MPHAggregator())
	mw.subscribe()

	mw.content = container.NewBorder(
		mw.newToolbar(),
		container.NewBorder(nil, nil, nil, mw.speedLabel, mw.slider),
		nil,
		nil,
		mw.gauge,
	)

	mw.SetCloseIntercept(mw.closeIntercept)
	mw.SetPadded(true)
	mw.SetContent(mw.content)
	mw.Resize(fyne.NewSize(600, 680))
	mw.CenterOnScreen()
	return mw, nil
}

func (mw *MainWindow) onSpeedChanged(value float64) {
	mw.speedLabel.SetText(strconv.FormatFloat(value, 'f', -1, 64))
	if err := mw.bus.Publish(ebus.TopicSpeed, value); err != nil {
		log.Println("publish speed:", err)
	}
}

func (mw *MainWindow) topic() string {
	if mw.settings.UseMPH {
		return ebus.TopicSpeedMPH
	}
	return ebus.TopicSpeed
}

func (mw *MainWindow) subscribe() {
	if mw.unsub != nil {
		mw.unsub()
	}
	mw.unsub = mw.gauge.Subscribe(mw.bus, mw.topic())
}

// applySettings reconfigures the gauge and stores s. The gauge keeps its
// current speed.
func (mw *MainWindow) applySettings(s prefs.Settings) error {
	if err := mw.gauge.SetConfig(s.Gauge); err != nil {
		return err
	}
	if err := prefs.Save(mw.app.Preferences(), s); err != nil {
		return err
	}
	resubscribe := s.UseMPH != mw.settings.UseMPH
	mw.settings = s
	mw.slider.Max = s.Gauge.MaxSpeed
	mw.slider.Refresh()
	if resubscribe {
		mw.subscribe()
	}
	return nil
}

func (mw *MainWindow) Error(err error) {
	log.Println(err)
	dialog.ShowError(err, mw)
}

func (mw *MainWindow) closeIntercept() {
	if mw.unsub != nil {
		mw.unsub()
	}
	mw.Close()
}
