package windows

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/config"
	"github.com/roffe/speedometer/pkg/prefs"
	"github.com/roffe/speedometer/pkg/render"
	"github.com/roffe/speedometer/pkg/widgets"
	"github.com/roffe/speedometer/pkg/widgets/settings"
	"golang.design/x/clipboard"
)

const exportSize = 512

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func (mw *MainWindow) newToolbar() *widget.Toolbar {
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.SettingsIcon(), mw.showSettings),
		widget.NewToolbarAction(theme.FolderOpenIcon(), mw.importConfig),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), mw.exportPNG),
		widget.NewToolbarAction(theme.ContentCopyIcon(), mw.copyPNG),
	)
}

func (mw *MainWindow) showSettings() {
	var d dialog.Dialog
	sw := settings.New(mw.settings, func(s prefs.Settings) error {
		if err := mw.applySettings(s); err != nil {
			return err
		}
		d.Hide()
		return nil
	})
	d = dialog.NewCustom("Settings", "Close", sw, mw)
	d.Resize(fyne.NewSize(420, 560))
	d.Show()
}

// importConfig loads a yaml, json or toml gauge file. Only the gauge part of
// the settings is replaced.
func (mw *MainWindow) importConfig() {
	widgets.SelectFile(func(filename string) {
		cfg, err := config.New(filename).Load()
		if err != nil {
			mw.Error(err)
			return
		}
		s := mw.settings
		s.Gauge = cfg
		if err := mw.applySettings(s); err != nil {
			mw.Error(err)
		}
	}, "Gauge config", "yaml", "yml", "json", "toml")
}

func (mw *MainWindow) snapshot() ([]byte, error) {
	var buf bytes.Buffer
	if err := render.WritePNG(&buf, mw.gauge.GetConfig(), mw.gauge.Value(), exportSize, colors.White); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mw *MainWindow) exportPNG() {
	widgets.SaveFile(func(filename string) {
		data, err := mw.snapshot()
		if err != nil {
			mw.Error(err)
			return
		}
		if err := os.WriteFile(filename, data, 0o644); err != nil {
			mw.Error(fmt.Errorf("failed to save image: %w", err))
		}
	}, "PNG image", "png")
}

func (mw *MainWindow) copyPNG() {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		mw.Error(fmt.Errorf("clipboard unavailable: %w", clipboardErr))
		return
	}
	data, err := mw.snapshot()
	if err != nil {
		mw.Error(err)
		return
	}
	clipboard.Write(clipboard.FmtImage, data)
}
