package widgets

import (
	"fyne.io/fyne/v2"
	sdialog "github.com/sqweek/dialog"
)

// SelectFile opens a native file dialog and calls cb on the fyne thread
// with the chosen path. Nothing is called when the user cancels.
func SelectFile(cb func(filename string), desc string, exts ...string) {
	go func() {
		filename, err := sdialog.File().Filter(desc, exts...).Load()
		if err != nil {
			if err.Error() == "Cancelled" {
				return
			}
			fyne.LogError("Error selecting file", err)
			return
		}
		fyne.Do(func() {
			cb(filename)
		})
	}()
}

func SaveFile(cb func(filename string), desc, ext string) {
	go func() {
		filename, err := sdialog.File().Filter(desc, ext).Title("Save " + desc).Save()
		if err != nil {
			if err.Error() == "Cancelled" {
				return
			}
			fyne.LogError("Error selecting file", err)
			return
		}
		fyne.Do(func() {
			cb(filename)
		})
	}()
}
