package main

import (
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/roffe/speedometer/pkg/ebus"
	"github.com/roffe/speedometer/pkg/theme"
	"github.com/roffe/speedometer/pkg/windows"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	a := app.NewWithID("com.roffe.speedometer")
	a.Settings().SetTheme(&theme.SpeedoTheme{})

	mw, err := windows.NewMainWindow(a, ebus.Default())
	if err != nil {
		log.Fatal(err)
	}
	mw.SetMaster()
	mw.ShowAndRun()
}
