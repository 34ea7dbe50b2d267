//go:build gui

package main

import (
	"runtime"

	"keyhint/gui"
)

func initGUI() {
	// Lock this goroutine to OS thread for Fyne/GLFW
	runtime.LockOSThread()

	app := gui.NewApp(func() {
		run()
	})
	guiRenderer = app
	quitGUI = app.Quit
	if err := gui.Run(app); err != nil {
		panic(err)
	}
}
