//go:build gui

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// App owns the fyne event loop. Overlay surfaces are created on demand by
// Render; a hidden anchor window keeps the loop alive between toggles.
type App struct {
	fyneApp fyne.App
	anchor  fyne.Window
	onReady func()
	screenW float32
	screenH float32
}

func NewApp(onReady func()) *App {
	return &App{onReady: onReady}
}

// Run blocks on the fyne event loop. It must be called from the main
// goroutine with the OS thread locked.
func Run(a *App) error {
	a.fyneApp = app.NewWithID("io.keyhint.overlay")
	a.fyneApp.Settings().SetTheme(&overlayTheme{})

	if desk, ok := a.fyneApp.(desktop.App); ok {
		menu := fyne.NewMenu("keyhint",
			fyne.NewMenuItem("Quit", func() {
				a.fyneApp.Quit()
			}),
		)
		desk.SetSystemTrayMenu(menu)
		desk.SetSystemTrayIcon(trayIcon())
	}

	a.screenW, a.screenH = 1920, 1080 // fallback
	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		if mode := monitor.GetVideoMode(); mode != nil {
			a.screenW, a.screenH = float32(mode.Width), float32(mode.Height)
		}
	}

	a.anchor = a.newBorderless()

	go a.onReady()

	a.fyneApp.Run()
	return nil
}

func (a *App) Quit() {
	if a.fyneApp != nil {
		fyne.Do(a.fyneApp.Quit)
	}
}

func (a *App) newBorderless() fyne.Window {
	if drv, ok := a.fyneApp.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	return a.fyneApp.NewWindow("keyhint")
}
