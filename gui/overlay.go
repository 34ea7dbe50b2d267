//go:build gui

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/go-gl/glfw/v3.3/glfw"

	"keyhint/render"
	"keyhint/shortcuts"
)

const (
	overlayOpacity = 0.85
	keyTextSize    = 12
	actionTextSize = 10
	keyBorderWidth = 2
)

var (
	colorBackground = color.NRGBA{0, 0, 0, 255}
	colorKeyFill    = color.NRGBA{0, 0, 255, 255}
	colorKeyBorder  = color.NRGBA{255, 255, 255, 255}
	colorText       = color.NRGBA{255, 255, 255, 255}
)

// Render opens a full-screen, borderless, floating, translucent window and
// paints the hint rows on it.
func (a *App) Render(entries []shortcuts.Entry, origin render.Point) (render.Surface, error) {
	rows := render.Layout(entries, origin)

	var win fyne.Window
	fyne.DoAndWait(func() {
		win = a.newBorderless()
		win.SetPadded(false)
		win.SetContent(paint(rows, a.screenW, a.screenH))
		win.Resize(fyne.NewSize(a.screenW, a.screenH))
		win.Show()

		if glfwWin := glfw.GetCurrentContext(); glfwWin != nil {
			glfwWin.SetPos(0, 0)
			glfwWin.SetAttrib(glfw.Floating, glfw.True)
			glfwWin.SetOpacity(overlayOpacity)
		}
		win.RequestFocus()
	})

	return render.OnceSurface(func() {
		fyne.DoAndWait(win.Close)
	}), nil
}

func paint(rows []render.Row, w, h float32) fyne.CanvasObject {
	bg := canvas.NewRectangle(colorBackground)
	bg.Resize(fyne.NewSize(w, h))
	objects := []fyne.CanvasObject{bg}

	for _, row := range rows {
		for _, g := range row.Glyphs {
			if !g.Separator {
				rect := canvas.NewRectangle(colorKeyFill)
				rect.StrokeColor = colorKeyBorder
				rect.StrokeWidth = keyBorderWidth
				rect.Move(fyne.NewPos(g.X, g.Y))
				rect.Resize(fyne.NewSize(g.W, g.H))
				objects = append(objects, rect)
			}
			label := canvas.NewText(g.Label, colorText)
			label.TextSize = keyTextSize
			label.TextStyle = fyne.TextStyle{Bold: true}
			objects = append(objects, centered(label, g.Center()))
		}

		action := canvas.NewText(row.Action, colorText)
		action.TextSize = actionTextSize
		size := action.MinSize()
		action.Resize(size)
		action.Move(fyne.NewPos(row.ActionX, row.ActionY-size.Height/2))
		objects = append(objects, action)
	}

	return container.NewWithoutLayout(objects...)
}

func centered(t *canvas.Text, c render.Point) *canvas.Text {
	size := t.MinSize()
	t.Resize(size)
	t.Move(fyne.NewPos(c.X-size.Width/2, c.Y-size.Height/2))
	return t
}
