//go:build gui

package gui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"fyne.io/fyne/v2"
)

// trayIcon draws a 22px keycap: blue face, white rim.
func trayIcon() fyne.Resource {
	const size = 22
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 2; y < size-2; y++ {
		for x := 2; x < size-2; x++ {
			rim := x < 4 || x >= size-4 || y < 4 || y >= size-4
			if rim {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return fyne.NewStaticResource("tray.png", buf.Bytes())
}
