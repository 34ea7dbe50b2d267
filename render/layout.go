// Package render lays out shortcut hint rows and paints them on a surface.
package render

import "keyhint/shortcuts"

// Geometry of a hint row, in surface units.
const (
	RowHeight  = 100
	KeyWidth   = 50
	KeyHeight  = 50
	KeySpacing = 5
	ActionGap  = 20

	// Separator is the key label drawn as bare text between key blocks.
	Separator = "+"
)

// DefaultOrigin is where the first row starts.
var DefaultOrigin = Point{X: 50, Y: 50}

type Point struct {
	X, Y float32
}

// Glyph is one key block, or a bare "+" when Separator is set.
type Glyph struct {
	Label     string
	X, Y      float32
	W, H      float32
	Separator bool
}

// Center returns the point the label is centered on.
func (g Glyph) Center() Point {
	return Point{X: g.X + g.W/2, Y: g.Y + g.H/2}
}

type Row struct {
	Glyphs []Glyph
	Action string
	// ActionX, ActionY anchor the action label on its left edge, vertically
	// centered on the key blocks.
	ActionX float32
	ActionY float32
}

// Layout places one row per entry, top to bottom from origin.
func Layout(entries []shortcuts.Entry, origin Point) []Row {
	rows := make([]Row, 0, len(entries))
	y := origin.Y
	for _, e := range entries {
		rows = append(rows, layoutRow(e, origin.X, y))
		y += RowHeight
	}
	return rows
}

func layoutRow(e shortcuts.Entry, x, y float32) Row {
	row := Row{Action: e.Action, Glyphs: make([]Glyph, 0, len(e.Keys))}
	for _, key := range e.Keys {
		g := Glyph{Label: key, X: x, Y: y, W: KeyWidth, H: KeyHeight}
		if key == Separator {
			g.W = KeyWidth / 2
			g.Separator = true
		}
		row.Glyphs = append(row.Glyphs, g)
		x += g.W + KeySpacing
	}
	row.ActionX = x + ActionGap
	row.ActionY = y + KeyHeight/2
	return row
}
