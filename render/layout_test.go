package render

import (
	"testing"

	"keyhint/shortcuts"
)

func TestLayoutSaveRow(t *testing.T) {
	entries := []shortcuts.Entry{{Keys: []string{"Ctrl", "+", "S"}, Action: "Save"}}

	rows := Layout(entries, DefaultOrigin)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.Action != "Save" {
		t.Errorf("action = %q", row.Action)
	}

	want := []Glyph{
		{Label: "Ctrl", X: 50, Y: 50, W: 50, H: 50},
		{Label: "+", X: 105, Y: 50, W: 25, H: 50, Separator: true},
		{Label: "S", X: 135, Y: 50, W: 50, H: 50},
	}
	if len(row.Glyphs) != len(want) {
		t.Fatalf("got %d glyphs, want %d", len(row.Glyphs), len(want))
	}
	for i, g := range row.Glyphs {
		if g != want[i] {
			t.Errorf("glyph %d = %+v, want %+v", i, g, want[i])
		}
	}

	// after "S": 135 + 50 + 5 = 190, then the gap
	if row.ActionX != 210 || row.ActionY != 75 {
		t.Errorf("action anchor = (%v, %v), want (210, 75)", row.ActionX, row.ActionY)
	}
}

func TestLayoutRowsStepDown(t *testing.T) {
	entries := []shortcuts.Entry{
		{Keys: []string{"F1"}, Action: "Help"},
		{Keys: []string{"Ctrl", "+", "Q"}, Action: "Quit"},
		{Keys: nil, Action: "Nothing to press"},
	}
	origin := Point{X: 10, Y: 20}

	rows := Layout(entries, origin)
	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}
	for i, row := range rows {
		wantY := origin.Y + float32(i)*RowHeight
		if row.ActionY != wantY+KeyHeight/2 {
			t.Errorf("row %d action y = %v, want %v", i, row.ActionY, wantY+KeyHeight/2)
		}
		for _, g := range row.Glyphs {
			if g.Y != wantY {
				t.Errorf("row %d glyph %q y = %v, want %v", i, g.Label, g.Y, wantY)
			}
		}
		if len(row.Glyphs) > 0 && row.Glyphs[0].X != origin.X {
			t.Errorf("row %d starts at x = %v", i, row.Glyphs[0].X)
		}
	}
	if rows[2].ActionX != origin.X+ActionGap {
		t.Errorf("keyless row action x = %v", rows[2].ActionX)
	}
}

func TestLayoutEmpty(t *testing.T) {
	if rows := Layout(nil, DefaultOrigin); len(rows) != 0 {
		t.Errorf("got %d rows for no entries", len(rows))
	}
}

func TestGlyphCenter(t *testing.T) {
	g := Glyph{X: 105, Y: 50, W: 25, H: 50}
	if c := g.Center(); c != (Point{X: 117.5, Y: 75}) {
		t.Errorf("center = %+v", c)
	}
}

func TestOnceSurface(t *testing.T) {
	calls := 0
	s := OnceSurface(func() { calls++ })
	s.Close()
	s.Close()
	if calls != 1 {
		t.Errorf("release ran %d times, want 1", calls)
	}
	OnceSurface(nil).Close()
}
