package glyph

import (
	"errors"
	"image/color"
	"testing"
)

func testGlyphs() []Glyph {
	return []Glyph{
		{Rune: 'b', Width: 2, Height: 3, XAdvance: 3, Columns: []byte{0x07, 0x05}},
		{Rune: ' ', Width: 1, Height: 1, YOffset: 7, XAdvance: 2, Columns: []byte{0x00}},
		{Rune: 'a', Width: 1, Height: 8, XAdvance: 2, Columns: []byte{0x81}},
	}
}

func TestTableLookup(t *testing.T) {
	tbl, err := NewTable("test", 2, ' ', testGlyphs())
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	runes := tbl.Runes()
	want := []rune{' ', 'a', 'b'}
	if len(runes) != len(want) {
		t.Fatalf("expected %d runes, got %d", len(want), len(runes))
	}
	for i := range want {
		if runes[i] != want[i] {
			t.Fatalf("rune %d: expected %q got %q", i, want[i], runes[i])
		}
	}

	if g := tbl.Glyph('b'); g.Rune != 'b' || g.Columns[1] != 0x05 {
		t.Fatalf("unexpected glyph for b: %+v", g)
	}
	if g, ok := tbl.Lookup('z'); ok || g.Rune != ' ' {
		t.Fatalf("expected blank miss, got %+v ok=%v", g, ok)
	}
	if tbl.CellWidth() != 2 || tbl.CellHeight() != CellHeight {
		t.Fatalf("unexpected cell size %dx%d", tbl.CellWidth(), tbl.CellHeight())
	}
}

func TestTableOwnsColumns(t *testing.T) {
	src := testGlyphs()
	tbl := MustNewTable("test", 2, ' ', src)
	src[0].Columns[0] = 0x00
	if tbl.Glyph('b').Columns[0] != 0x07 {
		t.Fatal("table columns alias the caller's slice")
	}
}

func TestTableErrors(t *testing.T) {
	if _, err := NewTable("test", 2, '?', testGlyphs()); !errors.Is(err, ErrNoBlank) {
		t.Fatalf("expected ErrNoBlank, got %v", err)
	}

	dup := append(testGlyphs(), Glyph{Rune: 'a', Width: 1, Height: 1, Columns: []byte{1}})
	if _, err := NewTable("test", 2, ' ', dup); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	tall := append(testGlyphs(), Glyph{Rune: 'x', Width: 1, Height: 4, YOffset: 5, Columns: []byte{1}})
	if _, err := NewTable("test", 2, ' ', tall); err == nil {
		t.Fatal("expected height error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		g    Glyph
		ok   bool
	}{
		{"ok", Glyph{Width: 2, Height: 3, Columns: []byte{0x07, 0x01}}, true},
		{"full height", Glyph{Width: 1, Height: 8, Columns: []byte{0xFF}}, true},
		{"column count", Glyph{Width: 2, Height: 3, Columns: []byte{0x07}}, false},
		{"stray bit", Glyph{Width: 1, Height: 3, Columns: []byte{0x08}}, false},
		{"offset", Glyph{Width: 1, Height: 2, YOffset: 7, Columns: []byte{0x01}}, false},
	}
	for _, tt := range tests {
		err := tt.g.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("%s: unexpected result %v", tt.name, err)
		}
	}
}

type pixel struct{ x, y int16 }

type recordDisplay struct {
	set map[pixel]color.RGBA
}

func (d *recordDisplay) Size() (x, y int16)                { return 64, 16 }
func (d *recordDisplay) SetPixel(x, y int16, c color.RGBA) { d.set[pixel{x, y}] = c }
func (d *recordDisplay) Display() error                    { return nil }

func TestFonterDraw(t *testing.T) {
	tbl := MustNewTable("test", 2, ' ', testGlyphs())
	f := Fonter(tbl)
	if f.GetYAdvance() != 9 {
		t.Fatalf("expected y advance 9, got %d", f.GetYAdvance())
	}

	g := f.GetGlyph('b')
	info := g.Info()
	if info.Width != 2 || info.XAdvance != 3 || info.YOffset != -Baseline {
		t.Fatalf("unexpected info %+v", info)
	}

	d := &recordDisplay{set: map[pixel]color.RGBA{}}
	red := color.RGBA{R: 0xFF, A: 0xFF}
	g.Draw(d, 10, 20, red)

	// Baseline 20 puts glyph row 0 at y=13.
	want := []pixel{{10, 13}, {10, 14}, {10, 15}, {11, 13}, {11, 15}}
	if len(d.set) != len(want) {
		t.Fatalf("expected %d pixels, got %d: %v", len(want), len(d.set), d.set)
	}
	for _, p := range want {
		if d.set[p] != red {
			t.Fatalf("pixel %v not set", p)
		}
	}
}
