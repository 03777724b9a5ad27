package prop8

import (
	"testing"

	"ledtext/fonts/glyph"
)

func TestGlyphInvariants(t *testing.T) {
	for _, r := range Font.Runes() {
		g := Font.Glyph(r)
		if len(g.Columns) != int(g.Width) {
			t.Errorf("%U: %d columns, width %d", r, len(g.Columns), g.Width)
		}
		if int(g.Height)+int(g.YOffset) > glyph.CellHeight {
			t.Errorf("%U: height %d + y offset %d > %d", r, g.Height, g.YOffset, glyph.CellHeight)
		}
		if g.Height > glyph.CellHeight {
			t.Errorf("%U: height %d", r, g.Height)
		}
		if g.Width > g.XAdvance {
			t.Errorf("%U: width %d exceeds advance %d", r, g.Width, g.XAdvance)
		}
	}
}

func TestCoverage(t *testing.T) {
	if Font.Len() != 238 {
		t.Fatalf("expected 238 glyphs, got %d", Font.Len())
	}
	for r := rune(0x20); r <= 0x7e; r++ {
		if _, ok := Font.Lookup(r); !ok {
			t.Errorf("printable ASCII %q missing", r)
		}
	}
	for _, r := range []rune{'€', '™', '…', '—', 'Œ', 'ž', '‰'} {
		if _, ok := Font.Lookup(r); !ok {
			t.Errorf("%q missing", r)
		}
	}
}

func TestBlankFallback(t *testing.T) {
	blank := Font.Glyph(' ')
	if blank.Width != 3 || blank.XAdvance != 4 || blank.Height != 1 || blank.YOffset != 7 {
		t.Fatalf("unexpected blank glyph: %+v", blank)
	}
	for _, r := range []rune{'\uffff', 'Ж', 0x1F600, 0, '\n'} {
		g, ok := Font.Lookup(r)
		if ok {
			t.Fatalf("%U unexpectedly covered", r)
		}
		if g.Rune != ' ' {
			t.Fatalf("%U: expected blank fallback, got %U", r, g.Rune)
		}
	}
}

func TestLetterA(t *testing.T) {
	g := Font.Glyph('A')
	want := []byte{0x7E, 0x11, 0x11, 0x11, 0x7E}
	if g.Width != 5 || g.Height != 7 || g.XOffset != 1 || g.YOffset != 0 || g.XAdvance != 7 {
		t.Fatalf("unexpected metrics: %+v", g)
	}
	for i := range want {
		if g.Columns[i] != want[i] {
			t.Fatalf("column %d: expected %#02x got %#02x", i, want[i], g.Columns[i])
		}
	}
	if g.IsSet(0, 0) || !g.IsSet(0, 1) || !g.IsSet(0, 6) {
		t.Fatal("column 0 should light rows 1-6 only")
	}
}
