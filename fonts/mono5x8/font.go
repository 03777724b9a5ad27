// Package mono5x8 is the fixed-width LED matrix font: every glyph is 5
// columns wide in an 8-row cell and advances by 6.
//
// It covers printable ASCII. Common Latin-1 letters and typographic
// punctuation are folded onto their ASCII base before lookup.
package mono5x8

import "ledtext/fonts/glyph"

const (
	// CellWidth is the width of every glyph.
	CellWidth = 5
	// Advance is CellWidth plus one blank spacing column.
	Advance = CellWidth + 1
)

// Table holds the ASCII glyphs without folding.
var Table = glyph.MustNewTable("mono5x8", CellWidth, ' ', buildGlyphs())

// Font is the folding provider over Table.
var Font glyph.Provider = font{t: Table}

type font struct {
	t *glyph.Table
}

func (f font) Glyph(r rune) glyph.Glyph { return f.t.Glyph(fold(r)) }
func (f font) CellWidth() int           { return CellWidth }
func (f font) CellHeight() int          { return glyph.CellHeight }

func buildGlyphs() []glyph.Glyph {
	n := len(columnData) / CellWidth
	out := make([]glyph.Glyph, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, glyph.Glyph{
			Rune:     rune(0x20 + i),
			Width:    CellWidth,
			Height:   glyph.CellHeight,
			XAdvance: Advance,
			Columns:  columnData[i*CellWidth : (i+1)*CellWidth],
		})
	}
	return out
}

func fold(r rune) rune {
	if r >= 0x20 && r <= 0x7e {
		return r
	}

	switch r {
	case '\u00a0': // NBSP
		return ' '
	case '\u00ad', '\u2013', '\u2014': // soft hyphen – —
		return '-'
	case '\u00b4', '\u2018', '\u2019', '\u201a': // ´ ‘ ’ ‚
		return '\''
	case '\u00ab', '\u00bb', '\u201c', '\u201d', '\u201e': // « » “ ” „
		return '"'
	case '\u00b7', '\u2022', '\u2026': // · • …
		return '.'
	case '\u00d7': // ×
		return 'x'
	case '\u00f7': // ÷
		return '/'
	case '\u00c7': // Ç
		return 'C'
	case '\u00e7': // ç
		return 'c'
	case '\u00d1': // Ñ
		return 'N'
	case '\u00f1': // ñ
		return 'n'
	case '\u00dd': // Ý
		return 'Y'
	case '\u00fd', '\u00ff': // ý ÿ
		return 'y'
	case '\u00df': // ß
		return 's'
	}

	switch {
	case r >= '\u00c0' && r <= '\u00c5': // À-Å
		return 'A'
	case r >= '\u00c8' && r <= '\u00cb': // È-Ë
		return 'E'
	case r >= '\u00cc' && r <= '\u00cf': // Ì-Ï
		return 'I'
	case r >= '\u00d2' && r <= '\u00d6', r == '\u00d8': // Ò-Ö, Ø
		return 'O'
	case r >= '\u00d9' && r <= '\u00dc': // Ù-Ü
		return 'U'
	case r >= '\u00e0' && r <= '\u00e5': // à-å
		return 'a'
	case r >= '\u00e8' && r <= '\u00eb': // è-ë
		return 'e'
	case r >= '\u00ec' && r <= '\u00ef': // ì-ï
		return 'i'
	case r >= '\u00f2' && r <= '\u00f6', r == '\u00f8': // ò-ö, ø
		return 'o'
	case r >= '\u00f9' && r <= '\u00fc': // ù-ü
		return 'u'
	}
	return r
}
