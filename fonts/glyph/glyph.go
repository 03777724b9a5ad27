// Package glyph describes column-encoded bitmap glyphs for 8-row LED
// matrices and the immutable tables that hold them.
package glyph

import "fmt"

// CellHeight is the row count of every glyph cell and rendered matrix.
const CellHeight = 8

// Glyph is a single character bitmap.
//
// Columns holds Width bytes. Bit i of a column (LSB first) lights row i of the
// glyph; rows are shifted down by YOffset when composited into a cell.
// Columns must not be modified.
type Glyph struct {
	Rune     rune
	Width    uint8
	Height   uint8
	XOffset  int8
	YOffset  uint8
	XAdvance uint8
	Columns  []byte
}

// IsSet reports whether the glyph-local pixel (x, y) is lit.
func (g Glyph) IsSet(x, y int) bool {
	if x < 0 || x >= int(g.Width) || x >= len(g.Columns) {
		return false
	}
	if y < 0 || y >= int(g.Height) {
		return false
	}
	return g.Columns[x]&(1<<uint(y)) != 0
}

// Validate checks that the glyph fits an 8-row cell and uses only the low
// Height bits of each column.
func (g Glyph) Validate() error {
	if len(g.Columns) != int(g.Width) {
		return fmt.Errorf("glyph %U: %d columns for width %d", g.Rune, len(g.Columns), g.Width)
	}
	if int(g.Height)+int(g.YOffset) > CellHeight {
		return fmt.Errorf("glyph %U: height %d + y offset %d exceeds %d rows", g.Rune, g.Height, g.YOffset, CellHeight)
	}
	mask := byte(0xFF)
	if g.Height < 8 {
		mask = byte(1)<<g.Height - 1
	}
	for i, c := range g.Columns {
		if c&^mask != 0 {
			return fmt.Errorf("glyph %U: column %d (%#02x) exceeds height %d", g.Rune, i, c, g.Height)
		}
	}
	return nil
}

// Provider resolves code points to glyphs.
//
// Glyph never fails: code points the provider does not cover resolve to its
// blank glyph.
type Provider interface {
	Glyph(r rune) Glyph
	CellWidth() int
	CellHeight() int
}
