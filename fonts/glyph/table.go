package glyph

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoBlank   = errors.New("glyph: blank glyph missing")
	ErrDuplicate = errors.New("glyph: duplicate code point")
)

// Table is an immutable glyph set: an arena of glyphs sorted by code point.
//
// Lookups use binary search; misses resolve to the blank glyph.
type Table struct {
	name      string
	cellWidth int
	glyphs    []Glyph
	blank     int
}

// NewTable validates glyphs and builds a table. The table owns copies of the
// glyph columns.
func NewTable(name string, cellWidth int, blank rune, glyphs []Glyph) (*Table, error) {
	arena := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		g.Columns = append([]byte(nil), g.Columns...)
		arena[i] = g
	}
	sort.Slice(arena, func(i, j int) bool { return arena[i].Rune < arena[j].Rune })

	for i, g := range arena {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		if i > 0 && arena[i-1].Rune == g.Rune {
			return nil, fmt.Errorf("table %s: %U: %w", name, g.Rune, ErrDuplicate)
		}
	}

	t := &Table{name: name, cellWidth: cellWidth, glyphs: arena}
	t.blank = t.index(blank)
	if t.blank < 0 {
		return nil, fmt.Errorf("table %s: %U: %w", name, blank, ErrNoBlank)
	}
	return t, nil
}

// MustNewTable is NewTable for package-level font data; it panics on error.
func MustNewTable(name string, cellWidth int, blank rune, glyphs []Glyph) *Table {
	t, err := NewTable(name, cellWidth, blank, glyphs)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) index(r rune) int {
	s := 0
	e := len(t.glyphs) - 1
	for s <= e {
		m := (s + e) / 2
		switch r2 := t.glyphs[m].Rune; {
		case r2 < r:
			s = m + 1
		case r2 > r:
			e = m - 1
		default:
			return m
		}
	}
	return -1
}

// Glyph returns the glyph for r, or the blank glyph when r is not covered.
func (t *Table) Glyph(r rune) Glyph {
	if i := t.index(r); i >= 0 {
		return t.glyphs[i]
	}
	return t.glyphs[t.blank]
}

// Lookup returns the glyph for r and whether the table covers r.
func (t *Table) Lookup(r rune) (Glyph, bool) {
	i := t.index(r)
	if i < 0 {
		return t.glyphs[t.blank], false
	}
	return t.glyphs[i], true
}

func (t *Table) Blank() Glyph    { return t.glyphs[t.blank] }
func (t *Table) Name() string    { return t.name }
func (t *Table) Len() int        { return len(t.glyphs) }
func (t *Table) CellWidth() int  { return t.cellWidth }
func (t *Table) CellHeight() int { return CellHeight }

// Runes lists the covered code points in ascending order.
func (t *Table) Runes() []rune {
	out := make([]rune, len(t.glyphs))
	for i, g := range t.glyphs {
		out[i] = g.Rune
	}
	return out
}
