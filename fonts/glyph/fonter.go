package glyph

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Baseline is the cell row tinyfont treats as the baseline when a Provider is
// drawn through Fonter.
const Baseline = CellHeight - 1

// Fonter exposes p as a tinyfont.Fonter so tinyfont and tinyterm can draw
// with it. XOffset is not applied, matching the matrix renderer.
//
// Concurrent access is not safe due to internal glyph reuse.
func Fonter(p Provider) tinyfont.Fonter {
	return &fonter{p: p}
}

type fonter struct {
	p Provider
	g glypher
}

type glypher struct {
	g Glyph
}

func (f *fonter) GetYAdvance() uint8 { return uint8(f.p.CellHeight() + 1) }

func (f *fonter) GetGlyph(r rune) tinyfont.Glypher {
	f.g.g = f.p.Glyph(r)
	return &f.g
}

func (g *glypher) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	top := y - Baseline + int16(g.g.YOffset)
	for cx, col := range g.g.Columns {
		if cx >= int(g.g.Width) {
			break
		}
		for cy := 0; cy < int(g.g.Height); cy++ {
			if col&(1<<uint(cy)) == 0 {
				continue
			}
			display.SetPixel(x+int16(cx), top+int16(cy), c)
		}
	}
}

func (g *glypher) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.g.Rune,
		Width:    g.g.Width,
		Height:   g.g.Height,
		XAdvance: g.g.XAdvance,
		XOffset:  0,
		YOffset:  int8(g.g.YOffset) - Baseline,
	}
}
