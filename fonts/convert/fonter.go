package convert

import (
	"fmt"
	"image/color"

	"ledtext/fonts/glyph"

	"tinygo.org/x/tinyfont"
)

// Options controls how a foreign font becomes a glyph table.
type Options struct {
	// Name labels the table; it appears in errors.
	Name string
	// Blank is the fallback code point. Zero means U+0020.
	Blank rune
	// CellWidth is reported by the table. Zero picks the widest advance.
	CellWidth int
}

func (o Options) blank() rune {
	if o.Blank == 0 {
		return ' '
	}
	return o.Blank
}

// ASCII lists the printable ASCII code points.
func ASCII() []rune {
	out := make([]rune, 0, 0x7f-0x20)
	for r := rune(0x20); r < 0x7f; r++ {
		out = append(out, r)
	}
	return out
}

// FromFonter captures runes from a tinyfont font.
//
// Every glyph is drawn onto an in-memory display with its baseline placed
// below the tallest glyph, then clipped to the 8-row cell; descenders that do
// not fit are cut off.
func FromFonter(f tinyfont.Fonter, runes []rune, opts Options) (*glyph.Table, error) {
	runes = withRune(runes, opts.blank())
	_, ascent, err := LineMetrics(f, runes)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", opts.Name, err)
	}
	baseline := ascent
	if baseline > glyph.CellHeight {
		baseline = glyph.CellHeight
	}

	d := newCaptureDisplay()
	glyphs := make([]glyph.Glyph, 0, len(runes))
	widest := 0
	for _, r := range runes {
		g := f.GetGlyph(r)
		info := g.Info()

		d.reset()
		g.Draw(d, 0, int16(baseline), color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

		y0 := baseline + int(info.YOffset)
		out := d.glyph(r, int(info.XOffset), int(info.Width), y0, y0+int(info.Height))
		out.XOffset = info.XOffset
		out.XAdvance = info.XAdvance
		if int(out.XAdvance) > widest {
			widest = int(out.XAdvance)
		}
		glyphs = append(glyphs, out)
	}

	cellWidth := opts.CellWidth
	if cellWidth <= 0 {
		cellWidth = widest
	}
	return glyph.NewTable(opts.Name, cellWidth, opts.blank(), glyphs)
}

func withRune(runes []rune, r rune) []rune {
	for _, x := range runes {
		if x == r {
			return runes
		}
	}
	return append(append([]rune(nil), runes...), r)
}

// captureDisplay records lit pixels inside the 8-row cell as column bits.
type captureDisplay struct {
	cols map[int16]byte
}

func newCaptureDisplay() *captureDisplay {
	return &captureDisplay{cols: make(map[int16]byte)}
}

func (d *captureDisplay) Size() (x, y int16) { return 0x7fff, glyph.CellHeight }

func (d *captureDisplay) SetPixel(x, y int16, c color.RGBA) {
	if y < 0 || y >= glyph.CellHeight || c.A == 0 {
		return
	}
	d.cols[x] |= 1 << uint(y)
}

func (d *captureDisplay) Display() error { return nil }

func (d *captureDisplay) reset() {
	for k := range d.cols {
		delete(d.cols, k)
	}
}

// glyph packs the captured columns [left, left+width) between rows y0 and y1
// (clipped to the cell) into a glyph.
func (d *captureDisplay) glyph(r rune, left, width, y0, y1 int) glyph.Glyph {
	if y0 < 0 {
		y0 = 0
	}
	if y1 > glyph.CellHeight {
		y1 = glyph.CellHeight
	}
	height := y1 - y0
	if height < 0 {
		height, y0 = 0, 0
	}
	if width > 0xff {
		width = 0xff
	}
	if width < 0 {
		width = 0
	}

	mask := byte(0xFF)
	if height < 8 {
		mask = byte(1)<<uint(height) - 1
	}
	cols := make([]byte, width)
	for i := range cols {
		cols[i] = (d.cols[int16(left+i)] >> uint(y0)) & mask
	}
	return glyph.Glyph{
		Rune:    r,
		Width:   uint8(width),
		Height:  uint8(height),
		YOffset: uint8(y0),
		Columns: cols,
	}
}
