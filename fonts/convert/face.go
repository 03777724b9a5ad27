package convert

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"ledtext/fonts/glyph"

	"github.com/zachomedia/go-bdf"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrNoCoverage is returned when a face renders none of the requested runes.
var ErrNoCoverage = errors.New("no covered glyphs")

// FromFace rasterizes runes from a font face. Runes for which the face
// reports ok=false are skipped; faces that substitute a default glyph report
// ok for every rune, so callers filter runes first. The blank rune must be
// covered.
//
// The baseline is placed below the tallest covered glyph and everything is
// clipped to the 8-row cell. A pixel is lit when its mask alpha is at least
// half.
func FromFace(face font.Face, runes []rune, opts Options) (*glyph.Table, error) {
	runes = withRune(runes, opts.blank())

	minY, covered := 0, 0
	for _, r := range runes {
		b, _, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		if y := b.Min.Y.Floor(); covered == 0 || y < minY {
			minY = y
		}
		covered++
	}
	if covered == 0 {
		return nil, fmt.Errorf("font %s: %w", opts.Name, ErrNoCoverage)
	}
	baseline := -minY
	if baseline > glyph.CellHeight {
		baseline = glyph.CellHeight
	}
	if baseline < 0 {
		baseline = 0
	}

	glyphs := make([]glyph.Glyph, 0, covered)
	widest := 0
	for _, r := range runes {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, baseline), r)
		if !ok {
			continue
		}
		g := rasterize(r, dr, mask, maskp)
		g.XOffset = clampInt8(dr.Min.X)
		g.XAdvance = clampUint8(advance.Round())
		if int(g.XAdvance) > widest {
			widest = int(g.XAdvance)
		}
		glyphs = append(glyphs, g)
	}

	cellWidth := opts.CellWidth
	if cellWidth <= 0 {
		cellWidth = widest
	}
	return glyph.NewTable(opts.Name, cellWidth, opts.blank(), glyphs)
}

func rasterize(r rune, dr image.Rectangle, mask image.Image, maskp image.Point) glyph.Glyph {
	y0 := dr.Min.Y
	if y0 < 0 {
		y0 = 0
	}
	y1 := dr.Max.Y
	if y1 > glyph.CellHeight {
		y1 = glyph.CellHeight
	}
	height := y1 - y0
	if height < 0 {
		height, y0 = 0, 0
	}

	width := dr.Dx()
	if width > 0xff {
		width = 0xff
	}
	cols := make([]byte, width)
	for i := range cols {
		x := dr.Min.X + i
		for y := y0; y < y0+height; y++ {
			_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
			if a >= 0x8000 {
				cols[i] |= 1 << uint(y-y0)
			}
		}
	}
	return glyph.Glyph{
		Rune:    r,
		Width:   uint8(width),
		Height:  uint8(height),
		YOffset: uint8(y0),
		Columns: cols,
	}
}

// BDFRunes lists the code points tried when importing a BDF font: Latin-1,
// Latin Extended-A and B, spacing modifiers, general punctuation, currency
// and letterlike symbols.
func BDFRunes() []rune {
	var out []rune
	for _, span := range [][2]rune{
		{0x0020, 0x007e},
		{0x00a0, 0x024f},
		{0x02b0, 0x02ff},
		{0x2010, 0x205e},
		{0x20a0, 0x20c0},
		{0x2100, 0x214f},
	} {
		for r := span[0]; r <= span[1]; r++ {
			out = append(out, r)
		}
	}
	return out
}

// ParseBDF decodes a BDF font and imports the BDFRunes it defines.
func ParseBDF(data []byte, opts Options) (*glyph.Table, error) {
	f, err := bdf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse bdf %s: %w", opts.Name, err)
	}
	face := f.NewFace()
	defer func() { _ = face.Close() }()
	return FromFace(face, bdfCovered(f, BDFRunes()), opts)
}

// bdfCovered keeps the runes with their own BDF character. The face falls
// back to DEFAULT_CHAR for everything else.
func bdfCovered(f *bdf.Font, runes []rune) []rune {
	out := runes[:0:0]
	for _, r := range runes {
		if _, ok := f.CharMap[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// LoadBDF reads and imports a BDF font file. The table is named after the
// file unless opts.Name is set.
func LoadBDF(path string, opts Options) (*glyph.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bdf %q: %w", path, err)
	}
	if opts.Name == "" {
		opts.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ParseBDF(data, opts)
}

func clampInt8(v int) int8 {
	if v < -128 {
		return -128
	}
	if v > 127 {
		return 127
	}
	return int8(v)
}

func clampUint8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}
