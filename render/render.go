// Package render composites text into 8-row LED bitmaps.
package render

import (
	"image/color"
	"unicode/utf8"

	"ledtext/fonts/glyph"
	"ledtext/fonts/prop8"
)

const (
	// MaxRunes is the longest text rendered as given.
	MaxRunes = 128
	// TooLongText replaces text longer than MaxRunes.
	TooLongText = "Text is too long"
)

// Policy decides how wide a rendered matrix is and where glyphs land.
type Policy uint8

const (
	// PolicyTrailingWidthTrim sums the advances of all but the last glyph
	// and adds the last glyph's bitmap width.
	PolicyTrailingWidthTrim Policy = iota
	// PolicyLegacyFullAdvance sums the advances of every glyph.
	PolicyLegacyFullAdvance
	// PolicyFixedMonospace places glyph i at i*(cell+1).
	PolicyFixedMonospace
)

func (p Policy) String() string {
	switch p {
	case PolicyTrailingWidthTrim:
		return "trim"
	case PolicyLegacyFullAdvance:
		return "legacy"
	case PolicyFixedMonospace:
		return "mono"
	default:
		return "unknown"
	}
}

// DefaultForeground is the lit LED colour when none is chosen.
var DefaultForeground = color.RGBA{R: 0, G: 128, B: 0, A: 255}

// Style is presentation metadata carried with a matrix. It never affects
// which pixels are lit.
type Style struct {
	Foreground color.RGBA
	// Background is painted behind unlit LEDs; nil leaves them dark.
	Background *color.RGBA
}

// DefaultStyle returns green text on no background.
func DefaultStyle() Style {
	return Style{Foreground: DefaultForeground}
}

// Matrix is a rendered bitmap, Width columns by 8 rows, row-major. Pixels
// holds 0 or 1 per LED and must not be modified.
type Matrix struct {
	Text   string
	Pixels []byte
	Width  int
	Style  Style
}

// IsPixelSet reports whether the matrix pixel at (x, y) is lit.
func (m *Matrix) IsPixelSet(x, y int) bool {
	if m == nil || x < 0 || x >= m.Width || y < 0 || y >= glyph.CellHeight {
		return false
	}
	return m.Pixels[y*m.Width+x] != 0
}

// Column packs column x into a byte, bit i = row i.
func (m *Matrix) Column(x int) byte {
	var c byte
	for y := 0; y < glyph.CellHeight; y++ {
		if m.IsPixelSet(x, y) {
			c |= 1 << uint(y)
		}
	}
	return c
}

// Renderer turns strings into matrices. The zero value is not usable; a
// Renderer holds no per-call state and may be shared.
type Renderer struct {
	Font   glyph.Provider
	Policy Policy
	Style  Style
}

// New returns a renderer using font f and policy p with the default style.
func New(f glyph.Provider, p Policy) *Renderer {
	return &Renderer{Font: f, Policy: p, Style: DefaultStyle()}
}

var defaultRenderer = New(prop8.Font, PolicyTrailingWidthTrim)

// Text renders s with the proportional font and trailing-width trim.
func Text(s string) *Matrix {
	return defaultRenderer.Render(s)
}

// Render composites text. Unknown code points draw as the font's blank
// glyph and text longer than MaxRunes is replaced by TooLongText.
func (r *Renderer) Render(text string) *Matrix {
	if utf8.RuneCountInString(text) > MaxRunes {
		text = TooLongText
	}

	glyphs := make([]glyph.Glyph, 0, len(text))
	for _, c := range text {
		glyphs = append(glyphs, r.Font.Glyph(c))
	}

	width := r.width(glyphs)
	m := &Matrix{
		Text:   text,
		Pixels: make([]byte, width*glyph.CellHeight),
		Width:  width,
		Style:  r.Style,
	}

	x := 0
	for _, g := range glyphs {
		blit(m, g, x)
		x += r.advance(g)
	}
	return m
}

func (r *Renderer) advance(g glyph.Glyph) int {
	if r.Policy == PolicyFixedMonospace {
		return r.Font.CellWidth() + 1
	}
	return int(g.XAdvance)
}

func (r *Renderer) width(glyphs []glyph.Glyph) int {
	n := len(glyphs)
	if n == 0 {
		return 0
	}
	switch r.Policy {
	case PolicyFixedMonospace:
		return n*(r.Font.CellWidth()+1) - 1
	case PolicyLegacyFullAdvance:
		w := 0
		for _, g := range glyphs {
			w += int(g.XAdvance)
		}
		return w
	default:
		w := 0
		for _, g := range glyphs[:n-1] {
			w += int(g.XAdvance)
		}
		return w + int(glyphs[n-1].Width)
	}
}

// blit ORs glyph g into m with its left edge at column x. Pixels falling
// outside the matrix are dropped.
func blit(m *Matrix, g glyph.Glyph, x int) {
	for cx := 0; cx < int(g.Width) && cx < len(g.Columns); cx++ {
		px := x + cx
		if px < 0 || px >= m.Width {
			continue
		}
		col := g.Columns[cx]
		for cy := 0; cy < int(g.Height); cy++ {
			if col&(1<<uint(cy)) == 0 {
				continue
			}
			py := cy + int(g.YOffset)
			if py < 0 || py >= glyph.CellHeight {
				continue
			}
			m.Pixels[py*m.Width+px] = 1
		}
	}
}
