// Package scroll maps a rendered matrix onto a fixed-width LED window,
// centering text that fits and wrapping text that does not.
package scroll

import (
	"ledtext/fonts/glyph"
	"ledtext/render"
)

// DefaultWidth is the physical width of an 8x8 LED panel.
const DefaultWidth = 8

// Mode is fixed when a view is created.
type Mode uint8

const (
	// ModeStatic shows text no wider than the window, centered.
	ModeStatic Mode = iota
	// ModeScrolling wraps wider text around the window.
	ModeScrolling
)

func (m Mode) String() string {
	if m == ModeScrolling {
		return "scrolling"
	}
	return "static"
}

// View is a window onto one matrix. It is not safe for concurrent use.
type View struct {
	m      *render.Matrix
	width  int
	offset int
}

// New creates a view of m on a panel physicalWidth LEDs wide. Widths below
// one use DefaultWidth. A matrix whose Pixels do not hold Width*8 bytes is
// shown as empty.
func New(m *render.Matrix, physicalWidth int) *View {
	if physicalWidth < 1 {
		physicalWidth = DefaultWidth
	}
	if m == nil {
		m = &render.Matrix{}
	}
	if m.Width < 0 || len(m.Pixels) != m.Width*glyph.CellHeight {
		m = &render.Matrix{Text: m.Text, Style: m.Style}
	}
	return &View{m: m, width: physicalWidth}
}

func (v *View) Matrix() *render.Matrix { return v.m }
func (v *View) Width() int             { return v.width }
func (v *View) Height() int            { return glyph.CellHeight }
func (v *View) Offset() int            { return v.offset }

func (v *View) Mode() Mode {
	if v.m.Width > v.width {
		return ModeScrolling
	}
	return ModeStatic
}

// IsPixelSet reports whether physical LED (x, y) is lit.
func (v *View) IsPixelSet(x, y int) bool {
	w := v.m.Width
	if w == 0 || x < 0 || x >= v.width || y < 0 || y >= glyph.CellHeight {
		return false
	}

	var ex int
	if w < v.width {
		ex = x - (v.width-w)/2
		if ex < 0 || ex >= w {
			return false
		}
	} else {
		ex = (x + v.offset) % w
	}
	return v.m.Pixels[ex+y*w] != 0
}

// ScrollByOnePixel shifts scrolling text one column left, wrapping at the
// end. Static views do not move.
func (v *View) ScrollByOnePixel() {
	if v.m.Width > v.width {
		v.offset = (v.offset + 1) % v.m.Width
	}
}
