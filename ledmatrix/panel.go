// Package ledmatrix drives LED panels from a scrolling view: orientation,
// colours, and a framebuffer-backed dot display for the simulator.
package ledmatrix

import (
	"image/color"

	"ledtext/render"
	"ledtext/scroll"

	"tinygo.org/x/drivers"
)

var black = color.RGBA{A: 255}

// Panel paints a view onto a display.
type Panel struct {
	View        *scroll.View
	Style       render.Style
	Orientation Orientation
}

// NewPanel shows v with the style of its matrix.
func NewPanel(v *scroll.View, o Orientation) *Panel {
	return &Panel{View: v, Style: v.Matrix().Style, Orientation: o}
}

// Size returns the physical LED count across and down.
func (p *Panel) Size() (w, h int) {
	return p.Orientation.Size(p.View.Width(), p.View.Height())
}

// IsLit reports whether physical LED (px, py) is on.
func (p *Panel) IsLit(px, py int) bool {
	x, y := p.Orientation.ToView(px, py, p.View.Width(), p.View.Height())
	return p.View.IsPixelSet(x, y)
}

// Color returns the colour of physical LED (px, py).
func (p *Panel) Color(px, py int) color.RGBA {
	if p.IsLit(px, py) {
		return p.Style.Foreground
	}
	if p.Style.Background != nil {
		return *p.Style.Background
	}
	return black
}

// Draw sets every LED of d and flushes it. d must be at least as large as
// the panel.
func (p *Panel) Draw(d drivers.Displayer) error {
	w, h := p.Size()
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			d.SetPixel(int16(px), int16(py), p.Color(px, py))
		}
	}
	return d.Display()
}
