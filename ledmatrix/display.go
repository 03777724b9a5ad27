package ledmatrix

import (
	"image"
	"image/color"

	"ledtext/hal"

	"tinygo.org/x/drivers"
)

// Region is a pixel display over a rectangle of an RGB565 framebuffer.
// It satisfies tinyterm's Displayer and supports its software scroll.
type Region struct {
	fb   hal.Framebuffer
	x, y int
	w, h int
}

// NewRegion clips the rectangle (x, y, w, h) to fb.
func NewRegion(fb hal.Framebuffer, x, y, w, h int) *Region {
	r := &Region{fb: fb}
	if fb == nil {
		return r
	}
	x0 := clampInt(x, 0, fb.Width())
	y0 := clampInt(y, 0, fb.Height())
	x1 := clampInt(x+w, 0, fb.Width())
	y1 := clampInt(y+h, 0, fb.Height())
	r.x, r.y = x0, y0
	r.w, r.h = x1-x0, y1-y0
	return r
}

func (r *Region) Size() (x, y int16) {
	if r.fb == nil {
		return 0, 0
	}
	return int16(r.w), int16(r.h)
}

func (r *Region) SetPixel(x, y int16, c color.RGBA) {
	_ = r.FillRectangle(x, y, 1, 1, c)
}

func (r *Region) Display() error {
	if r.fb == nil {
		return nil
	}
	return r.fb.Present()
}

func (r *Region) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if r.fb == nil || r.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := r.fb.Buffer()
	if buf == nil {
		return nil
	}

	x0 := clampInt(int(x), 0, r.w)
	y0 := clampInt(int(y), 0, r.h)
	x1 := clampInt(int(x)+int(width), 0, r.w)
	y1 := clampInt(int(y)+int(height), 0, r.h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := hal.RGB565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := r.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := (r.y + py) * stride
		for px := x0; px < x1; px++ {
			off := row + (r.x+px)*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

// ScrollUp moves the region content up by lines pixels and clears the
// exposed rows to bg.
func (r *Region) ScrollUp(lines int16, bg color.RGBA) error {
	if r.fb == nil || r.fb.Format() != hal.PixelFormatRGB565 || lines <= 0 {
		return nil
	}
	buf := r.fb.Buffer()
	if buf == nil || r.w <= 0 || r.h <= 0 {
		return nil
	}

	n := int(lines)
	if n >= r.h {
		return r.FillRectangle(0, 0, int16(r.w), int16(r.h), bg)
	}

	stride := r.fb.StrideBytes()
	rowBytes := r.w * 2
	for y := 0; y < r.h-n; y++ {
		dst := (r.y+y)*stride + r.x*2
		src := (r.y+y+n)*stride + r.x*2
		if src+rowBytes > len(buf) {
			break
		}
		copy(buf[dst:dst+rowBytes], buf[src:src+rowBytes])
	}
	return r.FillRectangle(0, int16(r.h-n), int16(r.w), int16(n), bg)
}

// SetScroll is a no-op; the region has no hardware scroll.
func (r *Region) SetScroll(line int16) {
	_ = line
}

func (r *Region) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// DotDisplay is a drivers.Displayer of cols x rows logical LEDs, each painted
// as a square dot on a Region with a dark gap between neighbours.
type DotDisplay struct {
	r          *Region
	cols, rows int
	pitch, dot int
	ox, oy     int
}

// NewDotDisplay fits a cols x rows grid into r, centered.
func NewDotDisplay(r *Region, cols, rows int) *DotDisplay {
	d := &DotDisplay{r: r, cols: cols, rows: rows}
	if cols <= 0 || rows <= 0 {
		return d
	}
	w, h := r.Size()
	d.pitch = int(w) / cols
	if p := int(h) / rows; p < d.pitch {
		d.pitch = p
	}
	if d.pitch < 1 {
		d.pitch = 1
	}
	d.dot = d.pitch
	if d.pitch >= 3 {
		d.dot = d.pitch - (d.pitch+4)/5
	}
	d.ox = (int(w) - cols*d.pitch) / 2
	d.oy = (int(h) - rows*d.pitch) / 2
	return d
}

func (d *DotDisplay) Size() (x, y int16) { return int16(d.cols), int16(d.rows) }

// Pitch returns the distance between dot origins in framebuffer pixels.
func (d *DotDisplay) Pitch() int { return d.pitch }

// Dot returns the region rectangle painted for LED (x, y).
func (d *DotDisplay) Dot(x, y int) image.Rectangle {
	px := d.ox + x*d.pitch
	py := d.oy + y*d.pitch
	return image.Rect(px, py, px+d.dot, py+d.dot)
}

func (d *DotDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || int(x) >= d.cols || y < 0 || int(y) >= d.rows {
		return
	}
	r := d.Dot(int(x), int(y))
	_ = d.r.FillRectangle(int16(r.Min.X), int16(r.Min.Y), int16(r.Dx()), int16(r.Dy()), c)
}

func (d *DotDisplay) Display() error { return d.r.Display() }

// Clear paints the whole region, gaps included.
func (d *DotDisplay) Clear(c color.RGBA) {
	w, h := d.r.Size()
	_ = d.r.FillRectangle(0, 0, w, h, c)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
