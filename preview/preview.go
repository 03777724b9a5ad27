// Package preview turns LED panels and matrices into images and terminal
// text.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"ledtext/ledmatrix"
	"ledtext/render"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

var ErrUnknownFormat = errors.New("unknown image format")

const (
	LitRune  = '●'
	DarkRune = '·'
)

var dark = color.RGBA{A: 0xFF}

// Image draws the panel one pixel per LED and upscales it by scale.
func Image(p *ledmatrix.Panel, scale int) *image.RGBA {
	w, h := p.Size()
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetRGBA(x, y, p.Color(x, y))
		}
	}
	return upscale(src, scale)
}

// Strip draws the whole matrix without a window.
func Strip(m *render.Matrix, scale int) *image.RGBA {
	h := 8
	src := image.NewRGBA(image.Rect(0, 0, m.Width, h))
	off := dark
	if m.Style.Background != nil {
		off = *m.Style.Background
	}
	for y := 0; y < h; y++ {
		for x := 0; x < m.Width; x++ {
			c := off
			if m.IsPixelSet(x, y) {
				c = m.Style.Foreground
			}
			src.SetRGBA(x, y, c)
		}
	}
	return upscale(src, scale)
}

func upscale(src *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// FormatFromPath picks "png" or "bmp" from a file extension. Unknown
// extensions default to png.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return "bmp"
	}
	return "png"
}

// Encode writes img as png or bmp.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png", "":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%s: %w", format, ErrUnknownFormat)
	}
}

// Text renders the panel as one line per LED row. With colored set, lit
// LEDs use the foreground colour and unlit ones the background, if any.
func Text(p *ledmatrix.Panel, colored bool) string {
	on := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(p.Style.Foreground)))
	off := lipgloss.NewStyle().Foreground(lipgloss.Color("#303030"))
	if p.Style.Background != nil {
		off = off.Foreground(lipgloss.Color(hexColor(*p.Style.Background)))
	}

	var b strings.Builder
	w, h := p.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, st := DarkRune, off
			if p.IsLit(x, y) {
				r, st = LitRune, on
			}
			if colored {
				b.WriteString(st.Render(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
