// Package tinyterm is a small line console for displays driven through the
// TinyGo drivers Displayer interface. Text is drawn with any tinyfont.Fonter
// and scrolls up a line at a time when the bottom row is full.
package tinyterm

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Displayer is a drivers.Displayer that can also fill rectangles and, for
// hardware scrolling, move its scroll origin.
type Displayer interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetScroll(line int16)
	SetRotation(rotation drivers.Rotation) error
}

// scrollUpper is implemented by displays that can shift their contents up in
// memory. Without it, software scrolling clears the screen.
type scrollUpper interface {
	ScrollUp(pixels int16, bg color.RGBA) error
}

var (
	defaultFG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	defaultBG = color.RGBA{A: 0xFF}
)

// Config contains the configuration for a Terminal.
type Config struct {
	Font tinyfont.Fonter

	// FontHeight is the line pitch in pixels.
	FontHeight int16

	// FontOffset is the baseline within a line.
	FontOffset int16

	// UseSoftwareScroll moves text up through the display (ScrollUp when
	// available) instead of using the display's hardware scroll origin.
	UseSoftwareScroll bool

	// Foreground and Background default to white on black when zero.
	Foreground color.RGBA
	Background color.RGBA
}

// Terminal writes text line by line onto a Displayer.
type Terminal struct {
	display Displayer
	width   int16
	height  int16
	scroll  int16

	rows int16
	cols int16
	next int16

	inEscape bool
	inCSI    bool

	font       tinyfont.Fonter
	fontWidth  int16
	fontHeight int16
	fontOffset int16
	fg, bg     color.RGBA

	softScroll bool
}

// NewTerminal returns a Terminal for display. Configure must be called before
// writing.
func NewTerminal(display Displayer) *Terminal {
	return &Terminal{display: display}
}

// Configure sizes the text grid from the display and font and clears the
// first line.
func (t *Terminal) Configure(config *Config) {
	_, charWidth := tinyfont.LineWidth(config.Font, "0")

	t.font = config.Font
	t.fontWidth = int16(charWidth)
	if t.fontWidth < 1 {
		t.fontWidth = 1
	}
	t.fontHeight = config.FontHeight
	if t.fontHeight < 1 {
		t.fontHeight = 1
	}
	t.fontOffset = config.FontOffset

	t.fg, t.bg = config.Foreground, config.Background
	if t.fg == (color.RGBA{}) {
		t.fg = defaultFG
	}
	if t.bg == (color.RGBA{}) {
		t.bg = defaultBG
	}

	t.width, t.height = t.display.Size()
	t.rows = t.height / t.fontHeight
	t.cols = t.width / t.fontWidth

	t.softScroll = config.UseSoftwareScroll
	t.scroll = 0
	t.next = 0
	t.inEscape, t.inCSI = false, false
	if !t.softScroll {
		t.display.SetScroll(0)
	}
	_ = t.display.FillRectangle(0, 0, t.width, t.fontHeight, t.bg)
}

// Write draws buf as UTF-8 text. '\n' starts a new line, '\r' returns to the
// first column and '\b' moves back one cell. Escape sequences are consumed
// without effect.
func (t *Terminal) Write(buf []byte) (int, error) {
	for i := 0; i < len(buf); {
		b := buf[i]
		if b < utf8.RuneSelf || t.inEscape || t.inCSI {
			t.putbyte(b)
			i++
			continue
		}
		r, sz := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError && sz == 1 {
			r = rune(b)
		}
		t.drawrune(r)
		i += sz
	}
	return len(buf), nil
}

// WriteByte writes a single byte.
func (t *Terminal) WriteByte(b byte) error {
	t.putbyte(b)
	return nil
}

// Printf formats like fmt.Printf onto the terminal.
func (t *Terminal) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(t, format, args...)
}

// Display flushes the display. Call it after writing.
func (t *Terminal) Display() {
	_ = t.display.Display()
}

// Position reports the cursor as column and line.
func (t *Terminal) Position() (col, line int16) {
	return t.next, t.scroll / t.fontHeight
}

func (t *Terminal) putbyte(b byte) {
	switch {
	case t.inCSI:
		// Parameter and intermediate bytes are 0x20-0x3F; anything else ends
		// the sequence.
		if b < 0x20 || b > 0x3F {
			t.inCSI = false
		}
		return
	case t.inEscape:
		t.inEscape = false
		t.inCSI = b == '['
		return
	}

	switch b {
	case 0x1b:
		t.inEscape = true
	case '\n':
		t.lf()
	case '\r':
		t.next = 0
	case '\b':
		if t.next > 0 {
			t.next--
		}
	default:
		if b >= 0x20 {
			t.drawrune(rune(b))
		}
	}
}

type clipDisplayer struct {
	base Displayer
	x0   int16
	y0   int16
	x1   int16
	y1   int16
}

func (d clipDisplayer) Size() (x, y int16) { return d.base.Size() }
func (d clipDisplayer) Display() error     { return d.base.Display() }

func (d clipDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if x < d.x0 || x >= d.x1 || y < d.y0 || y >= d.y1 {
		return
	}
	d.base.SetPixel(x, y, c)
}

func (t *Terminal) drawrune(r rune) {
	if t.next >= t.cols {
		t.lf()
	}
	x := t.next * t.fontWidth
	_ = t.display.FillRectangle(x, t.scroll, t.fontWidth, t.fontHeight, t.bg)
	// Glyphs never paint outside their own cell.
	cell := clipDisplayer{
		base: t.display,
		x0:   x,
		y0:   t.scroll,
		x1:   x + t.fontWidth,
		y1:   t.scroll + t.fontHeight,
	}
	tinyfont.DrawChar(cell, t.font, x, t.scroll+t.fontOffset, r, t.fg)
	t.next++
}

func (t *Terminal) lf() {
	t.next = 0
	usable := t.rows * t.fontHeight
	if usable <= 0 {
		usable = t.height
	}

	if t.softScroll {
		if t.scroll+t.fontHeight >= usable {
			if s, ok := t.display.(scrollUpper); ok {
				_ = s.ScrollUp(t.fontHeight, t.bg)
			} else {
				_ = t.display.FillRectangle(0, 0, t.width, t.height, t.bg)
			}
			t.scroll = usable - t.fontHeight
		} else {
			t.scroll += t.fontHeight
		}
	} else {
		t.scroll = (t.scroll + t.fontHeight) % usable
		t.display.SetScroll((t.scroll + t.fontHeight) % t.height)
	}
	_ = t.display.FillRectangle(0, t.scroll, t.width, t.fontHeight, t.bg)
}
