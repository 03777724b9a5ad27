package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"ledtext/fonts/glyph"
	"ledtext/fonts/mono5x8"
	"ledtext/hal"
	"ledtext/ledmatrix"

	"tinygo.org/x/tinyfont"
)

// safeStep runs one step and turns a panic into a logged error and a panic
// screen on the framebuffer.
func (s *system) safeStep() (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		stack := string(debug.Stack())
		s.logf("ledtext panic: %v", v)
		for _, line := range strings.Split(stack, "\n") {
			if line != "" {
				s.logf("%s", line)
			}
		}
		if s.fb != nil {
			drawPanic(s.fb, []string{"ledtext panic:", fmt.Sprintf("%v", v)})
		}
		err = fmt.Errorf("panic: %v", v)
	}()
	return s.step()
}

func drawPanic(fb hal.Framebuffer, lines []string) {
	fb.ClearRGB(255, 255, 255)

	font := glyph.Fonter(mono5x8.Font)
	fontWidth := int16(mono5x8.Advance)
	fontHeight := int16(statusFontHeight)
	d := ledmatrix.NewRegion(fb, 0, 0, fb.Width(), fb.Height())

	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > int16(fb.Height()) {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, statusFontOffset, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func drawTextLine(
	d *ledmatrix.Region,
	font tinyfont.Fonter,
	fontWidth, fontOffset int16,
	x0, y0 int16,
	s string,
	fg color.RGBA,
) {
	drawX := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, drawX, y0+fontOffset, r, fg)
		drawX += fontWidth
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
