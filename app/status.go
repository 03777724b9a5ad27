package app

import (
	"fmt"

	"ledtext/fonts/glyph"
	"ledtext/fonts/mono5x8"
	"ledtext/ledmatrix"

	"tinygo.org/x/tinyterm"
)

const (
	statusFontHeight = glyph.CellHeight + 1
	statusFontOffset = glyph.Baseline
)

func statusHeight() int { return statusLines * statusFontHeight }

// statusConsole is a tinyterm terminal drawn with the LED monospace font.
type statusConsole struct {
	t *tinyterm.Terminal
}

func newStatusConsole(d *ledmatrix.Region) *statusConsole {
	t := tinyterm.NewTerminal(d)
	t.Configure(&tinyterm.Config{
		Font:              glyph.Fonter(mono5x8.Font),
		FontHeight:        statusFontHeight,
		FontOffset:        statusFontOffset,
		UseSoftwareScroll: true,
	})
	return &statusConsole{t: t}
}

func (c *statusConsole) printf(format string, args ...any) {
	fmt.Fprintf(c.t, format, args...)
	c.t.Display()
}
