// Command ledterm plays scrolling LED text in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"ledtext/fonts"
	"ledtext/internal/config"
	"ledtext/ledmatrix"
	"ledtext/preview"
	"ledtext/render"
	"ledtext/scroll"

	"golang.org/x/term"
)

type options struct {
	cfg    config.Config
	frames int
	delay  time.Duration
	color  bool
	// redraw moves the cursor back over the previous frame.
	redraw bool
}

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	opts := options{cfg: cfg, redraw: tty}
	opts.cfg.RegisterFlags(flag.CommandLine)
	flag.IntVar(&opts.frames, "frames", 0, "Frames to play (0 = one full scroll cycle).")
	flag.DurationVar(&opts.delay, "delay", 80*time.Millisecond, "Delay between frames.")
	flag.BoolVar(&opts.color, "color", tty, "Color the LEDs.")
	flag.Parse()

	if err := opts.cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if tty {
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols < opts.cfg.Width {
			fmt.Fprintf(os.Stderr, "warning: panel is %d LEDs wide but the terminal has %d columns\n", opts.cfg.Width, cols)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Stdout, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, opts options) error {
	font, err := fonts.Lookup(opts.cfg.Font)
	if err != nil {
		return err
	}
	r := render.New(font, opts.cfg.Policy)
	r.Style = opts.cfg.Style()
	m := r.Render(opts.cfg.Text)
	panel := ledmatrix.NewPanel(scroll.New(m, opts.cfg.Width), opts.cfg.Rotation)

	frames := opts.frames
	if frames <= 0 {
		frames = 1
		if panel.View.Mode() == scroll.ModeScrolling {
			frames = m.Width
		}
	}
	_, rows := panel.Size()

	for i := 0; i < frames; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(opts.delay):
			}
			if opts.redraw {
				fmt.Fprintf(w, "\x1b[%dA", rows)
			} else {
				fmt.Fprintln(w)
			}
		}
		if _, err := io.WriteString(w, preview.Text(panel, opts.color)); err != nil {
			return err
		}
		panel.View.ScrollByOnePixel()
	}
	return nil
}
