// Command ledpng renders LED text to PNG or BMP images: one frame of the
// panel, a sequence of scroll frames, or the whole unwindowed strip.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"ledtext/fonts"
	"ledtext/internal/config"
	"ledtext/ledmatrix"
	"ledtext/preview"
	"ledtext/render"
	"ledtext/scroll"
)

const defaultOutPath = "ledtext.png"

type options struct {
	cfg   config.Config
	scale int
	steps int
	strip bool
	out   string
}

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	opts := options{cfg: cfg}
	opts.cfg.RegisterFlags(flag.CommandLine)
	flag.IntVar(&opts.scale, "scale", 16, "Output pixels per LED.")
	flag.IntVar(&opts.steps, "steps", 1, "Number of scroll frames to write.")
	flag.BoolVar(&opts.strip, "strip", false, "Write the whole rendered matrix instead of the panel.")
	flag.StringVar(&opts.out, "out", defaultOutPath, "Output image path (.png or .bmp).")
	flag.Parse()

	if opts.out == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}
	if opts.scale < 1 || opts.steps < 1 {
		fmt.Fprintln(os.Stderr, "error: -scale and -steps must be positive")
		os.Exit(2)
	}
	if err := opts.cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	paths, err := run(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
}

func run(opts options) ([]string, error) {
	font, err := fonts.Lookup(opts.cfg.Font)
	if err != nil {
		return nil, err
	}
	r := render.New(font, opts.cfg.Policy)
	r.Style = opts.cfg.Style()
	m := r.Render(opts.cfg.Text)

	if opts.strip {
		if m.Width == 0 {
			return nil, fmt.Errorf("text %q renders empty", opts.cfg.Text)
		}
		return []string{opts.out}, writeImage(opts.out, preview.Strip(m, opts.scale))
	}

	panel := ledmatrix.NewPanel(scroll.New(m, opts.cfg.Width), opts.cfg.Rotation)
	var paths []string
	for i := 0; i < opts.steps; i++ {
		path := framePath(opts.out, i, opts.steps)
		if err := writeImage(path, preview.Image(panel, opts.scale)); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		panel.View.ScrollByOnePixel()
	}
	return paths, nil
}

// framePath numbers frames before the extension when there is more than one.
func framePath(out string, i, n int) string {
	if n <= 1 {
		return out
	}
	ext := filepath.Ext(out)
	digits := len(fmt.Sprint(n - 1))
	return fmt.Sprintf("%s-%0*d%s", strings.TrimSuffix(out, ext), digits, i, ext)
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := preview.Encode(f, img, preview.FormatFromPath(path)); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	return nil
}
