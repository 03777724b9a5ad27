// Package app runs the LED text simulator on a hal.HAL: a scrolling panel of
// LED dots above a small status console.
package app

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"ledtext/fonts/glyph"
	"ledtext/fonts/prop8"
	"ledtext/hal"
	"ledtext/internal/buildinfo"
	"ledtext/ledmatrix"
	"ledtext/render"
	"ledtext/scroll"
)

const (
	maxPitch    = 24
	minPitch    = 4
	maxPanelPx  = 640
	statusLines = 5
)

var black = color.RGBA{A: 0xFF}

type Config struct {
	Text        string
	Font        glyph.Provider
	FontName    string
	Policy      render.Policy
	Width       int
	Rotation    ledmatrix.Orientation
	Style       render.Style
	ScrollTicks int
}

func (c Config) withDefaults() Config {
	if c.Font == nil {
		c.Font, c.FontName = prop8.Font, "prop8"
	}
	if c.Width <= 0 {
		c.Width = scroll.DefaultWidth
	}
	if c.ScrollTicks <= 0 {
		c.ScrollTicks = 6
	}
	if c.Style.Foreground.A == 0 {
		c.Style.Foreground = render.DefaultForeground
	}
	return c
}

// Screen sizes the framebuffer so the panel fits in any rotation with the
// status console below it.
func Screen(cfg Config) hal.Screen {
	cfg = cfg.withDefaults()
	side := cfg.Width
	if side < glyph.CellHeight {
		side = glyph.CellHeight
	}
	pitch := maxPanelPx / side
	if pitch > maxPitch {
		pitch = maxPitch
	}
	if pitch < minPitch {
		pitch = minPitch
	}
	w := side * pitch
	if w < 240 {
		w = 240
	}
	return hal.Screen{
		Width:  w,
		Height: side*pitch + statusHeight(),
		Title:  "ledtext",
	}
}

// New starts the simulator with default settings.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{Text: "Hello, world!"})
}

// NewWithConfig starts the simulator and returns its step function.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return s.safeStep
}

type system struct {
	cfg Config
	log hal.Logger
	fb  hal.Framebuffer

	keys  <-chan hal.KeyEvent
	ticks <-chan uint64

	panel  *ledmatrix.Panel
	dots   *ledmatrix.DotDisplay
	status *statusConsole

	steps   int
	elapsed uint64
	paused  bool
	dirty   bool
}

func newSystem(h hal.HAL, cfg Config) *system {
	cfg = cfg.withDefaults()
	s := &system{cfg: cfg, log: h.Logger()}

	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
	}
	if t := h.Time(); t != nil {
		s.ticks = t.Ticks()
	}

	r := render.New(cfg.Font, cfg.Policy)
	r.Style = cfg.Style
	m := r.Render(cfg.Text)
	s.panel = ledmatrix.NewPanel(scroll.New(m, cfg.Width), cfg.Rotation)

	if s.fb != nil {
		s.fb.ClearRGB(0, 0, 0)
		panelPx := s.fb.Height() - statusHeight()
		s.status = newStatusConsole(ledmatrix.NewRegion(s.fb, 0, panelPx, s.fb.Width(), statusHeight()))
		s.layout()
	}

	s.logf("ledtext %s: text=%q runes=%d font=%s policy=%s", buildinfo.Short(), m.Text, utf8.RuneCountInString(m.Text), cfg.FontName, cfg.Policy)
	s.logf("panel: width=%d matrix=%d mode=%s rotate=%s", cfg.Width, m.Width, s.panel.View.Mode(), cfg.Rotation)
	s.printf("%s %s %dpx\n", cfg.FontName, cfg.Policy, m.Width)
	s.printf("mode %s\n", s.panel.View.Mode())
	return s
}

// layout sizes the dot grid for the current rotation.
func (s *system) layout() {
	if s.fb == nil {
		return
	}
	w, h := s.panel.Size()
	side := w
	if h > side {
		side = h
	}
	region := ledmatrix.NewRegion(s.fb, 0, 0, s.fb.Width(), s.fb.Height()-statusHeight())
	s.dots = ledmatrix.NewDotDisplay(region, side, side)
	s.dots.Clear(black)
	s.dirty = true
}

func (s *system) step() error {
	if err := s.drainKeys(); err != nil {
		return err
	}
	s.drainTicks()

	s.steps++
	if !s.paused && s.steps%s.cfg.ScrollTicks == 0 && s.panel.View.Mode() == scroll.ModeScrolling {
		s.panel.View.ScrollByOnePixel()
		s.dirty = true
	}
	return s.redraw()
}

func (s *system) drainKeys() error {
	for {
		select {
		case ev := <-s.keys:
			if err := s.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *system) drainTicks() {
	for {
		select {
		case <-s.ticks:
			s.elapsed++
		default:
			return
		}
	}
}

func (s *system) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	switch ev.Code {
	case hal.KeyEscape:
		s.logf("ledtext: quit after %d steps", s.steps)
		return hal.ErrQuit
	case hal.KeyEnter, hal.KeySpace:
		s.paused = !s.paused
		state := "resumed"
		if s.paused {
			state = "paused"
		}
		s.logf("ledtext: %s at offset %d (%dms)", state, s.panel.View.Offset(), s.elapsed)
		s.printf("%s @%d\n", state, s.panel.View.Offset())
	case hal.KeyRight:
		s.panel.View.ScrollByOnePixel()
		s.dirty = true
	case hal.KeyLeft:
		v := s.panel.View
		s.panel.View = scroll.New(v.Matrix(), v.Width())
		s.dirty = true
	case hal.KeyUp, hal.KeyDown:
		o := s.panel.Orientation + 1
		if ev.Code == hal.KeyDown {
			o = s.panel.Orientation + 3
		}
		s.panel.Orientation = o % 4
		s.logf("panel: rotate=%s", s.panel.Orientation)
		s.printf("rotate %s\n", s.panel.Orientation)
		s.layout()
	}
	return nil
}

func (s *system) redraw() error {
	if !s.dirty || s.dots == nil {
		return nil
	}
	s.dirty = false
	if err := s.panel.Draw(s.dots); err != nil {
		return fmt.Errorf("draw panel: %w", err)
	}
	return nil
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (s *system) printf(format string, args ...any) {
	if s.status == nil {
		return
	}
	s.status.printf(format, args...)
	s.dirty = true
}
