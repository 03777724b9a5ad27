package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"ledtext/fonts/mono5x8"
	"ledtext/hal"
	"ledtext/ledmatrix"
	"ledtext/render"
)

type fakeHAL struct {
	log  hal.Logger
	fb   hal.Framebuffer
	keys chan hal.KeyEvent
	tick chan uint64
}

func newFakeHAL(buf *bytes.Buffer, s hal.Screen) *fakeHAL {
	return &fakeHAL{
		log:  hal.NewLogger(buf),
		fb:   hal.NewFramebuffer(s.Width, s.Height),
		keys: make(chan hal.KeyEvent, 16),
		tick: make(chan uint64, 16),
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return h }
func (h *fakeHAL) Time() hal.Time       { return h }

func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return h }
func (h *fakeHAL) Events() <-chan hal.KeyEvent  { return h.keys }
func (h *fakeHAL) Ticks() <-chan uint64         { return h.tick }

func (h *fakeHAL) press(code hal.KeyCode) {
	h.keys <- hal.KeyEvent{Code: code, Press: true}
}

func TestScrollAndKeys(t *testing.T) {
	cfg := Config{Text: "Hello, world!", Width: 8, ScrollTicks: 2}
	var buf bytes.Buffer
	h := newFakeHAL(&buf, Screen(cfg))
	s := newSystem(h, cfg)

	if !strings.Contains(buf.String(), `ledtext dev: text="Hello, world!"`) {
		t.Fatalf("missing startup log:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "mode=scrolling") {
		t.Fatalf("expected scrolling mode in log:\n%s", buf.String())
	}

	for i := 0; i < 4; i++ {
		if err := s.safeStep(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if got := s.panel.View.Offset(); got != 2 {
		t.Fatalf("expected offset 2 after 4 steps at 2 ticks, got %d", got)
	}

	h.press(hal.KeyEnter)
	for i := 0; i < 4; i++ {
		if err := s.safeStep(); err != nil {
			t.Fatalf("paused step %d: %v", i, err)
		}
	}
	if !s.paused || s.panel.View.Offset() != 2 {
		t.Fatalf("paused view moved to %d", s.panel.View.Offset())
	}

	h.press(hal.KeyRight)
	if err := s.safeStep(); err != nil {
		t.Fatal(err)
	}
	if s.panel.View.Offset() != 3 {
		t.Fatalf("single step: expected offset 3, got %d", s.panel.View.Offset())
	}

	h.press(hal.KeyLeft)
	h.press(hal.KeyUp)
	if err := s.safeStep(); err != nil {
		t.Fatal(err)
	}
	if s.panel.View.Offset() != 0 || s.panel.Orientation != ledmatrix.Rotate90 {
		t.Fatalf("expected reset and rotate 90, got offset %d rotate %s", s.panel.View.Offset(), s.panel.Orientation)
	}

	h.press(hal.KeyDown)
	h.press(hal.KeyDown)
	if err := s.safeStep(); err != nil {
		t.Fatal(err)
	}
	if s.panel.Orientation != ledmatrix.Rotate270 {
		t.Fatalf("expected rotate 270, got %s", s.panel.Orientation)
	}

	h.press(hal.KeyEscape)
	if err := s.safeStep(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
}

func TestPanelPainted(t *testing.T) {
	cfg := Config{Text: "!", Policy: render.PolicyLegacyFullAdvance}
	var buf bytes.Buffer
	h := newFakeHAL(&buf, Screen(cfg))
	s := newSystem(h, cfg)
	if err := s.safeStep(); err != nil {
		t.Fatal(err)
	}

	// LED (1, 0) is lit; sample the center of its dot.
	dot := s.dots.Dot(1, 0)
	x, y := dot.Min.X+dot.Dx()/2, dot.Min.Y+dot.Dy()/2
	fb := h.fb
	off := y*fb.StrideBytes() + x*2
	got := uint16(fb.Buffer()[off]) | uint16(fb.Buffer()[off+1])<<8
	if want := hal.RGB565From888(0, 128, 0); got != want {
		t.Fatalf("expected green LED, got %#04x", got)
	}
	if s.panel.View.Mode().String() != "static" {
		t.Fatalf("expected static mode, got %s", s.panel.View.Mode())
	}
}

func TestScreen(t *testing.T) {
	small := Screen(Config{Width: 8})
	if small.Width != 240 || small.Height != 8*maxPitch+statusHeight() {
		t.Fatalf("unexpected screen %+v", small)
	}
	wide := Screen(Config{Width: 64, Font: mono5x8.Font})
	if wide.Width != 640 {
		t.Fatalf("expected 640px panel, got %+v", wide)
	}
}

func TestPanicScreen(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Text: "x"}
	h := newFakeHAL(&buf, Screen(cfg))
	s := newSystem(h, cfg)
	s.panel = nil

	err := s.safeStep()
	if err == nil || !strings.Contains(err.Error(), "panic") {
		t.Fatalf("expected panic error, got %v", err)
	}
	if !strings.Contains(buf.String(), "ledtext panic:") {
		t.Fatalf("panic not logged:\n%s", buf.String())
	}
	if b := h.fb.Buffer(); b[len(b)-2] != 0xFF || b[len(b)-1] != 0xFF {
		t.Fatal("panic screen should clear to white")
	}
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	if p != "hé" || r != "llo" {
		t.Fatalf("unexpected split %q %q", p, r)
	}
	if p, r := takeRunes("ab", 5); p != "ab" || r != "" {
		t.Fatalf("unexpected split %q %q", p, r)
	}
}

func TestRewind(t *testing.T) {
	cfg := Config{Text: "Hello, world!", Width: 8, ScrollTicks: 1}
	var buf bytes.Buffer
	h := newFakeHAL(&buf, Screen(cfg))
	s := newSystem(h, cfg)
	m := s.panel.View.Matrix()

	h.press(hal.KeyEnter)
	for i := 0; i < 5; i++ {
		h.press(hal.KeyRight)
	}
	if err := s.safeStep(); err != nil {
		t.Fatal(err)
	}
	if got := s.panel.View.Offset(); got != 5 {
		t.Fatalf("expected offset 5, got %d", got)
	}

	h.press(hal.KeyLeft)
	if err := s.safeStep(); err != nil {
		t.Fatal(err)
	}
	v := s.panel.View
	if v.Offset() != 0 {
		t.Fatalf("rewind: expected offset 0, got %d", v.Offset())
	}
	if v.Matrix() != m || v.Width() != cfg.Width {
		t.Fatal("rewind should keep the matrix and panel width")
	}

	h.press(hal.KeyRight)
	if err := s.safeStep(); err != nil {
		t.Fatal(err)
	}
	if got := s.panel.View.Offset(); got != 1 {
		t.Fatalf("expected scrolling to resume from 0, got %d", got)
	}
}
