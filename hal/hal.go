// Package hal is the host side of the LED simulator: a logger, an RGB565
// framebuffer, keyboard events and a tick stream, run either in a desktop
// window or headless.
package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrQuit ends a run loop without reporting an error.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeySpace
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream, one tick per millisecond.
type Time interface {
	Ticks() <-chan uint64
}

// HAL is the application's only contact with the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}

// Screen sizes the simulated display.
type Screen struct {
	Width  int
	Height int
	// Scale multiplies the window size; the framebuffer is unaffected.
	Scale int
	Title string
}

func (s Screen) withDefaults() Screen {
	if s.Width <= 0 {
		s.Width = 320
	}
	if s.Height <= 0 {
		s.Height = 320
	}
	if s.Scale <= 0 {
		s.Scale = 2
	}
	if s.Title == "" {
		s.Title = "ledtext"
	}
	return s
}
