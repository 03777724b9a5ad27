// Package config resolves ledtext settings from defaults, dotenv files,
// environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ledtext/fonts"
	"ledtext/ledmatrix"
	"ledtext/render"

	"github.com/joho/godotenv"
)

var (
	ErrBadColor    = errors.New("bad color")
	ErrBadPolicy   = errors.New("bad width policy")
	ErrBadRotation = errors.New("bad rotation")
)

// Environment variables.
const (
	EnvText        = "LEDTEXT_TEXT"
	EnvFont        = "LEDTEXT_FONT"
	EnvPolicy      = "LEDTEXT_POLICY"
	EnvWidth       = "LEDTEXT_WIDTH"
	EnvRotate      = "LEDTEXT_ROTATE"
	EnvFG          = "LEDTEXT_FG"
	EnvBG          = "LEDTEXT_BG"
	EnvScrollTicks = "LEDTEXT_SCROLL_TICKS"
)

// DotenvFiles are tried in order; the first one present is read.
var DotenvFiles = []string{".env.local", ".env"}

type Config struct {
	Text        string
	Font        string
	Policy      render.Policy
	Width       int
	Rotation    ledmatrix.Orientation
	Foreground  color.RGBA
	Background  *color.RGBA
	ScrollTicks int
}

func Default() Config {
	return Config{
		Text:        "Hello, world!",
		Font:        fonts.Default,
		Policy:      render.PolicyTrailingWidthTrim,
		Width:       8,
		Rotation:    ledmatrix.Rotate0,
		Foreground:  render.DefaultForeground,
		ScrollTicks: 6,
	}
}

// Style returns the render style for the configured colours.
func (c Config) Style() render.Style {
	return render.Style{Foreground: c.Foreground, Background: c.Background}
}

// Load starts from Default, then applies the first dotenv file found in dir
// and then the process environment.
func Load(dir string) (Config, error) {
	cfg := Default()

	env, err := readDotenv(dir)
	if err != nil {
		return cfg, err
	}
	for _, k := range []string{EnvText, EnvFont, EnvPolicy, EnvWidth, EnvRotate, EnvFG, EnvBG, EnvScrollTicks} {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}
	if err := cfg.Apply(env); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readDotenv(dir string) (map[string]string, error) {
	for _, name := range DotenvFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		env, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return env, nil
	}
	return map[string]string{}, nil
}

// Apply overlays the LEDTEXT_* keys of env.
func (c *Config) Apply(env map[string]string) error {
	if v, ok := env[EnvText]; ok {
		c.Text = v
	}
	if v, ok := env[EnvFont]; ok && v != "" {
		c.Font = v
	}
	if v, ok := env[EnvPolicy]; ok && v != "" {
		p, err := ParsePolicy(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPolicy, err)
		}
		c.Policy = p
	}
	if v, ok := env[EnvWidth]; ok && v != "" {
		n, err := parsePositive(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWidth, err)
		}
		c.Width = n
	}
	if v, ok := env[EnvRotate]; ok && v != "" {
		o, err := ParseRotation(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRotate, err)
		}
		c.Rotation = o
	}
	if v, ok := env[EnvFG]; ok && v != "" {
		fg, err := ParseColor(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFG, err)
		}
		c.Foreground = fg
	}
	if v, ok := env[EnvBG]; ok {
		bg, err := ParseBackground(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBG, err)
		}
		c.Background = bg
	}
	if v, ok := env[EnvScrollTicks]; ok && v != "" {
		n, err := parsePositive(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvScrollTicks, err)
		}
		c.ScrollTicks = n
	}
	return nil
}

// RegisterFlags binds flags to c. Flag defaults are the current values, so
// call it after Load.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Text, "text", c.Text, "Text to show.")
	fs.StringVar(&c.Font, "font", c.Font, "Font: prop8, mono5x8, tomthumb or bdf:<path>.")
	fs.Var(policyValue{&c.Policy}, "policy", "Width policy: trim, legacy or mono.")
	fs.IntVar(&c.Width, "width", c.Width, "Physical panel width in LEDs.")
	fs.Var(rotationValue{&c.Rotation}, "rotate", "Text rotation: 0, 90, 180 or 270.")
	fs.Var(colorValue{&c.Foreground}, "fg", "Lit LED color, #rrggbb.")
	fs.Var(backgroundValue{&c.Background}, "bg", "Unlit LED color, #rrggbb (empty = none).")
	fs.IntVar(&c.ScrollTicks, "scroll-ticks", c.ScrollTicks, "Steps between scroll moves.")
}

// Validate checks values set through flags.
func (c Config) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("width %d: must be positive", c.Width)
	}
	if c.ScrollTicks < 1 {
		return fmt.Errorf("scroll ticks %d: must be positive", c.ScrollTicks)
	}
	return nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%d: must be positive", n)
	}
	return n, nil
}

// ParsePolicy accepts the short and long policy names.
func ParsePolicy(s string) (render.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trim", "trailing-width-trim":
		return render.PolicyTrailingWidthTrim, nil
	case "legacy", "legacy-full-advance":
		return render.PolicyLegacyFullAdvance, nil
	case "mono", "fixed-monospace":
		return render.PolicyFixedMonospace, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrBadPolicy)
}

// ParseRotation accepts 0, 90, 180 or 270 degrees.
func ParseRotation(s string) (ledmatrix.Orientation, error) {
	switch strings.TrimSpace(s) {
	case "0":
		return ledmatrix.Rotate0, nil
	case "90":
		return ledmatrix.Rotate90, nil
	case "180":
		return ledmatrix.Rotate180, nil
	case "270":
		return ledmatrix.Rotate270, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrBadRotation)
}

// ParseColor accepts #rrggbb with or without the hash.
func ParseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// ParseBackground is ParseColor where "" and "none" mean no background.
func ParseBackground(s string) (*color.RGBA, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return nil, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

type policyValue struct{ p *render.Policy }

func (v policyValue) String() string {
	if v.p == nil {
		return ""
	}
	return v.p.String()
}

func (v policyValue) Set(s string) error {
	p, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*v.p = p
	return nil
}

type rotationValue struct{ o *ledmatrix.Orientation }

func (v rotationValue) String() string {
	if v.o == nil {
		return ""
	}
	return v.o.String()
}

func (v rotationValue) Set(s string) error {
	o, err := ParseRotation(s)
	if err != nil {
		return err
	}
	*v.o = o
	return nil
}

type colorValue struct{ c *color.RGBA }

func (v colorValue) String() string {
	if v.c == nil {
		return ""
	}
	return FormatColor(*v.c)
}

func (v colorValue) Set(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	*v.c = c
	return nil
}

type backgroundValue struct{ c **color.RGBA }

func (v backgroundValue) String() string {
	if v.c == nil || *v.c == nil {
		return ""
	}
	return FormatColor(**v.c)
}

func (v backgroundValue) Set(s string) error {
	c, err := ParseBackground(s)
	if err != nil {
		return err
	}
	*v.c = c
	return nil
}
