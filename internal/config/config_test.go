package config

import (
	"errors"
	"flag"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"ledtext/ledmatrix"
	"ledtext/render"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvText, EnvFont, EnvPolicy, EnvWidth, EnvRotate, EnvFG, EnvBG, EnvScrollTicks} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Text != want.Text || cfg.Font != "prop8" || cfg.Policy != render.PolicyTrailingWidthTrim || cfg.Width != 8 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Foreground != render.DefaultForeground || cfg.Background != nil {
		t.Fatalf("unexpected default colours %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "LEDTEXT_TEXT=from env file\nLEDTEXT_WIDTH=16\n")
	writeFile(t, filepath.Join(dir, ".env.local"), "LEDTEXT_TEXT=from local\nLEDTEXT_POLICY=legacy\nLEDTEXT_BG=#000010\n")
	t.Setenv(EnvRotate, "90")
	t.Setenv(EnvPolicy, "mono")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Text != "from local" {
		t.Fatalf(".env.local should win, got %q", cfg.Text)
	}
	if cfg.Width != 8 {
		t.Fatalf(".env should be ignored when .env.local exists, got width %d", cfg.Width)
	}
	if cfg.Policy != render.PolicyFixedMonospace {
		t.Fatalf("environment should beat dotenv, got %s", cfg.Policy)
	}
	if cfg.Rotation != ledmatrix.Rotate90 {
		t.Fatalf("expected rotation 90, got %s", cfg.Rotation)
	}
	if cfg.Background == nil || *cfg.Background != (color.RGBA{B: 0x10, A: 0xFF}) {
		t.Fatalf("unexpected background %v", cfg.Background)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse([]string{"-text", "flag", "-policy", "trim", "-fg", "ff0000", "-bg", "none", "-rotate", "180"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Text != "flag" || cfg.Policy != render.PolicyTrailingWidthTrim || cfg.Rotation != ledmatrix.Rotate180 {
		t.Fatalf("flags should win, got %+v", cfg)
	}
	if cfg.Foreground != (color.RGBA{R: 0xFF, A: 0xFF}) || cfg.Background != nil {
		t.Fatalf("unexpected colours after flags %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadBadValue(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "LEDTEXT_FG=green\n")
	if _, err := Load(dir); !errors.Is(err, ErrBadColor) {
		t.Fatalf("expected ErrBadColor, got %v", err)
	}

	t.Setenv(EnvFG, "")
	writeFile(t, filepath.Join(dir, ".env"), "LEDTEXT_WIDTH=0\n")
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestParse(t *testing.T) {
	if _, err := ParsePolicy("wide"); !errors.Is(err, ErrBadPolicy) {
		t.Fatalf("expected ErrBadPolicy, got %v", err)
	}
	if p, err := ParsePolicy("Legacy-Full-Advance"); err != nil || p != render.PolicyLegacyFullAdvance {
		t.Fatalf("long policy name: %v %v", p, err)
	}
	if _, err := ParseRotation("45"); !errors.Is(err, ErrBadRotation) {
		t.Fatalf("expected ErrBadRotation, got %v", err)
	}
	for _, s := range []string{"#12345", "#gg0000", "#1234567"} {
		if _, err := ParseColor(s); !errors.Is(err, ErrBadColor) {
			t.Fatalf("%q: expected ErrBadColor, got %v", s, err)
		}
	}
	c, err := ParseColor("#008000")
	if err != nil || c != render.DefaultForeground {
		t.Fatalf("expected default green, got %v %v", c, err)
	}
	if FormatColor(c) != "#008000" {
		t.Fatalf("unexpected format %s", FormatColor(c))
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected width error")
	}
	cfg = Default()
	cfg.ScrollTicks = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected scroll ticks error")
	}
}
