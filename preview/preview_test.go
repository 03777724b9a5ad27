package preview

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"ledtext/fonts/prop8"
	"ledtext/ledmatrix"
	"ledtext/render"
	"ledtext/scroll"

	"golang.org/x/image/bmp"
)

func exclamationPanel() *ledmatrix.Panel {
	m := render.New(prop8.Font, render.PolicyLegacyFullAdvance).Render("!")
	return ledmatrix.NewPanel(scroll.New(m, scroll.DefaultWidth), ledmatrix.Rotate0)
}

func TestText(t *testing.T) {
	got := Text(exclamationPanel(), false)
	want := strings.Join([]string{
		"·●······",
		"·●······",
		"·●······",
		"·●······",
		"·●······",
		"········",
		"·●······",
		"········",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("unexpected text preview:\n%s\nwant:\n%s", got, want)
	}

	colored := Text(exclamationPanel(), true)
	if strings.Count(colored, string(LitRune)) != 6 || strings.Count(colored, string(DarkRune)) != 58 {
		t.Fatalf("colored preview lost LEDs:\n%s", colored)
	}
}

func TestImageScale(t *testing.T) {
	img := Image(exclamationPanel(), 4)
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("expected 32x32, got %v", b)
	}
	if got := img.RGBAAt(5, 2); got != render.DefaultForeground {
		t.Fatalf("expected lit LED at (5,2), got %v", got)
	}
	if got := img.RGBAAt(3, 2); got != dark {
		t.Fatalf("expected dark LED at (3,2), got %v", got)
	}
	if got := img.RGBAAt(5, 22); got != dark {
		t.Fatalf("row 5 should be dark, got %v", got)
	}
}

func TestStrip(t *testing.T) {
	bg := color.RGBA{B: 90, A: 255}
	r := render.New(prop8.Font, render.PolicyTrailingWidthTrim)
	r.Style.Background = &bg
	m := r.Render("Hello, world")

	img := Strip(m, 1)
	if b := img.Bounds(); b.Dx() != m.Width || b.Dy() != 8 {
		t.Fatalf("expected %dx8, got %v", m.Width, b)
	}
	for x := 0; x < m.Width; x++ {
		for y := 0; y < 8; y++ {
			want := bg
			if m.IsPixelSet(x, y) {
				want = m.Style.Foreground
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("(%d,%d): expected %v got %v", x, y, want, got)
			}
		}
	}
}

func TestEncode(t *testing.T) {
	img := Image(exclamationPanel(), 2)

	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatFromPath("out.png")); err != nil {
		t.Fatalf("png: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("decode png: %v", err)
	}

	buf.Reset()
	if err := Encode(&buf, img, FormatFromPath("OUT.BMP")); err != nil {
		t.Fatalf("bmp: %v", err)
	}
	dec, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("decode bmp: %v", err)
	}
	if dec.Bounds().Dx() != 16 {
		t.Fatalf("expected width 16, got %d", dec.Bounds().Dx())
	}

	if err := Encode(&buf, img, "gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
