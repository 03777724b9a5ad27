package scroll

import (
	"testing"

	"ledtext/fonts/prop8"
	"ledtext/render"
)

func frame(v *View) [8][]bool {
	var f [8][]bool
	for y := range f {
		f[y] = make([]bool, v.Width())
		for x := range f[y] {
			f[y][x] = v.IsPixelSet(x, y)
		}
	}
	return f
}

func sameFrame(a, b [8][]bool) bool {
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

// matrixOfWidth returns a matrix whose column x has only row x%8 lit.
func matrixOfWidth(w int) *render.Matrix {
	m := &render.Matrix{Width: w, Pixels: make([]byte, w*8)}
	for x := 0; x < w; x++ {
		m.Pixels[(x%8)*w+x] = 1
	}
	return m
}

func TestCenteredExclamation(t *testing.T) {
	m := render.New(prop8.Font, render.PolicyLegacyFullAdvance).Render("!")
	v := New(m, DefaultWidth)
	if v.Mode() != ModeStatic {
		t.Fatalf("expected static mode, got %s", v.Mode())
	}
	for y := 0; y < 8; y++ {
		want := y <= 4 || y == 6
		if got := v.IsPixelSet(1, y); got != want {
			t.Fatalf("physical column 1 row %d: expected %v got %v", y, want, got)
		}
		if v.IsPixelSet(0, y) {
			t.Fatalf("padding column 0 row %d lit", y)
		}
		for x := 2; x < 8; x++ {
			if v.IsPixelSet(x, y) {
				t.Fatalf("column %d row %d lit", x, y)
			}
		}
	}
}

func TestScrollWraps(t *testing.T) {
	v := New(matrixOfWidth(20), DefaultWidth)
	if v.Mode() != ModeScrolling {
		t.Fatalf("expected scrolling mode, got %s", v.Mode())
	}
	start := frame(v)

	v.ScrollByOnePixel()
	if v.Offset() != 1 {
		t.Fatalf("expected offset 1, got %d", v.Offset())
	}
	if !v.IsPixelSet(0, 1) || v.IsPixelSet(0, 0) {
		t.Fatal("window did not shift left by one column")
	}

	for i := 1; i < 20; i++ {
		v.ScrollByOnePixel()
	}
	if v.Offset() != 0 {
		t.Fatalf("expected offset to wrap to 0, got %d", v.Offset())
	}
	if !sameFrame(start, frame(v)) {
		t.Fatal("20 scrolls should restore the first frame")
	}
}

func TestScrollWrapsAroundEnd(t *testing.T) {
	v := New(matrixOfWidth(10), DefaultWidth)
	for i := 0; i < 5; i++ {
		v.ScrollByOnePixel()
	}
	// Physical column 5 reads matrix column (5+5)%10 = 0.
	if !v.IsPixelSet(5, 0) {
		t.Fatal("expected wrap to matrix column 0")
	}
	if !v.IsPixelSet(4, 1) {
		t.Fatal("expected matrix column 9 (row 1) at physical column 4")
	}
}

func TestStaticDoesNotScroll(t *testing.T) {
	for _, w := range []int{3, 8} {
		v := New(matrixOfWidth(w), DefaultWidth)
		before := frame(v)
		v.ScrollByOnePixel()
		if v.Offset() != 0 || !sameFrame(before, frame(v)) {
			t.Fatalf("width %d: static view moved", w)
		}
	}
}

func TestExactFitIsUnshifted(t *testing.T) {
	v := New(matrixOfWidth(8), DefaultWidth)
	for x := 0; x < 8; x++ {
		if !v.IsPixelSet(x, x) {
			t.Fatalf("column %d should map to matrix column %d", x, x)
		}
	}
}

func TestEmptyAndOutOfRange(t *testing.T) {
	v := New(render.Text(""), DefaultWidth)
	if v.IsPixelSet(0, 0) || v.Mode() != ModeStatic {
		t.Fatal("empty view should be static and dark")
	}
	v.ScrollByOnePixel()
	if v.Offset() != 0 {
		t.Fatal("empty view should not scroll")
	}

	full := &render.Matrix{Width: 30, Pixels: make([]byte, 30*8)}
	for i := range full.Pixels {
		full.Pixels[i] = 7
	}
	v = New(full, DefaultWidth)
	if !v.IsPixelSet(0, 0) || !v.IsPixelSet(7, 7) {
		t.Fatal("any non-zero byte should be on")
	}
	for _, p := range [][2]int{{-1, 0}, {8, 0}, {0, -1}, {0, 8}} {
		if v.IsPixelSet(p[0], p[1]) {
			t.Fatalf("(%d,%d) outside the window reported lit", p[0], p[1])
		}
	}
}

func TestDefaultWidth(t *testing.T) {
	v := New(nil, 0)
	if v.Width() != DefaultWidth || v.IsPixelSet(0, 0) {
		t.Fatalf("unexpected view width %d", v.Width())
	}
}

func TestMismatchedMatrixIsEmpty(t *testing.T) {
	for _, m := range []*render.Matrix{
		{Text: "short", Width: 20, Pixels: make([]byte, 10)},
		{Width: -3},
	} {
		v := New(m, 8)
		if v.Mode() != ModeStatic || v.Matrix().Width != 0 {
			t.Fatalf("width %d: expected an empty static view", m.Width)
		}
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if v.IsPixelSet(x, y) {
					t.Fatalf("width %d: (%d,%d) lit", m.Width, x, y)
				}
			}
		}
		v.ScrollByOnePixel()
		if v.Offset() != 0 {
			t.Fatalf("width %d: empty view scrolled", m.Width)
		}
	}
	if got := New(&render.Matrix{Text: "kept", Width: 3}, 8).Matrix().Text; got != "kept" {
		t.Fatalf("expected text to survive, got %q", got)
	}
}
