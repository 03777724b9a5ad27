package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"ledtext/internal/config"
	"ledtext/render"
)

func TestFramePath(t *testing.T) {
	if got := framePath("out.png", 0, 1); got != "out.png" {
		t.Fatalf("single frame: got %q", got)
	}
	if got := framePath("dir/out.png", 3, 12); got != "dir/out-03.png" {
		t.Fatalf("numbered frame: got %q", got)
	}
}

func TestRunFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Text = "Hello"
	opts := options{cfg: cfg, scale: 2, steps: 3, out: filepath.Join(dir, "hello.png")}

	paths, err := run(opts)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 frames, got %v", paths)
	}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", p, err)
		}
		if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
			t.Fatalf("%s: expected 16x16, got %v", p, b)
		}
	}
}

func TestRunStrip(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Text = "A"
	cfg.Policy = render.PolicyLegacyFullAdvance
	opts := options{cfg: cfg, scale: 1, steps: 1, strip: true, out: filepath.Join(dir, "a.bmp")}

	if _, err := run(opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	if fi, err := os.Stat(opts.out); err != nil || fi.Size() == 0 {
		t.Fatalf("expected bmp output, got %v", err)
	}

	opts.cfg.Text = ""
	if _, err := run(opts); err == nil {
		t.Fatal("expected error for empty strip")
	}

	opts.cfg.Font = "nope"
	if _, err := run(opts); err == nil {
		t.Fatal("expected error for unknown font")
	}
}
