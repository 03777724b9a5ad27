package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"ledtext/internal/config"
	"ledtext/preview"
)

func TestRunFullCycle(t *testing.T) {
	cfg := config.Default()
	cfg.Text = "Hi there"
	var buf bytes.Buffer
	if err := run(context.Background(), &buf, options{cfg: cfg}); err != nil {
		t.Fatalf("run: %v", err)
	}
	frames := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n\n")
	if len(frames) < 2 {
		t.Fatalf("expected a scroll cycle, got %d frames", len(frames))
	}
	if frames[0] == frames[1] {
		t.Fatal("consecutive frames should differ")
	}
	for i, f := range frames {
		if n := len(strings.Split(f, "\n")); n != 8 {
			t.Fatalf("frame %d: expected 8 rows, got %d", i, n)
		}
	}
}

func TestRunStatic(t *testing.T) {
	cfg := config.Default()
	cfg.Text = "!"
	var buf bytes.Buffer
	if err := run(context.Background(), &buf, options{cfg: cfg, redraw: true}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatal("a single frame should not move the cursor")
	}
	if got := strings.Count(buf.String(), string(preview.LitRune)); got != 6 {
		t.Fatalf("expected 6 lit LEDs, got %d", got)
	}
}

func TestRunCanceled(t *testing.T) {
	cfg := config.Default()
	cfg.Text = "a long enough message"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := run(ctx, &buf, options{cfg: cfg, frames: 10, delay: 1e9})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
