package ui

import (
	"strings"
	"testing"

	"fly-the-w/internal/animation"
	"fly-the-w/internal/plugin"
	"fly-the-w/internal/testutil"
)

func TestRenderFrameEncodesPixelPairs(t *testing.T) {
	frame := animation.NewFrame(2, 2)
	frame.Set(0, 0, animation.ColorWrigleyBlue)
	frame.Set(0, 1, animation.ColorPinstripeRed)

	text := renderFrame(frame)

	// Two pixel rows collapse into one text line.
	if got := strings.Count(text, "\n"); got != 1 {
		t.Fatalf("lines = %d, want 1", got)
	}
	if !strings.Contains(text, "[#0e3386:#cc3433]") {
		t.Fatalf("missing blue-over-red color tag in %q", text)
	}
	if !strings.HasSuffix(text, "[-:-]\n") {
		t.Fatalf("line must reset colors, got %q", text)
	}
}

func TestRenderStatus(t *testing.T) {
	idle := renderStatus(plugin.Status{Team: "CHC"})
	if !strings.Contains(idle, "idle") || !strings.Contains(idle, "CHC") {
		t.Fatalf("idle status = %q", idle)
	}

	celebrating := renderStatus(plugin.Status{
		Celebrating: true,
		Team:        "CHC",
		Score:       "7-4",
		ExpiresAt:   testutil.MustParseRFC3339("2026-08-27T16:00:00Z"),
	})
	if !strings.Contains(celebrating, "WIN") || !strings.Contains(celebrating, "7-4") {
		t.Fatalf("celebrating status = %q", celebrating)
	}
}
