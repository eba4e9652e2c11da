package animation

import (
	"bytes"
	"testing"
	"time"

	"fly-the-w/internal/domain"
)

var testScore = domain.FinalScore{TeamAbbr: "CHC", OpponentAbbr: "MIL", Team: 7, Opponent: 4}

func newTestRenderer(cfg Config) *Renderer {
	return NewRenderer(cfg, nil)
}

func TestFrameAtDeterministic(t *testing.T) {
	r := newTestRenderer(Config{Width: 64, Height: 32, FPS: 12, ShowText: true, ShowScore: true, WinText: "CUBS WIN!"})

	elapsed := 1700 * time.Millisecond
	a := r.FrameAt(elapsed, &testScore)
	b := r.FrameAt(elapsed, &testScore)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("identical inputs must yield identical frames")
	}
}

func TestFrameAtCycles(t *testing.T) {
	// FPS 8 gives a cycle period of exactly 2s for the 16-frame loop, and a
	// 500ms flash period divides it, so frames one full cycle apart match.
	r := newTestRenderer(Config{Width: 64, Height: 32, FPS: 8, ShowText: true, WinText: "CUBS WIN!"})

	elapsed := 100 * time.Millisecond
	a := r.FrameAt(elapsed, nil)
	b := r.FrameAt(elapsed+2*time.Second, nil)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("frames one full cycle apart must be identical")
	}
}

func TestFrameAtNegativeElapsedClamps(t *testing.T) {
	r := newTestRenderer(Config{Width: 64, Height: 32, FPS: 12})

	a := r.FrameAt(-time.Second, nil)
	b := r.FrameAt(0, nil)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("negative elapsed must render as zero")
	}
}

func TestFrameAtOmitsScoreOverlayWhenNil(t *testing.T) {
	r := newTestRenderer(Config{Width: 64, Height: 32, FPS: 12, ShowScore: true})

	without := r.FrameAt(0, nil)
	with := r.FrameAt(0, &testScore)

	if bytes.Equal(without.Pix, with.Pix) {
		t.Fatal("score overlay should change the frame")
	}

	repeat := r.FrameAt(0, nil)
	if !bytes.Equal(without.Pix, repeat.Pix) {
		t.Fatal("nil score must render consistently")
	}
}

func TestWinTextFlashes(t *testing.T) {
	r := newTestRenderer(Config{Width: 64, Height: 32, FPS: 8, ShowText: true, WinText: "CUBS WIN!"})
	plain := newTestRenderer(Config{Width: 64, Height: 32, FPS: 8})

	// 100ms is in an "on" half-period, 600ms in an "off" one; both share
	// base frame determinism with the text-free renderer.
	on := r.FrameAt(100*time.Millisecond, nil)
	if bytes.Equal(on.Pix, plain.FrameAt(100*time.Millisecond, nil).Pix) {
		t.Fatal("win text should be visible in the on half-period")
	}

	off := r.FrameAt(600*time.Millisecond, nil)
	if !bytes.Equal(off.Pix, plain.FrameAt(600*time.Millisecond, nil).Pix) {
		t.Fatal("win text should be hidden in the off half-period")
	}
}

func TestFrameAtReturnsCopies(t *testing.T) {
	r := newTestRenderer(Config{Width: 32, Height: 16, FPS: 12})

	a := r.FrameAt(0, nil)
	for i := range a.Pix {
		a.Pix[i] = 0xFF
	}
	b := r.FrameAt(0, nil)

	if bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("mutating a returned frame must not affect the cache")
	}
}

func TestBlankIsAllBlack(t *testing.T) {
	r := newTestRenderer(Config{Width: 32, Height: 16})

	blank := r.Blank()
	if blank.Width != 32 || blank.Height != 16 {
		t.Fatalf("blank size = %dx%d, want 32x16", blank.Width, blank.Height)
	}
	for _, b := range blank.Pix {
		if b != 0 {
			t.Fatal("blank frame must be all black")
		}
	}
}

func TestNewRendererDefaults(t *testing.T) {
	r := newTestRenderer(Config{})
	w, h := r.Size()
	if w != 64 || h != 32 {
		t.Fatalf("default size = %dx%d, want 64x32", w, h)
	}
	if f := r.FrameAt(time.Second, nil); len(f.Pix) != 64*32*3 {
		t.Fatalf("frame buffer length = %d, want %d", len(f.Pix), 64*32*3)
	}
}

func TestUnknownFontFallsBack(t *testing.T) {
	r := newTestRenderer(Config{Width: 64, Height: 32, ShowText: true, WinText: "CUBS WIN!", FontName: "press-start-2p"})

	// Text still renders through the built-in glyph set.
	base := newTestRenderer(Config{Width: 64, Height: 32})
	if bytes.Equal(r.FrameAt(0, nil).Pix, base.FrameAt(0, nil).Pix) {
		t.Fatal("fallback glyphs should still draw the win text")
	}
}
