package animation

import "testing"

func TestFrameSetAt(t *testing.T) {
	f := NewFrame(8, 4)

	f.Set(3, 2, ColorWrigleyBlue)
	if got := f.At(3, 2); got != ColorWrigleyBlue {
		t.Fatalf("At(3,2) = %+v, want %+v", got, ColorWrigleyBlue)
	}
	if got := f.At(0, 0); got != ColorBlack {
		t.Fatalf("untouched pixel = %+v, want black", got)
	}
}

func TestFrameOutOfBoundsClips(t *testing.T) {
	f := NewFrame(4, 4)

	f.Set(-1, 0, ColorWhite)
	f.Set(0, -1, ColorWhite)
	f.Set(4, 0, ColorWhite)
	f.Set(0, 4, ColorWhite)

	for _, b := range f.Pix {
		if b != 0 {
			t.Fatal("out-of-bounds Set must not write")
		}
	}
	if got := f.At(99, 99); got != ColorBlack {
		t.Fatalf("out-of-bounds At = %+v, want black", got)
	}
}

func TestFrameCloneIsIndependent(t *testing.T) {
	f := NewFrame(4, 4)
	f.Set(1, 1, ColorGold)

	c := f.Clone()
	c.Set(1, 1, ColorWhite)

	if got := f.At(1, 1); got != ColorGold {
		t.Fatalf("clone mutation leaked into original: %+v", got)
	}
}

func TestNewFrameNegativeSize(t *testing.T) {
	f := NewFrame(-3, -2)
	if f.Width != 0 || f.Height != 0 || len(f.Pix) != 0 {
		t.Fatalf("negative dimensions must clamp to empty, got %dx%d len %d", f.Width, f.Height, len(f.Pix))
	}
}
