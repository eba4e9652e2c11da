package animation

import "math"

// The flag wave is a fixed-length cycle; frame selection wraps modulo this.
const CycleLength = 16

// renderFlagFrame draws one frame of the waving-flag cycle. The flag body
// fills the left ~60% of the display with a sine-wave vertical offset that
// grows from the pole toward the free end, split blue over red, with a
// blocky white "W" riding the wave and a one-pixel pole on the left edge.
func renderFlagFrame(width, height, frameIdx, cycle int) Frame {
	f := NewFrame(width, height)

	phase := 2 * math.Pi * float64(frameIdx) / float64(cycle)

	flagW := int(float64(width) * 0.6)
	flagH := int(float64(height) * 0.75)
	flagTop := (height - flagH) / 2

	amplitude := flagH / 8
	if amplitude < 1 {
		amplitude = 1
	}

	for col := 0; col < flagW; col++ {
		waveFactor := float64(col) / math.Max(float64(flagW-1), 1)
		offset := int(float64(amplitude) * waveFactor * math.Sin(phase+float64(col)*0.3))
		colTop := flagTop + offset
		mid := colTop + flagH/2

		for row := colTop; row < colTop+flagH; row++ {
			color := ColorWrigleyBlue
			if row >= mid {
				color = ColorPinstripeRed
			}
			f.Set(col, row, color)
		}
	}

	// "W" centered on the flag, displaced by half the local wave.
	wx := flagW / 2
	wy := flagTop + flagH/2
	waveOffset := int(float64(amplitude) * 0.5 * math.Sin(phase+float64(wx)*0.3))
	drawW(f, wx, wy+waveOffset, height)

	// Pole.
	for row := flagTop - 2; row < flagTop+flagH+2; row++ {
		f.Set(0, row, ColorWhite)
	}

	return f
}

// drawW stamps a blocky white "W" centered at (cx, cy), scaled with the
// display height so it stays readable on larger matrices.
func drawW(f Frame, cx, cy, displayHeight int) {
	scale := displayHeight / 16
	if scale < 1 {
		scale = 1
	}
	for _, pt := range wPixels(scale) {
		f.Set(cx+pt[0], cy+pt[1], ColorWhite)
	}
}

// wPixels returns (dx, dy) offsets forming a "W" in a ~9x5 grid, scaled.
func wPixels(scale int) [][2]int {
	pattern := [][2]int{
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, 3}, {1, 4},
		{2, 2}, {2, 3},
		{3, 3}, {3, 4},
		{4, 3}, {4, 4},
		{5, 2}, {5, 3},
		{6, 3}, {6, 4},
		{7, 3},
		{8, 0}, {8, 1}, {8, 2}, {8, 3},
	}

	halfW := 4 * scale
	halfH := 2 * scale
	result := make([][2]int, 0, len(pattern)*scale*scale)
	for _, p := range pattern {
		for sx := 0; sx < scale; sx++ {
			for sy := 0; sy < scale; sy++ {
				result = append(result, [2]int{p[0]*scale + sx - halfW, p[1]*scale + sy - halfH})
			}
		}
	}
	return result
}
