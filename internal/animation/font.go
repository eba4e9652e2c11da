package animation

// A built-in 3x5 bitmap glyph set covering what the overlays need: capital
// letters, digits, and a little punctuation. Each glyph is five rows of
// three bits, most significant bit leftmost. Characters without a glyph are
// skipped when drawing, which degrades an overlay instead of failing it.

const (
	glyphWidth  = 3
	glyphHeight = 5
	// Horizontal advance per character, including a 1px gap.
	glyphAdvance = glyphWidth + 1
)

var glyphs = map[rune][glyphHeight]uint8{
	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
	'!': {0b010, 0b010, 0b010, 0b000, 0b010},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b010, 0b010},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b110, 0b100, 0b110, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b111, 0b101, 0b101},
	'N': {0b111, 0b101, 0b101, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b010, 0b001},
	'R': {0b110, 0b101, 0b110, 0b110, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b111, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
}

// TextWidth returns the drawn width of text in pixels.
func TextWidth(text string) int {
	if len(text) == 0 {
		return 0
	}
	return len([]rune(text))*glyphAdvance - 1
}

// DrawText draws text at (x, y) in the given color, clipping at the frame
// edges. Characters outside the glyph set are skipped.
func DrawText(f Frame, x, y int, text string, c Color) {
	cx := x
	for _, r := range text {
		glyph, ok := glyphs[r]
		if !ok {
			cx += glyphAdvance
			continue
		}
		for row := 0; row < glyphHeight; row++ {
			bits := glyph[row]
			for col := 0; col < glyphWidth; col++ {
				if bits&(1<<(glyphWidth-1-col)) != 0 {
					f.Set(cx+col, y+row, c)
				}
			}
		}
		cx += glyphAdvance
	}
}

// DrawShadowedText draws text with a one-pixel black drop shadow so it
// stays readable over the animated flag.
func DrawShadowedText(f Frame, x, y int, text string, c Color) {
	DrawText(f, x+1, y+1, text, ColorBlack)
	DrawText(f, x, y, text, c)
}
