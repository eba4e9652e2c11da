package animation

// Color is one RGB pixel value.
type Color struct {
	R uint8
	G uint8
	B uint8
}

var (
	ColorBlack = Color{}
	ColorWhite = Color{R: 255, G: 255, B: 255}
	ColorGold  = Color{R: 255, G: 215}

	// Team brand colors: Wrigley blue and pinstripe red.
	ColorWrigleyBlue  = Color{R: 14, G: 51, B: 134}
	ColorPinstripeRed = Color{R: 204, G: 52, B: 51}
)

// Frame is one composited, ready-to-render image. Pix holds packed RGB
// bytes, row-major, three bytes per pixel. Frames handed to sinks share no
// buffer with the renderer's cache and must be treated as read-only.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame allocates a black frame of the given size.
func NewFrame(width, height int) Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// Set writes one pixel; out-of-bounds coordinates are ignored so drawing
// code can clip naturally at the frame edges.
func (f Frame) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 3
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
}

// At reads one pixel; out-of-bounds coordinates read black.
func (f Frame) At(x, y int) Color {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return ColorBlack
	}
	i := (y*f.Width + x) * 3
	return Color{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2]}
}

// Clone returns a deep copy safe to composite onto.
func (f Frame) Clone() Frame {
	pix := make([]byte, len(f.Pix))
	copy(pix, f.Pix)
	return Frame{Width: f.Width, Height: f.Height, Pix: pix}
}
