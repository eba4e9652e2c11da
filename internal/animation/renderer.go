package animation

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"fly-the-w/internal/domain"
	"fly-the-w/internal/logging"
)

const defaultFlashPeriod = 500 * time.Millisecond

// Config parameterizes the renderer. Zero values fall back to sane defaults
// so a renderer built from an empty config still produces frames.
type Config struct {
	Width     int
	Height    int
	FPS       float64
	ShowText  bool
	ShowScore bool
	WinText   string
	// FontName is accepted for plugin-contract compatibility; anything other
	// than the built-in glyph set logs once and falls back.
	FontName    string
	FlashPeriod time.Duration
}

// Renderer produces composited celebration frames. The flag-wave cycle is
// rendered once at construction; FrameAt only selects, clones, and draws
// overlays, so it is safe to call at display-loop frequency.
type Renderer struct {
	cfg    Config
	frames []Frame
	blank  Frame
}

// NewRenderer builds a renderer and pre-renders the base flag cycle.
func NewRenderer(cfg Config, logger *slog.Logger) *Renderer {
	if cfg.Width <= 0 {
		cfg.Width = 64
	}
	if cfg.Height <= 0 {
		cfg.Height = 32
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 12.0
	}
	if cfg.FlashPeriod <= 0 {
		cfg.FlashPeriod = defaultFlashPeriod
	}
	if cfg.FontName != "" && cfg.FontName != "builtin" {
		logging.Warn(logger, "font not available, using built-in glyphs", "font", cfg.FontName)
		cfg.FontName = ""
	}

	frames := make([]Frame, CycleLength)
	for i := range frames {
		frames[i] = renderFlagFrame(cfg.Width, cfg.Height, i, CycleLength)
	}

	return &Renderer{
		cfg:    cfg,
		frames: frames,
		blank:  NewFrame(cfg.Width, cfg.Height),
	}
}

// FrameAt returns the composited frame for the given time since celebration
// start. It is a pure function of elapsed and the captured score: the base
// frame index is floor(elapsed * fps) mod cycle length, and the flashing of
// the win text is derived from elapsed too, so identical inputs always
// yield identical frames. A nil score with ShowScore set simply omits the
// score overlay.
func (r *Renderer) FrameAt(elapsed time.Duration, score *domain.FinalScore) Frame {
	if elapsed < 0 {
		elapsed = 0
	}

	idx := int(math.Floor(elapsed.Seconds()*r.cfg.FPS)) % len(r.frames)
	f := r.frames[idx].Clone()

	if r.cfg.ShowText && r.flashOn(elapsed) {
		text := r.cfg.WinText
		x := (f.Width - TextWidth(text)) / 2
		if x < 0 {
			x = 0
		}
		DrawShadowedText(f, x, 1, text, ColorGold)
	}

	if r.cfg.ShowScore && score != nil {
		r.drawScore(f, *score)
	}

	return f
}

// Blank returns the all-black sentinel frame for when nothing should show.
func (r *Renderer) Blank() Frame {
	return r.blank.Clone()
}

// Size reports the frame dimensions this renderer composes for.
func (r *Renderer) Size() (int, int) {
	return r.cfg.Width, r.cfg.Height
}

func (r *Renderer) flashOn(elapsed time.Duration) bool {
	return (elapsed/r.cfg.FlashPeriod)%2 == 0
}

// drawScore writes the captured final as two right-aligned lines below the
// win text: the tracked team in white, the opponent in red.
func (r *Renderer) drawScore(f Frame, score domain.FinalScore) {
	line1 := score.TeamAbbr + " " + strconv.Itoa(score.Team)
	line2 := score.OpponentAbbr + " " + strconv.Itoa(score.Opponent)

	y1 := glyphHeight + 3
	y2 := y1 + glyphHeight + 1

	DrawShadowedText(f, maxInt(0, f.Width-TextWidth(line1)-1), y1, line1, ColorWhite)
	DrawShadowedText(f, maxInt(0, f.Width-TextWidth(line2)-1), y2, line2, ColorPinstripeRed)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
