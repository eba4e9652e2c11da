// Package plugin is the surface the display host calls into: Update polls
// the feed, Display hands back the current frame, HasLiveContent drives the
// host's priority insertion, and Cleanup resets everything. The adapter
// holds no decision logic of its own beyond throttling; detection lives in
// the evaluator and lifecycle in the celebration state machine.
package plugin

import (
	"context"
	"log/slog"
	"time"

	"fly-the-w/internal/animation"
	"fly-the-w/internal/celebration"
	"fly-the-w/internal/config"
	"fly-the-w/internal/domain"
	"fly-the-w/internal/logging"
	"fly-the-w/internal/metrics"
	"fly-the-w/internal/providers"
	"fly-the-w/internal/win"
)

// Plugin ties the feed, evaluator, state machine, and renderer together.
// The host supplies the clock by passing now to every call, which keeps
// throttling and expiry deterministic in tests.
type Plugin struct {
	cfg      config.Config
	logger   *slog.Logger
	metrics  *metrics.Recorder
	provider providers.ScoreProvider
	state    *celebration.State
	renderer *animation.Renderer
}

// New constructs a plugin around the given provider. The renderer's base
// animation cycle is built here, once; nothing in the display path touches
// disk afterwards.
func New(cfg config.Config, provider providers.ScoreProvider, logger *slog.Logger, recorder *metrics.Recorder) *Plugin {
	cfg = cfg.Normalized()

	renderer := animation.NewRenderer(animation.Config{
		Width:     cfg.Display.Width,
		Height:    cfg.Display.Height,
		FPS:       cfg.AnimationFPS,
		ShowText:  cfg.ShowText,
		ShowScore: cfg.ShowScore,
		WinText:   cfg.WinText,
		FontName:  cfg.FontName,
	}, logger)

	return &Plugin{
		cfg:      cfg,
		logger:   logger,
		metrics:  recorder,
		provider: provider,
		state:    celebration.NewState(),
		renderer: renderer,
	}
}

// Update polls the scoreboard if the update interval has elapsed and feeds
// the verdict into the state machine. The last-poll timestamp advances on
// every attempt, including failed ones, so a broken upstream is retried at
// the normal cadence rather than hammered. A feed error leaves the
// celebration state otherwise untouched.
func (p *Plugin) Update(ctx context.Context, now time.Time) {
	if p == nil || !p.cfg.Enabled {
		return
	}
	if !p.state.ShouldPoll(now, p.cfg.UpdateInterval) {
		return
	}
	p.state.RecordPoll(now)

	start := time.Now()
	snapshots, err := p.provider.FetchScoreboard(ctx)
	if p.metrics != nil {
		p.metrics.RecordPollCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Warn(p.logger, "scoreboard poll failed, keeping state", "error", err)
		return
	}

	event := win.Evaluate(snapshots, p.cfg.TeamAbbr)

	wasCelebrating := p.state.IsCelebrating(now)
	p.state.OnPollResult(event, now, p.cfg.CelebrationWindow)

	if !wasCelebrating && p.state.IsCelebrating(now) {
		if p.metrics != nil {
			p.metrics.RecordWinDetection(p.cfg.TeamAbbr)
		}
		st := p.state.Snapshot(now)
		logging.Info(p.logger, "win detected, celebration started",
			slog.String(logging.FieldTeam, event.Score.TeamAbbr),
			slog.String(logging.FieldOpponent, event.Score.OpponentAbbr),
			slog.String(logging.FieldScore, event.Score.String()),
			slog.Time(logging.FieldExpiresAt, st.ExpiresAt),
		)
	}
}

// HasLiveContent reports whether the host's priority-insertion logic should
// pull this unit into rotation right now.
func (p *Plugin) HasLiveContent(now time.Time) bool {
	if p == nil || !p.cfg.Enabled || !p.cfg.LivePriority {
		return false
	}
	return p.state.IsCelebrating(now)
}

// Display returns the frame for now and whether there is live content to
// show. When idle it returns a blank sentinel and false; the host should
// not have called it then, but the call is always safe.
func (p *Plugin) Display(now time.Time) (animation.Frame, bool) {
	if p == nil {
		return animation.Frame{}, false
	}

	st := p.state.Snapshot(now)
	if !st.Celebrating {
		return p.renderer.Blank(), false
	}

	var score *domain.FinalScore
	if st.HasScore {
		score = &st.Score
	}

	start := time.Now()
	frame := p.renderer.FrameAt(now.Sub(st.StartedAt), score)
	if p.metrics != nil {
		p.metrics.RecordFrameRendered(time.Since(start))
	}
	return frame, true
}

// VegasMode reports how the host's continuous-scroll mode should treat
// celebration content. Pure configuration passthrough.
func (p *Plugin) VegasMode() config.VegasMode {
	if p == nil {
		return config.VegasStatic
	}
	return p.cfg.VegasMode
}

// Cleanup resets the celebration state. Safe to call at any time, any
// number of times.
func (p *Plugin) Cleanup() {
	if p == nil {
		return
	}
	p.state.Cleanup()
	logging.Info(p.logger, "plugin cleaned up")
}

// Status is a diagnostic snapshot for operators.
type Status struct {
	Celebrating bool      `json:"celebrating"`
	StartedAt   time.Time `json:"startedAt,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt,omitempty"`
	Score       string    `json:"score,omitempty"`
	LastPollAt  time.Time `json:"lastPollAt,omitempty"`
	Team        string    `json:"team"`
}

// Info returns the current diagnostic snapshot.
func (p *Plugin) Info(now time.Time) Status {
	if p == nil {
		return Status{}
	}
	st := p.state.Snapshot(now)

	info := Status{
		Celebrating: st.Celebrating,
		LastPollAt:  st.LastPollAt,
		Team:        p.cfg.TeamAbbr,
	}
	if st.Celebrating {
		info.StartedAt = st.StartedAt
		info.ExpiresAt = st.ExpiresAt
		if st.HasScore {
			info.Score = st.Score.String()
		}
	}
	return info
}

// FrameSize reports the dimensions of the frames Display produces.
func (p *Plugin) FrameSize() (int, int) {
	return p.renderer.Size()
}
