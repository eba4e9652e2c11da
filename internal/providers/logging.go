package providers

import (
	"context"
	"log/slog"
	"time"

	"fly-the-w/internal/domain"
	"fly-the-w/internal/logging"
	"fly-the-w/internal/metrics"
)

// loggingProvider wraps a ScoreProvider with structured logging and metrics.
type loggingProvider struct {
	inner   ScoreProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewLoggingProvider decorates a provider so every fetch is logged and
// recorded. A nil logger or recorder disables that half of the decoration.
func NewLoggingProvider(inner ScoreProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) ScoreProvider {
	return &loggingProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *loggingProvider) FetchScoreboard(ctx context.Context) ([]domain.GameSnapshot, error) {
	if p.inner == nil {
		logging.Warn(p.logger, "score provider missing", slog.String(logging.FieldProvider, p.name))
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	snapshots, err := p.inner.FetchScoreboard(ctx)
	elapsed := p.now().Sub(start)

	if p.metrics != nil {
		p.metrics.RecordFeedAttempt(p.name, elapsed, err)
	}

	if err != nil {
		logging.Warn(p.logger, "scoreboard fetch failed",
			slog.String(logging.FieldProvider, p.name),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			"error", err,
		)
		return nil, err
	}

	logging.Info(p.logger, "scoreboard fetched",
		slog.String(logging.FieldProvider, p.name),
		slog.Int(logging.FieldCount, len(snapshots)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return snapshots, nil
}
