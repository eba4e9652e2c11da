package providers

import (
	"context"

	"fly-the-w/internal/domain"
)

// ScoreProvider defines how upstream scoreboard data is fetched and
// normalized. Providers are stateless; call throttling belongs to the
// caller, which tracks its own last-poll timestamp.
type ScoreProvider interface {
	FetchScoreboard(ctx context.Context) ([]domain.GameSnapshot, error)
}
