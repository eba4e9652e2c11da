package fixture

import (
	"context"

	"fly-the-w/internal/domain"
)

const providerName = "fixture"

// Provider returns a static scoreboard useful for local testing and for the
// simulate-win mode of the plugin.
type Provider struct {
	// Team is the tracked abbreviation the simulated final is written for.
	Team string
	// Win controls whether the scoreboard includes a finished win for Team.
	Win bool
}

// New creates a fixture provider that reports a finished win for team.
func New(team string) *Provider {
	return &Provider{Team: team, Win: true}
}

// ProviderName identifies this provider in logs and metrics.
func ProviderName() string { return providerName }

// FetchScoreboard returns a deterministic scoreboard: one scheduled game,
// one live game, and (when Win is set) a finished win for the tracked team.
func (p *Provider) FetchScoreboard(ctx context.Context) ([]domain.GameSnapshot, error) {
	_ = ctx

	team := p.Team
	if team == "" {
		team = "CHC"
	}

	snapshots := []domain.GameSnapshot{
		{
			Home:   domain.TeamScore{Abbreviation: "STL", Score: 0},
			Away:   domain.TeamScore{Abbreviation: "CIN", Score: 0},
			Status: domain.StatusScheduled,
		},
		{
			Home:   domain.TeamScore{Abbreviation: "NYM", Score: 3},
			Away:   domain.TeamScore{Abbreviation: "ATL", Score: 2},
			Status: domain.StatusLive,
		},
	}

	if p.Win {
		snapshots = append(snapshots, domain.GameSnapshot{
			Home:   domain.TeamScore{Abbreviation: team, Score: 7},
			Away:   domain.TeamScore{Abbreviation: "MIL", Score: 4},
			Status: domain.StatusFinal,
		})
	}

	return snapshots, nil
}
