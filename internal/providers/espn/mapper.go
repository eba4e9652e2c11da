package espn

import (
	"strconv"
	"strings"

	"fly-the-w/internal/domain"
)

// mapEvent normalizes one scoreboard event. Events without a competition or
// without both home and away competitors are skipped rather than failing the
// whole fetch.
func mapEvent(ev eventResponse) (domain.GameSnapshot, bool) {
	if len(ev.Competitions) == 0 {
		return domain.GameSnapshot{}, false
	}
	comp := ev.Competitions[0]

	var home, away *competitorResponse
	for i := range comp.Competitors {
		switch comp.Competitors[i].HomeAway {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return domain.GameSnapshot{}, false
	}

	return domain.GameSnapshot{
		Home:   mapCompetitor(*home),
		Away:   mapCompetitor(*away),
		Status: mapStatus(comp.Status.Type),
	}, true
}

func mapCompetitor(c competitorResponse) domain.TeamScore {
	return domain.TeamScore{
		Abbreviation: c.Team.Abbreviation,
		Score:        parseScore(c.Score),
	}
}

// parseScore tolerates the empty or non-numeric scores ESPN reports for
// games that have not started.
func parseScore(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func mapStatus(st statusTypeResponse) domain.GameStatus {
	if st.Completed {
		return domain.StatusFinal
	}
	switch strings.ToLower(st.State) {
	case "post":
		return domain.StatusFinal
	case "in":
		return domain.StatusLive
	default:
		return domain.StatusScheduled
	}
}
