package testutil

import "fly-the-w/internal/domain"

// FinalGame builds a finished game snapshot.
func FinalGame(home string, homeScore int, away string, awayScore int) domain.GameSnapshot {
	return domain.GameSnapshot{
		Home:   domain.TeamScore{Abbreviation: home, Score: homeScore},
		Away:   domain.TeamScore{Abbreviation: away, Score: awayScore},
		Status: domain.StatusFinal,
	}
}

// LiveGame builds an in-progress game snapshot.
func LiveGame(home string, homeScore int, away string, awayScore int) domain.GameSnapshot {
	return domain.GameSnapshot{
		Home:   domain.TeamScore{Abbreviation: home, Score: homeScore},
		Away:   domain.TeamScore{Abbreviation: away, Score: awayScore},
		Status: domain.StatusLive,
	}
}

// ScheduledGame builds a not-yet-started game snapshot.
func ScheduledGame(home, away string) domain.GameSnapshot {
	return domain.GameSnapshot{
		Home:   domain.TeamScore{Abbreviation: home},
		Away:   domain.TeamScore{Abbreviation: away},
		Status: domain.StatusScheduled,
	}
}
