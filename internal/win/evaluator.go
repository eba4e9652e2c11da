// Package win decides whether the tracked team has finished a game as the
// winner. Evaluation is pure: the same snapshot set always yields the same
// verdict, and nothing here holds state between polls.
package win

import "fly-the-w/internal/domain"

// Evaluate scans snapshots for the first finished game featuring teamAbbr
// and reports whether that game was won. If several finished games include
// the team (a doubleheader read, which upstream should not produce in one
// scoreboard), the first in feed order decides. Absent any matching final
// game the verdict is a plain "no win".
func Evaluate(snapshots []domain.GameSnapshot, teamAbbr string) domain.WinEvent {
	for _, g := range snapshots {
		if g.Status != domain.StatusFinal || !g.Involves(teamAbbr) {
			continue
		}

		us, them := g.Home, g.Away
		if g.Away.Abbreviation == teamAbbr {
			us, them = g.Away, g.Home
		}

		if us.Score <= them.Score {
			return domain.WinEvent{}
		}
		return domain.WinEvent{
			Won: true,
			Score: domain.FinalScore{
				TeamAbbr:     us.Abbreviation,
				OpponentAbbr: them.Abbreviation,
				Team:         us.Score,
				Opponent:     them.Score,
			},
		}
	}
	return domain.WinEvent{}
}
