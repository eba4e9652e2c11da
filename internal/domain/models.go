package domain

import "fmt"

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled GameStatus = "SCHEDULED"
	StatusLive      GameStatus = "LIVE"
	StatusFinal     GameStatus = "FINAL"
)

// TeamScore pairs a team abbreviation with its score at poll time.
type TeamScore struct {
	Abbreviation string `json:"abbreviation"`
	Score        int    `json:"score"`
}

// GameSnapshot is one observed game at poll time. Snapshots are produced
// fresh on every poll, never mutated, and discarded after evaluation.
type GameSnapshot struct {
	Home   TeamScore  `json:"home"`
	Away   TeamScore  `json:"away"`
	Status GameStatus `json:"status"`
}

// Involves reports whether the given team plays in this game.
func (g GameSnapshot) Involves(abbr string) bool {
	return g.Home.Abbreviation == abbr || g.Away.Abbreviation == abbr
}

// FinalScore is the tracked team's view of a finished game.
type FinalScore struct {
	TeamAbbr     string `json:"teamAbbr"`
	OpponentAbbr string `json:"opponentAbbr"`
	Team         int    `json:"team"`
	Opponent     int    `json:"opponent"`
}

// String renders the score in the compact "7-4" form used on the display.
func (s FinalScore) String() string {
	return fmt.Sprintf("%d-%d", s.Team, s.Opponent)
}

// WinEvent is the evaluator's verdict for one snapshot set.
// Score is only meaningful when Won is true.
type WinEvent struct {
	Won   bool
	Score FinalScore
}
