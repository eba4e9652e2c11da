package win

import (
	"testing"

	"fly-the-w/internal/domain"
	"fly-the-w/internal/testutil"
)

func TestEvaluateHomeWin(t *testing.T) {
	snapshots := []domain.GameSnapshot{
		testutil.ScheduledGame("STL", "CIN"),
		testutil.FinalGame("CHC", 7, "MIL", 4),
	}

	event := Evaluate(snapshots, "CHC")
	if !event.Won {
		t.Fatalf("expected win event, got %+v", event)
	}
	if event.Score.TeamAbbr != "CHC" || event.Score.OpponentAbbr != "MIL" {
		t.Fatalf("unexpected score attribution: %+v", event.Score)
	}
	if got := event.Score.String(); got != "7-4" {
		t.Fatalf("score string = %q, want %q", got, "7-4")
	}
}

func TestEvaluateAwayWin(t *testing.T) {
	snapshots := []domain.GameSnapshot{
		testutil.FinalGame("MIL", 2, "CHC", 9),
	}

	event := Evaluate(snapshots, "CHC")
	if !event.Won {
		t.Fatalf("expected win event, got %+v", event)
	}
	if event.Score.Team != 9 || event.Score.Opponent != 2 {
		t.Fatalf("score = %d-%d, want 9-2", event.Score.Team, event.Score.Opponent)
	}
}

func TestEvaluateLoss(t *testing.T) {
	snapshots := []domain.GameSnapshot{
		testutil.FinalGame("CHC", 3, "MIL", 5),
	}

	if event := Evaluate(snapshots, "CHC"); event.Won {
		t.Fatalf("loss must not produce a win event: %+v", event)
	}
}

func TestEvaluateTieIsNotAWin(t *testing.T) {
	snapshots := []domain.GameSnapshot{
		testutil.FinalGame("CHC", 4, "MIL", 4),
	}

	if event := Evaluate(snapshots, "CHC"); event.Won {
		t.Fatalf("tie must not produce a win event: %+v", event)
	}
}

func TestEvaluateLiveGameIgnored(t *testing.T) {
	snapshots := []domain.GameSnapshot{
		testutil.LiveGame("CHC", 10, "MIL", 0),
	}

	if event := Evaluate(snapshots, "CHC"); event.Won {
		t.Fatalf("in-progress lead must not produce a win event: %+v", event)
	}
}

func TestEvaluateTeamAbsent(t *testing.T) {
	snapshots := []domain.GameSnapshot{
		testutil.FinalGame("STL", 6, "CIN", 2),
		testutil.LiveGame("NYM", 1, "ATL", 1),
	}

	if event := Evaluate(snapshots, "CHC"); event.Won {
		t.Fatalf("scoreboard without the team must not win: %+v", event)
	}
}

func TestEvaluateFirstFinalGameDecides(t *testing.T) {
	// Two finals featuring the team in one scoreboard: feed order wins.
	snapshots := []domain.GameSnapshot{
		testutil.FinalGame("CHC", 1, "MIL", 3),
		testutil.FinalGame("CHC", 8, "MIL", 2),
	}

	if event := Evaluate(snapshots, "CHC"); event.Won {
		t.Fatalf("first final is a loss, verdict must not be a win: %+v", event)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	snapshots := []domain.GameSnapshot{
		testutil.FinalGame("CHC", 7, "MIL", 4),
	}

	first := Evaluate(snapshots, "CHC")
	second := Evaluate(snapshots, "CHC")
	if first != second {
		t.Fatalf("evaluation is not deterministic: %+v vs %+v", first, second)
	}
}

func TestEvaluateEmptyScoreboard(t *testing.T) {
	if event := Evaluate(nil, "CHC"); event.Won {
		t.Fatalf("empty scoreboard must not win: %+v", event)
	}
}
