package espn

import (
	"testing"

	"fly-the-w/internal/domain"
)

func TestMapStatus(t *testing.T) {
	cases := []struct {
		name string
		in   statusTypeResponse
		want domain.GameStatus
	}{
		{"completed flag", statusTypeResponse{State: "in", Completed: true}, domain.StatusFinal},
		{"post state", statusTypeResponse{State: "post"}, domain.StatusFinal},
		{"in state", statusTypeResponse{State: "in"}, domain.StatusLive},
		{"pre state", statusTypeResponse{State: "pre"}, domain.StatusScheduled},
		{"unknown state", statusTypeResponse{State: "weather-delay"}, domain.StatusScheduled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapStatus(tc.in); got != tc.want {
				t.Fatalf("mapStatus(%+v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseScore(t *testing.T) {
	cases := map[string]int{
		"7":   7,
		" 12": 12,
		"":    0,
		"n/a": 0,
	}
	for in, want := range cases {
		if got := parseScore(in); got != want {
			t.Fatalf("parseScore(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestMapEventMissingCompetitors(t *testing.T) {
	ev := eventResponse{Competitions: []competitionResponse{{
		Competitors: []competitorResponse{{HomeAway: "home"}},
	}}}

	if _, ok := mapEvent(ev); ok {
		t.Fatal("event without both sides must be skipped")
	}
}
