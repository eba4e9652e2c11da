package testutil

import (
	"context"
	"sync/atomic"

	"fly-the-w/internal/domain"
)

// StubProvider is a test double for providers.ScoreProvider.
type StubProvider struct {
	Snapshots []domain.GameSnapshot
	Err       error
	Calls     atomic.Int32
}

// FetchScoreboard returns the configured snapshots and error while tracking calls.
func (s *StubProvider) FetchScoreboard(ctx context.Context) ([]domain.GameSnapshot, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Snapshots, s.Err
}

// SequenceProvider returns one configured result per call, sticking on the
// last one once the sequence is exhausted.
type SequenceProvider struct {
	Results []StubResult
	Calls   atomic.Int32
}

// StubResult is one canned FetchScoreboard outcome.
type StubResult struct {
	Snapshots []domain.GameSnapshot
	Err       error
}

// FetchScoreboard walks the configured sequence.
func (s *SequenceProvider) FetchScoreboard(ctx context.Context) ([]domain.GameSnapshot, error) {
	_ = ctx
	n := int(s.Calls.Add(1)) - 1
	if n >= len(s.Results) {
		n = len(s.Results) - 1
	}
	if n < 0 {
		return nil, nil
	}
	r := s.Results[n]
	return r.Snapshots, r.Err
}
