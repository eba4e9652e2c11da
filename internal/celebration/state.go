// Package celebration owns the idle/celebrating lifecycle triggered by a
// detected win. State is process-local and resets on restart; expiry is
// evaluated lazily on every read instead of by a background timer.
package celebration

import (
	"sync"
	"time"

	"fly-the-w/internal/domain"
)

type phase int

const (
	phaseIdle phase = iota
	phaseCelebrating
)

// State is the single authoritative celebration record. All fields are
// unexported so mutation can only happen through the transition methods;
// the internal mutex keeps transitions atomic if a host ever calls in from
// more than one goroutine.
type State struct {
	mu            sync.Mutex
	phase         phase
	startedAt     time.Time
	expiresAt     time.Time
	capturedScore domain.FinalScore
	hasScore      bool
	lastPollAt    time.Time
	hasPolled     bool
}

// NewState returns an idle state record.
func NewState() *State {
	return &State{}
}

// Status is a read-only snapshot of the record, derived for the given time.
type Status struct {
	Celebrating bool
	StartedAt   time.Time
	ExpiresAt   time.Time
	Score       domain.FinalScore
	HasScore    bool
	LastPollAt  time.Time
	HasPolled   bool
}

// OnPollResult applies one evaluator verdict.
//
// A win while idle (or after the previous window expired) starts a new
// celebration; a win while already celebrating is a no-op so a duplicate
// poll can never extend the window. A "no win" verdict never retracts an
// active celebration; only expiry ends it.
func (s *State) OnPollResult(event domain.WinEvent, now time.Time, window time.Duration) {
	if s == nil || !event.Won {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.celebratingLocked(now) {
		return
	}

	s.phase = phaseCelebrating
	s.startedAt = now
	s.expiresAt = now.Add(window)
	s.capturedScore = event.Score
	s.hasScore = true
}

// IsCelebrating reports whether a celebration window is active at now.
// The stored phase may lag reality; the expiry check here is authoritative.
func (s *State) IsCelebrating(now time.Time) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.celebratingLocked(now)
}

// ShouldPoll reports whether enough time has passed since the last poll
// attempt. The first call always polls.
func (s *State) ShouldPoll(now time.Time, interval time.Duration) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPolled {
		return true
	}
	return now.Sub(s.lastPollAt) >= interval
}

// RecordPoll marks a poll attempt. It is called on every attempt regardless
// of outcome so a failing upstream is never hammered.
func (s *State) RecordPoll(now time.Time) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPollAt = now
	s.hasPolled = true
}

// Snapshot returns a consistent view of the record derived for now.
func (s *State) Snapshot(now time.Time) Status {
	if s == nil {
		return Status{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		Celebrating: s.celebratingLocked(now),
		StartedAt:   s.startedAt,
		ExpiresAt:   s.expiresAt,
		Score:       s.capturedScore,
		HasScore:    s.hasScore,
		LastPollAt:  s.lastPollAt,
		HasPolled:   s.hasPolled,
	}
}

// Cleanup unconditionally resets the record to idle with all optional
// fields cleared. Idempotent.
func (s *State) Cleanup() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = phaseIdle
	s.startedAt = time.Time{}
	s.expiresAt = time.Time{}
	s.capturedScore = domain.FinalScore{}
	s.hasScore = false
	s.lastPollAt = time.Time{}
	s.hasPolled = false
}

func (s *State) celebratingLocked(now time.Time) bool {
	return s.phase == phaseCelebrating && now.Before(s.expiresAt)
}
