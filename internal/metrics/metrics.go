package metrics

import (
	"sync"
	"time"
)

type feedStats struct {
	attempts    int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about feed polls and
// display activity. It is intentionally simple so it can be swapped for a
// real backend later; when OTel is enabled the same calls also feed the
// exported instruments.
type Recorder struct {
	mu             sync.Mutex
	feeds          map[string]*feedStats
	pollCycles     int
	pollErrors     int
	winDetections  int
	framesRendered int
	otel           *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		feeds: make(map[string]*feedStats),
		otel:  otel,
	}
}

// RecordFeedAttempt increments counters for a feed fetch and stores the last observed latency.
func (r *Recorder) RecordFeedAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.attempts++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFeedAttempt(provider, duration, err)
	}
}

// RecordPollCycle tracks one pass through the update path (throttled polls included).
func (r *Recorder) RecordPollCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.pollCycles++
	if err != nil {
		r.pollErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPollCycle(duration, err)
	}
}

// RecordWinDetection tracks a fresh Idle -> Celebrating transition.
func (r *Recorder) RecordWinDetection(team string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.winDetections++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordWinDetection(team)
	}
}

// RecordFrameRendered tracks one composited frame handed to the host.
func (r *Recorder) RecordFrameRendered(duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.framesRendered++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFrameRendered(duration)
	}
}

// FeedAttempts returns the total fetches recorded for a provider.
func (r *Recorder) FeedAttempts(provider string) int {
	return r.FeedSnapshot(provider).Attempts
}

// FeedErrors returns the total failed fetches recorded for a provider.
func (r *Recorder) FeedErrors(provider string) int {
	return r.FeedSnapshot(provider).Errors
}

// WinDetections returns the total fresh celebrations recorded.
func (r *Recorder) WinDetections() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.winDetections
}

// FramesRendered returns the total frames handed to the host.
func (r *Recorder) FramesRendered() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.framesRendered
}

// PollCycles returns the total update passes recorded.
func (r *Recorder) PollCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pollCycles
}

// FeedStats is a copy of the current stats for one provider.
type FeedStats struct {
	Attempts    int
	Errors      int
	LastLatency time.Duration
}

// FeedSnapshot returns a copy of the current stats for the provider.
func (r *Recorder) FeedSnapshot(provider string) FeedStats {
	if r == nil {
		return FeedStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.feeds[provider]
	if !ok || stats == nil {
		return FeedStats{}
	}
	return FeedStats{
		Attempts:    stats.attempts,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

func (r *Recorder) ensureStatsLocked(provider string) *feedStats {
	stats, ok := r.feeds[provider]
	if !ok {
		stats = &feedStats{}
		r.feeds[provider] = stats
	}
	return stats
}
