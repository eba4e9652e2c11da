package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fly-the-w/internal/config"
	"fly-the-w/internal/metrics"
	"fly-the-w/internal/plugin"
	"fly-the-w/internal/testutil"
)

func quietConfig() config.Config {
	cfg := config.Defaults()
	cfg.SimulateWin = true
	cfg.Metrics.Enabled = false
	cfg.Fanout.Enabled = false
	cfg.Preview = false
	return cfg
}

func TestBuildProviderFixture(t *testing.T) {
	cfg := quietConfig()
	provider := buildProvider(cfg, nil, nil)

	snapshots, err := provider.FetchScoreboard(context.Background())
	if err != nil {
		t.Fatalf("fixture provider failed: %v", err)
	}
	found := false
	for _, s := range snapshots {
		if s.Involves(cfg.TeamAbbr) {
			found = true
		}
	}
	if !found {
		t.Fatal("simulated scoreboard must feature the tracked team")
	}
}

func TestBuildProviderESPN(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"events":[]}`))
	}))
	defer ts.Close()

	cfg := quietConfig()
	cfg.SimulateWin = false
	cfg.Feed.BaseURL = ts.URL

	rec := metrics.NewRecorder()
	provider := buildProvider(cfg, nil, rec)

	snapshots, err := provider.FetchScoreboard(context.Background())
	if err != nil {
		t.Fatalf("espn provider failed: %v", err)
	}
	if len(snapshots) != 0 {
		t.Fatalf("empty scoreboard mapped to %d snapshots", len(snapshots))
	}
	if got := rec.FeedAttempts("espn"); got != 1 {
		t.Fatalf("feed attempts = %d, want 1 through the logging decorator", got)
	}
}

func TestNewWiresPlugin(t *testing.T) {
	s := New(quietConfig(), nil)

	if s.Plugin() == nil {
		t.Fatal("server must expose the wired plugin")
	}
	if s.metricsServer != nil || s.fanoutServer != nil || s.preview != nil {
		t.Fatal("disabled surfaces must not be constructed")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	s := New(quietConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestStatusHandler(t *testing.T) {
	cfg := quietConfig()
	p := plugin.New(cfg, &testutil.StubProvider{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rr := httptest.NewRecorder()
	statusHandler(p)(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var info plugin.Status
	if err := json.Unmarshal(rr.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if info.Team != cfg.TeamAbbr {
		t.Fatalf("team = %q, want %q", info.Team, cfg.TeamAbbr)
	}
	if info.Celebrating {
		t.Fatal("fresh plugin must not report celebrating")
	}
}

func TestHealthz(t *testing.T) {
	cfg := quietConfig()
	cfg.Metrics.Enabled = true
	p := plugin.New(cfg, &testutil.StubProvider{}, nil, nil)

	srv := buildMetricsServer(cfg, nil, p)
	mux := srv.(netHTTPServer).srv.Handler

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("healthz = %d, want 200", rr.Code)
	}
}
