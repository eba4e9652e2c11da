// Package server wires the celebration unit into a runnable reference
// host: it builds the provider stack, the plugin, the telemetry endpoint,
// and the frame sinks, then drives the update/display loops the way a
// display controller would.
package server

import (
	"context"
	"log/slog"
	"time"

	"fly-the-w/internal/config"
	"fly-the-w/internal/fanout"
	"fly-the-w/internal/logging"
	"fly-the-w/internal/metrics"
	"fly-the-w/internal/plugin"
	"fly-the-w/internal/providers"
	"fly-the-w/internal/providers/espn"
	"fly-the-w/internal/providers/fixture"
	"fly-the-w/internal/ui"
)

var metricsSetup = metrics.Setup

// How often the host loop offers the plugin a chance to poll; the plugin
// throttles itself to the configured update interval.
const updateCheckInterval = 10 * time.Second

type Server struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Recorder
	plugin  *plugin.Plugin
	fanout  *fanout.Server
	preview *ui.Preview

	metricsServer httpServer
	fanoutServer  httpServer
	metricsStop   func(context.Context) error
}

// New assembles the reference host from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	cfg = cfg.Normalized()

	recorder, promHandler, metricsStop, err := metricsSetup(context.Background(), metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed, continuing without telemetry", err)
		recorder = metrics.NewRecorder()
		metricsStop = func(context.Context) error { return nil }
	}

	provider := buildProvider(cfg, logger, recorder)
	p := plugin.New(cfg, provider, logger, recorder)

	s := &Server{
		cfg:         cfg,
		logger:      logger,
		metrics:     recorder,
		plugin:      p,
		metricsStop: metricsStop,
	}

	if cfg.Metrics.Enabled {
		s.metricsServer = buildMetricsServer(cfg, promHandler, p)
	}
	if cfg.Fanout.Enabled {
		s.fanout = fanout.NewServer(logger)
		s.fanoutServer = buildFanoutServer(cfg, s.fanout)
	}
	if cfg.Preview {
		s.preview = ui.NewPreview()
	}

	return s
}

// buildProvider selects the upstream: the deterministic fixture when
// simulate-win is on, the live ESPN scoreboard otherwise. Either way the
// provider is wrapped so every fetch is logged and measured.
func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.ScoreProvider {
	if cfg.SimulateWin {
		return providers.NewLoggingProvider(fixture.New(cfg.TeamAbbr), fixture.ProviderName(), logger, recorder)
	}
	client := espn.NewClient(espn.Config{
		BaseURL: cfg.Feed.BaseURL,
		Timeout: cfg.Feed.Timeout,
	})
	return providers.NewLoggingProvider(client, espn.ProviderName(), logger, recorder)
}

// Run drives the update and display loops until the context is cancelled,
// then shuts everything down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startServers(stop)

	if s.preview != nil {
		go func() {
			defer stop()
			if err := s.preview.Run(); err != nil {
				logging.Error(s.logger, "preview stopped", err)
			}
		}()
	}

	frameInterval := time.Duration(float64(time.Second) / s.cfg.AnimationFPS)
	frameTicker := time.NewTicker(frameInterval)
	updateTicker := time.NewTicker(updateCheckInterval)
	defer frameTicker.Stop()
	defer updateTicker.Stop()

	logging.Info(s.logger, "host loop started",
		logging.FieldTeam, s.cfg.TeamAbbr,
		logging.FieldDurationMS, frameInterval.Milliseconds(),
	)

	s.plugin.Update(ctx, time.Now())
	wasLive := false

	for {
		select {
		case <-ctx.Done():
			s.gracefulShutdown()
			return
		case <-updateTicker.C:
			s.plugin.Update(ctx, time.Now())
		case <-frameTicker.C:
			now := time.Now()
			frame, live := s.plugin.Display(now)

			if s.fanout != nil {
				if live {
					s.fanout.PublishFrame(frame, now)
				} else if wasLive {
					s.fanout.PublishIdle(now)
				}
			}
			if s.preview != nil {
				s.preview.UpdateFrame(frame, s.plugin.Info(now))
			}
			wasLive = live
		}
	}
}

func (s *Server) gracefulShutdown() {
	logging.Info(s.logger, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.preview != nil {
		s.preview.Stop()
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Error(s.logger, "metrics server shutdown failed", err)
		}
	}
	if s.fanoutServer != nil {
		if err := s.fanoutServer.Shutdown(shutdownCtx); err != nil {
			logging.Error(s.logger, "fanout server shutdown failed", err)
		}
	}
	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Error(s.logger, "metrics exporter shutdown failed", err)
		}
	}
	s.plugin.Cleanup()
}

// Plugin exposes the wired plugin, primarily for tests and diagnostics.
func (s *Server) Plugin() *plugin.Plugin {
	return s.plugin
}
