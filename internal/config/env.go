package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const envConfigPath = "FLYTW_CONFIG"

type envConfig struct {
	Team              string        `env:"FLYTW_TEAM"`
	UpdateInterval    time.Duration `env:"FLYTW_UPDATE_INTERVAL"`
	CelebrationWindow time.Duration `env:"FLYTW_CELEBRATION_WINDOW"`
	AnimationFPS      float64       `env:"FLYTW_ANIMATION_FPS"`
	SimulateWin       *bool         `env:"FLYTW_SIMULATE_WIN"`
	Preview           *bool         `env:"FLYTW_PREVIEW"`

	FeedBaseURL string        `env:"FLYTW_FEED_BASE_URL"`
	FeedTimeout time.Duration `env:"FLYTW_FEED_TIMEOUT"`

	MetricsEnabled *bool  `env:"FLYTW_METRICS_ENABLED"`
	MetricsPort    string `env:"FLYTW_METRICS_PORT"`
	OtlpEndpoint   string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtlpService    string `env:"OTEL_SERVICE_NAME"`
	OtlpInsecure   bool   `env:"OTEL_EXPORTER_OTLP_INSECURE"`

	FanoutEnabled *bool  `env:"FLYTW_FANOUT_ENABLED"`
	FanoutPort    string `env:"FLYTW_FANOUT_PORT"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

// applyEnv overlays environment overrides onto cfg. A value that fails to
// parse is treated as unset; configuration errors are never fatal here.
func applyEnv(cfg Config) Config {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return cfg
	}

	if ec.Team != "" {
		cfg.TeamAbbr = ec.Team
	}
	if ec.UpdateInterval > 0 {
		cfg.UpdateInterval = ec.UpdateInterval
	}
	if ec.CelebrationWindow > 0 {
		cfg.CelebrationWindow = ec.CelebrationWindow
	}
	if ec.AnimationFPS > 0 {
		cfg.AnimationFPS = ec.AnimationFPS
	}
	if ec.SimulateWin != nil {
		cfg.SimulateWin = *ec.SimulateWin
	}
	if ec.Preview != nil {
		cfg.Preview = *ec.Preview
	}
	if ec.FeedBaseURL != "" {
		cfg.Feed.BaseURL = ec.FeedBaseURL
	}
	if ec.FeedTimeout > 0 {
		cfg.Feed.Timeout = ec.FeedTimeout
	}
	if ec.MetricsEnabled != nil {
		cfg.Metrics.Enabled = *ec.MetricsEnabled
	}
	if ec.MetricsPort != "" {
		cfg.Metrics.Port = ec.MetricsPort
	}
	if ec.OtlpEndpoint != "" {
		cfg.Metrics.OtlpEndpoint = ec.OtlpEndpoint
	}
	if ec.OtlpService != "" {
		cfg.Metrics.ServiceName = ec.OtlpService
	}
	cfg.Metrics.OtlpInsecure = cfg.Metrics.OtlpInsecure || ec.OtlpInsecure
	if ec.FanoutEnabled != nil {
		cfg.Fanout.Enabled = *ec.FanoutEnabled
	}
	if ec.FanoutPort != "" {
		cfg.Fanout.Port = ec.FanoutPort
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.LogFormat != "" {
		cfg.LogFormat = ec.LogFormat
	}

	return cfg
}
