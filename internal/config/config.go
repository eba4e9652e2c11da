package config

import (
	"os"
	"time"
)

// VegasMode gates how the host's continuous-scroll display treats
// celebration content: "static" pauses the scroll for the display duration,
// "fixed" lets the content scroll through as a block.
type VegasMode string

const (
	VegasStatic VegasMode = "static"
	VegasFixed  VegasMode = "fixed"
)

// DisplayConfig describes the physical matrix the frames are composed for.
type DisplayConfig struct {
	Width  int
	Height int
}

// FeedConfig controls how we talk to the upstream scoreboard.
type FeedConfig struct {
	BaseURL string
	Timeout time.Duration
}

// MetricsConfig controls the telemetry endpoint of the reference host.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// FanoutConfig controls the websocket frame fan-out of the reference host.
type FanoutConfig struct {
	Enabled bool
	Port    string
}

// Config holds the full configuration surface of the celebration unit.
// All values are optional; anything missing or out of range falls back to
// its default instead of failing startup.
type Config struct {
	Enabled           bool
	TeamAbbr          string
	DisplayDuration   time.Duration
	UpdateInterval    time.Duration
	CelebrationWindow time.Duration
	AnimationFPS      float64
	ShowScore         bool
	ShowText          bool
	WinText           string
	FontName          string
	FontSize          int
	LivePriority      bool
	VegasMode         VegasMode
	SimulateWin       bool

	Display DisplayConfig
	Feed    FeedConfig
	Metrics MetricsConfig
	Fanout  FanoutConfig
	Preview bool

	LogLevel  string
	LogFormat string
}

// Defaults returns the configuration the unit runs with when the host
// supplies nothing.
func Defaults() Config {
	return Config{
		Enabled:           true,
		TeamAbbr:          defaultTeamAbbr,
		DisplayDuration:   defaultDisplayDuration,
		UpdateInterval:    defaultUpdateInterval,
		CelebrationWindow: defaultCelebrationWindow,
		AnimationFPS:      defaultAnimationFPS,
		ShowScore:         true,
		ShowText:          true,
		WinText:           defaultWinText,
		FontSize:          defaultFontSize,
		LivePriority:      true,
		VegasMode:         VegasStatic,
		Display: DisplayConfig{
			Width:  defaultDisplayWidth,
			Height: defaultDisplayHeight,
		},
		Feed: FeedConfig{
			Timeout: defaultFeedTimeout,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    defaultMetricsPort,
		},
		Fanout: FanoutConfig{
			Port: defaultFanoutPort,
		},
	}
}

// Load assembles the reference host configuration: defaults, then an
// optional YAML file (FLYTW_CONFIG), then environment overrides.
func Load() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv(envConfigPath); path != "" {
		loaded, err := LoadFile(path, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	cfg = applyEnv(cfg)
	return cfg.Normalized(), nil
}

// Normalized returns a copy with out-of-range values replaced by defaults.
func (c Config) Normalized() Config {
	if c.TeamAbbr == "" {
		c.TeamAbbr = defaultTeamAbbr
	}
	if c.DisplayDuration <= 0 {
		c.DisplayDuration = defaultDisplayDuration
	}
	if c.UpdateInterval <= 0 {
		c.UpdateInterval = defaultUpdateInterval
	}
	if c.CelebrationWindow <= 0 || c.CelebrationWindow > maxCelebrationWindow {
		c.CelebrationWindow = defaultCelebrationWindow
	}
	if c.AnimationFPS <= 0 || c.AnimationFPS > maxAnimationFPS {
		c.AnimationFPS = defaultAnimationFPS
	}
	if c.WinText == "" {
		c.WinText = defaultWinText
	}
	if c.FontSize <= 0 {
		c.FontSize = defaultFontSize
	}
	if c.VegasMode != VegasStatic && c.VegasMode != VegasFixed {
		c.VegasMode = VegasStatic
	}
	if c.Display.Width <= 0 {
		c.Display.Width = defaultDisplayWidth
	}
	if c.Display.Height <= 0 {
		c.Display.Height = defaultDisplayHeight
	}
	if c.Feed.Timeout <= 0 {
		c.Feed.Timeout = defaultFeedTimeout
	}
	if c.Metrics.Port == "" {
		c.Metrics.Port = defaultMetricsPort
	}
	if c.Fanout.Port == "" {
		c.Fanout.Port = defaultFanoutPort
	}
	return c
}
