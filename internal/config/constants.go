package config

import "time"

const (
	defaultTeamAbbr          = "CHC"
	defaultDisplayDuration   = 30 * time.Second
	defaultUpdateInterval    = 300 * time.Second
	defaultCelebrationWindow = time.Hour
	defaultAnimationFPS      = 12.0
	defaultWinText           = "CUBS WIN!"
	defaultFontSize          = 6

	// Hard ceilings from the plugin contract; values beyond them fall back
	// to defaults rather than failing startup.
	maxCelebrationWindow = 24 * time.Hour
	maxAnimationFPS      = 60.0

	defaultDisplayWidth  = 64
	defaultDisplayHeight = 32

	defaultFeedTimeout = 5 * time.Second

	defaultMetricsPort = "9090"
	defaultFanoutPort  = "8474"
)
