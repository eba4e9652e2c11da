package config

import (
	"strings"
	"time"
)

// FromMap overlays a host-supplied settings map onto base. Keys follow the
// plugin contract (snake_case); unknown keys are ignored and values of the
// wrong type or out of range keep the base value. Numbers arrive as any of
// int/int64/float64 because hosts typically decode them from JSON.
func FromMap(base Config, settings map[string]any) Config {
	cfg := base

	if v, ok := asBool(settings["enabled"]); ok {
		cfg.Enabled = v
	}
	if v, ok := asString(settings["team"]); ok {
		cfg.TeamAbbr = strings.ToUpper(strings.TrimSpace(v))
	}
	if v, ok := asFloat(settings["display_duration"]); ok && v > 0 {
		cfg.DisplayDuration = secondsToDuration(v)
	}
	if v, ok := asFloat(settings["update_interval"]); ok && v > 0 {
		cfg.UpdateInterval = secondsToDuration(v)
	}
	if v, ok := asFloat(settings["celebration_hours"]); ok && v > 0 {
		cfg.CelebrationWindow = time.Duration(v * float64(time.Hour))
	}
	if v, ok := asFloat(settings["animation_fps"]); ok && v > 0 {
		cfg.AnimationFPS = v
	}
	if v, ok := asBool(settings["show_score"]); ok {
		cfg.ShowScore = v
	}
	if v, ok := asBool(settings["show_text"]); ok {
		cfg.ShowText = v
	}
	if v, ok := asString(settings["win_text"]); ok {
		cfg.WinText = v
	}
	if v, ok := asString(settings["font_name"]); ok {
		cfg.FontName = v
	}
	if v, ok := asInt(settings["font_size"]); ok && v > 0 {
		cfg.FontSize = v
	}
	if v, ok := asBool(settings["live_priority"]); ok {
		cfg.LivePriority = v
	}
	if v, ok := asString(settings["vegas_mode"]); ok {
		cfg.VegasMode = VegasMode(strings.ToLower(strings.TrimSpace(v)))
	}
	if v, ok := asBool(settings["simulate_win"]); ok {
		cfg.SimulateWin = v
	}
	if v, ok := asInt(settings["display_width"]); ok && v > 0 {
		cfg.Display.Width = v
	}
	if v, ok := asInt(settings["display_height"]); ok && v > 0 {
		cfg.Display.Height = v
	}

	return cfg.Normalized()
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
