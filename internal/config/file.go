package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Enabled          *bool    `yaml:"enabled"`
	Team             string   `yaml:"team"`
	DisplayDuration  *float64 `yaml:"display_duration"`
	UpdateInterval   *float64 `yaml:"update_interval"`
	CelebrationHours *float64 `yaml:"celebration_hours"`
	AnimationFPS     *float64 `yaml:"animation_fps"`
	ShowScore        *bool    `yaml:"show_score"`
	ShowText         *bool    `yaml:"show_text"`
	WinText          string   `yaml:"win_text"`
	FontName         string   `yaml:"font_name"`
	FontSize         *int     `yaml:"font_size"`
	LivePriority     *bool    `yaml:"live_priority"`
	VegasMode        string   `yaml:"vegas_mode"`
	SimulateWin      *bool    `yaml:"simulate_win"`

	Display struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"display"`

	Feed struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"feed"`
}

// LoadFile overlays a YAML config file onto base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return base, fmt.Errorf("parse config: %w", err)
	}

	cfg := base
	if fc.Enabled != nil {
		cfg.Enabled = *fc.Enabled
	}
	if fc.Team != "" {
		cfg.TeamAbbr = fc.Team
	}
	if fc.DisplayDuration != nil && *fc.DisplayDuration > 0 {
		cfg.DisplayDuration = secondsToDuration(*fc.DisplayDuration)
	}
	if fc.UpdateInterval != nil && *fc.UpdateInterval > 0 {
		cfg.UpdateInterval = secondsToDuration(*fc.UpdateInterval)
	}
	if fc.CelebrationHours != nil && *fc.CelebrationHours > 0 {
		cfg.CelebrationWindow = time.Duration(*fc.CelebrationHours * float64(time.Hour))
	}
	if fc.AnimationFPS != nil && *fc.AnimationFPS > 0 {
		cfg.AnimationFPS = *fc.AnimationFPS
	}
	if fc.ShowScore != nil {
		cfg.ShowScore = *fc.ShowScore
	}
	if fc.ShowText != nil {
		cfg.ShowText = *fc.ShowText
	}
	if fc.WinText != "" {
		cfg.WinText = fc.WinText
	}
	if fc.FontName != "" {
		cfg.FontName = fc.FontName
	}
	if fc.FontSize != nil && *fc.FontSize > 0 {
		cfg.FontSize = *fc.FontSize
	}
	if fc.LivePriority != nil {
		cfg.LivePriority = *fc.LivePriority
	}
	if fc.VegasMode != "" {
		cfg.VegasMode = VegasMode(fc.VegasMode)
	}
	if fc.SimulateWin != nil {
		cfg.SimulateWin = *fc.SimulateWin
	}
	if fc.Display.Width > 0 {
		cfg.Display.Width = fc.Display.Width
	}
	if fc.Display.Height > 0 {
		cfg.Display.Height = fc.Display.Height
	}
	if fc.Feed.BaseURL != "" {
		cfg.Feed.BaseURL = fc.Feed.BaseURL
	}
	if fc.Feed.TimeoutSeconds > 0 {
		cfg.Feed.Timeout = time.Duration(fc.Feed.TimeoutSeconds) * time.Second
	}

	return cfg.Normalized(), nil
}
