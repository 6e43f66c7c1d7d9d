/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ClockMode selects 12- or 24-hour time handling.
type ClockMode string

const (
	Clock12 ClockMode = "12"
	Clock24 ClockMode = "24"
)

// Options covers one generator invocation. It is resolved in layers:
// built-in defaults, then the optional YAML defaults file, then
// SLOTGRID_* environment variables; the CLI applies flag values last
// and hands the finished value to the generator as-is.
type Options struct {
	ClockMode  ClockMode `yaml:"clock_mode"`
	StartTime  string    `yaml:"start_time"`
	SlotLength string    `yaml:"slot_length"`
	EndTime    string    `yaml:"end_time"`
	Spaced     bool      `yaml:"spaced"`
	ShowAMPM   bool      `yaml:"show_ampm"`
	Verbose    bool      `yaml:"verbose"`
}

// Load reads the optional YAML defaults file and environment variables.
// path comes from the --config flag; when empty, SLOTGRID_CONFIG is
// consulted. No file at all is fine, an unreadable or malformed one is
// an error. Mode-dependent defaults are left for FillDefaults so later
// flag overrides can still change the mode.
func Load(path string) (Options, error) {
	var opts Options

	if path == "" {
		path = os.Getenv("SLOTGRID_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Options{}, fmt.Errorf("read defaults file: %w", err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return Options{}, fmt.Errorf("parse defaults file %s: %w", path, err)
		}
	}

	opts.ClockMode = ClockMode(getEnv("SLOTGRID_CLOCK_MODE", string(opts.ClockMode)))
	opts.StartTime = getEnv("SLOTGRID_START_TIME", opts.StartTime)
	opts.SlotLength = getEnv("SLOTGRID_SLOT_LENGTH", opts.SlotLength)
	opts.EndTime = getEnv("SLOTGRID_END_TIME", opts.EndTime)
	opts.Spaced = getEnvBool("SLOTGRID_SPACED", opts.Spaced)
	opts.ShowAMPM = getEnvBool("SLOTGRID_SHOW_AMPM", opts.ShowAMPM)
	opts.Verbose = getEnvBool("SLOTGRID_VERBOSE", opts.Verbose)

	return opts, nil
}

// FillDefaults completes unset fields. The default start and end times
// depend on the clock mode, so this runs after every override layer.
func (o *Options) FillDefaults() {
	if o.ClockMode == "" {
		o.ClockMode = Clock12
	}
	if o.SlotLength == "" {
		o.SlotLength = "1h"
	}
	if o.StartTime == "" {
		if o.ClockMode == Clock24 {
			o.StartTime = "09:00"
		} else {
			o.StartTime = "09:00 AM"
		}
	}
	if o.EndTime == "" {
		if o.ClockMode == Clock24 {
			o.EndTime = "17:00"
		} else {
			o.EndTime = "5:00 PM"
		}
	}
}

// Validate checks the resolved options.
func (o Options) Validate() error {
	if o.ClockMode != Clock12 && o.ClockMode != Clock24 {
		return fmt.Errorf("unsupported clock mode %q (use 12 or 24)", o.ClockMode)
	}
	return nil
}

// TwelveHour reports whether times are handled on the 12-hour clock.
func (o Options) TwelveHour() bool {
	return o.ClockMode != Clock24
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "true" || v == "1" || v == "yes" {
			return true
		}
		if v == "false" || v == "0" || v == "no" {
			return false
		}
	}
	return def
}
