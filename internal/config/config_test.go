/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReadsEnvOverrides(t *testing.T) {
	t.Setenv("SLOTGRID_CLOCK_MODE", "24")
	t.Setenv("SLOTGRID_START_TIME", "08:00")
	t.Setenv("SLOTGRID_SLOT_LENGTH", "30m")
	t.Setenv("SLOTGRID_SPACED", "true")

	opts, err := Load("")
	if err != nil {
		t.Fatalf("load options: %v", err)
	}
	if opts.ClockMode != Clock24 {
		t.Fatalf("clock mode = %q, want 24", opts.ClockMode)
	}
	if opts.StartTime != "08:00" {
		t.Fatalf("start time = %q, want 08:00", opts.StartTime)
	}
	if opts.SlotLength != "30m" {
		t.Fatalf("slot length = %q, want 30m", opts.SlotLength)
	}
	if !opts.Spaced {
		t.Fatal("expected spaced output")
	}
}

func TestLoadReadsYAMLDefaultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slotgrid.yaml")
	contents := "clock_mode: \"24\"\nstart_time: \"07:00\"\nslot_length: 20m\nshow_ampm: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write defaults file: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("load options: %v", err)
	}
	if opts.ClockMode != Clock24 {
		t.Fatalf("clock mode = %q, want 24", opts.ClockMode)
	}
	if opts.StartTime != "07:00" {
		t.Fatalf("start time = %q, want 07:00", opts.StartTime)
	}
	if opts.SlotLength != "20m" {
		t.Fatalf("slot length = %q, want 20m", opts.SlotLength)
	}
	if !opts.ShowAMPM {
		t.Fatal("expected show_ampm from defaults file")
	}
}

func TestEnvOverridesDefaultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slotgrid.yaml")
	if err := os.WriteFile(path, []byte("start_time: \"07:00\"\n"), 0o600); err != nil {
		t.Fatalf("write defaults file: %v", err)
	}
	t.Setenv("SLOTGRID_CONFIG", path)
	t.Setenv("SLOTGRID_START_TIME", "06:30")

	opts, err := Load("")
	if err != nil {
		t.Fatalf("load options: %v", err)
	}
	if opts.StartTime != "06:30" {
		t.Fatalf("start time = %q, want env value 06:30", opts.StartTime)
	}
}

func TestLoadFailsOnMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected missing defaults file to fail")
	}
}

func TestLoadFailsOnMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slotgrid.yaml")
	if err := os.WriteFile(path, []byte("clock_mode: [\n"), 0o600); err != nil {
		t.Fatalf("write defaults file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected malformed defaults file to fail")
	}
}

func TestFillDefaultsFollowClockMode(t *testing.T) {
	var opts Options
	opts.FillDefaults()
	if opts.ClockMode != Clock12 {
		t.Fatalf("clock mode = %q, want 12", opts.ClockMode)
	}
	if opts.StartTime != "09:00 AM" || opts.EndTime != "5:00 PM" {
		t.Fatalf("12-hour defaults = %q / %q", opts.StartTime, opts.EndTime)
	}
	if opts.SlotLength != "1h" {
		t.Fatalf("slot length = %q, want 1h", opts.SlotLength)
	}

	opts = Options{ClockMode: Clock24}
	opts.FillDefaults()
	if opts.StartTime != "09:00" || opts.EndTime != "17:00" {
		t.Fatalf("24-hour defaults = %q / %q", opts.StartTime, opts.EndTime)
	}
}

func TestValidateRejectsUnknownClockMode(t *testing.T) {
	opts := Options{ClockMode: "13"}
	if err := opts.Validate(); err == nil {
		t.Fatal("expected unknown clock mode to fail validation")
	}
}
