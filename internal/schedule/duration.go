/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package schedule generates contiguous time slots between two
// wall-clock instants.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseSlotLength parses a compact slot length such as "1h15m", "30m",
// "2h" or "45" (bare minutes) into a duration.
//
// The grammar is strict: digits only in each field, at most one 'h' and
// one 'm' marker, nothing after the 'm'. Zero is syntactically valid
// here; the generator rejects it before walking.
func ParseSlotLength(raw string) (time.Duration, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, fmt.Errorf("slot length cannot be empty or whitespace only")
	}

	if hIdx := strings.IndexByte(raw, 'h'); hIdx >= 0 {
		hours, ok := parseDigits(raw[:hIdx])
		if !ok {
			return 0, fmt.Errorf("invalid hours in slot length %q: expected [hours]h[minutes]m, e.g. 1h15m", raw)
		}
		rest := raw[hIdx+1:]
		minutes := 0
		switch {
		case rest == "":
		case strings.IndexByte(rest, 'm') == len(rest)-1:
			minutes, ok = parseDigits(rest[:len(rest)-1])
			if !ok {
				return 0, fmt.Errorf("invalid minutes in slot length %q: expected [hours]h[minutes]m, e.g. 1h15m", raw)
			}
		default:
			return 0, fmt.Errorf("invalid text after hours in slot length %q: expected [hours]h[minutes]m, e.g. 1h15m", raw)
		}
		return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
	}

	if mIdx := strings.IndexByte(raw, 'm'); mIdx >= 0 {
		minutes, ok := parseDigits(raw[:mIdx])
		if mIdx != len(raw)-1 || !ok {
			return 0, fmt.Errorf("invalid minutes in slot length %q: expected [minutes]m, e.g. 15m", raw)
		}
		return time.Duration(minutes) * time.Minute, nil
	}

	minutes, ok := parseDigits(raw)
	if !ok {
		return 0, fmt.Errorf("invalid slot length %q: must be a number of minutes or use the [hours]h[minutes]m form", raw)
	}
	return time.Duration(minutes) * time.Minute, nil
}

// parseDigits accepts ASCII digits only; signs, spaces and unicode
// digits are all outside the grammar.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
