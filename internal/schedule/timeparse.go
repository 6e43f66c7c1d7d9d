/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package schedule

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	layout12 = "03:04 PM"
	layout24 = "15:04"
)

var (
	bareHourMeridiem = regexp.MustCompile(`^\d{1,2}(am|pm)$`)
	missingSpace     = regexp.MustCompile(`(\d{1,2}:\d{2})(am|pm)`)
	bareHour24       = regexp.MustCompile(`^\d{1,2}$`)

	// Strict acceptance per clock mode: 12-hour needs an hour 1-12 and
	// an uppercase meridiem, 24-hour an hour 0-23. Minutes are always
	// two digits.
	clock12 = regexp.MustCompile(`^(0?[1-9]|1[0-2]):([0-5]\d) (AM|PM)$`)
	clock24 = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
)

// normalizeTimeInput rewrites user time input into the canonical layout
// for the active clock mode. In 12-hour mode a time with no meridiem
// defaults to AM for the start of the range and PM for the end, on the
// assumption that schedules run from morning into the afternoon.
func normalizeTimeInput(raw string, isStart, twelveHour bool) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	if !twelveHour {
		if bareHour24.MatchString(s) {
			s += ":00"
		}
		return s
	}

	if !strings.Contains(s, "am") && !strings.Contains(s, "pm") {
		if isStart {
			s += " am"
		} else {
			s += " pm"
		}
	}
	if bareHourMeridiem.MatchString(s) {
		s = s[:len(s)-2] + ":00 " + s[len(s)-2:]
	}
	s = missingSpace.ReplaceAllString(s, "$1 $2")
	s = strings.ReplaceAll(s, "am", "AM")
	s = strings.ReplaceAll(s, "pm", "PM")
	return s
}

// parseClockTime parses a normalized time string into a time.Time on
// the zero reference day. Only the clock components are meaningful.
// The regexes hold the acceptance boundary; the parse itself uses the
// single-digit-hour layout because time.Parse rejects "5:00 PM" under
// a zero-padded one.
func parseClockTime(s string, twelveHour bool) (time.Time, error) {
	if twelveHour {
		if !clock12.MatchString(s) {
			return time.Time{}, fmt.Errorf("time %q does not match the %s layout", s, layout12)
		}
		return time.Parse("3:04 PM", s)
	}
	if !clock24.MatchString(s) {
		return time.Time{}, fmt.Errorf("time %q does not match the %s layout", s, layout24)
	}
	return time.Parse("15:04", s)
}
