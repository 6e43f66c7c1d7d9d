/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package schedule

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/friendsincode/slotgrid/internal/config"
)

// NoSlotsMessage is returned as the only output line when the slot
// length does not fit between the start and end times even once.
const NoSlotsMessage = "No slots could be generated. Please check your start time, end time, and slot length to ensure they allow for at least one time slot."

// Slot is one contiguous interval of the generated schedule.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Generator walks from a start time to an end time in slot-length
// steps. All inputs come from the immutable options value; nothing is
// read from ambient state.
type Generator struct {
	opts   config.Options
	logger zerolog.Logger
}

// NewGenerator constructs a schedule generator.
func NewGenerator(opts config.Options, logger zerolog.Logger) *Generator {
	return &Generator{
		opts:   opts,
		logger: logger.With().Str("component", "schedule_generator").Logger(),
	}
}

// Slots parses and validates the configured times and slot length, then
// walks start to end emitting contiguous slots. Leftover time shorter
// than one full slot is dropped, so the last slot's end may fall short
// of the configured end time. Every failure is detected before the
// walk; once it starts, the full schedule is produced.
func (g *Generator) Slots() ([]Slot, error) {
	twelveHour := g.opts.TwelveHour()

	startStr := normalizeTimeInput(g.opts.StartTime, true, twelveHour)
	endStr := normalizeTimeInput(g.opts.EndTime, false, twelveHour)

	start, startErr := parseClockTime(startStr, twelveHour)
	end, endErr := parseClockTime(endStr, twelveHour)
	if startErr != nil || endErr != nil {
		if twelveHour {
			return nil, fmt.Errorf("cannot parse start time %q or end time %q: use HH:MM format with AM/PM for the 12-hour clock", g.opts.StartTime, g.opts.EndTime)
		}
		return nil, fmt.Errorf("cannot parse start time %q or end time %q: use HH:MM format for the 24-hour clock", g.opts.StartTime, g.opts.EndTime)
	}

	if !end.After(start) {
		return nil, fmt.Errorf("end time %q must be after start time %q", endStr, startStr)
	}

	slotLen, err := ParseSlotLength(g.opts.SlotLength)
	if err != nil {
		return nil, fmt.Errorf("invalid slot length %q: %w", g.opts.SlotLength, err)
	}
	if slotLen <= 0 {
		return nil, fmt.Errorf("slot length %q must be greater than zero", g.opts.SlotLength)
	}

	var slots []Slot
	for cursor := start; !cursor.Add(slotLen).After(end); cursor = cursor.Add(slotLen) {
		slots = append(slots, Slot{Start: cursor, End: cursor.Add(slotLen)})
	}

	g.logger.Debug().
		Str("start", startStr).
		Str("end", endStr).
		Dur("slot_length", slotLen).
		Int("slots", len(slots)).
		Msg("schedule walk complete")

	return slots, nil
}

// Lines renders the schedule as output lines, one slot each. A schedule
// with no slots yields the explanatory message as its single line.
func (g *Generator) Lines() ([]string, error) {
	slots, err := g.Slots()
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return []string{NoSlotsMessage}, nil
	}

	sep := "-"
	if g.opts.Spaced {
		sep = " - "
	}
	lines := make([]string, 0, len(slots))
	for _, slot := range slots {
		lines = append(lines, g.FormatTime(slot.Start)+sep+g.FormatTime(slot.End))
	}
	return lines, nil
}

// FormatTime renders a single instant under the configured clock mode.
// The meridiem suffix appears only in 12-hour mode and only on request.
func (g *Generator) FormatTime(t time.Time) string {
	if g.opts.TwelveHour() {
		if g.opts.ShowAMPM {
			return t.Format("03:04 PM")
		}
		return t.Format("03:04")
	}
	return t.Format("15:04")
}
