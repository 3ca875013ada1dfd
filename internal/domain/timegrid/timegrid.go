// Package timegrid holds the wall-clock arithmetic behind the weekly
// planning grid: HH:MM parsing, gridline slot generation and the visible
// window/scale configuration.
package timegrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Default grid constants for the weekly planning view.
const (
	DefaultWindowStart = "10:00"
	DefaultWindowEnd   = "22:00"
	DefaultPxPerHour   = 60.0
	DefaultMinHeightPx = 24.0
	DefaultGapPx       = 2.0
	DefaultSlotStep    = 60 // minutes between gridline labels
)

// ErrInvalidWindow reports a grid whose visible window is malformed or
// inverted. This is a hard failure: a grid with no usable time axis cannot
// position anything.
var ErrInvalidWindow = errors.New("grid window start must be a valid time before end")

// GridConfig holds the visible clock window and the scale constants mapping
// time onto pixels. The zero value is not usable; call DefaultGrid.
type GridConfig struct {
	WindowStart string // HH:MM
	WindowEnd   string // HH:MM
	PxPerHour   float64
	MinHeightPx float64
	GapPx       float64
}

// DefaultGrid returns the standard 10:00-22:00 window at 60 px per hour.
func DefaultGrid() GridConfig {
	return GridConfig{
		WindowStart: DefaultWindowStart,
		WindowEnd:   DefaultWindowEnd,
		PxPerHour:   DefaultPxPerHour,
		MinHeightPx: DefaultMinHeightPx,
		GapPx:       DefaultGapPx,
	}
}

// Validate checks the grid's invariants.
// PRE: none
// POST: returns nil if the window parses and start < end, ErrInvalidWindow otherwise
func (g GridConfig) Validate() error {
	start, ok := ToMinutes(g.WindowStart)
	if !ok {
		return ErrInvalidWindow
	}
	end, ok := ToMinutes(g.WindowEnd)
	if !ok {
		return ErrInvalidWindow
	}
	if start >= end {
		return ErrInvalidWindow
	}
	return nil
}

// ToMinutes parses an HH:MM wall-clock string to minutes since midnight.
// Malformed input (missing colon, non-numeric, out-of-range hour or minute)
// yields (0, false): the bad value clamps to midnight instead of failing, so
// the record stays visible and the caller can surface the flag.
func ToMinutes(value string) (int, bool) {
	hourPart, minutePart, found := strings.Cut(value, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// FormatMinutes renders minutes since midnight back to HH:MM.
// PRE: minutes is in [0, 1439]
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// BuildTimeSlots returns the HH:MM gridline labels from start to end,
// inclusive of both ends, stepping by stepMinutes. The labels are derived
// purely from the configured window, never from session data.
// PRE: start and end are valid HH:MM with start < end, stepMinutes > 0
// POST: the first slot equals start and the last slot equals end
func BuildTimeSlots(start, end string, stepMinutes int) []string {
	startMin, ok := ToMinutes(start)
	if !ok {
		return nil
	}
	endMin, ok := ToMinutes(end)
	if !ok || endMin <= startMin || stepMinutes <= 0 {
		return nil
	}

	var slots []string
	for m := startMin; m <= endMin; m += stepMinutes {
		slots = append(slots, FormatMinutes(m))
	}
	// Keep the closing bound even when the window is not step-aligned.
	if slots[len(slots)-1] != FormatMinutes(endMin) {
		slots = append(slots, FormatMinutes(endMin))
	}
	return slots
}
