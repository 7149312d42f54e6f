// Package timeslot holds the interval arithmetic shared by availability, pricing and slot selection.
// Times are minutes since midnight; every range is half-open [Start, End).
package timeslot

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/savioruz/reserva/pkg/constant"
)

const minutesPerDay = 24 * constant.MinutesPerHour

var (
	ErrInvalidClock = errors.New("timeslot: invalid clock value, expected HH:MM")
	ErrEmptyRange   = errors.New("timeslot: end time must be after start time")
)

type Range struct {
	Start int
	End   int
}

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(constant.HoursFormat, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return t.Hour()*constant.MinutesPerHour + t.Minute(), nil
}

// FormatClock converts minutes since midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/constant.MinutesPerHour, minutes%constant.MinutesPerHour)
}

// Parse builds a range from two clock strings and rejects empty or inverted ranges.
func Parse(start, end string) (Range, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Range{}, err
	}

	e, err := ParseClock(end)
	if err != nil {
		return Range{}, err
	}

	r := Range{Start: s, End: e}
	if !r.Valid() {
		return Range{}, ErrEmptyRange
	}

	return r, nil
}

func (r Range) Valid() bool {
	return r.Start >= 0 && r.End <= minutesPerDay && r.End > r.Start
}

func (r Range) Minutes() int {
	if !r.Valid() {
		return 0
	}

	return r.End - r.Start
}

// Overlaps reports whether two ranges share at least one minute. Touching ranges do not overlap.
func (r Range) Overlaps(o Range) bool {
	return !(r.End <= o.Start || r.Start >= o.End)
}

// Intersect returns the shared part of two ranges and whether it is non-empty.
func (r Range) Intersect(o Range) (Range, bool) {
	i := Range{Start: max(r.Start, o.Start), End: min(r.End, o.End)}

	return i, i.End > i.Start
}

func (r Range) String() string {
	return FormatClock(r.Start) + "-" + FormatClock(r.End)
}

// Covers reports whether the union of windows covers every minute of r.
func Covers(windows []Range, r Range) bool {
	if !r.Valid() {
		return false
	}

	sorted := make([]Range, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	cursor := r.Start

	for _, w := range sorted {
		if w.Start > cursor {
			break
		}

		if w.End > cursor {
			cursor = w.End
		}

		if cursor >= r.End {
			return true
		}
	}

	return cursor >= r.End
}

// Rate is an hourly price applied over a window.
type Rate struct {
	Window       Range
	PricePerHour int64
}

// Price charges every minute of r at the rate of each window it falls in, rounding down once at the end.
// Overlapping windows both charge the shared minutes, so shift configuration is expected to be disjoint.
func Price(rates []Rate, r Range) int64 {
	var minuteTotal int64

	for _, rate := range rates {
		if i, ok := r.Intersect(rate.Window); ok {
			minuteTotal += int64(i.Minutes()) * rate.PricePerHour
		}
	}

	return minuteTotal / constant.MinutesPerHour
}
