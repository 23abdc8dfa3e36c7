// Package domain contains the core types for evry: millisecond durations,
// decision outcomes, sentinel errors and storage layout constants.
package domain

import (
	"fmt"
	"math/bits"
	"strings"
)

// Milliseconds is a whole number of milliseconds. It is used both for
// durations (thresholds) and for epoch timestamps.
type Milliseconds uint64

// Millisecond values for each fixed-length unit. These are deliberately not
// calendar-aware: a month is always 30 days, a year is the mean Gregorian year.
const (
	Second Milliseconds = 1_000
	Minute Milliseconds = 60_000
	Hour   Milliseconds = 3_600_000
	Day    Milliseconds = 86_400_000
	Week   Milliseconds = 604_800_000
	Month  Milliseconds = 2_592_000_000
	Year   Milliseconds = 31_556_952_000
)

// MulChecked multiplies a quantity by a unit value, reporting overflow
// instead of wrapping.
func (m Milliseconds) MulChecked(quantity uint64) (Milliseconds, bool) {
	hi, lo := bits.Mul64(uint64(m), quantity)
	if hi != 0 {
		return 0, false
	}
	return Milliseconds(lo), true
}

// AddChecked adds two millisecond values, reporting overflow instead of
// wrapping.
func (m Milliseconds) AddChecked(other Milliseconds) (Milliseconds, bool) {
	sum, carry := bits.Add64(uint64(m), uint64(other), 0)
	if carry != 0 {
		return 0, false
	}
	return Milliseconds(sum), true
}

// Seconds returns the value truncated to whole seconds.
func (m Milliseconds) Seconds() uint64 {
	return uint64(m) / 1000
}

// Describe renders the value as human-readable text, e.g.
// "55 days, 13 hours, 16 minutes, 45 seconds". Sub-second values
// render as "0 seconds".
func (m Milliseconds) Describe() string {
	var parts []string
	part := func(n uint64, unit string) {
		switch n {
		case 0:
		case 1:
			parts = append(parts, fmt.Sprintf("%d %s", n, unit))
		default:
			parts = append(parts, fmt.Sprintf("%d %ss", n, unit))
		}
	}

	sec := uint64(m) / 1000
	min := sec / 60
	sec %= 60
	hrs := min / 60
	min %= 60
	days := hrs / 24
	hrs %= 24

	part(days, "day")
	part(hrs, "hour")
	part(min, "minute")
	part(sec, "second")

	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.Join(parts, ", ")
}
