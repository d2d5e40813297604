// Package xtime extends the stdlib time formatting with calendar units.
package xtime

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var segmentRx = regexp.MustCompile(`(\d*\.\d+|\d+)[^\d]*`)

// Calendar units in hours. Months and years use the fixed civil
// approximations (30 and 365 days).
var units = []struct {
	names []string
	hours time.Duration
}{
	{[]string{"d", "D"}, 24},
	{[]string{"w", "W"}, 7 * 24},
	{[]string{"M"}, 30 * 24},
	{[]string{"y", "Y"}, 365 * 24},
}

// ParseDuration parses a duration string, accepting the calendar units
// "d", "w", "M" and "y" on top of the ones time.ParseDuration knows.
// Examples: "10d", "-1.5w", "3Y4M5d", "30s".
func ParseDuration(s string) (time.Duration, error) {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var total time.Duration
	for _, seg := range segmentRx.FindAllString(s, -1) {
		scale := time.Duration(1)
	convert:
		for _, unit := range units {
			for _, name := range unit.names {
				if strings.Contains(seg, name) {
					seg = strings.ReplaceAll(seg, name, "h")
					scale = unit.hours
					break convert
				}
			}
		}

		dur, err := time.ParseDuration(seg)
		if err != nil {
			return 0, err
		}
		total += dur * scale
	}

	if neg {
		total = -total
	}

	return total, nil
}

// FormatDuration renders a duration with the same units ParseDuration
// accepts, largest first: "5d", "-1w2d", "3Y4M5d". The round parameter is
// the smallest unit to include; pass 0 to keep sub-second precision.
func FormatDuration(d time.Duration, round time.Duration) string {
	if round > 0 {
		d = d.Round(round)
	}
	if d == 0 {
		return "0d"
	}

	neg := d < 0
	if neg {
		d = -d
	}

	hours := int64(d / time.Hour)
	years := hours / (365 * 24)
	hours %= 365 * 24
	months := hours / (30 * 24)
	hours %= 30 * 24
	weeks := hours / (7 * 24)
	hours %= 7 * 24
	days := hours / 24
	hours %= 24

	rem := d % time.Hour
	minutes := rem / time.Minute
	rem %= time.Minute
	seconds := rem / time.Second
	rem %= time.Second

	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%dY", years))
	}
	if months > 0 {
		parts = append(parts, fmt.Sprintf("%dM", months))
	}
	if weeks > 0 {
		parts = append(parts, fmt.Sprintf("%dw", weeks))
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 && round <= time.Hour {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 && round <= time.Minute {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 && round <= time.Second {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	if rem > 0 && round < time.Second {
		switch {
		case rem%time.Millisecond == 0 && round <= time.Millisecond:
			parts = append(parts, fmt.Sprintf("%dms", rem/time.Millisecond))
		case rem%time.Microsecond == 0 && round <= time.Microsecond:
			parts = append(parts, fmt.Sprintf("%dµs", rem/time.Microsecond))
		case round <= time.Nanosecond:
			parts = append(parts, fmt.Sprintf("%dns", rem))
		}
	}

	if len(parts) == 0 {
		return "0d"
	}

	out := strings.Join(parts, "")
	if neg {
		out = "-" + out
	}

	return out
}
