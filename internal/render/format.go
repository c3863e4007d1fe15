package render

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Placeholder is rendered in place of any fact the collector could not obtain.
const Placeholder = "unknown"

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

// FormatBytes renders a byte count with fixed two-decimal IEC units, e.g.
// "8.00 GiB". The displayed value is truncated, not rounded, so a count just
// below a unit boundary can never display as large as one just above it.
func FormatBytes(b uint64) string {
	v := float64(b)
	unit := 0
	for v >= 1024 && unit < len(byteUnits)-1 {
		v /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d B", b)
	}
	return fmt.Sprintf("%.2f %s", math.Floor(v*100)/100, byteUnits[unit])
}

// FormatUptime renders a duration as "Xd Yh Zm" at minute granularity.
// Leading zero units are elided; anything under a minute renders "0m".
func FormatUptime(d time.Duration) string {
	total := int64(d.Seconds())
	if total < 0 {
		total = 0
	}

	days := total / 86400
	hours := (total % 86400) / 3600
	mins := (total % 3600) / 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if days > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", mins))

	return strings.Join(parts, " ")
}
