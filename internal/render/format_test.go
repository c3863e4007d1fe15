package render

import (
	"fmt"
	"testing"
	"time"
)

// TestFormatBytes tests the fixed two-decimal IEC conversion
func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes uint64
		want  string
	}{
		{
			name:  "zero",
			bytes: 0,
			want:  "0 B",
		},
		{
			name:  "just under a KiB",
			bytes: 1023,
			want:  "1023 B",
		},
		{
			name:  "exactly one KiB",
			bytes: 1024,
			want:  "1.00 KiB",
		},
		{
			name:  "eight GiB",
			bytes: 8589934592,
			want:  "8.00 GiB",
		},
		{
			name:  "sixteen GiB",
			bytes: 17179869184,
			want:  "16.00 GiB",
		},
		{
			name:  "999 MiB stays in MiB",
			bytes: 999 * 1024 * 1024,
			want:  "999.00 MiB",
		},
		{
			name:  "just under a GiB truncates, never shows 1024.00 MiB",
			bytes: 1073741823,
			want:  "1023.99 MiB",
		},
		{
			name:  "one GiB plus one byte",
			bytes: 1073741825,
			want:  "1.00 GiB",
		},
		{
			name:  "TiB range",
			bytes: 2 * 1024 * 1024 * 1024 * 1024,
			want:  "2.00 TiB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

// TestFormatBytesMonotonic checks that a larger byte count never displays as
// a numerically smaller value within the same unit.
func TestFormatBytesMonotonic(t *testing.T) {
	// Pairs straddling unit boundaries from the rounding-artifact angle.
	pairs := []struct {
		smaller uint64
		larger  uint64
	}{
		{999 * 1024 * 1024, 1073741825},          // 999 MiB vs 1 GiB + 1 B
		{1073741823, 1073741824},                 // 1 GiB - 1 B vs 1 GiB
		{1023, 1024},                             // B vs KiB boundary
		{1048575, 1048576},                       // KiB vs MiB boundary
		{17179869183, 17179869184},               // just under 16 GiB vs 16 GiB
	}

	for _, pair := range pairs {
		a, b := FormatBytes(pair.smaller), FormatBytes(pair.larger)
		if a == b {
			continue
		}
		// The smaller value must not display with a higher-magnitude number
		// in the same unit than the larger one displays in its unit.
		if bytesOf(t, a) > bytesOf(t, b) {
			t.Errorf("FormatBytes not monotonic: %d -> %q but %d -> %q",
				pair.smaller, a, pair.larger, b)
		}
	}
}

// bytesOf converts a formatted size back to an approximate byte count.
func bytesOf(t *testing.T, formatted string) float64 {
	t.Helper()

	var value float64
	var unit string
	if _, err := fmt.Sscanf(formatted, "%f %s", &value, &unit); err != nil {
		t.Fatalf("unparseable size %q: %v", formatted, err)
	}

	multipliers := map[string]float64{
		"B": 1, "KiB": 1 << 10, "MiB": 1 << 20, "GiB": 1 << 30, "TiB": 1 << 40, "PiB": 1 << 50,
	}
	m, ok := multipliers[unit]
	if !ok {
		t.Fatalf("unknown unit in %q", formatted)
	}
	return value * m
}

// TestFormatUptime tests duration formatting at minute granularity
func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{
			name: "days hours minutes",
			d:    90061 * time.Second,
			want: "1d 1h 1m",
		},
		{
			name: "exactly one day",
			d:    24 * time.Hour,
			want: "1d 0h 0m",
		},
		{
			name: "hours and minutes only",
			d:    3700 * time.Second,
			want: "1h 1m",
		},
		{
			name: "exactly one hour",
			d:    time.Hour,
			want: "1h 0m",
		},
		{
			name: "under a minute",
			d:    59 * time.Second,
			want: "0m",
		},
		{
			name: "zero",
			d:    0,
			want: "0m",
		},
		{
			name: "sub-minute precision is floored",
			d:    2*time.Minute + 59*time.Second,
			want: "2m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatUptime(tt.d)
			if got != tt.want {
				t.Errorf("FormatUptime(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
