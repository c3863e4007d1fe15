package utils

import "math"

// Round rounds a float64 value to 2 decimal places
// Used for percentages and ratios to avoid unnecessary precision
func Round(val float64) float64 {
	// Use proper rounding that works for both positive and negative numbers
	return math.Round(val*100) / 100
}

// UsedPercent returns used/total as a percentage rounded to 2 decimal
// places. A zero total yields 0 rather than NaN.
func UsedPercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return Round(float64(used) / float64(total) * 100)
}
