// Package utils provides shared display formatting helpers.
package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatPrice formats a price with two decimal places.
func FormatPrice(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// FormatSignedPrice formats a price delta with an explicit sign.
func FormatSignedPrice(value float64) string {
	if value > 0 {
		return "+" + FormatPrice(value)
	}
	return FormatPrice(value)
}

// FormatDegrees formats an angle in degrees with two decimals and a degree
// suffix, e.g. "45.00°".
func FormatDegrees(deg float64) string {
	return fmt.Sprintf("%.2f°", deg)
}

// FormatRatio formats a risk/reward style ratio. Infinite ratios render as "∞".
func FormatRatio(ratio float64) string {
	if math.IsInf(ratio, 1) {
		return "∞"
	}
	if math.IsInf(ratio, -1) {
		return "-∞"
	}
	return fmt.Sprintf("%.2f", ratio)
}

// FormatSpan formats a millisecond span as its largest non-zero unit and the
// unit just below it, e.g. "3d 4h", "2h 5m", "45s". A zero lower unit is
// omitted, so 3d 0h 5m prints "3d".
func FormatSpan(ms int64) string {
	negative := ms < 0
	if negative {
		ms = -ms
	}

	units := []struct {
		suffix string
		size   int64
	}{
		{"d", 24 * 60 * 60 * 1000},
		{"h", 60 * 60 * 1000},
		{"m", 60 * 1000},
		{"s", 1000},
	}

	var parts []string
	for i, u := range units {
		n := ms / u.size
		if n == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d%s", n, u.suffix))
		if i+1 < len(units) {
			next := units[i+1]
			if m := ms % u.size / next.size; m > 0 {
				parts = append(parts, fmt.Sprintf("%d%s", m, next.suffix))
			}
		}
		break
	}

	result := "0s"
	if len(parts) > 0 {
		result = strings.Join(parts, " ")
	}
	if negative {
		result = "-" + result
	}
	return result
}
