// Package cli provides the command-line interface for the drawing tools.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "chartdraw/internal/errors"
	"chartdraw/internal/geometry"
)

// ParsePoint parses "x,y" into a point. Surrounding spaces are ignored.
func ParsePoint(s string) (geometry.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geometry.Point{}, apperrors.Wrapf(apperrors.ErrInvalidPoint, "%q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geometry.Point{}, apperrors.Wrapf(apperrors.ErrInvalidPoint, "%q: bad x", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geometry.Point{}, apperrors.Wrapf(apperrors.ErrInvalidPoint, "%q: bad y", s)
	}
	return geometry.Pt(x, y), nil
}

// ParsePoints parses every "x,y" value in order.
func ParsePoints(values []string) ([]geometry.Point, error) {
	points := make([]geometry.Point, 0, len(values))
	for _, v := range values {
		p, err := ParsePoint(v)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// FormatPoint formats a point as "(x, y)" with two decimals.
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// FormatPolyline formats a polyline as "a -> b -> c". Polylines longer than
// limit show their first and last points around an elided count.
func FormatPolyline(line geometry.Polyline, limit int) string {
	if limit < 2 || len(line) <= limit {
		parts := make([]string, len(line))
		for i, p := range line {
			parts[i] = FormatPoint(p)
		}
		return strings.Join(parts, " -> ")
	}
	return fmt.Sprintf("%s -> ... %d points ... -> %s",
		FormatPoint(line[0]), len(line)-2, FormatPoint(line[len(line)-1]))
}
