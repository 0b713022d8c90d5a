// Package format renders the values the CLI prints: coordinates, depths,
// magnitudes, origin times, and pluralized counts.
package format

import (
	"fmt"
	"math"
	"time"
)

// Latitude formats a latitude with its hemisphere.
// Example output: "45.20 N" or "12.70 S"
func Latitude(lat float64) string {
	hemisphere := "N"
	if lat < 0 {
		hemisphere = "S"
	}
	return fmt.Sprintf("%.2f %s", math.Abs(lat), hemisphere)
}

// Longitude formats a longitude with its hemisphere.
// Example output: "11.30 E" or "70.50 W"
func Longitude(lon float64) string {
	hemisphere := "E"
	if lon < 0 {
		hemisphere = "W"
	}
	return fmt.Sprintf("%.2f %s", math.Abs(lon), hemisphere)
}

// Depth formats a depth in kilometers.
func Depth(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

// Magnitude formats a magnitude with its type.
// Example output: "5.9 Mw"
func Magnitude(mag float64, magType string) string {
	if magType == "" {
		return fmt.Sprintf("%.1f", mag)
	}
	return fmt.Sprintf("%.1f %s", mag, magType)
}

// OriginTime formats an event origin time in UTC.
func OriginTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05") + " UTC"
}

// Count pluralizes a noun by simple s-suffixing.
// Example output: "1 event", "3 events"
func Count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
