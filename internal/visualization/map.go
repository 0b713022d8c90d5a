// Package visualization renders terminal views of the project: the domain
// extent, event and station maps, source time function previews, and an
// interactive model browser.
package visualization

import (
	"fmt"
	"strings"

	"github.com/lasif-tools/cli/internal/domain"
)

// Marker is a point drawn on the domain map.
type Marker struct {
	Latitude  float64
	Longitude float64
	Glyph     byte
	Label     string
}

// EventGlyph and StationGlyph are the standard map markers.
const (
	EventGlyph   = '*'
	StationGlyph = '^'
)

// MapOptions sizes the rendered map.
type MapOptions struct {
	Width  int
	Height int
}

// DefaultMapOptions fits a typical 80-column terminal.
var DefaultMapOptions = MapOptions{Width: 61, Height: 21}

// DomainMap renders the domain extent with the boundary buffer zone and
// any markers. The outer frame is the configured extent, dots trace the
// physically usable region inside the boundary width.
func DomainMap(bounds domain.Bounds, rotation domain.Rotation, markers []Marker, opts MapOptions) string {
	if opts.Width < 10 || opts.Height < 5 {
		opts = DefaultMapOptions
	}

	grid := make([][]byte, opts.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", opts.Width))
	}

	// Frame.
	for x := 0; x < opts.Width; x++ {
		grid[0][x] = '-'
		grid[opts.Height-1][x] = '-'
	}
	for y := 0; y < opts.Height; y++ {
		grid[y][0] = '|'
		grid[y][opts.Width-1] = '|'
	}
	grid[0][0] = '+'
	grid[0][opts.Width-1] = '+'
	grid[opts.Height-1][0] = '+'
	grid[opts.Height-1][opts.Width-1] = '+'

	// Buffer zone outline.
	inner := bounds.Shrink(bounds.BoundaryWidth)
	if inner.MinLatitude < inner.MaxLatitude && inner.MinLongitude < inner.MaxLongitude {
		x0, y0 := projectPoint(bounds, inner.MinLatitude, inner.MinLongitude, opts)
		x1, y1 := projectPoint(bounds, inner.MaxLatitude, inner.MaxLongitude, opts)
		for x := x0; x <= x1; x++ {
			setIfEmpty(grid, x, y0, '.')
			setIfEmpty(grid, x, y1, '.')
		}
		for y := y1; y <= y0; y++ {
			setIfEmpty(grid, x0, y, '.')
			setIfEmpty(grid, x1, y, '.')
		}
	}

	for _, m := range markers {
		if !bounds.Contains(m.Latitude, m.Longitude) {
			continue
		}
		x, y := projectPoint(bounds, m.Latitude, m.Longitude, opts)
		grid[y][x] = m.Glyph
	}

	var b strings.Builder
	for _, row := range grid {
		b.Write(row)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "lat %.2f..%.2f  lon %.2f..%.2f  boundary %.1f deg  rotation %.1f deg\n",
		bounds.MinLatitude, bounds.MaxLatitude,
		bounds.MinLongitude, bounds.MaxLongitude,
		bounds.BoundaryWidth, rotation.Angle)
	return b.String()
}

// projectPoint maps a coordinate into grid cells. Latitude grows upward,
// so rows are flipped.
func projectPoint(bounds domain.Bounds, lat, lon float64, opts MapOptions) (x, y int) {
	fx := (lon - bounds.MinLongitude) / (bounds.MaxLongitude - bounds.MinLongitude)
	fy := (lat - bounds.MinLatitude) / (bounds.MaxLatitude - bounds.MinLatitude)
	x = 1 + int(fx*float64(opts.Width-3)+0.5)
	y = opts.Height - 2 - int(fy*float64(opts.Height-3)+0.5)
	return x, y
}

func setIfEmpty(grid [][]byte, x, y int, glyph byte) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	if grid[y][x] == ' ' {
		grid[y][x] = glyph
	}
}

// EventMarkers converts event summaries to map markers.
func EventMarkers(events []domain.EventInfo) []Marker {
	markers := make([]Marker, 0, len(events))
	for _, ev := range events {
		markers = append(markers, Marker{
			Latitude:  ev.Latitude,
			Longitude: ev.Longitude,
			Glyph:     EventGlyph,
			Label:     ev.Name,
		})
	}
	return markers
}
