package domain

import "time"

// Bounds describes the geographical extent of a simulation domain in the
// rotated reference frame, together with the width of the absorbing
// boundary layer that usable data must stay clear of.
type Bounds struct {
	MinLatitude   float64
	MaxLatitude   float64
	MinLongitude  float64
	MaxLongitude  float64
	BoundaryWidth float64
	MinDepthKM    float64
	MaxDepthKM    float64
}

// Shrink returns the bounds contracted on all sides by the given number of
// degrees. Used to keep stations and events away from the absorbing
// boundaries.
func (b Bounds) Shrink(degrees float64) Bounds {
	b.MinLatitude += degrees
	b.MaxLatitude -= degrees
	b.MinLongitude += degrees
	b.MaxLongitude -= degrees
	return b
}

// Contains reports whether the given point lies inside the bounds.
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLatitude && lat <= b.MaxLatitude &&
		lon >= b.MinLongitude && lon <= b.MaxLongitude
}

// Rotation describes how the simulation domain is rotated away from its
// natural equatorial position. The mathematics of applying it live in the
// solver toolchain; the CLI only carries the parameters through.
type Rotation struct {
	Axis  [3]float64
	Angle float64
}

// EventInfo is the summary of one seismic event as shown by the CLI.
type EventInfo struct {
	Name          string
	Latitude      float64
	Longitude     float64
	DepthKM       float64
	OriginTime    time.Time
	Magnitude     float64
	MagnitudeType string
	Region        string
}

// Station is one recording station, as far as the CLI knows about it.
// Coordinates may be zero when no download has recorded them yet;
// HasCoordinates distinguishes that case.
type Station struct {
	Network        string
	Code           string
	Latitude       float64
	Longitude      float64
	Elevation      float64
	HasCoordinates bool
}

// ID returns the NET.STA identifier used in tables and filenames.
func (s Station) ID() string {
	return s.Network + "." + s.Code
}
