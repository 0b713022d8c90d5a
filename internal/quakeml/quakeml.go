// Package quakeml reads and writes the subset of QuakeML the CLI needs:
// one event per file with origin, magnitude, region description, and
// optionally a moment tensor. Anything else in a file is ignored and not
// round-tripped.
package quakeml

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"
)

// Document is the root element of a QuakeML file.
type Document struct {
	XMLName         xml.Name        `xml:"quakeml"`
	Xmlns           string          `xml:"xmlns,attr,omitempty"`
	EventParameters EventParameters `xml:"eventParameters"`
}

type EventParameters struct {
	PublicID string  `xml:"publicID,attr,omitempty"`
	Events   []Event `xml:"event"`
}

type Event struct {
	PublicID          string           `xml:"publicID,attr,omitempty"`
	PreferredOriginID string           `xml:"preferredOriginID,omitempty"`
	Type              string           `xml:"type,omitempty"`
	Descriptions      []Description    `xml:"description"`
	Origins           []Origin         `xml:"origin"`
	Magnitudes        []Magnitude      `xml:"magnitude"`
	FocalMechanisms   []FocalMechanism `xml:"focalMechanism"`
}

type Description struct {
	Type string `xml:"type,omitempty"`
	Text string `xml:"text"`
}

type Origin struct {
	PublicID  string       `xml:"publicID,attr,omitempty"`
	Time      TimeQuantity `xml:"time"`
	Latitude  RealQuantity `xml:"latitude"`
	Longitude RealQuantity `xml:"longitude"`
	// Depth is in meters, following the QuakeML convention.
	Depth RealQuantity `xml:"depth"`
}

type Magnitude struct {
	Mag  RealQuantity `xml:"mag"`
	Type string       `xml:"type,omitempty"`
}

type FocalMechanism struct {
	MomentTensor MomentTensor `xml:"momentTensor"`
}

type MomentTensor struct {
	ScalarMoment RealQuantity `xml:"scalarMoment"`
	Tensor       Tensor       `xml:"tensor"`
}

type Tensor struct {
	Mrr RealQuantity `xml:"Mrr"`
	Mtt RealQuantity `xml:"Mtt"`
	Mpp RealQuantity `xml:"Mpp"`
	Mrt RealQuantity `xml:"Mrt"`
	Mrp RealQuantity `xml:"Mrp"`
	Mtp RealQuantity `xml:"Mtp"`
}

// RealQuantity wraps QuakeML's nested <value> element.
type RealQuantity struct {
	Value float64 `xml:"value"`
}

// TimeQuantity wraps a nested time <value> element, kept as a string so
// files with sub-second precision or offsets survive a round trip.
type TimeQuantity struct {
	Value string `xml:"value"`
}

// timeLayouts covers the origin time encodings seen in the wild.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// Parse decodes the time value.
func (t TimeQuantity) Parse() (time.Time, error) {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, t.Value); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable origin time %q", t.Value)
}

// NewTimeQuantity encodes a time the way the rest of the toolchain writes
// it.
func NewTimeQuantity(t time.Time) TimeQuantity {
	return TimeQuantity{Value: t.UTC().Format(time.RFC3339Nano)}
}

// Read parses the first event from a QuakeML file.
func Read(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quakeml %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses the first event from QuakeML bytes.
func Parse(data []byte) (*Event, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse quakeml: %w", err)
	}
	if len(doc.EventParameters.Events) == 0 {
		return nil, fmt.Errorf("quakeml document contains no event")
	}
	return &doc.EventParameters.Events[0], nil
}

// Write serializes a single event to a QuakeML file.
func Write(path string, event Event) error {
	doc := Document{
		Xmlns: "http://quakeml.org/xmlns/quakeml/1.2",
		EventParameters: EventParameters{
			Events: []Event{event},
		},
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal quakeml: %w", err)
	}

	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("write quakeml %s: %w", path, err)
	}
	return nil
}

// PreferredOrigin returns the origin named by preferredOriginID, falling
// back to the first origin.
func (e *Event) PreferredOrigin() (*Origin, error) {
	if len(e.Origins) == 0 {
		return nil, fmt.Errorf("event has no origin")
	}
	if e.PreferredOriginID != "" {
		for i := range e.Origins {
			if e.Origins[i].PublicID == e.PreferredOriginID {
				return &e.Origins[i], nil
			}
		}
	}
	return &e.Origins[0], nil
}

// PreferredMagnitude returns the first magnitude.
func (e *Event) PreferredMagnitude() (*Magnitude, error) {
	if len(e.Magnitudes) == 0 {
		return nil, fmt.Errorf("event has no magnitude")
	}
	return &e.Magnitudes[0], nil
}

// Region returns the region-name description, or an empty string.
func (e *Event) Region() string {
	for _, d := range e.Descriptions {
		if d.Type == "region name" {
			return d.Text
		}
	}
	if len(e.Descriptions) > 0 {
		return e.Descriptions[0].Text
	}
	return ""
}
