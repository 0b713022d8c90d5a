package quakeml

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleQuakeML = `<?xml version="1.0" encoding="UTF-8"?>
<q:quakeml xmlns:q="http://quakeml.org/xmlns/quakeml/1.2" xmlns="http://quakeml.org/xmlns/bed/1.2">
  <eventParameters publicID="smi:local/catalog">
    <event publicID="smi:local/event/1">
      <preferredOriginID>smi:local/origin/2</preferredOriginID>
      <type>earthquake</type>
      <description>
        <type>region name</type>
        <text>TURKEY</text>
      </description>
      <origin publicID="smi:local/origin/1">
        <time><value>2011-05-19T20:15:22.90Z</value></time>
        <latitude><value>39.0</value></latitude>
        <longitude><value>29.0</value></longitude>
        <depth><value>10000</value></depth>
      </origin>
      <origin publicID="smi:local/origin/2">
        <time><value>2011-05-19T20:15:23.10Z</value></time>
        <latitude><value>39.1</value></latitude>
        <longitude><value>29.1</value></longitude>
        <depth><value>9800</value></depth>
      </origin>
      <magnitude>
        <mag><value>5.9</value></mag>
        <type>Mw</type>
      </magnitude>
    </event>
  </eventParameters>
</q:quakeml>`

func TestParsePicksPreferredOrigin(t *testing.T) {
	event, err := Parse([]byte(sampleQuakeML))
	require.NoError(t, err)

	origin, err := event.PreferredOrigin()
	require.NoError(t, err)
	require.Equal(t, 39.1, origin.Latitude.Value)
	require.Equal(t, 9800.0, origin.Depth.Value)

	ts, err := origin.Time.Parse()
	require.NoError(t, err)
	require.Equal(t, 2011, ts.Year())
	require.Equal(t, time.May, ts.Month())
}

func TestParseMagnitudeAndRegion(t *testing.T) {
	event, err := Parse([]byte(sampleQuakeML))
	require.NoError(t, err)

	mag, err := event.PreferredMagnitude()
	require.NoError(t, err)
	require.Equal(t, 5.9, mag.Mag.Value)
	require.Equal(t, "Mw", mag.Type)
	require.Equal(t, "TURKEY", event.Region())
}

func TestParseEmptyDocumentFails(t *testing.T) {
	_, err := Parse([]byte(`<quakeml><eventParameters/></quakeml>`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no event")

	_, err = Parse([]byte("not xml at all <"))
	require.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	origin := time.Date(2012, 3, 4, 5, 6, 7, 0, time.UTC)
	event := Event{
		PublicID: "smi:local/event/rt",
		Type:     "earthquake",
		Descriptions: []Description{
			{Type: "region name", Text: "AEGEAN SEA"},
		},
		Origins: []Origin{{
			PublicID:  "smi:local/origin/rt",
			Time:      NewTimeQuantity(origin),
			Latitude:  RealQuantity{Value: 38.5},
			Longitude: RealQuantity{Value: 25.2},
			Depth:     RealQuantity{Value: 12000},
		}},
		Magnitudes: []Magnitude{{Mag: RealQuantity{Value: 6.1}, Type: "Mw"}},
		FocalMechanisms: []FocalMechanism{{
			MomentTensor: MomentTensor{
				ScalarMoment: RealQuantity{Value: 3.661e25},
				Tensor: Tensor{
					Mrr: RealQuantity{Value: -3.3e18},
					Mtt: RealQuantity{Value: 1.43e18},
				},
			},
		}},
	}

	path := filepath.Join(t.TempDir(), "rt.xml")
	require.NoError(t, Write(path, event))

	got, err := Read(path)
	require.NoError(t, err)

	gotOrigin, err := got.PreferredOrigin()
	require.NoError(t, err)
	require.Equal(t, 38.5, gotOrigin.Latitude.Value)

	ts, err := gotOrigin.Time.Parse()
	require.NoError(t, err)
	require.True(t, ts.Equal(origin))

	require.Equal(t, "AEGEAN SEA", got.Region())
	require.Equal(t, -3.3e18, got.FocalMechanisms[0].MomentTensor.Tensor.Mrr.Value)
}

func TestPreferredOriginFallsBackToFirst(t *testing.T) {
	event := Event{
		PreferredOriginID: "smi:missing",
		Origins: []Origin{
			{PublicID: "smi:a", Latitude: RealQuantity{Value: 1}},
			{PublicID: "smi:b", Latitude: RealQuantity{Value: 2}},
		},
	}

	origin, err := event.PreferredOrigin()
	require.NoError(t, err)
	require.Equal(t, 1.0, origin.Latitude.Value)
}
