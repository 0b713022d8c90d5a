package project

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/lasif-tools/cli/internal/quakeml"
	"github.com/lasif-tools/cli/internal/store"
)

// dummySeed makes the generated data somewhat predictable.
const dummySeed = 34235234

// DummyReport summarizes what GenerateDummyData produced.
type DummyReport struct {
	Events    int
	Stations  int
	Waveforms int
}

// GenerateDummyData creates seeded random events, stations, and waveform
// placeholders. Useful for debugging and following the tutorial.
func (p *Project) GenerateDummyData() (DummyReport, error) {
	rng := rand.New(rand.NewSource(dummySeed))

	bounds := p.Config.Bounds().Shrink(p.Config.Domain.Bounds.BoundaryWidth * 1.5)
	tensor := []float64{-3.3e18, 1.43e18, 1.87e18, -1.43e18, -2.69e17, -1.77e18}

	windowStart := time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	windowEnd := time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC).Unix()

	const eventCount = 8
	eventNames := make([]string, 0, eventCount)
	for i := 1; i <= eventCount; i++ {
		lat := uniform(rng, bounds.MinLatitude, bounds.MaxLatitude)
		lon := uniform(rng, bounds.MinLongitude, bounds.MaxLongitude)
		depthM := uniform(rng, bounds.MinDepthKM, bounds.MaxDepthKM) * 1000.0
		originTime := time.Unix(windowStart+rng.Int63n(windowEnd-windowStart), 0).UTC()

		rng.Shuffle(len(tensor), func(a, b int) {
			tensor[a], tensor[b] = tensor[b], tensor[a]
		})

		name := fmt.Sprintf("dummy_event_%d", i)
		event := quakeml.Event{
			Type: "earthquake",
			Origins: []quakeml.Origin{{
				Time:      quakeml.NewTimeQuantity(originTime),
				Latitude:  quakeml.RealQuantity{Value: lat},
				Longitude: quakeml.RealQuantity{Value: lon},
				Depth:     quakeml.RealQuantity{Value: depthM},
			}},
			Magnitudes: []quakeml.Magnitude{{
				Mag:  quakeml.RealQuantity{Value: uniform(rng, 5, 7)},
				Type: "Mw",
			}},
			FocalMechanisms: []quakeml.FocalMechanism{{
				MomentTensor: quakeml.MomentTensor{
					ScalarMoment: quakeml.RealQuantity{Value: 3.661e25},
					Tensor: quakeml.Tensor{
						Mrr: quakeml.RealQuantity{Value: tensor[0]},
						Mtt: quakeml.RealQuantity{Value: tensor[1]},
						Mpp: quakeml.RealQuantity{Value: tensor[2]},
						Mrt: quakeml.RealQuantity{Value: tensor[3]},
						Mrp: quakeml.RealQuantity{Value: tensor[4]},
						Mtp: quakeml.RealQuantity{Value: tensor[5]},
					},
				},
			}},
		}
		if err := quakeml.Write(filepath.Join(p.Layout.Events, name+".xml"), event); err != nil {
			return DummyReport{}, err
		}
		eventNames = append(eventNames, name)
	}

	if err := p.UpdateFolderStructure(); err != nil {
		return DummyReport{}, err
	}

	// Random station coordinates scattered over the full domain.
	type dummyStation struct {
		network, station    string
		latitude, longitude float64
	}
	full := p.Config.Bounds()
	taken := map[string]bool{}
	const stationCount = 30
	stations := make([]dummyStation, 0, stationCount)
	for len(stations) < stationCount {
		name := randomUpper(rng, 4)
		if taken[name] {
			continue
		}
		taken[name] = true
		stations = append(stations, dummyStation{
			network:   randomUpper(rng, 2),
			station:   name,
			latitude:  uniform(rng, full.MinLatitude, full.MaxLatitude),
			longitude: uniform(rng, full.MinLongitude, full.MaxLongitude),
		})
	}

	ledger, err := p.OpenLedger()
	if err != nil {
		return DummyReport{}, err
	}
	defer ledger.Close()

	waveforms := 0
	for _, eventName := range eventNames {
		jobID := uuid.NewString()
		raw := p.Layout.RawData(eventName)
		if err := os.MkdirAll(raw, 0o755); err != nil {
			return DummyReport{}, err
		}
		for _, sta := range stations {
			for _, component := range []string{"E", "N", "Z"} {
				channel := "BH" + component
				path := filepath.Join(raw, fmt.Sprintf("%s.%s..%s.sac",
					sta.network, sta.station, channel))
				if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
					return DummyReport{}, err
				}
				lat, lon, elev := sta.latitude, sta.longitude, 0.0
				err := ledger.Insert(store.Record{
					JobID:     jobID,
					EventName: eventName,
					Network:   sta.network,
					Station:   sta.station,
					Channel:   channel,
					Kind:      store.KindWaveform,
					Status:    store.StatusDownloaded,
					Path:      path,
					Latitude:  &lat,
					Longitude: &lon,
					Elevation: &elev,
				})
				if err != nil {
					return DummyReport{}, err
				}
				waveforms++
			}
		}
	}

	return DummyReport{
		Events:    eventCount,
		Stations:  stationCount,
		Waveforms: waveforms,
	}, nil
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randomUpper(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('A' + rng.Intn(26))
	}
	return string(b)
}
