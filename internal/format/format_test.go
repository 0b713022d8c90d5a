package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLatitude(t *testing.T) {
	assert.Equal(t, "45.20 N", Latitude(45.2))
	assert.Equal(t, "12.70 S", Latitude(-12.7))
	assert.Equal(t, "0.00 N", Latitude(0))
}

func TestLongitude(t *testing.T) {
	assert.Equal(t, "11.30 E", Longitude(11.3))
	assert.Equal(t, "70.50 W", Longitude(-70.5))
}

func TestDepth(t *testing.T) {
	assert.Equal(t, "12.3 km", Depth(12.3))
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, "5.9 Mw", Magnitude(5.9, "Mw"))
	assert.Equal(t, "6.1", Magnitude(6.1, ""))
}

func TestOriginTime(t *testing.T) {
	ts := time.Date(2012, 4, 12, 7, 15, 48, 0, time.UTC)
	assert.Equal(t, "2012-04-12 07:15:48 UTC", OriginTime(ts))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "0 events", Count(0, "event"))
	assert.Equal(t, "1 event", Count(1, "event"))
	assert.Equal(t, "2 models", Count(2, "model"))
}
