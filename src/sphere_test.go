package latlong

import (
	"fmt"
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestDistanceBearingKnownValues checks a couple of examples from
// other places to see if we get similar results.
func TestDistanceBearingKnownValues(t *testing.T) {
	t.Run("same latitude", func(t *testing.T) {
		// http://www.movable-type.co.uk/scripts/latlong.html
		d := DistanceKM(35., 45., 35., 135.)
		b := BearingDeg(35., 45., 35., 135.)

		assert.Greater(t, d, 7862.0)
		assert.Less(t, d, 7882.0)
		assert.Greater(t, b, 59.7)
		assert.Less(t, b, 60.3)
	})

	t.Run("Sydney to Kinsale", func(t *testing.T) {
		// https://woodshole.er.usgs.gov/staffpages/cpolloni/manitou/ccal.htm
		d := DistanceKM(-33.8688, 151.2093, 51.7059, -8.5222)
		b := BearingDeg(-33.8688, 151.2093, 51.7059, -8.5222)

		assert.Greater(t, d, 17435.0)
		assert.Less(t, d, 17455.0)
		assert.InDelta(t, 327.0, b, 1.0)
	})
}

// TestHaversineFormulaAccuracy tests the accuracy of the haversine implementation
func TestHaversineFormulaAccuracy(t *testing.T) {
	// Test against known distances
	tests := []struct {
		name     string
		lat1     float64
		lon1     float64
		lat2     float64
		lon2     float64
		expected float64 // in km
		delta    float64 // tolerance
	}{
		{
			name:     "London to Paris",
			lat1:     51.5074,
			lon1:     -0.1278,
			lat2:     48.8566,
			lon2:     2.3522,
			expected: 344.0,
			delta:    5.0,
		},
		{
			name:     "New York to Los Angeles",
			lat1:     40.7128,
			lon1:     -74.0060,
			lat2:     34.0522,
			lon2:     -118.2437,
			expected: 3936.0,
			delta:    10.0,
		},
		{
			name:     "Singapore to Tokyo",
			lat1:     1.3521,
			lon1:     103.8198,
			lat2:     35.6762,
			lon2:     139.6503,
			expected: 5312.0,
			delta:    10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := DistanceKM(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, distance, tt.delta,
				"distance should match known value within tolerance")
		})
	}
}

// TestBearingCalculation tests bearing calculation accuracy
func TestBearingCalculation(t *testing.T) {
	tests := []struct {
		name     string
		lat1     float64
		lon1     float64
		lat2     float64
		lon2     float64
		expected float64 // degrees
		delta    float64
	}{
		{
			name:     "due north",
			lat1:     0.0,
			lon1:     0.0,
			lat2:     1.0,
			lon2:     0.0,
			expected: 0.0,
			delta:    0.1,
		},
		{
			name:     "due east",
			lat1:     0.0,
			lon1:     0.0,
			lat2:     0.0,
			lon2:     1.0,
			expected: 90.0,
			delta:    0.1,
		},
		{
			name:     "due south",
			lat1:     1.0,
			lon1:     0.0,
			lat2:     0.0,
			lon2:     0.0,
			expected: 180.0,
			delta:    0.1,
		},
		{
			name:     "due west",
			lat1:     0.0,
			lon1:     1.0,
			lat2:     0.0,
			lon2:     0.0,
			expected: 270.0,
			delta:    0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bearing := BearingDeg(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, bearing, tt.delta,
				"bearing should match expected cardinal direction")
		})
	}
}

// TestCoordinateDistanceSymmetry tests that distance is symmetric
func TestCoordinateDistanceSymmetry(t *testing.T) {
	tests := []struct {
		name string
		lat1 float64
		lon1 float64
		lat2 float64
		lon2 float64
	}{
		{"Boston to Sydney", 42.3601, -71.0589, -33.8688, 151.2093},
		{"Equator points", 0.0, 0.0, 0.0, 90.0},
		{"Same latitude", 45.0, 45.0, 45.0, 135.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d1 := DistanceKM(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			d2 := DistanceKM(tt.lat2, tt.lon2, tt.lat1, tt.lon1)

			assert.InDelta(t, d1, d2, 0.001, "distance should be symmetric")
		})
	}
}

// TestBearingAntipodal tests bearing to antipodal points
func TestBearingAntipodal(t *testing.T) {
	// Bearing from a point to its antipode (opposite side of Earth)
	// should be consistent
	lat := 45.0
	lon := 45.0

	antiLat := -lat

	antiLon := lon + 180.0
	if antiLon > 180.0 {
		antiLon -= 360.0
	}

	bearing := BearingDeg(lat, lon, antiLat, antiLon)

	// Bearing to antipode could be any direction (ambiguous), but should be valid
	assert.GreaterOrEqual(t, bearing, 0.0, "bearing should be >= 0")
	assert.Less(t, bearing, 360.0, "bearing should be < 360")
}

// TestDestinationZeroDistance tests that zero distance returns same point
func TestDestinationZeroDistance(t *testing.T) {
	lat := 42.3601
	lon := -71.0589
	dist := 0.0
	bearing := 90.0 // arbitrary

	newLat := DestLat(lat, lon, dist, bearing)
	newLon := DestLon(lat, lon, dist, bearing)

	assert.InDelta(t, lat, newLat, 0.0001, "zero distance should return same latitude")
	assert.InDelta(t, lon, newLon, 0.0001, "zero distance should return same longitude")
}

// TestDestinationRoundTrip starts at some location, goes some distance
// at some bearing, then checks that distance and bearing back to the
// new location match the intention.
func TestDestinationRoundTrip(t *testing.T) {
	d1 := 10.0

	for lat1 := -60.0; lat1 <= 60; lat1 += 30 {
		for lon1 := -180.0; lon1 <= 180; lon1 += 30 {
			for b1 := 0.0; b1 < 360; b1 += 15 {
				name := fmt.Sprintf("lat%v_lon%v_b%v", lat1, lon1, b1)
				t.Run(name, func(t *testing.T) {
					lat2 := DestLat(lat1, lon1, d1, b1)
					lon2 := DestLon(lat1, lon1, d1, b1)

					d2 := DistanceKM(lat1, lon1, lat2, lon2)
					b2 := BearingDeg(lat1, lon1, lat2, lon2)
					if b2 > 359.9 && b2 < 360.1 {
						b2 = 0
					}

					// must be within 0.1% of distance and 0.1 degree.
					assert.InDelta(t, d1, d2, 0.001*d1, "distance should match intention")
					assert.InDelta(t, b1, b2, 0.1, "bearing should match intention")
				})
			}
		}
	}
}

// TestSmallAngles tests coordinate functions with very small angles
func TestSmallAngles(t *testing.T) {
	// Test with very small differences in coordinates
	lat1, lon1 := 42.0, -71.0
	lat2, lon2 := 42.0001, -71.0001

	dist := DistanceKM(lat1, lon1, lat2, lon2)
	bearing := BearingDeg(lat1, lon1, lat2, lon2)

	assert.Greater(t, dist, 0.0, "distance should be positive")
	assert.Less(t, dist, 1.0, "distance should be very small")
	assert.GreaterOrEqual(t, bearing, 0.0, "bearing should be valid")
	assert.Less(t, bearing, 360.0, "bearing should be valid")

	// Test round trip
	newLat := DestLat(lat1, lon1, dist, bearing)
	newLon := DestLon(lat1, lon1, dist, bearing)

	assert.InDelta(t, lat2, newLat, 0.0001, "round trip latitude should match")
	assert.InDelta(t, lon2, newLon, 0.0001, "round trip longitude should match")
}

// TestDistanceAgainstS2 cross-checks the haversine implementation
// against the golang/geo spherical geometry library.
func TestDistanceAgainstS2(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var lat1 = rapid.Float64Range(-90, 90).Draw(t, "lat1")
		var lon1 = rapid.Float64Range(-180, 180).Draw(t, "lon1")
		var lat2 = rapid.Float64Range(-90, 90).Draw(t, "lat2")
		var lon2 = rapid.Float64Range(-180, 180).Draw(t, "lon2")

		var angle = s2.LatLngFromDegrees(lat1, lon1).Distance(s2.LatLngFromDegrees(lat2, lon2))
		var want = angle.Radians() * earthRadiusKM

		assert.InDelta(t, want, DistanceKM(lat1, lon1, lat2, lon2), want/100000.+0.000001,
			"haversine should agree with s2 spherical distance")
	})
}

// TestSphereNaN tests that NaN inputs don't cause panics
func TestSphereNaN(t *testing.T) {
	nan := math.NaN()

	// These shouldn't panic
	_ = DistanceKM(nan, 0, 0, 0)
	_ = BearingDeg(nan, 0, 0, 0)
	_ = DestLat(nan, 0, 10, 45)
	_ = DestLon(nan, 0, 10, 45)
}

// BenchmarkDistanceBearing benchmarks distance and bearing calculations
func BenchmarkDistanceBearing(b *testing.B) {
	lat1, lon1 := 42.3601, -71.0589
	lat2, lon2 := -33.8688, 151.2093

	b.Run("distance", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = DistanceKM(lat1, lon1, lat2, lon2)
		}
	})

	b.Run("bearing", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = BearingDeg(lat1, lon1, lat2, lon2)
		}
	})

	b.Run("destination", func(b *testing.B) {
		dist := 1000.0

		bearing := 45.0
		for i := 0; i < b.N; i++ {
			_ = DestLat(lat1, lon1, dist, bearing)
			_ = DestLon(lat1, lon1, dist, bearing)
		}
	})
}
