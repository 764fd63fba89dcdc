package latlong

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/coordconv"
)

// Reference values checked against the direwolf Debian package.

// TestToUTM tests conversion of a location to UTM.
func TestToUTM(t *testing.T) {
	coord, err := ToUTM(42.662139, -71.365553)

	require.NoError(t, err)
	assert.Equal(t, 19, coord.Zone)
	assert.Equal(t, coordconv.HemisphereNorth, coord.Hemisphere)
	assert.InDelta(t, 306130.0, coord.Easting, 1.0)
	assert.InDelta(t, 4726010.0, coord.Northing, 1.0)
}

// TestFromUTM tests conversion of a UTM coordinate back to degrees.
func TestFromUTM(t *testing.T) {
	coord := coordconv.UTMCoord{
		Zone:       19,
		Hemisphere: coordconv.HemisphereNorth,
		Easting:    306130,
		Northing:   4726010,
	}

	lat, lon, err := FromUTM(coord)

	require.NoError(t, err)
	assert.InDelta(t, 42.662139, lat, 0.00001)
	assert.InDelta(t, -71.365553, lon, 0.00001)
}

// TestUTMRoundTrip tests that converting to UTM and back reproduces
// the location.
func TestUTMRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"Boston", 42.3601, -71.0589},
		{"Sydney", -33.8688, 151.2093},
		{"Reykjavik", 64.1466, -21.9426},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, err := ToUTM(tt.lat, tt.lon)
			require.NoError(t, err)

			lat, lon, err := FromUTM(coord)
			require.NoError(t, err)

			assert.InDelta(t, tt.lat, lat, 0.000001)
			assert.InDelta(t, tt.lon, lon, 0.000001)
		})
	}
}

// TestUTMSouthernHemisphere tests hemisphere assignment.
func TestUTMSouthernHemisphere(t *testing.T) {
	coord, err := ToUTM(-33.8688, 151.2093)

	require.NoError(t, err)
	assert.Equal(t, 56, coord.Zone)
	assert.Equal(t, coordconv.HemisphereSouth, coord.Hemisphere)
}

// TestToMGRS tests conversion of a location to MGRS designations of
// increasing precision.
func TestToMGRS(t *testing.T) {
	for precision := 1; precision <= 5; precision++ {
		mgrs, err := ToMGRS(42.662139, -71.365553, precision)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(mgrs, "19TCH"),
			"expected 19TCH prefix, got %s", mgrs)
		assert.Len(t, strings.ReplaceAll(mgrs, " ", ""), 5+2*precision,
			"one group of digits per axis")
	}
}

// TestFromMGRS tests conversion of an MGRS designation to degrees.
func TestFromMGRS(t *testing.T) {
	lat, lon, err := FromMGRS("19TCH06132600")

	require.NoError(t, err)
	assert.InDelta(t, 42.662049, lat, 0.0001)
	assert.InDelta(t, -71.365550, lon, 0.0001)
}

// TestMGRSRoundTrip tests that converting to MGRS and back stays
// within the cell size of the precision used.
func TestMGRSRoundTrip(t *testing.T) {
	mgrs, err := ToMGRS(42.662139, -71.365553, 5)
	require.NoError(t, err)

	lat, lon, err := FromMGRS(mgrs)
	require.NoError(t, err)

	// Five digits per axis resolve one meter.
	assert.InDelta(t, 42.662139, lat, 0.0001)
	assert.InDelta(t, -71.365553, lon, 0.0001)
}

// TestFromMGRSErrors tests malformed MGRS designations.
func TestFromMGRSErrors(t *testing.T) {
	tests := []struct {
		name string
		mgrs string
	}{
		{"empty string", ""},
		{"not a designation", "HELLO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := FromMGRS(tt.mgrs)
			assert.Error(t, err)
		})
	}
}

// TestHemisphereRunes tests the rune conversions used by the command
// line tools.
func TestHemisphereRunes(t *testing.T) {
	assert.Equal(t, coordconv.HemisphereNorth, HemisphereFromRune('N'))
	assert.Equal(t, coordconv.HemisphereSouth, HemisphereFromRune('S'))
	assert.Equal(t, coordconv.HemisphereInvalid, HemisphereFromRune('X'))

	assert.Equal(t, 'N', HemisphereRune(coordconv.HemisphereNorth))
	assert.Equal(t, 'S', HemisphereRune(coordconv.HemisphereSouth))
	assert.Equal(t, '!', HemisphereRune(coordconv.HemisphereInvalid))
}
