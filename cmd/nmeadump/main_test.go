package main

import (
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	latlong "github.com/doismellburning/latlong/src"
)

func Test_applySentence_RMC(t *testing.T) {
	var info latlong.FixInfo
	info.Clear()

	var applied = applySentence(&info, "$GPRMC,003413.710,A,4237.1240,N,07120.8333,W,5.07,291.42,160614,,,A*7F")

	assert.True(t, applied)
	assert.Equal(t, latlong.Fix2D, info.Fix)
	assert.InDelta(t, 42.6187333, info.Lat, 0.00001)
	assert.InDelta(t, -71.3472217, info.Lon, 0.00001)
	assert.InDelta(t, 5.07, info.SpeedKnots, 0.001)
	assert.InDelta(t, 291.42, info.CourseDeg, 0.001)
	assert.Equal(t, time.Date(2014, 6, 16, 0, 34, 13, 0, time.UTC), info.Timestamp)
}

func Test_applySentence_GGA(t *testing.T) {
	var info latlong.FixInfo
	info.Clear()

	var applied = applySentence(&info, "$GNGGA,003518.710,4237.1250,N,07120.8327,W,1,03,5.9,33.5,M,-33.5,M,,0000*45")

	assert.True(t, applied)
	assert.Equal(t, latlong.Fix3D, info.Fix)
	assert.InDelta(t, 42.61875, info.Lat, 0.00001)
	assert.InDelta(t, 33.5, info.AltMeters, 0.001)
}

func Test_applySentence_AltitudeSurvivesRMC(t *testing.T) {
	var info latlong.FixInfo
	info.Clear()

	assert.True(t, applySentence(&info, "$GPGGA,003518.710,4237.1250,N,07120.8327,W,1,03,5.9,33.5,M,-33.5,M,,0000*5B"))
	assert.True(t, applySentence(&info, "$GPRMC,003414.710,A,4237.1250,N,07120.8327,W,4.10,290.00,160614,,,A*7C"))

	// RMC alone can only claim 2D but the altitude from the
	// preceding GGA still stands.
	assert.Equal(t, latlong.Fix3D, info.Fix)
	assert.InDelta(t, 33.5, info.AltMeters, 0.001)
	assert.InDelta(t, 4.10, info.SpeedKnots, 0.001)
}

func Test_applySentence_SignalLost(t *testing.T) {
	var info latlong.FixInfo
	info.Clear()

	assert.True(t, applySentence(&info, "$GPRMC,003413.710,A,4237.1240,N,07120.8333,W,5.07,291.42,160614,,,A*7F"))
	assert.True(t, applySentence(&info, "$GPRMC,212404.000,V,4237.1505,N,07120.8602,W,,,150614,,*0B"))

	assert.Equal(t, latlong.FixNone, info.Fix)
	assert.Equal(t, float64(latlong.Unknown), info.Lat)
}

func Test_applySentence_Ignored(t *testing.T) {
	var tests = []struct {
		name string
		line string
	}{
		{"bad checksum", "$GPRMC,003413.710,A,4237.1240,N,07120.8333,W,5.07,291.42,160614,,,A*FF"},
		{"unknown sentence type", "$GPGSV,3,1,11,18,87,050,48,22,56,250,49,21,55,122,49,03,40,284,47*78"},
		{"not a GPS talker", "$HCHDG,98.3,0.0,E,12.6,W*57"},
		{"too short", "$GP"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var info latlong.FixInfo
			info.Clear()

			assert.False(t, applySentence(&info, tt.line), tt.line)
			assert.Equal(t, latlong.FixNotSeen, info.Fix)
		})
	}
}

func Test_main(t *testing.T) {
	var oldStdin = os.Stdin

	var oldStdout = os.Stdout

	defer func() {
		os.Stdin = oldStdin
		os.Stdout = oldStdout
	}()

	var input = strings.TrimSpace(`
$GPRMC,003413.710,A,4237.1240,N,07120.8333,W,5.07,291.42,160614,,,A*7F
$GPGGA,003518.710,4237.1250,N,07120.8327,W,1,03,5.9,33.5,M,-33.5,M,,0000*5B
$GPRMC,003414.710,A,4237.1250,N,07120.8327,W,4.10,290.00,160614,,,A*7C
`)

	var r, w, _ = os.Pipe()

	os.Stdin = r

	go func() {
		defer w.Close()

		w.WriteString(input) //nolint:gosec
	}()

	var rOut, wOut, _ = os.Pipe()

	os.Stdout = wOut

	var output strings.Builder

	var done = make(chan bool)

	go func() {
		io.Copy(&output, rOut) //nolint:gosec

		done <- true
	}()

	os.Args = []string{"nmeadump", "-"}

	main()

	wOut.Close() //nolint:gosec
	<-done

	var expected = strings.TrimSpace(`
$GPRMC,003413.710,A,4237.1240,N,07120.8333,W,5.07,291.42,160614,,,A*7F
  fix = 2D, latitude = 42.618733, longitude = -71.347222
  speed = 5.1 knots (5.8 MPH), course = 291.4
$GPGGA,003518.710,4237.1250,N,07120.8327,W,1,03,5.9,33.5,M,-33.5,M,,0000*5B
  fix = 3D, latitude = 42.618750, longitude = -71.347212
  speed = 5.1 knots (5.8 MPH), course = 291.4
  altitude = 33.5 m (109.9 ft)
$GPRMC,003414.710,A,4237.1250,N,07120.8327,W,4.10,290.00,160614,,,A*7C
  fix = 3D, latitude = 42.618750, longitude = -71.347212
  speed = 4.1 knots (4.7 MPH), course = 290.0
  altitude = 33.5 m (109.9 ft)
`)

	assert.Equal(t, expected, strings.TrimSpace(output.String()))
}
