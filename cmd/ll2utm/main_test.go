package main

import (
	"os"
	"testing"

	latlong "github.com/doismellburning/latlong/src"
)

func Example_main() { //nolint:testableexamples
	os.Args = []string{"ll2utm"}

	main()
	// Just the usage text.
}

// Reference values checked against the direwolf Debian package.
// The last digit of easting / northing can differ between
// implementations so only stable prefixes are compared.
func Test_main_Boston(t *testing.T) {
	var run = func() {
		os.Args = []string{"ll2utm", "42.662139", "-71.365553"}

		main()
	}

	latlong.AssertOutputContains(t, run, "UTM zone = 19, hemisphere = N, easting = 3061")
	latlong.AssertOutputContains(t, run, "northing = 47260")
	latlong.AssertOutputContains(t, run, "MGRS =")
	latlong.AssertOutputContains(t, run, "19TCH")
}

func Test_main_Sydney(t *testing.T) {
	var run = func() {
		os.Args = []string{"ll2utm", "-33.8688", "151.2093"}

		main()
	}

	latlong.AssertOutputContains(t, run, "UTM zone = 56, hemisphere = S")
}
