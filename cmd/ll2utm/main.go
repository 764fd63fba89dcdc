/* Latitude / Longitude to UTM conversion */
package main

import (
	"fmt"
	"os"
	"strconv"

	latlong "github.com/doismellburning/latlong/src"
)

func main() {
	if len(os.Args) != 3 {
		usage()
		return
	}

	var lat, _ = strconv.ParseFloat(os.Args[1], 64)
	var lon, _ = strconv.ParseFloat(os.Args[2], 64)

	var utmCoord, utmErr = latlong.ToUTM(lat, lon)
	if utmErr == nil {
		fmt.Printf("UTM zone = %d, hemisphere = %c, easting = %.0f, northing = %.0f\n",
			utmCoord.Zone, latlong.HemisphereRune(utmCoord.Hemisphere), utmCoord.Easting, utmCoord.Northing)
	} else {
		fmt.Printf("Conversion to UTM failed:\n%s\n\n", utmErr)

		// MGRS could still succeed, keep going.
	}

	// Practice run to see if MGRS will succeed at all.

	var _, mgrsErr = latlong.ToMGRS(lat, lon, 5)
	if mgrsErr == nil {
		// OK, hope changing precision doesn't make a difference.
		fmt.Printf("MGRS =")

		for precision := 1; precision <= 5; precision++ {
			var mgrs, _ = latlong.ToMGRS(lat, lon, precision)
			fmt.Printf("  %s", mgrs)
		}

		fmt.Printf("\n")
	} else {
		fmt.Printf("Conversion to MGRS failed:\n%s\n", mgrsErr)
	}
}

func usage() {
	fmt.Printf("Latitude / Longitude to UTM conversion\n")
	fmt.Printf("\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("\tll2utm  latitude  longitude\n")
	fmt.Printf("\n")
	fmt.Printf("where,\n")
	fmt.Printf("\tLatitude and longitude are in decimal degrees.\n")
	fmt.Printf("\t   Use negative for south or west.\n")
	fmt.Printf("\n")
	fmt.Printf("Example:\n")
	fmt.Printf("\tll2utm 42.662139 -71.365553\n")
}
