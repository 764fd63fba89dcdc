/* Great circle distance, bearing, and destination calculations */
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	latlong "github.com/doismellburning/latlong/src"
)

func main() {
	var bearing = pflag.Float64P("bearing", "b", 0, "Initial bearing in degrees, for destination mode.")
	var distance = pflag.Float64P("distance", "d", 0, "Distance in km, for destination mode.")
	var grid = pflag.BoolP("grid", "g", false, "Locations are Maidenhead grid squares instead of degrees.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Great circle calculations.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "With two locations, print the distance between them and the\n")
		fmt.Fprintf(os.Stderr, "initial bearing from the first to the second.  With one location\n")
		fmt.Fprintf(os.Stderr, "and -b and -d, print the destination reached from it.  A location\n")
		fmt.Fprintf(os.Stderr, "is a latitude longitude pair in decimal degrees, or a single\n")
		fmt.Fprintf(os.Stderr, "Maidenhead grid square with -g.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "\tlldist latitude1 longitude1 latitude2 longitude2\n")
		fmt.Fprintf(os.Stderr, "\tlldist -b bearing -d distance latitude longitude\n")
		fmt.Fprintf(os.Stderr, "\tlldist -g gridsquare1 gridsquare2\n")
		fmt.Fprintf(os.Stderr, "\tlldist -g -b bearing -d distance gridsquare\n")
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "\tlldist 42.3601 -71.0589 40.7128 -74.0060\n")
		fmt.Fprintf(os.Stderr, "\tlldist -b 235 -d 300 42.3601 -71.0589\n")
		fmt.Fprintf(os.Stderr, "\tlldist -g FN42 BL11\n")
	}

	// A negative longitude would otherwise be taken for flags.
	// Negative latitude, as the first argument, still needs "--".
	pflag.SetInterspersed(false)

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	// With -g, each location is a single argument rather than a pair.
	switch {
	case !*grid && pflag.NArg() == 4:
		var lat1, lon1 = parseLocation(pflag.Arg(0), pflag.Arg(1))
		var lat2, lon2 = parseLocation(pflag.Arg(2), pflag.Arg(3))

		printDistance(lat1, lon1, lat2, lon2)
	case !*grid && pflag.NArg() == 2:
		var lat, lon = parseLocation(pflag.Arg(0), pflag.Arg(1))

		printDestination(lat, lon, *bearing, *distance)
	case *grid && pflag.NArg() == 2:
		var lat1, lon1 = parseGrid(pflag.Arg(0))
		var lat2, lon2 = parseGrid(pflag.Arg(1))

		printDistance(lat1, lon1, lat2, lon2)
	case *grid && pflag.NArg() == 1:
		var lat, lon = parseGrid(pflag.Arg(0))

		printDestination(lat, lon, *bearing, *distance)
	default:
		pflag.Usage()
		os.Exit(1)
	}
}

func parseLocation(latStr string, lonStr string) (float64, float64) {
	var lat, latErr = strconv.ParseFloat(latStr, 64)
	var lon, lonErr = strconv.ParseFloat(lonStr, 64)

	if latErr != nil || lonErr != nil {
		fmt.Printf("Locations must be decimal degrees.\n")
		os.Exit(1)
	}

	return lat, lon
}

func parseGrid(gridStr string) (float64, float64) {
	var lat, lon, err = latlong.FromGridSquare(gridStr)
	if err != nil {
		fmt.Printf("%s\n", err)
		os.Exit(1)
	}

	return lat, lon
}

func printDistance(lat1 float64, lon1 float64, lat2 float64, lon2 float64) {
	var km = latlong.DistanceKM(lat1, lon1, lat2, lon2)

	fmt.Printf("distance = %.1f km (%.1f miles)\n", km, latlong.KMToMiles(km))
	fmt.Printf("initial bearing = %.1f degrees\n", latlong.BearingDeg(lat1, lon1, lat2, lon2))
}

func printDestination(lat float64, lon float64, bearing float64, km float64) {
	fmt.Printf("destination = %.6f, %.6f\n",
		latlong.DestLat(lat, lon, km, bearing),
		latlong.DestLon(lat, lon, km, bearing))
}
