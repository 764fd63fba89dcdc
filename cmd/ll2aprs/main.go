/* Latitude / Longitude to APRS position encodings */
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	latlong "github.com/doismellburning/latlong/src"
)

func main() {
	var ambiguity = pflag.IntP("ambiguity", "a", 0, "Hide 1 to 4 low order location digits.")
	var grid = pflag.BoolP("grid", "g", false, "Interpret the single argument as a Maidenhead grid square.")
	var symtab = pflag.StringP("symtab", "t", "/", "Symbol table id or overlay for the report body.")
	var symbol = pflag.StringP("symbol", "s", "-", "Symbol code for the report body.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Convert a location to APRS position encodings.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Prints the human readable, compressed, and NMEA forms of the\n")
		fmt.Fprintf(os.Stderr, "given location, and a position report body ready for a TNC.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "\tll2aprs [options] latitude longitude\n")
		fmt.Fprintf(os.Stderr, "\tll2aprs -g gridsquare\n")
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Latitude and longitude are in decimal degrees.\n")
		fmt.Fprintf(os.Stderr, "Use negative for south or west.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "\tll2aprs 42.662139 -71.365553\n")
		fmt.Fprintf(os.Stderr, "\tll2aprs -a 2 42.662139 -71.365553\n")
		fmt.Fprintf(os.Stderr, "\tll2aprs -- -33.8688 151.2093\n")
		fmt.Fprintf(os.Stderr, "\tll2aprs -g FN42\n")
	}

	// A negative longitude would otherwise be taken for flags.
	// Negative latitude, as the first argument, still needs "--".
	pflag.SetInterspersed(false)

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	var lat, lon float64

	if *grid {
		if pflag.NArg() != 1 {
			pflag.Usage()
			os.Exit(1)
		}

		var err error

		lat, lon, err = latlong.FromGridSquare(pflag.Arg(0))
		if err != nil {
			fmt.Printf("%s\n", err)
			os.Exit(1)
		}
	} else {
		if pflag.NArg() != 2 {
			pflag.Usage()
			os.Exit(1)
		}

		var latErr, lonErr error

		lat, latErr = strconv.ParseFloat(pflag.Arg(0), 64)
		lon, lonErr = strconv.ParseFloat(pflag.Arg(1), 64)

		if latErr != nil || lonErr != nil {
			fmt.Printf("Latitude and longitude must be decimal degrees.\n")
			os.Exit(1)
		}
	}

	if len(*symtab) != 1 || len(*symbol) != 1 {
		fmt.Printf("Symbol table id and symbol code must be single characters.\n")
		os.Exit(1)
	}

	printPosition(lat, lon, *ambiguity, (*symtab)[0], (*symbol)[0])
}

func printPosition(lat float64, lon float64, ambiguity int, symtab byte, symbol byte) {
	fmt.Printf("latitude = %.6f, longitude = %.6f\n", lat, lon)

	fmt.Printf("APRS = %s %s\n",
		latlong.LatitudeToString(lat, ambiguity),
		latlong.LongitudeToString(lon, ambiguity))

	fmt.Printf("compressed = %s%s\n",
		latlong.LatitudeToCompressed(lat),
		latlong.LongitudeToCompressed(lon))

	var nlat, latHemi = latlong.LatitudeToNMEA(lat)
	var nlon, lonHemi = latlong.LongitudeToNMEA(lon)

	fmt.Printf("NMEA = %s,%s,%s,%s\n", nlat, latHemi, nlon, lonHemi)

	fmt.Printf("report = %s\n",
		latlong.EncodePosition(false, false, lat, lon, ambiguity, latlong.Unknown,
			symtab, symbol, 0, 0, 0, "", latlong.Unknown, 0, 0, 0, 0, ""))
}
