/* UTM to Latitude / Longitude conversion */
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tzneal/coordconv"

	latlong "github.com/doismellburning/latlong/src"
)

func main() {
	switch len(os.Args) {
	case 4:
		// Three command line arguments for UTM.
		var zone, hemisphere, zoneErr = parseZone(os.Args[1])
		if zoneErr != nil {
			fmt.Printf("%s\n", zoneErr)
			usage()
		}

		var easting, _ = strconv.ParseFloat(os.Args[2], 64)
		var northing, _ = strconv.ParseFloat(os.Args[3], 64)

		var utmCoord = coordconv.UTMCoord{
			Zone:       zone,
			Hemisphere: hemisphere,
			Easting:    easting,
			Northing:   northing,
		}

		var lat, lon, utmErr = latlong.FromUTM(utmCoord)
		if utmErr == nil {
			fmt.Printf("from UTM, latitude = %.6f, longitude = %.6f\n", lat, lon)
		} else {
			fmt.Printf("Conversion from UTM failed:\n%s\n\n", utmErr)
		}
	case 2:
		// One command line argument, MGRS.
		var lat, lon, mgrsErr = latlong.FromMGRS(os.Args[1])
		if mgrsErr == nil {
			fmt.Printf("from MGRS, latitude = %.6f, longitude = %.6f\n", lat, lon)
		} else {
			fmt.Printf("Conversion from MGRS failed:\n%s\n\n", mgrsErr)
		}
	default:
		usage()
	}
}

/*------------------------------------------------------------------
 *
 * Name:	parseZone
 *
 * Purpose:	Extract the zone number and hemisphere from a UTM
 *		zone argument such as "19" or "19T".
 *
 * Description:	The latitudinal band letter is optional.  Without
 *		it the northern hemisphere is assumed.  Bands C thru
 *		M are south of the equator, N thru X north of it.
 *
 *----------------------------------------------------------------*/

func parseZone(arg string) (int, coordconv.Hemisphere, error) {
	var hemisphere = coordconv.HemisphereNorth

	var zoneStr = arg
	if len(zoneStr) > 0 {
		var zlet = rune(zoneStr[len(zoneStr)-1])
		if zlet >= 'A' && zlet <= 'Z' {
			zoneStr = zoneStr[:len(zoneStr)-1]

			if !strings.ContainsRune("CDEFGHJKLMNPQRSTUVWX", zlet) {
				return 0, coordconv.HemisphereInvalid,
					fmt.Errorf("Latitudinal band in %q must be one of CDEFGHJKLMNPQRSTUVWX.", arg)
			}

			if zlet < 'N' {
				hemisphere = coordconv.HemisphereSouth
			}
		}
	}

	var zone, err = strconv.Atoi(zoneStr)
	if err != nil || zone < 1 || zone > 60 {
		return 0, coordconv.HemisphereInvalid,
			fmt.Errorf("UTM zone in %q must be 1 thru 60.", arg)
	}

	return zone, hemisphere, nil
}

func usage() {
	fmt.Println("UTM to Latitude / Longitude conversion")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("\tutm2ll  zone  easting  northing")
	fmt.Println("")
	fmt.Println("where,")
	fmt.Println("\tzone is UTM zone 1 thru 60 with optional latitudinal band.")
	fmt.Println("\teasting is x coordinate in meters")
	fmt.Println("\tnorthing is y coordinate in meters")
	fmt.Println("")
	fmt.Println("or:")
	fmt.Println("\tutm2ll  x")
	fmt.Println("")
	fmt.Println("where,")
	fmt.Println("\tx is an MGRS location.")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("\tutm2ll 19T 306130 4726010")
	fmt.Println("\tutm2ll 19TCH06132600")

	os.Exit(1)
}
