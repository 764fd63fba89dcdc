/* Convert NMEA 0183 sentences to a GPX track */
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	latlong "github.com/doismellburning/latlong/src"
)

/*
 * One GPX trackpoint, taken from an RMC sentence plus the altitude
 * from the most recent GGA.
 */

type trackpoint struct {
	lat    float64
	lon    float64
	alt    float64 /* Meters above mean sea level. */
	course float64
	speed  float64 /* Meters per second. */
	time   string  /* RFC 3339, empty if the sentence had no date. */
}

var points []trackpoint

/* Altitude carried forward from the most recent GGA sentence. */
var altitude = float64(latlong.Unknown)

const trackName = "GPS"

func main() {
	/*
	 * Read files listed or stdin if none.
	 */
	if len(os.Args) == 1 {
		read_nmea(os.Stdin)
	} else {
		for _, arg := range os.Args[1:] {
			if arg == "-" {
				read_nmea(os.Stdin)
			} else {
				var fp, err = os.Open(arg) //nolint:gosec
				if err == nil {
					read_nmea(fp)
					fp.Close() //nolint:gosec
				} else {
					fmt.Fprintf(os.Stderr, "Can't open %s for read: %s\n", arg, err)
					os.Exit(1)
				}
			}
		}
	}

	if len(points) == 0 {
		fmt.Fprintf(os.Stderr, "Nothing to process.\n")
		os.Exit(1)
	}

	/*
	 * GPX file header.
	 */
	fmt.Printf("<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n")
	fmt.Printf("<gpx version=\"1.1\" creator=\"latlong\">\n")

	write_track()

	/*
	 *  GPX file tail.
	 */
	fmt.Printf("</gpx>\n")
}

/*
 * Read from given file, already open, into the points array.
 * RMC supplies position, speed, course, and time.  GGA supplies
 * altitude for the points that follow it.
 */
func read_nmea(fp *os.File) {
	var scanner = bufio.NewScanner(fp)

	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())

		if !strings.HasPrefix(line, "$GP") && !strings.HasPrefix(line, "$GN") {
			continue
		}

		if len(line) < 6 {
			continue
		}

		switch line[3:6] {
		case "RMC":
			var rmc, fix = latlong.ParseRMC(line)
			if fix < latlong.Fix2D {
				continue
			}

			var point = trackpoint{
				lat:    rmc.Lat,
				lon:    rmc.Lon,
				alt:    altitude,
				course: rmc.CourseDeg,
				speed:  latlong.KnotsToMetersPerSec(rmc.SpeedKnots),
				time:   "",
			}

			if !rmc.When.IsZero() {
				point.time = rmc.When.Format(time.RFC3339)
			}

			points = append(points, point)
		case "GGA":
			var gga, fix = latlong.ParseGGA(line)
			if fix == latlong.Fix3D {
				altitude = gga.AltMeters
			}
		}
	}
}

/*
 * For a stationary receiver, generate just one GPX waypoint.
 * For a moving one, generate a GPX track ending with a waypoint
 * for the last known position.
 */

func write_track() {
	var moved bool

	for _, p := range points {
		if p.lat != points[0].lat || p.lon != points[0].lon {
			moved = true
		}
	}

	if moved {
		fmt.Printf("  <trk>\n")
		fmt.Printf("    <name>%s</name>\n", trackName)
		fmt.Printf("    <trkseg>\n")

		for _, p := range points {
			fmt.Printf("      <trkpt lat=\"%.6f\" lon=\"%.6f\">\n", p.lat, p.lon)

			if p.speed != latlong.Unknown {
				fmt.Printf("        <speed>%.1f</speed>\n", p.speed)
			}

			if p.course != latlong.Unknown {
				fmt.Printf("        <course>%.1f</course>\n", p.course)
			}

			if p.alt != latlong.Unknown {
				fmt.Printf("        <ele>%.1f</ele>\n", p.alt)
			}

			if len(p.time) > 0 {
				fmt.Printf("        <time>%s</time>\n", p.time)
			}

			fmt.Printf("      </trkpt>\n")
		}

		fmt.Printf("    </trkseg>\n")
		fmt.Printf("  </trk>\n")
	}

	var last = points[len(points)-1]

	fmt.Printf("  <wpt lat=\"%.6f\" lon=\"%.6f\">\n", last.lat, last.lon)

	if last.alt != latlong.Unknown {
		fmt.Printf("    <ele>%.1f</ele>\n", last.alt)
	}

	fmt.Printf("    <name>%s</name>\n", trackName)
	fmt.Printf("  </wpt>\n")
}
