/* Monitor NMEA 0183 sentences from a GPS receiver */
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/pkg/term"
	"github.com/spf13/pflag"

	latlong "github.com/doismellburning/latlong/src"
)

func main() {
	var serialSpeed = pflag.IntP("serial-speed", "s", 4800, "Serial port speed, when the source is a serial device.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede each sentence with 'strftime' format time stamp.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Monitor NMEA sentences from a GPS receiver.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Reads NMEA 0183 sentences, verifies checksums, and prints the\n")
		fmt.Fprintf(os.Stderr, "position information accumulated from them.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "\tnmeadump [options] source\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "where source is a serial device such as /dev/ttyUSB0, a file of\n")
		fmt.Fprintf(os.Stderr, "captured sentences, or - for stdin.\n")
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	var source = pflag.Arg(0)

	var reader io.ReadCloser

	switch {
	case source == "-":
		reader = os.Stdin
	case strings.HasPrefix(source, "/dev/"):
		var fd = openSerial(source, *serialSpeed)
		if fd == nil {
			os.Exit(1)
		}

		reader = fd
	default:
		var file, err = os.Open(source)
		if err != nil {
			fmt.Printf("Could not open %s: %s\n", source, err)
			os.Exit(1)
		}

		reader = file
	}

	defer reader.Close()

	dump(reader, *timestampFormat)
}

/*-------------------------------------------------------------------
 *
 * Name:	openSerial
 *
 * Purpose:	Open a GPS receiver serial port in raw mode.
 *
 * Inputs:	devicename	- Usually /dev/tty...
 *				  Could be /dev/rfcomm0 for Bluetooth.
 *
 *		baud		- Speed.  1200, 4800, 9600 bps, etc.
 *				  If 0, leave it alone.
 *
 * Returns:	Handle for serial port, or nil for failure.
 *
 *---------------------------------------------------------------*/

func openSerial(devicename string, baud int) *term.Term {
	var fd, err = term.Open(devicename, term.RawMode)

	if err != nil {
		fmt.Printf("Could not open serial port %s: %s.\n", devicename, err)
		return nil
	}

	switch baud {
	case 0: /* Leave it alone. */
	case 1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200:
		fd.SetSpeed(baud)
	default:
		fmt.Printf("Unsupported speed %d.  Using 4800.\n", baud)
		fd.SetSpeed(4800)
	}

	return fd
}

func dump(r io.Reader, timestampFormat string) {
	var info latlong.FixInfo
	info.Clear()

	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if len(timestampFormat) > 0 {
			var ts, _ = strftime.Format(timestampFormat, time.Now())
			fmt.Printf("[%s] ", ts)
		}

		fmt.Printf("%s\n", line)

		if applySentence(&info, line) {
			printFix(&info)
		}
	}
}

/*-------------------------------------------------------------------
 *
 * Name:	applySentence
 *
 * Purpose:	Merge one sentence into the accumulated picture.
 *
 * Inputs:	info	- Results of previous sentences.
 *		line	- Complete sentence, e.g.
 *			  $GPRMC,003413.710,A,4237.1240,N,...
 *
 * Outputs:	info	- Updated with whatever the sentence carried.
 *
 * Returns:	true for a sentence type we understand, false
 *		otherwise.  An unparsable sentence of a known type
 *		is false as well.
 *
 * Description:	RMC carries position, speed, and course.  GGA also
 *		has altitude.  An RMC position is still considered
 *		3D when a previous GGA supplied the altitude.
 *
 *--------------------------------------------------------------------*/

func applySentence(info *latlong.FixInfo, line string) bool {
	if !strings.HasPrefix(line, "$GP") && !strings.HasPrefix(line, "$GN") {
		return false
	}

	if len(line) < 6 {
		return false
	}

	switch line[3:6] {
	case "RMC":
		var rmc, fix = latlong.ParseRMC(line)
		if fix == latlong.FixError {
			return false
		}

		info.Fix = fix
		info.Timestamp = rmc.When
		info.Lat = rmc.Lat
		info.Lon = rmc.Lon
		info.SpeedKnots = rmc.SpeedKnots
		info.CourseDeg = rmc.CourseDeg

		if fix >= latlong.Fix2D && info.AltMeters != latlong.Unknown {
			info.Fix = latlong.Fix3D /* Altitude still known from a recent GGA. */
		}

		return true
	case "GGA":
		var gga, fix = latlong.ParseGGA(line)
		if fix == latlong.FixError {
			return false
		}

		info.Fix = fix
		info.Lat = gga.Lat
		info.Lon = gga.Lon
		info.AltMeters = gga.AltMeters

		return true
	}

	return false
}

func printFix(info *latlong.FixInfo) {
	fmt.Printf("  fix = %s", fixName(info.Fix))

	if info.Fix >= latlong.Fix2D {
		fmt.Printf(", latitude = %.6f, longitude = %.6f", info.Lat, info.Lon)
	}

	fmt.Printf("\n")

	if info.SpeedKnots != latlong.Unknown {
		fmt.Printf("  speed = %.1f knots (%.1f MPH)", info.SpeedKnots, latlong.KnotsToMPH(info.SpeedKnots))

		if info.CourseDeg != latlong.Unknown {
			fmt.Printf(", course = %.1f", info.CourseDeg)
		}

		fmt.Printf("\n")
	}

	if info.AltMeters != latlong.Unknown {
		fmt.Printf("  altitude = %.1f m (%.1f ft)\n", info.AltMeters, latlong.MetersToFeet(info.AltMeters))
	}
}

func fixName(fix latlong.Fix) string {
	switch fix {
	case latlong.FixError:
		return "error"
	case latlong.FixNotSeen:
		return "not seen"
	case latlong.FixNone:
		return "none"
	case latlong.Fix2D:
		return "2D"
	case latlong.Fix3D:
		return "3D"
	}

	return "?"
}
