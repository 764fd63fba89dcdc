/* Generate APRS beacon info strings from a YAML beacon file */
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	latlong "github.com/doismellburning/latlong/src"
)

func main() {
	var configPath = pflag.StringP("config", "c", "beacons.yaml", "Beacon configuration file.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Generate APRS beacon info strings.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Reads beacon definitions from a YAML file and prints the APRS\n")
		fmt.Fprintf(os.Stderr, "information part for each one, ready to hand to a TNC.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "\taprsbeacon [options]\n")
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	var config, err = Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	for _, beacon := range config.Beacons {
		fmt.Printf("%s\n", beaconInfo(beacon, time.Now()))
	}
}

/*------------------------------------------------------------------
 *
 * Name:	beaconInfo
 *
 * Purpose:	Construct the APRS information part for one beacon.
 *
 * Inputs:	b	- Beacon definition, already validated.
 *		now	- Current time, for timestamped objects.
 *
 * Description:	Zero valued numeric fields from the file mean "not
 *		specified" and are translated to the Unknown sentinel
 *		where the encoders expect it.
 *
 *----------------------------------------------------------------*/

func beaconInfo(b Beacon, now time.Time) string {
	var course = b.Course
	if course == 0 {
		course = latlong.Unknown
	}

	var altFt = b.Altitude
	if altFt == 0 {
		altFt = latlong.Unknown
	}

	var tone = b.Tone
	if tone == 0 {
		tone = latlong.Unknown
	}

	var offset = b.Offset
	if offset == 0 {
		offset = latlong.Unknown
	}

	if len(b.Name) > 0 {
		var when time.Time
		if b.Timestamped {
			when = now
		}

		return latlong.EncodeObject(b.Name, b.Compressed, when, b.Lat, b.Lon, b.Ambiguity,
			b.Symtab[0], b.Symbol[0],
			b.Power, b.Height, b.Gain, b.Direction,
			course, b.Speed,
			b.Freq, tone, offset, b.Comment)
	}

	return latlong.EncodePosition(b.Messaging, b.Compressed, b.Lat, b.Lon, b.Ambiguity, altFt,
		b.Symtab[0], b.Symbol[0],
		b.Power, b.Height, b.Gain, b.Direction,
		course, b.Speed,
		b.Freq, tone, offset, b.Comment)
}
