// Package latlong converts geographic coordinates between decimal
// degrees and the fixed width text encodings used by amateur radio
// position reporting: the human readable ddmm.mm form with optional
// position ambiguity, the four character base 91 compressed form, and
// the NMEA 0183 ddmm.mmmm form, plus small helpers that usually travel
// with them (grid squares, great circle math, whole sentence parsing).
//
// Each encoding has exact byte width, rounding, and edge case rules
// that must be reproduced precisely for compatibility with other
// stations.  Out of range input is clamped with an advisory
// diagnostic; malformed input to a decoder returns the Unknown
// sentinel.  See Reporter for where the diagnostics go.
package latlong

import (
	"fmt"
)

// Unknown is the "no value" sentinel for latitude, longitude, speed,
// course, and altitude.  It is disjoint from every valid coordinate
// so it can flow through the same float64 (or int) fields.
const Unknown = -999999

// clampLatitude pulls an out of range latitude back to the nearest
// limit.  The call proceeds with the clamped value; the complaint is
// advisory.
func clampLatitude(dlat float64) float64 {

	if dlat < -90. {
		report("Latitude is less than -90.  Changing to -90.")
		dlat = -90.
	}
	if dlat > 90. {
		report("Latitude is greater than 90.  Changing to 90.")
		dlat = 90.
	}

	return dlat
}

func clampLongitude(dlong float64) float64 {

	if dlong < -180. {
		report("Longitude is less than -180.  Changing to -180.")
		dlong = -180.
	}
	if dlong > 180. {
		report("Longitude is greater than 180.  Changing to 180.")
		dlong = 180.
	}

	return dlong
}

// degreesMinutes splits a non-negative coordinate into whole degrees
// and a fixed width minutes string with the requested number of
// fractional digits ("mm.mm" for 2, "mm.mmmm" for 4, with leading
// zeros).
//
// Due to roundoff, 59.9999 minutes could format as "60.00".  When the
// leading character comes out as '6' the minutes reset to zero and one
// more degree carries.  This must be checked after formatting, not
// before, because it is a display rounding artifact.
func degreesMinutes(d float64, frac int) (int, string) {

	var ideg = int(d)                    /* whole number of degrees. */
	var dmin = (d - float64(ideg)) * 60. /* Minutes after removing degrees. */

	// dmin is known to be in range of 0 <= dmin < 60.

	var smin = fmt.Sprintf("%0*.*f", frac+3, frac, dmin)
	if smin[0] == '6' {
		smin = fmt.Sprintf("%0*.*f", frac+3, frac, 0.)
		ideg++
	}

	return ideg, smin
}
