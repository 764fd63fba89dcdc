package latlong

/*------------------------------------------------------------------
 *
 * Purpose:   	Human readable position fields for APRS.
 *
 * Description:	Latitude is a fixed 8 character field, ddmm.mm plus
 *		the letter N or S.  Longitude is 9 characters, dddmm.mm
 *		plus E or W.  The fields have fixed width so leading
 *		zeros fill small values.
 *
 *		Trailing digits can be blanked out for position
 *		ambiguity, per the protocol's privacy convention.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"unicode"
)

/*
 * Position ambiguity blanks out the least significant digits of the
 * minutes, cumulatively from level 1 up:
 *
 *	level 1		hundredths of minutes
 *	level 2		tenths of minutes
 *	level 3		single minutes
 *	level 4		tens of minutes
 *
 * The byte offsets differ between latitude and longitude because of
 * the extra degrees digit, but the digit meanings line up for a given
 * level.  The decimal point and the hemisphere letter are never
 * touched.  Levels outside 0 to 4 saturate.
 */

var latAmbiguity = [5][]int{nil, {6}, {6, 5}, {6, 5, 3}, {6, 5, 3, 2}}
var lonAmbiguity = [5][]int{nil, {7}, {7, 6}, {7, 6, 4}, {7, 6, 4, 3}}

func blankAmbiguity(field []byte, table *[5][]int, ambiguity int) {
	if ambiguity < 0 {
		ambiguity = 0
	}
	if ambiguity > len(table)-1 {
		ambiguity = len(table) - 1
	}

	for _, n := range table[ambiguity] {
		field[n] = ' '
	}
}

/*------------------------------------------------------------------
 *
 * Name:        LatitudeToString
 *
 * Purpose:     Convert numeric latitude to string for transmission.
 *
 * Inputs:      dlat		- Floating point degrees.
 * 		ambiguity	- If 1, 2, 3, or 4, blank out that many trailing digits.
 *
 * Returns:	String in format ddmm.mm[NS], exactly 8 characters.
 *
 *----------------------------------------------------------------*/

func LatitudeToString(dlat float64, ambiguity int) string {

	dlat = clampLatitude(dlat)

	var hemi byte = 'N'
	if dlat < 0 {
		dlat = (-dlat)
		hemi = 'S'
	}

	var ideg, smin = degreesMinutes(dlat, 2)

	var slat = []byte(fmt.Sprintf("%02d%s%c", ideg, smin, hemi))

	blankAmbiguity(slat, &latAmbiguity, ambiguity)

	return string(slat)
}

/*------------------------------------------------------------------
 *
 * Name:        LongitudeToString
 *
 * Purpose:     Convert numeric longitude to string for transmission.
 *
 * Inputs:      dlong		- Floating point degrees.
 * 		ambiguity	- If 1, 2, 3, or 4, blank out that many trailing digits.
 *
 * Returns:	String in format dddmm.mm[EW], exactly 9 characters.
 *
 *		The protocol says position ambiguity in latitude also
 *		applies to longitude automatically, so the same level
 *		is blanked here as well.
 *
 *----------------------------------------------------------------*/

func LongitudeToString(dlong float64, ambiguity int) string {

	dlong = clampLongitude(dlong)

	var hemi byte = 'E'
	if dlong < 0 {
		dlong = (-dlong)
		hemi = 'W'
	}

	var ideg, smin = degreesMinutes(dlong, 2)

	var slong = []byte(fmt.Sprintf("%03d%s%c", ideg, smin, hemi))

	blankAmbiguity(slong, &lonAmbiguity, ambiguity)

	return string(slong)
}

/*------------------------------------------------------------------
 *
 * Name:	LatitudeFromString
 *
 * Purpose:	Convert 8 character latitude field back to degrees.
 *
 * Inputs:	slat	- Fixed 8 character field, ddmm.mm followed by
 *			  N or S.  The protocol requires upper case for
 *			  the hemisphere but lower case is accepted with
 *			  a complaint.  A space is accepted where a
 *			  digit might be blanked for position ambiguity
 *			  and counts as zero.
 *
 * Returns:	Double precision value in degrees.  Negative for South.
 *		Unknown for any malformed field.
 *
 *----------------------------------------------------------------*/

func LatitudeFromString(slat string) float64 {

	if len(slat) != 8 {
		report("Invalid latitude field \"%s\".  Expecting exactly 8 characters like 4903.50N.", slat)
		return Unknown
	}

	var result float64

	if unicode.IsDigit(rune(slat[0])) {
		result += float64(slat[0]-'0') * 10
	} else {
		report("Invalid character in latitude.  Found '%c' when expecting 0-9 for tens of degrees.", slat[0])
		return Unknown
	}

	if unicode.IsDigit(rune(slat[1])) {
		result += float64(slat[1] - '0')
	} else {
		report("Invalid character in latitude.  Found '%c' when expecting 0-9 for degrees.", slat[1])
		return Unknown
	}

	if slat[2] >= '0' && slat[2] <= '5' {
		result += float64(slat[2]-'0') * (10. / 60.)
	} else if slat[2] == ' ' {
		/* Blanked for position ambiguity.  Counts as zero. */
	} else {
		report("Invalid character in latitude.  Found '%c' when expecting 0-5 for tens of minutes.", slat[2])
		return Unknown
	}

	if unicode.IsDigit(rune(slat[3])) {
		result += float64(slat[3]-'0') * (1. / 60.)
	} else if slat[3] != ' ' {
		report("Invalid character in latitude.  Found '%c' when expecting 0-9 for minutes.", slat[3])
		return Unknown
	}

	if slat[4] != '.' {
		report("Unexpected character \"%c\" found where period expected in latitude.", slat[4])
		return Unknown
	}

	if unicode.IsDigit(rune(slat[5])) {
		result += float64(slat[5]-'0') * (0.1 / 60.)
	} else if slat[5] != ' ' {
		report("Invalid character in latitude.  Found '%c' when expecting 0-9 for tenths of minutes.", slat[5])
		return Unknown
	}

	if unicode.IsDigit(rune(slat[6])) {
		result += float64(slat[6]-'0') * (0.01 / 60.)
	} else if slat[6] != ' ' {
		report("Invalid character in latitude.  Found '%c' when expecting 0-9 for hundredths of minutes.", slat[6])
		return Unknown
	}

	switch slat[7] {
	case 'N':
		return result
	case 'n':
		report("Lower case n found for latitude hemisphere.  Specification requires upper case N or S.")
		return result
	case 'S':
		return -result
	case 's':
		report("Lower case s found for latitude hemisphere.  Specification requires upper case N or S.")
		return -result
	default:
		report("'%c' found for latitude hemisphere.  Specification requires upper case N or S.", slat[7])
		return Unknown
	}
}

/*------------------------------------------------------------------
 *
 * Name:	LongitudeFromString
 *
 * Purpose:	Convert 9 character longitude field back to degrees.
 *
 * Inputs:	slong	- Fixed 9 character field, dddmm.mm followed
 *			  by E or W.  Same rules as LatitudeFromString.
 *
 * Returns:	Double precision value in degrees.  Negative for West.
 *		Unknown for any malformed field.
 *
 *----------------------------------------------------------------*/

func LongitudeFromString(slong string) float64 {

	if len(slong) != 9 {
		report("Invalid longitude field \"%s\".  Expecting exactly 9 characters like 07201.75W.", slong)
		return Unknown
	}

	var result float64

	if slong[0] == '0' || slong[0] == '1' {
		result += float64(slong[0]-'0') * 100
	} else {
		report("Invalid character in longitude.  Found '%c' when expecting 0 or 1 for hundreds of degrees.", slong[0])
		return Unknown
	}

	if unicode.IsDigit(rune(slong[1])) {
		result += float64(slong[1]-'0') * 10
	} else {
		report("Invalid character in longitude.  Found '%c' when expecting 0-9 for tens of degrees.", slong[1])
		return Unknown
	}

	if unicode.IsDigit(rune(slong[2])) {
		result += float64(slong[2] - '0')
	} else {
		report("Invalid character in longitude.  Found '%c' when expecting 0-9 for degrees.", slong[2])
		return Unknown
	}

	if slong[3] >= '0' && slong[3] <= '5' {
		result += float64(slong[3]-'0') * (10. / 60.)
	} else if slong[3] != ' ' {
		report("Invalid character in longitude.  Found '%c' when expecting 0-5 for tens of minutes.", slong[3])
		return Unknown
	}

	if unicode.IsDigit(rune(slong[4])) {
		result += float64(slong[4]-'0') * (1. / 60.)
	} else if slong[4] != ' ' {
		report("Invalid character in longitude.  Found '%c' when expecting 0-9 for minutes.", slong[4])
		return Unknown
	}

	if slong[5] != '.' {
		report("Unexpected character \"%c\" found where period expected in longitude.", slong[5])
		return Unknown
	}

	if unicode.IsDigit(rune(slong[6])) {
		result += float64(slong[6]-'0') * (0.1 / 60.)
	} else if slong[6] != ' ' {
		report("Invalid character in longitude.  Found '%c' when expecting 0-9 for tenths of minutes.", slong[6])
		return Unknown
	}

	if unicode.IsDigit(rune(slong[7])) {
		result += float64(slong[7]-'0') * (0.01 / 60.)
	} else if slong[7] != ' ' {
		report("Invalid character in longitude.  Found '%c' when expecting 0-9 for hundredths of minutes.", slong[7])
		return Unknown
	}

	switch slong[8] {
	case 'E':
		return result
	case 'e':
		report("Lower case e found for longitude hemisphere.  Specification requires upper case E or W.")
		return result
	case 'W':
		return -result
	case 'w':
		report("Lower case w found for longitude hemisphere.  Specification requires upper case E or W.")
		return -result
	default:
		report("'%c' found for longitude hemisphere.  Specification requires upper case E or W.", slong[8])
		return Unknown
	}
}
