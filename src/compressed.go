package latlong

/*------------------------------------------------------------------
 *
 * Purpose:	Compressed position fields for APRS.
 *
 * Description:	Latitude and longitude are each squeezed into 4
 *		printable characters using base 91.  The scale factors
 *		are chosen so the full domain fits in 91^4 - 1 with a
 *		resolution of about one foot.
 *
 *---------------------------------------------------------------*/

import "math"

/* Range of digits for Base 91 representation. */

const Base91Min = '!'
const Base91Max = '{'

// IsDigit91 reports whether c is a valid base 91 digit.
func IsDigit91(c byte) bool {
	return c >= Base91Min && c <= Base91Max
}

/*
 * n is non-negative and less than 91^4 after scaling, so four digits
 * always suffice.  Most significant digit first.
 */

func compressed4(n int) string {
	var c [4]byte
	c[0] = byte(n/(91*91*91) + Base91Min)
	n %= 91 * 91 * 91
	c[1] = byte(n/(91*91) + Base91Min)
	n %= 91 * 91
	c[2] = byte(n/91 + Base91Min)
	n %= 91
	c[3] = byte(n + Base91Min)
	return string(c[:])
}

/*------------------------------------------------------------------
 *
 * Name:        LatitudeToCompressed
 *
 * Purpose:     Convert numeric latitude to compressed string.
 *
 * Inputs:      dlat		- Floating point degrees.
 *
 * Returns:	String of exactly 4 characters in the range '!' to '{'.
 *		+90 encodes as "!!!!" and -90 as "{{!!".
 *
 *----------------------------------------------------------------*/

func LatitudeToCompressed(dlat float64) string {

	dlat = clampLatitude(dlat)

	return compressed4(int(math.Round(380926. * (90. - dlat))))
}

/*------------------------------------------------------------------
 *
 * Name:        LongitudeToCompressed
 *
 * Purpose:     Convert numeric longitude to compressed string.
 *
 * Inputs:      dlong		- Floating point degrees.
 *
 * Returns:	String of exactly 4 characters in the range '!' to '{'.
 *		-180 encodes as "!!!!" and +180 as "{{!!".
 *
 *----------------------------------------------------------------*/

func LongitudeToCompressed(dlong float64) string {

	dlong = clampLongitude(dlong)

	return compressed4(int(math.Round(190463. * (180. + dlong))))
}

/*------------------------------------------------------------------
 *
 * Name:	LatitudeFromCompressed
 *
 * Purpose:	Convert compressed latitude back to degrees.
 *
 * Inputs:	clat	- 4 characters from a compressed position.
 *
 * Returns:	Degrees, or Unknown if any character is outside the
 *		base 91 digit range.
 *
 *----------------------------------------------------------------*/

func LatitudeFromCompressed(clat string) float64 {

	if len(clat) != 4 {
		report("Invalid compressed latitude.  Must be exactly 4 characters.")
		return Unknown
	}

	for i := 0; i < 4; i++ {
		if !IsDigit91(clat[i]) {
			report("Invalid character in compressed latitude.  Must be in range of '!' to '{'.")
			return Unknown
		}
	}

	var n = int(clat[0]-Base91Min)*91*91*91 +
		int(clat[1]-Base91Min)*91*91 +
		int(clat[2]-Base91Min)*91 +
		int(clat[3]-Base91Min)

	return 90. - float64(n)/380926.
}

/*------------------------------------------------------------------
 *
 * Name:	LongitudeFromCompressed
 *
 * Purpose:	Convert compressed longitude back to degrees.
 *
 * Inputs:	clong	- 4 characters from a compressed position.
 *
 * Returns:	Degrees, or Unknown if any character is outside the
 *		base 91 digit range.
 *
 *----------------------------------------------------------------*/

func LongitudeFromCompressed(clong string) float64 {

	if len(clong) != 4 {
		report("Invalid compressed longitude.  Must be exactly 4 characters.")
		return Unknown
	}

	for i := 0; i < 4; i++ {
		if !IsDigit91(clong[i]) {
			report("Invalid character in compressed longitude.  Must be in range of '!' to '{'.")
			return Unknown
		}
	}

	var n = int(clong[0]-Base91Min)*91*91*91 +
		int(clong[1]-Base91Min)*91*91 +
		int(clong[2]-Base91Min)*91 +
		int(clong[3]-Base91Min)

	return -180. + float64(n)/190463.
}
