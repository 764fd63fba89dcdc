package latlong

/*------------------------------------------------------------------
 *
 * Purpose:	Latitude and longitude fields for NMEA 0183 sentences.
 *
 * Description:	The numeric field packs degrees and minutes together,
 *		ddmm.mmmm for latitude and dddmm.mmmm for longitude,
 *		with the hemisphere letter in a separate field.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"strconv"
	"unicode"
)

/*------------------------------------------------------------------
 *
 * Name:        LatitudeToNMEA
 *
 * Purpose:     Convert numeric latitude to strings for NMEA sentence.
 *
 * Inputs:      dlat		- Floating point degrees.
 *
 * Returns:	String in format ddmm.mmmm and hemisphere N or S.
 *		Both empty if the latitude is not known.
 *
 *----------------------------------------------------------------*/

func LatitudeToNMEA(dlat float64) (string, string) {

	if dlat == Unknown {
		return "", ""
	}

	dlat = clampLatitude(dlat)

	var hemi string
	if dlat < 0 {
		dlat = (-dlat)
		hemi = "S"
	} else {
		hemi = "N"
	}

	var ideg, smin = degreesMinutes(dlat, 4)

	var slat = fmt.Sprintf("%02d%s", ideg, smin)

	return slat, hemi
}

/*------------------------------------------------------------------
 *
 * Name:        LongitudeToNMEA
 *
 * Purpose:     Convert numeric longitude to strings for NMEA sentence.
 *
 * Inputs:      dlong		- Floating point degrees.
 *
 * Returns:	String in format dddmm.mmmm and hemisphere E or W.
 *		Both empty if the longitude is not known.
 *
 *----------------------------------------------------------------*/

func LongitudeToNMEA(dlong float64) (string, string) {

	if dlong == Unknown {
		return "", ""
	}

	dlong = clampLongitude(dlong)

	var hemi string
	if dlong < 0 {
		dlong = (-dlong)
		hemi = "W"
	} else {
		hemi = "E"
	}

	var ideg, smin = degreesMinutes(dlong, 4)

	var slong = fmt.Sprintf("%03d%s", ideg, smin)

	return slong, hemi
}

/*------------------------------------------------------------------
 *
 * Name:	LatitudeFromNMEA
 *
 * Purpose:	Convert NMEA latitude encoding to degrees.
 *
 * Inputs:	pstr 	- Numeric field from the sentence.
 *		phemi	- First byte of the following field.  Should
 *			  be N or S.  Zero for an absent field.
 *
 * Returns:	Double precision value in degrees.  Negative for South.
 *
 * Description:	Latitude field has
 *			2 digits for degrees
 *			2 digits for minutes
 *			period
 *			Variable number of fractional digits for minutes.
 *			I've seen 2, 3, and 4 fractional digits.
 *
 * Errors:	Return constant Unknown for a malformed field.  A
 *		value out of range or a strange hemisphere letter is
 *		only worth a complaint; the result is still returned
 *		because receivers see all sorts of marginal data.
 *
 *------------------------------------------------------------------*/

func LatitudeFromNMEA(pstr string, phemi byte) float64 {

	if len(pstr) < 5 {
		return Unknown
	}
	if !unicode.IsDigit(rune(pstr[0])) {
		return Unknown
	}

	if pstr[4] != '.' {
		return Unknown
	}

	var lat = float64(pstr[0]-'0')*10 + float64(pstr[1]-'0')
	var mins, _ = strconv.ParseFloat(pstr[2:], 64)
	lat += mins / 60.0

	if lat < 0 || lat > 90 {
		report("Latitude not in range of 0 to 90.")
	}

	// Seen in the wild when there is no fix:
	//	$GPRMC,000000,V,0000.0000,0,00000.0000,0,000,000,000000,,*01

	if phemi != 'N' && phemi != 'S' && phemi != 0 {
		report("Latitude hemisphere should be N or S.")
	}

	if phemi == 'S' {
		lat = (-lat)
	}

	return lat
}

/*------------------------------------------------------------------
 *
 * Name:	LongitudeFromNMEA
 *
 * Purpose:	Convert NMEA longitude encoding to degrees.
 *
 * Inputs:	pstr 	- Numeric field from the sentence.
 *		phemi	- First byte of the following field.  Should
 *			  be E or W.  Zero for an absent field.
 *
 * Returns:	Double precision value in degrees.  Negative for West.
 *
 * Description:	Longitude field has
 *			3 digits for degrees
 *			2 digits for minutes
 *			period
 *			Variable number of fractional digits for minutes.
 *
 * Errors:	Return constant Unknown for a malformed field.
 *
 *------------------------------------------------------------------*/

func LongitudeFromNMEA(pstr string, phemi byte) float64 {

	if len(pstr) < 6 {
		return Unknown
	}
	if !unicode.IsDigit(rune(pstr[0])) {
		return Unknown
	}

	if pstr[5] != '.' {
		return Unknown
	}

	var lon = float64(pstr[0]-'0')*100 + float64(pstr[1]-'0')*10 + float64(pstr[2]-'0')
	var mins, _ = strconv.ParseFloat(pstr[3:], 64)
	lon += mins / 60.0

	if lon < 0 || lon > 180 {
		report("Longitude not in range of 0 to 180.")
	}

	if phemi != 'E' && phemi != 'W' && phemi != 0 {
		report("Longitude hemisphere should be E or W.")
	}

	if phemi == 'W' {
		lon = (-lon)
	}

	return lon
}
