package latlong

/*------------------------------------------------------------------
 *
 * Purpose:	Extract position data from NMEA 0183 sentences.
 *
 * Description:	A sentence looks like
 *
 *		$GPRMC,003413.710,A,4237.1240,N,07120.8333,W,5.07,291.42,160614,,,A*7F
 *
 *		The interesting types are RMC, which has speed and
 *		course, and GGA, which has altitude.  A receiver that
 *		wants the whole picture needs to watch both.  The two
 *		characters after the '$' identify the talker (GP for
 *		GPS, GN for combined systems) and do not change the
 *		layout, so dispatch on the three characters after that.
 *
 *---------------------------------------------------------------*/

import (
	"strconv"
	"strings"
	"time"
)

/*
 * Quality of a position fix, equivalent to values from libgps.
 */

type Fix int

const (
	FixError   Fix = -1 /* Sentence could not be parsed. */
	FixNotSeen Fix = 0  /* Nothing heard yet. */
	FixNone    Fix = 1  /* Had signal but lost it.  Could be temporary. */
	Fix2D      Fix = 2
	Fix3D      Fix = 3
)

/*
 * Most recent data accumulated from a sentence stream.  RMC and GGA
 * each carry only part of the picture so results are merged here.
 * Undefined values are set to Unknown.
 */

type FixInfo struct {
	Timestamp  time.Time /* When last updated. */
	Fix        Fix       /* Quality of position fix. */
	Lat        float64   /* Latitude.  Valid if fix >= 2. */
	Lon        float64   /* Longitude. Valid if fix >= 2. */
	SpeedKnots float64   /* Some receivers use meters/sec but GPS convention is knots. */
	CourseDeg  float64   /* True course over ground. */
	AltMeters  float64   /* Meters above mean sea level.  Valid if fix == 3. */
}

// Clear resets everything to the nothing-heard-yet state.
func (gi *FixInfo) Clear() {
	gi.Timestamp = time.Time{}
	gi.Fix = FixNotSeen
	gi.Lat = Unknown
	gi.Lon = Unknown
	gi.SpeedKnots = Unknown
	gi.CourseDeg = Unknown
	gi.AltMeters = Unknown
}

/*-------------------------------------------------------------------
 *
 * Name:	RemoveChecksum
 *
 * Purpose:	Validate checksum and remove before further processing.
 *
 * Inputs:	sent		- Complete sentence including "*hh".
 *
 * Returns:	The sentence up to but not including the "*", and
 *		true for a good checksum.  A missing or wrong
 *		checksum is reported and returns false.
 *
 *--------------------------------------------------------------------*/

func RemoveChecksum(sent string) (string, bool) {

	var msg, checksumStr, found = strings.Cut(sent, "*")
	if !found {
		report("Missing GPS checksum.")
		return "", false
	}

	/* XOR of everything between the '$' and the '*'. */

	var calculated int64
	for i := 1; i < len(msg); i++ {
		calculated ^= int64(msg[i])
	}

	var checksum, _ = strconv.ParseInt(checksumStr, 16, 0)

	if calculated != checksum {
		report("GPS checksum error. Expected %02x but found %s.", calculated, checksumStr)
		return "", false
	}

	return msg, true
}

/*-------------------------------------------------------------------
 *
 * Name:        ParseRMC
 *
 * Purpose:    	Parse $__RMC sentence and extract interesting parts.
 *
 * Inputs:	sentence	NMEA sentence including checksum.
 *
 * Returns:	Extracted fields, Unknown where not available, and
 *		the fix quality:
 *
 *		FixError	Parse error.
 *		FixNone		GPS is there but position unknown.  Could be temporary.
 *		Fix2D		Valid position.  We don't know if it is really 2D or 3D.
 *
 * Note:	RMC does not contain altitude.
 *
 * Examples:	$GPRMC,001431.00,V,,,,,,,121015,,,N*7C
 *		$GPRMC,212404.000,V,4237.1505,N,07120.8602,W,,,150614,,*0B
 *		$GPRMC,000029.020,V,,,,,,,080810,,,N*45
 *		$GPRMC,003413.710,A,4237.1240,N,07120.8333,W,5.07,291.42,160614,,,A*7F
 *
 *--------------------------------------------------------------------*/

type RMC struct {
	Lat        float64
	Lon        float64
	SpeedKnots float64
	CourseDeg  float64   /* Unknown when stationary. */
	When       time.Time /* UTC from the time and date fields.  Zero if absent. */
}

func ParseRMC(sentence string) (RMC, Fix) {

	var rmc = RMC{Lat: Unknown, Lon: Unknown, SpeedKnots: Unknown, CourseDeg: Unknown}

	stemp, ok := RemoveChecksum(sentence)
	if !ok {
		return rmc, FixError
	}

	ptype, stemp, _ := strings.Cut(stemp, ",")   /* Should be $GPRMC */
	ptime, stemp, _ := strings.Cut(stemp, ",")   /* Time, hhmmss[.sss] */
	pstatus, stemp, _ := strings.Cut(stemp, ",") /* Status, A=Active (valid position), V=Void */
	plat, stemp, _ := strings.Cut(stemp, ",")    /* Latitude */
	pns, stemp, _ := strings.Cut(stemp, ",")     /* North/South */
	plon, stemp, _ := strings.Cut(stemp, ",")    /* Longitude */
	pew, stemp, _ := strings.Cut(stemp, ",")     /* East/West */
	pknots, stemp, _ := strings.Cut(stemp, ",")  /* Speed over ground, knots. */
	pcourse, stemp, _ := strings.Cut(stemp, ",") /* True course, degrees. */
	pdate, stemp, _ := strings.Cut(stemp, ",")   /* Date, ddmmyy */
	/* Magnetic variation */
	/* In version 3.00, mode is added: A D E N */
	_ = ptype
	_ = stemp

	rmc.When = sentenceTime(ptime, pdate)

	if len(pstatus) != 1 {
		report("No status in GPRMC sentence.")
		return rmc, FixError
	}
	if pstatus != "A" {
		return rmc, FixNone /* Not "Active." Don't parse. */
	}

	if len(plat) > 0 && len(pns) > 0 {
		rmc.Lat = LatitudeFromNMEA(plat, pns[0])
	} else {
		report("Can't get latitude from GPRMC sentence.")
		return rmc, FixError
	}

	if len(plon) > 0 && len(pew) > 0 {
		rmc.Lon = LongitudeFromNMEA(plon, pew[0])
	} else {
		report("Can't get longitude from GPRMC sentence.")
		return rmc, FixError
	}

	if len(pknots) > 0 {
		rmc.SpeedKnots, _ = strconv.ParseFloat(pknots, 64)
	} else {
		report("Can't get speed from GPRMC sentence.")
		return rmc, FixError
	}

	if len(pcourse) > 0 {
		rmc.CourseDeg, _ = strconv.ParseFloat(pcourse, 64)
	} else {
		/* When stationary, this field might be empty. */
		rmc.CourseDeg = Unknown
	}

	return rmc, Fix2D
}

/* Combine hhmmss[.sss] and ddmmyy fields into a time.  The fraction
   is dropped.  Zero value if either field is missing or malformed. */

func sentenceTime(ptime string, pdate string) time.Time {

	if ptime == "" || pdate == "" {
		return time.Time{}
	}

	var hhmmss, _, _ = strings.Cut(ptime, ".")

	var t, err = time.Parse("150405 020106", hhmmss+" "+pdate)
	if err != nil {
		return time.Time{}
	}
	return t
}

/*-------------------------------------------------------------------
 *
 * Name:        ParseGGA
 *
 * Purpose:    	Parse $__GGA sentence and extract interesting parts.
 *
 * Inputs:	sentence	NMEA sentence including checksum.
 *
 * Returns:	Extracted fields, Unknown where not available, and
 *		the fix quality:
 *
 *		FixError	Parse error.
 *		FixNone		GPS is there but position unknown.  Could be temporary.
 *		Fix2D		Valid position.  Altitude field present but empty.
 *		Fix3D		Valid 3D position.
 *
 * Note:	GGA has altitude but not course and speed so we need to use both.
 *
 * Examples:	$GPGGA,001429.00,,,,,0,00,99.99,,,,,,*68
 *		$GPGGA,212407.000,4237.1505,N,07120.8602,W,0,00,,,M,,M,,*58
 *		$GPGGA,000409.392,,,,,0,00,,,M,0.0,M,,0000*53
 *		$GPGGA,003518.710,4237.1250,N,07120.8327,W,1,03,5.9,33.5,M,-33.5,M,,0000*5B
 *
 *--------------------------------------------------------------------*/

type GGA struct {
	Lat       float64
	Lon       float64
	AltMeters float64
	NumSat    int /* Number of satellites in use.  Unknown if absent. */
}

func ParseGGA(sentence string) (GGA, Fix) {

	var gga = GGA{Lat: Unknown, Lon: Unknown, AltMeters: Unknown, NumSat: Unknown}

	stemp, ok := RemoveChecksum(sentence)
	if !ok {
		return gga, FixError
	}

	ptype, stemp, _ := strings.Cut(stemp, ",")                 /* Should be $GPGGA */
	ptime, stemp, _ := strings.Cut(stemp, ",")                 /* Time, hhmmss[.sss] */
	plat, stemp, _ := strings.Cut(stemp, ",")                  /* Latitude */
	pns, stemp, _ := strings.Cut(stemp, ",")                   /* North/South */
	plon, stemp, _ := strings.Cut(stemp, ",")                  /* Longitude */
	pew, stemp, _ := strings.Cut(stemp, ",")                   /* East/West */
	pfix, stemp, _ := strings.Cut(stemp, ",")                  /* 0=invalid, 1=GPS fix, 2=DGPS fix */
	pnumSat, stemp, _ := strings.Cut(stemp, ",")               /* Number of satellites */
	phdop, stemp, _ := strings.Cut(stemp, ",")                 /* Horiz. Dilution of Precision */
	paltitude, stemp, altitudeFound := strings.Cut(stemp, ",") /* Altitude, above mean sea level */
	/* Units for altitude, typically M for meters. */
	/* Height above ellipsoid, units, time since last DGPS update, */
	/* DGPS reference station id. */
	_ = ptype
	_ = ptime
	_ = phdop
	_ = stemp

	if len(pfix) != 1 {
		report("No fix in GPGGA sentence.")
		return gga, FixError
	}
	if pfix == "0" {
		return gga, FixNone /* No fix.  Don't parse the rest. */
	}

	if len(plat) > 0 && len(pns) > 0 {
		gga.Lat = LatitudeFromNMEA(plat, pns[0])
	} else {
		report("Can't get latitude from GPGGA sentence.")
		return gga, FixError
	}

	if len(plon) > 0 && len(pew) > 0 {
		gga.Lon = LongitudeFromNMEA(plon, pew[0])
	} else {
		report("Can't get longitude from GPGGA sentence.")
		return gga, FixError
	}

	if n, err := strconv.Atoi(pnumSat); err == nil {
		gga.NumSat = n
	}

	/*
	 * We can distinguish between 2D & 3D fix by presence
	 * of altitude or an empty field.
	 */

	if !altitudeFound {
		report("Can't get altitude from GPGGA sentence.")
		return gga, FixError
	}

	if len(paltitude) > 0 {
		gga.AltMeters, _ = strconv.ParseFloat(paltitude, 64)
		return gga, Fix3D
	}

	return gga, Fix2D
}
