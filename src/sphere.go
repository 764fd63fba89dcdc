package latlong

/*------------------------------------------------------------------
 *
 * Purpose:	Great circle calculations on a spherical earth.
 *
 *---------------------------------------------------------------*/

import "math"

/* Mean earth radius. */

const earthRadiusKM = 6371

/*------------------------------------------------------------------
 *
 * Name:	DistanceKM
 *
 * Purpose:	Calculate distance between two locations.
 *
 * Inputs:	lat1, lon1	- One location, in degrees.
 *		lat2, lon2	- other location
 *
 * Returns:	Distance in km.
 *
 * Description:	The Ubiquitous Haversine formula.
 *
 *------------------------------------------------------------------*/

func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {

	lat1 *= math.Pi / 180
	lon1 *= math.Pi / 180
	lat2 *= math.Pi / 180
	lon2 *= math.Pi / 180

	var a = math.Pow(math.Sin((lat2-lat1)/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin((lon2-lon1)/2), 2)

	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

/*------------------------------------------------------------------
 *
 * Name:	BearingDeg
 *
 * Purpose:	Calculate initial bearing from one location to another.
 *
 * Inputs:	lat1, lon1	- starting location, in degrees.
 *		lat2, lon2	- destination location
 *
 * Returns:	Initial bearing, in the range 0 to 360 degrees.
 *
 *------------------------------------------------------------------*/

func BearingDeg(lat1, lon1, lat2, lon2 float64) float64 {

	lat1 *= math.Pi / 180
	lon1 *= math.Pi / 180
	lat2 *= math.Pi / 180
	lon2 *= math.Pi / 180

	var b = math.Atan2(math.Sin(lon2-lon1)*math.Cos(lat2),
		math.Cos(lat1)*math.Sin(lat2)-math.Sin(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1))

	b *= 180 / math.Pi
	if b < 0 {
		b += 360
	}

	return b
}

/*------------------------------------------------------------------
 *
 * Name:	DestLat
 *		DestLon
 *
 * Purpose:	Calculate the destination location given a starting point,
 *		distance, and bearing.
 *
 * Inputs:	lat1, lon1	- starting location, in degrees.
 *		dist		- distance in km.
 *		bearing		- direction in degrees.  Shouldn't matter
 *				  if it is in +- 180 or 0 to 360 range.
 *
 * Returns:	New latitude or longitude.
 *
 *------------------------------------------------------------------*/

func DestLat(lat1, _, dist, bearing float64) float64 {

	lat1 *= math.Pi / 180.0 // Everything to radians.
	bearing *= math.Pi / 180.0

	var lat2 = math.Asin(math.Sin(lat1)*math.Cos(dist/earthRadiusKM) + math.Cos(lat1)*math.Sin(dist/earthRadiusKM)*math.Cos(bearing))

	lat2 *= 180.0 / math.Pi // Back to degrees.

	return lat2
}

func DestLon(lat1, lon1, dist, bearing float64) float64 {

	lat1 *= math.Pi / 180 // Everything to radians.
	lon1 *= math.Pi / 180
	bearing *= math.Pi / 180

	var lat2 = math.Asin(math.Sin(lat1)*math.Cos(dist/earthRadiusKM) + math.Cos(lat1)*math.Sin(dist/earthRadiusKM)*math.Cos(bearing))

	var lon2 = lon1 + math.Atan2(math.Sin(bearing)*math.Sin(dist/earthRadiusKM)*math.Cos(lat1), math.Cos(dist/earthRadiusKM)-math.Sin(lat1)*math.Sin(lat2))

	lon2 *= 180 / math.Pi // Back to degrees.

	return lon2
}
