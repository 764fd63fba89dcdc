package latlong

/*
 * Speed and distance conversions.  Each one passes the Unknown
 * sentinel through untouched so a missing value stays missing
 * after unit conversion.
 */

func KnotsToMPH(x float64) float64 {
	if x == Unknown {
		return Unknown
	}

	return x * 1.15077945
}

func MPHToKnots(x float64) float64 {
	if x == Unknown {
		return Unknown
	}

	return x * 0.868976
}

func KnotsToKMH(x float64) float64 {
	if x == Unknown {
		return Unknown
	}

	return x * 1.852
}

func KnotsToMetersPerSec(x float64) float64 {
	if x == Unknown {
		return Unknown
	}

	return x * 0.51444444444
}

func MetersToFeet(x float64) float64 {
	if x == Unknown {
		return Unknown
	}

	return x * 3.2808399
}

func FeetToMeters(x float64) float64 {
	if x == Unknown {
		return Unknown
	}

	return x * 0.3048
}

func MilesToKM(x float64) float64 {
	if x == Unknown {
		return Unknown
	}

	return x * 1.609344
}

func KMToMiles(x float64) float64 {
	if x == Unknown {
		return Unknown
	}

	return x * 0.621371192
}
