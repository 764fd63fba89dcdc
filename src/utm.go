package latlong

// Wrappers for UTM and MGRS conversions, built on
// https://github.com/tzneal/coordconv

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

// ToUTM converts a location to Universal Transverse Mercator.
func ToUTM(lat float64, lon float64) (coordconv.UTMCoord, error) {
	return coordconv.DefaultUTMConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lon), 0)
}

// FromUTM converts a UTM coordinate back to degrees.
func FromUTM(coord coordconv.UTMCoord) (float64, float64, error) {
	var latlng, err = coordconv.DefaultUTMConverter.ConvertToGeodetic(coord)
	if err != nil {
		return 0, 0, err
	}

	return latlng.Lat.Degrees(), latlng.Lng.Degrees(), nil
}

// ToMGRS converts a location to a Military Grid Reference System
// designation with 1 to 5 digits of precision per axis.
func ToMGRS(lat float64, lon float64, precision int) (string, error) {
	var mgrs, err = coordconv.DefaultMGRSConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lon), precision)
	if err != nil {
		return "", err
	}

	return fmt.Sprint(mgrs), nil
}

// FromMGRS converts an MGRS designation to degrees.
func FromMGRS(mgrs string) (float64, float64, error) {
	var latlng, err = coordconv.DefaultMGRSConverter.ConvertToGeodetic(mgrs)
	if err != nil {
		return 0, 0, err
	}

	return latlng.Lat.Degrees(), latlng.Lng.Degrees(), nil
}

func HemisphereFromRune(hemi rune) coordconv.Hemisphere {
	switch hemi {
	case 'N':
		return coordconv.HemisphereNorth
	case 'S':
		return coordconv.HemisphereSouth
	default:
		return coordconv.HemisphereInvalid
	}
}

func HemisphereRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return '!'
	default:
		return '?'
	}
}
