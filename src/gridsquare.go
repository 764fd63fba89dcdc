package latlong

/*------------------------------------------------------------------
 *
 * Purpose:	Convert Maidenhead locator to latitude and longitude.
 *
 * Description:	Each pair of characters adds another level of
 *		precision.  The first pair divides the world into
 *		18 x 18 fields, the second into 10 x 10 squares,
 *		and so on, alternating between letters and digits.
 *
 * Rambling:	What sort of resolution does this provide?
 *		For 8 character form, each latitude unit is 0.25 minute.
 *		(Longitude can be up to twice that around the equator.)
 *		6371 km * 2 * pi * 0.25 / 60 / 360 = 0.463 km.  Is that right?
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"strings"
)

const mhMinPair = 1
const mhMaxPair = 6
const mhUnits = 18 * 10 * 24 * 10 * 24 * 10 * 2

type mhPair struct {
	position string
	minCh    byte
	maxCh    byte
	value    int
}

var mhPairs = []mhPair{
	{"first", 'A', 'R', 10 * 24 * 10 * 24 * 10 * 2},
	{"second", '0', '9', 24 * 10 * 24 * 10 * 2},
	{"third", 'A', 'X', 10 * 24 * 10 * 2},
	{"fourth", '0', '9', 24 * 10 * 2},
	{"fifth", 'A', 'X', 10 * 2},
	{"sixth", '0', '9', 2},
} // Even so we can get center of square.

/*------------------------------------------------------------------
 *
 * Name:	FromGridSquare
 *
 * Purpose:	Convert Maidenhead locator to latitude and longitude.
 *
 * Inputs:	maidenhead	- 2, 4, 6, 8, 10, or 12 character locator.
 *				  Lower case is allowed.
 *
 * Returns:	Latitude and longitude of the CENTER of the given
 *		square, or an error for a malformed locator.
 *
 *------------------------------------------------------------------*/

func FromGridSquare(maidenhead string) (float64, float64, error) {

	var np = len(maidenhead) / 2 /* Number of pairs of characters. */

	if len(maidenhead)%2 != 0 || np < mhMinPair || np > mhMaxPair {
		return 0, 0, fmt.Errorf("Maidenhead locator \"%s\" must be from 1 to %d pairs of characters.", maidenhead, mhMaxPair)
	}

	var mh = strings.ToUpper(maidenhead)

	var ilat, ilon int
	for n := 0; n < np; n++ {
		if mh[2*n] < mhPairs[n].minCh || mh[2*n] > mhPairs[n].maxCh ||
			mh[2*n+1] < mhPairs[n].minCh || mh[2*n+1] > mhPairs[n].maxCh {
			return 0, 0, fmt.Errorf("The %s pair of characters in Maidenhead locator \"%s\" must be in range of %c thru %c.",
				mhPairs[n].position, maidenhead, mhPairs[n].minCh, mhPairs[n].maxCh)
		}

		ilon += int(mh[2*n]-mhPairs[n].minCh) * mhPairs[n].value
		ilat += int(mh[2*n+1]-mhPairs[n].minCh) * mhPairs[n].value

		if n == np-1 { // If last pair, take center of square.
			ilon += mhPairs[n].value / 2
			ilat += mhPairs[n].value / 2
		}
	}

	var dlat = float64(ilat)/mhUnits*180. - 90.
	var dlon = float64(ilon)/mhUnits*360. - 180.

	return dlat, dlon, nil
}
