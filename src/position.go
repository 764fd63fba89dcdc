package latlong

/*------------------------------------------------------------------
 *
 * Purpose:   	Construct APRS packet info parts from components.
 *
 * Description:	The position report body carries the encoded latitude
 *		and longitude along with a symbol, optional data
 *		extension, and optional comment.
 *
 * References:	APRS Protocol Reference.
 *
 *		Frequency spec.
 *		http://www.aprs.org/info/freqspec.txt
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
)

/* Position & symbol fields common to several report formats. */

type Position struct {
	Lat        [8]byte
	SymTableID byte /* / \ 0-9 A-Z */
	Lon        [9]byte
	SymbolCode byte
}

func (p *Position) String() string {
	return fmt.Sprintf("%s%c%s%c", p.Lat[:], p.SymTableID, p.Lon[:], p.SymbolCode)
}

/*------------------------------------------------------------------
 *
 * Name:        NewPosition
 *
 * Purpose:     Fill in the human-readable latitude, longitude,
 * 		symbol part which is common to multiple data formats.
 *
 * Inputs: 	symtab	- Symbol table id or overlay.
 *		symbol	- Symbol id.
 *    		dlat	- Latitude.
 *		dlong	- Longitude.
 *		ambiguity - Blank out least significant digits.
 *
 * Description:	An out of range symbol draws a complaint but is kept
 *		as given.  Receiving applications substitute their own
 *		default; on the sending side there is no better value
 *		to put in its place.
 *
 *----------------------------------------------------------------*/

func NewPosition(symtab byte, symbol byte, dlat float64, dlong float64, ambiguity int) Position {
	var p Position

	copy(p.Lat[:], LatitudeToString(dlat, ambiguity))

	if symtab != '/' && symtab != '\\' && !unicode.IsDigit(rune(symtab)) && !unicode.IsUpper(rune(symtab)) {
		report("Symbol table identifier is not one of / \\ 0-9 A-Z")
	}
	p.SymTableID = symtab

	copy(p.Lon[:], LongitudeToString(dlong, ambiguity))

	if symbol < '!' || symbol > '~' {
		report("Symbol code is not in range of ! to ~")
	}
	p.SymbolCode = symbol

	return p
}

/* Compressed position & symbol fields common to several report formats. */

type CompressedPosition struct {
	SymTableID byte /* / \ a-j A-Z */
	/* "The presence of the leading Symbol Table Identifier */
	/* instead of a digit indicates that this is a compressed */
	/* Position Report and not a normal lat/long report." */

	Y          [4]byte /* Compressed latitude. */
	X          [4]byte /* Compressed longitude. */
	SymbolCode byte
	C          byte /* Course/speed or radio range or altitude. */
	S          byte
	T          byte /* Compression type. */
}

func (p *CompressedPosition) String() string {
	return fmt.Sprintf("%c%s%s%c%c%c%c", p.SymTableID, p.Y[:], p.X[:], p.SymbolCode, p.C, p.S, p.T)
}

/*------------------------------------------------------------------
 *
 * Name:        NewCompressedPosition
 *
 * Purpose:     Fill in the compressed latitude, longitude,
 *		symbol part which is common to multiple data formats.
 *
 * Inputs: 	symtab	- Symbol table id or overlay.
 *		symbol	- Symbol id.
 *    		dlat	- Latitude.
 *		dlong	- Longitude.
 *
 * 	 	power	- Watts.
 *		height	- Feet.
 *		gain	- dBi.
 *
 * 		course	- Degrees, 0 - 360 (360 equiv. to 0).
 *			  Use Unknown for none or unknown.
 *		speed	- knots.
 *
 * Description:	The cst field can have only one of
 *
 *		course/speed	- takes priority (this implementation)
 *		radio range	- calculated from PHG
 *		altitude	- not implemented yet.
 *
 *		Some conversion must be performed for course from
 *		the API definition to what is sent over the air.
 *
 *----------------------------------------------------------------*/

func NewCompressedPosition(symtab byte, symbol byte, dlat float64, dlong float64,
	power int, height int, gain int,
	course int, speed int) CompressedPosition {

	var p CompressedPosition

	if symtab != '/' && symtab != '\\' && !unicode.IsDigit(rune(symtab)) && !unicode.IsUpper(rune(symtab)) {
		report("Symbol table identifier is not one of / \\ 0-9 A-Z")
	}

	/*
	 * In compressed format, the characters a-j are used for a numeric overlay.
	 * This allows the receiver to distinguish between compressed and normal formats.
	 */
	if unicode.IsDigit(rune(symtab)) {
		symtab = symtab - '0' + 'a'
	}
	p.SymTableID = symtab

	copy(p.Y[:], LatitudeToCompressed(dlat))
	copy(p.X[:], LongitudeToCompressed(dlong))

	if symbol < '!' || symbol > '~' {
		report("Symbol code is not in range of ! to ~")
	}
	p.SymbolCode = symbol

	/*
	 * The cst field is complicated.
	 *
	 * When c is ' ', the cst field is not used.
	 *
	 * When the t byte has a certain pattern, c & s represent altitude.
	 *
	 * Otherwise, c & s can be either course/speed or radio range.
	 *
	 * When c is in range of '!' to 'z',
	 *
	 * 	('!' - 33) * 4 = 0 degrees.
	 *	...
	 *	('z' - 33) * 4 = 356 degrees.
	 *
	 * In this case, s represents speed ...
	 *
	 * When c is '{', s is range ...
	 */

	if speed > 0 {
		var c int

		if course != Unknown {
			c = (course + 2) / 4
			if c < 0 {
				c += 90
			}
			if c >= 90 {
				c -= 90
			}
		}
		p.C = byte(c + '!')

		var s = math.Round(math.Log(float64(speed)+1.0) / math.Log(1.08))
		p.S = byte(s + '!')

		p.T = 0x26 + '!' /* current, other tracker. */
	} else if power > 0 || height > 0 || gain > 0 {
		p.C = '{' /* radio range. */

		if power == 0 {
			power = 10
		}
		if height == 0 {
			height = 20
		}
		if gain == 0 {
			gain = 3
		}

		// from protocol reference page 29.
		var rng = math.Sqrt(2.0 * float64(height) * math.Sqrt((float64(power)/10.0)*(float64(gain)/2.0)))

		var s = math.Round(math.Log(rng/2.) / math.Log(1.08))
		if s < 0 {
			s = 0
		}
		if s > 93 {
			s = 93
		}

		p.S = byte(s + '!')

		p.T = 0x26 + '!' /* current, other tracker. */
	} else {
		p.C = ' ' /* cst field not used. */
		p.S = ' '
		p.T = '!' /* avoid space. */
	}

	return p
}

/*------------------------------------------------------------------
 *
 * Name:        phgDataExtension
 *
 * Purpose:     Fill in parts of the power/height/gain data extension.
 *
 * Inputs: 	power	- Watts.
 *		height	- Feet.
 *		gain	- dB.  Protocol spec doesn't mention whether it is dBi or dBd.
 *				This says dBi:
 *				http://www.tapr.org/pipermail/aprssig/2008-September/027034.html
 *
 *		dir	- Directivity: N, NE, etc., omni.
 *
 *----------------------------------------------------------------*/

func phgDataExtension(power int, height int, gain int, dir string) string {

	var p = math.Round(math.Sqrt(float64(power))) + '0'
	if p < '0' {
		p = '0'
	} else if p > '9' {
		p = '9'
	}

	var h = math.Round(math.Log2(float64(height)/10.0)) + '0'
	if h < '0' {
		h = '0'
	}
	/* Result can go beyond '9'. */

	var g = float64(gain + '0')
	if g < '0' {
		g = '0'
	} else if g > '9' {
		g = '9'
	}

	var d = '0'
	switch strings.ToUpper(dir) {
	case "NE":
		d = '1'
	case "E":
		d = '2'
	case "SE":
		d = '3'
	case "S":
		d = '4'
	case "SW":
		d = '5'
	case "W":
		d = '6'
	case "NW":
		d = '7'
	case "N":
		d = '8'
	}

	return fmt.Sprintf("PHG%c%c%c%c", byte(p), byte(h), byte(g), d)
}

/*------------------------------------------------------------------
 *
 * Name:        courseSpeedDataExtension
 *
 * Purpose:     Fill in parts of the course & speed data extension.
 *
 * Inputs: 	course	- Degrees, 0 - 360 (360 equiv. to 0).
 *			  Use Unknown for none or unknown.
 *
 *		speed	- knots.
 *
 * Description: Over the air we use:
 *			0 	for unknown or not relevant.
 *			1 - 360	for valid course.  (360 for north)
 *
 *----------------------------------------------------------------*/

func courseSpeedDataExtension(course int, speed int) string {

	var cse int
	if course != Unknown {
		cse = course
		for cse < 1 {
			cse += 360
		}
		for cse > 360 {
			cse -= 360
		}
		/* Should now be in range of 1 - 360. */
		/* Original value of 0 for north is transmitted as 360. */
	}

	var spd = speed
	if spd < 0 {
		spd = 0 // would include Unknown
	}
	if spd > 999 {
		spd = 999
	}

	return fmt.Sprintf("%03d/%03d", cse, spd)
}

/*------------------------------------------------------------------
 *
 * Name:        frequencySpec
 *
 * Purpose:     Put frequency specification in beginning of comment field.
 *
 * Inputs: 	freq	- MHz.
 *		tone	- Hz.
 *		offset	- MHz.
 *
 * Description:	There are several valid variations.
 *
 *		The frequency could be missing here if it is in the
 *		object name.  In this case we could have tone & offset.
 *
 *		Offset must always be preceded by tone.
 *
 *		Resulting formats are all fixed width and have a trailing space:
 *
 *			"999.999MHz "
 *			"T999 "
 *			"+999 "			(10 kHz units)
 *
 * Reference:	http://www.aprs.org/info/freqspec.txt
 *
 *----------------------------------------------------------------*/

func frequencySpec(freq float64, tone float64, offset float64) string {
	var result string

	if freq > 0 {
		/* TODO: Should use letters for > 999.999. */
		/* For now, just be sure we have proper field width. */

		if freq > 999.999 {
			freq = 999.999
		}

		result += fmt.Sprintf("%07.3fMHz ", freq)
	}

	if tone != Unknown {
		if tone == 0 {
			result += "Toff "
		} else {
			result += fmt.Sprintf("T%03d ", int(tone))
		}
	}

	if offset != Unknown {
		result += fmt.Sprintf("%+04d ", int(math.Round(offset*100)))
	}

	return result
}

/*------------------------------------------------------------------
 *
 * Name:        EncodePosition
 *
 * Purpose:     Construct info part for position report format.
 *
 * Inputs:      messaging - This determines whether the data type indicator
 *			   is set to '!' (false) or '=' (true).
 *		compressed - Send in compressed form?
 *		lat	- Latitude.
 *		lon	- Longitude.
 *		ambiguity - Number of digits to omit from location.
 *		altFt	- Altitude in feet.  Use Unknown for none.
 *		symtab	- Symbol table id or overlay.
 *		symbol	- Symbol id.
 *
 * 	 	power	- Watts.
 *		height	- Feet.
 *		gain	- dB.  Not clear if it is dBi or dBd.
 *		dir	- Directivity: N, NE, etc., omni.
 *
 *		course	- Degrees, 0 - 360 (360 equiv. to 0).
 *			  Use Unknown for none or unknown.
 *		speed	- knots.
 *
 * 	 	freq	- MHz.
 *		tone	- Hz.
 *		offset	- MHz.
 *
 *		comment	- Additional comment text.
 *
 * Description:	There can be a single optional "data extension"
 *		following the position so there is a choice
 *		between:
 *			Power/height/gain/directivity or
 *			Course/speed.
 *
 *----------------------------------------------------------------*/

func EncodePosition(messaging bool, compressed bool, lat float64, lon float64, ambiguity int, altFt int,
	symtab byte, symbol byte,
	power int, height int, gain int, dir string,
	course int, speed int,
	freq float64, tone float64, offset float64,
	comment string) string {

	var dti = "!"
	if messaging {
		dti = "="
	}

	var result string

	if compressed {
		var c = NewCompressedPosition(symtab, symbol, lat, lon,
			power, height, gain,
			course, speed)

		result = dti + c.String()

		/* No data extension allowed for compressed location. */
	} else {
		var p = NewPosition(symtab, symbol, lat, lon, ambiguity)
		result = dti + p.String()

		/* Optional data extension. (singular) */
		/* Can't have both course/speed and PHG.  Former gets priority. */

		if course != Unknown || speed > 0 {
			result += courseSpeedDataExtension(course, speed)
		} else if power > 0 || height > 0 || gain > 0 {
			result += phgDataExtension(power, height, gain, dir)
		}
	}

	/* Optional frequency spec. */

	if freq != 0 || tone != 0 || offset != 0 {
		result += frequencySpec(freq, tone, offset)
	}

	/* Altitude.  Can be anywhere in comment. */
	// Officially, altitude must be six digits.
	// Most modern applications recognize the form /A=-12345 with
	// minus and five digits for all the places on the earth's
	// surface that are below sea level.

	if altFt != Unknown {
		if altFt < -99999 {
			altFt = -99999
		}
		if altFt > 999999 {
			altFt = 999999
		}
		result += fmt.Sprintf("/A=%06d", altFt) // /A=123456 or /A=-12345
	}

	/* Finally, comment text. */

	result += comment

	return result
}

/*------------------------------------------------------------------
 *
 * Name:        EncodeObject
 *
 * Purpose:     Construct info part for object report format.
 *
 * Inputs:      name	- Name, up to 9 characters.
 *		compressed - Send in compressed form?
 *		when	- Time stamp or zero value for none.
 *		lat	- Latitude.
 *		lon	- Longitude.
 *		ambiguity - Number of digits to omit from location.
 *		symtab	- Symbol table id or overlay.
 *		symbol	- Symbol id.
 *
 * 	 	power	- Watts.
 *		height	- Feet.
 *		gain	- dB.  Not clear if it is dBi or dBd.
 *		dir	- Direction: N, NE, etc., omni.
 *
 *		course	- Degrees, 0 - 360 (360 equiv. to 0).
 *			  Use Unknown for none or unknown.
 *		speed	- knots.
 *
 * 	 	freq	- MHz.
 *		tone	- Hz.
 *		offset	- MHz.
 *
 *		comment	- Additional comment text.
 *
 *----------------------------------------------------------------*/

func EncodeObject(name string, compressed bool, when time.Time, lat float64, lon float64, ambiguity int,
	symtab byte, symbol byte,
	power int, height int, gain int, dir string,
	course int, speed int,
	freq float64, tone float64, offset float64, comment string) string {

	var timestamp string
	if !when.IsZero() {
		timestamp = when.UTC().Format("021504z")
	} else {
		timestamp = "111111z" /* Permanent object. */
	}

	var result = fmt.Sprintf(";%-9.9s*%-7.7s", name, timestamp)

	if compressed {
		var c = NewCompressedPosition(symtab, symbol, lat, lon,
			power, height, gain,
			course, speed)
		result += c.String()
	} else {
		var p = NewPosition(symtab, symbol, lat, lon, ambiguity)
		result += p.String()

		/* Optional data extension. (singular) */
		/* Can't have both course/speed and PHG.  Former gets priority. */

		if course != Unknown || speed > 0 {
			result += courseSpeedDataExtension(course, speed)
		} else if power > 0 || height > 0 || gain > 0 {
			result += phgDataExtension(power, height, gain, dir)
		}
	}

	/* Optional frequency spec. */

	if freq != 0 || tone != 0 || offset != 0 {
		result += frequencySpec(freq, tone, offset)
	}

	/* Finally, comment text. */

	result += comment

	return result
}

/*------------------------------------------------------------------
 *
 * Name:        EncodeMessage
 *
 * Purpose:     Construct info part for APRS "message" format.
 *
 * Inputs:      addressee	- Addressed to, up to 9 characters.
 *		text		- Text part of the message.
 *		id		- Identifier, 0 to 5 characters.
 *
 *----------------------------------------------------------------*/

func EncodeMessage(addressee string, text string, id string) string {
	var result = fmt.Sprintf(":%-9.9s:%s", addressee, text)

	if len(id) > 0 {
		result += "{" + id
	}

	return result
}
