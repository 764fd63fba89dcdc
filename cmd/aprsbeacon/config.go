package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	latlong "github.com/doismellburning/latlong/src"
)

type Config struct {
	Beacons []Beacon `yaml:"beacons"`
}

/*
 * One beacon definition.  A beacon with a name becomes an object
 * report, without one a position report.
 *
 * Numeric fields left out of the file are taken as not specified,
 * so a course of due north must be given as 360.
 */

type Beacon struct {
	Name        string  `yaml:"name"`        /* Object name, up to 9 characters.  Empty for a position report. */
	Lat         float64 `yaml:"lat"`         /* Decimal degrees.  Negative for south. */
	Lon         float64 `yaml:"lon"`         /* Decimal degrees.  Negative for west. */
	Grid        string  `yaml:"grid"`        /* Maidenhead locator, alternative to lat/lon. */
	Symtab      string  `yaml:"symtab"`      /* Symbol table id or overlay. */
	Symbol      string  `yaml:"symbol"`      /* Symbol code. */
	Ambiguity   int     `yaml:"ambiguity"`   /* Hide 1 to 4 low order location digits. */
	Compressed  bool    `yaml:"compressed"`  /* Send in compressed form? */
	Messaging   bool    `yaml:"messaging"`   /* Position reports: messaging capable? */
	Timestamped bool    `yaml:"timestamped"` /* Objects: stamp with the current time instead of permanent. */
	Course      int     `yaml:"course"`      /* Degrees, 1 - 360. */
	Speed       int     `yaml:"speed"`       /* Knots. */
	Power       int     `yaml:"power"`       /* Watts. */
	Height      int     `yaml:"height"`      /* Feet. */
	Gain        int     `yaml:"gain"`        /* dB. */
	Direction   string  `yaml:"direction"`   /* Directivity: N, NE, etc. */
	Altitude    int     `yaml:"altitude"`    /* Feet.  Position reports only. */
	Freq        float64 `yaml:"freq"`        /* MHz. */
	Tone        float64 `yaml:"tone"`        /* Hz. */
	Offset      float64 `yaml:"offset"`      /* MHz. */
	Comment     string  `yaml:"comment"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if len(cfg.Beacons) == 0 {
		return Config{}, fmt.Errorf("beacons is required")
	}

	for i := range cfg.Beacons {
		var beacon = &cfg.Beacons[i]

		if len(beacon.Grid) > 0 {
			var lat, lon, gridErr = latlong.FromGridSquare(beacon.Grid)
			if gridErr != nil {
				return Config{}, fmt.Errorf("beacons[%d]: %w", i, gridErr)
			}

			beacon.Lat = lat
			beacon.Lon = lon
		} else if beacon.Lat == 0 && beacon.Lon == 0 {
			return Config{}, fmt.Errorf("beacons[%d]: lat/lon or grid is required", i)
		}

		if beacon.Symtab == "" {
			beacon.Symtab = "/"
		}

		if beacon.Symbol == "" {
			beacon.Symbol = "-"
		}

		if len(beacon.Symtab) != 1 {
			return Config{}, fmt.Errorf("beacons[%d]: symtab must be a single character", i)
		}

		if len(beacon.Symbol) != 1 {
			return Config{}, fmt.Errorf("beacons[%d]: symbol must be a single character", i)
		}
	}

	return cfg, nil
}
