// Package astro carries the time-scale and coordinate plumbing shared
// by the ephemeris providers and the reporting layer: Julian date
// conversions, ecliptic precession between equinoxes, and of-date
// equatorial coordinates.
package astro

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
)

// Epoch1950 is the Julian date of 1950 Jan 1.5, the reference equinox
// of the satellite theory.
const Epoch1950 = 2433283.0

// J2000 is the Julian date of the standard epoch J2000.0.
const J2000 = base.J2000

// JD converts a civil time to a Julian date.
func JD(t time.Time) float64 { return julian.TimeToJD(t) }

// JDToTime converts a Julian date back to a civil time.
func JDToTime(jd float64) time.Time { return julian.JDToTime(jd) }

// JulianYear expresses a Julian date as a fractional Julian year.
func JulianYear(jd float64) float64 { return base.JDEToJulianYear(jd) }

// timeLayouts are the accepted civil timestamp layouts, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses a civil timestamp in one of the accepted layouts.
// A timestamp without an explicit zone is read as UTC.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (want RFC3339 or YYYY-MM-DD[ HH:MM[:SS]])", s)
}
