package astro

import (
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"
)

// Equatorial converts apparent of-date ecliptic coordinates to right
// ascension and declination against the true equator of date. The
// longitude is taken as already containing the nutation terms; only
// nutation in obliquity is applied here.
func Equatorial(lon, lat unit.Angle, jde float64) (unit.RA, unit.Angle) {
	_, dE := nutation.Nutation(jde)
	obl := coord.NewObliquity(nutation.MeanObliquity(jde) + dE)
	eq := new(coord.Equatorial).EclToEq(&coord.Ecliptic{Lon: lon, Lat: lat}, obl)
	return eq.RA, eq.Dec
}
