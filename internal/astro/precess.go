package astro

import (
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/precess"
	"github.com/soniakeys/unit"
)

// PrecessEcliptic reduces ecliptic coordinates from the equinox of one
// epoch to the equinox of another. Both epochs are Julian dates; the
// returned longitude is wrapped to [0, 2π).
func PrecessEcliptic(lon, lat unit.Angle, fromJD, toJD float64) (unit.Angle, unit.Angle) {
	p := precess.NewEclipticPrecessor(base.JDEToJulianYear(fromJD), base.JDEToJulianYear(toJD))
	var to coord.Ecliptic
	p.Precess(&coord.Ecliptic{Lon: lon, Lat: lat}, &to)
	return to.Lon.Mod1(), to.Lat
}
