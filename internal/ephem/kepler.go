package ephem

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-saturn/internal/astro"
)

// meanElements holds mean ecliptic J2000 orbital elements and their
// per-Julian-century rates, from the JPL "Keplerian Elements for
// Approximate Positions of the Major Planets" 1800-2050 fit.
type meanElements struct {
	A, E, I, L, Varpi, Node     float64 // AU, -, deg, deg, deg, deg at J2000.0
	DA, DE, DI, DL, DVarpi, DNode float64 // per Julian century
}

var (
	earthElements = meanElements{
		A: 1.00000261, E: 0.01671123, I: -0.00001531,
		L: 100.46457166, Varpi: 102.93768193, Node: 0.0,
		DA: 0.00000562, DE: -0.00004392, DI: -0.01294668,
		DL: 35999.37244981, DVarpi: 0.32327364, DNode: 0.0,
	}
	saturnElements = meanElements{
		A: 9.53667594, E: 0.05386179, I: 2.48599187,
		L: 49.95424423, Varpi: 92.59887831, Node: 113.66242448,
		DA: -0.00125060, DE: -0.00050991, DI: 0.00193609,
		DL: 1222.49362201, DVarpi: -0.41897216, DNode: -0.28867794,
	}
)

// KeplerProvider computes Saturn's geometry from mean orbital elements.
// It needs no data files. Accuracy is about an arcminute inside
// 1800-2050, which displaces the satellites by far less than the
// precision of their theory; outside that span the elements degrade
// gracefully rather than failing.
type KeplerProvider struct{}

// NewKepler returns the built-in Keplerian provider.
func NewKepler() *KeplerProvider { return &KeplerProvider{} }

// Name returns the provider name.
func (p *KeplerProvider) Name() string { return "kepler" }

// Available always reports true: the provider is self-contained.
func (p *KeplerProvider) Available() bool { return true }

// Geometry returns Saturn's apparent of-date geometry: the geometric
// position corrected for light time and annual aberration, precessed
// from the J2000 frame of the elements to the equinox of date, with
// nutation in longitude applied last.
func (p *KeplerProvider) Geometry(jde float64) (Geometry, error) {
	lam, bet, delta := geocentricSaturn(jde)
	// Aberration depends on equinox differences only, so it can be
	// evaluated in the J2000 frame before the reduction to date.
	dlam, dbet := aberration(lam, bet, jde)
	lon, lat := astro.PrecessEcliptic(
		unit.Angle(lam+dlam), unit.Angle(bet+dbet), base.J2000, jde)
	return Geometry{
		LonDeg:  wrapDeg(radToDeg(lon.Rad() + nutationLon(jde))),
		LatDeg:  radToDeg(lat.Rad()),
		DeltaAU: delta,
	}, nil
}

// helioPosition returns a body's heliocentric ecliptic J2000
// rectangular position in AU at the given epoch.
func helioPosition(el meanElements, jde float64) (x, y, z float64) {
	T := base.J2000Century(jde)
	a := el.A + el.DA*T
	e := el.E + el.DE*T
	i := degToRad(el.I + el.DI*T)
	L := degToRad(el.L + el.DL*T)
	varpi := degToRad(el.Varpi + el.DVarpi*T)
	node := degToRad(el.Node + el.DNode*T)
	M := L - varpi
	w := varpi - node

	// Kepler's equation by Newton's method.
	E := M + e*math.Sin(M)
	for n := 0; n < 8; n++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-14 {
			break
		}
	}

	// Perifocal position, then rotate through argument of perihelion,
	// inclination, and node.
	xp := a * (math.Cos(E) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(E)
	cw, sw := math.Cos(w), math.Sin(w)
	cn, sn := math.Cos(node), math.Sin(node)
	ci, si := math.Cos(i), math.Sin(i)
	x = (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp
	y = (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp
	z = (sw*si)*xp + (cw*si)*yp
	return x, y, z
}

// geocentricSaturn returns Saturn's geometric geocentric ecliptic
// longitude, latitude (radians) and distance (AU) in the J2000 frame
// of the mean elements, with the planet antedated by the light time.
func geocentricSaturn(jde float64) (lam, bet, delta float64) {
	ex, ey, ez := helioPosition(earthElements, jde)
	var gx, gy, gz float64
	tau := 0.0
	for n := 0; n < 3; n++ {
		sx, sy, sz := helioPosition(saturnElements, jde-tau)
		gx, gy, gz = sx-ex, sy-ey, sz-ez
		delta = math.Sqrt(gx*gx + gy*gy + gz*gz)
		tau = base.LightTime(delta)
	}
	lam = math.Mod(math.Atan2(gy, gx)+2*math.Pi, 2*math.Pi)
	bet = math.Asin(gz / delta)
	return lam, bet, delta
}

// sunTrueLon returns the geocentric true longitude of the Sun in
// radians: the direction opposite Earth's heliocentric position.
func sunTrueLon(jde float64) float64 {
	ex, ey, _ := helioPosition(earthElements, jde)
	return math.Mod(math.Atan2(ey, ex)+math.Pi, 2*math.Pi)
}

// aberration returns annual aberration in ecliptic longitude and
// latitude, radians.
func aberration(lam, bet, jde float64) (dlam, dbet float64) {
	const kappa = 20.49552 / 3600 * math.Pi / 180
	T := base.J2000Century(jde)
	e := 0.016708634 - 0.000042037*T
	piSun := degToRad(102.93735 + 1.71946*T)
	sun := sunTrueLon(jde)
	dlam = (-kappa*math.Cos(sun-lam) + e*kappa*math.Cos(piSun-lam)) / math.Cos(bet)
	dbet = -kappa * math.Sin(bet) * (math.Sin(sun-lam) - e*math.Sin(piSun-lam))
	return dlam, dbet
}

// nutationLon returns nutation in longitude in radians, from the four
// largest terms of the 1980 theory. The omitted terms stay under an
// arcsecond, matching the provider's overall accuracy class.
func nutationLon(jde float64) float64 {
	T := base.J2000Century(jde)
	om := degToRad(125.04452 - 1934.136261*T)
	ls := degToRad(280.4665 + 36000.7698*T)
	lm := degToRad(218.3165 + 481267.8813*T)
	dpsi := -17.20*math.Sin(om) - 1.32*math.Sin(2*ls) -
		0.23*math.Sin(2*lm) + 0.21*math.Sin(2*om)
	return dpsi / 3600 * math.Pi / 180
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }

func radToDeg(r float64) float64 { return r * 180 / math.Pi }

func wrapDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
