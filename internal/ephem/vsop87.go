package ephem

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/nutation"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// VSOP87Provider computes Saturn's geometry from the full VSOP87
// planetary theory, good to a fraction of an arcsecond over several
// millennia. It needs the VSOP87 data files on disk.
type VSOP87Provider struct {
	earth  *pp.V87Planet
	saturn *pp.V87Planet
}

// NewVSOP87 loads the Earth and Saturn series from dir. An empty dir
// falls back to the VSOP87 environment variable.
func NewVSOP87(dir string) (*VSOP87Provider, error) {
	load := func(ibody int) (*pp.V87Planet, error) {
		if dir != "" {
			return pp.LoadPlanetPath(ibody, dir)
		}
		return pp.LoadPlanet(ibody)
	}
	earth, err := load(pp.Earth)
	if err != nil {
		return nil, fmt.Errorf("vsop87: %w", err)
	}
	saturn, err := load(pp.Saturn)
	if err != nil {
		return nil, fmt.Errorf("vsop87: %w", err)
	}
	return &VSOP87Provider{earth: earth, saturn: saturn}, nil
}

// Name returns the provider name.
func (p *VSOP87Provider) Name() string { return "vsop87" }

// Available reports whether the series are loaded.
func (p *VSOP87Provider) Available() bool { return p.earth != nil && p.saturn != nil }

// Geometry returns Saturn's apparent of-date geometry from the full
// theory: geometric position with light-time iteration, FK5 frame
// correction, annual aberration, and nutation in longitude.
func (p *VSOP87Provider) Geometry(jde float64) (Geometry, error) {
	if !p.Available() {
		return Geometry{}, fmt.Errorf("vsop87: series not loaded")
	}
	l0, b0, r0 := p.earth.Position(jde)
	x0, y0, z0 := rectangular(l0, b0, r0)

	var lam, bet unit.Angle
	var delta float64
	tau := 0.0
	for n := 0; n < 3; n++ {
		l, b, r := p.saturn.Position(jde - tau)
		x, y, z := rectangular(l, b, r)
		dx, dy, dz := x-x0, y-y0, z-z0
		delta = math.Sqrt(dx*dx + dy*dy + dz*dz)
		lam = unit.Angle(math.Atan2(dy, dx))
		bet = unit.Angle(math.Asin(dz / delta))
		tau = base.LightTime(delta)
	}

	lam, bet = pp.ToFK5(lam, bet, jde)
	dlam, dbet := eclAberration(lam, bet, jde)
	dpsi, _ := nutation.Nutation(jde)
	lam = (lam + dlam + dpsi).Mod1()
	bet += dbet
	return Geometry{
		LonDeg:  lam.Deg(),
		LatDeg:  bet.Deg(),
		DeltaAU: delta,
	}, nil
}

// rectangular converts heliocentric spherical coordinates to
// rectangular, same frame.
func rectangular(l, b unit.Angle, r float64) (x, y, z float64) {
	sl, cl := l.Sincos()
	sb, cb := b.Sincos()
	return r * cb * cl, r * cb * sl, r * sb
}

// eclAberration returns annual aberration in ecliptic coordinates
// using the Sun's true longitude.
func eclAberration(lam, bet unit.Angle, jde float64) (unit.Angle, unit.Angle) {
	const kappa = 20.49552 / 3600 * math.Pi / 180
	T := base.J2000Century(jde)
	e := 0.016708634 - T*(0.000042037+0.0000001267*T)
	piSun := degToRad(102.93735 + T*(1.71946+0.00046*T))
	s, _ := solar.True(T)
	sun := s.Rad()
	l, b := lam.Rad(), bet.Rad()
	dl := (-kappa*math.Cos(sun-l) + e*kappa*math.Cos(piSun-l)) / math.Cos(b)
	db := -kappa * math.Sin(b) * (math.Sin(sun-l) - e*math.Sin(piSun-l))
	return unit.Angle(dl), unit.Angle(db)
}
