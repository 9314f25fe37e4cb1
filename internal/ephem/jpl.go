package ephem

import (
	"fmt"
	"math"
	"sync"

	"github.com/mshafiee/jpleph"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-saturn/internal/astro"
)

// cAUPerDay is the speed of light in AU per day.
const cAUPerDay = 173.144632674

// JPLProvider reads Saturn's geometry from a JPL Development Ephemeris
// file (DE405, DE430, DE440, ...). This is the most precise source;
// the file has to cover the requested epochs.
type JPLProvider struct {
	mu   sync.Mutex // the ephemeris file handle is not safe for concurrent reads
	eph  *jpleph.Ephemeris
	path string
}

// NewJPL opens a DE ephemeris file.
func NewJPL(path string) (*JPLProvider, error) {
	if path == "" {
		return nil, fmt.Errorf("jpl: no ephemeris file configured")
	}
	eph, err := jpleph.NewEphemeris(path, false)
	if err != nil {
		return nil, fmt.Errorf("jpl: open %s: %w", path, err)
	}
	return &JPLProvider{eph: eph, path: path}, nil
}

// Name returns the provider name.
func (p *JPLProvider) Name() string { return "jpl" }

// Available reports whether the ephemeris file is open.
func (p *JPLProvider) Available() bool { return p.eph != nil }

// Close releases the ephemeris file.
func (p *JPLProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.eph == nil {
		return nil
	}
	err := p.eph.Close()
	p.eph = nil
	return err
}

// Geometry returns Saturn's apparent of-date geometry from the binary
// ephemeris: barycentric states, light-time iteration, aberration from
// Earth's velocity, then rotation from the ICRF equator to the
// ecliptic and precession to the equinox of date.
func (p *JPLProvider) Geometry(jde float64) (Geometry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.eph == nil {
		return Geometry{}, fmt.Errorf("jpl: ephemeris closed")
	}

	epos, evel, err := p.eph.CalculatePV(jde, jpleph.Earth, jpleph.CenterSolarSystemBarycenter, true)
	if err != nil {
		return Geometry{}, fmt.Errorf("jpl: earth state: %w", err)
	}

	var dx, dy, dz, delta float64
	tau := 0.0
	for n := 0; n < 3; n++ {
		spos, _, err := p.eph.CalculatePV(jde-tau, jpleph.Saturn, jpleph.CenterSolarSystemBarycenter, false)
		if err != nil {
			return Geometry{}, fmt.Errorf("jpl: saturn state: %w", err)
		}
		dx = spos.X - epos.X
		dy = spos.Y - epos.Y
		dz = spos.Z - epos.Z
		delta = math.Sqrt(dx*dx + dy*dy + dz*dz)
		tau = base.LightTime(delta)
	}

	// Annual aberration: shift the unit direction by Earth's velocity
	// over the light travel time.
	ux := dx/delta + evel.DX/cAUPerDay
	uy := dy/delta + evel.DY/cAUPerDay
	uz := dz/delta + evel.DZ/cAUPerDay
	un := math.Sqrt(ux*ux + uy*uy + uz*uz)

	// ICRF equatorial to ecliptic J2000.
	ey := uy*base.COblJ2000 + uz*base.SOblJ2000
	ez := -uy*base.SOblJ2000 + uz*base.COblJ2000
	lam2000 := unit.Angle(math.Atan2(ey, ux))
	bet2000 := unit.Angle(math.Asin(ez / un))

	// Equinox of date, then nutation in longitude.
	lon, lat := astro.PrecessEcliptic(lam2000, bet2000, astro.J2000, jde)
	dpsi, _ := nutation.Nutation(jde)
	lon = (lon + dpsi).Mod1()

	return Geometry{
		LonDeg:  lon.Deg(),
		LatDeg:  lat.Deg(),
		DeltaAU: delta,
	}, nil
}
