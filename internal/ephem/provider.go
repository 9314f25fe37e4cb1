// Package ephem supplies Saturn's geocentric geometry to the satellite
// theory. Three computing providers cover the accuracy/data tradeoff:
// a JPL Development Ephemeris file, the VSOP87 analytic theory, and
// built-in Keplerian mean elements that need no data files. A static
// provider pins the geometry to caller-supplied values.
package ephem

import (
	"fmt"

	"github.com/litescript/ls-saturn/internal/astro"
	"github.com/soniakeys/unit"
)

// Geometry is Saturn's apparent geocentric geometry at one instant:
// of-date apparent ecliptic longitude and latitude (light time,
// aberration and nutation applied), and the Earth-Saturn distance.
type Geometry struct {
	LonDeg  float64 // apparent ecliptic longitude, degrees, equinox of date
	LatDeg  float64 // apparent ecliptic latitude, degrees
	DeltaAU float64 // Earth-Saturn distance, AU
}

// Saturn1950 reduces the of-date geometry to the 1950 Jan 1.5 equinox
// of the satellite theory. Results are radians, ready for
// moons.NewContext.
func (g Geometry) Saturn1950(jde float64) (lon0, lat0 float64) {
	lon, lat := astro.PrecessEcliptic(
		unit.AngleFromDeg(g.LonDeg), unit.AngleFromDeg(g.LatDeg),
		jde, astro.Epoch1950)
	return lon.Rad(), lat.Rad()
}

// SaturnProvider defines the interface for Saturn geometry sources.
type SaturnProvider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Geometry returns Saturn's apparent geometry at a TD Julian date.
	Geometry(jde float64) (Geometry, error)

	// Available reports whether the provider can serve requests.
	Available() bool
}

// Mode represents which geometry source to use.
type Mode int

const (
	ModeAuto   Mode = iota // best available: jpl, then vsop87, then kepler
	ModeJPL                // JPL Development Ephemeris file
	ModeVSOP87             // VSOP87 analytic theory (data files)
	ModeKepler             // built-in Keplerian mean elements
	ModeStatic             // fixed caller-supplied geometry
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeJPL:
		return "jpl"
	case ModeVSOP87:
		return "vsop87"
	case ModeKepler:
		return "kepler"
	case ModeStatic:
		return "static"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode string.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto", "":
		return ModeAuto, nil
	case "jpl":
		return ModeJPL, nil
	case "vsop87":
		return ModeVSOP87, nil
	case "kepler":
		return ModeKepler, nil
	case "static":
		return ModeStatic, nil
	}
	return ModeAuto, fmt.Errorf("unknown provider %q (want auto, jpl, vsop87, kepler or static)", s)
}

// Config carries the data locations and fixed values the providers
// need. Zero values mean "not configured".
type Config struct {
	DEPath    string    // JPL DE ephemeris file for ModeJPL
	VSOP87Dir string    // VSOP87 data directory for ModeVSOP87; empty uses the VSOP87 env var
	Static    *Geometry // fixed geometry for ModeStatic
}

// Select builds the provider for a mode. ModeAuto walks the chain from
// most to least precise and never fails: the Keplerian provider needs
// nothing but the epoch.
func Select(mode Mode, cfg Config) (SaturnProvider, error) {
	switch mode {
	case ModeJPL:
		return NewJPL(cfg.DEPath)
	case ModeVSOP87:
		return NewVSOP87(cfg.VSOP87Dir)
	case ModeKepler:
		return NewKepler(), nil
	case ModeStatic:
		if cfg.Static == nil {
			return nil, fmt.Errorf("static provider needs explicit geometry")
		}
		return NewStatic(*cfg.Static), nil
	case ModeAuto:
		if cfg.DEPath != "" {
			if p, err := NewJPL(cfg.DEPath); err == nil {
				return p, nil
			}
		}
		if p, err := NewVSOP87(cfg.VSOP87Dir); err == nil {
			return p, nil
		}
		return NewKepler(), nil
	}
	return nil, fmt.Errorf("unknown provider mode %d", mode)
}
