// Package moons computes apparent positions of the eight classical
// satellites of Saturn as seen from Earth.
//
// The theory is the closed-form perturbation series published by Meeus
// (Astronomical Algorithms, chapter "Satellites of Saturn", after
// Dourneau): per-moon orbital element series referred to Saturn's ring
// plane, a shared elliptical-orbit finalizer, and a four-stage frame
// rotation into the Earth-facing apparent frame. Results are X/Y/Z
// offsets from the center of Saturn's disk in units of Saturn's
// equatorial radius: X positive west, Y positive north, Z positive when
// the moon is farther from Earth than Saturn.
//
// The evaluator is pure math. Saturn's own geocentric geometry (apparent
// ecliptic longitude and latitude precessed to the 1950.0 reference
// equinox, and the Earth-Saturn distance) is supplied by the caller; see
// internal/ephem for providers.
package moons

import (
	"fmt"
	"strings"
)

// Moon identifies one of the eight classical satellites, ordered
// outward from Saturn.
type Moon int

const (
	Mimas Moon = iota
	Enceladus
	Tethys
	Dione
	Rhea
	Titan
	Hyperion
	Iapetus
)

// Count is the number of satellites covered by the theory.
const Count = 8

// All returns the moons in order of increasing distance from Saturn.
func All() []Moon {
	return []Moon{Mimas, Enceladus, Tethys, Dione, Rhea, Titan, Hyperion, Iapetus}
}

// String returns the moon's name.
func (m Moon) String() string {
	switch m {
	case Mimas:
		return "Mimas"
	case Enceladus:
		return "Enceladus"
	case Tethys:
		return "Tethys"
	case Dione:
		return "Dione"
	case Rhea:
		return "Rhea"
	case Titan:
		return "Titan"
	case Hyperion:
		return "Hyperion"
	case Iapetus:
		return "Iapetus"
	default:
		return fmt.Sprintf("Moon(%d)", int(m))
	}
}

// Parse resolves a case-insensitive moon name.
func Parse(s string) (Moon, error) {
	for _, m := range All() {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown moon %q", s)
}

// lightTimeK is the per-moon divisor of the differential light-time
// correction: the X displacement per radius of line-of-sight offset.
var lightTimeK = [Count]float64{
	20947, // Mimas
	23715, // Enceladus
	26382, // Tethys
	29876, // Dione
	35313, // Rhea
	53800, // Titan
	59222, // Hyperion
	91820, // Iapetus
}

// periodDays holds the sidereal orbital periods in days. The evaluator
// itself never uses these; they size sampling steps for event scans and
// the UI.
var periodDays = [Count]float64{
	0.9424218,
	1.3702505,
	1.8878026,
	2.7369158,
	4.5175054,
	15.9454484,
	21.2766088,
	79.3301825,
}

// orbitRadii holds approximate mean orbit radii in Saturn equatorial
// radii, for display scaling. The true instantaneous radius comes from
// the element series.
var orbitRadii = [Count]float64{
	3.07,
	3.94,
	4.88,
	6.26,
	8.74,
	20.25,
	24.55,
	59.02,
}

// PeriodDays returns the moon's sidereal orbital period in days.
func (m Moon) PeriodDays() float64 { return periodDays[m] }

// OrbitRadii returns the approximate mean orbit radius in Saturn
// equatorial radii.
func (m Moon) OrbitRadii() float64 { return orbitRadii[m] }
