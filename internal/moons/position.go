package moons

import "math"

// saturnRadiiPerAU converts line-of-sight offsets in Saturn equatorial
// radii to AU, at the precision of the theory.
const saturnRadiiPerAU = 2475

// XYZ is the apparent position of a satellite relative to the center of
// Saturn's disk, in units of Saturn's equatorial radius. X runs along
// the projected ring plane, positive toward the west; Y is
// perpendicular to it, positive toward the north; Z is positive when
// the satellite is farther from Earth than Saturn.
type XYZ struct {
	X, Y, Z float64
}

// Rho returns the apparent distance from the center of Saturn's disk.
func (p XYZ) Rho() float64 { return math.Hypot(p.X, p.Y) }

// Position computes the apparent position of m at the Context epoch.
func (c *Context) Position(m Moon) XYZ {
	return c.assemble(m, c.Elements(m))
}

// Positions evaluates all eight satellites at the Context epoch, in
// order of increasing distance from Saturn.
func (c *Context) Positions() [Count]XYZ {
	var out [Count]XYZ
	for _, m := range All() {
		out[m] = c.assemble(m, c.Elements(m))
	}
	return out
}

// assemble turns ring-plane elements into the apparent position: the
// polar elements become a rectangular vector on the orbit, the vector
// is rotated into the Earth-facing frame, and two small corrections
// are applied in that frame.
func (c *Context) assemble(m Moon, el Elements) XYZ {
	u := el.Lambda - el.Omega
	w := el.Omega - rad(ringNodeDeg)
	su, cu := math.Sincos(u)
	sw, cw := math.Sincos(w)
	sg, cg := math.Sincos(el.Gamma)
	x := el.R * (cu*cw - su*cg*sw)
	y := el.R * (su*cw*cg + cu*sw)
	z := el.R * su * sg

	X, Y, Z, _ := c.rotate(x, y, z, c.refD)

	// Differential light time: the light path of a satellite off the
	// Saturn plane differs from Saturn's, displacing it along X.
	X += math.Abs(Z) * math.Sqrt(1-(X/el.R)*(X/el.R)) / lightTimeK[m]

	// Perspective: project onto the plane through Saturn's center.
	W := c.delta / (c.delta + Z/saturnRadiiPerAU)
	return XYZ{X: X * W, Y: Y * W, Z: Z}
}

func wrap360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
