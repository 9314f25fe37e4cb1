package moons

import "math"

// rotate carries a ring-plane vector into the Earth-facing apparent
// frame through four fixed rotations, then swings the result by the
// angle prev. It also returns the auxiliary angle D of the unswung
// vector, which is how the reference orientation below is probed.
func (c *Context) rotate(x, y, z, prev float64) (X, Y, Z, D float64) {
	// Ring plane to the 1950.0 ecliptic: tilt by the ring inclination,
	// then turn by the ring node.
	y1 := c.c1*y - c.s1*z
	z1 := c.s1*y + c.c1*z
	x2 := c.c2*x - c.s2*y1
	y2 := c.s2*x + c.c2*y1

	// Ecliptic to the line of sight: turn by Saturn's apparent
	// longitude, then tilt by its apparent latitude.
	sl, cl := math.Sincos(c.lam0)
	sb, cb := math.Sincos(c.bet0)
	x3 := x2*sl - y2*cl
	y3 := x2*cl + y2*sl
	x4 := x3
	y4 := y3*cb + z1*sb
	z4 := z1*cb - y3*sb

	D = math.Atan2(x4, z4)
	X = x4*math.Cos(prev) - z4*math.Sin(prev)
	Y = x4*math.Sin(prev) + z4*math.Cos(prev)
	Z = y4
	return X, Y, Z, D
}

// referenceAngle probes the frame rotation with the ring pole (0,0,1)
// and no prior swing. The returned angle orients the apparent X axis
// along the ring; every satellite vector at this epoch is swung by it.
func (c *Context) referenceAngle() float64 {
	_, _, _, d := c.rotate(0, 0, 1, 0)
	return d
}

// Pole returns the unit normal of the ring plane in the apparent
// frame. Its X component vanishes by construction of the reference
// swing, so the magnitude of Z is the sine of the ring opening and
// its sign tells which face of the rings is presented to Earth.
func (c *Context) Pole() XYZ {
	X, Y, Z, _ := c.rotate(0, 0, 1, c.refD)
	return XYZ{X: X, Y: Y, Z: Z}
}
