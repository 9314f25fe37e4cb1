package moons

import "math"

// Inclination and ascending node of Saturn's ring plane on the ecliptic
// of 1950.0, degrees.
const (
	ringInclDeg = 28.0817
	ringNodeDeg = 168.8112
)

// solveOrbit turns the osculating elements of an outer satellite into
// ring-plane polar elements. The equation of center is expanded to the
// fifth order in the eccentricity; the orbit plane is then rotated onto
// the ring plane, shifting the node and longitude accordingly.
//
// e, i, Om, lam1 and p are the osculating eccentricity, inclination,
// node, mean longitude and pericenter longitude (angles in radians,
// referred to the 1950.0 ecliptic); a is the semimajor axis in Saturn
// equatorial radii.
func (c *Context) solveOrbit(e, a, Om, i, lam1, p float64) Elements {
	M := lam1 - p
	C := e * ((2-e*e*(0.25-0.0520833333*e*e))*math.Sin(M) +
		e*((1.25-0.458333333*e*e)*math.Sin(2*M)+
			e*((1.083333333-0.671875*e*e)*math.Sin(3*M)+
				e*(1.072917*math.Sin(4*M)+e*1.142708*math.Sin(5*M)))))
	r := a * (1 - e*e) / (1 + e*math.Cos(M+C))

	// Rotate the orbit plane onto the ring plane.
	g := Om - rad(ringNodeDeg)
	a1 := math.Sin(i) * math.Sin(g)
	a2 := c.c1*math.Sin(i)*math.Cos(g) - c.s1*math.Cos(i)
	gam := math.Asin(math.Hypot(a1, a2))
	u := math.Atan2(a1, a2)
	w := rad(ringNodeDeg) + u
	h := c.c1*math.Sin(i) - c.s1*math.Cos(i)*math.Cos(g)
	phi := math.Atan2(c.s1*math.Sin(g), h)
	return Elements{
		Lambda: lam1 + C + u - g - phi,
		Gamma:  gam,
		Omega:  w,
		R:      r,
	}
}
