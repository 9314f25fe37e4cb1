package moons

import "math"

// epochOffset is subtracted from the evaluation epoch before any time
// argument is formed, per the theory's definition of its epochs.
const epochOffset = 0.04942

// Context holds everything about one evaluation epoch that is shared by
// all eight satellites: the time arguments, the secular angles, the
// ring-frame orientation, and Saturn's apparent geometry as seen from
// Earth. Build one Context per epoch and evaluate any number of moons
// against it.
type Context struct {
	jde   float64 // evaluation epoch, TD Julian date
	delta float64 // Earth-Saturn distance, AU

	// Time arguments counted from the theory's reference epochs.
	t1, t2, t3, t4, t5, t6, t7, t8, t9, t10, t11 float64

	// Secular angles, radians.
	W0, W1, W2, W3, W4, W5, W6, W7, W8 float64

	// Eccentricity argument of Saturn's orbit.
	e1 float64

	// Sine/cosine of the ring-plane inclination and node on the 1950.0
	// ecliptic.
	s1, c1, s2, c2 float64

	// Saturn's apparent ecliptic longitude and latitude from Earth,
	// radians, referred to the 1950.0 equinox.
	lam0, bet0 float64

	// Reference rotation angle, fixed by probing the frame rotation
	// with the ring pole. See referenceAngle in frame.go.
	refD float64
}

// NewContext prepares the shared arguments for one evaluation epoch.
// lon0 and lat0 are Saturn's apparent geocentric ecliptic longitude and
// latitude in radians, precessed from the equinox of date to the
// equinox of 1950 Jan 1.5 (JD 2433283.0); delta is the Earth-Saturn
// distance in AU. See ephem.Geometry.Saturn1950 for the precession
// step.
func NewContext(jde, lon0, lat0, delta float64) *Context {
	c := &Context{jde: jde, delta: delta, lam0: lon0, bet0: lat0}

	jd := jde - epochOffset
	c.t1 = jd - 2411093
	c.t2 = c.t1 / 365.25
	c.t3 = (jd-2433282.423)/365.25 + 1950
	c.t4 = jd - 2411368
	c.t5 = c.t4 / 365.25
	c.t6 = jd - 2415020
	c.t7 = c.t6 / 36525
	c.t8 = c.t6 / 365.25
	c.t9 = (jd - 2442000.5) / 365.25
	c.t10 = jd - 2409786
	c.t11 = c.t10 / 36525

	c.W0 = rad(5.095 * (c.t3 - 1866.39))
	c.W1 = rad(74.4 + 32.39*c.t2)
	c.W2 = rad(134.3 + 92.62*c.t2)
	c.W3 = rad(42.0 - 0.5118*c.t5)
	c.W4 = rad(276.59 + 0.5118*c.t5)
	c.W5 = rad(267.2635 + 1222.1136*c.t7)
	c.W6 = rad(175.4762 + 1221.5515*c.t7)
	c.W7 = rad(2.4891 + 0.002435*c.t7)
	c.W8 = rad(113.35 - 0.2597*c.t7)

	c.e1 = 0.05589 - 0.000346*c.t7

	c.s1, c.c1 = math.Sincos(rad(ringInclDeg))
	c.s2, c.c2 = math.Sincos(rad(ringNodeDeg))

	c.refD = c.referenceAngle()
	return c
}

// JDE returns the evaluation epoch the Context was built for.
func (c *Context) JDE() float64 { return c.jde }

// Delta returns the Earth-Saturn distance in AU.
func (c *Context) Delta() float64 { return c.delta }

func rad(d float64) float64 { return d * math.Pi / 180 }

func deg(r float64) float64 { return r * 180 / math.Pi }
