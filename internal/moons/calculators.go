package moons

import "math"

// Elements are the instantaneous polar orbital elements of a satellite
// referred to Saturn's ring plane: mean longitude plus equation of
// center Lambda, inclination Gamma, ascending node Omega (all radians,
// unnormalized), and radius vector R in Saturn equatorial radii.
type Elements struct {
	Lambda float64
	Gamma  float64
	Omega  float64
	R      float64
}

// LambdaDeg returns Lambda in degrees on [0,360).
func (e Elements) LambdaDeg() float64 { return wrap360(deg(e.Lambda)) }

// GammaDeg returns Gamma in degrees.
func (e Elements) GammaDeg() float64 { return deg(e.Gamma) }

// OmegaDeg returns Omega in degrees on [0,360).
func (e Elements) OmegaDeg() float64 { return wrap360(deg(e.Omega)) }

// Elements evaluates the ring-plane orbital elements of m at the
// Context epoch. The four inner satellites carry explicit element
// series; the four outer ones build osculating elements first and pass
// them through solveOrbit.
func (c *Context) Elements(m Moon) Elements {
	switch m {
	case Mimas:
		return c.mimas()
	case Enceladus:
		return c.enceladus()
	case Tethys:
		return c.tethys()
	case Dione:
		return c.dione()
	case Rhea:
		return c.rhea()
	case Titan:
		return c.titan()
	case Hyperion:
		return c.hyperion()
	case Iapetus:
		return c.iapetus()
	}
	return Elements{}
}

// The inner four satellites have near-circular, near-equatorial orbits:
// a mean longitude series, a short equation of center, a fixed
// inclination, and a regressing node.

func (c *Context) mimas() Elements {
	L := rad(127.64 + 381.994497*c.t1 - 43.57*math.Sin(c.W0) -
		0.72*math.Sin(3*c.W0) - 0.02144*math.Sin(5*c.W0))
	p := rad(106.1 + 365.549*c.t2)
	M := L - p
	C := rad(2.18287*math.Sin(M) + 0.025988*math.Sin(2*M) + 0.00043*math.Sin(3*M))
	return Elements{
		Lambda: L + C,
		Gamma:  rad(1.563),
		Omega:  rad(54.5 - 365.072*c.t2),
		R:      3.06879 / (1 + 0.01905*math.Cos(M+C)),
	}
}

func (c *Context) enceladus() Elements {
	L := rad(200.317 + 262.7319002*c.t1 + 0.25667*math.Sin(c.W1) +
		0.20883*math.Sin(c.W2))
	p := rad(309.107 + 123.44121*c.t2)
	M := L - p
	C := rad(0.55577*math.Sin(M) + 0.00168*math.Sin(2*M))
	return Elements{
		Lambda: L + C,
		Gamma:  rad(0.0262),
		Omega:  rad(348.0 - 151.95*c.t2),
		R:      3.94118 / (1 + 0.00485*math.Cos(M+C)),
	}
}

// tethys has no sensible eccentricity; its radius vector is constant.
func (c *Context) tethys() Elements {
	return Elements{
		Lambda: rad(285.306 + 190.69791226*c.t1 + 2.063*math.Sin(c.W0) +
			0.03409*math.Sin(3*c.W0) + 0.001015*math.Sin(5*c.W0)),
		Gamma: rad(1.0976),
		Omega: rad(111.33 - 72.2441*c.t2),
		R:     4.880998,
	}
}

func (c *Context) dione() Elements {
	L := rad(254.712 + 131.53493193*c.t1 - 0.0215*math.Sin(c.W1) -
		0.01733*math.Sin(c.W2))
	p := rad(174.8 + 30.82*c.t2)
	M := L - p
	C := rad(0.24717*math.Sin(M) + 0.00033*math.Sin(2*M))
	return Elements{
		Lambda: L + C,
		Gamma:  rad(0.0139),
		Omega:  rad(232.0 - 30.27*c.t2),
		R:      6.24871 / (1 + 0.002157*math.Cos(M+C)),
	}
}

// rhea's eccentricity and pericenter oscillate: both come from a small
// vector sum rather than a direct series.
func (c *Context) rhea() Elements {
	p1 := rad(342.7 + 10.057*c.t2)
	a1 := 0.000265*math.Sin(p1) + 0.01*math.Sin(c.W4)
	a2 := 0.000265*math.Cos(p1) + 0.01*math.Cos(c.W4)
	e := math.Hypot(a1, a2)
	p := math.Atan2(a1, a2)
	N := rad(345.0 - 10.057*c.t2)
	lam1 := rad(359.244 + 79.6900472*c.t1 + 0.086754*math.Sin(N))
	i := rad(28.0362 + 0.346898*math.Cos(N) + 0.0193*math.Cos(c.W3))
	Om := rad(168.8034 + 0.736936*math.Sin(N) + 0.041*math.Sin(c.W3))
	return c.solveOrbit(e, 8.725924, Om, i, lam1, p)
}

// titanPasses is the number of refinement passes applied to Titan's
// pericenter. Three already reach the precision of the series; six
// leaves a wide margin at no real cost.
const titanPasses = 6

// titanPericenter iterates the solar perturbation of Titan's
// pericenter longitude to a fixed point. phi and Om1 are the auxiliary
// angle and node the caller derived from the orbit orientation; the
// returned value is w after the given number of passes.
func (c *Context) titanPericenter(Om1, phi float64, passes int) float64 {
	g0 := rad(102.8623)
	g := c.W4 - Om1 - phi
	var w float64
	for n := 0; n < passes; n++ {
		w = c.W4 + rad(0.37515)*(math.Sin(2*g)-math.Sin(2*g0))
		g = w - Om1 - phi
	}
	return w
}

// titan carries the largest perturbation load of the outer four: the
// Sun shifts its pericenter (iterated to convergence), its
// eccentricity, and its mean longitude.
func (c *Context) titan() Elements {
	L := rad(261.1582 + 22.57697855*c.t4 + 0.074025*math.Sin(c.W3))
	i1 := rad(27.45141 + 0.295999*math.Cos(c.W3))
	Om1 := rad(168.66925 + 0.628808*math.Sin(c.W3))
	a1 := math.Sin(c.W7) * math.Sin(Om1-c.W8)
	a2 := math.Cos(c.W7)*math.Sin(i1) - math.Sin(c.W7)*math.Cos(i1)*math.Cos(Om1-c.W8)
	g0 := rad(102.8623)
	phi := math.Atan2(a1, a2)
	s := math.Hypot(a1, a2)
	w := c.titanPericenter(Om1, phi, titanPasses)
	g := w - Om1 - phi
	eT := 0.029092 + 0.00019048*(math.Cos(2*g)-math.Cos(2*g0))
	q := 2 * (c.W5 - w)
	b1 := math.Sin(i1) * math.Sin(Om1-c.W8)
	b2 := math.Cos(c.W7)*math.Sin(i1)*math.Cos(Om1-c.W8) - math.Sin(c.W7)*math.Cos(i1)
	theta := math.Atan2(b1, b2) + c.W8
	e := eT * (1 + 0.002778797*math.Cos(q))
	p := w + rad(0.159215)*math.Sin(q)
	u := 2*(c.W5-theta) + phi
	h := 0.9375*eT*eT*math.Sin(q) + 0.1875*s*s*math.Sin(2*(c.W5-theta))
	lam1 := L - rad(0.254744)*(c.e1*(math.Sin(c.W6)+0.75*c.e1*math.Sin(2*c.W6))+h)
	i := i1 + rad(0.031843)*s*math.Cos(u)
	Om := Om1 + rad(0.031843)*s*math.Sin(u)/math.Sin(i1)
	return c.solveOrbit(e, 20.216193, Om, i, lam1, p)
}

// hyperion is dominated by its 4:3 resonance with Titan: even its
// semimajor axis needs periodic terms.
func (c *Context) hyperion() Elements {
	nu := rad(92.39 + 0.5621071*c.t6)
	et := rad(148.19 - 19.18*c.t8)
	theta := rad(184.8 - 35.41*c.t9)
	theta1 := theta - rad(7.5)
	as := rad(176.0 + 12.22*c.t8)
	bs := rad(8.0 + 24.44*c.t8)
	cs := bs + rad(5.0)
	w := rad(69.898 - 18.67088*c.t8)
	phi := 2 * (w - c.W5)
	chi := rad(94.9 - 2.292*c.t8)
	a := 24.50601 - 0.08686*math.Cos(nu) - 0.00166*math.Cos(et+nu) +
		0.00175*math.Cos(et-nu)
	e := 0.103458 - 0.004099*math.Cos(nu) - 0.000167*math.Cos(et+nu) +
		0.000235*math.Cos(et-nu) + 0.02303*math.Cos(et) - 0.00212*math.Cos(2*et) +
		0.000151*math.Cos(3*et) + 0.00013*math.Cos(phi)
	p := w + rad(0.15648*math.Sin(chi)-0.4457*math.Sin(nu)-0.2657*math.Sin(et+nu)-
		0.3573*math.Sin(et-nu)-12.872*math.Sin(et)+1.668*math.Sin(2*et)-
		0.2419*math.Sin(3*et)-0.07*math.Sin(phi))
	lam1 := rad(177.047 + 16.91993829*c.t6 + 0.15648*math.Sin(chi) +
		9.142*math.Sin(nu) + 0.007*math.Sin(2*nu) - 0.014*math.Sin(3*nu) +
		0.2275*math.Sin(et+nu) + 0.2112*math.Sin(et-nu) - 0.26*math.Sin(et) -
		0.0098*math.Sin(2*et) - 0.013*math.Sin(as) + 0.017*math.Sin(bs) -
		0.0303*math.Sin(phi))
	i := rad(27.3347 + 0.643486*math.Cos(chi) + 0.315*math.Cos(c.W3) +
		0.018*(math.Cos(theta)-math.Cos(cs)))
	Om := rad(168.6812 + 1.40136*math.Cos(chi) + 0.68599*math.Sin(c.W3) -
		0.0392*math.Sin(cs) + 0.0366*math.Sin(theta1))
	return c.solveOrbit(e, a, Om, i, lam1, p)
}

// iapetus rides far outside the ring plane; solar terms and a steep,
// drifting inclination dominate its elements.
func (c *Context) iapetus() Elements {
	L := rad(261.1582 + 22.57697855*c.t4)
	w1 := rad(91.796 + 0.562*c.t7)
	psi := rad(4.367 - 0.195*c.t7)
	theta := rad(146.819 - 3.198*c.t7)
	phi := rad(60.47 + 1.521*c.t7)
	rho := rad(205.055 - 2.091*c.t7)
	e1 := 0.028298 + 0.001156*c.t11
	w0 := rad(352.91 + 11.71*c.t11)
	mu := rad(76.3852 + 4.53795125*c.t10)
	i1 := rad(18.4602 - c.t11*(0.9518+c.t11*(0.072-0.0054*c.t11)))
	Om1 := rad(143.198 - c.t11*(3.919-c.t11*(0.116+0.008*c.t11)))
	l := mu - w0
	g := w0 - Om1 - psi
	g1 := w0 - Om1 - phi
	ls := c.W5 - w1
	gs := w1 - theta
	lT := L - c.W4
	gT := c.W4 - rho
	u1 := 2 * (l + g - ls - gs)
	u2 := l + g1 - lT - gT
	u3 := l + 2*(g-ls-gs)
	u4 := lT + gT - g1
	u5 := 2 * (ls + gs)
	a := 58.935028 + 0.004638*math.Cos(u1) + 0.058222*math.Cos(u2)
	e := e1 - 0.0014097*math.Cos(g1-gT) + 0.0003733*math.Cos(u5-2*g) +
		0.000118*math.Cos(u3) + 0.0002408*math.Cos(l) +
		0.0002849*math.Cos(l+u2) + 0.000619*math.Cos(u4)
	w := rad(0.08077*math.Sin(g1-gT) + 0.02139*math.Sin(u5-2*g) -
		0.00676*math.Sin(u3) + 0.0138*math.Sin(l) + 0.01632*math.Sin(l+u2) +
		0.03547*math.Sin(u4))
	p := w0 + w/e1
	lam1 := mu + rad(-0.04299*math.Sin(u2)-0.00789*math.Sin(u1)-
		0.06312*math.Sin(ls)-0.00295*math.Sin(2*ls)-0.02231*math.Sin(u5)+
		0.0065*math.Sin(u5+psi))
	i := i1 + rad(0.04204*math.Cos(u5+psi)+0.00235*math.Cos(l+g1+lT+gT+phi)+
		0.0036*math.Cos(u2+phi))
	wa := rad(0.04204*math.Sin(u5+psi) + 0.00235*math.Sin(l+g1+lT+gT+phi) +
		0.00358*math.Sin(u2+phi))
	Om := Om1 + wa/math.Sin(i1)
	return c.solveOrbit(e, a, Om, i, lam1, p)
}
