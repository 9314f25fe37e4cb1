package moons

import (
	"math"
	"testing"
)

// Reference epochs used across the package tests. Saturn's apparent
// geometry (1950.0 ecliptic longitude/latitude and distance) comes from
// the Keplerian provider in internal/ephem evaluated at the same
// instants.
const (
	jd1992    = 2448972.50068 // 1992 Dec 16.00068 TD
	lon1992   = 314.110997778 // deg
	lat1992   = -1.006752633  // deg
	delta1992 = 10.472397812  // AU

	jd2024    = 2460310.5 // 2024 Jan 1.0 TD
	lon2024   = 332.273218875
	lat2024   = -1.632709102
	delta2024 = 10.284435777
)

func ctx1992() *Context {
	return NewContext(jd1992, rad(lon1992), rad(lat1992), delta1992)
}

func ctx2024() *Context {
	return NewContext(jd2024, rad(lon2024), rad(lat2024), delta2024)
}

func TestContextTimeArguments(t *testing.T) {
	c := ctx1992()
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"t1", c.t1, 37879.45126},
		{"t2", c.t2, 103.7082854483},
		{"t3", c.t3, 1992.9569562218},
		{"t4", c.t4, 37604.45126},
		{"t5", c.t5, 102.9553764819},
		{"t6", c.t6, 33952.45126},
		{"t7", c.t7, 0.9295674541},
		{"t8", c.t8, 92.9567454073},
		{"t9", c.t9, 19.088162245},
		{"t10", c.t10, 39186.45126},
		{"t11", c.t11, 1.0728665643},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-8 {
				t.Errorf("%s = %.10f, want %.10f", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestContextAngles(t *testing.T) {
	c := ctx1992()
	tests := []struct {
		name string
		got  float64
		want float64 // radians
	}{
		{"W0", c.W0, 11.2549065120},
		{"W1", c.W1, 59.9260782356},
		{"W2", c.W2, 169.9909047576},
		{"W3", c.W3, -0.1866204068},
		{"W4", c.W4, 5.7470648708},
		{"W5", c.W5, 24.4922146040},
		{"W6", c.W6, 22.8811044900},
		{"W7", c.W7, 0.0434824959},
		{"W8", c.W8, 1.9741173310},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-8 {
				t.Errorf("%s = %.10f rad, want %.10f rad", tt.name, tt.got, tt.want)
			}
		})
	}

	if math.Abs(c.e1-0.055568369661) > 1e-10 {
		t.Errorf("e1 = %.12f, want 0.055568369661", c.e1)
	}
}

func TestContextRingFrame(t *testing.T) {
	c := ctx1992()
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"s1", c.s1, 0.470730110066},
		{"c1", c.c1, 0.882277259980},
		{"s2", c.s2, 0.194042593461},
		{"c2", c.c2, -0.980993104931},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-10 {
				t.Errorf("%s = %.12f, want %.12f", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestContextAccessors(t *testing.T) {
	c := ctx1992()
	if c.JDE() != jd1992 {
		t.Errorf("JDE() = %f, want %f", c.JDE(), jd1992)
	}
	if c.Delta() != delta1992 {
		t.Errorf("Delta() = %f, want %f", c.Delta(), delta1992)
	}
}
