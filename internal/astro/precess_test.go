package astro

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
)

func TestPrecessEcliptic(t *testing.T) {
	tests := []struct {
		name    string
		lonDeg  float64
		latDeg  float64
		fromJD  float64
		toJD    float64
		wantLon float64 // deg
		wantLat float64 // deg
	}{
		{
			name:   "J2000 to 1950 Jan 1.5",
			lonDeg: 150, latDeg: 10,
			fromJD: J2000, toJD: Epoch1950,
			wantLon: 149.300567186, wantLat: 9.997240414,
		},
		{
			name:   "Saturn region, 1992 to 1950 Jan 1.5",
			lonDeg: 314.7845, latDeg: -1.0109,
			fromJD: 2448972.50068, toJD: Epoch1950,
			wantLon: 314.184423906, wantLat: -1.007283682,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lon, lat := PrecessEcliptic(
				unit.AngleFromDeg(tt.lonDeg), unit.AngleFromDeg(tt.latDeg),
				tt.fromJD, tt.toJD)
			if math.Abs(lon.Deg()-tt.wantLon) > 1e-5 {
				t.Errorf("lon = %.9f°, want %.9f°", lon.Deg(), tt.wantLon)
			}
			if math.Abs(lat.Deg()-tt.wantLat) > 1e-5 {
				t.Errorf("lat = %.9f°, want %.9f°", lat.Deg(), tt.wantLat)
			}
		})
	}
}

func TestPrecessEclipticIdentity(t *testing.T) {
	lon, lat := PrecessEcliptic(unit.AngleFromDeg(123.456), unit.AngleFromDeg(-5.4321),
		2448972.5, 2448972.5)
	if math.Abs(lon.Deg()-123.456) > 1e-9 || math.Abs(lat.Deg()+5.4321) > 1e-9 {
		t.Errorf("same-epoch precession moved the point: (%.9f, %.9f)", lon.Deg(), lat.Deg())
	}
}
