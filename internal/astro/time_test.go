package astro

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

func TestEpoch1950(t *testing.T) {
	got := julian.CalendarGregorianToJD(1950, 1, 1.5)
	if math.Abs(got-Epoch1950) > 1e-9 {
		t.Errorf("JD of 1950 Jan 1.5 = %.6f, want %.6f", got, Epoch1950)
	}
}

func TestJD(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want float64
	}{
		{
			name: "J2000.0",
			time: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 2451545.0,
		},
		{
			name: "1992 Dec 16.0",
			time: time.Date(1992, 12, 16, 0, 0, 0, 0, time.UTC),
			want: 2448972.5,
		},
		{
			name: "2024 Jan 1.0",
			time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want: 2460310.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JD(tt.time); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("JD(%v) = %.6f, want %.6f", tt.time, got, tt.want)
			}
		})
	}
}

func TestJDRoundTrip(t *testing.T) {
	in := time.Date(2024, 3, 15, 6, 30, 45, 0, time.UTC)
	out := JDToTime(JD(in))
	if d := out.Sub(in); d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("round trip drifted by %v: %v -> %v", d, in, out)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2024-01-01T00:00:00Z", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"2024-01-01T00:00:00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"1992-12-16 12:30:00", time.Date(1992, 12, 16, 12, 30, 0, 0, time.UTC), false},
		{"1992-12-16 12:30", time.Date(1992, 12, 16, 12, 30, 0, 0, time.UTC), false},
		{"1992-12-16", time.Date(1992, 12, 16, 0, 0, 0, 0, time.UTC), false},
		{"16/12/1992", time.Time{}, true},
		{"not a time", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := ParseTime(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("ParseTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
