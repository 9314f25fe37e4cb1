package jobfile

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-saturn/internal/moons"
)

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.job")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeJob(t, `
time = 1992-12-16T00:01:00Z
span = "10d"
step = 0.25
moons = ["Titan", "Rhea"]
provider = "static"
output = "json"

[static]
lon_deg = 314.711073751
lat_deg = -1.010374445
delta_au = 10.472397812
`)

	j, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := time.Date(1992, 12, 16, 0, 1, 0, 0, time.UTC)
	if !j.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", j.Time, want)
	}
	if j.Span != "10d" {
		t.Errorf("Span = %q, want 10d", j.Span)
	}
	if j.Step != 0.25 {
		t.Errorf("Step = %v, want 0.25", j.Step)
	}
	if j.Provider != "static" {
		t.Errorf("Provider = %q, want static", j.Provider)
	}
	if j.Output != "json" {
		t.Errorf("Output = %q, want json", j.Output)
	}
	if j.Static.DeltaAU != 10.472397812 {
		t.Errorf("Static.DeltaAU = %v, want 10.472397812", j.Static.DeltaAU)
	}

	sel, err := j.Selection()
	if err != nil {
		t.Fatalf("Selection failed: %v", err)
	}
	if len(sel) != 2 || sel[0] != moons.Titan || sel[1] != moons.Rhea {
		t.Errorf("Selection = %v, want [Titan Rhea]", sel)
	}
}

func TestLoadJD(t *testing.T) {
	path := writeJob(t, `
jd = 2448972.50068
provider = "kepler"
de_file = "/data/de440.bin"
vsop87_dir = "/data/vsop87"
`)

	j, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if j.JD != 2448972.50068 {
		t.Errorf("JD = %v, want 2448972.50068", j.JD)
	}
	if !j.Time.IsZero() {
		t.Errorf("Time = %v, want zero", j.Time)
	}
	if j.DEFile != "/data/de440.bin" {
		t.Errorf("DEFile = %q", j.DEFile)
	}
	if j.VSOP87Dir != "/data/vsop87" {
		t.Errorf("VSOP87Dir = %q", j.VSOP87Dir)
	}
}

func TestLoadEmpty(t *testing.T) {
	j, err := Load(writeJob(t, ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !j.Time.IsZero() || j.JD != 0 || len(j.Moons) != 0 {
		t.Errorf("empty job = %+v, want zero value", j)
	}
	sel, err := j.Selection()
	if err != nil || sel != nil {
		t.Errorf("Selection = %v, %v, want nil, nil", sel, err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.job")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		errPart string
	}{
		{"time and jd", "time = 1992-12-16T00:01:00Z\njd = 2448972.5\n", "exclusive"},
		{"negative jd", "jd = -1.0\n", "negative"},
		{"negative step", "step = -0.5\n", "negative"},
		{"bad span", "span = \"soon\"\n", "span"},
		{"bad provider", "provider = \"horizons\"\n", "provider"},
		{"static without geometry", "provider = \"static\"\n", "delta_au"},
		{"bad output", "output = \"csv\"\n", "output"},
		{"unknown moon", "moons = [\"Pan\"]\n", "moon"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeJob(t, tc.content))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("error %q does not mention %q", err, tc.errPart)
			}
		})
	}
}

func TestParseSpan(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"10d", 10},
		{"2.5d", 2.5},
		{"36h", 1.5},
		{"90m", 0.0625},
		{" 1d ", 1},
	}
	for _, tc := range cases {
		got, err := ParseSpan(tc.in)
		if err != nil {
			t.Errorf("ParseSpan(%q) failed: %v", tc.in, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("ParseSpan(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "d", "ten days", "10w", "-5d", "0h"} {
		if _, err := ParseSpan(bad); err == nil {
			t.Errorf("ParseSpan(%q) should fail", bad)
		}
	}
}
