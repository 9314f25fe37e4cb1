package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/litescript/ls-saturn/internal/ephem"
	"github.com/litescript/ls-saturn/internal/moons"
	"github.com/litescript/ls-saturn/internal/phenomena"
)

// Saturn's geometry for the 1992 Dec 16.00068 TD worked example.
var geo1992 = ephem.Geometry{
	LonDeg:  314.711073751,
	LatDeg:  -1.010374445,
	DeltaAU: 10.472397812,
}

const jd1992 = 2448972.50068

func TestRadiusArcsec(t *testing.T) {
	got := RadiusArcsec(geo1992.DeltaAU)
	if math.Abs(got-7.934880) > 1e-4 {
		t.Errorf("RadiusArcsec(%v) = %.6f, want 7.934880", geo1992.DeltaAU, got)
	}
}

func TestBuild(t *testing.T) {
	res, err := Build(ephem.NewStatic(geo1992), jd1992, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if res.Provider != "static" {
		t.Errorf("Provider = %q, want static", res.Provider)
	}
	if res.JD != jd1992 {
		t.Errorf("JD = %v, want %v", res.JD, jd1992)
	}
	if len(res.Rows) != moons.Count {
		t.Fatalf("Rows count = %d, want %d", len(res.Rows), moons.Count)
	}
	if res.Rows[0].Moon != moons.Mimas || res.Rows[7].Moon != moons.Iapetus {
		t.Errorf("rows out of order: first %s, last %s",
			res.Rows[0].Moon, res.Rows[7].Moon)
	}
	if math.Abs(res.RingOpenDeg-16.465553) > 1e-4 {
		t.Errorf("RingOpenDeg = %.6f, want 16.465553", res.RingOpenDeg)
	}

	titan := res.Rows[moons.Titan]
	if math.Abs(titan.Pos.X - -17.294662469) > 1e-6 {
		t.Errorf("Titan X = %.9f, want -17.294662469", titan.Pos.X)
	}
	if math.Abs(titan.Rho-17.512865125) > 1e-6 {
		t.Errorf("Titan rho = %.9f, want 17.512865125", titan.Rho)
	}
	if math.Abs(titan.SepArcsec-138.962483) > 1e-3 {
		t.Errorf("Titan sep = %.6f arcsec, want 138.962483", titan.SepArcsec)
	}

	// All eight moons are clear of the disk at this instant.
	for _, row := range res.Rows {
		if row.Note != "" {
			t.Errorf("%s note = %q, want empty", row.Moon, row.Note)
		}
	}
}

func TestBuildSelection(t *testing.T) {
	res, err := Build(ephem.NewStatic(geo1992), jd1992, []moons.Moon{moons.Titan})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("Rows count = %d, want 1", len(res.Rows))
	}
	if res.Rows[0].Moon != moons.Titan {
		t.Errorf("Moon = %s, want Titan", res.Rows[0].Moon)
	}
}

func TestBuildNotes(t *testing.T) {
	// Mimas transits at 2448972.70 and is occulted at 2448973.14; both
	// instants sit well inside the contact times found by the scan.
	cases := []struct {
		jd   float64
		note string
	}{
		{2448972.70, "transit"},
		{2448973.14, "occulted"},
	}
	for _, tc := range cases {
		res, err := Build(ephem.NewStatic(geo1992), tc.jd, []moons.Moon{moons.Mimas})
		if err != nil {
			t.Fatalf("Build(%v) failed: %v", tc.jd, err)
		}
		row := res.Rows[0]
		if row.Rho >= 1 {
			t.Errorf("jd %v: rho = %.6f, want < 1", tc.jd, row.Rho)
		}
		if row.Note != tc.note {
			t.Errorf("jd %v: note = %q, want %q", tc.jd, row.Note, tc.note)
		}
	}
}

func TestWriteTable(t *testing.T) {
	res, err := Build(ephem.NewStatic(geo1992), jd1992, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var buf bytes.Buffer
	res.WriteTable(&buf)
	out := buf.String()

	for _, want := range []string{
		"Saturn satellites",
		"2448972.500680",
		"static",
		"RA",
		"rings +16.5°",
		"Mimas",
		"Iapetus",
		"-17.295", // Titan X
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	res, err := Build(ephem.NewStatic(geo1992), jd1992, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var buf bytes.Buffer
	if err := res.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if !strings.Contains(buf.String(), "  ") {
		t.Error("JSON should be indented")
	}

	var parsed ResultExport
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Provider != "static" {
		t.Errorf("provider = %q, want static", parsed.Provider)
	}
	if parsed.Saturn.DeltaAU != geo1992.DeltaAU {
		t.Errorf("delta_au = %v, want %v", parsed.Saturn.DeltaAU, geo1992.DeltaAU)
	}
	if parsed.Saturn.RA == "" || parsed.Saturn.Dec == "" {
		t.Error("ra/dec should be formatted")
	}
	if len(parsed.Moons) != moons.Count {
		t.Fatalf("moons count = %d, want %d", len(parsed.Moons), moons.Count)
	}
	if parsed.Moons[0].Name != "Mimas" {
		t.Errorf("first moon = %q, want Mimas", parsed.Moons[0].Name)
	}
}

func TestWriteTrack(t *testing.T) {
	points := []phenomena.TrackPoint{
		{JD: 2448972.5, Pos: moons.XYZ{X: -8.709, Y: -0.054, Z: 4.460}},
		{JD: 2448972.75, Pos: moons.XYZ{X: -8.201, Y: -0.101, Z: 4.901}},
	}

	var buf bytes.Buffer
	WriteTrack(&buf, moons.Rhea, points)
	out := buf.String()

	for _, want := range []string{
		"Track of Rhea: 2 samples",
		"1992-12-16 00:00:00",
		"-8.709",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("track output missing %q", want)
		}
	}
}

func TestWriteTrackJSON(t *testing.T) {
	points := []phenomena.TrackPoint{
		{JD: 2448972.5, Pos: moons.XYZ{X: -8.709, Y: -0.054, Z: 4.460}},
	}

	var buf bytes.Buffer
	if err := WriteTrackJSON(&buf, moons.Rhea, points); err != nil {
		t.Fatalf("WriteTrackJSON failed: %v", err)
	}

	var parsed TrackExport
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Moon != "Rhea" {
		t.Errorf("moon = %q, want Rhea", parsed.Moon)
	}
	if len(parsed.Points) != 1 || parsed.Points[0].JD != 2448972.5 {
		t.Errorf("points = %+v, want one at 2448972.5", parsed.Points)
	}
}

func TestWriteEvents(t *testing.T) {
	events := []phenomena.Event{
		{Moon: moons.Rhea, Kind: phenomena.EventEasternElongation,
			JD: 2448972.911621, X: -8.708637, Y: -0.053506},
		{Moon: moons.Mimas, Kind: phenomena.EventTransitStart,
			JD: 2448972.650893, X: -0.607835, Y: -0.793871},
	}

	var buf bytes.Buffer
	WriteEvents(&buf, events)
	out := buf.String()

	for _, want := range []string{
		"2 events",
		"Rhea",
		"eastern elongation",
		"transit start",
		"2448972.911621",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("events output missing %q", want)
		}
	}
}

func TestWriteEventsJSON(t *testing.T) {
	events := []phenomena.Event{
		{Moon: moons.Rhea, Kind: phenomena.EventWesternElongation,
			JD: 2448975.170635, X: 8.730407, Y: 0.097328},
	}

	var buf bytes.Buffer
	if err := WriteEventsJSON(&buf, events); err != nil {
		t.Fatalf("WriteEventsJSON failed: %v", err)
	}

	var parsed []EventExport
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("events count = %d, want 1", len(parsed))
	}
	if parsed[0].Moon != "Rhea" || parsed[0].Kind != "western elongation" {
		t.Errorf("event = %+v, want Rhea western elongation", parsed[0])
	}
}
