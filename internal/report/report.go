// Package report renders ephemeris evaluations for the headless output
// modes: aligned text tables, indented JSON, sampled tracks and event
// listings.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/soniakeys/unit"

	"github.com/litescript/ls-saturn/internal/astro"
	"github.com/litescript/ls-saturn/internal/ephem"
	"github.com/litescript/ls-saturn/internal/moons"
	"github.com/litescript/ls-saturn/internal/phenomena"
)

// Constants for converting disk-radius offsets to angles on the sky.
const (
	saturnEquatorialKm = 60268
	kmPerAU            = 149597870.7
)

// RadiusArcsec returns the apparent angular size of one Saturn
// equatorial radius at an Earth distance of delta AU.
func RadiusArcsec(deltaAU float64) float64 {
	return unit.Angle(math.Asin(saturnEquatorialKm / (deltaAU * kmPerAU))).Sec()
}

// Row is one moon's evaluated position with derived display fields.
type Row struct {
	Moon      moons.Moon
	Pos       moons.XYZ
	Rho       float64 // separation from the disk center, Saturn radii
	SepArcsec float64 // the same separation on the sky
	Note      string  // "transit" or "occulted" when inside the disk outline
}

// Result is one evaluation of the satellite system: the Saturn geometry
// that drove it and the apparent positions of the selected moons.
type Result struct {
	JD          float64 // TD Julian date of the evaluation
	Time        time.Time
	Provider    string
	Geometry    ephem.Geometry
	RA          unit.RA    // Saturn's apparent right ascension
	Dec         unit.Angle // Saturn's apparent declination
	RingOpenDeg float64    // saturnicentric latitude of Earth; positive sees the north face
	Rows        []Row
}

// Build evaluates the selected moons at a TD Julian date. A nil or
// empty selection evaluates all eight.
func Build(p ephem.SaturnProvider, jde float64, sel []moons.Moon) (*Result, error) {
	g, err := p.Geometry(jde)
	if err != nil {
		return nil, fmt.Errorf("%s geometry: %w", p.Name(), err)
	}
	lon0, lat0 := g.Saturn1950(jde)
	ctx := moons.NewContext(jde, lon0, lat0, g.DeltaAU)

	if len(sel) == 0 {
		sel = moons.All()
	}
	ra, dec := astro.Equatorial(
		unit.AngleFromDeg(g.LonDeg), unit.AngleFromDeg(g.LatDeg), jde)

	res := &Result{
		JD:          jde,
		Time:        astro.JDToTime(jde),
		Provider:    p.Name(),
		Geometry:    g,
		RA:          ra,
		Dec:         dec,
		RingOpenDeg: unit.Angle(math.Asin(-ctx.Pole().Z)).Deg(),
	}
	scale := RadiusArcsec(g.DeltaAU)
	for _, m := range sel {
		pos := ctx.Position(m)
		row := Row{Moon: m, Pos: pos, Rho: pos.Rho()}
		row.SepArcsec = row.Rho * scale
		if row.Rho < 1 {
			if pos.Z > 0 {
				row.Note = "occulted"
			} else {
				row.Note = "transit"
			}
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

// WriteTable writes the result as an aligned text table.
func (r *Result) WriteTable(w io.Writer) {
	fmt.Fprintf(w, "Saturn satellites @ %s  JD %.6f  (%s)\n",
		r.Time.Format("2006-01-02 15:04:05"), r.JD, r.Provider)
	fmt.Fprintf(w, "Saturn  RA %s  Dec %s  Δ %.4f AU  disk %.2f″  rings %+.1f°\n",
		astro.FormatRA(r.RA), astro.FormatDec(r.Dec),
		r.Geometry.DeltaAU, RadiusArcsec(r.Geometry.DeltaAU), r.RingOpenDeg)
	fmt.Fprintln(w, strings.Repeat("─", 70))
	fmt.Fprintf(w, "%-10s %9s %9s %9s %9s %9s  %s\n",
		"Moon", "X", "Y", "Z", "ρ", "sep ″", "Note")
	fmt.Fprintln(w, strings.Repeat("─", 70))
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%-10s %9.3f %9.3f %9.3f %9.3f %9.2f  %s\n",
			row.Moon, row.Pos.X, row.Pos.Y, row.Pos.Z, row.Rho, row.SepArcsec, row.Note)
	}
	fmt.Fprintf(w, "\nX west, Y north, Z beyond Saturn, in equatorial radii.\n")
}

// ResultExport is the JSON-serializable form of a Result.
type ResultExport struct {
	JD       float64      `json:"jd"`
	Time     time.Time    `json:"time"`
	Provider string       `json:"provider"`
	Saturn   SaturnExport `json:"saturn"`
	Moons    []MoonExport `json:"moons"`
}

// SaturnExport carries the planet-level geometry of an evaluation.
type SaturnExport struct {
	LonDeg       float64 `json:"lon_deg"`
	LatDeg       float64 `json:"lat_deg"`
	DeltaAU      float64 `json:"delta_au"`
	RA           string  `json:"ra"`
	Dec          string  `json:"dec"`
	RadiusArcsec float64 `json:"radius_arcsec"`
	RingOpenDeg  float64 `json:"ring_open_deg"`
}

// MoonExport is one moon's apparent position in JSON form.
type MoonExport struct {
	Name      string  `json:"name"`
	X         float64 `json:"x_radii"`
	Y         float64 `json:"y_radii"`
	Z         float64 `json:"z_radii"`
	RhoRadii  float64 `json:"rho_radii"`
	SepArcsec float64 `json:"sep_arcsec"`
	Note      string  `json:"note,omitempty"`
}

// Export converts the result to its JSON shape.
func (r *Result) Export() *ResultExport {
	out := &ResultExport{
		JD:       r.JD,
		Time:     r.Time,
		Provider: r.Provider,
		Saturn: SaturnExport{
			LonDeg:       r.Geometry.LonDeg,
			LatDeg:       r.Geometry.LatDeg,
			DeltaAU:      r.Geometry.DeltaAU,
			RA:           astro.FormatRA(r.RA),
			Dec:          astro.FormatDec(r.Dec),
			RadiusArcsec: RadiusArcsec(r.Geometry.DeltaAU),
			RingOpenDeg:  r.RingOpenDeg,
		},
	}
	for _, row := range r.Rows {
		out.Moons = append(out.Moons, MoonExport{
			Name:      row.Moon.String(),
			X:         row.Pos.X,
			Y:         row.Pos.Y,
			Z:         row.Pos.Z,
			RhoRadii:  row.Rho,
			SepArcsec: row.SepArcsec,
			Note:      row.Note,
		})
	}
	return out
}

// WriteJSON writes the result as indented JSON.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Export())
}

// WriteTrack writes a sampled track as an aligned text table.
func WriteTrack(w io.Writer, m moons.Moon, points []phenomena.TrackPoint) {
	fmt.Fprintf(w, "Track of %s: %d samples\n", m, len(points))
	fmt.Fprintln(w, strings.Repeat("─", 76))
	fmt.Fprintf(w, "%14s  %-19s %9s %9s %9s %9s\n", "JD", "Time", "X", "Y", "Z", "ρ")
	fmt.Fprintln(w, strings.Repeat("─", 76))
	for _, pt := range points {
		fmt.Fprintf(w, "%14.6f  %-19s %9.3f %9.3f %9.3f %9.3f\n",
			pt.JD, astro.JDToTime(pt.JD).Format("2006-01-02 15:04:05"),
			pt.Pos.X, pt.Pos.Y, pt.Pos.Z, pt.Pos.Rho())
	}
}

// TrackExport is the JSON-serializable form of a sampled track.
type TrackExport struct {
	Moon   string        `json:"moon"`
	Points []PointExport `json:"points"`
}

// PointExport is one sample of a track.
type PointExport struct {
	JD float64 `json:"jd"`
	X  float64 `json:"x_radii"`
	Y  float64 `json:"y_radii"`
	Z  float64 `json:"z_radii"`
}

// WriteTrackJSON writes a sampled track as indented JSON.
func WriteTrackJSON(w io.Writer, m moons.Moon, points []phenomena.TrackPoint) error {
	out := TrackExport{Moon: m.String()}
	for _, pt := range points {
		out.Points = append(out.Points, PointExport{
			JD: pt.JD, X: pt.Pos.X, Y: pt.Pos.Y, Z: pt.Pos.Z,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteEvents writes scan results as an aligned text table.
func WriteEvents(w io.Writer, events []phenomena.Event) {
	fmt.Fprintf(w, "%d events\n", len(events))
	fmt.Fprintln(w, strings.Repeat("─", 82))
	fmt.Fprintf(w, "%14s  %-16s  %-9s  %-18s %8s %8s\n",
		"JD", "Time", "Moon", "Event", "X", "Y")
	fmt.Fprintln(w, strings.Repeat("─", 82))
	for _, ev := range events {
		fmt.Fprintf(w, "%14.6f  %-16s  %-9s  %-18s %8.3f %8.3f\n",
			ev.JD, astro.JDToTime(ev.JD).Format("2006-01-02 15:04"),
			ev.Moon, ev.Kind, ev.X, ev.Y)
	}
}

// EventExport is one scan event in JSON form.
type EventExport struct {
	JD   float64   `json:"jd"`
	Time time.Time `json:"time"`
	Moon string    `json:"moon"`
	Kind string    `json:"kind"`
	X    float64   `json:"x_radii"`
	Y    float64   `json:"y_radii"`
}

// WriteEventsJSON writes scan results as indented JSON.
func WriteEventsJSON(w io.Writer, events []phenomena.Event) error {
	out := make([]EventExport, 0, len(events))
	for _, ev := range events {
		out = append(out, EventExport{
			JD:   ev.JD,
			Time: astro.JDToTime(ev.JD),
			Moon: ev.Moon.String(),
			Kind: ev.Kind.String(),
			X:    ev.X,
			Y:    ev.Y,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
