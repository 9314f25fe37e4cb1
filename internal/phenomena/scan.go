// Package phenomena finds observable satellite events by sampling the
// apparent-position theory: elongations, conjunctions, and disk
// crossings (transits in front of Saturn, occultations behind it).
package phenomena

import (
	"fmt"
	"sort"

	"github.com/litescript/ls-saturn/internal/ephem"
	"github.com/litescript/ls-saturn/internal/moons"
)

// EventKind classifies a satellite event.
type EventKind int

const (
	EventEasternElongation EventKind = iota // greatest apparent distance east of Saturn
	EventWesternElongation                  // greatest apparent distance west of Saturn
	EventInferiorConjunction                // crosses the center line in front of Saturn
	EventSuperiorConjunction                // crosses the center line behind Saturn
	EventTransitStart                       // moves onto the disk in front
	EventTransitEnd                         // moves off the disk in front
	EventOccultationStart                   // disappears behind the disk
	EventOccultationEnd                     // reappears from behind the disk
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventEasternElongation:
		return "eastern elongation"
	case EventWesternElongation:
		return "western elongation"
	case EventInferiorConjunction:
		return "inferior conjunction"
	case EventSuperiorConjunction:
		return "superior conjunction"
	case EventTransitStart:
		return "transit start"
	case EventTransitEnd:
		return "transit end"
	case EventOccultationStart:
		return "occultation start"
	case EventOccultationEnd:
		return "occultation end"
	default:
		return "?"
	}
}

// Event is one satellite event found by a scan.
type Event struct {
	Moon moons.Moon
	Kind EventKind
	JD   float64 // TD Julian date
	X, Y float64 // apparent offset at the event, Saturn radii
}

// defaultSamplesPerOrbit sets the scan step when the caller leaves it
// zero: enough samples per orbit that linear interpolation of the
// crossings stays well under a minute of error.
const defaultSamplesPerOrbit = 256

// ScanConfig bounds an event scan.
type ScanConfig struct {
	Start float64      // TD Julian date, inclusive
	End   float64      // TD Julian date
	Step  float64      // sample step in days; 0 picks one per moon from its period
	Moons []moons.Moon // nil scans all eight
}

// Scan samples each requested moon across the window and extracts
// events from the series: sign changes of X become conjunctions, disk
// crossings of the apparent separation become transit and occultation
// contacts, and X extrema become elongations. Crossing times are
// linearly interpolated between samples; extrema are refined with a
// parabola through the neighboring samples.
func Scan(p ephem.SaturnProvider, cfg ScanConfig) ([]Event, error) {
	if cfg.End <= cfg.Start {
		return nil, fmt.Errorf("scan window [%f, %f] is empty", cfg.Start, cfg.End)
	}
	list := cfg.Moons
	if len(list) == 0 {
		list = moons.All()
	}

	var events []Event
	for _, m := range list {
		step := cfg.Step
		if step <= 0 {
			step = m.PeriodDays() / defaultSamplesPerOrbit
		}
		ev, err := scanMoon(p, m, cfg.Start, cfg.End, step)
		if err != nil {
			return nil, err
		}
		events = append(events, ev...)
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].JD != events[j].JD {
			return events[i].JD < events[j].JD
		}
		return events[i].Moon < events[j].Moon
	})
	return events, nil
}

// sample is one evaluated point of a moon's track.
type sample struct {
	jd  float64
	pos moons.XYZ
}

func scanMoon(p ephem.SaturnProvider, m moons.Moon, start, end, step float64) ([]Event, error) {
	var series []sample
	for jd := start; jd <= end; jd += step {
		ctx, err := ephem.ContextAt(p, jd)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", m, err)
		}
		series = append(series, sample{jd: jd, pos: ctx.Position(m)})
	}
	if len(series) < 3 {
		return nil, fmt.Errorf("scan %s: window shorter than one step", m)
	}

	var events []Event
	events = append(events, conjunctions(m, series)...)
	events = append(events, diskCrossings(m, series)...)
	events = append(events, elongations(m, series)...)
	return events, nil
}

// conjunctions finds the X sign changes: the moon crossing Saturn's
// center line, in front (inferior) or behind (superior).
func conjunctions(m moons.Moon, series []sample) []Event {
	var events []Event
	for i := 1; i < len(series); i++ {
		prev, curr := series[i-1], series[i]
		if prev.pos.X*curr.pos.X >= 0 {
			continue
		}
		jd := crossJD(prev.jd, curr.jd, prev.pos.X, curr.pos.X, 0)
		f := frac(prev.jd, curr.jd, jd)
		kind := EventInferiorConjunction
		if lerp(prev.pos.Z, curr.pos.Z, f) > 0 {
			kind = EventSuperiorConjunction
		}
		events = append(events, Event{
			Moon: m,
			Kind: kind,
			JD:   jd,
			X:    0,
			Y:    lerp(prev.pos.Y, curr.pos.Y, f),
		})
	}
	return events
}

// diskCrossings finds the apparent separation crossing one Saturn
// radius: contacts of transits (near side) and occultations (far
// side). The disk is taken as a circle of the equatorial radius.
func diskCrossings(m moons.Moon, series []sample) []Event {
	var events []Event
	for i := 1; i < len(series); i++ {
		prev, curr := series[i-1], series[i]
		p0, p1 := prev.pos.Rho(), curr.pos.Rho()
		entering := p0 >= 1 && p1 < 1
		leaving := p0 < 1 && p1 >= 1
		if !entering && !leaving {
			continue
		}
		jd := crossJD(prev.jd, curr.jd, p0, p1, 1)
		f := frac(prev.jd, curr.jd, jd)
		behind := lerp(prev.pos.Z, curr.pos.Z, f) > 0
		var kind EventKind
		switch {
		case entering && behind:
			kind = EventOccultationStart
		case entering:
			kind = EventTransitStart
		case leaving && behind:
			kind = EventOccultationEnd
		default:
			kind = EventTransitEnd
		}
		events = append(events, Event{
			Moon: m,
			Kind: kind,
			JD:   jd,
			X:    lerp(prev.pos.X, curr.pos.X, f),
			Y:    lerp(prev.pos.Y, curr.pos.Y, f),
		})
	}
	return events
}

// elongations finds the local extrema of X. X is positive toward the
// west, so maxima are western elongations and minima eastern ones.
func elongations(m moons.Moon, series []sample) []Event {
	var events []Event
	for i := 1; i < len(series)-1; i++ {
		a, b, c := series[i-1], series[i], series[i+1]
		isMax := b.pos.X > 0 && b.pos.X >= a.pos.X && b.pos.X > c.pos.X
		isMin := b.pos.X < 0 && b.pos.X <= a.pos.X && b.pos.X < c.pos.X
		if !isMax && !isMin {
			continue
		}
		jd, x := peakParabola(a.jd, b.jd, c.jd, a.pos.X, b.pos.X, c.pos.X)
		kind := EventWesternElongation
		if isMin {
			kind = EventEasternElongation
		}
		f := frac(a.jd, c.jd, jd)
		events = append(events, Event{
			Moon: m,
			Kind: kind,
			JD:   jd,
			X:    x,
			Y:    lerp(a.pos.Y, c.pos.Y, f),
		})
	}
	return events
}

// crossJD finds the time where a sampled value crosses a threshold,
// linearly between two samples.
func crossJD(jd1, jd2, v1, v2, threshold float64) float64 {
	if v2 == v1 {
		return jd1
	}
	f := (threshold - v1) / (v2 - v1)
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return jd1 + (jd2-jd1)*f
}

// peakParabola refines an extremum from three samples by the vertex of
// the parabola through them. Falls back to the middle sample when the
// points are collinear.
func peakParabola(jd1, jd2, jd3, v1, v2, v3 float64) (jd, v float64) {
	d1 := v2 - v1
	d2 := v2 - v3
	den := d1 + d2
	if den == 0 {
		return jd2, v2
	}
	// Uniform spacing assumed; offset in units of the step.
	off := 0.5 * (d1 - d2) / den
	step := (jd3 - jd1) / 2
	return jd2 + off*step, v2 + 0.5*(d1+d2)*off*off
}

func lerp(a, b, f float64) float64 { return a + (b-a)*f }

func frac(a, b, x float64) float64 {
	if b == a {
		return 0
	}
	return (x - a) / (b - a)
}
