package phenomena

import (
	"fmt"

	"github.com/litescript/ls-saturn/internal/ephem"
	"github.com/litescript/ls-saturn/internal/moons"
)

// TrackPoint is one step of a sampled apparent track.
type TrackPoint struct {
	JD  float64
	Pos moons.XYZ
}

// Track samples a moon's apparent position at a fixed step across a
// window. The last point lands on or before the window end.
func Track(p ephem.SaturnProvider, m moons.Moon, start, end, step float64) ([]TrackPoint, error) {
	if end <= start {
		return nil, fmt.Errorf("track window [%f, %f] is empty", start, end)
	}
	if step <= 0 {
		step = m.PeriodDays() / defaultSamplesPerOrbit
	}
	var points []TrackPoint
	for jd := start; jd <= end; jd += step {
		ctx, err := ephem.ContextAt(p, jd)
		if err != nil {
			return nil, fmt.Errorf("track %s: %w", m, err)
		}
		points = append(points, TrackPoint{JD: jd, Pos: ctx.Position(m)})
	}
	return points, nil
}
