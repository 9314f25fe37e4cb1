// Package jobfile loads a scripted run from a TOML file, so a repeated
// observing setup is written once and replayed. Keys are lowercase
// with underscores; the zero value of every field means "use the CLI
// default", and explicit CLI flags override whatever the file says.
package jobfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/naoina/toml"

	"github.com/litescript/ls-saturn/internal/ephem"
	"github.com/litescript/ls-saturn/internal/moons"
)

// StaticGeometry pins the provider to fixed Saturn geometry.
type StaticGeometry struct {
	LonDeg  float64
	LatDeg  float64
	DeltaAU float64
}

// Job is one scripted run: the epoch, the window, the moon selection
// and the provider configuration.
type Job struct {
	Time      time.Time // evaluation epoch as a TOML datetime; zero means now
	JD        float64   // TD Julian date; exclusive with Time
	Span      string    // window length for tracks and scans, e.g. "10d" or "36h"
	Step      float64   // sample step in days; 0 picks per-moon defaults
	Moons     []string  // moon names; empty selects all eight
	Provider  string    // auto, jpl, vsop87, kepler or static
	Output    string    // table or json
	DEFile    string    // path to a JPL Development Ephemeris file
	VSOP87Dir string    // directory holding VSOP87 data files
	Static    StaticGeometry
}

// Load reads and validates a job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var j Job
	if err := toml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := j.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &j, nil
}

func (j *Job) validate() error {
	if j.JD != 0 && !j.Time.IsZero() {
		return fmt.Errorf("time and jd are exclusive")
	}
	if j.JD < 0 {
		return fmt.Errorf("jd %v is negative", j.JD)
	}
	if j.Step < 0 {
		return fmt.Errorf("step %v is negative", j.Step)
	}
	if j.Span != "" {
		if _, err := ParseSpan(j.Span); err != nil {
			return err
		}
	}
	if j.Provider != "" {
		if _, err := ephem.ParseMode(j.Provider); err != nil {
			return err
		}
	}
	if j.Provider == "static" && j.Static.DeltaAU == 0 {
		return fmt.Errorf("provider static needs a [static] table with delta_au")
	}
	if j.Static.DeltaAU < 0 {
		return fmt.Errorf("static delta_au %v is negative", j.Static.DeltaAU)
	}
	switch j.Output {
	case "", "table", "json":
	default:
		return fmt.Errorf("unknown output %q", j.Output)
	}
	if _, err := j.Selection(); err != nil {
		return err
	}
	return nil
}

// Selection resolves the configured moon names. An empty list returns
// nil, which callers treat as all eight.
func (j *Job) Selection() ([]moons.Moon, error) {
	if len(j.Moons) == 0 {
		return nil, nil
	}
	sel := make([]moons.Moon, 0, len(j.Moons))
	for _, name := range j.Moons {
		m, err := moons.Parse(name)
		if err != nil {
			return nil, err
		}
		sel = append(sel, m)
	}
	return sel, nil
}

// ParseSpan converts a window length to days. A "d" suffix counts
// days directly; anything else goes through time.ParseDuration, so
// "36h" and "90m" work as expected.
func ParseSpan(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty span")
	}
	if strings.HasSuffix(s, "d") {
		days, err := strconv.ParseFloat(strings.TrimSuffix(s, "d"), 64)
		if err != nil || days <= 0 {
			return 0, fmt.Errorf("bad span %q", s)
		}
		return days, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("bad span %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("bad span %q", s)
	}
	return d.Hours() / 24, nil
}
