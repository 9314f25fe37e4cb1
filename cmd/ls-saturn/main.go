// Command ls-saturn is a terminal ephemeris for the eight classical
// satellites of Saturn.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-saturn/internal/astro"
	"github.com/litescript/ls-saturn/internal/ephem"
	"github.com/litescript/ls-saturn/internal/jobfile"
	"github.com/litescript/ls-saturn/internal/logging"
	"github.com/litescript/ls-saturn/internal/moons"
	"github.com/litescript/ls-saturn/internal/phenomena"
	"github.com/litescript/ls-saturn/internal/report"
	"github.com/litescript/ls-saturn/internal/state"
	"github.com/litescript/ls-saturn/internal/ui"
	"github.com/litescript/ls-saturn/internal/version"
)

// moonList collects --moon flags; each value is a name or a CSV list.
type moonList []string

func (m *moonList) String() string { return strings.Join(*m, ",") }

func (m *moonList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := moons.Parse(part); err != nil {
			return err
		}
		*m = append(*m, part)
	}
	return nil
}

// CLI flags; job-file values fill in whatever is not set explicitly.
var (
	timeStr     string
	jdVal       float64
	moonFlags   moonList
	providerStr string
	dePath      string
	vsopDir     string
	lon0Deg     float64
	lat0Deg     float64
	deltaAU     float64
	tableMode   bool
	jsonMode    bool
	trackMode   bool
	eventsMode  bool
	spanStr     string
	stepStr     string
	jobPath     string
	debugMode   bool
	versionFlag bool
)

// Default windows for the sampled headless modes.
const (
	defaultTrackSpan  = "10d"
	defaultEventsSpan = "30d"
)

func main() {
	flag.StringVar(&timeStr, "time", "", "Evaluation epoch, RFC3339 or YYYY-MM-DD[ HH:MM[:SS]] UTC (default: now)")
	flag.Float64Var(&jdVal, "jd", 0, "Evaluation epoch as a TD Julian date (exclusive with --time)")
	flag.Var(&moonFlags, "moon", "Restrict to named moons (repeatable or CSV; default: all eight)")
	flag.StringVar(&providerStr, "provider", "", "Saturn geometry source: auto, jpl, vsop87, kepler, static")
	flag.StringVar(&dePath, "de", "", "JPL Development Ephemeris file for --provider jpl")
	flag.StringVar(&vsopDir, "vsop87", "", "VSOP87 data directory (default: VSOP87 env var)")
	flag.Float64Var(&lon0Deg, "lon0", 0, "Static geometry: apparent ecliptic longitude of Saturn, degrees")
	flag.Float64Var(&lat0Deg, "lat0", 0, "Static geometry: apparent ecliptic latitude of Saturn, degrees")
	flag.Float64Var(&deltaAU, "delta", 0, "Static geometry: Earth-Saturn distance, AU")
	flag.BoolVar(&tableMode, "table", false, "Print the satellite table and exit")
	flag.BoolVar(&jsonMode, "json", false, "Print JSON instead of a table")
	flag.BoolVar(&trackMode, "track", false, "Print a sampled track of one moon over --span")
	flag.BoolVar(&eventsMode, "events", false, "Print the satellite events in --span")
	flag.StringVar(&spanStr, "span", "", "Window for --track/--events, e.g. 10d or 36h")
	flag.StringVar(&stepStr, "step", "", "Sample step for --track/--events, e.g. 1h (default: per-moon)")
	flag.StringVar(&jobPath, "job", "", "TOML job file supplying defaults for these flags")
	flag.BoolVar(&debugMode, "debug", false, "Log at debug level")
	flag.BoolVar(&versionFlag, "version", false, "Print version and exit")
	flag.Parse()

	if versionFlag {
		fmt.Println("ls-saturn " + version.String())
		return
	}

	// Job file first, explicit flags on top.
	job := &jobfile.Job{}
	if jobPath != "" {
		j, err := jobfile.Load(jobPath)
		if err != nil {
			fatal(1, err)
		}
		job = j
	}
	if err := applyFlags(job); err != nil {
		fatal(1, err)
	}

	level := logging.LevelInfo
	if debugMode {
		level = logging.LevelDebug
	}

	jd, epochSet, err := resolveEpoch(job)
	if err != nil {
		fatal(1, err)
	}
	sel, err := job.Selection()
	if err != nil {
		fatal(1, err)
	}
	provider, err := buildProvider(job)
	if err != nil {
		fatal(2, err)
	}

	jsonOut := job.Output == "json"
	headless := trackMode || eventsMode || job.Output != ""
	if headless {
		logger := logging.New(level)
		warnFarEpoch(logger, jd)
		if err := runHeadless(provider, job, jd, sel, jsonOut, logger); err != nil {
			fatal(2, err)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fatal(1, fmt.Errorf("stdout is not a terminal; use --table or --json for scripted output"))
	}

	// While bubbletea owns the terminal, logs go to the env file or
	// nowhere.
	logger, closeLog := logging.NewFromEnv(level)
	if os.Getenv(logging.EnvLogFile) == "" {
		logger = logging.Discard()
	}
	defer closeLog()
	warnFarEpoch(logger, jd)

	clock := state.NewClock(jd)
	if epochSet {
		// An explicit epoch is there to be looked at, not run away from.
		clock.Pause()
	}

	logger.Info("ls-saturn %s starting at JD %.5f (%s)", version.String(), jd, provider.Name())

	p := tea.NewProgram(ui.New(clock, provider), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overlays explicitly set CLI flags onto the job.
func applyFlags(job *jobfile.Job) error {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["time"] && set["jd"] {
		return fmt.Errorf("--time and --jd are exclusive")
	}
	if set["table"] && set["json"] {
		return fmt.Errorf("--table and --json are exclusive")
	}
	if trackMode && eventsMode {
		return fmt.Errorf("--track and --events are exclusive")
	}

	if set["time"] {
		t, err := astro.ParseTime(timeStr)
		if err != nil {
			return err
		}
		job.Time = t
		job.JD = 0
	}
	if set["jd"] {
		if jdVal <= 0 {
			return fmt.Errorf("--jd %v is not a Julian date", jdVal)
		}
		job.JD = jdVal
		job.Time = time.Time{}
	}
	if set["moon"] {
		job.Moons = []string(moonFlags)
	}
	if set["provider"] {
		job.Provider = providerStr
	}
	if set["de"] {
		job.DEFile = dePath
	}
	if set["vsop87"] {
		job.VSOP87Dir = vsopDir
	}
	if set["lon0"] {
		job.Static.LonDeg = lon0Deg
	}
	if set["lat0"] {
		job.Static.LatDeg = lat0Deg
	}
	if set["delta"] {
		if deltaAU <= 0 {
			return fmt.Errorf("--delta %v AU is not a distance", deltaAU)
		}
		job.Static.DeltaAU = deltaAU
	}
	if set["span"] {
		if _, err := jobfile.ParseSpan(spanStr); err != nil {
			return err
		}
		job.Span = spanStr
	}
	if set["step"] {
		days, err := jobfile.ParseSpan(stepStr)
		if err != nil {
			return err
		}
		job.Step = days
	}
	if set["table"] {
		job.Output = "table"
	}
	if set["json"] {
		job.Output = "json"
	}

	// Static geometry without a named provider means the static one.
	if job.Provider == "" && job.Static.DeltaAU != 0 {
		job.Provider = "static"
	}
	return nil
}

// resolveEpoch turns the job's epoch into a TD Julian date. The bool
// reports whether the epoch was given rather than defaulted to now.
func resolveEpoch(job *jobfile.Job) (float64, bool, error) {
	switch {
	case job.JD != 0 && !job.Time.IsZero():
		return 0, false, fmt.Errorf("time and jd are exclusive")
	case job.JD != 0:
		return job.JD, true, nil
	case !job.Time.IsZero():
		return astro.JD(job.Time.UTC()), true, nil
	}
	return astro.JD(time.Now().UTC()), false, nil
}

// buildProvider assembles the geometry provider from the job config.
func buildProvider(job *jobfile.Job) (ephem.SaturnProvider, error) {
	mode, err := ephem.ParseMode(job.Provider)
	if err != nil {
		return nil, err
	}
	cfg := ephem.Config{
		DEPath:    job.DEFile,
		VSOP87Dir: job.VSOP87Dir,
	}
	if job.Static.DeltaAU != 0 {
		cfg.Static = &ephem.Geometry{
			LonDeg:  job.Static.LonDeg,
			LatDeg:  job.Static.LatDeg,
			DeltaAU: job.Static.DeltaAU,
		}
	}
	return ephem.Select(mode, cfg)
}

// runHeadless produces one report on stdout: a single-epoch table, a
// moon track, or an event listing.
func runHeadless(p ephem.SaturnProvider, job *jobfile.Job, jd float64, sel []moons.Moon, jsonOut bool, logger *logging.Logger) error {
	switch {
	case trackMode:
		if len(sel) != 1 {
			return fmt.Errorf("--track needs exactly one --moon")
		}
		span, err := windowDays(job, defaultTrackSpan)
		if err != nil {
			return err
		}
		logger.Debug("tracking %s for %.2f days from JD %.5f", sel[0], span, jd)
		points, err := phenomena.Track(p, sel[0], jd, jd+span, job.Step)
		if err != nil {
			return err
		}
		if jsonOut {
			return report.WriteTrackJSON(os.Stdout, sel[0], points)
		}
		report.WriteTrack(os.Stdout, sel[0], points)
		return nil

	case eventsMode:
		span, err := windowDays(job, defaultEventsSpan)
		if err != nil {
			return err
		}
		logger.Debug("scanning %.2f days of events from JD %.5f", span, jd)
		events, err := phenomena.Scan(p, phenomena.ScanConfig{
			Start: jd,
			End:   jd + span,
			Step:  job.Step,
			Moons: sel,
		})
		if err != nil {
			return err
		}
		if jsonOut {
			return report.WriteEventsJSON(os.Stdout, events)
		}
		report.WriteEvents(os.Stdout, events)
		return nil
	}

	logger.Debug("evaluating JD %.5f with provider %s", jd, p.Name())
	result, err := report.Build(p, jd, sel)
	if err != nil {
		return err
	}
	if jsonOut {
		return result.WriteJSON(os.Stdout)
	}
	result.WriteTable(os.Stdout)
	return nil
}

// windowDays resolves the span for the sampled modes.
func windowDays(job *jobfile.Job, fallback string) (float64, error) {
	s := job.Span
	if s == "" {
		s = fallback
	}
	return jobfile.ParseSpan(s)
}

// warnFarEpoch flags epochs far outside the fit spans of the satellite
// series and the mean-element provider. The math still runs; the
// numbers just mean less.
func warnFarEpoch(logger *logging.Logger, jd float64) {
	if y := astro.JDToTime(jd).Year(); y < 1700 || y > 2300 {
		logger.Warn("epoch year %d is far from the theory's fit span; positions degrade", y)
	}
}

func fatal(code int, err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(code)
}
