package astro

import (
	"fmt"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// FormatRA renders a right ascension in sexagesimal hours with one
// decimal on the seconds.
func FormatRA(ra unit.RA) string {
	return fmt.Sprintf("%0.1d", sexa.FmtRA(ra))
}

// FormatDec renders a declination in signed sexagesimal degrees with
// whole seconds.
func FormatDec(dec unit.Angle) string {
	return fmt.Sprintf("%+0.0d", sexa.FmtAngle(dec))
}

// FormatDeg renders an angle as decimal degrees.
func FormatDeg(a unit.Angle) string {
	return fmt.Sprintf("%.5f°", a.Deg())
}
