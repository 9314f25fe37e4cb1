package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-saturn/internal/ephem"
	"github.com/litescript/ls-saturn/internal/moons"
	"github.com/litescript/ls-saturn/internal/phenomena"
	"github.com/litescript/ls-saturn/internal/report"
)

// sparklineWidth is the number of cells in the ρ history sparkline.
const sparklineWidth = 48

// historySamples is the number of track points behind the sparkline.
const historySamples = 96

// designations are the IAU numerals of the classical satellites.
var designations = [moons.Count]string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII",
}

// DetailModel shows one satellite in depth: its instantaneous orbital
// elements, apparent place, and the apparent distance over the last
// orbit.
type DetailModel struct {
	provider ephem.SaturnProvider

	width  int
	height int
	frame  Frame

	moon    moons.Moon
	history []float64
}

// NewDetailModel creates the moon detail view.
func NewDetailModel(p ephem.SaturnProvider) DetailModel {
	return DetailModel{
		provider: p,
		moon:     moons.Titan,
	}
}

// SetMoon selects the satellite to display.
func (m DetailModel) SetMoon(mn moons.Moon) DetailModel {
	m.moon = mn
	m.history = m.computeHistory()
	return m
}

// SetSize updates the viewport size.
func (m DetailModel) SetSize(width, height int) DetailModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new evaluated frame.
func (m DetailModel) UpdateData(f Frame) DetailModel {
	m.frame = f
	m.history = m.computeHistory()
	return m
}

// Update handles input messages.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.moon = (m.moon + moons.Count - 1) % moons.Count
			m.history = m.computeHistory()
		case "right", "l":
			m.moon = (m.moon + 1) % moons.Count
			m.history = m.computeHistory()
		}
	}
	return m, nil
}

// computeHistory samples ρ over the orbit ending at the current epoch.
func (m DetailModel) computeHistory() []float64 {
	jd := m.frame.Snap.JD
	period := m.moon.PeriodDays()
	pts, err := phenomena.Track(m.provider, m.moon, jd-period, jd, period/historySamples)
	if err != nil {
		return nil
	}
	out := make([]float64, len(pts))
	for i, pt := range pts {
		out[i] = pt.Pos.Rho()
	}
	return out
}

// View renders the detail view.
func (m DetailModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for detail view"
	}
	if m.frame.Err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
		return "\n  " + errorStyle.Render("ephemeris error: " + m.frame.Err.Error())
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D9A441")).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(14)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	pos := m.frame.Pos[m.moon]
	el := m.frame.Elements[m.moon]
	rho := pos.Rho()
	scale := report.RadiusArcsec(m.frame.Geometry.DeltaAU)

	var b strings.Builder

	b.WriteString("  " + headerStyle.Render(fmt.Sprintf("◉ %s", m.moon)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  Saturn %s", designations[m.moon])))
	b.WriteString(dimStyle.Render("   ◄ → ►") + "\n\n")

	b.WriteString("  " + sectionStyle.Render("ORBIT (ring plane)") + "\n")
	b.WriteString("  " + labelStyle.Render("λ longitude") +
		valueStyle.Render(fmt.Sprintf("%9.3f°", el.LambdaDeg())) + "\n")
	b.WriteString("  " + labelStyle.Render("γ inclination") +
		valueStyle.Render(fmt.Sprintf("%9.3f°", el.GammaDeg())) + "\n")
	b.WriteString("  " + labelStyle.Render("Ω node") +
		valueStyle.Render(fmt.Sprintf("%9.3f°", el.OmegaDeg())) + "\n")
	b.WriteString("  " + labelStyle.Render("r radius") +
		valueStyle.Render(fmt.Sprintf("%9.3f R", el.R)) + "\n\n")

	b.WriteString("  " + sectionStyle.Render("APPARENT (from Earth)") + "\n")
	b.WriteString("  " + labelStyle.Render("X (west)") +
		valueStyle.Render(fmt.Sprintf("%+9.3f R", pos.X)) + "\n")
	b.WriteString("  " + labelStyle.Render("Y (north)") +
		valueStyle.Render(fmt.Sprintf("%+9.3f R", pos.Y)) + "\n")
	b.WriteString("  " + labelStyle.Render("Z (depth)") +
		valueStyle.Render(fmt.Sprintf("%+9.3f R", pos.Z)) + "\n")
	b.WriteString("  " + labelStyle.Render("ρ separation") +
		valueStyle.Render(fmt.Sprintf("%9.3f R  =  %.2f″", rho, rho*scale)))
	switch {
	case rho < 1 && pos.Z > 0:
		b.WriteString("   " + dimStyle.Render("occulted by the disk"))
	case rho < 1:
		b.WriteString("   " + valueStyle.Render("in transit across the disk"))
	}
	b.WriteString("\n\n")

	b.WriteString("  " + sectionStyle.Render("MEAN ORBIT") + "\n")
	b.WriteString("  " + labelStyle.Render("Period") +
		valueStyle.Render(fmt.Sprintf("%9.4f d", m.moon.PeriodDays())) + "\n")
	b.WriteString("  " + labelStyle.Render("Radius") +
		valueStyle.Render(fmt.Sprintf("%9.2f R  ≈  %.0f km", m.moon.OrbitRadii(),
			m.moon.OrbitRadii()*60268)) + "\n\n")

	b.WriteString("  " + sectionStyle.Render(fmt.Sprintf("ρ OVER ONE ORBIT (%.1f d)", m.moon.PeriodDays())) + "\n")
	b.WriteString("  " + m.renderSparkline())
	b.WriteString(dimStyle.Render(fmt.Sprintf("  now: ρ %.3f R", rho)))
	if lo, hi := m.historyRange(); !math.IsNaN(lo) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  (%.2f…%.2f)", lo, hi)))
	}
	b.WriteString("\n")

	return b.String()
}

// renderSparkline draws the ρ history as a block-element sparkline,
// colored blue at the minimum through gold at the maximum.
func (m DetailModel) renderSparkline() string {
	if len(m.history) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("(no data)")
	}

	blocks := []rune("▁▂▃▄▅▆▇█")

	// Resample to a fixed number of buckets.
	data := m.history
	if len(data) > sparklineWidth {
		resampled := make([]float64, sparklineWidth)
		for i := range resampled {
			resampled[i] = data[i*len(data)/sparklineWidth]
		}
		data = resampled
	}

	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range data {
		norm := (v - min) / span
		idx := int(norm * float64(len(blocks)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}

		// Interpolate slate blue at the low end to gold at the high end.
		r := int(100 + norm*(217-100))
		g := int(110 + norm*(164-110))
		bl := int(160 + norm*(65-160))
		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		b.WriteString(style.Render(string(blocks[idx])))
	}

	return b.String()
}

// historyRange reports the extremes of the sampled ρ history.
func (m DetailModel) historyRange() (min, max float64) {
	if len(m.history) == 0 {
		return math.NaN(), math.NaN()
	}
	min, max = m.history[0], m.history[0]
	for _, v := range m.history {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
