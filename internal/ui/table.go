package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-saturn/internal/astro"
	"github.com/litescript/ls-saturn/internal/moons"
	"github.com/litescript/ls-saturn/internal/report"
)

// TableModel shows all eight satellites as a numeric table with a
// cursor for drilling into a single moon.
type TableModel struct {
	width  int
	height int
	frame  Frame

	cursor int
}

// NewTableModel creates the table view.
func NewTableModel() TableModel {
	return TableModel{}
}

// SetSize updates the viewport size.
func (m TableModel) SetSize(width, height int) TableModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new evaluated frame.
func (m TableModel) UpdateData(f Frame) TableModel {
	m.frame = f
	return m
}

// Update handles input messages.
func (m TableModel) Update(msg tea.Msg) (TableModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < moons.Count-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			m.cursor = moons.Count - 1
		case "enter":
			sel := moons.All()[m.cursor]
			return m, func() tea.Msg {
				return TableOpenDetailMsg{Moon: sel}
			}
		}
	}
	return m, nil
}

// View renders the table view.
func (m TableModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for table view"
	}
	if m.frame.Err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
		return "\n  " + errorStyle.Render("ephemeris error: "+m.frame.Err.Error())
	}

	var b strings.Builder

	b.WriteString(m.renderSaturn())
	b.WriteString("\n")
	b.WriteString(m.renderMoons())

	return b.String()
}

// renderSaturn shows the planet-level geometry shared by all rows.
func (m TableModel) renderSaturn() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D9A441")).Bold(true)

	g := m.frame.Geometry
	ra, dec := astro.Equatorial(
		unit.AngleFromDeg(g.LonDeg), unit.AngleFromDeg(g.LatDeg), m.frame.Snap.JD)

	var b strings.Builder
	b.WriteString("  " + headerStyle.Render("SATURN") + "\n")
	b.WriteString("  " + labelStyle.Render("RA / Dec") +
		valueStyle.Render(astro.FormatRA(ra)+"  "+astro.FormatDec(dec)) + "\n")
	b.WriteString("  " + labelStyle.Render("Distance") +
		valueStyle.Render(fmt.Sprintf("%.4f AU", g.DeltaAU)) + "\n")
	b.WriteString("  " + labelStyle.Render("Disk radius") +
		valueStyle.Render(fmt.Sprintf("%.2f″", report.RadiusArcsec(g.DeltaAU))) + "\n")
	b.WriteString("  " + labelStyle.Render("Rings") +
		valueStyle.Render(fmt.Sprintf("%+.2f° open", ringOpenDeg(m.frame.Pole))) + "\n")

	return b.String()
}

func (m TableModel) renderMoons() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedRowStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder

	header := fmt.Sprintf("  %-10s %9s %9s %9s %9s %9s %9s %7s  %s",
		"Moon", "X", "Y", "Z", "ρ", "sep″", "λ°", "r", "Note")
	b.WriteString(headerStyle.Render(header) + "\n")
	b.WriteString(dimStyle.Render("  "+strings.Repeat("─", 88)) + "\n")

	scale := report.RadiusArcsec(m.frame.Geometry.DeltaAU)

	for i, mn := range moons.All() {
		pos := m.frame.Pos[mn]
		el := m.frame.Elements[mn]
		rho := pos.Rho()

		note := ""
		if rho < 1 {
			if pos.Z > 0 {
				note = "occulted"
			} else {
				note = "transit"
			}
		}

		line := fmt.Sprintf("  %-10s %9.3f %9.3f %9.3f %9.3f %9.2f %9.3f %7.3f  %s",
			mn, pos.X, pos.Y, pos.Z, rho, rho*scale, el.LambdaDeg(), el.R, note)

		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(line) + "\n")
		} else {
			b.WriteString(rowStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + dimStyle.Render("  X west, Y north, Z beyond Saturn, in equatorial radii."))

	return b.String()
}
