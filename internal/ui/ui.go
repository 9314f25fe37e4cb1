// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-saturn/internal/astro"
	"github.com/litescript/ls-saturn/internal/ephem"
	"github.com/litescript/ls-saturn/internal/moons"
	"github.com/litescript/ls-saturn/internal/state"
	"github.com/litescript/ls-saturn/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewDisk ViewMode = iota
	ViewTable
	ViewDetail
	ViewEvents
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic clock and ephemeris updates.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time

	// TableOpenDetailMsg requests opening the detail view for a moon.
	TableOpenDetailMsg struct {
		Moon moons.Moon
	}
)

// Frame is one evaluated epoch pushed to the views: the clock state,
// Saturn's geometry, and the apparent positions and orbital elements
// of all eight moons.
type Frame struct {
	Snap     state.Snapshot
	Geometry ephem.Geometry
	Pole     moons.XYZ
	Pos      [moons.Count]moons.XYZ
	Elements [moons.Count]moons.Elements
	Err      error
}

// evaluate computes a Frame for the clock's current epoch.
func evaluate(p ephem.SaturnProvider, snap state.Snapshot) Frame {
	g, err := p.Geometry(snap.JD)
	if err != nil {
		return Frame{Snap: snap, Err: err}
	}
	lon0, lat0 := g.Saturn1950(snap.JD)
	ctx := moons.NewContext(snap.JD, lon0, lat0, g.DeltaAU)

	f := Frame{
		Snap:     snap,
		Geometry: g,
		Pole:     ctx.Pole(),
		Pos:      ctx.Positions(),
	}
	for _, mn := range moons.All() {
		f.Elements[mn] = ctx.Elements(mn)
	}
	return f
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	clock    *state.Clock
	provider ephem.SaturnProvider

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string
	animTick  int
	lastTick  time.Time

	// Jump-to-date prompt
	dateEntry bool
	dateBuf   string

	// Sub-models
	disk   DiskModel
	table  TableModel
	detail DetailModel
	events EventsModel

	// Latest evaluated epoch
	frame Frame
}

// New creates a new root UI model.
func New(clock *state.Clock, provider ephem.SaturnProvider) Model {
	m := Model{
		clock:    clock,
		provider: provider,
		viewMode: ViewDisk,
		disk:     NewDiskModel(provider),
		table:    NewTableModel(),
		detail:   NewDetailModel(provider),
		events:   NewEventsModel(provider),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), animTickCmd())
}

// refresh re-evaluates the ephemeris at the clock's epoch and pushes
// the frame to all views. The evaluation is closed-form math, cheap
// enough to run synchronously every tick.
func (m *Model) refresh() {
	m.frame = evaluate(m.provider, m.clock.Snapshot())
	m.disk = m.disk.UpdateData(m.frame)
	m.table = m.table.UpdateData(m.frame)
	m.detail = m.detail.UpdateData(m.frame)
	m.events = m.events.UpdateData(m.frame)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.dateEntry {
			return m.updateDateEntry(msg), nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1":
			m.viewMode = ViewDisk
		case "2":
			m.viewMode = ViewTable
		case "3":
			m.viewMode = ViewDetail
		case "4":
			m.viewMode = ViewEvents
			var cmd tea.Cmd
			m.events, cmd = m.events.MaybeScan()
			cmds = append(cmds, cmd)

		case "tab":
			m.viewMode = (m.viewMode + 1) % 4
			if m.viewMode == ViewEvents {
				var cmd tea.Cmd
				m.events, cmd = m.events.MaybeScan()
				cmds = append(cmds, cmd)
			}

		// Time controls are global: they make sense in every view.
		case " ", "space":
			if m.clock.Toggle() {
				m.statusMsg = ""
			} else {
				m.statusMsg = "clock paused"
			}
			m.refresh()
		case ",":
			m.clock.Step(-1.0 / 24)
			m.refresh()
		case ".":
			m.clock.Step(1.0 / 24)
			m.refresh()
		case "<":
			m.clock.Step(-1)
			m.refresh()
		case ">":
			m.clock.Step(1)
			m.refresh()
		case "r":
			m.statusMsg = "rate " + formatRate(m.clock.CycleRate())
		case "n":
			m.clock.JumpToNow()
			m.statusMsg = ""
			m.refresh()
		case "g":
			m.dateEntry = true
			m.dateBuf = ""

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~10 lines, footer ~2 lines
		contentHeight := msg.Height - 14
		m.disk = m.disk.SetSize(msg.Width, contentHeight)
		m.table = m.table.SetSize(msg.Width, contentHeight)
		m.detail = m.detail.SetSize(msg.Width, contentHeight)
		m.events = m.events.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		t := time.Time(msg)
		if !m.lastTick.IsZero() {
			m.clock.Advance(t.Sub(m.lastTick))
		}
		m.lastTick = t
		m.refresh()

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++

	case TableOpenDetailMsg:
		m.detail = m.detail.SetMoon(msg.Moon)
		m.viewMode = ViewDetail

	case eventsMsg:
		// Routed here so results land even after a view switch.
		m.events = m.events.SetResults(msg)

	case eventsJumpMsg:
		// Pause so the event stays on screen after the jump.
		m.clock.Pause()
		m.clock.SetJD(msg.jd)
		m.statusMsg = "paused at " + msg.label
		m.refresh()

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewDisk:
		m.disk, cmd = m.disk.Update(msg)
	case ViewTable:
		m.table, cmd = m.table.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewEvents:
		m.events, cmd = m.events.Update(msg)
	}
	return cmd
}

// updateDateEntry feeds keystrokes to the jump-to-date prompt.
func (m Model) updateDateEntry(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.dateEntry = false
		m.statusMsg = ""
	case "enter":
		m.dateEntry = false
		if err := m.jumpTo(strings.TrimSpace(m.dateBuf)); err != nil {
			m.statusMsg = err.Error()
		} else {
			m.statusMsg = ""
			m.refresh()
		}
	case "backspace":
		if len(m.dateBuf) > 0 {
			runes := []rune(m.dateBuf)
			m.dateBuf = string(runes[:len(runes)-1])
		}
	case " ", "space":
		m.dateBuf += " "
	default:
		if msg.Type == tea.KeyRunes {
			m.dateBuf += string(msg.Runes)
		}
	}
	return m
}

// jumpTo parses a prompt entry as either a Julian date or a calendar
// time and pins the clock there.
func (m Model) jumpTo(s string) error {
	if s == "" {
		return fmt.Errorf("empty date")
	}
	if jd, err := strconv.ParseFloat(s, 64); err == nil {
		if jd < 1e6 {
			return fmt.Errorf("JD %v out of range", jd)
		}
		m.clock.SetJD(jd)
		return nil
	}
	t, err := astro.ParseTime(s)
	if err != nil {
		return err
	}
	m.clock.SetJD(astro.JD(t))
	return nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewDisk:
		content = m.disk.View()
	case ViewTable:
		content = m.table.View()
	case ViewDetail:
		content = m.detail.View()
	case ViewEvents:
		content = m.events.View()
	}

	return m.renderFrame(content)
}

func (m Model) renderFrame(content string) string {
	header := m.renderHeader()
	footer := m.renderFooter()

	return header + "\n" + content + "\n" + footer
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	// ASCII art with smooth truecolor gradient
	logo := []string{
		`  ██╗     ███████╗      ███████╗ █████╗ ████████╗██╗   ██╗██████╗ ███╗   ██╗`,
		`  ██║     ██╔════╝      ██╔════╝██╔══██╗╚══██╔══╝██║   ██║██╔══██╗████╗  ██║`,
		`  ██║     ███████╗█████╗███████╗███████║   ██║   ██║   ██║██████╔╝██╔██╗ ██║`,
		`  ██║     ╚════██║╚════╝╚════██║██╔══██║   ██║   ██║   ██║██╔══██╗██║╚██╗██║`,
		`  ███████╗███████║      ███████║██║  ██║   ██║   ╚██████╔╝██║  ██║██║ ╚████║`,
		`  ╚══════╝╚══════╝      ╚══════╝╚═╝  ╚═╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═══╝`,
	}

	var b strings.Builder
	b.WriteString("\n")

	// Render each line with a horizontal truecolor gradient
	for row, line := range logo {
		runes := []rune(line)
		lineLen := len(runes)

		for col, r := range runes {
			color := gradientColor(col, row, lineLen, len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	// Tagline
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Satellites of Saturn · Closed-form Ephemeris"))
	b.WriteString("\n")

	copyright := fmt.Sprintf("  (c) 2025 litescript.net | v%s", version.Version)
	b.WriteString(muted.Render(copyright))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo
// gradient: pale sand through gold into dusty orange, Saturn's own
// palette, brighter at the top and darker toward the bottom.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64

	if xRatio < 0.33 {
		// Sand to gold
		t := xRatio / 0.33
		r = 232 + t*(217-232)
		g = 213 + t*(164-213)
		b = 168 + t*(65-168)
	} else if xRatio < 0.66 {
		// Gold to amber
		t := (xRatio - 0.33) / 0.33
		r = 217 + t*(201-217)
		g = 164 + t*(123-164)
		b = 65 + t*(45-65)
	} else {
		// Amber to dusty brown
		t := (xRatio - 0.66) / 0.34
		r = 201 + t*(168-201)
		g = 123 + t*(92-123)
		b = 45 + t*(50-45)
	}

	// Vertical fade: brighter at top, darker toward bottom
	brightnessFactor := 1.0 - (yRatio * 0.5)
	r *= brightnessFactor
	g *= brightnessFactor
	b *= brightnessFactor

	ri, gi, bi := int(r), int(g), int(b)
	if ri > 255 {
		ri = 255
	}
	if gi > 255 {
		gi = 255
	}
	if bi > 255 {
		bi = 255
	}
	if ri < 0 {
		ri = 0
	}
	if gi < 0 {
		gi = 0
	}
	if bi < 0 {
		bi = 0
	}

	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Disk", "[2] Table", "[3] Moon", "[4] Events"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D9A441")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D9A441"))

	if m.dateEntry {
		prompt := accentStyle.Render("Go to date/JD: ") + m.dateBuf + "█"
		return "  " + prompt + "  " + dimStyle.Render("(enter: jump | esc: cancel)")
	}

	// Animated spinner frames
	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

	snap := m.frame.Snap
	var status string
	if m.frame.Err != nil {
		status = errorStyle.Render("ERROR: " + m.frame.Err.Error())
	} else {
		var marker string
		if snap.Playing {
			marker = accentStyle.Render(spinnerFrames[m.animTick%len(spinnerFrames)])
		} else {
			marker = accentStyle.Render("⏸")
		}
		status = marker + dimStyle.Render(fmt.Sprintf(" %s  JD %.5f  %s  (%s)",
			snap.Time.Format("2006-01-02 15:04:05"), snap.JD,
			formatRate(snap.Rate), m.provider.Name()))
	}

	// View-specific help hints
	var help string
	switch m.viewMode {
	case ViewDisk:
		help = dimStyle.Render("j/k: moon | +/-: zoom | l: labels | t: trail | f: flip")
	case ViewTable:
		help = dimStyle.Render("↑↓: navigate | enter: detail")
	case ViewDetail:
		help = dimStyle.Render("←/→: moon")
	case ViewEvents:
		help = dimStyle.Render("↑↓: scroll | enter: go to event | s: rescan")
	}
	help += dimStyle.Render(" | space ,.<>: time | r: rate | g: goto | n: now")

	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + help

	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}

	return footer
}

// formatRate renders a clock rate as simulated-time-per-wall-second.
func formatRate(rate float64) string {
	switch {
	case rate < 60:
		return fmt.Sprintf("%gs/s", rate)
	case rate < 3600:
		return fmt.Sprintf("%gm/s", rate/60)
	case rate < 86400:
		return fmt.Sprintf("%gh/s", rate/3600)
	default:
		return fmt.Sprintf("%gd/s", rate/86400)
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}
