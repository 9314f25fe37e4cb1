package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-saturn/internal/astro"
	"github.com/litescript/ls-saturn/internal/ephem"
	"github.com/litescript/ls-saturn/internal/phenomena"
)

// scanWindowDays is the span of one background event scan.
const scanWindowDays = 30

type (
	// eventsMsg carries the results of a background event scan.
	eventsMsg struct {
		events []phenomena.Event
		err    error
		start  float64
		end    float64
	}

	// eventsJumpMsg asks the root model to pin the clock on an event.
	eventsJumpMsg struct {
		jd    float64
		label string
	}
)

// EventsModel lists the satellite events of the next scan window,
// found by a background scan so the clock keeps ticking meanwhile.
type EventsModel struct {
	provider ephem.SaturnProvider

	width  int
	height int
	frame  Frame

	events    []phenomena.Event
	scanStart float64
	scanEnd   float64
	scanned   bool
	scanning  bool
	scanErr   error

	cursor       int
	scrollOffset int
}

// NewEventsModel creates the events view.
func NewEventsModel(p ephem.SaturnProvider) EventsModel {
	return EventsModel{provider: p}
}

// SetSize updates the viewport size.
func (m EventsModel) SetSize(width, height int) EventsModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new evaluated frame.
func (m EventsModel) UpdateData(f Frame) EventsModel {
	m.frame = f
	return m
}

// MaybeScan starts a background scan when none has run yet or the
// clock has moved outside the scanned window's first half.
func (m EventsModel) MaybeScan() (EventsModel, tea.Cmd) {
	if m.scanning {
		return m, nil
	}
	jd := m.frame.Snap.JD
	stale := !m.scanned || jd < m.scanStart || jd > m.scanStart+scanWindowDays/2
	if !stale {
		return m, nil
	}
	m.scanning = true
	return m, scanCmd(m.provider, jd)
}

// scanCmd runs the event scan off the UI goroutine.
func scanCmd(p ephem.SaturnProvider, start float64) tea.Cmd {
	return func() tea.Msg {
		end := start + scanWindowDays
		events, err := phenomena.Scan(p, phenomena.ScanConfig{Start: start, End: end})
		return eventsMsg{events: events, err: err, start: start, end: end}
	}
}

// SetResults installs the outcome of a finished scan.
func (m EventsModel) SetResults(msg eventsMsg) EventsModel {
	m.scanning = false
	m.scanned = true
	m.events = msg.events
	m.scanErr = msg.err
	m.scanStart = msg.start
	m.scanEnd = msg.end
	if m.cursor >= len(m.events) {
		m.cursor = 0
		m.scrollOffset = 0
	}
	return m
}

// Update handles input messages.
func (m EventsModel) Update(msg tea.Msg) (EventsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.events)-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if len(m.events) > 0 {
				m.cursor = len(m.events) - 1
			}
		case "enter":
			if m.cursor < len(m.events) {
				ev := m.events[m.cursor]
				return m, func() tea.Msg {
					return eventsJumpMsg{
						jd:    ev.JD,
						label: fmt.Sprintf("%s %s", ev.Moon, ev.Kind),
					}
				}
			}
		case "s":
			if !m.scanning {
				m.scanning = true
				return m, scanCmd(m.provider, m.frame.Snap.JD)
			}
		}
	}
	return m, nil
}

// View renders the events view.
func (m EventsModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for events view"
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D9A441"))

	var b strings.Builder

	switch {
	case m.scanErr != nil:
		b.WriteString("\n  " + errorStyle.Render("scan failed: "+m.scanErr.Error()) + "\n")
		b.WriteString("  " + dimStyle.Render("press s to retry"))
		return b.String()
	case m.scanning && !m.scanned:
		b.WriteString("\n  " + accentStyle.Render(fmt.Sprintf("Scanning %d days of satellite events...", scanWindowDays)))
		return b.String()
	case !m.scanned:
		b.WriteString("\n  " + dimStyle.Render("press s to scan for events"))
		return b.String()
	}

	title := fmt.Sprintf("  %d events  %s → %s", len(m.events),
		astro.JDToTime(m.scanStart).Format("2006-01-02"),
		astro.JDToTime(m.scanEnd).Format("2006-01-02"))
	if m.scanning {
		title += "  (rescanning...)"
	}
	b.WriteString(headerStyle.Render(title) + "\n")

	header := fmt.Sprintf("  %-16s  %-9s  %-20s %8s %8s",
		"Time (TD)", "Moon", "Event", "X", "Y")
	b.WriteString(dimStyle.Render(header) + "\n")
	b.WriteString(dimStyle.Render("  "+strings.Repeat("─", 70)) + "\n")

	if len(m.events) == 0 {
		b.WriteString("  " + dimStyle.Render("no events in window"))
		return b.String()
	}

	maxRows := m.height - 6
	if maxRows < 3 {
		maxRows = 3
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+maxRows {
		m.scrollOffset = m.cursor - maxRows + 1
	}

	now := m.frame.Snap.JD
	nextIdx := -1
	for i, ev := range m.events {
		if ev.JD >= now {
			nextIdx = i
			break
		}
	}

	end := m.scrollOffset + maxRows
	if end > len(m.events) {
		end = len(m.events)
	}

	if m.scrollOffset > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ▲ %d earlier", m.scrollOffset)) + "\n")
	}

	for i := m.scrollOffset; i < end; i++ {
		ev := m.events[i]

		marker := "  "
		if i == nextIdx {
			marker = accentStyle.Render("▶ ")
		}

		line := fmt.Sprintf("%-16s  %-9s  %-20s %8.3f %8.3f",
			astro.JDToTime(ev.JD).Format("2006-01-02 15:04"),
			ev.Moon, ev.Kind, ev.X, ev.Y)

		switch {
		case i == m.cursor:
			selected := lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Bold(true)
			b.WriteString(marker + selected.Render(line) + "\n")
		case ev.JD < now:
			b.WriteString(marker + dimStyle.Render(line) + "\n")
		default:
			b.WriteString(marker + kindStyle(ev.Kind).Render(line) + "\n")
		}
	}

	if end < len(m.events) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ▼ %d more", len(m.events)-end)) + "\n")
	}

	return b.String()
}

// kindStyle colors an event row by its class: disk crossings stand
// out, center-line crossings recede.
func kindStyle(k phenomena.EventKind) lipgloss.Style {
	switch k {
	case phenomena.EventTransitStart, phenomena.EventTransitEnd:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	case phenomena.EventOccultationStart, phenomena.EventOccultationEnd:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	case phenomena.EventInferiorConjunction, phenomena.EventSuperiorConjunction:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	}
}
