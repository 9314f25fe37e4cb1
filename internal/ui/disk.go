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
)

// Ring extents and disk shape in Saturn equatorial radii.
const (
	ringOuterRadii = 2.27  // A ring outer edge
	ringInnerRadii = 1.53  // B ring inner edge
	diskFlattening = 0.902 // polar over equatorial radius
)

// trailSamples is the number of track points drawn for one orbit.
const trailSamples = 96

// fieldRadii are the discrete field-of-view half-widths, chosen so
// each step out brings the next group of orbits into frame.
var fieldRadii = []float64{4, 7, 12, 26, 65}

// LabelMode controls how many moon labels are drawn.
type LabelMode int

const (
	LabelFocused LabelMode = iota
	LabelAll
	LabelNone
)

// DiskModel renders the apparent view of Saturn's disk, rings and
// moons: X west, Y north, drawn with east to the left as on the sky.
type DiskModel struct {
	provider ephem.SaturnProvider

	width  int
	height int
	frame  Frame

	selected  moons.Moon
	fieldIdx  int
	labelMode LabelMode
	flipX     bool
	showTrail bool
	trail     []phenomena.TrackPoint
}

// NewDiskModel creates the disk view.
func NewDiskModel(p ephem.SaturnProvider) DiskModel {
	return DiskModel{
		provider: p,
		selected: moons.Titan,
		fieldIdx: 3, // ±26 radii, out to Hyperion
	}
}

// field returns the current field-of-view half-width in radii.
func (m DiskModel) field() float64 {
	if m.fieldIdx < 0 || m.fieldIdx >= len(fieldRadii) {
		return fieldRadii[len(fieldRadii)-1]
	}
	return fieldRadii[m.fieldIdx]
}

// SetSize updates the viewport size.
func (m DiskModel) SetSize(width, height int) DiskModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new evaluated frame.
func (m DiskModel) UpdateData(f Frame) DiskModel {
	m.frame = f
	if m.showTrail {
		m.trail = m.computeTrail()
	}
	return m
}

// Update handles input messages.
func (m DiskModel) Update(msg tea.Msg) (DiskModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j":
			m.selected = (m.selected + moons.Count - 1) % moons.Count
			if m.showTrail {
				m.trail = m.computeTrail()
			}
		case "k":
			m.selected = (m.selected + 1) % moons.Count
			if m.showTrail {
				m.trail = m.computeTrail()
			}
		case "+", "=":
			if m.fieldIdx > 0 {
				m.fieldIdx--
			}
		case "-":
			if m.fieldIdx < len(fieldRadii)-1 {
				m.fieldIdx++
			}
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		case "f":
			m.flipX = !m.flipX
		case "t":
			m.showTrail = !m.showTrail
			if m.showTrail {
				m.trail = m.computeTrail()
			} else {
				m.trail = nil
			}
		}
	}
	return m, nil
}

// computeTrail samples the selected moon's track over the orbit
// ending at the current epoch.
func (m DiskModel) computeTrail() []phenomena.TrackPoint {
	jd := m.frame.Snap.JD
	period := m.selected.PeriodDays()
	pts, err := phenomena.Track(m.provider, m.selected, jd-period, jd, period/trailSamples)
	if err != nil {
		return nil
	}
	return pts
}

// View renders the disk view.
func (m DiskModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for disk view"
	}

	canvas := m.buildCanvas()
	hud := m.renderHUD()

	return lipgloss.JoinVertical(lipgloss.Left, canvas, hud)
}

// moonPos tracks a moon's screen position for label rendering.
type moonPos struct {
	x, y       int
	name       string
	isSelected bool
}

// screenX maps an apparent X offset in radii to a column. X is
// positive toward the west; the unflipped view puts east on the left.
func (m DiskModel) screenX(cx int, scale, x float64) int {
	if m.flipX {
		return cx - int(x*scale)
	}
	return cx + int(x*scale)
}

func (m DiskModel) buildCanvas() string {
	// Reserve space for the HUD
	canvasH := m.height - 4
	if canvasH < 5 {
		canvasH = 5
	}
	canvasW := m.width

	grid := make([][]rune, canvasH)
	for y := range grid {
		grid[y] = make([]rune, canvasW)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	cx := canvasW / 2
	cy := canvasH / 2

	// Columns per radius: fit the field both ways, with cell aspect
	// folded into the vertical mapping.
	field := m.field()
	scaleW := float64(cx-1) / field
	scaleH := 2 * float64(cy-1) / field
	scale := math.Min(scaleW, scaleH) * 0.95

	poleZ := m.frame.Pole.Z

	// Rings behind the planet first, so the disk can cover them.
	m.drawRings(grid, cx, cy, scale, poleZ, false)
	m.drawDisk(grid, cx, cy, scale, poleZ)
	m.drawRings(grid, cx, cy, scale, poleZ, true)

	if m.showTrail {
		m.drawTrail(grid, cx, cy, scale)
	}

	// Selected moon's orbit as a reference ellipse.
	m.drawOrbit(grid, cx, cy, scale, poleZ)

	var positions []moonPos
	for _, mn := range moons.All() {
		pos := m.frame.Pos[mn]

		// A moon inside the disk outline on the far side is hidden.
		if pos.Rho() < 1 && pos.Z > 0 {
			continue
		}

		sx := m.screenX(cx, scale, pos.X)
		sy := cy - int(pos.Y*scale*0.5)
		if sx < 0 || sx >= canvasW || sy < 0 || sy >= canvasH {
			continue
		}

		glyph := '●'
		if mn == m.selected {
			glyph = '◉'
		}
		grid[sy][sx] = glyph

		positions = append(positions, moonPos{
			x:          sx,
			y:          sy,
			name:       mn.String(),
			isSelected: mn == m.selected,
		})
	}

	m.renderLabels(grid, canvasW, canvasH, positions)

	return m.renderGrid(grid)
}

// drawDisk fills the planet's outline. The projected polar semi-axis
// follows the ring opening: an edge-on Saturn shows its full
// flattening, a tipped one less.
func (m DiskModel) drawDisk(grid [][]rune, cx, cy int, scale, poleZ float64) {
	sinB := math.Abs(poleZ)
	cosB := math.Sqrt(1 - sinB*sinB)
	b := math.Sqrt(sinB*sinB + diskFlattening*diskFlattening*cosB*cosB)

	h := len(grid)
	w := len(grid[0])

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x-cx) / scale
			dy := float64(cy-y) * 2 / scale
			if dx*dx+(dy/b)*(dy/b) <= 1 {
				grid[y][x] = '▒'
			}
		}
	}
}

// drawRings draws the ring system's edge ellipses. The front pass
// draws only the arm between Earth and the planet, after the disk has
// covered the far arm.
func (m DiskModel) drawRings(grid [][]rune, cx, cy int, scale, poleZ float64, front bool) {
	h := len(grid)
	w := len(grid[0])

	for _, r := range []float64{ringInnerRadii, ringOuterRadii} {
		steps := int(4 * math.Pi * r * scale)
		if steps < 16 {
			steps = 16
		}
		for i := 0; i < steps; i++ {
			theta := 2 * math.Pi * float64(i) / float64(steps)
			s := math.Sin(theta)
			if (s*poleZ > 0) != front {
				continue
			}
			x := m.screenX(cx, scale, r*math.Cos(theta))
			y := cy - int(r*s*math.Abs(poleZ)*scale*0.5)
			if x >= 0 && x < w && y >= 0 && y < h && (front || grid[y][x] == ' ') {
				grid[y][x] = '·'
			}
		}
	}
}

// drawOrbit sketches the selected moon's orbit, projected with the
// ring plane's opening.
func (m DiskModel) drawOrbit(grid [][]rune, cx, cy int, scale, poleZ float64) {
	r := m.selected.OrbitRadii()
	h := len(grid)
	w := len(grid[0])

	steps := int(2 * math.Pi * r * scale)
	if steps < 24 {
		steps = 24
	}
	if steps > 720 {
		steps = 720
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := m.screenX(cx, scale, r*math.Cos(theta))
		y := cy - int(r*math.Sin(theta)*math.Abs(poleZ)*scale*0.5)
		if x >= 0 && x < w && y >= 0 && y < h && grid[y][x] == ' ' {
			grid[y][x] = '˙'
		}
	}
}

func (m DiskModel) drawTrail(grid [][]rune, cx, cy int, scale float64) {
	h := len(grid)
	w := len(grid[0])

	for _, pt := range m.trail {
		x := m.screenX(cx, scale, pt.Pos.X)
		y := cy - int(pt.Pos.Y*scale*0.5)
		if x >= 0 && x < w && y >= 0 && y < h && grid[y][x] == ' ' {
			grid[y][x] = '∘'
		}
	}
}

// renderLabels draws moon names next to their glyphs.
func (m DiskModel) renderLabels(grid [][]rune, width, height int, positions []moonPos) {
	if m.labelMode == LabelNone {
		return
	}

	for _, pos := range positions {
		show := false
		switch m.labelMode {
		case LabelFocused:
			show = pos.isSelected
		case LabelAll:
			show = true
		}
		if !show {
			continue
		}

		labelX := pos.x + 2
		labelY := pos.y
		if labelY < 0 || labelY >= height || labelX >= width {
			continue
		}

		labelText := pos.name
		if pos.isSelected {
			labelText = "◄ " + pos.name
		}

		for i, r := range labelText {
			x := labelX + i
			if x >= width {
				break
			}
			if grid[labelY][x] == ' ' || grid[labelY][x] == '·' || grid[labelY][x] == '˙' {
				grid[labelY][x] = r
			}
		}
	}
}

func (m DiskModel) renderGrid(grid [][]rune) string {
	var b strings.Builder

	ringStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	orbitStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	diskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	trailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("66"))
	moonStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("249"))

	for _, row := range grid {
		for _, ch := range row {
			var style lipgloss.Style

			switch ch {
			case ' ':
				b.WriteRune(ch)
				continue
			case '·':
				style = ringStyle
			case '˙':
				style = orbitStyle
			case '▒':
				style = diskStyle
			case '∘':
				style = trailStyle
			case '●':
				style = moonStyle
			case '◉', '◄':
				style = focusStyle
			default:
				style = labelStyle
			}

			b.WriteString(style.Render(string(ch)))
		}
		b.WriteRune('\n')
	}

	return b.String()
}

func (m DiskModel) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D9A441")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	pos := m.frame.Pos[m.selected]
	rho := pos.Rho()

	b.WriteString(headerStyle.Render(fmt.Sprintf("◉ %s", m.selected)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("X:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%+8.3f", pos.X)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Y:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%+8.3f", pos.Y)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("ρ:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%7.3f R", rho)))
	switch {
	case rho < 1 && pos.Z > 0:
		b.WriteString("  " + dimStyle.Render("occulted"))
	case rho < 1:
		b.WriteString("  " + valueStyle.Render("in transit"))
	case pos.Z > 0:
		b.WriteString("  " + dimStyle.Render("far side"))
	}
	b.WriteString("\n")

	labelName := [...]string{"focus", "all", "off"}[m.labelMode]
	trailName := "off"
	if m.showTrail {
		trailName = "on"
	}
	orient := "E left"
	if m.flipX {
		orient = "E right"
	}

	b.WriteString(dimStyle.Render("Field:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("±%g R", m.field())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Rings:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%+.1f°", ringOpenDeg(m.frame.Pole))))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Labels:"))
	b.WriteString(valueStyle.Render(labelName))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Trail:"))
	b.WriteString(valueStyle.Render(trailName))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("View:"))
	b.WriteString(valueStyle.Render(orient))

	return b.String()
}

// ringOpenDeg converts the ring pole's line-of-sight component to the
// saturnicentric latitude of Earth: positive shows the north face.
func ringOpenDeg(pole moons.XYZ) float64 {
	return math.Asin(-pole.Z) * 180 / math.Pi
}

// Selected returns the currently selected moon.
func (m DiskModel) Selected() moons.Moon {
	return m.selected
}
