package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-saturn/internal/moons"
)

func TestNewDiskModel(t *testing.T) {
	m := NewDiskModel(testProvider())

	if m.selected != moons.Titan {
		t.Errorf("initial selection = %v, want Titan", m.selected)
	}
	if m.field() != 26 {
		t.Errorf("initial field = %v, want 26", m.field())
	}
	if m.labelMode != LabelFocused {
		t.Errorf("initial labelMode = %d, want LabelFocused", m.labelMode)
	}
}

func TestDiskModelMoonCycle(t *testing.T) {
	m := NewDiskModel(testProvider())
	m = m.UpdateData(testFrame())

	m, _ = m.Update(keyRunes("k"))
	if m.selected != moons.Hyperion {
		t.Errorf("after 'k', selected = %v, want Hyperion", m.selected)
	}

	m, _ = m.Update(keyRunes("j"))
	if m.selected != moons.Titan {
		t.Errorf("after 'j', selected = %v, want Titan", m.selected)
	}

	// Wrap at both ends: Titan, Hyperion, Iapetus, then around.
	for i := 0; i < 3; i++ {
		m, _ = m.Update(keyRunes("k"))
	}
	if m.selected != moons.Mimas {
		t.Errorf("after wrap forward, selected = %v, want Mimas", m.selected)
	}
	m, _ = m.Update(keyRunes("j"))
	if m.selected != moons.Iapetus {
		t.Errorf("after wrap backward, selected = %v, want Iapetus", m.selected)
	}
}

func TestDiskModelZoom(t *testing.T) {
	m := NewDiskModel(testProvider())

	m, _ = m.Update(keyRunes("+"))
	if m.field() != 12 {
		t.Errorf("after '+', field = %v, want 12", m.field())
	}

	m, _ = m.Update(keyRunes("-"))
	m, _ = m.Update(keyRunes("-"))
	if m.field() != 65 {
		t.Errorf("field = %v, want 65", m.field())
	}

	// Clamped at the widest field.
	m, _ = m.Update(keyRunes("-"))
	if m.field() != 65 {
		t.Errorf("field should stay at 65, got %v", m.field())
	}

	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyRunes("+"))
	}
	if m.field() != 4 {
		t.Errorf("field should clamp at 4, got %v", m.field())
	}
}

func TestDiskModelLabelCycle(t *testing.T) {
	m := NewDiskModel(testProvider())

	m, _ = m.Update(keyRunes("l"))
	if m.labelMode != LabelAll {
		t.Errorf("after first 'l', labelMode = %d, want LabelAll", m.labelMode)
	}
	m, _ = m.Update(keyRunes("l"))
	if m.labelMode != LabelNone {
		t.Errorf("after second 'l', labelMode = %d, want LabelNone", m.labelMode)
	}
	m, _ = m.Update(keyRunes("l"))
	if m.labelMode != LabelFocused {
		t.Errorf("after third 'l', labelMode = %d, want LabelFocused", m.labelMode)
	}
}

func TestDiskModelFlip(t *testing.T) {
	m := NewDiskModel(testProvider())

	// X positive (west) maps right of center by default.
	if got := m.screenX(50, 2, 10); got != 70 {
		t.Errorf("screenX = %d, want 70", got)
	}

	m, _ = m.Update(keyRunes("f"))
	if !m.flipX {
		t.Error("'f' should flip the view")
	}
	if got := m.screenX(50, 2, 10); got != 30 {
		t.Errorf("flipped screenX = %d, want 30", got)
	}
}

func TestDiskModelTrail(t *testing.T) {
	m := NewDiskModel(testProvider())
	m = m.UpdateData(testFrame())

	m, _ = m.Update(keyRunes("t"))
	if !m.showTrail {
		t.Fatal("'t' should enable the trail")
	}
	if len(m.trail) < trailSamples {
		t.Errorf("trail has %d points, want at least %d", len(m.trail), trailSamples)
	}

	// The trail follows the frame as the clock moves. The last sample
	// lands within one step of the new epoch.
	m = m.UpdateData(testFrameAt(testJD + 1))
	last := m.trail[len(m.trail)-1]
	if last.JD < testJD+0.8 {
		t.Errorf("trail end JD = %v, want near %v", last.JD, testJD+1)
	}

	m, _ = m.Update(keyRunes("t"))
	if m.showTrail || m.trail != nil {
		t.Error("second 't' should clear the trail")
	}
}

func TestDiskModelView(t *testing.T) {
	m := NewDiskModel(testProvider())
	m = m.SetSize(100, 30)
	m = m.UpdateData(testFrame())

	view := m.View()
	if len(view) == 0 {
		t.Fatal("expected non-empty view")
	}
	if !containsRune(view, '▒') {
		t.Error("view should contain the disk fill ▒")
	}
	if !containsRune(view, '·') {
		t.Error("view should contain ring dots ·")
	}
	if got := strings.Count(view, "◉"); got != 2 {
		t.Errorf("%d ◉ glyphs, want 2 (canvas and HUD)", got)
	}
	if !strings.Contains(view, "◉ Titan") {
		t.Error("HUD should name the selected moon")
	}
	if !strings.Contains(view, "±26 R") {
		t.Error("HUD should show the field of view")
	}
	if !strings.Contains(view, "+16.5°") {
		t.Error("HUD should show the ring opening")
	}
}

func TestDiskModelViewSmall(t *testing.T) {
	m := NewDiskModel(testProvider())
	m = m.SetSize(20, 5)

	if !strings.Contains(m.View(), "small") {
		t.Error("expected small-terminal notice")
	}
}

func TestDiskModelHUDStates(t *testing.T) {
	m := NewDiskModel(testProvider())
	m = m.SetSize(100, 30)

	// Walk selection to Mimas.
	for m.selected != moons.Mimas {
		m, _ = m.Update(keyRunes("j"))
	}

	// Mimas is on the disk in front at this epoch.
	m = m.UpdateData(testFrameAt(2448972.70))
	if !strings.Contains(m.View(), "in transit") {
		t.Error("HUD should flag a transiting moon")
	}

	// And behind the disk a few hours later.
	m = m.UpdateData(testFrameAt(2448973.14))
	if !strings.Contains(m.View(), "occulted") {
		t.Error("HUD should flag an occulted moon")
	}
}

func TestDiskModelOccultedHidden(t *testing.T) {
	m := NewDiskModel(testProvider())
	m = m.SetSize(100, 30)

	// Select Mimas and zoom to the inner system.
	for m.selected != moons.Mimas {
		m, _ = m.Update(keyRunes("j"))
	}
	m, _ = m.Update(keyRunes("+"))
	m, _ = m.Update(keyRunes("+"))
	m, _ = m.Update(keyRunes("+"))

	// Occulted: the canvas glyph disappears, leaving only the HUD's.
	m = m.UpdateData(testFrameAt(2448973.14))
	if got := strings.Count(m.View(), "◉"); got != 1 {
		t.Errorf("occulted moon: %d ◉ glyphs, want 1 (HUD only)", got)
	}

	// In transit it is drawn over the disk.
	m = m.UpdateData(testFrameAt(2448972.70))
	if got := strings.Count(m.View(), "◉"); got != 2 {
		t.Errorf("transiting moon: %d ◉ glyphs, want 2", got)
	}
}

func TestRingOpenDeg(t *testing.T) {
	f := testFrame()

	got := ringOpenDeg(f.Pole)
	if got < 16.4 || got > 16.6 {
		t.Errorf("ring opening = %v°, want about +16.47°", got)
	}
}

func TestDiskModelIgnoresUnknownMsg(t *testing.T) {
	m := NewDiskModel(testProvider())
	m2, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if cmd != nil {
		t.Error("unexpected command")
	}
	if m2.width != m.width {
		t.Error("size changes only through SetSize")
	}
}
