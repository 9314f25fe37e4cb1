// Package state holds the simulation clock shared between the UI loop
// and background commands, with thread-safe access.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-saturn/internal/astro"
)

// Rates are the multipliers the clock cycles through, in simulated
// seconds per wall-clock second.
var Rates = []float64{1, 60, 600, 3600, 21600, 86400, 604800}

const secondsPerDay = 86400

// Clock advances a simulated TD Julian date in wall time. A paused
// clock holds its epoch; a running one accumulates wall time scaled by
// the current rate. All methods are safe for concurrent use.
type Clock struct {
	mu      sync.RWMutex
	jd      float64
	playing bool
	rateIdx int
}

// Snapshot is one consistent view of the clock.
type Snapshot struct {
	JD      float64
	Time    time.Time
	Playing bool
	Rate    float64 // simulated seconds per wall second
}

// NewClock returns a running clock at the given Julian date, advancing
// one simulated hour per wall second.
func NewClock(jd float64) *Clock {
	return &Clock{jd: jd, playing: true, rateIdx: 3}
}

// Advance accumulates a wall-time delta at the current rate. Paused
// clocks ignore it.
func (c *Clock) Advance(wall time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.playing {
		return
	}
	c.jd += wall.Seconds() * Rates[c.rateIdx] / secondsPerDay
}

// Step jumps the epoch by a signed number of days, playing or not.
func (c *Clock) Step(days float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jd += days
}

// SetJD pins the epoch to a Julian date.
func (c *Clock) SetJD(jd float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jd = jd
}

// JumpToNow pins the epoch to the current wall-clock time.
func (c *Clock) JumpToNow() {
	c.SetJD(astro.JD(time.Now()))
}

// Pause stops the clock at its current epoch.
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = false
}

// Resume lets the clock run again.
func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = true
}

// Toggle flips between running and paused and reports the new state.
func (c *Clock) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = !c.playing
	return c.playing
}

// CycleRate switches to the next rate multiplier, wrapping around, and
// returns it.
func (c *Clock) CycleRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rateIdx = (c.rateIdx + 1) % len(Rates)
	return Rates[c.rateIdx]
}

// Snapshot returns a consistent view of the clock.
func (c *Clock) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		JD:      c.jd,
		Time:    astro.JDToTime(c.jd),
		Playing: c.playing,
		Rate:    Rates[c.rateIdx],
	}
}

// JD returns the current epoch.
func (c *Clock) JD() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jd
}
