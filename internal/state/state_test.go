package state

import (
	"math"
	"sync"
	"testing"
	"time"
)

const jd0 = 2448972.5

func TestNewClock(t *testing.T) {
	c := NewClock(jd0)

	snap := c.Snapshot()
	if snap.JD != jd0 {
		t.Errorf("JD = %v, want %v", snap.JD, jd0)
	}
	if !snap.Playing {
		t.Error("new clock should be playing")
	}
	if snap.Rate != 3600 {
		t.Errorf("Rate = %v, want 3600", snap.Rate)
	}
	if y := snap.Time.Year(); y != 1992 {
		t.Errorf("Time year = %d, want 1992", y)
	}
}

func TestClock_Advance(t *testing.T) {
	c := NewClock(jd0)

	// One wall second at 3600x is one simulated hour.
	c.Advance(time.Second)
	want := jd0 + 1.0/24
	if got := c.JD(); math.Abs(got-want) > 1e-9 {
		t.Errorf("JD after advance = %v, want %v", got, want)
	}
}

func TestClock_AdvancePaused(t *testing.T) {
	c := NewClock(jd0)
	c.Pause()

	c.Advance(time.Minute)
	if got := c.JD(); got != jd0 {
		t.Errorf("paused clock moved: JD = %v, want %v", got, jd0)
	}

	c.Resume()
	c.Advance(time.Second)
	if got := c.JD(); got == jd0 {
		t.Error("resumed clock did not move")
	}
}

func TestClock_Step(t *testing.T) {
	c := NewClock(jd0)
	c.Pause()

	c.Step(1)
	c.Step(-0.5)
	if got := c.JD(); got != jd0+0.5 {
		t.Errorf("JD after steps = %v, want %v", got, jd0+0.5)
	}
}

func TestClock_Toggle(t *testing.T) {
	c := NewClock(jd0)

	if playing := c.Toggle(); playing {
		t.Error("first toggle should pause")
	}
	if playing := c.Toggle(); !playing {
		t.Error("second toggle should resume")
	}
}

func TestClock_CycleRate(t *testing.T) {
	c := NewClock(jd0)

	seen := map[float64]bool{c.Snapshot().Rate: true}
	for i := 0; i < len(Rates)-1; i++ {
		seen[c.CycleRate()] = true
	}
	if len(seen) != len(Rates) {
		t.Errorf("cycled through %d rates, want %d", len(seen), len(Rates))
	}
	if got := c.CycleRate(); got != 3600 {
		t.Errorf("rate after full cycle = %v, want 3600", got)
	}
}

func TestClock_SetJD(t *testing.T) {
	c := NewClock(jd0)
	c.SetJD(2460310.5)
	if got := c.JD(); got != 2460310.5 {
		t.Errorf("JD = %v, want 2460310.5", got)
	}
}

func TestClock_JumpToNow(t *testing.T) {
	c := NewClock(jd0)
	c.JumpToNow()

	snap := c.Snapshot()
	if d := time.Since(snap.Time); d < -time.Minute || d > time.Minute {
		t.Errorf("JumpToNow landed %v from wall clock", d)
	}
}

func TestClock_Concurrent(t *testing.T) {
	c := NewClock(jd0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Advance(time.Millisecond)
				c.Step(0.001)
				c.Snapshot()
				c.Toggle()
			}
		}()
	}
	wg.Wait()

	if got := c.JD(); math.IsNaN(got) || got < jd0 {
		t.Errorf("JD after concurrent use = %v", got)
	}
}
