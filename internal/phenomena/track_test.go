package phenomena

import (
	"math"
	"testing"

	"github.com/litescript/ls-saturn/internal/ephem"
	"github.com/litescript/ls-saturn/internal/moons"
)

func TestTrack(t *testing.T) {
	p := staticProvider()
	got, err := Track(p, moons.Rhea, scanJD0, scanJD0+1, 0.25)
	if err != nil {
		t.Fatalf("Track() error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d points, want 5", len(got))
	}
	if got[0].JD != scanJD0 {
		t.Errorf("first point at %.6f, want window start %.6f", got[0].JD, scanJD0)
	}
	if last := got[len(got)-1].JD; last > scanJD0+1 {
		t.Errorf("last point at %.6f past the window end", last)
	}

	// Each point matches a direct evaluation at its epoch.
	for _, pt := range got {
		ctx, err := ephem.ContextAt(p, pt.JD)
		if err != nil {
			t.Fatalf("ContextAt(%.6f) error: %v", pt.JD, err)
		}
		if want := ctx.Position(moons.Rhea); pt.Pos != want {
			t.Errorf("JD %.6f: point %+v, direct evaluation %+v", pt.JD, pt.Pos, want)
		}
	}
}

func TestTrackDefaultStep(t *testing.T) {
	// A non-positive step falls back to a fraction of the orbit, fine
	// enough that consecutive points stay close together.
	got, err := Track(staticProvider(), moons.Mimas, scanJD0, scanJD0+moons.Mimas.PeriodDays(), 0)
	if err != nil {
		t.Fatalf("Track() error: %v", err)
	}
	if len(got) < defaultSamplesPerOrbit {
		t.Fatalf("got %d points over one orbit, want at least %d", len(got), defaultSamplesPerOrbit)
	}
	for i := 1; i < len(got); i++ {
		dx := got[i].Pos.X - got[i-1].Pos.X
		dy := got[i].Pos.Y - got[i-1].Pos.Y
		if step := math.Hypot(dx, dy); step > 0.15 {
			t.Errorf("points %d-%d jump %.4f radii apart", i-1, i, step)
		}
	}
}

func TestTrackEmptyWindow(t *testing.T) {
	if _, err := Track(staticProvider(), moons.Titan, scanJD0, scanJD0, 0.1); err == nil {
		t.Error("Track() with empty window succeeded, want error")
	}
}
