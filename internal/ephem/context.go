package ephem

import "github.com/litescript/ls-saturn/internal/moons"

// ContextAt builds the satellite-theory evaluation context for an
// epoch: the provider's of-date geometry, reduced to the theory's
// reference equinox.
func ContextAt(p SaturnProvider, jde float64) (*moons.Context, error) {
	g, err := p.Geometry(jde)
	if err != nil {
		return nil, err
	}
	lon0, lat0 := g.Saturn1950(jde)
	return moons.NewContext(jde, lon0, lat0, g.DeltaAU), nil
}
