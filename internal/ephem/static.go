package ephem

// StaticProvider serves one fixed geometry for every epoch. It exists
// to reproduce published worked examples exactly and to pin the
// geometry in tests.
type StaticProvider struct {
	g Geometry
}

// NewStatic returns a provider that always reports g.
func NewStatic(g Geometry) *StaticProvider { return &StaticProvider{g: g} }

// Name returns the provider name.
func (p *StaticProvider) Name() string { return "static" }

// Available always reports true.
func (p *StaticProvider) Available() bool { return true }

// Geometry returns the fixed geometry regardless of epoch.
func (p *StaticProvider) Geometry(jde float64) (Geometry, error) {
	return p.g, nil
}
