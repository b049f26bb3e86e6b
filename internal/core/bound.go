package core

// Bound resolves a tentative coordinate against a w×h rectangle.
//
// Implementations are zero-sized and picked by type parameter at the call
// site (see Inside), so movement code stays identical for every topology.
type Bound interface {
	Resolve(t Tentative, w, h SmallNat) (Coordinate, bool)
}

// Wrap resolves with toroidal wrap-around. It always succeeds.
type Wrap struct{}

// Resolve implements Bound.
func (Wrap) Resolve(t Tentative, w, h SmallNat) (Coordinate, bool) {
	return t.Wrap(w, h), true
}

// Clip rejects coordinates outside the rectangle.
type Clip struct{}

// Resolve implements Bound.
func (Clip) Resolve(t Tentative, w, h SmallNat) (Coordinate, bool) {
	return t.Clip(w, h)
}

// Inside resolves t against the logical size of g using policy B.
func Inside[B Bound](t Tentative, g *Grid) (Coordinate, bool) {
	var b B
	return b.Resolve(t, g.w, g.h)
}
