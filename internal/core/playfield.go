package core

// Playfield is the size of the play area in playfield units.
// The playfield is centered on the origin.
type Playfield struct {
	Width  float64
	Height float64
}

// HalfExtents returns half the width and half the height.
func (p Playfield) HalfExtents() (float64, float64) {
	return p.Width / 2, p.Height / 2
}

// GeometryProvider supplies the current playfield size.
// Hosts implement it from their window or terminal; ok is false when no
// geometry is available (e.g. no active window).
type GeometryProvider interface {
	Geometry() (field Playfield, ok bool)
}

// GeometryFunc adapts a plain function to GeometryProvider.
type GeometryFunc func() (Playfield, bool)

// Geometry implements GeometryProvider.
func (f GeometryFunc) Geometry() (Playfield, bool) {
	return f()
}

// FixedGeometry always reports the same playfield.
type FixedGeometry Playfield

// Geometry implements GeometryProvider.
func (g FixedGeometry) Geometry() (Playfield, bool) {
	return Playfield(g), true
}
