package render

import (
	"math"

	"github.com/ansipixels/torus/math3d"
)

// Projector maps rotated 3D coordinates onto integer terminal cells with an
// orthographic linear range conversion: [-Bound, Bound] onto [0, Cols-1] for
// x and [0, Rows-1] for y. No perspective, no aspect correction.
type Projector struct {
	Bound float64
	Cols  int
	Rows  int
}

// Cell projects p and returns its cell coordinates. ok is false when the
// projection lands outside the screen; such points are discarded, never
// clamped or wrapped.
func (pr Projector) Cell(p math3d.Vec3) (col, row int, ok bool) {
	col = int(math.Floor(math3d.Remap(p.X, -pr.Bound, pr.Bound, 0, float64(pr.Cols-1))))
	row = int(math.Floor(math3d.Remap(p.Y, -pr.Bound, pr.Bound, 0, float64(pr.Rows-1))))
	if col < 0 || col >= pr.Cols || row < 0 || row >= pr.Rows {
		return 0, 0, false
	}
	return col, row, true
}
