// Package mesh generates and holds the torus surface point cloud.
package mesh

import (
	"math"

	"github.com/ansipixels/torus/math3d"
)

// Torus describes the surface of revolution: a tube of radius Minor swept
// around an axis at distance Major from the tube's center.
type Torus struct {
	Major float64 // distance from the axis to the tube center
	Minor float64 // tube radius
}

// Bound returns the half-extent of the torus footprint on the x and y axes.
// The sampling grid and the screen projection both span [-Bound, Bound].
func (t Torus) Bound() float64 {
	return t.Major + t.Minor
}

// SurfaceZ returns the positive z of the torus surface above the planar
// point (x, y). ok is false when (x, y) lies outside the projected
// footprint, i.e. r² - (√(x²+y²) - R)² < 0. A zero z with ok true means
// the top and bottom sheets touch at this point.
func (t Torus) SurfaceZ(x, y float64) (float64, bool) {
	d := math.Sqrt(x*x+y*y) - t.Major
	inner := t.Minor*t.Minor - d*d
	if inner < 0 {
		return 0, false
	}
	return math.Sqrt(inner), true
}

// Sample walks an n×n planar grid spanning [-Bound, Bound] on both axes and
// emits two points per grid sample under the torus footprint: the top sheet
// at +z and the bottom sheet at -z. Samples outside the footprint emit
// nothing, so the resulting cloud holds at most 2n² points. The cloud is a
// flat collection; grid adjacency is not preserved and no deduplication is
// performed (a touching sheet pair yields two coincident points).
//
// Degenerate geometry is not rejected: a configuration whose grid never
// lands on the footprint yields a valid empty cloud.
func (t Torus) Sample(n int) *PointCloud {
	b := t.Bound()
	pts := make([]math3d.Vec3, 0, n*n)
	for i := range n {
		x := math3d.Remap(float64(i), 0, float64(n), -b, b)
		for j := range n {
			y := math3d.Remap(float64(j), 0, float64(n), -b, b)
			z, ok := t.SurfaceZ(x, y)
			if !ok {
				continue
			}
			pts = append(pts, math3d.V3(x, y, z), math3d.V3(x, y, -z))
		}
	}
	return &PointCloud{pts: pts}
}
