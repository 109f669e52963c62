package mesh

import (
	"github.com/ansipixels/torus/math3d"
)

// PointCloud is the mutable collection of surface points. It is created once
// by Torus.Sample and then rotated in place every frame; its size never
// changes after sampling. The render loop is the sole owner, so no
// synchronization is involved.
type PointCloud struct {
	pts []math3d.Vec3
}

// NewPointCloud wraps an existing point slice. The cloud takes ownership.
func NewPointCloud(pts []math3d.Vec3) *PointCloud {
	return &PointCloud{pts: pts}
}

// PointCount returns the number of points.
func (c *PointCloud) PointCount() int {
	return len(c.pts)
}

// Point returns the point at index i.
func (c *PointCloud) Point(i int) math3d.Vec3 {
	return c.pts[i]
}

// Transform replaces every point with its image under m, in place.
// Applying a fixed rotation step repeatedly accumulates floating-point
// drift over very long runs; that is accepted, no renormalization happens.
func (c *PointCloud) Transform(m math3d.Mat3) {
	for i := range c.pts {
		c.pts[i] = m.MulVec3(c.pts[i])
	}
}

// Bounds returns the axis-aligned bounding box of the cloud.
// Both values are zero for an empty cloud.
func (c *PointCloud) Bounds() (min, max math3d.Vec3) {
	if len(c.pts) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}
	min, max = c.pts[0], c.pts[0]
	for _, p := range c.pts[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}
