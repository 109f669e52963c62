package render

import (
	"github.com/ansipixels/torus/math3d"
)

// PointSource is the view of a point cloud the rasterizer needs. Declared
// here so render does not import the mesh package.
type PointSource interface {
	PointCount() int
	Point(i int) math3d.Vec3
}

// Rasterizer draws a point cloud into a framebuffer: project each point to
// a cell, depth-test it against the cell, and shade the survivor by its
// depth. Occlusion is resolved entirely by the per-cell test — points can
// arrive in any order and no global sort is involved.
type Rasterizer struct {
	fb      *Framebuffer
	proj    Projector
	palette Palette
}

// NewRasterizer creates a rasterizer targeting fb, for geometry spanning
// [-bound, bound] on all axes.
func NewRasterizer(fb *Framebuffer, bound float64, palette Palette) *Rasterizer {
	return &Rasterizer{
		fb:      fb,
		proj:    Projector{Bound: bound, Cols: fb.Cols, Rows: fb.Rows},
		palette: palette,
	}
}

// SetFramebuffer retargets the rasterizer, e.g. after a terminal resize.
func (r *Rasterizer) SetFramebuffer(fb *Framebuffer) {
	r.fb = fb
	r.proj.Cols = fb.Cols
	r.proj.Rows = fb.Rows
}

// Framebuffer returns the current target.
func (r *Rasterizer) Framebuffer() *Framebuffer {
	return r.fb
}

// Draw clears the framebuffer and plots every point of src. Points that
// project off screen are discarded; for the rest the strictly-nearer depth
// test decides the cell's glyph. An empty source yields a blank frame.
func (r *Rasterizer) Draw(src PointSource) {
	r.fb.Clear()
	for i := range src.PointCount() {
		p := src.Point(i)
		col, row, ok := r.proj.Cell(p)
		if !ok {
			continue
		}
		r.fb.Plot(col, row, p.Z, r.palette.Shade(p.Z, r.proj.Bound))
	}
}
