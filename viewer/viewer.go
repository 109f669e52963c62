// Package viewer drives the animation: it owns the point cloud, advances
// the rotation each frame, and rasterizes the result into a framebuffer
// ready for presentation.
package viewer

import (
	"context"
	"math"

	"github.com/ansipixels/torus/math3d"
	"github.com/ansipixels/torus/mesh"
	"github.com/ansipixels/torus/render"
	"github.com/charmbracelet/harmonica"
)

// Spring tuning for spin-rate changes. Frequency 4.0 = moderate speed,
// damping 1.0 = critically damped (no overshoot).
const (
	springFrequency = 4.0
	springDamping   = 1.0
	rateSnap        = 1e-6
)

// Viewer animates a point cloud. Each Step applies one rotation increment
// to the cloud in place and redraws it; the cloud accumulates orientation
// across frames, there is no per-frame recomputation from angles.
type Viewer struct {
	cloud *mesh.PointCloud
	ras   *render.Rasterizer

	rate     float64 // current per-frame rotation, radians
	target   float64 // where the spring is pulling rate
	baseRate float64 // rate the r key restores
	rateVel  float64 // internal spring velocity
	spring   harmonica.Spring

	step   math3d.Mat3
	paused bool
}

// New creates a viewer rotating cloud by step radians per frame on all three
// axes, drawing into a cols x rows framebuffer. bound is the half-extent of
// the geometry; fps feeds the spring that smooths spin-rate changes.
func New(cloud *mesh.PointCloud, bound, step float64, pal render.Palette, cols, rows, fps int) *Viewer {
	v := &Viewer{
		cloud:    cloud,
		ras:      render.NewRasterizer(render.NewFramebuffer(cols, rows), bound, pal),
		rate:     step,
		target:   step,
		baseRate: step,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
	v.step = stepMatrix(step)
	return v
}

// stepMatrix builds the per-frame increment: the same angle applied as
// pitch, then yaw, then roll.
func stepMatrix(angle float64) math3d.Mat3 {
	return math3d.RotateX(angle).
		Mul(math3d.RotateY(angle)).
		Mul(math3d.RotateZ(angle))
}

// Step advances the animation one frame: settle the spin rate toward its
// target, rotate the cloud (unless paused), and redraw.
func (v *Viewer) Step() {
	if !v.paused {
		if v.rate != v.target {
			v.rate, v.rateVel = v.spring.Update(v.rate, v.rateVel, v.target)
			if math.Abs(v.rate-v.target) < rateSnap {
				v.rate = v.target
				v.rateVel = 0
			}
			v.step = stepMatrix(v.rate)
		}
		v.cloud.Transform(v.step)
	}
	v.ras.Draw(v.cloud)
}

// Frame returns the framebuffer holding the most recent Step's output.
func (v *Viewer) Frame() *render.Framebuffer {
	return v.ras.Framebuffer()
}

// Resize retargets the viewer to a new screen size. The next Step draws at
// the new dimensions; orientation is unaffected.
func (v *Viewer) Resize(cols, rows int) {
	v.ras.SetFramebuffer(render.NewFramebuffer(cols, rows))
}

// TogglePause flips the animation on or off. While paused, Step redraws the
// cloud at its current orientation without rotating it.
func (v *Viewer) TogglePause() {
	v.paused = !v.paused
}

// Paused reports whether the animation is stopped.
func (v *Viewer) Paused() bool {
	return v.paused
}

// AdjustRate nudges the spin-rate target by delta radians per frame. The
// spring carries the actual rate there over the following frames.
func (v *Viewer) AdjustRate(delta float64) {
	v.target += delta
}

// ResetRate springs the spin rate back to the value the viewer started with.
func (v *Viewer) ResetRate() {
	v.target = v.baseRate
}

// Rate returns the current per-frame rotation in radians.
func (v *Viewer) Rate() float64 {
	return v.rate
}

// Run steps the animation, presenting each frame through present, until the
// context is canceled, present fails, or frames frames have been shown.
// frames <= 0 runs unbounded. Pacing is the caller's concern; Run itself
// draws as fast as present returns.
func (v *Viewer) Run(ctx context.Context, frames int, present func(*render.Framebuffer) error) error {
	for shown := 0; frames <= 0 || shown < frames; shown++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		v.Step()
		if err := present(v.Frame()); err != nil {
			return err
		}
	}
	return nil
}
