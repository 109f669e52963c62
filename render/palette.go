// Package render rasterizes the rotated point cloud into a character-cell
// framebuffer and presents it to a terminal-shaped writer.
package render

import (
	"fmt"

	"github.com/ansipixels/torus/math3d"
)

// Palette is an ordered set of shading glyphs, far to near. Depth is bucketed
// into len(Palette) levels; the ordering must stay monotonic in apparent
// depth for the animation to read as 3D.
type Palette []rune

// DefaultPalette is the four-level block-shading ramp.
var DefaultPalette = Palette{'░', '▒', '▓', '█'}

// ParsePalette builds a palette from a configuration string, one glyph per
// rune.
func ParsePalette(s string) (Palette, error) {
	p := Palette(s)
	if len(p) == 0 {
		return nil, fmt.Errorf("palette must contain at least one glyph")
	}
	return p, nil
}

// Shade picks the glyph for a depth z in [-bound, bound]: normalize to
// [0, 1], scale by the palette size, clamp into range. Values outside the
// domain saturate at the palette ends.
func (p Palette) Shade(z, bound float64) rune {
	idx := int(math3d.Remap(z, -bound, bound, 0, 1) * float64(len(p)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p) {
		idx = len(p) - 1
	}
	return p[idx]
}

// String returns the palette as a configuration string.
func (p Palette) String() string {
	return string(p)
}
