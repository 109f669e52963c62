package render

import (
	"io"
	"math"
)

// cursorHome repositions the cursor to the top-left without clearing, so
// successive frames overwrite in place.
const cursorHome = "\x1b[H"

// Framebuffer holds one frame as two parallel dense arrays, row-major:
// per-cell depth and per-cell glyph. It is reused across frames; Clear
// resets it to "nothing drawn yet".
type Framebuffer struct {
	Cols, Rows int

	depth  []float64
	glyphs []rune
}

// NewFramebuffer allocates a cleared buffer of the given dimensions.
func NewFramebuffer(cols, rows int) *Framebuffer {
	fb := &Framebuffer{
		Cols:   cols,
		Rows:   rows,
		depth:  make([]float64, cols*rows),
		glyphs: make([]rune, cols*rows),
	}
	fb.Clear()
	return fb
}

// Clear resets every cell to a blank glyph and the depth to the
// infinitely-far sentinel. Uses copy-doubling for speed.
func (fb *Framebuffer) Clear() {
	if len(fb.depth) == 0 {
		return
	}
	fb.depth[0] = math.Inf(-1)
	fb.glyphs[0] = ' '
	for i := 1; i < len(fb.depth); i *= 2 {
		copy(fb.depth[i:], fb.depth[:i])
		copy(fb.glyphs[i:], fb.glyphs[:i])
	}
}

// Plot writes glyph at (col, row) if z is strictly nearer than what the
// cell holds. Ties keep the existing occupant, so the result does not
// depend on point traversal order. Reports whether the cell was written.
// Out-of-range cells are ignored.
func (fb *Framebuffer) Plot(col, row int, z float64, glyph rune) bool {
	if col < 0 || col >= fb.Cols || row < 0 || row >= fb.Rows {
		return false
	}
	idx := row*fb.Cols + col
	if z <= fb.depth[idx] {
		return false
	}
	fb.depth[idx] = z
	fb.glyphs[idx] = glyph
	return true
}

// DepthAt returns the stored depth at (col, row): the nearest z written
// this frame, or -Inf for an untouched cell.
func (fb *Framebuffer) DepthAt(col, row int) float64 {
	return fb.depth[row*fb.Cols+col]
}

// GlyphAt returns the glyph at (col, row).
func (fb *Framebuffer) GlyphAt(col, row int) rune {
	return fb.glyphs[row*fb.Cols+col]
}

// Row returns row r as a string, left to right.
func (fb *Framebuffer) Row(r int) string {
	return string(fb.glyphs[r*fb.Cols : (r+1)*fb.Cols])
}

// WriteTo presents the frame: cursor home (no screen clear), then each row
// top to bottom terminated by a raw-mode line break. A write failure is
// fatal to the frame; no partial-frame recovery is attempted by the caller.
// Implements io.WriterTo.
func (fb *Framebuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := io.WriteString(w, cursorHome)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for r := range fb.Rows {
		n, err = io.WriteString(w, fb.Row(r))
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(w, "\r\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
