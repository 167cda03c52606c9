package scanbuf

import "math"

// setLine writes one switch point per scanline crossed by the edge from
// (x0,y0) to (x1,y1).
//
// Horizontal edges emit nothing: they would double-count a scanline that
// the neighbouring edges already cover. A downward edge (y0 < y1) emits
// OFF points, an upward edge emits ON points, so a clockwise contour puts
// ON on its left edges and OFF on its right edges. The final row is
// excluded to stop shared vertices double-counting.
func (b *ScanBuffer) setLine(x0, y0, x1, y1 int, id MaterialID) {
	if y0 == y1 {
		return
	}

	on := false
	if y0 > y1 { // going up: swap so we always walk downward
		on = true
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	top := y0
	if top < 0 {
		top = 0
	}
	bottom := y1
	if bottom > b.height {
		bottom = b.height
	}

	grad := float64(x0-x1) / float64(y0-y1)
	for y := top; y < bottom; y++ {
		x := int(math.Round(grad*float64(y-y0) + float64(x0)))
		b.SetPoint(x, y, id, on)
	}
}

// FillRect fills the axis-aligned rectangle [left,right) x [top,bottom).
// Empty or inverted rectangles emit nothing.
func (b *ScanBuffer) FillRect(left, top, right, bottom int, id MaterialID) {
	if left >= right || top >= bottom {
		return
	}
	// Left edge runs upward (ON), right edge downward (OFF). The
	// horizontal edges are implied.
	b.setLine(left, bottom, left, top, id)
	b.setLine(right, top, right, bottom, id)
}

// FillTriangle fills the triangle (x0,y0) (x1,y1) (x2,y2).
// Counter-clockwise contours are detected and rearranged; degenerate
// triangles emit nothing.
func (b *ScanBuffer) FillTriangle(x0, y0, x1, y1, x2, y2 int, id MaterialID) {
	if x0 == x1 && x1 == x2 {
		return
	}
	if y0 == y1 && y1 == y2 {
		return
	}

	p0 := Pt(x0, y0)
	d1 := Pt(x1, y1).Sub(p0)
	d2 := Pt(x2, y2).Sub(p0)

	if d1.Cross(d2) > 0 { // clockwise on a y-down screen
		b.setLine(x0, y0, x1, y1, id)
		b.setLine(x1, y1, x2, y2, id)
		b.setLine(x2, y2, x0, y0, id)
	} else { // ccw: visit vertices 2 and 1 in swapped order
		b.setLine(x0, y0, x2, y2, id)
		b.setLine(x2, y2, x1, y1, id)
		b.setLine(x1, y1, x0, y0, id)
	}
}

// FillTriQuad fills the parallelogram with corners (x0,y0), (x1,y1),
// (x2,y2) and the derived fourth corner (x2,y2)+(x1,y1)-(x0,y0).
func (b *ScanBuffer) FillTriQuad(x0, y0, x1, y1, x2, y2 int, id MaterialID) {
	if x2 == x1 && x0 == x1 && y0 == y1 && y1 == y2 {
		return
	}

	dx1, dy1 := x1-x0, y1-y0
	dx2, dy2 := x2-x0, y2-y0

	if dx1*dy2-dy1*dx2 <= 0 { // ccw: swap vertex 1 and 2
		x1, x2 = x2, x1
		y1, y2 = y2, y1
		dx1, dy1 = dx2, dy2
	}
	b.setLine(x0, y0, x1, y1, id)
	b.setLine(x1, y1, x2+dx1, y2+dy1, id)
	b.setLine(x2+dx1, y2+dy1, x2, y2, id)
	b.setLine(x2, y2, x0, y0, id)
}

// DrawLine draws a line of width w from (x0,y0) to (x1,y1) as a
// parallelogram perpendicular to the line direction. Widths below 1 emit
// nothing.
//
// The width is centred with an integer split per end, matching the
// established renderer: the start point is shifted back by half the
// normal (truncated) and the end point by the remainder. At odd widths
// the two ends are offset by different amounts, so the band's edges lean
// one pixel relative to the line.
func (b *ScanBuffer) DrawLine(x0, y0, x1, y1, w int, id MaterialID) {
	if w < 1 {
		return
	}

	// Normal of the line direction, scaled to the requested width.
	ndy := float64(x1 - x0)
	ndx := float64(-(y1 - y0))
	mag := ndx*ndx + ndy*ndy
	if mag == 0 {
		return
	}
	scale := float64(w) / math.Sqrt(mag)
	ndx *= scale
	ndy *= scale

	hdx := int(ndx / 2)
	hdy := int(ndy / 2)

	// Centre the quad on the line.
	x0 -= hdx
	y0 -= hdy
	x1 -= int(ndx - float64(hdx))
	y1 -= int(ndy - float64(hdy))

	b.FillTriQuad(x0, y0, x1, y1, x0+int(ndx), y0+int(ndy), id)
}

// SetBackground emits a single ON at x=0 on every scanline, making the
// material a full-screen half-plane. Pair it with a large depth so shapes
// draw over it.
func (b *ScanBuffer) SetBackground(id MaterialID) {
	b.setLine(0, b.height, 0, 0, id)
}
