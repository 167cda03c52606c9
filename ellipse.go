package scanbuf

// generalEllipse walks a midpoint ellipse with semi-axes (w, h) around
// (xc, yc), emitting one left and one right switch point per scanline.
// For a positive shape the left edge is ON and the right edge OFF; a
// negative shape inverts both, cutting a hole out of an enclosing plane.
//
// Two arcs are walked: top/bottom (stepping x, emitting only when y
// changes) and left/right (stepping y). The ty sentinel records where the
// first walk stopped so the second never re-emits its rows.
func (b *ScanBuffer) generalEllipse(xc, yc, w, h int, positive bool, id MaterialID) {
	left, right := true, false
	if !positive {
		left, right = false, true
	}

	a2 := w * w
	b2 := h * h
	fa2, fb2 := 4*a2, 4*b2

	// Top and bottom arcs.
	x, y := 0, h
	sigma := 2*b2 + a2*(1-2*h)
	for ; b2*x <= a2*y; x++ {
		if sigma >= 0 {
			sigma += fa2 * (1 - y)
			b.SetPoint(xc-x, yc+y, id, left)
			b.SetPoint(xc+x, yc+y, id, right)

			b.SetPoint(xc-x, yc-y, id, left)
			b.SetPoint(xc+x, yc-y, id, right)
			y--
		}
		sigma += b2 * (4*x + 6)
	}
	ty := y // rows below this belong to the arcs above

	// Left and right arcs, including the widest row.
	b.SetPoint(xc-w, yc, id, left)
	b.SetPoint(xc+w, yc, id, right)
	x, y = w, 1
	sigma = 2*a2 + b2*(1-2*w)
	for ; a2*y < b2*x; y++ {
		if y > ty {
			break // met the top/bottom walk
		}

		b.SetPoint(xc-x, yc+y, id, left)
		b.SetPoint(xc+x, yc+y, id, right)

		b.SetPoint(xc-x, yc-y, id, left)
		b.SetPoint(xc+x, yc-y, id, right)

		if sigma >= 0 {
			sigma += fb2 * (1 - x)
			x--
		}
		sigma += a2 * (4*y + 6)
	}
}

// FillEllipse fills the ellipse with semi-axes (w, h) centred on (xc, yc).
func (b *ScanBuffer) FillEllipse(xc, yc, w, h int, id MaterialID) {
	if w <= 0 || h <= 0 {
		return
	}
	b.generalEllipse(xc, yc, w, h, true, id)
}

// FillCircle fills the circle of the given radius centred on (x, y).
func (b *ScanBuffer) FillCircle(x, y, radius int, id MaterialID) {
	b.FillEllipse(x, y, radius, radius, id)
}

// EllipseHole cuts the given ellipse out of the material's full-screen
// plane: it renders the ellipse with inverted polarity, so OFF arrives
// before ON on every scanline it crosses.
//
// The enclosing plane itself comes from SetBackground under the same
// material id; EllipseHole does not emit one, so the two compose without
// duplicate ON events. Inside the hole the material stops contributing:
// whatever sits at a greater depth shows through, and with nothing
// deeper the framebuffer keeps its previous contents.
func (b *ScanBuffer) EllipseHole(xc, yc, w, h int, id MaterialID) {
	if w <= 0 || h <= 0 {
		return
	}
	b.generalEllipse(xc, yc, w, h, false, id)
}

// OutlineEllipse draws an elliptical ring of the given thickness: a
// positive outer ellipse with a negative inner ellipse cut out of it,
// both under the same material.
func (b *ScanBuffer) OutlineEllipse(xc, yc, w, h, thickness int, id MaterialID) {
	if thickness < 1 {
		return
	}
	t1 := thickness / 2
	t2 := thickness - t1

	b.generalEllipse(xc, yc, w+t2, h+t2, true, id)
	if w-t1 < 1 || h-t1 < 1 {
		return // ring swallows the interior: solid ellipse
	}
	b.generalEllipse(xc, yc, w-t1, h-t1, false, id)
}
