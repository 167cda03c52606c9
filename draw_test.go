package scanbuf

import "testing"

// linePoints collects (x, on) pairs for one row in insertion order.
func linePoints(buf *ScanBuffer, y int) []SwitchPoint {
	line := buf.Line(y)
	return buf.lines[y].points[:line.Count()]
}

// TestSetLinePolarity verifies downward edges emit OFF, upward edges ON,
// and horizontal edges nothing.
func TestSetLinePolarity(t *testing.T) {
	buf := NewScanBuffer(16, 8)

	buf.setLine(3, 1, 3, 5, 1) // down: OFF on rows 1..4
	for y := 1; y < 5; y++ {
		pts := linePoints(buf, y)
		if len(pts) != 1 || pts[0].On() || pts[0].X() != 3 {
			t.Fatalf("row %d: got %v, want one OFF at x=3", y, pts)
		}
	}
	if buf.Line(5).Count() != 0 {
		t.Error("final row received a point: double-counting")
	}

	buf.Clear()
	buf.setLine(3, 5, 3, 1, 1) // up: ON on rows 1..4
	for y := 1; y < 5; y++ {
		pts := linePoints(buf, y)
		if len(pts) != 1 || !pts[0].On() {
			t.Fatalf("row %d: want one ON", y)
		}
	}

	buf.Clear()
	buf.setLine(2, 3, 14, 3, 1) // horizontal: nothing
	for y := 0; y < 8; y++ {
		if buf.Line(y).Count() != 0 {
			t.Fatalf("horizontal edge emitted on row %d", y)
		}
	}
}

// TestSetLineGradient verifies the per-row x interpolation of a slanted
// edge.
func TestSetLineGradient(t *testing.T) {
	buf := NewScanBuffer(16, 8)
	buf.setLine(0, 0, 8, 8, 1) // 45 degrees down
	for y := 0; y < 8; y++ {
		pts := linePoints(buf, y)
		if len(pts) != 1 {
			t.Fatalf("row %d: %d points, want 1", y, len(pts))
		}
		if pts[0].X() != y {
			t.Fatalf("row %d: x=%d, want %d", y, pts[0].X(), y)
		}
	}
}

// TestSetLineClipsRows verifies off-screen rows are skipped.
func TestSetLineClipsRows(t *testing.T) {
	buf := NewScanBuffer(16, 8)
	buf.setLine(4, -10, 4, 20, 1)
	total := 0
	for y := 0; y < 8; y++ {
		total += buf.Line(y).Count()
	}
	if total != 8 {
		t.Errorf("clipped vertical edge emitted %d points, want 8", total)
	}
}

// TestFillRectSwitchPoints verifies a rectangle is two vertical edges:
// ON at left, OFF at right, rows [top, bottom).
func TestFillRectSwitchPoints(t *testing.T) {
	buf := NewScanBuffer(16, 8)
	buf.FillRect(2, 2, 6, 5, 1)

	for y := 0; y < 8; y++ {
		pts := linePoints(buf, y)
		if y >= 2 && y < 5 {
			if len(pts) != 2 {
				t.Fatalf("row %d: %d points, want 2", y, len(pts))
			}
			if !pts[0].On() || pts[0].X() != 2 {
				t.Errorf("row %d: first point (x=%d on=%v), want ON at 2", y, pts[0].X(), pts[0].On())
			}
			if pts[1].On() || pts[1].X() != 6 {
				t.Errorf("row %d: second point (x=%d on=%v), want OFF at 6", y, pts[1].X(), pts[1].On())
			}
		} else if len(pts) != 0 {
			t.Errorf("row %d: rectangle leaked %d points", y, len(pts))
		}
	}

	buf.Clear()
	buf.FillRect(6, 5, 6, 2, 1) // empty and inverted: nothing
	buf.FillRect(3, 3, 3, 7, 1)
	for y := 0; y < 8; y++ {
		if buf.Line(y).Count() != 0 {
			t.Fatalf("degenerate rectangle emitted on row %d", y)
		}
	}
}

// TestTriangleBalancedPolarity verifies that on every scanline a filled
// convex polygon emits as many ONs as OFFs, for both windings.
func TestTriangleBalancedPolarity(t *testing.T) {
	cases := []struct {
		name             string
		x0, y0, x1, y1, x2, y2 int
	}{
		{"clockwise", 2, 1, 14, 3, 4, 7},
		{"counterclockwise", 2, 1, 4, 7, 14, 3},
		{"right angle", 0, 0, 8, 0, 0, 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := NewScanBuffer(16, 8)
			buf.FillTriangle(c.x0, c.y0, c.x1, c.y1, c.x2, c.y2, 1)
			for y := 0; y < 8; y++ {
				ons, offs := 0, 0
				for _, sp := range linePoints(buf, y) {
					if sp.On() {
						ons++
					} else {
						offs++
					}
				}
				if ons != offs {
					t.Errorf("row %d: %d ONs, %d OFFs", y, ons, offs)
				}
			}
		})
	}
}

// TestTriangleDegenerate verifies collinear and empty triangles emit
// nothing.
func TestTriangleDegenerate(t *testing.T) {
	buf := NewScanBuffer(16, 8)
	buf.FillTriangle(3, 1, 3, 4, 3, 7, 1) // all x equal
	buf.FillTriangle(1, 3, 5, 3, 9, 3, 1) // all y equal
	for y := 0; y < 8; y++ {
		if buf.Line(y).Count() != 0 {
			t.Fatalf("degenerate triangle emitted on row %d", y)
		}
	}
}

// TestTriQuadBalancedPolarity verifies the parallelogram emits balanced
// polarity per row regardless of vertex winding.
func TestTriQuadBalancedPolarity(t *testing.T) {
	for _, swap := range []bool{false, true} {
		buf := NewScanBuffer(16, 8)
		if swap {
			buf.FillTriQuad(2, 1, 4, 6, 9, 2, 1)
		} else {
			buf.FillTriQuad(2, 1, 9, 2, 4, 6, 1)
		}
		for y := 0; y < 8; y++ {
			ons, offs := 0, 0
			for _, sp := range linePoints(buf, y) {
				if sp.On() {
					ons++
				} else {
					offs++
				}
			}
			if ons != offs {
				t.Errorf("swap=%v row %d: %d ONs, %d OFFs", swap, y, ons, offs)
			}
		}
	}
}

// TestDrawLineEmits verifies a thick line produces points and a
// zero/negative width produces none.
func TestDrawLineEmits(t *testing.T) {
	buf := NewScanBuffer(16, 8)
	buf.DrawLine(0, 0, 15, 7, 3, 1)
	total := 0
	for y := 0; y < 8; y++ {
		total += buf.Line(y).Count()
	}
	if total == 0 {
		t.Fatal("thick line emitted nothing")
	}

	buf.Clear()
	buf.DrawLine(0, 0, 15, 7, 0, 1)
	buf.DrawLine(3, 3, 3, 3, 2, 1) // zero length
	for y := 0; y < 8; y++ {
		if buf.Line(y).Count() != 0 {
			t.Fatalf("degenerate line emitted on row %d", y)
		}
	}
}

// TestSetBackground verifies exactly one ON at x=0 on every row.
func TestSetBackground(t *testing.T) {
	buf := NewScanBuffer(16, 8)
	buf.SetBackground(9)
	for y := 0; y < 8; y++ {
		pts := linePoints(buf, y)
		if len(pts) != 1 || !pts[0].On() || pts[0].X() != 0 || pts[0].ID() != 9 {
			t.Fatalf("row %d: got %v, want one ON at x=0 id=9", y, pts)
		}
	}
}

// TestEllipsePairedEdges verifies every row the ellipse crosses gets
// exactly one ON and one OFF, mirrored around the centre.
func TestEllipsePairedEdges(t *testing.T) {
	buf := NewScanBuffer(32, 16)
	buf.FillEllipse(16, 8, 7, 5, 1)
	rows := 0
	for y := 0; y < 16; y++ {
		pts := linePoints(buf, y)
		if len(pts) == 0 {
			continue
		}
		rows++
		if len(pts) != 2 {
			t.Fatalf("row %d: %d points, want 2", y, len(pts))
		}
		var on, off SwitchPoint
		for _, sp := range pts {
			if sp.On() {
				on = sp
			} else {
				off = sp
			}
		}
		if on == 0 || off == 0 {
			t.Fatalf("row %d: polarity not paired", y)
		}
		if on.X() > off.X() {
			t.Errorf("row %d: ON at %d not left of OFF at %d", y, on.X(), off.X())
		}
		if d := (on.X() - 16) + (off.X() - 16); d != 0 {
			t.Errorf("row %d: edges not mirrored: ON %d OFF %d", y, on.X(), off.X())
		}
	}
	if rows != 2*5+1 {
		t.Errorf("ellipse touched %d rows, want %d", rows, 2*5+1)
	}
}
