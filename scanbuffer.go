package scanbuf

// spareLines is the number of scratch lines appended after the visible
// rows. The merge sort ping-pongs between the two spares, so the value
// is fixed.
const spareLines = 2

// ScanBuffer accumulates switch points for one frame.
//
// The buffer owns height+2 scan lines (the final two are sort scratch) and
// the pair of priority heaps used by the compositor. Lines have a fixed
// switch-point capacity of 2*width+1; insertions beyond that are dropped
// whole, so a line is never left half-updated.
//
// A ScanBuffer is not safe for concurrent use. The Pipeline hands whole
// buffers between the draw and render goroutines instead of locking.
type ScanBuffer struct {
	width  int
	height int

	lines []ScanLine

	// compositor scratch, reused across scanlines
	pHeap depthHeap // presentation: materials currently active
	rHeap depthHeap // removal: materials ended but not yet purged

	dropped int // switch points discarded because a line was full
}

// NewScanBuffer allocates a scan buffer for a width x height frame.
// Returns nil if either dimension is not positive or width exceeds the
// packed switch-point limit of 32767 (maxX).
func NewScanBuffer(width, height int) *ScanBuffer {
	if width <= 0 || height <= 0 || width > maxX {
		return nil
	}

	capacity := width*2 + 1
	b := &ScanBuffer{
		width:  width,
		height: height,
		lines:  make([]ScanLine, height+spareLines),
	}
	for i := range b.lines {
		b.lines[i].points = make([]SwitchPoint, capacity)
		b.lines[i].dirty = true
	}
	return b
}

// Width returns the buffer width in pixels.
func (b *ScanBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *ScanBuffer) Height() int { return b.height }

// Line returns the scanline at row y, or nil if y is out of range.
// The returned line is read-only from the caller's point of view.
func (b *ScanBuffer) Line(y int) *ScanLine {
	if y < 0 || y >= b.height {
		return nil
	}
	return &b.lines[y]
}

// Dropped returns the number of switch points discarded because their
// scanline was full.
func (b *ScanBuffer) Dropped() int { return b.dropped }

// SetPoint appends a single switch point to row y.
//
// x is clamped to 0 on the left; points beyond the right edge are dropped
// (x == width is kept: it is a valid OFF closing a span at the screen
// edge). Rows outside [0, height) are skipped. A full line drops the
// point silently.
func (b *ScanBuffer) SetPoint(x, y int, id MaterialID, on bool) {
	if y < 0 || y >= b.height {
		return
	}
	if x < 0 {
		x = 0
	} else if x > b.width {
		return
	}

	line := &b.lines[y]
	if line.count >= len(line.points) {
		b.dropped++
		return
	}
	line.points[line.count] = makeSwitchPoint(x, id, on)
	line.count++
	line.dirty = true
}

// Clear removes all drawing from the buffer, ready for the next frame.
// Call this after the buffer has been rendered.
func (b *ScanBuffer) Clear() {
	for i := 0; i < b.height; i++ {
		b.lines[i].count = 0
		b.lines[i].resetMark = 0
		b.lines[i].dirty = true
	}
}

// SetResetPoint snapshots every line's current count so a later Reset
// rolls the buffer back to exactly this state. Draw a static background,
// set the reset point, then each frame Reset and draw the cheap overlay.
func (b *ScanBuffer) SetResetPoint() {
	for i := 0; i < b.height; i++ {
		b.lines[i].resetMark = b.lines[i].count
	}
}

// Reset rolls every line back to its reset mark and marks it dirty.
// Without a prior SetResetPoint this is equivalent to Clear.
func (b *ScanBuffer) Reset() {
	for i := 0; i < b.height; i++ {
		b.lines[i].count = b.lines[i].resetMark
		b.lines[i].dirty = true
	}
}

// ResetScanLine clears a single line, including any background.
func (b *ScanBuffer) ResetScanLine(y int) {
	if y < 0 || y >= b.height {
		return
	}
	b.lines[y].count = 0
	b.lines[y].resetMark = 0
	b.lines[y].dirty = true
}

// ResetScanLineToMaterial clears a single line and seeds it with a new
// background: one ON at x=0 under the given material.
func (b *ScanBuffer) ResetScanLineToMaterial(y int, id MaterialID) {
	if y < 0 || y >= b.height {
		return
	}
	b.lines[y].count = 0
	b.lines[y].resetMark = 0
	b.lines[y].dirty = true
	b.SetPoint(0, y, id, true)
}

// SwapScanLines exchanges two rows, point storage included. Both rows are
// marked dirty. Out-of-range indices are ignored.
func (b *ScanBuffer) SwapScanLines(a, c int) {
	limit := b.height - 1
	if a < 0 || c < 0 || a > limit || c > limit {
		return
	}
	b.lines[a], b.lines[c] = b.lines[c], b.lines[a]
	b.lines[a].dirty = true
	b.lines[c].dirty = true
}

// CopyTo replaces dst's rows with a copy of b's. The buffers should be the
// same size; extra rows in either are left untouched, and rows wider than
// dst's capacity are truncated at dst's capacity.
func (b *ScanBuffer) CopyTo(dst *ScanBuffer) {
	if dst == nil {
		return
	}
	rows := b.height
	if dst.height < rows {
		rows = dst.height
	}
	for i := 0; i < rows; i++ {
		src := &b.lines[i]
		d := &dst.lines[i]
		n := src.count
		if n > len(d.points) {
			n = len(d.points)
		}
		copy(d.points[:n], src.points[:n])
		d.count = n
		d.resetMark = src.resetMark
		d.dirty = src.dirty
	}
}
