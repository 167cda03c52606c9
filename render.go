package scanbuf

import "encoding/binary"

// cleanUpHeaps purges ended materials from the presentation heap by
// matching it against the removal heap.
//
// Two positions are inspected after every insertion: the top (an ended
// material that was visible leaves immediately) and the runner-up (an
// ended material hiding directly under the top is dug out by lifting the
// top, purging, and reinserting). Ended materials buried deeper stay in
// the presentation heap until they surface; that laziness is what keeps
// the per-event cost amortized constant.
func cleanUpHeaps(p, r *depthHeap) {
	// first rank: tops of both heaps refer to the same material
	for {
		top, okP := p.peekMin()
		rem, okR := r.peekMin()
		if !okP || !okR || top.id != rem.id {
			break
		}
		p.deleteMin()
		r.deleteMin()
	}

	// second rank: an ended material directly under the visible top
	next, ok := p.peekNext()
	if !ok {
		return
	}
	if rem, okR := r.peekMin(); okR && rem.id == next.id {
		current, _ := p.deleteMin() // lift the top, purge, put it back
		for {
			top, okP := p.peekMin()
			rem, okR := r.peekMin()
			if !okP || !okR || top.id != rem.id {
				break
			}
			p.deleteMin()
			r.deleteMin()
		}
		p.insert(current)
	}
}

// renderScanLine composites row y of the buffer into pix.
//
// The row's switch points are copied into sortA, sorted (sortB is the
// merge scratch), then swept left to right. The presentation heap holds
// every material whose ON has been seen; the removal heap holds those
// whose OFF has been seen but that were not on top when they ended. At
// each event the span up to the event's x is filled with the top
// material's texels, then the heaps are updated and the texture phase
// recomputed if the visible material changed.
func (b *ScanBuffer) renderScanLine(atlas *TextureAtlas, y int, pix []byte,
	sortA, sortB []SwitchPoint, pHeap, rHeap *depthHeap) {

	line := &b.lines[y]
	if !line.dirty {
		return
	}
	line.dirty = false

	count := line.count
	copy(sortA[:count], line.points[:count])
	list := sortSwitchPoints(sortA, sortB, count)

	pHeap.reset()
	rHeap.reset()

	end := b.width
	rowBase := y * b.width * 4

	on := false
	p := 0 // next pixel to fill

	// texture mapping state for the visible material
	var mapBase, mapOffset, mapIncrement, mapMask int

	texture := atlas.textels
	materials := atlas.materials

	var current SwitchPoint // the visible material's producing ON event
	for i := 0; i < count; i++ {
		sw := list[i]
		if sw.X() > end {
			break
		}

		if sw.X() > p { // fill up to this event
			if on {
				max := sw.X()
				if max > end {
					max = end
				}
				for ; p < max; p++ {
					binary.LittleEndian.PutUint32(pix[rowBase+p*4:], texture[mapBase+mapOffset])
					mapOffset = (mapOffset + mapIncrement) & mapMask
				}
			} else {
				p = sw.X()
			}
		}

		if sw.ID() == 0 { // reserved "no material": advances p, draws nothing
			continue
		}

		m := materials[sw.ID()]
		elem := heapElem{depth: int32(m.depth), id: sw.ID(), lookup: int32(i)}
		if sw.On() {
			pHeap.insert(elem)
		} else {
			rHeap.insert(elem)
		}

		cleanUpHeaps(pHeap, rHeap)

		top, ok := pHeap.peekMin()
		on = ok
		if on {
			next := list[top.lookup]
			if current.ID() != next.ID() { // visible material changed
				current = next
				paint := materials[current.ID()]
				mapBase = int(paint.start)
				mapIncrement = int(paint.increment)
				mapMask = int(paint.length) - 1

				// Resume the texture phase as if the material had been
				// filling since its ON: a span uncovered halfway along
				// starts halfway through its texture.
				if paint.screenSpace {
					mapOffset = ((p + int(paint.offset)) * mapIncrement) & mapMask
				} else {
					mapOffset = (int(paint.offset) + (p-next.X())*mapIncrement) & mapMask
				}
			}
		} else {
			mapBase = 0
			current = 0 // a material turning on again must reload its mapping
		}
	}

	if on { // fill to the end of the row
		for ; p < end; p++ {
			binary.LittleEndian.PutUint32(pix[rowBase+p*4:], texture[mapBase+mapOffset])
			mapOffset = (mapOffset + mapIncrement) & mapMask
		}
	}
}

// RenderToFramebuffer composites every dirty scanline into pix, a
// row-major buffer of 32-bit little-endian 0x00RRGGBB words with a pitch
// of width*4 bytes.
//
// start selects the first row and skip the number of rows skipped after
// each rendered one, so (0,1) and (1,1) render the two interlaced fields.
// For a full frame use (0,0). Lines that are not dirty are skipped and
// keep their previous framebuffer contents.
func (b *ScanBuffer) RenderToFramebuffer(atlas *TextureAtlas, pix []byte, start, skip int) {
	if atlas == nil || len(pix) < b.width*b.height*4 {
		return
	}
	if start < 0 {
		start = 0
	}

	sortA := b.lines[b.height].points
	sortB := b.lines[b.height+1].points

	incr := skip + 1
	for y := start; y < b.height; y += incr {
		b.renderScanLine(atlas, y, pix, sortA, sortB, &b.pHeap, &b.rHeap)
	}
}
