package scanbuf

import "github.com/softraster/scanbuf/internal/parallel"

// renderScratch is one worker's private compositor state: a pair of sort
// scratch lines and a pair of heaps. The serial renderer uses the
// buffer's own spare lines and embedded heaps; parallel workers must not
// share those, so each gets its own.
type renderScratch struct {
	sortA []SwitchPoint
	sortB []SwitchPoint
	pHeap depthHeap
	rHeap depthHeap
}

// RenderParallel is RenderToFramebuffer with the scanlines striped
// across the given number of worker goroutines (0 picks GOMAXPROCS).
// Rows are partitioned disjointly, so the workers never touch the same
// scanline or framebuffer row.
func (b *ScanBuffer) RenderParallel(atlas *TextureAtlas, pix []byte, start, skip, workers int) {
	if atlas == nil || len(pix) < b.width*b.height*4 {
		return
	}
	if start < 0 {
		start = 0
	}

	pool := parallel.NewPool(workers)
	n := pool.Workers()
	if n <= 1 {
		b.RenderToFramebuffer(atlas, pix, start, skip)
		return
	}

	capacity := b.width*2 + 1
	scratch := make([]renderScratch, n)
	for i := range scratch {
		scratch[i].sortA = make([]SwitchPoint, capacity)
		scratch[i].sortB = make([]SwitchPoint, capacity)
	}

	incr := skip + 1
	pool.Run(func(worker int) {
		s := &scratch[worker]
		for y := start + worker*incr; y < b.height; y += n * incr {
			b.renderScanLine(atlas, y, pix, s.sortA, s.sortB, &s.pHeap, &s.rHeap)
		}
	})
}
