package scanbuf

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Surface is the boundary to the windowing layer: a pixel buffer the
// renderer writes into, plus a commit that makes the pixels visible.
// The surface package provides an in-memory implementation; real window
// backends live outside this module.
//
// The core requires Pitch() == width*4.
type Surface interface {
	Size() (width, height int)
	Pitch() int
	Pixels() []byte
	Commit() error
}

// DrawTarget pairs the scan buffer an application draws into with the
// atlas its materials live in. It is the unit handed to draw callbacks.
type DrawTarget struct {
	Buffer *ScanBuffer
	Atlas  *TextureAtlas
}

// DrawFunc composes one frame into the target. frame counts from zero;
// frameTime is the measured duration of the previous frame.
type DrawFunc func(t DrawTarget, frame int, frameTime time.Duration)

// EventFunc services input events between frames. Returning false stops
// the pipeline.
type EventFunc func() bool

// Pipeline runs the double-buffered producer/consumer frame loop: a draw
// loop (the caller's goroutine) composes primitives into one ScanBuffer
// while the render goroutine composites the other into the surface.
//
// The only state crossing the two goroutines is the frameWait token and
// the buffer designation; while frameWait is 1 the render goroutine owns
// the reading buffer, otherwise the draw loop may reassign both. Buffer
// contents need no locks because ownership alternates in time.
//
// The atlas is shared. With multi-threading enabled, populate it before
// Run and mutate it per frame only through SetMaterialOffset and
// SetMaterialDepth (the palette-animation path); rebuilding the atlas
// mid-run would race the render goroutine's reads.
type Pipeline struct {
	surface Surface
	atlas   *TextureAtlas
	bufA    *ScanBuffer
	bufB    *ScanBuffer
	cfg     config

	writeBuffer atomic.Int32 // 0: draw owns A, render reads B; 1: reversed
	frameWait   atomic.Int32 // pipeline token: 1 = a frame is ready to render
	quit        atomic.Bool
	renderDone  chan struct{}

	skippedFields atomic.Int64
}

// NewPipeline builds a pipeline over the given surface and atlas,
// allocating the two scan buffers at the surface's size.
func NewPipeline(s Surface, atlas *TextureAtlas, opts ...Option) (*Pipeline, error) {
	if s == nil {
		return nil, fmt.Errorf("scanbuf: pipeline needs a surface")
	}
	if atlas == nil {
		return nil, fmt.Errorf("scanbuf: pipeline needs a texture atlas")
	}

	w, h := s.Size()
	if s.Pitch() != w*4 {
		return nil, fmt.Errorf("scanbuf: surface pitch %d, need %d", s.Pitch(), w*4)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	bufA := NewScanBuffer(w, h)
	bufB := NewScanBuffer(w, h)
	if bufA == nil || bufB == nil {
		return nil, fmt.Errorf("scanbuf: bad surface size %dx%d", w, h)
	}

	return &Pipeline{
		surface:    s,
		atlas:      atlas,
		bufA:       bufA,
		bufB:       bufB,
		cfg:        cfg,
		renderDone: make(chan struct{}),
	}, nil
}

// Run drives the frame loop until events returns false or Stop is
// called. draw is called once per frame with the buffer the loop
// currently owns; events (optional) is serviced within the frame budget.
//
// Run blocks; it owns the calling goroutine as the draw thread.
func (p *Pipeline) Run(draw DrawFunc, events EventFunc) {
	log := Logger()
	log.Info("pipeline start",
		"multiThread", p.cfg.multiThread,
		"frameTarget", p.cfg.frameTimeTarget,
		"renderWorkers", p.cfg.renderWorkers)

	if p.cfg.multiThread {
		go p.renderWorker()
	} else {
		close(p.renderDone)
	}

	writing := p.bufA
	reading := p.bufB

	start := time.Now()
	var idle time.Duration
	frameTime := p.cfg.frameTimeTarget
	frame := 0

	for !p.quit.Load() {
		fst := time.Now()

		if p.cfg.multiThread && p.frameWait.Load() < 1 {
			// Swap buffers: render the last composition while drawing
			// the next. If the renderer hasn't kept up we skip the swap
			// and compose into the same buffer again.
			wb := 1 - p.writeBuffer.Load()
			p.writeBuffer.Store(wb)
			if wb > 0 {
				writing, reading = p.bufB, p.bufA
			} else {
				writing, reading = p.bufA, p.bufB
			}
			if p.cfg.copyScanBuffers {
				reading.CopyTo(writing)
			}
			p.frameWait.Store(1)
		}

		draw(DrawTarget{Buffer: writing, Atlas: p.atlas}, frame, frameTime)
		frame++

		if !p.cfg.multiThread {
			p.renderFrame(writing, 0)
			p.renderFrame(writing, 1)
			if err := p.surface.Commit(); err != nil {
				log.Warn("surface commit failed", "error", err)
			}
		}

		if p.cfg.frameLimit {
			frameTime = time.Since(fst)
			if frameTime < p.cfg.frameTimeTarget {
				// budget left over: service events, then sleep it away
				if events != nil && !events() {
					break
				}
				if left := time.Since(fst); left < p.cfg.frameTimeTarget {
					time.Sleep(p.cfg.frameTimeTarget - left)
				}
				idle += p.cfg.frameTimeTarget - frameTime
			}
		} else if events != nil && !events() {
			break
		}
		frameTime = time.Since(fst)
	}

	p.shutdown()

	elapsed := time.Since(start)
	fps := 0.0
	idleFraction := 0.0
	if elapsed > 0 && frame > 0 {
		fps = float64(frame) / elapsed.Seconds()
		idleFraction = float64(idle) / float64(time.Duration(frame)*p.cfg.frameTimeTarget)
	}
	log.Info("pipeline stop",
		"frames", frame,
		"fps", fps,
		"idleFraction", idleFraction,
		"skippedFields", p.skippedFields.Load())
}

// Stop asks the pipeline to exit. Safe to call from any goroutine,
// including draw and event callbacks.
func (p *Pipeline) Stop() {
	p.quit.Store(true)
	p.frameWait.Store(100) // wake the render goroutine's idle wait
}

// SkippedFields returns how many interlaced fields the render goroutine
// dropped because a frame overran its budget.
func (p *Pipeline) SkippedFields() int {
	return int(p.skippedFields.Load())
}

// shutdown flags the render goroutine down and waits for it to leave.
func (p *Pipeline) shutdown() {
	p.quit.Store(true)
	p.frameWait.Store(100)
	<-p.renderDone
}

// renderFrame composites one interlaced field of buf into the surface.
func (p *Pipeline) renderFrame(buf *ScanBuffer, field int) {
	pix := p.surface.Pixels()
	if p.cfg.renderWorkers != 1 {
		buf.RenderParallel(p.atlas, pix, field, 1, p.cfg.renderWorkers)
	} else {
		buf.RenderToFramebuffer(p.atlas, pix, field, 1)
	}
}

// renderWorker is the consumer goroutine: it waits for the frameWait
// token, composites the reading buffer field by field, commits the
// surface and hands the token back.
func (p *Pipeline) renderWorker() {
	defer close(p.renderDone)
	log := Logger()

	field := 0
	for !p.quit.Load() {
		for !p.quit.Load() && p.frameWait.Load() < 1 {
			time.Sleep(time.Millisecond)
		}
		if p.quit.Load() {
			return
		}

		// opposite designation to the draw loop
		reading := p.bufB
		if p.writeBuffer.Load() > 0 {
			reading = p.bufA
		}

		deadline := time.Now().Add(p.cfg.frameTimeTarget)
		p.renderFrame(reading, field)
		field = 1 - field
		if time.Now().Before(deadline) {
			// budget left: catch up the other field this frame
			p.renderFrame(reading, field)
			field = 1 - field
		} else {
			p.skippedFields.Add(1)
		}

		if err := p.surface.Commit(); err != nil {
			log.Warn("surface commit failed", "error", err)
		}
		p.frameWait.Store(0)
	}
}
