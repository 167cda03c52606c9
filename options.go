package scanbuf

import "time"

// config holds optional Pipeline configuration.
type config struct {
	frameTimeTarget time.Duration
	frameLimit      bool
	multiThread     bool
	copyScanBuffers bool
	renderWorkers   int
}

// defaultConfig returns the default pipeline configuration.
func defaultConfig() config {
	return config{
		frameTimeTarget: 15 * time.Millisecond,
		frameLimit:      true,
		multiThread:     true,
		copyScanBuffers: false,
		renderWorkers:   1,
	}
}

// Option configures a Pipeline during creation.
// Use functional options to customize Pipeline behavior.
//
// Example:
//
//	p, err := scanbuf.NewPipeline(surf, atlas,
//	    scanbuf.WithFrameTimeTarget(16*time.Millisecond),
//	    scanbuf.WithMultiThread(false))
type Option func(*config)

// WithFrameTimeTarget sets the target duration per frame. The draw loop
// sleeps away any budget left after drawing, and the render goroutine
// uses the same budget to decide whether the second interlaced field
// still fits. Non-positive durations are ignored.
func WithFrameTimeTarget(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.frameTimeTarget = d
		}
	}
}

// WithFrameLimit controls frame pacing. When enabled (the default) the
// draw loop services events and sleeps to hit the frame time target;
// when disabled it runs as fast as it can and services events every
// frame.
func WithFrameLimit(enabled bool) Option {
	return func(c *config) { c.frameLimit = enabled }
}

// WithMultiThread selects the producer/consumer arrangement. When
// enabled (the default) a render goroutine consumes one buffer while the
// draw loop composes the other; when disabled each frame is rendered
// inline after drawing, on the caller's goroutine.
func WithMultiThread(enabled bool) Option {
	return func(c *config) { c.multiThread = enabled }
}

// WithCopyScanBuffers makes each buffer swap copy the outgoing frame
// into the incoming buffer, so draw code may update incrementally
// instead of redrawing fully.
func WithCopyScanBuffers(enabled bool) Option {
	return func(c *config) { c.copyScanBuffers = enabled }
}

// WithRenderWorkers sets the number of goroutines the render side uses
// per field. Values above 1 enable the parallel renderer, which gives
// each worker its own sort scratch and heap pair. 0 picks GOMAXPROCS.
func WithRenderWorkers(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.renderWorkers = n
		}
	}
}
