package scanbuf

import (
	"testing"
	"time"
)

// stubSurface is a minimal in-package Surface for pipeline tests.
type stubSurface struct {
	w, h    int
	pix     []byte
	commits int
	pitch   int
}

func newStubSurface(w, h int) *stubSurface {
	return &stubSurface{w: w, h: h, pix: make([]byte, w*h*4), pitch: w * 4}
}

func (s *stubSurface) Size() (int, int) { return s.w, s.h }
func (s *stubSurface) Pitch() int       { return s.pitch }
func (s *stubSurface) Pixels() []byte   { return s.pix }
func (s *stubSurface) Commit() error    { s.commits++; return nil }

// TestNewPipelineValidation verifies constructor checks.
func TestNewPipelineValidation(t *testing.T) {
	atlas := NewTextureAtlas(64)
	if _, err := NewPipeline(nil, atlas); err == nil {
		t.Error("nil surface accepted")
	}
	if _, err := NewPipeline(newStubSurface(16, 8), nil); err == nil {
		t.Error("nil atlas accepted")
	}

	bad := newStubSurface(16, 8)
	bad.pitch = 17 * 4
	if _, err := NewPipeline(bad, atlas); err == nil {
		t.Error("non-conformant pitch accepted")
	}

	if _, err := NewPipeline(newStubSurface(16, 8), atlas); err != nil {
		t.Errorf("valid pipeline rejected: %v", err)
	}
}

// TestPipelineSingleThread verifies the inline mode renders every frame
// on the caller's goroutine and commits once per frame.
func TestPipelineSingleThread(t *testing.T) {
	surf := newStubSurface(16, 8)
	atlas := NewTextureAtlas(64)
	red := atlas.AddSingleColorMaterial(10, 0xFF0000)

	p, err := NewPipeline(surf, atlas,
		WithMultiThread(false),
		WithFrameLimit(false))
	if err != nil {
		t.Fatal(err)
	}

	frames := 0
	p.Run(func(tg DrawTarget, frame int, _ time.Duration) {
		tg.Buffer.Clear()
		tg.Buffer.FillRect(2, 2, 6, 5, red)
	}, func() bool {
		frames++
		return frames < 3
	})

	if surf.commits != 3 {
		t.Errorf("commits %d, want 3", surf.commits)
	}
	pm := &Pixmap{width: 16, height: 8, data: surf.pix}
	if got := pm.PixelAt(3, 3); got != 0xFF0000 {
		t.Errorf("pixel (3,3): got %06X, want FF0000", got)
	}
	if got := pm.PixelAt(0, 0); got != 0 {
		t.Errorf("pixel (0,0): got %06X, want 0", got)
	}
}

// TestPipelineMultiThread verifies the producer/consumer hand-off: the
// render goroutine picks up composed frames and the final stop joins it
// cleanly.
func TestPipelineMultiThread(t *testing.T) {
	surf := newStubSurface(16, 8)
	atlas := NewTextureAtlas(64)
	red := atlas.AddSingleColorMaterial(10, 0xFF0000)

	p, err := NewPipeline(surf, atlas,
		WithMultiThread(true),
		WithFrameLimit(true),
		WithFrameTimeTarget(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	frames := 0
	p.Run(func(tg DrawTarget, frame int, _ time.Duration) {
		tg.Buffer.Clear()
		tg.Buffer.FillRect(0, 0, 16, 8, red)
	}, func() bool {
		frames++
		return frames < 20
	})

	if surf.commits == 0 {
		t.Fatal("render goroutine never committed a frame")
	}
	pm := &Pixmap{width: 16, height: 8, data: surf.pix}
	if got := pm.PixelAt(8, 4); got != 0xFF0000 {
		t.Errorf("pixel (8,4): got %06X, want FF0000", got)
	}
}

// TestPipelineStop verifies Stop ends Run from a callback.
func TestPipelineStop(t *testing.T) {
	surf := newStubSurface(16, 8)
	atlas := NewTextureAtlas(64)

	p, err := NewPipeline(surf, atlas, WithFrameTimeTarget(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	frames := 0
	done := make(chan struct{})
	go func() {
		p.Run(func(tg DrawTarget, frame int, _ time.Duration) {
			frames++
			if frames >= 5 {
				p.Stop()
			}
		}, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pipeline did not stop")
	}
}

// TestPipelineCopyScanBuffers verifies the swap carries the previous
// composition forward so incremental drawing accumulates.
func TestPipelineCopyScanBuffers(t *testing.T) {
	surf := newStubSurface(16, 8)
	atlas := NewTextureAtlas(64)
	red := atlas.AddSingleColorMaterial(10, 0xFF0000)

	p, err := NewPipeline(surf, atlas,
		WithCopyScanBuffers(true),
		WithFrameTimeTarget(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	frames := 0
	p.Run(func(tg DrawTarget, frame int, _ time.Duration) {
		// no Clear: rely on the copied state; draw one new column per frame
		if frame < 8 {
			tg.Buffer.FillRect(frame*2, 0, frame*2+1, 8, red)
		}
	}, func() bool {
		frames++
		if frames < 30 {
			return true
		}
		return false
	})

	// all columns drawn across separate frames must be present
	pm := &Pixmap{width: 16, height: 8, data: surf.pix}
	for c := 0; c < 8; c++ {
		if got := pm.PixelAt(c*2, 4); got != 0xFF0000 {
			t.Errorf("column %d lost: pixel (%d,4) = %06X", c, c*2, got)
		}
	}
}
