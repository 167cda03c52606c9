// Package scanbuf implements a scanline switch-point rasterizer: a software
// 2D renderer that turns drawing primitives into a 32-bit RGB framebuffer
// without a per-pixel depth buffer.
//
// # Overview
//
// Each primitive contributes at most one pair of x-ordered "switch" events
// per scanline: an ON where its material starts contributing and an OFF
// where it stops. At render time the events on each scanline are sorted and
// swept left to right while a pair of priority heaps resolves which material
// is visible at every pixel. Draw cost is therefore proportional to
// primitive perimeter rather than area, which makes thousands of
// overlapping shapes per frame practical at CPU speeds.
//
// # Quick Start
//
//	buf := scanbuf.NewScanBuffer(320, 240)
//	atlas := scanbuf.NewTextureAtlas(4096)
//
//	red := atlas.AddSingleColorMaterial(10, 0xFF0000)
//	buf.FillRect(20, 20, 120, 90, red)
//
//	pix := make([]byte, 320*240*4)
//	buf.RenderToFramebuffer(atlas, pix, 0, 0)
//
// # Architecture
//
// The library is organized into:
//   - Public API: ScanBuffer (primitives + lifecycle), TextureAtlas
//     (materials), Pipeline (two-goroutine frame loop), Pixmap
//   - glyphs: fixed 8x8 console font on top of the draw API
//   - surface: output-surface boundary (in-memory surface included)
//   - internal/parallel: worker pool for the parallel renderer
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down. All
// primitive coordinates are integer pixels; there is no anti-aliasing and
// no sub-pixel positioning.
//
// # Framebuffer Layout
//
// Row-major 32-bit little-endian words, 0x00RRGGBB per pixel. The pitch
// must equal width*4.
package scanbuf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
