// Package surface defines the boundary between the rasterizer and the
// windowing layer. A surface supplies the pixel buffer the renderer
// writes into (row-major 32-bit little-endian 0x00RRGGBB words) and a
// commit that makes the written pixels visible.
//
// Only the in-memory image surface ships with this module; a real window
// backend implements the same methods and plugs into scanbuf.Pipeline
// unchanged.
package surface

// Surface is a destination for rendered frames. It mirrors the interface
// scanbuf.Pipeline consumes; the type is duplicated here so window
// backends can depend on this package alone.
type Surface interface {
	// Size returns the pixel dimensions of the surface.
	Size() (width, height int)
	// Pitch returns the byte stride between rows. The rasterizer
	// requires width*4.
	Pitch() int
	// Pixels returns the live pixel buffer.
	Pixels() []byte
	// Commit makes the current pixel contents visible.
	Commit() error
}
