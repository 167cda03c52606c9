package surface

import (
	"image"
	"image/png"
	"os"
	"sync/atomic"
)

// ImageSurface is an in-memory surface: rendering targets a byte slice
// and Commit only counts. It backs headless rendering and tests.
type ImageSurface struct {
	width   int
	height  int
	pix     []byte
	commits atomic.Int64
}

// NewImage creates an in-memory surface of the given size.
// Returns nil if either dimension is not positive.
func NewImage(width, height int) *ImageSurface {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &ImageSurface{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

// Size returns the pixel dimensions of the surface.
func (s *ImageSurface) Size() (width, height int) {
	return s.width, s.height
}

// Pitch returns the byte stride between rows, always width*4.
func (s *ImageSurface) Pitch() int {
	return s.width * 4
}

// Pixels returns the live pixel buffer.
func (s *ImageSurface) Pixels() []byte {
	return s.pix
}

// Commit records that a frame was presented.
func (s *ImageSurface) Commit() error {
	s.commits.Add(1)
	return nil
}

// Commits returns the number of frames presented so far.
func (s *ImageSurface) Commits() int {
	return int(s.commits.Load())
}

// Image converts the current pixel contents to an opaque image.RGBA.
func (s *ImageSurface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for i := 0; i < s.width*s.height; i++ {
		o := i * 4
		// 0x00RRGGBB little-endian: B, G, R, x
		img.Pix[o+0] = s.pix[o+2]
		img.Pix[o+1] = s.pix[o+1]
		img.Pix[o+2] = s.pix[o+0]
		img.Pix[o+3] = 0xFF
	}
	return img
}

// SavePNG writes the current pixel contents to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, s.Image())
}
