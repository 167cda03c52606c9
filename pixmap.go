package scanbuf

import (
	"encoding/binary"
	"image"
	"image/png"
	"os"
)

// Pixmap is a framebuffer in the renderer's native layout: row-major
// 32-bit little-endian 0x00RRGGBB words, pitch width*4. Its byte slice is
// what RenderToFramebuffer writes into.
type Pixmap struct {
	width  int
	height int
	data   []byte
}

// NewPixmap creates a pixmap with the given dimensions.
// Returns nil if either dimension is not positive.
func NewPixmap(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]byte, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel bytes (0x00RRGGBB little-endian words).
func (p *Pixmap) Data() []byte {
	return p.data
}

// SetPixel writes a packed color to a single pixel.
func (p *Pixmap) SetPixel(x, y int, c uint32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	binary.LittleEndian.PutUint32(p.data[(y*p.width+x)*4:], c)
}

// PixelAt returns the packed color of a single pixel; out-of-range
// coordinates return black.
func (p *Pixmap) PixelAt(x, y int) uint32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return binary.LittleEndian.Uint32(p.data[(y*p.width+x)*4:])
}

// Clear fills the entire pixmap with a packed color.
func (p *Pixmap) Clear(c uint32) {
	for i := 0; i < len(p.data); i += 4 {
		binary.LittleEndian.PutUint32(p.data[i:], c)
	}
}

// ToImage converts the pixmap to an opaque image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i := 0; i < p.width*p.height; i++ {
		c := binary.LittleEndian.Uint32(p.data[i*4:])
		o := i * 4
		img.Pix[o+0] = uint8(c >> 16)
		img.Pix[o+1] = uint8(c >> 8)
		img.Pix[o+2] = uint8(c)
		img.Pix[o+3] = 0xFF
	}
	return img
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, p.ToImage())
}
