package glyphs

import (
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"
)

// LoadPacked reads a complete 256-glyph font from a 1-bpp packed stream:
// 256 glyphs of 8 rows of 8 bits, leftmost pixel first within each row.
// The stream is exactly 2048 bytes.
func LoadPacked(r io.Reader) (*Font, error) {
	br := bitreader.NewReader(r)
	f := &Font{}
	for g := 0; g < 256; g++ {
		for row := 0; row < 8; row++ {
			var bits byte
			for bit := 0; bit < 8; bit++ {
				set, err := br.Read1()
				if err != nil {
					return nil, fmt.Errorf("glyphs: packed font truncated at glyph %d row %d: %w", g, row, err)
				}
				if set {
					bits |= 1 << bit
				}
			}
			f.bitmaps[g][row] = bits
		}
	}
	return f, nil
}

// WritePacked writes the font in the format LoadPacked reads.
func (f *Font) WritePacked(w io.Writer) error {
	buf := make([]byte, 0, 2048)
	for g := 0; g < 256; g++ {
		for row := 0; row < 8; row++ {
			bits := f.bitmaps[g][row]
			// stream order is leftmost-first, which is bit 0 first; the
			// wire byte therefore carries bit 0 in its MSB
			var b byte
			for bit := 0; bit < 8; bit++ {
				if bits&(1<<bit) != 0 {
					b |= 0x80 >> bit
				}
			}
			buf = append(buf, b)
		}
	}
	_, err := w.Write(buf)
	return err
}
