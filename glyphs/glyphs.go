// Package glyphs draws text into a scan buffer through a fixed 8x8
// console font. Each filled run of a glyph row becomes one ON/OFF switch
// point pair, so text costs the rasterizer no more than any other shape.
//
// The built-in font covers printable ASCII; the remaining CP437 slots
// are blank and can be populated by loading a packed font.
package glyphs

import (
	"github.com/softraster/scanbuf"
	"golang.org/x/text/encoding/charmap"
)

// Glyph cell dimensions in pixels.
const (
	Width  = 8
	Height = 8
)

// Font is a table of 256 glyph bitmaps indexed by CP437 code. Each glyph
// is 8 rows of 8 bits with bit 0 as the leftmost pixel.
type Font struct {
	bitmaps [256][8]byte
}

// Default returns a font holding the built-in printable-ASCII glyphs.
// The returned font is a fresh copy; callers may patch glyphs freely.
func Default() *Font {
	f := &Font{}
	copy(f.bitmaps[0x20:], ascii8x8[:])
	return f
}

// Glyph returns the bitmap for a CP437 code.
func (f *Font) Glyph(code byte) [8]byte {
	return f.bitmaps[code]
}

// SetGlyph replaces the bitmap for a CP437 code.
func (f *Font) SetGlyph(code byte, rows [8]byte) {
	f.bitmaps[code] = rows
}

// Index maps a rune to its CP437 glyph code. ok is false for runes the
// code page cannot represent.
func Index(r rune) (code byte, ok bool) {
	return charmap.CodePage437.EncodeRune(r)
}

// AddGlyph writes one glyph with its baseline at y: the cell covers rows
// [y-Height, y). Runes outside CP437 draw the blank glyph 0.
func (f *Font) AddGlyph(buf *scanbuf.ScanBuffer, r rune, x, y int, id scanbuf.MaterialID) {
	code, _ := Index(r)
	rows := &f.bitmaps[code]

	for row := 0; row < Height; row++ {
		bits := rows[row]
		if bits == 0 {
			continue
		}
		yy := y - Height + row
		runStart := -1
		for bit := 0; bit <= Width; bit++ {
			set := bit < Width && bits&(1<<bit) != 0
			if set && runStart < 0 {
				runStart = bit
			} else if !set && runStart >= 0 {
				buf.SetPoint(x+runStart, yy, id, true)
				buf.SetPoint(x+bit, yy, id, false)
				runStart = -1
			}
		}
	}
}

// AddString writes a string left to right with its baseline at y,
// advancing one cell per rune. Returns the x just after the last glyph.
func (f *Font) AddString(buf *scanbuf.ScanBuffer, s string, x, y int, id scanbuf.MaterialID) int {
	for _, r := range s {
		f.AddGlyph(buf, r, x, y, id)
		x += Width
	}
	return x
}

// AddGlyph draws one glyph from the built-in font.
func AddGlyph(buf *scanbuf.ScanBuffer, r rune, x, y int, id scanbuf.MaterialID) {
	defaultFont.AddGlyph(buf, r, x, y, id)
}

// AddString draws a string with the built-in font.
func AddString(buf *scanbuf.ScanBuffer, s string, x, y int, id scanbuf.MaterialID) int {
	return defaultFont.AddString(buf, s, x, y, id)
}

var defaultFont = Default()
