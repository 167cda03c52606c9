package glyphs

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/softraster/scanbuf"
)

// AddFace rasterizes s with an arbitrary font.Face into switch points,
// with the baseline at y. Glyph coverage is thresholded at 50%: the
// rasterizer has no translucency, so anti-aliased faces come out with
// hard edges. Returns the x just after the final advance.
//
// Use this for proportional text; for the console cells of the built-in
// font, AddString is cheaper.
func AddFace(buf *scanbuf.ScanBuffer, face font.Face, s string, x, y int, id scanbuf.MaterialID) int {
	dot := fixed.P(x, y)
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		prev = r
		if !ok {
			continue
		}

		for yy := dr.Min.Y; yy < dr.Max.Y; yy++ {
			my := maskp.Y + yy - dr.Min.Y
			runStart := -1
			for xx := dr.Min.X; xx <= dr.Max.X; xx++ {
				covered := false
				if xx < dr.Max.X {
					a := color.AlphaModel.Convert(mask.At(maskp.X+xx-dr.Min.X, my)).(color.Alpha).A
					covered = a >= 0x80
				}
				if covered && runStart < 0 {
					runStart = xx
				} else if !covered && runStart >= 0 {
					buf.SetPoint(runStart, yy, id, true)
					buf.SetPoint(xx, yy, id, false)
					runStart = -1
				}
			}
		}

		dot.X += advance
	}
	return dot.X.Ceil()
}
