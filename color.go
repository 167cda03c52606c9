package scanbuf

import "image/color"

// Colors are packed 32-bit 0x00RRGGBB words, the textel format of the
// atlas and the framebuffer. The top byte is unused and written as zero.

// PackRGB packs 8-bit channels into a 0x00RRGGBB word.
func PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB splits a packed 0x00RRGGBB word into 8-bit channels.
func UnpackRGB(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// FromColor converts a standard color.Color to a packed word. Alpha is
// discarded; the rasterizer has no translucency.
func FromColor(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return PackRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Hex parses a hex color string into a packed word.
// Supports "RGB" and "RRGGBB", with or without a leading '#'.
// Malformed strings return black.
func Hex(hex string) uint32 {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return 0
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return 0
		}
	default:
		return 0
	}
	return r<<16 | g<<8 | b
}

// parseHex parses a 1-2 digit hex component.
func parseHex(s string, out *uint32) bool {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | uint32(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | uint32(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v<<4 | uint32(c-'A'+10)
		default:
			return false
		}
	}
	*out = v
	return true
}

// Blend mixes two packed colors by a proportion in [0,255]:
// 255 is 100% c1, 0 is 100% c2.
func Blend(prop uint32, c1, c2 uint32) uint32 {
	if prop >= 255 {
		return c1
	}
	if prop == 0 {
		return c2
	}

	prop2 := 255 - prop
	r := prop * ((c1 >> 16) & 0xFF)
	g := prop * ((c1 >> 8) & 0xFF)
	b := prop * (c1 & 0xFF)

	r += prop2 * ((c2 >> 16) & 0xFF)
	g += prop2 * ((c2 >> 8) & 0xFF)
	b += prop2 * (c2 & 0xFF)

	// the >>8 normalization is folded into the channel merge
	return ((r & 0xFF00) << 8) | (g & 0xFF00) | ((b >> 8) & 0xFF)
}
