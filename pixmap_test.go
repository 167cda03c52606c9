package scanbuf

import "testing"

// TestPixmapSetGet verifies the word layout round-trips.
func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(5, 5, 0x123456)

	if got := pm.PixelAt(5, 5); got != 0x123456 {
		t.Errorf("PixelAt: got %06X, want 123456", got)
	}

	// little-endian 0x00RRGGBB: B, G, R, 0
	i := (5*10 + 5) * 4
	data := pm.Data()
	if data[i] != 0x56 || data[i+1] != 0x34 || data[i+2] != 0x12 || data[i+3] != 0 {
		t.Errorf("raw bytes (%02X,%02X,%02X,%02X), want (56,34,12,00)",
			data[i], data[i+1], data[i+2], data[i+3])
	}
}

// TestPixmapOutOfBounds verifies out-of-bounds access is silently
// ignored.
func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	original := append([]byte(nil), pm.Data()...)

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, 0xFFFFFF)
		if got := pm.PixelAt(c.x, c.y); got != 0 {
			t.Errorf("PixelAt(%d,%d): got %06X, want 0", c.x, c.y, got)
		}
	}
	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

// TestPixmapToImage verifies the channel mapping into image.RGBA.
func TestPixmapToImage(t *testing.T) {
	pm := NewPixmap(2, 1)
	pm.SetPixel(0, 0, 0x123456)
	img := pm.ToImage()

	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 0x12 || g>>8 != 0x34 || b>>8 != 0x56 || a>>8 != 0xFF {
		t.Errorf("At(0,0): got (%02X,%02X,%02X,%02X), want (12,34,56,FF)",
			r>>8, g>>8, b>>8, a>>8)
	}
}

// TestPixmapClear verifies Clear floods every pixel.
func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.Clear(0xABCDEF)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := pm.PixelAt(x, y); got != 0xABCDEF {
				t.Fatalf("pixel (%d,%d): got %06X, want ABCDEF", x, y, got)
			}
		}
	}
}

// TestPixmapValidation verifies bad dimensions return nil.
func TestPixmapValidation(t *testing.T) {
	if NewPixmap(0, 4) != nil || NewPixmap(4, -1) != nil {
		t.Error("invalid dimensions accepted")
	}
}
