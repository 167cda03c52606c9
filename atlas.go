package scanbuf

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

// defaultObjectMax is the hard cap on materials per atlas: the largest
// value a 16-bit material id can name.
const defaultObjectMax = 65535

// Material describes how a span is painted: a slice of the texture atlas
// plus a z depth. Smaller depths render in front.
type Material struct {
	start       uint32 // first textel index
	offset      uint16 // initial phase into the texture
	increment   uint16 // per-pixel step through the atlas; 0 for flat color
	length      uint16 // textel count before looping; must be a power of two
	depth       int16  // z-position in the final image
	screenSpace bool   // phase follows absolute x instead of the span start
}

// Depth returns the material's z position.
func (m Material) Depth() int { return int(m.depth) }

// TextureAtlas holds every texture of a frame in one contiguous textel
// array, plus the material table indexing into it. The atlas is
// append-only within a frame; Reset recycles it for the next one.
type TextureAtlas struct {
	textels     []uint32
	textelCount int

	materials     []Material
	materialCount int
	materialMax   int

	// reset-point mirrors, captured alongside ScanBuffer.SetResetPoint
	textelMark   int
	materialMark int
}

// AtlasOption configures a TextureAtlas during creation.
type AtlasOption func(*TextureAtlas)

// WithObjectMax caps the number of materials the atlas will allocate.
// Values outside [1, 65535] are clamped.
func WithObjectMax(n int) AtlasOption {
	return func(a *TextureAtlas) {
		if n < 1 {
			n = 1
		}
		if n > defaultObjectMax {
			n = defaultObjectMax
		}
		a.materialMax = n
	}
}

// NewTextureAtlas allocates an atlas with room for textelSpace textels.
// Returns nil if textelSpace is not positive.
func NewTextureAtlas(textelSpace int, opts ...AtlasOption) *TextureAtlas {
	if textelSpace <= 0 {
		return nil
	}
	a := &TextureAtlas{
		textels:     make([]uint32, textelSpace+1),
		materials:   make([]Material, defaultObjectMax+1),
		materialMax: defaultObjectMax,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Reset recycles the atlas: new textures and materials overwrite the old
// ones. Call at frame start, before any material is created.
func (a *TextureAtlas) Reset() {
	a.textelCount = 0
	a.materialCount = 0
	a.textelMark = 0
	a.materialMark = 0
}

// SetResetPoint captures the current textel and material counters,
// mirroring ScanBuffer.SetResetPoint for the materials a static layer
// allocated.
func (a *TextureAtlas) SetResetPoint() {
	a.textelMark = a.textelCount
	a.materialMark = a.materialCount
}

// ResetToMark rolls the counters back to the last SetResetPoint, so
// materials created since then are recycled.
func (a *TextureAtlas) ResetToMark() {
	a.textelCount = a.textelMark
	a.materialCount = a.materialMark
}

// MaterialCount returns the number of materials currently allocated.
func (a *TextureAtlas) MaterialCount() int { return a.materialCount }

// TextelCount returns the number of textels currently in use.
func (a *TextureAtlas) TextelCount() int { return a.textelCount }

// Material returns a copy of the material table entry for id.
func (a *TextureAtlas) Material(id MaterialID) (Material, bool) {
	if id == 0 || int(id) > a.materialCount {
		return Material{}, false
	}
	return a.materials[id], true
}

// allocMaterial reserves the next material id, or 0 if the table is full.
func (a *TextureAtlas) allocMaterial() MaterialID {
	if a.materialCount >= a.materialMax {
		return 0
	}
	a.materialCount++
	return MaterialID(a.materialCount)
}

// AddSingleColorMaterial creates a flat-color material at the given depth
// from a packed 0x00RRGGBB color. Returns the new material id, or 0 if
// the atlas is full.
func (a *TextureAtlas) AddSingleColorMaterial(depth int, color uint32) MaterialID {
	if a.textelCount >= len(a.textels)-1 {
		return 0
	}
	id := a.allocMaterial()
	if id == 0 {
		return 0
	}

	idx := a.textelCount
	a.textelCount++
	a.textels[idx] = color

	a.materials[id] = Material{
		start:     uint32(idx),
		increment: 0,
		length:    1,
		depth:     clampDepth(depth),
	}
	return id
}

// AddSingleColorMaterialRGB creates a flat-color material from separate
// 8-bit channels.
func (a *TextureAtlas) AddSingleColorMaterialRGB(depth int, r, g, b uint8) MaterialID {
	return a.AddSingleColorMaterial(depth, PackRGB(r, g, b))
}

// AddTextureTextels appends pre-packed 0x00RRGGBB textels, returning the
// base index of the run. ok is false if the atlas has no room; nothing is
// appended in that case.
func (a *TextureAtlas) AddTextureTextels(textels []uint32) (base uint32, ok bool) {
	if len(textels) > len(a.textels)-1-a.textelCount {
		return 0, false
	}
	base = uint32(a.textelCount)
	copy(a.textels[a.textelCount:], textels)
	a.textelCount += len(textels)
	return base, true
}

// AddTextureRGB appends textels from packed R,G,B byte triplets,
// returning the base index of the run.
func (a *TextureAtlas) AddTextureRGB(rgb []byte) (base uint32, ok bool) {
	count := len(rgb) / 3
	if count > len(a.textels)-1-a.textelCount {
		return 0, false
	}
	base = uint32(a.textelCount)
	for i := 0; i < count; i++ {
		a.textels[a.textelCount] = PackRGB(rgb[i*3], rgb[i*3+1], rgb[i*3+2])
		a.textelCount++
	}
	return base, true
}

// AddGradientTexture appends a run of textels blending from c0 to c1 in
// Lab space (clamped to sRGB), returning the base index. steps should be
// a power of two if the run is to back a material directly.
func (a *TextureAtlas) AddGradientTexture(c0, c1 colorful.Color, steps int) (base uint32, ok bool) {
	if steps < 1 || steps > len(a.textels)-1-a.textelCount {
		return 0, false
	}
	base = uint32(a.textelCount)
	for i := 0; i < steps; i++ {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		r, g, b := c0.BlendLab(c1, t).Clamped().RGB255()
		a.textels[a.textelCount] = PackRGB(r, g, b)
		a.textelCount++
	}
	return base, true
}

// AddTextureImage scales img to a textels-wide single row and appends it,
// returning the base index of the run. Use a power-of-two width for a
// material that tiles.
func (a *TextureAtlas) AddTextureImage(img image.Image, textels int) (base uint32, ok bool) {
	if img == nil || textels < 1 || textels > len(a.textels)-1-a.textelCount {
		return 0, false
	}

	strip := image.NewRGBA(image.Rect(0, 0, textels, 1))
	xdraw.CatmullRom.Scale(strip, strip.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	base = uint32(a.textelCount)
	for i := 0; i < textels; i++ {
		o := i * 4
		a.textels[a.textelCount] = PackRGB(strip.Pix[o], strip.Pix[o+1], strip.Pix[o+2])
		a.textelCount++
	}
	return base, true
}

// AddTextureMaterial creates a material referencing an existing textel
// run. length must be a power of two (it becomes the phase mask); other
// lengths return 0. The texture phase follows the span: a shape carries
// its texture with it.
func (a *TextureAtlas) AddTextureMaterial(depth int, base uint32, increment, length uint16) MaterialID {
	return a.addTextureMaterial(depth, base, increment, length, false)
}

// AddTextureMaterialScreenSpace is AddTextureMaterial with the phase a
// function of absolute x: the pattern stays fixed on screen no matter
// where the shape sits.
func (a *TextureAtlas) AddTextureMaterialScreenSpace(depth int, base uint32, increment, length uint16) MaterialID {
	return a.addTextureMaterial(depth, base, increment, length, true)
}

func (a *TextureAtlas) addTextureMaterial(depth int, base uint32, increment, length uint16, screenSpace bool) MaterialID {
	if length == 0 || length&(length-1) != 0 {
		return 0
	}
	id := a.allocMaterial()
	if id == 0 {
		return 0
	}
	a.materials[id] = Material{
		start:       base,
		increment:   increment,
		length:      length,
		depth:       clampDepth(depth),
		screenSpace: screenSpace,
	}
	return id
}

// SetMaterialOffset changes a material's initial texture phase in place,
// for scrolling-texture animation. Unknown ids are ignored.
func (a *TextureAtlas) SetMaterialOffset(id MaterialID, offset uint16) {
	if id == 0 || int(id) > a.materialCount {
		return
	}
	a.materials[id].offset = offset
}

// SetMaterialDepth changes a material's depth in place. Unknown ids are
// ignored.
func (a *TextureAtlas) SetMaterialDepth(id MaterialID, depth int) {
	if id == 0 || int(id) > a.materialCount {
		return
	}
	a.materials[id].depth = clampDepth(depth)
}

func clampDepth(depth int) int16 {
	if depth > 32767 {
		return 32767
	}
	if depth < -32768 {
		return -32768
	}
	return int16(depth)
}
