package render

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"log"
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder
)

// Texture is a wall texture sampled by the projector.
type Texture interface {
	Size() (width, height int)
	At(x, y int) uint32
}

// ImageTexture is a decoded image flattened into packed pixels so sampling
// from render workers does not go through the image.Image interface.
type ImageTexture struct {
	width  int
	height int
	pixels []uint32
}

// NewImageTexture copies img into a texture.
func NewImageTexture(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	tex := &ImageTexture{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		pixels: make([]uint32, bounds.Dx()*bounds.Dy()),
	}
	for y := 0; y < tex.height; y++ {
		for x := 0; x < tex.width; x++ {
			tex.pixels[y*tex.width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return tex
}

// Size returns the texture dimensions.
func (t *ImageTexture) Size() (int, int) {
	return t.width, t.height
}

// At returns the texel at (x, y); coordinates wrap.
func (t *ImageTexture) At(x, y int) uint32 {
	if t.width == 0 || t.height == 0 {
		return ColorBlack
	}
	x = ((x % t.width) + t.width) % t.width
	y = ((y % t.height) + t.height) % t.height
	return t.pixels[y*t.width+x]
}

// LoadTexture decodes a PNG or BMP file.
func LoadTexture(path string) (*ImageTexture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("texture %s (%s) has no pixels", path, format)
	}
	return NewImageTexture(img), nil
}

// CheckerTexture is a procedural placeholder used when no texture file is available.
type CheckerTexture struct {
	Dim     int // Edge length in texels
	Squares int // Squares per edge
	Light   uint32
	Dark    uint32
}

// DefaultCheckerTexture returns the 64×64 placeholder.
func DefaultCheckerTexture() *CheckerTexture {
	return &CheckerTexture{Dim: 64, Squares: 8, Light: 0xb0b0b0, Dark: 0x505050}
}

// Size returns the texture dimensions.
func (c *CheckerTexture) Size() (int, int) {
	return c.Dim, c.Dim
}

// At returns the checker color at (x, y).
func (c *CheckerTexture) At(x, y int) uint32 {
	cell := c.Dim / max(c.Squares, 1)
	if cell <= 0 {
		return c.Light
	}
	if ((x/cell)+(y/cell))%2 == 0 {
		return c.Light
	}
	return c.Dark
}

// LoadTextureOrPlaceholder loads path, falling back to the checker
// placeholder with a warning. An empty path means flat shading and returns nil.
func LoadTextureOrPlaceholder(path string) Texture {
	if path == "" {
		return nil
	}
	tex, err := LoadTexture(path)
	if err != nil {
		log.Printf("[Textures] Warning: %v, using placeholder", err)
		return DefaultCheckerTexture()
	}
	log.Printf("[Textures] Loaded wall texture %s", path)
	return tex
}
