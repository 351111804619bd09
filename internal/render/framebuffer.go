package render

// Framebuffer is a CPU-side RGB surface. Pixels are packed 0xRRGGBB in
// row-major order. Writes outside the surface are dropped.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewFramebuffer allocates a black framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// Fill paints every pixel.
func (fb *Framebuffer) Fill(c uint32) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// Set writes one pixel.
func (fb *Framebuffer) Set(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// At reads one pixel; outside the surface it returns 0.
func (fb *Framebuffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return 0
	}
	return fb.Pixels[y*fb.Width+x]
}

// FillRect paints the w×h rectangle at (x, y), clipped to the surface.
func (fb *Framebuffer) FillRect(x, y, w, h int, c uint32) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, fb.Width), min(y+h, fb.Height)
	for py := y0; py < y1; py++ {
		row := fb.Pixels[py*fb.Width : (py+1)*fb.Width]
		for px := x0; px < x1; px++ {
			row[px] = c
		}
	}
}

// VLine paints column x over rows [y0, y1).
func (fb *Framebuffer) VLine(x, y0, y1 int, c uint32) {
	if x < 0 || x >= fb.Width {
		return
	}
	y0, y1 = max(y0, 0), min(y1, fb.Height)
	for y := y0; y < y1; y++ {
		fb.Pixels[y*fb.Width+x] = c
	}
}

// RGBA expands the surface into 8-bit RGBA bytes suitable for
// ebiten.Image.WritePixels. dst is reused when it is large enough.
func (fb *Framebuffer) RGBA(dst []byte) []byte {
	n := len(fb.Pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range fb.Pixels {
		o := i * 4
		dst[o] = byte(c >> 16)
		dst[o+1] = byte(c >> 8)
		dst[o+2] = byte(c)
		dst[o+3] = 0xff
	}
	return dst
}
