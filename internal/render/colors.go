package render

import (
	"image/color"

	"mazecaster/internal/mathutil"
)

// Common colors used by the default palette and the minimap.
const (
	ColorBlack  uint32 = 0x000000
	ColorWhite  uint32 = 0xffffff
	ColorRed    uint32 = 0xff0000
	ColorGreen  uint32 = 0x00ff00
	ColorYellow uint32 = 0xffff00
	ColorGray   uint32 = 0x808080
)

// PackRGB packs 8-bit channels into 0xRRGGBB.
func PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB splits a packed color into its channels.
func UnpackRGB(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// FromConfig converts a config [R, G, B] triple, clamping each channel to 0-255.
func FromConfig(rgb [3]int) uint32 {
	return PackRGB(
		uint8(mathutil.IntClamp(rgb[0], 0, 255)),
		uint8(mathutil.IntClamp(rgb[1], 0, 255)),
		uint8(mathutil.IntClamp(rgb[2], 0, 255)),
	)
}

// FromColor packs any color.Color, dropping alpha.
func FromColor(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return PackRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ToRGBA returns the packed color as an opaque color.RGBA.
func ToRGBA(c uint32) color.RGBA {
	r, g, b := UnpackRGB(c)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Shade scales every channel by factor, clamped to [0, 1].
func Shade(c uint32, factor float64) uint32 {
	f := mathutil.Clamp(factor, 0, 1)
	r, g, b := UnpackRGB(c)
	return PackRGB(uint8(float64(r)*f), uint8(float64(g)*f), uint8(float64(b)*f))
}

// Luminance returns the perceived brightness of c in [0, 1].
func Luminance(c uint32) float64 {
	r, g, b := UnpackRGB(c)
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}
