package render

import (
	"math"

	"mazecaster/internal/player"
	"mazecaster/internal/raycast"
)

// Marker is an item drawn on the minimap at world coordinates.
type Marker struct {
	X, Y  float64
	Color uint32
}

// Minimap draws a fixed-scale top-down view of the grid.
type Minimap struct {
	Scale      int // Pixels per cell
	OriginX    int // Screen position of the top-left corner
	OriginY    int
	WallColor  uint32
	OpenColor  uint32
	Player     uint32
	ShowFacing bool
}

// NewMinimap returns a minimap with the default colors at the top-left corner.
func NewMinimap(scale int) *Minimap {
	if scale <= 0 {
		scale = 4
	}
	return &Minimap{
		Scale:      scale,
		WallColor:  ColorWhite,
		OpenColor:  ColorBlack,
		Player:     ColorGreen,
		ShowFacing: true,
	}
}

// Size returns the on-screen size of the minimap for g.
func (mm *Minimap) Size(g raycast.Grid) (int, int) {
	return g.Width() * mm.Scale, g.Height() * mm.Scale
}

// Draw renders the grid, the markers and the player marker into fb.
// Markers are drawn in order, the player last.
func (mm *Minimap) Draw(fb *Framebuffer, g raycast.Grid, p *player.Player, markers ...Marker) {
	for cy := 0; cy < g.Height(); cy++ {
		for cx := 0; cx < g.Width(); cx++ {
			c := mm.OpenColor
			if g.IsWall(float64(cx)+0.5, float64(cy)+0.5) {
				c = mm.WallColor
			}
			fb.FillRect(mm.OriginX+cx*mm.Scale, mm.OriginY+cy*mm.Scale, mm.Scale, mm.Scale, c)
		}
	}

	for _, m := range markers {
		mm.dot(fb, m.X, m.Y, m.Color)
	}

	if p == nil {
		return
	}
	if mm.ShowFacing {
		dx, dy := p.DirectionVector()
		mm.dot(fb, p.X+dx*0.75, p.Y+dy*0.75, mm.Player)
	}
	mm.dot(fb, p.X, p.Y, mm.Player)
}

// ToScreen converts world coordinates to minimap pixel coordinates.
func (mm *Minimap) ToScreen(x, y float64) (int, int) {
	return mm.OriginX + int(math.Floor(x*float64(mm.Scale))), mm.OriginY + int(math.Floor(y*float64(mm.Scale)))
}

// dot draws a small square centered on a world point.
func (mm *Minimap) dot(fb *Framebuffer, x, y float64, c uint32) {
	size := max(mm.Scale/2, 2)
	sx, sy := mm.ToScreen(x, y)
	fb.FillRect(sx-size/2, sy-size/2, size, size, c)
}
