package render

import (
	"math"

	"mazecaster/internal/mathutil"
	"mazecaster/internal/player"
	"mazecaster/internal/raycast"
	"mazecaster/internal/threading/core"
	"mazecaster/internal/threading/monitoring"
)

// Projection selects how screen columns map to rays.
type Projection int

const (
	// ProjectionPlane casts forward + plane*cameraX, the classic camera-plane model.
	ProjectionPlane Projection = iota
	// ProjectionAngle casts at direction + fov/2*cameraX.
	ProjectionAngle
)

// ParseProjection maps a config name to a Projection. Unknown names use the plane model.
func ParseProjection(name string) Projection {
	if name == "angle" {
		return ProjectionAngle
	}
	return ProjectionPlane
}

// Palette holds the flat colors of the first-person view.
type Palette struct {
	Sky       uint32
	Floor     uint32
	WallLight uint32 // Vertical faces
	WallDark  uint32 // Horizontal faces
}

// DefaultPalette is used when no colors are configured.
var DefaultPalette = Palette{
	Sky:       0x383838,
	Floor:     0x707070,
	WallLight: 0xb4b4b4,
	WallDark:  0x787878,
}

// horizontalShade darkens textured horizontal faces so corners stay readable.
const horizontalShade = 0.7

// Column is one projected wall strip.
type Column struct {
	Top    int     // First wall row, inclusive
	Bottom int     // Last wall row, exclusive
	Span   float64 // Unclamped strip height in pixels
	Empty  bool    // No wall drawn in this column
}

// Projector turns raycast hits into screen columns.
type Projector struct {
	Width      int
	Height     int
	Projection Projection
	Palette    Palette
	Texture    Texture                        // nil draws flat two-tone walls
	Pool       *core.WorkerPool               // nil casts columns on the caller's goroutine
	Monitor    *monitoring.PerformanceMonitor // optional raycast timing

	// PixelAspect is pixel height over pixel width. Zero means square
	// pixels; terminal cells are about 2.
	PixelAspect float64

	hits []raycast.Hit
}

// NewProjector creates a flat-shaded plane-model projector.
func NewProjector(width, height int) *Projector {
	return &Projector{
		Width:      width,
		Height:     height,
		Projection: ProjectionPlane,
		Palette:    DefaultPalette,
	}
}

// CameraX maps screen column x to [-1, 1): 2x/W - 1.
func (pr *Projector) CameraX(x int) float64 {
	return 2*float64(x)/float64(pr.Width) - 1
}

// ColumnOffset returns the angle offset of column x in the angle model.
func (pr *Projector) ColumnOffset(x int, fov float64) float64 {
	return fov / 2 * pr.CameraX(x)
}

// CastColumn casts the ray for screen column x.
func (pr *Projector) CastColumn(g raycast.Grid, p *player.Player, x int) raycast.Hit {
	if pr.Projection == ProjectionAngle {
		return raycast.Cast(g, p, pr.ColumnOffset(x, p.FOV))
	}

	cameraX := pr.CameraX(x)
	dirX, dirY := p.DirectionVector()
	planeX, planeY := p.Plane()
	return raycast.CastDirection(g, p.X, p.Y, dirX+planeX*cameraX, dirY+planeY*cameraX)
}

// ProjectColumn computes the strip for a perpendicular distance.
// The line height is H/perp clamped to H, centered on the horizon.
// A non-positive or non-finite distance yields an empty column.
func (pr *Projector) ProjectColumn(perpDistance float64) Column {
	if !mathutil.IsFinitePositive(perpDistance) {
		return Column{Empty: true}
	}

	span := float64(pr.Height) / (perpDistance * pr.pixelAspect())
	lineHeight := pr.Height
	if span < float64(pr.Height) {
		lineHeight = int(span)
	}

	return Column{
		Top:    pr.Height/2 - lineHeight/2,
		Bottom: pr.Height/2 + lineHeight/2,
		Span:   span,
		Empty:  lineHeight <= 0,
	}
}

func (pr *Projector) pixelAspect() float64 {
	if !mathutil.IsFinitePositive(pr.PixelAspect) {
		return 1
	}
	return pr.PixelAspect
}

// Render draws sky, floor and walls into fb and returns the per-column hits.
// The returned slice is reused by the next call.
func (pr *Projector) Render(fb *Framebuffer, g raycast.Grid, p *player.Player) []raycast.Hit {
	if cap(pr.hits) < pr.Width {
		pr.hits = make([]raycast.Hit, pr.Width)
	}
	pr.hits = pr.hits[:pr.Width]

	if pr.Monitor != nil {
		timer := pr.Monitor.StartRaycast(pr.Width)
		defer timer.EndRaycast()
	}

	// Each column touches only its own pixels and hit slot.
	castAndDraw := func(x int) {
		hit := pr.CastColumn(g, p, x)
		pr.hits[x] = hit
		pr.drawColumn(fb, x, hit)
	}

	if pr.Pool != nil {
		pr.Pool.ParallelFor(0, pr.Width, castAndDraw)
	} else {
		for x := 0; x < pr.Width; x++ {
			castAndDraw(x)
		}
	}

	return pr.hits
}

func (pr *Projector) drawColumn(fb *Framebuffer, x int, hit raycast.Hit) {
	col := pr.ProjectColumn(hit.Distance)
	if col.Empty {
		horizon := pr.Height / 2
		fb.VLine(x, 0, horizon, pr.Palette.Sky)
		fb.VLine(x, horizon, pr.Height, pr.Palette.Floor)
		return
	}

	fb.VLine(x, 0, col.Top, pr.Palette.Sky)
	fb.VLine(x, col.Bottom, pr.Height, pr.Palette.Floor)

	if pr.Texture == nil {
		c := pr.Palette.WallLight
		if hit.IsHorizontal() {
			c = pr.Palette.WallDark
		}
		fb.VLine(x, col.Top, col.Bottom, c)
		return
	}

	texW, texH := pr.Texture.Size()
	texX := mathutil.IntClamp(int(hit.WallX*float64(texW)), 0, texW-1)
	shade := 1.0
	if hit.IsHorizontal() {
		shade = horizontalShade
	}

	// v runs over the full unclamped strip so walls closer than one unit are
	// cropped at the screen edge rather than squashed.
	stripTop := float64(pr.Height)/2 - col.Span/2
	for y := col.Top; y < col.Bottom; y++ {
		v := (float64(y) + 0.5 - stripTop) / col.Span
		texY := mathutil.IntClamp(int(math.Floor(v*float64(texH))), 0, texH-1)
		c := pr.Texture.At(texX, texY)
		if shade != 1.0 {
			c = Shade(c, shade)
		}
		fb.Set(x, y, c)
	}
}
