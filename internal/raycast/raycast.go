package raycast

import (
	"math"

	"mazecaster/internal/player"
)

// Grid is the read-only map contract the raycaster walks.
// Cells outside [0,Width)x[0,Height) must report as walls.
type Grid interface {
	IsWall(x, y float64) bool
	Width() int
	Height() int
}

// Side tells which grid axis the terminating DDA step was taken on.
type Side int

const (
	SideVertical   Side = iota // Stepped along x: hit a north-south (vertical) wall face
	SideHorizontal             // Stepped along y: hit an east-west (horizontal) wall face
)

// infiniteDelta stands in for 1/0 when a ray component is exactly zero,
// so that axis never wins the side-distance comparison.
const infiniteDelta = 1e30

// MinDistance is the smallest distance a hit reports. A viewer standing on
// a wall face sees that wall at full height instead of nothing.
const MinDistance = 1e-6

// Hit contains the result of a DDA raycast operation.
type Hit struct {
	Distance float64 // Perpendicular distance to the wall (prevents fisheye)
	Side     Side    // Axis of the terminating step, used for shading
	MapX     int     // Grid column of the cell that stopped the ray
	MapY     int     // Grid row of the cell that stopped the ray
	StepX    int     // Step direction along x (-1 or +1)
	StepY    int     // Step direction along y (-1 or +1)
	WallX    float64 // Hit position along the wall face, 0.0 to 1.0, for texture mapping
	Steps    int     // Number of grid cells traversed
}

// IsHorizontal reports whether the ray stopped on a y-axis step.
func (h Hit) IsHorizontal() bool {
	return h.Side == SideHorizontal
}

// CastRay casts a ray at p.Direction+angleOffset and returns the
// perpendicular distance to the nearest wall and whether the hit side
// was horizontal.
func CastRay(g Grid, p *player.Player, angleOffset float64) (float64, bool) {
	hit := Cast(g, p, angleOffset)
	return hit.Distance, hit.IsHorizontal()
}

// Cast is CastRay with the full hit record.
//
// The ray direction is scaled so that its projection onto the facing
// direction has unit length; the DDA distance along it is then the
// perpendicular distance and rays at different offsets agree on flat walls.
// Offsets at or beyond a quarter turn have no forward component and fall
// back to the plain distance along the unit ray.
func Cast(g Grid, p *player.Player, angleOffset float64) Hit {
	angle := p.Direction + angleOffset
	dirX := math.Cos(angle)
	dirY := math.Sin(angle)

	if forward := math.Cos(angleOffset); forward > 1e-9 {
		dirX /= forward
		dirY /= forward
	}

	return CastDirection(g, p.X, p.Y, dirX, dirY)
}

// CastDirection walks the grid from (originX, originY) along (dirX, dirY)
// one cell boundary at a time until it enters a wall cell.
//
// The returned distance is measured in multiples of the direction vector:
// for a unit vector it is the Euclidean length, for a camera-plane ray
// (forward + plane*cameraX) it is the perpendicular distance.
func CastDirection(g Grid, originX, originY, dirX, dirY float64) Hit {
	mapX := int(math.Floor(originX))
	mapY := int(math.Floor(originY))

	// Calculate delta distances - how far the ray travels to cross one grid line
	deltaDistX := infiniteDelta
	if dirX != 0 {
		deltaDistX = math.Abs(1 / dirX)
	}
	deltaDistY := infiniteDelta
	if dirY != 0 {
		deltaDistY = math.Abs(1 / dirY)
	}

	// Step directions and initial distances to the first grid line on each axis
	var stepX, stepY int
	var sideDistX, sideDistY float64
	if dirX < 0 {
		stepX = -1
		sideDistX = (originX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - originX) * deltaDistX
	}
	if dirY < 0 {
		stepY = -1
		sideDistY = (originY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - originY) * deltaDistY
	}

	// A ray can cross at most width+height cells before leaving the grid,
	// and everything outside is solid. The cap only guards broken Grids.
	maxSteps := g.Width() + g.Height() + 4
	side := SideVertical
	steps := 0
	for steps < maxSteps {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = SideVertical
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = SideHorizontal
		}
		steps++

		if g.IsWall(float64(mapX), float64(mapY)) {
			break
		}
	}

	var perpDist float64
	if side == SideVertical {
		perpDist = (float64(mapX) - originX + (1-float64(stepX))/2) / dirX
	} else {
		perpDist = (float64(mapY) - originY + (1-float64(stepY))/2) / dirY
	}
	// An origin exactly on the boundary of the hit face yields zero or -0.
	if !(perpDist > MinDistance) {
		perpDist = MinDistance
	}

	// Texture coordinate along the wall face
	var wallX float64
	if side == SideVertical {
		wallX = originY + perpDist*dirY
	} else {
		wallX = originX + perpDist*dirX
	}
	wallX -= math.Floor(wallX)

	// Mirror so textures read the same way on opposite faces
	if side == SideVertical && dirX < 0 {
		wallX = 1 - wallX
	}
	if side == SideHorizontal && dirY > 0 {
		wallX = 1 - wallX
	}

	return Hit{
		Distance: perpDist,
		Side:     side,
		MapX:     mapX,
		MapY:     mapY,
		StepX:    stepX,
		StepY:    stepY,
		WallX:    wallX,
		Steps:    steps,
	}
}
