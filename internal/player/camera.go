package player

import "math"

// Camera helper methods for the Player.
// These provide the vectors the renderer derives column rays from.

// DirectionVector returns the unit forward vector.
func (p *Player) DirectionVector() (float64, float64) {
	return math.Cos(p.Direction), math.Sin(p.Direction)
}

// Plane returns the camera plane vector. It is perpendicular to the
// forward vector, points to the right of the view and has length tan(fov/2),
// so forward + plane*cameraX spans the field of view for cameraX in [-1, 1].
func (p *Player) Plane() (float64, float64) {
	scale := math.Tan(p.FOV / 2)
	return -math.Sin(p.Direction) * scale, math.Cos(p.Direction) * scale
}

// GetPosition returns the player's current position
func (p *Player) GetPosition() (float64, float64) {
	return p.X, p.Y
}

// SetPosition sets the player's position without collision checks.
func (p *Player) SetPosition(x, y float64) {
	p.X = x
	p.Y = y
}

// Cell returns the grid cell the player stands in.
func (p *Player) Cell() (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}
