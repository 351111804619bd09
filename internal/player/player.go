package player

import "math"

// DefaultFOV is the horizontal field of view used when none is given (60 degrees).
const DefaultFOV = math.Pi / 3

// WallChecker answers point-in-wall queries in continuous world coordinates.
// *world.Map satisfies it.
type WallChecker interface {
	IsWall(x, y float64) bool
}

// StepListener is notified once per committed movement axis.
type StepListener interface {
	OnStep()
}

// Player holds the continuous pose of the viewer.
// Direction is in radians: 0 faces +x and increasing angles turn towards +y.
type Player struct {
	X, Y      float64 // Position in world units
	Direction float64 // Facing angle in radians, never normalized
	FOV       float64 // Horizontal field of view in radians

	steps StepListener
}

// New creates a player at (x, y) facing direction. A non-positive fov
// selects DefaultFOV.
func New(x, y, direction, fov float64) *Player {
	if fov <= 0 {
		fov = DefaultFOV
	}
	return &Player{
		X:         x,
		Y:         y,
		Direction: direction,
		FOV:       fov,
	}
}

// SetStepListener installs the footstep hook. Passing nil removes it.
func (p *Player) SetStepListener(l StepListener) {
	p.steps = l
}

// MoveForward steps distance along the facing direction.
// It returns the number of axes that were committed.
func (p *Player) MoveForward(distance float64, m WallChecker) int {
	return p.step(distance, m)
}

// MoveBackward steps distance against the facing direction.
func (p *Player) MoveBackward(distance float64, m WallChecker) int {
	return p.step(-distance, m)
}

// step validates each axis on its own so a diagonal move into a wall
// slides along it instead of stopping dead.
func (p *Player) step(distance float64, m WallChecker) int {
	dx, dy := p.DirectionVector()
	newX := p.X + dx*distance
	newY := p.Y + dy*distance

	committed := 0
	if !m.IsWall(newX, p.Y) {
		p.X = newX
		committed++
		p.notifyStep()
	}
	if !m.IsWall(p.X, newY) {
		p.Y = newY
		committed++
		p.notifyStep()
	}
	return committed
}

func (p *Player) notifyStep() {
	if p.steps != nil {
		p.steps.OnStep()
	}
}

// TurnLeft rotates the view towards -angle.
func (p *Player) TurnLeft(angle float64) {
	p.Direction -= angle
}

// TurnRight rotates the view towards +angle.
func (p *Player) TurnRight(angle float64) {
	p.Direction += angle
}

// Turn applies a signed rotation; positive turns right.
func (p *Player) Turn(delta float64) {
	p.Direction += delta
}
