package gameplay

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/jinzhu/copier"

	"mazecaster/internal/player"
	"mazecaster/internal/world"
)

// MaxFrameDelta caps the simulated time of one frame so a stall does not
// turn into a long jump through the maze.
const MaxFrameDelta = 0.1

// maxStride bounds a single collision-checked move. Walls are one cell thick.
const maxStride = 0.25

// ErrSpawnBlocked is returned when the spawn point lies inside a wall.
var ErrSpawnBlocked = errors.New("spawn point is inside a wall")

// Tuning holds the movement and pickup parameters of a session.
type Tuning struct {
	MoveSpeed         float64 // World units per second
	TurnSpeed         float64 // Radians per second
	MouseSensitivity  float64 // Radians per pixel of horizontal mouse movement
	PickupRadius      float64
	PlacementAttempts int
}

// DefaultTuning returns the stock movement settings.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:         3.0,
		TurnSpeed:         2.5,
		MouseSensitivity:  0.003,
		PickupRadius:      DefaultPickupRadius,
		PlacementAttempts: world.DefaultPlacementAttempts,
	}
}

// Pose is a snapshot of the player's exported state.
type Pose struct {
	X, Y      float64
	Direction float64
	FOV       float64
}

// Event reports what an Update did, for front-ends that react with sound or logs.
type Event int

const (
	EventNone Event = iota
	EventStarted
	EventKeyCollected
	EventGoalLocked // Goal reached without the key
	EventWon
	EventRestarted
)

func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventKeyCollected:
		return "key collected"
	case EventGoalLocked:
		return "goal locked"
	case EventWon:
		return "won"
	case EventRestarted:
		return "restarted"
	default:
		return "none"
	}
}

// Session is one run through a maze: the map, the player and the two items.
type Session struct {
	Map    *world.Map
	Player *player.Player
	Key    *Item
	Goal   *Item

	spawn  Pose
	tuning Tuning
	rng    *rand.Rand
}

// NewSession places the player at spawn and scatters the key and goal on
// distinct open cells other than the spawn cell. A nil rng uses a fixed seed.
func NewSession(m *world.Map, spawn Pose, tuning Tuning, rng *rand.Rand) (*Session, error) {
	if m.IsWall(spawn.X, spawn.Y) {
		return nil, fmt.Errorf("spawn (%.2f, %.2f): %w", spawn.X, spawn.Y, ErrSpawnBlocked)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if tuning.PickupRadius <= 0 {
		tuning.PickupRadius = DefaultPickupRadius
	}

	s := &Session{
		Map:    m,
		Player: player.New(spawn.X, spawn.Y, spawn.Direction, spawn.FOV),
		tuning: tuning,
		rng:    rng,
	}
	// Snapshot after construction so the defaulted FOV is part of the spawn pose.
	if err := copier.Copy(&s.spawn, s.Player); err != nil {
		return nil, fmt.Errorf("failed to snapshot spawn pose: %w", err)
	}

	if err := s.placeItems(); err != nil {
		return nil, err
	}
	return s, nil
}

// Spawn returns the pose restored by Reset.
func (s *Session) Spawn() Pose {
	return s.spawn
}

// Tuning returns the session's movement settings.
func (s *Session) Tuning() Tuning {
	return s.tuning
}

// Reset puts the player back at the spawn pose and places fresh items.
// The step listener on the player is kept.
func (s *Session) Reset() error {
	if err := copier.Copy(s.Player, &s.spawn); err != nil {
		return fmt.Errorf("failed to restore spawn pose: %w", err)
	}
	return s.placeItems()
}

func (s *Session) placeItems() error {
	spawnX, spawnY := s.Player.Cell()
	spawnCell := world.Cell{X: spawnX, Y: spawnY}

	keyCell, err := world.RandomOpenCell(s.Map, s.rng, s.tuning.PlacementAttempts, spawnCell)
	if err != nil {
		return fmt.Errorf("failed to place key: %w", err)
	}
	goalCell, err := world.RandomOpenCell(s.Map, s.rng, s.tuning.PlacementAttempts, spawnCell, keyCell)
	if err != nil {
		return fmt.Errorf("failed to place goal: %w", err)
	}

	s.Key = newItemAt(keyCell)
	s.Goal = newItemAt(goalCell)
	return nil
}

func newItemAt(c world.Cell) *Item {
	x, y := c.Center()
	return &Item{X: x, Y: y}
}

// Update advances the session by one frame of dt seconds, capped at
// MaxFrameDelta. Player movement and pickups only run while Playing.
func (s *Session) Update(ctx *FrameContext, in FrameInput, dt float64) (Event, error) {
	dt = clampFrameDelta(dt)
	ctx.Frames++
	ctx.Elapsed += dt
	ctx.applyToggles(in)

	switch ctx.State {
	case StateWelcome:
		if in.Start {
			ctx.State = StatePlaying
			return EventStarted, nil
		}
	case StatePlaying:
		return s.play(ctx, in, dt), nil
	case StateWin:
		if in.Start {
			if err := s.Reset(); err != nil {
				return EventNone, err
			}
			ctx.State = StatePlaying
			return EventRestarted, nil
		}
	}
	return EventNone, nil
}

func (s *Session) play(ctx *FrameContext, in FrameInput, dt float64) Event {
	p := s.Player

	if in.TurnLeft {
		p.TurnLeft(s.tuning.TurnSpeed * dt)
	}
	if in.TurnRight {
		p.TurnRight(s.tuning.TurnSpeed * dt)
	}
	if in.MouseDX != 0 {
		p.Turn(in.MouseDX * s.tuning.MouseSensitivity)
	}

	step := s.tuning.MoveSpeed * dt
	if in.Forward {
		s.walk(p.MoveForward, step)
	}
	if in.Backward {
		s.walk(p.MoveBackward, step)
	}

	return s.checkPickups(ctx)
}

// walk splits distance into strides short enough that collision sees
// every cell on the way.
func (s *Session) walk(move func(float64, player.WallChecker) int, distance float64) {
	if math.IsInf(distance, 0) {
		return
	}
	for distance > 0 {
		stride := math.Min(distance, maxStride)
		move(stride, s.Map)
		distance -= stride
	}
}

func clampFrameDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, MaxFrameDelta)
}

func (s *Session) checkPickups(ctx *FrameContext) Event {
	x, y := s.Player.GetPosition()
	r := s.tuning.PickupRadius

	if !s.Key.Collected && s.Key.Near(x, y, r) {
		s.Key.Collect()
		return EventKeyCollected
	}

	if s.Goal.Near(x, y, r) {
		if !s.Key.Collected {
			return EventGoalLocked
		}
		s.Goal.Collect()
		ctx.State = StateWin
		return EventWon
	}
	return EventNone
}
