package player

import (
	"math"
	"testing"
)

const epsilon = 1e-9

// mockWalls implements WallChecker for testing: a bordered box with
// optional extra wall cells.
type mockWalls struct {
	width, height int
	extra         map[[2]int]bool
}

func newMockWalls(width, height int) *mockWalls {
	return &mockWalls{width: width, height: height, extra: make(map[[2]int]bool)}
}

func (m *mockWalls) IsWall(x, y float64) bool {
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	if cx <= 0 || cy <= 0 || cx >= m.width-1 || cy >= m.height-1 {
		return true
	}
	return m.extra[[2]int{cx, cy}]
}

func (m *mockWalls) setWall(cx, cy int) {
	m.extra[[2]int{cx, cy}] = true
}

type countingListener struct {
	steps int
}

func (c *countingListener) OnStep() {
	c.steps++
}

func TestNew_DefaultFOV(t *testing.T) {
	p := New(1.5, 2.5, 0, 0)
	if p.FOV != DefaultFOV {
		t.Errorf("Expected default FOV %v, got %v", DefaultFOV, p.FOV)
	}
	if math.Abs(DefaultFOV-60*math.Pi/180) > epsilon {
		t.Errorf("Expected default FOV of 60 degrees")
	}
}

func TestMoveForwardBackward_RoundTrip(t *testing.T) {
	walls := newMockWalls(20, 20)

	angles := []float64{0, 0.3, math.Pi / 4, 2.0, math.Pi, -1.2, 17.5}
	for _, angle := range angles {
		p := New(10.3, 9.7, angle, 0)
		startX, startY := p.X, p.Y

		if n := p.MoveForward(0.75, walls); n != 2 {
			t.Fatalf("angle %v: expected both axes committed, got %d", angle, n)
		}
		p.MoveBackward(0.75, walls)

		if math.Abs(p.X-startX) > epsilon || math.Abs(p.Y-startY) > epsilon {
			t.Errorf("angle %v: expected return to (%v, %v), got (%v, %v)", angle, startX, startY, p.X, p.Y)
		}
	}
}

func TestMoveForward_BlockedByWall(t *testing.T) {
	walls := newMockWalls(10, 10)
	walls.setWall(6, 5)

	// Facing +x, wall cell starts 0.3 units ahead; step of 0.5 would enter it.
	p := New(5.7, 5.5, 0, 0)
	p.MoveForward(0.5, walls)

	if p.X != 5.7 {
		t.Errorf("Expected x unchanged at 5.7 when blocked, got %v", p.X)
	}
	if p.Y != 5.5 {
		t.Errorf("Expected y unchanged at 5.5, got %v", p.Y)
	}
}

func TestMoveForward_SlidesAlongWall(t *testing.T) {
	walls := newMockWalls(10, 10)
	for y := 0; y < 10; y++ {
		walls.setWall(6, y) // vertical wall at x = 6
	}

	// Moving diagonally towards +x,+y: x is blocked, y must still advance.
	p := New(5.9, 3.5, math.Pi/4, 0)
	n := p.MoveForward(0.5, walls)

	if n != 1 {
		t.Errorf("Expected exactly one committed axis, got %d", n)
	}
	if p.X != 5.9 {
		t.Errorf("Expected x blocked at 5.9, got %v", p.X)
	}
	wantY := 3.5 + math.Sin(math.Pi/4)*0.5
	if math.Abs(p.Y-wantY) > epsilon {
		t.Errorf("Expected y to slide to %v, got %v", wantY, p.Y)
	}
}

func TestMoveForward_YCheckUsesCommittedX(t *testing.T) {
	walls := newMockWalls(10, 10)
	walls.setWall(5, 5)

	// From (4.8, 4.8) heading to (5.2, 5.2): x commits into cell (5,4),
	// then (5.2, 5.2) lands in the wall cell so y must be rejected.
	p := New(4.8, 4.8, math.Pi/4, 0)
	p.MoveForward(0.4*math.Sqrt2, walls)

	if math.Abs(p.X-5.2) > 1e-9 {
		t.Errorf("Expected x committed to 5.2, got %v", p.X)
	}
	if p.Y != 4.8 {
		t.Errorf("Expected y rejected at 4.8, got %v", p.Y)
	}
}

func TestMove_NeverEntersWall(t *testing.T) {
	walls := newMockWalls(8, 8)
	walls.setWall(4, 4)
	p := New(2.5, 2.5, 0.7, 0)

	for i := 0; i < 500; i++ {
		p.MoveForward(0.23, walls)
		p.TurnRight(0.37)
		if walls.IsWall(p.X, p.Y) {
			t.Fatalf("Player entered a wall at step %d: (%v, %v)", i, p.X, p.Y)
		}
	}
}

func TestStepListener(t *testing.T) {
	walls := newMockWalls(10, 10)
	listener := &countingListener{}
	p := New(5.5, 5.5, math.Pi/4, 0)
	p.SetStepListener(listener)

	p.MoveForward(0.1, walls)
	if listener.steps != 2 {
		t.Errorf("Expected 2 step notifications for a two-axis move, got %d", listener.steps)
	}

	walls.setWall(6, 5)
	walls.setWall(5, 6)
	walls.setWall(6, 6)
	p.SetPosition(5.95, 5.95)
	p.MoveForward(0.2, walls)
	if listener.steps != 2 {
		t.Errorf("Expected no notification for a fully blocked move, got %d", listener.steps)
	}

	p.SetStepListener(nil)
	p.MoveBackward(0.1, walls)
}

func TestTurn(t *testing.T) {
	p := New(1, 1, 1.0, 0)
	p.TurnLeft(0.25)
	if p.Direction != 0.75 {
		t.Errorf("Expected TurnLeft to subtract, got %v", p.Direction)
	}
	p.TurnRight(0.5)
	if p.Direction != 1.25 {
		t.Errorf("Expected TurnRight to add, got %v", p.Direction)
	}
	p.Turn(-1.25)
	if p.Direction != 0 {
		t.Errorf("Expected signed Turn to apply delta, got %v", p.Direction)
	}

	// No wraparound normalization.
	for i := 0; i < 10; i++ {
		p.TurnRight(math.Pi)
	}
	if math.Abs(p.Direction-10*math.Pi) > epsilon {
		t.Errorf("Expected direction to accumulate without normalization, got %v", p.Direction)
	}
}

func TestCameraVectors(t *testing.T) {
	p := New(0, 0, 0, math.Pi/2)

	dx, dy := p.DirectionVector()
	if math.Abs(dx-1) > epsilon || math.Abs(dy) > epsilon {
		t.Errorf("Expected forward (1,0), got (%v,%v)", dx, dy)
	}

	// fov 90 degrees -> plane length tan(45) = 1, pointing to +y (right of +x).
	px, py := p.Plane()
	if math.Abs(px) > epsilon || math.Abs(py-1) > epsilon {
		t.Errorf("Expected plane (0,1), got (%v,%v)", px, py)
	}

	for _, angle := range []float64{0.1, 1.3, 2.9, -2.2} {
		p.Direction = angle
		dx, dy = p.DirectionVector()
		px, py = p.Plane()
		if dot := dx*px + dy*py; math.Abs(dot) > epsilon {
			t.Errorf("angle %v: plane not perpendicular to direction (dot %v)", angle, dot)
		}
	}
}

func TestCell(t *testing.T) {
	p := New(3.99, 0.01, 0, 0)
	if cx, cy := p.Cell(); cx != 3 || cy != 0 {
		t.Errorf("Expected cell (3,0), got (%d,%d)", cx, cy)
	}
}
