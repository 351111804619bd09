package world

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrMazeTooSmall is returned for generators narrower or shorter than 3 cells.
var ErrMazeTooSmall = errors.New("maze must be at least 3x3")

// MazeGenerator builds bordered mazes procedurally.
// Passages run on odd coordinates; an even width or height leaves an extra
// wall column or row on the far side.
type MazeGenerator struct {
	Width      int
	Height     int
	LoopChance float64 // Chance to open a wall between two straight passages

	rng *rand.Rand
}

// NewMazeGenerator creates a generator drawing from rng.
func NewMazeGenerator(width, height int, loopChance float64, rng *rand.Rand) *MazeGenerator {
	return &MazeGenerator{
		Width:      width,
		Height:     height,
		LoopChance: loopChance,
		rng:        rng,
	}
}

// Generate carves a new maze. The start marker is always cell (1, 1).
func (g *MazeGenerator) Generate() (*MapData, error) {
	if g.Width < 3 || g.Height < 3 {
		return nil, fmt.Errorf("generate %dx%d: %w", g.Width, g.Height, ErrMazeTooSmall)
	}

	cells := g.fillWalls()
	g.carvePassages(cells)
	g.addLoops(cells)

	m, err := NewMap(cells)
	if err != nil {
		return nil, fmt.Errorf("generate %dx%d: %w", g.Width, g.Height, err)
	}
	return &MapData{
		Name:   fmt.Sprintf("generated-%dx%d", g.Width, g.Height),
		Map:    m,
		StartX: 1,
		StartY: 1,
	}, nil
}

func (g *MazeGenerator) fillWalls() [][]CellKind {
	cells := make([][]CellKind, g.Height)
	for y := range cells {
		cells[y] = make([]CellKind, g.Width)
		for x := range cells[y] {
			cells[y][x] = CellWall
		}
	}
	return cells
}

var carveSteps = [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

// carvePassages runs an iterative depth-first backtracker from (1, 1).
func (g *MazeGenerator) carvePassages(cells [][]CellKind) {
	cells[1][1] = CellEmpty
	stack := []Cell{{X: 1, Y: 1}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		carved := false

		for _, i := range g.rng.Perm(len(carveSteps)) {
			dx, dy := carveSteps[i][0], carveSteps[i][1]
			nx, ny := cur.X+dx, cur.Y+dy
			if nx < 1 || ny < 1 || nx > g.Width-2 || ny > g.Height-2 || cells[ny][nx] == CellEmpty {
				continue
			}
			cells[cur.Y+dy/2][cur.X+dx/2] = CellEmpty
			cells[ny][nx] = CellEmpty
			stack = append(stack, Cell{X: nx, Y: ny})
			carved = true
			break
		}

		if !carved {
			stack = stack[:len(stack)-1]
		}
	}
}

// addLoops opens interior walls that separate two passages in a straight line.
func (g *MazeGenerator) addLoops(cells [][]CellKind) {
	if g.LoopChance <= 0 {
		return
	}
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if cells[y][x] != CellWall {
				continue
			}
			horizontal := cells[y][x-1] == CellEmpty && cells[y][x+1] == CellEmpty &&
				cells[y-1][x] == CellWall && cells[y+1][x] == CellWall
			vertical := cells[y-1][x] == CellEmpty && cells[y+1][x] == CellEmpty &&
				cells[y][x-1] == CellWall && cells[y][x+1] == CellWall
			if (horizontal || vertical) && g.rng.Float64() < g.LoopChance {
				cells[y][x] = CellEmpty
			}
		}
	}
}
