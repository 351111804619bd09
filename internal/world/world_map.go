package world

import (
	"fmt"
	"math"
)

// Map is an immutable rectangular grid of cells.
// One cell is 1.0 world unit on each side.
type Map struct {
	width  int
	height int
	cells  [][]CellKind
}

// NewMap builds a map from rows of cells. The rows are copied so the
// caller may reuse its slices.
func NewMap(cells [][]CellKind) (*Map, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyMap
	}

	width := len(cells[0])
	grid := make([][]CellKind, len(cells))
	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, expected %d: %w", y, len(row), width, ErrRaggedMap)
		}
		grid[y] = append([]CellKind(nil), row...)
	}

	return &Map{
		width:  width,
		height: len(cells),
		cells:  grid,
	}, nil
}

// Width returns the number of columns.
func (m *Map) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return m.height
}

// CellAt returns the kind of the cell at integer grid coordinates.
// Cells outside the grid are walls.
func (m *Map) CellAt(cx, cy int) CellKind {
	if cx < 0 || cx >= m.width || cy < 0 || cy >= m.height {
		return CellWall // Treat out-of-bounds as walls
	}
	return m.cells[cy][cx]
}

// IsOpen reports whether the cell at integer grid coordinates is walkable.
func (m *Map) IsOpen(cx, cy int) bool {
	return m.CellAt(cx, cy) == CellEmpty
}

// IsWall reports whether the continuous world point (x, y) lies inside a
// wall cell. The point is floored to its containing cell; anything outside
// the grid, including NaN and infinities, is solid so that rays probing
// arbitrarily far always terminate.
func (m *Map) IsWall(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return true
	}
	fx := math.Floor(x)
	fy := math.Floor(y)
	if fx < 0 || fy < 0 || fx >= float64(m.width) || fy >= float64(m.height) {
		return true
	}
	return m.cells[int(fy)][int(fx)] == CellWall
}

// OpenCells returns every walkable cell in row-major order.
func (m *Map) OpenCells() []Cell {
	var open []Cell
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y][x] == CellEmpty {
				open = append(open, Cell{X: x, Y: y})
			}
		}
	}
	return open
}

// String renders the map back into layout form.
func (m *Map) String() string {
	buf := make([]byte, 0, (m.width+1)*m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			buf = append(buf, m.cells[y][x].String()...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
