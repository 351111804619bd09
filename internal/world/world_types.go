package world

import "errors"

// CellKind represents the contents of a single grid cell.
type CellKind int

const (
	CellEmpty CellKind = iota // Walkable open floor
	CellWall                  // Solid wall, blocks movement and rays
)

// String returns the layout rune used for the cell kind.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "."
	case CellWall:
		return "#"
	default:
		return "?"
	}
}

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Center returns the world coordinates of the middle of the cell.
func (c Cell) Center() (float64, float64) {
	return float64(c.X) + 0.5, float64(c.Y) + 0.5
}

var (
	ErrEmptyMap   = errors.New("map has no cells")
	ErrRaggedMap  = errors.New("map rows have inconsistent widths")
	ErrNoOpenCell = errors.New("no open cell found")
)
