package world

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Layout runes understood by the map loader.
const (
	RuneWall    = '#'
	RuneEmpty   = '.'
	RuneBlank   = ' '
	RuneStart   = '+'
	CommentLead = ";"
)

// MapData contains the loaded map information
type MapData struct {
	Name   string
	Map    *Map
	StartX int // -1 when the layout has no '+' marker
	StartY int
}

// HasStart reports whether the layout defined a start cell.
func (md *MapData) HasStart() bool {
	return md.StartX >= 0 && md.StartY >= 0
}

// Start returns the start cell. Only meaningful when HasStart is true.
func (md *MapData) Start() Cell {
	return Cell{X: md.StartX, Y: md.StartY}
}

// MapLoader handles loading grid maps from text layouts
type MapLoader struct {
	verbose bool
}

// NewMapLoader creates a new map loader
func NewMapLoader() *MapLoader {
	return &MapLoader{}
}

// NewVerboseMapLoader creates a loader that logs every parsed row.
func NewVerboseMapLoader() *MapLoader {
	return &MapLoader{verbose: true}
}

// LoadMap loads a map from the specified file path
func (ml *MapLoader) LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	return ml.ParseLayout(filepath.Base(mapPath), file)
}

// ParseLayout reads a text layout. Blank lines and lines starting with ';'
// are skipped; every remaining line is one row of the grid.
func (ml *MapLoader) ParseLayout(name string, r io.Reader) (*MapData, error) {
	var rows [][]CellKind
	startX, startY := -1, -1

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, CommentLead) {
			continue
		}

		row := make([]CellKind, 0, len(line))
		for col, char := range line {
			switch char {
			case RuneWall:
				row = append(row, CellWall)
			case RuneEmpty, RuneBlank:
				row = append(row, CellEmpty)
			case RuneStart:
				if startX >= 0 {
					return nil, fmt.Errorf("%s line %d: duplicate start marker", name, lineNo)
				}
				startX, startY = col, len(rows)
				row = append(row, CellEmpty)
			default:
				return nil, fmt.Errorf("%s line %d: unknown map character %q", name, lineNo, char)
			}
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%s line %d has inconsistent width: expected %d, got %d: %w",
				name, lineNo, len(rows[0]), len(row), ErrRaggedMap)
		}
		rows = append(rows, row)

		if ml.verbose {
			log.Printf("[MapLoader] Loaded row %d: '%s' (cells: %d)", len(rows), line, len(row))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map %s: %w", name, err)
	}

	m, err := NewMap(rows)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", name, err)
	}

	return &MapData{
		Name:   name,
		Map:    m,
		StartX: startX,
		StartY: startY,
	}, nil
}

// defaultLayout is the built-in 20x20 maze used when no map file is configured.
var defaultLayout = []string{
	"####################",
	"#..................#",
	"#..##.....######...#",
	"#..##..........#...#",
	"#..............#...#",
	"#......###.....#...#",
	"#......#...........#",
	"#......#...+.......#",
	"#..........#####...#",
	"#####..............#",
	"#...#....#.........#",
	"#...#....#....##...#",
	"#........#....##...#",
	"#..######..........#",
	"#..........###.....#",
	"#...........#......#",
	"#....##.....#..#####",
	"#....##............#",
	"#..................#",
	"####################",
}

// DefaultLayout parses the built-in layout.
func (ml *MapLoader) DefaultLayout() *MapData {
	data, err := ml.ParseLayout("default", strings.NewReader(strings.Join(defaultLayout, "\n")))
	if err != nil {
		// The built-in layout is a constant; failing here is a programming error.
		panic(fmt.Sprintf("built-in layout is invalid: %v", err))
	}
	return data
}

// LoadOrDefault loads mapPath when set, otherwise falls back to the built-in layout.
func (ml *MapLoader) LoadOrDefault(mapPath string) (*MapData, error) {
	if mapPath == "" {
		return ml.DefaultLayout(), nil
	}
	return ml.LoadMap(mapPath)
}
