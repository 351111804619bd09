// Command mapview previews maze layouts and sample key/goal placements.
package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"path/filepath"
	"sort"

	"mazecaster/internal/config"
	"mazecaster/internal/gameplay"
	"mazecaster/internal/render"
	"mazecaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const generatedPath = "(generated)"

const (
	windowWidth  = 1000
	windowHeight = 720
	sidebarWidth = 260
)

type mapInfo struct {
	Path    string
	Data    *world.MapData
	Session *gameplay.Session // sample placement, nil when placement failed
	Err     error
}

type viewer struct {
	cfg      *config.Config
	maps     []mapInfo
	mapIndex int
	seed     int64
}

func main() {
	cfg, err := config.LoadOrDefault("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	v := &viewer{cfg: cfg, seed: 1}
	v.maps = loadMaps(cfg, v.seed)

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Mazecaster Map Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

// loadMaps loads the built-in layout, a generated maze and every .map file
// under assets/maps.
func loadMaps(cfg *config.Config, seed int64) []mapInfo {
	loader := world.NewMapLoader()
	maps := []mapInfo{
		samplePlacement(cfg, mapInfo{Path: "(built-in)", Data: loader.DefaultLayout()}, seed),
		generatedMap(cfg, seed),
	}

	paths, err := filepath.Glob(filepath.Join("assets", "maps", "*.map"))
	if err != nil {
		log.Printf("Warning: failed to list maps: %v", err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		data, err := loader.LoadMap(path)
		maps = append(maps, samplePlacement(cfg, mapInfo{Path: path, Data: data, Err: err}, seed))
	}
	return maps
}

func generatedMap(cfg *config.Config, seed int64) mapInfo {
	gen := cfg.World.Generate
	data, err := world.NewMazeGenerator(gen.Width, gen.Height, gen.LoopChance, rand.New(rand.NewSource(seed))).Generate()
	return samplePlacement(cfg, mapInfo{Path: generatedPath, Data: data, Err: err}, seed)
}

func samplePlacement(cfg *config.Config, m mapInfo, seed int64) mapInfo {
	if m.Data == nil {
		return m
	}
	spawn, err := gameplay.SpawnPose(cfg, m.Data)
	if err != nil {
		m.Err = err
		return m
	}
	m.Session, m.Err = gameplay.NewSession(m.Data.Map, spawn, gameplay.TuningFromConfig(cfg), rand.New(rand.NewSource(seed)))
	return m
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if len(v.maps) == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.mapIndex = (v.mapIndex + 1) % len(v.maps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.mapIndex--
		if v.mapIndex < 0 {
			v.mapIndex = len(v.maps) - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.seed++
		if v.maps[v.mapIndex].Path == generatedPath {
			v.maps[v.mapIndex] = generatedMap(v.cfg, v.seed)
		} else {
			v.maps[v.mapIndex] = samplePlacement(v.cfg, v.maps[v.mapIndex], v.seed)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.maps = loadMaps(v.cfg, v.seed)
		if v.mapIndex >= len(v.maps) {
			v.mapIndex = 0
		}
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	if len(v.maps) == 0 {
		ebitenutil.DebugPrintAt(screen, "no maps loaded", 16, 16)
		return
	}

	m := v.maps[v.mapIndex]
	if m.Data == nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("map %s failed to load: %v", m.Path, m.Err), 16, 16)
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2

	drawMapPanel(screen, m, v.cfg, padding, padding, mapAreaW, mapAreaH)
	drawSidebar(screen, m, padding*2+mapAreaW, padding, sidebarWidth, mapAreaH, v.seed)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func drawMapPanel(screen *ebiten.Image, m mapInfo, cfg *config.Config, x, y, w, h int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{20, 20, 35, 255}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, color.RGBA{70, 70, 90, 255}, false)

	grid := m.Data.Map
	tileSize := max(min(w/grid.Width(), (h-40)/grid.Height()), 2)
	originX := x + (w-grid.Width()*tileSize)/2
	originY := y + 40 + (h-40-grid.Height()*tileSize)/2

	wall := render.ToRGBA(render.FromConfig(cfg.Graphics.WallColor))
	floor := render.ToRGBA(render.FromConfig(cfg.Graphics.FloorColor))
	for cy := 0; cy < grid.Height(); cy++ {
		for cx := 0; cx < grid.Width(); cx++ {
			c := floor
			if !grid.IsOpen(cx, cy) {
				c = wall
			}
			vector.DrawFilledRect(screen, float32(originX+cx*tileSize), float32(originY+cy*tileSize),
				float32(tileSize), float32(tileSize), c, false)
		}
	}

	if s := m.Session; s != nil {
		spawn := s.Spawn()
		drawMarker(screen, originX, originY, tileSize, spawn.X, spawn.Y, color.RGBA{50, 200, 255, 255}, true)
		drawMarker(screen, originX, originY, tileSize, s.Key.X, s.Key.Y, render.ToRGBA(gameplay.KeyColor), false)
		drawMarker(screen, originX, originY, tileSize, s.Goal.X, s.Goal.Y, render.ToRGBA(gameplay.GoalColor), false)
	}

	ebitenutil.DebugPrintAt(screen, m.Path, x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right switch maps, Space re-rolls, R reloads, Esc quits", x+12, y+22)
}

func drawMarker(screen *ebiten.Image, originX, originY, tileSize int, wx, wy float64, clr color.RGBA, stroke bool) {
	cx := float32(float64(originX) + wx*float64(tileSize))
	cy := float32(float64(originY) + wy*float64(tileSize))
	radius := float32(tileSize) * 0.35
	vector.DrawFilledCircle(screen, cx, cy, radius, clr, true)
	if stroke {
		vector.StrokeCircle(screen, cx, cy, radius, 1, color.RGBA{255, 255, 255, 255}, true)
	}
}

func drawSidebar(screen *ebiten.Image, m mapInfo, x, y, w, h int, seed int64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{18, 18, 26, 255}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, color.RGBA{70, 70, 90, 255}, false)

	grid := m.Data.Map
	lines := []string{
		fmt.Sprintf("Cells: %dx%d", grid.Width(), grid.Height()),
		fmt.Sprintf("Open cells: %d", len(grid.OpenCells())),
		fmt.Sprintf("Start marker: %v", m.Data.HasStart()),
		fmt.Sprintf("Placement seed: %d", seed),
		"",
		"Cyan: spawn",
		"Yellow: key  Red: goal",
	}
	if m.Err != nil {
		lines = append(lines, "", "Placement failed:", m.Err.Error())
	}

	row := y + 12
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}
}
