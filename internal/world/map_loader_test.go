package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLayout(t *testing.T) {
	layout := "; test maze\n" +
		"#####\n" +
		"\n" +
		"#.+ #\r\n" +
		"#####\n"

	data, err := NewMapLoader().ParseLayout("test", strings.NewReader(layout))
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}

	if data.Map.Width() != 5 || data.Map.Height() != 3 {
		t.Fatalf("Expected 5x3 map, got %dx%d", data.Map.Width(), data.Map.Height())
	}
	if !data.HasStart() || data.Start() != (Cell{X: 2, Y: 1}) {
		t.Errorf("Expected start at (2,1), got (%d,%d)", data.StartX, data.StartY)
	}
	if data.Map.IsWall(2.5, 1.5) {
		t.Errorf("Start cell must be open")
	}
	if data.Map.IsWall(3.5, 1.5) {
		t.Errorf("Space must parse as an open cell")
	}
}

func TestParseLayout_Errors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"ragged", "###\n##\n", "inconsistent width"},
		{"unknown rune", "#x#\n", "unknown map character"},
		{"duplicate start", "#++#\n", "duplicate start"},
		{"empty", "; only a comment\n", "no cells"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMapLoader().ParseLayout(tt.name, strings.NewReader(tt.layout))
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	_, err := NewMapLoader().ParseLayout("ragged", strings.NewReader("###\n#\n"))
	if !errors.Is(err, ErrRaggedMap) {
		t.Errorf("Expected ragged error to wrap ErrRaggedMap, got %v", err)
	}
}

func TestLoadMap_FromFile(t *testing.T) {
	mapPath := filepath.Join(t.TempDir(), "level.map")
	if err := os.WriteFile(mapPath, []byte("####\n#+.#\n####\n"), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}

	data, err := NewMapLoader().LoadMap(mapPath)
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if data.Name != "level.map" {
		t.Errorf("Expected name level.map, got %q", data.Name)
	}
	if data.Start() != (Cell{X: 1, Y: 1}) {
		t.Errorf("Expected start (1,1), got %v", data.Start())
	}

	if _, err := NewMapLoader().LoadMap(filepath.Join(t.TempDir(), "missing.map")); err == nil {
		t.Errorf("Expected error for missing map file")
	}
}

func TestDefaultLayout(t *testing.T) {
	data := NewMapLoader().DefaultLayout()
	m := data.Map

	if m.Width() != 20 || m.Height() != 20 {
		t.Fatalf("Expected 20x20 default layout, got %dx%d", m.Width(), m.Height())
	}
	for i := 0; i < 20; i++ {
		if m.CellAt(i, 0) != CellWall || m.CellAt(i, 19) != CellWall ||
			m.CellAt(0, i) != CellWall || m.CellAt(19, i) != CellWall {
			t.Fatalf("Expected solid border around default layout (index %d)", i)
		}
	}
	if !data.HasStart() || !m.IsOpen(data.StartX, data.StartY) {
		t.Errorf("Expected an open start cell in the default layout")
	}

	fallback, err := NewMapLoader().LoadOrDefault("")
	if err != nil || fallback.Name != "default" {
		t.Errorf("Expected LoadOrDefault(\"\") to return the default layout, got %v, %v", fallback, err)
	}
}

func TestMapString_RoundTrip(t *testing.T) {
	data := NewMapLoader().DefaultLayout()
	again, err := NewMapLoader().ParseLayout("again", strings.NewReader(data.Map.String()))
	if err != nil {
		t.Fatalf("ParseLayout of String(): %v", err)
	}
	if again.Map.String() != data.Map.String() {
		t.Errorf("Expected String() output to parse back to the same grid")
	}
}
