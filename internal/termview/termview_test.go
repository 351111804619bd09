package termview

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"mazecaster/internal/config"
	"mazecaster/internal/gameplay"
	"mazecaster/internal/render"
	"mazecaster/internal/world"
)

func newTestView(t *testing.T, w, h int) (*View, tcell.SimulationScreen, *config.Config) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	cfg := config.Default()
	cfg.World.Seed = 42
	cfg.Graphics.Minimap.Enabled = false

	session, _, err := gameplay.Bootstrap(cfg)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	return New(screen, session, cfg), screen, cfg
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(rowText(s, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestShadeRune(t *testing.T) {
	tests := []struct {
		lum  float64
		want rune
	}{
		{-1, ' '},
		{0, ' '},
		{0.5, '+'},
		{0.999, '█'},
		{1, '█'},
		{3, '█'},
	}
	for _, tt := range tests {
		if got := ShadeRune(tt.lum); got != tt.want {
			t.Errorf("ShadeRune(%v) = %q, want %q", tt.lum, got, tt.want)
		}
	}
}

func TestFramebufferLeavesStatusRow(t *testing.T) {
	v, _, _ := newTestView(t, 40, 21)
	if v.fb.Width != 40 || v.fb.Height != 20 {
		t.Errorf("Expected 40x20 framebuffer, got %dx%d", v.fb.Width, v.fb.Height)
	}
}

func TestWelcomeScreen(t *testing.T) {
	v, screen, _ := newTestView(t, 60, 21)
	v.Draw()

	text := screenText(screen)
	if !strings.Contains(text, "MAZECASTER") || !strings.Contains(text, "Press Enter to start") {
		t.Errorf("Welcome text missing from screen:\n%s", text)
	}
}

func TestEnterStartsAndDrawsWorld(t *testing.T) {
	v, screen, cfg := newTestView(t, 40, 41)

	if v.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Fatal("Enter should not quit")
	}
	if err := v.Frame(0.016); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if v.State().State != gameplay.StatePlaying {
		t.Fatalf("Expected Playing, got %v", v.State().State)
	}
	v.Draw()

	// Spawn faces east down row 7 with the wall 7.5 cells away. Cells are
	// twice as tall as wide, so the 40-row view shows a 2-row strip.
	wall := ShadeRune(render.Luminance(render.FromConfig(cfg.Graphics.WallColor)))
	sky := ShadeRune(render.Luminance(render.FromConfig(cfg.Graphics.SkyColor)))
	floor := ShadeRune(render.Luminance(render.FromConfig(cfg.Graphics.FloorColor)))

	for _, y := range []int{19, 20} {
		if r, _, _, _ := screen.GetContent(20, y); r != wall {
			t.Errorf("Expected wall rune %q at row %d, got %q", wall, y, r)
		}
	}
	if r, _, _, _ := screen.GetContent(20, 18); r != sky {
		t.Errorf("Expected sky rune %q above the strip, got %q", sky, r)
	}
	if r, _, _, _ := screen.GetContent(20, 21); r != floor {
		t.Errorf("Expected floor rune %q below the strip, got %q", floor, r)
	}
	if status := rowText(screen, 40); !strings.Contains(status, "key: missing") {
		t.Errorf("Status row = %q", status)
	}
}

func TestStalledTickCannotCrossWall(t *testing.T) {
	v, _, _ := newTestView(t, 40, 21)

	data, err := world.NewMapLoader().ParseLayout("thin", strings.NewReader("##########\n#...#....#\n##########"))
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	session, err := gameplay.NewSession(data.Map, gameplay.Pose{X: 2.5, Y: 1.5}, gameplay.DefaultTuning(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	v.session = session
	v.ctx.State = gameplay.StatePlaying

	ev := tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	v.HandleEvent(ev)
	v.now = ev.When

	if err := v.Frame(1.0); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if x := session.Player.X; x >= 4 || x <= 2.5 {
		t.Errorf("Expected a short forward step that stays before the wall at x=4, got x=%v", x)
	}
}

func TestHeldKeyDecays(t *testing.T) {
	v, _, _ := newTestView(t, 40, 21)
	v.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if err := v.Frame(0.016); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	startX := v.session.Player.X
	ev := tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	v.HandleEvent(ev)

	v.now = func() time.Time { return ev.When().Add(100 * time.Millisecond) }
	if err := v.Frame(0.1); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	moved := v.session.Player.X
	if moved <= startX {
		t.Fatalf("Expected forward motion, x went %v -> %v", startX, moved)
	}

	v.now = func() time.Time { return ev.When().Add(holdWindow + time.Millisecond) }
	if err := v.Frame(0.1); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if v.session.Player.X != moved {
		t.Errorf("Key should have expired, x went %v -> %v", moved, v.session.Player.X)
	}
}

func TestRuneKeys(t *testing.T) {
	v, _, _ := newTestView(t, 40, 21)

	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	if !v.pending.ToggleMinimap {
		t.Error("Expected pending minimap toggle")
	}
	if v.lastPress[actTurnRight].IsZero() {
		t.Error("Expected 'd' to register a right turn")
	}

	if err := v.Frame(0.016); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if !v.State().ShowMinimap {
		t.Error("Expected minimap to be toggled on")
	}
	if v.pending != (gameplay.FrameInput{}) {
		t.Error("One-shot input should be cleared after a frame")
	}

	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Expected 'q' to quit")
	}
}

func TestResize(t *testing.T) {
	v, screen, _ := newTestView(t, 40, 21)
	screen.SetSize(60, 30)
	v.HandleEvent(tcell.NewEventResize(60, 30))

	if v.fb.Width != 60 || v.fb.Height != 29 {
		t.Errorf("Expected 60x29 framebuffer after resize, got %dx%d", v.fb.Width, v.fb.Height)
	}
	if v.projector.Width != 60 || v.projector.Height != 29 {
		t.Errorf("Projector not resized: %dx%d", v.projector.Width, v.projector.Height)
	}
}

func TestRunQuitsOnEscape(t *testing.T) {
	v, screen, _ := newTestView(t, 40, 21)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := v.Run(ctx); err != nil {
		t.Errorf("Expected clean exit on Escape, got %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	v, _, _ := newTestView(t, 40, 21)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := v.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline error, got %v", err)
	}
}
