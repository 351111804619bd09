package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mazecaster/internal/config"
	"mazecaster/internal/gameplay"
	"mazecaster/internal/render"
	"mazecaster/internal/threading"
)

// Game is the ebiten front-end around a gameplay session.
type Game struct {
	config    *config.Config
	session   *gameplay.Session
	ctx       *gameplay.FrameContext
	input     *InputHandler
	projector *render.Projector
	minimap   *render.Minimap
	threading *threading.ThreadingComponents
	steps     *StepCue // nil when audio is disabled

	fb         *render.Framebuffer
	pixels     []byte
	frame      *ebiten.Image
	lastUpdate time.Time
	mouseLook  bool

	perfLowFpsSince time.Time
	perfLastPerfLog time.Time
}

// NewGame wires the session to the renderer, input and audio described by cfg.
func NewGame(cfg *config.Config, session *gameplay.Session) *Game {
	tc := threading.NewThreadingComponents(cfg.Threading.RenderWorkers)

	projector := render.NewProjector(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	projector.Projection = render.ParseProjection(cfg.Graphics.Projection)
	projector.Palette = render.Palette{
		Sky:       render.FromConfig(cfg.Graphics.SkyColor),
		Floor:     render.FromConfig(cfg.Graphics.FloorColor),
		WallLight: render.FromConfig(cfg.Graphics.WallColor),
		WallDark:  render.FromConfig(cfg.Graphics.WallDarkColor),
	}
	projector.Texture = render.LoadTextureOrPlaceholder(cfg.Graphics.WallTexture)
	projector.Pool = tc.RenderPool
	projector.Monitor = tc.PerformanceMonitor

	g := &Game{
		config:     cfg,
		session:    session,
		ctx:        gameplay.NewFrameContext(cfg.Audio.Volume, cfg.Graphics.Minimap.Enabled),
		input:      NewInputHandler(cfg.Movement.MouseSensitivity > 0),
		projector:  projector,
		minimap:    render.NewMinimap(cfg.GetMinimapScale()),
		threading:  tc,
		fb:         render.NewFramebuffer(cfg.GetScreenWidth(), cfg.GetScreenHeight()),
		lastUpdate: time.Now(),
		mouseLook:  cfg.Movement.MouseSensitivity > 0,
	}

	if cfg.Audio.Enabled {
		ctx := audio.NewContext(cfg.Audio.SampleRate)
		g.steps = NewStepCue(ctx, cfg.Audio)
		session.Player.SetStepListener(g.steps)
		log.Printf("[Audio] Footstep cue ready at %d Hz", cfg.Audio.SampleRate)
	}

	return g
}

// Update advances one tick. Escape ends the game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	elapsed := now.Sub(g.lastUpdate)
	g.lastUpdate = now
	g.threading.PerformanceMonitor.RecordFrame(elapsed)

	if err := g.step(g.input.Poll(), elapsed.Seconds()); err != nil {
		return err
	}
	g.maybeLogPerfDrop()
	return nil
}

// step runs the simulation for one frame of input.
func (g *Game) step(in gameplay.FrameInput, dt float64) error {
	event, err := g.session.Update(g.ctx, in, dt)
	if err != nil {
		return fmt.Errorf("session update: %w", err)
	}
	if g.steps != nil {
		g.steps.SetVolume(g.ctx.Volume)
	}
	g.handleEvent(event)
	return nil
}

func (g *Game) handleEvent(event gameplay.Event) {
	switch event {
	case gameplay.EventNone, gameplay.EventGoalLocked:
		return
	case gameplay.EventStarted, gameplay.EventRestarted:
		if g.mouseLook {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		}
	case gameplay.EventWon:
		if g.mouseLook {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}
	log.Printf("[Game] %s after %.1fs", event, g.ctx.Elapsed)
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.ctx.State {
	case gameplay.StateWelcome:
		g.drawWelcome(screen)
	case gameplay.StatePlaying:
		g.drawWorld(screen)
		g.drawHUD(screen)
	case gameplay.StateWin:
		g.drawWorld(screen)
		g.drawWin(screen)
	}

	if g.config.Display.ShowFPS {
		g.drawFPS(screen)
	}
}

// renderFrame draws the first-person view and minimap into the framebuffer.
func (g *Game) renderFrame() *render.Framebuffer {
	g.projector.Render(g.fb, g.session.Map, g.session.Player)
	if g.ctx.ShowMinimap {
		g.minimap.Draw(g.fb, g.session.Map, g.session.Player, g.session.Markers()...)
	}
	return g.fb
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	fb := g.renderFrame()
	if g.frame == nil {
		g.frame = ebiten.NewImage(fb.Width, fb.Height)
	}
	g.pixels = fb.RGBA(g.pixels)
	g.frame.WritePixels(g.pixels)
	screen.DrawImage(g.frame, nil)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}

// Shutdown stops the render workers.
func (g *Game) Shutdown() {
	g.threading.Shutdown()
}
