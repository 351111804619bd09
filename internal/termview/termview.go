// Package termview is a terminal front-end that renders the maze with tcell.
// Every terminal cell is one framebuffer pixel, shaded by luminance.
package termview

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"mazecaster/internal/config"
	"mazecaster/internal/gameplay"
	"mazecaster/internal/render"
)

// holdWindow is how long a key counts as held after its last event.
// Terminals only report presses and auto-repeats, not releases.
const holdWindow = 150 * time.Millisecond

// cellAspect is the height-to-width ratio of a terminal cell.
const cellAspect = 2.0

// shadeRamp maps luminance from dark to bright.
var shadeRamp = []rune(" .:-=+*%#█")

type action int

const (
	actForward action = iota
	actBackward
	actTurnLeft
	actTurnRight
	actionCount
)

// View owns the terminal screen for one session.
type View struct {
	screen    tcell.Screen
	session   *gameplay.Session
	ctx       *gameplay.FrameContext
	projector *render.Projector
	minimap   *render.Minimap
	fb        *render.Framebuffer
	tick      time.Duration
	now       func() time.Time

	lastPress [actionCount]time.Time
	pending   gameplay.FrameInput // one-shot presses for the next frame
}

// New creates a view sized to the screen.
func New(screen tcell.Screen, session *gameplay.Session, cfg *config.Config) *View {
	projector := render.NewProjector(1, 1)
	projector.Projection = render.ParseProjection(cfg.Graphics.Projection)
	projector.PixelAspect = cellAspect
	projector.Palette = render.Palette{
		Sky:       render.FromConfig(cfg.Graphics.SkyColor),
		Floor:     render.FromConfig(cfg.Graphics.FloorColor),
		WallLight: render.FromConfig(cfg.Graphics.WallColor),
		WallDark:  render.FromConfig(cfg.Graphics.WallDarkColor),
	}

	minimap := render.NewMinimap(1)
	minimap.ShowFacing = false

	v := &View{
		screen:    screen,
		session:   session,
		ctx:       gameplay.NewFrameContext(0, cfg.Graphics.Minimap.Enabled),
		projector: projector,
		minimap:   minimap,
		tick:      time.Second / time.Duration(cfg.GetTPS()),
		now:       time.Now,
	}
	v.resize()
	return v
}

// State returns the current frame context.
func (v *View) State() *gameplay.FrameContext {
	return v.ctx
}

// resize matches the framebuffer to the screen, keeping the last row for status text.
func (v *View) resize() {
	w, h := v.screen.Size()
	h--
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	v.projector.Width, v.projector.Height = w, h
	if v.fb == nil || v.fb.Width != w || v.fb.Height != h {
		v.fb = render.NewFramebuffer(w, h)
	}
}

// HandleEvent records input. It reports true when the view should quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	case *tcell.EventKey:
		return v.handleKey(ev)
	}
	return false
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	when := ev.When()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.lastPress[actForward] = when
	case tcell.KeyDown:
		v.lastPress[actBackward] = when
	case tcell.KeyLeft:
		v.lastPress[actTurnLeft] = when
	case tcell.KeyRight:
		v.lastPress[actTurnRight] = when
	case tcell.KeyEnter:
		v.pending.Start = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			v.lastPress[actForward] = when
		case 's', 'S':
			v.lastPress[actBackward] = when
		case 'a', 'A':
			v.lastPress[actTurnLeft] = when
		case 'd', 'D':
			v.lastPress[actTurnRight] = when
		case ' ':
			v.pending.Start = true
		case 'm', 'M':
			v.pending.ToggleMinimap = true
		case 'q', 'Q':
			return true
		}
	}
	return false
}

func (v *View) held(a action) bool {
	last := v.lastPress[a]
	return !last.IsZero() && v.now().Sub(last) <= holdWindow
}

// Frame advances the session by dt seconds using the recorded input.
func (v *View) Frame(dt float64) error {
	in := v.pending
	in.Forward = v.held(actForward)
	in.Backward = v.held(actBackward)
	in.TurnLeft = v.held(actTurnLeft)
	in.TurnRight = v.held(actTurnRight)
	v.pending = gameplay.FrameInput{}

	if _, err := v.session.Update(v.ctx, in, dt); err != nil {
		return fmt.Errorf("session update: %w", err)
	}
	return nil
}

// Draw paints the current state into the screen buffer. Call Show to flush.
func (v *View) Draw() {
	v.screen.Clear()

	switch v.ctx.State {
	case gameplay.StateWelcome:
		v.drawCentered([]string{
			"MAZECASTER",
			"Find the key, then reach the goal.",
			"WASD/arrows move, M minimap, Esc quits",
			"Press Enter to start",
		})
		return
	case gameplay.StatePlaying, gameplay.StateWin:
		v.drawWorld()
	}

	if v.ctx.State == gameplay.StateWin {
		v.drawCentered([]string{"YOU ESCAPED!", fmt.Sprintf("Time: %.1fs", v.ctx.Elapsed), "Enter to play again"})
	}
}

func (v *View) drawWorld() {
	v.projector.Render(v.fb, v.session.Map, v.session.Player)
	if v.ctx.ShowMinimap {
		v.minimap.Draw(v.fb, v.session.Map, v.session.Player, v.session.Markers()...)
	}

	for y := 0; y < v.fb.Height; y++ {
		for x := 0; x < v.fb.Width; x++ {
			c := v.fb.At(x, y)
			r, g, b := render.UnpackRGB(c)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b))).
				Background(tcell.ColorBlack)
			v.screen.SetContent(x, y, ShadeRune(render.Luminance(c)), nil, style)
		}
	}

	key := "missing"
	if v.session.Key.Collected {
		key = "found"
	}
	v.drawText(0, v.fb.Height, fmt.Sprintf("key: %s  pos: %.1f,%.1f", key, v.session.Player.X, v.session.Player.Y))
}

// ShadeRune picks the ramp rune for a luminance in [0, 1].
func ShadeRune(luminance float64) rune {
	i := int(luminance * float64(len(shadeRamp)))
	if i < 0 {
		i = 0
	}
	if i >= len(shadeRamp) {
		i = len(shadeRamp) - 1
	}
	return shadeRamp[i]
}

func (v *View) drawCentered(lines []string) {
	w, h := v.screen.Size()
	y := h/2 - len(lines)/2
	for i, line := range lines {
		v.drawText((w-len([]rune(line)))/2, y+i, line)
	}
}

func (v *View) drawText(x, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Run drives the view at the configured tick rate until the player quits
// or ctx is cancelled.
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(v.tick)
	defer ticker.Stop()
	last := v.now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			now := v.now()
			dt := now.Sub(last).Seconds()
			last = now
			if err := v.Frame(dt); err != nil {
				return err
			}
			v.Draw()
			v.screen.Show()
		}
	}
}
