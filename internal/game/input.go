package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"mazecaster/internal/game/keytracker"
	"mazecaster/internal/gameplay"
)

// Key bindings. Each action accepts any of its keys.
var (
	forwardKeys   = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	backwardKeys  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	turnLeftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	turnRightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	startKeys     = []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}
	volumeUpKeys  = []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}
	volumeDnKeys  = []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}
	minimapKeys   = []ebiten.Key{ebiten.KeyM}
)

// InputHandler samples the keyboard and mouse into a FrameInput.
type InputHandler struct {
	isPressed func(ebiten.Key) bool
	cursor    func() (int, int)
	presses   *keytracker.KeyStateTracker

	lastCursorX int
	hasCursor   bool
	mouseLook   bool
}

// NewInputHandler reads ebiten's keyboard and cursor.
func NewInputHandler(mouseLook bool) *InputHandler {
	return newInputHandler(ebiten.IsKeyPressed, ebiten.CursorPosition, mouseLook)
}

func newInputHandler(isPressed func(ebiten.Key) bool, cursor func() (int, int), mouseLook bool) *InputHandler {
	return &InputHandler{
		isPressed: isPressed,
		cursor:    cursor,
		presses:   keytracker.NewWithSource(isPressed),
		mouseLook: mouseLook,
	}
}

// Poll returns the input for this frame.
func (h *InputHandler) Poll() gameplay.FrameInput {
	in := gameplay.FrameInput{
		Forward:       h.anyHeld(forwardKeys),
		Backward:      h.anyHeld(backwardKeys),
		TurnLeft:      h.anyHeld(turnLeftKeys),
		TurnRight:     h.anyHeld(turnRightKeys),
		Start:         h.presses.AnyJustPressed(startKeys...),
		VolumeUp:      h.presses.AnyJustPressed(volumeUpKeys...),
		VolumeDown:    h.presses.AnyJustPressed(volumeDnKeys...),
		ToggleMinimap: h.presses.AnyJustPressed(minimapKeys...),
	}

	if h.mouseLook {
		x, _ := h.cursor()
		if h.hasCursor {
			in.MouseDX = float64(x - h.lastCursorX)
		}
		h.lastCursorX = x
		h.hasCursor = true
	}
	return in
}

func (h *InputHandler) anyHeld(keys []ebiten.Key) bool {
	for _, key := range keys {
		if h.isPressed(key) {
			return true
		}
	}
	return false
}
