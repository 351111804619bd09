package gameplay

import "mazecaster/internal/mathutil"

// GameState is the top-level screen the session is in.
type GameState int

const (
	StateWelcome GameState = iota
	StatePlaying
	StateWin
)

func (s GameState) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StatePlaying:
		return "playing"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// VolumeStep is the change applied by one volume key press.
const VolumeStep = 0.1

// FrameInput is the input sampled for one frame. Key fields are held state
// except Start, VolumeUp, VolumeDown and ToggleMinimap, which are presses.
type FrameInput struct {
	Forward       bool
	Backward      bool
	TurnLeft      bool
	TurnRight     bool
	Start         bool
	VolumeUp      bool
	VolumeDown    bool
	ToggleMinimap bool
	MouseDX       float64 // Horizontal mouse movement in pixels since last frame
}

// FrameContext carries the state that lives across frames outside the
// simulation. Front-ends own one and pass it to Session.Update.
type FrameContext struct {
	State       GameState
	Volume      float64 // Footstep volume in [0, 1]
	Frames      uint64
	Elapsed     float64 // Seconds spent in Update since start
	ShowMinimap bool
}

// NewFrameContext starts on the welcome screen.
func NewFrameContext(volume float64, showMinimap bool) *FrameContext {
	return &FrameContext{
		State:       StateWelcome,
		Volume:      mathutil.Clamp(volume, 0, 1),
		ShowMinimap: showMinimap,
	}
}

// applyToggles handles the inputs that work in every state.
func (ctx *FrameContext) applyToggles(in FrameInput) {
	if in.VolumeUp {
		ctx.Volume = mathutil.Clamp(ctx.Volume+VolumeStep, 0, 1)
	}
	if in.VolumeDown {
		ctx.Volume = mathutil.Clamp(ctx.Volume-VolumeStep, 0, 1)
	}
	if in.ToggleMinimap {
		ctx.ShowMinimap = !ctx.ShowMinimap
	}
}
