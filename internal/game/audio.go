package game

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"mazecaster/internal/config"
	"mazecaster/internal/mathutil"
)

// cuePlayer is the part of *audio.Player the step cue drives.
type cuePlayer interface {
	IsPlaying() bool
	Play()
	SetPosition(offset time.Duration) error
	SetVolume(volume float64)
}

// StepCue plays a short footstep sound. It implements player.StepListener;
// a step heard while the previous one is still playing is dropped.
type StepCue struct {
	player cuePlayer
	volume float64
	played int
}

// NewStepCue synthesizes the footstep for cfg on ctx.
func NewStepCue(ctx *audio.Context, cfg config.AudioConfig) *StepCue {
	pcm := synthesizeStep(ctx.SampleRate(), cfg.StepFrequency, time.Duration(cfg.StepDuration)*time.Millisecond)
	return newStepCue(ctx.NewPlayerFromBytes(pcm), cfg.Volume)
}

func newStepCue(p cuePlayer, volume float64) *StepCue {
	return &StepCue{player: p, volume: mathutil.Clamp(volume, 0, 1)}
}

// OnStep starts the footstep unless one is already sounding.
func (s *StepCue) OnStep() {
	if s.volume == 0 || s.player.IsPlaying() {
		return
	}
	if err := s.player.SetPosition(0); err != nil {
		return
	}
	s.player.SetVolume(s.volume)
	s.player.Play()
	s.played++
}

// SetVolume updates the volume used for the next step.
func (s *StepCue) SetVolume(volume float64) {
	s.volume = mathutil.Clamp(volume, 0, 1)
}

// Played returns how many footsteps were started.
func (s *StepCue) Played() int {
	return s.played
}

// synthesizeStep renders a decaying low thump with a little noise as
// 16-bit little-endian stereo PCM, the format audio.Context expects.
func synthesizeStep(sampleRate int, frequency float64, duration time.Duration) []byte {
	if frequency <= 0 {
		frequency = 90
	}
	samples := int(float64(sampleRate) * duration.Seconds())
	if samples <= 0 {
		samples = sampleRate / 10
	}

	noise := rand.New(rand.NewSource(3))
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-t * 30)
		v := envelope * (0.8*math.Sin(2*math.Pi*frequency*t) + 0.2*(noise.Float64()*2-1))
		sample := int16(mathutil.Clamp(v, -1, 1) * 0.6 * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}
