// Package keytracker turns held-key polling into edge-triggered presses.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of a set of keys.
type KeyStateTracker struct {
	isPressed   func(ebiten.Key) bool
	prevPressed map[ebiten.Key]bool
}

// New returns a tracker reading ebiten's keyboard state.
func New() *KeyStateTracker {
	return NewWithSource(ebiten.IsKeyPressed)
}

// NewWithSource returns a tracker reading key state from isPressed.
func NewWithSource(isPressed func(ebiten.Key) bool) *KeyStateTracker {
	return &KeyStateTracker{
		isPressed:   isPressed,
		prevPressed: make(map[ebiten.Key]bool),
	}
}

// IsKeyJustPressed returns true if the key was not pressed last poll but is pressed now.
// Each key must be polled once per frame.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	pressed := k.isPressed(key)
	justPressed := pressed && !k.prevPressed[key]
	k.prevPressed[key] = pressed
	return justPressed
}

// AnyJustPressed polls every key and reports whether at least one was just pressed.
func (k *KeyStateTracker) AnyJustPressed(keys ...ebiten.Key) bool {
	pressed := false
	for _, key := range keys {
		if k.IsKeyJustPressed(key) {
			pressed = true
		}
	}
	return pressed
}
