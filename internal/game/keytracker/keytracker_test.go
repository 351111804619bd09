package keytracker

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestIsKeyJustPressedIsEdgeTriggered(t *testing.T) {
	held := map[ebiten.Key]bool{}
	k := NewWithSource(func(key ebiten.Key) bool { return held[key] })

	if k.IsKeyJustPressed(ebiten.KeyM) {
		t.Fatal("Expected no press while released")
	}
	held[ebiten.KeyM] = true
	if !k.IsKeyJustPressed(ebiten.KeyM) {
		t.Fatal("Expected a press on the first held frame")
	}
	if k.IsKeyJustPressed(ebiten.KeyM) {
		t.Fatal("Expected holding the key not to repeat")
	}
	held[ebiten.KeyM] = false
	k.IsKeyJustPressed(ebiten.KeyM)
	held[ebiten.KeyM] = true
	if !k.IsKeyJustPressed(ebiten.KeyM) {
		t.Fatal("Expected a new press after release")
	}
}

func TestAnyJustPressedPollsEveryKey(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyEnter: true, ebiten.KeySpace: true}
	k := NewWithSource(func(key ebiten.Key) bool { return held[key] })

	if !k.AnyJustPressed(ebiten.KeyEnter, ebiten.KeySpace) {
		t.Fatal("Expected a press")
	}
	// Both keys were recorded as held, so neither fires again.
	if k.IsKeyJustPressed(ebiten.KeySpace) {
		t.Error("Expected AnyJustPressed to record every key's state")
	}
}
