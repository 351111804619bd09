package gameplay

import "math"

// DefaultPickupRadius is the Chebyshev distance under which an item is reached.
const DefaultPickupRadius = 0.5

// Item is a static pickup marker. Collected latches; only a session reset
// replaces the item.
type Item struct {
	X, Y      float64
	Collected bool
}

// Near reports whether (x, y) is within radius of the item on both axes.
func (it *Item) Near(x, y, radius float64) bool {
	return math.Abs(x-it.X) < radius && math.Abs(y-it.Y) < radius
}

// Collect marks the item collected. It reports whether this call changed it.
func (it *Item) Collect() bool {
	if it.Collected {
		return false
	}
	it.Collected = true
	return true
}
