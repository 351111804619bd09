package world

import (
	"fmt"
	"math/rand"
)

// DefaultPlacementAttempts bounds reject-sampling when no limit is configured.
const DefaultPlacementAttempts = 1000

// RandomOpenCell picks a random walkable cell that is not in exclude.
// Sampling is bounded by attempts; after that many misses it returns
// ErrNoOpenCell so an all-wall (or fully excluded) map cannot hang startup.
func RandomOpenCell(m *Map, rng *rand.Rand, attempts int, exclude ...Cell) (Cell, error) {
	if attempts <= 0 {
		attempts = DefaultPlacementAttempts
	}

	for i := 0; i < attempts; i++ {
		candidate := Cell{X: rng.Intn(m.Width()), Y: rng.Intn(m.Height())}
		if !m.IsOpen(candidate.X, candidate.Y) || containsCell(exclude, candidate) {
			continue
		}
		return candidate, nil
	}

	return Cell{}, fmt.Errorf("gave up after %d attempts on %dx%d map: %w", attempts, m.Width(), m.Height(), ErrNoOpenCell)
}

func containsCell(cells []Cell, c Cell) bool {
	for _, other := range cells {
		if other == c {
			return true
		}
	}
	return false
}
