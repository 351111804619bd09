package gameplay

import "mazecaster/internal/render"

// Minimap marker colors.
const (
	KeyColor  = render.ColorYellow
	GoalColor = render.ColorRed
)

// Markers returns the minimap markers: the key while it is still on the
// floor, and the goal.
func (s *Session) Markers() []render.Marker {
	markers := make([]render.Marker, 0, 2)
	if !s.Key.Collected {
		markers = append(markers, render.Marker{X: s.Key.X, Y: s.Key.Y, Color: KeyColor})
	}
	markers = append(markers, render.Marker{X: s.Goal.X, Y: s.Goal.Y, Color: GoalColor})
	return markers
}
