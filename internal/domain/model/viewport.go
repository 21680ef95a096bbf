package model

// Zoom bounds and step for the canvas viewport.
const (
	MinScale   = 0.1
	MaxScale   = 5.0
	ZoomFactor = 1.1
)

// ViewportState is the canvas-wide pan offset and zoom scale.
// Scale is always within [MinScale, MaxScale]; Offset is unconstrained.
type ViewportState struct {
	Offset Position
	Scale  float64
}

// DefaultViewport returns the viewport a fresh canvas starts with.
func DefaultViewport() ViewportState {
	return ViewportState{Scale: 1}
}

// ClampScale limits s to [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	return max(MinScale, min(s, MaxScale))
}
