package services

// ViewportGeometry is what the host measures for an open dropdown.
type ViewportGeometry struct {
	RightEdge     float64 `json:"right_edge"`
	ViewportWidth float64 `json:"viewport_width"`
}

// ShouldAlignLeft flips the dropdown when it would overflow the right edge.
func ShouldAlignLeft(geometry ViewportGeometry) bool {
	return geometry.RightEdge > geometry.ViewportWidth
}
