package tui

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// clampZoom keeps the zoom factor inside the range the projection handles.
func clampZoom(z float64) float64 {
	switch {
	case z > 64:
		return 64
	case z < 0.05:
		return 0.05
	}
	return z
}
