package entity

import "time"

// ZoomLevel represents the zoom factor for a specific domain.
// Allows persistent zoom levels per-site across widget lifetimes.
type ZoomLevel struct {
	Domain     string  // Domain name (e.g., "gnu.org")
	ZoomFactor float64 // Zoom factor (1.0 = 100%, 1.5 = 150%)
	UpdatedAt  time.Time
}

// Default zoom constants
const (
	ZoomDefault = 1.0
	ZoomMin     = 0.25 // 25%
	ZoomMax     = 5.0  // 500%
)

// NewZoomLevel creates a new zoom level for a domain.
func NewZoomLevel(domain string, factor float64) *ZoomLevel {
	return &ZoomLevel{
		Domain:     domain,
		ZoomFactor: clampZoom(factor),
		UpdatedAt:  time.Now(),
	}
}

// AdjustBy applies a relative delta to the zoom factor, clamping to the
// valid range.
func (z *ZoomLevel) AdjustBy(delta float64) {
	z.ZoomFactor = clampZoom(z.ZoomFactor + delta)
	z.UpdatedAt = time.Now()
}

// Reset restores the zoom factor to default.
func (z *ZoomLevel) Reset() {
	z.ZoomFactor = ZoomDefault
	z.UpdatedAt = time.Now()
}

// IsDefault returns true if the zoom is at default level.
func (z *ZoomLevel) IsDefault() bool {
	return z.ZoomFactor == ZoomDefault
}

// Percentage returns the zoom factor as a percentage (e.g., 150 for 1.5).
func (z *ZoomLevel) Percentage() int {
	return int(z.ZoomFactor * 100)
}

func clampZoom(factor float64) float64 {
	if factor < ZoomMin {
		return ZoomMin
	}
	if factor > ZoomMax {
		return ZoomMax
	}
	return factor
}
