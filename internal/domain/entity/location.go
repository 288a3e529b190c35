package entity

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// LocationFix is a single location reading.
type LocationFix struct {
	Latitude  float64   `json:"lat"`       // The geographic latitude in degrees.
	Longitude float64   `json:"lng"`       // The geographic longitude in degrees.
	Accuracy  float64   `json:"accuracy"`  // Radius of the 68% confidence circle, in meters.
	Timestamp time.Time `json:"timestamp"` // Time the reading was captured by the device.
}

// Point returns the fix as an orb point (lng, lat order).
func (f *LocationFix) Point() orb.Point {
	return orb.Point{f.Longitude, f.Latitude}
}

// DistanceTo returns the great-circle distance in meters between two fixes.
func (f *LocationFix) DistanceTo(other *LocationFix) float64 {
	return geo.Distance(f.Point(), other.Point())
}

// Clone returns a copy of the fix, or nil for a nil fix.
func (f *LocationFix) Clone() *LocationFix {
	if f == nil {
		return nil
	}
	clone := *f

	return &clone
}

// LocationSnapshot is the read model of the location tracker.
type LocationSnapshot struct {
	Fix        *LocationFix `json:"fix"`         // Last known fix, nil until the first success.
	IsLocating bool         `json:"is_locating"` // True while a one-shot refresh is in flight.
	Error      string       `json:"error"`       // User-facing error of the last failed request.
	Watching   bool         `json:"watching"`    // True while a continuous watch is active.
}
