package entity

import (
	"math"
	"time"
)

// MotionSample is one acceleration-including-gravity reading in m/s².
// Axes the device did not report are nil.
type MotionSample struct {
	X         *float64  `json:"x"`
	Y         *float64  `json:"y"`
	Z         *float64  `json:"z"`
	Timestamp time.Time `json:"timestamp"`
}

// Magnitude returns sqrt(x²+y²+z²), counting missing axes as zero.
func (s MotionSample) Magnitude() float64 {
	x, y, z := axis(s.X), axis(s.Y), axis(s.Z)

	return math.Sqrt(x*x + y*y + z*z)
}

func axis(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

// MotionReading is a point of the acceleration display window.
type MotionReading struct {
	Time      time.Time `json:"time"`
	Magnitude float64   `json:"magnitude"`
}
