package common

import "math"

const (
	PiDiv180 = math.Pi / 180
	OneHalf  = 1.0 / 2.0 // 0.5
	KmhToMph = 0.621371
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * PiDiv180
}
