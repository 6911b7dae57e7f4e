package service

import "math"

// round4 rounds to 4 decimal places, half away from zero. Every score the
// system stores or serializes goes through this so results are bit-for-bit
// reproducible.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
