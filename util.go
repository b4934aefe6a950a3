package main

import "math"

// round2 rounds to two decimal places for display.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
