// Package utils contains math and concurrency helpers shared by the camera
// geometry code.
package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// RoundHalfUp rounds x to the nearest integer, ties going up. Image sizes
// derived from scale factors use this rather than banker's rounding.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Linspace returns n evenly spaced values over [start, stop], inclusive of
// both endpoints. n must be at least 2.
func Linspace(start, stop float64, n int) []float64 {
	step := (stop - start) / float64(n-1)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
