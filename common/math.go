package common

import "github.com/jakecoffman/cp"

func Lerp(a, b, t float64) float64 {
	return cp.Lerp(a, b, t)
}

// Approx reports whether a and b differ by no more than eps.
func Approx(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
