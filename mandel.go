// Package mandel renders the Mandelbrot set over a fixed window of the
// complex plane and serializes the result as a binary P6 PPM image.
package mandel

import (
	"math"
	"math/cmplx"
)

// Rendered window of the complex plane.
const (
	PlaneMin = -1.5
	PlaneMax = 1.5
)

// MapPixel maps screen coordinates to a point in the complex plane.
// x is interpolated linearly over [PlaneMin, PlaneMax] on the real axis,
// y over the same interval on the imaginary axis. width and height must
// be >= 1; pixel (0,0) maps to PlaneMin+PlaneMin*i.
func MapPixel(x, y, width, height int) complex128 {
	re := (float64(x)/float64(width))*(PlaneMax-PlaneMin) + PlaneMin
	im := (float64(y)/float64(height))*(PlaneMax-PlaneMin) + PlaneMin
	return complex(re, im)
}

// EscapeTime iterates z = z*z + c from z = 0 and reports whether the orbit
// leaves the circle |z| = 2 within maxIter steps. For escaping points it
// returns the smoothed (continuous) iteration count
//
//	n + 1 - log(log|z|)/log 2
//
// which avoids the banding a raw integer count produces. For points that
// stay bounded it returns (0, false).
//
// When the orbit escapes with |z| <= 1 the nested logarithm is undefined
// and mu is NaN. That is an accepted artifact of the smoothing formula near
// the escape boundary; callers must handle it (see ColorFor).
func EscapeTime(c complex128, maxIter int) (mu float64, escaped bool) {
	z := complex(0, 0)
	for n := 0; n < maxIter; n++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			mu = float64(n) + 1 - math.Log(math.Log(cmplx.Abs(z)))/math.Log(2)
			return mu, true
		}
	}
	return 0, false
}
