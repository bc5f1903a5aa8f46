package mandel

import "math"

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Black is the color of points that never escape.
var Black = Color{}

// ColorFor maps a smoothed escape time to a color via a fixed linear
// scaling of 9x/7x/5x per channel. The scaled values are truncated through
// int64 so that overflow wraps modulo 256 instead of clamping; the wrap
// produces the characteristic banding at high escape times and converting
// an out-of-range float directly to uint8 would be implementation-dependent.
//
// A NaN escape time (see EscapeTime) maps to Black. That is a deliberate,
// stable fallback for the smoothing formula's boundary artifact.
func ColorFor(mu float64) Color {
	if math.IsNaN(mu) {
		return Black
	}
	return Color{
		R: uint8(int64(mu * 9.0)),
		G: uint8(int64(mu * 7.0)),
		B: uint8(int64(mu * 5.0)),
	}
}
