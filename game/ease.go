package game

import (
	"math"

	"github.com/tanema/gween/ease"
)

// ExpoInOut is the exponential ease-in-out curve over [0,1]: flat near both ends,
// steep in the middle. Inputs outside the range clamp to 0 and 1.
func ExpoInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return float64(ease.InOutExpo(float32(t), 0, 1, 1))
}

// signum returns 1 or -1 following the sign bit, so -0 yields -1 and +0 yields 1.
func signum(v float64) float64 {
	return math.Copysign(1, v)
}
