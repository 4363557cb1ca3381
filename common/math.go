package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Epsilon guards normalisation of near-zero vectors.
const Epsilon = 1e-9

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize returns v scaled to unit length and whether v was long enough to
// normalise. A near-zero vector yields the zero vector.
func Normalize(v cp.Vector) (cp.Vector, bool) {
	l := v.Length()
	if l < Epsilon {
		return cp.Vector{}, false
	}
	return v.Mult(1 / l), true
}

// Approach moves current toward target by at most step.
func Approach(current, target, step float64) float64 {
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}

func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}
