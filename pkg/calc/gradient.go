// Package calc holds the small function-value types shared between the
// driver, quadtree and solver: a scalar field and its gradient, plus the
// cheating-gradient fallback wrapper used when an exact gradient sample
// is non-finite.
package calc

import "math"

// Func2 is a scalar field over the plane.
type Func2 func(x, y float64) float64

// Vec2 is a 2-vector, used for gradient samples.
type Vec2 struct {
	X, Y float64
}

// Func2Vec is a vector field over the plane, used for gradients.
type Func2Vec func(x, y float64) Vec2

func finite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// WrapCheatingGradient wraps df so that a non-finite sample at (x, y) is
// retried at a small set of perturbed points, in order, before giving up
// and returning the zero vector. eps is 1e-5, matching the source.
func WrapCheatingGradient(df Func2Vec) Func2Vec {
	const eps = 1e-5
	offsets := [4][2]float64{
		{eps, eps},
		{eps, -eps},
		{eps, 0},
		{0, eps},
	}
	return func(x, y float64) Vec2 {
		if v := df(x, y); finite(v) {
			return v
		}
		for _, off := range offsets {
			if v := df(x+off[0], y+off[1]); finite(v) {
				return v
			}
		}
		return Vec2{}
	}
}
