package graph

import "github.com/wildfunctions/graphcalc/pkg/geom"

// Config holds everything the driver needs to turn one equation into
// polylines: the two plot variable names, bindings for any other free
// variable, the viewport and the two refinement budgets.
type Config struct {
	Var1, Var2  string
	VarValues   map[string]float64
	Box         geom.Box
	Depth       int64
	SearchDepth int64
	Format      string
}

// DefaultConfig returns sensible defaults for every field a caller hasn't
// set explicitly.
func DefaultConfig() Config {
	return Config{
		Var1:        "x",
		Var2:        "y",
		VarValues:   map[string]float64{},
		Box:         geom.Box{XMin: -10, XMax: 10, YMin: -10, YMax: 10},
		Depth:       6,
		SearchDepth: 3,
		Format:      "text",
	}
}

// Region is the scale/tile viewport addressing scheme the original
// front-end boundary uses: the box covers [2^Scale * X, 2^Scale * (X+1))
// on both axes. This is a convenience on top of the lower-level Box form;
// the driver itself only ever consumes a Box.
type Region struct {
	Scale, X, Y int64
}

// Box converts a tile address into the Box the driver expects.
func (r Region) Box() geom.Box {
	size := pow2(r.Scale)
	return geom.Box{
		XMin: size * float64(r.X),
		XMax: size * float64(r.X+1),
		YMin: size * float64(r.Y),
		YMax: size * float64(r.Y+1),
	}
}

func pow2(scale int64) float64 {
	if scale >= 0 {
		result := 1.0
		for i := int64(0); i < scale; i++ {
			result *= 2
		}
		return result
	}
	result := 1.0
	for i := int64(0); i < -scale; i++ {
		result /= 2
	}
	return result
}
