package graph

import "github.com/wildfunctions/graphcalc/pkg/geom"

// Encode flattens a point sequence (as produced by GraphEquation, already
// carrying its (+Inf, +Inf) contour separators) into the flat f64-pair
// wire format described for the driver's consumers.
func Encode(points []geom.Point) []float64 {
	out := make([]float64, 0, len(points)*2)
	for _, p := range points {
		out = append(out, p.X, p.Y)
	}
	return out
}
