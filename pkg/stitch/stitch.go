// Package stitch joins the per-leaf (edge_point -> vertex) segments
// produced by walking a quadtree into ordered polylines by endpoint
// equality.
package stitch

import "github.com/wildfunctions/graphcalc/pkg/geom"

// Segment is a single directed edge-point-to-vertex line segment emitted
// by one quadtree leaf.
type Segment struct {
	A, B geom.Point
}

// Stitch greedily joins segments into open polylines. Equality is
// bit-exact on the raw point coordinates; no epsilon is used, since
// shared endpoints in adjacent cells arise from identical arithmetic and
// match exactly.
//
// This is an O(N*P) greedy join, not guaranteed to produce the minimum
// number of polylines when the segment set branches.
func Stitch(segments []Segment) [][]geom.Point {
	var polylines [][]geom.Point

	for _, seg := range segments {
		a, b := seg.A, seg.B
		joined := false
		for i := range polylines {
			p := polylines[i]
			last := p[len(p)-1]
			first := p[0]
			switch {
			case last == a:
				polylines[i] = append(p, b)
				joined = true
			case first == b:
				polylines[i] = prepend(p, a)
				joined = true
			case last == b:
				polylines[i] = append(p, a)
				joined = true
			case first == a:
				polylines[i] = prepend(p, b)
				joined = true
			}
			if joined {
				break
			}
		}
		if !joined {
			polylines = append(polylines, []geom.Point{a, b})
		}
	}

	return polylines
}

func prepend(p []geom.Point, x geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(p)+1)
	out = append(out, x)
	out = append(out, p...)
	return out
}
