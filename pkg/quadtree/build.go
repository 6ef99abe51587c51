package quadtree

import (
	"github.com/wildfunctions/graphcalc/pkg/calc"
	"github.com/wildfunctions/graphcalc/pkg/geom"
	"github.com/wildfunctions/graphcalc/pkg/solver"
)

// Build constructs the adaptive subdivision of box for the scalar field f
// with gradient df (already wrapped with the cheating-gradient fallback),
// bounded by the two refinement budgets.
//
// depth caps total refinement levels; at depth <= 0 the result is always
// a Leaf or a sentinel, never a Root. search_depth is the pre-exploration
// budget: while it is > 0 the builder recurses unconditionally, distrusting
// corner-sign uniformity as evidence of interior uniformity.
func Build(depth, searchDepth int, box geom.Box, f calc.Func2, df calc.Func2Vec) Node {
	var corners [4]float64
	for i := 0; i < 4; i++ {
		c := box.Corner(i)
		corners[i] = f(c.X, c.Y)
	}

	if searchDepth <= 0 {
		if sentinel, ok := classify(corners); ok {
			return sentinel
		}
	}

	if depth <= 0 {
		edgePoints, vertex := solver.ComputeLeaf(box, corners, df)
		return &Leaf{EdgePoints: edgePoints, Vertex: vertex}
	}

	var children [4]Node
	for i := 0; i < 4; i++ {
		children[i] = Build(depth-1, searchDepth-1, box.Quadrant(i), f, df)
	}

	if kind0, ok := sentinelKind(children[0]); ok {
		allSame := true
		for i := 1; i < 4; i++ {
			kind, ok := sentinelKind(children[i])
			if !ok || kind != kind0 {
				allSame = false
				break
			}
		}
		if allSame {
			return children[0]
		}
	}

	return &Root{Children: children}
}

// classify applies the corner-sign classification to the four corner
// values in SW, SE, NW, NE order. The Positive/Negative split is
// intentionally asymmetric: zero corners count as positive, not negative.
func classify(v [4]float64) (Node, bool) {
	allZero, allNeg, allNonNeg := true, true, true
	for _, x := range v {
		if x != 0 {
			allZero = false
		}
		if !(x < 0) {
			allNeg = false
		}
		if !(x >= 0) {
			allNonNeg = false
		}
	}
	switch {
	case allZero:
		return &Zero{}, true
	case allNeg:
		return &Negative{}, true
	case allNonNeg:
		return &Positive{}, true
	default:
		return nil, false
	}
}
