// Package quadtree builds the adaptive axis-aligned subdivision of a
// viewport, refined where the sign of a scalar field varies.
package quadtree

import "github.com/wildfunctions/graphcalc/pkg/geom"

// Node is a quadtree node: a Root with four children, a Leaf carrying
// contour geometry, or one of the three sign-uniform sentinels.
type Node interface {
	isNode()
}

// Root has exactly four children in SW, SE, NW, NE order.
type Root struct {
	Children [4]Node
}

// Leaf carries the geometry computed for an interesting cell: the edge
// points collected along its boundary and the single representative
// vertex placed inside it.
type Leaf struct {
	EdgePoints []geom.Point
	Vertex     geom.Point
}

// Zero, Positive and Negative are the sign-uniform sentinels.
type Zero struct{}
type Positive struct{}
type Negative struct{}

func (*Root) isNode()     {}
func (*Leaf) isNode()     {}
func (*Zero) isNode()     {}
func (*Positive) isNode() {}
func (*Negative) isNode() {}

// sentinelKind returns a small discriminant for the three sentinel types,
// used only to test whether a Root's four children are all the same
// sentinel.
func sentinelKind(n Node) (kind int, ok bool) {
	switch n.(type) {
	case *Zero:
		return 0, true
	case *Positive:
		return 1, true
	case *Negative:
		return 2, true
	default:
		return 0, false
	}
}
