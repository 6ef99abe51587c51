package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wildfunctions/graphcalc/pkg/calc"
	"github.com/wildfunctions/graphcalc/pkg/geom"
)

func constantField(v float64) (calc.Func2, calc.Func2Vec) {
	return func(x, y float64) float64 { return v },
		func(x, y float64) calc.Vec2 { return calc.Vec2{} }
}

func TestBuildUniformPositiveCollapsesToSentinel(t *testing.T) {
	f, df := constantField(1)
	box := geom.Box{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	n := Build(4, 0, box, f, df)
	_, isPositive := n.(*Positive)
	assert.True(t, isPositive)
}

func TestBuildUniformNegativeCollapsesToSentinel(t *testing.T) {
	f, df := constantField(-1)
	box := geom.Box{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	n := Build(4, 0, box, f, df)
	_, isNegative := n.(*Negative)
	assert.True(t, isNegative)
}

func TestBuildUniformZeroCollapsesToSentinel(t *testing.T) {
	f, df := constantField(0)
	box := geom.Box{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	n := Build(4, 0, box, f, df)
	_, isZero := n.(*Zero)
	assert.True(t, isZero)
}

// With search_depth > 0, the builder must keep recursing instead of
// trusting corner-sign uniformity, down to a Leaf once depth is spent.
func TestSearchDepthForcesRecursionPastUniformCorners(t *testing.T) {
	f, df := constantField(1)
	box := geom.Box{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	n := Build(0, 3, box, f, df)
	_, isLeaf := n.(*Leaf)
	assert.True(t, isLeaf)
}

// A field that changes sign across the box must produce a Root, not a
// sentinel, regardless of search_depth.
func TestBuildMixedSignProducesRoot(t *testing.T) {
	f := calc.Func2(func(x, y float64) float64 { return x })
	df := calc.Func2Vec(func(x, y float64) calc.Vec2 { return calc.Vec2{X: 1, Y: 0} })
	box := geom.Box{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	n := Build(2, 0, box, f, df)
	_, isRoot := n.(*Root)
	assert.True(t, isRoot)
}

func TestRootChildrenAreSWSeNwNeOrdered(t *testing.T) {
	box := geom.Box{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	assert.Equal(t, geom.Box{XMin: -1, XMax: 0, YMin: -1, YMax: 0}, box.Quadrant(0))
	assert.Equal(t, geom.Box{XMin: 0, XMax: 1, YMin: -1, YMax: 0}, box.Quadrant(1))
	assert.Equal(t, geom.Box{XMin: -1, XMax: 0, YMin: 0, YMax: 1}, box.Quadrant(2))
	assert.Equal(t, geom.Box{XMin: 0, XMax: 1, YMin: 0, YMax: 1}, box.Quadrant(3))
}
