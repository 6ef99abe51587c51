package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wildfunctions/graphcalc/pkg/calc"
	"github.com/wildfunctions/graphcalc/pkg/geom"
)

// A cell crossed by the vertical line x = 0 (f = x, df = (1, 0)) should
// place its vertex on that line, inside the cell, with two edge points
// on the bottom and top edges.
func TestComputeLeafVerticalLine(t *testing.T) {
	box := geom.Box{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	corners := [4]float64{-1, 1, -1, 1} // SW, SE, NW, NE = f(x,y) = x
	df := calc.Func2Vec(func(x, y float64) calc.Vec2 { return calc.Vec2{X: 1, Y: 0} })

	edgePoints, vertex := ComputeLeaf(box, corners, df)

	assert.Len(t, edgePoints, 2)
	assert.True(t, box.Contains(vertex))
	assert.InDelta(t, 0, vertex.X, 1e-9)
}

// A cell with a corner sample exactly zero must include that corner as
// an edge point.
func TestComputeLeafZeroCornerIsEdgePoint(t *testing.T) {
	box := geom.Box{XMin: 0, XMax: 2, YMin: 0, YMax: 2}
	corners := [4]float64{0, 2, 2, 4} // SW corner is exactly zero
	df := calc.Func2Vec(func(x, y float64) calc.Vec2 { return calc.Vec2{X: 1, Y: 1} })

	edgePoints, _ := ComputeLeaf(box, corners, df)

	found := false
	for _, p := range edgePoints {
		if p == (geom.Point{X: 0, Y: 0}) {
			found = true
		}
	}
	assert.True(t, found)
}

// A cell with no sign change and no zero corner has no edge points and
// falls back to the cell center.
func TestComputeLeafNoCrossingFallsBackToCenter(t *testing.T) {
	box := geom.Box{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	corners := [4]float64{1, 2, 3, 4}
	df := calc.Func2Vec(func(x, y float64) calc.Vec2 { return calc.Vec2{X: 1, Y: 1} })

	edgePoints, vertex := ComputeLeaf(box, corners, df)

	assert.Empty(t, edgePoints)
	assert.Equal(t, box.Center(), vertex)
}

func TestJacobiEigenRecoversDiagonalMatrix(t *testing.T) {
	a := [][]float64{{3, 0}, {0, 5}}
	values, vectors := jacobiEigen(a, 1e-12, 50)
	assert.Len(t, values, 2)
	assert.Len(t, vectors, 2)
	sum := values[0] + values[1]
	assert.InDelta(t, 8, sum, 1e-9)
}

func TestPseudoInverseSolveIdentity(t *testing.T) {
	a := [][]float64{{1, 0}, {0, 1}}
	b := []float64{3, 4}
	x, ok := pseudoInverseSolve(a, b, pseudoInverseTolerance)
	assert.True(t, ok)
	assert.InDelta(t, 3, x[0], 1e-9)
	assert.InDelta(t, 4, x[1], 1e-9)
}

func TestPseudoInverseSolveSingularMatrixZeroesNullDirection(t *testing.T) {
	a := [][]float64{{1, 0}, {0, 0}}
	b := []float64{5, 5}
	x, ok := pseudoInverseSolve(a, b, pseudoInverseTolerance)
	assert.True(t, ok)
	assert.InDelta(t, 5, x[0], 1e-6)
	assert.InDelta(t, 0, x[1], 1e-6)
}
