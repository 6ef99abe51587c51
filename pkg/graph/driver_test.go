package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wildfunctions/graphcalc/pkg/geom"
)

func defaultViewportConfig() Config {
	cfg := DefaultConfig()
	cfg.Box = geom.Box{XMin: -10, XMax: 10, YMin: -10, YMax: 10}
	cfg.Depth = 6
	cfg.SearchDepth = 3
	return cfg
}

func countContours(points []geom.Point) int {
	n := 0
	for _, p := range points {
		if math.IsInf(p.X, 1) && math.IsInf(p.Y, 1) {
			n++
		}
	}
	return n
}

func maxAbsResidual(points []geom.Point, f func(x, y float64) float64) float64 {
	worst := 0.0
	for _, p := range points {
		if math.IsInf(p.X, 0) {
			continue
		}
		r := math.Abs(f(p.X, p.Y))
		if r > worst {
			worst = r
		}
	}
	return worst
}

func TestGraphEquationLine(t *testing.T) {
	points, err := GraphEquation(`["Equal","y","x"]`, defaultViewportConfig())
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, countContours(points), 1)
	for _, p := range points {
		if math.IsInf(p.X, 0) {
			continue
		}
		assert.InDelta(t, p.X, p.Y, 0.1)
	}
}

// y = x^2 matches the explicit fast path and must sample the full
// viewport width, still terminated by the one sentinel pair that marks
// the end of its single contour.
func TestGraphEquationParabolaUsesFastPath(t *testing.T) {
	cfg := defaultViewportConfig()
	points, err := GraphEquation(`["Equal","y",["Power","x",2]]`, cfg)
	assert.NoError(t, err)
	assert.Equal(t, 1, countContours(points))
	assert.Len(t, points, fastPathSamples+1)
	for _, p := range points {
		if math.IsInf(p.X, 0) {
			continue
		}
		assert.InDelta(t, p.X*p.X, p.Y, 1e-6)
	}
}

func TestGraphEquationUnitCircle(t *testing.T) {
	cfg := defaultViewportConfig()
	points, err := GraphEquation(`["Equal",["Add",["Power","x",2],["Power","y",2]],1]`, cfg)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(points), 4)
	residual := maxAbsResidual(points, func(x, y float64) float64 { return x*x + y*y - 1 })
	assert.Less(t, residual, 0.1)
}

// sin(x^2 + y^2) = 0.5 has multiple nested rings within the default
// viewport and must produce more than one contour.
func TestGraphEquationMultipleContours(t *testing.T) {
	cfg := defaultViewportConfig()
	points, err := GraphEquation(`["Equal",["Sin",["Add",["Power","x",2],["Power","y",2]]],0.5]`, cfg)
	assert.NoError(t, err)
	assert.Greater(t, countContours(points), 1)
}

func TestGraphEquationDiamond(t *testing.T) {
	cfg := defaultViewportConfig()
	points, err := GraphEquation(`["Equal",["Add",["Abs","x"],["Abs","y"]],1]`, cfg)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(points), 4)
}

// 1/x = 0 has no real solution; the infinite samples on x = 0 must not
// count as a sign change, so no edge points are found and the result
// holds no finite point (at most trailing sentinels).
func TestGraphEquationNoSolutionIsEmpty(t *testing.T) {
	cfg := defaultViewportConfig()
	points, err := GraphEquation(`["Equal",["Divide",1,"x"],0]`, cfg)
	assert.NoError(t, err)
	for _, p := range points {
		assert.True(t, math.IsInf(p.X, 1))
	}
}

func TestGraphEquationRejectsFreeVariable(t *testing.T) {
	cfg := defaultViewportConfig()
	_, err := GraphEquation(`["Equal","y",["Multiply","z","x"]]`, cfg)
	assert.Error(t, err)
}

func TestGraphEquationUsesVarValuesForExtraVariables(t *testing.T) {
	cfg := defaultViewportConfig()
	cfg.VarValues = map[string]float64{"k": 2}
	_, err := GraphEquation(`["Equal","y",["Multiply","k","x"]]`, cfg)
	assert.NoError(t, err)
}
