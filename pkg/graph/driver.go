// Package graph is the driver: it composes expression parsing, the
// explicit-function fast path, the adaptive quadtree, the leaf solver and
// the stitcher into the single entry point a caller uses to turn an
// equation and a viewport into polylines.
package graph

import (
	"fmt"
	"math"

	"github.com/wildfunctions/graphcalc/pkg/calc"
	"github.com/wildfunctions/graphcalc/pkg/expr"
	"github.com/wildfunctions/graphcalc/pkg/geom"
	"github.com/wildfunctions/graphcalc/pkg/mathjson"
	"github.com/wildfunctions/graphcalc/pkg/quadtree"
	"github.com/wildfunctions/graphcalc/pkg/stitch"
)

// ErrFreeVariable is returned when the equation references a variable
// outside {var1, var2} and the keys of var_values.
type ErrFreeVariable struct {
	Name string
}

func (e *ErrFreeVariable) Error() string {
	return fmt.Sprintf("graph: equation references free variable %q outside the plot variables and var_values", e.Name)
}

// GraphEquation parses mathJSON, builds the signed function f = L - R and,
// unless the explicit-function fast path applies, adaptively subdivides
// box and stitches the resulting segments into polylines.
func GraphEquation(mathJSON string, cfg Config) ([]geom.Point, error) {
	left, right, _, err := mathjson.ParseEquation(mathJSON)
	if err != nil {
		return nil, err
	}

	allowed := allowedVariables(cfg)

	if contour, ok, err := tryExplicitFastPath(left, right, cfg, allowed); err != nil {
		return nil, err
	} else if ok {
		return flattenPolylines([][]geom.Point{contour}), nil
	}

	f := &expr.Sum{Terms: []expr.Node{left, &expr.Neg{X: right}}}
	if err := checkFreeVariables(f, allowed); err != nil {
		return nil, err
	}

	dVar1 := f.Derivative(cfg.Var1).Simplify()
	dVar2 := f.Derivative(cfg.Var2).Simplify()

	bind := func(x, y float64) map[string]float64 {
		b := make(map[string]float64, len(cfg.VarValues)+2)
		for k, v := range cfg.VarValues {
			b[k] = v
		}
		b[cfg.Var1] = x
		b[cfg.Var2] = y
		return b
	}

	fFunc := calc.Func2(func(x, y float64) float64 {
		return f.Evaluate(bind(x, y))
	})
	rawDf := calc.Func2Vec(func(x, y float64) calc.Vec2 {
		bindings := bind(x, y)
		return calc.Vec2{X: dVar1.Evaluate(bindings), Y: dVar2.Evaluate(bindings)}
	})
	wrappedDf := calc.WrapCheatingGradient(rawDf)

	tree := quadtree.Build(int(cfg.Depth), int(cfg.SearchDepth), cfg.Box, fFunc, wrappedDf)

	var segments []stitch.Segment
	collectSegments(tree, &segments)
	polylines := stitch.Stitch(segments)

	return flattenPolylines(polylines), nil
}

func allowedVariables(cfg Config) map[string]struct{} {
	allowed := map[string]struct{}{cfg.Var1: {}, cfg.Var2: {}}
	for k := range cfg.VarValues {
		allowed[k] = struct{}{}
	}
	return allowed
}

func checkFreeVariables(n expr.Node, allowed map[string]struct{}) error {
	for name := range expr.FreeVariables(n) {
		if _, ok := allowed[name]; !ok {
			return &ErrFreeVariable{Name: name}
		}
	}
	return nil
}

// collectSegments walks the tree, emitting one segment per edge point of
// every leaf, in the order the edge points were collected.
func collectSegments(n quadtree.Node, out *[]stitch.Segment) {
	switch v := n.(type) {
	case *quadtree.Root:
		for _, c := range v.Children {
			collectSegments(c, out)
		}
	case *quadtree.Leaf:
		for _, ep := range v.EdgePoints {
			*out = append(*out, stitch.Segment{A: ep, B: v.Vertex})
		}
	}
}

func flattenPolylines(polylines [][]geom.Point) []geom.Point {
	var out []geom.Point
	for _, p := range polylines {
		out = append(out, p...)
		out = append(out, geom.Point{X: math.Inf(1), Y: math.Inf(1)})
	}
	return out
}
