package graph

import (
	"math"
	"math/rand"

	"github.com/wildfunctions/graphcalc/pkg/expr"
	"github.com/wildfunctions/graphcalc/pkg/geom"
)

const fastPathSamples = 501

// tryExplicitFastPath detects an equation of the form v = R (or R = v)
// where v is one of the two plot variables and R does not mention v, and
// if so samples R directly instead of building a quadtree. ok is false
// when the shape doesn't match and the caller should fall through to the
// general path.
func tryExplicitFastPath(left, right expr.Node, cfg Config, allowed map[string]struct{}) (contour []geom.Point, ok bool, err error) {
	dependent, r, matched := detectExplicitForm(left, right, cfg)
	if !matched {
		return nil, false, nil
	}
	if err := checkFreeVariables(r, allowed); err != nil {
		return nil, false, err
	}

	independent := cfg.Var2
	if dependent == cfg.Var2 {
		independent = cfg.Var1
	}
	// Always scan the horizontal extent of the viewport, regardless of
	// which plot variable is independent, matching the sampling formula.
	lo, hi := cfg.Box.XMin, cfg.Box.XMax

	rng := rand.New(rand.NewSource(0))
	points := make([]geom.Point, 0, fastPathSamples)
	for i := 0; i < fastPathSamples; i++ {
		jitter := 0.0
		if i != 0 && i != fastPathSamples-1 {
			jitter = rng.Float64() - 0.5
		}
		iv := lo + ((float64(i)+jitter)/float64(fastPathSamples-1))*(hi-lo)

		bindings := make(map[string]float64, len(cfg.VarValues)+1)
		for k, v := range cfg.VarValues {
			bindings[k] = v
		}
		bindings[independent] = iv
		dv := r.Evaluate(bindings)
		if math.IsNaN(dv) || math.IsInf(dv, 0) {
			continue
		}

		if dependent == cfg.Var1 {
			points = append(points, geom.Point{X: dv, Y: iv})
		} else {
			points = append(points, geom.Point{X: iv, Y: dv})
		}
	}

	return points, true, nil
}

// detectExplicitForm reports whether one side of the equation is a bare
// plot variable absent from the other side, returning which variable is
// dependent and the sampled side R.
func detectExplicitForm(left, right expr.Node, cfg Config) (dependent string, r expr.Node, ok bool) {
	if v, isVar := left.(*expr.Var); isVar && isPlotVar(v.Name, cfg) && !mentions(right, v.Name) {
		return v.Name, right, true
	}
	if v, isVar := right.(*expr.Var); isVar && isPlotVar(v.Name, cfg) && !mentions(left, v.Name) {
		return v.Name, left, true
	}
	return "", nil, false
}

func isPlotVar(name string, cfg Config) bool {
	return name == cfg.Var1 || name == cfg.Var2
}

func mentions(n expr.Node, name string) bool {
	_, ok := expr.FreeVariables(n)[name]
	return ok
}
