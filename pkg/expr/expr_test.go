package expr

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleExpressions() []Node {
	x := &Var{Name: "x"}
	return []Node{
		&Sum{Terms: []Node{x, constOf(2)}},
		&Product{Factors: []Node{x, x, constOf(3)}},
		&Power{Base: x, Exp: constOf(4)},
		&Sin{X: x},
		&Cos{X: &Product{Factors: []Node{x, x}}},
		&Tan{X: x},
		&Log{Base: math.E, X: &Power{Base: x, Exp: constOf(2)}},
		&Abs{X: &Sum{Terms: []Node{x, constOf(-3)}}},
		&Reciprocal{X: &Sum{Terms: []Node{x, constOf(1)}}},
		&Power{Base: x, Exp: x},
	}
}

func TestSimplifyPreservesEvaluation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, e := range sampleExpressions() {
		simplified := e.Simplify()
		for i := 0; i < 20; i++ {
			x := rng.Float64()*4 - 2
			bindings := map[string]float64{"x": x}
			got := e.Evaluate(bindings)
			want := simplified.Evaluate(bindings)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				continue
			}
			assert.InDelta(t, want, got, 1e-9, "x=%v expr=%v", x, e)
		}
	}
}

func TestIsConstantImpliesBindingIndependent(t *testing.T) {
	e := &Sum{Terms: []Node{constOf(1), &Product{Factors: []Node{constOf(2), constOf(3)}}}}
	assert.True(t, e.IsConstant())
	a := e.Evaluate(map[string]float64{"x": 1})
	b := e.Evaluate(map[string]float64{"x": 99})
	assert.Equal(t, a, b)

	withVar := &Sum{Terms: []Node{&Var{Name: "x"}, constOf(1)}}
	assert.False(t, withVar.IsConstant())
}

func TestFlatteningIsIdempotent(t *testing.T) {
	for _, e := range sampleExpressions() {
		once := e.Simplify()
		twice := once.Simplify()
		assert.Equal(t, once.String(), twice.String())
	}
}

func numericDerivative(e Node, variable string, bindings map[string]float64) float64 {
	h := 1e-6
	plus := make(map[string]float64, len(bindings))
	minus := make(map[string]float64, len(bindings))
	for k, v := range bindings {
		plus[k] = v
		minus[k] = v
	}
	plus[variable] += h
	minus[variable] -= h
	return (e.Evaluate(plus) - e.Evaluate(minus)) / (2 * h)
}

func TestDerivativeMatchesNumeric(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	cases := []Node{
		&Sum{Terms: []Node{&Power{Base: &Var{Name: "x"}, Exp: constOf(3)}, &Var{Name: "x"}}},
		&Sin{X: &Var{Name: "x"}},
		&Cos{X: &Var{Name: "x"}},
		&Tan{X: &Var{Name: "x"}},
		&Log{Base: math.E, X: &Var{Name: "x"}},
		&Abs{X: &Var{Name: "x"}},
		&Reciprocal{X: &Var{Name: "x"}},
		&Power{Base: &Var{Name: "x"}, Exp: constOf(2.5)},
	}
	for _, e := range cases {
		d := e.Derivative("x").Simplify()
		for i := 0; i < 10; i++ {
			x := 0.2 + rng.Float64()*1.1 // stays clear of tan's asymptote at pi/2
			bindings := map[string]float64{"x": x}
			analytic := d.Evaluate(bindings)
			numeric := numericDerivative(e, "x", bindings)
			if math.IsNaN(analytic) || math.IsNaN(numeric) {
				continue
			}
			assert.InEpsilon(t, numeric, analytic, 1e-4, "expr=%v x=%v", e, x)
		}
	}
}

func TestFreeVariables(t *testing.T) {
	e := &Sum{Terms: []Node{&Var{Name: "x"}, &Product{Factors: []Node{&Var{Name: "y"}, constOf(2)}}}}
	vars := FreeVariables(e)
	assert.Len(t, vars, 2)
	_, hasX := vars["x"]
	_, hasY := vars["y"]
	assert.True(t, hasX)
	assert.True(t, hasY)
}
