package expr

import "math"

// Evaluate implementations follow the natural IEEE-754 interpretation of
// each operator. None of them guard against non-finite results: division
// by zero, log of a non-positive number, 0^0 and similar all propagate the
// IEEE result, per the engine's non-raising contract.

func (c *Const) Evaluate(map[string]float64) float64 { return c.Val }

func (v *Var) Evaluate(bindings map[string]float64) float64 { return bindings[v.Name] }

func (s *Sum) Evaluate(bindings map[string]float64) float64 {
	total := 0.0
	for _, t := range s.Terms {
		total += t.Evaluate(bindings)
	}
	return total
}

func (n *Neg) Evaluate(bindings map[string]float64) float64 { return -n.X.Evaluate(bindings) }

func (p *Product) Evaluate(bindings map[string]float64) float64 {
	total := 1.0
	for _, f := range p.Factors {
		total *= f.Evaluate(bindings)
	}
	return total
}

func (r *Reciprocal) Evaluate(bindings map[string]float64) float64 {
	return 1.0 / r.X.Evaluate(bindings)
}

func (p *Power) Evaluate(bindings map[string]float64) float64 {
	return math.Pow(p.Base.Evaluate(bindings), p.Exp.Evaluate(bindings))
}

func (l *Log) Evaluate(bindings map[string]float64) float64 {
	return math.Log(l.X.Evaluate(bindings)) / math.Log(l.Base)
}

func (s *Sin) Evaluate(bindings map[string]float64) float64 { return math.Sin(s.X.Evaluate(bindings)) }
func (c *Cos) Evaluate(bindings map[string]float64) float64 { return math.Cos(c.X.Evaluate(bindings)) }
func (t *Tan) Evaluate(bindings map[string]float64) float64 { return math.Tan(t.X.Evaluate(bindings)) }
func (a *Abs) Evaluate(bindings map[string]float64) float64 { return math.Abs(a.X.Evaluate(bindings)) }
