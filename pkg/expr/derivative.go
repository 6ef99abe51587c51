package expr

import "math"

// Derivative implements the standard symbolic rules from a small table:
// sum maps component-wise, an n-ary product sums over replacing one
// factor at a time by its derivative, power uses the general f^g rule,
// log uses f'/(ln(b)*f), trig is standard, |f| uses f*f'/|f|. No
// simplification is performed here; callers simplify afterward.

func (c *Const) Derivative(string) Node { return constOf(0) }

func (v *Var) Derivative(variable string) Node {
	if v.Name == variable {
		return constOf(1)
	}
	return constOf(0)
}

func (s *Sum) Derivative(variable string) Node {
	terms := make([]Node, len(s.Terms))
	for i, t := range s.Terms {
		terms[i] = t.Derivative(variable)
	}
	return &Sum{Terms: terms}
}

func (n *Neg) Derivative(variable string) Node {
	return &Neg{X: n.X.Derivative(variable)}
}

func (p *Product) Derivative(variable string) Node {
	terms := make([]Node, len(p.Factors))
	for i := range p.Factors {
		factors := make([]Node, len(p.Factors))
		copy(factors, p.Factors)
		factors[i] = p.Factors[i].Derivative(variable)
		terms[i] = &Product{Factors: factors}
	}
	return &Sum{Terms: terms}
}

func (r *Reciprocal) Derivative(variable string) Node {
	// d/dx (1/f) = -f' / f^2
	return &Neg{X: &Product{Factors: []Node{
		r.X.Derivative(variable),
		&Power{Base: r.X, Exp: constOf(-2)},
	}}}
}

func (p *Power) Derivative(variable string) Node {
	// f^(g-1) * (g*f' + f*ln(f)*g')
	fPrime := p.Base.Derivative(variable)
	gPrime := p.Exp.Derivative(variable)
	return &Product{Factors: []Node{
		&Power{Base: p.Base, Exp: &Sum{Terms: []Node{p.Exp, constOf(-1)}}},
		&Sum{Terms: []Node{
			&Product{Factors: []Node{p.Exp, fPrime}},
			&Product{Factors: []Node{p.Base, &Log{Base: math.E, X: p.Base}, gPrime}},
		}},
	}}
}

func (l *Log) Derivative(variable string) Node {
	// f' / (ln(b) * f)
	return &Product{Factors: []Node{
		l.X.Derivative(variable),
		&Power{Base: &Product{Factors: []Node{constOf(math.Log(l.Base)), l.X}}, Exp: constOf(-1)},
	}}
}

func (s *Sin) Derivative(variable string) Node {
	return &Product{Factors: []Node{&Cos{X: s.X}, s.X.Derivative(variable)}}
}

func (c *Cos) Derivative(variable string) Node {
	return &Neg{X: &Product{Factors: []Node{&Sin{X: c.X}, c.X.Derivative(variable)}}}
}

func (t *Tan) Derivative(variable string) Node {
	// sec^2(x) * x' = (1/cos(x))^2 * x'
	return &Product{Factors: []Node{
		&Power{Base: &Cos{X: t.X}, Exp: constOf(-2)},
		t.X.Derivative(variable),
	}}
}

func (a *Abs) Derivative(variable string) Node {
	// x * x' / |x|
	return &Product{Factors: []Node{
		a.X,
		a.X.Derivative(variable),
		&Power{Base: &Abs{X: a.X}, Exp: constOf(-1)},
	}}
}
