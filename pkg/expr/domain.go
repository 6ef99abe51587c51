package expr

import "math/big"

// RealDomain returns a symbolic under-approximation of where a node is
// real-valued: constants and variables are universal; compositions
// intersect operand domains plus an operation-specific constraint.

func (c *Const) RealDomain() Set { return &UniversalSetV{} }
func (v *Var) RealDomain() Set   { return &UniversalSetV{} }

func (s *Sum) RealDomain() Set { return intersectAll(s.Terms) }
func (n *Neg) RealDomain() Set { return n.X.RealDomain() }
func (p *Product) RealDomain() Set { return intersectAll(p.Factors) }

func (r *Reciprocal) RealDomain() Set {
	nonZero := &ComparisonSet{Left: r.X, Right: constOf(0), Op: NotEqual}
	return &IntersectionSet{Sets: []Set{r.X.RealDomain(), nonZero}}
}

func (p *Power) RealDomain() Set {
	operandDomains := &IntersectionSet{Sets: []Set{p.Base.RealDomain(), p.Exp.RealDomain()}}

	if ec, ok := simplifyConst(p.Exp); ok {
		constraints := []Set{operandDomains}
		if evenDenominator(ec) {
			constraints = append(constraints, &ComparisonSet{Left: p.Base, Right: constOf(0), Op: GreaterEqual})
		}
		if ec < 0 {
			constraints = append(constraints, &ComparisonSet{Left: p.Base, Right: constOf(0), Op: NotEqual})
		}
		return &IntersectionSet{Sets: constraints}
	}

	// Symbolic exponent: positive base anywhere, zero base only where
	// the exponent is itself positive.
	positiveBase := &ComparisonSet{Left: p.Base, Right: constOf(0), Op: Greater}
	zeroBaseWherePositiveExp := &IntersectionSet{Sets: []Set{
		&ComparisonSet{Left: p.Base, Right: constOf(0), Op: Equal},
		&ComparisonSet{Left: p.Exp, Right: constOf(0), Op: Greater},
	}}
	return &IntersectionSet{Sets: []Set{
		operandDomains,
		&UnionSet{Sets: []Set{positiveBase, zeroBaseWherePositiveExp}},
	}}
}

func (l *Log) RealDomain() Set {
	if l.Base <= 0 || l.Base == 1 {
		return &EmptySetV{}
	}
	positive := &ComparisonSet{Left: l.X, Right: constOf(0), Op: Greater}
	return &IntersectionSet{Sets: []Set{l.X.RealDomain(), positive}}
}

func (s *Sin) RealDomain() Set { return s.X.RealDomain() }
func (c *Cos) RealDomain() Set { return c.X.RealDomain() }
func (t *Tan) RealDomain() Set { return t.X.RealDomain() }
func (a *Abs) RealDomain() Set { return a.X.RealDomain() }

func intersectAll(nodes []Node) Set {
	sets := make([]Set, len(nodes))
	for i, n := range nodes {
		sets[i] = n.RealDomain()
	}
	switch len(sets) {
	case 0:
		return &UniversalSetV{}
	case 1:
		return sets[0]
	default:
		return &IntersectionSet{Sets: sets}
	}
}

// simplifyConst reports whether n simplifies to a constant, returning its
// value.
func simplifyConst(n Node) (float64, bool) {
	c, ok := n.Simplify().(*Const)
	if !ok {
		return 0, false
	}
	return c.Val, true
}

// evenDenominator reports whether exp, reconstructed as an exact rational,
// has an even denominator in lowest terms (e.g. 0.5 = 1/2, even; 2 = 2/1,
// odd denominator so no restriction beyond the negative-exponent case).
func evenDenominator(exp float64) bool {
	r := new(big.Rat)
	if r.SetFloat64(exp) == nil {
		return false
	}
	return r.Denom().Bit(0) == 0
}
