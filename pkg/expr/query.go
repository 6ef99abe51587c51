package expr

// IsConstant and FreeVariables walk the tree once each; no caching is
// needed since trees are small and rebuilt on every simplify/derive.

func (c *Const) IsConstant() bool { return true }
func (v *Var) IsConstant() bool   { return false }
func (s *Sum) IsConstant() bool   { return allConstant(s.Terms) }
func (n *Neg) IsConstant() bool   { return n.X.IsConstant() }
func (p *Product) IsConstant() bool {
	return allConstant(p.Factors)
}
func (r *Reciprocal) IsConstant() bool { return r.X.IsConstant() }
func (p *Power) IsConstant() bool      { return p.Base.IsConstant() && p.Exp.IsConstant() }
func (l *Log) IsConstant() bool        { return l.X.IsConstant() }
func (s *Sin) IsConstant() bool        { return s.X.IsConstant() }
func (c *Cos) IsConstant() bool        { return c.X.IsConstant() }
func (t *Tan) IsConstant() bool        { return t.X.IsConstant() }
func (a *Abs) IsConstant() bool        { return a.X.IsConstant() }

func allConstant(nodes []Node) bool {
	for _, n := range nodes {
		if !n.IsConstant() {
			return false
		}
	}
	return true
}

func (c *Const) FreeVariables(map[string]struct{}) {}
func (v *Var) FreeVariables(out map[string]struct{}) {
	out[v.Name] = struct{}{}
}
func (s *Sum) FreeVariables(out map[string]struct{}) {
	for _, t := range s.Terms {
		t.FreeVariables(out)
	}
}
func (n *Neg) FreeVariables(out map[string]struct{}) { n.X.FreeVariables(out) }
func (p *Product) FreeVariables(out map[string]struct{}) {
	for _, f := range p.Factors {
		f.FreeVariables(out)
	}
}
func (r *Reciprocal) FreeVariables(out map[string]struct{}) { r.X.FreeVariables(out) }
func (p *Power) FreeVariables(out map[string]struct{}) {
	p.Base.FreeVariables(out)
	p.Exp.FreeVariables(out)
}
func (l *Log) FreeVariables(out map[string]struct{}) { l.X.FreeVariables(out) }
func (s *Sin) FreeVariables(out map[string]struct{}) { s.X.FreeVariables(out) }
func (c *Cos) FreeVariables(out map[string]struct{}) { c.X.FreeVariables(out) }
func (t *Tan) FreeVariables(out map[string]struct{}) { t.X.FreeVariables(out) }
func (a *Abs) FreeVariables(out map[string]struct{}) { a.X.FreeVariables(out) }

// FreeVariables returns the distinct variable names in n as a set (map
// keys), a convenience wrapper for the map-accumulator form every node implements.
func FreeVariables(n Node) map[string]struct{} {
	out := make(map[string]struct{})
	n.FreeVariables(out)
	return out
}
