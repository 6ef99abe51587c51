package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders a node for diagnostics and error messages. It is not
// meant to round-trip through the mathjson grammar.

func (c *Const) String() string { return strconv.FormatFloat(c.Val, 'g', -1, 64) }
func (v *Var) String() string   { return v.Name }

func (s *Sum) String() string { return joinOp(s.Terms, "+") }
func (n *Neg) String() string { return fmt.Sprintf("-(%s)", n.X) }
func (p *Product) String() string {
	return joinOp(p.Factors, "*")
}
func (r *Reciprocal) String() string { return fmt.Sprintf("1/(%s)", r.X) }
func (p *Power) String() string      { return fmt.Sprintf("(%s)^(%s)", p.Base, p.Exp) }
func (l *Log) String() string        { return fmt.Sprintf("log_%g(%s)", l.Base, l.X) }
func (s *Sin) String() string        { return fmt.Sprintf("sin(%s)", s.X) }
func (c *Cos) String() string        { return fmt.Sprintf("cos(%s)", c.X) }
func (t *Tan) String() string        { return fmt.Sprintf("tan(%s)", t.X) }
func (a *Abs) String() string        { return fmt.Sprintf("|%s|", a.X) }

func joinOp(nodes []Node, op string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return "(" + strings.Join(parts, op) + ")"
}
