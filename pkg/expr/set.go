package expr

// Comparator identifies one of the six comparison operators an equation
// may use; graphing itself ignores it (see driver), but it is retained
// for Set.Comparison and for completeness of the mathjson grammar.
type Comparator int

const (
	Less Comparator = iota
	LessEqual
	Equal
	GreaterEqual
	Greater
	NotEqual
)

func (c Comparator) String() string {
	switch c {
	case Less:
		return "Less"
	case LessEqual:
		return "LessEqual"
	case Equal:
		return "Equal"
	case GreaterEqual:
		return "GreaterEqual"
	case Greater:
		return "Greater"
	case NotEqual:
		return "NotEqual"
	default:
		return "Unknown"
	}
}

func (c Comparator) apply(diff float64) bool {
	switch c {
	case Less:
		return diff < 0
	case LessEqual:
		return diff <= 0
	case Equal:
		return diff == 0
	case GreaterEqual:
		return diff >= 0
	case Greater:
		return diff > 0
	case NotEqual:
		return diff != 0
	default:
		return false
	}
}

// Set is the interface implemented by every set-algebra node. It denotes
// a subset of R^n, used only to describe where an expression is defined.
type Set interface {
	Contains(bindings map[string]float64) bool
	Simplify() Set
}

// EmptySetV is the empty set.
type EmptySetV struct{}

// UniversalSetV is all of R^n.
type UniversalSetV struct{}

// UnionSet is the union of a list of sets.
type UnionSet struct {
	Sets []Set
}

// IntersectionSet is the intersection of a list of sets.
type IntersectionSet struct {
	Sets []Set
}

// ComparisonSet is {bindings : Left(bindings) Op Right(bindings)}.
type ComparisonSet struct {
	Left, Right Node
	Op          Comparator
}

// IntervalSet is a 1-D interval constraint on a single named variable,
// with independent inclusivity at each bound.
type IntervalSet struct {
	Variable             string
	Lower, Upper         float64
	LowerIncl, UpperIncl bool
}

func Empty() Set     { return &EmptySetV{} }
func Universal() Set { return &UniversalSetV{} }

func (*EmptySetV) Contains(map[string]float64) bool     { return false }
func (*UniversalSetV) Contains(map[string]float64) bool { return true }

func (u *UnionSet) Contains(bindings map[string]float64) bool {
	for _, s := range u.Sets {
		if s.Contains(bindings) {
			return true
		}
	}
	return false
}

func (i *IntersectionSet) Contains(bindings map[string]float64) bool {
	for _, s := range i.Sets {
		if !s.Contains(bindings) {
			return false
		}
	}
	return true
}

func (c *ComparisonSet) Contains(bindings map[string]float64) bool {
	return c.Op.apply(c.Left.Evaluate(bindings) - c.Right.Evaluate(bindings))
}

func (iv *IntervalSet) Contains(bindings map[string]float64) bool {
	x, ok := bindings[iv.Variable]
	if !ok {
		return false
	}
	lowOK := x > iv.Lower || (iv.LowerIncl && x == iv.Lower)
	highOK := x < iv.Upper || (iv.UpperIncl && x == iv.Upper)
	return lowOK && highOK
}
