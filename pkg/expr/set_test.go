package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionSimplifyPreservesMembership(t *testing.T) {
	s := &UnionSet{Sets: []Set{
		&ComparisonSet{Left: &Var{Name: "x"}, Right: constOf(0), Op: Greater},
		&EmptySetV{},
		&UnionSet{Sets: []Set{&ComparisonSet{Left: &Var{Name: "x"}, Right: constOf(10), Op: Less}}},
	}}
	simplified := s.Simplify()
	for _, x := range []float64{-5, 0, 5, 11} {
		bindings := map[string]float64{"x": x}
		assert.Equal(t, s.Contains(bindings), simplified.Contains(bindings), "x=%v", x)
	}
}

func TestIntersectionSimplifyPreservesMembership(t *testing.T) {
	s := &IntersectionSet{Sets: []Set{
		&ComparisonSet{Left: &Var{Name: "x"}, Right: constOf(0), Op: Greater},
		&UniversalSetV{},
		&IntersectionSet{Sets: []Set{&ComparisonSet{Left: &Var{Name: "x"}, Right: constOf(10), Op: Less}}},
	}}
	simplified := s.Simplify()
	for _, x := range []float64{-5, 0, 5, 11} {
		bindings := map[string]float64{"x": x}
		assert.Equal(t, s.Contains(bindings), simplified.Contains(bindings), "x=%v", x)
	}
}

func TestComparisonCollapsesOnConstantDifference(t *testing.T) {
	for _, value := range []float64{-1, 0, 1} {
		for _, op := range []Comparator{Less, LessEqual, Equal, GreaterEqual, Greater, NotEqual} {
			c := &ComparisonSet{Left: constOf(value), Right: constOf(0), Op: op}
			simplified := c.Simplify()
			want := op.apply(value)
			switch v := simplified.(type) {
			case *UniversalSetV:
				assert.True(t, want, "value=%v op=%v", value, op)
			case *EmptySetV:
				assert.False(t, want, "value=%v op=%v", value, op)
			default:
				t.Fatalf("expected collapse to Universal/Empty, got %T", v)
			}
		}
	}
}
