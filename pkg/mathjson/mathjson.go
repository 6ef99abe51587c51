// Package mathjson decodes the narrow JSON-array math expression grammar
// (number | "Pi" | "ExponentialE" | "Nothing" | variable string |
// ["Op", ...args]) into an expr.Node tree, and the top-level equation
// array [op, left, right] into its two sides and a comparator.
package mathjson

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/wildfunctions/graphcalc/pkg/expr"
	"github.com/wildfunctions/graphcalc/pkg/registry"
)

// ErrUnknownOperator is returned when an expression array's head names an
// operator this package does not implement.
type ErrUnknownOperator struct {
	Name string
}

func (e *ErrUnknownOperator) Error() string {
	return fmt.Sprintf("mathjson: unknown operator: %s (available: %v)", e.Name, OperatorNames())
}

// ErrMalformed is returned for structurally invalid expression JSON.
type ErrMalformed struct {
	Detail string
}

func (e *ErrMalformed) Error() string { return "mathjson: malformed expression: " + e.Detail }

// errUnexpectedNothing is wrapped into the error returned when "Nothing"
// (an absent value) is decoded in a position that requires a concrete
// expression.
var errUnexpectedNothing = &ErrMalformed{Detail: "\"Nothing\" used in a required position"}

var comparators = map[string]expr.Comparator{
	"Less":         expr.Less,
	"LessEqual":    expr.LessEqual,
	"Equal":        expr.Equal,
	"GreaterEqual": expr.GreaterEqual,
	"Greater":      expr.Greater,
	"NotEqual":     expr.NotEqual,
}

// ParseEquation decodes a top-level `[op, left, right]` JSON array into
// its comparator and two expression sides.
func ParseEquation(mathJSON string) (left, right expr.Node, op expr.Comparator, err error) {
	var raw []interface{}
	if jsonErr := json.Unmarshal([]byte(mathJSON), &raw); jsonErr != nil {
		return nil, nil, 0, &ErrMalformed{Detail: jsonErr.Error()}
	}
	if len(raw) != 3 {
		return nil, nil, 0, &ErrMalformed{Detail: fmt.Sprintf("expected [op, left, right], got %d elements", len(raw))}
	}
	opName, ok := raw[0].(string)
	if !ok {
		return nil, nil, 0, &ErrMalformed{Detail: "equation head is not a comparator string"}
	}
	cmp, ok := comparators[opName]
	if !ok {
		return nil, nil, 0, fmt.Errorf("mathjson: unknown comparator: %s (available: [Less LessEqual Equal GreaterEqual Greater NotEqual])", opName)
	}

	left, err = parseExpression(raw[1])
	if err != nil {
		return nil, nil, 0, err
	}
	right, err = parseExpression(raw[2])
	if err != nil {
		return nil, nil, 0, err
	}
	return left, right, cmp, nil
}

// parseExpression decodes a single JSON value (already unmarshalled into
// interface{}) into an expression node. It returns (nil, nil) only for
// the literal "Nothing" marker and for JSON null, which callers in
// variadic positions treat as an absent operand.
func parseExpression(v interface{}) (expr.Node, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return &expr.Const{Val: val}, nil
	case string:
		switch val {
		case "Pi":
			return &expr.Const{Val: math.Pi}, nil
		case "ExponentialE":
			return &expr.Const{Val: math.E}, nil
		case "Nothing":
			return nil, nil
		default:
			return &expr.Var{Name: val}, nil
		}
	case []interface{}:
		if len(val) == 0 {
			return nil, &ErrMalformed{Detail: "empty operator array"}
		}
		opName, ok := val[0].(string)
		if !ok {
			return nil, &ErrMalformed{Detail: "operator array head is not a string"}
		}
		op, err := operators.Get(opName)
		if err != nil {
			return nil, &ErrUnknownOperator{Name: opName}
		}
		return op(val[1:])
	default:
		return nil, &ErrMalformed{Detail: fmt.Sprintf("unsupported JSON value of type %T", v)}
	}
}

func parseArgs(args []interface{}) ([]expr.Node, error) {
	nodes := make([]expr.Node, 0, len(args))
	for _, a := range args {
		n, err := parseExpression(a)
		if err != nil {
			return nil, err
		}
		if n == nil {
			continue // "Nothing" in a variadic list: skip
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func parseRequired(v interface{}, context string) (expr.Node, error) {
	n, err := parseExpression(v)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("mathjson: %s: %w", context, errUnexpectedNothing)
	}
	return n, nil
}

type operatorFunc func(args []interface{}) (expr.Node, error)

var operators = registry.New[operatorFunc]()

func init() {
	for name, fn := range operatorTable {
		operators.Register(name, fn)
	}
}

var operatorTable = map[string]operatorFunc{
	"Add": func(args []interface{}) (expr.Node, error) {
		terms, err := parseArgs(args)
		if err != nil {
			return nil, err
		}
		return &expr.Sum{Terms: terms}, nil
	},
	"Subtract": func(args []interface{}) (expr.Node, error) {
		terms, err := parseArgs(args)
		if err != nil {
			return nil, err
		}
		if len(terms) == 0 {
			return nil, &ErrMalformed{Detail: "Subtract requires at least one operand"}
		}
		sum := []expr.Node{terms[0]}
		for _, t := range terms[1:] {
			sum = append(sum, &expr.Neg{X: t})
		}
		return &expr.Sum{Terms: sum}, nil
	},
	"Multiply": func(args []interface{}) (expr.Node, error) {
		factors, err := parseArgs(args)
		if err != nil {
			return nil, err
		}
		return &expr.Product{Factors: factors}, nil
	},
	"Divide": func(args []interface{}) (expr.Node, error) {
		factors, err := parseArgs(args)
		if err != nil {
			return nil, err
		}
		if len(factors) == 0 {
			return nil, &ErrMalformed{Detail: "Divide requires at least one operand"}
		}
		product := []expr.Node{factors[0]}
		for _, f := range factors[1:] {
			product = append(product, &expr.Reciprocal{X: f})
		}
		return &expr.Product{Factors: product}, nil
	},
	"Negate": func(args []interface{}) (expr.Node, error) {
		x, err := arity1(args, "Negate")
		if err != nil {
			return nil, err
		}
		return &expr.Neg{X: x}, nil
	},
	"Power": func(args []interface{}) (expr.Node, error) {
		if len(args) != 2 {
			return nil, &ErrMalformed{Detail: "Power requires exactly 2 operands"}
		}
		base, err := parseRequired(args[0], "Power base")
		if err != nil {
			return nil, err
		}
		exp, err := parseRequired(args[1], "Power exponent")
		if err != nil {
			return nil, err
		}
		return &expr.Power{Base: base, Exp: exp}, nil
	},
	"Ln": func(args []interface{}) (expr.Node, error) {
		x, err := arity1(args, "Ln")
		if err != nil {
			return nil, err
		}
		return &expr.Log{Base: math.E, X: x}, nil
	},
	"Sin": func(args []interface{}) (expr.Node, error) {
		x, err := arity1(args, "Sin")
		if err != nil {
			return nil, err
		}
		return &expr.Sin{X: x}, nil
	},
	"Cos": func(args []interface{}) (expr.Node, error) {
		x, err := arity1(args, "Cos")
		if err != nil {
			return nil, err
		}
		return &expr.Cos{X: x}, nil
	},
	"Tan": func(args []interface{}) (expr.Node, error) {
		x, err := arity1(args, "Tan")
		if err != nil {
			return nil, err
		}
		return &expr.Tan{X: x}, nil
	},
	"Abs": func(args []interface{}) (expr.Node, error) {
		x, err := arity1(args, "Abs")
		if err != nil {
			return nil, err
		}
		return &expr.Abs{X: x}, nil
	},
	"Sqrt": func(args []interface{}) (expr.Node, error) {
		x, err := arity1(args, "Sqrt")
		if err != nil {
			return nil, err
		}
		return &expr.Power{Base: x, Exp: &expr.Const{Val: 0.5}}, nil
	},
	"Rational": func(args []interface{}) (expr.Node, error) {
		if len(args) != 2 {
			return nil, &ErrMalformed{Detail: "Rational requires exactly 2 operands"}
		}
		p, err := parseRequired(args[0], "Rational numerator")
		if err != nil {
			return nil, err
		}
		q, err := parseRequired(args[1], "Rational denominator")
		if err != nil {
			return nil, err
		}
		return &expr.Product{Factors: []expr.Node{p, &expr.Reciprocal{X: q}}}, nil
	},
	"Delimiter": func(args []interface{}) (expr.Node, error) {
		return arity1(args, "Delimiter")
	},
}

func arity1(args []interface{}, opName string) (expr.Node, error) {
	if len(args) != 1 {
		return nil, &ErrMalformed{Detail: fmt.Sprintf("%s requires exactly 1 operand", opName)}
	}
	return parseRequired(args[0], opName)
}

// OperatorNames returns the names of every supported operator array head,
// for use in error messages.
func OperatorNames() []string {
	return operators.Names()
}
