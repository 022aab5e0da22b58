package evaluator

import (
	"github.com/amoghasbhardwaj/steel/ast"
	"github.com/amoghasbhardwaj/steel/steelerr"
)

// runtimeType reports the DataType of an already-evaluated value node,
// the evaluator's counterpart to the parser's static inferType.
func runtimeType(v ast.Node) ast.DataType {
	switch n := v.(type) {
	case *ast.IntLit:
		return ast.IntT()
	case *ast.FloatLit:
		return ast.FloatT()
	case *ast.BoolLit:
		return ast.BoolT()
	case *ast.StringLit:
		return ast.StrT()
	case *ast.ArrayDef:
		return ast.ArrayT(n.ElemType)
	case *ast.ClassInstance:
		return ast.CustomT(n.ClassName)
	default:
		return ast.VoidT()
	}
}

// widen converts v to target's type when the single legal widening
// (INT -> FLOAT) applies, and rejects anything else that isn't already
// an exact match.
func widen(target ast.DataType, v ast.Node) (ast.Node, error) {
	from := runtimeType(v)
	if target.Equal(from) {
		return v, nil
	}
	if target.Kind == ast.Float && from.Kind == ast.Int {
		return &ast.FloatLit{Value: float64(v.(*ast.IntLit).Value)}, nil
	}
	if target.Kind == ast.Custom && from.Kind == ast.Custom && target.Class == from.Class {
		return v, nil
	}
	return nil, steelerr.New(steelerr.TypeError, "expected %s, got %s", target, from)
}

// truthy implements the rule used by if/while/for/&&/|| (spec §4.4):
// BOOL by value, numeric non-zero, anything else is a runtime error.
func truthy(v ast.Node) (bool, error) {
	switch n := v.(type) {
	case *ast.BoolLit:
		return n.Value, nil
	case *ast.IntLit:
		return n.Value != 0, nil
	case *ast.FloatLit:
		return n.Value != 0.0, nil
	default:
		return false, steelerr.New(steelerr.RuntimeErr, "value of type %s has no truthiness", runtimeType(v))
	}
}

// toFloat coerces an INT or FLOAT value to f64, the common
// representation the evaluator performs arithmetic and comparisons in.
func toFloat(v ast.Node) (float64, error) {
	switch n := v.(type) {
	case *ast.IntLit:
		return float64(n.Value), nil
	case *ast.FloatLit:
		return n.Value, nil
	default:
		return 0, steelerr.New(steelerr.TypeError, "expected a numeric operand, got %s", runtimeType(v))
	}
}

func isFloatValued(v ast.Node) bool {
	_, ok := v.(*ast.FloatLit)
	return ok
}
