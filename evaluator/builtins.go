package evaluator

import (
	"fmt"
	"strings"

	"github.com/amoghasbhardwaj/steel/ast"
)

// evalPrint implements the built-in Writer (spec §4.5): evaluate each
// argument, render it, join with a space, and for println append a
// trailing newline.
func (e *Evaluator) evalPrint(n *ast.FunctionCall, scope *ast.Scope, newline bool) (ast.Node, error) {
	parts := make([]string, len(n.Args))
	for i, arg := range n.Args {
		v, err := e.Eval(arg, scope)
		if err != nil {
			return nil, err
		}
		parts[i] = FormatValue(v)
	}
	out := strings.Join(parts, " ")
	if newline {
		out += "\n"
	}
	fmt.Fprint(e.Writer, out)
	return &ast.NoOp{}, nil
}

// FormatValue renders an evaluated value node as text, per §4.5:
// Int decimal, Float with its own PastDecimal digit count (two digits
// when PastDecimal is 0, as for computed floats), Bool
// true/false, String raw, ArrayDef as "[e1, e2, ...]". Exported for the
// REPL, which echoes the result of each statement the same way
// print/println would render it.
func FormatValue(v ast.Node) string {
	switch n := v.(type) {
	case *ast.IntLit:
		return fmt.Sprintf("%d", n.Value)
	case *ast.FloatLit:
		digits := n.PastDecimal
		if digits == 0 {
			digits = 2
		}
		return fmt.Sprintf("%.*f", digits, n.Value)
	case *ast.BoolLit:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.StringLit:
		return n.Value
	case *ast.ArrayDef:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = formatArrayElement(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ast.ClassInstance:
		return n.ClassName + "{}"
	case *ast.NoOp:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatArrayElement renders one array element at the array's own fixed
// two-digit float width rather than the element's individual
// PastDecimal, so a later element write (xs[1] = 9.5) prints at the
// same width as the rest of the array instead of echoing whatever
// fractional digit count its own literal happened to have.
func formatArrayElement(v ast.Node) string {
	if f, ok := v.(*ast.FloatLit); ok {
		return fmt.Sprintf("%.2f", f.Value)
	}
	return FormatValue(v)
}
