package parser

import (
	"github.com/amoghasbhardwaj/steel/ast"
	"github.com/amoghasbhardwaj/steel/steelerr"
	"github.com/amoghasbhardwaj/steel/token"
)

// inferType performs the parser's lightweight, static type inference
// (spec §4.3): literals infer directly, a Variable infers from its
// declared binding, and compound forms infer from their operands. It
// never evaluates anything — only the node's shape and the declarations
// already visible in scope.
func (p *Parser) inferType(node ast.Node, scope *ast.Scope) (ast.DataType, error) {
	switch n := node.(type) {
	case *ast.IntLit:
		return ast.IntT(), nil
	case *ast.FloatLit:
		return ast.FloatT(), nil
	case *ast.BoolLit:
		return ast.BoolT(), nil
	case *ast.StringLit:
		return ast.StrT(), nil

	case *ast.Variable:
		b, ok := scope.LookupVariable(n.Name)
		if !ok {
			return ast.DataType{}, steelerr.New(steelerr.NameError, "undefined variable %q", n.Name)
		}
		switch v := b.(type) {
		case *ast.VarDef:
			return v.Type, nil
		case *ast.ArrayDef:
			return ast.ArrayT(v.ElemType), nil
		}
		return ast.DataType{}, steelerr.New(steelerr.RuntimeErr, "unrecognized binding for %q", n.Name)

	case *ast.Unary:
		if n.Op == token.NOT {
			// `!` flips a BOOL but maps a numeric operand to INT 1 or 0.
			ot, err := p.inferType(n.Operand, scope)
			if err == nil && (ot.Kind == ast.Int || ot.Kind == ast.Float) {
				return ast.IntT(), nil
			}
			return ast.BoolT(), nil
		}
		return p.inferType(n.Operand, scope)

	case *ast.Binary:
		return p.inferBinaryType(n, scope)

	case *ast.ArrayAccess:
		b, ok := scope.LookupVariable(n.Name)
		if !ok {
			return ast.DataType{}, steelerr.New(steelerr.NameError, "undefined variable %q", n.Name)
		}
		arr, ok := b.(*ast.ArrayDef)
		if !ok {
			return ast.DataType{}, steelerr.New(steelerr.TypeError, "%q is not an array", n.Name)
		}
		return arr.ElemType, nil

	case *ast.ClassInstance:
		return ast.CustomT(n.ClassName), nil

	case *ast.FunctionCall:
		fd, ok := scope.LookupFunction(n.Name)
		if !ok {
			// Builtins (print/println, math.*) have no declared type;
			// callers that need a concrete type for them will fail their
			// own check rather than this lookup.
			return ast.VoidT(), nil
		}
		return p.inferFunctionReturnType(fd)

	case *ast.ClassAccess:
		return ast.DataType{}, steelerr.New(steelerr.TypeError, "cannot statically infer the type of a dotted expression")

	default:
		return ast.DataType{}, steelerr.New(steelerr.TypeError, "cannot infer a static type for this expression")
	}
}

func (p *Parser) inferBinaryType(n *ast.Binary, scope *ast.Scope) (ast.DataType, error) {
	switch n.Op {
	case token.AND, token.OR, token.EE, token.NEQ, token.LT, token.GT, token.LEQ, token.GEQ:
		return ast.BoolT(), nil

	case token.ADD:
		lt, err := p.inferType(n.Left, scope)
		if err != nil {
			return ast.DataType{}, err
		}
		rt, err := p.inferType(n.Right, scope)
		if err != nil {
			return ast.DataType{}, err
		}
		if lt.Kind == ast.Str && rt.Kind == ast.Str {
			return ast.StrT(), nil
		}
		return numericResult(lt, rt)

	case token.SUBTRACT, token.ASTERISK, token.FSLASH, token.PERCENT, token.CARET:
		lt, err := p.inferType(n.Left, scope)
		if err != nil {
			return ast.DataType{}, err
		}
		rt, err := p.inferType(n.Right, scope)
		if err != nil {
			return ast.DataType{}, err
		}
		return numericResult(lt, rt)
	}
	return ast.DataType{}, steelerr.New(steelerr.TypeError, "unknown binary operator %s", n.Op)
}

func numericResult(l, r ast.DataType) (ast.DataType, error) {
	if l.Kind == ast.Float || r.Kind == ast.Float {
		return ast.FloatT(), nil
	}
	if l.Kind == ast.Int && r.Kind == ast.Int {
		return ast.IntT(), nil
	}
	return ast.DataType{}, steelerr.New(steelerr.TypeError, "incompatible operand types %s and %s", l, r)
}

// inferFunctionReturnType makes a best effort from the function's own
// top-level statements, since Steel function definitions carry no
// declared return type. A function with no top-level `return expr;`
// (including one that only returns from inside a nested if/while/for)
// infers as void; callers that need a concrete type for such a call
// will fail their own check rather than this one.
func (p *Parser) inferFunctionReturnType(fd *ast.FunctionDef) (ast.DataType, error) {
	if fd.Body == nil {
		// Called from inside the function's own body, which is still
		// being parsed: no statements are known yet.
		return ast.VoidT(), nil
	}
	for _, stmt := range fd.Body.Statements {
		if ret, ok := stmt.(*ast.Return); ok && ret.Value != nil {
			return p.inferType(ret.Value, fd.DefScope)
		}
	}
	return ast.VoidT(), nil
}
