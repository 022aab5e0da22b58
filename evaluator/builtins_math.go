package evaluator

import (
	"math"

	"github.com/amoghasbhardwaj/steel/ast"
	"github.com/amoghasbhardwaj/steel/steelerr"
)

// evalBuiltinLibraryCall dispatches a call through a built-in import's
// hard-coded function table (spec §4.4's "Built-in library dispatch").
// `math` is the only built-in module; sqrt/abs/floor each take one INT
// or FLOAT argument and return FLOAT.
func (e *Evaluator) evalBuiltinLibraryCall(module string, call *ast.FunctionCall, scope *ast.Scope) (ast.Node, error) {
	if module != "math" {
		return nil, steelerr.New(steelerr.ModuleError, "built-in library %q is not implemented", module)
	}

	fn, ok := mathBuiltins[call.Name]
	if !ok {
		return nil, steelerr.New(steelerr.ModuleError, "built-in function %q is not implemented in module %q", call.Name, module)
	}

	if len(call.Args) != 1 {
		return nil, steelerr.New(steelerr.ArityError, "math.%s: expected 1 argument, got %d", call.Name, len(call.Args))
	}
	arg, err := e.Eval(call.Args[0], scope)
	if err != nil {
		return nil, err
	}
	f, err := toFloat(arg)
	if err != nil {
		return nil, err
	}
	return &ast.FloatLit{Value: fn(f)}, nil
}

var mathBuiltins = map[string]func(float64) float64{
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"floor": math.Floor,
}
