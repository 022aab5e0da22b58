package evaluator

import (
	"github.com/amoghasbhardwaj/steel/ast"
	"github.com/amoghasbhardwaj/steel/lexer"
	"github.com/amoghasbhardwaj/steel/parser"
)

// parseModule parses a user module's source directly into the
// importing scope (spec §4.4's "tokenize+parse in the importing
// Scope"): a user import flattens the module's top-level definitions
// into the caller's own Scope rather than creating a separate
// namespace, so a module's functions and classes become ordinary names
// at the import site.
func parseModule(src string, importingScope *ast.Scope) (*ast.Compound, error) {
	p := parser.New(lexer.New(src), importingScope)
	return p.ParseProgram()
}
