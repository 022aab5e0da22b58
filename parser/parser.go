// Package parser implements Steel's recursive-descent parser. Besides
// building the AST it resolves type annotations, performs
// declaration-site type checks, and registers definitions into the
// Scope that is live at each point in the source (spec §4.3).
package parser

import (
	"strconv"
	"strings"

	"github.com/amoghasbhardwaj/steel/ast"
	"github.com/amoghasbhardwaj/steel/lexer"
	"github.com/amoghasbhardwaj/steel/steelerr"
	"github.com/amoghasbhardwaj/steel/token"
)

// Parser is a recursive-descent parser with one token of lookahead.
// scope tracks the Scope new nodes are stamped with and definitions are
// registered into; it only changes across function/class/for bodies.
type Parser struct {
	l    *lexer.Lexer
	cur  token.Token
	peek token.Token
	scope *ast.Scope
}

// New creates a Parser over l whose top-level statements are registered
// into global (normally a freshly created root Scope).
func New(l *lexer.Lexer, global *ast.Scope) *Parser {
	p := &Parser{l: l, scope: global}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) expectKind(k token.Kind) error {
	if p.cur.Kind != k {
		return steelerr.New(steelerr.ParseError, "line %d: expected %s, got %s (%q)", p.cur.Line, k, p.cur.Kind, p.cur.Lexeme)
	}
	p.next()
	return nil
}

// ParseProgram parses the whole input as the root Compound.
func (p *Parser) ParseProgram() (*ast.Compound, error) {
	program := &ast.Compound{}
	program.SetScope(p.scope)
	for p.cur.Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
		for p.cur.Kind == token.SEMI {
			p.next()
		}
	}
	// The lexer folds an unrecognized character (or an unterminated
	// comment) into an EOF token with a non-empty lexeme; only a bare EOF
	// is the real end of input.
	if p.cur.Lexeme != "" {
		return nil, steelerr.New(steelerr.ParseError, "line %d: unexpected %q", p.cur.Line, p.cur.Lexeme)
	}
	return program, nil
}

func (p *Parser) parseStatement() (ast.Node, error) {
	return p.parseExpression()
}

func (p *Parser) parseBlock() (*ast.Compound, error) {
	if err := p.expectKind(token.LBRACE); err != nil {
		return nil, err
	}
	comp := &ast.Compound{}
	comp.SetScope(p.scope)
	for p.cur.Kind != token.RBRACE {
		if p.cur.Kind == token.EOF {
			return nil, steelerr.New(steelerr.ParseError, "unexpected EOF, expected }")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		comp.Statements = append(comp.Statements, stmt)
		for p.cur.Kind == token.SEMI {
			p.next()
		}
	}
	return comp, p.expectKind(token.RBRACE)
}

// --- Expression grammar (§4.3), lowest to highest precedence ---

func (p *Parser) parseExpression() (ast.Node, error) { return p.parseOr() }

func (p *Parser) parseOr() (ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.OR {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		b := &ast.Binary{Op: token.OR, Left: left, Right: right}
		b.SetScope(p.scope)
		left = b
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.AND {
		p.next()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		b := &ast.Binary{Op: token.AND, Left: left, Right: right}
		b.SetScope(p.scope)
		left = b
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.EE || p.cur.Kind == token.NEQ {
		op := p.cur.Kind
		p.next()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		b := &ast.Binary{Op: op, Left: left, Right: right}
		b.SetScope(p.scope)
		left = b
	}
	return left, nil
}

func (p *Parser) parseComparison() (ast.Node, error) {
	left, err := p.parseAddition()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.LT || p.cur.Kind == token.GT || p.cur.Kind == token.LEQ || p.cur.Kind == token.GEQ {
		op := p.cur.Kind
		p.next()
		right, err := p.parseAddition()
		if err != nil {
			return nil, err
		}
		b := &ast.Binary{Op: op, Left: left, Right: right}
		b.SetScope(p.scope)
		left = b
	}
	return left, nil
}

func (p *Parser) parseAddition() (ast.Node, error) {
	left, err := p.parseMultiplication()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.ADD || p.cur.Kind == token.SUBTRACT {
		op := p.cur.Kind
		p.next()
		right, err := p.parseMultiplication()
		if err != nil {
			return nil, err
		}
		b := &ast.Binary{Op: op, Left: left, Right: right}
		b.SetScope(p.scope)
		left = b
	}
	return left, nil
}

func (p *Parser) parseMultiplication() (ast.Node, error) {
	left, err := p.parseExponent()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.ASTERISK || p.cur.Kind == token.FSLASH || p.cur.Kind == token.PERCENT {
		op := p.cur.Kind
		p.next()
		right, err := p.parseExponent()
		if err != nil {
			return nil, err
		}
		b := &ast.Binary{Op: op, Left: left, Right: right}
		b.SetScope(p.scope)
		left = b
	}
	return left, nil
}

// parseExponent is right-recursive, making '^' right-associative:
// 2 ^ 3 ^ 2 == 2 ^ (3 ^ 2) == 512.
func (p *Parser) parseExponent() (ast.Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == token.CARET {
		p.next()
		right, err := p.parseExponent()
		if err != nil {
			return nil, err
		}
		b := &ast.Binary{Op: token.CARET, Left: left, Right: right}
		b.SetScope(p.scope)
		return b, nil
	}
	return left, nil
}

func (p *Parser) parseFactor() (ast.Node, error) {
	switch p.cur.Kind {
	case token.INT:
		v, err := strconv.ParseInt(p.cur.Lexeme, 10, 32)
		if err != nil {
			return nil, steelerr.New(steelerr.ParseError, "invalid integer literal %q", p.cur.Lexeme)
		}
		node := &ast.IntLit{Value: int32(v)}
		node.SetScope(p.scope)
		p.next()
		return node, nil

	case token.FLOAT:
		v, err := strconv.ParseFloat(p.cur.Lexeme, 64)
		if err != nil {
			return nil, steelerr.New(steelerr.ParseError, "invalid float literal %q", p.cur.Lexeme)
		}
		node := &ast.FloatLit{Value: v, PastDecimal: fractionDigits(p.cur.Lexeme)}
		node.SetScope(p.scope)
		p.next()
		return node, nil

	case token.BOOL:
		node := &ast.BoolLit{Value: p.cur.Lexeme == token.KwTrue}
		node.SetScope(p.scope)
		p.next()
		return node, nil

	case token.STRING:
		node := &ast.StringLit{Value: p.cur.Lexeme}
		node.SetScope(p.scope)
		p.next()
		return node, nil

	case token.SUBTRACT, token.NOT:
		op := p.cur.Kind
		p.next()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node := &ast.Unary{Op: op, Operand: operand}
		node.SetScope(p.scope)
		return node, nil

	case token.LPAREN:
		p.next()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectKind(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil

	case token.ID:
		return p.parseIDForm()

	default:
		return nil, steelerr.New(steelerr.ParseError, "line %d: unexpected token %s (%q)", p.cur.Line, p.cur.Kind, p.cur.Lexeme)
	}
}

// fractionDigits counts the digits after the decimal point in a numeric
// lexeme, used to reproduce the source's own formatting on println.
func fractionDigits(lexeme string) int {
	i := strings.IndexByte(lexeme, '.')
	if i < 0 {
		return 0
	}
	return len(lexeme) - i - 1
}

// parseIDForm is the id-form dispatch of §4.3: keywords route to their
// dedicated construct, any other identifier is a variable reference
// that may extend into a call, assignment, increment/decrement,
// subscript, or dot-chain.
func (p *Parser) parseIDForm() (ast.Node, error) {
	switch p.cur.Lexeme {
	case token.KwInt, token.KwFloat, token.KwBool, token.KwStr:
		return p.parseVarOrArrayDef()
	case token.KwFun:
		return p.parseFunctionDef()
	case token.KwClass:
		return p.parseClassDef()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwBreak:
		return p.parseBreak()
	case token.KwImport:
		return p.parseImport()
	case token.KwNew:
		return p.parseClassInstance()
	default:
		return p.parseIdentifierForm()
	}
}

// parseVarOrArrayDef parses `type ID [ '=' expr ]` or
// `type '[' ']' ID '=' '[' expr (',' expr)* ']'`.
func (p *Parser) parseVarOrArrayDef() (ast.Node, error) {
	kw := p.cur.Lexeme
	elemType, err := ast.DataTypeFromKeyword(kw)
	if err != nil {
		return nil, steelerr.New(steelerr.ParseError, "%v", err)
	}
	p.next()

	if p.cur.Kind == token.LBRACKET {
		p.next()
		if err := p.expectKind(token.RBRACKET); err != nil {
			return nil, err
		}
		if p.cur.Kind != token.ID {
			return nil, steelerr.New(steelerr.ParseError, "expected array name, got %s", p.cur.Kind)
		}
		name := p.cur.Lexeme
		p.next()
		if err := p.expectKind(token.EQUALS); err != nil {
			return nil, err
		}
		if err := p.expectKind(token.LBRACKET); err != nil {
			return nil, err
		}
		var elems []ast.Node
		for p.cur.Kind != token.RBRACKET {
			el, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elemKind, err := p.inferType(el, p.scope)
			if err != nil {
				return nil, err
			}
			if !elemType.AssignableFrom(elemKind) {
				return nil, steelerr.New(steelerr.TypeError, "array %q: declared element type %s, got %s", name, elemType, elemKind)
			}
			elems = append(elems, el)
			if p.cur.Kind == token.COMMA {
				p.next()
				continue
			}
			break
		}
		if err := p.expectKind(token.RBRACKET); err != nil {
			return nil, err
		}
		def := &ast.ArrayDef{Name: name, ElemType: elemType, Elements: elems}
		def.SetScope(p.scope)
		p.scope.InsertVariable(def)
		return def, nil
	}

	if p.cur.Kind != token.ID {
		return nil, steelerr.New(steelerr.ParseError, "expected variable name, got %s", p.cur.Kind)
	}
	name := p.cur.Lexeme
	p.next()

	def := &ast.VarDef{Name: name, Type: elemType}
	if p.cur.Kind == token.EQUALS {
		p.next()
		init, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		initKind, err := p.inferType(init, p.scope)
		if err != nil {
			return nil, err
		}
		if !elemType.AssignableFrom(initKind) {
			return nil, steelerr.New(steelerr.TypeError, "%s declared as %s but initializer is %s", name, elemType, initKind)
		}
		def.Init = init
	}
	def.SetScope(p.scope)
	p.scope.InsertVariable(def)
	return def, nil
}

// parseIdentifierForm handles everything that starts with a plain
// (non-keyword) identifier: a class-typed variable definition
// (`ClassName obj = new ClassName(...)`), or a variable reference
// possibly extended into a call / reassignment / increment /
// decrement / subscript / dot-chain.
func (p *Parser) parseIdentifierForm() (ast.Node, error) {
	name := p.cur.Lexeme

	if p.peek.Kind == token.ID {
		return p.parseClassTypedVarDef(name)
	}

	p.next()
	var node ast.Node = &ast.Variable{Name: name}
	node.SetScope(p.scope)

	switch p.cur.Kind {
	case token.LPAREN:
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		call := &ast.FunctionCall{Name: name, Args: args}
		call.SetScope(p.scope)
		node = call

	case token.EQUALS:
		p.next()
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		r := &ast.Reassign{Name: name, Value: val}
		r.SetScope(p.scope)
		node = r

	case token.INCREMENT:
		p.next()
		inc := &ast.Increment{Name: name}
		inc.SetScope(p.scope)
		node = inc

	case token.DECREMENT:
		p.next()
		dec := &ast.Decrement{Name: name}
		dec.SetScope(p.scope)
		node = dec

	case token.LBRACKET:
		p.next()
		idx, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectKind(token.RBRACKET); err != nil {
			return nil, err
		}
		aa := &ast.ArrayAccess{Name: name, Index: idx}
		if p.cur.Kind == token.EQUALS {
			p.next()
			val, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			aa.AssignValue = val
		}
		aa.SetScope(p.scope)
		node = aa
	}

	return p.parseDotChain(node)
}

// parseDotChain parses zero or more `.selector` / `.selector(args)`
// extensions, including an optional trailing `= value` write on the
// final field selector.
func (p *Parser) parseDotChain(node ast.Node) (ast.Node, error) {
	for p.cur.Kind == token.DOT {
		p.next()
		if p.cur.Kind != token.ID {
			return nil, steelerr.New(steelerr.ParseError, "expected selector after '.'")
		}
		selName := p.cur.Lexeme
		p.next()

		var selector ast.Node
		if p.cur.Kind == token.LPAREN {
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			fc := &ast.FunctionCall{Name: selName, Args: args}
			fc.SetScope(p.scope)
			selector = fc
		} else {
			v := &ast.Variable{Name: selName}
			v.SetScope(p.scope)
			selector = v
		}

		access := &ast.ClassAccess{Left: node, Right: selector}
		if _, ok := selector.(*ast.Variable); ok && p.cur.Kind == token.EQUALS {
			p.next()
			val, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			access.AssignValue = val
		}
		access.SetScope(p.scope)
		node = access
	}
	return node, nil
}

func (p *Parser) parseClassTypedVarDef(className string) (ast.Node, error) {
	p.next() // consume class name, cur == object name
	objName := p.cur.Lexeme
	p.next()
	if err := p.expectKind(token.EQUALS); err != nil {
		return nil, err
	}
	rhs, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	inst, ok := rhs.(*ast.ClassInstance)
	if !ok || inst.ClassName != className {
		return nil, steelerr.New(steelerr.TypeError, "%s declared as %s but initializer is not a %s instance", objName, className, className)
	}
	if _, ok := p.scope.LookupClass(className); !ok {
		return nil, steelerr.New(steelerr.NameError, "undefined class %q", className)
	}
	def := &ast.VarDef{Name: objName, Type: ast.CustomT(className), Init: rhs, ClassName: className}
	def.SetScope(p.scope)
	p.scope.InsertVariable(def)
	return def, nil
}

func (p *Parser) parseClassInstance() (ast.Node, error) {
	p.next() // consume 'new'
	if p.cur.Kind != token.ID {
		return nil, steelerr.New(steelerr.ParseError, "expected class name after 'new'")
	}
	className := p.cur.Lexeme
	p.next()
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	if _, ok := p.scope.LookupClass(className); !ok {
		return nil, steelerr.New(steelerr.NameError, "undefined class %q", className)
	}
	node := &ast.ClassInstance{ClassName: className, Args: args}
	node.SetScope(p.scope)
	return node, nil
}

// parseArgList parses a parenthesized, comma-separated argument list;
// p.cur must be LPAREN on entry.
func (p *Parser) parseArgList() ([]ast.Node, error) {
	if err := p.expectKind(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Node
	if p.cur.Kind != token.RPAREN {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur.Kind == token.COMMA {
				p.next()
				continue
			}
			break
		}
	}
	return args, p.expectKind(token.RPAREN)
}

func (p *Parser) parseFunctionDef() (ast.Node, error) {
	p.next() // 'fun'
	if p.cur.Kind != token.ID {
		return nil, steelerr.New(steelerr.ParseError, "expected function name")
	}
	name := p.cur.Lexeme
	p.next()
	if err := p.expectKind(token.LPAREN); err != nil {
		return nil, err
	}

	enclosing := p.scope
	fnScope := ast.NewScope(enclosing)
	params, err := p.parseParamList(fnScope)
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.RPAREN); err != nil {
		return nil, err
	}

	fd := &ast.FunctionDef{Name: name, Params: params, DefScope: fnScope}
	fd.SetScope(enclosing)
	enclosing.InsertFunction(fd)

	p.scope = fnScope
	body, err := p.parseBlock()
	p.scope = enclosing
	if err != nil {
		return nil, err
	}
	fd.Body = body
	return fd, nil
}

func (p *Parser) parseClassDef() (ast.Node, error) {
	p.next() // 'class'
	if p.cur.Kind != token.ID {
		return nil, steelerr.New(steelerr.ParseError, "expected class name")
	}
	name := p.cur.Lexeme
	p.next()
	if err := p.expectKind(token.LPAREN); err != nil {
		return nil, err
	}

	enclosing := p.scope
	classScope := ast.NewScope(enclosing)
	params, err := p.parseParamList(classScope)
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.RPAREN); err != nil {
		return nil, err
	}

	cd := &ast.ClassDef{Name: name, Params: params, DefScope: classScope}
	cd.SetScope(enclosing)
	enclosing.InsertClass(cd)

	p.scope = classScope
	body, err := p.parseBlock()
	p.scope = enclosing
	if err != nil {
		return nil, err
	}
	cd.Body = body
	return cd, nil
}

// parseParamList parses `type1 p1, type2 p2, ...`, registering each
// parameter into scope as it goes (used by both function and class
// definitions).
func (p *Parser) parseParamList(scope *ast.Scope) ([]*ast.VarDef, error) {
	var params []*ast.VarDef
	if p.cur.Kind == token.RPAREN {
		return params, nil
	}
	for {
		if p.cur.Kind != token.ID {
			return nil, steelerr.New(steelerr.ParseError, "expected parameter type")
		}
		typeName := p.cur.Lexeme
		dt, err := ast.DataTypeFromKeyword(typeName)
		className := ""
		if err != nil {
			if _, ok := p.scope.LookupClass(typeName); ok {
				dt = ast.CustomT(typeName)
				className = typeName
			} else {
				return nil, steelerr.New(steelerr.ParseError, "unknown parameter type %q", typeName)
			}
		}
		p.next()
		if p.cur.Kind != token.ID {
			return nil, steelerr.New(steelerr.ParseError, "expected parameter name")
		}
		pname := p.cur.Lexeme
		p.next()

		pd := &ast.VarDef{Name: pname, Type: dt, ClassName: className}
		pd.SetScope(scope)
		scope.InsertVariable(pd)
		params = append(params, pd)

		if p.cur.Kind == token.COMMA {
			p.next()
			continue
		}
		break
	}
	return params, nil
}

func (p *Parser) parseIf() (ast.Node, error) {
	p.next() // 'if'
	if err := p.expectKind(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Cond: cond, Then: then}
	if p.cur.Kind == token.ID && p.cur.Lexeme == token.KwElse {
		p.next()
		elseBlk, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Else = elseBlk
	}
	node.SetScope(p.scope)
	return node, nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	p.next() // 'while'
	if err := p.expectKind(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &ast.While{Cond: cond, Body: body}
	node.SetScope(p.scope)
	return node, nil
}

func (p *Parser) parseFor() (ast.Node, error) {
	p.next() // 'for'
	if err := p.expectKind(token.LPAREN); err != nil {
		return nil, err
	}

	enclosing := p.scope
	loopScope := ast.NewScope(enclosing)
	p.scope = loopScope

	var initNode ast.Node
	var err error
	if p.cur.Kind != token.SEMI {
		initNode, err = p.parseExpression()
		if err != nil {
			p.scope = enclosing
			return nil, err
		}
	}
	if err := p.expectKind(token.SEMI); err != nil {
		p.scope = enclosing
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		p.scope = enclosing
		return nil, err
	}
	if err := p.expectKind(token.SEMI); err != nil {
		p.scope = enclosing
		return nil, err
	}

	var incrNode ast.Node
	if p.cur.Kind != token.RPAREN {
		incrNode, err = p.parseExpression()
		if err != nil {
			p.scope = enclosing
			return nil, err
		}
	}
	if err := p.expectKind(token.RPAREN); err != nil {
		p.scope = enclosing
		return nil, err
	}

	body, err := p.parseBlock()
	p.scope = enclosing
	if err != nil {
		return nil, err
	}

	node := &ast.For{Init: initNode, Cond: cond, Incr: incrNode, Body: body}
	node.SetScope(loopScope)
	return node, nil
}

func (p *Parser) parseReturn() (ast.Node, error) {
	p.next() // 'return'
	node := &ast.Return{}
	if p.cur.Kind != token.SEMI && p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.Value = val
	}
	node.SetScope(p.scope)
	return node, nil
}

func (p *Parser) parseBreak() (ast.Node, error) {
	p.next() // 'break'
	node := &ast.Break{}
	node.SetScope(p.scope)
	return node, nil
}

// parseImport parses `import <id>` (built-in) or `import "path"` (user
// module). It records the Import in the current scope; loading a user
// module's source happens lazily, in the evaluator.
func (p *Parser) parseImport() (ast.Node, error) {
	p.next() // 'import'

	if p.cur.Kind == token.LT {
		p.next()
		if p.cur.Kind != token.ID {
			return nil, steelerr.New(steelerr.ParseError, "expected identifier after 'import <'")
		}
		name := p.cur.Lexeme
		p.next()
		if err := p.expectKind(token.GT); err != nil {
			return nil, err
		}
		imp := &ast.Import{Name: name, IsBuiltin: true}
		imp.SetScope(p.scope)
		p.scope.UpdateImport(imp)
		return imp, nil
	}

	if p.cur.Kind == token.STRING {
		name := p.cur.Lexeme
		p.next()
		imp := &ast.Import{Name: name, IsBuiltin: false}
		imp.SetScope(p.scope)
		p.scope.UpdateImport(imp)
		return imp, nil
	}

	return nil, steelerr.New(steelerr.ParseError, "expected '<module>' or \"path\" after import")
}
