package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoghasbhardwaj/steel/ast"
	"github.com/amoghasbhardwaj/steel/lexer"
	"github.com/amoghasbhardwaj/steel/steelerr"
)

func parseOK(t *testing.T, src string) *ast.Compound {
	t.Helper()
	global := ast.NewScope(nil)
	p := New(lexer.New(src), global)
	program, err := p.ParseProgram()
	require.NoError(t, err)
	return program
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	global := ast.NewScope(nil)
	p := New(lexer.New(src), global)
	_, err := p.ParseProgram()
	require.Error(t, err)
	return err
}

func TestParseVarDefInfersLiteralType(t *testing.T) {
	program := parseOK(t, "int x = 41;")
	require.Len(t, program.Statements, 1)
	def := program.Statements[0].(*ast.VarDef)
	assert.Equal(t, "x", def.Name)
	assert.Equal(t, ast.IntT(), def.Type)
	assert.Equal(t, int32(41), def.Init.(*ast.IntLit).Value)
}

func TestParseVarDefAllowsIntToFloatWidening(t *testing.T) {
	program := parseOK(t, "float pi = 3;")
	def := program.Statements[0].(*ast.VarDef)
	assert.Equal(t, ast.FloatT(), def.Type)
}

func TestParseVarDefTypeMismatchIsTypeError(t *testing.T) {
	err := parseErr(t, `int x = "nope";`)
	serr, ok := err.(*steelerr.Error)
	require.True(t, ok)
	assert.Equal(t, steelerr.TypeError, serr.Kind)
}

func TestParseArrayDefChecksElementTypes(t *testing.T) {
	program := parseOK(t, "float[] xs = [1.0, 2, 3.0];")
	def := program.Statements[0].(*ast.ArrayDef)
	assert.Equal(t, ast.FloatT(), def.ElemType)
	require.Len(t, def.Elements, 3)
}

func TestParseArrayDefElementTypeMismatch(t *testing.T) {
	err := parseErr(t, `int[] xs = [1, "two"];`)
	serr := err.(*steelerr.Error)
	assert.Equal(t, steelerr.TypeError, serr.Kind)
}

func TestParseFunctionDefAndCall(t *testing.T) {
	program := parseOK(t, `
fun add(int a, int b) {
	return a + b;
}
println(add(2, 3));
`)
	require.Len(t, program.Statements, 2)
	fd := program.Statements[0].(*ast.FunctionDef)
	assert.Equal(t, "add", fd.Name)
	require.Len(t, fd.Params, 2)
}

// Call-site arity and argument types are checked by the evaluator when
// the call runs, not by the parser; see the evaluator's tests.
func TestParseFunctionCallWrongArityIsLeftToEvaluator(t *testing.T) {
	program := parseOK(t, `
fun add(int a, int b) {
	return a + b;
}
add(1);
`)
	call := program.Statements[1].(*ast.FunctionCall)
	assert.Len(t, call.Args, 1)
}

func TestParseFunctionCallArgumentTypeMismatchIsLeftToEvaluator(t *testing.T) {
	program := parseOK(t, `
fun add(int a, int b) {
	return a + b;
}
add(1, "two");
`)
	call := program.Statements[1].(*ast.FunctionCall)
	assert.Equal(t, "two", call.Args[1].(*ast.StringLit).Value)
}

func TestParseIfWhileFor(t *testing.T) {
	program := parseOK(t, `
if (true) {
	int a = 1;
} else {
	int a = 2;
}
while (false) {
	break;
}
for (int i = 0; i < 10; i++) {
	println(i);
}
`)
	require.Len(t, program.Statements, 3)
	_, ok := program.Statements[0].(*ast.If)
	assert.True(t, ok)
	_, ok = program.Statements[1].(*ast.While)
	assert.True(t, ok)
	forNode, ok := program.Statements[2].(*ast.For)
	require.True(t, ok)
	assert.NotNil(t, forNode.Init)
	assert.NotNil(t, forNode.Incr)
}

func TestParseClassDefAndInstantiation(t *testing.T) {
	program := parseOK(t, `
class Point(int x, int y) {
	fun sum() {
		return x + y;
	}
}
Point p = new Point(1, 2);
println(p.sum());
`)
	require.Len(t, program.Statements, 3)
	cd := program.Statements[0].(*ast.ClassDef)
	assert.Equal(t, "Point", cd.Name)
	require.Len(t, cd.Params, 2)

	def := program.Statements[1].(*ast.VarDef)
	assert.Equal(t, "Point", def.ClassName)
	inst := def.Init.(*ast.ClassInstance)
	assert.Equal(t, "Point", inst.ClassName)
}

// Constructor arity is checked by the evaluator, not the parser.
func TestParseClassInstantiationArityIsLeftToEvaluator(t *testing.T) {
	program := parseOK(t, `
class Point(int x, int y) {}
Point p = new Point(1);
`)
	inst := program.Statements[1].(*ast.VarDef).Init.(*ast.ClassInstance)
	assert.Len(t, inst.Args, 1)
}

func TestParseReassignIncrementDecrement(t *testing.T) {
	program := parseOK(t, `
int x = 0;
x = x + 1;
x++;
x--;
`)
	require.Len(t, program.Statements, 4)
	_, ok := program.Statements[1].(*ast.Reassign)
	assert.True(t, ok)
	_, ok = program.Statements[2].(*ast.Increment)
	assert.True(t, ok)
	_, ok = program.Statements[3].(*ast.Decrement)
	assert.True(t, ok)
}

func TestParseArrayAccessReadAndWrite(t *testing.T) {
	program := parseOK(t, `
float[] xs = [1.0, 2.5, 3.0];
xs[1] = 9.5;
println(xs[1]);
`)
	write := program.Statements[1].(*ast.ArrayAccess)
	assert.NotNil(t, write.AssignValue)
}

func TestParseImportBuiltinAndUser(t *testing.T) {
	program := parseOK(t, `
import <math>;
import "helpers";
`)
	builtin := program.Statements[0].(*ast.Import)
	assert.True(t, builtin.IsBuiltin)
	assert.Equal(t, "math", builtin.Name)

	user := program.Statements[1].(*ast.Import)
	assert.False(t, user.IsBuiltin)
	assert.Equal(t, "helpers", user.Name)
}

func TestParseUndefinedVariableIsNameError(t *testing.T) {
	err := parseErr(t, "int x = y;")
	serr := err.(*steelerr.Error)
	assert.Equal(t, steelerr.NameError, serr.Kind)
}

func TestParseExponentIsRightAssociative(t *testing.T) {
	global := ast.NewScope(nil)
	p := New(lexer.New("2 ^ 3 ^ 2"), global)
	expr, err := p.parseExpression()
	require.NoError(t, err)
	bin := expr.(*ast.Binary)
	_, rightIsBinary := bin.Right.(*ast.Binary)
	assert.True(t, rightIsBinary, "exponent must associate to the right")
}
