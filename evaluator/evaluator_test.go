package evaluator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoghasbhardwaj/steel/ast"
	"github.com/amoghasbhardwaj/steel/lexer"
	"github.com/amoghasbhardwaj/steel/parser"
	"github.com/amoghasbhardwaj/steel/steelerr"
)

// run parses and evaluates src end-to-end against a fresh global Scope,
// returning whatever print/println wrote to the Evaluator's Writer.
func run(t *testing.T, src string) string {
	t.Helper()
	global := ast.NewScope(nil)
	p := parser.New(lexer.New(src), global)
	program, err := p.ParseProgram()
	require.NoError(t, err)

	var buf bytes.Buffer
	ev := New(&buf, nil)
	_, err = ev.Eval(program, global)
	require.NoError(t, err)
	return buf.String()
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	global := ast.NewScope(nil)
	p := parser.New(lexer.New(src), global)
	program, err := p.ParseProgram()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	ev := New(&buf, nil)
	_, err = ev.Eval(program, global)
	require.Error(t, err)
	return err
}

func TestEvalReassignAddsOne(t *testing.T) {
	out := run(t, `int x = 41; x = x + 1; println(x);`)
	assert.Equal(t, "42\n", out)
}

func TestEvalFunctionCallAdds(t *testing.T) {
	out := run(t, `
fun add(int a, int b) {
	return a + b;
}
println(add(2, 3));
`)
	assert.Equal(t, "5\n", out)
}

func TestEvalForLoopPrintsEachIteration(t *testing.T) {
	out := run(t, `for (int i = 0; i < 3; i++) { println(i); };`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEvalArrayWriteFormatsAtFixedFloatWidth(t *testing.T) {
	out := run(t, `
float[] xs = [1.0, 2.5, 3.0];
xs[1] = 9.5;
println(xs[1]);
`)
	assert.Equal(t, "9.50\n", out)
}

func TestEvalClassMethodSeesFieldsUnqualified(t *testing.T) {
	out := run(t, `
class Point(int x, int y) {
	fun sum() {
		return x + y;
	}
}
Point p = new Point(3, 4);
println(p.sum());
`)
	assert.Equal(t, "7\n", out)
}

func TestEvalClassFieldWriteViaDotChain(t *testing.T) {
	out := run(t, `
class Point(int x, int y) {
}
Point p = new Point(1, 1);
p.x = 5;
println(p.x);
`)
	assert.Equal(t, "5\n", out)
}

func TestEvalBuiltinMathSqrt(t *testing.T) {
	out := run(t, `import <math>; println(math.sqrt(9));`)
	assert.Equal(t, "3.00\n", out)
}

func TestEvalScopeUpdatePropagatesToOuterScope(t *testing.T) {
	out := run(t, `
int count = 0;
for (int i = 0; i < 3; i++) {
	count = count + 1;
}
println(count);
`)
	assert.Equal(t, "3\n", out)
}

func TestEvalReturnUnwrapsToValue(t *testing.T) {
	out := run(t, `
fun f() {
	return 99;
}
println(f());
`)
	assert.Equal(t, "99\n", out)
}

func TestEvalFunctionWithNoReturnYieldsNoOp(t *testing.T) {
	out := run(t, `
fun f() {
	int a = 1;
}
println(f());
`)
	assert.Equal(t, "\n", out)
}

func TestEvalTruthinessZeroIntTakesElse(t *testing.T) {
	out := run(t, `if (0) { println("a"); } else { println("b"); }`)
	assert.Equal(t, "b\n", out)
}

func TestEvalTruthinessZeroFloatTakesElse(t *testing.T) {
	out := run(t, `if (0.0) { println("a"); } else { println("b"); }`)
	assert.Equal(t, "b\n", out)
}

func TestEvalTruthinessFalseTakesElse(t *testing.T) {
	out := run(t, `if (false) { println("a"); } else { println("b"); }`)
	assert.Equal(t, "b\n", out)
}

func TestEvalArithmeticIntIntIsInt(t *testing.T) {
	out := run(t, `println(2 + 3);`)
	assert.Equal(t, "5\n", out)
}

func TestEvalArithmeticWithFloatOperandIsFloat(t *testing.T) {
	out := run(t, `println(2 + 3.0);`)
	assert.Equal(t, "5.00\n", out)
}

func TestEvalArrayOutOfBoundsIsBoundsError(t *testing.T) {
	err := runErr(t, `
int[] xs = [1, 2, 3];
println(xs[5]);
`)
	serr, ok := err.(*steelerr.Error)
	require.True(t, ok)
	assert.Equal(t, steelerr.BoundsError, serr.Kind)
}

func TestEvalArrayNegativeIndexIsBoundsError(t *testing.T) {
	err := runErr(t, `
int[] xs = [1, 2, 3];
println(xs[-1]);
`)
	serr, ok := err.(*steelerr.Error)
	require.True(t, ok)
	assert.Equal(t, steelerr.BoundsError, serr.Kind)
}

func TestEvalOperatorPrecedenceMultiplicationBeforeAddition(t *testing.T) {
	out := run(t, `println(2 + 3 * 4);`)
	assert.Equal(t, "14\n", out)
}

func TestEvalOperatorPrecedenceParensOverridePrecedence(t *testing.T) {
	out := run(t, `println((2 + 3) * 4);`)
	assert.Equal(t, "20\n", out)
}

func TestEvalOperatorPrecedenceExponentIsRightAssociative(t *testing.T) {
	out := run(t, `println(2 ^ 3 ^ 2);`)
	assert.Equal(t, "512\n", out)
}

func TestEvalIntegerEqualityIsExact(t *testing.T) {
	out := run(t, `println(1 == 1);`)
	assert.Equal(t, "true\n", out)
}

func TestEvalFloatEqualityUsesEpsilon(t *testing.T) {
	out := run(t, `println(0.1 + 0.2 == 0.3);`)
	assert.Equal(t, "true\n", out)
}

func TestEvalFloatInequalityUsesEpsilon(t *testing.T) {
	out := run(t, `println(1.0 == 2.0);`)
	assert.Equal(t, "false\n", out)
}

func TestEvalWhileLoopBreak(t *testing.T) {
	out := run(t, `
int i = 0;
while (true) {
	if (i == 3) {
		break;
	}
	println(i);
	i++;
}
`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEvalStringConcatenation(t *testing.T) {
	out := run(t, `println("foo" + "bar");`)
	assert.Equal(t, "foobar\n", out)
}

func TestEvalNotOnNumericReturnsInt(t *testing.T) {
	out := run(t, `println(!0); println(!1);`)
	assert.Equal(t, "1\n0\n", out)
}

func TestEvalFunctionCallWrongArityIsArityError(t *testing.T) {
	err := runErr(t, `
fun add(int a, int b) {
	return a + b;
}
add(1);
`)
	serr, ok := err.(*steelerr.Error)
	require.True(t, ok)
	assert.Equal(t, steelerr.ArityError, serr.Kind)
}

func TestEvalFunctionCallArgumentTypeMismatchIsTypeError(t *testing.T) {
	err := runErr(t, `
fun add(int a, int b) {
	return a + b;
}
add(1, "two");
`)
	serr, ok := err.(*steelerr.Error)
	require.True(t, ok)
	assert.Equal(t, steelerr.TypeError, serr.Kind)
}

func TestEvalClassInstantiationWrongArityIsArityError(t *testing.T) {
	err := runErr(t, `
class Point(int x, int y) {}
Point p = new Point(1);
`)
	serr, ok := err.(*steelerr.Error)
	require.True(t, ok)
	assert.Equal(t, steelerr.ArityError, serr.Kind)
}

func TestEvalDivisionByZeroIsRuntimeError(t *testing.T) {
	err := runErr(t, `println(1 / 0);`)
	serr, ok := err.(*steelerr.Error)
	require.True(t, ok)
	assert.Equal(t, steelerr.RuntimeErr, serr.Kind)
}

func TestEvalUndefinedVariableAtRuntimeIsNameError(t *testing.T) {
	// A fresh Scope lets an undefined reference reach the evaluator
	// rather than being caught at parse time.
	global := ast.NewScope(nil)
	variable := &ast.Variable{Name: "ghost"}
	ev := New(&bytes.Buffer{}, nil)
	_, err := ev.Eval(variable, global)
	require.Error(t, err)
	serr, ok := err.(*steelerr.Error)
	require.True(t, ok)
	assert.Equal(t, steelerr.NameError, serr.Kind)
}
