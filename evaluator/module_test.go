package evaluator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoghasbhardwaj/steel/ast"
	"github.com/amoghasbhardwaj/steel/lexer"
	"github.com/amoghasbhardwaj/steel/parser"
)

type fakeLoader struct{ sources map[string]string }

func (f *fakeLoader) Load(name string) (string, error) {
	return f.sources[name], nil
}

// A user import flattens the module's top-level definitions directly
// into the importing Scope (no module-qualified namespace), so a
// function defined in the imported source is callable by its bare name
// right after the import statement.
func TestUserImportFlattensDefinitionsIntoImportingScope(t *testing.T) {
	loader := &fakeLoader{sources: map[string]string{
		"helpers": `fun double(int n) { return n * 2; }`,
	}}

	global := ast.NewScope(nil)
	src := `
import "helpers";
println(double(21));
`
	p := parser.New(lexer.New(src), global)
	program, err := p.ParseProgram()
	require.NoError(t, err)

	var buf bytes.Buffer
	ev := New(&buf, loader)
	_, err = ev.Eval(program, global)
	require.NoError(t, err)
	assert.Equal(t, "42\n", buf.String())
}

func TestUserImportIsCachedAndLoadedOnlyOnce(t *testing.T) {
	calls := 0
	loader := &countingLoader{sources: map[string]string{
		"helpers": `fun double(int n) { return n * 2; }`,
	}, calls: &calls}

	global := ast.NewScope(nil)
	src := `
import "helpers";
import "helpers";
println(double(2));
`
	p := parser.New(lexer.New(src), global)
	program, err := p.ParseProgram()
	require.NoError(t, err)

	var buf bytes.Buffer
	ev := New(&buf, loader)
	_, err = ev.Eval(program, global)
	require.NoError(t, err)
	assert.Equal(t, "4\n", buf.String())
	assert.Equal(t, 1, calls, "a second import of the same module must not re-invoke the Loader")
}

type countingLoader struct {
	sources map[string]string
	calls   *int
}

func (c *countingLoader) Load(name string) (string, error) {
	*c.calls++
	return c.sources[name], nil
}
