package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoghasbhardwaj/steel/steelerr"
)

func TestScopeLookupVariableWalksParentChain(t *testing.T) {
	root := NewScope(nil)
	root.InsertVariable(&VarDef{Name: "x", Type: IntT(), Init: &IntLit{Value: 1}})

	child := NewScope(root)
	child.InsertVariable(&VarDef{Name: "y", Type: IntT(), Init: &IntLit{Value: 2}})

	got, ok := child.LookupVariable("x")
	require.True(t, ok)
	assert.Equal(t, "x", got.BindingName())

	_, ok = root.LookupVariable("y")
	assert.False(t, ok, "child bindings must not leak into the parent")
}

func TestScopeInsertVariableShadowsLocally(t *testing.T) {
	root := NewScope(nil)
	root.InsertVariable(&VarDef{Name: "x", Type: IntT(), Init: &IntLit{Value: 1}})
	root.InsertVariable(&VarDef{Name: "x", Type: IntT(), Init: &IntLit{Value: 2}})

	got, ok := root.LookupVariable("x")
	require.True(t, ok)
	def := got.(*VarDef)
	assert.Equal(t, int32(2), def.Init.(*IntLit).Value)
}

func TestScopeUpdateVariableMutatesDefiningScope(t *testing.T) {
	outer := NewScope(nil)
	outer.InsertVariable(&VarDef{Name: "count", Type: IntT(), Init: &IntLit{Value: 0}})
	inner := NewScope(outer)

	err := inner.UpdateVariable("count", &VarDef{Name: "count", Type: IntT(), Init: &IntLit{Value: 5}})
	require.NoError(t, err)

	got, ok := outer.LookupVariable("count")
	require.True(t, ok)
	assert.Equal(t, int32(5), got.(*VarDef).Init.(*IntLit).Value)
}

func TestScopeUpdateVariableUndefinedIsNameError(t *testing.T) {
	root := NewScope(nil)
	err := root.UpdateVariable("nope", &VarDef{Name: "nope", Type: IntT()})
	require.Error(t, err)
	serr, ok := err.(*steelerr.Error)
	require.True(t, ok)
	assert.Equal(t, steelerr.NameError, serr.Kind)
}

func TestScopeLookupFunctionAndClass(t *testing.T) {
	root := NewScope(nil)
	fd := &FunctionDef{Name: "add", DefScope: NewScope(root)}
	cd := &ClassDef{Name: "Point", DefScope: NewScope(root)}
	root.InsertFunction(fd)
	root.InsertClass(cd)

	gotFn, ok := root.LookupFunction("add")
	require.True(t, ok)
	assert.Same(t, fd, gotFn)

	gotCls, ok := root.LookupClass("Point")
	require.True(t, ok)
	assert.Same(t, cd, gotCls)
}

func TestScopeUpdateImportReplacesByName(t *testing.T) {
	root := NewScope(nil)
	root.UpdateImport(&Import{Name: "math", IsBuiltin: true})
	root.UpdateImport(&Import{Name: "math", IsBuiltin: true, Module: &Compound{}})

	got, ok := root.LookupImport("math")
	require.True(t, ok)
	assert.NotNil(t, got.Module)
}
