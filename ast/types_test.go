package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignableFromIntToFloatWidening(t *testing.T) {
	assert.True(t, FloatT().AssignableFrom(IntT()))
	assert.False(t, IntT().AssignableFrom(FloatT()), "narrowing FLOAT->INT is not legal")
	assert.True(t, IntT().AssignableFrom(IntT()))
	assert.False(t, BoolT().AssignableFrom(IntT()))
}

func TestAssignableFromArrayElementWidening(t *testing.T) {
	floats := ArrayT(FloatT())
	ints := ArrayT(IntT())
	assert.True(t, floats.AssignableFrom(ints))
	assert.False(t, ints.AssignableFrom(floats))
}

func TestAssignableFromCustomRequiresSameClass(t *testing.T) {
	a := CustomT("Point")
	b := CustomT("Point")
	c := CustomT("Vector")
	assert.True(t, a.AssignableFrom(b))
	assert.False(t, a.AssignableFrom(c))
}

func TestDataTypeFromKeyword(t *testing.T) {
	dt, err := DataTypeFromKeyword("float")
	require.NoError(t, err)
	assert.Equal(t, FloatT(), dt)

	_, err = DataTypeFromKeyword("Point")
	assert.Error(t, err)
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "int", IntT().String())
	assert.Equal(t, "float[]", ArrayT(FloatT()).String())
	assert.Equal(t, "Point", CustomT("Point").String())
}
