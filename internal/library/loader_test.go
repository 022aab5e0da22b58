package library

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoghasbhardwaj/steel/steelerr"
)

func TestFSLoaderAppendsDefaultExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"helpers.steel": &fstest.MapFile{Data: []byte(`fun noop() {}`)},
	}
	l := NewFSLoader(fsys)

	src, err := l.Load("helpers")
	require.NoError(t, err)
	assert.Equal(t, "fun noop() {}", src)
}

func TestFSLoaderHonorsExplicitExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"helpers.steel": &fstest.MapFile{Data: []byte(`fun noop() {}`)},
	}
	l := NewFSLoader(fsys)

	src, err := l.Load("helpers.steel")
	require.NoError(t, err)
	assert.Equal(t, "fun noop() {}", src)
}

func TestFSLoaderMissingModuleIsModuleError(t *testing.T) {
	l := NewFSLoader(fstest.MapFS{})

	_, err := l.Load("ghost")
	require.Error(t, err)
	serr, ok := err.(*steelerr.Error)
	require.True(t, ok)
	assert.Equal(t, steelerr.ModuleError, serr.Kind)
}
