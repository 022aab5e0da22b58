// Package library implements the external module-resolution collaborator
// the evaluator calls on an unseen user import (spec §6, "User module
// discovery"). It is kept to the narrow "opaque loader returning source
// text by name" contract the spec describes — no registry, no caching
// across runs, no network.
package library

import (
	"io/fs"
	"strings"

	"github.com/amoghasbhardwaj/steel/steelerr"
)

// Loader resolves a user import name to Steel source text.
type Loader interface {
	Load(name string) (string, error)
}

// FSLoader resolves modules from a single root filesystem, so callers
// can point it at an OS directory (os.DirFS) or an in-memory one
// (fstest.MapFS) without the evaluator knowing the difference.
type FSLoader struct {
	FS  fs.FS
	// Ext is appended to a module name that doesn't already carry it.
	Ext string
}

// NewFSLoader builds an FSLoader rooted at fsys, defaulting to the
// ".steel" extension.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{FS: fsys, Ext: ".steel"}
}

func (l *FSLoader) Load(name string) (string, error) {
	path := name
	if l.Ext != "" && !strings.HasSuffix(path, l.Ext) {
		path += l.Ext
	}
	data, err := fs.ReadFile(l.FS, path)
	if err != nil {
		return "", steelerr.Wrap(steelerr.ModuleError, err, "cannot load module %q", name)
	}
	return string(data), nil
}
