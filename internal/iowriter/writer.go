// Package iowriter supplies the concrete Writer the evaluator's
// print/println built-ins write through (spec §4.5 calls it out as an
// external collaborator, deliberately left un-opinionated by the core
// evaluator).
package iowriter

import (
	"bufio"
	"io"
)

// Buffered wraps an io.Writer with buffering, mirroring the teacher's
// own bufio-backed REPL output. Callers must Flush when done (the CLI
// defers it; the REPL writes to its output directly and does not use
// Buffered).
type Buffered struct {
	*bufio.Writer
}

// NewBuffered wraps w for buffered writes.
func NewBuffered(w io.Writer) *Buffered {
	return &Buffered{Writer: bufio.NewWriter(w)}
}
