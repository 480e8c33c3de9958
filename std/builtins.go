/*
File    : go-kinp/std/builtins.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/

// Package std defines the native functions of the Kinp language and the
// registry the evaluator resolves them from. Builtins are consulted only
// after a name misses the whole environment chain, so a user binding
// named `imprimir` shadows the native one.
package std

import (
	"bufio"
	"io"

	"github.com/markoegea/go-kinp/objects"
)

// Runtime is the window a builtin gets back into the evaluator. It keeps
// std decoupled from the eval package while still letting `recibir` read
// from whatever input the interpreter was wired with.
type Runtime interface {
	GetInputReader() *bufio.Reader
}

// CallbackFunc is the signature of a native function. Arguments arrive
// already evaluated; output goes through the supplied writer so tests and
// the REPL can capture it.
type CallbackFunc func(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object

// Builtin is a native callable. It is itself a runtime value, so it can
// flow through the evaluator like any function.
type Builtin struct {
	Name     string       // the Kinp-visible name (e.g. "imprimir")
	Callback CallbackFunc // the native implementation
}

// Type returns the builtin object type.
func (b *Builtin) Type() objects.ObjectType {
	return objects.BuiltinType
}

// Inspect renders a placeholder; native functions have no source to show.
func (b *Builtin) Inspect() string {
	return "procedimiento interno"
}

// Builtins holds every registered native function. The natives file fills
// it during package initialization; the evaluator indexes it by name.
var Builtins = make([]*Builtin, 0)
