/*
File    : go-kinp/scope/scope.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/

// Package scope implements the environment chain that gives Kinp its
// lexical scoping and closures.
package scope

import "github.com/markoegea/go-kinp/objects"

// Scope is one frame of the environment chain: its own bindings plus an
// optional link to the enclosing frame.
//
// Lookup walks the chain from innermost to outermost, so inner frames
// shadow outer ones. Binding always inserts into the innermost frame.
// Closures retain a reference to the frame active at their construction
// (never a copy), which is what lets a function defined at scope E keep
// reading E's variables after E's block has finished executing.
type Scope struct {
	// Variables maps names to their current values in this frame
	Variables map[string]objects.Object

	// Parent points to the enclosing frame; nil marks the global frame
	Parent *Scope
}

// NewScope creates a frame whose lookups fall through to parent.
// Pass nil for the global frame.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.Object),
		Parent:    parent,
	}
}

// LookUp searches for a name in this frame and then up the chain.
// It returns the bound value and whether the name was found anywhere.
func (s *Scope) LookUp(varName string) (objects.Object, bool) {
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind inserts a binding into this frame only, shadowing any binding of
// the same name in outer frames. Rebinding an existing name in the same
// frame overwrites it.
func (s *Scope) Bind(varName string, obj objects.Object) {
	s.Variables[varName] = obj
}
