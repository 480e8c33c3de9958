/*
File    : go-kinp/function/function.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/

// Package function defines the user-defined function value. It lives in
// its own package because a function value needs both the parser's AST
// types (parameters, body) and the scope chain, neither of which may
// import the other through objects.
package function

import (
	"fmt"
	"strings"

	"github.com/markoegea/go-kinp/objects"
	"github.com/markoegea/go-kinp/parser"
	"github.com/markoegea/go-kinp/scope"
)

// Function is a closure: the parameter list and body from the
// procedimiento/metodo literal, paired with the scope that was active
// when the literal was evaluated. Calling it extends that captured
// scope, never the caller's.
type Function struct {
	Params []*parser.IdentifierExpressionNode // parameter names, in order
	Body   *parser.BlockStatementNode         // statements to execute per call
	Scp    *scope.Scope                       // defining scope, shared not copied
}

// Type returns the function object type.
func (f *Function) Type() objects.ObjectType {
	return objects.FunctionType
}

// Inspect renders the function the way the REPL shows it:
//
//	procedimiento(x, y) {
//	(x + y)
//	}
func (f *Function) Inspect() string {
	params := make([]string, 0, len(f.Params))
	for _, param := range f.Params {
		params = append(params, param.String())
	}
	return fmt.Sprintf("procedimiento(%s) {\n%s\n}", strings.Join(params, ", "), f.Body.String())
}
