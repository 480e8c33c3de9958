/*
File    : go-kinp/eval/evaluator.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/

// Package eval implements the tree-walking evaluator for Kinp.
//
// Evaluation is recursive, depth-first and left-to-right, against an
// explicit scope chain. Every user-reachable failure is an objects.Error
// value that propagates unchanged to the top level; the evaluator never
// panics for program-level mistakes.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/markoegea/go-kinp/objects"
	"github.com/markoegea/go-kinp/parser"
	"github.com/markoegea/go-kinp/scope"
	"github.com/markoegea/go-kinp/std"
)

// Error message templates for the evaluator's diagnostics.
const (
	notAFunction           = "Poseemos un problema, no es una funcion: %s"
	typeMismatch           = "Poseemos un problema, no puedo ejecutar %s %s %s"
	unknownPrefixOperation = "Poseemos un problema, no puedo operar %s%s"
	unknownInfixOperation  = "Poseemos un problema, no puedo operar %s %s %s"
	unknownIdentifier      = `Poseemos un problema, que es "%s"?`
	wrongNumberOfArgs      = "Poseemos un problema, numero incorrecto de argumentos, se requeria %d, pero se recibio %d"
	divisionByZero         = "Poseemos un problema, no se puede dividir por cero"
)

// Evaluator is the execution engine. It owns the builtin registry and
// the writer/reader the native functions print to and read from; the
// scope chain travels through Eval explicitly so closures can capture
// frames.
type Evaluator struct {
	Builtins map[string]*std.Builtin // native functions, indexed by name
	Writer   io.Writer               // output for imprimir/recibir (default os.Stdout)
	Reader   *bufio.Reader           // input for recibir (default os.Stdin)
}

// NewEvaluator creates an evaluator wired to the process's standard
// streams with every registered builtin available.
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Builtins: make(map[string]*std.Builtin),
		Writer:   os.Stdout,
		Reader:   bufio.NewReader(os.Stdin),
	}
	for _, builtin := range std.Builtins {
		ev.Builtins[builtin.Name] = builtin
	}
	return ev
}

// SetWriter redirects the output of the native functions, e.g. to a
// buffer in tests or to the REPL's writer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects the input of `recibir`.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// GetInputReader returns the buffered input reader.
// This implements the std.Runtime interface.
func (e *Evaluator) GetInputReader() *bufio.Reader {
	return e.Reader
}

// Eval evaluates an AST node against the given scope and always returns
// a value; statements with nothing to say return the interned NULL.
func (e *Evaluator) Eval(n parser.Node, env *scope.Scope) objects.Object {
	switch n := n.(type) {
	case *parser.RootNode:
		return e.evalProgram(n, env)
	case *parser.ExpressionStatementNode:
		if n.Expression == nil {
			return objects.NULL
		}
		return e.Eval(n.Expression, env)
	case *parser.IntegerLiteralExpressionNode:
		return &objects.Integer{Value: n.Value}
	case *parser.FloatLiteralExpressionNode:
		return &objects.Float{Value: n.Value}
	case *parser.StringLiteralExpressionNode:
		return &objects.String{Value: n.Value}
	case *parser.BooleanLiteralExpressionNode:
		return toBooleanObject(n.Value)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n, env)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n, env)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n, env)
	case *parser.IfExpressionNode:
		return e.evalIfExpression(n, env)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n, env)
	case *parser.LetStatementNode:
		return e.evalLetStatement(n, env)
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifier(n, env)
	case *parser.LambdaExpressionNode:
		return e.evalLambdaExpression(n, env)
	case *parser.FunctionExpressionNode:
		return e.evalFunctionExpression(n, env)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n, env)
	default:
		return objects.NULL
	}
}

// evalProgram runs the top-level statements in order. It stops at the
// first error, and unwraps a Return wrapper into its payload so a
// top-level `regresa` yields the bare value.
func (e *Evaluator) evalProgram(root *parser.RootNode, env *scope.Scope) objects.Object {
	var result objects.Object = objects.NULL

	for _, statement := range root.Statements {
		result = e.Eval(statement, env)

		switch result := result.(type) {
		case *objects.Error:
			return result
		case *objects.Return:
			return result.Value
		}
	}

	return result
}

// evalBlockStatement runs a block's statements in the enclosing scope.
// Unlike evalProgram it passes a Return wrapper through unchanged, so
// the call site that owns the activation can unwrap it.
func (e *Evaluator) evalBlockStatement(block *parser.BlockStatementNode, env *scope.Scope) objects.Object {
	var result objects.Object = objects.NULL

	for _, statement := range block.Statements {
		result = e.Eval(statement, env)

		if result != nil {
			resultType := result.Type()
			if resultType == objects.ReturnType || resultType == objects.ErrorType {
				return result
			}
		}
	}

	return result
}

// evalReturnStatement evaluates the payload (nulo when absent) and wraps
// it so enclosing blocks propagate it to the call boundary.
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode, env *scope.Scope) objects.Object {
	var value objects.Object = objects.NULL
	if n.ReturnValue != nil {
		value = e.Eval(n.ReturnValue, env)
		if isError(value) {
			return value
		}
	}
	return &objects.Return{Value: value}
}

// evalLetStatement evaluates the initializer (nulo when absent) and
// binds the name in the current frame.
func (e *Evaluator) evalLetStatement(n *parser.LetStatementNode, env *scope.Scope) objects.Object {
	var value objects.Object = objects.NULL
	if n.Value != nil {
		value = e.Eval(n.Value, env)
		if isError(value) {
			return value
		}
	}
	env.Bind(n.Name.Name, value)
	return objects.NULL
}

// toBooleanObject maps a native bool onto the interned singletons.
func toBooleanObject(value bool) *objects.Boolean {
	if value {
		return objects.TRUE
	}
	return objects.FALSE
}

// isError reports whether a value is a runtime error.
func isError(obj objects.Object) bool {
	return obj != nil && obj.Type() == objects.ErrorType
}

// isTruthy implements Kinp's truthiness rule: the interned TRUE is the
// only truthy value; nulo, falso and every non-boolean value are falsy.
func isTruthy(obj objects.Object) bool {
	return obj == objects.TRUE
}
