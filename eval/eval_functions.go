/*
File    : go-kinp/eval/eval_functions.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/
package eval

import (
	"github.com/markoegea/go-kinp/function"
	"github.com/markoegea/go-kinp/objects"
	"github.com/markoegea/go-kinp/parser"
	"github.com/markoegea/go-kinp/scope"
	"github.com/markoegea/go-kinp/std"
)

// evalIdentifier resolves a name against the scope chain first and the
// builtin registry second, so user bindings shadow natives.
func (e *Evaluator) evalIdentifier(n *parser.IdentifierExpressionNode, env *scope.Scope) objects.Object {
	if value, ok := env.LookUp(n.Name); ok {
		return value
	}
	if builtin, ok := e.Builtins[n.Name]; ok {
		return builtin
	}
	return createError(unknownIdentifier, n.Name)
}

// evalLambdaExpression produces a function value closing over the
// current scope.
func (e *Evaluator) evalLambdaExpression(n *parser.LambdaExpressionNode, env *scope.Scope) objects.Object {
	return &function.Function{
		Params: n.Params,
		Body:   n.Body,
		Scp:    env,
	}
}

// evalFunctionExpression produces a function value like a lambda, and
// additionally binds it under its name in the current frame so it can
// call itself recursively.
func (e *Evaluator) evalFunctionExpression(n *parser.FunctionExpressionNode, env *scope.Scope) objects.Object {
	fn := &function.Function{
		Params: n.Params,
		Body:   n.Body,
		Scp:    env,
	}
	env.Bind(n.Name.Name, fn)
	return fn
}

// evalCallExpression evaluates the callee, then the arguments in source
// order (the first error wins), and applies.
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode, env *scope.Scope) objects.Object {
	callee := e.Eval(n.Function, env)
	if isError(callee) {
		return callee
	}

	args, errObj := e.evalExpressions(n.Arguments, env)
	if errObj != nil {
		return errObj
	}

	return e.applyFunction(callee, args)
}

// evalExpressions evaluates a list of expressions left to right,
// stopping at the first error.
func (e *Evaluator) evalExpressions(expressions []parser.ExpressionNode, env *scope.Scope) ([]objects.Object, objects.Object) {
	result := make([]objects.Object, 0, len(expressions))

	for _, expression := range expressions {
		evaluated := e.Eval(expression, env)
		if isError(evaluated) {
			return nil, evaluated
		}
		result = append(result, evaluated)
	}

	return result, nil
}

// applyFunction invokes a callable value with already-evaluated
// arguments. For a user function it builds the activation frame over the
// closure's captured scope (never the caller's), evaluates the body and
// unwraps a Return wrapper; a builtin is handed the arguments directly.
func (e *Evaluator) applyFunction(callee objects.Object, args []objects.Object) objects.Object {
	switch callee := callee.(type) {
	case *function.Function:
		if len(args) != len(callee.Params) {
			return createError(wrongNumberOfArgs, len(callee.Params), len(args))
		}
		extended := extendFunctionScope(callee, args)
		evaluated := e.Eval(callee.Body, extended)
		return unwrapReturnValue(evaluated)
	case *std.Builtin:
		return callee.Callback(e, e.Writer, args...)
	default:
		return createError(notAFunction, callee.Type())
	}
}

// extendFunctionScope builds the activation frame: a fresh scope whose
// parent is the function's captured scope, with each parameter bound to
// its argument by position.
func extendFunctionScope(fn *function.Function, args []objects.Object) *scope.Scope {
	extended := scope.NewScope(fn.Scp)
	for idx, param := range fn.Params {
		extended.Bind(param.Name, args[idx])
	}
	return extended
}

// unwrapReturnValue strips the Return wrapper at the activation
// boundary, keeping it invisible outside the call.
func unwrapReturnValue(obj objects.Object) objects.Object {
	if returned, ok := obj.(*objects.Return); ok {
		return returned.Value
	}
	return obj
}
