/*
File    : go-kinp/std/natives.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/
package std

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/markoegea/go-kinp/objects"
)

// Error templates shared by the native functions.
const (
	wrongNumberOfArgs       = "Poseemos un problema, numero incorrecto de argumentos, se requeria %d, pero se recibio %d"
	unsupportedArgumentType = "Poseemos un problema, no tengo soporte para %s"
	notCastableToInt        = `Poseemos un problema, "%s" no es numero y no se puede castear`
)

// nativeFunctions lists every builtin of the language. All of them take
// exactly one argument.
var nativeFunctions = []*Builtin{
	{Name: "longitud", Callback: longitud},
	{Name: "imprimir", Callback: imprimir},
	{Name: "recibir", Callback: recibir},
	{Name: "parsearAentero", Callback: parsearAentero},
	{Name: "parsearAtexto", Callback: parsearAtexto},
	{Name: "parsearAbooleano", Callback: parsearAbooleano},
}

func init() {
	Builtins = append(Builtins, nativeFunctions...)
}

// createError builds a Kinp error value from a template.
func createError(format string, a ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, a...)}
}

// longitud returns the number of characters of a string.
//
// Syntax: longitud(texto)
//
// Example:
//
//	longitud("Hola mundo");  /* 10 */
func longitud(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return createError(wrongNumberOfArgs, 1, len(args))
	}
	if str, ok := args[0].(*objects.String); ok {
		return &objects.Integer{Value: int64(utf8.RuneCountInString(str.Value))}
	}
	return createError(unsupportedArgumentType, args[0].Type())
}

// imprimir writes the value's inspection followed by a newline and
// returns nulo.
//
// Syntax: imprimir(valor)
func imprimir(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return createError(wrongNumberOfArgs, 1, len(args))
	}
	fmt.Fprintln(writer, args[0].Inspect())
	return objects.NULL
}

// recibir writes the given prompt, reads one line from the interpreter's
// input and returns it as a string with the line terminator stripped.
//
// Syntax: recibir(mensaje)
func recibir(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return createError(wrongNumberOfArgs, 1, len(args))
	}
	prompt, ok := args[0].(*objects.String)
	if !ok {
		return createError(unsupportedArgumentType, args[0].Type())
	}

	fmt.Fprint(writer, prompt.Value)
	line, _ := rt.GetInputReader().ReadString('\n')
	return &objects.String{Value: strings.TrimRight(line, "\r\n")}
}

// parsearAentero casts a string or a boolean to an integer. A string
// that is not a number is an error; verdadero is 1 and falso is 0.
//
// Syntax: parsearAentero(valor)
func parsearAentero(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return createError(wrongNumberOfArgs, 1, len(args))
	}
	switch arg := args[0].(type) {
	case *objects.String:
		value, err := strconv.ParseInt(arg.Value, 10, 64)
		if err != nil {
			return createError(notCastableToInt, arg.Value)
		}
		return &objects.Integer{Value: value}
	case *objects.Boolean:
		if arg.Value {
			return &objects.Integer{Value: 1}
		}
		return &objects.Integer{Value: 0}
	default:
		return createError(unsupportedArgumentType, args[0].Type())
	}
}

// parsearAtexto casts an integer, a string or a boolean to its string
// rendering; booleans become "verdadero"/"falso".
//
// Syntax: parsearAtexto(valor)
func parsearAtexto(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return createError(wrongNumberOfArgs, 1, len(args))
	}
	switch arg := args[0].(type) {
	case *objects.Integer:
		return &objects.String{Value: arg.Inspect()}
	case *objects.String:
		return &objects.String{Value: arg.Value}
	case *objects.Boolean:
		return &objects.String{Value: arg.Inspect()}
	default:
		return createError(unsupportedArgumentType, args[0].Type())
	}
}

// parsearAbooleano casts an integer to a boolean: verdadero exactly when
// the value is 1.
//
// Syntax: parsearAbooleano(valor)
func parsearAbooleano(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return createError(wrongNumberOfArgs, 1, len(args))
	}
	if number, ok := args[0].(*objects.Integer); ok {
		if number.Value == 1 {
			return objects.TRUE
		}
		return objects.FALSE
	}
	return createError(unsupportedArgumentType, args[0].Type())
}
