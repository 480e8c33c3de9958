/*
File    : go-kinp/eval/evaluator_test.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/
package eval

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/markoegea/go-kinp/function"
	"github.com/markoegea/go-kinp/lexer"
	"github.com/markoegea/go-kinp/objects"
	"github.com/markoegea/go-kinp/parser"
	"github.com/markoegea/go-kinp/scope"
)

// evaluateSource runs the whole pipeline over the source and returns the
// resulting value.
func evaluateSource(t *testing.T, source string) objects.Object {
	t.Helper()
	lex := lexer.NewLexer(source)
	par := parser.NewParser(lex)
	root := par.Parse()
	if par.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %v", source, par.GetErrors())
	}
	evaluator := NewEvaluator()
	result := evaluator.Eval(root, scope.NewScope(nil))
	if result == nil {
		t.Fatalf("evaluation of %q returned nil", source)
	}
	return result
}

func testIntegerObject(t *testing.T, obj objects.Object, expected int64, source string) {
	t.Helper()
	integer, ok := obj.(*objects.Integer)
	if !ok {
		t.Fatalf("source %q: expected Integer, got %s (%s)", source, obj.Type(), obj.Inspect())
	}
	if integer.Value != expected {
		t.Errorf("source %q: expected %d, got %d", source, expected, integer.Value)
	}
}

func testFloatObject(t *testing.T, obj objects.Object, expected float64, source string) {
	t.Helper()
	float, ok := obj.(*objects.Float)
	if !ok {
		t.Fatalf("source %q: expected Float, got %s (%s)", source, obj.Type(), obj.Inspect())
	}
	if math.Abs(float.Value-expected) > 1e-9 {
		t.Errorf("source %q: expected %g, got %g", source, expected, float.Value)
	}
}

func testBooleanObject(t *testing.T, obj objects.Object, expected bool, source string) {
	t.Helper()
	boolean, ok := obj.(*objects.Boolean)
	if !ok {
		t.Fatalf("source %q: expected Boolean, got %s (%s)", source, obj.Type(), obj.Inspect())
	}
	if boolean.Value != expected {
		t.Errorf("source %q: expected %t, got %t", source, expected, boolean.Value)
	}
}

func testStringObject(t *testing.T, obj objects.Object, expected string, source string) {
	t.Helper()
	str, ok := obj.(*objects.String)
	if !ok {
		t.Fatalf("source %q: expected String, got %s (%s)", source, obj.Type(), obj.Inspect())
	}
	if str.Value != expected {
		t.Errorf("source %q: expected %q, got %q", source, expected, str.Value)
	}
}

func testNullObject(t *testing.T, obj objects.Object, source string) {
	t.Helper()
	if obj != objects.NULL {
		t.Errorf("source %q: expected the interned NULL, got %s (%s)", source, obj.Type(), obj.Inspect())
	}
}

func testErrorObject(t *testing.T, obj objects.Object, expected string, source string) {
	t.Helper()
	errObj, ok := obj.(*objects.Error)
	if !ok {
		t.Fatalf("source %q: expected Error, got %s (%s)", source, obj.Type(), obj.Inspect())
	}
	if errObj.Message != expected {
		t.Errorf("source %q:\nexpected %q\ngot      %q", source, expected, errObj.Message)
	}
}

// TestEvaluator_Integers verifies integer literals and arithmetic,
// including floor division and floor modulo for negative operands
func TestEvaluator_Integers(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5+5", 10},
		{"5-10", -5},
		{"2*2*2*2", 16},
		{"2*5-3", 7},
		{"2 * (5 - 3)", 4},
		{"5 + 5 * 2", 15},
		{"50 / 2", 25},
		{"50 / 2 * 2 + 10", 60},
		{"(2 + 7) / 3", 3},
		{"7 / 2", 3},
		{"-7 / 2", -4},
		{"7 / -2", -4},
		{"-7 / -2", 3},
		{"5 % 5", 0},
		{"32 % 3", 2},
		{"90 % 9", 0},
		{"-7 % 2", 1},
		{"7 % -2", -1},
		{"2 ** 2", 4},
		{"2 ** 20", 1048576},
		{"2 ** 0", 1},
		{"-7 ** 5", -16807},
		{"5**2 + 20 *5 + 30", 155},
		{"20 + 2 ** 4 / 2", 28},
	}

	for _, tt := range tests {
		evaluated := evaluateSource(t, tt.input)
		testIntegerObject(t, evaluated, tt.expected, tt.input)
	}
}

// TestEvaluator_Floats verifies float literals, float arithmetic, and
// the widening of mixed integer/float operands
func TestEvaluator_Floats(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1.3324", 1.3324},
		{"10.978", 10.978},
		{"-5.134", -5.134},
		{"5+5.34", 10.34},
		{"5-10.1", -5.1},
		{"2.6*3.9*4.1", 41.574},
		{"5.0 / 2", 2.5},
		{"15.0 / 3.0", 5.0},
		{"55.66 % 15.55", 9.01},
		{"0.111 % 0.2", 0.111},
		{"24.75 % 32", 24.75},
		{"4.38 ** 2", 19.1844},
		{"7 ** -2", 0.02040816326530612},
		{"2.0 ** 10", 1024.0},
	}

	for _, tt := range tests {
		evaluated := evaluateSource(t, tt.input)
		testFloatObject(t, evaluated, tt.expected, tt.input)
	}
}

// TestEvaluator_Booleans verifies boolean literals and comparisons
// across integers, floats and interned values
func TestEvaluator_Booleans(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"verdadero", true},
		{"falso", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 > 1", false},
		{"1 <= 1", true},
		{"1 >= 2", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 != 2", true},

		{"1.99 < 2", true},
		{"1.8 > 1.85", false},
		{"1.777 > 1.78", false},
		{"1.565 == 1.56500", true},
		{"21.3 != 21.3", false},
		{"111.656 != 111.654", true},

		{"verdadero == verdadero", true},
		{"falso == falso", true},
		{"verdadero == falso", false},
		{"verdadero != falso", true},

		{"(1 < 2) == verdadero", true},
		{"(1 < 2) == falso", false},
		{"(1 > 2) == verdadero", false},
		{"(1 > 2) == falso", true},
	}

	for _, tt := range tests {
		evaluated := evaluateSource(t, tt.input)
		testBooleanObject(t, evaluated, tt.expected, tt.input)
	}
}

// TestEvaluator_BangOperator verifies ! follows the truthiness rule
func TestEvaluator_BangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!verdadero", false},
		{"!falso", true},
		{"!!falso", false},
		{"!!verdadero", true},
		{"!5", false},
		{"!!5", true},
	}

	for _, tt := range tests {
		evaluated := evaluateSource(t, tt.input)
		testBooleanObject(t, evaluated, tt.expected, tt.input)
	}
}

// TestEvaluator_IfElse verifies conditionals; only the interned TRUE is
// truthy, so an integer condition selects no branch
func TestEvaluator_IfElse(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"si (verdadero) { 10; }", int64(10)},
		{"si (falso) { 10; }", nil},
		{"si (1) { 10; }", nil},
		{`si ("texto") { 10; }`, nil},
		{"si (1 < 2) { 10; }", int64(10)},
		{"si (1 > 2) { 10; }", nil},
		{"si (1 < 2) { 10; } si_no { 20; }", int64(10)},
		{"si (1 > 2) { 10; } si_no { 20; }", int64(20)},
		{"si (1 > 2) { 10; } si_no si (2 > 1) { 30; } si_no { 20; }", int64(30)},
		{"si (1 > 2) { 10; } si_no si (2 > 3) { 30; } si_no { 20; }", int64(20)},
	}

	for _, tt := range tests {
		evaluated := evaluateSource(t, tt.input)
		if expected, ok := tt.expected.(int64); ok {
			testIntegerObject(t, evaluated, expected, tt.input)
		} else {
			testNullObject(t, evaluated, tt.input)
		}
	}
}

// TestEvaluator_Return verifies return unwrapping, including out of
// nested blocks
func TestEvaluator_Return(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"regresa 10;", 10},
		{"regresa 10; 9;", 10},
		{"regresa 2*5; 9;", 10},
		{"9; regresa 3*6; 9;", 18},
		{`
			si (10 > 1) {
				si (20 > 10) {
					regresa 1;
				}
				regresa 0;
			}
		`, 1},
		{`
			si (10 >= 1) {
				si (20 >= 20) {
					regresa 1;
				}
				regresa 0;
			}
		`, 1},
		{`
			si (10 <= 10) {
				si (20 <= 19) {
					regresa 1;
				}
				regresa 0;
			}
		`, 0},
	}

	for _, tt := range tests {
		evaluated := evaluateSource(t, tt.input)
		testIntegerObject(t, evaluated, tt.expected, tt.input)
	}
}

// TestEvaluator_BareReturn verifies `regresa;` yields nulo
func TestEvaluator_BareReturn(t *testing.T) {
	evaluated := evaluateSource(t, "regresa; 9;")
	testNullObject(t, evaluated, "regresa; 9;")
}

// TestEvaluator_ErrorHandling verifies every published runtime error and
// that an error halts the rest of the program
func TestEvaluator_ErrorHandling(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5 + verdadero",
			"Poseemos un problema, no puedo ejecutar INTEGER + BOOLEAN"},
		{"5 + verdadero; 9;",
			"Poseemos un problema, no puedo ejecutar INTEGER + BOOLEAN"},
		{"-verdadero;",
			"Poseemos un problema, no puedo operar -BOOLEAN"},
		{`-"texto";`,
			"Poseemos un problema, no puedo operar -STRING"},
		{"verdadero-verdadero;",
			"Poseemos un problema, no puedo operar BOOLEAN - BOOLEAN"},
		{"5; verdadero+falso; 10;",
			"Poseemos un problema, no puedo operar BOOLEAN + BOOLEAN"},
		{`
			si (10 > 7) {
				regresa verdadero + falso;
			}
		`,
			"Poseemos un problema, no puedo operar BOOLEAN + BOOLEAN"},
		{`
			si (10 > 1) {
				si (verdadero) {
					regresa verdadero * falso;
				}
				regresa 1;
			}
		`,
			"Poseemos un problema, no puedo operar BOOLEAN * BOOLEAN"},
		{`
			si (5 < 2) {
				regresa 1;
			} si_no {
				regresa verdadero / falso;
			}
		`,
			"Poseemos un problema, no puedo operar BOOLEAN / BOOLEAN"},
		{"foobar;",
			`Poseemos un problema, que es "foobar"?`},
		{`"foo" - "bar";`,
			"Poseemos un problema, no puedo operar STRING - STRING"},
		{"pies = 31;",
			`Poseemos un problema, que es "pies"?`},
		{`variable manos = "marco"; pies = "hola"; manos+pies;`,
			`Poseemos un problema, que es "pies"?`},
		{"variable a = 5; a = 6;",
			"Poseemos un problema, no puedo operar INTEGER = INTEGER"},
		{`5 + "texto";`,
			"Poseemos un problema, no puedo ejecutar INTEGER + STRING"},
		{"5 / 0;",
			"Poseemos un problema, no se puede dividir por cero"},
		{"5 % 0;",
			"Poseemos un problema, no se puede dividir por cero"},
		{"variable x = 5; x(3);",
			"Poseemos un problema, no es una funcion: INTEGER"},
	}

	for _, tt := range tests {
		evaluated := evaluateSource(t, tt.input)
		testErrorObject(t, evaluated, tt.expected, tt.input)
	}
}

// TestEvaluator_ErrorInspection verifies the Error: prefix of the
// rendered message
func TestEvaluator_ErrorInspection(t *testing.T) {
	evaluated := evaluateSource(t, "5 + verdadero;")
	expected := "Error: Poseemos un problema, no puedo ejecutar INTEGER + BOOLEAN"
	if evaluated.Inspect() != expected {
		t.Errorf("expected %q, got %q", expected, evaluated.Inspect())
	}
}

// TestEvaluator_LetStatements verifies declarations and lookups
func TestEvaluator_LetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"variable a = 5; a;", 5},
		{"variable a = 5 * 5; a;", 25},
		{"variable a = 5; variable b = a; b;", 5},
		{"variable a = 5; variable b = a; variable c = a + b + 5; c;", 15},
	}

	for _, tt := range tests {
		evaluated := evaluateSource(t, tt.input)
		testIntegerObject(t, evaluated, tt.expected, tt.input)
	}
}

// TestEvaluator_LetWithoutInitializer verifies `variable x;` binds nulo
func TestEvaluator_LetWithoutInitializer(t *testing.T) {
	evaluated := evaluateSource(t, "variable x; x;")
	testNullObject(t, evaluated, "variable x; x;")
}

// TestEvaluator_FunctionObject verifies the function value produced by a
// lambda literal
func TestEvaluator_FunctionObject(t *testing.T) {
	source := "procedimiento(x) {x + 2;};"
	evaluated := evaluateSource(t, source)

	fn, ok := evaluated.(*function.Function)
	if !ok {
		t.Fatalf("expected Function, got %s", evaluated.Type())
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "x" {
		t.Errorf("unexpected parameters: %v", fn.Params)
	}
	if fn.Body.String() != "(x + 2)" {
		t.Errorf("unexpected body: %s", fn.Body.String())
	}
	expected := "procedimiento(x) {\n(x + 2)\n}"
	if fn.Inspect() != expected {
		t.Errorf("expected %q, got %q", expected, fn.Inspect())
	}
}

// TestEvaluator_FunctionCalls verifies lambdas, named functions,
// immediate calls and recursion
func TestEvaluator_FunctionCalls(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"variable identidad = procedimiento(x) {x;}; identidad(5);", 5},
		{`
			variable identidad = procedimiento(x) {
				regresa x;
			};
			identidad(5);
		`, 5},
		{`
			variable doble = procedimiento(x) {
				regresa 2 * x;
			};
			doble(5);
		`, 10},
		{`
			variable suma = procedimiento(x, y) {
				regresa x + y;
			};
			suma(3, 8);
		`, 11},
		{`
			variable suma = procedimiento(x, y) {
				regresa x + y;
			};
			suma(5 + 5, suma(10, 10));
		`, 30},
		{"procedimiento(x) {x;} (5)", 5},
		{`
			metodo doble(x) {
				regresa 2 * x;
			};
			doble(8);
		`, 16},
		{`
			metodo factorial(n) {
				si (n == 0) {
					regresa 1;
				}
				regresa n * factorial(n - 1);
			};
			factorial(5);
		`, 120},
	}

	for _, tt := range tests {
		evaluated := evaluateSource(t, tt.input)
		testIntegerObject(t, evaluated, tt.expected, tt.input)
	}
}

// TestEvaluator_Closures verifies a function keeps reading the scope it
// was constructed in, not the caller's
func TestEvaluator_Closures(t *testing.T) {
	source := `
		variable nuevoSumador = procedimiento(x) {
			regresa procedimiento(y) { regresa x + y; };
		};
		variable sumaDos = nuevoSumador(2);
		sumaDos(3);
	`
	evaluated := evaluateSource(t, source)
	testIntegerObject(t, evaluated, 5, source)
}

// TestEvaluator_ClosureCapturesDefiningScope verifies the captured
// chain ends at the defining scope even with a shadowing caller binding
func TestEvaluator_ClosureCapturesDefiningScope(t *testing.T) {
	source := `
		variable x = 100;
		variable lector = procedimiento() { regresa x; };
		variable llamador = procedimiento(x) { regresa lector(); };
		llamador(1);
	`
	evaluated := evaluateSource(t, source)
	testIntegerObject(t, evaluated, 100, source)
}

// TestEvaluator_WrongArgumentCount verifies arity checking on user
// functions
func TestEvaluator_WrongArgumentCount(t *testing.T) {
	source := "variable identidad = procedimiento(x) {x;}; identidad();"
	evaluated := evaluateSource(t, source)
	testErrorObject(t, evaluated,
		"Poseemos un problema, numero incorrecto de argumentos, se requeria 1, pero se recibio 0", source)
}

// TestEvaluator_Strings verifies string evaluation, concatenation and
// comparison
func TestEvaluator_Strings(t *testing.T) {
	stringTests := []struct {
		input    string
		expected string
	}{
		{`"Hello world!"`, "Hello world!"},
		{`procedimiento() { regresa "Kinp es re-genial"; } ()`, "Kinp es re-genial"},
		{`"FOO" + "BAR";`, "FOOBAR"},
		{`"Hello," + " " + "world!";`, "Hello, world!"},
		{`
			variable saludo = procedimiento(nombre) {
				regresa "Hola " + nombre + "!";
			};
			saludo("Marco");
		`, "Hola Marco!"},
	}

	for _, tt := range stringTests {
		evaluated := evaluateSource(t, tt.input)
		testStringObject(t, evaluated, tt.expected, tt.input)
	}

	booleanTests := []struct {
		input    string
		expected bool
	}{
		{`"a" == "a"`, true},
		{`"a" != "a"`, false},
		{`"a" == "A"`, false},
		{`"a" != "A"`, true},
	}

	for _, tt := range booleanTests {
		evaluated := evaluateSource(t, tt.input)
		testBooleanObject(t, evaluated, tt.expected, tt.input)
	}
}

// TestEvaluator_Builtins verifies the native functions' happy paths
func TestEvaluator_Builtins(t *testing.T) {
	integerTests := []struct {
		input    string
		expected int64
	}{
		{`longitud("");`, 0},
		{`longitud("cuatro");`, 6},
		{`longitud("Hola mundo");`, 10},
		{`longitud("año");`, 3},
		{`parsearAentero("1564");`, 1564},
		{`parsearAentero("-1564");`, -1564},
		{`parsearAentero(verdadero);`, 1},
		{`parsearAentero(falso);`, 0},
	}
	for _, tt := range integerTests {
		testIntegerObject(t, evaluateSource(t, tt.input), tt.expected, tt.input)
	}

	stringTests := []struct {
		input    string
		expected string
	}{
		{`parsearAtexto(99999);`, "99999"},
		{`parsearAtexto(verdadero);`, "verdadero"},
		{`parsearAtexto(falso);`, "falso"},
		{`parsearAtexto("ya soy texto");`, "ya soy texto"},
	}
	for _, tt := range stringTests {
		testStringObject(t, evaluateSource(t, tt.input), tt.expected, tt.input)
	}

	booleanTests := []struct {
		input    string
		expected bool
	}{
		{`parsearAbooleano(1);`, true},
		{`parsearAbooleano(0);`, false},
		{`parsearAbooleano(24);`, false},
	}
	for _, tt := range booleanTests {
		testBooleanObject(t, evaluateSource(t, tt.input), tt.expected, tt.input)
	}
}

// TestEvaluator_BuiltinErrors verifies the native functions' error paths
func TestEvaluator_BuiltinErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`longitud(1);`,
			"Poseemos un problema, no tengo soporte para INTEGER"},
		{`longitud("uno", "dos");`,
			"Poseemos un problema, numero incorrecto de argumentos, se requeria 1, pero se recibio 2"},
		{`parsearAentero("veinte");`,
			`Poseemos un problema, "veinte" no es numero y no se puede castear`},
		{`parsearAentero(2.5);`,
			"Poseemos un problema, no tengo soporte para FLOAT"},
		{`parsearAbooleano("verdadero");`,
			"Poseemos un problema, no tengo soporte para STRING"},
		{`parsearAtexto(nulo);`,
			`Poseemos un problema, que es "nulo"?`},
	}

	for _, tt := range tests {
		evaluated := evaluateSource(t, tt.input)
		testErrorObject(t, evaluated, tt.expected, tt.input)
	}
}

// TestEvaluator_Imprimir verifies printing goes through the configured
// writer and returns nulo
func TestEvaluator_Imprimir(t *testing.T) {
	lex := lexer.NewLexer(`imprimir("Hola mundo"); imprimir(2 * 3);`)
	par := parser.NewParser(lex)
	root := par.Parse()
	if par.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", par.GetErrors())
	}

	var buffer bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&buffer)

	result := evaluator.Eval(root, scope.NewScope(nil))
	testNullObject(t, result, "imprimir")

	expected := "Hola mundo\n6\n"
	if buffer.String() != expected {
		t.Errorf("expected output %q, got %q", expected, buffer.String())
	}
}

// TestEvaluator_Recibir verifies the prompt is written and the entered
// line comes back as a string
func TestEvaluator_Recibir(t *testing.T) {
	lex := lexer.NewLexer(`recibir("Nombre: ");`)
	par := parser.NewParser(lex)
	root := par.Parse()
	if par.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", par.GetErrors())
	}

	var buffer bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&buffer)
	evaluator.SetReader(strings.NewReader("Marco\n"))

	result := evaluator.Eval(root, scope.NewScope(nil))
	testStringObject(t, result, "Marco", "recibir")

	if buffer.String() != "Nombre: " {
		t.Errorf("expected prompt %q, got %q", "Nombre: ", buffer.String())
	}
}

// TestEvaluator_BuiltinShadowing verifies a user binding hides the
// native of the same name
func TestEvaluator_BuiltinShadowing(t *testing.T) {
	source := "variable imprimir = 5; imprimir;"
	evaluated := evaluateSource(t, source)
	testIntegerObject(t, evaluated, 5, source)
}

// TestEvaluator_ErrorContainment verifies the exact error value
// surfaces unchanged through enclosing nodes
func TestEvaluator_ErrorContainment(t *testing.T) {
	tests := []string{
		"(5 + verdadero) * 2;",
		"-(5 + verdadero);",
		"variable x = 5 + verdadero; x;",
		"regresa 5 + verdadero;",
		"longitud(5 + verdadero);",
		"procedimiento(x) { x; }(5 + verdadero);",
	}

	for _, source := range tests {
		evaluated := evaluateSource(t, source)
		testErrorObject(t, evaluated,
			"Poseemos un problema, no puedo ejecutar INTEGER + BOOLEAN", source)
	}
}
