/*
File    : go-kinp/repl/repl.go
Author  : Marco Egea
Contact : markoegea(@github.com)

Package repl implements the Read-Eval-Print Loop for the Kinp
interpreter. The REPL provides an interactive environment where users:
- Enter Kinp code line by line at the `-> ` prompt
- Keep their `variable` bindings across lines
- Navigate command history using arrow keys
- See parse and runtime errors in red

The loop accumulates every accepted line and re-parses the whole buffer
each turn, which is how bindings from earlier lines stay visible. A line
that fails to parse is reported and left OUT of the buffer, so one typo
does not poison the rest of the session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/markoegea/go-kinp/eval"
	"github.com/markoegea/go-kinp/lexer"
	"github.com/markoegea/go-kinp/objects"
	"github.com/markoegea/go-kinp/parser"
	"github.com/markoegea/go-kinp/scope"
)

// PROMPT is shown before every line of input.
const PROMPT = "-> "

// EXIT is the literal a user types to leave the loop.
const EXIT = "salir()"

// Color definitions for REPL output:
// - greenColor: welcome banner
// - cyanColor: usage hints
// - redColor: parse and runtime errors
var (
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
	redColor   = color.New(color.FgRed)
)

// Repl is one interactive session: the accumulated source lines plus the
// input the `recibir` builtin reads from.
type Repl struct {
	Scanned []string  // every line accepted so far, in order
	Input   io.Reader // input source for recibir (nil means os.Stdin)
}

// NewRepl creates a fresh session with an empty buffer.
func NewRepl() *Repl {
	return &Repl{Scanned: make([]string, 0)}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	greenColor.Fprintln(writer, "Bienvenido al lenguaje de Programacion Kinp.")
	cyanColor.Fprintln(writer, "Escribe un comando para comenzar.")
	cyanColor.Fprintf(writer, "Escribe %s para terminar.\n", EXIT)
}

// Start begins the REPL main loop. It reads lines through readline (so
// the user gets history and line editing), executes each one against the
// accumulated buffer, and leaves when the user types salir() or closes
// the input.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	r.PrintBannerInfo(writer)
	r.Input = reader

	rl, err := readline.New(PROMPT)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or Ctrl+D ends the session
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == EXIT {
			break
		}

		rl.SaveHistory(line)
		r.Execute(line, writer)
	}
}

// Execute runs one line of input against the accumulated buffer.
//
// The line is appended to a candidate copy of the buffer and the whole
// concatenation is re-parsed. Parse errors are printed and the line is
// discarded; otherwise the line is kept and the full program is
// re-evaluated in a fresh environment. Only runtime errors are echoed:
// successful values stay silent, matching file mode.
func (r *Repl) Execute(line string, writer io.Writer) {
	candidate := append(append(make([]string, 0, len(r.Scanned)+1), r.Scanned...), line)
	source := strings.Join(candidate, " ")

	lex := lexer.NewLexer(source)
	par := parser.NewParser(lex)
	root := par.Parse()

	if par.HasErrors() {
		for _, message := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", message)
		}
		return
	}

	r.Scanned = candidate

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)
	if r.Input != nil {
		evaluator.SetReader(r.Input)
	}

	result := evaluator.Eval(root, scope.NewScope(nil))
	if result != nil && result.Type() == objects.ErrorType {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}
