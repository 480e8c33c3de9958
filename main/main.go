/*
File    : go-kinp/main/main.go
Author  : Marco Egea
Contact : markoegea(@github.com)

Package main is the entry point for the Kinp interpreter.
It provides two modes of operation:
1. REPL mode (default): interactive Read-Eval-Print loop
2. File mode: execute a Kinp source file given as the only argument
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/markoegea/go-kinp/eval"
	"github.com/markoegea/go-kinp/lexer"
	"github.com/markoegea/go-kinp/objects"
	"github.com/markoegea/go-kinp/parser"
	"github.com/markoegea/go-kinp/repl"
	"github.com/markoegea/go-kinp/scope"
	"github.com/spf13/cobra"
)

// VERSION is the current version of the Kinp interpreter.
var VERSION = "v1.0.0"

// fileNotFound is printed when the source file cannot be read.
const fileNotFound = "Poseemos un problema, no se encontro el archivo %s"

// Color definitions for file execution output.
var (
	redColor = color.New(color.FgRed)
)

// rootCmd dispatches the two operating modes: with no arguments the
// interpreter starts the interactive loop, with one argument it runs the
// named source file.
var rootCmd = &cobra.Command{
	Use:     "kinp [archivo]",
	Short:   "Kinp - un lenguaje de programacion interpretado en español",
	Long:    "Kinp es un lenguaje de programacion dinamico con palabras clave en español.\nSin argumentos inicia el modo interactivo; con un archivo, lo ejecuta.",
	Version: VERSION,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			runFile(args[0])
			return
		}
		repler := repl.NewRepl()
		repler.Start(os.Stdin, os.Stdout)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runFile reads and executes a Kinp source file. A missing or unreadable
// file is reported with the language's own message and the process ends
// cleanly, matching the published behavior.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		fmt.Printf(fileNotFound+"\n", fileName)
		return
	}

	executeSource(string(fileContent))
}

// executeSource parses and evaluates a whole program. Parse errors are
// printed one per line and stop execution; a runtime error prints its
// inspection. Successful results are not echoed in file mode.
func executeSource(source string) {
	lex := lexer.NewLexer(source)
	par := parser.NewParser(lex)
	root := par.Parse()

	if par.HasErrors() {
		for _, message := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", message)
		}
		return
	}

	evaluator := eval.NewEvaluator()
	result := evaluator.Eval(root, scope.NewScope(nil))

	if result != nil && result.Type() == objects.ErrorType {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
	}
}
