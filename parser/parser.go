/*
File    : go-kinp/parser/parser.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the Kinp programming language.

The parser converts the token stream produced by the lexer into an
Abstract Syntax Tree. It handles:
- Expressions (binary, unary, literals, identifiers, calls)
- Statements (variable declarations, returns, expression statements)
- Conditionals (si / si_no, including si_no si chains)
- Functions (procedimiento lambdas and named metodo functions)
- Operator precedence and left associativity

The parser never fails catastrophically: malformed input yields a partial
AST plus a list of Spanish error messages that the caller inspects through
HasErrors/GetErrors before evaluating anything.
*/
package parser

import (
	"fmt"

	"github.com/markoegea/go-kinp/lexer"
)

// Error message templates pushed into the parser's error list.
const (
	errExpectedToken  = `Se esperaba un "%s" Pero se obtuvo un "%s"`
	errNoParseFn      = `No se encontro ninguna funcion para parsear "%s"`
	errIntegerLiteral = `No se ha podido parsear %s como entero`
)

// Parser holds the parsing state: the lexer, one token of lookahead, the
// Pratt dispatch tables and the accumulated error list.
type Parser struct {
	Lex       *lexer.Lexer // token source
	CurrToken lexer.Token  // current token being processed
	NextToken lexer.Token  // next token (one-token lookahead)

	// Pratt dispatch tables, keyed by token type.
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // tokens that can start an expression
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // infix operators and call syntax

	// Errors collects every parse failure instead of aborting, so a single
	// pass can report everything wrong with the input.
	Errors []string
}

// NewParser creates a Parser over the given lexer.
// Both lookahead slots are primed so CurrToken and NextToken are valid
// before the first Parse call.
func NewParser(lex *lexer.Lexer) *Parser {
	par := &Parser{
		Lex:    lex,
		Errors: make([]string, 0),
	}

	par.registerUnaryFuncs()
	par.registerBinaryFuncs()

	par.advanceTokens()
	par.advanceTokens()

	return par
}

// Parse consumes the whole token stream and returns the program root.
// Statements that fail to parse are skipped; their errors are collected.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{Statements: make([]StatementNode, 0)}

	for par.CurrToken.Type != lexer.EOF_TYPE {
		statement := par.parseStatement()
		if statement != nil {
			root.Statements = append(root.Statements, statement)
		}
		par.advanceTokens()
	}

	return root
}

// HasErrors reports whether any parse error was collected.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns the collected parse error messages.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// advanceTokens shifts the lookahead window one token forward.
func (par *Parser) advanceTokens() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectNext advances when the next token has the wanted type.
// Otherwise it records the standard expectation error and stays put.
func (par *Parser) expectNext(tokenType lexer.TokenType) bool {
	if par.NextToken.Type == tokenType {
		par.advanceTokens()
		return true
	}
	par.expectedTokenError(tokenType)
	return false
}

// expectedTokenError records a failed expectation against the next token.
func (par *Parser) expectedTokenError(tokenType lexer.TokenType) {
	par.Errors = append(par.Errors, fmt.Sprintf(errExpectedToken, tokenType, par.NextToken.Type))
}

// noParseFunctionError records that no prefix handler exists for the
// current token, quoting its literal.
func (par *Parser) noParseFunctionError(token lexer.Token) {
	par.Errors = append(par.Errors, fmt.Sprintf(errNoParseFn, token.Literal))
}
