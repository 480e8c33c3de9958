/*
File    : go-kinp/parser/parser_precedence.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/
package parser

import "github.com/markoegea/go-kinp/lexer"

// Operator precedence levels, ascending.
// Higher number = higher precedence (binds tighter).
//
// Example: in "a + b * c", PRODUCT binds tighter than SUM, so the tree is
// (a + (b * c)) rather than ((a + b) * c).
const (
	LOWEST      = 1 + iota // starting precedence for any expression
	EQUALS                 // = == !=
	LESSGREATER            // < <= > >=
	SUM                    // + -
	PRODUCT                // * / %
	RAISE                  // **
	PREFIX                 // unary - and !
	CALL                   // callee(
)

// getPrecedence returns the precedence level for a token type, used both
// for the peek check in the Pratt loop and for the right-hand side of a
// binary expression (left associativity). Non-operator tokens sit at
// LOWEST so the loop stops on them.
func getPrecedence(tokenType lexer.TokenType) int {
	switch tokenType {

	case lexer.ASSIGN_OP, lexer.EQ_OP, lexer.NE_OP:
		return EQUALS

	case lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP:
		return LESSGREATER

	case lexer.PLUS_OP, lexer.LESS_OP:
		return SUM

	case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return PRODUCT

	case lexer.RAISE_OP:
		return RAISE

	case lexer.LEFT_PAREN:
		return CALL

	default:
		return LOWEST
	}
}

// currPrecedence returns the precedence of the current token.
func (par *Parser) currPrecedence() int {
	return getPrecedence(par.CurrToken.Type)
}

// nextPrecedence returns the precedence of the lookahead token.
func (par *Parser) nextPrecedence() int {
	return getPrecedence(par.NextToken.Type)
}

// unaryParseFunction parses a token that can begin an expression
// (a literal, an identifier, a prefix operator, a grouped expression,
// a conditional, or a function literal).
type unaryParseFunction func() ExpressionNode

// binaryParseFunction parses an infix construct. The already-parsed left
// operand is passed in; the function consumes the operator and the right
// operand and returns the combined expression.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// registerUnaryFuncs fills the prefix dispatch table.
func (par *Parser) registerUnaryFuncs() {
	par.UnaryFuncs = map[lexer.TokenType]unaryParseFunction{
		lexer.IDENTIFIER_ID: par.parseIdentifier,
		lexer.INT_LIT:       par.parseIntegerLiteral,
		lexer.FLOAT_LIT:     par.parseFloatLiteral,
		lexer.STRING_LIT:    par.parseStringLiteral,
		lexer.TRUE_KEY:      par.parseBooleanLiteral,
		lexer.FALSE_KEY:     par.parseBooleanLiteral,
		lexer.NOT_OP:        par.parseUnaryExpression,
		lexer.LESS_OP:       par.parseUnaryExpression,
		lexer.LEFT_PAREN:    par.parseGroupedExpression,
		lexer.IF_KEY:        par.parseIfExpression,
		lexer.LAMBDA_KEY:    par.parseLambdaExpression,
		lexer.FUNCTION_KEY:  par.parseFunctionExpression,
	}
}

// registerBinaryFuncs fills the infix dispatch table.
// Every binary operator funnels into parseBinaryExpression; a left paren
// after an expression is call syntax. ASSIGN_OP is registered so that
// `pies = 31;` parses as an ordinary infix expression, whose evaluation
// then reports the left-hand identifier as unknown.
func (par *Parser) registerBinaryFuncs() {
	par.BinaryFuncs = map[lexer.TokenType]binaryParseFunction{
		lexer.PLUS_OP:    par.parseBinaryExpression,
		lexer.LESS_OP:    par.parseBinaryExpression,
		lexer.MUL_OP:     par.parseBinaryExpression,
		lexer.DIV_OP:     par.parseBinaryExpression,
		lexer.MOD_OP:     par.parseBinaryExpression,
		lexer.RAISE_OP:   par.parseBinaryExpression,
		lexer.LT_OP:      par.parseBinaryExpression,
		lexer.GT_OP:      par.parseBinaryExpression,
		lexer.LE_OP:      par.parseBinaryExpression,
		lexer.GE_OP:      par.parseBinaryExpression,
		lexer.EQ_OP:      par.parseBinaryExpression,
		lexer.NE_OP:      par.parseBinaryExpression,
		lexer.ASSIGN_OP:  par.parseBinaryExpression,
		lexer.LEFT_PAREN: par.parseCallExpression,
	}
}
