/*
File    : go-kinp/parser/parser_expressions.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/markoegea/go-kinp/lexer"
)

// parseExpression is the heart of the Pratt parser.
//
// It looks up the prefix handler for the current token and lets it
// produce the left operand; then, while the lookahead is a binding infix
// operator stronger than the given precedence, it advances and lets the
// infix handler extend the expression. Missing a prefix handler is a
// parse error; missing an infix handler simply stops the loop.
func (par *Parser) parseExpression(precedence int) ExpressionNode {
	unaryFn, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		par.noParseFunctionError(par.CurrToken)
		return nil
	}

	left := unaryFn()

	for par.NextToken.Type != lexer.SEMICOLON_DELIM && precedence < par.nextPrecedence() {
		binaryFn, ok := par.BinaryFuncs[par.NextToken.Type]
		if !ok {
			return left
		}
		par.advanceTokens()
		left = binaryFn(left)
	}

	return left
}

// parseIdentifier parses the current token as an identifier.
func (par *Parser) parseIdentifier() ExpressionNode {
	return &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}
}

// parseIntegerLiteral parses the current token as an integer literal,
// recording an error when the literal does not fit an int64.
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		par.Errors = append(par.Errors, fmt.Sprintf(errIntegerLiteral, par.CurrToken.Literal))
		return nil
	}
	return &IntegerLiteralExpressionNode{Token: par.CurrToken, Value: value}
}

// parseFloatLiteral parses the current token as a float literal.
func (par *Parser) parseFloatLiteral() ExpressionNode {
	value, err := strconv.ParseFloat(par.CurrToken.Literal, 64)
	if err != nil {
		par.Errors = append(par.Errors, fmt.Sprintf(errIntegerLiteral, par.CurrToken.Literal))
		return nil
	}
	return &FloatLiteralExpressionNode{Token: par.CurrToken, Value: value}
}

// parseStringLiteral parses the current token as a string literal.
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

// parseBooleanLiteral parses verdadero or falso.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteralExpressionNode{
		Token: par.CurrToken,
		Value: par.CurrToken.Type == lexer.TRUE_KEY,
	}
}

// parseUnaryExpression parses a prefix `!` or `-` and its operand at
// PREFIX precedence, so `-a * b` groups as ((-a) * b).
func (par *Parser) parseUnaryExpression() ExpressionNode {
	expression := &UnaryExpressionNode{
		Token:    par.CurrToken,
		Operator: par.CurrToken.Literal,
	}

	par.advanceTokens()
	expression.Right = par.parseExpression(PREFIX)

	return expression
}

// parseBinaryExpression parses the right-hand side of an infix operator.
// The right operand is parsed at the operator's own precedence, which
// makes every binary operator left-associative.
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	expression := &BinaryExpressionNode{
		Token:    par.CurrToken,
		Operator: par.CurrToken.Literal,
		Left:     left,
	}

	precedence := par.currPrecedence()
	par.advanceTokens()
	expression.Right = par.parseExpression(precedence)

	return expression
}

// parseGroupedExpression parses `( <expr> )`, resetting the precedence
// inside the parentheses.
func (par *Parser) parseGroupedExpression() ExpressionNode {
	par.advanceTokens()

	expression := par.parseExpression(LOWEST)

	if !par.expectNext(lexer.RIGHT_PAREN) {
		return nil
	}

	return expression
}

// parseIfExpression parses `si (<cond>) { ... }` with an optional
// `si_no { ... }` alternative. A `si_no si` continuation is parsed by
// recursing into parseIfExpression and wrapping the nested conditional
// in a single-statement block, which lets chains of any length nest.
func (par *Parser) parseIfExpression() ExpressionNode {
	expression := &IfExpressionNode{Token: par.CurrToken}

	if !par.expectNext(lexer.LEFT_PAREN) {
		return nil
	}

	par.advanceTokens()
	expression.Condition = par.parseExpression(LOWEST)

	if !par.expectNext(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectNext(lexer.LEFT_BRACE) {
		return nil
	}

	expression.Consequence = par.parseBlockStatement()

	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advanceTokens()

		if par.NextToken.Type == lexer.IF_KEY {
			par.advanceTokens()
			chained := par.parseIfExpression()
			if chained == nil {
				return nil
			}
			expression.Alternative = &BlockStatementNode{
				Token: chained.(*IfExpressionNode).Token,
				Statements: []StatementNode{
					&ExpressionStatementNode{
						Token:      chained.(*IfExpressionNode).Token,
						Expression: chained,
					},
				},
			}
			return expression
		}

		if !par.expectNext(lexer.LEFT_BRACE) {
			return nil
		}
		expression.Alternative = par.parseBlockStatement()
	}

	return expression
}

// parseCallExpression parses `<callee>(<args>)`. The callee is whatever
// expression was parsed before the left paren.
func (par *Parser) parseCallExpression(function ExpressionNode) ExpressionNode {
	expression := &CallExpressionNode{Token: par.CurrToken, Function: function}
	expression.Arguments = par.parseCallArguments()
	return expression
}

// parseCallArguments parses a comma-separated argument list, each
// argument at LOWEST precedence, up to the closing paren.
func (par *Parser) parseCallArguments() []ExpressionNode {
	args := make([]ExpressionNode, 0)

	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advanceTokens()
		return args
	}

	par.advanceTokens()
	args = append(args, par.parseExpression(LOWEST))

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advanceTokens()
		par.advanceTokens()
		args = append(args, par.parseExpression(LOWEST))
	}

	if !par.expectNext(lexer.RIGHT_PAREN) {
		return nil
	}

	return args
}
