/*
File    : go-kinp/parser/parser_functions.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/
package parser

import "github.com/markoegea/go-kinp/lexer"

// parseLambdaExpression parses `procedimiento(<params>) { <body> }`.
func (par *Parser) parseLambdaExpression() ExpressionNode {
	expression := &LambdaExpressionNode{Token: par.CurrToken}

	if !par.expectNext(lexer.LEFT_PAREN) {
		return nil
	}

	expression.Params = par.parseFunctionParameters()

	if !par.expectNext(lexer.LEFT_BRACE) {
		return nil
	}

	expression.Body = par.parseBlockStatement()

	return expression
}

// parseFunctionExpression parses `metodo <name>(<params>) { <body> }`.
// The name is mandatory; the evaluator binds it in the defining scope.
func (par *Parser) parseFunctionExpression() ExpressionNode {
	expression := &FunctionExpressionNode{Token: par.CurrToken}

	if !par.expectNext(lexer.IDENTIFIER_ID) {
		return nil
	}

	expression.Name = &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}

	if !par.expectNext(lexer.LEFT_PAREN) {
		return nil
	}

	expression.Params = par.parseFunctionParameters()

	if !par.expectNext(lexer.LEFT_BRACE) {
		return nil
	}

	expression.Body = par.parseBlockStatement()

	return expression
}

// parseFunctionParameters parses `(<ident> (, <ident>)*)?` after the
// opening paren, leaving the current token on the closing paren.
func (par *Parser) parseFunctionParameters() []*IdentifierExpressionNode {
	params := make([]*IdentifierExpressionNode, 0)

	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advanceTokens()
		return params
	}

	par.advanceTokens()
	params = append(params, &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal})

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advanceTokens()
		par.advanceTokens()
		params = append(params, &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal})
	}

	if !par.expectNext(lexer.RIGHT_PAREN) {
		return nil
	}

	return params
}
