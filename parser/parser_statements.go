/*
File    : go-kinp/parser/parser_statements.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/
package parser

import "github.com/markoegea/go-kinp/lexer"

// parseStatement dispatches on the current token: `variable` starts a
// declaration, `regresa` a return, and anything else is an expression
// statement.
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.LET_KEY:
		return par.parseLetStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseLetStatement parses `variable <name> = <expr>;`.
// The declared name is mandatory. A declaration that ends right after the
// name (`variable x;`) carries no initializer and binds nulo; otherwise
// the `=` is mandatory. The trailing semicolon is optional.
func (par *Parser) parseLetStatement() StatementNode {
	statement := &LetStatementNode{Token: par.CurrToken}

	if !par.expectNext(lexer.IDENTIFIER_ID) {
		return nil
	}

	statement.Name = &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}

	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advanceTokens()
		return statement
	}

	if !par.expectNext(lexer.ASSIGN_OP) {
		return nil
	}

	par.advanceTokens()
	statement.Value = par.parseExpression(LOWEST)

	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advanceTokens()
	}

	return statement
}

// parseReturnStatement parses `regresa <expr>;`.
// A bare `regresa;` returns nulo. The trailing semicolon is optional.
func (par *Parser) parseReturnStatement() StatementNode {
	statement := &ReturnStatementNode{Token: par.CurrToken}

	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advanceTokens()
		return statement
	}

	par.advanceTokens()
	statement.ReturnValue = par.parseExpression(LOWEST)

	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advanceTokens()
	}

	return statement
}

// parseExpressionStatement wraps a bare expression in statement position.
// The trailing semicolon is optional, so REPL input like `5 + 5` works.
func (par *Parser) parseExpressionStatement() StatementNode {
	statement := &ExpressionStatementNode{Token: par.CurrToken}
	statement.Expression = par.parseExpression(LOWEST)

	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advanceTokens()
	}

	return statement
}

// parseBlockStatement parses the statements between `{` and `}`.
// The current token must be the opening brace; on return the current
// token is the closing brace (or EOF for an unterminated block).
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	block := &BlockStatementNode{
		Token:      par.CurrToken,
		Statements: make([]StatementNode, 0),
	}

	par.advanceTokens()

	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		statement := par.parseStatement()
		if statement != nil {
			block.Statements = append(block.Statements, statement)
		}
		par.advanceTokens()
	}

	return block
}
