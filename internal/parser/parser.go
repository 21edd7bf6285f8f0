package parser

import (
	"fmt"
	"strconv"

	"github.com/morsel-lang/morsel/internal/evaluator"
	"github.com/morsel-lang/morsel/internal/lexer"
	"github.com/morsel-lang/morsel/internal/token"
)

// Parser turns a token stream into expression trees. Expressions use the
// same object types the evaluator produces, so quoted forms need no
// conversion.
type Parser struct {
	l *lexer.Lexer

	curToken token.Token
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.l.NextToken()
}

// ParseProgram reads every top-level expression until EOF.
func (p *Parser) ParseProgram() ([]evaluator.Object, error) {
	var program []evaluator.Object
	for p.curToken.Type != token.EOF {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		program = append(program, expr)
	}
	return program, nil
}

// ParseExpression reads a single expression; it returns nil at EOF.
func (p *Parser) ParseExpression() (evaluator.Object, error) {
	if p.curToken.Type == token.EOF {
		return nil, nil
	}
	return p.parseExpression()
}

func (p *Parser) parseExpression() (evaluator.Object, error) {
	tok := p.curToken

	switch tok.Type {
	case token.LPAREN:
		return p.parseList()
	case token.RPAREN:
		return nil, p.errorf(tok, "unexpected ')'")
	case token.QUOTE:
		p.nextToken()
		if p.curToken.Type == token.EOF {
			return nil, p.errorf(p.curToken, "unexpected end of input after quote")
		}
		quoted, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return evaluator.NewList(evaluator.NewSymbol("quote"), quoted), nil
	case token.INTEGER:
		p.nextToken()
		n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errorf(tok, "integer out of range: %s", tok.Lexeme)
		}
		return &evaluator.Integer{Value: n}, nil
	case token.BOOLEAN:
		p.nextToken()
		if tok.Lexeme == "#t" {
			return evaluator.True, nil
		}
		return evaluator.False, nil
	case token.STRING:
		p.nextToken()
		return &evaluator.String{Value: tok.Lexeme}, nil
	case token.SYMBOL:
		p.nextToken()
		return evaluator.NewSymbol(tok.Lexeme), nil
	}

	return nil, p.errorf(tok, "unexpected token %q", tok.Lexeme)
}

func (p *Parser) parseList() (evaluator.Object, error) {
	open := p.curToken
	p.nextToken() // consume (

	var elements []evaluator.Object
	for p.curToken.Type != token.RPAREN {
		if p.curToken.Type == token.EOF {
			return nil, p.errorf(open, "unbalanced parentheses: '(' is never closed")
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, expr)
	}
	p.nextToken() // consume )

	return evaluator.NewList(elements...), nil
}

func (p *Parser) errorf(tok token.Token, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("parse error at line %d, column %d: %s", tok.Line, tok.Column, msg)
}

// Parse is a convenience wrapper for parsing a complete source string.
func Parse(input string) ([]evaluator.Object, error) {
	return New(lexer.New(input)).ParseProgram()
}
