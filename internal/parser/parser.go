// Package parser turns a token stream from internal/lexer into the
// internal/ast tree the evaluator consumes.
package parser

import (
	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/errors"
	"github.com/brnstm-lang/brnstm/internal/lexer"
)

// Parser is a hand-written recursive-descent parser with a two-token
// lookahead, in the same style as go-dws's internal/parser.
type Parser struct {
	l *lexer.Lexer

	cur  lexer.Token
	peek lexer.Token
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(tt lexer.TokenType) bool  { return p.cur.Type == tt }
func (p *Parser) peekIs(tt lexer.TokenType) bool { return p.peek.Type == tt }

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if !p.curIs(tt) {
		return lexer.Token{}, p.errorf("expected %s, got %s", tt, p.cur.Type)
	}
	tok := p.cur
	p.next()
	return tok, nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return errors.NewAt(errors.SyntaxError, p.cur.Pos, format, args...)
}

// skipTerminators consumes zero or more statement-separating semicolons.
// Semicolons are optional throughout brnstm — they separate statements on
// the same line but are never required at a line break.
func (p *Parser) skipTerminators() {
	for p.curIs(lexer.SEMICOLON) {
		p.next()
	}
}

// ParseProgram parses an entire source file into a Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	p.skipTerminators()
	for !p.curIs(lexer.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
		p.skipTerminators()
	}
	return prog, nil
}

// parseBlock parses `{ Statement* ('return' Expression)? }`, returning the
// ordinary statements and, separately, the optional trailing return
// expression — function, init and method bodies all share this shape.
func (p *Parser) parseBlock() ([]ast.Statement, ast.Expression, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, nil, err
	}
	p.skipTerminators()

	var body []ast.Statement
	var ret ast.Expression

	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.RETURN) {
			p.next()
			expr, err := p.parseExpression()
			if err != nil {
				return nil, nil, err
			}
			ret = expr
			p.skipTerminators()
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, nil, err
		}
		body = append(body, stmt)
		p.skipTerminators()
	}

	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, nil, err
	}
	return body, ret, nil
}

// parseSimpleBlock parses a block that never carries a return expression
// (if/while/for bodies) — a bare 'return' there is a syntax error.
func (p *Parser) parseSimpleBlock() ([]ast.Statement, error) {
	body, ret, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if ret != nil {
		return nil, p.errorf("'return' is only valid in a function, init or method body")
	}
	return body, nil
}

func (p *Parser) parseParameterList() ([]string, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	for !p.curIs(lexer.RPAREN) {
		if len(params) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		name, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, name.Literal)
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseArgumentList() ([]ast.Expression, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for !p.curIs(lexer.RPAREN) {
		if len(args) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}
