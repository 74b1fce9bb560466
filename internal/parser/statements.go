package parser

import (
	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/lexer"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Type {
	case lexer.FN:
		return p.parseFunctionDef()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.IMPORT:
		return p.parseImport()
	default:
		return p.parseAssignmentOrExpression()
	}
}

func (p *Parser) parseFunctionDef() (ast.Statement, error) {
	tok := p.cur
	p.next() // consume 'fn'

	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	body, ret, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDefinitionStatement{
		Token:      tok,
		Name:       name.Literal,
		Parameters: params,
		Body:       body,
		Return:     ret,
	}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	tok := p.cur
	branch, err := p.parseIfBranch()
	if err != nil {
		return nil, err
	}
	return &ast.IfStatement{Token: tok, Branch: branch}, nil
}

func (p *Parser) parseIfBranch() (ast.IfBranch, error) {
	p.next() // consume 'if'
	cond, err := p.parseExpression()
	if err != nil {
		return ast.IfBranch{}, err
	}
	body, err := p.parseSimpleBlock()
	if err != nil {
		return ast.IfBranch{}, err
	}

	branch := ast.IfBranch{Condition: cond, Body: body}

	for p.curIs(lexer.ELIF) {
		p.next() // consume 'elif'
		elifCond, err := p.parseExpression()
		if err != nil {
			return ast.IfBranch{}, err
		}
		elifBody, err := p.parseSimpleBlock()
		if err != nil {
			return ast.IfBranch{}, err
		}
		branch.ElifConds = append(branch.ElifConds, elifCond)
		branch.ElifBodys = append(branch.ElifBodys, elifBody)
	}

	if p.curIs(lexer.ELSE) {
		p.next() // consume 'else'
		elseBody, err := p.parseSimpleBlock()
		if err != nil {
			return ast.IfBranch{}, err
		}
		branch.ElseBody = elseBody
	}

	return branch, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	tok := p.cur
	p.next() // consume 'while'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSimpleBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Statement, error) {
	tok := p.cur
	p.next() // consume 'for'
	loopVar, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IN); err != nil {
		return nil, err
	}
	iter, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSimpleBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{
		Token: tok,
		Loop:  ast.ForLoop{LoopVar: loopVar.Literal, IterateExpr: iter, Body: body},
	}, nil
}

func (p *Parser) parseImport() (ast.Statement, error) {
	tok := p.cur
	p.next() // consume 'import'
	path, err := p.expect(lexer.STRING)
	if err != nil {
		return nil, err
	}
	return &ast.ImportStatement{Token: tok, Path: path.Literal}, nil
}

// parseAssignmentOrExpression parses a leading expression and then
// decides, from what follows it, whether the statement is an assignment,
// a compound-assignment, or a bare expression evaluated for effect.
// Compound-assignment is parsed once, inside expression parsing, as a
// PrefixExpression (the same node used when `name += expr` appears
// nested inside a larger expression); at the statement level a bare
// PrefixExpression is unwrapped into the dedicated
// OperatorAssignmentStatement node.
func (p *Parser) parseAssignmentOrExpression() (ast.Statement, error) {
	startTok := p.cur
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if pe, ok := expr.(*ast.PrefixExpression); ok {
		return &ast.OperatorAssignmentStatement{
			Token:    pe.Token,
			Name:     pe.Name,
			Operator: pe.Operator,
			RHS:      pe.RHS,
		}, nil
	}

	if p.curIs(lexer.ASSIGN) {
		switch expr.(type) {
		case *ast.Identifier, *ast.ListExpression, *ast.IndexExpression, *ast.FieldAccessExpression:
		default:
			return nil, p.errorf("invalid assignment target")
		}
		tok := p.cur
		p.next() // consume '='
		rhs, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if list, ok := expr.(*ast.ListExpression); ok {
			markPackItems(list)
		}
		return &ast.AssignmentStatement{Token: tok, LHS: expr, RHS: rhs}, nil
	}

	return &ast.ExpressionStatement{Token: startTok, Expression: expr}, nil
}

// markPackItems reinterprets a list pattern's spread-marked items as pack
// items once it's confirmed to be an assignment target: `*name` means
// spread inside a list literal but pack inside a destructuring pattern,
// and the grammar can't tell which until it sees the '=' that follows.
// Recurses into nested list items so a nested pattern like
// `[x, [a, *b]] = ...` also gets its inner `*b` converted.
func markPackItems(list *ast.ListExpression) {
	for i := range list.Items {
		if list.Items[i].IsSpread {
			list.Items[i].IsSpread = false
			list.Items[i].IsPack = true
		}
		if nested, ok := list.Items[i].Expression.(*ast.ListExpression); ok {
			markPackItems(nested)
		}
	}
}
