package parser

import (
	"strconv"
	"unicode"

	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/lexer"
)

// Precedence levels for the binary operators, lowest to highest. There is
// no unary minus in this grammar (the value algebra only defines binary
// Plus/Minus), so there is no prefix-operator precedence to model.
const (
	LOWEST int = iota
	EQUALS
	COMPARE
	SUM
	PRODUCT
)

var precedences = map[lexer.TokenType]int{
	lexer.EQ:    EQUALS,
	lexer.NEQ:   EQUALS,
	lexer.LT:    COMPARE,
	lexer.GT:    COMPARE,
	lexer.PLUS:  SUM,
	lexer.MINUS: SUM,
	lexer.STAR:  PRODUCT,
	lexer.SLASH: PRODUCT,
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		return prec
	}
	return LOWEST
}

func binaryOperator(tt lexer.TokenType) ast.Operator {
	switch tt {
	case lexer.PLUS:
		return ast.Plus
	case lexer.MINUS:
		return ast.Minus
	case lexer.STAR:
		return ast.Times
	case lexer.SLASH:
		return ast.Divide
	case lexer.LT:
		return ast.LessThan
	case lexer.GT:
		return ast.GreaterThan
	case lexer.EQ:
		return ast.Equal
	case lexer.NEQ:
		return ast.NotEqual
	default:
		return -1
	}
}

func compoundOperator(tt lexer.TokenType) ast.Operator {
	switch tt {
	case lexer.PLUS_EQ:
		return ast.Plus
	case lexer.MINUS_EQ:
		return ast.Minus
	case lexer.STAR_EQ:
		return ast.Times
	case lexer.SLASH_EQ:
		return ast.Divide
	default:
		return -1
	}
}

// parseExpression parses a full expression at the lowest precedence. Like
// every other parse* function in this package, it leaves p.cur on the
// token immediately following the expression.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseExpressionPrecedence(LOWEST)
}

func (p *Parser) parseExpressionPrecedence(precedence int) (ast.Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for precedence < p.curPrecedence() {
		tok := p.cur
		op := binaryOperator(tok.Type)
		opPrec := p.curPrecedence()
		p.next()
		right, err := p.parseExpressionPrecedence(opPrec)
		if err != nil {
			return nil, err
		}
		left = &ast.OperationExpression{Token: tok, LHS: left, RHS: right, Operator: op}
	}

	return left, nil
}

func (p *Parser) parsePrefix() (ast.Expression, error) {
	switch p.cur.Type {
	case lexer.INT:
		return p.parseIntLiteral()
	case lexer.FLOAT:
		return p.parseFloatLiteral()
	case lexer.STRING:
		return p.parseStringLiteral()
	case lexer.CHAR:
		return p.parseCharLiteral()
	case lexer.TRUE, lexer.FALSE:
		return p.parseBooleanLiteral()
	case lexer.IDENT:
		tok := p.cur
		p.next()
		return p.parseNamedExpression(tok.Literal, tok)
	case lexer.THIS:
		tok := p.cur
		p.next()
		return p.parseNamedExpression("this", tok)
	case lexer.SUPER:
		tok := p.cur
		p.next()
		return p.parseNamedExpression("super", tok)
	case lexer.LPAREN:
		return p.parseGroupedExpression()
	case lexer.LBRACKET:
		return p.parseListOrComprehension()
	case lexer.CLASS:
		return p.parseClassDef()
	default:
		return nil, p.errorf("unexpected token %s in expression", p.cur.Type)
	}
}

func (p *Parser) parseIntLiteral() (ast.Expression, error) {
	tok := p.cur
	v, err := strconv.ParseInt(tok.Literal, 10, 32)
	if err != nil {
		return nil, p.errorf("invalid int literal %q", tok.Literal)
	}
	p.next()
	return &ast.IntLiteral{Token: tok, Value: int32(v)}, nil
}

func (p *Parser) parseFloatLiteral() (ast.Expression, error) {
	tok := p.cur
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, p.errorf("invalid float literal %q", tok.Literal)
	}
	p.next()
	return &ast.FloatLiteral{Token: tok, Value: v}, nil
}

func (p *Parser) parseStringLiteral() (ast.Expression, error) {
	tok := p.cur
	p.next()
	return &ast.StringLiteral{Token: tok, Value: tok.Literal}, nil
}

func (p *Parser) parseCharLiteral() (ast.Expression, error) {
	tok := p.cur
	runes := []rune(tok.Literal)
	if len(runes) != 1 {
		return nil, p.errorf("invalid character literal %q", tok.Literal)
	}
	p.next()
	return &ast.CharLiteral{Token: tok, Value: runes[0]}, nil
}

func (p *Parser) parseBooleanLiteral() (ast.Expression, error) {
	tok := p.cur
	p.next()
	return &ast.BooleanLiteral{Token: tok, Value: tok.Type == lexer.TRUE}, nil
}

func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.next() // consume '('
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseNamedExpression handles everything that can follow a bare name
// (identifier, `this`, or `super`): a compound-assignment, a call or
// object-construction, an index, a field access, a method call, or just
// the name itself. name/tok are the already-consumed leading token.
func (p *Parser) parseNamedExpression(name string, tok lexer.Token) (ast.Expression, error) {
	switch p.cur.Type {
	case lexer.PLUS_EQ, lexer.MINUS_EQ, lexer.STAR_EQ, lexer.SLASH_EQ:
		op := compoundOperator(p.cur.Type)
		p.next()
		rhs, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.PrefixExpression{Token: tok, Name: name, Operator: op, RHS: rhs}, nil

	case lexer.LPAREN:
		args, err := p.parseArgumentList()
		if err != nil {
			return nil, err
		}
		// A capitalized callee names a class: Name(args) constructs an
		// instance rather than invoking a function. This is a parser
		// convention (the spec leaves the Call/ObjectCreation split to
		// the external parser) documented in DESIGN.md.
		if isClassName(name) {
			return &ast.ObjectCreationExpression{Token: tok, ClassName: name, Args: args}, nil
		}
		return &ast.CallExpression{Token: tok, Function: name, Args: args}, nil

	case lexer.LBRACKET:
		p.next() // consume '['
		idx, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		return &ast.IndexExpression{Token: tok, Name: name, Index: idx}, nil

	case lexer.DOT:
		p.next() // consume '.'
		field, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if p.curIs(lexer.LPAREN) {
			args, err := p.parseArgumentList()
			if err != nil {
				return nil, err
			}
			return &ast.MethodCallExpression{Token: tok, Receiver: name, Method: field.Literal, Args: args}, nil
		}
		return &ast.FieldAccessExpression{Token: tok, Receiver: name, Field: field.Literal}, nil

	default:
		return &ast.Identifier{Token: tok, Value: name}, nil
	}
}

func isClassName(name string) bool {
	if name == "this" || name == "super" || name == "" {
		return false
	}
	return unicode.IsUpper([]rune(name)[0])
}

// parseListOrComprehension parses `[...]`: an empty list, a list literal
// (optionally with spread items), or `[iterate for var in control]`.
// Whether a leading `*item` is ultimately a spread (rhs) or a pack (lhs
// destructuring target) isn't known until the statement parser sees
// whether '=' follows the closing bracket — see markPackItems.
func (p *Parser) parseListOrComprehension() (ast.Expression, error) {
	tok := p.cur
	p.next() // consume '['

	if p.curIs(lexer.RBRACKET) {
		p.next()
		return &ast.ListExpression{Token: tok}, nil
	}

	spread := false
	if p.curIs(lexer.STAR) {
		spread = true
		p.next()
	}
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.curIs(lexer.FOR) {
		if spread {
			return nil, p.errorf("spread is not valid in a comprehension")
		}
		p.next() // consume 'for'
		varName, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.IN); err != nil {
			return nil, err
		}
		control, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		return &ast.ComprehensionExpression{Token: tok, Iterate: first, Var: varName.Literal, Control: control}, nil
	}

	items := []ast.ListItem{{Expression: first, IsSpread: spread}}
	for p.curIs(lexer.COMMA) {
		p.next() // consume ','
		itemSpread := false
		if p.curIs(lexer.STAR) {
			itemSpread = true
			p.next()
		}
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, ast.ListItem{Expression: item, IsSpread: itemSpread})
	}

	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ListExpression{Token: tok, Items: items}, nil
}

// parseClassDef parses `class Name [extends Parent] { members }`. A
// member is either `init(params) { body }`, `[private] name(params) {
// body }` (a method), or `[private] name [= default]` (a field).
func (p *Parser) parseClassDef() (ast.Expression, error) {
	tok := p.cur
	p.next() // consume 'class'

	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	uc := &ast.UserClass{Name: name.Literal}

	if p.curIs(lexer.EXTENDS) {
		p.next()
		parent, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		uc.ParentClass = parent.Literal
	}

	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	p.skipTerminators()

	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		isPrivate := false
		if p.curIs(lexer.PRIVATE) {
			isPrivate = true
			p.next()
		}

		if p.curIs(lexer.INIT) {
			if uc.Init != nil {
				return nil, p.errorf("class '%s' declares more than one init", uc.Name)
			}
			p.next()
			params, err := p.parseParameterList()
			if err != nil {
				return nil, err
			}
			body, ret, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			if ret != nil {
				return nil, p.errorf("'return' is not valid in init")
			}
			uc.Init = &ast.ClassInitDecl{Parameters: params, Body: body}
			p.skipTerminators()
			continue
		}

		memberName, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}

		if p.curIs(lexer.LPAREN) {
			params, err := p.parseParameterList()
			if err != nil {
				return nil, err
			}
			body, ret, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			uc.Methods = append(uc.Methods, ast.ClassMethodDecl{
				Name:       memberName.Literal,
				Parameters: params,
				Body:       body,
				Return:     ret,
				IsPrivate:  isPrivate,
			})
			p.skipTerminators()
			continue
		}

		field := ast.ClassFieldDecl{Name: memberName.Literal, IsPrivate: isPrivate}
		if p.curIs(lexer.ASSIGN) {
			p.next()
			def, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			field.Default = def
		}
		uc.Fields = append(uc.Fields, field)
		p.skipTerminators()
	}

	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &ast.ClassDefExpression{Token: tok, Class: uc}, nil
}
