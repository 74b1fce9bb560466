package lexer

import "testing"

func TestNextTokenOperatorsAndPunctuation(t *testing.T) {
	input := `= + - * / ** < > == != += -= *= /= . , ; ( ) { } [ ]`
	want := []TokenType{
		ASSIGN, PLUS, MINUS, STAR, SLASH, DSTAR, LT, GT, EQ, NEQ,
		PLUS_EQ, MINUS_EQ, STAR_EQ, SLASH_EQ, DOT, COMMA, SEMICOLON,
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, EOF,
	}
	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, tt)
		}
	}
}

func TestNextTokenKeywords(t *testing.T) {
	input := "true false if elif else while for in fn return class init import this super private extends"
	want := []TokenType{
		TRUE, FALSE, IF, ELIF, ELSE, WHILE, FOR, IN, FN, RETURN,
		CLASS, INIT, IMPORT, THIS, SUPER, PRIVATE, EXTENDS, EOF,
	}
	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, tt)
		}
	}
}

func TestNextTokenIdentifiersAndLiterals(t *testing.T) {
	input := `foo 123 1.5 "hi there" 'a'`
	l := New(input)

	tok := l.NextToken()
	if tok.Type != IDENT || tok.Literal != "foo" {
		t.Fatalf("got %v, want IDENT(foo)", tok)
	}
	tok = l.NextToken()
	if tok.Type != INT || tok.Literal != "123" {
		t.Fatalf("got %v, want INT(123)", tok)
	}
	tok = l.NextToken()
	if tok.Type != FLOAT || tok.Literal != "1.5" {
		t.Fatalf("got %v, want FLOAT(1.5)", tok)
	}
	tok = l.NextToken()
	if tok.Type != STRING || tok.Literal != "hi there" {
		t.Fatalf("got %v, want STRING(hi there)", tok)
	}
	tok = l.NextToken()
	if tok.Type != CHAR || tok.Literal != "a" {
		t.Fatalf("got %v, want CHAR(a)", tok)
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\nb\t\"c\""`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("got %v, want STRING", tok)
	}
	want := "a\nb\t\"c\""
	if tok.Literal != want {
		t.Fatalf("got %q, want %q", tok.Literal, want)
	}
}

func TestUnterminatedStringIsIllegal(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("got %v, want ILLEGAL", tok)
	}
}

func TestLineComment(t *testing.T) {
	l := New("x // this is ignored\ny")
	tok := l.NextToken()
	if tok.Type != IDENT || tok.Literal != "x" {
		t.Fatalf("got %v, want IDENT(x)", tok)
	}
	tok = l.NextToken()
	if tok.Type != IDENT || tok.Literal != "y" {
		t.Fatalf("got %v, want IDENT(y)", tok)
	}
	if tok.Pos.Line != 2 {
		t.Fatalf("y should be on line 2, got line %d", tok.Pos.Line)
	}
}

func TestNegativeNumberIsMinusThenInt(t *testing.T) {
	l := New("-5")
	tok := l.NextToken()
	if tok.Type != MINUS {
		t.Fatalf("got %v, want MINUS", tok)
	}
	tok = l.NextToken()
	if tok.Type != INT || tok.Literal != "5" {
		t.Fatalf("got %v, want INT(5)", tok)
	}
}
