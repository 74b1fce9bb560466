// This file contains AST nodes for class definitions: fields, init, methods.
package ast

import (
	"fmt"
	"strings"

	"github.com/brnstm-lang/brnstm/internal/lexer"
)

// ClassFieldDecl is a single declared field in a class body.
type ClassFieldDecl struct {
	Name      string
	IsPrivate bool
	Default   Expression
}

// ClassInitDecl is the optional constructor of a class.
type ClassInitDecl struct {
	Parameters []string
	Body       []Statement
}

// ClassMethodDecl is one method in a class body.
type ClassMethodDecl struct {
	Name       string
	Parameters []string
	Body       []Statement
	Return     Expression // nil if the method has no return expression
	IsPrivate  bool
}

// UserClass is the parsed shape of a `class` definition.
type UserClass struct {
	Name        string
	ParentClass string // "" if there is no `extends` clause
	Fields      []ClassFieldDecl
	Init        *ClassInitDecl // nil if the class declares no init
	Methods     []ClassMethodDecl
}

// ClassDefExpression installs a class as an Object-valued binding when evaluated.
type ClassDefExpression struct {
	Token lexer.Token
	Class *UserClass
}

func (e *ClassDefExpression) expressionNode()      {}
func (e *ClassDefExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ClassDefExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *ClassDefExpression) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "class %s", e.Class.Name)
	if e.Class.ParentClass != "" {
		fmt.Fprintf(&sb, " extends %s", e.Class.ParentClass)
	}
	sb.WriteString(" { ... }")
	return sb.String()
}
