// Package ast defines the Abstract Syntax Tree node types the parser
// produces and the evaluator consumes.
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/brnstm-lang/brnstm/internal/lexer"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is any node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself being a value.
type Statement interface {
	Node
	statementNode()
}

// Operator is one of the eight binary operators the operator engine supports.
type Operator int

const (
	Plus Operator = iota
	Minus
	Times
	Divide
	LessThan
	GreaterThan
	Equal
	NotEqual
)

func (o Operator) String() string {
	switch o {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Divide:
		return "/"
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	default:
		return "?"
	}
}

// Program is the root node: an ordered list of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

// Identifier is a bare name reference: a variable, function, or class name.
type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) expressionNode()        {}
func (i *Identifier) TokenLiteral() string   { return i.Token.Literal }
func (i *Identifier) String() string         { return i.Value }
func (i *Identifier) Pos() lexer.Position    { return i.Token.Pos }

// IntLiteral is an Int expression literal.
type IntLiteral struct {
	Token lexer.Token
	Value int32
}

func (e *IntLiteral) expressionNode()      {}
func (e *IntLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *IntLiteral) String() string       { return e.Token.Literal }
func (e *IntLiteral) Pos() lexer.Position  { return e.Token.Pos }

// FloatLiteral is a Float expression literal.
type FloatLiteral struct {
	Token lexer.Token
	Value float64
}

func (e *FloatLiteral) expressionNode()      {}
func (e *FloatLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *FloatLiteral) String() string       { return e.Token.Literal }
func (e *FloatLiteral) Pos() lexer.Position  { return e.Token.Pos }

// StringLiteral is a Str expression literal.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (e *StringLiteral) expressionNode()      {}
func (e *StringLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *StringLiteral) String() string       { return fmt.Sprintf("%q", e.Value) }
func (e *StringLiteral) Pos() lexer.Position  { return e.Token.Pos }

// CharLiteral is a Char expression literal.
type CharLiteral struct {
	Token lexer.Token
	Value rune
}

func (e *CharLiteral) expressionNode()      {}
func (e *CharLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *CharLiteral) String() string       { return fmt.Sprintf("'%c'", e.Value) }
func (e *CharLiteral) Pos() lexer.Position  { return e.Token.Pos }

// BooleanLiteral is a Bool expression literal.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (e *BooleanLiteral) expressionNode()      {}
func (e *BooleanLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *BooleanLiteral) String() string       { return e.Token.Literal }
func (e *BooleanLiteral) Pos() lexer.Position  { return e.Token.Pos }

// ListItem is one element of a List literal or a list destructuring pattern.
type ListItem struct {
	Expression Expression
	IsSpread   bool // rhs-only: *expr, inlines a nested list's elements
	IsPack     bool // lhs-only: *name, collects trailing elements
}

// ListExpression is a list literal (rhs) or a list pattern (assignment lhs).
type ListExpression struct {
	Token lexer.Token // the '[' token
	Items []ListItem
}

func (e *ListExpression) expressionNode()      {}
func (e *ListExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ListExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *ListExpression) String() string {
	parts := make([]string, len(e.Items))
	for i, item := range e.Items {
		prefix := ""
		if item.IsSpread || item.IsPack {
			prefix = "*"
		}
		parts[i] = prefix + item.Expression.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// CallExpression invokes a named function (built-in or user-defined).
type CallExpression struct {
	Token    lexer.Token // the function name token
	Function string
	Args     []Expression
}

func (e *CallExpression) expressionNode()      {}
func (e *CallExpression) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *CallExpression) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Function, strings.Join(args, ", "))
}

// OperationExpression applies a binary Operator to two operands.
type OperationExpression struct {
	Token    lexer.Token
	LHS      Expression
	RHS      Expression
	Operator Operator
}

func (e *OperationExpression) expressionNode()      {}
func (e *OperationExpression) TokenLiteral() string { return e.Token.Literal }
func (e *OperationExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *OperationExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", e.LHS.String(), e.Operator, e.RHS.String())
}

// PrefixExpression is a compound-assignment used in expression position:
// it reads Name, applies Operator against RHS, writes the result back to
// Name, and evaluates to that result.
type PrefixExpression struct {
	Token    lexer.Token
	Name     string
	Operator Operator
	RHS      Expression
}

func (e *PrefixExpression) expressionNode()      {}
func (e *PrefixExpression) TokenLiteral() string { return e.Token.Literal }
func (e *PrefixExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *PrefixExpression) String() string {
	return fmt.Sprintf("(%s %s= %s)", e.Name, e.Operator, e.RHS.String())
}

// IndexExpression reads Name[Index] — Name must hold a List or Str.
type IndexExpression struct {
	Token lexer.Token
	Name  string
	Index Expression
}

func (e *IndexExpression) expressionNode()      {}
func (e *IndexExpression) TokenLiteral() string { return e.Token.Literal }
func (e *IndexExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *IndexExpression) String() string {
	return fmt.Sprintf("%s[%s]", e.Name, e.Index.String())
}

// ComprehensionExpression is `[Iterate for Var in Control]`.
type ComprehensionExpression struct {
	Token   lexer.Token
	Iterate Expression
	Var     string
	Control Expression
}

func (e *ComprehensionExpression) expressionNode()      {}
func (e *ComprehensionExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ComprehensionExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *ComprehensionExpression) String() string {
	return fmt.Sprintf("[%s for %s in %s]", e.Iterate.String(), e.Var, e.Control.String())
}

// FieldAccessExpression reads Receiver.Field.
type FieldAccessExpression struct {
	Token    lexer.Token
	Receiver string
	Field    string
}

func (e *FieldAccessExpression) expressionNode()      {}
func (e *FieldAccessExpression) TokenLiteral() string { return e.Token.Literal }
func (e *FieldAccessExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *FieldAccessExpression) String() string {
	return fmt.Sprintf("%s.%s", e.Receiver, e.Field)
}

// ObjectCreationExpression instantiates ClassName(Args...).
type ObjectCreationExpression struct {
	Token     lexer.Token
	ClassName string
	Args      []Expression
}

func (e *ObjectCreationExpression) expressionNode()      {}
func (e *ObjectCreationExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ObjectCreationExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *ObjectCreationExpression) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.ClassName, strings.Join(args, ", "))
}

// MethodCallExpression invokes Receiver.Method(Args...).
type MethodCallExpression struct {
	Token    lexer.Token
	Receiver string
	Method   string
	Args     []Expression
}

func (e *MethodCallExpression) expressionNode()      {}
func (e *MethodCallExpression) TokenLiteral() string { return e.Token.Literal }
func (e *MethodCallExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *MethodCallExpression) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s.%s(%s)", e.Receiver, e.Method, strings.Join(args, ", "))
}
