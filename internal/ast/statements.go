package ast

import (
	"fmt"
	"strings"

	"github.com/brnstm-lang/brnstm/internal/lexer"
)

// ExpressionStatement evaluates an expression and discards the result.
type ExpressionStatement struct {
	Token      lexer.Token
	Expression Expression
}

func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) Pos() lexer.Position  { return s.Token.Pos }
func (s *ExpressionStatement) String() string       { return s.Expression.String() }

// AssignmentStatement assigns an evaluated RHS into an LHS target pattern.
type AssignmentStatement struct {
	Token lexer.Token
	LHS   Expression
	RHS   Expression
}

func (s *AssignmentStatement) statementNode()       {}
func (s *AssignmentStatement) TokenLiteral() string { return s.Token.Literal }
func (s *AssignmentStatement) Pos() lexer.Position  { return s.Token.Pos }
func (s *AssignmentStatement) String() string {
	return fmt.Sprintf("%s = %s", s.LHS.String(), s.RHS.String())
}

// OperatorAssignmentStatement is `name += rhs` and its siblings (-=, *=, /=).
type OperatorAssignmentStatement struct {
	Token    lexer.Token
	Name     string
	Operator Operator
	RHS      Expression
}

func (s *OperatorAssignmentStatement) statementNode()       {}
func (s *OperatorAssignmentStatement) TokenLiteral() string { return s.Token.Literal }
func (s *OperatorAssignmentStatement) Pos() lexer.Position  { return s.Token.Pos }
func (s *OperatorAssignmentStatement) String() string {
	return fmt.Sprintf("%s %s= %s", s.Name, s.Operator, s.RHS.String())
}

// FunctionDefinitionStatement installs a UserDefFunction binding.
type FunctionDefinitionStatement struct {
	Token      lexer.Token
	Name       string
	Parameters []string
	Body       []Statement
	Return     Expression // nil if the function has no return expression
}

func (s *FunctionDefinitionStatement) statementNode()       {}
func (s *FunctionDefinitionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *FunctionDefinitionStatement) Pos() lexer.Position  { return s.Token.Pos }
func (s *FunctionDefinitionStatement) String() string {
	return fmt.Sprintf("fn %s(%s) { ... }", s.Name, strings.Join(s.Parameters, ", "))
}

// ImportStatement re-evaluates the program found at Path into the current environment.
type ImportStatement struct {
	Token lexer.Token
	Path  string
}

func (s *ImportStatement) statementNode()       {}
func (s *ImportStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ImportStatement) Pos() lexer.Position  { return s.Token.Pos }
func (s *ImportStatement) String() string       { return fmt.Sprintf("import %s", s.Path) }
