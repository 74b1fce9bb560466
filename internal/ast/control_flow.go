package ast

import (
	"github.com/brnstm-lang/brnstm/internal/lexer"
)

// IfBranch is one `if`/`elif`/`else` chain.
type IfBranch struct {
	Condition Expression
	Body      []Statement
	ElifConds []Expression
	ElifBodys [][]Statement
	ElseBody  []Statement // nil if there is no else clause
}

// IfStatement evaluates an IfBranch.
type IfStatement struct {
	Token  lexer.Token
	Branch IfBranch
}

func (s *IfStatement) statementNode()       {}
func (s *IfStatement) TokenLiteral() string { return s.Token.Literal }
func (s *IfStatement) Pos() lexer.Position  { return s.Token.Pos }
func (s *IfStatement) String() string       { return "if " + s.Branch.Condition.String() + " { ... }" }

// WhileStatement repeats Body while Condition evaluates to Bool{true}.
type WhileStatement struct {
	Token     lexer.Token
	Condition Expression
	Body      []Statement
}

func (s *WhileStatement) statementNode()       {}
func (s *WhileStatement) TokenLiteral() string { return s.Token.Literal }
func (s *WhileStatement) Pos() lexer.Position  { return s.Token.Pos }
func (s *WhileStatement) String() string       { return "while " + s.Condition.String() + " { ... }" }

// ForLoop binds LoopVar to each element produced by IterateExpr and runs Body.
type ForLoop struct {
	LoopVar      string
	IterateExpr  Expression
	Body         []Statement
}

// ForStatement evaluates a ForLoop.
type ForStatement struct {
	Token lexer.Token
	Loop  ForLoop
}

func (s *ForStatement) statementNode()       {}
func (s *ForStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ForStatement) Pos() lexer.Position  { return s.Token.Pos }
func (s *ForStatement) String() string {
	return "for " + s.Loop.LoopVar + " in " + s.Loop.IterateExpr.String() + " { ... }"
}
