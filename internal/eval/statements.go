package eval

import (
	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/environment"
	"github.com/brnstm-lang/brnstm/internal/errors"
	"github.com/brnstm-lang/brnstm/internal/operators"
	"github.com/brnstm-lang/brnstm/internal/value"
)

func (interp *Interpreter) evalStatement(env *environment.Environment, stmt ast.Statement, importing bool) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		_, err := interp.evalExpression(env, s.Expression, importing)
		return err

	case *ast.AssignmentStatement:
		rhs, err := interp.evalExpression(env, s.RHS, importing)
		if err != nil {
			return err
		}
		return interp.assign(env, s.LHS, rhs)

	case *ast.OperatorAssignmentStatement:
		return interp.evalOperatorAssignment(env, s, importing)

	case *ast.IfStatement:
		return interp.evalIf(env, s.Branch, importing)

	case *ast.WhileStatement:
		return interp.evalWhile(env, s, importing)

	case *ast.ForStatement:
		return interp.evalFor(env, s, importing)

	case *ast.FunctionDefinitionStatement:
		if env.Has(s.Name) {
			return errors.NewAt(errors.RedefinitionError, s.Pos(), "'%s' is already defined", s.Name)
		}
		env.Set(s.Name, value.UserDefFunction{
			Name:       s.Name,
			Parameters: s.Parameters,
			Body:       s.Body,
			Return:     s.Return,
		})
		return nil

	case *ast.ImportStatement:
		return interp.evalImport(env, s, importing)

	default:
		return errors.NewAt(errors.TypeError, stmt.Pos(), "unhandled statement %T", stmt)
	}
}

func (interp *Interpreter) evalOperatorAssignment(env *environment.Environment, s *ast.OperatorAssignmentStatement, importing bool) error {
	lhs, ok := env.Get(s.Name)
	if !ok {
		return errors.NewAt(errors.NameError, s.Pos(), "'%s' is not defined", s.Name)
	}
	rhs, err := interp.evalExpression(env, s.RHS, importing)
	if err != nil {
		return err
	}
	result, err := operators.Apply(s.Operator, lhs, rhs)
	if err != nil {
		return err
	}
	env.Set(s.Name, result)
	return nil
}

func (interp *Interpreter) evalIf(env *environment.Environment, branch ast.IfBranch, importing bool) error {
	cond, err := interp.evalCondition(env, branch.Condition, importing)
	if err != nil {
		return err
	}
	if cond {
		return interp.evalStatements(env, branch.Body, importing)
	}

	for i, elifCond := range branch.ElifConds {
		ok, err := interp.evalCondition(env, elifCond, importing)
		if err != nil {
			return err
		}
		if ok {
			return interp.evalStatements(env, branch.ElifBodys[i], importing)
		}
	}

	if branch.ElseBody != nil {
		return interp.evalStatements(env, branch.ElseBody, importing)
	}
	return nil
}

func (interp *Interpreter) evalWhile(env *environment.Environment, s *ast.WhileStatement, importing bool) error {
	for {
		cond, err := interp.evalCondition(env, s.Condition, importing)
		if err != nil {
			return err
		}
		if !cond {
			return nil
		}
		if err := interp.evalStatements(env, s.Body, importing); err != nil {
			return err
		}
	}
}

// evalFor only accepts a List as the iteration source — unlike a
// comprehension's Control expression, which also accepts a Str. The
// source expression is also restricted by AST kind: a list literal, an
// identifier, or a call, rejected before evaluation regardless of what
// it would evaluate to, matching the original interpreter's exhaustive
// match on the iterate expression's shape.
func (interp *Interpreter) evalFor(env *environment.Environment, s *ast.ForStatement, importing bool) error {
	switch s.Loop.IterateExpr.(type) {
	case *ast.ListExpression, *ast.Identifier, *ast.CallExpression:
	default:
		return errors.NewAt(errors.TypeError, s.Pos(), "for loop source must be a list literal, identifier, or call, got %s", s.Loop.IterateExpr)
	}

	v, err := interp.evalExpression(env, s.Loop.IterateExpr, importing)
	if err != nil {
		return err
	}
	list, ok := v.(value.List)
	if !ok {
		return errors.NewAt(errors.TypeError, s.Pos(), "for loop source must be a List, got %s", v.Type())
	}

	for _, elem := range list.Elements {
		env.Set(s.Loop.LoopVar, elem)
		if err := interp.evalStatements(env, s.Loop.Body, importing); err != nil {
			return err
		}
	}
	return nil
}

func (interp *Interpreter) evalCondition(env *environment.Environment, expr ast.Expression, importing bool) (bool, error) {
	v, err := interp.evalExpression(env, expr, importing)
	if err != nil {
		return false, err
	}
	b, ok := v.(value.Bool)
	if !ok {
		return false, errors.NewAt(errors.TypeError, expr.Pos(), "condition must be a Bool, got %s", v.Type())
	}
	return b.Value, nil
}

// evalImport loads the referenced module and re-evaluates it against the
// same environment the import statement runs in, with importing forced
// to true regardless of the importer's own mode, so print/println stay
// suppressed for the whole transitive import chain.
func (interp *Interpreter) evalImport(env *environment.Environment, s *ast.ImportStatement, importing bool) error {
	if interp.Loader == nil {
		return errors.NewAt(errors.ImportError, s.Pos(), "imports are not supported in this context")
	}
	program, err := interp.Loader.Load(s.Path)
	if err != nil {
		return errors.NewAt(errors.ImportError, s.Pos(), "cannot import '%s': %s", s.Path, err)
	}
	return interp.evalStatements(env, program.Statements, true)
}
