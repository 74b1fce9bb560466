package eval

import (
	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/environment"
	"github.com/brnstm-lang/brnstm/internal/errors"
	"github.com/brnstm-lang/brnstm/internal/operators"
	"github.com/brnstm-lang/brnstm/internal/value"
)

func (interp *Interpreter) evalExpression(env *environment.Environment, expr ast.Expression, importing bool) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return value.Int{Value: e.Value}, nil
	case *ast.FloatLiteral:
		return value.Float{Value: e.Value}, nil
	case *ast.StringLiteral:
		return value.Str{Value: e.Value}, nil
	case *ast.BooleanLiteral:
		return value.Bool{Value: e.Value}, nil
	case *ast.CharLiteral:
		return value.Char{Value: e.Value}, nil
	case *ast.Identifier:
		v, ok := env.Get(e.Value)
		if !ok {
			return nil, errors.NewAt(errors.NameError, e.Pos(), "'%s' is not defined", e.Value)
		}
		return v, nil
	case *ast.OperationExpression:
		lhs, err := interp.evalExpression(env, e.LHS, importing)
		if err != nil {
			return nil, err
		}
		rhs, err := interp.evalExpression(env, e.RHS, importing)
		if err != nil {
			return nil, err
		}
		return operators.Apply(e.Operator, lhs, rhs)
	case *ast.PrefixExpression:
		return interp.evalPrefix(env, e, importing)
	case *ast.ListExpression:
		return interp.evalListLiteral(env, e, importing)
	case *ast.IndexExpression:
		return interp.evalIndex(env, e, importing)
	case *ast.CallExpression:
		return interp.evalCall(env, e, importing)
	case *ast.ComprehensionExpression:
		return interp.evalComprehension(env, e, importing)
	case *ast.ClassDefExpression:
		return interp.evalClassDef(env, e)
	case *ast.ObjectCreationExpression:
		return interp.evalObjectCreation(env, e, importing)
	case *ast.FieldAccessExpression:
		return interp.evalFieldAccess(env, e)
	case *ast.MethodCallExpression:
		return interp.evalMethodCall(env, e, importing)
	}
	return nil, errors.NewAt(errors.TypeError, expr.Pos(), "unhandled expression %T", expr)
}

func (interp *Interpreter) evalExpressions(env *environment.Environment, exprs []ast.Expression, importing bool) ([]value.Value, error) {
	out := make([]value.Value, 0, len(exprs))
	for _, e := range exprs {
		v, err := interp.evalExpression(env, e, importing)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (interp *Interpreter) evalPrefix(env *environment.Environment, e *ast.PrefixExpression, importing bool) (value.Value, error) {
	lhs, ok := env.Get(e.Name)
	if !ok {
		return nil, errors.NewAt(errors.NameError, e.Pos(), "'%s' is not defined", e.Name)
	}
	rhs, err := interp.evalExpression(env, e.RHS, importing)
	if err != nil {
		return nil, err
	}
	result, err := operators.Apply(e.Operator, lhs, rhs)
	if err != nil {
		return nil, err
	}
	env.Set(e.Name, result)
	return result, nil
}

func (interp *Interpreter) evalListLiteral(env *environment.Environment, e *ast.ListExpression, importing bool) (value.Value, error) {
	var out []value.Value
	for _, item := range e.Items {
		v, err := interp.evalExpression(env, item.Expression, importing)
		if err != nil {
			return nil, err
		}
		if !item.IsSpread {
			out = append(out, v)
			continue
		}
		list, ok := v.(value.List)
		if !ok {
			return nil, errors.NewAt(errors.TypeError, item.Expression.Pos(), "only lists can be spread")
		}
		out = append(out, list.Elements...)
	}
	return value.List{Elements: out}, nil
}

func (interp *Interpreter) evalIndex(env *environment.Environment, e *ast.IndexExpression, importing bool) (value.Value, error) {
	target, ok := env.Get(e.Name)
	if !ok {
		return nil, errors.NewAt(errors.NameError, e.Pos(), "'%s' is not defined", e.Name)
	}
	idxVal, err := interp.evalExpression(env, e.Index, importing)
	if err != nil {
		return nil, err
	}
	idx, ok := idxVal.(value.Int)
	if !ok {
		return nil, errors.NewAt(errors.TypeError, e.Pos(), "index must be an Int")
	}

	switch t := target.(type) {
	case value.List:
		pos, err := resolveIndex(int(idx.Value), len(t.Elements), e)
		if err != nil {
			return nil, err
		}
		return t.Elements[pos], nil
	case value.Str:
		runes := []rune(t.Value)
		pos, err := resolveIndex(int(idx.Value), len(runes), e)
		if err != nil {
			return nil, err
		}
		return value.Char{Value: runes[pos]}, nil
	default:
		return nil, errors.NewAt(errors.TypeError, e.Pos(), "'%s' is not indexable", e.Name)
	}
}

// resolveIndex applies the negative-index rule: index i<0 selects
// len-|i|, so -len selects the first element; an index i >= len or
// i < -len is a BoundsError.
func resolveIndex(i, length int, e *ast.IndexExpression) (int, error) {
	pos := i
	if pos < 0 {
		pos = length + pos
	}
	if pos < 0 || pos >= length {
		return 0, errors.NewAt(errors.BoundsError, e.Pos(), "index %d out of range for length %d", i, length)
	}
	return pos, nil
}

func (interp *Interpreter) evalComprehension(env *environment.Environment, e *ast.ComprehensionExpression, importing bool) (value.Value, error) {
	controlVal, err := interp.evalExpression(env, e.Control, importing)
	if err != nil {
		return nil, err
	}
	if !value.Iterable(controlVal) {
		return nil, errors.NewAt(errors.TypeError, e.Pos(), "%s is not iterable", controlVal.Type())
	}

	var out []value.Value
	for _, elem := range value.Iterate(controlVal) {
		local := env.Clone()
		local.Set(e.Var, elem)
		v, err := interp.evalExpression(local, e.Iterate, importing)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return value.List{Elements: out}, nil
}
