// Package operators is the operator engine: it applies a binary Operator
// to a pair of values using the value algebra in internal/value, turning
// an undefined pairing into a TypeError.
package operators

import (
	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/errors"
	"github.com/brnstm-lang/brnstm/internal/value"
)

// Apply dispatches (op, lhs, rhs) to the value algebra and returns the
// resulting Value, or a *errors.EvalError on an incompatible pairing.
func Apply(op ast.Operator, lhs, rhs value.Value) (value.Value, error) {
	switch op {
	case ast.Plus:
		if v, ok := value.Add(lhs, rhs); ok {
			return v, nil
		}
		return nil, invalidOperation(op, lhs, rhs)
	case ast.Minus:
		if v, ok := value.Sub(lhs, rhs); ok {
			return v, nil
		}
		return nil, invalidOperation(op, lhs, rhs)
	case ast.Times:
		if v, ok := value.Mul(lhs, rhs); ok {
			return v, nil
		}
		return nil, invalidOperation(op, lhs, rhs)
	case ast.Divide:
		if v, ok := value.Div(lhs, rhs); ok {
			return v, nil
		}
		return nil, invalidOperation(op, lhs, rhs)
	case ast.LessThan:
		cmp, ok := value.Compare(lhs, rhs)
		if !ok {
			return nil, invalidOperation(op, lhs, rhs)
		}
		return value.Bool{Value: cmp < 0}, nil
	case ast.GreaterThan:
		cmp, ok := value.Compare(lhs, rhs)
		if !ok {
			return nil, invalidOperation(op, lhs, rhs)
		}
		return value.Bool{Value: cmp > 0}, nil
	case ast.Equal:
		return value.Bool{Value: value.Equal(lhs, rhs)}, nil
	case ast.NotEqual:
		return value.Bool{Value: value.NotEqual(lhs, rhs)}, nil
	}
	return nil, errors.New(errors.TypeError, "unknown operator %s", op)
}

func invalidOperation(op ast.Operator, lhs, rhs value.Value) error {
	return errors.New(errors.TypeError,
		"Invalid Operation: %s %s %s", lhs.Type(), op, rhs.Type())
}
