package eval

import (
	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/environment"
	"github.com/brnstm-lang/brnstm/internal/errors"
	"github.com/brnstm-lang/brnstm/internal/value"
)

// assign dispatches on the shape of the LHS expression and writes rhs
// into the target it names.
func (interp *Interpreter) assign(env *environment.Environment, lhs ast.Expression, rhs value.Value) error {
	switch l := lhs.(type) {
	case *ast.Identifier:
		env.Set(l.Value, rhs)
		return nil

	case *ast.ListExpression:
		list, ok := rhs.(value.List)
		if !ok {
			return errors.NewAt(errors.TypeError, lhs.Pos(), "cannot destructure non-list into list")
		}
		return interp.assignList(env, l.Items, list.Elements, lhs.Pos())

	case *ast.IndexExpression:
		return interp.assignIndex(env, l, rhs)

	case *ast.FieldAccessExpression:
		return interp.assignField(env, l, rhs)

	default:
		return errors.NewAt(errors.AssignmentError, lhs.Pos(), "cannot assign to %T", lhs)
	}
}

// assignList walks a list-destructuring pattern against rhs: each item
// binds one value, except that when the pattern is shorter than rhs its
// last item must be a pack and receives a List of the remaining values.
// When the lengths match, a trailing pack binds its single value as is.
func (interp *Interpreter) assignList(env *environment.Environment, lhs []ast.ListItem, rhs []value.Value, pos interface{ String() string }) error {
	m, n := len(lhs), len(rhs)
	if m > n {
		return errors.New(errors.ArityError, "cannot assign %d value(s) to %d item(s)", n, m)
	}

	for k := 0; k < n; k++ {
		if k == m-1 && m < n {
			if !lhs[k].IsPack {
				return errors.New(errors.ArityError, "cannot assign %d value(s) to %d item(s)", n, m)
			}
			packed := value.List{Elements: append([]value.Value(nil), rhs[k:]...)}
			if err := interp.assign(env, lhs[k].Expression, packed); err != nil {
				return err
			}
			return nil
		}

		if lhs[k].IsSpread {
			return errors.New(errors.AssignmentError, "cannot use spread in a destructuring pattern")
		}

		if err := interp.assign(env, lhs[k].Expression, rhs[k]); err != nil {
			return err
		}
	}

	return nil
}

func (interp *Interpreter) assignIndex(env *environment.Environment, l *ast.IndexExpression, rhs value.Value) error {
	target, ok := env.Get(l.Name)
	if !ok {
		return errors.NewAt(errors.NameError, l.Pos(), "'%s' is not defined", l.Name)
	}
	list, ok := target.(value.List)
	if !ok {
		return errors.NewAt(errors.AssignmentError, l.Pos(), "'%s' is not a list", l.Name)
	}

	idxVal, err := interp.evalExpression(env, l.Index, false)
	if err != nil {
		return err
	}
	idx, ok := idxVal.(value.Int)
	if !ok {
		return errors.NewAt(errors.TypeError, l.Pos(), "index must be an Int")
	}
	pos, err := resolveIndex(int(idx.Value), len(list.Elements), l)
	if err != nil {
		return err
	}

	updated := list.Clone()
	updated.Elements[pos] = rhs
	env.Set(l.Name, updated)
	return nil
}

func (interp *Interpreter) assignField(env *environment.Environment, l *ast.FieldAccessExpression, rhs value.Value) error {
	if l.Receiver == "this" {
		if !env.Has(l.Field) {
			return errors.NewAt(errors.AssignmentError, l.Pos(), "field '%s' does not exist on this", l.Field)
		}
		env.Set(l.Field, rhs)
		return nil
	}

	recv, ok := env.Get(l.Receiver)
	if !ok {
		return errors.NewAt(errors.NameError, l.Pos(), "'%s' is not defined", l.Receiver)
	}
	obj, ok := recv.(value.Object)
	if !ok {
		return errors.NewAt(errors.TypeError, l.Pos(), "'%s' is not an object", l.Receiver)
	}
	field, ok := obj.Fields[l.Field]
	if !ok {
		return errors.NewAt(errors.AssignmentError, l.Pos(), "'%s' has no field '%s'", l.Receiver, l.Field)
	}
	if field.IsPrivate {
		return errors.NewAt(errors.AssignmentError, l.Pos(), "'%s' is a private field", l.Field)
	}

	// Clone-then-rebind rather than mutate obj.Fields in place, so any
	// other binding that aliases the same Object keeps seeing the
	// pre-write field values.
	fields := obj.CloneFields()
	fields[l.Field].Value = rhs
	env.Set(l.Receiver, value.Object{
		ClassName:   obj.ClassName,
		Fields:      fields,
		Init:        obj.Init,
		Methods:     obj.Methods,
		ParentClass: obj.ParentClass,
	})
	return nil
}
