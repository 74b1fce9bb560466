package eval

import (
	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/environment"
	"github.com/brnstm-lang/brnstm/internal/errors"
	"github.com/brnstm-lang/brnstm/internal/value"
)

func (interp *Interpreter) evalCall(env *environment.Environment, e *ast.CallExpression, importing bool) (value.Value, error) {
	args, err := interp.evalExpressions(env, e.Args, importing)
	if err != nil {
		return nil, err
	}

	target, ok := env.Get(e.Function)
	if !ok {
		return nil, errors.NewAt(errors.NameError, e.Pos(), "'%s' is not defined", e.Function)
	}

	switch fn := target.(type) {
	case value.Function:
		return interp.callBuiltin(fn, args, importing)
	case value.UserDefFunction:
		return interp.callUserFunction(env, fn, args, importing)
	case value.Object:
		if e.Function == "super" {
			return interp.evalSuperConstructorCall(env, fn, args, importing)
		}
		return nil, errors.NewAt(errors.TypeError, e.Pos(), "'%s' is not a function", e.Function)
	default:
		return nil, errors.NewAt(errors.TypeError, e.Pos(), "'%s' is not a function", e.Function)
	}
}

// callUserFunction runs fn's body in a clone of the caller's environment
// with parameters bound, but evaluates the optional return expression
// against a fresh clone of the caller's pre-call environment — not the
// environment the body just ran in. A return expression can therefore
// never see the function's own parameters or any mutation the body made;
// it only sees bindings that already existed in the caller's scope (see
// DESIGN.md for why this surprising behavior is kept rather than fixed).
func (interp *Interpreter) callUserFunction(callerEnv *environment.Environment, fn value.UserDefFunction, args []value.Value, importing bool) (value.Value, error) {
	if len(args) != len(fn.Parameters) {
		return nil, errors.New(errors.ArityError, "'%s' expects %d argument(s), got %d", fn.Name, len(fn.Parameters), len(args))
	}

	local := callerEnv.Clone()
	for i, p := range fn.Parameters {
		local.Set(p, args[i])
	}
	if err := interp.evalStatements(local, fn.Body, importing); err != nil {
		return nil, err
	}

	if fn.Return == nil {
		return value.Null{}, nil
	}
	return interp.evalExpression(callerEnv.Clone(), fn.Return, importing)
}
