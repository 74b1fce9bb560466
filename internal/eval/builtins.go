package eval

import (
	"fmt"

	"github.com/brnstm-lang/brnstm/internal/environment"
	"github.com/brnstm-lang/brnstm/internal/errors"
	"github.com/brnstm-lang/brnstm/internal/value"
)

// installBuiltins binds the four built-in functions into env. print and
// println carry a nil Fn: their output destination depends on the calling
// Interpreter, so callBuiltin special-cases them by name instead of
// invoking a closure.
func installBuiltins(env *environment.Environment) {
	env.Set("print", value.Function{Name: "print", Fn: nil})
	env.Set("println", value.Function{Name: "println", Fn: nil})
	env.Set("range", value.Function{Name: "range", Fn: rangeBuiltin})
	env.Set("range_step", value.Function{Name: "range_step", Fn: rangeStepBuiltin})
}

// callBuiltin invokes a native Function, routing print/println to out.
// While importing, print and println are silently suppressed to Null so
// that loading a module never produces output of its own.
func (interp *Interpreter) callBuiltin(fn value.Function, args []value.Value, importing bool) (value.Value, error) {
	switch fn.Name {
	case "print":
		if importing {
			return value.Null{}, nil
		}
		for _, a := range args {
			fmt.Fprint(interp.Out, a.String())
		}
		return value.Null{}, nil
	case "println":
		if importing {
			return value.Null{}, nil
		}
		for _, a := range args {
			fmt.Fprint(interp.Out, a.String())
		}
		fmt.Fprintln(interp.Out)
		return value.Null{}, nil
	default:
		return fn.Fn(args)
	}
}

func rangeBuiltin(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, errors.New(errors.ArityError, "range expects 2 arguments, got %d", len(args))
	}
	start, ok1 := args[0].(value.Int)
	end, ok2 := args[1].(value.Int)
	if !ok1 || !ok2 {
		return nil, errors.New(errors.TypeError, "range expects Int arguments")
	}
	out := make([]value.Value, 0, max0(end.Value-start.Value))
	for i := start.Value; i < end.Value; i++ {
		out = append(out, value.Int{Value: i})
	}
	return value.List{Elements: out}, nil
}

func rangeStepBuiltin(args []value.Value) (value.Value, error) {
	if len(args) != 3 {
		return nil, errors.New(errors.ArityError, "range_step expects 3 arguments, got %d", len(args))
	}
	start, ok1 := args[0].(value.Int)
	end, ok2 := args[1].(value.Int)
	step, ok3 := args[2].(value.Int)
	if !ok1 || !ok2 || !ok3 {
		return nil, errors.New(errors.TypeError, "range_step expects Int arguments")
	}
	if step.Value <= 0 {
		return nil, errors.New(errors.TypeError, "range_step requires a positive Int step")
	}
	var out []value.Value
	for i := start.Value; i < end.Value; i += step.Value {
		out = append(out, value.Int{Value: i})
	}
	return value.List{Elements: out}, nil
}

func max0(n int32) int32 {
	if n < 0 {
		return 0
	}
	return n
}
