package operators

import (
	"testing"

	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/errors"
	"github.com/brnstm-lang/brnstm/internal/value"
)

func TestApplyArithmetic(t *testing.T) {
	got, err := Apply(ast.Plus, value.Int{Value: 2}, value.Int{Value: 3})
	if err != nil {
		t.Fatalf("Apply(Plus) error: %v", err)
	}
	if got.(value.Int).Value != 5 {
		t.Fatalf("Apply(Plus, 2, 3) = %v, want 5", got)
	}
}

func TestApplyComparison(t *testing.T) {
	got, err := Apply(ast.LessThan, value.Int{Value: 2}, value.Int{Value: 3})
	if err != nil {
		t.Fatalf("Apply(LessThan) error: %v", err)
	}
	if !got.(value.Bool).Value {
		t.Fatal("Apply(LessThan, 2, 3) should be true")
	}
}

func TestApplyEqualNeverErrors(t *testing.T) {
	got, err := Apply(ast.Equal, value.Str{Value: "a"}, value.Int{Value: 1})
	if err != nil {
		t.Fatalf("Apply(Equal) should never error, got %v", err)
	}
	if got.(value.Bool).Value {
		t.Fatal("Str(\"a\") should not equal Int(1)")
	}
}

func TestApplyInvalidOperationIsTypeError(t *testing.T) {
	_, err := Apply(ast.Plus, value.Str{Value: "a"}, value.Int{Value: 1})
	if err == nil {
		t.Fatal("expected a TypeError for Str + Int")
	}
	evalErr, ok := err.(*errors.EvalError)
	if !ok {
		t.Fatalf("expected *errors.EvalError, got %T", err)
	}
	if evalErr.Kind != errors.TypeError {
		t.Fatalf("Kind = %v, want TypeError", evalErr.Kind)
	}
}

func TestApplyInvalidComparison(t *testing.T) {
	_, err := Apply(ast.LessThan, value.List{}, value.List{})
	if err == nil {
		t.Fatal("expected a TypeError for incomparable LessThan")
	}
}
