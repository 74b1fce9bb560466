package environment

import (
	"testing"

	"github.com/brnstm-lang/brnstm/internal/value"
)

func TestSetAndGet(t *testing.T) {
	env := New()
	env.Set("x", value.Int{Value: 5})
	got, ok := env.Get("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if got.(value.Int).Value != 5 {
		t.Fatalf("Get(x) = %v, want 5", got)
	}
}

func TestGetUnbound(t *testing.T) {
	env := New()
	if _, ok := env.Get("missing"); ok {
		t.Fatal("expected missing to be unbound")
	}
	if env.Has("missing") {
		t.Fatal("Has(missing) should be false")
	}
}

func TestDiscardIdentifier(t *testing.T) {
	env := New()
	env.Set("_", value.Int{Value: 1})
	if env.Has("_") {
		t.Fatal("_ should never be bound")
	}
}

func TestCloneIsolatesMutations(t *testing.T) {
	env := New()
	env.Set("x", value.Int{Value: 1})
	clone := env.Clone()
	clone.Set("x", value.Int{Value: 2})
	clone.Set("y", value.Int{Value: 3})

	orig, _ := env.Get("x")
	if orig.(value.Int).Value != 1 {
		t.Fatalf("original x mutated by clone: got %v", orig)
	}
	if env.Has("y") {
		t.Fatal("new binding in clone leaked back to original")
	}
}
