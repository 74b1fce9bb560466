package eval

import (
	"bytes"
	"testing"

	"github.com/brnstm-lang/brnstm/internal/errors"
	"github.com/brnstm-lang/brnstm/internal/lexer"
	"github.com/brnstm-lang/brnstm/internal/parser"
)

// run parses src and evaluates it, returning captured stdout and any error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	p := parser.New(lexer.New(src))
	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram(%q) error: %v", src, err)
	}
	var buf bytes.Buffer
	interp := New(&buf, nil)
	env := NewGlobalEnvironment()
	runErr := interp.Run(env, program, false)
	return buf.String(), runErr
}

func TestArithmeticAndPrintln(t *testing.T) {
	out, err := run(t, "x=2;y=3;println(x+y)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5\n" {
		t.Fatalf("got %q, want %q", out, "5\n")
	}
}

func TestForLoopOverRange(t *testing.T) {
	out, err := run(t, "for i in range(0, 3) { println(i) }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Fatalf("got %q, want %q", out, "0\n1\n2\n")
	}
}

func TestDestructuringWithPack(t *testing.T) {
	out, err := run(t, "[a, *rest] = [1, 2, 3]; println(a); println(rest)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n[2, 3]\n" {
		t.Fatalf("got %q, want %q", out, "1\n[2, 3]\n")
	}
}

func TestIfElse(t *testing.T) {
	out, err := run(t, `
x = 5
if x < 3 { println("small") } elif x < 10 { println("medium") } else { println("large") }
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "medium\n" {
		t.Fatalf("got %q, want %q", out, "medium\n")
	}
}

func TestClassInitAndMethod(t *testing.T) {
	out, err := run(t, `
class Point { x=0; init(v){ x = v }; get(){ return x } }
p = Point(7)
println(p.get())
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("got %q, want %q", out, "7\n")
	}
}

func TestSubclassWithSuper(t *testing.T) {
	out, err := run(t, `
class Animal { name=""; init(n){ name = n }; speak(){ return name } }
class Dog extends Animal { init(n){ super(n) }; bark(){ return super.speak() } }
d = Dog("Rex")
println(d.bark())
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Rex\n" {
		t.Fatalf("got %q, want %q", out, "Rex\n")
	}
}

func TestListComprehension(t *testing.T) {
	out, err := run(t, `xs = [x * 2 for x in [1, 2, 3]]; println(xs)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "[2, 4, 6]\n" {
		t.Fatalf("got %q, want %q", out, "[2, 4, 6]\n")
	}
}

func TestUnboundNameProducesNameError(t *testing.T) {
	_, err := run(t, "println(missing)")
	if err == nil {
		t.Fatal("expected a NameError")
	}
	evalErr, ok := err.(*errors.EvalError)
	if !ok || evalErr.Kind != errors.NameError {
		t.Fatalf("got %v, want NameError", err)
	}
}

func TestStringPlusIntProducesTypeError(t *testing.T) {
	_, err := run(t, `println(1 + "a")`)
	if err == nil {
		t.Fatal("expected a TypeError")
	}
	evalErr, ok := err.(*errors.EvalError)
	if !ok || evalErr.Kind != errors.TypeError {
		t.Fatalf("got %v, want TypeError", err)
	}
}

func TestArityMismatchProducesArityError(t *testing.T) {
	_, err := run(t, `
fn add(a, b) { return a + b }
println(add(1))
`)
	if err == nil {
		t.Fatal("expected an ArityError")
	}
	evalErr, ok := err.(*errors.EvalError)
	if !ok || evalErr.Kind != errors.ArityError {
		t.Fatalf("got %v, want ArityError", err)
	}
}

func TestOutOfRangeIndexProducesBoundsError(t *testing.T) {
	_, err := run(t, `xs = [1, 2]; println(xs[5])`)
	if err == nil {
		t.Fatal("expected a BoundsError")
	}
	evalErr, ok := err.(*errors.EvalError)
	if !ok || evalErr.Kind != errors.BoundsError {
		t.Fatalf("got %v, want BoundsError", err)
	}
}

func TestNegativeIndexSelectsFromEnd(t *testing.T) {
	out, err := run(t, `xs = [1, 2, 3]; println(xs[0 - 1])`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n" {
		t.Fatalf("got %q, want %q", out, "3\n")
	}
}

func TestReturnExpressionDoesNotSeeFunctionLocals(t *testing.T) {
	out, err := run(t, `
x = 99
fn weird(x) { x = 1; return x }
println(weird(5))
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "99\n" {
		t.Fatalf("got %q, want %q (return expr sees caller's pre-call env, not the param binding)", out, "99\n")
	}
}

func TestFunctionRedefinitionIsRejected(t *testing.T) {
	_, err := run(t, `
fn f() { return 1 }
fn f() { return 2 }
`)
	if err == nil {
		t.Fatal("expected a RedefinitionError")
	}
	evalErr, ok := err.(*errors.EvalError)
	if !ok || evalErr.Kind != errors.RedefinitionError {
		t.Fatalf("got %v, want RedefinitionError", err)
	}
}

func TestPrivateFieldAccessFromOutsideErrors(t *testing.T) {
	_, err := run(t, `
class Secret { private code = 42 }
s = Secret()
println(s.code)
`)
	if err == nil {
		t.Fatal("expected a TypeError for private field access")
	}
}

func TestDiscardIdentifierInAssignment(t *testing.T) {
	out, err := run(t, `[_, b] = [1, 2]; println(b)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2\n" {
		t.Fatalf("got %q, want %q", out, "2\n")
	}
}

func TestNestedDestructuringWithPack(t *testing.T) {
	out, err := run(t, `[x, [a, *b]] = [1, [2, 3, 4]]; println(x); println(a); println(b)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n[3, 4]\n" {
		t.Fatalf("got %q, want %q", out, "1\n2\n[3, 4]\n")
	}
}

func TestForLoopOverFieldAccessIsRejected(t *testing.T) {
	_, err := run(t, `
class Box { items = [1, 2, 3] }
b = Box()
for x in b.items { println(x) }
`)
	if err == nil {
		t.Fatal("expected a TypeError: for loop source must be a list literal, identifier, or call")
	}
	evalErr, ok := err.(*errors.EvalError)
	if !ok || evalErr.Kind != errors.TypeError {
		t.Fatalf("got %v, want TypeError", err)
	}
}

func TestForLoopOverIndexExpressionIsRejected(t *testing.T) {
	_, err := run(t, `
xss = [[1, 2], [3, 4]]
for x in xss[0] { println(x) }
`)
	if err == nil {
		t.Fatal("expected a TypeError: for loop source must be a list literal, identifier, or call")
	}
	evalErr, ok := err.(*errors.EvalError)
	if !ok || evalErr.Kind != errors.TypeError {
		t.Fatalf("got %v, want TypeError", err)
	}
}

func TestForLoopOverOperationExpressionIsRejected(t *testing.T) {
	_, err := run(t, `a = [1, 2]; b = [3, 4]; for x in (a + b) { println(x) }`)
	if err == nil {
		t.Fatal("expected a TypeError: for loop source must be a list literal, identifier, or call")
	}
	evalErr, ok := err.(*errors.EvalError)
	if !ok || evalErr.Kind != errors.TypeError {
		t.Fatalf("got %v, want TypeError", err)
	}
}

func TestClassFieldNamedUnderscoreIsRejected(t *testing.T) {
	_, err := run(t, `class C { _ = 1 }`)
	if err == nil {
		t.Fatal("expected a KeywordError for a field named '_'")
	}
	evalErr, ok := err.(*errors.EvalError)
	if !ok || evalErr.Kind != errors.KeywordError {
		t.Fatalf("got %v, want KeywordError", err)
	}
}

func TestClassNamedUnderscoreIsRejected(t *testing.T) {
	_, err := run(t, `class _ { }`)
	if err == nil {
		t.Fatal("expected a KeywordError for a class named '_'")
	}
	evalErr, ok := err.(*errors.EvalError)
	if !ok || evalErr.Kind != errors.KeywordError {
		t.Fatalf("got %v, want KeywordError", err)
	}
}
