// Package value implements the runtime value algebra: the tagged sum of
// values the interpreter operates on, their arithmetic, equality,
// ordering, display, and iteration semantics.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brnstm-lang/brnstm/internal/ast"
)

// Value is the interface every runtime value variant implements.
type Value interface {
	// Type returns the variant's tag name, e.g. "Int", "List", "Object".
	Type() string
	// String returns the display form of the value.
	String() string
}

// Null is the absence of a value.
type Null struct{}

func (Null) Type() string   { return "Null" }
func (Null) String() string { return "Null" }

// Int is a signed 32-bit integer.
type Int struct{ Value int32 }

func (Int) Type() string      { return "Int" }
func (i Int) String() string  { return strconv.FormatInt(int64(i.Value), 10) }

// Float is an IEEE-754 double.
type Float struct{ Value float64 }

func (Float) Type() string     { return "Float" }
func (f Float) String() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// Bool is a boolean.
type Bool struct{ Value bool }

func (Bool) Type() string { return "Bool" }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Char is a single Unicode scalar value.
type Char struct{ Value rune }

func (Char) Type() string     { return "Char" }
func (c Char) String() string { return string(c.Value) }

// Str is an immutable sequence of Unicode scalars.
type Str struct{ Value string }

func (Str) Type() string     { return "Str" }
func (s Str) String() string { return s.Value }

// List is an ordered, mutable (via index assignment) sequence of values.
type List struct{ Elements []Value }

func (List) Type() string { return "List" }
func (l List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Clone returns a shallow copy of the list backed by a fresh slice, so
// index-assignment on a copy at a binding site does not mutate the
// original: index-assignment never mutates a list any other binding
// still points at.
func (l List) Clone() List {
	elems := make([]Value, len(l.Elements))
	copy(elems, l.Elements)
	return List{Elements: elems}
}

// NativeFunc is the Go implementation of a built-in function.
type NativeFunc func(args []Value) (Value, error)

// Function is a built-in, natively-implemented function.
type Function struct {
	Name string
	Fn   NativeFunc
}

func (Function) Type() string      { return "Function" }
func (f Function) String() string  { return fmt.Sprintf("Function %q", f.Name) }

// UserDefFunction is a function defined in brnstm source.
type UserDefFunction struct {
	Name       string
	Parameters []string
	Body       []ast.Statement
	Return     ast.Expression // nil if the function has no return expression
}

func (UserDefFunction) Type() string     { return "Function" }
func (f UserDefFunction) String() string { return fmt.Sprintf("Function %q", f.Name) }

// Field is one instance or class-default field slot.
type Field struct {
	IsPrivate bool
	Value     Value
}

// Object is both a class "prototype" (when bound under its class name)
// and an instance (when produced by ObjectCreation) — they share this
// shape.
type Object struct {
	ClassName   string
	Fields      map[string]*Field
	Init        *ast.ClassInitDecl // nil if the class declares no init
	Methods     map[string]ast.ClassMethodDecl
	ParentClass string // "" if the class has no parent
}

func (Object) Type() string     { return "Object" }
func (o Object) String() string { return fmt.Sprintf("Class %q", o.ClassName) }

// CloneFields returns a fresh copy of the object's field map, so that
// instantiating from a class prototype gives each instance its own
// field storage.
func (o Object) CloneFields() map[string]*Field {
	out := make(map[string]*Field, len(o.Fields))
	for name, f := range o.Fields {
		out[name] = &Field{IsPrivate: f.IsPrivate, Value: f.Value}
	}
	return out
}
