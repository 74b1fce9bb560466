package value

import "testing"

func TestEqualWidensNumerics(t *testing.T) {
	if !Equal(Int{Value: 2}, Float{Value: 2.0}) {
		t.Fatal("Int(2) should equal Float(2.0)")
	}
	if Equal(Int{Value: 2}, Str{Value: "2"}) {
		t.Fatal("Int(2) should not equal Str(\"2\")")
	}
}

func TestEqualFloatEpsilon(t *testing.T) {
	if !Equal(Float{Value: 1.0}, Float{Value: 1.0 + 1e-12}) {
		t.Fatal("values within epsilon should be equal")
	}
	if Equal(Float{Value: 1.0}, Float{Value: 1.1}) {
		t.Fatal("values outside epsilon should not be equal")
	}
}

func TestEqualLists(t *testing.T) {
	a := List{Elements: []Value{Int{Value: 1}, Str{Value: "x"}}}
	b := List{Elements: []Value{Int{Value: 1}, Str{Value: "x"}}}
	c := List{Elements: []Value{Int{Value: 1}}}
	if !Equal(a, b) {
		t.Fatal("equal-length lists with equal elements should be equal")
	}
	if Equal(a, c) {
		t.Fatal("differing-length lists should not be equal")
	}
}

func TestNotEqualFloatUsesEpsilon(t *testing.T) {
	if NotEqual(Float{Value: 1.0}, Float{Value: 1.0 + 1e-12}) {
		t.Fatal("values within epsilon should not be NotEqual")
	}
	if !NotEqual(Float{Value: 1.0}, Float{Value: 2.0}) {
		t.Fatal("distinct floats should be NotEqual")
	}
}

func TestCompareOrdering(t *testing.T) {
	cmp, ok := Compare(Int{Value: 1}, Float{Value: 2.0})
	if !ok || cmp >= 0 {
		t.Fatalf("Compare(1, 2.0) = (%d, %v), want negative, true", cmp, ok)
	}
	cmp, ok = Compare(Str{Value: "a"}, Str{Value: "b"})
	if !ok || cmp >= 0 {
		t.Fatalf("Compare(\"a\", \"b\") = (%d, %v), want negative, true", cmp, ok)
	}
	cmp, ok = Compare(Bool{Value: false}, Bool{Value: true})
	if !ok || cmp >= 0 {
		t.Fatalf("Compare(false, true) = (%d, %v), want negative, true", cmp, ok)
	}
}

func TestCompareIncomparable(t *testing.T) {
	if _, ok := Compare(List{}, List{}); ok {
		t.Fatal("lists should be incomparable")
	}
	if _, ok := Compare(Int{Value: 1}, Str{Value: "a"}); ok {
		t.Fatal("Int vs Str should be incomparable")
	}
}
