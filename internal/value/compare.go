package value

import "math"

// FPErrorMargin is the fixed epsilon used for Float equality comparisons.
const FPErrorMargin = 1e-9

// Equal implements structural equality: Int/Float widen to
// compare, lists compare element-wise, and all other cross-variant pairs
// (besides the numeric widening) are unequal rather than an error —
// equality, unlike ordering, never fails.
func Equal(lhs, rhs Value) bool {
	switch l := lhs.(type) {
	case Null:
		_, ok := rhs.(Null)
		return ok
	case Int:
		switch r := rhs.(type) {
		case Int:
			return l.Value == r.Value
		case Float:
			return floatEqual(float64(l.Value), r.Value)
		}
		return false
	case Float:
		switch r := rhs.(type) {
		case Float:
			return floatEqual(l.Value, r.Value)
		case Int:
			return floatEqual(l.Value, float64(r.Value))
		}
		return false
	case Bool:
		r, ok := rhs.(Bool)
		return ok && l.Value == r.Value
	case Char:
		r, ok := rhs.(Char)
		return ok && l.Value == r.Value
	case Str:
		r, ok := rhs.(Str)
		return ok && l.Value == r.Value
	case List:
		r, ok := rhs.(List)
		if !ok || len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !Equal(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	case Function:
		_, ok := rhs.(Function)
		return ok
	case UserDefFunction:
		_, ok := rhs.(UserDefFunction)
		return ok
	case Object:
		_, ok := rhs.(Object)
		return ok
	}
	return false
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < FPErrorMargin
}

// NotEqual is `|a-b| > epsilon` for floats, and plain
// inequality for everything else.
func NotEqual(lhs, rhs Value) bool {
	if lf, lok := asFloat(lhs); lok {
		if rf, rok := asFloat(rhs); rok {
			return math.Abs(lf-rf) > FPErrorMargin
		}
	}
	return !Equal(lhs, rhs)
}

func asFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case Int:
		return float64(x.Value), true
	case Float:
		return x.Value, true
	}
	return 0, false
}

// Compare implements a total ordering within each ordered
// variant (Int, Float, Str, Bool, Char), with Int/Float widening to
// Float. It returns (cmp, true) with cmp<0/==0/>0 for "less/equal/greater",
// or (0, false) when the pair is not comparable — lists, functions,
// objects, and mismatched incompatible variants are all incomparable.
func Compare(lhs, rhs Value) (int, bool) {
	if lf, lok := asFloat(lhs); lok {
		if rf, rok := asFloat(rhs); rok {
			switch {
			case lf < rf:
				return -1, true
			case lf > rf:
				return 1, true
			default:
				return 0, true
			}
		}
		return 0, false
	}

	switch l := lhs.(type) {
	case Str:
		r, ok := rhs.(Str)
		if !ok {
			return 0, false
		}
		switch {
		case l.Value < r.Value:
			return -1, true
		case l.Value > r.Value:
			return 1, true
		default:
			return 0, true
		}
	case Bool:
		r, ok := rhs.(Bool)
		if !ok {
			return 0, false
		}
		return compareBool(l.Value, r.Value), true
	case Char:
		r, ok := rhs.(Char)
		if !ok {
			return 0, false
		}
		switch {
		case l.Value < r.Value:
			return -1, true
		case l.Value > r.Value:
			return 1, true
		default:
			return 0, true
		}
	}

	return 0, false
}

func compareBool(a, b bool) int {
	// false < true
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}
