package value

// Addition, subtraction, multiplication and division: (Int,Int)->Int,
// (Float,Float)->Float, and the two widening pairings
// (Int,Float)/(Float,Int)->Float. Any other pairing returns ok=false; the
// operator engine (internal/operators) turns that into an "Invalid
// Operation" TypeError.

// Add computes lhs + rhs.
func Add(lhs, rhs Value) (Value, bool) {
	return arith(lhs, rhs,
		func(a, b int32) int32 { return a + b },
		func(a, b float64) float64 { return a + b },
	)
}

// Sub computes lhs - rhs.
func Sub(lhs, rhs Value) (Value, bool) {
	return arith(lhs, rhs,
		func(a, b int32) int32 { return a - b },
		func(a, b float64) float64 { return a - b },
	)
}

// Mul computes lhs * rhs.
func Mul(lhs, rhs Value) (Value, bool) {
	return arith(lhs, rhs,
		func(a, b int32) int32 { return a * b },
		func(a, b float64) float64 { return a * b },
	)
}

// Div computes lhs / rhs. Int/Int division truncates toward zero (Go's
// native integer division semantics); all other pairings use IEEE-754
// division after widening to Float.
func Div(lhs, rhs Value) (Value, bool) {
	li, lIsInt := lhs.(Int)
	ri, rIsInt := rhs.(Int)
	if lIsInt && rIsInt {
		if ri.Value == 0 {
			return nil, false
		}
		return Int{Value: li.Value / ri.Value}, true
	}
	return arith(lhs, rhs,
		func(a, b int32) int32 { return 0 }, // unreachable: Int/Int handled above
		func(a, b float64) float64 { return a / b },
	)
}

func arith(lhs, rhs Value, intOp func(a, b int32) int32, floatOp func(a, b float64) float64) (Value, bool) {
	switch l := lhs.(type) {
	case Int:
		switch r := rhs.(type) {
		case Int:
			return Int{Value: intOp(l.Value, r.Value)}, true
		case Float:
			return Float{Value: floatOp(float64(l.Value), r.Value)}, true
		}
	case Float:
		switch r := rhs.(type) {
		case Int:
			return Float{Value: floatOp(l.Value, float64(r.Value))}, true
		case Float:
			return Float{Value: floatOp(l.Value, r.Value)}, true
		}
	}
	return nil, false
}
