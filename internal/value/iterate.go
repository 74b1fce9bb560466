package value

// Iterate yields the elements of a value: a List's
// elements in order, a Str's Unicode scalars as Chars, or nothing at all
// for every other variant (callers such as comprehensions check Iterable
// first and report a "not iterable" error; `for` loops do not use
// Iterate and accept only a List).
func Iterate(v Value) []Value {
	switch x := v.(type) {
	case List:
		return x.Elements
	case Str:
		runes := []rune(x.Value)
		out := make([]Value, len(runes))
		for i, r := range runes {
			out[i] = Char{Value: r}
		}
		return out
	default:
		return nil
	}
}

// Iterable reports whether v is a List or Str — the two variants
// Iterate actually produces elements for.
func Iterable(v Value) bool {
	switch v.(type) {
	case List, Str:
		return true
	default:
		return false
	}
}
