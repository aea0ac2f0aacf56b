package value

// BoundKind marks whether a Range endpoint is open, closed, or unbounded.
type BoundKind uint8

const (
	BoundClosed BoundKind = iota
	BoundOpen
	BoundUnbounded
)

// Range holds two endpoints, each either open/closed or unbounded
// (spec.md §3.1, §4.3.8). Endpoint values must belong to the same
// ordered kind for membership tests to be meaningful; the interpreter
// enforces that, not the Range type itself.
type Range struct {
	Lower     *Value
	LowerKind BoundKind
	Upper     *Value
	UpperKind BoundKind
}

func (r *Range) String() string {
	open := "["
	if r.LowerKind == BoundOpen {
		open = "("
	}
	closeB := "]"
	if r.UpperKind == BoundOpen {
		closeB = ")"
	}
	lo, hi := "?", "?"
	if r.LowerKind != BoundUnbounded && r.Lower != nil {
		lo = r.Lower.String()
	}
	if r.UpperKind != BoundUnbounded && r.Upper != nil {
		hi = r.Upper.String()
	}
	return open + lo + ".." + hi + closeB
}

// WellFormed reports whether the lower bound is <= the upper bound when
// both are defined (spec.md §3.1 invariant), using cmp for ordering.
func (r *Range) WellFormed(cmp func(a, b *Value) (int, bool)) bool {
	if r.LowerKind == BoundUnbounded || r.UpperKind == BoundUnbounded {
		return true
	}
	c, ok := cmp(r.Lower, r.Upper)
	if !ok {
		return false
	}
	return c <= 0
}
