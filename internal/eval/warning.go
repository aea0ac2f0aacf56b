package eval

import "github.com/feel-lang/feel/internal/lexer"

// WarningKind classifies a tier-2 surfaced failure (spec.md §7): the
// expression still produces Null, but the caller is told why.
type WarningKind string

const (
	WarnUnknownVariable   WarningKind = "unknown-variable"
	WarnTypeMismatch      WarningKind = "type-mismatch"
	WarnArity             WarningKind = "arity"
	WarnUnknownFunction   WarningKind = "unknown-function"
	WarnUnknownProperty   WarningKind = "unknown-property"
	WarnNotComparable     WarningKind = "not-comparable"
	WarnDivisionByZero    WarningKind = "division-by-zero"
	WarnMalformedLiteral  WarningKind = "malformed-literal"
	WarnIterationExceeded WarningKind = "iteration-limit-exceeded"
)

// Warning is recorded alongside a Null result (spec.md §7 tier 2): the
// evaluation never aborts, but the caller can surface these to a rule
// author the way an IDE underlines a suspicious expression.
type Warning struct {
	Kind    WarningKind
	Message string
	Pos     lexer.Position
}

func (w Warning) String() string {
	return w.Pos.String() + ": " + w.Message
}
