package feel

import "github.com/feel-lang/feel/internal/eval"

// Kind enumerates the public warning categories spec.md §6 names,
// distinct from the richer internal eval.WarningKind vocabulary: several
// internal kinds collapse onto the same externally visible category.
type Kind string

const (
	KindNoVariableFound         Kind = "NO_VARIABLE_FOUND"
	KindNoContextEntryFound     Kind = "NO_CONTEXT_ENTRY_FOUND"
	KindNoFunctionFound         Kind = "NO_FUNCTION_FOUND"
	KindFunctionInvocationError Kind = "FUNCTION_INVOCATION_FAILURE"
	KindAssertionFailure        Kind = "ASSERTION_FAILURE"
)

// Warning is a tier-2 surfaced failure (spec.md §7): evaluation
// continued, but something worth reporting happened along the way.
type Warning struct {
	Message string
	Kind    Kind
}

// Success carries an evaluation's host-mapped value and any warnings
// accumulated while producing it.
type Success struct {
	Value    any
	Warnings []Warning
}

// Failure carries a fatal parse/evaluation failure (spec.md §7 tier 3)
// and any warnings recorded before the failure was detected.
type Failure struct {
	Message  string
	Warnings []Warning
}

// Result is Success XOR Failure (spec.md §6): exactly one of the two
// fields is non-nil.
type Result struct {
	Success *Success
	Failure *Failure
}

// Ok reports whether the evaluation produced a Success.
func (r Result) Ok() bool { return r.Success != nil }

func toWarnings(ws []eval.Warning) []Warning {
	out := make([]Warning, len(ws))
	for i, w := range ws {
		out[i] = Warning{Message: w.Message, Kind: externalKind(w.Kind)}
	}
	return out
}

// externalKind maps the interpreter's fine-grained internal warning
// taxonomy onto spec.md §6's fixed external vocabulary.
func externalKind(k eval.WarningKind) Kind {
	switch k {
	case eval.WarnUnknownVariable:
		return KindNoVariableFound
	case eval.WarnUnknownProperty:
		return KindNoContextEntryFound
	case eval.WarnUnknownFunction:
		return KindNoFunctionFound
	case eval.WarnArity, eval.WarnIterationExceeded:
		return KindFunctionInvocationError
	case eval.WarnTypeMismatch, eval.WarnNotComparable, eval.WarnDivisionByZero, eval.WarnMalformedLiteral:
		return KindAssertionFailure
	default:
		return KindAssertionFailure
	}
}
