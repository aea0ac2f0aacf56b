package builtins

import "github.com/feel-lang/feel/internal/value"

// booleanBuiltins mirrors the teacher's internal/interp/builtins_type.go
// is-defined/type-probe helpers, plus the `not()` function form of the
// unary-test operator of the same name (spec.md §4.2 defines `not` as
// grammar for unary tests; called as an ordinary function it is this
// built-in instead, since a bare `not(` outside test position parses as
// a function invocation).
func booleanBuiltins() map[string]*value.Value {
	return map[string]*value.Value{
		"not":        native([]string{"negand"}, builtinNot),
		"is defined": native([]string{"value"}, builtinIsDefined),
	}
}

func builtinNot(args []*value.Value) *value.Value {
	b, ok := args[0].AsBool()
	if !ok {
		return value.Null
	}
	return value.Bool(!b)
}

// builtinIsDefined never itself yields Null: it returns false for any
// Null argument and true otherwise. Since a missing context key
// evaluates to silent Null (spec.md §7), an explicit null and an absent
// entry both report false.
func builtinIsDefined(args []*value.Value) *value.Value {
	return value.Bool(!args[0].IsNull())
}
