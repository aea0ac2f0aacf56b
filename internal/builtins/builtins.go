// Package builtins assembles the built-in function table handed to a
// fresh interpreter environment (spec.md §6, §9: "the only shared state
// is the built-in function registry, built once at engine construction
// and read-only thereafter"). Each group below mirrors one of the
// teacher's builtins_*.go files, narrowed to the FEEL value domain.
package builtins

import "github.com/feel-lang/feel/internal/value"

// Register returns the default built-in table, built into a fresh map on
// every call, so the engine façade's WithBuiltin overrides on the map it
// gets never reach another engine's table.
func Register() map[string]*value.Value {
	out := map[string]*value.Value{}
	addTo(out, temporalBuiltins())
	addTo(out, stringBuiltins())
	addTo(out, numericBuiltins())
	addTo(out, listBuiltins())
	addTo(out, contextBuiltins())
	addTo(out, booleanBuiltins())
	return out
}

func addTo(dst map[string]*value.Value, src map[string]*value.Value) {
	for k, v := range src {
		dst[k] = v
	}
}

func native(params []string, fn func(args []*value.Value) *value.Value) *value.Value {
	return value.FunctionValue(value.NewNative(params, fn))
}

func nativeVarArgs(fn func(args []*value.Value) *value.Value) *value.Value {
	f := value.NewNative(nil, fn)
	f.VarArgs = true
	return value.FunctionValue(f)
}
