package builtins

import "github.com/feel-lang/feel/internal/value"

// contextBuiltins mirrors the teacher's internal/interp/builtins_context.go,
// rebased onto the immutable FEEL Context (spec.md §3.1): every
// "mutation" here returns a new Context rather than mutating in place.
func contextBuiltins() map[string]*value.Value {
	return map[string]*value.Value{
		"get value":   native([]string{"context", "key"}, builtinGetValue),
		"get entries": native([]string{"context"}, builtinGetEntries),
		"context put": native([]string{"context", "key", "value"}, builtinContextPut),
		"context merge": nativeVarArgs(builtinContextMerge),
	}
}

func builtinGetValue(args []*value.Value) *value.Value {
	c, ok := args[0].AsContext()
	if !ok {
		return value.Null
	}
	key, ok := args[1].AsString()
	if !ok {
		return value.Null
	}
	v, ok := c.Get(key)
	if !ok {
		return value.Null
	}
	return v
}

func builtinGetEntries(args []*value.Value) *value.Value {
	c, ok := args[0].AsContext()
	if !ok {
		return value.Null
	}
	entries := c.Entries()
	out := make([]*value.Value, len(entries))
	for i, e := range entries {
		ec := value.NewContext()
		ec.Set("key", value.String(e.Name))
		ec.Set("value", e.Value)
		out[i] = value.ContextValue(ec)
	}
	return value.List(out)
}

func builtinContextPut(args []*value.Value) *value.Value {
	c, ok := args[0].AsContext()
	if !ok {
		return value.Null
	}
	key, ok := args[1].AsString()
	if !ok {
		return value.Null
	}
	out := value.NewContext()
	for _, e := range c.Entries() {
		out.Set(e.Name, e.Value)
	}
	out.Set(key, args[2])
	return value.ContextValue(out)
}

func builtinContextMerge(args []*value.Value) *value.Value {
	out := value.NewContext()
	for _, a := range args {
		c, ok := a.AsContext()
		if !ok {
			return value.Null
		}
		for _, e := range c.Entries() {
			out.Set(e.Name, e.Value)
		}
	}
	return value.ContextValue(out)
}
