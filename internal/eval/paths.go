package eval

import (
	"github.com/feel-lang/feel/internal/ast"
	"github.com/feel-lang/feel/internal/value"
)

// evalPath implements spec.md §4.3.5: context field access, or
// projection over a list of contexts.
func evalPath(node *ast.PathExpr, ctx *Context) *value.Value {
	base := Eval(node.Base, ctx)
	return pathStep(base, node.Name)
}

func pathStep(base *value.Value, name string) *value.Value {
	if base.IsNull() {
		return value.Null
	}
	if c, ok := base.AsContext(); ok {
		if v, ok := c.Get(name); ok {
			return v
		}
		return value.Null
	}
	if list, ok := base.AsList(); ok {
		out := make([]*value.Value, len(list))
		for i, item := range list {
			out[i] = pathStep(item, name)
		}
		return value.List(out)
	}
	return value.Null
}

// evalFilter implements spec.md §4.3.6: numeric indexing, or predicate
// filtering with `item` (and a Context element's own keys) in scope.
func evalFilter(node *ast.FilterExpr, ctx *Context) *value.Value {
	base := Eval(node.Base, ctx)
	list, isList := base.AsList()
	if base.IsNull() {
		return value.Null
	}
	if !isList {
		return value.Null
	}

	// A bare numeric predicate is positional indexing, not per-element
	// filtering (spec.md §4.3.6): evaluate it once against the base
	// scope, with its own scratch warnings so a false start (e.g. a
	// predicate that turns out to reference `item`, unbound here)
	// doesn't leak an extra warning once we fall back to per-element
	// filtering below.
	trialWarnings := []Warning{}
	trial := ctx.withEnv(ctx.Env)
	trial.Warnings = &trialWarnings
	if n, ok := Eval(node.Predicate, trial).AsNumber(); ok {
		*ctx.Warnings = append(*ctx.Warnings, trialWarnings...)
		return indexList(list, n.IntPart())
	}

	var kept []*value.Value
	for _, item := range list {
		env := ctx.Env.ChildOne("item", item)
		if c, ok := item.AsContext(); ok {
			for _, e := range c.Entries() {
				env.vars[e.Name] = e.Value
			}
		}
		result := Eval(node.Predicate, ctx.withEnv(env))
		if b, ok := result.AsBool(); ok {
			if b {
				kept = append(kept, item)
			}
			continue
		}
		// A literal Bool predicate degenerates the whole filter rather
		// than being evaluated per element; plain Eval already handles
		// that correctly since a BoolLiteral ignores the element scope.
	}
	return value.List(kept)
}

func indexList(list []*value.Value, n int64) *value.Value {
	if n == 0 {
		return value.Null
	}
	var idx int64
	if n > 0 {
		idx = n - 1
	} else {
		idx = int64(len(list)) + n
	}
	if idx < 0 || idx >= int64(len(list)) {
		return value.Null
	}
	return list[idx]
}
