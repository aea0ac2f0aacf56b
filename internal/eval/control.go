package eval

import (
	"github.com/feel-lang/feel/internal/ast"
	"github.com/feel-lang/feel/internal/value"
)

func evalIf(node *ast.If, ctx *Context) *value.Value {
	cond := Eval(node.Cond, ctx)
	if b, ok := cond.AsBool(); ok && b {
		return Eval(node.Then, ctx)
	}
	return Eval(node.Else, ctx)
}

// kleeneAnd combines two already-evaluated Bool/Null results the way
// `and` does (spec.md §4.3.1): a definite false wins outright, two
// definite values combine normally, anything else is Null.
func kleeneAnd(a, b *value.Value) *value.Value {
	if ab, ok := a.AsBool(); ok && !ab {
		return value.Bool(false)
	}
	if bb, ok := b.AsBool(); ok && !bb {
		return value.Bool(false)
	}
	ab, aok := a.AsBool()
	bb, bok := b.AsBool()
	if aok && bok {
		return value.Bool(ab && bb)
	}
	return value.Null
}

func evalBetween(node *ast.Between, ctx *Context) *value.Value {
	v := Eval(node.Value, ctx)
	lower := Eval(node.Lower, ctx)
	upper := Eval(node.Upper, ctx)
	return kleeneAnd(evalOrder(">=", v, lower), evalOrder("<=", v, upper))
}

// evalInTest is total (spec.md §4.3.7): it always yields a definite
// Bool, coercing what would otherwise be a Null match to false.
func evalInTest(node *ast.InTest, ctx *Context) *value.Value {
	v := Eval(node.Value, ctx)
	testCtx := ctx.withEnv(ctx.Env.ChildOne("?", v))
	for _, t := range node.Tests {
		if b, ok := Eval(t, testCtx).AsBool(); ok && b {
			return value.Bool(true)
		}
	}
	return value.Bool(false)
}

var instanceOfKinds = map[string][]value.Kind{
	"number":                    {value.KindNumber},
	"string":                    {value.KindString},
	"boolean":                   {value.KindBool},
	"date":                      {value.KindDate},
	"time":                      {value.KindLocalTime, value.KindZonedTime},
	"date and time":             {value.KindLocalDateTime, value.KindZonedDateTime},
	"years and months duration": {value.KindYearMonthDuration},
	"days and time duration":    {value.KindDayTimeDuration},
	"duration":                  {value.KindYearMonthDuration, value.KindDayTimeDuration},
	"list":                      {value.KindList},
	"context":                   {value.KindContext},
	"function":                  {value.KindFunction},
	"Any":                       nil, // matches every kind
}

// evalInstanceOf checks v's Kind against the closed set of FEEL type
// names (SPEC_FULL.md §C); an unrecognized type name is Null, not an error.
func evalInstanceOf(node *ast.InstanceOf, ctx *Context) *value.Value {
	v := Eval(node.Value, ctx)
	kinds, known := instanceOfKinds[node.TypeName]
	if !known {
		return value.Null
	}
	if kinds == nil {
		return value.Bool(true)
	}
	for _, k := range kinds {
		if v.Kind() == k {
			return value.Bool(true)
		}
	}
	return value.Bool(false)
}

// evalFor implements spec.md §4.3.3: nested iteration over each
// iterator's materialized source, rightmost iterator fastest, with
// `partial` bound to the results produced so far.
func evalFor(node *ast.ForExpr, ctx *Context) *value.Value {
	var results []*value.Value
	var walk func(depth int, env *Environment) *value.Value
	walk = func(depth int, env *Environment) *value.Value {
		if depth == len(node.Iterators) {
			if !ctx.tick() {
				return ctx.warnf(node, WarnIterationExceeded, "for exceeded the iteration limit")
			}
			loopCtx := ctx.withEnv(env.ChildOne("partial", value.List(results)))
			results = append(results, Eval(node.Body, loopCtx))
			return nil
		}
		it := node.Iterators[depth]
		// Re-evaluate this iterator's source under the bindings
		// accumulated so far, since later sources may reference
		// earlier iterator variables (spec.md §4.3.3).
		srcCtx := ctx.withEnv(env)
		src := Eval(it.Source, srcCtx)
		list, ok := iterableToList(src)
		if !ok {
			return value.Null
		}
		for _, item := range list {
			if r := walk(depth+1, env.ChildOne(it.Name, item)); r != nil {
				return r
			}
		}
		return nil
	}

	if bad := walk(0, ctx.Env); bad != nil {
		return bad
	}
	return value.List(results)
}

// iterableToList materializes a for/some/every iterator source
// (spec.md §4.3.3): a List as-is, an all-integer Range as an ascending
// or descending sequence, anything else fails.
func iterableToList(v *value.Value) ([]*value.Value, bool) {
	if list, ok := v.AsList(); ok {
		return list, true
	}
	if r, ok := v.AsRange(); ok {
		return rangeToIntList(r)
	}
	return nil, false
}

func rangeToIntList(r *value.Range) ([]*value.Value, bool) {
	lo, ok := r.Lower.AsNumber()
	if !ok || !lo.IsInteger() {
		return nil, false
	}
	hi, ok := r.Upper.AsNumber()
	if !ok || !hi.IsInteger() {
		return nil, false
	}
	loI, hiI := lo.IntPart(), hi.IntPart()
	var out []*value.Value
	if loI <= hiI {
		for n := loI; n <= hiI; n++ {
			out = append(out, value.NumberFromInt(n))
		}
	} else {
		for n := loI; n >= hiI; n-- {
			out = append(out, value.NumberFromInt(n))
		}
	}
	return out, true
}

// evalQuantified implements `some`/`every` (spec.md §4.3.4): short-
// circuiting disjunction/conjunction over the iterator cross product.
func evalQuantified(node *ast.QuantifiedExpr, ctx *Context) *value.Value {
	// walk returns (shortCircuited, shortCircuitResult, sawIndeterminate).
	// When it returns without short-circuiting, the caller falls back to
	// the quantifier's vacuous default (true for every, false for some)
	// unless an indeterminate (non-bool, non-short-circuiting) condition
	// was seen anywhere, in which case the whole expression is Null.
	var walk func(depth int, env *Environment) (bool, *value.Value, bool)
	walk = func(depth int, env *Environment) (bool, *value.Value, bool) {
		if depth == len(node.Iterators) {
			if !ctx.tick() {
				return true, ctx.warnf(node, WarnIterationExceeded, "quantified expression exceeded the iteration limit"), false
			}
			cond := Eval(node.Cond, ctx.withEnv(env))
			b, ok := cond.AsBool()
			if !ok {
				return false, nil, true
			}
			if node.Every && !b {
				return true, value.Bool(false), false
			}
			if !node.Every && b {
				return true, value.Bool(true), false
			}
			return false, nil, false
		}
		it := node.Iterators[depth]
		src := Eval(it.Source, ctx.withEnv(env))
		list, ok := iterableToList(src)
		if !ok {
			return true, value.Null, false
		}
		sawIndeterminate := false
		for _, item := range list {
			done, result, indeterminate := walk(depth+1, env.ChildOne(it.Name, item))
			if done {
				return true, result, false
			}
			sawIndeterminate = sawIndeterminate || indeterminate
		}
		return false, nil, sawIndeterminate
	}

	done, result, indeterminate := walk(0, ctx.Env)
	if done {
		return result
	}
	if indeterminate {
		return value.Null
	}
	return value.Bool(node.Every)
}
