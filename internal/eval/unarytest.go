package eval

import (
	"github.com/feel-lang/feel/internal/ast"
	"github.com/feel-lang/feel/internal/value"
)

// MatchUnaryTests is the distinct entry point spec.md §6 calls
// evaluateUnaryTests: test is matched against input, with `?` bound to
// input for the duration of the match.
func MatchUnaryTests(test ast.Expression, input *value.Value, ctx *Context) *value.Value {
	return Eval(test, ctx.withEnv(ctx.Env.ChildOne("?", input)))
}

// evalUnaryTestAsBool implements spec.md §4.3.10 for each unary-test
// AST node, reading the implicit input from the already-bound `?`.
func evalUnaryTestAsBool(n ast.Expression, ctx *Context) *value.Value {
	input, _ := ctx.Env.Get("?")

	switch node := n.(type) {
	case *ast.AnyInput:
		return value.Bool(true)

	case *ast.InputEqualTo:
		v := Eval(node.Expr, ctx)
		return value.Bool(value.Equal(input, v))

	case *ast.InputCompare:
		if input.IsNull() {
			return value.Null
		}
		v := Eval(node.Expr, ctx)
		c, ok := value.Compare(input, v)
		if !ok {
			return value.Null
		}
		switch node.Op {
		case "<":
			return value.Bool(c < 0)
		case "<=":
			return value.Bool(c <= 0)
		case ">":
			return value.Bool(c > 0)
		case ">=":
			return value.Bool(c >= 0)
		default:
			return value.Null
		}

	case *ast.InputInRange:
		if input.IsNull() {
			return value.Null
		}
		rv := Eval(node.Range, ctx)
		r, ok := rv.AsRange()
		if !ok {
			return value.Null
		}
		return value.Bool(rangeContains(r, input))

	case *ast.UnaryTestExpr:
		v := Eval(node.Expr, ctx)
		if b, ok := v.AsBool(); ok {
			return value.Bool(b)
		}
		return value.Bool(value.Equal(input, v))

	case *ast.AtLeastOne:
		sawNull := false
		for _, t := range node.Tests {
			r := Eval(t, ctx)
			if b, ok := r.AsBool(); ok && b {
				return value.Bool(true)
			}
			if r.IsNull() {
				sawNull = true
			}
		}
		if sawNull {
			return value.Null
		}
		return value.Bool(false)

	case *ast.NotTest:
		disjunction := evalUnaryTestAsBool(ast.NewAtLeastOne(node.Pos(), node.Tests), ctx)
		if b, ok := disjunction.AsBool(); ok {
			return value.Bool(!b)
		}
		return value.Bool(false) // Null negates to false (spec.md §4.3.10)

	default:
		return value.Null
	}
}

// rangeContains implements spec.md §4.3.8 range membership, honoring
// open/closed/unbounded endpoints.
func rangeContains(r *value.Range, x *value.Value) bool {
	if r.LowerKind != value.BoundUnbounded {
		c, ok := value.Compare(x, r.Lower)
		if !ok {
			return false
		}
		if r.LowerKind == value.BoundOpen && c <= 0 {
			return false
		}
		if r.LowerKind == value.BoundClosed && c < 0 {
			return false
		}
	}
	if r.UpperKind != value.BoundUnbounded {
		c, ok := value.Compare(x, r.Upper)
		if !ok {
			return false
		}
		if r.UpperKind == value.BoundOpen && c >= 0 {
			return false
		}
		if r.UpperKind == value.BoundClosed && c > 0 {
			return false
		}
	}
	return true
}
