package eval

import (
	"math"

	"github.com/feel-lang/feel/internal/ast"
	"github.com/feel-lang/feel/internal/value"
	"github.com/shopspring/decimal"
)

// evalAnd/evalOr implement Kleene three-valued logic (spec.md §4.3.1):
// a determining operand (false for `and`, true for `or`) short-circuits
// the whole expression regardless of what the other operand evaluates
// to, even if evaluating it would itself yield Null or a type error.
func evalAnd(node *ast.Binary, ctx *Context) *value.Value {
	left := Eval(node.Left, ctx)
	if lb, ok := left.AsBool(); ok && !lb {
		return value.Bool(false)
	}
	right := Eval(node.Right, ctx)
	if rb, ok := right.AsBool(); ok && !rb {
		return value.Bool(false)
	}
	lb, lok := left.AsBool()
	rb, rok := right.AsBool()
	if lok && rok {
		return value.Bool(lb && rb)
	}
	return value.Null
}

func evalOr(node *ast.Binary, ctx *Context) *value.Value {
	left := Eval(node.Left, ctx)
	if lb, ok := left.AsBool(); ok && lb {
		return value.Bool(true)
	}
	right := Eval(node.Right, ctx)
	if rb, ok := right.AsBool(); ok && rb {
		return value.Bool(true)
	}
	lb, lok := left.AsBool()
	rb, rok := right.AsBool()
	if lok && rok {
		return value.Bool(lb || rb)
	}
	return value.Null
}

func evalUnary(node *ast.Unary, ctx *Context) *value.Value {
	v := Eval(node.Operand, ctx)
	n, ok := v.AsNumber()
	if !ok {
		return value.Null
	}
	return value.Number(n.Neg())
}

// evalBinary implements the arithmetic/comparison/logical operator
// table, including the null-propagation rules spec.md §4.3.1 spells
// out explicitly: type-mismatched operands yield Null rather than a
// fatal error, per the silent-Null tier of §7.
func evalBinary(node *ast.Binary, ctx *Context) *value.Value {
	switch node.Op {
	case "and":
		return evalAnd(node, ctx)
	case "or":
		return evalOr(node, ctx)
	}

	left := Eval(node.Left, ctx)
	right := Eval(node.Right, ctx)

	switch node.Op {
	case "+", "-", "*", "/", "**":
		return evalArith(node.Op, left, right)
	case "=":
		return Equal(left, right)
	case "!=":
		return negate(Equal(left, right))
	case "<", "<=", ">", ">=":
		return evalOrder(node.Op, left, right)
	default:
		return value.Null
	}
}

// Equal is the `=` operator (spec.md §4.3.1): Null = Null is true, Null
// against any other kind is false (the one concession the spec carves
// out), but two non-null operands of different kinds — including a
// list compared against a scalar — are Null rather than false, since
// there's no meaningful comparison to make between them. Same-kind
// operands fall through to value.Equal's structural comparison.
func Equal(a, b *value.Value) *value.Value {
	if a.IsNull() || b.IsNull() {
		return value.Bool(a.IsNull() && b.IsNull())
	}
	if a.Kind() != b.Kind() {
		return value.Null
	}
	return value.Bool(value.Equal(a, b))
}

// negate is Boolean negation that propagates Null, used by `!=` so it
// stays Null wherever the underlying `=` is Null rather than flipping
// an unknown into a definite answer.
func negate(v *value.Value) *value.Value {
	b, ok := v.AsBool()
	if !ok {
		return value.Null
	}
	return value.Bool(!b)
}

func evalOrder(op string, left, right *value.Value) *value.Value {
	if left.IsNull() || right.IsNull() {
		return value.Null
	}
	c, ok := value.Compare(left, right)
	if !ok {
		return value.Null
	}
	switch op {
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
}

func evalArith(op string, left, right *value.Value) *value.Value {
	if ln, lok := left.AsNumber(); lok {
		if rn, rok := right.AsNumber(); rok {
			return numberArith(op, ln, rn)
		}
	}
	if op == "+" {
		if ls, lok := left.AsString(); lok {
			if rs, rok := right.AsString(); rok {
				return value.String(ls + rs)
			}
			return value.Null
		}
	}
	if v, ok := temporalArith(op, left, right); ok {
		return v
	}
	return value.Null
}

func numberArith(op string, l, r decimal.Decimal) *value.Value {
	switch op {
	case "+":
		return value.Number(l.Add(r))
	case "-":
		return value.Number(l.Sub(r))
	case "*":
		return value.Number(l.Mul(r))
	case "/":
		if r.IsZero() {
			return value.Null
		}
		return value.Number(l.Div(r))
	case "**":
		if r.IsInteger() {
			return value.Number(l.Pow(r))
		}
		f, _ := l.Float64()
		e, _ := r.Float64()
		return value.Number(decimal.NewFromFloat(mathPow(f, e)))
	default:
		return value.Null
	}
}

func mathPow(base, exp float64) float64 { return math.Pow(base, exp) }
