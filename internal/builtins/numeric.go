package builtins

import (
	"github.com/shopspring/decimal"

	"github.com/feel-lang/feel/internal/value"
)

// numericBuiltins mirrors the teacher's builtins_math_basic.go /
// builtins_math_advanced.go split, rebased onto decimal.Decimal instead
// of the teacher's Integer/Float pair (spec.md §3.1: a single Number
// kind).
func numericBuiltins() map[string]*value.Value {
	return map[string]*value.Value{
		"abs":      native([]string{"n"}, builtinAbs),
		"floor":    native([]string{"n"}, builtinFloor),
		"ceiling":  native([]string{"n"}, builtinCeiling),
		"round":    native([]string{"n", "scale"}, builtinRound),
		"modulo":   native([]string{"dividend", "divisor"}, builtinModulo),
		"sqrt":     native([]string{"n"}, builtinSqrt),
		"even":     native([]string{"n"}, builtinEven),
		"odd":      native([]string{"n"}, builtinOdd),
		"number":   native([]string{"from"}, builtinNumberOf),
		"decimal":  native([]string{"n", "scale"}, builtinDecimal),
	}
}

func builtinAbs(args []*value.Value) *value.Value {
	n, ok := args[0].AsNumber()
	if !ok {
		return value.Null
	}
	return value.Number(n.Abs())
}

func builtinFloor(args []*value.Value) *value.Value {
	n, ok := args[0].AsNumber()
	if !ok {
		return value.Null
	}
	return value.Number(n.Floor())
}

func builtinCeiling(args []*value.Value) *value.Value {
	n, ok := args[0].AsNumber()
	if !ok {
		return value.Null
	}
	return value.Number(n.Ceil())
}

func builtinRound(args []*value.Value) *value.Value {
	n, ok1 := args[0].AsNumber()
	scale, ok2 := args[1].AsNumber()
	if !ok1 || !ok2 {
		return value.Null
	}
	return value.Number(n.Round(int32(scale.IntPart())))
}

func builtinModulo(args []*value.Value) *value.Value {
	a, ok1 := args[0].AsNumber()
	b, ok2 := args[1].AsNumber()
	if !ok1 || !ok2 || b.IsZero() {
		return value.Null
	}
	// FEEL modulo takes the sign of the divisor, unlike decimal.Mod.
	m := a.Mod(b)
	if !m.IsZero() && m.Sign() != b.Sign() {
		m = m.Add(b)
	}
	return value.Number(m)
}

func builtinSqrt(args []*value.Value) *value.Value {
	n, ok := args[0].AsNumber()
	if !ok || n.IsNegative() {
		return value.Null
	}
	f, _ := n.Float64()
	return value.Number(decimal.NewFromFloat(sqrtFloat(f)))
}

func sqrtFloat(f float64) float64 {
	if f == 0 {
		return 0
	}
	x := f
	for i := 0; i < 40; i++ {
		x = 0.5 * (x + f/x)
	}
	return x
}

func builtinEven(args []*value.Value) *value.Value {
	n, ok := args[0].AsNumber()
	if !ok || !n.IsInteger() {
		return value.Null
	}
	return value.Bool(n.Mod(decimal.NewFromInt(2)).IsZero())
}

func builtinOdd(args []*value.Value) *value.Value {
	n, ok := args[0].AsNumber()
	if !ok || !n.IsInteger() {
		return value.Null
	}
	return value.Bool(!n.Mod(decimal.NewFromInt(2)).IsZero())
}

// builtinNumberOf implements the `number()` conversion function over a
// string, the general text-to-Number coercion.
func builtinNumberOf(args []*value.Value) *value.Value {
	s, ok := args[0].AsString()
	if !ok {
		return value.Null
	}
	v, err := value.NumberFromString(s)
	if err != nil {
		return value.Null
	}
	return v
}

func builtinDecimal(args []*value.Value) *value.Value {
	n, ok1 := args[0].AsNumber()
	scale, ok2 := args[1].AsNumber()
	if !ok1 || !ok2 {
		return value.Null
	}
	return value.Number(n.Round(int32(scale.IntPart())))
}
