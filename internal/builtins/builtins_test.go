package builtins

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/feel-lang/feel/internal/value"
)

func call(t *testing.T, reg map[string]*value.Value, name string, args ...*value.Value) *value.Value {
	t.Helper()
	fn, ok := reg[name]
	if !ok {
		t.Fatalf("builtin %q not registered", name)
	}
	f, ok := fn.AsFunction()
	if !ok {
		t.Fatalf("builtin %q is not a function", name)
	}
	if f.Native == nil {
		t.Fatalf("builtin %q has no native implementation", name)
	}
	return f.Native(args)
}

func num(n int64) *value.Value { return value.NumberFromInt(n) }

func TestStringBuiltins(t *testing.T) {
	reg := Register()

	if got := call(t, reg, "string length", value.String("hello")); got.String() != "5" {
		t.Errorf("string length(hello) = %s, want 5", got)
	}
	if got := call(t, reg, "upper case", value.String("abc")); got.String() != `"ABC"` {
		t.Errorf("upper case(abc) = %s, want ABC", got)
	}
	if got := call(t, reg, "substring", value.String("foobar"), num(4)); got.String() != `"bar"` {
		t.Errorf("substring(foobar, 4) = %s, want bar", got)
	}
	if got := call(t, reg, "substring", value.String("foobar"), num(-2)); got.String() != `"ar"` {
		t.Errorf("substring(foobar, -2) = %s, want ar", got)
	}
	if got := call(t, reg, "contains", value.String("foobar"), value.String("oba")); !mustBool(t, got) {
		t.Errorf("contains(foobar, oba) = %s, want true", got)
	}
	if got := call(t, reg, "starts with", value.String("foobar"), value.String("foo")); !mustBool(t, got) {
		t.Errorf("starts with(foobar, foo) = %s, want true", got)
	}
}

func TestNumericBuiltins(t *testing.T) {
	reg := Register()

	if got := call(t, reg, "abs", num(-5)); got.String() != "5" {
		t.Errorf("abs(-5) = %s, want 5", got)
	}
	if got := call(t, reg, "floor", value.Number(decimal.NewFromFloat(1.5))); got.String() != "1" {
		t.Errorf("floor(1.5) = %s, want 1", got)
	}
	if got := call(t, reg, "modulo", num(-7), num(3)); got.String() != "2" {
		t.Errorf("modulo(-7, 3) = %s, want 2 (sign follows the divisor)", got)
	}
	if got := call(t, reg, "modulo", num(7), num(-3)); got.String() != "-2" {
		t.Errorf("modulo(7, -3) = %s, want -2", got)
	}
	if got := call(t, reg, "even", num(4)); !mustBool(t, got) {
		t.Errorf("even(4) = %s, want true", got)
	}
	if got := call(t, reg, "odd", num(4)); mustBool(t, got) {
		t.Errorf("odd(4) = %s, want false", got)
	}
}

func TestListBuiltins(t *testing.T) {
	reg := Register()
	list := value.List([]*value.Value{num(3), num(1), num(2)})

	if got := call(t, reg, "min", list); got.String() != "1" {
		t.Errorf("min([3,1,2]) = %s, want 1", got)
	}
	if got := call(t, reg, "max", list); got.String() != "3" {
		t.Errorf("max([3,1,2]) = %s, want 3", got)
	}
	if got := call(t, reg, "sum", list); got.String() != "6" {
		t.Errorf("sum([3,1,2]) = %s, want 6", got)
	}
	if got := call(t, reg, "count", list); got.String() != "3" {
		t.Errorf("count([3,1,2]) = %s, want 3", got)
	}
	if got := call(t, reg, "reverse", list); got.String() != "[2, 1, 3]" {
		t.Errorf("reverse([3,1,2]) = %s, want [2, 1, 3]", got)
	}
	dup := value.List([]*value.Value{num(1), num(1), num(2)})
	if got := call(t, reg, "distinct values", dup); got.String() != "[1, 2]" {
		t.Errorf("distinct values([1,1,2]) = %s, want [1, 2]", got)
	}
}

func TestContextBuiltins(t *testing.T) {
	reg := Register()
	ctx := value.NewContext()
	ctx.Set("x", num(1))

	updated := call(t, reg, "context put", value.ContextValue(ctx), value.String("y"), num(2))
	c, ok := updated.AsContext()
	if !ok {
		t.Fatalf("context put did not return a context: %s", updated)
	}
	if v, ok := c.Get("y"); !ok || v.String() != "2" {
		t.Errorf("context put(ctx, y, 2).y = %v, want 2", v)
	}
	if orig, ok := ctx.Get("y"); ok {
		t.Errorf("context put mutated the original context: got y = %s", orig)
	}
}

func TestNotBuiltinAndIsDefined(t *testing.T) {
	reg := Register()

	if got := call(t, reg, "not", value.Bool(true)); mustBool(t, got) {
		t.Errorf("not(true) = %s, want false", got)
	}
	if got := call(t, reg, "is defined", value.Null); mustBool(t, got) {
		t.Errorf("is defined(null) = %s, want false", got)
	}
	if got := call(t, reg, "is defined", num(1)); !mustBool(t, got) {
		t.Errorf("is defined(1) = %s, want true", got)
	}
}

func mustBool(t *testing.T, v *value.Value) bool {
	t.Helper()
	b, ok := v.AsBool()
	if !ok {
		t.Fatalf("expected a boolean, got %s", v)
	}
	return b
}
