package eval

import (
	"testing"

	"github.com/feel-lang/feel/internal/ast"
	"github.com/feel-lang/feel/internal/lexer"
	"github.com/feel-lang/feel/internal/parser"
	"github.com/feel-lang/feel/internal/value"
)

func mustParse(t *testing.T, src string) ast.Expression {
	t.Helper()
	p := parser.New(lexer.New(src))
	expr, ok := p.ParseExpression()
	if !ok {
		t.Fatalf("parse %q: %v", src, p.Errors())
	}
	return expr
}

func evalSrc(t *testing.T, src string, vars map[string]*value.Value) *value.Value {
	t.Helper()
	expr := mustParse(t, src)
	ctx := NewContext(NewEnvironment(vars), map[string]*value.Value{})
	return Eval(expr, ctx)
}

func TestArithmeticNullPropagation(t *testing.T) {
	for _, tt := range []struct {
		src  string
		want *value.Value
	}{
		{"1 + 2", value.NumberFromInt(3)},
		{"2 * (3 + 5)", value.NumberFromInt(16)},
		{"10 ** 5", value.NumberFromInt(100000)},
		{"0.0 / 0.0", value.Null},
		{`1 + "a"`, value.Null},
	} {
		got := evalSrc(t, tt.src, nil)
		if !value.Equal(got, tt.want) && !(got.IsNull() && tt.want.IsNull()) {
			t.Errorf("%s = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestKleeneLogic(t *testing.T) {
	for _, tt := range []struct {
		src    string
		want   bool
		isNull bool
	}{
		{"false and 1", false, false},
		{"true and 1", false, true},
		{"false or true", true, false},
		{"false or 1", false, true},
	} {
		got := evalSrc(t, tt.src, nil)
		if tt.isNull {
			if !got.IsNull() {
				t.Errorf("%s = %s, want null", tt.src, got)
			}
			continue
		}
		b, ok := got.AsBool()
		if !ok || b != tt.want {
			t.Errorf("%s = %s, want %v", tt.src, got, tt.want)
		}
	}
}

func TestForPartial(t *testing.T) {
	got := evalSrc(t, "for i in 0..4 return if i = 0 then 1 else i * partial[-1]", nil)
	list, ok := got.AsList()
	if !ok {
		t.Fatalf("expected a list, got %s", got)
	}
	want := []int64{1, 1, 2, 6, 24}
	if len(list) != len(want) {
		t.Fatalf("got %d elements, want %d", len(list), len(want))
	}
	for i, w := range want {
		n, ok := list[i].AsNumber()
		if !ok || n.IntPart() != w {
			t.Errorf("element %d = %s, want %d", i, list[i], w)
		}
	}
}

func TestEveryVacuousTrue(t *testing.T) {
	got := evalSrc(t, "every b in a satisfies b < 10", map[string]*value.Value{"a": value.List(nil)})
	b, ok := got.AsBool()
	if !ok || !b {
		t.Errorf("every over [] = %s, want true", got)
	}
}

func TestInTotalOperator(t *testing.T) {
	for _, tt := range []struct {
		src  string
		want bool
	}{
		{"5 in (> 0, <10)", true},
		{`"d" in null`, false},
	} {
		got := evalSrc(t, tt.src, nil)
		b, ok := got.AsBool()
		if !ok || b != tt.want {
			t.Errorf("%s = %s, want %v", tt.src, got, tt.want)
		}
	}
}

func TestFilterIndexingAndPredicate(t *testing.T) {
	got := evalSrc(t, "[1,2,3][-1]", nil)
	if n, ok := got.AsNumber(); !ok || n.IntPart() != 3 {
		t.Errorf("[1,2,3][-1] = %s, want 3", got)
	}

	if got := evalSrc(t, "[1,2,3][0]", nil); !got.IsNull() {
		t.Errorf("[1,2,3][0] = %s, want null", got)
	}

	got = evalSrc(t, "[{a:1},{a:2},{a:3}][item.a >= 2]", nil)
	list, ok := got.AsList()
	if !ok || len(list) != 2 {
		t.Fatalf("filter result = %s, want 2 elements", got)
	}
}

func TestWarningsAccumulateAcrossClosureCalls(t *testing.T) {
	expr := mustParse(t, "({f: function(x) x + missing}).f(1)")
	ctx := NewContext(NewEnvironment(nil), map[string]*value.Value{})
	Eval(expr, ctx)
	if len(*ctx.Warnings) == 0 {
		t.Fatal("expected a warning to surface from inside the closure call")
	}
}
