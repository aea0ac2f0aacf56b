package feel_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/feel-lang/feel/internal/value"
	"github.com/feel-lang/feel/pkg/feel"
)

// TestConcreteScenarios exercises every concrete scenario from the
// engine's conformance table: a fixed expression with a known result
// evaluated against an empty (or noted) variable context.
func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name string
		expr string
		vars map[string]any
		want string
	}{
		{"multiply-add", "2 * (3 + 5)", nil, "16"},
		{"exponent", "10 ** 5", nil, "100000"},
		{"division-by-zero", "0.0 / 0.0", nil, "null"},
		{"string-concat", `"a" + "b"`, nil, `ab`},
		{"number-plus-string", `1 + "a"`, nil, "null"},
		{"date-subtraction", `date("2012-12-25") - date("2012-12-24") = duration("P1D")`, nil, "true"},
		{"date-plus-duration", `date("2023-10-06") + duration("P1M") = date("2023-11-06")`, nil, "true"},
		{"closure-over-context", `({foo: function(x) x + 5, bar: foo(5)}).bar`, nil, "10"},
		{"for-partial", `for i in 0..4 return if i = 0 then 1 else i * partial[-1]`, nil, "[1, 1, 2, 6, 24]"},
		{"every-vacuous-true", `every b in a satisfies b < 10`, map[string]any{"a": []any{}}, "true"},
		{"negative-index", `[1,2,3][-1]`, nil, "3"},
		{"zero-index", `[1,2,3][0]`, nil, "null"},
		{"out-of-range-index", `[1,2,3][4]`, nil, "null"},
		{"filter-by-property", `[{a:1},{a:2},{a:3}][item.a >= 2]`, nil, "[{a: 2}, {a: 3}]"},
		{"false-and-one", "false and 1", nil, "false"},
		{"true-and-one", "true and 1", nil, "null"},
		{"false-or-true", "false or true", nil, "true"},
		{"false-or-one", "false or 1", nil, "null"},
		{"in-range-group", "5 in (> 0, <10)", nil, "true"},
		{"in-null", `"d" in null`, nil, "false"},
	}

	engine, err := feel.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.EvaluateExpression(tc.expr, tc.vars)
			if result.Failure != nil {
				t.Fatalf("unexpected failure: %s", result.Failure.Message)
			}
			got := renderValue(result.Success.Value)
			if got != tc.want {
				t.Errorf("%s = %s, want %s", tc.expr, got, tc.want)
			}
		})
	}
}

// TestUnaryTestScenarios covers the engine's distinct unary-test entry
// point against a fixed implicit input.
func TestUnaryTestScenarios(t *testing.T) {
	cases := []struct {
		name  string
		test  string
		input any
		want  string
	}{
		{"greater-than-null-input", "> 5", nil, "null"},
		{"not-five-against-five", "not(5)", 5, "false"},
		{"not-five-against-zero", "not(5)", 0, "true"},
		{"closed-range-lower-bound", "[4..6]", 4, "true"},
		{"closed-range-upper-bound", "[4..6]", 6, "true"},
		{"open-range-lower-bound", "]4..6[", 4, "false"},
		{"open-range-upper-bound", "]4..6[", 6, "false"},
	}

	engine, err := feel.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.EvaluateUnaryTests(tc.test, tc.input, nil)
			if result.Failure != nil {
				t.Fatalf("unexpected failure: %s", result.Failure.Message)
			}
			got := renderValue(result.Success.Value)
			if got != tc.want {
				t.Errorf("%s against %v = %s, want %s", tc.test, tc.input, got, tc.want)
			}
		})
	}
}

func TestUndeclaredVariableSurfacesWarning(t *testing.T) {
	engine, err := feel.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result := engine.EvaluateExpression("unknownVar + 1", nil)
	if result.Failure != nil {
		t.Fatalf("unexpected failure: %s", result.Failure.Message)
	}
	if len(result.Success.Warnings) == 0 {
		t.Fatal("expected a warning for an undeclared variable reference")
	}
	if result.Success.Warnings[0].Kind != feel.KindNoVariableFound {
		t.Errorf("got warning kind %s, want %s", result.Success.Warnings[0].Kind, feel.KindNoVariableFound)
	}
}

func TestParseFailureIsFatal(t *testing.T) {
	engine, err := feel.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result := engine.EvaluateExpression("2 +", nil)
	if result.Failure == nil {
		t.Fatal("expected a parse failure")
	}
}

func TestWithBuiltinOverride(t *testing.T) {
	engine, err := feel.New(feel.WithBuiltin("triple", func(args []*value.Value) *value.Value {
		n, ok := args[0].AsNumber()
		if !ok {
			return value.Null
		}
		return value.Number(n.Mul(decimal.NewFromInt(3)))
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := engine.EvaluateExpression("triple(4)", nil)
	if result.Failure != nil {
		t.Fatalf("unexpected failure: %s", result.Failure.Message)
	}
	if got := renderValue(result.Success.Value); got != "12" {
		t.Errorf("triple(4) = %s, want 12", got)
	}
}

func TestMaxIterationsGuardsRunawayFor(t *testing.T) {
	engine, err := feel.New(feel.WithMaxIterations(10))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result := engine.EvaluateExpression("for i in 1..1000 return i", nil)
	if result.Failure != nil {
		t.Fatalf("unexpected failure: %s", result.Failure.Message)
	}
	if len(result.Success.Warnings) == 0 {
		t.Fatal("expected an iteration-limit warning")
	}
}

func renderValue(v any) string {
	switch tv := v.(type) {
	case nil:
		return "null"
	case bool:
		if tv {
			return "true"
		}
		return "false"
	case string:
		return tv
	case decimal.Decimal:
		return tv.String()
	case []any:
		parts := make([]string, len(tv))
		for i, item := range tv {
			parts[i] = renderValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + renderValue(tv[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", tv)
	}
}
