package parser

import (
	"testing"

	"github.com/feel-lang/feel/internal/ast"
	"github.com/feel-lang/feel/internal/lexer"
)

func parseUnaryTest(t *testing.T, src string) ast.Expression {
	t.Helper()
	p := New(lexer.New(src))
	expr, ok := p.ParseUnaryTests()
	if !ok {
		t.Fatalf("parse %q: %v", src, p.Errors())
	}
	return expr
}

func TestParseAnyInput(t *testing.T) {
	expr := parseUnaryTest(t, "-")
	if _, ok := expr.(*ast.AnyInput); !ok {
		t.Fatalf("'-' parsed as %T, want *ast.AnyInput", expr)
	}
}

func TestParseInputCompare(t *testing.T) {
	for _, op := range []string{"<", "<=", ">", ">="} {
		expr := parseUnaryTest(t, op+" 5")
		ic, ok := expr.(*ast.InputCompare)
		if !ok {
			t.Fatalf("%q parsed as %T, want *ast.InputCompare", op+" 5", expr)
		}
		if ic.Op != op {
			t.Errorf("Op = %q, want %q", ic.Op, op)
		}
	}
}

func TestParseClosedRange(t *testing.T) {
	expr := parseUnaryTest(t, "[4..6]")
	inRange, ok := expr.(*ast.InputInRange)
	if !ok {
		t.Fatalf("parsed as %T, want *ast.InputInRange", expr)
	}
	rangeLit, ok := inRange.Range.(*ast.RangeLiteral)
	if !ok {
		t.Fatalf("InputInRange.Range is %T, want *ast.RangeLiteral", inRange.Range)
	}
	if rangeLit.LowerOpen || rangeLit.UpperOpen {
		t.Errorf("[4..6] should be closed on both ends, got %s", rangeLit.String())
	}
}

func TestParseOpenRange(t *testing.T) {
	expr := parseUnaryTest(t, "]4..6[")
	inRange, ok := expr.(*ast.InputInRange)
	if !ok {
		t.Fatalf("parsed as %T, want *ast.InputInRange", expr)
	}
	rangeLit, ok := inRange.Range.(*ast.RangeLiteral)
	if !ok {
		t.Fatalf("InputInRange.Range is %T, want *ast.RangeLiteral", inRange.Range)
	}
	if !rangeLit.LowerOpen || !rangeLit.UpperOpen {
		t.Errorf("]4..6[ should be open on both ends, got %s", rangeLit.String())
	}
}

func TestParseCommaListDisjunction(t *testing.T) {
	expr := parseUnaryTest(t, "> 0, <10")
	group, ok := expr.(*ast.AtLeastOne)
	if !ok {
		t.Fatalf("parsed as %T, want *ast.AtLeastOne", expr)
	}
	if len(group.Tests) != 2 {
		t.Fatalf("got %d tests, want 2", len(group.Tests))
	}
}

func TestParseParenthesizedDisjunctionDisambiguatedFromRange(t *testing.T) {
	expr := parseUnaryTest(t, "(> 0, <10)")
	group, ok := expr.(*ast.AtLeastOne)
	if !ok {
		t.Fatalf("(> 0, <10) parsed as %T, want *ast.AtLeastOne", expr)
	}
	if len(group.Tests) != 2 {
		t.Fatalf("got %d tests, want 2", len(group.Tests))
	}

	rangeExpr := parseUnaryTest(t, "(4..6]")
	if _, ok := rangeExpr.(*ast.InputInRange); !ok {
		t.Fatalf("(4..6] parsed as %T, want *ast.InputInRange", rangeExpr)
	}
}

func TestParseNotTest(t *testing.T) {
	expr := parseUnaryTest(t, "not(5)")
	notTest, ok := expr.(*ast.NotTest)
	if !ok {
		t.Fatalf("parsed as %T, want *ast.NotTest", expr)
	}
	if len(notTest.Tests) != 1 {
		t.Fatalf("got %d tests inside not(), want 1", len(notTest.Tests))
	}
}

func TestParseNotTestCommaList(t *testing.T) {
	expr := parseUnaryTest(t, "not(1, 2, 3)")
	notTest, ok := expr.(*ast.NotTest)
	if !ok {
		t.Fatalf("parsed as %T, want *ast.NotTest", expr)
	}
	if len(notTest.Tests) != 3 {
		t.Errorf("got %d tests inside not(), want 3", len(notTest.Tests))
	}
}

func TestParseBareValueIsEqualityTest(t *testing.T) {
	expr := parseUnaryTest(t, "5")
	if _, ok := expr.(*ast.UnaryTestExpr); !ok {
		t.Fatalf("bare '5' parsed as %T, want *ast.UnaryTestExpr", expr)
	}
}

func TestParseTrailingTokenIsAnError(t *testing.T) {
	p := New(lexer.New("5 5"))
	if _, ok := p.ParseUnaryTests(); ok {
		t.Fatal("expected trailing-token parse failure")
	}
}
