package parser

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/feel-lang/feel/internal/ast"
	"github.com/feel-lang/feel/internal/lexer"
)

// TestPrintSnapshot snapshots ast.Print's rendering of a representative
// sample of expressions, a cheap way to catch accidental AST/printer
// drift without pinning every case to a hand-written literal.
func TestPrintSnapshot(t *testing.T) {
	exprs := []string{
		`2 * (3 + 5)`,
		`for i in 1..10 return i * 2`,
		`some x in [1,2,3] satisfies x > 2`,
		`{a: 1, b: {c: 2}}`,
		`[1,2,3][item > 1]`,
		`function(x, y) x + y`,
		`date("2023-10-06") + duration("P1M")`,
	}

	for i, src := range exprs {
		p := New(lexer.New(src))
		expr, ok := p.ParseExpression()
		if !ok {
			t.Fatalf("parse %q: %v", src, p.Errors())
		}
		snaps.MatchSnapshot(t, fmt.Sprintf("expr_%d", i), ast.Print(expr))
	}
}

func TestPrintUnaryTestSnapshot(t *testing.T) {
	tests := []string{
		"[4..6]",
		"> 0, <10",
		"not(1, 2, 3)",
	}

	for i, src := range tests {
		p := New(lexer.New(src))
		expr, ok := p.ParseUnaryTests()
		if !ok {
			t.Fatalf("parse %q: %v", src, p.Errors())
		}
		snaps.MatchSnapshot(t, fmt.Sprintf("unary_test_%d", i), ast.Print(expr))
	}
}
