package lexer

import "testing"

func collect(input string) []Token {
	l := New(input)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

func TestNextTokenBasics(t *testing.T) {
	toks := collect(`2 * (3 + 5)`)
	want := []TokenType{NUMBER, STAR, LPAREN, NUMBER, PLUS, NUMBER, RPAREN, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	for _, tt := range []struct{ in, out string }{
		{"123", "123"},
		{"3.14", "3.14"},
		{".5", ".5"},
		{"10", "10"},
	} {
		toks := collect(tt.in)
		if toks[0].Type != NUMBER || toks[0].Literal != tt.out {
			t.Errorf("input %q: got %+v", tt.in, toks[0])
		}
	}
}

func TestStringEscapes(t *testing.T) {
	for _, tt := range []struct{ in, want string }{
		{`"a\nb"`, "a\nb"},
		{`"a\\nb"`, `a\nb`},
		{`"a\"b"`, `a"b`},
		{`"a\xb"`, `a\xb`}, // unknown escape preserved literally
	} {
		toks := collect(tt.in)
		if toks[0].Type != STRING || toks[0].Literal != tt.want {
			t.Errorf("input %q: got %q, want %q", tt.in, toks[0].Literal, tt.want)
		}
	}
}

func TestBacktickIdentifier(t *testing.T) {
	toks := collect("`a weird name` + 1")
	if toks[0].Type != IDENT || toks[0].Literal != "a weird name" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestReservedWordPrefix(t *testing.T) {
	toks := collect("nullable")
	if toks[0].Type != IDENT || toks[0].Literal != "nullable" {
		t.Fatalf("expected IDENT(nullable), got %+v", toks[0])
	}
	toks = collect("null")
	if toks[0].Type != NULL {
		t.Fatalf("expected NULL keyword, got %+v", toks[0])
	}
}

func TestComments(t *testing.T) {
	toks := collect("1 // comment\n+ /* block\ncomment */ 2")
	want := []TokenType{NUMBER, PLUS, NUMBER, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %v", toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestOperators(t *testing.T) {
	toks := collect("<= >= != ** .. := ?")
	want := []TokenType{LTE, GTE, NEQ, POW, DOTDOT, ASSIGN, QUESTION, EOF}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestPositionTracksSpacedIdentifiers(t *testing.T) {
	// "a b" tokenizes as two IDENTs one space apart; the parser uses the
	// column delta to recognize multi-word names in key/parameter position.
	toks := collect("a b")
	if toks[0].Literal != "a" || toks[1].Literal != "b" {
		t.Fatalf("got %+v", toks[:2])
	}
	if toks[1].Pos.Column != toks[0].Pos.Column+2 {
		t.Errorf("expected single-space gap, got columns %d, %d", toks[0].Pos.Column, toks[1].Pos.Column)
	}
}
