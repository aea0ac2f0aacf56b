// This file provides a small combinator layer over the Parser's token
// cursor, in the spirit of the teacher's parser/combinators.go:
// higher-order helpers that encapsulate common parsing patterns
// (optional tokens, repetition, separated lists) so the grammar
// productions in parser.go read declaratively instead of hand-rolling
// loop-and-check boilerplate at every call site.
package parser

import "github.com/feel-lang/feel/internal/lexer"

// Optional consumes the current token if it matches tt, returning
// whether it did.
func (p *Parser) Optional(tt lexer.TokenType) bool {
	if p.c.current().Type == tt {
		p.c.advance()
		return true
	}
	return false
}

// Expect consumes the current token if it matches tt; otherwise it
// records a fatal parse error (spec.md §7 tier 3) and leaves the cursor
// in place so the caller's subsequent parsing still makes forward
// progress where possible.
func (p *Parser) Expect(tt lexer.TokenType) bool {
	if p.Optional(tt) {
		return true
	}
	p.errorf("expected %s, got %s", tt, p.c.current().Type)
	return false
}

// SeparatorConfig configures SeparatedList: parse zero or more ParseItem
// results separated by Sep, stopping when Term is seen.
type SeparatorConfig struct {
	Sep       lexer.TokenType
	Term      lexer.TokenType
	ParseItem func() bool
}

// SeparatedList repeatedly runs cfg.ParseItem separated by cfg.Sep until
// cfg.Term is reached, returning the number of items parsed.
func (p *Parser) SeparatedList(cfg SeparatorConfig) int {
	count := 0
	if p.c.current().Type == cfg.Term {
		return 0
	}
	for {
		if !cfg.ParseItem() {
			return count
		}
		count++
		if !p.Optional(cfg.Sep) {
			return count
		}
	}
}
