// Package parser implements a combinator-driven recursive-descent
// parser for the FEEL grammar (spec.md §4.2), producing the AST defined
// in package ast. Each precedence level is its own production
// (level-N := level-(N+1) (op level-(N+1))*) to avoid left recursion,
// per the design notes in spec.md §9.
package parser

import (
	"fmt"
	"strings"

	"github.com/feel-lang/feel/internal/ast"
	"github.com/feel-lang/feel/internal/lexer"
	"github.com/shopspring/decimal"
)

// Parser is re-entrant and touches no process-wide state (spec.md §5):
// every call to New starts a fresh, independent parse.
type Parser struct {
	c      *cursor
	errors []*ParseError
}

// New creates a Parser over the given lexer.
func New(l *lexer.Lexer) *Parser {
	return &Parser{c: newCursor(l)}
}

func (p *Parser) Errors() []*ParseError { return p.errors }

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, &ParseError{Pos: p.c.current().Pos, Message: fmt.Sprintf(format, args...)})
}

// ParseExpression parses a full expression (spec.md §6 evaluateExpression
// entry point) and reports whether any fatal errors were recorded.
func (p *Parser) ParseExpression() (ast.Expression, bool) {
	expr := p.parseLevel1()
	if p.c.current().Type != lexer.EOF {
		p.errorf("unexpected trailing token %s", p.c.current().Type)
	}
	return expr, len(p.errors) == 0
}

// --- Level 1: if / for / some / every / or ---

func (p *Parser) parseLevel1() ast.Expression {
	switch p.c.current().Type {
	case lexer.IF:
		return p.parseIf()
	case lexer.FOR:
		return p.parseFor()
	case lexer.SOME, lexer.EVERY:
		return p.parseQuantified()
	default:
		return p.parseOr()
	}
}

func (p *Parser) parseIf() ast.Expression {
	pos := p.c.current().Pos
	p.c.advance() // if
	cond := p.parseLevel1()
	p.Expect(lexer.THEN)
	then := p.parseLevel1()
	p.Expect(lexer.ELSE)
	els := p.parseLevel1()
	return ast.NewIf(pos, cond, then, els)
}

func (p *Parser) parseIterators() []ast.Iterator {
	var iterators []ast.Iterator
	p.SeparatedList(SeparatorConfig{
		Sep:  lexer.COMMA,
		Term: lexer.RETURN, // sentinel never actually the term token; loop exits via ParseItem failing
		ParseItem: func() bool {
			if p.c.current().Type != lexer.IDENT {
				return false
			}
			// The iterator name may contain single spaces, but the `in`
			// keyword that follows it ends the name.
			first := p.c.current()
			name := first.Literal
			last := first
			p.c.advance()
			for isNameLikeToken(p.c.current()) && p.c.current().Type != lexer.IN &&
				adjacentBySingleSpace(last, p.c.current()) {
				last = p.c.current()
				name += " " + last.Literal
				p.c.advance()
			}
			if !p.Expect(lexer.IN) {
				return false
			}
			source := p.parseLevel1()
			iterators = append(iterators, ast.Iterator{Name: name, Source: source})
			return true
		},
	})
	return iterators
}

func (p *Parser) parseFor() ast.Expression {
	pos := p.c.current().Pos
	p.c.advance() // for
	iterators := p.parseIterators()
	p.Expect(lexer.RETURN)
	body := p.parseLevel1()
	return ast.NewForExpr(pos, iterators, body)
}

func (p *Parser) parseQuantified() ast.Expression {
	pos := p.c.current().Pos
	every := p.c.current().Type == lexer.EVERY
	p.c.advance() // some/every
	iterators := p.parseIterators()
	p.Expect(lexer.SATISFIES)
	cond := p.parseLevel1()
	return ast.NewQuantifiedExpr(pos, every, iterators, cond)
}

func (p *Parser) parseOr() ast.Expression {
	left := p.parseAnd()
	for p.c.current().Type == lexer.OR {
		pos := p.c.current().Pos
		p.c.advance()
		right := p.parseAnd()
		left = ast.NewBinary(pos, "or", left, right)
	}
	return left
}

func (p *Parser) parseAnd() ast.Expression {
	left := p.parseComparison()
	for p.c.current().Type == lexer.AND {
		pos := p.c.current().Pos
		p.c.advance()
		right := p.parseComparison()
		left = ast.NewBinary(pos, "and", left, right)
	}
	return left
}

var comparisonOps = map[lexer.TokenType]string{
	lexer.EQ: "=", lexer.NEQ: "!=", lexer.LT: "<", lexer.LTE: "<=",
	lexer.GT: ">", lexer.GTE: ">=",
}

// parseComparison implements level 3 (spec.md §4.2): a single,
// non-chainable comparison against a level-4 operand, `between`,
// `instance of`, `in`, or (the general-expression extension used by
// iterator sources like "0..4") a bare range literal.
func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAdditive()

	if p.c.current().Type == lexer.DOTDOT {
		pos := p.c.current().Pos
		p.c.advance()
		upper := p.parseAdditive()
		return ast.NewRangeLiteral(pos, left, false, upper, false)
	}

	if op, ok := comparisonOps[p.c.current().Type]; ok {
		pos := p.c.current().Pos
		p.c.advance()
		right := p.parseAdditive()
		return ast.NewBinary(pos, op, left, right)
	}

	if p.c.current().Type == lexer.BETWEEN {
		pos := p.c.current().Pos
		p.c.advance()
		lower := p.parseAdditive()
		p.Expect(lexer.AND)
		upper := p.parseAdditive()
		return ast.NewBetween(pos, left, lower, upper)
	}

	if p.isInstanceOf() {
		pos := p.c.current().Pos
		p.c.advance() // "instance"
		p.c.advance() // "of"
		typeTok := p.c.current()
		typeName := typeTok.Literal
		lastTok := typeTok
		p.c.advance()
		for _, candidate := range instanceOfMultiWordNames {
			if candidate[0] != typeName {
				continue
			}
			if merged, newLast, ok := p.tryMergeWords(lastTok, candidate[1:]); ok {
				typeName = merged
				lastTok = newLast
			}
		}
		return ast.NewInstanceOf(pos, left, typeName)
	}

	if p.c.current().Type == lexer.IN {
		pos := p.c.current().Pos
		p.c.advance()
		tests := p.parsePositiveUnaryTestListForIn()
		return ast.NewInTest(pos, left, tests)
	}

	return left
}

// isInstanceOf recognizes the two-word "instance of" operator: neither
// word is a lexical keyword, so it is matched contextually here by
// literal text and single-space adjacency (SPEC_FULL.md §C).
func (p *Parser) isInstanceOf() bool {
	cur := p.c.current()
	next := p.c.peek(1)
	return cur.Type == lexer.IDENT && cur.Literal == "instance" &&
		next.Literal == "of" && adjacentBySingleSpace(cur, next)
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.c.current().Type == lexer.PLUS || p.c.current().Type == lexer.MINUS {
		op := p.c.current().Literal
		pos := p.c.current().Pos
		p.c.advance()
		right := p.parseMultiplicative()
		left = ast.NewBinary(pos, op, left, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseExponent()
	for p.c.current().Type == lexer.STAR || p.c.current().Type == lexer.SLASH {
		op := p.c.current().Literal
		pos := p.c.current().Pos
		p.c.advance()
		right := p.parseExponent()
		left = ast.NewBinary(pos, op, left, right)
	}
	return left
}

// parseExponent implements `**`, left-associative (spec.md §4.2: "`**`
// left-associative, matching the source" — not mathematically standard
// right-associativity, but the behavior this engine targets).
func (p *Parser) parseExponent() ast.Expression {
	left := p.parseUnary()
	for p.c.current().Type == lexer.POW {
		pos := p.c.current().Pos
		p.c.advance()
		right := p.parseUnary()
		left = ast.NewBinary(pos, "**", left, right)
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.c.current().Type == lexer.MINUS {
		pos := p.c.current().Pos
		p.c.advance()
		operand := p.parseUnary()
		return ast.NewUnary(pos, "-", operand)
	}
	return p.parseValue()
}

// --- Level 5: value + postfix path/filter chain ---

func (p *Parser) parseValue() ast.Expression {
	tok := p.c.current()
	var expr ast.Expression

	switch tok.Type {
	case lexer.NULL:
		p.c.advance()
		expr = ast.NewNullLiteral(tok.Pos)
	case lexer.TRUE:
		p.c.advance()
		expr = ast.NewBoolLiteral(tok.Pos, true)
	case lexer.FALSE:
		p.c.advance()
		expr = ast.NewBoolLiteral(tok.Pos, false)
	case lexer.NUMBER:
		p.c.advance()
		d, err := decimal.NewFromString(tok.Literal)
		if err != nil {
			p.errorf("invalid number literal %q", tok.Literal)
			d = decimal.Zero
		}
		expr = ast.NewNumberLiteral(tok.Pos, d)
	case lexer.STRING:
		p.c.advance()
		expr = ast.NewStringLiteral(tok.Pos, tok.Literal)
	case lexer.QUESTION:
		p.c.advance()
		expr = ast.NewInputValue(tok.Pos)
	case lexer.FUNCTION:
		expr = p.parseFunctionDef()
	case lexer.LPAREN:
		p.c.advance()
		expr = p.parseLevel1()
		p.Expect(lexer.RPAREN)
	case lexer.LBRACKET:
		expr = p.parseListLiteral()
	case lexer.LBRACE:
		expr = p.parseContextLiteral()
	case lexer.IDENT, lexer.AND, lexer.OR, lexer.NOT:
		expr = p.parseNameOrCall()
	default:
		p.errorf("unexpected token %s in expression", tok.Type)
		p.c.advance()
		expr = ast.NewNullLiteral(tok.Pos)
	}

	return p.parsePostfixChain(expr)
}

func (p *Parser) parsePostfixChain(expr ast.Expression) ast.Expression {
	for {
		switch p.c.current().Type {
		case lexer.DOT:
			dotTok := p.c.current()
			p.c.advance()
			nameTok := p.c.current()
			name := p.parseMultiWordName()
			if p.c.current().Type == lexer.LPAREN && adjacent(nameTok, p.c.current()) {
				p.c.advance() // (
				args, named := p.parseArgList()
				p.Expect(lexer.RPAREN)
				expr = ast.NewQualifiedFunctionInvocation(dotTok.Pos, expr, name, args, named)
			} else {
				expr = ast.NewPathExpr(dotTok.Pos, expr, name)
			}
		case lexer.LBRACKET:
			pos := p.c.current().Pos
			p.c.advance()
			pred := p.parseLevel1()
			p.Expect(lexer.RBRACKET)
			expr = ast.NewFilterExpr(pos, expr, pred)
		default:
			return expr
		}
	}
}

// builtinMultiWordNames is the fixed list spec.md §4.2 calls out as
// reserved-word-bearing names recognized in call position.
var builtinMultiWordNames = [][]string{
	{"date", "and", "time"},
	{"years", "and", "months", "duration"},
	{"get", "or", "else"},
}

// instanceOfMultiWordNames is the fixed list of multi-word type names
// `instance of` must recognize (SPEC_FULL.md §C); matched the same way
// as builtinMultiWordNames so a trailing `and <expr>` after a
// single-word type name (e.g. `x instance of number and y`) is never
// mistaken for part of the type name.
var instanceOfMultiWordNames = [][]string{
	{"date", "and", "time"},
	{"years", "and", "months", "duration"},
	{"days", "and", "time", "duration"},
}

// parseNameOrCall reads a (possibly fixed-list multi-word) callable
// name and, if it is immediately followed by `(` with no intervening
// whitespace, parses it as a function invocation; otherwise it is a
// plain variable reference (spec.md §4.2 disambiguation rules).
func (p *Parser) parseNameOrCall() ast.Expression {
	startTok := p.c.current()
	name := startTok.Literal
	lastTok := startTok
	p.c.advance()

	for _, candidate := range builtinMultiWordNames {
		if candidate[0] != name {
			continue
		}
		if merged, newLast, ok := p.tryMergeWords(lastTok, candidate[1:]); ok {
			name = merged
			lastTok = newLast
		}
	}

	if p.c.current().Type == lexer.LPAREN && adjacent(lastTok, p.c.current()) {
		p.c.advance() // (
		args, named := p.parseArgList()
		p.Expect(lexer.RPAREN)
		return ast.NewFunctionInvocation(startTok.Pos, name, args, named)
	}

	if startTok.Type == lexer.AND || startTok.Type == lexer.OR || startTok.Type == lexer.NOT {
		p.errorf("%q is reserved and must be followed by '(' to be used as a name", name)
	}

	return ast.NewRef(startTok.Pos, name)
}

// tryMergeWords attempts to extend name by the given word sequence,
// each word required to be single-space-adjacent to the previous token
// and matching literally; it backtracks (consumes nothing) on mismatch.
func (p *Parser) tryMergeWords(last lexer.Token, words []string) (string, lexer.Token, bool) {
	mark := p.c.mark()
	built := ""
	cur := last
	for _, w := range words {
		next := p.c.current()
		if next.Literal != w || !adjacentBySingleSpace(cur, next) {
			p.c.reset(mark)
			return "", lexer.Token{}, false
		}
		built += " " + w
		cur = next
		p.c.advance()
	}
	return last.Literal + built, cur, true
}

// parseMultiWordName merges a run of single-space-adjacent name-like
// tokens into one name, per spec.md §4.1's allowance for embedded
// spaces in context keys and parameter names.
func (p *Parser) parseMultiWordName() string {
	first := p.c.current()
	name := first.Literal
	last := first
	p.c.advance()
	for isNameLikeToken(p.c.current()) && adjacentBySingleSpace(last, p.c.current()) {
		last = p.c.current()
		name += " " + last.Literal
		p.c.advance()
	}
	return name
}

func isNameLikeToken(t lexer.Token) bool {
	return t.Type == lexer.IDENT || t.Type.IsKeyword()
}

func (p *Parser) parseArgList() ([]ast.Expression, []ast.NamedArg) {
	var args []ast.Expression
	var named []ast.NamedArg
	p.SeparatedList(SeparatorConfig{
		Sep:  lexer.COMMA,
		Term: lexer.RPAREN,
		ParseItem: func() bool {
			if p.c.current().Type == lexer.RPAREN {
				return false
			}
			mark := p.c.mark()
			if isNameLikeToken(p.c.current()) {
				name := p.parseMultiWordName()
				if p.Optional(lexer.COLON) {
					value := p.parseLevel1()
					named = append(named, ast.NamedArg{Name: name, Value: value})
					return true
				}
				p.c.reset(mark)
			}
			args = append(args, p.parseLevel1())
			return true
		},
	})
	return args, named
}

func (p *Parser) parseFunctionDef() ast.Expression {
	pos := p.c.current().Pos
	p.c.advance() // function
	p.Expect(lexer.LPAREN)
	var params []string
	varArgs := false
	p.SeparatedList(SeparatorConfig{
		Sep:  lexer.COMMA,
		Term: lexer.RPAREN,
		ParseItem: func() bool {
			if p.c.current().Type == lexer.RPAREN {
				return false
			}
			if p.c.current().Type == lexer.DOTDOT {
				// "..." style varargs markers are not part of spec.md's
				// grammar; tolerate a trailing range-dots token defensively.
				varArgs = true
				p.c.advance()
				return false
			}
			params = append(params, p.parseMultiWordName())
			return true
		},
	})
	p.Expect(lexer.RPAREN)
	body := p.parseLevel1()
	return ast.NewFunctionDef(pos, params, varArgs, body)
}

func (p *Parser) parseListLiteral() ast.Expression {
	pos := p.c.current().Pos
	p.c.advance() // [
	var elements []ast.Expression
	p.SeparatedList(SeparatorConfig{
		Sep:  lexer.COMMA,
		Term: lexer.RBRACKET,
		ParseItem: func() bool {
			if p.c.current().Type == lexer.RBRACKET {
				return false
			}
			elements = append(elements, p.parseLevel1())
			return true
		},
	})
	p.Expect(lexer.RBRACKET)
	return ast.NewListLiteral(pos, elements)
}

func (p *Parser) parseContextLiteral() ast.Expression {
	pos := p.c.current().Pos
	p.c.advance() // {
	var entries []ast.ContextEntryNode
	p.SeparatedList(SeparatorConfig{
		Sep:  lexer.COMMA,
		Term: lexer.RBRACE,
		ParseItem: func() bool {
			if p.c.current().Type == lexer.RBRACE {
				return false
			}
			var key string
			if p.c.current().Type == lexer.STRING {
				key = p.c.current().Literal
				p.c.advance()
			} else {
				key = p.parseMultiWordName()
			}
			p.Expect(lexer.COLON)
			value := p.parseLevel1()
			entries = append(entries, ast.ContextEntryNode{Key: key, Value: value})
			return true
		},
	})
	p.Expect(lexer.RBRACE)
	return ast.NewContextLiteral(pos, entries)
}

// String renders the token stream consumed so far, for diagnostics.
func (p *Parser) String() string {
	var sb strings.Builder
	for _, t := range p.c.tokens {
		sb.WriteString(t.String())
		sb.WriteByte(' ')
	}
	return sb.String()
}
