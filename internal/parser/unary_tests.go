package parser

import "github.com/feel-lang/feel/internal/ast"
import "github.com/feel-lang/feel/internal/lexer"

// ParseUnaryTests parses the distinct unary-test grammar entry point
// used by decision-table cells and by the `in` operator's right-hand
// side (spec.md §3.3, §4.2, §4.3.10).
func (p *Parser) ParseUnaryTests() (ast.Expression, bool) {
	result := p.parseUnaryTestsTop()
	if p.c.current().Type != lexer.EOF {
		p.errorf("unexpected trailing token %s", p.c.current().Type)
	}
	return result, len(p.errors) == 0
}

func (p *Parser) parseUnaryTestsTop() ast.Expression {
	cur := p.c.current()

	if cur.Type == lexer.NOT {
		pos := cur.Pos
		p.c.advance()
		p.Expect(lexer.LPAREN)
		tests := p.parsePositiveTestCommaList()
		p.Expect(lexer.RPAREN)
		return ast.NewNotTest(pos, tests)
	}

	// A lone "-" (nothing follows) matches anything; "-5" etc is an
	// ordinary expression reached through parsePositiveTest's default case.
	if cur.Type == lexer.MINUS && p.c.peek(1).Type == lexer.EOF {
		p.c.advance()
		return ast.NewAnyInput(cur.Pos)
	}

	tests := p.parsePositiveTestCommaList()
	if len(tests) == 1 {
		return tests[0]
	}
	return ast.NewAtLeastOne(cur.Pos, tests)
}

func (p *Parser) parsePositiveTestCommaList() []ast.Expression {
	tests := []ast.Expression{p.parsePositiveTest()}
	for p.Optional(lexer.COMMA) {
		tests = append(tests, p.parsePositiveTest())
	}
	return tests
}

// parsePositiveTest implements the positiveTest/simplePositiveTest
// productions (spec.md §4.2).
func (p *Parser) parsePositiveTest() ast.Expression {
	cur := p.c.current()

	switch cur.Type {
	case lexer.LTE, lexer.GTE, lexer.LT, lexer.GT:
		op := cur.Literal
		p.c.advance()
		endpoint := p.parseAdditive()
		return ast.NewInputCompare(cur.Pos, op, endpoint)
	case lexer.LBRACKET, lexer.LPAREN, lexer.RBRACKET:
		return p.parseRangeOrGroup()
	default:
		expr := p.parseLevel1()
		if lit, ok := expr.(*ast.BoolLiteral); ok {
			return ast.NewInputEqualTo(cur.Pos, lit)
		}
		return ast.NewUnaryTestExpr(cur.Pos, expr)
	}
}

// parseRangeOrGroup disambiguates a leading '[', '(' or ']' between a
// range literal (endpoint '..' endpoint closer) and, for '(' only, a
// parenthesized disjunction of tests — e.g. `(> 0, <10)` — by trying
// the range production first and backtracking on failure.
func (p *Parser) parseRangeOrGroup() ast.Expression {
	openTok := p.c.current()
	mark := p.c.mark()
	errMark := len(p.errors)

	lowerOpen := openTok.Type == lexer.LPAREN || openTok.Type == lexer.RBRACKET
	p.c.advance() // consume opener
	lower := p.parseAdditive()
	if p.c.current().Type == lexer.DOTDOT {
		p.c.advance()
		upper := p.parseAdditive()
		closer := p.c.current()
		if closer.Type == lexer.RPAREN || closer.Type == lexer.LBRACKET || closer.Type == lexer.RBRACKET {
			upperOpen := closer.Type == lexer.RPAREN || closer.Type == lexer.LBRACKET
			p.c.advance()
			rangeLit := ast.NewRangeLiteral(openTok.Pos, lower, lowerOpen, upper, upperOpen)
			return ast.NewInputInRange(openTok.Pos, rangeLit)
		}
	}

	p.c.reset(mark)
	p.errors = p.errors[:errMark]
	if openTok.Type != lexer.LPAREN {
		p.errorf("expected a range starting with %s", openTok.Type)
		p.c.advance()
		return ast.NewAnyInput(openTok.Pos)
	}
	p.c.advance() // (
	tests := p.parsePositiveTestCommaList()
	p.Expect(lexer.RPAREN)
	if len(tests) == 1 {
		return tests[0]
	}
	return ast.NewAtLeastOne(openTok.Pos, tests)
}

// parsePositiveUnaryTestListForIn parses the right-hand side of `in`
// (spec.md §4.3.7): a single positive-unary-test, or a parenthesized
// disjunction of them, always flattened to the disjunction's members.
func (p *Parser) parsePositiveUnaryTestListForIn() []ast.Expression {
	cur := p.c.current()
	if cur.Type == lexer.LBRACKET || cur.Type == lexer.LPAREN || cur.Type == lexer.RBRACKET {
		result := p.parseRangeOrGroup()
		if grp, ok := result.(*ast.AtLeastOne); ok {
			return grp.Tests
		}
		return []ast.Expression{result}
	}
	return p.parsePositiveTestCommaList()
}
