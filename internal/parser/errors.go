package parser

import "github.com/feel-lang/feel/internal/lexer"

// ParseError is a fatal syntax error (spec.md §7 tier 3): parse errors
// always abort evaluation and populate Failure.message in the engine
// façade (package feel).
type ParseError struct {
	Pos     lexer.Position
	Message string
}

func (e *ParseError) Error() string {
	return e.Pos.String() + ": " + e.Message
}
