// Package errors formats fatal parse failures (spec.md §7 tier 3) with
// source context and a caret, the way the expression would be reported
// back to a rule author.
package errors

import (
	"fmt"
	"strings"

	"github.com/feel-lang/feel/internal/lexer"
)

// SourceError pairs a message with the position it applies to and the
// source text it was found in.
type SourceError struct {
	Message string
	Source  string
	Pos     lexer.Position
}

func New(pos lexer.Position, message, source string) *SourceError {
	return &SourceError{Pos: pos, Message: message, Source: source}
}

func (e *SourceError) Error() string { return e.Format() }

// Format renders the message with the offending source line and a caret
// under the reported column.
func (e *SourceError) Format() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message))

	line := sourceLine(e.Source, e.Pos.Line)
	if line == "" {
		return sb.String()
	}
	sb.WriteString("\n")
	prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteString("\n")
	col := e.Pos.Column - 1
	if col < 0 {
		col = 0
	}
	sb.WriteString(strings.Repeat(" ", len(prefix)+col))
	sb.WriteString("^")
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders one or more parse errors, numbering them when there
// is more than one.
func FormatAll(errs []*SourceError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d parse errors:\n\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&sb, "[%d/%d] %s\n", i+1, len(errs), e.Format())
	}
	return sb.String()
}
