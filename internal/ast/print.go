package ast

// Print renders an expression back to FEEL source text using each
// node's own String() method. The parser's snapshot tests record its
// output; they do not parse the printed text back.
func Print(expr Expression) string {
	if expr == nil {
		return ""
	}
	return expr.String()
}
