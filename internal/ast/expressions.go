package ast

import (
	"fmt"
	"strings"

	"github.com/feel-lang/feel/internal/lexer"
	"github.com/shopspring/decimal"
)

func (*NullLiteral) expressionNode()                {}
func (*BoolLiteral) expressionNode()                {}
func (*NumberLiteral) expressionNode()              {}
func (*StringLiteral) expressionNode()              {}
func (*InputValue) expressionNode()                 {}
func (*Ref) expressionNode()                        {}
func (*Unary) expressionNode()                      {}
func (*Binary) expressionNode()                     {}
func (*Between) expressionNode()                    {}
func (*InTest) expressionNode()                     {}
func (*InstanceOf) expressionNode()                 {}
func (*If) expressionNode()                         {}
func (*ForExpr) expressionNode()                    {}
func (*QuantifiedExpr) expressionNode()              {}
func (*FunctionDef) expressionNode()                {}
func (*FunctionInvocation) expressionNode()          {}
func (*QualifiedFunctionInvocation) expressionNode() {}
func (*PathExpr) expressionNode()                    {}
func (*FilterExpr) expressionNode()                  {}
func (*ListLiteral) expressionNode()                 {}
func (*ContextLiteral) expressionNode()              {}
func (*RangeLiteral) expressionNode()                {}
func (*AnyInput) expressionNode()                    {}
func (*InputEqualTo) expressionNode()                {}
func (*InputCompare) expressionNode()                {}
func (*InputInRange) expressionNode()                {}
func (*UnaryTestExpr) expressionNode()               {}
func (*AtLeastOne) expressionNode()                  {}
func (*NotTest) expressionNode()                     {}

// NullLiteral is the literal `null`.
type NullLiteral struct{ baseNode }

func NewNullLiteral(pos lexer.Position) *NullLiteral { return &NullLiteral{baseNode{pos}} }
func (n *NullLiteral) String() string                { return "null" }

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	baseNode
	Value bool
}

func NewBoolLiteral(pos lexer.Position, v bool) *BoolLiteral { return &BoolLiteral{baseNode{pos}, v} }
func (n *BoolLiteral) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}

// NumberLiteral is an arbitrary-precision decimal literal (spec.md §3.1,
// §4.1: no scientific notation).
type NumberLiteral struct {
	baseNode
	Value decimal.Decimal
}

func NewNumberLiteral(pos lexer.Position, v decimal.Decimal) *NumberLiteral {
	return &NumberLiteral{baseNode{pos}, v}
}
func (n *NumberLiteral) String() string { return n.Value.String() }

// StringLiteral is a double-quoted string with escapes already resolved
// by the lexer.
type StringLiteral struct {
	baseNode
	Value string
}

func NewStringLiteral(pos lexer.Position, v string) *StringLiteral {
	return &StringLiteral{baseNode{pos}, v}
}
func (n *StringLiteral) String() string { return fmt.Sprintf("%q", n.Value) }

// InputValue is the `?` reference to the implicit input in unary-test
// position (spec.md §3.2, §4.2).
type InputValue struct{ baseNode }

func NewInputValue(pos lexer.Position) *InputValue { return &InputValue{baseNode{pos}} }
func (n *InputValue) String() string               { return "?" }

// Ref is a variable reference, possibly a whitespace-bearing or
// backtick-quoted name (spec.md §4.1).
type Ref struct {
	baseNode
	Name string
}

func NewRef(pos lexer.Position, name string) *Ref { return &Ref{baseNode{pos}, name} }
func (n *Ref) String() string                      { return n.Name }

// Unary is a prefix operator; FEEL has only unary minus (spec.md §4.2 level 4).
type Unary struct {
	baseNode
	Op      string
	Operand Expression
}

func NewUnary(pos lexer.Position, op string, operand Expression) *Unary {
	return &Unary{baseNode{pos}, op, operand}
}
func (n *Unary) String() string { return n.Op + n.Operand.String() }

// Binary covers arithmetic (+ - * / **), comparison (= != < <= > >=),
// and logical (and, or) binary operators: one node shape, dispatched by
// Op at evaluation time (spec.md §9 "tagged variant" design note).
type Binary struct {
	baseNode
	Op    string
	Left  Expression
	Right Expression
}

func NewBinary(pos lexer.Position, op string, left, right Expression) *Binary {
	return &Binary{baseNode{pos}, op, left, right}
}
func (n *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left.String(), n.Op, n.Right.String())
}

// Between desugars to `x >= lower and x <= upper` at evaluation time
// (spec.md §4.2) but is kept as its own node so Value is evaluated once.
type Between struct {
	baseNode
	Value Expression
	Lower Expression
	Upper Expression
}

func NewBetween(pos lexer.Position, value, lower, upper Expression) *Between {
	return &Between{baseNode{pos}, value, lower, upper}
}
func (n *Between) String() string {
	return fmt.Sprintf("(%s between %s and %s)", n.Value.String(), n.Lower.String(), n.Upper.String())
}

// InTest is `value in (test1, test2, ...)` (spec.md §4.3.7); Tests are
// positive-unary-test nodes matched against Value substituted for `?`.
type InTest struct {
	baseNode
	Value Expression
	Tests []Expression
}

func NewInTest(pos lexer.Position, value Expression, tests []Expression) *InTest {
	return &InTest{baseNode{pos}, value, tests}
}
func (n *InTest) String() string {
	parts := make([]string, len(n.Tests))
	for i, t := range n.Tests {
		parts[i] = t.String()
	}
	return fmt.Sprintf("(%s in (%s))", n.Value.String(), strings.Join(parts, ", "))
}

// InstanceOf is `value instance of TypeName` (SPEC_FULL.md §C).
type InstanceOf struct {
	baseNode
	Value    Expression
	TypeName string
}

func NewInstanceOf(pos lexer.Position, value Expression, typeName string) *InstanceOf {
	return &InstanceOf{baseNode{pos}, value, typeName}
}
func (n *InstanceOf) String() string {
	return fmt.Sprintf("(%s instance of %s)", n.Value.String(), n.TypeName)
}

// If is `if cond then a else b` (spec.md §4.3.2).
type If struct {
	baseNode
	Cond Expression
	Then Expression
	Else Expression
}

func NewIf(pos lexer.Position, cond, then, els Expression) *If {
	return &If{baseNode{pos}, cond, then, els}
}
func (n *If) String() string {
	return fmt.Sprintf("if %s then %s else %s", n.Cond.String(), n.Then.String(), n.Else.String())
}

// Iterator is one `name in source` clause shared by for/some/every.
type Iterator struct {
	Name   string
	Source Expression
}

// ForExpr is `for i1 in e1, i2 in e2, ... return body` (spec.md §4.3.3).
type ForExpr struct {
	baseNode
	Iterators []Iterator
	Body      Expression
}

func NewForExpr(pos lexer.Position, iterators []Iterator, body Expression) *ForExpr {
	return &ForExpr{baseNode{pos}, iterators, body}
}
func (n *ForExpr) String() string {
	parts := make([]string, len(n.Iterators))
	for i, it := range n.Iterators {
		parts[i] = it.Name + " in " + it.Source.String()
	}
	return fmt.Sprintf("for %s return %s", strings.Join(parts, ", "), n.Body.String())
}

// QuantifiedExpr is `some`/`every ... satisfies cond` (spec.md §4.3.4).
type QuantifiedExpr struct {
	baseNode
	Every     bool
	Iterators []Iterator
	Cond      Expression
}

func NewQuantifiedExpr(pos lexer.Position, every bool, iterators []Iterator, cond Expression) *QuantifiedExpr {
	return &QuantifiedExpr{baseNode{pos}, every, iterators, cond}
}
func (n *QuantifiedExpr) String() string {
	kw := "some"
	if n.Every {
		kw = "every"
	}
	parts := make([]string, len(n.Iterators))
	for i, it := range n.Iterators {
		parts[i] = it.Name + " in " + it.Source.String()
	}
	return fmt.Sprintf("%s %s satisfies %s", kw, strings.Join(parts, ", "), n.Cond.String())
}

// FunctionDef is `function(p1, p2, ...) body` (spec.md §4.3.9).
type FunctionDef struct {
	baseNode
	Params  []string
	VarArgs bool
	Body    Expression
}

func NewFunctionDef(pos lexer.Position, params []string, varArgs bool, body Expression) *FunctionDef {
	return &FunctionDef{baseNode{pos}, params, varArgs, body}
}
func (n *FunctionDef) String() string {
	return fmt.Sprintf("function(%s) %s", strings.Join(n.Params, ", "), n.Body.String())
}

// NamedArg is one `name: value` pair in a named-argument call.
type NamedArg struct {
	Name  string
	Value Expression
}

// FunctionInvocation is `name(args...)`, positional or named (spec.md §3.3).
type FunctionInvocation struct {
	baseNode
	Name      string
	Args      []Expression
	NamedArgs []NamedArg
}

func NewFunctionInvocation(pos lexer.Position, name string, args []Expression, named []NamedArg) *FunctionInvocation {
	return &FunctionInvocation{baseNode{pos}, name, args, named}
}
func (n *FunctionInvocation) String() string {
	return n.Name + "(" + joinArgs(n.Args, n.NamedArgs) + ")"
}

// QualifiedFunctionInvocation is `target.name(args...)` where target
// resolves to a Context (spec.md §3.3, §4.3.9).
type QualifiedFunctionInvocation struct {
	baseNode
	Target    Expression
	Name      string
	Args      []Expression
	NamedArgs []NamedArg
}

func NewQualifiedFunctionInvocation(pos lexer.Position, target Expression, name string, args []Expression, named []NamedArg) *QualifiedFunctionInvocation {
	return &QualifiedFunctionInvocation{baseNode{pos}, target, name, args, named}
}
func (n *QualifiedFunctionInvocation) String() string {
	return n.Target.String() + "." + n.Name + "(" + joinArgs(n.Args, n.NamedArgs) + ")"
}

func joinArgs(args []Expression, named []NamedArg) string {
	parts := make([]string, 0, len(args)+len(named))
	for _, a := range args {
		parts = append(parts, a.String())
	}
	for _, a := range named {
		parts = append(parts, a.Name+": "+a.Value.String())
	}
	return strings.Join(parts, ", ")
}

// PathExpr is `base.name` (spec.md §4.3.5).
type PathExpr struct {
	baseNode
	Base Expression
	Name string
}

func NewPathExpr(pos lexer.Position, base Expression, name string) *PathExpr {
	return &PathExpr{baseNode{pos}, base, name}
}
func (n *PathExpr) String() string { return n.Base.String() + "." + n.Name }

// FilterExpr is `base[predicate]` (spec.md §4.3.6).
type FilterExpr struct {
	baseNode
	Base      Expression
	Predicate Expression
}

func NewFilterExpr(pos lexer.Position, base, predicate Expression) *FilterExpr {
	return &FilterExpr{baseNode{pos}, base, predicate}
}
func (n *FilterExpr) String() string {
	return fmt.Sprintf("%s[%s]", n.Base.String(), n.Predicate.String())
}

// ListLiteral is `[e1, e2, ...]`.
type ListLiteral struct {
	baseNode
	Elements []Expression
}

func NewListLiteral(pos lexer.Position, elements []Expression) *ListLiteral {
	return &ListLiteral{baseNode{pos}, elements}
}
func (n *ListLiteral) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ContextEntryNode is one `key: value` pair in a context literal.
type ContextEntryNode struct {
	Key   string
	Value Expression
}

// ContextLiteral is `{k1: v1, k2: v2, ...}`.
type ContextLiteral struct {
	baseNode
	Entries []ContextEntryNode
}

func NewContextLiteral(pos lexer.Position, entries []ContextEntryNode) *ContextLiteral {
	return &ContextLiteral{baseNode{pos}, entries}
}
func (n *ContextLiteral) String() string {
	parts := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		parts[i] = e.Key + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// RangeLiteral is `[a..b]`, `(a..b)`, `[a..b)`, etc (spec.md §4.2 range).
type RangeLiteral struct {
	baseNode
	Lower     Expression
	LowerOpen bool
	Upper     Expression
	UpperOpen bool
}

func NewRangeLiteral(pos lexer.Position, lower Expression, lowerOpen bool, upper Expression, upperOpen bool) *RangeLiteral {
	return &RangeLiteral{baseNode{pos}, lower, lowerOpen, upper, upperOpen}
}
func (n *RangeLiteral) String() string {
	open, closeB := "[", "]"
	if n.LowerOpen {
		open = "("
	}
	if n.UpperOpen {
		closeB = ")"
	}
	return fmt.Sprintf("%s%s..%s%s", open, n.Lower.String(), n.Upper.String(), closeB)
}

// --- Unary-test AST (spec.md §3.3, §4.2, §4.3.10) ---

// AnyInput is the lone `-` unary test: matches anything.
type AnyInput struct{ baseNode }

func NewAnyInput(pos lexer.Position) *AnyInput { return &AnyInput{baseNode{pos}} }
func (n *AnyInput) String() string             { return "-" }

// InputEqualTo matches when `? = Expr`.
type InputEqualTo struct {
	baseNode
	Expr Expression
}

func NewInputEqualTo(pos lexer.Position, expr Expression) *InputEqualTo {
	return &InputEqualTo{baseNode{pos}, expr}
}
func (n *InputEqualTo) String() string { return n.Expr.String() }

// InputCompare matches `? <op> Expr` for op in {<, <=, >, >=}.
type InputCompare struct {
	baseNode
	Op   string
	Expr Expression
}

func NewInputCompare(pos lexer.Position, op string, expr Expression) *InputCompare {
	return &InputCompare{baseNode{pos}, op, expr}
}
func (n *InputCompare) String() string { return n.Op + " " + n.Expr.String() }

// InputInRange matches range membership of `?` (spec.md §4.3.8).
type InputInRange struct {
	baseNode
	Range Expression // *RangeLiteral, or a Ref/expr evaluating to a Range value
}

func NewInputInRange(pos lexer.Position, r Expression) *InputInRange {
	return &InputInRange{baseNode{pos}, r}
}
func (n *InputInRange) String() string { return n.Range.String() }

// UnaryTestExpr is the fallback case: an arbitrary expression evaluated
// with `?` bound; a Bool result is used directly, any other result is
// compared against the input with `=` (spec.md §4.3.10).
type UnaryTestExpr struct {
	baseNode
	Expr Expression
}

func NewUnaryTestExpr(pos lexer.Position, expr Expression) *UnaryTestExpr {
	return &UnaryTestExpr{baseNode{pos}, expr}
}
func (n *UnaryTestExpr) String() string { return n.Expr.String() }

// AtLeastOne is a disjunction of unary tests (comma-separated positive
// tests, spec.md §4.2).
type AtLeastOne struct {
	baseNode
	Tests []Expression
}

func NewAtLeastOne(pos lexer.Position, tests []Expression) *AtLeastOne {
	return &AtLeastOne{baseNode{pos}, tests}
}
func (n *AtLeastOne) String() string {
	parts := make([]string, len(n.Tests))
	for i, t := range n.Tests {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// NotTest is `not(test1, test2, ...)` (spec.md §4.2, §4.3.10, and the
// SPEC_FULL.md §C supplement making the comma-list explicit).
type NotTest struct {
	baseNode
	Tests []Expression
}

func NewNotTest(pos lexer.Position, tests []Expression) *NotTest {
	return &NotTest{baseNode{pos}, tests}
}
func (n *NotTest) String() string {
	parts := make([]string, len(n.Tests))
	for i, t := range n.Tests {
		parts[i] = t.String()
	}
	return "not(" + strings.Join(parts, ", ") + ")"
}
