package eval

import (
	"github.com/feel-lang/feel/internal/ast"
	"github.com/feel-lang/feel/internal/value"
)

// defaultMaxIterations bounds for/some/every so a runaway source list
// (or a host-supplied collection the caller didn't expect to be huge)
// can't hang evaluation; it is overridable via NewContextWithLimit.
const defaultMaxIterations = 1_000_000

// Context threads the scope chain, the accumulated tier-2 warnings
// (spec.md §7), and a total-iteration budget through one evaluation.
// It is created fresh per evaluateExpression/evaluateUnaryTests call
// (spec.md §5: evaluation is single-threaded and self-contained).
type Context struct {
	Env      *Environment
	Builtins map[string]*value.Value

	Warnings *[]Warning
	budget   *iterBudget
}

// iterBudget is shared (by pointer) across every Context derived from
// one root via withEnv, so a for/some/every nested inside a function
// call still counts against the same total (spec.md §5: one evaluation
// owns one resource budget).
type iterBudget struct {
	max  int
	used int
}

// NewContext builds a root evaluation context (spec.md §6 entry points).
func NewContext(env *Environment, builtins map[string]*value.Value) *Context {
	return NewContextWithLimit(env, builtins, defaultMaxIterations)
}

// NewContextWithLimit is NewContext with an explicit iteration cap,
// used by the engine façade's WithMaxIterations option.
func NewContextWithLimit(env *Environment, builtins map[string]*value.Value, maxIterations int) *Context {
	warnings := []Warning{}
	return &Context{Env: env, Builtins: builtins, Warnings: &warnings, budget: &iterBudget{max: maxIterations}}
}

func (c *Context) withEnv(env *Environment) *Context {
	child := *c
	child.Env = env
	return &child
}

// tick consumes one unit of the shared iteration budget; it reports
// false once the budget is exhausted, telling the caller to bail out
// to Null with a recorded warning instead of continuing to loop.
func (c *Context) tick() bool {
	c.budget.used++
	return c.budget.used <= c.budget.max
}

func (c *Context) warnf(n ast.Node, kind WarningKind, msg string) *value.Value {
	*c.Warnings = append(*c.Warnings, Warning{Kind: kind, Message: msg, Pos: n.Pos()})
	return value.Null
}

// Eval is the single dispatch point for every AST node (spec.md §4.3):
// it never panics and always returns a Value, routing anything it
// cannot make sense of to Null plus a recorded Warning rather than
// raising (spec.md §7).
func Eval(n ast.Expression, ctx *Context) *value.Value {
	switch node := n.(type) {
	case *ast.NullLiteral:
		return value.Null
	case *ast.BoolLiteral:
		return value.Bool(node.Value)
	case *ast.NumberLiteral:
		return value.Number(node.Value)
	case *ast.StringLiteral:
		return value.String(node.Value)
	case *ast.InputValue:
		return evalRef(ctx, node, "?")
	case *ast.Ref:
		return evalRef(ctx, node, node.Name)
	case *ast.Unary:
		return evalUnary(node, ctx)
	case *ast.Binary:
		return evalBinary(node, ctx)
	case *ast.Between:
		return evalBetween(node, ctx)
	case *ast.InTest:
		return evalInTest(node, ctx)
	case *ast.InstanceOf:
		return evalInstanceOf(node, ctx)
	case *ast.If:
		return evalIf(node, ctx)
	case *ast.ForExpr:
		return evalFor(node, ctx)
	case *ast.QuantifiedExpr:
		return evalQuantified(node, ctx)
	case *ast.FunctionDef:
		return value.FunctionValue(value.NewClosure(node.Params, node.Body, ctx.Env))
	case *ast.FunctionInvocation:
		return evalFunctionInvocation(node, ctx)
	case *ast.QualifiedFunctionInvocation:
		return evalQualifiedFunctionInvocation(node, ctx)
	case *ast.PathExpr:
		return evalPath(node, ctx)
	case *ast.FilterExpr:
		return evalFilter(node, ctx)
	case *ast.ListLiteral:
		return evalList(node, ctx)
	case *ast.ContextLiteral:
		return evalContext(node, ctx)
	case *ast.RangeLiteral:
		return evalRange(node, ctx)
	case *ast.AnyInput, *ast.InputEqualTo, *ast.InputCompare, *ast.InputInRange,
		*ast.UnaryTestExpr, *ast.AtLeastOne, *ast.NotTest:
		return evalUnaryTestAsBool(n, ctx)
	default:
		return ctx.warnf(n, WarnTypeMismatch, "cannot evaluate this expression")
	}
}

func evalRef(ctx *Context, n ast.Node, name string) *value.Value {
	if v, ok := ctx.Env.Get(name); ok {
		return v
	}
	if v, ok := ctx.Builtins[name]; ok {
		return v
	}
	return ctx.warnf(n, WarnUnknownVariable, "unknown name: "+name)
}

func evalList(node *ast.ListLiteral, ctx *Context) *value.Value {
	items := make([]*value.Value, len(node.Elements))
	for i, e := range node.Elements {
		items[i] = Eval(e, ctx)
	}
	return value.List(items)
}

func evalContext(node *ast.ContextLiteral, ctx *Context) *value.Value {
	c := value.NewContext()
	child := ctx
	for _, entry := range node.Entries {
		v := Eval(entry.Value, child)
		c.Set(entry.Key, v)
		// Later entries can reference earlier ones by name (spec.md §4.3):
		// evaluate left-to-right in a scope that accumulates prior keys.
		child = child.withEnv(child.Env.ChildOne(entry.Key, v))
	}
	return value.ContextValue(c)
}

func evalRange(node *ast.RangeLiteral, ctx *Context) *value.Value {
	lower := Eval(node.Lower, ctx)
	upper := Eval(node.Upper, ctx)
	lowerKind, upperKind := value.BoundClosed, value.BoundClosed
	if node.LowerOpen {
		lowerKind = value.BoundOpen
	}
	if node.UpperOpen {
		upperKind = value.BoundOpen
	}
	return value.RangeValue(&value.Range{Lower: lower, LowerKind: lowerKind, Upper: upper, UpperKind: upperKind})
}
