package eval

import (
	"github.com/feel-lang/feel/internal/ast"
	"github.com/feel-lang/feel/internal/value"
)

// evalFunctionInvocation implements spec.md §4.3.9: look up name as a
// variable first (covers closures and parameters holding a function),
// then fall back to a registered built-in.
func evalFunctionInvocation(node *ast.FunctionInvocation, ctx *Context) *value.Value {
	fn, ok := ctx.Env.Get(node.Name)
	if !ok {
		fn, ok = ctx.Builtins[node.Name]
	}
	if !ok {
		return ctx.warnf(node, WarnUnknownFunction, "unknown function: "+node.Name)
	}
	return invoke(fn, node.Args, node.NamedArgs, node, ctx)
}

// evalQualifiedFunctionInvocation implements `a.b.f(...)` (spec.md
// §4.3.9): the target must resolve to a Context, f is looked up there.
func evalQualifiedFunctionInvocation(node *ast.QualifiedFunctionInvocation, ctx *Context) *value.Value {
	target := Eval(node.Target, ctx)
	c, ok := target.AsContext()
	if !ok {
		return value.Null
	}
	fn, ok := c.Get(node.Name)
	if !ok {
		return value.Null
	}
	return invoke(fn, node.Args, node.NamedArgs, node, ctx)
}

func invoke(fn *value.Value, argExprs []ast.Expression, namedArgs []ast.NamedArg, n ast.Node, ctx *Context) *value.Value {
	f, ok := fn.AsFunction()
	if !ok {
		return value.Null // invocation of a non-function value yields Null (spec.md §4.3.9)
	}

	if len(namedArgs) > 0 {
		bindings := make(map[string]*value.Value, len(f.Params))
		for _, na := range namedArgs {
			bindings[na.Name] = Eval(na.Value, ctx)
		}
		args := make([]*value.Value, len(f.Params))
		for i, p := range f.Params {
			v, ok := bindings[p]
			if !ok {
				// Missing named parameter is a surfaced failure, not a
				// silent one (spec.md §7).
				return ctx.warnf(n, WarnArity, "missing named parameter: "+p)
			}
			args[i] = v
		}
		return callFunction(f, args, ctx)
	}

	args := make([]*value.Value, len(argExprs))
	for i, a := range argExprs {
		args[i] = Eval(a, ctx)
	}
	if !f.VarArgs && len(args) != len(f.Params) {
		return ctx.warnf(n, WarnArity, "wrong number of arguments")
	}
	return callFunction(f, args, ctx)
}

func callFunction(f *value.Function, args []*value.Value, ctx *Context) *value.Value {
	if f.IsNative() {
		return f.Native(args)
	}
	body, ok := f.Body.(ast.Expression)
	if !ok {
		return value.Null
	}
	closure, ok := f.Closure.(*Environment)
	if !ok {
		closure = ctx.Env
	}
	bindings := make(map[string]*value.Value, len(f.Params))
	for i, p := range f.Params {
		if i < len(args) {
			bindings[p] = args[i]
		} else {
			bindings[p] = value.Null
		}
	}
	callCtx := ctx.withEnv(closure.Child(bindings))
	return Eval(body, callCtx)
}
