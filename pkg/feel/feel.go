// Package feel is the embeddable engine façade (spec.md §6): parse,
// then evaluate, exposing a Success/Failure result carrying any
// suppressed warnings. Mirrors the shape of the teacher's
// pkg/dwscript.New(opts ...Option) engine, with WithBuiltin standing in
// for the teacher's WithOutput/WithTypeCheck functional options.
package feel

import (
	"sync"

	"github.com/feel-lang/feel/internal/ast"
	"github.com/feel-lang/feel/internal/builtins"
	"github.com/feel-lang/feel/internal/errors"
	"github.com/feel-lang/feel/internal/eval"
	"github.com/feel-lang/feel/internal/lexer"
	"github.com/feel-lang/feel/internal/parser"
	"github.com/feel-lang/feel/internal/value"
)

// Engine owns a read-only built-in registry and an optional parse
// cache; it is safe for concurrent use once constructed (spec.md §5:
// "the only shared state is the built-in function registry... built
// once at engine construction and read-only thereafter").
type Engine struct {
	builtins      map[string]*value.Value
	mappers       []ValueMapper
	maxIterations int

	cacheEnabled bool
	cacheMu      sync.RWMutex
	cache        map[string]ast.Expression
}

// New builds an Engine. Defaults: the built-in standard library from
// package builtins, the default value mapper, no iteration cap beyond
// the interpreter's internal defensive default, and no parse cache.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		builtins: builtins.Register(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithBuiltin registers or overrides a single built-in name. Later
// calls win; calling it after New has returned has no effect (the
// registry is frozen the moment construction completes).
func WithBuiltin(name string, fn func(args []*value.Value) *value.Value) Option {
	return func(e *Engine) {
		f := value.NewNative(nil, fn)
		f.VarArgs = true
		e.builtins[name] = value.FunctionValue(f)
	}
}

// WithValueMapper appends a mapper to the chain consulted when
// converting host `variables` into the engine's internal Value domain
// and back (spec.md §6: "first Some wins... the default mapper sits
// last and covers primitive cases").
func WithValueMapper(m ValueMapper) Option {
	return func(e *Engine) { e.mappers = append(e.mappers, m) }
}

// WithMaxIterations caps the total number of for/some/every iteration
// steps a single evaluation may perform, so that a very large
// host-supplied collection cannot hang evaluation. Zero or negative
// leaves the interpreter's built-in default in place.
func WithMaxIterations(n int) Option {
	return func(e *Engine) { e.maxIterations = n }
}

// WithParseCache enables a simple text-to-AST cache keyed by the exact
// source string (SPEC_FULL.md §A.2's hand-off cache, no eviction policy).
func WithParseCache(enabled bool) Option {
	return func(e *Engine) {
		e.cacheEnabled = enabled
		if enabled && e.cache == nil {
			e.cache = make(map[string]ast.Expression)
		}
	}
}

func (e *Engine) parseExpression(text string) (ast.Expression, *errors.SourceError) {
	if e.cacheEnabled {
		e.cacheMu.RLock()
		cached, ok := e.cache[text]
		e.cacheMu.RUnlock()
		if ok {
			return cached, nil
		}
	}
	p := parser.New(lexer.New(text))
	expr, ok := p.ParseExpression()
	if !ok {
		return nil, firstError(p.Errors(), text)
	}
	if e.cacheEnabled {
		e.cacheMu.Lock()
		e.cache[text] = expr
		e.cacheMu.Unlock()
	}
	return expr, nil
}

func (e *Engine) parseUnaryTests(text string) (ast.Expression, *errors.SourceError) {
	p := parser.New(lexer.New(text))
	expr, ok := p.ParseUnaryTests()
	if !ok {
		return nil, firstError(p.Errors(), text)
	}
	return expr, nil
}

func firstError(errs []*parser.ParseError, source string) *errors.SourceError {
	if len(errs) == 0 {
		return errors.New(lexer.Position{Line: 1, Column: 1}, "parse failed", source)
	}
	return errors.New(errs[0].Pos, errs[0].Message, source)
}

func (e *Engine) buildEnvironment(variables map[string]any) (*eval.Environment, []Warning) {
	vars := map[string]*value.Value{}
	var warnings []Warning
	for name, hv := range variables {
		v, ok := e.toInternal(hv)
		if !ok {
			warnings = append(warnings, Warning{
				Kind:    KindNoVariableFound,
				Message: "could not map host value for variable: " + name,
			})
			continue
		}
		vars[name] = v
	}
	return eval.NewEnvironment(vars), warnings
}

func (e *Engine) newContext(env *eval.Environment) *eval.Context {
	if e.maxIterations > 0 {
		return eval.NewContextWithLimit(env, e.builtins, e.maxIterations)
	}
	return eval.NewContext(env, e.builtins)
}

// EvaluateExpression implements spec.md §6's evaluateExpression entry
// point: parse text, evaluate it against variables, and report the
// result plus any surfaced warnings.
func (e *Engine) EvaluateExpression(text string, variables map[string]any) Result {
	expr, perr := e.parseExpression(text)
	if perr != nil {
		return Result{Failure: &Failure{Message: perr.Format()}}
	}

	env, mapWarnings := e.buildEnvironment(variables)
	ctx := e.newContext(env)
	result := eval.Eval(expr, ctx)

	return Result{Success: &Success{
		Value:    e.fromInternal(result),
		Warnings: append(mapWarnings, toWarnings(*ctx.Warnings)...),
	}}
}

// EvaluateUnaryTests implements spec.md §6's evaluateUnaryTests entry
// point: match a unary-test expression against an explicit input.
func (e *Engine) EvaluateUnaryTests(text string, input any, variables map[string]any) Result {
	expr, perr := e.parseUnaryTests(text)
	if perr != nil {
		return Result{Failure: &Failure{Message: perr.Format()}}
	}

	env, mapWarnings := e.buildEnvironment(variables)
	ctx := e.newContext(env)
	inputValue, ok := e.toInternal(input)
	if !ok {
		inputValue = value.Null
	}
	result := eval.MatchUnaryTests(expr, inputValue, ctx)

	return Result{Success: &Success{
		Value:    e.fromInternal(result),
		Warnings: append(mapWarnings, toWarnings(*ctx.Warnings)...),
	}}
}
