// Package ast defines the FEEL abstract syntax tree (spec.md §3.3): a
// small set of node types produced by package parser and walked by
// package eval. A single flat set of structs implementing one
// Expression interface is used instead of a class hierarchy, so the
// interpreter can dispatch by a type switch (spec.md §9 design notes).
package ast

import "github.com/feel-lang/feel/internal/lexer"

// Node is the minimal surface every AST node implements.
type Node interface {
	Pos() lexer.Position
	String() string
}

// Expression is any node that produces a value when evaluated. FEEL
// has no statements in the embedded-expression sense spec.md targets,
// so Expression is the only node category.
type Expression interface {
	Node
	expressionNode()
}

type baseNode struct {
	pos lexer.Position
}

func (b baseNode) Pos() lexer.Position { return b.pos }
