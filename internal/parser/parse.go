// Package parser turns source text into the syntax tree. Expressions parse
// through an operator chain engine that treats juxtaposition as
// application and folds binary operators rightward without precedence;
// definitions are discovered mid-chain when `=`, `:`, or `<-` shows up and
// the chain so far reinterprets as a pattern.
package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
)

// ParseExpr parses src as a single expression, which may be a block of
// definitions ending in one. All nodes are allocated in a, so the tree
// lives exactly as long as the arena. Input after the expression is an
// error.
func ParseExpr(a *arena.Arena, src []byte) (ast.Expr, error) {
	s := combinator.NewState(src)

	spRes, spFail := spaces(0)(a, s)
	if spFail != nil {
		return nil, spFail.Err
	}

	res, fail := parseExprChain(a, spRes.State, 0)
	if fail != nil {
		return nil, fail.Err
	}
	expr := withSpaceBefore(res.Value, spRes.Value)

	trailRes, trailFail := spaces(0)(a, res.State)
	if trailFail != nil {
		return nil, trailFail.Err
	}
	if !trailRes.State.AtEnd() {
		return nil, &ExprError{Kind: ExprEnd, Pos: trailRes.State.Pos()}
	}
	expr.AttachAfter(trailRes.Value)

	return expr, nil
}

// Parse is the convenience entry point: it allocates a fresh arena, parses
// src, and returns the tree. The arena is unreachable afterwards except
// through the returned nodes.
func Parse(src string) (ast.Expr, error) {
	return ParseExpr(arena.New(), []byte(src))
}

// ParseDefs parses src as a block of definitions with a final expression,
// such as a file body. It is ParseExpr with the result shape checked: a
// plain expression with no definitions in front parses but reports no
// definitions.
func ParseDefs(a *arena.Arena, src []byte) ([]ast.Def, ast.Expr, error) {
	expr, err := ParseExpr(a, src)
	if err != nil {
		return nil, nil, err
	}
	if block, ok := expr.(*ast.Defs); ok {
		return block.Defs, block.Ret, nil
	}
	return nil, expr, nil
}
