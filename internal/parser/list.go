package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/source"
)

// parseList parses a list literal.
func parseList(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Expr], *combinator.Failure) {
	cfg := collectionConfig{
		open:  '[',
		close: ']',
		missingClose: func(open, at source.Pos) error {
			return &ListError{Kind: ListEnd, Pos: at}
		},
		wrapItem: func(inner error, open source.Pos) error {
			if _, isStart := startOnly(inner); isStart {
				return &ListError{Kind: ListEnd, Pos: open}
			}
			return &ListError{Kind: ListItem, Pos: open, Inner: inner}
		},
	}

	res, fail := parseCollection(a, s, minIndent, cfg, parseExprChain)
	if fail != nil {
		if fail.Progress == combinator.NoProgress {
			return combinator.Err[ast.Expr](combinator.NoProgress,
				&ListError{Kind: ListOpen, Pos: s.Pos()}, s)
		}
		return combinator.Result[ast.Expr]{}, fail
	}

	node := ast.NewListLit(a, res.Value.items, res.Value.span)
	node.AttachAfter(res.Value.finalComments)
	return combinator.Ok[ast.Expr](combinator.MadeProgress, node, res.State)
}

// startOnly reports whether err is a bare "expected an expression" failure,
// which inside a collection means the element itself was missing.
func startOnly(err error) (*ExprError, bool) {
	ee, ok := err.(*ExprError)
	if !ok || ee.Kind != ExprStart {
		return nil, false
	}
	return ee, true
}
