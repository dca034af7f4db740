package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/source"
)

// parseIf parses `if cond then a else b`, with any number of `else if`
// continuations before the mandatory final else. The cursor sits on the
// `if` keyword.
func parseIf(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Expr], *combinator.Failure) {
	start := s.Pos()
	st := s.Advance(len("if"))

	var branches []ast.IfBranch
	for {
		cond, afterCond, fail := parseIfPart(a, st, minIndent, IfCondition)
		if fail != nil {
			return combinator.Result[ast.Expr]{}, fail
		}

		afterThen, fail := expectIfKeyword(a, afterCond, minIndent, "then", IfMissingThen)
		if fail != nil {
			return combinator.Result[ast.Expr]{}, fail
		}

		then, afterBranch, fail := parseIfPart(a, afterThen, minIndent, IfThenBranch)
		if fail != nil {
			return combinator.Result[ast.Expr]{}, fail
		}
		branches = append(branches, ast.IfBranch{Cond: cond, Then: then})

		afterElse, fail := expectIfKeyword(a, afterBranch, minIndent, "else", IfMissingElse)
		if fail != nil {
			return combinator.Result[ast.Expr]{}, fail
		}

		// Greedily probe for `else if`; anything short of a full `if`
		// keyword rolls back and parses as the final else branch.
		spRes, spFail := spaces(minIndent)(a, afterElse)
		if spFail == nil {
			probe := spRes.State
			if probe.StartsWith("if") && keywordBoundary(probe, 2) {
				st = probe.Advance(len("if"))
				continue
			}
		}

		elseExpr, afterAll, fail := parseIfPart(a, afterElse, minIndent, IfElseBranch)
		if fail != nil {
			return combinator.Result[ast.Expr]{}, fail
		}

		span := source.NewSpan(start, elseExpr.Span().End)
		node := ast.NewIf(a, branches, elseExpr, span)
		return combinator.Ok[ast.Expr](combinator.MadeProgress, node, afterAll)
	}
}

// parseIfPart parses one sub-expression of a conditional, wrapping any
// failure in the given error kind.
func parseIfPart(a *arena.Arena, st combinator.State, minIndent int, kind IfErrorKind) (ast.Expr, combinator.State, *combinator.Failure) {
	spRes, spFail := spaces(minIndent)(a, st)
	if spFail != nil {
		if spFail.Progress == combinator.MadeProgress {
			return nil, st, spFail
		}
		return nil, st, combinator.Fail(combinator.MadeProgress,
			&IfError{Kind: kind, Pos: st.Pos(), Inner: spFail.Err}, st)
	}

	res, fail := parseExprChain(a, spRes.State, minIndent)
	if fail != nil {
		if fail.Progress == combinator.MadeProgress {
			return nil, st, fail
		}
		return nil, st, combinator.Fail(combinator.MadeProgress,
			&IfError{Kind: kind, Pos: spRes.State.Pos(), Inner: fail.Err}, spRes.State)
	}

	return withSpaceBefore(res.Value, spRes.Value), res.State, nil
}

// expectIfKeyword consumes trivia then the given keyword, failing hard with
// the given kind when it is missing.
func expectIfKeyword(a *arena.Arena, st combinator.State, minIndent int, kw string, kind IfErrorKind) (combinator.State, *combinator.Failure) {
	spRes, spFail := spaces(minIndent)(a, st)
	if spFail != nil {
		if spFail.Progress == combinator.MadeProgress {
			return st, spFail
		}
		return st, combinator.Fail(combinator.MadeProgress,
			&IfError{Kind: kind, Pos: st.Pos()}, st)
	}

	probe := spRes.State
	if !probe.StartsWith(kw) || !keywordBoundary(probe, len(kw)) {
		return st, combinator.Fail(combinator.MadeProgress,
			&IfError{Kind: kind, Pos: probe.Pos()}, probe)
	}

	return probe.Advance(len(kw)), nil
}
