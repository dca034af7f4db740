package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/source"
)

// parseWhen parses `when cond is` followed by one or more branches. The
// first branch's pattern column becomes the reference column: every later
// branch must start exactly there, and `|` alternatives may sit at or right
// of it. The cursor sits on the `when` keyword.
func parseWhen(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Expr], *combinator.Failure) {
	start := s.Pos()
	st := s.Advance(len("when"))

	condSp, condSpFail := spaces(minIndent)(a, st)
	if condSpFail != nil {
		return combinator.Result[ast.Expr]{}, hardenWhenFail(condSpFail, WhenCondition, st.Pos())
	}

	condRes, condFail := parseExprChain(a, condSp.State, minIndent)
	if condFail != nil {
		if condFail.Progress == combinator.MadeProgress {
			return combinator.Result[ast.Expr]{}, condFail
		}
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&WhenError{Kind: WhenCondition, Pos: condSp.State.Pos(), Inner: condFail.Err}, condSp.State)
	}
	cond := withSpaceBefore(condRes.Value, condSp.Value)

	isSp, isSpFail := spaces(minIndent)(a, condRes.State)
	if isSpFail != nil {
		return combinator.Result[ast.Expr]{}, hardenWhenFail(isSpFail, WhenMissingIs, condRes.State.Pos())
	}
	probe := isSp.State
	if !probe.StartsWith("is") || !keywordBoundary(probe, 2) {
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&WhenError{Kind: WhenMissingIs, Pos: probe.Pos()}, probe)
	}
	st = probe.Advance(2)

	branchSp, branchSpFail := spaces(minIndent)(a, st)
	if branchSpFail != nil {
		return combinator.Result[ast.Expr]{}, hardenWhenFail(branchSpFail, WhenMissingBranches, st.Pos())
	}
	if branchSp.State.AtEnd() {
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&WhenError{Kind: WhenMissingBranches, Pos: branchSp.State.Pos()}, branchSp.State)
	}

	refCol := branchSp.State.Column
	var branches []ast.WhenBranch

	branch, st, fail := parseWhenBranch(a, branchSp.State, refCol)
	if fail != nil {
		return combinator.Result[ast.Expr]{}, fail
	}
	branches = append(branches, branch)

	for {
		trivia, afterSp, triviaFail := chompTrivia(st)
		if triviaFail != nil {
			return combinator.Result[ast.Expr]{}, triviaFail
		}
		if afterSp.AtEnd() || !crossedNewline(trivia) {
			break
		}
		col := afterSp.Column
		if col < refCol {
			// Outdented: the when is over and the token belongs to an
			// enclosing construct, which re-reads the trivia.
			break
		}
		if col > refCol {
			return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
				&WhenError{Kind: WhenAlignment, Pos: afterSp.Pos(), Delta: col - refCol}, afterSp)
		}

		branch, next, fail := parseWhenBranch(a, afterSp.WithIndent(col), refCol)
		if fail != nil {
			return combinator.Result[ast.Expr]{}, fail
		}
		branches = append(branches, branch)
		st = next
	}

	span := source.NewSpan(start, branches[len(branches)-1].Body.Span().End)
	node := ast.NewWhen(a, cond, branches, span)
	return combinator.Ok[ast.Expr](combinator.MadeProgress, node, st)
}

// parseWhenBranch parses `pattern (| pattern)* (if guard)? -> body` with
// the cursor on the first pattern byte.
func parseWhenBranch(a *arena.Arena, s combinator.State, refCol int) (ast.WhenBranch, combinator.State, *combinator.Failure) {
	var branch ast.WhenBranch

	patRes, patFail := parsePattern(a, s, refCol)
	if patFail != nil {
		return branch, s, combinator.Fail(combinator.MadeProgress,
			&WhenError{Kind: WhenPattern, Pos: s.Pos(), Inner: patFail.Err}, patFail.State)
	}
	branch.Patterns = append(branch.Patterns, patRes.Value)
	st := patRes.State

	// Alternative patterns sit at or right of the reference column.
	for {
		spRes, spFail := spaces(refCol)(a, st)
		if spFail != nil {
			if spFail.Progress == combinator.MadeProgress {
				return branch, st, spFail
			}
			return branch, st, combinator.Fail(combinator.MadeProgress,
				&WhenError{Kind: WhenMissingArrow, Pos: st.Pos()}, st)
		}
		after := spRes.State

		b, ok := after.Byte(0)
		if ok && b == '|' {
			if b1, ok := after.Byte(1); ok && (b1 == '|' || b1 == '>') {
				return branch, st, combinator.Fail(combinator.MadeProgress,
					&WhenError{Kind: WhenMissingArrow, Pos: after.Pos()}, after)
			}
			altSp, altSpFail := spaces(refCol)(a, after.Advance(1))
			if altSpFail != nil {
				return branch, st, hardenWhenFail(altSpFail, WhenPattern, after.Pos())
			}
			altRes, altFail := parsePattern(a, altSp.State, refCol)
			if altFail != nil {
				return branch, st, combinator.Fail(combinator.MadeProgress,
					&WhenError{Kind: WhenPattern, Pos: altSp.State.Pos(), Inner: altFail.Err}, altFail.State)
			}
			branch.Patterns = append(branch.Patterns, altRes.Value)
			st = altRes.State
			continue
		}

		if ok && b == 'i' && after.StartsWith("if") && keywordBoundary(after, 2) {
			guardSp, guardSpFail := spaces(refCol + 1)(a, after.Advance(2))
			if guardSpFail != nil {
				return branch, st, hardenWhenFail(guardSpFail, WhenGuard, after.Pos())
			}
			guardRes, guardFail := parseExprChain(a, guardSp.State, refCol+1)
			if guardFail != nil {
				if guardFail.Progress == combinator.MadeProgress {
					return branch, st, guardFail
				}
				return branch, st, combinator.Fail(combinator.MadeProgress,
					&WhenError{Kind: WhenGuard, Pos: guardSp.State.Pos(), Inner: guardFail.Err}, guardSp.State)
			}
			branch.Guard = guardRes.Value
			st = guardRes.State

			arrowSp, arrowSpFail := spaces(refCol)(a, st)
			if arrowSpFail != nil {
				return branch, st, hardenWhenFail(arrowSpFail, WhenMissingArrow, st.Pos())
			}
			after = arrowSp.State
			b, ok = after.Byte(0)
		}

		if !ok || b != '-' {
			return branch, st, combinator.Fail(combinator.MadeProgress,
				&WhenError{Kind: WhenMissingArrow, Pos: after.Pos()}, after)
		}
		if b1, ok := after.Byte(1); !ok || b1 != '>' {
			return branch, st, combinator.Fail(combinator.MadeProgress,
				&WhenError{Kind: WhenMissingArrow, Pos: after.Pos()}, after)
		}
		st = after.Advance(2)
		break
	}

	bodySp, bodySpFail := spaces(refCol + 1)(a, st)
	if bodySpFail != nil {
		return branch, st, hardenWhenFail(bodySpFail, WhenBranchBody, st.Pos())
	}
	bodyRes, bodyFail := parseExprChain(a, bodySp.State, refCol+1)
	if bodyFail != nil {
		if bodyFail.Progress == combinator.MadeProgress {
			return branch, st, bodyFail
		}
		return branch, st, combinator.Fail(combinator.MadeProgress,
			&WhenError{Kind: WhenBranchBody, Pos: bodySp.State.Pos(), Inner: bodyFail.Err}, bodySp.State)
	}

	branch.Body = withSpaceBefore(bodyRes.Value, bodySp.Value)
	return branch, bodyRes.State, nil
}

func hardenWhenFail(fail *combinator.Failure, kind WhenErrorKind, at source.Pos) *combinator.Failure {
	if fail.Progress == combinator.MadeProgress {
		return fail
	}
	return combinator.Fail(combinator.MadeProgress,
		&WhenError{Kind: kind, Pos: at, Inner: fail.Err}, fail.State)
}
