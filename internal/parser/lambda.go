package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/source"
)

// parseLambda parses `\param, param -> body`.
func parseLambda(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Expr], *combinator.Failure) {
	start := s.Pos()
	if b, ok := s.Byte(0); !ok || b != '\\' {
		return combinator.Err[ast.Expr](combinator.NoProgress,
			&LambdaError{Kind: LambdaMissingParams, Pos: start}, s)
	}
	st := s.Advance(1)

	var params []ast.Pattern
	for {
		spRes, spFail := spaces(minIndent)(a, st)
		if spFail != nil {
			return combinator.Result[ast.Expr]{}, hardenLambdaFail(spFail, LambdaParam, st.Pos())
		}

		patRes, patFail := parsePattern(a, spRes.State, minIndent)
		if patFail != nil {
			if len(params) == 0 {
				return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
					&LambdaError{Kind: LambdaMissingParams, Pos: spRes.State.Pos()}, spRes.State)
			}
			return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
				&LambdaError{Kind: LambdaParam, Pos: spRes.State.Pos(), Inner: patFail.Err}, patFail.State)
		}
		params = append(params, withSpaceBefore(patRes.Value, spRes.Value))
		st = patRes.State

		sepRes, sepFail := spaces(minIndent)(a, st)
		if sepFail != nil {
			return combinator.Result[ast.Expr]{}, hardenLambdaFail(sepFail, LambdaMissingArrow, st.Pos())
		}

		b, ok := sepRes.State.Byte(0)
		if ok && b == ',' {
			st = sepRes.State.Advance(1)
			continue
		}
		if ok && b == '-' {
			if b1, ok := sepRes.State.Byte(1); ok && b1 == '>' {
				st = sepRes.State.Advance(2)
				break
			}
		}
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&LambdaError{Kind: LambdaMissingArrow, Pos: sepRes.State.Pos()}, sepRes.State)
	}

	bodySp, bodySpFail := spaces(minIndent)(a, st)
	if bodySpFail != nil {
		return combinator.Result[ast.Expr]{}, hardenLambdaFail(bodySpFail, LambdaBody, st.Pos())
	}

	bodyRes, bodyFail := parseExprChain(a, bodySp.State, minIndent)
	if bodyFail != nil {
		if bodyFail.Progress == combinator.MadeProgress {
			return combinator.Result[ast.Expr]{}, bodyFail
		}
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&LambdaError{Kind: LambdaBody, Pos: bodySp.State.Pos(), Inner: bodyFail.Err}, bodySp.State)
	}

	body := withSpaceBefore(bodyRes.Value, bodySp.Value)
	span := source.NewSpan(start, body.Span().End)
	node := ast.NewLambda(a, params, body, span)
	return combinator.Ok[ast.Expr](combinator.MadeProgress, node, bodyRes.State)
}

func hardenLambdaFail(fail *combinator.Failure, kind LambdaErrorKind, at source.Pos) *combinator.Failure {
	if fail.Progress == combinator.MadeProgress {
		return fail
	}
	return combinator.Fail(combinator.MadeProgress,
		&LambdaError{Kind: kind, Pos: at, Inner: fail.Err}, fail.State)
}
