package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
)

// parseBodyDef handles `=` arriving in an operator chain: everything parsed
// so far becomes the definition's pattern, the body parses indented past
// it, and the definitions run continues from there.
func parseBodyDef(a *arena.Arena, st combinator.State, minIndent int, es exprState, op opInfo) (combinator.Result[ast.Expr], *combinator.Failure) {
	if len(es.operators) > 0 {
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprBadOperator, Pos: op.span.Start, Op: "="}, st)
	}
	if len(es.arguments) > 0 {
		argsSpan := es.arguments[0].Span().Across(es.arguments[len(es.arguments)-1].Span())
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprElmStyleFunction, Pos: op.span.Start, ArgsSpan: argsSpan}, st)
	}

	pat, perr := exprToPattern(a, es.expr)
	if perr != nil {
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress, perr, st)
	}

	defCol := es.expr.Span().Start.Column
	body, afterBody, fail := parseDefBody(a, st, defCol)
	if fail != nil {
		return combinator.Result[ast.Expr]{}, fail
	}

	def := ast.NewBody(a, pat, body, pat.Span().Across(body.Span()))
	return parseDefsRest(a, afterBody, defCol, def)
}

// parseAnnotationDef handles `:` arriving in an operator chain. A tag on
// the left introduces a type alias; anything else becomes an annotation on
// the reinterpreted pattern.
func parseAnnotationDef(a *arena.Arena, st combinator.State, minIndent int, es exprState, op opInfo) (combinator.Result[ast.Expr], *combinator.Failure) {
	if len(es.operators) > 0 {
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprBadOperator, Pos: op.span.Start, Op: ":"}, st)
	}

	defCol := es.expr.Span().Start.Column

	spRes, spFail := spaces(defCol + 1)(a, st)
	if spFail != nil {
		return combinator.Result[ast.Expr]{}, hardenSpaceFail(spFail, st)
	}
	typRes, typFail := parseTypeAnnot(a, spRes.State, defCol+1, true)
	if typFail != nil {
		if typFail.Progress == combinator.MadeProgress {
			return combinator.Result[ast.Expr]{}, typFail
		}
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprType, Pos: spRes.State.Pos(), Inner: typFail.Err}, spRes.State)
	}

	var def ast.Def
	if tag, ok := es.expr.(*ast.GlobalTag); ok {
		vars := make([]ast.Pattern, 0, len(es.arguments))
		for _, arg := range es.arguments {
			v, perr := exprToPattern(a, arg)
			if perr != nil {
				return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
					&ExprError{Kind: ExprBadOperator, Pos: op.span.Start, Op: ":", Inner: perr}, st)
			}
			vars = append(vars, v)
		}
		span := tag.Span().Across(typRes.Value.Span())
		def = ast.NewAlias(a, tag.Name, tag.Span(), vars, typRes.Value, span)
	} else {
		pat, perr := exprToPattern(a, foldArguments(a, es.expr, es.arguments))
		if perr != nil {
			return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
				&ExprError{Kind: ExprBadOperator, Pos: op.span.Start, Op: ":", Inner: perr}, st)
		}
		span := pat.Span().Across(typRes.Value.Span())
		def = ast.NewAnnotation(a, pat, typRes.Value, span)
	}

	return parseDefsRest(a, typRes.State, defCol, def)
}

// parseBackpassing handles `<-` arriving in an operator chain. Arguments
// are allowed left of the arrow; `f x <- ...` destructures via an applied
// pattern.
func parseBackpassing(a *arena.Arena, st combinator.State, minIndent int, es exprState, op opInfo) (combinator.Result[ast.Expr], *combinator.Failure) {
	if len(es.operators) > 0 {
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprBadOperator, Pos: op.span.Start, Op: "<-"}, st)
	}

	pat, perr := exprToPattern(a, foldArguments(a, es.expr, es.arguments))
	if perr != nil {
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress, perr, st)
	}

	defCol := pat.Span().Start.Column
	value, afterValue, fail := parseDefBody(a, st, defCol)
	if fail != nil {
		return combinator.Result[ast.Expr]{}, fail
	}

	spRes, spFail := spaces(defCol)(a, afterValue)
	if spFail != nil {
		if spFail.Progress == combinator.MadeProgress {
			return combinator.Result[ast.Expr]{}, spFail
		}
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprBackpassContinuation, Pos: afterValue.Pos()}, afterValue)
	}
	if spRes.State.AtEnd() {
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprBackpassContinuation, Pos: spRes.State.Pos()}, spRes.State)
	}

	contRes, contFail := parseExprChain(a, spRes.State, defCol)
	if contFail != nil {
		if contFail.Progress == combinator.MadeProgress {
			return combinator.Result[ast.Expr]{}, contFail
		}
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprBackpassContinuation, Pos: spRes.State.Pos()}, spRes.State)
	}

	cont := withSpaceBefore(contRes.Value, spRes.Value)
	span := pat.Span().Across(cont.Span())
	node := ast.NewBackpassing(a, pat, value, cont, span)
	return combinator.Ok[ast.Expr](combinator.MadeProgress, node, contRes.State)
}

// parseDefBody parses the expression after a definition operator, indented
// past the definition's own column.
func parseDefBody(a *arena.Arena, st combinator.State, defCol int) (ast.Expr, combinator.State, *combinator.Failure) {
	spRes, spFail := spaces(defCol + 1)(a, st)
	if spFail != nil {
		return nil, st, hardenSpaceFail(spFail, st)
	}

	res, fail := parseExprChain(a, spRes.State, defCol+1)
	if fail != nil {
		if fail.Progress == combinator.MadeProgress {
			return nil, st, fail
		}
		return nil, st, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprStart, Pos: spRes.State.Pos()}, spRes.State)
	}

	return withSpaceBefore(res.Value, spRes.Value), res.State, nil
}

// hardenSpaceFail upgrades a whitespace failure after a definition operator
// into a hard failure: the operator already committed us.
func hardenSpaceFail(spFail *combinator.Failure, st combinator.State) *combinator.Failure {
	if spFail.Progress == combinator.MadeProgress {
		return spFail
	}
	return combinator.Fail(combinator.MadeProgress,
		&ExprError{Kind: ExprIndentStart, Pos: st.Pos()}, st)
}

// parseDefsRest parses what follows a completed definition: either more
// definitions, which the chain engine produces recursively, or the final
// expression the block evaluates to.
func parseDefsRest(a *arena.Arena, st combinator.State, defCol int, def ast.Def) (combinator.Result[ast.Expr], *combinator.Failure) {
	spRes, spFail := spaces(defCol)(a, st)
	if spFail != nil {
		if spFail.Progress == combinator.MadeProgress {
			return combinator.Result[ast.Expr]{}, spFail
		}
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprDefMissingFinalExpr, Pos: st.Pos()}, st)
	}
	if spRes.State.AtEnd() {
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprDefMissingFinalExpr, Pos: spRes.State.Pos()}, spRes.State)
	}

	restRes, restFail := parseExprChain(a, spRes.State, defCol)
	if restFail != nil {
		if restFail.Progress == combinator.MadeProgress {
			return combinator.Result[ast.Expr]{}, restFail
		}
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprDefMissingFinalExpr, Pos: spRes.State.Pos()}, spRes.State)
	}

	trivia := spRes.Value
	if rest, ok := restRes.Value.(*ast.Defs); ok {
		list := combineDefs(a, def, rest.Defs, trivia)
		span := def.Span().Across(rest.Span())
		block := ast.NewDefs(a, list, rest.Ret, span)
		return combinator.Ok[ast.Expr](combinator.MadeProgress, block, restRes.State)
	}

	ret := withSpaceBefore(restRes.Value, trivia)
	span := def.Span().Across(ret.Span())
	block := ast.NewDefs(a, []ast.Def{def}, ret, span)
	return combinator.Ok[ast.Expr](combinator.MadeProgress, block, restRes.State)
}

// combineDefs prepends def to the following definitions, merging an
// annotation with an immediately following body of the same name. The
// merge tolerates at most one blank line of separation; a comment between
// the two is captured onto the merged definition. When no merge happens
// the trivia attaches to the following definition instead, so comments
// between definitions survive in the tree.
func combineDefs(a *arena.Arena, def ast.Def, rest []ast.Def, trivia []ast.CommentOrNewline) []ast.Def {
	if len(rest) > 0 && ast.NewlineCount(trivia) <= 2 {
		if merged, ok := mergeAnnotatedBody(a, def, rest[0], trivia); ok {
			out := make([]ast.Def, 0, len(rest))
			out = append(out, merged)
			out = append(out, rest[1:]...)
			return out
		}
	}

	if len(rest) > 0 {
		rest[0].AttachBefore(trivia)
	}

	out := make([]ast.Def, 0, len(rest)+1)
	out = append(out, def)
	out = append(out, rest...)
	return out
}

// mergeAnnotatedBody merges `name : Type` with `name = value`.
func mergeAnnotatedBody(a *arena.Arena, first, second ast.Def, trivia []ast.CommentOrNewline) (ast.Def, bool) {
	ann, ok := first.(*ast.Annotation)
	if !ok {
		return nil, false
	}
	body, ok := second.(*ast.Body)
	if !ok {
		return nil, false
	}
	if !patternsMatch(ann.Pat, body.Pat) {
		return nil, false
	}

	span := ann.Span().Across(body.Span())
	merged := ast.NewAnnotatedBody(a, ann.Pat, ann.Type, body.Pat, body.Value, span)
	for _, t := range trivia {
		if t.Kind == ast.LineComment || t.Kind == ast.DocComment {
			merged.Comment = t.Text
			merged.HasComment = true
			break
		}
	}
	return merged, true
}

// patternsMatch reports whether an annotation's pattern names the same
// binding as a body's pattern. Only simple identifier bindings merge.
func patternsMatch(first, second ast.Pattern) bool {
	a, ok := first.(*ast.PatternIdent)
	if !ok {
		return false
	}
	b, ok := second.(*ast.PatternIdent)
	if !ok {
		return false
	}
	return a.Name == b.Name
}
