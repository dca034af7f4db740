package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/lexer"
	"github.com/veld-lang/veld-lang/internal/source"
)

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func isLowerByte(b byte) bool { return b >= 'a' && b <= 'z' }

// parseTermFirst parses a term at the start of a chain or right after a
// binary operator, where prefix negation is allowed. In argument position
// parseTerm is used instead, so `x -1` negates while `x - 1` subtracts.
func parseTermFirst(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Expr], *combinator.Failure) {
	b, ok := s.Byte(0)
	if !ok {
		return combinator.Err[ast.Expr](combinator.NoProgress,
			&ExprError{Kind: ExprStart, Pos: s.Pos()}, s)
	}

	switch b {
	case '-':
		b1, ok1 := s.Byte(1)
		if ok1 && isDigitByte(b1) {
			return parseNumberTerm(a, s, lexer.Number)
		}
		if ok1 && b1 != ' ' && b1 != '\n' && b1 != '\r' && b1 != '\t' && b1 != '#' && b1 != '-' && b1 != '>' {
			start := s.Pos()
			res, fail := parseTerm(a, s.Advance(1), minIndent)
			if fail != nil {
				return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress, fail.Err, fail.State)
			}
			span := source.NewSpan(start, res.Value.Span().End)
			node := numericNegateDirect(a, span, res.Value)
			return combinator.Ok(combinator.MadeProgress, node, res.State)
		}
		return combinator.Err[ast.Expr](combinator.NoProgress,
			&ExprError{Kind: ExprStart, Pos: s.Pos()}, s)

	case '!':
		start := s.Pos()
		res, fail := parseTerm(a, s.Advance(1), minIndent)
		if fail != nil {
			return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress, fail.Err, fail.State)
		}
		span := source.NewSpan(start, res.Value.Span().End)
		node := ast.NewUnaryOp(a, ast.UnaryNot, res.Value, span)
		return combinator.Ok[ast.Expr](combinator.MadeProgress, node, res.State)

	default:
		return parseTerm(a, s, minIndent)
	}
}

// numericNegateDirect folds an explicitly written leading minus into a
// numeric literal, or wraps anything else in a negation node.
func numericNegateDirect(a *arena.Arena, span source.Span, e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.NumLit:
		return ast.NewNumLit(a, "-"+n.Text, span)
	case *ast.FloatLit:
		return ast.NewFloatLit(a, "-"+n.Text, span)
	case *ast.NonBase10Lit:
		return ast.NewNonBase10Lit(a, n.Text, n.Base, !n.Negative, span)
	default:
		return ast.NewUnaryOp(a, ast.UnaryNegate, e, span)
	}
}

// parseTerm parses one atomic term: a literal, reference, collection,
// lambda, conditional, or parenthesized expression.
func parseTerm(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Expr], *combinator.Failure) {
	b, ok := s.Byte(0)
	if !ok {
		return combinator.Err[ast.Expr](combinator.NoProgress,
			&ExprError{Kind: ExprStart, Pos: s.Pos()}, s)
	}

	switch {
	case b == '"':
		res, fail := lexer.String(a, s)
		if fail != nil {
			if fail.Progress == combinator.MadeProgress {
				return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
					&ExprError{Kind: ExprStr, Pos: s.Pos(), Inner: fail.Err}, fail.State)
			}
			return combinator.Result[ast.Expr]{}, fail
		}
		return res, nil

	case isDigitByte(b):
		return parseNumberTerm(a, s, lexer.PositiveNumber)

	case b == '(':
		return parseParens(a, s, minIndent)

	case b == '[':
		return parseList(a, s, minIndent)

	case b == '{':
		return parseRecord(a, s, minIndent)

	case b == '\\':
		return parseLambda(a, s, minIndent)

	default:
		if s.StartsWith("if") && keywordBoundary(s, 2) {
			return parseIf(a, s, minIndent)
		}
		if s.StartsWith("when") && keywordBoundary(s, 4) {
			return parseWhen(a, s, minIndent)
		}
		return parseIdentTerm(a, s)
	}
}

// keywordBoundary reports whether the byte at offset n cannot continue an
// identifier, so the preceding bytes really are a keyword.
func keywordBoundary(s combinator.State, n int) bool {
	b, ok := s.Byte(n)
	if !ok {
		return true
	}
	return !isLowerByte(b) && !(b >= 'A' && b <= 'Z') && !isDigitByte(b) && b != '_'
}

func parseNumberTerm(a *arena.Arena, s combinator.State, classify combinator.Parser[ast.Expr]) (combinator.Result[ast.Expr], *combinator.Failure) {
	res, fail := classify(a, s)
	if fail != nil {
		if fail.Progress == combinator.MadeProgress {
			return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
				&ExprError{Kind: ExprNumber, Pos: s.Pos(), Inner: fail.Err}, fail.State)
		}
		return combinator.Result[ast.Expr]{}, fail
	}
	return res, nil
}

// parseIdentTerm parses a reference term: a variable with an optional
// access chain, a tag, an accessor function, or recovered malformed text.
func parseIdentTerm(a *arena.Arena, s combinator.State) (combinator.Result[ast.Expr], *combinator.Failure) {
	res, fail := lexer.ParseIdent(a, s)
	if fail != nil {
		return combinator.Err[ast.Expr](fail.Progress,
			&ExprError{Kind: ExprStart, Pos: s.Pos(), Inner: fail.Err}, s)
	}

	id := res.Value
	var node ast.Expr
	switch id.Kind {
	case lexer.IdentVar:
		base := id.Name
		if id.Module != "" {
			base = id.Module + "." + id.Name
		}
		varEnd := source.Pos{Line: id.Span.Start.Line, Column: id.Span.Start.Column + len(base)}
		node = ast.NewVar(a, id.Module, id.Name, source.NewSpan(id.Span.Start, varEnd))
		pos := varEnd
		for _, field := range id.AccessChain {
			pos = source.Pos{Line: pos.Line, Column: pos.Column + 1 + len(field)}
			node = ast.NewAccess(a, node, field, source.NewSpan(id.Span.Start, pos))
		}

	case lexer.IdentTag:
		if id.Module != "" {
			node = ast.NewGlobalTag(a, id.Module+"."+id.Name, id.Span)
		} else {
			node = ast.NewGlobalTag(a, id.Name, id.Span)
		}

	case lexer.IdentPrivateTag:
		node = ast.NewPrivateTag(a, id.Name, id.Span)

	case lexer.IdentAccessor:
		node = ast.NewAccessorFn(a, id.Name, id.Span)

	default:
		node = ast.NewMalformedIdent(a, id.Text, id.Span)
	}

	return combinator.Ok(combinator.MadeProgress, node, res.State)
}

// parseAccessSuffix consumes `.field` repetitions after a closing
// delimiter, as in `{ x: 4 }.x` or `(rec).field`.
func parseAccessSuffix(a *arena.Arena, st combinator.State, expr ast.Expr) (ast.Expr, combinator.State) {
	for {
		b, ok := st.Byte(0)
		if !ok || b != '.' {
			return expr, st
		}
		b1, ok := st.Byte(1)
		if !ok || !isLowerByte(b1) {
			return expr, st
		}

		n := 1
		for {
			b, ok := st.Byte(n)
			if !ok || !(isLowerByte(b) || (b >= 'A' && b <= 'Z') || isDigitByte(b) || b == '_') {
				break
			}
			n++
		}
		field := string(st.Bytes[1:n])
		st = st.Advance(n)
		expr = ast.NewAccess(a, expr, field, source.NewSpan(expr.Span().Start, st.Pos()))
	}
}

// parseParens parses `( expr )`, keeping the parenthesization explicit in
// the tree.
func parseParens(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Expr], *combinator.Failure) {
	start := s.Pos()
	st := s.Advance(1)

	spRes, spFail := spaces(minIndent)(a, st)
	if spFail != nil {
		return combinator.Result[ast.Expr]{}, wrapInParens(spFail, start)
	}

	innerRes, innerFail := parseExprChain(a, spRes.State, minIndent)
	if innerFail != nil {
		return combinator.Result[ast.Expr]{}, wrapInParens(innerFail, start)
	}
	inner := withSpaceBefore(innerRes.Value, spRes.Value)

	closeRes, closeFail := spaces(minIndent)(a, innerRes.State)
	if closeFail != nil {
		return combinator.Result[ast.Expr]{}, wrapInParens(closeFail, start)
	}

	st = closeRes.State
	if b, ok := st.Byte(0); !ok || b != ')' {
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprInParens, Pos: start, Inner: &ExprError{Kind: ExprEnd, Pos: st.Pos()}}, st)
	}
	st = st.Advance(1)

	node := ast.Expr(ast.NewParensAround(a, inner, source.NewSpan(start, st.Pos())))
	node, st = parseAccessSuffix(a, st, node)
	return combinator.Ok(combinator.MadeProgress, node, st)
}

// wrapInParens converts any failure inside parentheses into a hard failure;
// the opening parenthesis committed us.
func wrapInParens(fail *combinator.Failure, start source.Pos) *combinator.Failure {
	return combinator.Fail(combinator.MadeProgress,
		&ExprError{Kind: ExprInParens, Pos: start, Inner: fail.Err}, fail.State)
}
