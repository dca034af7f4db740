package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/lexer"
	"github.com/veld-lang/veld-lang/internal/source"
)

// parsePattern parses a pattern, including a tag applied to argument
// patterns as in `Just x`.
func parsePattern(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Pattern], *combinator.Failure) {
	res, fail := parsePatternTerm(a, s, minIndent)
	if fail != nil {
		return combinator.Result[ast.Pattern]{}, fail
	}

	switch res.Value.(type) {
	case *ast.PatternGlobalTag, *ast.PatternPrivateTag:
	default:
		return res, nil
	}

	fn := res.Value
	st := res.State
	var args []ast.Pattern

	for {
		spRes, spFail := spaces(minIndent)(a, st)
		if spFail != nil {
			if spFail.Progress == combinator.MadeProgress {
				return combinator.Result[ast.Pattern]{}, spFail
			}
			break
		}

		argRes, argFail := parsePatternTerm(a, spRes.State, minIndent)
		if argFail != nil {
			if argFail.Progress == combinator.MadeProgress {
				return combinator.Result[ast.Pattern]{}, argFail
			}
			break
		}
		args = append(args, argRes.Value)
		st = argRes.State
	}

	if len(args) == 0 {
		return combinator.Ok(combinator.MadeProgress, fn, st)
	}
	span := fn.Span().Across(args[len(args)-1].Span())
	node := ast.NewPatternApply(a, fn, args, span)
	return combinator.Ok[ast.Pattern](combinator.MadeProgress, node, st)
}

// parsePatternTerm parses one atomic pattern.
func parsePatternTerm(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Pattern], *combinator.Failure) {
	b, ok := s.Byte(0)
	if !ok {
		return combinator.Err[ast.Pattern](combinator.NoProgress,
			&PatternError{Kind: PatternStart, Pos: s.Pos()}, s)
	}

	switch {
	case b == '_':
		n := 1
		for {
			b, ok := s.Byte(n)
			if !ok || !(isLowerByte(b) || (b >= 'A' && b <= 'Z') || isDigitByte(b) || b == '_') {
				break
			}
			n++
		}
		name := string(s.Bytes[1:n])
		st := s.Advance(n)
		node := ast.NewPatternUnderscore(a, name, source.NewSpan(s.Pos(), st.Pos()))
		return combinator.Ok[ast.Pattern](combinator.MadeProgress, node, st)

	case b == '"':
		res, fail := lexer.String(a, s)
		if fail != nil {
			if fail.Progress == combinator.MadeProgress {
				return combinator.Result[ast.Pattern]{}, combinator.Fail(combinator.MadeProgress,
					&PatternError{Kind: PatternEnd, Pos: s.Pos(), Inner: fail.Err}, fail.State)
			}
			return combinator.Err[ast.Pattern](combinator.NoProgress,
				&PatternError{Kind: PatternStart, Pos: s.Pos()}, s)
		}
		str := res.Value.(*ast.StrLit)
		node := ast.NewPatternStrLit(a, str.Value, str.Span())
		return combinator.Ok[ast.Pattern](combinator.MadeProgress, node, res.State)

	case isDigitByte(b) || b == '-':
		res, fail := lexer.Number(a, s)
		if fail != nil {
			if fail.Progress == combinator.MadeProgress {
				return combinator.Result[ast.Pattern]{}, combinator.Fail(combinator.MadeProgress,
					&PatternError{Kind: PatternEnd, Pos: s.Pos(), Inner: fail.Err}, fail.State)
			}
			return combinator.Err[ast.Pattern](combinator.NoProgress,
				&PatternError{Kind: PatternStart, Pos: s.Pos()}, s)
		}
		return combinator.Ok(combinator.MadeProgress, numberToPattern(a, res.Value), res.State)

	case b == '{':
		return parsePatternRecord(a, s, minIndent)

	case b == '(':
		st := s.Advance(1)
		spRes, spFail := spaces(minIndent)(a, st)
		if spFail != nil {
			return combinator.Result[ast.Pattern]{}, hardenPatternFail(spFail, st.Pos())
		}
		innerRes, innerFail := parsePattern(a, spRes.State, minIndent)
		if innerFail != nil {
			return combinator.Result[ast.Pattern]{}, combinator.Fail(combinator.MadeProgress,
				&PatternError{Kind: PatternEnd, Pos: spRes.State.Pos(), Inner: innerFail.Err}, innerFail.State)
		}
		closeSp, closeSpFail := spaces(minIndent)(a, innerRes.State)
		if closeSpFail != nil {
			return combinator.Result[ast.Pattern]{}, hardenPatternFail(closeSpFail, innerRes.State.Pos())
		}
		if b, ok := closeSp.State.Byte(0); !ok || b != ')' {
			return combinator.Result[ast.Pattern]{}, combinator.Fail(combinator.MadeProgress,
				&PatternError{Kind: PatternEnd, Pos: closeSp.State.Pos()}, closeSp.State)
		}
		return combinator.Ok(combinator.MadeProgress, innerRes.Value, closeSp.State.Advance(1))

	default:
		return parsePatternIdent(a, s)
	}
}

// parsePatternIdent parses an identifier-shaped pattern via the shared
// classifier.
func parsePatternIdent(a *arena.Arena, s combinator.State) (combinator.Result[ast.Pattern], *combinator.Failure) {
	res, fail := lexer.ParseIdent(a, s)
	if fail != nil {
		return combinator.Err[ast.Pattern](combinator.NoProgress,
			&PatternError{Kind: PatternStart, Pos: s.Pos(), Inner: fail.Err}, s)
	}

	id := res.Value
	var node ast.Pattern
	switch id.Kind {
	case lexer.IdentVar:
		switch {
		case len(id.AccessChain) > 0:
			node = ast.NewPatternMalformed(a, id.Name, id.Span)
		case id.Module != "":
			node = ast.NewPatternQualified(a, id.Module, id.Name, id.Span)
		default:
			node = ast.NewPatternIdent(a, id.Name, id.Span)
		}

	case lexer.IdentTag:
		if id.Module != "" {
			node = ast.NewPatternGlobalTag(a, id.Module+"."+id.Name, id.Span)
		} else {
			node = ast.NewPatternGlobalTag(a, id.Name, id.Span)
		}

	case lexer.IdentPrivateTag:
		node = ast.NewPatternPrivateTag(a, id.Name, id.Span)

	default:
		text := id.Text
		if text == "" {
			text = id.Name
		}
		node = ast.NewPatternMalformed(a, text, id.Span)
	}

	return combinator.Ok(combinator.MadeProgress, node, res.State)
}

// numberToPattern maps a numeric literal expression onto its pattern form.
func numberToPattern(a *arena.Arena, e ast.Expr) ast.Pattern {
	switch n := e.(type) {
	case *ast.NumLit:
		return ast.NewPatternNumLit(a, n.Text, n.Span())
	case *ast.FloatLit:
		return ast.NewPatternFloatLit(a, n.Text, n.Span())
	case *ast.NonBase10Lit:
		return ast.NewPatternNonBase10Lit(a, n.Text, n.Base, n.Negative, n.Span())
	default:
		return ast.NewPatternMalformed(a, "", e.Span())
	}
}

// parsePatternRecord parses a record destructure.
func parsePatternRecord(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Pattern], *combinator.Failure) {
	cfg := collectionConfig{
		open:  '{',
		close: '}',
		missingClose: func(open, at source.Pos) error {
			return &PatternError{Kind: PatternEnd, Pos: at}
		},
		wrapItem: func(inner error, open source.Pos) error {
			return &PatternError{Kind: PatternRecordField, Pos: open, Inner: inner}
		},
	}

	res, fail := parseCollection(a, s, minIndent, cfg, parsePatternField)
	if fail != nil {
		if fail.Progress == combinator.NoProgress {
			return combinator.Err[ast.Pattern](combinator.NoProgress,
				&PatternError{Kind: PatternStart, Pos: s.Pos()}, s)
		}
		return combinator.Result[ast.Pattern]{}, fail
	}

	node := ast.NewPatternRecord(a, res.Value.items, res.Value.span)
	return combinator.Ok[ast.Pattern](combinator.MadeProgress, node, res.State)
}

// parsePatternField parses `label`, `label: pattern`, or `label ? default`
// inside a destructure.
func parsePatternField(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Pattern], *combinator.Failure) {
	start := s.Pos()
	b, ok := s.Byte(0)
	if !ok || !isLowerByte(b) {
		return combinator.Err[ast.Pattern](combinator.NoProgress,
			&PatternError{Kind: PatternStart, Pos: start}, s)
	}

	n := 0
	for {
		b, ok := s.Byte(n)
		if !ok || !(isLowerByte(b) || (b >= 'A' && b <= 'Z') || isDigitByte(b) || b == '_') {
			break
		}
		n++
	}
	label := string(s.Bytes[:n])
	if lexer.IsKeyword(label) {
		return combinator.Err[ast.Pattern](combinator.NoProgress,
			&PatternError{Kind: PatternStart, Pos: start}, s)
	}
	st := s.Advance(n)
	labelSpan := source.NewSpan(start, st.Pos())

	spRes, spFail := spaces(minIndent)(a, st)
	if spFail != nil {
		if spFail.Progress == combinator.MadeProgress {
			return combinator.Result[ast.Pattern]{}, spFail
		}
		return combinator.Ok[ast.Pattern](combinator.MadeProgress,
			ast.NewPatternIdent(a, label, labelSpan), st)
	}

	sep, ok := spRes.State.Byte(0)
	switch {
	case ok && sep == ':':
		innerSp, innerSpFail := spaces(minIndent)(a, spRes.State.Advance(1))
		if innerSpFail != nil {
			return combinator.Result[ast.Pattern]{}, hardenPatternFail(innerSpFail, spRes.State.Pos())
		}
		innerRes, innerFail := parsePattern(a, innerSp.State, minIndent)
		if innerFail != nil {
			return combinator.Result[ast.Pattern]{}, combinator.Fail(combinator.MadeProgress,
				&PatternError{Kind: PatternRecordField, Pos: innerSp.State.Pos(), Inner: innerFail.Err}, innerFail.State)
		}
		span := source.NewSpan(start, innerRes.State.Pos())
		node := ast.NewPatternRequiredField(a, label, innerRes.Value, span)
		return combinator.Ok[ast.Pattern](combinator.MadeProgress, node, innerRes.State)

	case ok && sep == '?':
		defSp, defSpFail := spaces(minIndent)(a, spRes.State.Advance(1))
		if defSpFail != nil {
			return combinator.Result[ast.Pattern]{}, hardenPatternFail(defSpFail, spRes.State.Pos())
		}
		defRes, defFail := parseExprChain(a, defSp.State, minIndent)
		if defFail != nil {
			if defFail.Progress == combinator.MadeProgress {
				return combinator.Result[ast.Pattern]{}, defFail
			}
			return combinator.Result[ast.Pattern]{}, combinator.Fail(combinator.MadeProgress,
				&PatternError{Kind: PatternRecordField, Pos: defSp.State.Pos(), Inner: defFail.Err}, defSp.State)
		}
		span := source.NewSpan(start, defRes.State.Pos())
		node := ast.NewPatternOptionalField(a, label, defRes.Value, span)
		return combinator.Ok[ast.Pattern](combinator.MadeProgress, node, defRes.State)

	default:
		return combinator.Ok[ast.Pattern](combinator.MadeProgress,
			ast.NewPatternIdent(a, label, labelSpan), st)
	}
}

func hardenPatternFail(fail *combinator.Failure, at source.Pos) *combinator.Failure {
	if fail.Progress == combinator.MadeProgress {
		return fail
	}
	return combinator.Fail(combinator.MadeProgress,
		&PatternError{Kind: PatternIndent, Pos: at, Inner: fail.Err}, fail.State)
}
