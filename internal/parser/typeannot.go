package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/lexer"
	"github.com/veld-lang/veld-lang/internal/source"
)

// parseTypeAnnot parses a type annotation. With allowFunction set, a
// comma-separated argument list followed by `->` parses as a function type;
// inside records and tag unions the comma belongs to the enclosing
// collection, so nested annotations parse with it unset and need parens
// around multi-argument functions.
func parseTypeAnnot(a *arena.Arena, s combinator.State, minIndent int, allowFunction bool) (combinator.Result[ast.TypeAnnot], *combinator.Failure) {
	res, fail := parseTypeApply(a, s, minIndent)
	if fail != nil {
		return combinator.Result[ast.TypeAnnot]{}, fail
	}

	parts := []ast.TypeAnnot{res.Value}
	st := res.State

	for {
		spRes, spFail := spaces(minIndent)(a, st)
		if spFail != nil {
			if spFail.Progress == combinator.MadeProgress {
				return combinator.Result[ast.TypeAnnot]{}, spFail
			}
			break
		}
		after := spRes.State

		b, ok := after.Byte(0)
		if ok && b == ',' && allowFunction {
			argSp, argSpFail := spaces(minIndent)(a, after.Advance(1))
			if argSpFail != nil {
				return combinator.Result[ast.TypeAnnot]{}, hardenTypeFail(argSpFail, after.Pos())
			}
			argRes, argFail := parseTypeApply(a, argSp.State, minIndent)
			if argFail != nil {
				return combinator.Result[ast.TypeAnnot]{}, combinator.Fail(combinator.MadeProgress,
					&TypeError{Kind: TypeEnd, Pos: argSp.State.Pos(), Inner: argFail.Err}, argFail.State)
			}
			parts = append(parts, argRes.Value)
			st = argRes.State
			continue
		}

		if ok && b == '-' {
			if b1, ok := after.Byte(1); ok && b1 == '>' {
				retSp, retSpFail := spaces(minIndent)(a, after.Advance(2))
				if retSpFail != nil {
					return combinator.Result[ast.TypeAnnot]{}, hardenTypeFail(retSpFail, after.Pos())
				}
				retRes, retFail := parseTypeAnnot(a, retSp.State, minIndent, allowFunction)
				if retFail != nil {
					if retFail.Progress == combinator.MadeProgress {
						return combinator.Result[ast.TypeAnnot]{}, retFail
					}
					return combinator.Result[ast.TypeAnnot]{}, combinator.Fail(combinator.MadeProgress,
						&TypeError{Kind: TypeEnd, Pos: retSp.State.Pos(), Inner: retFail.Err}, retSp.State)
				}
				span := parts[0].Span().Across(retRes.Value.Span())
				node := ast.NewTypeFunction(a, parts, retRes.Value, span)
				return combinator.Ok[ast.TypeAnnot](combinator.MadeProgress, node, retRes.State)
			}
		}
		break
	}

	if len(parts) > 1 {
		// Arguments were listed but no arrow followed.
		return combinator.Result[ast.TypeAnnot]{}, combinator.Fail(combinator.MadeProgress,
			&TypeError{Kind: TypeEnd, Pos: st.Pos()}, st)
	}
	return combinator.Ok(combinator.MadeProgress, parts[0], st)
}

// parseTypeApply parses a named type with optional space-separated type
// arguments, or any other single type term.
func parseTypeApply(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.TypeAnnot], *combinator.Failure) {
	res, fail := parseTypeTerm(a, s, minIndent)
	if fail != nil {
		return combinator.Result[ast.TypeAnnot]{}, fail
	}

	apply, ok := res.Value.(*ast.TypeApply)
	if !ok {
		return res, nil
	}

	st := res.State
	var args []ast.TypeAnnot
	for {
		spRes, spFail := spaces(minIndent)(a, st)
		if spFail != nil {
			if spFail.Progress == combinator.MadeProgress {
				return combinator.Result[ast.TypeAnnot]{}, spFail
			}
			break
		}

		argRes, argFail := parseTypeTerm(a, spRes.State, minIndent)
		if argFail != nil {
			if argFail.Progress == combinator.MadeProgress {
				return combinator.Result[ast.TypeAnnot]{}, argFail
			}
			break
		}
		args = append(args, argRes.Value)
		st = argRes.State
	}

	if len(args) == 0 {
		return res, nil
	}
	span := apply.Span().Across(args[len(args)-1].Span())
	node := ast.NewTypeApply(a, apply.Module, apply.Name, args, span)
	return combinator.Ok[ast.TypeAnnot](combinator.MadeProgress, node, st)
}

// parseTypeTerm parses one atomic type term.
func parseTypeTerm(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.TypeAnnot], *combinator.Failure) {
	b, ok := s.Byte(0)
	if !ok {
		return combinator.Err[ast.TypeAnnot](combinator.NoProgress,
			&TypeError{Kind: TypeStart, Pos: s.Pos()}, s)
	}

	switch {
	case b == '*':
		st := s.Advance(1)
		node := ast.NewTypeWildcard(a, source.NewSpan(s.Pos(), st.Pos()))
		return combinator.Ok[ast.TypeAnnot](combinator.MadeProgress, node, st)

	case b == '{':
		return parseTypeRecord(a, s, minIndent)

	case b == '[':
		return parseTypeTagUnion(a, s, minIndent)

	case b == '(':
		st := s.Advance(1)
		spRes, spFail := spaces(minIndent)(a, st)
		if spFail != nil {
			return combinator.Result[ast.TypeAnnot]{}, hardenTypeFail(spFail, st.Pos())
		}
		innerRes, innerFail := parseTypeAnnot(a, spRes.State, minIndent, true)
		if innerFail != nil {
			return combinator.Result[ast.TypeAnnot]{}, combinator.Fail(combinator.MadeProgress,
				&TypeError{Kind: TypeParenEnd, Pos: spRes.State.Pos(), Inner: innerFail.Err}, innerFail.State)
		}
		closeSp, closeSpFail := spaces(minIndent)(a, innerRes.State)
		if closeSpFail != nil {
			return combinator.Result[ast.TypeAnnot]{}, hardenTypeFail(closeSpFail, innerRes.State.Pos())
		}
		if b, ok := closeSp.State.Byte(0); !ok || b != ')' {
			return combinator.Result[ast.TypeAnnot]{}, combinator.Fail(combinator.MadeProgress,
				&TypeError{Kind: TypeParenEnd, Pos: closeSp.State.Pos()}, closeSp.State)
		}
		st = closeSp.State.Advance(1)
		node := ast.NewTypeParens(a, innerRes.Value, source.NewSpan(s.Pos(), st.Pos()))
		return combinator.Ok[ast.TypeAnnot](combinator.MadeProgress, node, st)

	default:
		return parseTypeName(a, s)
	}
}

// parseTypeName parses an uppercase type name or lowercase type variable.
func parseTypeName(a *arena.Arena, s combinator.State) (combinator.Result[ast.TypeAnnot], *combinator.Failure) {
	res, fail := lexer.ParseIdent(a, s)
	if fail != nil {
		return combinator.Err[ast.TypeAnnot](combinator.NoProgress,
			&TypeError{Kind: TypeStart, Pos: s.Pos(), Inner: fail.Err}, s)
	}

	id := res.Value
	var node ast.TypeAnnot
	switch id.Kind {
	case lexer.IdentTag:
		node = ast.NewTypeApply(a, id.Module, id.Name, nil, id.Span)
	case lexer.IdentVar:
		if id.Module != "" || len(id.AccessChain) > 0 {
			node = ast.NewTypeMalformed(a, id.Name, id.Span)
		} else {
			node = ast.NewTypeVar(a, id.Name, id.Span)
		}
	default:
		text := id.Text
		if text == "" {
			text = id.Name
		}
		node = ast.NewTypeMalformed(a, text, id.Span)
	}

	return combinator.Ok(combinator.MadeProgress, node, res.State)
}

// parseTypeRecord parses `{ label : Type, label ? Type }`.
func parseTypeRecord(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.TypeAnnot], *combinator.Failure) {
	cfg := collectionConfig{
		open:  '{',
		close: '}',
		missingClose: func(open, at source.Pos) error {
			return &TypeError{Kind: TypeEnd, Pos: at}
		},
		wrapItem: func(inner error, open source.Pos) error {
			return &TypeError{Kind: TypeRecordField, Pos: open, Inner: inner}
		},
	}

	res, fail := parseCollection(a, s, minIndent, cfg, parseTypeRecordField)
	if fail != nil {
		if fail.Progress == combinator.NoProgress {
			return combinator.Err[ast.TypeAnnot](combinator.NoProgress,
				&TypeError{Kind: TypeStart, Pos: s.Pos()}, s)
		}
		return combinator.Result[ast.TypeAnnot]{}, fail
	}

	node := ast.NewTypeRecord(a, res.Value.items, nil, res.Value.span)
	return combinator.Ok[ast.TypeAnnot](combinator.MadeProgress, node, res.State)
}

// parseTypeRecordField parses one `label : Type` or `label ? Type` field.
func parseTypeRecordField(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[*ast.TypeRecordField], *combinator.Failure) {
	start := s.Pos()
	b, ok := s.Byte(0)
	if !ok || !isLowerByte(b) {
		return combinator.Err[*ast.TypeRecordField](combinator.NoProgress,
			&TypeError{Kind: TypeStart, Pos: start}, s)
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
	st := s.Advance(n)

	spRes, spFail := spaces(minIndent)(a, st)
	if spFail != nil {
		return combinator.Result[*ast.TypeRecordField]{}, hardenTypeFail(spFail, st.Pos())
	}

	sep, ok := spRes.State.Byte(0)
	if !ok || (sep != ':' && sep != '?') {
		return combinator.Result[*ast.TypeRecordField]{}, combinator.Fail(combinator.MadeProgress,
			&TypeError{Kind: TypeRecordField, Pos: spRes.State.Pos()}, spRes.State)
	}

	valSp, valSpFail := spaces(minIndent)(a, spRes.State.Advance(1))
	if valSpFail != nil {
		return combinator.Result[*ast.TypeRecordField]{}, hardenTypeFail(valSpFail, spRes.State.Pos())
	}

	typRes, typFail := parseTypeAnnot(a, valSp.State, minIndent, false)
	if typFail != nil {
		if typFail.Progress == combinator.MadeProgress {
			return combinator.Result[*ast.TypeRecordField]{}, typFail
		}
		return combinator.Result[*ast.TypeRecordField]{}, combinator.Fail(combinator.MadeProgress,
			&TypeError{Kind: TypeRecordField, Pos: valSp.State.Pos(), Inner: typFail.Err}, valSp.State)
	}

	span := source.NewSpan(start, typRes.State.Pos())
	field := ast.NewTypeRecordField(a, label, sep == '?', typRes.Value, span)
	return combinator.Ok(combinator.MadeProgress, field, typRes.State)
}

// parseTypeTagUnion parses `[ Tag Payload, Tag2 ]`.
func parseTypeTagUnion(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.TypeAnnot], *combinator.Failure) {
	cfg := collectionConfig{
		open:  '[',
		close: ']',
		missingClose: func(open, at source.Pos) error {
			return &TypeError{Kind: TypeTagUnionEnd, Pos: at}
		},
		wrapItem: func(inner error, open source.Pos) error {
			return &TypeError{Kind: TypeEnd, Pos: open, Inner: inner}
		},
	}

	res, fail := parseCollection(a, s, minIndent, cfg, parseTypeApplyItem)
	if fail != nil {
		if fail.Progress == combinator.NoProgress {
			return combinator.Err[ast.TypeAnnot](combinator.NoProgress,
				&TypeError{Kind: TypeStart, Pos: s.Pos()}, s)
		}
		return combinator.Result[ast.TypeAnnot]{}, fail
	}

	node := ast.NewTypeTagUnion(a, res.Value.items, nil, res.Value.span)
	return combinator.Ok[ast.TypeAnnot](combinator.MadeProgress, node, res.State)
}

func parseTypeApplyItem(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.TypeAnnot], *combinator.Failure) {
	return parseTypeApply(a, s, minIndent)
}

func hardenTypeFail(fail *combinator.Failure, at source.Pos) *combinator.Failure {
	if fail.Progress == combinator.MadeProgress {
		return fail
	}
	return combinator.Fail(combinator.MadeProgress,
		&TypeError{Kind: TypeEnd, Pos: at, Inner: fail.Err}, fail.State)
}
