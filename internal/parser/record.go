package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/lexer"
	"github.com/veld-lang/veld-lang/internal/source"
)

// parseRecord parses a record literal, including the update form
// `{ base & field: value }` and the shorthand and optional field forms.
func parseRecord(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Expr], *combinator.Failure) {
	if b, ok := s.Byte(0); !ok || b != '{' {
		return combinator.Err[ast.Expr](combinator.NoProgress,
			&RecordError{Kind: RecordOpen, Pos: s.Pos()}, s)
	}

	update, afterUpdate, fail := parseRecordUpdateBase(a, s, minIndent)
	if fail != nil {
		return combinator.Result[ast.Expr]{}, fail
	}

	cfg := collectionConfig{
		open:  '{',
		close: '}',
		missingClose: func(open, at source.Pos) error {
			return &RecordError{Kind: RecordEnd, Pos: at}
		},
		wrapItem: func(inner error, open source.Pos) error {
			return &RecordError{Kind: RecordField, Pos: open, Inner: inner}
		},
	}

	// With an update base the cursor sits on the '&', which stands in for
	// the opening brace as far as the field collection is concerned.
	if update != nil {
		cfg.open = '&'
	}
	res, colFail := parseCollection(a, afterUpdate, minIndent, cfg, parseRecordField)
	if colFail != nil {
		return combinator.Result[ast.Expr]{}, colFail
	}

	span := source.NewSpan(s.Pos(), res.State.Pos())
	node := ast.NewRecordLit(a, update, res.Value.items, span)
	node.FinalComments = res.Value.finalComments

	expr, st := parseAccessSuffix(a, res.State, ast.Expr(node))
	return combinator.Ok(combinator.MadeProgress, expr, st)
}

// parseRecordUpdateBase probes for `{ expr &`. When present it returns the
// base expression and a state rewritten so the cursor sits just past a
// virtual opening brace, letting the field collection parse normally. When
// absent it returns the original state untouched.
func parseRecordUpdateBase(a *arena.Arena, s combinator.State, minIndent int) (ast.Expr, combinator.State, *combinator.Failure) {
	st := s.Advance(1)

	spRes, spFail := spaces(minIndent)(a, st)
	if spFail != nil {
		return nil, s, nil
	}
	probe := spRes.State

	b, ok := probe.Byte(0)
	if !ok || !isLowerByte(b) {
		return nil, s, nil
	}

	identRes, identFail := parseIdentTerm(a, probe)
	if identFail != nil {
		return nil, s, nil
	}

	ampRes, ampFail := spaces(minIndent)(a, identRes.State)
	if ampFail != nil {
		return nil, s, nil
	}

	after := ampRes.State
	if b, ok := after.Byte(0); !ok || b != '&' {
		return nil, s, nil
	}
	if b1, ok := after.Byte(1); ok && b1 == '&' {
		return nil, s, nil
	}

	// Re-point the collection parser at the '&' as if it were the brace.
	return withSpaceBefore(identRes.Value, spRes.Value), after, nil
}

// parseRecordField parses `label`, `label: value`, or `label ? default`.
func parseRecordField(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[*ast.RecordField], *combinator.Failure) {
	start := s.Pos()
	b, ok := s.Byte(0)
	if !ok || !isLowerByte(b) {
		return combinator.Err[*ast.RecordField](combinator.NoProgress,
			&ExprError{Kind: ExprStart, Pos: start}, s)
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
		return combinator.Err[*ast.RecordField](combinator.NoProgress,
			&ExprError{Kind: ExprStart, Pos: start}, s)
	}
	st := s.Advance(n)

	spRes, spFail := spaces(minIndent)(a, st)
	if spFail != nil {
		if spFail.Progress == combinator.MadeProgress {
			return combinator.Result[*ast.RecordField]{}, spFail
		}
		field := ast.NewRecordField(a, ast.FieldLabelOnly, label, nil, source.NewSpan(start, st.Pos()))
		return combinator.Ok(combinator.MadeProgress, field, st)
	}

	sep, ok := spRes.State.Byte(0)
	if !ok || (sep != ':' && sep != '?') {
		field := ast.NewRecordField(a, ast.FieldLabelOnly, label, nil, source.NewSpan(start, st.Pos()))
		return combinator.Ok(combinator.MadeProgress, field, st)
	}

	kind := ast.FieldRequired
	if sep == '?' {
		kind = ast.FieldOptional
	}

	valueStart := spRes.State.Advance(1)
	vspRes, vspFail := spaces(minIndent)(a, valueStart)
	if vspFail != nil {
		return combinator.Result[*ast.RecordField]{}, hardenSpaceFail(vspFail, valueStart)
	}

	valRes, valFail := parseExprChain(a, vspRes.State, minIndent)
	if valFail != nil {
		if valFail.Progress == combinator.MadeProgress {
			return combinator.Result[*ast.RecordField]{}, valFail
		}
		return combinator.Result[*ast.RecordField]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprStart, Pos: vspRes.State.Pos()}, vspRes.State)
	}

	value := withSpaceBefore(valRes.Value, vspRes.Value)
	field := ast.NewRecordField(a, kind, label, value, source.NewSpan(start, valRes.State.Pos()))
	return combinator.Ok(combinator.MadeProgress, field, valRes.State)
}
