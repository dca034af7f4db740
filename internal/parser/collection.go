package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/source"
)

// collectionConfig describes one bracketed, comma-separated construct.
type collectionConfig struct {
	open  byte
	close byte

	// missingClose builds the failure used when the closing delimiter
	// never shows up. wrapItem converts an element failure into the
	// construct's own error vocabulary.
	missingClose func(open, at source.Pos) error
	wrapItem     func(inner error, open source.Pos) error
}

// collectionResult carries the parsed elements and any trivia between the
// last element and the closing delimiter.
type collectionResult[T any] struct {
	items         []T
	finalComments []ast.CommentOrNewline
	span          source.Span
}

// parseCollection parses `open [item (, item)* [,]] close`, with trivia
// allowed everywhere and a trailing comma permitted. Once the opening
// delimiter is consumed every failure is hard.
func parseCollection[T any](a *arena.Arena, s combinator.State, minIndent int, cfg collectionConfig, item func(*arena.Arena, combinator.State, int) (combinator.Result[T], *combinator.Failure)) (combinator.Result[collectionResult[T]], *combinator.Failure) {
	start := s.Pos()
	if b, ok := s.Byte(0); !ok || b != cfg.open {
		return combinator.Err[collectionResult[T]](combinator.NoProgress,
			cfg.wrapItem(&ExprError{Kind: ExprStart, Pos: start}, start), s)
	}
	st := s.Advance(1)

	var result collectionResult[T]

	for {
		spRes, spFail := spaces(minIndent)(a, st)
		if spFail != nil {
			if spFail.Progress == combinator.MadeProgress {
				return combinator.Result[collectionResult[T]]{}, spFail
			}
			return combinator.Result[collectionResult[T]]{}, combinator.Fail(combinator.MadeProgress,
				cfg.missingClose(start, st.Pos()), st)
		}
		st = spRes.State

		if b, ok := st.Byte(0); ok && b == cfg.close {
			result.finalComments = spRes.Value
			st = st.Advance(1)
			result.span = source.NewSpan(start, st.Pos())
			return combinator.Ok(combinator.MadeProgress, result, st)
		}
		if st.AtEnd() {
			return combinator.Result[collectionResult[T]]{}, combinator.Fail(combinator.MadeProgress,
				cfg.missingClose(start, st.Pos()), st)
		}

		itemRes, itemFail := item(a, st, minIndent)
		if itemFail != nil {
			return combinator.Result[collectionResult[T]]{}, combinator.Fail(combinator.MadeProgress,
				cfg.wrapItem(itemFail.Err, start), itemFail.State)
		}
		result.items = append(result.items, itemRes.Value)
		st = itemRes.State

		sepRes, sepFail := spaces(minIndent)(a, st)
		if sepFail != nil {
			if sepFail.Progress == combinator.MadeProgress {
				return combinator.Result[collectionResult[T]]{}, sepFail
			}
			return combinator.Result[collectionResult[T]]{}, combinator.Fail(combinator.MadeProgress,
				cfg.missingClose(start, st.Pos()), st)
		}
		st = sepRes.State

		b, ok := st.Byte(0)
		switch {
		case ok && b == ',':
			st = st.Advance(1)
		case ok && b == cfg.close:
			result.finalComments = sepRes.Value
			st = st.Advance(1)
			result.span = source.NewSpan(start, st.Pos())
			return combinator.Ok(combinator.MadeProgress, result, st)
		default:
			return combinator.Result[collectionResult[T]]{}, combinator.Fail(combinator.MadeProgress,
				cfg.missingClose(start, st.Pos()), st)
		}
	}
}
