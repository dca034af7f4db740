package lexer

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/source"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }

func isBinaryDigit(b byte) bool { return b == '0' || b == '1' }

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

// Number parses a numeric literal, including a leading `-` when it is glued
// to the first digit. `- 1` is not a literal; the operator layer handles
// that spelling.
func Number(a *arena.Arena, s combinator.State) (combinator.Result[ast.Expr], *combinator.Failure) {
	b0, ok := s.Byte(0)
	if !ok {
		return combinator.Err[ast.Expr](combinator.NoProgress, &NumberError{Kind: NumberEnd, Pos: s.Pos()}, s)
	}
	if b0 == '-' {
		if b1, ok := s.Byte(1); ok && isDigit(b1) {
			return parseNumber(a, s, true)
		}
		return combinator.Err[ast.Expr](combinator.NoProgress, &NumberError{Kind: NumberEnd, Pos: s.Pos()}, s)
	}
	if !isDigit(b0) {
		return combinator.Err[ast.Expr](combinator.NoProgress, &NumberError{Kind: NumberEnd, Pos: s.Pos()}, s)
	}
	return parseNumber(a, s, false)
}

// PositiveNumber parses a numeric literal that must start with a digit.
func PositiveNumber(a *arena.Arena, s combinator.State) (combinator.Result[ast.Expr], *combinator.Failure) {
	if b, ok := s.Byte(0); !ok || !isDigit(b) {
		return combinator.Err[ast.Expr](combinator.NoProgress, &NumberError{Kind: NumberEnd, Pos: s.Pos()}, s)
	}
	return parseNumber(a, s, false)
}

func parseNumber(a *arena.Arena, s combinator.State, negative bool) (combinator.Result[ast.Expr], *combinator.Failure) {
	start := s.Pos()
	st := s
	if negative {
		st = st.Advance(1)
	}

	if b0, _ := st.Byte(0); b0 == '0' {
		if b1, ok := st.Byte(1); ok {
			switch b1 {
			case 'x', 'X':
				return parseRadix(a, st.Advance(2), s, negative, ast.BaseHex, isHexDigit)
			case 'o', 'O':
				return parseRadix(a, st.Advance(2), s, negative, ast.BaseOctal, isOctalDigit)
			case 'b', 'B':
				return parseRadix(a, st.Advance(2), s, negative, ast.BaseBinary, isBinaryDigit)
			}
		}
	}

	st, fail := chompDigits(st, isDigit)
	if fail != nil {
		return combinator.Err[ast.Expr](combinator.MadeProgress, fail.Err, fail.State)
	}

	isFloat := false

	// A dot continues the literal only when a digit follows; `1.x` keeps
	// the dot for field access.
	if b, ok := st.Byte(0); ok && b == '.' {
		if b1, ok := st.Byte(1); ok && isDigit(b1) {
			isFloat = true
			var f *combinator.Failure
			st, f = chompDigits(st.Advance(2), isDigit)
			if f != nil {
				return combinator.Err[ast.Expr](combinator.MadeProgress, f.Err, f.State)
			}
			if b, ok := st.Byte(0); ok && b == '.' {
				return combinator.Err[ast.Expr](combinator.MadeProgress,
					&NumberError{Kind: NumberDoubleDot, Pos: st.Pos()}, st)
			}
		}
	}

	if b, ok := st.Byte(0); ok && (b == 'e' || b == 'E') {
		expState := st.Advance(1)
		if b, ok := expState.Byte(0); ok && (b == '+' || b == '-') {
			expState = expState.Advance(1)
		}
		if b, ok := expState.Byte(0); !ok || !isDigit(b) {
			return combinator.Err[ast.Expr](combinator.MadeProgress,
				&NumberError{Kind: NumberEnd, Pos: expState.Pos()}, expState)
		}
		isFloat = true
		var f *combinator.Failure
		st, f = chompDigits(expState, isDigit)
		if f != nil {
			return combinator.Err[ast.Expr](combinator.MadeProgress, f.Err, f.State)
		}
	}

	if b, ok := st.Byte(0); ok && isIdentStart(b) {
		return combinator.Err[ast.Expr](combinator.MadeProgress,
			&NumberError{Kind: NumberEnd, Pos: st.Pos()}, st)
	}

	raw := sliceText(s, st)
	span := source.NewSpan(start, st.Pos())
	if isFloat {
		return combinator.Ok[ast.Expr](combinator.MadeProgress, ast.NewFloatLit(a, raw, span), st)
	}
	return combinator.Ok[ast.Expr](combinator.MadeProgress, ast.NewNumLit(a, raw, span), st)
}

func parseRadix(a *arena.Arena, st combinator.State, orig combinator.State, negative bool, base ast.NumBase, valid func(byte) bool) (combinator.Result[ast.Expr], *combinator.Failure) {
	if b, ok := st.Byte(0); !ok || !valid(b) {
		return combinator.Err[ast.Expr](combinator.MadeProgress,
			&NumberError{Kind: NumberNoDigits, Pos: st.Pos()}, st)
	}

	digitsStart := st
	st, fail := chompDigits(st, valid)
	if fail != nil {
		return combinator.Err[ast.Expr](combinator.MadeProgress, fail.Err, fail.State)
	}
	if b, ok := st.Byte(0); ok && isIdentStart(b) {
		return combinator.Err[ast.Expr](combinator.MadeProgress,
			&NumberError{Kind: NumberEnd, Pos: st.Pos()}, st)
	}

	// Text excludes the sign and the radix prefix.
	text := sliceText(digitsStart, st)
	span := source.NewSpan(orig.Pos(), st.Pos())
	return combinator.Ok[ast.Expr](combinator.MadeProgress,
		ast.NewNonBase10Lit(a, text, base, negative, span), st)
}

// chompDigits consumes a run of digits with underscores allowed between
// them. A trailing underscore is malformed.
func chompDigits(st combinator.State, valid func(byte) bool) (combinator.State, *combinator.Failure) {
	for {
		b, ok := st.Byte(0)
		if !ok {
			return st, nil
		}
		switch {
		case valid(b):
			st = st.Advance(1)
		case b == '_':
			next, ok := st.Byte(1)
			if !ok || !valid(next) {
				return st, combinator.Fail(combinator.MadeProgress,
					&NumberError{Kind: NumberEnd, Pos: st.Pos()}, st)
			}
			st = st.Advance(2)
		default:
			return st, nil
		}
	}
}

// sliceText returns the source text between two states over the same
// buffer. The later state's Bytes is a suffix of the earlier one's.
func sliceText(from, to combinator.State) string {
	return string(from.Bytes[:len(from.Bytes)-len(to.Bytes)])
}
