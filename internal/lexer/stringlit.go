package lexer

import (
	"strconv"
	"strings"

	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/source"
)

// String parses a double-quoted string literal with escapes resolved.
// Strings cannot span lines; a newline before the closing quote is an
// unterminated literal.
func String(a *arena.Arena, s combinator.State) (combinator.Result[ast.Expr], *combinator.Failure) {
	start := s.Pos()
	if b, ok := s.Byte(0); !ok || b != '"' {
		return combinator.Err[ast.Expr](combinator.NoProgress, &StringError{Kind: StringOpen, Pos: start}, s)
	}

	st := s.Advance(1)
	var value strings.Builder

	for {
		b, ok := st.Byte(0)
		if !ok || b == '\n' {
			return combinator.Err[ast.Expr](combinator.MadeProgress,
				&StringError{Kind: StringEndless, Pos: st.Pos()}, st)
		}

		switch b {
		case '"':
			st = st.Advance(1)
			span := source.NewSpan(start, st.Pos())
			return combinator.Ok[ast.Expr](combinator.MadeProgress,
				ast.NewStrLit(a, value.String(), span), st)

		case '\\':
			esc, ok := st.Byte(1)
			if !ok {
				return combinator.Err[ast.Expr](combinator.MadeProgress,
					&StringError{Kind: StringEndless, Pos: st.Pos()}, st)
			}
			switch esc {
			case 'n':
				value.WriteByte('\n')
				st = st.Advance(2)
			case 't':
				value.WriteByte('\t')
				st = st.Advance(2)
			case 'r':
				value.WriteByte('\r')
				st = st.Advance(2)
			case '\\':
				value.WriteByte('\\')
				st = st.Advance(2)
			case '"':
				value.WriteByte('"')
				st = st.Advance(2)
			case 'u':
				next, fail := unicodeEscape(&value, st)
				if fail != nil {
					return combinator.Err[ast.Expr](combinator.MadeProgress, fail.Err, fail.State)
				}
				st = next
			default:
				return combinator.Err[ast.Expr](combinator.MadeProgress,
					&StringError{Kind: StringBadEscape, Pos: st.Pos()}, st)
			}

		default:
			value.WriteByte(b)
			st = st.Advance(1)
		}
	}
}

// unicodeEscape consumes `\u(HEX)` with the cursor on the backslash.
func unicodeEscape(value *strings.Builder, st combinator.State) (combinator.State, *combinator.Failure) {
	badAt := st.Pos()
	if b, ok := st.Byte(2); !ok || b != '(' {
		return st, combinator.Fail(combinator.MadeProgress,
			&StringError{Kind: StringBadUnicode, Pos: badAt}, st)
	}

	n := 3
	for {
		b, ok := st.Byte(n)
		if !ok || b == '\n' {
			return st, combinator.Fail(combinator.MadeProgress,
				&StringError{Kind: StringBadUnicode, Pos: badAt}, st)
		}
		if b == ')' {
			break
		}
		if !isHexDigit(b) {
			return st, combinator.Fail(combinator.MadeProgress,
				&StringError{Kind: StringBadUnicode, Pos: badAt}, st)
		}
		n++
	}
	if n == 3 {
		return st, combinator.Fail(combinator.MadeProgress,
			&StringError{Kind: StringBadUnicode, Pos: badAt}, st)
	}

	code, err := strconv.ParseUint(string(st.Bytes[3:n]), 16, 32)
	if err != nil || code > 0x10FFFF {
		return st, combinator.Fail(combinator.MadeProgress,
			&StringError{Kind: StringBadUnicode, Pos: badAt}, st)
	}

	value.WriteRune(rune(code))
	return st.Advance(n + 1), nil
}
