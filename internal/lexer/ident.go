package lexer

import (
	"strings"

	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/source"
)

// IdentKind classifies what an identifier parse produced.
type IdentKind int

const (
	// IdentVar is a lowercase reference, possibly qualified and possibly
	// followed by a field access chain.
	IdentVar IdentKind = iota
	// IdentTag is an uppercase tag, possibly qualified.
	IdentTag
	// IdentPrivateTag is `@Name`.
	IdentPrivateTag
	// IdentAccessor is a standalone `.field` function.
	IdentAccessor
	// IdentMalformed is identifier-shaped text the classifier recovered
	// past rather than failing on.
	IdentMalformed
)

// Ident is the classified result of an identifier parse. For IdentVar,
// AccessChain holds any `.field` parts after the name. Text preserves the
// raw source for the malformed case.
type Ident struct {
	Kind        IdentKind
	Module      string
	Name        string
	AccessChain []string
	Text        string
	Span        source.Span
}

// Keywords that terminate an expression rather than continue one. The
// identifier classifier refuses them so operator chains stop cleanly at
// `then`, `else`, and friends.
var keywords = map[string]bool{
	"if":   true,
	"then": true,
	"else": true,
	"when": true,
	"is":   true,
}

// IsKeyword reports whether name is reserved and cannot be used as a
// binding or label.
func IsKeyword(name string) bool { return keywords[name] }

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isIdentContinue(b byte) bool {
	return isLower(b) || isUpper(b) || isDigit(b) || b == '_'
}

// chompPart consumes one identifier part starting at the cursor.
func chompPart(s combinator.State) (string, combinator.State) {
	n := 0
	for {
		b, ok := s.Byte(n)
		if !ok || !isIdentContinue(b) {
			break
		}
		n++
	}
	return string(s.Bytes[:n]), s.Advance(n)
}

// ParseIdent parses a variable reference, tag, accessor function, or
// private tag. Keywords fail without progress. Broken spellings like `@foo`
// or `Foo.Bar.` succeed as IdentMalformed so the caller can build a
// malformed node and keep going.
func ParseIdent(_ *arena.Arena, s combinator.State) (combinator.Result[Ident], *combinator.Failure) {
	start := s.Pos()
	b0, ok := s.Byte(0)
	if !ok {
		return combinator.Err[Ident](combinator.NoProgress, &IdentError{Kind: IdentStart, Pos: start}, s)
	}

	switch {
	case b0 == '_':
		return combinator.Err[Ident](combinator.NoProgress, &IdentError{Kind: IdentUnderscore, Pos: start}, s)

	case b0 == '@':
		st := s.Advance(1)
		if b, ok := st.Byte(0); !ok || !isUpper(b) {
			part, st := chompPart(st)
			text := "@" + part
			return combinator.Ok(combinator.MadeProgress, Ident{
				Kind: IdentMalformed,
				Text: text,
				Span: source.NewSpan(start, st.Pos()),
			}, st)
		}
		part, st := chompPart(st)
		return combinator.Ok(combinator.MadeProgress, Ident{
			Kind: IdentPrivateTag,
			Name: "@" + part,
			Span: source.NewSpan(start, st.Pos()),
		}, st)

	case b0 == '.':
		b1, ok := s.Byte(1)
		if !ok || !isLower(b1) {
			return combinator.Err[Ident](combinator.NoProgress, &IdentError{Kind: IdentStart, Pos: start}, s)
		}
		part, st := chompPart(s.Advance(1))
		return combinator.Ok(combinator.MadeProgress, Ident{
			Kind: IdentAccessor,
			Name: part,
			Span: source.NewSpan(start, st.Pos()),
		}, st)

	case isLower(b0):
		part, st := chompPart(s)
		if keywords[part] {
			return combinator.Err[Ident](combinator.NoProgress, &IdentError{Kind: IdentStart, Pos: start}, s)
		}
		chain, st := chompAccessChain(st)
		return combinator.Ok(combinator.MadeProgress, Ident{
			Kind:        IdentVar,
			Name:        part,
			AccessChain: chain,
			Span:        source.NewSpan(start, st.Pos()),
		}, st)

	case isUpper(b0):
		return parseQualified(s, start)

	default:
		return combinator.Err[Ident](combinator.NoProgress, &IdentError{Kind: IdentStart, Pos: start}, s)
	}
}

// parseQualified handles names beginning with an uppercase part. The chain
// `Foo.Bar.baz` qualifies a var, `Foo.Bar` qualifies a tag, and a dangling
// dot is malformed.
func parseQualified(s combinator.State, start source.Pos) (combinator.Result[Ident], *combinator.Failure) {
	var modules []string
	st := s

	for {
		part, next := chompPart(st)
		st = next

		b, ok := st.Byte(0)
		if !ok || b != '.' {
			if len(modules) == 0 {
				return combinator.Ok(combinator.MadeProgress, Ident{
					Kind: IdentTag,
					Name: part,
					Span: source.NewSpan(start, st.Pos()),
				}, st)
			}
			return combinator.Ok(combinator.MadeProgress, Ident{
				Kind:   IdentTag,
				Module: strings.Join(modules, "."),
				Name:   part,
				Span:   source.NewSpan(start, st.Pos()),
			}, st)
		}

		after, ok := st.Byte(1)
		if !ok || (!isLower(after) && !isUpper(after)) {
			// Consume the dangling dot so the caller does not loop on it.
			st = st.Advance(1)
			text := sliceText(s, st)
			return combinator.Ok(combinator.MadeProgress, Ident{
				Kind: IdentMalformed,
				Text: text,
				Span: source.NewSpan(start, st.Pos()),
			}, st)
		}

		if isLower(after) {
			modules = append(modules, part)
			name, next := chompPart(st.Advance(1))
			chain, next := chompAccessChain(next)
			return combinator.Ok(combinator.MadeProgress, Ident{
				Kind:        IdentVar,
				Module:      strings.Join(modules, "."),
				Name:        name,
				AccessChain: chain,
				Span:        source.NewSpan(start, next.Pos()),
			}, next)
		}

		modules = append(modules, part)
		st = st.Advance(1)
	}
}

// chompAccessChain consumes `.field` repetitions after a value reference.
func chompAccessChain(s combinator.State) ([]string, combinator.State) {
	var chain []string
	for {
		b, ok := s.Byte(0)
		if !ok || b != '.' {
			return chain, s
		}
		b1, ok := s.Byte(1)
		if !ok || !isLower(b1) {
			return chain, s
		}
		part, next := chompPart(s.Advance(1))
		chain = append(chain, part)
		s = next
	}
}
