package combinator

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/source"
)

// Unit is the value type of parsers run only for their effect on the state.
type Unit = struct{}

// OneOf tries each parser in turn. A failure that made progress propagates
// immediately; a failure with no progress moves on to the next alternative.
// If every alternative fails without progress, the last failure is returned.
func OneOf[T any](parsers ...Parser[T]) Parser[T] {
	return func(a *arena.Arena, s State) (Result[T], *Failure) {
		var last *Failure

		for _, p := range parsers {
			res, fail := p(a, s)
			if fail == nil {
				return res, nil
			}
			if fail.Progress == MadeProgress {
				return Result[T]{}, fail
			}
			last = fail
		}

		return Result[T]{}, last
	}
}

// Backtrackable adapts p so that any failure is reported with NoProgress and
// the original pre-attempt state, making it eligible for alternation even
// when p consumed input before failing.
func Backtrackable[T any](p Parser[T]) Parser[T] {
	return func(a *arena.Arena, s State) (Result[T], *Failure) {
		res, fail := p(a, s)
		if fail != nil {
			return Result[T]{}, Fail(NoProgress, fail.Err, s)
		}
		return res, nil
	}
}

// Maybe is the result of an Optional parse.
type Maybe[T any] struct {
	Value T
	OK    bool
}

// Optional converts a no-progress failure of p into a missing value. A
// failure that made progress still propagates.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(a *arena.Arena, s State) (Result[Maybe[T]], *Failure) {
		res, fail := p(a, s)
		if fail == nil {
			return Ok(res.Progress, Maybe[T]{Value: res.Value, OK: true}, res.State)
		}
		if fail.Progress == MadeProgress {
			return Result[Maybe[T]]{}, fail
		}
		return Ok(NoProgress, Maybe[T]{}, s)
	}
}

// Word1 consumes exactly the byte c.
func Word1(c byte, mkErr func(source.Pos) error) Parser[Unit] {
	return func(_ *arena.Arena, s State) (Result[Unit], *Failure) {
		if b, ok := s.Byte(0); ok && b == c {
			return Ok(MadeProgress, Unit{}, s.Advance(1))
		}
		return Err[Unit](NoProgress, mkErr(s.Pos()), s)
	}
}

// Word2 consumes exactly the bytes c0 then c1.
func Word2(c0, c1 byte, mkErr func(source.Pos) error) Parser[Unit] {
	return func(_ *arena.Arena, s State) (Result[Unit], *Failure) {
		b0, ok0 := s.Byte(0)
		b1, ok1 := s.Byte(1)
		if ok0 && ok1 && b0 == c0 && b1 == c1 {
			return Ok(MadeProgress, Unit{}, s.Advance(2))
		}
		return Err[Unit](NoProgress, mkErr(s.Pos()), s)
	}
}

func isIdentByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_':
		return true
	default:
		return false
	}
}

// Keyword consumes kw only when it is not a prefix of a longer identifier.
func Keyword(kw string, mkErr func(source.Pos) error) Parser[Unit] {
	return func(_ *arena.Arena, s State) (Result[Unit], *Failure) {
		if !s.StartsWith(kw) {
			return Err[Unit](NoProgress, mkErr(s.Pos()), s)
		}
		if b, ok := s.Byte(len(kw)); ok && isIdentByte(b) {
			return Err[Unit](NoProgress, mkErr(s.Pos()), s)
		}
		return Ok(MadeProgress, Unit{}, s.Advance(len(kw)))
	}
}

// CheckIndent fails (without progress) when the cursor sits left of
// minIndent. Constructs use it to refuse to start at an illegal column
// instead of silently mis-parsing.
func CheckIndent(minIndent int, mkErr func(source.Pos) error) Parser[Unit] {
	return func(_ *arena.Arena, s State) (Result[Unit], *Failure) {
		if s.Column < minIndent {
			return Err[Unit](NoProgress, mkErr(s.Pos()), s)
		}
		return Ok(NoProgress, Unit{}, s)
	}
}

// SepBy1 parses one item, then zero or more (sep, item) pairs. A separator
// followed by a failing item is a hard error: the separator consumed input,
// so there is no silent fallback.
func SepBy1[T any](item Parser[T], sep Parser[Unit]) Parser[[]T] {
	return func(a *arena.Arena, s State) (Result[[]T], *Failure) {
		first, fail := item(a, s)
		if fail != nil {
			return Result[[]T]{}, fail
		}

		items := []T{first.Value}
		st := first.State

		for {
			sres, sfail := sep(a, st)
			if sfail != nil {
				if sfail.Progress == MadeProgress {
					return Result[[]T]{}, sfail
				}
				return Ok(MadeProgress, items, st)
			}

			next, nfail := item(a, sres.State)
			if nfail != nil {
				return Result[[]T]{}, Fail(MadeProgress, nfail.Err, nfail.State)
			}

			items = append(items, next.Value)
			st = next.State
		}
	}
}
