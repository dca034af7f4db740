package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
)

// chompTrivia consumes spaces, newlines, and comments, recording one trivia
// entry per newline and per comment. A comment runs to end of line but does
// not absorb the newline after it; that newline gets its own entry. Tabs
// are a hard failure.
func chompTrivia(s combinator.State) ([]ast.CommentOrNewline, combinator.State, *combinator.Failure) {
	var trivia []ast.CommentOrNewline

	for {
		b, ok := s.Byte(0)
		if !ok {
			return trivia, s, nil
		}

		switch b {
		case ' ', '\r':
			s = s.Advance(1)

		case '\t':
			return trivia, s, combinator.Fail(combinator.MadeProgress,
				&SpaceError{Kind: SpaceHasTab, Pos: s.Pos()}, s)

		case '\n':
			trivia = append(trivia, ast.CommentOrNewline{Kind: ast.Newline})
			s = s.ChompNewline()

		case '#':
			kind := ast.LineComment
			marker := 1
			if b1, ok := s.Byte(1); ok && b1 == '#' {
				kind = ast.DocComment
				marker = 2
			}
			n := marker
			for {
				b, ok := s.Byte(n)
				if !ok || b == '\n' {
					break
				}
				n++
			}
			trivia = append(trivia, ast.CommentOrNewline{Kind: kind, Text: string(s.Bytes[marker:n])})
			s = s.Advance(n)

		default:
			return trivia, s, nil
		}
	}
}

// spaces consumes trivia and enforces the indentation floor: once a newline
// has been crossed, the next token must sit at or right of minIndent.
// Outdenting fails without progress and hands back the original state, so
// the caller's alternation can treat the outdented token as belonging to an
// enclosing construct.
func spaces(minIndent int) combinator.Parser[[]ast.CommentOrNewline] {
	return func(_ *arena.Arena, s combinator.State) (combinator.Result[[]ast.CommentOrNewline], *combinator.Failure) {
		trivia, st, fail := chompTrivia(s)
		if fail != nil {
			return combinator.Result[[]ast.CommentOrNewline]{}, fail
		}

		progress := combinator.NoProgress
		if len(st.Bytes) != len(s.Bytes) {
			progress = combinator.MadeProgress
		}

		if crossedNewline(trivia) && !st.AtEnd() {
			if st.Column < minIndent {
				return combinator.Err[[]ast.CommentOrNewline](combinator.NoProgress,
					&SpaceError{Kind: SpaceOutdented, Pos: st.Pos()}, s)
			}
			st = st.WithIndent(st.Column)
		}

		return combinator.Ok(progress, trivia, st)
	}
}

func crossedNewline(trivia []ast.CommentOrNewline) bool {
	for _, t := range trivia {
		if t.Kind == ast.Newline || t.Kind == ast.LineComment || t.Kind == ast.DocComment {
			return true
		}
	}
	return false
}

// withSpaceBefore attaches preceding trivia to a parsed node.
func withSpaceBefore[T ast.Node](node T, trivia []ast.CommentOrNewline) T {
	node.AttachBefore(trivia)
	return node
}

// withSpaceAfter attaches trailing trivia to a parsed node.
func withSpaceAfter[T ast.Node](node T, trivia []ast.CommentOrNewline) T {
	node.AttachAfter(trivia)
	return node
}
