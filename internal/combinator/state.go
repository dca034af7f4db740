// Package combinator provides the cursor state and the generic parser
// combinators the syntax packages are built from. Parsers are pure functions
// from (arena, state) to either success or failure; states are values and are
// never mutated in place, so backtracking is a matter of keeping a copy of
// the pre-attempt state and discarding the failed one.
package combinator

import (
	"bytes"

	"github.com/veld-lang/veld-lang/internal/source"
)

// State is an immutable snapshot of the remaining input together with the
// cursor's line, column, and the indentation column of the current line.
// Every parse step consumes a State and produces a new one.
type State struct {
	// Bytes is the unconsumed remainder of the source buffer.
	Bytes []byte

	// Line and Column locate the cursor, zero-based.
	Line   int
	Column int

	// IndentCol is the column of the first non-space character on the
	// line the cursor currently sits on. Definition parsing uses it to
	// establish the column a construct "starts" at.
	IndentCol int
}

// NewState positions a cursor at the start of src.
func NewState(src []byte) State {
	return State{Bytes: src}
}

// Pos returns the cursor position.
func (s State) Pos() source.Pos {
	return source.Pos{Line: s.Line, Column: s.Column}
}

// AtEnd reports whether the input is exhausted.
func (s State) AtEnd() bool {
	return len(s.Bytes) == 0
}

// Byte returns the byte at offset i from the cursor, if present.
func (s State) Byte(i int) (byte, bool) {
	if i >= len(s.Bytes) {
		return 0, false
	}
	return s.Bytes[i], true
}

// StartsWith reports whether the remaining input begins with prefix.
func (s State) StartsWith(prefix string) bool {
	return bytes.HasPrefix(s.Bytes, []byte(prefix))
}

// Advance consumes n bytes on the current line. It must not be used to step
// over newlines; ChompNewline handles those so the line accounting stays
// correct.
func (s State) Advance(n int) State {
	s.Bytes = s.Bytes[n:]
	s.Column += n
	return s
}

// ChompNewline consumes a single '\n', moving the cursor to the start of the
// next line. IndentCol is left untouched; whitespace parsing resets it once
// the next line's leading spaces are known.
func (s State) ChompNewline() State {
	s.Bytes = s.Bytes[1:]
	s.Line++
	s.Column = 0
	return s
}

// WithIndent returns the state with IndentCol set to col.
func (s State) WithIndent(col int) State {
	s.IndentCol = col
	return s
}
