package combinator

import "github.com/veld-lang/veld-lang/internal/arena"

// Progress records whether a parse attempt consumed input. It governs
// backtracking: alternation only tries the next alternative after a failure
// that made no progress, so a failure after consumed input propagates
// immediately instead of silently falling back.
type Progress bool

const (
	// MadeProgress marks an attempt that consumed input.
	MadeProgress Progress = true
	// NoProgress marks an attempt that consumed nothing.
	NoProgress Progress = false
)

// Or combines two progress flags; the result reports progress if either did.
func (p Progress) Or(other Progress) Progress {
	return p || other
}

// Result is a successful parse: the value, the state after it, and whether
// input was consumed producing it.
type Result[T any] struct {
	Progress Progress
	Value    T
	State    State
}

// Failure is a failed parse: a typed, position-carrying error, the state at
// the failure site, and whether input was consumed before failing.
type Failure struct {
	Progress Progress
	Err      error
	State    State
}

// Error returns the underlying error's message.
func (f *Failure) Error() string {
	return f.Err.Error()
}

// Unwrap exposes the context error for errors.As / errors.Is.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Fail constructs a Failure.
func Fail(p Progress, err error, st State) *Failure {
	return &Failure{Progress: p, Err: err, State: st}
}

// Parser is a pure parse function. Implementations must honor the progress
// contract: a returned Failure with MadeProgress means input was consumed
// and callers must not try alternatives.
type Parser[T any] func(a *arena.Arena, s State) (Result[T], *Failure)

// Ok builds a successful result.
func Ok[T any](p Progress, v T, s State) (Result[T], *Failure) {
	return Result[T]{Progress: p, Value: v, State: s}, nil
}

// Err builds a failed result.
func Err[T any](p Progress, err error, s State) (Result[T], *Failure) {
	var zero Result[T]
	return zero, Fail(p, err, s)
}
