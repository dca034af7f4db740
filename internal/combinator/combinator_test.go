package combinator_test

import (
	"errors"
	"testing"

	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/source"
)

var errExpected = errors.New("expected token")

func mkErr(_ source.Pos) error { return errExpected }

func runUnit(t *testing.T, p combinator.Parser[combinator.Unit], input string) (combinator.Result[combinator.Unit], *combinator.Failure) {
	t.Helper()
	a := arena.New()
	return p(a, combinator.NewState([]byte(input)))
}

func TestWord1(t *testing.T) {
	p := combinator.Word1('(', mkErr)

	res, fail := runUnit(t, p, "(x")
	if fail != nil {
		t.Fatalf("unexpected failure: %v", fail)
	}
	if res.Progress != combinator.MadeProgress {
		t.Error("matching byte should report progress")
	}
	if res.State.Column != 1 {
		t.Errorf("column = %d, want 1", res.State.Column)
	}

	_, fail = runUnit(t, p, "x")
	if fail == nil {
		t.Fatal("expected failure on non-matching byte")
	}
	if fail.Progress != combinator.NoProgress {
		t.Error("non-matching byte should not report progress")
	}
}

func TestWord2(t *testing.T) {
	p := combinator.Word2('-', '>', mkErr)

	res, fail := runUnit(t, p, "->")
	if fail != nil {
		t.Fatalf("unexpected failure: %v", fail)
	}
	if res.State.Column != 2 {
		t.Errorf("column = %d, want 2", res.State.Column)
	}

	// First byte matches but the second does not. Word2 must not consume.
	_, fail = runUnit(t, p, "-x")
	if fail == nil {
		t.Fatal("expected failure")
	}
	if fail.Progress != combinator.NoProgress {
		t.Error("partial match should not report progress")
	}
	if fail.State.Column != 0 {
		t.Errorf("failure state column = %d, want 0", fail.State.Column)
	}
}

func TestKeyword(t *testing.T) {
	p := combinator.Keyword("else", mkErr)

	tests := []struct {
		input string
		ok    bool
	}{
		{"else", true},
		{"else x", true},
		{"else)", true},
		{"elsewhere", false},
		{"els", false},
		{"if", false},
	}

	for _, tt := range tests {
		_, fail := runUnit(t, p, tt.input)
		if tt.ok && fail != nil {
			t.Errorf("Keyword(%q): unexpected failure: %v", tt.input, fail)
		}
		if !tt.ok && fail == nil {
			t.Errorf("Keyword(%q): expected failure", tt.input)
		}
		if !tt.ok && fail != nil && fail.Progress != combinator.NoProgress {
			t.Errorf("Keyword(%q): rejection should not report progress", tt.input)
		}
	}
}

func TestOneOfStopsOnProgressingFailure(t *testing.T) {
	hard := func(_ *arena.Arena, s combinator.State) (combinator.Result[int], *combinator.Failure) {
		return combinator.Err[int](combinator.MadeProgress, errExpected, s.Advance(1))
	}
	reached := false
	second := func(_ *arena.Arena, s combinator.State) (combinator.Result[int], *combinator.Failure) {
		reached = true
		return combinator.Ok(combinator.MadeProgress, 42, s)
	}

	a := arena.New()
	_, fail := combinator.OneOf(hard, second)(a, combinator.NewState([]byte("xy")))
	if fail == nil {
		t.Fatal("expected the progressing failure to propagate")
	}
	if reached {
		t.Error("alternation must not retry after a progressing failure")
	}
}

func TestOneOfRetriesOnNoProgress(t *testing.T) {
	soft := func(_ *arena.Arena, s combinator.State) (combinator.Result[int], *combinator.Failure) {
		return combinator.Err[int](combinator.NoProgress, errExpected, s)
	}
	second := func(_ *arena.Arena, s combinator.State) (combinator.Result[int], *combinator.Failure) {
		return combinator.Ok(combinator.MadeProgress, 42, s)
	}

	a := arena.New()
	res, fail := combinator.OneOf(soft, second)(a, combinator.NewState([]byte("xy")))
	if fail != nil {
		t.Fatalf("unexpected failure: %v", fail)
	}
	if res.Value != 42 {
		t.Errorf("value = %d, want 42", res.Value)
	}
}

func TestBacktrackable(t *testing.T) {
	hard := func(_ *arena.Arena, s combinator.State) (combinator.Result[int], *combinator.Failure) {
		return combinator.Err[int](combinator.MadeProgress, errExpected, s.Advance(2))
	}

	a := arena.New()
	st := combinator.NewState([]byte("xyz"))
	_, fail := combinator.Backtrackable(hard)(a, st)
	if fail == nil {
		t.Fatal("expected failure")
	}
	if fail.Progress != combinator.NoProgress {
		t.Error("backtrackable failure should report no progress")
	}
	if fail.State.Column != 0 {
		t.Errorf("failure state column = %d, want the pre-attempt 0", fail.State.Column)
	}
}

func TestOptional(t *testing.T) {
	p := combinator.Optional(combinator.Word1('!', mkErr))

	a := arena.New()
	res, fail := p(a, combinator.NewState([]byte("!x")))
	if fail != nil {
		t.Fatalf("unexpected failure: %v", fail)
	}
	if !res.Value.OK {
		t.Error("expected a present value")
	}

	res, fail = p(a, combinator.NewState([]byte("x")))
	if fail != nil {
		t.Fatalf("unexpected failure: %v", fail)
	}
	if res.Value.OK {
		t.Error("expected a missing value")
	}
	if res.Progress != combinator.NoProgress {
		t.Error("missing optional must not report progress")
	}

	// A progressing failure inside the optional still propagates.
	hard := func(_ *arena.Arena, s combinator.State) (combinator.Result[combinator.Unit], *combinator.Failure) {
		return combinator.Err[combinator.Unit](combinator.MadeProgress, errExpected, s.Advance(1))
	}
	_, fail = combinator.Optional(hard)(a, combinator.NewState([]byte("x")))
	if fail == nil {
		t.Fatal("expected the progressing failure to propagate through Optional")
	}
}

func TestCheckIndent(t *testing.T) {
	a := arena.New()
	st := combinator.NewState([]byte("abc")).Advance(2)

	if _, fail := combinator.CheckIndent(2, mkErr)(a, st); fail != nil {
		t.Errorf("column 2 should satisfy minIndent 2: %v", fail)
	}
	_, fail := combinator.CheckIndent(3, mkErr)(a, st)
	if fail == nil {
		t.Fatal("column 2 should fail minIndent 3")
	}
	if fail.Progress != combinator.NoProgress {
		t.Error("indent rejection should not report progress")
	}
}

func TestSepBy1(t *testing.T) {
	item := func(_ *arena.Arena, s combinator.State) (combinator.Result[byte], *combinator.Failure) {
		b, ok := s.Byte(0)
		if !ok || b < 'a' || b > 'z' {
			return combinator.Err[byte](combinator.NoProgress, errExpected, s)
		}
		return combinator.Ok(combinator.MadeProgress, b, s.Advance(1))
	}
	sep := combinator.Word1(',', mkErr)

	a := arena.New()
	res, fail := combinator.SepBy1(item, sep)(a, combinator.NewState([]byte("a,b,c]")))
	if fail != nil {
		t.Fatalf("unexpected failure: %v", fail)
	}
	if string(res.Value) != "abc" {
		t.Errorf("items = %q, want %q", res.Value, "abc")
	}
	if res.State.Column != 5 {
		t.Errorf("column = %d, want 5", res.State.Column)
	}

	// Separator with no item after it is a hard error.
	_, fail = combinator.SepBy1(item, sep)(a, combinator.NewState([]byte("a,]")))
	if fail == nil {
		t.Fatal("expected failure after dangling separator")
	}
	// The separator was consumed, so progress must be reported.
	if fail.Progress != combinator.MadeProgress {
		t.Error("dangling separator failure should report progress")
	}
}
