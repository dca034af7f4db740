package lexer_test

import (
	"testing"

	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/lexer"
)

func parseString(t *testing.T, input string) (string, *combinator.Failure) {
	t.Helper()
	a := arena.New()
	res, fail := lexer.String(a, combinator.NewState([]byte(input)))
	if fail != nil {
		return "", fail
	}
	str, ok := res.Value.(*ast.StrLit)
	if !ok {
		t.Fatalf("String(%q) = %T, want *ast.StrLit", input, res.Value)
	}
	return str.Value, nil
}

func TestString(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{`""`, ""},
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"quote \" slash \\"`, `quote " slash \`},
		{`"\u(1F680)"`, "\U0001F680"},
		{`"\u(41)BC"`, "ABC"},
	}

	for _, tt := range tests {
		value, fail := parseString(t, tt.input)
		if fail != nil {
			t.Errorf("String(%q): unexpected failure: %v", tt.input, fail)
			continue
		}
		if value != tt.value {
			t.Errorf("String(%q) = %q, want %q", tt.input, value, tt.value)
		}
	}
}

func TestStringErrors(t *testing.T) {
	hard := []string{`"abc`, `"abc` + "\n" + `"`, `"bad \q"`, `"\u(GG)"`, `"\u()"`, `"\u(110000)"`}
	for _, input := range hard {
		_, fail := parseString(t, input)
		if fail == nil {
			t.Errorf("String(%q): expected failure", input)
			continue
		}
		if fail.Progress != combinator.MadeProgress {
			t.Errorf("String(%q): broken literal should report progress", input)
		}
	}

	_, fail := parseString(t, "x")
	if fail == nil {
		t.Fatal("expected failure")
	}
	if fail.Progress != combinator.NoProgress {
		t.Error("missing opening quote should fail without progress")
	}
}
