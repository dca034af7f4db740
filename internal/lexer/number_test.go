package lexer_test

import (
	"testing"

	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/lexer"
)

func parseNumber(t *testing.T, input string) (ast.Expr, *combinator.Failure) {
	t.Helper()
	a := arena.New()
	res, fail := lexer.Number(a, combinator.NewState([]byte(input)))
	if fail != nil {
		return nil, fail
	}
	return res.Value, nil
}

func TestDecimalInt(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"0", "0"},
		{"42", "42"},
		{"42 + 1", "42"},
		{"1_000_000", "1_000_000"},
		{"-7", "-7"},
		{"9223372036854775807", "9223372036854775807"},
		{"-9223372036854775808", "-9223372036854775808"},
	}

	for _, tt := range tests {
		expr, fail := parseNumber(t, tt.input)
		if fail != nil {
			t.Errorf("Number(%q): unexpected failure: %v", tt.input, fail)
			continue
		}
		num, ok := expr.(*ast.NumLit)
		if !ok {
			t.Errorf("Number(%q) = %T, want *ast.NumLit", tt.input, expr)
			continue
		}
		if num.Text != tt.text {
			t.Errorf("Number(%q).Text = %q, want %q", tt.input, num.Text, tt.text)
		}
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"3.14", "3.14"},
		{"-1.5", "-1.5"},
		{"1e5", "1e5"},
		{"2.5e-3", "2.5e-3"},
		{"1E+9", "1E+9"},
	}

	for _, tt := range tests {
		expr, fail := parseNumber(t, tt.input)
		if fail != nil {
			t.Errorf("Number(%q): unexpected failure: %v", tt.input, fail)
			continue
		}
		f, ok := expr.(*ast.FloatLit)
		if !ok {
			t.Errorf("Number(%q) = %T, want *ast.FloatLit", tt.input, expr)
			continue
		}
		if f.Text != tt.text {
			t.Errorf("Number(%q).Text = %q, want %q", tt.input, f.Text, tt.text)
		}
	}
}

func TestNonBase10(t *testing.T) {
	tests := []struct {
		input    string
		text     string
		base     ast.NumBase
		negative bool
	}{
		{"0xDEADBEEF", "DEADBEEF", ast.BaseHex, false},
		{"0x12_34", "12_34", ast.BaseHex, false},
		{"-0o777", "777", ast.BaseOctal, true},
		{"0b1010", "1010", ast.BaseBinary, false},
	}

	for _, tt := range tests {
		expr, fail := parseNumber(t, tt.input)
		if fail != nil {
			t.Errorf("Number(%q): unexpected failure: %v", tt.input, fail)
			continue
		}
		n, ok := expr.(*ast.NonBase10Lit)
		if !ok {
			t.Errorf("Number(%q) = %T, want *ast.NonBase10Lit", tt.input, expr)
			continue
		}
		if n.Text != tt.text || n.Base != tt.base || n.Negative != tt.negative {
			t.Errorf("Number(%q) = {%q %d %v}, want {%q %d %v}",
				tt.input, n.Text, n.Base, n.Negative, tt.text, tt.base, tt.negative)
		}
	}
}

func TestNumberErrors(t *testing.T) {
	hard := []string{"0x", "1__2", "1_", "42abc", "1.2.3", "1e"}
	for _, input := range hard {
		_, fail := parseNumber(t, input)
		if fail == nil {
			t.Errorf("Number(%q): expected failure", input)
			continue
		}
		if fail.Progress != combinator.MadeProgress {
			t.Errorf("Number(%q): malformed literal should report progress", input)
		}
	}

	soft := []string{"", "x", "- 1", "-x"}
	for _, input := range soft {
		_, fail := parseNumber(t, input)
		if fail == nil {
			t.Errorf("Number(%q): expected failure", input)
			continue
		}
		if fail.Progress != combinator.NoProgress {
			t.Errorf("Number(%q): non-literal should fail without progress", input)
		}
	}
}

func TestDotAfterIntStopsLiteral(t *testing.T) {
	a := arena.New()
	res, fail := lexer.Number(a, combinator.NewState([]byte("1.x")))
	if fail != nil {
		t.Fatalf("unexpected failure: %v", fail)
	}
	num, ok := res.Value.(*ast.NumLit)
	if !ok {
		t.Fatalf("got %T, want *ast.NumLit", res.Value)
	}
	if num.Text != "1" {
		t.Errorf("Text = %q, want %q", num.Text, "1")
	}
	if res.State.Column != 1 {
		t.Errorf("column = %d, want 1 (dot left for field access)", res.State.Column)
	}
}
