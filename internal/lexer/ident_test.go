package lexer_test

import (
	"reflect"
	"testing"

	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/lexer"
)

func parseIdent(t *testing.T, input string) (lexer.Ident, *combinator.Failure) {
	t.Helper()
	a := arena.New()
	res, fail := lexer.ParseIdent(a, combinator.NewState([]byte(input)))
	if fail != nil {
		return lexer.Ident{}, fail
	}
	return res.Value, nil
}

func TestParseIdent(t *testing.T) {
	tests := []struct {
		input  string
		kind   lexer.IdentKind
		module string
		name   string
		chain  []string
	}{
		{"foo", lexer.IdentVar, "", "foo", nil},
		{"foo bar", lexer.IdentVar, "", "foo", nil},
		{"snake_case2", lexer.IdentVar, "", "snake_case2", nil},
		{"rec.x.y", lexer.IdentVar, "", "rec", []string{"x", "y"}},
		{"Json.Decode.field", lexer.IdentVar, "Json.Decode", "field", nil},
		{"Json.Decode.field.name", lexer.IdentVar, "Json.Decode", "field", []string{"name"}},
		{"Just", lexer.IdentTag, "", "Just", nil},
		{"Result.Ok", lexer.IdentTag, "Result", "Ok", nil},
		{"@UserId", lexer.IdentPrivateTag, "", "@UserId", nil},
		{".field", lexer.IdentAccessor, "", "field", nil},
	}

	for _, tt := range tests {
		id, fail := parseIdent(t, tt.input)
		if fail != nil {
			t.Errorf("ParseIdent(%q): unexpected failure: %v", tt.input, fail)
			continue
		}
		if id.Kind != tt.kind {
			t.Errorf("ParseIdent(%q).Kind = %d, want %d", tt.input, id.Kind, tt.kind)
		}
		if id.Module != tt.module || id.Name != tt.name {
			t.Errorf("ParseIdent(%q) = %q.%q, want %q.%q",
				tt.input, id.Module, id.Name, tt.module, tt.name)
		}
		if !reflect.DeepEqual(id.AccessChain, tt.chain) {
			t.Errorf("ParseIdent(%q).AccessChain = %v, want %v", tt.input, id.AccessChain, tt.chain)
		}
	}
}

func TestParseIdentRejectsKeywords(t *testing.T) {
	for _, kw := range []string{"if", "then", "else", "when", "is"} {
		_, fail := parseIdent(t, kw)
		if fail == nil {
			t.Errorf("ParseIdent(%q): expected failure", kw)
			continue
		}
		if fail.Progress != combinator.NoProgress {
			t.Errorf("ParseIdent(%q): keyword rejection should not report progress", kw)
		}
	}

	// A keyword prefix of a longer name is fine.
	id, fail := parseIdent(t, "iffy")
	if fail != nil {
		t.Fatalf("unexpected failure: %v", fail)
	}
	if id.Name != "iffy" {
		t.Errorf("Name = %q, want %q", id.Name, "iffy")
	}
}

func TestParseIdentMalformed(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"@foo", "@foo"},
		{"@ ", "@"},
		{"Foo.Bar.", "Foo.Bar."},
	}

	for _, tt := range tests {
		id, fail := parseIdent(t, tt.input)
		if fail != nil {
			t.Errorf("ParseIdent(%q): unexpected failure: %v", tt.input, fail)
			continue
		}
		if id.Kind != lexer.IdentMalformed {
			t.Errorf("ParseIdent(%q).Kind = %d, want IdentMalformed", tt.input, id.Kind)
		}
		if id.Text != tt.text {
			t.Errorf("ParseIdent(%q).Text = %q, want %q", tt.input, id.Text, tt.text)
		}
	}
}

func TestParseIdentUnderscore(t *testing.T) {
	_, fail := parseIdent(t, "_x")
	if fail == nil {
		t.Fatal("expected failure")
	}
	if fail.Progress != combinator.NoProgress {
		t.Error("underscore rejection should not report progress")
	}
}
