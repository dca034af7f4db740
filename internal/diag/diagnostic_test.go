package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/veld-lang/veld-lang/internal/diag"
	"github.com/veld-lang/veld-lang/internal/parser"
	"github.com/veld-lang/veld-lang/internal/source"
)

func TestFromParseError(t *testing.T) {
	_, err := parser.Parse("[ 1, ")
	if err == nil {
		t.Fatal("expected a parse error")
	}

	d := diag.FromParseError("demo.veld", err)
	if d.Stage != diag.StageParser {
		t.Errorf("Stage = %q, want parser", d.Stage)
	}
	if d.Severity != diag.SeverityError {
		t.Errorf("Severity = %q, want error", d.Severity)
	}
	if d.Filename != "demo.veld" {
		t.Errorf("Filename = %q, want demo.veld", d.Filename)
	}
	if d.Message == "" {
		t.Error("expected a message")
	}
}

func TestFromParseErrorInnermostPosition(t *testing.T) {
	src := "f (1 +\n"
	_, err := parser.Parse(src)
	if err == nil {
		t.Fatal("expected a parse error")
	}

	d := diag.FromParseError("", err)
	if (d.Pos == source.Pos{}) && len(d.Notes) == 0 {
		t.Error("expected a position or notes from the nested failure")
	}
}

func TestFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := diag.NewFormatter(&buf)

	d := diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Message:  "expected an expression",
		Pos:      source.Pos{Line: 0, Column: 4},
	}
	f.Format(d, "1 + ")

	out := buf.String()
	if !strings.Contains(out, "expected an expression") {
		t.Errorf("output missing message:\n%s", out)
	}
	if !strings.Contains(out, "1 + ") {
		t.Errorf("output missing source line:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("output missing caret:\n%s", out)
	}
}
