package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/parser"
)

func wantIfErr(t *testing.T, err error, kind parser.IfErrorKind) {
	t.Helper()
	var ierr *parser.IfError
	if !errors.As(err, &ierr) {
		t.Fatalf("error is %T (%v), want if error", err, err)
	}
	if ierr.Kind != kind {
		t.Fatalf("error kind = %d (%v), want %d", ierr.Kind, ierr, kind)
	}
}

func wantWhenErr(t *testing.T, err error, kind parser.WhenErrorKind) *parser.WhenError {
	t.Helper()
	var werr *parser.WhenError
	if !errors.As(err, &werr) {
		t.Fatalf("error is %T (%v), want when error", err, err)
	}
	if werr.Kind != kind {
		t.Fatalf("error kind = %d (%v), want %d", werr.Kind, werr, kind)
	}
	return werr
}

func TestParseIf(t *testing.T) {
	cond := wantNode[*ast.If](t, mustParse(t, `if ok then "yes" else "no"`))
	if len(cond.Branches) != 1 {
		t.Fatalf("branch count = %d, want 1", len(cond.Branches))
	}
	wantVar(t, cond.Branches[0].Cond, "ok")
	wantNode[*ast.StrLit](t, cond.Branches[0].Then)
	wantNode[*ast.StrLit](t, cond.Else)
}

func TestParseElseIfChain(t *testing.T) {
	cond := wantNode[*ast.If](t, mustParse(t, "if a then 1 else if b then 2 else 3"))
	if len(cond.Branches) != 2 {
		t.Fatalf("branch count = %d, want 2", len(cond.Branches))
	}
	wantVar(t, cond.Branches[0].Cond, "a")
	wantVar(t, cond.Branches[1].Cond, "b")
	lit := wantNode[*ast.NumLit](t, cond.Else)
	if lit.Text != "3" {
		t.Errorf("else value = %q, want %q", lit.Text, "3")
	}
}

func TestIfRequiresElse(t *testing.T) {
	wantIfErr(t, mustFail(t, "if a then 1"), parser.IfMissingElse)
}

func TestIfRequiresThen(t *testing.T) {
	wantIfErr(t, mustFail(t, "if x 1 else 2"), parser.IfMissingThen)
}

func TestMultilineIfInDefinition(t *testing.T) {
	src := "msg =\n    if ok then \"yes\" else \"no\"\nmsg"
	block := parseBlock(t, src)
	body := wantNode[*ast.Body](t, block.Defs[0])
	wantNode[*ast.If](t, body.Value)
}

func TestParseWhen(t *testing.T) {
	src := "when x is\n    0 -> \"zero\"\n    _ -> \"other\""
	match := wantNode[*ast.When](t, mustParse(t, src))
	wantVar(t, match.Cond, "x")
	if len(match.Branches) != 2 {
		t.Fatalf("branch count = %d, want 2", len(match.Branches))
	}

	wantNode[*ast.PatternNumLit](t, match.Branches[0].Patterns[0])
	wantNode[*ast.PatternUnderscore](t, match.Branches[1].Patterns[0])
	for i, branch := range match.Branches {
		if branch.Guard != nil {
			t.Errorf("branch %d has unexpected guard", i)
		}
		wantNode[*ast.StrLit](t, branch.Body)
	}
}

func TestWhenAlternativePatterns(t *testing.T) {
	src := "when n is\n    1 | 2 -> \"small\"\n    _ -> \"big\""
	match := wantNode[*ast.When](t, mustParse(t, src))
	if len(match.Branches[0].Patterns) != 2 {
		t.Fatalf("alternative count = %d, want 2", len(match.Branches[0].Patterns))
	}
}

func TestWhenGuards(t *testing.T) {
	src := "when n is\n    m if m -> \"pos\"\n    _ -> \"other\""
	match := wantNode[*ast.When](t, mustParse(t, src))

	first := match.Branches[0]
	wantIdentPattern(t, first.Patterns[0], "m")
	if first.Guard == nil {
		t.Fatal("guard missing")
	}
	wantVar(t, first.Guard, "m")

	if match.Branches[1].Guard != nil {
		t.Error("second branch has unexpected guard")
	}
}

func TestWhenTagPatterns(t *testing.T) {
	src := "when opt is\n    Just v -> v\n    Nothing -> fallback"
	match := wantNode[*ast.When](t, mustParse(t, src))

	applied := wantNode[*ast.PatternApply](t, match.Branches[0].Patterns[0])
	tag := wantNode[*ast.PatternGlobalTag](t, applied.Fn)
	if tag.Name != "Just" {
		t.Errorf("tag name = %q, want %q", tag.Name, "Just")
	}
	wantNode[*ast.PatternGlobalTag](t, match.Branches[1].Patterns[0])
}

func TestWhenBranchAlignment(t *testing.T) {
	src := "when x is\n  1 -> 2\n    -> 3"
	werr := wantWhenErr(t, mustFail(t, src), parser.WhenAlignment)
	if werr.Delta != 2 {
		t.Errorf("alignment delta = %d, want 2", werr.Delta)
	}
	if !strings.Contains(werr.Error(), "2 columns right") {
		t.Errorf("message %q does not name the column delta", werr.Error())
	}
}

func TestWhenMissingArrow(t *testing.T) {
	wantWhenErr(t, mustFail(t, "when x is\n  1 2"), parser.WhenMissingArrow)
}

func TestWhenMissingIs(t *testing.T) {
	wantWhenErr(t, mustFail(t, "when x\n  1 -> 2"), parser.WhenMissingIs)
}

func TestWhenInsideLambdaDefinition(t *testing.T) {
	src := "describe = \\n ->\n" +
		"    when n is\n" +
		"        0 -> \"zero\"\n" +
		"        1 | 2 -> \"small\"\n" +
		"        m if m -> \"lots\"\n" +
		"        _ -> \"other\"\n" +
		"describe 3"
	block := parseBlock(t, src)

	body := wantNode[*ast.Body](t, block.Defs[0])
	lambda := wantNode[*ast.Lambda](t, body.Value)
	match := wantNode[*ast.When](t, lambda.Body)
	if len(match.Branches) != 4 {
		t.Fatalf("branch count = %d, want 4", len(match.Branches))
	}
	if len(match.Branches[1].Patterns) != 2 {
		t.Errorf("alternative count = %d, want 2", len(match.Branches[1].Patterns))
	}
	if match.Branches[2].Guard == nil {
		t.Error("guard missing on third branch")
	}
	wantNode[*ast.Apply](t, block.Ret)
}
