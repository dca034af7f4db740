package parser_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/parser"
)

func mustParse(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return expr
}

func mustFail(t *testing.T, src string) error {
	t.Helper()
	_, err := parser.Parse(src)
	if err == nil {
		t.Fatalf("Parse(%q) succeeded, want error", src)
	}
	return err
}

func wantNode[T ast.Node](t *testing.T, n ast.Node) T {
	t.Helper()
	v, ok := n.(T)
	if !ok {
		t.Fatalf("got %T, want %T", n, *new(T))
	}
	return v
}

func wantExprErr(t *testing.T, err error, kind parser.ExprErrorKind) *parser.ExprError {
	t.Helper()
	var perr *parser.ExprError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T (%v), want expression error", err, err)
	}
	if perr.Kind != kind {
		t.Fatalf("error kind = %d (%v), want %d", perr.Kind, perr, kind)
	}
	return perr
}

func wantVar(t *testing.T, e ast.Expr, name string) {
	t.Helper()
	v := wantNode[*ast.Var](t, e)
	if v.Name != name {
		t.Errorf("variable name = %q, want %q", v.Name, name)
	}
}

func TestParseNumberLiterals(t *testing.T) {
	tests := []struct {
		src  string
		text string
	}{
		{"0", "0"},
		{"42", "42"},
		{"-17", "-17"},
		{"1_000_000", "1_000_000"},
		{"9223372036854775807", "9223372036854775807"},
		{"-9223372036854775808", "-9223372036854775808"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			lit := wantNode[*ast.NumLit](t, mustParse(t, tt.src))
			if lit.Text != tt.text {
				t.Errorf("literal text = %q, want %q", lit.Text, tt.text)
			}
		})
	}
}

// The most negative 64-bit integer has no positive counterpart, so its
// minus sign must fold into the literal text rather than parse as a
// negation of an out-of-range value.
func TestMostNegativeIntSurvives(t *testing.T) {
	lit := wantNode[*ast.NumLit](t, mustParse(t, "-9223372036854775808"))
	n, err := strconv.ParseInt(lit.Text, 10, 64)
	if err != nil {
		t.Fatalf("ParseInt(%q): %v", lit.Text, err)
	}
	if n != math.MinInt64 {
		t.Errorf("value = %d, want %d", n, int64(math.MinInt64))
	}
}

func TestParseFloatLiterals(t *testing.T) {
	tests := []struct {
		src  string
		text string
	}{
		{"3.14", "3.14"},
		{"-2.5", "-2.5"},
		{"1e10", "1e10"},
		{"6.02e23", "6.02e23"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			lit := wantNode[*ast.FloatLit](t, mustParse(t, tt.src))
			if lit.Text != tt.text {
				t.Errorf("literal text = %q, want %q", lit.Text, tt.text)
			}
		})
	}
}

func TestParseNonBase10Literals(t *testing.T) {
	tests := []struct {
		src      string
		text     string
		base     ast.NumBase
		negative bool
	}{
		{"0x2A", "2A", ast.BaseHex, false},
		{"-0x10", "10", ast.BaseHex, true},
		{"0o17", "17", ast.BaseOctal, false},
		{"0b1011", "1011", ast.BaseBinary, false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			lit := wantNode[*ast.NonBase10Lit](t, mustParse(t, tt.src))
			if lit.Text != tt.text {
				t.Errorf("literal text = %q, want %q", lit.Text, tt.text)
			}
			if lit.Base != tt.base {
				t.Errorf("literal base = %d, want %d", lit.Base, tt.base)
			}
			if lit.Negative != tt.negative {
				t.Errorf("literal negative = %v, want %v", lit.Negative, tt.negative)
			}
		})
	}
}

func TestParseStringLiterals(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		value string
	}{
		{"plain", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"escapes", `"a\nb\tc"`, "a\nb\tc"},
		{"quote", `"say \"hi\""`, `say "hi"`},
		{"unicode", `"\u(1F680)"`, "\U0001F680"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := wantNode[*ast.StrLit](t, mustParse(t, tt.src))
			if lit.Value != tt.value {
				t.Errorf("string value = %q, want %q", lit.Value, tt.value)
			}
		})
	}
}

func TestUnterminatedStringFails(t *testing.T) {
	mustFail(t, `"abc`)
}

func TestParseApplication(t *testing.T) {
	app := wantNode[*ast.Apply](t, mustParse(t, "f x y"))
	wantVar(t, app.Fn, "f")
	if len(app.Args) != 2 {
		t.Fatalf("argument count = %d, want 2", len(app.Args))
	}
	wantVar(t, app.Args[0], "x")
	wantVar(t, app.Args[1], "y")
	if app.Style != ast.CalledViaSpace {
		t.Errorf("call style = %d, want CalledViaSpace", app.Style)
	}
}

func TestParseApplicationParensArg(t *testing.T) {
	app := wantNode[*ast.Apply](t, mustParse(t, "f (g x) y"))
	if len(app.Args) != 2 {
		t.Fatalf("argument count = %d, want 2", len(app.Args))
	}
	inner := wantNode[*ast.ParensAround](t, app.Args[0])
	wantNode[*ast.Apply](t, inner.Inner)
}

// Operator chains fold rightward with no precedence at all: the first
// operand is the root's left child regardless of which operators appear.
func TestOperatorsFoldRightward(t *testing.T) {
	tests := []struct {
		src     string
		rootOp  ast.Operator
		rightOp ast.Operator
	}{
		{"a + b * c", ast.OpPlus, ast.OpStar},
		{"a * b + c", ast.OpStar, ast.OpPlus},
		{"a == b && c", ast.OpEquals, ast.OpAnd},
		{"a |> f |> g", ast.OpPizza, ast.OpPizza},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			root := wantNode[*ast.BinOp](t, mustParse(t, tt.src))
			if root.Op != tt.rootOp {
				t.Errorf("root operator = %v, want %v", root.Op, tt.rootOp)
			}
			wantVar(t, root.Left, "a")
			right := wantNode[*ast.BinOp](t, root.Right)
			if right.Op != tt.rightOp {
				t.Errorf("right operator = %v, want %v", right.Op, tt.rightOp)
			}
		})
	}
}

func TestMinusDisambiguation(t *testing.T) {
	t.Run("spaced both sides subtracts", func(t *testing.T) {
		bin := wantNode[*ast.BinOp](t, mustParse(t, "x - 1"))
		if bin.Op != ast.OpMinus {
			t.Errorf("operator = %v, want minus", bin.Op)
		}
	})

	t.Run("glued both sides subtracts", func(t *testing.T) {
		bin := wantNode[*ast.BinOp](t, mustParse(t, "x-1"))
		if bin.Op != ast.OpMinus {
			t.Errorf("operator = %v, want minus", bin.Op)
		}
	})

	t.Run("gap before only negates the argument", func(t *testing.T) {
		app := wantNode[*ast.Apply](t, mustParse(t, "x -1"))
		wantVar(t, app.Fn, "x")
		if len(app.Args) != 1 {
			t.Fatalf("argument count = %d, want 1", len(app.Args))
		}
		lit := wantNode[*ast.NumLit](t, app.Args[0])
		if lit.Text != "-1" {
			t.Errorf("argument text = %q, want %q", lit.Text, "-1")
		}
	})

	t.Run("gap before a variable negates it", func(t *testing.T) {
		app := wantNode[*ast.Apply](t, mustParse(t, "x -y"))
		neg := wantNode[*ast.UnaryOp](t, app.Args[0])
		if neg.Op != ast.UnaryNegate {
			t.Errorf("operator = %v, want negate", neg.Op)
		}
		wantVar(t, neg.Operand, "y")
	})

	t.Run("negated right operand", func(t *testing.T) {
		bin := wantNode[*ast.BinOp](t, mustParse(t, "x - -1"))
		lit := wantNode[*ast.NumLit](t, bin.Right)
		if lit.Text != "-1" {
			t.Errorf("right operand text = %q, want %q", lit.Text, "-1")
		}
	})
}

func TestUnaryOperators(t *testing.T) {
	neg := wantNode[*ast.UnaryOp](t, mustParse(t, "-x"))
	if neg.Op != ast.UnaryNegate {
		t.Errorf("operator = %v, want negate", neg.Op)
	}

	not := wantNode[*ast.UnaryOp](t, mustParse(t, "!ready"))
	if not.Op != ast.UnaryNot {
		t.Errorf("operator = %v, want not", not.Op)
	}
	wantVar(t, not.Operand, "ready")
}

func TestUnknownOperatorFails(t *testing.T) {
	tests := []struct {
		src string
		op  string
	}{
		{"x => y", "=>"},
		{"x === y", "==="},
		{"x +* y", "+*"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			perr := wantExprErr(t, mustFail(t, tt.src), parser.ExprBadOperator)
			if perr.Op != tt.op {
				t.Errorf("reported operator = %q, want %q", perr.Op, tt.op)
			}
		})
	}
}

func TestFieldAccess(t *testing.T) {
	access := wantNode[*ast.Access](t, mustParse(t, "rec.x.y"))
	if access.Field != "y" {
		t.Errorf("outer field = %q, want %q", access.Field, "y")
	}
	inner := wantNode[*ast.Access](t, access.Receiver)
	if inner.Field != "x" {
		t.Errorf("inner field = %q, want %q", inner.Field, "x")
	}
	wantVar(t, inner.Receiver, "rec")
}

func TestAccessorFunction(t *testing.T) {
	acc := wantNode[*ast.AccessorFn](t, mustParse(t, ".name"))
	if acc.Field != "name" {
		t.Errorf("accessor field = %q, want %q", acc.Field, "name")
	}
}

func TestQualifiedReference(t *testing.T) {
	v := wantNode[*ast.Var](t, mustParse(t, "Json.Decode.field"))
	if v.Module != "Json.Decode" {
		t.Errorf("module = %q, want %q", v.Module, "Json.Decode")
	}
	if v.Name != "field" {
		t.Errorf("name = %q, want %q", v.Name, "field")
	}
}

func TestTags(t *testing.T) {
	tag := wantNode[*ast.GlobalTag](t, mustParse(t, "Just"))
	if tag.Name != "Just" {
		t.Errorf("tag name = %q, want %q", tag.Name, "Just")
	}

	app := wantNode[*ast.Apply](t, mustParse(t, "Pair 1 2"))
	wantNode[*ast.GlobalTag](t, app.Fn)

	priv := wantNode[*ast.PrivateTag](t, mustParse(t, "@UserId"))
	if priv.Name != "@UserId" {
		t.Errorf("private tag name = %q, want %q", priv.Name, "@UserId")
	}
}

func TestTrailingInputFails(t *testing.T) {
	wantExprErr(t, mustFail(t, "1 )"), parser.ExprEnd)
}

func TestTabIsAnError(t *testing.T) {
	var serr *parser.SpaceError
	err := mustFail(t, "\tx")
	if !errors.As(err, &serr) {
		t.Fatalf("error is %T (%v), want whitespace error", err, err)
	}
	if serr.Kind != parser.SpaceHasTab {
		t.Errorf("error kind = %d, want tab", serr.Kind)
	}
}

func TestCommentsCarriedOnNodes(t *testing.T) {
	expr := mustParse(t, "# hello\nx")
	wantVar(t, expr, "x")

	before := expr.CommentsBefore()
	if len(before) == 0 {
		t.Fatal("no leading trivia recorded")
	}
	if before[0].Kind != ast.LineComment || before[0].Text != " hello" {
		t.Errorf("leading trivia = %+v, want line comment %q", before[0], " hello")
	}

	doc := mustParse(t, "## overview\nx")
	if got := doc.CommentsBefore(); len(got) == 0 || got[0].Kind != ast.DocComment {
		t.Errorf("leading trivia = %+v, want doc comment", got)
	}
}

// Every node's span must be well formed and sit inside the root span.
func TestSpansStayInsideRoot(t *testing.T) {
	sources := []string{
		"f x y",
		"a + b * c",
		"x -1",
		"[1, 2, [3]]",
		"{ base & x: 1, y ? 2 }.x",
		`\n -> n + 1`,
		`if a then 1 else if b then 2 else 3`,
		"when x is\n    0 -> 1\n    _ -> 2",
		"x = 1\ny = 2\nx + y",
		"get <- fetch url\nget",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			expr := mustParse(t, src)
			root := expr.Span()
			ast.Walk(expr, func(n ast.Node) bool {
				span := n.Span()
				if span.End.Before(span.Start) {
					t.Errorf("%T has inverted span %v..%v", n, span.Start, span.End)
				}
				if !root.Contains(span) {
					t.Errorf("%T span %v..%v escapes root %v..%v", n, span.Start, span.End, root.Start, root.End)
				}
				return true
			})
		})
	}
}
