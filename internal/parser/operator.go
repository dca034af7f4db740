package parser

import (
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/source"
)

// opInfo is a recognized operator and where it sat.
type opInfo struct {
	op   ast.Operator
	span source.Span
}

func isOperatorByte(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '%', '^', '>', '<', '=', ':', '|', '&', '!', '.', '?':
		return true
	default:
		return false
	}
}

var operatorTable = map[string]ast.Operator{
	"+":  ast.OpPlus,
	"-":  ast.OpMinus,
	"*":  ast.OpStar,
	"/":  ast.OpSlash,
	"//": ast.OpDoubleSlash,
	"%":  ast.OpPercent,
	"%%": ast.OpDoublePercent,
	"^":  ast.OpCaret,
	">":  ast.OpGreaterThan,
	"<":  ast.OpLessThan,
	">=": ast.OpGreaterThanOrEq,
	"<=": ast.OpLessThanOrEq,
	"==": ast.OpEquals,
	"!=": ast.OpNotEquals,
	"&&": ast.OpAnd,
	"||": ast.OpOr,
	"|>": ast.OpPizza,
	"=":  ast.OpAssign,
	":":  ast.OpHasType,
	"<-": ast.OpBackpass,
}

// chompOperator recognizes one operator token. `->` and `.` fail without
// progress so arrows and field access never look like a continuing chain,
// while an unknown run of operator bytes like `=>` or `===` is a hard
// BadOperator failure: the chain committed to an operator being there.
func chompOperator(s combinator.State) (combinator.Result[opInfo], *combinator.Failure) {
	start := s.Pos()
	n := 0
	for {
		b, ok := s.Byte(n)
		if !ok || !isOperatorByte(b) {
			break
		}
		n++
	}

	if n == 0 {
		return combinator.Err[opInfo](combinator.NoProgress,
			&ExprError{Kind: ExprEnd, Pos: start}, s)
	}

	text := string(s.Bytes[:n])
	switch text {
	case "->", ".":
		return combinator.Err[opInfo](combinator.NoProgress,
			&ExprError{Kind: ExprEnd, Pos: start}, s)
	}

	if op, ok := operatorTable[text]; ok {
		st := s.Advance(n)
		return combinator.Ok(combinator.MadeProgress, opInfo{
			op:   op,
			span: source.NewSpan(start, st.Pos()),
		}, st)
	}

	st := s.Advance(n)
	return combinator.Err[opInfo](combinator.MadeProgress,
		&ExprError{Kind: ExprBadOperator, Pos: start, Op: text}, st)
}
