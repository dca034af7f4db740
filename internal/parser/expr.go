package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/combinator"
	"github.com/veld-lang/veld-lang/internal/source"
)

// opPair is a fully-parsed operand waiting for the rest of its chain.
type opPair struct {
	expr ast.Expr
	op   opInfo
}

// exprState accumulates one operator chain. expr is the term currently
// collecting juxtaposed arguments; when an operator arrives, expr and
// arguments fold into a call and move onto operators. end is the position
// just past the last consumed term, which the minus rule compares against
// operator positions to detect gaps.
type exprState struct {
	operators []opPair
	arguments []ast.Expr
	expr      ast.Expr
	end       source.Pos
}

// parseExprChain parses a full expression: a term, then any mix of
// juxtaposed arguments and binary operators, ending when neither can
// continue. Definition operators divert into definition parsing.
func parseExprChain(a *arena.Arena, s combinator.State, minIndent int) (combinator.Result[ast.Expr], *combinator.Failure) {
	res, fail := parseTermFirst(a, s, minIndent)
	if fail != nil {
		return combinator.Result[ast.Expr]{}, fail
	}

	es := exprState{expr: res.Value, end: res.State.Pos()}
	return parseChainEnd(a, res.State, minIndent, es)
}

// parseChainEnd continues a chain from st with es holding everything
// already parsed.
func parseChainEnd(a *arena.Arena, st combinator.State, minIndent int, es exprState) (combinator.Result[ast.Expr], *combinator.Failure) {
	for {
		spRes, spFail := spaces(minIndent)(a, st)
		if spFail != nil {
			if spFail.Progress == combinator.MadeProgress {
				return combinator.Result[ast.Expr]{}, spFail
			}
			return finishChain(a, st, es)
		}
		afterSp := spRes.State
		if afterSp.AtEnd() {
			return finishChain(a, st, es)
		}

		// Argument position. Terms here never start with a unary
		// minus; a glued `-` is the operator layer's to interpret.
		termRes, termFail := parseTerm(a, afterSp, minIndent)
		if termFail == nil {
			arg := withSpaceBefore(termRes.Value, spRes.Value)
			es.arguments = append(es.arguments, arg)
			es.end = termRes.State.Pos()
			st = termRes.State
			continue
		}
		if termFail.Progress == combinator.MadeProgress {
			return combinator.Result[ast.Expr]{}, termFail
		}

		opRes, opFail := chompOperator(afterSp)
		if opFail != nil {
			if opFail.Progress == combinator.MadeProgress {
				return combinator.Result[ast.Expr]{}, opFail
			}
			// Neither a term nor an operator continues the chain.
			// Hand back the state before the trailing trivia so the
			// enclosing construct sees it.
			return finishChain(a, st, es)
		}

		res, fail := parseChainOperator(a, opRes.State, minIndent, es, opRes.Value, spRes.Value)
		if fail != nil {
			return combinator.Result[ast.Expr]{}, fail
		}
		return res, nil
	}
}

// parseChainOperator handles one recognized operator. The definition
// operators rewrite the chain so far into a pattern; Minus may instead fold
// into the next term as a negation; everything else pushes onto the chain
// and keeps going.
func parseChainOperator(a *arena.Arena, st combinator.State, minIndent int, es exprState, op opInfo, spacesBefore []ast.CommentOrNewline) (combinator.Result[ast.Expr], *combinator.Failure) {
	switch op.op {
	case ast.OpMinus:
		// Gap before the minus but none after it means the minus
		// negates the next term, which then joins the chain as another
		// argument: `x -1` is `x (-1)`.
		if es.end != op.span.Start && gluedAfter(st) {
			termRes, termFail := parseTerm(a, st, minIndent)
			if termFail != nil {
				if termFail.Progress == combinator.MadeProgress {
					return combinator.Result[ast.Expr]{}, termFail
				}
				return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
					&ExprError{Kind: ExprStart, Pos: st.Pos()}, st)
			}
			negated := numericNegate(a, op.span, termRes.Value)
			es.arguments = append(es.arguments, withSpaceBefore(negated, spacesBefore))
			es.end = termRes.State.Pos()
			return parseChainEnd(a, termRes.State, minIndent, es)
		}
		return parseChainBinOp(a, st, minIndent, es, op)

	case ast.OpAssign:
		return parseBodyDef(a, st, minIndent, es, op)

	case ast.OpHasType:
		return parseAnnotationDef(a, st, minIndent, es, op)

	case ast.OpBackpass:
		return parseBackpassing(a, st, minIndent, es, op)

	default:
		return parseChainBinOp(a, st, minIndent, es, op)
	}
}

// parseChainBinOp pushes the completed operand and parses the term after
// the operator.
func parseChainBinOp(a *arena.Arena, st combinator.State, minIndent int, es exprState, op opInfo) (combinator.Result[ast.Expr], *combinator.Failure) {
	left := foldArguments(a, es.expr, es.arguments)
	es.operators = append(es.operators, opPair{expr: left, op: op})
	es.arguments = nil

	spRes, spFail := spaces(minIndent)(a, st)
	if spFail != nil {
		if spFail.Progress == combinator.MadeProgress {
			return combinator.Result[ast.Expr]{}, spFail
		}
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprIndentStart, Pos: st.Pos()}, st)
	}

	termRes, termFail := parseTermFirst(a, spRes.State, minIndent)
	if termFail != nil {
		if termFail.Progress == combinator.MadeProgress {
			return combinator.Result[ast.Expr]{}, termFail
		}
		return combinator.Result[ast.Expr]{}, combinator.Fail(combinator.MadeProgress,
			&ExprError{Kind: ExprStart, Pos: spRes.State.Pos()}, spRes.State)
	}

	es.expr = withSpaceBefore(termRes.Value, spRes.Value)
	es.end = termRes.State.Pos()
	return parseChainEnd(a, termRes.State, minIndent, es)
}

// gluedAfter reports whether a token starts immediately at the cursor,
// with no whitespace or comment in between.
func gluedAfter(st combinator.State) bool {
	b, ok := st.Byte(0)
	if !ok {
		return false
	}
	switch b {
	case ' ', '\t', '\r', '\n', '#':
		return false
	}
	return true
}

// finishChain folds the accumulated state into a single expression. The
// current call folds first, then the operator pairs fold rightward, so the
// last operand is the deepest right child and no operator binds tighter
// than any other.
func finishChain(a *arena.Arena, st combinator.State, es exprState) (combinator.Result[ast.Expr], *combinator.Failure) {
	expr := foldArguments(a, es.expr, es.arguments)

	for i := len(es.operators) - 1; i >= 0; i-- {
		pair := es.operators[i]
		span := pair.expr.Span().Across(expr.Span())
		expr = ast.NewBinOp(a, pair.expr, pair.op.op, pair.op.span, expr, span)
	}

	return combinator.Ok(combinator.MadeProgress, expr, st)
}

// foldArguments turns a term plus its juxtaposed arguments into a call.
func foldArguments(a *arena.Arena, fn ast.Expr, args []ast.Expr) ast.Expr {
	if len(args) == 0 {
		return fn
	}
	span := fn.Span().Across(args[len(args)-1].Span())
	return ast.NewApply(a, fn, args, ast.CalledViaSpace, span)
}

// numericNegate folds a negation into a numeric literal's own text, so
// the most negative integer needs no intermediate positive value. Anything
// non-numeric becomes an explicit negation node.
func numericNegate(a *arena.Arena, opSpan source.Span, e ast.Expr) ast.Expr {
	span := opSpan.Across(e.Span())
	switch n := e.(type) {
	case *ast.NumLit:
		return ast.NewNumLit(a, "-"+n.Text, span)
	case *ast.FloatLit:
		return ast.NewFloatLit(a, "-"+n.Text, span)
	case *ast.NonBase10Lit:
		return ast.NewNonBase10Lit(a, n.Text, n.Base, !n.Negative, span)
	default:
		return ast.NewUnaryOp(a, ast.UnaryNegate, e, span)
	}
}
