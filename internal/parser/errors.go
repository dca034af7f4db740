package parser

import (
	"fmt"

	"github.com/veld-lang/veld-lang/internal/source"
)

// ExprErrorKind identifies what went wrong while parsing an expression.
type ExprErrorKind int

const (
	// ExprStart means no expression begins at the cursor.
	ExprStart ExprErrorKind = iota
	// ExprEnd means the expression ran into bytes that cannot continue it.
	ExprEnd
	// ExprBadOperator means an operator-shaped run of symbols is not an
	// operator, or a definition operator appeared mid-chain.
	ExprBadOperator
	// ExprElmStyleFunction means arguments appeared left of `=`, as in
	// `f a b = ...`, which this syntax does not support.
	ExprElmStyleFunction
	// ExprMalformedPattern means the expression left of a definition
	// operator has no pattern reading.
	ExprMalformedPattern
	// ExprDefMissingFinalExpr means a run of definitions ended without
	// the expression the block should produce.
	ExprDefMissingFinalExpr
	// ExprBackpassContinuation means nothing followed a `<-` binding.
	ExprBackpassContinuation
	// ExprIndentStart means the cursor sits left of the column an
	// expression is allowed to start at.
	ExprIndentStart

	// The remaining kinds wrap a failure from a nested construct.
	ExprInParens
	ExprList
	ExprRecord
	ExprLambda
	ExprIf
	ExprWhen
	ExprStr
	ExprNumber
	ExprType
	ExprSpace
)

// ExprError is the expression-level parse failure. Wrap kinds carry the
// nested failure in Inner; Op and ArgsSpan are set for the operator misuse
// kinds.
type ExprError struct {
	Kind     ExprErrorKind
	Pos      source.Pos
	Op       string
	ArgsSpan source.Span
	Inner    error
}

func (e *ExprError) Error() string {
	switch e.Kind {
	case ExprStart:
		return fmt.Sprintf("%s: expected an expression", e.Pos)
	case ExprEnd:
		return fmt.Sprintf("%s: expression ends unexpectedly", e.Pos)
	case ExprBadOperator:
		return fmt.Sprintf("%s: %q is not an operator that can appear here", e.Pos, e.Op)
	case ExprElmStyleFunction:
		return fmt.Sprintf("%s: function arguments cannot appear left of '='; use a lambda instead", e.Pos)
	case ExprMalformedPattern:
		return fmt.Sprintf("%s: this is not a pattern that can be assigned to", e.Pos)
	case ExprDefMissingFinalExpr:
		return fmt.Sprintf("%s: definitions must be followed by an expression producing the block's value", e.Pos)
	case ExprBackpassContinuation:
		return fmt.Sprintf("%s: expected an expression after this '<-' binding", e.Pos)
	case ExprIndentStart:
		return fmt.Sprintf("%s: expression is not indented far enough to continue here", e.Pos)
	case ExprInParens:
		return fmt.Sprintf("%s: problem inside parentheses: %v", e.Pos, e.Inner)
	case ExprList:
		return fmt.Sprintf("%s: problem inside list literal: %v", e.Pos, e.Inner)
	case ExprRecord:
		return fmt.Sprintf("%s: problem inside record literal: %v", e.Pos, e.Inner)
	case ExprLambda:
		return fmt.Sprintf("%s: problem inside lambda: %v", e.Pos, e.Inner)
	case ExprIf:
		return fmt.Sprintf("%s: problem inside if expression: %v", e.Pos, e.Inner)
	case ExprWhen:
		return fmt.Sprintf("%s: problem inside when expression: %v", e.Pos, e.Inner)
	case ExprStr:
		return fmt.Sprintf("%s: problem inside string literal: %v", e.Pos, e.Inner)
	case ExprNumber:
		return fmt.Sprintf("%s: problem inside number literal: %v", e.Pos, e.Inner)
	case ExprType:
		return fmt.Sprintf("%s: problem inside type annotation: %v", e.Pos, e.Inner)
	case ExprSpace:
		return fmt.Sprintf("%s: problem in whitespace: %v", e.Pos, e.Inner)
	default:
		return fmt.Sprintf("%s: malformed expression", e.Pos)
	}
}

// Unwrap exposes the nested failure for wrap kinds.
func (e *ExprError) Unwrap() error { return e.Inner }

// Position returns where the error was detected.
func (e *ExprError) Position() source.Pos { return e.Pos }

// SpaceErrorKind identifies a whitespace problem.
type SpaceErrorKind int

const (
	// SpaceHasTab means a tab character appeared; indentation is spaces
	// only.
	SpaceHasTab SpaceErrorKind = iota
	// SpaceOutdented means the next token sits left of the minimum
	// indentation, so it belongs to an enclosing construct.
	SpaceOutdented
)

// SpaceError reports a whitespace problem.
type SpaceError struct {
	Kind SpaceErrorKind
	Pos  source.Pos
}

func (e *SpaceError) Error() string {
	if e.Kind == SpaceHasTab {
		return fmt.Sprintf("%s: tab characters are not allowed; indent with spaces", e.Pos)
	}
	return fmt.Sprintf("%s: line is not indented far enough to continue the expression", e.Pos)
}

// Position returns where the error was detected.
func (e *SpaceError) Position() source.Pos { return e.Pos }

// IfErrorKind identifies a problem inside an if expression.
type IfErrorKind int

const (
	// IfMissingThen means no `then` followed the condition.
	IfMissingThen IfErrorKind = iota
	// IfMissingElse means the conditional has no final else branch.
	IfMissingElse
	// IfCondition wraps a failure in the condition expression.
	IfCondition
	// IfThenBranch wraps a failure in a then branch.
	IfThenBranch
	// IfElseBranch wraps a failure in the else branch.
	IfElseBranch
)

// IfError reports a problem inside an if expression.
type IfError struct {
	Kind  IfErrorKind
	Pos   source.Pos
	Inner error
}

func (e *IfError) Error() string {
	switch e.Kind {
	case IfMissingThen:
		return fmt.Sprintf("%s: expected 'then' after the if condition", e.Pos)
	case IfMissingElse:
		return fmt.Sprintf("%s: if expressions need a final 'else' branch", e.Pos)
	case IfCondition:
		return fmt.Sprintf("%s: problem in if condition: %v", e.Pos, e.Inner)
	case IfThenBranch:
		return fmt.Sprintf("%s: problem in then branch: %v", e.Pos, e.Inner)
	default:
		return fmt.Sprintf("%s: problem in else branch: %v", e.Pos, e.Inner)
	}
}

// Unwrap exposes the nested failure.
func (e *IfError) Unwrap() error { return e.Inner }

// Position returns where the error was detected.
func (e *IfError) Position() source.Pos { return e.Pos }

// WhenErrorKind identifies a problem inside a when expression.
type WhenErrorKind int

const (
	// WhenMissingIs means no `is` followed the scrutinee.
	WhenMissingIs WhenErrorKind = iota
	// WhenMissingArrow means a branch pattern was not followed by `->`.
	WhenMissingArrow
	// WhenMissingBranches means `is` was followed by no branches at all.
	WhenMissingBranches
	// WhenAlignment means a branch pattern does not start at the same
	// column as the first branch. Delta is how many columns right of
	// the reference column it sits; an outdented line instead ends the
	// when, so the delta is always positive.
	WhenAlignment
	// WhenCondition wraps a failure in the scrutinee.
	WhenCondition
	// WhenPattern wraps a failure in a branch pattern.
	WhenPattern
	// WhenGuard wraps a failure in a branch guard.
	WhenGuard
	// WhenBranchBody wraps a failure in a branch body.
	WhenBranchBody
)

// WhenError reports a problem inside a when expression.
type WhenError struct {
	Kind  WhenErrorKind
	Pos   source.Pos
	Delta int
	Inner error
}

func (e *WhenError) Error() string {
	switch e.Kind {
	case WhenMissingIs:
		return fmt.Sprintf("%s: expected 'is' after the when condition", e.Pos)
	case WhenMissingArrow:
		return fmt.Sprintf("%s: expected '->' after this branch pattern", e.Pos)
	case WhenMissingBranches:
		return fmt.Sprintf("%s: when expressions need at least one branch", e.Pos)
	case WhenAlignment:
		return fmt.Sprintf("%s: branch pattern starts %d columns right of the first branch", e.Pos, e.Delta)
	case WhenCondition:
		return fmt.Sprintf("%s: problem in when condition: %v", e.Pos, e.Inner)
	case WhenPattern:
		return fmt.Sprintf("%s: problem in branch pattern: %v", e.Pos, e.Inner)
	case WhenGuard:
		return fmt.Sprintf("%s: problem in branch guard: %v", e.Pos, e.Inner)
	default:
		return fmt.Sprintf("%s: problem in branch body: %v", e.Pos, e.Inner)
	}
}

// Unwrap exposes the nested failure.
func (e *WhenError) Unwrap() error { return e.Inner }

// Position returns where the error was detected.
func (e *WhenError) Position() source.Pos { return e.Pos }

// LambdaErrorKind identifies a problem inside a lambda.
type LambdaErrorKind int

const (
	// LambdaMissingArrow means no `->` followed the parameter list.
	LambdaMissingArrow LambdaErrorKind = iota
	// LambdaMissingParams means `\` was followed by no parameters.
	LambdaMissingParams
	// LambdaParam wraps a failure in a parameter pattern.
	LambdaParam
	// LambdaBody wraps a failure in the body.
	LambdaBody
)

// LambdaError reports a problem inside a lambda.
type LambdaError struct {
	Kind  LambdaErrorKind
	Pos   source.Pos
	Inner error
}

func (e *LambdaError) Error() string {
	switch e.Kind {
	case LambdaMissingArrow:
		return fmt.Sprintf("%s: expected '->' after the lambda parameters", e.Pos)
	case LambdaMissingParams:
		return fmt.Sprintf("%s: expected at least one parameter after '\\'", e.Pos)
	case LambdaParam:
		return fmt.Sprintf("%s: problem in lambda parameter: %v", e.Pos, e.Inner)
	default:
		return fmt.Sprintf("%s: problem in lambda body: %v", e.Pos, e.Inner)
	}
}

// Unwrap exposes the nested failure.
func (e *LambdaError) Unwrap() error { return e.Inner }

// Position returns where the error was detected.
func (e *LambdaError) Position() source.Pos { return e.Pos }

// ListErrorKind identifies a problem inside a list literal.
type ListErrorKind int

const (
	// ListOpen means no `[` starts here.
	ListOpen ListErrorKind = iota
	// ListEnd means the closing `]` never appeared.
	ListEnd
	// ListItem wraps a failure in an element expression.
	ListItem
)

// ListError reports a problem inside a list literal.
type ListError struct {
	Kind  ListErrorKind
	Pos   source.Pos
	Inner error
}

func (e *ListError) Error() string {
	switch e.Kind {
	case ListOpen:
		return fmt.Sprintf("%s: expected a list literal", e.Pos)
	case ListEnd:
		return fmt.Sprintf("%s: list literal is missing its closing ']'", e.Pos)
	default:
		return fmt.Sprintf("%s: problem in list element: %v", e.Pos, e.Inner)
	}
}

// Unwrap exposes the nested failure.
func (e *ListError) Unwrap() error { return e.Inner }

// Position returns where the error was detected.
func (e *ListError) Position() source.Pos { return e.Pos }

// RecordErrorKind identifies a problem inside a record literal.
type RecordErrorKind int

const (
	// RecordOpen means no `{` starts here.
	RecordOpen RecordErrorKind = iota
	// RecordEnd means the closing `}` never appeared.
	RecordEnd
	// RecordField wraps a failure in a field.
	RecordField
	// RecordUpdateBase wraps a failure in the expression before `&`.
	RecordUpdateBase
)

// RecordError reports a problem inside a record literal.
type RecordError struct {
	Kind  RecordErrorKind
	Pos   source.Pos
	Inner error
}

func (e *RecordError) Error() string {
	switch e.Kind {
	case RecordOpen:
		return fmt.Sprintf("%s: expected a record literal", e.Pos)
	case RecordEnd:
		return fmt.Sprintf("%s: record literal is missing its closing '}'", e.Pos)
	case RecordField:
		return fmt.Sprintf("%s: problem in record field: %v", e.Pos, e.Inner)
	default:
		return fmt.Sprintf("%s: problem in record update base: %v", e.Pos, e.Inner)
	}
}

// Unwrap exposes the nested failure.
func (e *RecordError) Unwrap() error { return e.Inner }

// Position returns where the error was detected.
func (e *RecordError) Position() source.Pos { return e.Pos }

// PatternErrorKind identifies a problem while parsing a pattern.
type PatternErrorKind int

const (
	// PatternStart means no pattern begins at the cursor.
	PatternStart PatternErrorKind = iota
	// PatternEnd means the pattern ran into bytes that cannot continue it.
	PatternEnd
	// PatternRecordField wraps a failure in a destructure field.
	PatternRecordField
	// PatternIndent means the pattern is not indented far enough.
	PatternIndent
)

// PatternError reports a problem while parsing a pattern.
type PatternError struct {
	Kind  PatternErrorKind
	Pos   source.Pos
	Inner error
}

func (e *PatternError) Error() string {
	switch e.Kind {
	case PatternStart:
		return fmt.Sprintf("%s: expected a pattern", e.Pos)
	case PatternEnd:
		return fmt.Sprintf("%s: pattern ends unexpectedly", e.Pos)
	case PatternRecordField:
		return fmt.Sprintf("%s: problem in destructure field: %v", e.Pos, e.Inner)
	default:
		return fmt.Sprintf("%s: pattern is not indented far enough", e.Pos)
	}
}

// Unwrap exposes the nested failure.
func (e *PatternError) Unwrap() error { return e.Inner }

// Position returns where the error was detected.
func (e *PatternError) Position() source.Pos { return e.Pos }

// TypeErrorKind identifies a problem while parsing a type annotation.
type TypeErrorKind int

const (
	// TypeStart means no annotation begins at the cursor.
	TypeStart TypeErrorKind = iota
	// TypeEnd means the annotation ran into bytes that cannot continue it.
	TypeEnd
	// TypeRecordField wraps a failure in a record type field.
	TypeRecordField
	// TypeTagUnionEnd means a tag union is missing its closing ']'.
	TypeTagUnionEnd
	// TypeParenEnd means a parenthesized annotation is missing its ')'.
	TypeParenEnd
)

// TypeError reports a problem while parsing a type annotation.
type TypeError struct {
	Kind  TypeErrorKind
	Pos   source.Pos
	Inner error
}

func (e *TypeError) Error() string {
	switch e.Kind {
	case TypeStart:
		return fmt.Sprintf("%s: expected a type annotation", e.Pos)
	case TypeEnd:
		return fmt.Sprintf("%s: type annotation ends unexpectedly", e.Pos)
	case TypeRecordField:
		return fmt.Sprintf("%s: problem in record type field: %v", e.Pos, e.Inner)
	case TypeTagUnionEnd:
		return fmt.Sprintf("%s: tag union type is missing its closing ']'", e.Pos)
	default:
		return fmt.Sprintf("%s: parenthesized type is missing its closing ')'", e.Pos)
	}
}

// Unwrap exposes the nested failure.
func (e *TypeError) Unwrap() error { return e.Inner }

// Position returns where the error was detected.
func (e *TypeError) Position() source.Pos { return e.Pos }
