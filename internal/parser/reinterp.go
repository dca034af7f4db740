package parser

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
)

// exprToPattern reinterprets an already-parsed expression as a pattern.
// The chain engine calls this when a definition operator reveals that what
// looked like an expression was actually the left side of a definition.
// Expressions with no pattern reading return a MalformedPattern failure.
func exprToPattern(a *arena.Arena, e ast.Expr) (ast.Pattern, *ExprError) {
	switch n := e.(type) {
	case *ast.Var:
		if n.Module == "" {
			return ast.NewPatternIdent(a, n.Name, n.Span()), nil
		}
		return ast.NewPatternQualified(a, n.Module, n.Name, n.Span()), nil

	case *ast.GlobalTag:
		return ast.NewPatternGlobalTag(a, n.Name, n.Span()), nil

	case *ast.PrivateTag:
		return ast.NewPatternPrivateTag(a, n.Name, n.Span()), nil

	case *ast.Apply:
		fn, err := exprToPattern(a, n.Fn)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Pattern, 0, len(n.Args))
		for _, arg := range n.Args {
			pat, err := exprToPattern(a, arg)
			if err != nil {
				return nil, err
			}
			args = append(args, pat)
		}
		return ast.NewPatternApply(a, fn, args, n.Span()), nil

	case *ast.RecordLit:
		if n.Update != nil {
			return nil, &ExprError{Kind: ExprMalformedPattern, Pos: n.Span().Start}
		}
		fields := make([]ast.Pattern, 0, len(n.Fields))
		for _, field := range n.Fields {
			pat, err := fieldToPattern(a, field)
			if err != nil {
				return nil, err
			}
			fields = append(fields, pat)
		}
		return ast.NewPatternRecord(a, fields, n.Span()), nil

	case *ast.ParensAround:
		return exprToPattern(a, n.Inner)

	case *ast.NumLit:
		return ast.NewPatternNumLit(a, n.Text, n.Span()), nil

	case *ast.FloatLit:
		return ast.NewPatternFloatLit(a, n.Text, n.Span()), nil

	case *ast.NonBase10Lit:
		return ast.NewPatternNonBase10Lit(a, n.Text, n.Base, n.Negative, n.Span()), nil

	case *ast.StrLit:
		return ast.NewPatternStrLit(a, n.Value, n.Span()), nil

	case *ast.MalformedIdent:
		return ast.NewPatternMalformed(a, n.Text, n.Span()), nil

	default:
		// BinOp, If, When, Lambda, Access, AccessorFn, UnaryOp, lists,
		// and blocks have no pattern reading.
		return nil, &ExprError{Kind: ExprMalformedPattern, Pos: e.Span().Start}
	}
}

// fieldToPattern reinterprets one record literal field as a destructure
// field. A bare label becomes an identifier binding.
func fieldToPattern(a *arena.Arena, field *ast.RecordField) (ast.Pattern, *ExprError) {
	switch field.Kind {
	case ast.FieldLabelOnly:
		return ast.NewPatternIdent(a, field.Label, field.Span()), nil

	case ast.FieldRequired:
		inner, err := exprToPattern(a, field.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewPatternRequiredField(a, field.Label, inner, field.Span()), nil

	case ast.FieldOptional:
		return ast.NewPatternOptionalField(a, field.Label, field.Value, field.Span()), nil

	default:
		return ast.NewPatternMalformed(a, field.Label, field.Span()), nil
	}
}
