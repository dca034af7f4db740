package ast

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/source"
)

// NumLit represents a decimal integer literal. Text is the exact source
// slice, including a leading `-` when a negation was folded in, so MinInt64
// survives without an intermediate positive value.
type NumLit struct {
	Text string
	meta
}

// Span returns the literal span.
func (e *NumLit) Span() source.Span { return e.span }

// NewNumLit constructs a decimal integer literal node.
func NewNumLit(a *arena.Arena, text string, span source.Span) *NumLit {
	return arena.Alloc(a, NumLit{Text: text, meta: meta{span: span}})
}

func (*NumLit) exprNode() {}

// FloatLit represents a floating-point literal.
type FloatLit struct {
	Text string
	meta
}

// Span returns the literal span.
func (e *FloatLit) Span() source.Span { return e.span }

// NewFloatLit constructs a float literal node.
func NewFloatLit(a *arena.Arena, text string, span source.Span) *FloatLit {
	return arena.Alloc(a, FloatLit{Text: text, meta: meta{span: span}})
}

func (*FloatLit) exprNode() {}

// NumBase identifies the radix of a non-decimal integer literal.
type NumBase int

const (
	BaseHex NumBase = iota
	BaseOctal
	BaseBinary
)

// NonBase10Lit represents a hex, octal, or binary integer literal. Text
// excludes the `0x`/`0o`/`0b` prefix and any sign; Negative carries the
// sign so negation flips a flag instead of rewriting digits.
type NonBase10Lit struct {
	Text     string
	Base     NumBase
	Negative bool
	meta
}

// Span returns the literal span.
func (e *NonBase10Lit) Span() source.Span { return e.span }

// NewNonBase10Lit constructs a non-decimal integer literal node.
func NewNonBase10Lit(a *arena.Arena, text string, base NumBase, negative bool, span source.Span) *NonBase10Lit {
	return arena.Alloc(a, NonBase10Lit{Text: text, Base: base, Negative: negative, meta: meta{span: span}})
}

func (*NonBase10Lit) exprNode() {}

// StrLit represents a string literal. Value holds the cooked contents with
// escapes resolved.
type StrLit struct {
	Value string
	meta
}

// Span returns the literal span.
func (e *StrLit) Span() source.Span { return e.span }

// NewStrLit constructs a string literal node.
func NewStrLit(a *arena.Arena, value string, span source.Span) *StrLit {
	return arena.Alloc(a, StrLit{Value: value, meta: meta{span: span}})
}

func (*StrLit) exprNode() {}

// Var represents a lowercase identifier reference, optionally qualified by
// a dotted module path like `Json.Decode.field`.
type Var struct {
	Module string
	Name   string
	meta
}

// Span returns the reference span.
func (e *Var) Span() source.Span { return e.span }

// NewVar constructs a variable reference node.
func NewVar(a *arena.Arena, module, name string, span source.Span) *Var {
	return arena.Alloc(a, Var{Module: module, Name: name, meta: meta{span: span}})
}

func (*Var) exprNode() {}

// GlobalTag represents an uppercase tag like `Just`.
type GlobalTag struct {
	Name string
	meta
}

// Span returns the tag span.
func (e *GlobalTag) Span() source.Span { return e.span }

// NewGlobalTag constructs a global tag node.
func NewGlobalTag(a *arena.Arena, name string, span source.Span) *GlobalTag {
	return arena.Alloc(a, GlobalTag{Name: name, meta: meta{span: span}})
}

func (*GlobalTag) exprNode() {}

// PrivateTag represents a module-private tag like `@UserId`. Name includes
// the leading `@`.
type PrivateTag struct {
	Name string
	meta
}

// Span returns the tag span.
func (e *PrivateTag) Span() source.Span { return e.span }

// NewPrivateTag constructs a private tag node.
func NewPrivateTag(a *arena.Arena, name string, span source.Span) *PrivateTag {
	return arena.Alloc(a, PrivateTag{Name: name, meta: meta{span: span}})
}

func (*PrivateTag) exprNode() {}

// ListLit represents a bracketed list literal.
type ListLit struct {
	Items []Expr
	meta
}

// Span returns the list span.
func (e *ListLit) Span() source.Span { return e.span }

// NewListLit constructs a list literal node.
func NewListLit(a *arena.Arena, items []Expr, span source.Span) *ListLit {
	return arena.Alloc(a, ListLit{Items: arena.Slice(a, items), meta: meta{span: span}})
}

func (*ListLit) exprNode() {}

// FieldKind distinguishes the forms a record field can take.
type FieldKind int

const (
	// FieldRequired is `label: value`.
	FieldRequired FieldKind = iota
	// FieldOptional is `label ? default`.
	FieldOptional
	// FieldLabelOnly is a bare `label`, shorthand in expressions and an
	// identifier binding in destructures.
	FieldLabelOnly
	// FieldMalformed is a field the parser could not make sense of.
	FieldMalformed
)

// RecordField represents one field of a record literal.
type RecordField struct {
	Kind  FieldKind
	Label string
	Value Expr
	meta
}

// Span returns the field span.
func (f *RecordField) Span() source.Span { return f.span }

// NewRecordField constructs a record field node.
func NewRecordField(a *arena.Arena, kind FieldKind, label string, value Expr, span source.Span) *RecordField {
	return arena.Alloc(a, RecordField{Kind: kind, Label: label, Value: value, meta: meta{span: span}})
}

func (*RecordField) exprNode() {}

// RecordLit represents a record literal, optionally updating a base record
// as in `{ base & x: 1 }`.
type RecordLit struct {
	Update        Expr
	Fields        []*RecordField
	FinalComments []CommentOrNewline
	meta
}

// Span returns the record span.
func (e *RecordLit) Span() source.Span { return e.span }

// NewRecordLit constructs a record literal node.
func NewRecordLit(a *arena.Arena, update Expr, fields []*RecordField, span source.Span) *RecordLit {
	return arena.Alloc(a, RecordLit{Update: update, Fields: arena.Slice(a, fields), meta: meta{span: span}})
}

func (*RecordLit) exprNode() {}

// Lambda represents a closure like `\x, y -> body`.
type Lambda struct {
	Params []Pattern
	Body   Expr
	meta
}

// Span returns the lambda span.
func (e *Lambda) Span() source.Span { return e.span }

// NewLambda constructs a lambda node.
func NewLambda(a *arena.Arena, params []Pattern, body Expr, span source.Span) *Lambda {
	return arena.Alloc(a, Lambda{Params: arena.Slice(a, params), Body: body, meta: meta{span: span}})
}

func (*Lambda) exprNode() {}

// Apply represents a function application.
type Apply struct {
	Fn    Expr
	Args  []Expr
	Style CallStyle
	meta
}

// Span returns the application span.
func (e *Apply) Span() source.Span { return e.span }

// NewApply constructs an application node.
func NewApply(a *arena.Arena, fn Expr, args []Expr, style CallStyle, span source.Span) *Apply {
	return arena.Alloc(a, Apply{Fn: fn, Args: arena.Slice(a, args), Style: style, meta: meta{span: span}})
}

func (*Apply) exprNode() {}

// BinOp represents one binary operator application. Chains fold rightward,
// so `a + b * c` parses as `a + (b * c)` regardless of which operators
// appear.
type BinOp struct {
	Left   Expr
	Op     Operator
	OpSpan source.Span
	Right  Expr
	meta
}

// Span returns the full operation span.
func (e *BinOp) Span() source.Span { return e.span }

// NewBinOp constructs a binary operation node.
func NewBinOp(a *arena.Arena, left Expr, op Operator, opSpan source.Span, right Expr, span source.Span) *BinOp {
	return arena.Alloc(a, BinOp{Left: left, Op: op, OpSpan: opSpan, Right: right, meta: meta{span: span}})
}

func (*BinOp) exprNode() {}

// UnaryOp represents a prefix operator application.
type UnaryOp struct {
	Op      UnaryOperator
	Operand Expr
	meta
}

// Span returns the operation span.
func (e *UnaryOp) Span() source.Span { return e.span }

// NewUnaryOp constructs a unary operation node.
func NewUnaryOp(a *arena.Arena, op UnaryOperator, operand Expr, span source.Span) *UnaryOp {
	return arena.Alloc(a, UnaryOp{Op: op, Operand: operand, meta: meta{span: span}})
}

func (*UnaryOp) exprNode() {}

// Access represents a field access chain like `rec.x.y` applied to a
// receiver expression.
type Access struct {
	Receiver Expr
	Field    string
	meta
}

// Span returns the access span.
func (e *Access) Span() source.Span { return e.span }

// NewAccess constructs a field access node.
func NewAccess(a *arena.Arena, receiver Expr, field string, span source.Span) *Access {
	return arena.Alloc(a, Access{Receiver: receiver, Field: field, meta: meta{span: span}})
}

func (*Access) exprNode() {}

// AccessorFn represents a standalone accessor like `.field`, a function
// that projects its argument's field.
type AccessorFn struct {
	Field string
	meta
}

// Span returns the accessor span.
func (e *AccessorFn) Span() source.Span { return e.span }

// NewAccessorFn constructs an accessor function node.
func NewAccessorFn(a *arena.Arena, field string, span source.Span) *AccessorFn {
	return arena.Alloc(a, AccessorFn{Field: field, meta: meta{span: span}})
}

func (*AccessorFn) exprNode() {}

// IfBranch is one condition/consequence pair of an if expression.
type IfBranch struct {
	Cond Expr
	Then Expr
}

// If represents a conditional with one or more `else if` continuations and
// a mandatory final else.
type If struct {
	Branches []IfBranch
	Else     Expr
	meta
}

// Span returns the conditional span.
func (e *If) Span() source.Span { return e.span }

// NewIf constructs a conditional node.
func NewIf(a *arena.Arena, branches []IfBranch, elseExpr Expr, span source.Span) *If {
	return arena.Alloc(a, If{Branches: arena.Slice(a, branches), Else: elseExpr, meta: meta{span: span}})
}

func (*If) exprNode() {}

// WhenBranch is one arm of a when expression. Patterns holds the branch
// pattern and any `|` alternatives; Guard is nil when no `if` guard was
// written.
type WhenBranch struct {
	Patterns []Pattern
	Guard    Expr
	Body     Expr
}

// When represents a pattern match expression.
type When struct {
	Cond     Expr
	Branches []WhenBranch
	meta
}

// Span returns the match span.
func (e *When) Span() source.Span { return e.span }

// NewWhen constructs a match node.
func NewWhen(a *arena.Arena, cond Expr, branches []WhenBranch, span source.Span) *When {
	return arena.Alloc(a, When{Cond: cond, Branches: arena.Slice(a, branches), meta: meta{span: span}})
}

func (*When) exprNode() {}

// Defs represents a run of definitions followed by the expression whose
// value the block produces.
type Defs struct {
	Defs []Def
	Ret  Expr
	meta
}

// Span returns the block span.
func (e *Defs) Span() source.Span { return e.span }

// NewDefs constructs a definition block node.
func NewDefs(a *arena.Arena, defs []Def, ret Expr, span source.Span) *Defs {
	return arena.Alloc(a, Defs{Defs: arena.Slice(a, defs), Ret: ret, meta: meta{span: span}})
}

func (*Defs) exprNode() {}

// Backpassing represents `pat <- value` followed by the continuation that
// consumes the bound result.
type Backpassing struct {
	Pat          Pattern
	Value        Expr
	Continuation Expr
	meta
}

// Span returns the backpassing span.
func (e *Backpassing) Span() source.Span { return e.span }

// NewBackpassing constructs a backpassing node.
func NewBackpassing(a *arena.Arena, pat Pattern, value Expr, continuation Expr, span source.Span) *Backpassing {
	return arena.Alloc(a, Backpassing{Pat: pat, Value: value, Continuation: continuation, meta: meta{span: span}})
}

func (*Backpassing) exprNode() {}

// ParensAround preserves explicit parenthesization. The inner expression
// keeps its own span; the wrapper spans the parentheses.
type ParensAround struct {
	Inner Expr
	meta
}

// Span returns the parenthesized span.
func (e *ParensAround) Span() source.Span { return e.span }

// NewParensAround constructs a parenthesization node.
func NewParensAround(a *arena.Arena, inner Expr, span source.Span) *ParensAround {
	return arena.Alloc(a, ParensAround{Inner: inner, meta: meta{span: span}})
}

func (*ParensAround) exprNode() {}

// MalformedIdent represents an identifier the parser recognized as broken
// but recovered past, such as `@ ` with no tag name.
type MalformedIdent struct {
	Text string
	meta
}

// Span returns the malformed span.
func (e *MalformedIdent) Span() source.Span { return e.span }

// NewMalformedIdent constructs a malformed identifier node.
func NewMalformedIdent(a *arena.Arena, text string, span source.Span) *MalformedIdent {
	return arena.Alloc(a, MalformedIdent{Text: text, meta: meta{span: span}})
}

func (*MalformedIdent) exprNode() {}
