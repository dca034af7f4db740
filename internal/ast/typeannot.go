package ast

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/source"
)

// TypeApply represents a named type, possibly qualified and applied to
// arguments, such as `List Str` or `Json.Value`.
type TypeApply struct {
	Module string
	Name   string
	Args   []TypeAnnot
	meta
}

// Span returns the annotation span.
func (t *TypeApply) Span() source.Span { return t.span }

// NewTypeApply constructs a named type node.
func NewTypeApply(a *arena.Arena, module, name string, args []TypeAnnot, span source.Span) *TypeApply {
	return arena.Alloc(a, TypeApply{Module: module, Name: name, Args: arena.Slice(a, args), meta: meta{span: span}})
}

func (*TypeApply) typeNode() {}

// TypeVar represents a lowercase type variable.
type TypeVar struct {
	Name string
	meta
}

// Span returns the annotation span.
func (t *TypeVar) Span() source.Span { return t.span }

// NewTypeVar constructs a type variable node.
func NewTypeVar(a *arena.Arena, name string, span source.Span) *TypeVar {
	return arena.Alloc(a, TypeVar{Name: name, meta: meta{span: span}})
}

func (*TypeVar) typeNode() {}

// TypeWildcard represents `*` in an annotation.
type TypeWildcard struct {
	meta
}

// Span returns the annotation span.
func (t *TypeWildcard) Span() source.Span { return t.span }

// NewTypeWildcard constructs a wildcard type node.
func NewTypeWildcard(a *arena.Arena, span source.Span) *TypeWildcard {
	return arena.Alloc(a, TypeWildcard{meta: meta{span: span}})
}

func (*TypeWildcard) typeNode() {}

// TypeFunction represents `arg1, arg2 -> ret`.
type TypeFunction struct {
	Args []TypeAnnot
	Ret  TypeAnnot
	meta
}

// Span returns the annotation span.
func (t *TypeFunction) Span() source.Span { return t.span }

// NewTypeFunction constructs a function type node.
func NewTypeFunction(a *arena.Arena, args []TypeAnnot, ret TypeAnnot, span source.Span) *TypeFunction {
	return arena.Alloc(a, TypeFunction{Args: arena.Slice(a, args), Ret: ret, meta: meta{span: span}})
}

func (*TypeFunction) typeNode() {}

// TypeRecordField is one field of a record type.
type TypeRecordField struct {
	Label    string
	Optional bool
	Type     TypeAnnot
	meta
}

// Span returns the field span.
func (t *TypeRecordField) Span() source.Span { return t.span }

// NewTypeRecordField constructs a record type field node.
func NewTypeRecordField(a *arena.Arena, label string, optional bool, typ TypeAnnot, span source.Span) *TypeRecordField {
	return arena.Alloc(a, TypeRecordField{Label: label, Optional: optional, Type: typ, meta: meta{span: span}})
}

// TypeRecord represents `{ label : Type, opt ? Type }`, optionally open via
// a row extension variable.
type TypeRecord struct {
	Fields []*TypeRecordField
	Ext    TypeAnnot
	meta
}

// Span returns the annotation span.
func (t *TypeRecord) Span() source.Span { return t.span }

// NewTypeRecord constructs a record type node.
func NewTypeRecord(a *arena.Arena, fields []*TypeRecordField, ext TypeAnnot, span source.Span) *TypeRecord {
	return arena.Alloc(a, TypeRecord{Fields: arena.Slice(a, fields), Ext: ext, meta: meta{span: span}})
}

func (*TypeRecord) typeNode() {}

// TypeTagUnion represents `[ Tag1 Payload, Tag2 ]`, optionally open via an
// extension variable.
type TypeTagUnion struct {
	Tags []TypeAnnot
	Ext  TypeAnnot
	meta
}

// Span returns the annotation span.
func (t *TypeTagUnion) Span() source.Span { return t.span }

// NewTypeTagUnion constructs a tag union type node.
func NewTypeTagUnion(a *arena.Arena, tags []TypeAnnot, ext TypeAnnot, span source.Span) *TypeTagUnion {
	return arena.Alloc(a, TypeTagUnion{Tags: arena.Slice(a, tags), Ext: ext, meta: meta{span: span}})
}

func (*TypeTagUnion) typeNode() {}

// TypeParens preserves explicit parenthesization in an annotation.
type TypeParens struct {
	Inner TypeAnnot
	meta
}

// Span returns the annotation span.
func (t *TypeParens) Span() source.Span { return t.span }

// NewTypeParens constructs a parenthesized type node.
func NewTypeParens(a *arena.Arena, inner TypeAnnot, span source.Span) *TypeParens {
	return arena.Alloc(a, TypeParens{Inner: inner, meta: meta{span: span}})
}

func (*TypeParens) typeNode() {}

// TypeMalformed records annotation text the parser could not interpret.
type TypeMalformed struct {
	Text string
	meta
}

// Span returns the annotation span.
func (t *TypeMalformed) Span() source.Span { return t.span }

// NewTypeMalformed constructs a malformed type node.
func NewTypeMalformed(a *arena.Arena, text string, span source.Span) *TypeMalformed {
	return arena.Alloc(a, TypeMalformed{Text: text, meta: meta{span: span}})
}

func (*TypeMalformed) typeNode() {}
