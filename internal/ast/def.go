package ast

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/source"
)

// Annotation represents a standalone type annotation, `name : Type`.
type Annotation struct {
	Pat  Pattern
	Type TypeAnnot
	meta
}

// Span returns the annotation span.
func (d *Annotation) Span() source.Span { return d.span }

// NewAnnotation constructs an annotation node.
func NewAnnotation(a *arena.Arena, pat Pattern, typ TypeAnnot, span source.Span) *Annotation {
	return arena.Alloc(a, Annotation{Pat: pat, Type: typ, meta: meta{span: span}})
}

func (*Annotation) defNode() {}

// Alias represents a type alias, `Pair a : [ Pair a a ]`. Vars holds the
// type variables bound on the left side.
type Alias struct {
	Name     string
	NameSpan source.Span
	Vars     []Pattern
	Type     TypeAnnot
	meta
}

// Span returns the alias span.
func (d *Alias) Span() source.Span { return d.span }

// NewAlias constructs a type alias node.
func NewAlias(a *arena.Arena, name string, nameSpan source.Span, vars []Pattern, typ TypeAnnot, span source.Span) *Alias {
	return arena.Alloc(a, Alias{Name: name, NameSpan: nameSpan, Vars: arena.Slice(a, vars), Type: typ, meta: meta{span: span}})
}

func (*Alias) defNode() {}

// Body represents a value definition, `pat = value`.
type Body struct {
	Pat   Pattern
	Value Expr
	meta
}

// Span returns the definition span.
func (d *Body) Span() source.Span { return d.span }

// NewBody constructs a value definition node.
func NewBody(a *arena.Arena, pat Pattern, value Expr, span source.Span) *Body {
	return arena.Alloc(a, Body{Pat: pat, Value: value, meta: meta{span: span}})
}

func (*Body) defNode() {}

// AnnotatedBody merges an annotation with the definition of the same name
// immediately below it. A comment between the two lines is captured on the
// merged node.
type AnnotatedBody struct {
	AnnPat     Pattern
	AnnType    TypeAnnot
	Comment    string
	HasComment bool
	BodyPat    Pattern
	BodyValue  Expr
	meta
}

// Span returns the merged definition span.
func (d *AnnotatedBody) Span() source.Span { return d.span }

// NewAnnotatedBody constructs a merged annotation and body node.
func NewAnnotatedBody(a *arena.Arena, annPat Pattern, annType TypeAnnot, bodyPat Pattern, bodyValue Expr, span source.Span) *AnnotatedBody {
	return arena.Alloc(a, AnnotatedBody{AnnPat: annPat, AnnType: annType, BodyPat: bodyPat, BodyValue: bodyValue, meta: meta{span: span}})
}

func (*AnnotatedBody) defNode() {}
