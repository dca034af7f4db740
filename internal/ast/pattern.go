package ast

import (
	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/source"
)

// PatternIdent binds a lowercase name.
type PatternIdent struct {
	Name string
	meta
}

// Span returns the pattern span.
func (p *PatternIdent) Span() source.Span { return p.span }

// NewPatternIdent constructs an identifier pattern node.
func NewPatternIdent(a *arena.Arena, name string, span source.Span) *PatternIdent {
	return arena.Alloc(a, PatternIdent{Name: name, meta: meta{span: span}})
}

func (*PatternIdent) patternNode() {}

// PatternQualified is a qualified reference appearing in pattern position.
// It never binds; it only matches the named value.
type PatternQualified struct {
	Module string
	Name   string
	meta
}

// Span returns the pattern span.
func (p *PatternQualified) Span() source.Span { return p.span }

// NewPatternQualified constructs a qualified reference pattern node.
func NewPatternQualified(a *arena.Arena, module, name string, span source.Span) *PatternQualified {
	return arena.Alloc(a, PatternQualified{Module: module, Name: name, meta: meta{span: span}})
}

func (*PatternQualified) patternNode() {}

// PatternGlobalTag matches an uppercase tag.
type PatternGlobalTag struct {
	Name string
	meta
}

// Span returns the pattern span.
func (p *PatternGlobalTag) Span() source.Span { return p.span }

// NewPatternGlobalTag constructs a global tag pattern node.
func NewPatternGlobalTag(a *arena.Arena, name string, span source.Span) *PatternGlobalTag {
	return arena.Alloc(a, PatternGlobalTag{Name: name, meta: meta{span: span}})
}

func (*PatternGlobalTag) patternNode() {}

// PatternPrivateTag matches a private tag. Name includes the leading `@`.
type PatternPrivateTag struct {
	Name string
	meta
}

// Span returns the pattern span.
func (p *PatternPrivateTag) Span() source.Span { return p.span }

// NewPatternPrivateTag constructs a private tag pattern node.
func NewPatternPrivateTag(a *arena.Arena, name string, span source.Span) *PatternPrivateTag {
	return arena.Alloc(a, PatternPrivateTag{Name: name, meta: meta{span: span}})
}

func (*PatternPrivateTag) patternNode() {}

// PatternApply matches a tag applied to argument patterns, `Just x`.
type PatternApply struct {
	Fn   Pattern
	Args []Pattern
	meta
}

// Span returns the pattern span.
func (p *PatternApply) Span() source.Span { return p.span }

// NewPatternApply constructs an applied pattern node.
func NewPatternApply(a *arena.Arena, fn Pattern, args []Pattern, span source.Span) *PatternApply {
	return arena.Alloc(a, PatternApply{Fn: fn, Args: arena.Slice(a, args), meta: meta{span: span}})
}

func (*PatternApply) patternNode() {}

// PatternRecord destructures a record, `{ x, y: inner }`.
type PatternRecord struct {
	Fields []Pattern
	meta
}

// Span returns the pattern span.
func (p *PatternRecord) Span() source.Span { return p.span }

// NewPatternRecord constructs a record destructure node.
func NewPatternRecord(a *arena.Arena, fields []Pattern, span source.Span) *PatternRecord {
	return arena.Alloc(a, PatternRecord{Fields: arena.Slice(a, fields), meta: meta{span: span}})
}

func (*PatternRecord) patternNode() {}

// PatternRequiredField destructures a labeled field into a sub-pattern.
type PatternRequiredField struct {
	Label string
	Pat   Pattern
	meta
}

// Span returns the pattern span.
func (p *PatternRequiredField) Span() source.Span { return p.span }

// NewPatternRequiredField constructs a labeled field destructure node.
func NewPatternRequiredField(a *arena.Arena, label string, pat Pattern, span source.Span) *PatternRequiredField {
	return arena.Alloc(a, PatternRequiredField{Label: label, Pat: pat, meta: meta{span: span}})
}

func (*PatternRequiredField) patternNode() {}

// PatternOptionalField destructures a field with a default expression.
type PatternOptionalField struct {
	Label   string
	Default Expr
	meta
}

// Span returns the pattern span.
func (p *PatternOptionalField) Span() source.Span { return p.span }

// NewPatternOptionalField constructs an optional field destructure node.
func NewPatternOptionalField(a *arena.Arena, label string, def Expr, span source.Span) *PatternOptionalField {
	return arena.Alloc(a, PatternOptionalField{Label: label, Default: def, meta: meta{span: span}})
}

func (*PatternOptionalField) patternNode() {}

// PatternNumLit matches a decimal integer literal.
type PatternNumLit struct {
	Text string
	meta
}

// Span returns the pattern span.
func (p *PatternNumLit) Span() source.Span { return p.span }

// NewPatternNumLit constructs an integer literal pattern node.
func NewPatternNumLit(a *arena.Arena, text string, span source.Span) *PatternNumLit {
	return arena.Alloc(a, PatternNumLit{Text: text, meta: meta{span: span}})
}

func (*PatternNumLit) patternNode() {}

// PatternFloatLit matches a float literal.
type PatternFloatLit struct {
	Text string
	meta
}

// Span returns the pattern span.
func (p *PatternFloatLit) Span() source.Span { return p.span }

// NewPatternFloatLit constructs a float literal pattern node.
func NewPatternFloatLit(a *arena.Arena, text string, span source.Span) *PatternFloatLit {
	return arena.Alloc(a, PatternFloatLit{Text: text, meta: meta{span: span}})
}

func (*PatternFloatLit) patternNode() {}

// PatternNonBase10Lit matches a hex, octal, or binary literal.
type PatternNonBase10Lit struct {
	Text     string
	Base     NumBase
	Negative bool
	meta
}

// Span returns the pattern span.
func (p *PatternNonBase10Lit) Span() source.Span { return p.span }

// NewPatternNonBase10Lit constructs a non-decimal literal pattern node.
func NewPatternNonBase10Lit(a *arena.Arena, text string, base NumBase, negative bool, span source.Span) *PatternNonBase10Lit {
	return arena.Alloc(a, PatternNonBase10Lit{Text: text, Base: base, Negative: negative, meta: meta{span: span}})
}

func (*PatternNonBase10Lit) patternNode() {}

// PatternStrLit matches a string literal.
type PatternStrLit struct {
	Value string
	meta
}

// Span returns the pattern span.
func (p *PatternStrLit) Span() source.Span { return p.span }

// NewPatternStrLit constructs a string literal pattern node.
func NewPatternStrLit(a *arena.Arena, value string, span source.Span) *PatternStrLit {
	return arena.Alloc(a, PatternStrLit{Value: value, meta: meta{span: span}})
}

func (*PatternStrLit) patternNode() {}

// PatternUnderscore matches anything without binding. Name holds any
// trailing identifier text, as in `_unused`.
type PatternUnderscore struct {
	Name string
	meta
}

// Span returns the pattern span.
func (p *PatternUnderscore) Span() source.Span { return p.span }

// NewPatternUnderscore constructs a wildcard pattern node.
func NewPatternUnderscore(a *arena.Arena, name string, span source.Span) *PatternUnderscore {
	return arena.Alloc(a, PatternUnderscore{Name: name, meta: meta{span: span}})
}

func (*PatternUnderscore) patternNode() {}

// PatternMalformed records pattern text the parser could not interpret.
type PatternMalformed struct {
	Text string
	meta
}

// Span returns the pattern span.
func (p *PatternMalformed) Span() source.Span { return p.span }

// NewPatternMalformed constructs a malformed pattern node.
func NewPatternMalformed(a *arena.Arena, text string, span source.Span) *PatternMalformed {
	return arena.Alloc(a, PatternMalformed{Text: text, meta: meta{span: span}})
}

func (*PatternMalformed) patternNode() {}
