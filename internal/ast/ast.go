package ast

import "github.com/veld-lang/veld-lang/internal/source"

// Node represents any AST node with an associated source span. Comments and
// blank lines surrounding a node are carried on the node itself rather than
// as wrapper nodes, so consumers that do not care about trivia never see it.
type Node interface {
	Span() source.Span
	SetSpan(source.Span)
	CommentsBefore() []CommentOrNewline
	CommentsAfter() []CommentOrNewline
	AttachBefore([]CommentOrNewline)
	AttachAfter([]CommentOrNewline)
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Pattern represents a pattern node.
type Pattern interface {
	Node
	patternNode()
}

// Def represents a definition node.
type Def interface {
	Node
	defNode()
}

// TypeAnnot represents a type annotation node.
type TypeAnnot interface {
	Node
	typeNode()
}

// meta holds the span and surrounding trivia shared by every node.
type meta struct {
	span   source.Span
	before []CommentOrNewline
	after  []CommentOrNewline
}

// Span returns the node span.
func (m *meta) Span() source.Span { return m.span }

// SetSpan updates the node span.
func (m *meta) SetSpan(span source.Span) { m.span = span }

// CommentsBefore returns the trivia preceding the node.
func (m *meta) CommentsBefore() []CommentOrNewline { return m.before }

// CommentsAfter returns the trivia following the node.
func (m *meta) CommentsAfter() []CommentOrNewline { return m.after }

// AttachBefore records trivia preceding the node. Repeated attachment
// prepends, so the outermost caller's trivia comes first.
func (m *meta) AttachBefore(trivia []CommentOrNewline) {
	if len(trivia) == 0 {
		return
	}
	if len(m.before) == 0 {
		m.before = trivia
		return
	}
	merged := make([]CommentOrNewline, 0, len(trivia)+len(m.before))
	merged = append(merged, trivia...)
	merged = append(merged, m.before...)
	m.before = merged
}

// AttachAfter records trivia following the node.
func (m *meta) AttachAfter(trivia []CommentOrNewline) {
	if len(trivia) == 0 {
		return
	}
	m.after = append(m.after, trivia...)
}

// CommentKind distinguishes the flavors of trivia.
type CommentKind int

const (
	// Newline is a blank line boundary.
	Newline CommentKind = iota
	// LineComment is an ordinary `#` comment, text excludes the marker.
	LineComment
	// DocComment is a `##` documentation comment.
	DocComment
)

// CommentOrNewline is one unit of trivia between tokens.
type CommentOrNewline struct {
	Kind CommentKind
	Text string
}

// NewlineCount reports how many newline entries the trivia run contains.
// Comments sit on their own lines, so this approximates blank separation.
func NewlineCount(trivia []CommentOrNewline) int {
	n := 0
	for _, t := range trivia {
		if t.Kind == Newline {
			n++
		}
	}
	return n
}
