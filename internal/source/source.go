// Package source provides positions and spans for locating syntax in a
// source buffer. Lines and columns are zero-based; rendering for humans
// adds one to both.
package source

import "fmt"

// Pos identifies a single point in a source buffer.
type Pos struct {
	Line   int
	Column int
}

// String returns a one-based "line:column" rendering of the position.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Before reports whether p comes strictly before other in source order.
func (p Pos) Before(other Pos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Span is a half-open region of source between two positions.
type Span struct {
	Start Pos
	End   Pos
}

// NewSpan constructs a span from its endpoints.
func NewSpan(start, end Pos) Span {
	return Span{Start: start, End: end}
}

// String returns a one-based rendering of the span's start position.
func (s Span) String() string {
	return s.Start.String()
}

// Across returns the smallest span covering both s and other.
func (s Span) Across(other Span) Span {
	merged := s

	if other.Start.Before(merged.Start) {
		merged.Start = other.Start
	}
	if merged.End.Before(other.End) {
		merged.End = other.End
	}

	return merged
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return !other.Start.Before(s.Start) && !s.End.Before(other.End)
}
