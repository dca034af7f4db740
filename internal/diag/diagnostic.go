package diag

import (
	"errors"
	"fmt"

	"github.com/veld-lang/veld-lang/internal/source"
)

// Stage identifies which phase produced the diagnostic.
type Stage string

const (
	StageTokenizer Stage = "tokenizer"
	StageParser    Stage = "parser"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Diagnostic is one reportable problem, positioned in the source.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Message  string
	Filename string
	Pos      source.Pos

	// Notes holds the chain of nested failures, outermost first, so a
	// record-inside-list error reads from the list inward.
	Notes []string
}

// String renders the diagnostic on one line.
func (d Diagnostic) String() string {
	if d.Filename != "" {
		return fmt.Sprintf("%s: %s: %s: %s", d.Filename, d.Pos, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Message)
}

// Positioned is implemented by every parse and tokenize error that knows
// where it occurred.
type Positioned interface {
	error
	Position() source.Pos
}

// FromParseError converts a parse failure into a diagnostic, walking the
// Unwrap chain to collect the nested context as notes and to find the
// innermost position.
func FromParseError(filename string, err error) Diagnostic {
	d := Diagnostic{
		Stage:    StageParser,
		Severity: SeverityError,
		Message:  err.Error(),
		Filename: filename,
	}

	if pe, ok := err.(Positioned); ok {
		d.Pos = pe.Position()
	}

	for inner := errors.Unwrap(err); inner != nil; inner = errors.Unwrap(inner) {
		d.Notes = append(d.Notes, inner.Error())
		if pe, ok := inner.(Positioned); ok {
			d.Pos = pe.Position()
		}
	}

	return d
}
