package diag

import (
	"fmt"
	"io"
	"strings"
)

// Formatter renders diagnostics with a source snippet pointing at the
// failure position.
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a formatter writing to out.
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// Format prints one diagnostic, with the offending source line and a caret
// when the source is available.
func (f *Formatter) Format(d Diagnostic, src string) {
	fmt.Fprintf(f.out, "%s\n", d)

	lines := strings.Split(src, "\n")
	if d.Pos.Line >= 0 && d.Pos.Line < len(lines) {
		line := lines[d.Pos.Line]
		fmt.Fprintf(f.out, "  %s\n", line)

		col := d.Pos.Column
		if col > len(line) {
			col = len(line)
		}
		fmt.Fprintf(f.out, "  %s^\n", strings.Repeat(" ", col))
	}

	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  note: %s\n", note)
	}
}
