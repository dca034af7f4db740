package lexer

import (
	"fmt"

	"github.com/veld-lang/veld-lang/internal/source"
)

type NumberErrorKind int

const (
	// NumberEnd means the literal ran into a byte that cannot continue it,
	// such as `1x` or a trailing underscore.
	NumberEnd NumberErrorKind = iota
	// NumberNoDigits means a radix prefix had no digits after it.
	NumberNoDigits
	// NumberDoubleDot means a second `.` appeared inside a float.
	NumberDoubleDot
)

// NumberError reports a malformed numeric literal.
type NumberError struct {
	Kind NumberErrorKind
	Pos  source.Pos
}

func (e *NumberError) Error() string {
	switch e.Kind {
	case NumberNoDigits:
		return fmt.Sprintf("%s: number literal has a radix prefix but no digits", e.Pos)
	case NumberDoubleDot:
		return fmt.Sprintf("%s: number literal has more than one decimal point", e.Pos)
	default:
		return fmt.Sprintf("%s: malformed number literal", e.Pos)
	}
}

// Position returns where the error was detected.
func (e *NumberError) Position() source.Pos { return e.Pos }

type StringErrorKind int

const (
	// StringOpen means the opening quote never appeared.
	StringOpen StringErrorKind = iota
	// StringEndless means the closing quote never appeared on the line.
	StringEndless
	// StringBadEscape means a backslash introduced an unknown escape.
	StringBadEscape
	// StringBadUnicode means a `\u(...)` escape held no valid code point.
	StringBadUnicode
)

// StringError reports a malformed string literal.
type StringError struct {
	Kind StringErrorKind
	Pos  source.Pos
}

func (e *StringError) Error() string {
	switch e.Kind {
	case StringEndless:
		return fmt.Sprintf("%s: string literal is missing its closing quote", e.Pos)
	case StringBadEscape:
		return fmt.Sprintf("%s: unknown escape sequence in string literal", e.Pos)
	case StringBadUnicode:
		return fmt.Sprintf("%s: invalid unicode escape in string literal", e.Pos)
	default:
		return fmt.Sprintf("%s: expected a string literal", e.Pos)
	}
}

// Position returns where the error was detected.
func (e *StringError) Position() source.Pos { return e.Pos }

type IdentErrorKind int

const (
	// IdentStart means no identifier starts here.
	IdentStart IdentErrorKind = iota
	// IdentUnderscore means the identifier begins with an underscore,
	// which only patterns allow.
	IdentUnderscore
	// IdentBadPrivateTag means `@` was not followed by an uppercase name.
	IdentBadPrivateTag
	// IdentQualifiedTail means a qualifier chain ended without a final
	// name part, as in `Foo.Bar.`.
	IdentQualifiedTail
)

// IdentError reports a malformed identifier.
type IdentError struct {
	Kind IdentErrorKind
	Pos  source.Pos
}

func (e *IdentError) Error() string {
	switch e.Kind {
	case IdentUnderscore:
		return fmt.Sprintf("%s: names cannot start with an underscore here", e.Pos)
	case IdentBadPrivateTag:
		return fmt.Sprintf("%s: expected an uppercase tag name after '@'", e.Pos)
	case IdentQualifiedTail:
		return fmt.Sprintf("%s: qualified name is missing its final part", e.Pos)
	default:
		return fmt.Sprintf("%s: expected an identifier", e.Pos)
	}
}

// Position returns where the error was detected.
func (e *IdentError) Position() source.Pos { return e.Pos }
