package gohocon

import (
	"fmt"
)

// Kind classifies an Error into the taxonomy this parser reports (§7 of
// the design: malformed input, reader misbehavior, and API misuse are
// all distinguishable by Kind).
type Kind int

const (
	// InvalidArgument covers bad format tags, nil reader callbacks, and
	// other API misuse.
	InvalidArgument Kind = iota
	// OutOfMemory covers allocation failure.
	OutOfMemory
	// SyntaxError covers any malformed token or grammar violation.
	SyntaxError
	// InvalidEncoding covers malformed UTF-8 input.
	InvalidEncoding
	// IoError covers failures of the underlying read primitive.
	IoError
	// ReaderAborted is returned when a Reader callback returns false.
	ReaderAborted
	// Unimplemented is returned for include directives, which this core
	// does not resolve. Exponent notation and unknown escapes are not
	// reported with this kind.
	Unimplemented
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case OutOfMemory:
		return "OutOfMemory"
	case SyntaxError:
		return "SyntaxError"
	case InvalidEncoding:
		return "InvalidEncoding"
	case IoError:
		return "IoError"
	case ReaderAborted:
		return "ReaderAborted"
	case Unimplemented:
		return "Unimplemented"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned by every exported entry point
// in this package. Sender should always be set ("lexer", "parser",
// "treesink") so a message can be traced back to the subsystem that
// raised it.
type Error struct {
	Kind     Kind
	Filename string
	Pos      Position
	Sender   string
	Msg      string
	cause    error
}

// Error returns a nicely formatted error string.
func (e *Error) Error() string {
	s := fmt.Sprintf("[%s", e.Kind)
	if e.Sender != "" {
		s += " in " + e.Sender
	}
	if e.Filename != "" {
		s += " " + e.Filename
	}
	if !e.Pos.IsZero() {
		s += fmt.Sprintf(" | %s", e.Pos)
	}
	s += "] " + e.Msg
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

// Unwrap exposes the wrapped cause, if any, so errors.Is/errors.As from
// the standard library also work against this type.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, &Error{Kind: SyntaxError}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, sender string, pos Position, format string, args ...interface{}) *Error {
	return &Error{
		Kind:   kind,
		Sender: sender,
		Pos:    pos,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// wrap fills in the sender and position of err as it crosses a
// subsystem boundary where they are not yet set, and re-raises it as an
// *Error (kind IoError, with err as the cause) if it wasn't already one.
// Every layer calls wrap on its way out, so the top-level Parse call
// always returns an *Error and the caller never sees a partial result.
func wrap(err error, sender string, pos Position) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		if e.Sender == "" {
			e.Sender = sender
		}
		if e.Pos.IsZero() {
			e.Pos = pos
		}
		return e
	}
	return &Error{
		Kind:   IoError,
		Sender: sender,
		Pos:    pos,
		Msg:    err.Error(),
		cause:  err,
	}
}
