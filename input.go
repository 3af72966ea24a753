package gohocon

import (
	"bytes"
	"io"
)

// Input is a source of HOCON bytes. It is the tagged union the lexer's
// name/reader pair is resolved from: a FILE-backed input or an in-memory
// one. Modeled as an interface (rather than a union struct) the way the
// teacher resolves a template's backing store through an interface
// rather than a tagged struct — see the loader abstraction this package
// replaces.
type Input interface {
	// name returns a label used only for error messages (a path, or
	// "<mem>" for in-memory input).
	name() string
	// open returns a reader positioned at the start of the input. Called
	// exactly once per parse.
	open() (io.Reader, error)
}

// MemInput is an in-memory HOCON source, typically used for test fixtures
// or config embedded in a binary.
type MemInput struct {
	Name string
	Data []byte
}

// NewMemInput wraps data as an Input. name is used only in error messages;
// an empty name is reported as "<mem>".
func NewMemInput(name string, data []byte) *MemInput {
	return &MemInput{Name: name, Data: data}
}

func (m *MemInput) name() string {
	if m.Name == "" {
		return "<mem>"
	}
	return m.Name
}

func (m *MemInput) open() (io.Reader, error) {
	return bytes.NewReader(m.Data), nil
}

// ReaderInput wraps an already-open io.Reader (a file handle, a network
// connection, anything streamable) as an Input. The reader is consumed
// directly; this package never seeks or rewinds it.
type ReaderInput struct {
	Name string
	R    io.Reader
}

// NewReaderInput wraps r as an Input. name is used only in error messages.
func NewReaderInput(name string, r io.Reader) *ReaderInput {
	return &ReaderInput{Name: name, R: r}
}

func (r *ReaderInput) name() string {
	if r.Name == "" {
		return "<reader>"
	}
	return r.Name
}

func (r *ReaderInput) open() (io.Reader, error) {
	if r.R == nil {
		return nil, newError(InvalidArgument, "input", Position{}, "ReaderInput.R must not be nil")
	}
	return r.R, nil
}
