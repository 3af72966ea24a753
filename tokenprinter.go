package gohocon

import (
	"fmt"
	"io"
)

// TokenPrinter is a minimal second Reader implementation: it writes a
// flat textual trace of every structural event to W, one line per
// event. It exists to prove the Reader contract is genuinely pluggable
// beyond TreeSink, and is useful on its own for debugging a grammar
// change against a fixture.
type TokenPrinter struct {
	W     io.Writer
	depth int
	err   error
}

// Reader returns the callback set driving this printer.
func (p *TokenPrinter) Reader() *Reader {
	return &Reader{
		ObjStart:    func() bool { return p.line("OBJ_START") },
		ObjEnd:      func() bool { p.depth--; return p.line("OBJ_END") },
		ArrStart:    func() bool { return p.line("ARR_START") },
		ArrEnd:      func() bool { p.depth--; return p.line("ARR_END") },
		ValStart:    func() bool { return p.line("VAL_START") },
		ValEnd:      func() bool { return p.line("VAL_END") },
		KeyValStart: p.keyValStart,
		KeyValEnd:   func() bool { return p.line("KEY_VAL_END") },
		Token:       p.token,
		VarSub:      p.varSub,
	}
}

// Err returns the first write error encountered, if any.
func (p *TokenPrinter) Err() error {
	return p.err
}

func (p *TokenPrinter) line(format string, args ...interface{}) bool {
	if p.err != nil {
		return false
	}
	indent := ""
	for i := 0; i < p.depth; i++ {
		indent += "  "
	}
	_, err := fmt.Fprintf(p.W, indent+format+"\n", args...)
	if err != nil {
		p.err = err
		return false
	}
	if format == "OBJ_START" || format == "ARR_START" {
		p.depth++
	}
	return true
}

func (p *TokenPrinter) keyValStart(keyToks []Token, sep AssignMode) bool {
	return p.line("KEY_VAL_START key=%q sep=%s", flattenKeyText(keyToks), sep)
}

func (p *TokenPrinter) token(tok Token) bool {
	return p.line("TOKEN %s", tok)
}

func (p *TokenPrinter) varSub(pathToks []Token, optional bool) bool {
	return p.line("VAR_SUB path=%q optional=%v", flattenKeyText(pathToks), optional)
}
