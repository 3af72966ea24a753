package gohocon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTokens() []Token {
	return []Token{
		{Typ: Unquoted, Text: "a"},
		{Typ: Equal},
		{Typ: Number, Text: "1"},
		{Typ: Eof},
	}
}

func TestParserPeekAndConsume(t *testing.T) {
	p := newParser("t", sampleTokens())

	tok, ok := p.peekType(Unquoted)
	require.True(t, ok)
	assert.Equal(t, "a", tok.Text)

	_, ok = p.peekType(Equal)
	assert.False(t, ok, "peekType must not match the wrong type")

	tok, ok = p.matchType(Unquoted)
	require.True(t, ok)
	assert.Equal(t, "a", tok.Text)
	assert.Equal(t, 1, p.idx)
}

func TestParserPeekTypeN(t *testing.T) {
	p := newParser("t", sampleTokens())
	tok, ok := p.peekTypeN(2, Number)
	require.True(t, ok)
	assert.Equal(t, "1", tok.Text)
}

func TestParserMatchTextAndPeekText(t *testing.T) {
	toks := []Token{{Typ: Unquoted, Text: "include"}, {Typ: Eof}}
	p := newParser("t", toks)

	_, ok := p.peekText(Unquoted, "exclude")
	assert.False(t, ok)

	tok, ok := p.matchText(Unquoted, "include")
	require.True(t, ok)
	assert.Equal(t, "include", tok.Text)
	assert.Equal(t, 1, p.idx)
}

func TestParserRemainingAndCount(t *testing.T) {
	p := newParser("t", sampleTokens())
	assert.Equal(t, 4, p.count())
	assert.Equal(t, 4, p.remaining())
	p.consumeN(2)
	assert.Equal(t, 2, p.remaining())
}

func TestParserGetOutOfRange(t *testing.T) {
	p := newParser("t", sampleTokens())
	_, ok := p.get(100)
	assert.False(t, ok)
}

func TestParserErrorfUsesCurrentTokenPosition(t *testing.T) {
	toks := []Token{{Typ: Unquoted, Text: "a", Pos: Position{2, 3}}}
	p := newParser("t", toks)
	err := p.errorf("boom")
	e, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, Position{2, 3}, e.Pos)
	assert.Equal(t, SyntaxError, e.Kind)
}

func TestParserErrorfFallsBackToLastTokenAtEOF(t *testing.T) {
	toks := []Token{{Typ: Eof, Pos: Position{5, 1}}}
	p := newParser("t", toks)
	p.consume()
	err := p.errorf("boom")
	e, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, Position{5, 1}, e.Pos)
}
