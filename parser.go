package gohocon

// parser is a lookahead buffer over a fully-lexed TokenArray, the same
// shape the teacher uses for its own hand-rolled recursive descent:
// an index into the array plus Peek/Match/Consume primitives,
// generalized here from pointer tokens with string-valued matching to
// value tokens matched by type (and, where needed, by decoded text).
type parser struct {
	name   string
	idx    int
	tokens *TokenArray
}

func newParser(name string, tokens []Token) *parser {
	ta := NewTokenArray(len(tokens))
	for _, t := range tokens {
		ta.Append(t)
	}
	return &parser{name: name, tokens: ta}
}

func (p *parser) consume() {
	p.consumeN(1)
}

func (p *parser) consumeN(count int) {
	p.idx += count
}

func (p *parser) current() (Token, bool) {
	return p.get(p.idx)
}

func (p *parser) get(i int) (Token, bool) {
	if i >= 0 && i < p.tokens.Len() {
		return p.tokens.At(i), true
	}
	return Token{}, false
}

// peekType returns the current token if it has type typ, without
// consuming it.
func (p *parser) peekType(typ TokenType) (Token, bool) {
	return p.peekTypeN(0, typ)
}

// peekTypeN looks shift tokens ahead of the current position.
func (p *parser) peekTypeN(shift int, typ TokenType) (Token, bool) {
	t, ok := p.get(p.idx + shift)
	if ok && t.Typ == typ {
		return t, true
	}
	return Token{}, false
}

// matchType consumes and returns the current token if it has type typ.
func (p *parser) matchType(typ TokenType) (Token, bool) {
	if t, ok := p.peekType(typ); ok {
		p.consume()
		return t, true
	}
	return Token{}, false
}

// peekText looks for a token of the given type whose decoded Text equals
// text, without consuming it. Used for the handful of grammar points that
// key off literal text, such as recognizing the "include" keyword among
// otherwise-ordinary Unquoted tokens.
func (p *parser) peekText(typ TokenType, text string) (Token, bool) {
	t, ok := p.peekType(typ)
	if ok && t.Text == text {
		return t, true
	}
	return Token{}, false
}

func (p *parser) matchText(typ TokenType, text string) (Token, bool) {
	if t, ok := p.peekText(typ, text); ok {
		p.consume()
		return t, true
	}
	return Token{}, false
}

func (p *parser) remaining() int {
	return p.tokens.Len() - p.idx
}

func (p *parser) count() int {
	return p.tokens.Len()
}

// errorf builds a SyntaxError positioned at the current token (or the
// last token, if input is exhausted), the same fallback the teacher's
// Parser.Error uses when it runs out of tokens mid-message.
func (p *parser) errorf(format string, args ...interface{}) error {
	pos := Position{}
	if t, ok := p.current(); ok {
		pos = t.Pos
	} else if p.tokens.Len() > 0 {
		pos = p.tokens.At(p.tokens.Len() - 1).Pos
	}
	return newError(SyntaxError, "parser", pos, format, args...)
}
