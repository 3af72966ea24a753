package gohocon

// Format tags the configuration language a Parse call expects. HOCON is
// the only value currently defined (§6); anything else is
// InvalidArgument so the API has room to grow without a breaking change.
type Format int

const (
	HOCON Format = iota
)

// Parse reads input, lexes and parses it as fmt, and drives reader with
// the resulting structural events (§4.3, §6). It returns nil on success;
// any lexer, grammar, or reader-callback failure is returned as an
// *Error and no partial result is guaranteed valid.
func Parse(input Input, fmt Format, reader *Reader) error {
	return ParseWithOptions(input, fmt, reader, ReadOptions{}, DefaultParseOptions())
}

// ParseWithOptions is Parse with explicit lexer and grammar options.
func ParseWithOptions(input Input, fmt Format, reader *Reader, readOpts ReadOptions, parseOpts ParseOptions) error {
	if fmt != HOCON {
		return newError(InvalidArgument, "gohocon", Position{}, "unsupported format tag %d", fmt)
	}
	if err := reader.validate(); err != nil {
		return err
	}
	if input == nil {
		return newError(InvalidArgument, "gohocon", Position{}, "input must not be nil")
	}

	name := input.name()
	r, err := input.open()
	if err != nil {
		return wrap(err, "gohocon", Position{})
	}

	lx := newLexer(name, r)
	toks, err := lexAll(lx, readOpts)
	if err != nil {
		return wrap(err, "gohocon", Position{})
	}

	p := newParser(name, toks)
	g := newGrammar(p, reader, parseOpts)
	if err := g.run(); err != nil {
		return wrap(err, "gohocon", Position{})
	}
	logf("gohocon", "parsed %s: %d tokens", name, len(toks))
	return nil
}

// ParseString parses data held entirely in memory and returns the
// assembled tree, the common case for tests and embedded configuration.
func ParseString(name string, data string) (*Tree, error) {
	sink := NewTreeSink()
	err := Parse(NewMemInput(name, []byte(data)), HOCON, sink.Reader())
	if err != nil {
		return nil, err
	}
	t := sink.Tree()
	dumpTree("gohocon", t)
	return t, nil
}

// lexAll drains the lexer into a flat token slice, the shape the
// parser's lookahead buffer operates over (§4.3: "a small token
// lookahead buffer"; this module lexes eagerly rather than incrementally
// since HOCON documents are small configuration files, not streamed
// media).
func lexAll(lx *lexer, opts ReadOptions) ([]Token, error) {
	var toks []Token
	for {
		tok, err := lx.readTok(opts)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Typ == Eof {
			return toks, nil
		}
	}
}
