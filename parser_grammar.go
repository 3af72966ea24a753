package gohocon

// ParseOptions configures grammar leniencies and safety limits that
// spec.md leaves as either an explicit knob or an open gap (§9).
type ParseOptions struct {
	// AllowEmptyValue permits a leading comma in a value position (an
	// empty first element before the separator). Defaults to true via
	// DefaultParseOptions; spec.md's source hard-codes this to true, but
	// leaves whether it should be user-facing as an open question this
	// module resolves by exposing it.
	AllowEmptyValue bool
	// MaxNestingDepth bounds object/array recursion depth. Zero means
	// use DefaultMaxNestingDepth. Closes the unbounded-recursion gap
	// spec.md §5 flags.
	MaxNestingDepth int
}

// DefaultMaxNestingDepth is used when ParseOptions.MaxNestingDepth is 0.
const DefaultMaxNestingDepth = 500

// DefaultParseOptions returns the spec's historical defaults.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{AllowEmptyValue: true, MaxNestingDepth: DefaultMaxNestingDepth}
}

// grammar drives a parser's token array against a Reader, implementing
// spec.md §4.3. It holds no state beyond what parser and the recursion
// stack already carry; depth is threaded explicitly rather than kept as
// a field so the zero-depth top-level call reads plainly.
type grammar struct {
	p      *parser
	r      *Reader
	opts   ParseOptions
	maxDep int
}

func newGrammar(p *parser, r *Reader, opts ParseOptions) *grammar {
	maxDep := opts.MaxNestingDepth
	if maxDep == 0 {
		maxDep = DefaultMaxNestingDepth
	}
	return &grammar{p: p, r: r, opts: opts, maxDep: maxDep}
}

// run implements the top-level grammar: optional root brace/square,
// object or array body, matching closer, trailing Eof.
func (g *grammar) run() error {
	g.skipWs()
	hadOpener := false
	opener := OpenBrace
	if _, ok := g.p.peekType(OpenBrace); ok {
		hadOpener = true
		g.p.consume()
	} else if _, ok := g.p.peekType(OpenSquare); ok {
		hadOpener = true
		opener = OpenSquare
		g.p.consume()
	}

	if opener == OpenSquare {
		if err := g.parseArrayBody(1); err != nil {
			return err
		}
	} else {
		if err := g.parseObjectBody(1); err != nil {
			return err
		}
	}

	if hadOpener {
		closer := CloseBrace
		if opener == OpenSquare {
			closer = CloseSquare
		}
		g.skipWs()
		if _, ok := g.p.matchType(closer); !ok {
			return g.p.errorf("expected closing %s", closer)
		}
	}

	g.skipWs()
	if _, ok := g.p.peekType(Eof); !ok {
		return g.p.errorf("unexpected trailing input")
	}
	return nil
}

// skipWs discards any run of leading whitespace/comment tokens without
// emitting them; used only ahead of structural decisions (root opener,
// closers, Eof), never inside a value where whitespace must be
// preserved for concatenation.
func (g *grammar) skipWs() {
	for {
		t, ok := g.p.current()
		if !ok || !t.Typ.IsWhitespace() {
			return
		}
		g.p.consume()
	}
}

// parseObjectBody implements spec.md §4.3's object-body loop: the
// caller has already consumed any opening '{' (or none, for an
// implicit root) and will consume the matching '}' itself.
func (g *grammar) parseObjectBody(depth int) error {
	if depth > g.maxDep {
		return g.p.errorf("nesting too deep")
	}
	if !g.r.ObjStart() {
		return g.readerAborted()
	}
	for {
		g.skipWs()
		if _, ok := g.p.peekType(CloseBrace); ok {
			break
		}
		if _, ok := g.p.peekType(Eof); ok {
			break
		}
		if _, ok := g.p.peekText(Unquoted, "include"); ok {
			return newError(Unimplemented, "parser", g.curPos(), "include directives are not implemented")
		}

		keyToks, err := g.parseKey()
		if err != nil {
			return err
		}
		sep, err := g.parseKvSep()
		if err != nil {
			return err
		}
		if !g.r.KeyValStart(keyToks, sep) {
			return g.readerAborted()
		}
		if err := g.parseValue(depth); err != nil {
			return err
		}
		if !g.r.KeyValEnd() {
			return g.readerAborted()
		}
	}
	if !g.r.ObjEnd() {
		return g.readerAborted()
	}
	return nil
}

// parseArrayBody implements spec.md §4.3's array body: analogous to the
// object body but with val_start/val_end bracketing bare elements.
func (g *grammar) parseArrayBody(depth int) error {
	if depth > g.maxDep {
		return g.p.errorf("nesting too deep")
	}
	if !g.r.ArrStart() {
		return g.readerAborted()
	}
	for {
		g.skipWs()
		if _, ok := g.p.peekType(CloseSquare); ok {
			break
		}
		if _, ok := g.p.peekType(Eof); ok {
			break
		}
		if !g.r.ValStart() {
			return g.readerAborted()
		}
		if err := g.parseValue(depth); err != nil {
			return err
		}
		if !g.r.ValEnd() {
			return g.readerAborted()
		}
	}
	if !g.r.ArrEnd() {
		return g.readerAborted()
	}
	return nil
}

// parseKey implements spec.md §4.3's parse_key: a whitespace-skipped,
// whitespace-preserving run of key-shaped tokens. May return empty.
// Also used to read a substitution's path expression (§4.3's parse_value
// reuses parse_key for that purpose).
func (g *grammar) parseKey() ([]Token, error) {
	out := NewTokenArray(4)
	for {
		t, ok := g.p.current()
		if !ok {
			break
		}
		if t.Typ.IsKeyToken() {
			out.Append(t)
			g.p.consume()
			continue
		}
		if t.Typ == Comment {
			return nil, g.p.errorf("comment not allowed inside a key")
		}
		if t.Typ == Ws || t.Typ == WsNewline {
			if out.Len() == 0 {
				// Leading whitespace is skipped, not kept in the key.
				g.p.consume()
				continue
			}
			// Only keep this whitespace if a key token follows it; a
			// trailing run belongs to parse_kv_sep, not the key.
			nt, ok := g.peekNextSignificant(1)
			if ok && nt.Typ == Comment {
				return nil, g.p.errorf("comment not allowed inside a key")
			}
			if ok && nt.Typ.IsKeyToken() {
				out.Append(t)
				g.p.consume()
				continue
			}
			break
		}
		break
	}
	return out.Clone(), nil
}

// peekNextSignificant scans forward from shift tokens ahead, skipping
// further whitespace, and returns the first non-whitespace token found.
func (g *grammar) peekNextSignificant(shift int) (Token, bool) {
	for i := shift; ; i++ {
		t, ok := g.p.get(g.p.idx + i)
		if !ok {
			return Token{}, false
		}
		if !t.Typ.IsWhitespace() {
			return t, true
		}
	}
}

// parseKvSep implements spec.md §4.3's parse_kv_sep.
func (g *grammar) parseKvSep() (AssignMode, error) {
	g.skipWs()
	if _, ok := g.p.matchType(Equal); ok {
		return Assign, nil
	}
	if _, ok := g.p.matchType(Colon); ok {
		return Assign, nil
	}
	if _, ok := g.p.matchType(PlusEqual); ok {
		return Append, nil
	}
	if _, ok := g.p.peekType(OpenBrace); ok {
		return Assign, nil
	}
	return Assign, g.p.errorf("expected key-value separator")
}

// parseValue implements spec.md §4.3's parse_value, the subtlest
// routine: a sequence of one or more elements, possibly concatenated
// across buffered whitespace, terminated by an explicit comma, an
// implicit newline, or a closer.
func (g *grammar) parseValue(depth int) error {
	// Skip same-line whitespace between the separator and the first
	// element.
	for {
		t, ok := g.p.current()
		if !ok || t.Typ != Ws {
			break
		}
		g.p.consume()
	}
	first := true
	for {
		t, ok := g.p.current()
		if !ok {
			break
		}

		if t.Typ == Comma && first {
			if !g.opts.AllowEmptyValue {
				return g.p.errorf("empty value not allowed")
			}
			// An empty element: consume the comma as its separator here
			// so the enclosing loop simply sees the next element start.
			g.p.consume()
			return nil
		}

		switch {
		case t.Typ.IsKeyToken():
			if !g.r.Token(t) {
				return g.readerAborted()
			}
			g.p.consume()
		case t.Typ == OpenSub || t.Typ == OpenOptSub:
			optional := t.Typ == OpenOptSub
			g.p.consume()
			pathToks, err := g.parseKey()
			if err != nil {
				return err
			}
			if !g.r.VarSub(pathToks, optional) {
				return g.readerAborted()
			}
			if _, ok := g.p.matchType(CloseBrace); !ok {
				return g.p.errorf("expected '}' to close substitution")
			}
		case t.Typ == OpenBrace:
			g.p.consume()
			if err := g.parseObjectBody(depth + 1); err != nil {
				return err
			}
			if _, ok := g.p.matchType(CloseBrace); !ok {
				return g.p.errorf("expected '}' to close object")
			}
		case t.Typ == OpenSquare:
			g.p.consume()
			if err := g.parseArrayBody(depth + 1); err != nil {
				return err
			}
			if _, ok := g.p.matchType(CloseSquare); !ok {
				return g.p.errorf("expected ']' to close array")
			}
		default:
			// Value is complete: punctuation/closer/Eof not handled above.
			return nil
		}
		first = false

		bufWs, sawNewline, sawComment := g.accumWhitespace()
		nt, ok := g.p.current()
		if ok && nt.Typ == Comma {
			g.p.consume()
			return nil
		}
		if sawNewline {
			return nil
		}
		continues := ok && (nt.Typ.IsKeyToken() || nt.Typ == OpenSub || nt.Typ == OpenOptSub || nt.Typ == OpenBrace || nt.Typ == OpenSquare)
		if !continues {
			// The value is already complete (a closer or Eof follows): a
			// trailing comment here is just a trailing comment, not a
			// comment "inside" a concatenation.
			return nil
		}
		if sawComment {
			return g.p.errorf("comment not allowed inside a value concatenation")
		}
		// Concatenation continues: emit the buffered whitespace as part
		// of the ongoing value so a sink can rejoin the original text,
		// then loop to consume the next element.
		for _, w := range bufWs {
			if !g.r.Token(w) {
				return g.readerAborted()
			}
		}
	}
	return nil
}

// accumWhitespace reads and buffers a maximal run of Ws/WsNewline/
// Comment tokens, reporting whether any WsNewline or Comment was seen.
// Whether a seen comment is actually an error depends on what follows
// the run (decided by the caller): a comment is only forbidden when
// concatenation genuinely continues past it, not when it merely
// trails a value that was already ending.
func (g *grammar) accumWhitespace() ([]Token, bool, bool) {
	buf := NewTokenArray(2)
	sawNewline := false
	sawComment := false
	for {
		t, ok := g.p.current()
		if !ok || !t.Typ.IsWhitespace() {
			break
		}
		if t.Typ == WsNewline {
			sawNewline = true
		}
		if t.Typ == Comment {
			sawComment = true
		}
		buf.Append(t)
		g.p.consume()
	}
	return buf.Clone(), sawNewline, sawComment
}

func (g *grammar) readerAborted() error {
	return newError(ReaderAborted, "parser", g.curPos(), "reader callback returned failure")
}

func (g *grammar) curPos() Position {
	if t, ok := g.p.current(); ok {
		return t.Pos
	}
	return Position{}
}
