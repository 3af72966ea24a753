package gohocon

import "strings"

// frame is one currently-open container on the tree sink's stack. Object
// frames accumulate entries directly; the pending key/assignment/value
// for the entry currently being built live on the frame until key_val_end
// finalizes them. Array frames accumulate elements the same way, without
// a key.
type frame struct {
	isArray bool
	obj     *Object
	arr     *Array

	pendingKey  string
	pendingMode AssignMode
	pendingToks []Token
	// inlineValue holds a nested container's Value once obj_end/arr_end
	// has closed it, overriding pendingToks as the source for the
	// frame's current entry/element.
	inlineValue *Value
	nextIndex   int
}

// TreeSink implements Reader by assembling an Object/Array tree (§4.4).
// Build one with NewTreeSink, pass its Reader to Parse, then call Tree
// once parsing has completed.
type TreeSink struct {
	stack []*frame
	root  *Tree
}

// NewTreeSink returns a tree sink ready to receive events for a single
// parse. A TreeSink must not be reused across parses.
func NewTreeSink() *TreeSink {
	return &TreeSink{}
}

// Reader returns the callback set driving this sink, for use as Parse's
// reader argument.
func (s *TreeSink) Reader() *Reader {
	return &Reader{
		ObjStart:    s.objStart,
		ObjEnd:      s.objEnd,
		ArrStart:    s.arrStart,
		ArrEnd:      s.arrEnd,
		ValStart:    s.valStart,
		ValEnd:      s.valEnd,
		KeyValStart: s.keyValStart,
		KeyValEnd:   s.keyValEnd,
		Token:       s.token,
		VarSub:      s.varSub,
	}
}

// Tree returns the completed, post-processed tree. Valid only after the
// parse that drove this sink has returned successfully.
func (s *TreeSink) Tree() *Tree {
	return s.root
}

func (s *TreeSink) top() *frame {
	return s.stack[len(s.stack)-1]
}

func (s *TreeSink) objStart() bool {
	s.stack = append(s.stack, &frame{obj: NewObject()})
	return true
}

func (s *TreeSink) arrStart() bool {
	s.stack = append(s.stack, &frame{isArray: true, arr: NewArray()})
	return true
}

// closeAndAttach pops the top frame, builds its Value, and either
// attaches it to the new top frame's current entry/element (nested
// container) or, if the stack is now empty, sets it as the tree's root.
func (s *TreeSink) closeAndAttach(v Value, asRoot TreeKind) {
	s.stack = s.stack[:len(s.stack)-1]
	if len(s.stack) == 0 {
		s.root = &Tree{Kind: asRoot}
		if asRoot == TreeObject {
			s.root.Obj = v.Obj
		} else {
			s.root.Arr = v.Arr
		}
		return
	}
	parent := s.top()
	parent.inlineValue = &v
}

func (s *TreeSink) objEnd() bool {
	f := s.top()
	merged := mergeObject(f.obj)
	s.closeAndAttach(ObjectValue(merged), TreeObject)
	return true
}

func (s *TreeSink) arrEnd() bool {
	f := s.top()
	s.closeAndAttach(ArrayValue(f.arr), TreeArray)
	return true
}

func (s *TreeSink) valStart() bool {
	f := s.top()
	f.pendingToks = nil
	f.inlineValue = nil
	return true
}

func (s *TreeSink) valEnd() bool {
	f := s.top()
	v := s.pendingValue(f)
	f.arr.Append(v)
	f.pendingToks = nil
	f.inlineValue = nil
	return true
}

// pendingValue returns the value accumulated for the frame's current
// entry/element: either a nested container closed via closeAndAttach, or
// the buffered token run from a scalar concatenation.
func (s *TreeSink) pendingValue(f *frame) Value {
	if f.inlineValue != nil {
		return *f.inlineValue
	}
	return UnresolvedValue(f.pendingToks)
}

func (s *TreeSink) keyValStart(keyToks []Token, sep AssignMode) bool {
	f := s.top()
	f.pendingKey = flattenKeyText(keyToks)
	f.pendingMode = sep
	f.pendingToks = nil
	f.inlineValue = nil
	return true
}

// keyValEnd finalizes the current entry, expanding a dotted path key
// (`a.b.c`) into nested single-entry objects per §4.4's sugar: the
// assignment mode applies only to the innermost (leaf) entry, the
// synthetic wrapper entries around it are always Assign.
func (s *TreeSink) keyValEnd() bool {
	f := s.top()
	v := s.pendingValue(f)
	segs := splitDottedKey(f.pendingKey)
	idx := f.nextIndex
	f.nextIndex++

	mode := f.pendingMode
	for i := len(segs) - 1; i >= 1; i-- {
		wrapper := NewObject()
		wrapper.Append(segs[i], mode, v, 0)
		v = ObjectValue(wrapper)
		mode = Assign
	}
	f.obj.Append(segs[0], mode, v, idx)
	f.pendingToks = nil
	f.inlineValue = nil
	return true
}

func (s *TreeSink) token(tok Token) bool {
	f := s.top()
	f.pendingToks = append(f.pendingToks, tok)
	return true
}

func (s *TreeSink) varSub(pathToks []Token, optional bool) bool {
	f := s.top()
	marker := Token{Typ: OpenSub, Text: flattenKeyText(pathToks), Pos: firstPos(pathToks)}
	if optional {
		marker.Typ = OpenOptSub
	}
	f.pendingToks = append(f.pendingToks, marker)
	return true
}

func firstPos(toks []Token) Position {
	if len(toks) == 0 {
		return Position{}
	}
	return toks[0].Pos
}

// flattenKeyText reassembles a key-token run's decoded text, used as the
// raw source of a dotted path before splitDottedKey breaks it into
// segments. Each whitespace token is written as a single space, and dots
// inside String tokens are escaped. Whitespace tokens are included so a
// key like `a b` (two Unquoted tokens joined by a space) round-trips as
// a single segment's literal text, matching parse_key's contract that
// whitespace between key tokens is part of the key.
func flattenKeyText(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		switch t.Typ {
		case Ws, WsNewline:
			b.WriteByte(' ')
		case String:
			b.WriteString(escapeDotsForQuotedSegment(t.Text))
		default:
			b.WriteString(t.Text)
		}
	}
	return b.String()
}

// escapeDotsForQuotedSegment protects a quoted key segment's literal
// dots from splitDottedKey, which only splits on unescaped '.'.
func escapeDotsForQuotedSegment(s string) string {
	return strings.ReplaceAll(s, ".", "\\.")
}

// splitDottedKey splits a flattened key's text on unescaped '.',
// unescaping any "\." back to a literal dot within each segment. This
// implements §4.4's path-key sugar (`a.b.c = 1` as `a = { b = { c = 1
// } }`) entirely in the tree sink, resolving the open question of where
// expansion happens (see DESIGN.md).
func splitDottedKey(key string) []string {
	var segs []string
	var cur strings.Builder
	escaped := false
	for _, r := range key {
		if escaped {
			cur.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if r == '.' {
			segs = append(segs, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	segs = append(segs, cur.String())
	return segs
}
