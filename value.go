package gohocon

// AssignMode distinguishes HOCON's two key-value separators: "=" and ":"
// (Assign, which overrides on duplicate keys) from "+=" (Append, which
// extends).
type AssignMode int

const (
	Assign AssignMode = iota
	Append
)

func (m AssignMode) String() string {
	if m == Append {
		return "Append"
	}
	return "Assign"
}

// ValueKind tags which alternative a Value currently holds.
type ValueKind int

const (
	KindUnresolved ValueKind = iota
	KindObject
	KindArray
)

// Value is the core's value variant. The core never resolves scalars or
// substitutions: an Unresolved value is simply the sequence of tokens
// (including whitespace tokens kept for exact reconstruction and
// substitution markers) that made up a concatenation, handed to an
// external resolver.
type Value struct {
	Kind   ValueKind
	Tokens []Token // valid when Kind == KindUnresolved
	Obj    *Object // valid when Kind == KindObject
	Arr    *Array  // valid when Kind == KindArray
}

func UnresolvedValue(toks []Token) Value {
	return Value{Kind: KindUnresolved, Tokens: toks}
}

func ObjectValue(o *Object) Value {
	return Value{Kind: KindObject, Obj: o}
}

func ArrayValue(a *Array) Value {
	return Value{Kind: KindArray, Arr: a}
}

// IsObject/IsArray/IsUnresolved are convenience predicates mirroring the
// variant tag, used throughout the tree sink's merge logic.
func (v Value) IsObject() bool     { return v.Kind == KindObject }
func (v Value) IsArray() bool      { return v.Kind == KindArray }
func (v Value) IsUnresolved() bool { return v.Kind == KindUnresolved }

// ObjectEntry is one key/value pair in an Object's backing sequence. Order
// matters until post-processing completes; OriginalIndex is irrelevant
// afterward (spec data-model invariant).
type ObjectEntry struct {
	Key           string
	OriginalIndex int
	Mode          AssignMode
	Value         Value
}

// Object is a HOCON object: an ordered sequence of entries, not a hash
// map, so duplicate keys can survive until merge time and insertion
// order is preserved for the sort-then-merge pass (§4.4).
type Object struct {
	Entries []ObjectEntry
}

func NewObject() *Object {
	return &Object{}
}

// Append adds an entry to the end of the sequence, the insertion-order
// append a key_val_end event performs in the tree sink.
func (o *Object) Append(key string, mode AssignMode, val Value, originalIndex int) {
	o.Entries = append(o.Entries, ObjectEntry{
		Key:           key,
		OriginalIndex: originalIndex,
		Mode:          mode,
		Value:         val,
	})
}

// Len returns the number of entries currently held (pre- or post-merge).
func (o *Object) Len() int {
	return len(o.Entries)
}

// Array is a HOCON array: an ordered sequence of values.
type Array struct {
	Elems []Value
}

func NewArray() *Array {
	return &Array{}
}

func (a *Array) Append(v Value) {
	a.Elems = append(a.Elems, v)
}

func (a *Array) Len() int {
	return len(a.Elems)
}

// TreeKind tags whether a parsed document's root is an object or array.
type TreeKind int

const (
	TreeObject TreeKind = iota
	TreeArray
)

// Tree is the parser's final output: a tagged root of either an Object
// or an Array.
type Tree struct {
	Kind TreeKind
	Obj  *Object
	Arr  *Array
}
