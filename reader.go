package gohocon

// Reader is the parser's event sink (§6). Each field is a callback the
// caller supplies; the parser calls them in strict source order as it
// recognizes structure. Every callback returns false to abort the parse
// immediately with ReaderAborted — there is no partial result on that
// path, matching the propagation policy in §7.
//
// Ownership of KeyValStart's key token slice, Token's token, and VarSub's
// path token slice passes to the Reader on each call: once a callback
// returns, the parser never touches that memory again.
type Reader struct {
	ObjStart    func() bool
	ObjEnd      func() bool
	ArrStart    func() bool
	ArrEnd      func() bool
	ValStart    func() bool
	ValEnd      func() bool
	KeyValStart func(keyToks []Token, sep AssignMode) bool
	KeyValEnd   func() bool
	Token       func(tok Token) bool
	VarSub      func(pathToks []Token, optional bool) bool
}

// validate reports InvalidArgument if any callback is nil, matching
// spec's "Any callback pointer that is null at parse-init time causes
// InvalidArgument."
func (r *Reader) validate() error {
	if r == nil {
		return newError(InvalidArgument, "parser", Position{}, "reader must not be nil")
	}
	missing := func(name string, present bool) string {
		if present {
			return ""
		}
		return name
	}
	for _, name := range []string{
		missing("ObjStart", r.ObjStart != nil),
		missing("ObjEnd", r.ObjEnd != nil),
		missing("ArrStart", r.ArrStart != nil),
		missing("ArrEnd", r.ArrEnd != nil),
		missing("ValStart", r.ValStart != nil),
		missing("ValEnd", r.ValEnd != nil),
		missing("KeyValStart", r.KeyValStart != nil),
		missing("KeyValEnd", r.KeyValEnd != nil),
		missing("Token", r.Token != nil),
		missing("VarSub", r.VarSub != nil),
	} {
		if name != "" {
			return newError(InvalidArgument, "parser", Position{}, "reader callback %s is nil", name)
		}
	}
	return nil
}
