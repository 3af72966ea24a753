package gohocon

import "fmt"

// TokenType classifies a Token. The set below is exactly the tag set
// from the data model: structural, whitespace, punctuation, substitution
// openers, keywords, and valued tokens.
type TokenType int

const (
	// Invalid marks a token the lexer could not classify. The lexer
	// itself never emits this; it is the zero value of TokenType, so an
	// unset Token never looks like a real token type.
	Invalid TokenType = iota
	Eof

	Ws
	WsNewline
	Comment

	OpenBrace
	CloseBrace
	OpenParen
	CloseParen
	OpenSquare
	CloseSquare
	Comma
	Equal
	PlusEqual
	Colon

	OpenSub
	OpenOptSub

	True
	False
	Null

	Number
	Unquoted
	String
)

var tokenTypeNames = map[TokenType]string{
	Invalid:    "Invalid",
	Eof:        "Eof",
	Ws:         "Ws",
	WsNewline:  "WsNewline",
	Comment:    "Comment",
	OpenBrace:  "OpenBrace",
	CloseBrace: "CloseBrace",
	OpenParen:  "OpenParen",
	CloseParen: "CloseParen",
	OpenSquare: "OpenSquare",
	CloseSquare: "CloseSquare",
	Comma:      "Comma",
	Equal:      "Equal",
	PlusEqual:  "PlusEqual",
	Colon:      "Colon",
	OpenSub:    "OpenSub",
	OpenOptSub: "OpenOptSub",
	True:       "True",
	False:      "False",
	Null:       "Null",
	Number:     "Number",
	Unquoted:   "Unquoted",
	String:     "String",
}

func (t TokenType) String() string {
	if s, ok := tokenTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// IsKeyToken reports whether a token of this type may appear inside a
// key expression (parse_key concatenates runs of these).
func (t TokenType) IsKeyToken() bool {
	switch t {
	case True, False, Null, Number, Unquoted, String:
		return true
	default:
		return false
	}
}

// IsWhitespace reports whether this token type is Ws, WsNewline, or
// Comment — the three types parse_value buffers rather than emits
// immediately.
func (t TokenType) IsWhitespace() bool {
	switch t {
	case Ws, WsNewline, Comment:
		return true
	default:
		return false
	}
}

// Token is a single lexical element: a tag, an optional text payload, and
// the source position where it starts. Tokens with no payload (most
// punctuation, keywords, Eof, the two substitution openers, and
// whitespace/comment when text capture is disabled) carry an empty Text.
//
// A String token's Text is the fully decoded string (escapes applied); a
// Number or Unquoted token's Text is the raw source bytes.
type Token struct {
	Typ  TokenType
	Text string
	Pos  Position
}

func (t Token) String() string {
	val := t.Text
	if len(val) > 80 {
		val = val[:77] + "..."
	}
	return fmt.Sprintf("<%s %q @%s>", t.Typ, val, t.Pos)
}
