// Package token defines the lexical units of the Verilog subset.
//
// The tokenizer only distinguishes five coarse kinds. Punctuation and
// operator characters are all Symbol tokens; deciding which symbols act
// as operators is left to the parser.
package token

import "fmt"

// Kind classifies a lexical token.
type Kind int

const (
	// Unknown is never produced by the tokenizer. The parser uses it for
	// the end-of-input sentinel.
	Unknown Kind = iota
	Keyword
	Identifier
	Number
	Symbol
)

var kindNames = map[Kind]string{
	Unknown:    "Unknown",
	Keyword:    "Keyword",
	Identifier: "Identifier",
	Number:     "Number",
	Symbol:     "Symbol",
}

// String returns a human-readable representation of the token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler so kinds encode by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", string(b))
}

// Keyword spellings.
const (
	KwModule    = "module"
	KwEndmodule = "endmodule"
	KwInput     = "input"
	KwOutput    = "output"
	KwAssign    = "assign"
)

// keywords is the set of reserved words. Verilog keywords are case-sensitive.
var keywords = map[string]struct{}{
	KwModule:    {},
	KwEndmodule: {},
	KwInput:     {},
	KwOutput:    {},
	KwAssign:    {},
}

// LookupIdent returns Keyword if ident is reserved and Identifier otherwise.
func LookupIdent(ident string) Kind {
	if IsKeyword(ident) {
		return Keyword
	}
	return Identifier
}

// IsKeyword returns true if s is a reserved word.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// Keywords returns the reserved words in no particular order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}
	return out
}

// Token represents a lexical token with position information.
type Token struct {
	Kind Kind     `json:"kind" yaml:"kind"`
	Text string   `json:"text" yaml:"text"`
	Pos  Position `json:"pos" yaml:"pos"`
}

// EOF returns the sentinel the parser sees once it runs off the end of
// the token sequence.
func EOF() Token {
	return Token{Kind: Unknown, Pos: NoPos}
}

// IsEOF reports whether t is the end-of-input sentinel.
func (t Token) IsEOF() bool {
	return t.Kind == Unknown && !t.Pos.IsValid()
}

// Is reports whether t has the given kind and text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// IsKeyword reports whether t is the keyword kw.
func (t Token) IsKeyword(kw string) bool {
	return t.Is(Keyword, kw)
}

// IsSymbol reports whether t is the one-character symbol s.
func (t Token) IsSymbol(s string) bool {
	return t.Is(Symbol, s)
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, Line: %d, column: %d)", t.Kind, t.Text, t.Pos.Line, t.Pos.Column)
}
