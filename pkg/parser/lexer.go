package parser

import (
	"github.com/leapstack-labs/vfront/pkg/token"
)

// Lexer tokenizes Verilog source.
//
// Tokens carry the scanner position reached after their text was consumed,
// so a token starting at column 1 with three characters reports column 4.
// Diagnostics downstream are defined against that convention.
type Lexer struct {
	input string
	pos   int // offset of the next unread byte
	line  int // current line number (1-based)
	col   int // current column number (1-based)

	// Comments collected during lexing.
	Comments []*token.Comment
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// ch returns the byte under examination, or 0 at end of input.
func (l *Lexer) ch() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// peekChar returns the byte after the current one without advancing.
func (l *Lexer) peekChar() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// readChar consumes the current byte and updates line/column tracking.
func (l *Lexer) readChar() {
	if l.atEOF() {
		return
	}
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

// currentPos returns the current scanner position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.col}
}

// NextToken returns the next token. ok is false once the input is exhausted.
// Bytes that cannot start a token are skipped silently.
func (l *Lexer) NextToken() (tok token.Token, ok bool) {
	for {
		l.skipWhitespaceAndComments()
		if l.atEOF() {
			return token.Token{}, false
		}

		c := l.ch()
		switch {
		case isLetter(c) || c == '_':
			text := l.readIdentifier()
			return token.Token{Kind: token.LookupIdent(text), Text: text, Pos: l.currentPos()}, true
		case isDigit(c):
			text := l.readNumber()
			return token.Token{Kind: token.Number, Text: text, Pos: l.currentPos()}, true
		case isSymbol(c):
			l.readChar()
			return token.Token{Kind: token.Symbol, Text: string(c), Pos: l.currentPos()}, true
		default:
			l.readChar()
		}
	}
}

// skipWhitespaceAndComments skips whitespace and collects comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for isSpace(l.ch()) {
			l.readChar()
		}

		if l.ch() == '/' && l.peekChar() == '/' {
			l.collectLineComment()
			continue
		}

		if l.ch() == '/' && l.peekChar() == '*' {
			l.collectBlockComment()
			continue
		}

		break
	}
}

// collectLineComment collects a // comment up to, not including, the newline.
func (l *Lexer) collectLineComment() {
	startPos := l.currentPos()
	startOffset := l.pos

	for !l.atEOF() && l.ch() != '\n' {
		l.readChar()
	}

	l.Comments = append(l.Comments, &token.Comment{
		Kind: token.LineComment,
		Text: l.input[startOffset:l.pos],
		Pos:  startPos,
	})
}

// collectBlockComment collects a /* */ comment. An unterminated comment
// runs to the end of input.
func (l *Lexer) collectBlockComment() {
	startPos := l.currentPos()
	startOffset := l.pos

	l.readChar() // skip '/'
	l.readChar() // skip '*'

	for !l.atEOF() {
		if l.ch() == '*' && l.peekChar() == '/' {
			l.readChar() // skip '*'
			l.readChar() // skip '/'
			break
		}
		l.readChar()
	}

	l.Comments = append(l.Comments, &token.Comment{
		Kind: token.BlockComment,
		Text: l.input[startOffset:l.pos],
		Pos:  startPos,
	})
}

// readIdentifier reads the longest run of letters, digits and underscores.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch()) || isDigit(l.ch()) || l.ch() == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads the longest run of decimal digits.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch()) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// isSymbol reports whether ch is a printable ASCII punctuation character
// that becomes a Symbol token. System task, directive, string and escape
// introducers are not part of the subset and are dropped.
func isSymbol(ch byte) bool {
	if ch < '!' || ch > '~' || isLetter(ch) || isDigit(ch) || ch == '_' {
		return false
	}
	switch ch {
	case '$', '`', '"', '\'', '\\':
		return false
	}
	return true
}

// Tokenize returns all tokens from the input.
func Tokenize(input string) []token.Token {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok, ok := l.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
