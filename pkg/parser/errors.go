package parser

import (
	"fmt"

	"github.com/leapstack-labs/vfront/pkg/token"
)

// ParseError is the single structural error kind. Parsing stops at the
// first one; there is no recovery.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	if !e.Pos.IsValid() {
		return fmt.Sprintf("parse error at end of input: %s", e.Message)
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrExpectedModule     = "expected 'module' keyword"
	ErrExpectedModuleName = "expected module name"
	ErrExpectedLParen     = "expected '(' after module name"
	ErrExpectedSemicolon  = "expected ';' after port list"
	ErrExpectedEndmodule  = "expected 'endmodule'"
	ErrUnclosedPortList   = "port list not properly closed with ')'"
	ErrUnexpectedPort     = "unexpected token %s in port list"
	ErrExpectedTarget     = "expected an identifier as the output of the assignment"
	ErrExpectedEquals     = "expected '=' in assignment"
	ErrExpectedIdentifier = "expected identifier"
	ErrUnsupportedOp      = "unsupported operator %q"
	ErrTrailingInput      = "unexpected %s after 'endmodule'"
)

// describe renders a token for error messages.
func describe(tok token.Token) string {
	if tok.IsEOF() {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
}
