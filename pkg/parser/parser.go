// Package parser provides tokenizing and parsing of a small Verilog subset.
//
// # Usage
//
//	mod, err := parser.Parse(src)
//	if err != nil {
//	    // handle *parser.ParseError
//	}
//
// Tokens can be produced separately with Tokenize and handed to NewParser.
//
// # Grammar Overview
//
// The parser implements a recursive descent parser for:
//
//	module     → "module" IDENT "(" port_list ")" ";" {assign_stmt} "endmodule"
//	port_list  → [port_group {"," port_group}]
//	port_group → ("input" | "output") IDENT {"," IDENT}
//	assign_stmt→ "assign" IDENT "=" expression
//	expression → IDENT [operator IDENT]
//
// Tokens in a module body that do not start an assign statement are
// skipped, so unmodeled statements do not abort the parse.
package parser

import (
	"fmt"

	"github.com/leapstack-labs/vfront/pkg/token"
)

// Parser parses a token sequence into a syntax tree. A Parser is single
// use: it holds a cursor into the tokens and never mutates them.
type Parser struct {
	tokens     []token.Token
	pos        int // cursor into tokens
	operators  OperatorSet
	requireEOF bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithOperators replaces the set of Symbol texts accepted as binary operators.
func WithOperators(ops ...string) Option {
	return func(p *Parser) {
		p.operators = NewOperatorSet(ops...)
	}
}

// WithRequireEOF makes Parse reject any token left after 'endmodule'.
func WithRequireEOF(require bool) Option {
	return func(p *Parser) {
		p.requireEOF = require
	}
}

// NewParser creates a new parser over tokens.
func NewParser(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens:    tokens,
		operators: NewOperatorSet(DefaultOperators...),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse tokenizes src and parses a single module.
func Parse(src string, opts ...Option) (*Node, error) {
	return NewParser(Tokenize(src), opts...).Parse()
}

// ParseAll tokenizes src and parses every module in it.
func ParseAll(src string, opts ...Option) ([]*Node, error) {
	return NewParser(Tokenize(src), opts...).ParseAll()
}

// Parse parses one module definition and returns its Module node.
// Tokens after 'endmodule' are left unread unless WithRequireEOF is set.
func (p *Parser) Parse() (*Node, error) {
	mod, err := p.parseModule()
	if err != nil {
		return nil, err
	}
	if p.requireEOF && !p.current().IsEOF() {
		return nil, p.errorf(ErrTrailingInput, describe(p.current()))
	}
	return mod, nil
}

// ParseAll parses module definitions until the tokens are exhausted.
// An empty token sequence yields no modules and no error.
func (p *Parser) ParseAll() ([]*Node, error) {
	var mods []*Node
	for !p.current().IsEOF() {
		mod, err := p.parseModule()
		if err != nil {
			return nil, err
		}
		mods = append(mods, mod)
	}
	return mods, nil
}

// Operators returns the operator set in effect.
func (p *Parser) Operators() OperatorSet {
	return p.operators
}

// ---------- Token Helpers ----------

// current returns the token under the cursor, or the EOF sentinel.
func (p *Parser) current() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return token.EOF()
}

// advance moves the cursor forward. It is a no-op past the end.
func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// errorf builds a ParseError positioned at the current token.
func (p *Parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Pos:     p.current().Pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// expected builds a ParseError naming the construct that was expected
// and the token that was found instead.
func (p *Parser) expected(msg string) *ParseError {
	return p.errorf("%s, found %s", msg, describe(p.current()))
}

// ---------- Grammar ----------

// parseModule parses:
//
//	"module" IDENT "(" port_list ")" ";" {assign_stmt} "endmodule"
func (p *Parser) parseModule() (*Node, error) {
	if !p.current().IsKeyword(token.KwModule) {
		return nil, p.expected(ErrExpectedModule)
	}
	p.advance()

	name := p.current()
	if name.Kind != token.Identifier {
		return nil, p.expected(ErrExpectedModuleName)
	}
	mod := newNode(NodeModule, name.Text, name.Pos)
	p.advance()

	if !p.current().IsSymbol("(") {
		return nil, p.expected(ErrExpectedLParen)
	}
	p.advance()

	ports, err := p.parsePortList()
	if err != nil {
		return nil, err
	}
	mod.Children = append(mod.Children, ports)

	if !p.current().IsSymbol(";") {
		return nil, p.expected(ErrExpectedSemicolon)
	}
	p.advance()

	for !p.current().IsKeyword(token.KwEndmodule) && !p.current().IsEOF() {
		if !p.current().IsKeyword(token.KwAssign) {
			// Unmodeled statement; skip it.
			p.advance()
			continue
		}
		assign, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		mod.Children = append(mod.Children, assign)
	}

	if !p.current().IsKeyword(token.KwEndmodule) {
		return nil, p.expected(ErrExpectedEndmodule)
	}
	p.advance()

	return mod, nil
}

// parsePortList parses the ports after '(' up to and including ')'.
func (p *Parser) parsePortList() (*Node, error) {
	ports := newNode(NodePortList, portsLabel, p.current().Pos)

	for !p.current().IsSymbol(")") && !p.current().IsEOF() {
		tok := p.current()
		switch {
		case tok.IsKeyword(token.KwInput) || tok.IsKeyword(token.KwOutput):
			group, err := p.parsePortGroup()
			if err != nil {
				return nil, err
			}
			ports.Children = append(ports.Children, group)
		case tok.IsSymbol(","):
			p.advance()
		default:
			return nil, p.errorf(ErrUnexpectedPort, describe(tok))
		}
	}

	if !p.current().IsSymbol(")") {
		return nil, p.expected(ErrUnclosedPortList)
	}
	p.advance()

	return ports, nil
}

// parsePortGroup parses a direction keyword followed by identifiers.
// The group ends at the first non-identifier or when no comma follows.
func (p *Parser) parsePortGroup() (*Node, error) {
	dir := p.current()
	kind := NodeInput
	if dir.Text == token.KwOutput {
		kind = NodeOutput
	}
	group := newNode(kind, dir.Text, dir.Pos)
	p.advance()

	for p.current().Kind == token.Identifier {
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		group.Children = append(group.Children, id)

		if !p.current().IsSymbol(",") {
			break
		}
		p.advance()
	}

	return group, nil
}

// parseAssign parses:
//
//	"assign" IDENT "=" expression
//
// The trailing ';' is not consumed; the module body skips it.
func (p *Parser) parseAssign() (*Node, error) {
	kw := p.current()
	p.advance()
	assign := newNode(NodeAssign, "", kw.Pos)

	if p.current().Kind != token.Identifier {
		return nil, p.expected(ErrExpectedTarget)
	}
	target, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	assign.Children = append(assign.Children, target)

	if !p.current().IsSymbol("=") {
		return nil, p.expected(ErrExpectedEquals)
	}
	p.advance()

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	assign.Children = append(assign.Children, expr)

	return assign, nil
}

// parseExpression parses:
//
//	IDENT [operator IDENT]
//
// A Symbol other than ';' following the left operand must be an operator.
func (p *Parser) parseExpression() (*Node, error) {
	left, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	op := p.current()
	if op.Kind != token.Symbol || op.Text == ";" {
		return left, nil
	}
	if !p.operators.Contains(op.Text) {
		return nil, p.errorf(ErrUnsupportedOp, op.Text)
	}
	p.advance()

	right, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	return newNode(NodeBinaryOp, op.Text, op.Pos, left, right), nil
}

// parseIdentifier consumes an Identifier token.
func (p *Parser) parseIdentifier() (*Node, error) {
	tok := p.current()
	if tok.Kind != token.Identifier {
		return nil, p.expected(ErrExpectedIdentifier)
	}
	p.advance()
	return newNode(NodeIdentifier, tok.Text, tok.Pos), nil
}
