package parser_test

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/vfront/pkg/parser"
	"github.com/leapstack-labs/vfront/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(kind token.Kind, text string, line, col int) token.Token {
	return token.Token{Kind: kind, Text: text, Pos: token.Position{Line: line, Column: col}}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: " \t\r\n  ",
			want:  nil,
		},
		{
			name:  "keyword vs identifier",
			input: "module foo",
			want: []token.Token{
				tok(token.Keyword, "module", 1, 7),
				tok(token.Identifier, "foo", 1, 11),
			},
		},
		{
			name:  "maximal munch identifier",
			input: "abc123_x",
			want:  []token.Token{tok(token.Identifier, "abc123_x", 1, 9)},
		},
		{
			name:  "leading underscore",
			input: "_clk",
			want:  []token.Token{tok(token.Identifier, "_clk", 1, 5)},
		},
		{
			name:  "number then identifier",
			input: "123abc",
			want: []token.Token{
				tok(token.Number, "123", 1, 4),
				tok(token.Identifier, "abc", 1, 7),
			},
		},
		{
			name:  "symbols are single characters",
			input: "(a,b);",
			want: []token.Token{
				tok(token.Symbol, "(", 1, 2),
				tok(token.Identifier, "a", 1, 3),
				tok(token.Symbol, ",", 1, 4),
				tok(token.Identifier, "b", 1, 5),
				tok(token.Symbol, ")", 1, 6),
				tok(token.Symbol, ";", 1, 7),
			},
		},
		{
			name:  "operator characters",
			input: "a&&b",
			want: []token.Token{
				tok(token.Identifier, "a", 1, 2),
				tok(token.Symbol, "&", 1, 3),
				tok(token.Symbol, "&", 1, 4),
				tok(token.Identifier, "b", 1, 5),
			},
		},
		{
			name:  "newline resets column",
			input: "a\n  b",
			want: []token.Token{
				tok(token.Identifier, "a", 1, 2),
				tok(token.Identifier, "b", 2, 4),
			},
		},
		{
			name:  "all keywords",
			input: "module endmodule input output assign",
			want: []token.Token{
				tok(token.Keyword, "module", 1, 7),
				tok(token.Keyword, "endmodule", 1, 17),
				tok(token.Keyword, "input", 1, 23),
				tok(token.Keyword, "output", 1, 30),
				tok(token.Keyword, "assign", 1, 37),
			},
		},
		{
			name:  "keywords are case sensitive",
			input: "MODULE",
			want:  []token.Token{tok(token.Identifier, "MODULE", 1, 7)},
		},
		{
			name:  "lone slash is a symbol",
			input: "a / b",
			want: []token.Token{
				tok(token.Identifier, "a", 1, 2),
				tok(token.Symbol, "/", 1, 4),
				tok(token.Identifier, "b", 1, 6),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.Tokenize(tt.input))
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	src := "module top (input a, b, output y);\n  assign y = a & b;\nendmodule\n"
	first := parser.Tokenize(src)
	second := parser.Tokenize(src)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestTokenizePositionsMonotonic(t *testing.T) {
	src := `module adder (input a, b,
               output s);
  // sum bit
  assign s = a ^ b;
  /* carry is
     not modeled */
  wire unused;
endmodule`

	tokens := parser.Tokenize(src)
	require.Greater(t, len(tokens), 10)
	for i := 1; i < len(tokens); i++ {
		assert.False(t, tokens[i].Pos.Before(tokens[i-1].Pos),
			"token %d %v is before token %d %v", i, tokens[i], i-1, tokens[i-1])
	}
}

func TestTokenizeDropsUnknownCharacters(t *testing.T) {
	src := "module m$ (input a); `define X \"s\" 'b \\esc endmodule \x00\xff"
	tokens := parser.Tokenize(src)

	for _, tk := range tokens {
		for _, bad := range []string{"$", "`", "\"", "'", "\\", "\x00", "\xff"} {
			assert.NotContains(t, tk.Text, bad)
		}
	}

	assert.Equal(t, tok(token.Keyword, "module", 1, 7), tokens[0])
	assert.Equal(t, tok(token.Identifier, "m", 1, 9), tokens[1])
	// '$' is dropped but still advances the column.
	assert.Equal(t, tok(token.Symbol, "(", 1, 12), tokens[2])
}

func TestLexerComments(t *testing.T) {
	src := "a // line comment\n/* block\ncomment */ b /* open"
	l := parser.NewLexer(src)

	var tokens []token.Token
	for {
		tk, ok := l.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, tk)
	}

	assert.Equal(t, []token.Token{
		tok(token.Identifier, "a", 1, 2),
		tok(token.Identifier, "b", 3, 13),
	}, tokens)

	require.Len(t, l.Comments, 3)
	assert.True(t, l.Comments[0].IsLineComment())
	assert.Equal(t, "// line comment", l.Comments[0].Text)
	assert.Equal(t, token.Position{Line: 1, Column: 3}, l.Comments[0].Pos)

	assert.True(t, l.Comments[1].IsBlockComment())
	assert.Equal(t, "/* block\ncomment */", l.Comments[1].Text)

	assert.True(t, l.Comments[2].IsBlockComment())
	assert.Equal(t, "/* open", l.Comments[2].Text)
}

func TestLexerExhausted(t *testing.T) {
	l := parser.NewLexer("x")
	_, ok := l.NextToken()
	require.True(t, ok)

	for range 3 {
		tk, ok := l.NextToken()
		assert.False(t, ok)
		assert.Equal(t, token.Token{}, tk)
	}
}

func TestTokenizeLargeInput(t *testing.T) {
	var b strings.Builder
	for range 1000 {
		b.WriteString("assign y = a | b;\n")
	}
	tokens := parser.Tokenize(b.String())
	assert.Len(t, tokens, 7000)
	assert.Equal(t, 1000, tokens[len(tokens)-1].Pos.Line)
}
