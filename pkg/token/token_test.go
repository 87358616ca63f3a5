package token

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"module", Keyword},
		{"endmodule", Keyword},
		{"input", Keyword},
		{"output", Keyword},
		{"assign", Keyword},
		{"Module", Identifier},
		{"wire", Identifier},
		{"foo", Identifier},
		{"_x1", Identifier},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupIdent(tt.ident))
		})
	}
}

func TestKeywords(t *testing.T) {
	assert.ElementsMatch(t, []string{"module", "endmodule", "input", "output", "assign"}, Keywords())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Keyword", Keyword.String())
	assert.Equal(t, "Symbol", Symbol.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestKindTextRoundTrip(t *testing.T) {
	b, err := json.Marshal(Token{Kind: Number, Text: "12", Pos: Position{Line: 1, Column: 3}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Number","text":"12","pos":{"line":1,"column":3}}`, string(b))

	var tok Token
	require.NoError(t, json.Unmarshal(b, &tok))
	assert.Equal(t, Number, tok.Kind)

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("Operator")))
}

func TestEOF(t *testing.T) {
	eof := EOF()
	assert.True(t, eof.IsEOF())
	assert.Equal(t, Unknown, eof.Kind)
	assert.Empty(t, eof.Text)
	assert.False(t, eof.Pos.IsValid())
	assert.Equal(t, "-", eof.Pos.String())

	tok := Token{Kind: Symbol, Text: ";", Pos: Position{Line: 1, Column: 2}}
	assert.False(t, tok.IsEOF())
	assert.True(t, tok.IsSymbol(";"))
	assert.False(t, tok.IsKeyword(";"))
}

func TestPositionBefore(t *testing.T) {
	a := Position{Line: 1, Column: 9}
	b := Position{Line: 2, Column: 1}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
	assert.True(t, Position{Line: 3, Column: 1}.Before(Position{Line: 3, Column: 2}))
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Keyword, Text: "module", Pos: Position{Line: 1, Column: 7}}
	assert.Equal(t, `Token(Keyword, "module", Line: 1, column: 7)`, tok.String())
}
