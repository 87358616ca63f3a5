package format

import (
	"testing"

	"github.com/leapstack-labs/vfront/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "empty module",
			input: "module m (); endmodule",
			expected: `m (Module)
  ports (PortList)
`,
		},
		{
			name:  "ports and binary assign",
			input: "module top (input a, b, output y); assign y = a & b; endmodule",
			expected: `top (Module)
  ports (PortList)
    input (Input)
      a (Identifier)
      b (Identifier)
    output (Output)
      y (Identifier)
  (Assign)
    y (Identifier)
    & (BinaryOp)
      a (Identifier)
      b (Identifier)
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Tree(mod))
		})
	}
}

func TestTreeNil(t *testing.T) {
	assert.Equal(t, "", Tree(nil))
}

func TestTokens(t *testing.T) {
	out := Tokens(parser.Tokenize("module m;"))
	assert.Equal(t, `Token(Keyword, "module", Line: 1, column: 7)
Token(Identifier, "m", Line: 1, column: 9)
Token(Symbol, ";", Line: 1, column: 10)
`, out)

	assert.Equal(t, "", Tokens(nil))
}

func TestVerilog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "empty port list",
			input: "module m ( ) ; endmodule",
			expected: `module m ();
endmodule
`,
		},
		{
			name: "canonical layout",
			input: `module   top(input a,b,
output y,z); wire w;
assign y=a|b; assign z = a;
endmodule`,
			expected: `module top (input a, b, output y, z);
  assign y = a | b;
  assign z = a;
endmodule
`,
		},
		{
			name:  "direction without names",
			input: "module m (input); endmodule",
			expected: `module m (input);
endmodule
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod, err := parser.Parse(tt.input)
			require.NoError(t, err)
			out := Verilog(mod)
			assert.Equal(t, tt.expected, out)

			// Formatting is idempotent.
			again, err := parser.Parse(out)
			require.NoError(t, err)
			assert.Equal(t, out, Verilog(again))
		})
	}
}
