package commands

import (
	"github.com/leapstack-labs/vfront/internal/cli/output"
	"github.com/leapstack-labs/vfront/pkg/format"
	"github.com/leapstack-labs/vfront/pkg/parser"
	"github.com/leapstack-labs/vfront/pkg/token"
	"github.com/spf13/cobra"
)

// TokensOptions holds options for the tokens command.
type TokensOptions struct {
	Raw bool // Print Token(...) lines regardless of output mode
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	opts := &TokensOptions{}
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a source file",
		Long: `Tokenize a Verilog source file and print every token with its kind,
text and position.

Tokenizing never fails: characters outside the subset are skipped and
comments are dropped.

Output adapts to environment:
  - Terminal: Table
  - Piped/Scripted: Markdown table
  - JSON/YAML: Machine-readable token list`,
		Example: `  # Show tokens as a table
  vfront tokens top.v

  # One Token(...) line per token
  vfront tokens top.v --raw

  # Read from stdin, emit JSON
  cat top.v | vfront tokens - -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Print one Token(...) line per token")

	return cmd
}

func runTokens(cmd *cobra.Command, path string, opts *TokensOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	tokens := parser.Tokenize(src)
	cmdCtx.Logger.Debug("tokenized", "file", path, "tokens", len(tokens))

	if opts.Raw {
		r.Printf("%s", format.Tokens(tokens))
		return nil
	}

	if tokens == nil {
		tokens = []token.Token{}
	}
	if ok, err := r.Structured(tokens); ok {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Header(2, "tokens")
	}
	r.Table([]string{"#", "Kind", "Text", "Line", "Column"}, tokenRows(r, tokens))
	return nil
}

func tokenRows(r *output.Renderer, tokens []token.Token) [][]any {
	rows := make([][]any, 0, len(tokens))
	for i, t := range tokens {
		kind := t.Kind.String()
		if r.EffectiveMode() == output.ModeText {
			kind = r.Styles().ForKind(t.Kind).Render(kind)
		}
		rows = append(rows, []any{i + 1, kind, t.Text, t.Pos.Line, t.Pos.Column})
	}
	return rows
}
