package commands

import (
	"fmt"

	"github.com/leapstack-labs/vfront/internal/cli/output"
	"github.com/leapstack-labs/vfront/pkg/format"
	"github.com/spf13/cobra"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	ShowTokens bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print its syntax tree",
		Long: `Tokenize and parse a Verilog source file, then print the token stream
followed by the syntax tree, one node per line indented by depth.

The first syntax error stops parsing and is reported with its line and
column. Statements other than continuous assignments are skipped.`,
		Example: `  # Tokens and tree for the first module
  vfront parse top.v

  # Every module, tree only
  vfront parse top.v --all --tokens=false

  # Fail on anything after 'endmodule'
  vfront parse top.v --strict

  # Accept only & and | as operators
  vfront parse top.v --operators '&,|'

  # Tree as JSON
  vfront parse top.v -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.ShowTokens, "tokens", true, "Print the token stream before the tree")
	addParserFlags(cmd)

	return cmd
}

func runParse(cmd *cobra.Command, path string, opts *ParseOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	pc := parserConfig(cmd, cmdCtx.Cfg)
	res, parseErr := parseSource(path, src, pc)
	cmdCtx.Logger.Debug("parsed",
		"file", path,
		"tokens", len(res.Tokens),
		"modules", len(res.Modules),
		"strict", pc.Strict,
		"all", pc.AllModules)

	if parseErr != nil {
		if opts.ShowTokens && !isStructured(r) {
			renderTokenList(r, res)
		}
		return fmt.Errorf("%s: %w", path, parseErr)
	}

	if !opts.ShowTokens {
		res.Tokens = nil
	}
	if ok, err := r.Structured(res); ok {
		return err
	}

	if opts.ShowTokens {
		renderTokenList(r, res)
	}
	renderTrees(r, res)
	return nil
}

func isStructured(r *output.Renderer) bool {
	mode := r.EffectiveMode()
	return mode == output.ModeJSON || mode == output.ModeYAML
}

func renderTokenList(r *output.Renderer, res *parsedSource) {
	r.Header(2, "tokens")
	body := format.Tokens(res.Tokens)
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatCodeBlock("", body))
		r.Println("")
		return
	}
	r.Printf("%s", body)
}

func renderTrees(r *output.Renderer, res *parsedSource) {
	r.Header(2, "syntax tree")
	for _, mod := range res.Modules {
		body := format.Tree(mod)
		if r.EffectiveMode() == output.ModeMarkdown {
			r.Println(output.FormatCodeBlock("", body))
			continue
		}
		r.Printf("%s", body)
	}
}
