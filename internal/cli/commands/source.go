package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/vfront/internal/cli/config"
	"github.com/leapstack-labs/vfront/pkg/parser"
	"github.com/leapstack-labs/vfront/pkg/token"
	"github.com/spf13/cobra"
)

// parsedSource is the tokens and modules of one source.
type parsedSource struct {
	File    string         `json:"file" yaml:"file"`
	Tokens  []token.Token  `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Modules []*parser.Node `json:"modules" yaml:"modules"`
}

// parseSource tokenizes and parses src. On a parse error the tokens are
// still returned so callers can show them.
func parseSource(name, src string, pc config.ParserConfig) (*parsedSource, error) {
	tokens := parser.Tokenize(src)
	res := &parsedSource{File: name, Tokens: tokens, Modules: []*parser.Node{}}

	p := parser.NewParser(tokens, pc.Options()...)
	if pc.AllModules {
		mods, err := p.ParseAll()
		if err != nil {
			return res, err
		}
		res.Modules = append(res.Modules, mods...)
		return res, nil
	}

	mod, err := p.Parse()
	if err != nil {
		return res, err
	}
	res.Modules = append(res.Modules, mod)
	return res, nil
}

// addParserFlags registers the grammar flags shared by parsing commands.
// They map onto the parser.* config keys.
func addParserFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strict", false, "Reject tokens after 'endmodule'")
	cmd.Flags().Bool("all", false, "Parse every module in the file")
	cmd.Flags().StringSlice("operators", nil, "Binary operators accepted in assignments (e.g. '&,|')")
}

// parserConfig returns the configured grammar options with any parser
// flags set on cmd applied on top.
func parserConfig(cmd *cobra.Command, cfg *config.Config) config.ParserConfig {
	pc := cfg.Parser
	flags := cmd.Flags()
	if flags.Changed("strict") {
		pc.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("all") {
		pc.AllModules, _ = flags.GetBool("all")
	}
	if flags.Changed("operators") {
		pc.Operators, _ = flags.GetStringSlice("operators")
	}
	return pc
}

// errorLocation renders err as "file:line:column: message" when it is a
// positioned parse error, and as "file: error" otherwise.
func errorLocation(file string, err error) string {
	var perr *parser.ParseError
	if errors.As(err, &perr) && perr.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", file, perr.Pos.Line, perr.Pos.Column, perr.Message)
	}
	return fmt.Sprintf("%s: %v", file, err)
}
