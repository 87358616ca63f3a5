package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/vfront/internal/cli/output"
	"github.com/leapstack-labs/vfront/pkg/format"
	"github.com/spf13/cobra"
)

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "format <file>",
		Aliases: []string{"fmt"},
		Short:   "Print modules back as canonical source",
		Long: `Parse a Verilog source file and print each module in canonical layout:
the header on one line, one indented continuous assignment per line and
a closing 'endmodule'.

Only the modeled subset survives formatting; other statements are dropped.`,
		Example: `  # Format the first module
  vfront format top.v

  # Format every module in the file
  vfront format top.v --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args[0])
		},
	}

	addParserFlags(cmd)

	return cmd
}

func runFormat(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	res, err := parseSource(path, src, parserConfig(cmd, cmdCtx.Cfg))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	sources := make([]string, 0, len(res.Modules))
	for _, mod := range res.Modules {
		sources = append(sources, format.Verilog(mod))
	}
	body := strings.Join(sources, "\n")
	cmdCtx.Logger.Debug("formatted", "file", path, "modules", len(res.Modules))

	if ok, err := r.Structured(map[string]string{"file": path, "source": body}); ok {
		return err
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatCodeBlock("verilog", body))
		return nil
	}
	r.Printf("%s", body)
	return nil
}
