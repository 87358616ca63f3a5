package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/vfront/internal/cli/config"
	"github.com/leapstack-labs/vfront/internal/tui/treeview"
	"github.com/spf13/cobra"
)

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Browse the syntax tree and tokens interactively",
		Long: `Open a full-screen terminal viewer for a Verilog source file.

The viewer shows the syntax tree, or the token stream after pressing 't'.
Press 'r' to re-read the file and 'q' to quit.`,
		Example: `  # Browse a file
  vfront view top.v

  # Browse every module in the file
  vfront view top.v --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0])
		},
	}

	addParserFlags(cmd)

	return cmd
}

func runView(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	pc := parserConfig(cmd, cmdCtx.Cfg)

	if _, err := readFile(path); err != nil {
		return err
	}

	p := tea.NewProgram(
		treeview.New(viewLoader(path, pc)),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	cmdCtx.Logger.Debug("viewer closed", "file", path)
	return nil
}

func viewLoader(path string, pc config.ParserConfig) treeview.Loader {
	return func() (treeview.Document, error) {
		doc := treeview.Document{Name: path}
		src, err := readFile(path)
		if err != nil {
			return doc, err
		}
		res, err := parseSource(path, src, pc)
		doc.Tokens = res.Tokens
		doc.Modules = res.Modules
		return doc, err
	}
}
