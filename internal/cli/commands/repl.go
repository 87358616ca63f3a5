package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/vfront/internal/cli/config"
	"github.com/leapstack-labs/vfront/pkg/format"
	"github.com/leapstack-labs/vfront/pkg/parser"
	"github.com/leapstack-labs/vfront/pkg/token"
	"github.com/spf13/cobra"
)

const (
	replPrompt         = "vfront> "
	replContinuePrompt = "   ...> "
)

// REPLOptions holds options for the repl command.
type REPLOptions struct {
	HistoryFile string
}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	opts := &REPLOptions{}
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse modules interactively",
		Long: `Start an interactive prompt. Lines are collected until a line containing
'endmodule' completes the module, which is then parsed and its syntax
tree printed.

Type .help for commands, .quit to exit.`,
		Example: `  # Start the prompt
  vfront repl

  # Keep history between sessions
  vfront repl --history ~/.vfront_history`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.HistoryFile, "history", "", "File to keep input history in")
	addParserFlags(cmd)

	return cmd
}

func runREPL(cmd *cobra.Command, opts *REPLOptions) error {
	cmdCtx := NewCommandContext(cmd)

	historyFile := cmdCtx.Cfg.REPL.HistoryFile
	if cmd.Flags().Changed("history") {
		historyFile = opts.HistoryFile
	}

	// Configure readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	session := newREPLSession(cmd.OutOrStdout(), cmd.ErrOrStderr(), parserConfig(cmd, cmdCtx.Cfg))

	// Print welcome message
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "vfront REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			session.reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		prompt, quit := session.feed(line)
		if quit {
			break
		}
		rl.SetPrompt(prompt)
	}

	cmdCtx.Logger.Debug("repl closed", "modules", session.parsed)
	return nil
}

// replSession accumulates input lines into modules and parses each one
// once its 'endmodule' arrives.
type replSession struct {
	out        io.Writer
	errOut     io.Writer
	pc         config.ParserConfig
	buf        strings.Builder
	showTokens bool
	parsed     int
}

func newREPLSession(out, errOut io.Writer, pc config.ParserConfig) *replSession {
	return &replSession{out: out, errOut: errOut, pc: pc}
}

func (s *replSession) reset() {
	s.buf.Reset()
}

func (s *replSession) pending() bool {
	return s.buf.Len() > 0
}

// feed handles one line of input and returns the prompt for the next one.
// quit is true when the user asked to leave.
func (s *replSession) feed(line string) (prompt string, quit bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return s.prompt(), false
	}

	// Handle dot-commands
	if !s.pending() && strings.HasPrefix(trimmed, ".") {
		return replPrompt, s.handleDotCommand(trimmed)
	}

	s.buf.WriteString(line)
	s.buf.WriteString("\n")
	if !endsModule(parser.Tokenize(s.buf.String())) {
		return replContinuePrompt, false
	}

	s.evaluate(s.buf.String())
	s.reset()
	return replPrompt, false
}

func (s *replSession) prompt() string {
	if s.pending() {
		return replContinuePrompt
	}
	return replPrompt
}

func (s *replSession) evaluate(src string) {
	res, err := parseSource("<repl>", src, s.pc)
	if s.showTokens {
		_, _ = fmt.Fprint(s.out, format.Tokens(res.Tokens))
	}
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return
	}
	s.parsed += len(res.Modules)
	for _, mod := range res.Modules {
		_, _ = fmt.Fprint(s.out, format.Tree(mod))
	}
}

func endsModule(tokens []token.Token) bool {
	for _, t := range tokens {
		if t.IsKeyword(token.KwEndmodule) {
			return true
		}
	}
	return false
}

func (s *replSession) handleDotCommand(line string) (quit bool) {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".ops":
		_, _ = fmt.Fprintln(s.out, strings.Join(parser.NewOperatorSet(s.pc.Operators...).List(), " "))

	case ".tokens":
		s.showTokens = !s.showTokens
		state := "off"
		if s.showTokens {
			state = "on"
		}
		_, _ = fmt.Fprintf(s.out, "token listing %s\n", state)

	case ".reset":
		s.reset()

	case ".clear":
		_, _ = fmt.Fprint(s.out, "\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .ops            List accepted binary operators
  .tokens         Toggle the token listing before each tree
  .reset          Discard the module being typed
  .clear          Clear the screen
  .quit / .exit   Exit the REPL

Tips:
  - A module is parsed once a line contains 'endmodule'
  - Ctrl+C discards the module being typed
  - Tab completion works for keywords
`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter creates a readline completer for keywords and dot-commands.
func newREPLCompleter() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, kw := range token.Keywords() {
		items = append(items, readline.PcItem(kw))
	}

	// Add dot-commands
	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".ops"),
		readline.PcItem(".tokens"),
		readline.PcItem(".reset"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)

	return readline.NewPrefixCompleter(items...)
}
