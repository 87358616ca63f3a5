package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/vfront/internal/cli/config"
	"github.com/leapstack-labs/vfront/internal/cli/output"
	"github.com/leapstack-labs/vfront/pkg/format"
	"github.com/spf13/cobra"
)

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	Debounce time.Duration
	Tree     bool
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-parse a source file whenever it changes",
		Long: `Parse a Verilog source file, then keep watching it and parse it again
after every change. Bursts of writes are coalesced by the debounce
interval.

Parse errors are reported and watching continues. Stop with Ctrl+C.`,
		Example: `  # Watch with the tree printed on each change
  vfront watch top.v

  # Only report ok/error, coalescing writes within 500ms
  vfront watch top.v --tree=false --debounce 500ms`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], opts)
		},
	}

	cmd.Flags().DurationVar(&opts.Debounce, "debounce", config.DefaultDebounce, "Quiet period before re-parsing")
	cmd.Flags().BoolVar(&opts.Tree, "tree", true, "Print the syntax tree after each successful parse")
	addParserFlags(cmd)

	return cmd
}

func runWatch(cmd *cobra.Command, path string, opts *WatchOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	pc := parserConfig(cmd, cmdCtx.Cfg)

	debounce := cmdCtx.Cfg.Watch.Debounce
	if cmd.Flags().Changed("debounce") || debounce <= 0 {
		debounce = opts.Debounce
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var mu sync.Mutex
	report := func() {
		mu.Lock()
		defer mu.Unlock()
		reportWatchParse(r, path, pc, opts.Tree)
	}

	report()
	r.Println(r.Styles().Muted.Render(fmt.Sprintf("Watching %s (Ctrl+C to stop)", path)))

	cmdCtx.Logger.Info("watching", "file", path, "debounce", debounce)
	return watchFile(ctx, path, debounce, cmdCtx.Logger, report)
}

func reportWatchParse(r *output.Renderer, path string, pc config.ParserConfig, tree bool) {
	src, err := readFile(path)
	if err != nil {
		r.Fail(err.Error())
		return
	}
	res, err := parseSource(path, src, pc)
	if err != nil {
		r.Fail(errorLocation(path, err))
		return
	}
	r.Success(fmt.Sprintf("%s (%d modules)", path, len(res.Modules)))
	if !tree {
		return
	}
	for _, mod := range res.Modules {
		r.Printf("%s", format.Tree(mod))
	}
}

// watchFile calls onChange after path is written or re-created, once per
// burst of events separated by less than debounce. It watches the parent
// directory so editors that replace the file on save are still seen.
// It returns when ctx is cancelled.
func watchFile(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	// Debounce timer
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("file changed", "file", event.Name, "op", event.Op.String())

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
