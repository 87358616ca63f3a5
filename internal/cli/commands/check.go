package commands

import (
	"context"
	"fmt"
	"runtime"

	"github.com/leapstack-labs/vfront/internal/cli/config"
	"github.com/leapstack-labs/vfront/internal/cli/output"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Jobs int
}

// CheckResult is the outcome of checking one file.
type CheckResult struct {
	File    string   `json:"file" yaml:"file"`
	OK      bool     `json:"ok" yaml:"ok"`
	Modules []string `json:"modules,omitempty" yaml:"modules,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <files...>",
		Short: "Check that source files parse",
		Long: `Parse several Verilog source files concurrently and report which ones
are syntactically valid.

Every file is checked even when an earlier one fails. The command exits
non-zero if any file fails to read or parse.`,
		Example: `  # Check all sources
  vfront check rtl/*.v

  # Machine-readable report
  vfront check rtl/*.v -o json

  # Limit concurrency
  vfront check rtl/*.v --jobs 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Maximum files parsed at once")
	addParserFlags(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, files []string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	pc := parserConfig(cmd, cmdCtx.Cfg)

	results, err := checkFiles(cmd.Context(), files, pc, opts.Jobs)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if !res.OK {
			failed++
			cmdCtx.Logger.Debug("check failed", "file", res.File, "error", res.Error)
		}
	}

	if ok, err := r.Structured(results); ok {
		if err != nil {
			return err
		}
	} else {
		renderCheckResults(r, results)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// checkFiles parses files with at most jobs in flight. Results keep the
// order of files. Per-file failures are recorded on the result; only
// cancellation is returned as an error.
func checkFiles(ctx context.Context, files []string, pc config.ParserConfig, jobs int) ([]CheckResult, error) {
	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(file, pc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkFile(file string, pc config.ParserConfig) CheckResult {
	res := CheckResult{File: file}

	src, err := readFile(file)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	parsed, err := parseSource(file, src, pc)
	if err != nil {
		res.Error = errorLocation(file, err)
		return res
	}

	res.OK = true
	for _, mod := range parsed.Modules {
		res.Modules = append(res.Modules, mod.Label)
	}
	return res
}

func renderCheckResults(r *output.Renderer, results []CheckResult) {
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Header(2, "check results")
		rows := make([][]any, 0, len(results))
		for _, res := range results {
			status := "ok"
			detail := fmt.Sprint(res.Modules)
			if !res.OK {
				status = "error"
				detail = res.Error
			}
			rows = append(rows, []any{res.File, status, detail})
		}
		r.Table([]string{"File", "Status", "Detail"}, rows)
		return
	}

	for _, res := range results {
		if res.OK {
			r.Success(fmt.Sprintf("%s (%d modules)", res.File, len(res.Modules)))
			continue
		}
		r.Fail(res.Error)
	}
}
