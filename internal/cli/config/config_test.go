package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leapstack-labs/vfront/pkg/parser"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vfront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, parser.DefaultOperators, cfg.Parser.Operators)
	assert.False(t, cfg.Parser.Strict)
	assert.False(t, cfg.Parser.AllModules)
	assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, `output: json
log_level: debug
parser:
  operators: ["&", "|"]
  strict: true
  all_modules: true
watch:
  debounce: 250ms
repl:
  history_file: /tmp/vfront_history
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, GetConfigFileUsed())
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"&", "|"}, cfg.Parser.Operators)
	assert.True(t, cfg.Parser.Strict)
	assert.True(t, cfg.Parser.AllModules)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, "/tmp/vfront_history", cfg.REPL.HistoryFile)
}

func TestLoadConfig_FindsFileInParent(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "vfront.yml"), []byte("output: yaml\n"), 0600))
	sub := filepath.Join(root, "rtl", "core")
	require.NoError(t, os.MkdirAll(sub, 0750))
	t.Chdir(sub)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, "vfront.yml", filepath.Base(GetConfigFileUsed()))
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, "output: json\nparser:\n  strict: false\n")

	t.Setenv("VFRONT_OUTPUT", "yaml")
	t.Setenv("VFRONT_PARSER__STRICT", "true")
	t.Setenv("VFRONT_PARSER__OPERATORS", "&,^")
	t.Setenv("VFRONT_WATCH__DEBOUNCE", "1s")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.OutputFormat, "env var should override config file")
	assert.True(t, cfg.Parser.Strict)
	assert.Equal(t, []string{"&", "^"}, cfg.Parser.Operators)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, "output: json\n")
	t.Setenv("VFRONT_OUTPUT", "yaml")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "output format")
	flags.Bool("strict", false, "strict")
	flags.StringSlice("operators", nil, "operators")
	flags.Duration("debounce", 0, "debounce")
	flags.String("log-level", "", "log level")
	require.NoError(t, flags.Set("output", "text"))
	require.NoError(t, flags.Set("strict", "true"))
	require.NoError(t, flags.Set("operators", "+,-"))
	require.NoError(t, flags.Set("debounce", "2s"))
	require.NoError(t, flags.Set("log-level", "warn"))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.OutputFormat, "flag value should override config file and env var")
	assert.True(t, cfg.Parser.Strict)
	assert.Equal(t, []string{"+", "-"}, cfg.Parser.Operators)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())
	t.Setenv("VFRONT_OUTPUT", "markdown")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "output format")

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat, "env var should be used when flag is not set")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"bad output", "output: xml\n", "unknown output format"},
		{"bad log level", "log_level: loud\n", "log_level"},
		{"bad operator", "parser:\n  operators: [\"&&\"]\n", "not a single symbol character"},
		{"terminator as operator", "parser:\n  operators: [\";\"]\n", "not a single symbol character"},
		{"empty operators", "parser:\n  operators: []\n", "must not be empty"},
		{"zero debounce", "watch:\n  debounce: 0s\n", "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, GetCurrentConfig())
		})
	}
}

func TestNormalizeOperators(t *testing.T) {
	assert.Equal(t, []string{"&", "|", "^"}, normalizeOperators([]string{"&, |", "&", " ^ ", ""}))
	assert.Empty(t, normalizeOperators(nil))
}

func TestFlagKey(t *testing.T) {
	assert.Equal(t, "parser.all_modules", flagKey("all"))
	assert.Equal(t, "repl.history_file", flagKey("history"))
	assert.Equal(t, "log_level", flagKey("log-level"))
	assert.Equal(t, "output", flagKey("output"))
}

func TestParserConfigOptions(t *testing.T) {
	pc := ParserConfig{Operators: []string{"%"}, Strict: true}
	p := parser.NewParser(parser.Tokenize("module m (); endmodule extra"), pc.Options()...)
	_, err := p.Parse()
	require.Error(t, err)
	assert.Equal(t, []string{"%"}, p.Operators().List())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", ParseLogLevel("debug").String())
	assert.Equal(t, "WARN", ParseLogLevel("Warning").String())
	assert.Equal(t, "ERROR", ParseLogLevel("error").String())
	assert.Equal(t, "INFO", ParseLogLevel("").String())
}

func TestGetLoggerFallback(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	cfg := Default()
	cfg.Verbose = true
	logger := NewLogger(os.Stderr, cfg)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
	assert.True(t, logger.Enabled(ctx, -4))
}
