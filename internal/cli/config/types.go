// Package config provides configuration management for the vfront CLI.
//
// Values are layered, lowest to highest precedence: built-in defaults,
// the vfront.yaml config file, VFRONT_* environment variables, and
// command-line flags.
package config

import (
	"time"

	"github.com/leapstack-labs/vfront/pkg/parser"
)

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string       `koanf:"output"`
	Verbose      bool         `koanf:"verbose"`
	LogLevel     string       `koanf:"log_level"`
	Parser       ParserConfig `koanf:"parser"`
	Watch        WatchConfig  `koanf:"watch"`
	REPL         REPLConfig   `koanf:"repl"`
}

// ParserConfig controls grammar options.
type ParserConfig struct {
	// Operators are the Symbol texts accepted as binary operators.
	Operators []string `koanf:"operators"`
	// Strict rejects tokens after 'endmodule'.
	Strict bool `koanf:"strict"`
	// AllModules parses every module in a file instead of the first.
	AllModules bool `koanf:"all_modules"`
}

// Options converts the parser configuration into parser options.
func (c ParserConfig) Options() []parser.Option {
	opts := []parser.Option{parser.WithRequireEOF(c.Strict)}
	if len(c.Operators) > 0 {
		opts = append(opts, parser.WithOperators(c.Operators...))
	}
	return opts
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	Debounce time.Duration `koanf:"debounce"`
}

// REPLConfig controls the interactive prompt.
type REPLConfig struct {
	// HistoryFile is where readline keeps input history. Empty disables it.
	HistoryFile string `koanf:"history_file"`
}

// Default configuration values.
const (
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel = "info"
	DefaultDebounce = 100 * time.Millisecond
)

// Config file names searched in the working directory, in order.
var configFileNames = []string{"vfront.yaml", "vfront.yml"}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		Parser: ParserConfig{
			Operators: append([]string(nil), parser.DefaultOperators...),
		},
		Watch: WatchConfig{Debounce: DefaultDebounce},
	}
}
