package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/vfront/internal/cli/output"
	"github.com/leapstack-labs/vfront/pkg/parser"
)

var validLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}

	level := strings.ToLower(c.LogLevel)
	valid := false
	for _, l := range validLogLevels {
		if level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log_level %q is not one of %s", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if len(c.Parser.Operators) == 0 {
		return fmt.Errorf("parser.operators must not be empty")
	}
	for _, op := range c.Parser.Operators {
		if parser.IsOperatorText(op) {
			continue
		}
		return fmt.Errorf("parser.operators: %q is not a single symbol character", op)
	}

	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive, got %s", c.Watch.Debounce)
	}
	return nil
}
