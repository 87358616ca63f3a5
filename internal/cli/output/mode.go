// Package output renders command results for terminals, pipes and machines.
package output

import (
	"fmt"
	"strings"
)

// Mode selects how command results are rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto" // TTY=text, non-TTY=markdown
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
)

// Modes lists every accepted mode, for flag completion and validation.
var Modes = []Mode{ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeYAML}

// ParseMode validates s. An empty string selects ModeAuto.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeAuto, nil
	}
	m := Mode(strings.ToLower(s))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want auto, text, markdown, json or yaml)", s)
}
