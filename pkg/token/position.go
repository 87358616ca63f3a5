package token

import "fmt"

// Position represents a location in the source code.
type Position struct {
	Line   int `json:"line" yaml:"line"`     // 1-based line number
	Column int `json:"column" yaml:"column"` // 1-based column number
}

// NoPos is the position carried by the end-of-input sentinel.
var NoPos = Position{Line: -1, Column: -1}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p comes strictly before q.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
