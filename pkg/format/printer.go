// Package format renders syntax trees and token streams as text.
package format

import (
	"bytes"
	"strings"
)

const indentSize = 2

// Printer accumulates indented output.
type Printer struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
}

func newPrinter() *Printer {
	return &Printer{
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
}

// String returns the printed output with a single trailing newline.
func (p *Printer) String() string {
	out := strings.TrimRight(p.output.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}
