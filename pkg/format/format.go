package format

import (
	"strings"

	"github.com/leapstack-labs/vfront/pkg/parser"
	"github.com/leapstack-labs/vfront/pkg/token"
)

// Tree renders n depth-first, one node per line, indented by depth:
//
//	top (Module)
//	  ports (PortList)
//	    input (Input)
//	      a (Identifier)
//
// Nodes without a label print only their kind in parentheses.
func Tree(n *parser.Node) string {
	p := newPrinter()
	p.tree(n)
	return p.String()
}

func (p *Printer) tree(n *parser.Node) {
	if n == nil {
		return
	}
	if n.Label != "" {
		p.write(n.Label)
		p.space()
	}
	p.write("(" + n.Kind.String() + ")")
	p.writeln()

	p.indent()
	for _, c := range n.Children {
		p.tree(c)
	}
	p.dedent()
}

// Tokens renders one token per line in the form
// Token(Kind, "text", Line: l, column: c).
func Tokens(tokens []token.Token) string {
	p := newPrinter()
	for _, t := range tokens {
		p.write(t.String())
		p.writeln()
	}
	return p.String()
}

// Verilog prints a Module node back as canonical source.
func Verilog(mod *parser.Node) string {
	p := newPrinter()
	p.module(mod)
	return p.String()
}

func (p *Printer) module(mod *parser.Node) {
	if mod == nil || mod.Kind != parser.NodeModule {
		return
	}
	p.write("module " + mod.Label + " (")
	var groups []string
	for _, g := range mod.Ports().Children {
		names := make([]string, 0, len(g.Children))
		for _, id := range g.Children {
			names = append(names, id.Label)
		}
		group := g.Label
		if len(names) > 0 {
			group += " " + strings.Join(names, ", ")
		}
		groups = append(groups, group)
	}
	p.write(strings.Join(groups, ", "))
	p.write(");")
	p.writeln()

	p.indent()
	for _, a := range mod.Assigns() {
		p.write("assign " + a.Children[0].Label + " = " + expr(a.Children[1]) + ";")
		p.writeln()
	}
	p.dedent()

	p.write("endmodule")
	p.writeln()
}

func expr(n *parser.Node) string {
	if n.Kind == parser.NodeBinaryOp && len(n.Children) == 2 {
		return expr(n.Children[0]) + " " + n.Label + " " + expr(n.Children[1])
	}
	return n.Label
}
