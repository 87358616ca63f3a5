package parser

import (
	"fmt"

	"github.com/leapstack-labs/vfront/pkg/token"
)

// NodeKind identifies the construct a Node represents.
type NodeKind int

// Node kinds.
const (
	NodeModule NodeKind = iota
	NodePortList
	NodeInput
	NodeOutput
	NodeAssign
	NodeIdentifier
	NodeBinaryOp
)

var nodeKindNames = map[NodeKind]string{
	NodeModule:     "Module",
	NodePortList:   "PortList",
	NodeInput:      "Input",
	NodeOutput:     "Output",
	NodeAssign:     "Assign",
	NodeIdentifier: "Identifier",
	NodeBinaryOp:   "BinaryOp",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler so kinds encode by name.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Label of the port-list node.
const portsLabel = "ports"

// Node is a labeled syntax tree node. Children are owned by their parent;
// the tree has no shared subtrees and no back edges.
//
// Shape of a parsed module:
//
//	Module(name)
//	├── PortList("ports")
//	│   ├── Input("input")  → Identifier...
//	│   └── Output("output") → Identifier...
//	└── Assign → Identifier(target), Identifier | BinaryOp(op) → lhs, rhs
type Node struct {
	Kind     NodeKind       `json:"kind" yaml:"kind"`
	Label    string         `json:"label,omitempty" yaml:"label,omitempty"`
	Pos      token.Position `json:"pos" yaml:"pos"`
	Children []*Node        `json:"children,omitempty" yaml:"children,omitempty"`
}

func newNode(kind NodeKind, label string, pos token.Position, children ...*Node) *Node {
	return &Node{Kind: kind, Label: label, Pos: pos, Children: children}
}

// Ports returns the port-list child of a Module node, or nil.
func (n *Node) Ports() *Node {
	if n == nil || n.Kind != NodeModule || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Assigns returns the Assign children of a Module node in source order.
func (n *Node) Assigns() []*Node {
	if n == nil || n.Kind != NodeModule || len(n.Children) < 2 {
		return nil
	}
	return n.Children[1:]
}

// Inputs returns the names of all input ports declared on a Module node.
func (n *Node) Inputs() []string {
	return n.portNames(NodeInput)
}

// Outputs returns the names of all output ports declared on a Module node.
func (n *Node) Outputs() []string {
	return n.portNames(NodeOutput)
}

func (n *Node) portNames(kind NodeKind) []string {
	var names []string
	for _, group := range n.Ports().children() {
		if group.Kind != kind {
			continue
		}
		for _, id := range group.Children {
			names = append(names, id.Label)
		}
	}
	return names
}

func (n *Node) children() []*Node {
	if n == nil {
		return nil
	}
	return n.Children
}

// Walk traverses the tree depth-first in pre-order, calling fn with each
// node and its depth (root = 0). Returning false from fn skips the
// node's children.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}
