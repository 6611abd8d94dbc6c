// Package ast defines syntax tree produced by parser.
//
// Every non-terminal is a *Node tagged by production name and branch index,
// every lexical class value is a *Leaf. Trees are never modified after parsing
// and may be read concurrently.
package ast

import (
	"strconv"

	"github.com/ava12/salgol/grammar"
)

// Element is either *Node or *Leaf.
type Element interface {
	// Offset returns byte offset of the first source character of the element.
	Offset() int

	// Kind returns production name for nodes and class name for leaves.
	Kind() string

	isElement()
}

// Leaf is a matched lexical class value.
type Leaf struct {
	Class grammar.Class
	Pos   int

	// Text contains matched text, for strings it is the content between quotes.
	Text string

	// Number contains numeric value for number leaves.
	Number float64
}

func (l *Leaf) Offset() int {
	return l.Pos
}

func (l *Leaf) Kind() string {
	return l.Class.String()
}

func (l *Leaf) isElement() {}

// Field contains values bound to a single branch element.
// Required fields contain exactly one item, optional ones contain zero or one item.
type Field struct {
	Name  string
	Card  grammar.Cardinality
	Items []Element
}

// Tag identifies the branch that produced a node.
type Tag struct {
	Production string
	Branch     int
}

func (t Tag) String() string {
	return t.Production + "/" + strconv.Itoa(t.Branch)
}

type Node struct {
	Production string
	Branch     int
	Pos        int
	Fields     []Field
}

func (n *Node) Offset() int {
	return n.Pos
}

func (n *Node) Kind() string {
	return n.Production
}

func (n *Node) isElement() {}

// Tag returns node variant tag.
func (n *Node) Tag() Tag {
	return Tag{n.Production, n.Branch}
}

// Is tells whether node was produced by given production and branch.
func (n *Node) Is(production string, branch int) bool {
	return n.Production == production && n.Branch == branch
}

// Field returns named field or nil.
func (n *Node) Field(name string) *Field {
	for i := range n.Fields {
		if n.Fields[i].Name == name {
			return &n.Fields[i]
		}
	}
	return nil
}

// Has tells whether named field exists and contains at least one item.
func (n *Node) Has(name string) bool {
	f := n.Field(name)
	return f != nil && len(f.Items) > 0
}

// One returns the first item of named field or nil if the field is absent or empty.
func (n *Node) One(name string) Element {
	f := n.Field(name)
	if f == nil || len(f.Items) == 0 {
		return nil
	}
	return f.Items[0]
}

// Many returns all items of named field.
func (n *Node) Many(name string) []Element {
	f := n.Field(name)
	if f == nil {
		return nil
	}
	return f.Items
}

// Node returns the first item of named field if it is a node, nil otherwise.
func (n *Node) Node(name string) *Node {
	res, _ := n.One(name).(*Node)
	return res
}

// Leaf returns the first item of named field if it is a leaf, nil otherwise.
func (n *Node) Leaf(name string) *Leaf {
	res, _ := n.One(name).(*Leaf)
	return res
}

// Nodes returns node items of named field.
func (n *Node) Nodes(name string) []*Node {
	items := n.Many(name)
	res := make([]*Node, 0, len(items))
	for _, item := range items {
		if nn, f := item.(*Node); f {
			res = append(res, nn)
		}
	}
	return res
}

// Children returns items of all fields in field order.
func (n *Node) Children() []Element {
	cnt := 0
	for _, f := range n.Fields {
		cnt += len(f.Items)
	}

	res := make([]Element, 0, cnt)
	for _, f := range n.Fields {
		res = append(res, f.Items...)
	}
	return res
}
