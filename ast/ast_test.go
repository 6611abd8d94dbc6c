package ast

import (
	"strings"
	"testing"

	"github.com/ava12/salgol/grammar"
	. "github.com/ava12/salgol/internal/test"
)

// sampleTree builds tree for "let x = 5; write x".
func sampleTree() *Node {
	letDecl := &Node{Production: "let_decl", Pos: 0, Fields: []Field{
		{Name: "identifier", Items: []Element{&Leaf{Class: grammar.IdClass, Pos: 4, Text: "x"}}},
		{Name: "clause", Items: []Element{&Leaf{Class: grammar.NumberClass, Pos: 8, Text: "5", Number: 5}}},
		{Name: "comment", Card: grammar.Optional},
	}}
	write := &Node{Production: "write_clause", Pos: 11, Fields: []Field{
		{Name: "write_list", Items: []Element{&Leaf{Class: grammar.IdClass, Pos: 17, Text: "x"}}},
	}}
	follow := &Node{Production: "sequence_follow", Pos: 9, Fields: []Field{
		{Name: "sequence_el", Items: []Element{write}},
	}}
	return &Node{Production: "sequence", Fields: []Field{
		{Name: "sequence_el", Items: []Element{letDecl}},
		{Name: "sequence_follow", Card: grammar.Many, Items: []Element{follow}},
	}}
}

func kinds(es []Element) string {
	res := make([]string, len(es))
	for i, e := range es {
		res[i] = e.Kind()
	}
	return strings.Join(res, " ")
}

func TestAccessors(t *testing.T) {
	root := sampleTree()
	let := root.Node("sequence_el")
	Assert(t, let != nil, "expecting let_decl node")
	ExpectString(t, "let_decl/0", let.Tag().String())
	ExpectBool(t, true, let.Is("let_decl", 0))
	ExpectString(t, "x", let.Leaf("identifier").Text)
	Expect(t, let.Leaf("clause").Number == 5, 5, let.Leaf("clause").Number)
	ExpectBool(t, false, let.Has("comment"))
	Assert(t, let.Field("comment") != nil, "expecting empty optional field")
	Assert(t, let.One("comment") == nil, "expecting nil for empty field")
	Assert(t, let.Node("identifier") == nil, "leaf is not a node")
	Assert(t, let.Field("none") == nil && let.Many("none") == nil, "expecting nil for unknown field")

	follows := root.Nodes("sequence_follow")
	ExpectInt(t, 1, len(follows))
	ExpectInt(t, 9, follows[0].Offset())
	ExpectString(t, "let_decl sequence_follow", kinds(root.Children()))
}

func TestWalk(t *testing.T) {
	root := sampleTree()
	var visited []Element
	Walk(root, WalkLtr, func(e Element) (bool, bool) {
		visited = append(visited, e)
		return true, true
	})
	ExpectString(t, "sequence let_decl id number sequence_follow write_clause id", kinds(visited))

	prev := -1
	for _, e := range visited {
		Assert(t, e.Offset() >= prev, "offset %d of %s is less than %d", e.Offset(), e.Kind(), prev)
		prev = e.Offset()
	}

	visited = nil
	Walk(root, WalkRtl, func(e Element) (bool, bool) {
		visited = append(visited, e)
		_, isNode := e.(*Node)
		return isNode && e.Kind() != "let_decl", true
	})
	ExpectString(t, "sequence sequence_follow write_clause id let_decl", kinds(visited))
}

func TestSelector(t *testing.T) {
	root := sampleTree()
	ids := NewSelector().Search(IsLeaf(grammar.IdClass), true).Apply(root)
	ExpectInt(t, 2, len(ids))
	ExpectInt(t, 4, ids[0].Offset())
	ExpectInt(t, 17, ids[1].Offset())

	decls := Find(root, "let_decl", "write_clause")
	ExpectString(t, "let_decl write_clause", kinds(decls))

	shallow := NewSelector().Search(IsA("sequence_follow", "write_clause"), false).Apply(root)
	ExpectString(t, "sequence_follow", kinds(shallow))

	fives := NewSelector().
		Search(IsBranch("let_decl", 0), true).
		Fields("clause", "identifier").
		Filter(IsAll(IsLeaf(grammar.NoClass), IsNot(HasText("x")))).
		Apply(root)
	ExpectString(t, "number", kinds(fives))

	unique := NewSelector().Search(IsAny(IsA("id"), HasText("x")), true).Apply(root, root)
	ExpectInt(t, 2, len(unique))
}
