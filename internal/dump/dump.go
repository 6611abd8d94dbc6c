// Package dump renders syntax trees and grammars as JSON or YAML documents.
package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ava12/salgol/ast"
	"github.com/ava12/salgol/grammar"
	"github.com/ava12/salgol/internal/config"
	"github.com/ava12/salgol/source"
)

// Node is a serializable view of syntax tree element.
type Node struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Branch int      `json:"branch,omitempty" yaml:"branch,omitempty"`
	Offset int      `json:"offset" yaml:"offset"`
	Line   int      `json:"line,omitempty" yaml:"line,omitempty"`
	Text   string   `json:"text,omitempty" yaml:"text,omitempty"`
	Number *float64 `json:"number,omitempty" yaml:"number,omitempty"`
	Fields []Field  `json:"fields,omitempty" yaml:"fields,omitempty"`
}

type Field struct {
	Name  string  `json:"name" yaml:"name"`
	Items []*Node `json:"items" yaml:"items"`
}

// Tree converts syntax tree, line numbers are added if src is not nil.
// Empty fields are skipped.
func Tree(e ast.Element, src *source.Source) *Node {
	res := &Node{Kind: e.Kind(), Offset: e.Offset()}
	if src != nil {
		res.Line = src.Line(e.Offset())
	}

	switch x := e.(type) {
	case *ast.Leaf:
		res.Text = x.Text
		if x.Class == grammar.NumberClass {
			n := x.Number
			res.Number = &n
		}

	case *ast.Node:
		res.Branch = x.Branch
		for _, f := range x.Fields {
			if len(f.Items) == 0 {
				continue
			}

			field := Field{Name: f.Name, Items: make([]*Node, len(f.Items))}
			for i, item := range f.Items {
				field.Items[i] = Tree(item, src)
			}
			res.Fields = append(res.Fields, field)
		}
	}

	return res
}

// Grammar is a serializable view of compiled grammar.
type Grammar struct {
	Root        string       `json:"root" yaml:"root"`
	Symbols     []string     `json:"symbols" yaml:"symbols"`
	Productions []Production `json:"productions" yaml:"productions"`
	Unreachable []string     `json:"unreachable,omitempty" yaml:"unreachable,omitempty"`
}

type Production struct {
	Name      string   `json:"name" yaml:"name"`
	Lookahead []string `json:"lookahead" yaml:"lookahead"`
	Branches  []Branch `json:"branches" yaml:"branches"`
}

type Branch struct {
	Elements  string   `json:"elements" yaml:"elements"`
	Lookahead []string `json:"lookahead" yaml:"lookahead"`
}

// GrammarView converts compiled grammar.
func GrammarView(g *grammar.Grammar) *Grammar {
	res := &Grammar{
		Root:        g.Root().Name,
		Symbols:     make([]string, len(g.Symbols)),
		Productions: make([]Production, len(g.Productions)),
		Unreachable: g.Unreachable,
	}
	for i, s := range g.Symbols {
		res.Symbols[i] = s.String()
	}

	for i, p := range g.Productions {
		vp := Production{
			Name:      p.Name,
			Lookahead: g.SymbolNames(p.Lookahead),
			Branches:  make([]Branch, len(p.Branches)),
		}
		for j, b := range p.Branches {
			vp.Branches[j] = Branch{FormatBranch(&b), g.SymbolNames(b.Lookahead)}
		}
		res.Productions[i] = vp
	}

	return res
}

// FormatBranch renders branch elements in grammar description notation.
func FormatBranch(b *grammar.Branch) string {
	parts := make([]string, len(b.Elements))
	for i, el := range b.Elements {
		if el.Kind == grammar.TermElement {
			parts[i] = strconv.Quote(el.Text)
			continue
		}

		text := el.Text
		if el.Alias != "" && el.Alias != el.Text {
			text += ":" + el.Alias
		}
		parts[i] = text + el.Card.String()
	}
	return strings.Join(parts, " ")
}

// Match is a located syntax tree element.
type Match struct {
	Kind   string `json:"kind" yaml:"kind"`
	Offset int    `json:"offset" yaml:"offset"`
	Line   int    `json:"line" yaml:"line"`
	Col    int    `json:"col" yaml:"col"`
	Text   string `json:"text" yaml:"text"`
}

// Find locates elements of given kinds, Text contains the first line of element source.
func Find(root ast.Element, src *source.Source, kinds ...string) []Match {
	found := ast.Find(root, kinds...)
	res := make([]Match, len(found))
	for i, e := range found {
		line, col := src.LineCol(e.Offset())
		text := src.Text()[e.Offset():]
		if nl := strings.IndexByte(text, '\n'); nl >= 0 {
			text = text[:nl]
		}
		res[i] = Match{e.Kind(), e.Offset(), line, col, strings.TrimRight(text, " \t\r")}
	}
	return res
}

// Write encodes v in given format (config.JSONFormat or config.YAMLFormat).
func Write(w io.Writer, format string, v any) error {
	switch format {
	case config.JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case config.YAMLFormat:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if e := enc.Encode(v); e != nil {
			return e
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
