// Package lang contains S-algol grammar and parsing entry points.
//
// Grammar description is embedded and compiled once, on first use.
// All functions are safe for concurrent use.
package lang

import (
	_ "embed"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/ava12/salgol/ast"
	"github.com/ava12/salgol/grammar"
	"github.com/ava12/salgol/langdef"
	"github.com/ava12/salgol/parser"
	"github.com/ava12/salgol/source"
)

// GrammarName is the source name of embedded grammar description.
const GrammarName = "salgol.ebnf"

// Production names used by helpers.
const (
	ProgramProduction        = "program"
	SequenceProduction       = "sequence"
	SequenceElProduction     = "sequence_el"
	SequenceFollowProduction = "sequence_follow"
)

//go:embed salgol.ebnf
var grammarText string

//go:embed prelude.S
var preludeText string

func logger() commonlog.Logger {
	return commonlog.GetLogger("salgol.lang")
}

var compiled = sync.OnceValues(func() (*parser.Parser, error) {
	g, e := langdef.ParseString(GrammarName, grammarText)
	if e != nil {
		logger().Errorf("embedded grammar: %s", e)
		return nil, e
	}

	logger().Debugf("compiled %s: %d productions, %d symbols", GrammarName, len(g.Productions), len(g.Symbols))
	return parser.New(g), nil
})

// GrammarText returns embedded grammar description.
func GrammarText() string {
	return grammarText
}

// DefaultPrelude returns forward declarations of runtime library procedures.
func DefaultPrelude() string {
	return preludeText
}

// Grammar returns compiled S-algol grammar.
func Grammar() (*grammar.Grammar, error) {
	p, e := compiled()
	if e != nil {
		return nil, e
	}
	return p.Grammar(), nil
}

// Parser returns parser for compiled S-algol grammar.
func Parser() (*parser.Parser, error) {
	return compiled()
}

// Parse parses S-algol program text.
// Returns root node (program production) or salgol.Error with byte offset of the failure.
func Parse(name, text string) (*ast.Node, error) {
	return ParseSource(source.NewString(name, text))
}

// ParseSource parses S-algol program source.
func ParseSource(src *source.Source) (*ast.Node, error) {
	p, e := compiled()
	if e != nil {
		return nil, e
	}
	return p.Parse(src)
}

// Sequence returns top level sequence node of program tree.
// Returns n itself if it is a sequence node, nil if there is no sequence.
func Sequence(n *ast.Node) *ast.Node {
	if n == nil || n.Production == SequenceProduction {
		return n
	}
	return n.Node(SequenceProduction)
}

// SequenceElements returns sequence_el nodes of a sequence (or program) node in source order.
func SequenceElements(n *ast.Node) []*ast.Node {
	seq := Sequence(n)
	if seq == nil {
		return nil
	}

	res := seq.Nodes(SequenceElProduction)
	for _, follow := range seq.Nodes(SequenceFollowProduction) {
		res = append(res, follow.Nodes(SequenceElProduction)...)
	}
	return res
}

// Statement unwraps single-element branches starting at n and returns the first node
// whose branch has more elements, e.g. let_decl for sequence_el/declaration/let_decl.
func Statement(n *ast.Node) *ast.Node {
	g, e := Grammar()
	if e != nil {
		return n
	}

	for n != nil {
		p := g.Production(n.Production)
		if p == nil || n.Branch >= len(p.Branches) || len(p.Branches[n.Branch].Elements) != 1 {
			break
		}

		child := n.Node(p.Branches[n.Branch].Elements[0].Alias)
		if child == nil {
			break
		}
		n = child
	}
	return n
}
