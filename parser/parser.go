// Package parser implements predictive parser interpreting compiled grammar.
//
// Parser never backtracks: a branch is selected by its lookahead set at the current position,
// and any mismatch inside the selected branch terminates parsing.
// Statement separator lookahead may be guarded by continuation set (see langdef),
// in that case the separator matches only if the continuation matches right after it.
//
// Parser holds no mutable state, so a single Parser may be used by any number of goroutines.
package parser

import (
	"github.com/ava12/salgol/ast"
	"github.com/ava12/salgol/grammar"
	"github.com/ava12/salgol/scanner"
	"github.com/ava12/salgol/source"
)

type Parser struct {
	grammar *grammar.Grammar
}

// New creates parser for compiled grammar.
func New(g *grammar.Grammar) *Parser {
	return &Parser{g}
}

// Grammar returns parser grammar.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.grammar
}

// ParseString parses source text starting with the root production.
// Returns nil and salgol.Error on syntax error.
func (p *Parser) ParseString(name, text string) (*ast.Node, error) {
	return p.Parse(source.NewString(name, text))
}

// Parse parses source starting with the root production.
// Returns nil and salgol.Error on syntax error.
func (p *Parser) Parse(src *source.Source) (*ast.Node, error) {
	return p.parse(src, grammar.RootProduction)
}

// ParseProduction parses source starting with named production.
// Returns nil and salgol.Error on syntax error or if production is not defined.
func (p *Parser) ParseProduction(src *source.Source, name string) (*ast.Node, error) {
	index := p.grammar.ProductionIndex(name)
	if index < 0 {
		return nil, unknownProductionError(name)
	}

	return p.parse(src, index)
}

func (p *Parser) parse(src *source.Source, index int) (*ast.Node, error) {
	c := &parseContext{
		g:   p.grammar,
		src: src,
		sc:  scanner.New(src.Text(), p.grammar),
	}

	n, f := c.parseProduction(index)
	if f == nil {
		f = c.finish()
	}
	if f != nil {
		return nil, positionedError(src, c.sc.SkipSpace(c.pos), f)
	}

	return n, nil
}

type parseContext struct {
	g   *grammar.Grammar
	src *source.Source
	sc  *scanner.Scanner
	pos int
}

// probe tells whether any of symbols matches at from, consuming nothing.
func (c *parseContext) probe(symbols, continuation []int, from int) bool {
	for _, si := range symbols {
		s := &c.g.Symbols[si]
		switch s.Kind {
		case grammar.SeparatorSymbol:
			n := c.sc.MatchSeparator(from)
			if n == 0 {
				continue
			}
			if continuation == nil {
				return true
			}
			return c.probe(continuation, nil, from+n)

		case grammar.ClassSymbol:
			if _, f := c.sc.MatchClass(c.sc.SkipSpace(from), s.Class); f {
				return true
			}

		default:
			if c.sc.MatchTerminal(c.sc.SkipSpace(from), s.Text) {
				return true
			}
		}
	}

	return false
}

func (c *parseContext) selectBranch(p *grammar.Production) int {
	for i := range p.Branches {
		if c.probe(p.Branches[i].Lookahead, nil, c.pos) {
			return i
		}
	}
	return -1
}

func (c *parseContext) parseProduction(index int) (*ast.Node, *parseFailure) {
	p := &c.g.Productions[index]
	bi := c.selectBranch(p)
	if bi < 0 {
		return nil, c.noBranchError(p)
	}

	b := &p.Branches[bi]
	n := &ast.Node{
		Production: p.Name,
		Branch:     bi,
		Pos:        c.sc.SkipSpace(c.pos),
		Fields:     make([]ast.Field, 0, len(b.Elements)),
	}

	for ei := range b.Elements {
		el := &b.Elements[ei]
		var f *parseFailure
		switch el.Kind {
		case grammar.TermElement:
			f = c.expectTerminal(el.Text)

		case grammar.ClassElement:
			var items []ast.Element
			items, f = c.parseClass(el)
			n.Fields = append(n.Fields, ast.Field{Name: el.Alias, Card: el.Card, Items: items})

		case grammar.NodeElement:
			var items []ast.Element
			items, f = c.parseNodes(el)
			n.Fields = append(n.Fields, ast.Field{Name: el.Alias, Card: el.Card, Items: items})
		}

		if f != nil {
			return nil, f
		}
	}

	return n, nil
}

func (c *parseContext) expectTerminal(term string) *parseFailure {
	if term == grammar.Separator {
		n := c.sc.MatchSeparator(c.pos)
		if n == 0 {
			return c.expectedSeparatorError()
		}

		c.pos += n
		return nil
	}

	at := c.sc.SkipSpace(c.pos)
	if !c.sc.MatchTerminal(at, term) {
		return c.expectedTerminalError(term)
	}

	c.pos = at + len(term)
	return nil
}

func (c *parseContext) matchLeaf(class grammar.Class) *ast.Leaf {
	at := c.sc.SkipSpace(c.pos)
	lexeme, f := c.sc.MatchClass(at, class)
	if !f {
		return nil
	}

	c.pos = at + lexeme.Len
	return &ast.Leaf{Class: class, Pos: at, Text: lexeme.Text, Number: lexeme.Number}
}

func (c *parseContext) parseClass(el *grammar.Element) ([]ast.Element, *parseFailure) {
	class := c.g.Symbols[el.Symbol].Class
	items := make([]ast.Element, 0, 1)
	for {
		leaf := c.matchLeaf(class)
		if leaf == nil {
			break
		}

		items = append(items, leaf)
		if el.Card != grammar.Many {
			break
		}
	}

	if el.Card == grammar.One && len(items) == 0 {
		return nil, c.expectedClassError(class)
	}

	return items, nil
}

func (c *parseContext) parseNodes(el *grammar.Element) ([]ast.Element, *parseFailure) {
	if el.Card == grammar.One {
		n, f := c.parseProduction(el.Production)
		if f != nil {
			return nil, f
		}

		return []ast.Element{n}, nil
	}

	lookahead := c.g.Productions[el.Production].Lookahead
	items := make([]ast.Element, 0)
	for c.probe(lookahead, el.Continuation, c.pos) {
		n, f := c.parseProduction(el.Production)
		if f != nil {
			return nil, f
		}

		items = append(items, n)
		if el.Card != grammar.Many {
			break
		}
	}

	return items, nil
}

// finish consumes trailing separators and whitespace, anything else is an error.
func (c *parseContext) finish() *parseFailure {
	for {
		n := c.sc.MatchSeparator(c.pos)
		if n == 0 {
			break
		}
		c.pos += n
	}

	c.pos = c.sc.SkipSpace(c.pos)
	if c.pos < c.sc.Len() {
		return c.trailingInputError()
	}

	return nil
}
