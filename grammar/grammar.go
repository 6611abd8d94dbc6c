// Package grammar defines the compiled grammar model interpreted by parser.
// A Grammar is built once by langdef and is immutable afterwards.
package grammar

import (
	"strconv"
)

// Class is a builtin lexical class recognized by pattern rather than by spelling.
type Class int

const (
	NoClass Class = iota
	TypeClass
	NumberClass
	IdClass
	StringClass
)

// ClassCount is the number of builtin lexical classes.
const ClassCount = int(StringClass)

var classNames = [...]string{"", "type", "number", "id", "string"}

// String returns the reserved grammar name of the class.
func (c Class) String() string {
	if c <= NoClass || int(c) >= len(classNames) {
		return "class" + strconv.Itoa(int(c))
	}
	return classNames[c]
}

// ClassByName returns lexical class for reserved name or NoClass.
func ClassByName(name string) Class {
	for i := 1; i < len(classNames); i++ {
		if classNames[i] == name {
			return Class(i)
		}
	}
	return NoClass
}

// Separator is the terminal spelling used as statement separator sentinel.
// It matches a line break or semicolon with optional surrounding whitespace.
const Separator = ";"

type SymbolKind int

const (
	TerminalSymbol SymbolKind = iota
	SeparatorSymbol
	ClassSymbol
)

// Symbol is an entry of lookahead sets: a terminal, the separator, or a lexical class.
type Symbol struct {
	Kind  SymbolKind
	Text  string
	Class Class `json:",omitempty"`
}

func (s Symbol) String() string {
	switch s.Kind {
	case ClassSymbol:
		return s.Class.String()
	case SeparatorSymbol:
		return "separator"
	default:
		return strconv.Quote(s.Text)
	}
}

// ClassSymbolIndex returns the symbol index of lexical class c.
// Class symbols always occupy the first ClassCount indexes.
func ClassSymbolIndex(c Class) int {
	return int(c) - 1
}

type Cardinality int

const (
	One Cardinality = iota
	Optional
	Many
)

func (c Cardinality) String() string {
	switch c {
	case Optional:
		return "?"
	case Many:
		return "*"
	default:
		return ""
	}
}

type ElementKind int

const (
	TermElement ElementKind = iota
	ClassElement
	NodeElement
)

// Element is a single branch item.
type Element struct {
	Kind ElementKind

	// Text contains terminal spelling, class name, or production name.
	Text string

	// Alias contains binding name, empty for terminals.
	Alias string `json:",omitempty"`

	Card Cardinality `json:",omitempty"`

	// Symbol contains symbol index for terminals and classes, -1 for productions.
	Symbol int

	// Production contains production index for NodeElement, -1 otherwise.
	Production int

	// Continuation is not nil for optional and repeated elements guarded by the separator,
	// it contains symbols that must follow the separator.
	Continuation []int `json:",omitempty"`
}

// IsBinding tells whether element produces an AST field.
func (e *Element) IsBinding() bool {
	return e.Kind != TermElement
}

type Branch struct {
	Elements  []Element
	Lookahead []int
}

type Production struct {
	Name      string
	Branches  []Branch
	Lookahead []int
}

// RootProduction is the index of root production, i.e. the first declared one.
const RootProduction = 0

type Grammar struct {
	Symbols     []Symbol
	Productions []Production

	// Unreachable contains names of productions not reachable from the root.
	Unreachable []string `json:",omitempty"`

	terminals   map[string]int
	productions map[string]int
}

// New creates grammar and builds name indexes, symbols and productions must not be modified afterwards.
func New(symbols []Symbol, productions []Production) *Grammar {
	g := &Grammar{
		Symbols:     symbols,
		Productions: productions,
		terminals:   make(map[string]int),
		productions: make(map[string]int, len(productions)),
	}
	for i, s := range symbols {
		if s.Kind != ClassSymbol {
			g.terminals[s.Text] = i
		}
	}
	for i, p := range productions {
		g.productions[p.Name] = i
	}
	return g
}

// Root returns the root production.
func (g *Grammar) Root() *Production {
	return &g.Productions[RootProduction]
}

// ProductionIndex returns index of named production or -1.
func (g *Grammar) ProductionIndex(name string) int {
	i, f := g.productions[name]
	if !f {
		return -1
	}
	return i
}

// Production returns named production or nil.
func (g *Grammar) Production(name string) *Production {
	i := g.ProductionIndex(name)
	if i < 0 {
		return nil
	}
	return &g.Productions[i]
}

// IsTerminal tells whether text is a terminal spelling (keyword or symbol) of the grammar.
func (g *Grammar) IsTerminal(text string) bool {
	_, f := g.terminals[text]
	return f
}

// Terminal returns symbol index of terminal spelling or -1.
func (g *Grammar) Terminal(text string) int {
	i, f := g.terminals[text]
	if !f {
		return -1
	}
	return i
}

// SymbolNames returns printable names of symbols.
func (g *Grammar) SymbolNames(indexes []int) []string {
	res := make([]string, 0, len(indexes))
	for _, i := range indexes {
		if i >= 0 && i < len(g.Symbols) {
			res = append(res, g.Symbols[i].String())
		}
	}
	return res
}
