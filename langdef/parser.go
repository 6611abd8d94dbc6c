package langdef

import (
	"regexp"

	"github.com/tliron/commonlog"

	"github.com/ava12/salgol/grammar"
	"github.com/ava12/salgol/internal/symset"
	"github.com/ava12/salgol/lexer"
	"github.com/ava12/salgol/source"
)

// logger is resolved on each call, logging backend may be configured after package initialization.
func logger() commonlog.Logger {
	return commonlog.GetLogger("salgol.langdef")
}

type elementDef struct {
	grammar.Element
	token *lexer.Token
}

type branchDef struct {
	token     *lexer.Token
	elements  []elementDef
	lookahead *symset.Set
}

type productionDef struct {
	token     *lexer.Token
	name      string
	branches  []branchDef
	lookahead *symset.Set
}

// ParseString parses grammar description and returns a grammar on success.
// Returns nil and salgol.Error on error.
func ParseString(name, content string) (*grammar.Grammar, error) {
	return Parse(source.NewString(name, content))
}

// ParseBytes parses grammar description and returns a grammar on success.
// Returns nil and salgol.Error on error.
func ParseBytes(name string, content []byte) (*grammar.Grammar, error) {
	return Parse(source.New(name, content))
}

// Parse parses grammar description and returns a grammar on success.
// Returns nil and salgol.Error on error.
func Parse(s *source.Source) (*grammar.Grammar, error) {
	c := newParseContext(s)
	e := c.parse()
	e = resolveElements(c, e)
	e = computeLookaheads(c, e)
	e = assignContinuations(c, e)
	e = findUnreachable(c, e)

	return buildGrammar(c, e)
}

const (
	stringTok = "string"
	nameTok   = "name"
	opTok     = "op"
	wrongTok  = ""
)

const (
	equTok       = "="
	pipeTok      = "|"
	semicolonTok = ";"
	colonTok     = ":"
	optionalTok  = "?"
	manyTok      = "*"
)

var descLexer *lexer.Lexer

func init() {
	tokenTypes := []lexer.TokenType{
		{Type: 1, TypeName: stringTok},
		{Type: 2, TypeName: nameTok},
		{Type: 3, TypeName: opTok},
		{Type: lexer.ErrorTokenType, TypeName: wrongTok},
	}

	re := regexp.MustCompile(
		`^(?:\s+|#[^\n]*|` +
			`("[^"\n]+")|` +
			`([a-zA-Z_][a-zA-Z_0-9]*)|` +
			`([=|;:?*])|` +
			`("[^\n]{0,10}))`)

	descLexer = lexer.New(re, tokenTypes)
}

type parseContext struct {
	name        string
	cursor      *source.Cursor
	savedToken  *lexer.Token
	productions []productionDef
	index       map[string]int
	symbols     []grammar.Symbol
	terminals   map[string]int
	unreachable []string
}

func newParseContext(s *source.Source) *parseContext {
	symbols := make([]grammar.Symbol, grammar.ClassCount)
	for c := grammar.TypeClass; c <= grammar.StringClass; c++ {
		symbols[grammar.ClassSymbolIndex(c)] = grammar.Symbol{Kind: grammar.ClassSymbol, Text: c.String(), Class: c}
	}

	return &parseContext{
		name:      s.Name(),
		cursor:    source.NewCursor(s),
		index:     make(map[string]int),
		symbols:   symbols,
		terminals: make(map[string]int),
	}
}

func (c *parseContext) parse() error {
	for {
		t, e := c.fetch([]string{nameTok, lexer.EofTokenName}, true, nil)
		if e != nil {
			return e
		}

		if isEof(t) {
			break
		}

		e = c.parseProduction(t)
		if e != nil {
			return e
		}
	}

	if len(c.productions) == 0 {
		return emptyDescriptionError(c.name)
	}

	return nil
}

func (c *parseContext) put(t *lexer.Token) {
	if c.savedToken != nil {
		panic("cannot put " + t.TypeName() + " token: already put " + c.savedToken.TypeName())
	}

	c.savedToken = t
}

func isEof(t *lexer.Token) bool {
	return t.Type() == lexer.EofTokenType
}

// fetch returns the next token if its type name or text is listed in types.
// Otherwise returns EoF token in non-strict mode and puts any other token back,
// in strict mode returns an error.
func (c *parseContext) fetch(types []string, strict bool, e error) (*lexer.Token, error) {
	if e != nil {
		return nil, e
	}

	token := c.savedToken
	if token == nil {
		token, e = descLexer.Next(c.cursor)
		if e != nil {
			return nil, e
		}
	} else {
		c.savedToken = nil
	}

	for _, typ := range types {
		if token.TypeName() == typ || (token.TypeName() != stringTok && token.Text() == typ) {
			return token, nil
		}
	}

	if isEof(token) {
		if strict {
			return nil, eofError(token)
		} else {
			return token, nil
		}
	}

	if strict {
		return nil, unexpectedTokenError(token)
	}

	c.put(token)
	return nil, nil
}

func (c *parseContext) fetchOne(typ string, strict bool, e error) (*lexer.Token, error) {
	return c.fetch([]string{typ}, strict, e)
}

func (c *parseContext) skipOne(typ string, e error) error {
	_, e = c.fetchOne(typ, true, e)
	return e
}

func (c *parseContext) parseProduction(nameToken *lexer.Token) error {
	name := nameToken.Text()
	if grammar.ClassByName(name) != grammar.NoClass {
		return reservedNameError(nameToken)
	}

	_, has := c.index[name]
	if has {
		return defProductionError(nameToken)
	}

	p := productionDef{token: nameToken, name: name}
	e := c.skipOne(equTok, nil)
	for e == nil {
		var b branchDef
		b, e = c.parseBranch(name)
		if e != nil {
			break
		}

		p.branches = append(p.branches, b)
		var t *lexer.Token
		t, e = c.fetch([]string{pipeTok, semicolonTok}, true, nil)
		if e == nil && t.Text() == semicolonTok {
			break
		}
	}
	if e != nil {
		return e
	}

	c.index[name] = len(c.productions)
	c.productions = append(c.productions, p)
	return nil
}

func (c *parseContext) parseBranch(prod string) (branchDef, error) {
	var b branchDef
	for {
		t, e := c.fetch([]string{stringTok, nameTok}, false, nil)
		if e != nil {
			return b, e
		}

		if t == nil {
			break
		}

		if isEof(t) {
			return b, eofError(t)
		}

		if b.token == nil {
			b.token = t
		}

		var el elementDef
		if t.TypeName() == stringTok {
			el, e = c.parseTerminal(t)
		} else {
			el, e = c.parseReference(t)
		}
		if e != nil {
			return b, e
		}

		b.elements = append(b.elements, el)
	}

	if len(b.elements) == 0 {
		return b, emptyBranchError(c.savedToken, prod)
	}

	return b, nil
}

func (c *parseContext) parseTerminal(t *lexer.Token) (elementDef, error) {
	text := t.Text()
	el := elementDef{token: t}
	el.Kind = grammar.TermElement
	el.Text = text[1 : len(text)-1]
	el.Symbol = -1
	el.Production = -1

	mod, e := c.fetch([]string{colonTok, optionalTok, manyTok}, false, nil)
	if e == nil && mod != nil && !isEof(mod) {
		e = terminalModifierError(mod)
	}
	return el, e
}

func (c *parseContext) parseReference(t *lexer.Token) (elementDef, error) {
	el := elementDef{token: t}
	el.Kind = grammar.NodeElement
	el.Text = t.Text()
	el.Alias = t.Text()
	el.Symbol = -1
	el.Production = -1

	mod, e := c.fetchOne(colonTok, false, nil)
	if e == nil && mod != nil && !isEof(mod) {
		var alias *lexer.Token
		alias, e = c.fetchOne(nameTok, true, nil)
		if e == nil {
			el.Alias = alias.Text()
		}
	}

	mod, e = c.fetch([]string{optionalTok, manyTok}, false, e)
	if e == nil && mod != nil && !isEof(mod) {
		if mod.Text() == optionalTok {
			el.Card = grammar.Optional
		} else {
			el.Card = grammar.Many
		}
	}

	return el, e
}

func (c *parseContext) addTerminal(text string) int {
	i, has := c.terminals[text]
	if has {
		return i
	}

	kind := grammar.TerminalSymbol
	if text == grammar.Separator {
		kind = grammar.SeparatorSymbol
	}
	i = len(c.symbols)
	c.symbols = append(c.symbols, grammar.Symbol{Kind: kind, Text: text})
	c.terminals[text] = i
	return i
}

func resolveElements(c *parseContext, e error) error {
	if e != nil {
		return e
	}

	for pi := range c.productions {
		p := &c.productions[pi]
		for bi := range p.branches {
			e = c.resolveBranch(p.name, p.branches[bi].elements)
			if e != nil {
				return e
			}
		}
	}

	return nil
}

func (c *parseContext) resolveBranch(prod string, elements []elementDef) error {
	aliases := make(map[string]bool)
	for ei := range elements {
		el := &elements[ei]
		if el.Kind == grammar.TermElement {
			el.Symbol = c.addTerminal(el.Text)
			continue
		}

		if ei == 0 && el.Card != grammar.One {
			return optionalFirstError(el.token, prod)
		}

		if aliases[el.Alias] {
			return duplicateAliasError(el.token, el.Alias, prod)
		}
		aliases[el.Alias] = true

		class := grammar.ClassByName(el.Text)
		if class != grammar.NoClass {
			el.Kind = grammar.ClassElement
			el.Symbol = grammar.ClassSymbolIndex(class)
			continue
		}

		index, has := c.index[el.Text]
		if !has {
			return undefinedError(el.token, el.Text)
		}

		el.Production = index
	}

	return nil
}

func findUnreachable(c *parseContext, e error) error {
	if e != nil {
		return e
	}

	reached := symset.New()
	c.markReached(grammar.RootProduction, reached)
	for i, p := range c.productions {
		if !reached.Contains(i) {
			c.unreachable = append(c.unreachable, p.name)
			logger().Warningf("production %q is not reachable from %q in %s", p.name, c.productions[grammar.RootProduction].name, c.name)
		}
	}

	return nil
}

func (c *parseContext) markReached(index int, reached *symset.Set) {
	if reached.Contains(index) {
		return
	}

	reached.Add(index)
	for _, b := range c.productions[index].branches {
		for _, el := range b.elements {
			if el.Kind == grammar.NodeElement {
				c.markReached(el.Production, reached)
			}
		}
	}
}

func buildGrammar(c *parseContext, e error) (*grammar.Grammar, error) {
	if e != nil {
		return nil, e
	}

	prods := make([]grammar.Production, len(c.productions))
	for pi, pd := range c.productions {
		p := &prods[pi]
		p.Name = pd.name
		p.Lookahead = pd.lookahead.ToSlice()
		p.Branches = make([]grammar.Branch, len(pd.branches))
		for bi, bd := range pd.branches {
			els := make([]grammar.Element, len(bd.elements))
			for ei, el := range bd.elements {
				els[ei] = el.Element
			}
			p.Branches[bi].Elements = els
			p.Branches[bi].Lookahead = bd.lookahead.ToSlice()
		}
	}

	g := grammar.New(c.symbols, prods)
	g.Unreachable = c.unreachable
	logger().Debugf("compiled grammar %q: %d productions, %d symbols", c.name, len(prods), len(c.symbols))
	return g, nil
}
