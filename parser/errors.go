package parser

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/ava12/salgol"
	"github.com/ava12/salgol/grammar"
	"github.com/ava12/salgol/source"
)

const (
	NoBranchError = salgol.ParseErrors + iota
	ExpectedTerminalError
	ExpectedClassError
	ExpectedSeparatorError
	TrailingInputError
	UnknownProductionError
)

// parseFailure is raised inside a parse call, position is attached by the outermost caller.
type parseFailure struct {
	code    int
	message string
}

func (f *parseFailure) Error() string {
	return f.message
}

func (c *parseContext) found() string {
	lexeme := c.sc.Lexeme(c.pos)
	if lexeme == "" {
		return "end of input"
	}
	return fmt.Sprintf("%q", lexeme)
}

func (c *parseContext) expectedList(symbols []int) string {
	names := treeset.NewWithStringComparator()
	for _, name := range c.g.SymbolNames(symbols) {
		names.Add(name)
	}

	items := make([]string, 0, names.Size())
	for _, name := range names.Values() {
		items = append(items, name.(string))
	}
	return strings.Join(items, ", ")
}

func (c *parseContext) noBranchError(p *grammar.Production) *parseFailure {
	return &parseFailure{NoBranchError, fmt.Sprintf("unexpected %s in %s, expecting one of: %s",
		c.found(), p.Name, c.expectedList(p.Lookahead))}
}

func (c *parseContext) expectedTerminalError(term string) *parseFailure {
	return &parseFailure{ExpectedTerminalError, fmt.Sprintf("expecting %q, found %s", term, c.found())}
}

func (c *parseContext) expectedClassError(class grammar.Class) *parseFailure {
	return &parseFailure{ExpectedClassError, fmt.Sprintf("expecting %s, found %s", class, c.found())}
}

func (c *parseContext) expectedSeparatorError() *parseFailure {
	return &parseFailure{ExpectedSeparatorError, fmt.Sprintf("expecting separator, found %s", c.found())}
}

func (c *parseContext) trailingInputError() *parseFailure {
	return &parseFailure{TrailingInputError, fmt.Sprintf("unexpected input %s", c.found())}
}

func unknownProductionError(name string) *salgol.Error {
	return salgol.FormatError(UnknownProductionError, "unknown production %q", name)
}

func positionedError(src *source.Source, offset int, f *parseFailure) *salgol.Error {
	return salgol.FormatErrorPos(src.Position(offset), f.code, f.message)
}
