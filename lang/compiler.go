package lang

import (
	"errors"
	"fmt"

	"github.com/ava12/salgol"
	"github.com/ava12/salgol/ast"
	"github.com/ava12/salgol/parser"
	"github.com/ava12/salgol/source"
)

// PreludeName is the source name used for errors located in prelude.
const PreludeName = "prelude"

// Analyzer checks syntax tree, failures are salgol.Error of salgol.AnalyzerErrors class.
type Analyzer interface {
	Analyze(root *ast.Node) error
}

// Generator translates syntax tree to target language source,
// failures are salgol.Error of salgol.CodeGenErrors class.
type Generator interface {
	Generate(root *ast.Node) (string, error)
}

// Compiler runs parsing, analysis, and code generation for a program.
// Prelude is prepended to program text, error positions refer to program text.
// Zero value parses programs with embedded grammar and no prelude.
type Compiler struct {
	Prelude   string
	Parser    *parser.Parser
	Analyzer  Analyzer
	Generator Generator
}

// Result contains compilation results.
type Result struct {
	// Root contains syntax tree of prelude and program.
	Root *ast.Node

	// Code contains generated code, empty if there is no generator.
	Code string
}

func (c *Compiler) parser() (*parser.Parser, error) {
	if c.Parser != nil {
		return c.Parser, nil
	}
	return Parser()
}

// Compile compiles program text.
// Returns salgol.Error on failure, its position is relative to program text.
func (c *Compiler) Compile(name, text string) (*Result, error) {
	p, e := c.parser()
	if e != nil {
		return nil, e
	}

	src := source.NewString(name, text)
	root, e := p.Parse(source.NewString(name, c.Prelude+text))
	if e != nil {
		return nil, c.relocate(src, e)
	}
	logger().Debugf("parsed %s", name)

	res := &Result{Root: root}
	if c.Analyzer != nil {
		e = c.Analyzer.Analyze(root)
		if e != nil {
			return nil, c.relocate(src, e)
		}
	}

	if c.Generator != nil {
		res.Code, e = c.Generator.Generate(root)
		if e != nil {
			return nil, c.relocate(src, e)
		}
	}

	return res, nil
}

func (c *Compiler) relocate(src *source.Source, e error) error {
	var se *salgol.Error
	if !errors.As(e, &se) || se.Offset < 0 {
		return e
	}

	offset := se.Offset - len(c.Prelude)
	if offset >= 0 {
		return se.Relocate(src.Position(offset))
	}

	prelude := source.NewString(PreludeName, c.Prelude)
	return se.Relocate(prelude.Position(se.Offset))
}

// FormatError formats error for display as "Error on line N: message",
// line number is counted in program text.
// Errors located in prelude are formatted as "Error in prelude on line N: message".
func FormatError(text string, e error) string {
	var se *salgol.Error
	if !errors.As(e, &se) || se.Offset < 0 {
		return fmt.Sprintf("Error: %s", e)
	}

	if se.SourceName == PreludeName {
		return fmt.Sprintf("Error in %s on line %d: %s", PreludeName, se.Line, se.Reason())
	}

	line := source.NewString("", text).Line(se.Offset)
	return fmt.Sprintf("Error on line %d: %s", line, se.Reason())
}
