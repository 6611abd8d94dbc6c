package lang

import (
	"errors"
	"strings"
	"testing"

	"github.com/ava12/salgol"
	"github.com/ava12/salgol/ast"
	"github.com/ava12/salgol/grammar"
	. "github.com/ava12/salgol/internal/test"
	"github.com/ava12/salgol/parser"
)

type analyzerFunc func(root *ast.Node) error

func (f analyzerFunc) Analyze(root *ast.Node) error {
	return f(root)
}

type generatorFunc func(root *ast.Node) (string, error)

func (f generatorFunc) Generate(root *ast.Node) (string, error) {
	return f(root)
}

// lastId reports the last identifier of a tree as undeclared.
var lastId = analyzerFunc(func(root *ast.Node) error {
	ids := ast.Find(root, grammar.IdClass.String())
	if len(ids) == 0 {
		return nil
	}
	return salgol.NewAnalyzerError(ids[len(ids)-1].Offset(), "undeclared identifier")
})

func TestCompile(t *testing.T) {
	c := &Compiler{
		Prelude: DefaultPrelude(),
		Generator: generatorFunc(func(root *ast.Node) (string, error) {
			return strings.Join([]string{root.Production, Statement(SequenceElements(root)[0]).Production}, " "), nil
		}),
	}

	res, e := c.Compile("sample", "write 1")
	ExpectNoError(t, e)
	ExpectString(t, "program forward", res.Code)
	Assert(t, res.Root != nil, "expecting syntax tree")
}

func TestPreludeParseError(t *testing.T) {
	c := &Compiler{Prelude: DefaultPrelude()}
	_, e := c.Compile("sample", "let s = 1\nlet x = ;")
	ee := ExpectErrorCode(t, parser.NoBranchError, e)
	ExpectInt(t, 18, ee.Offset)
	ExpectInt(t, 2, ee.Line)
	ExpectInt(t, 9, ee.Col)
	ExpectString(t, "sample", ee.SourceName)
	Assert(t, strings.HasSuffix(ee.Message, " in sample at line 2 col 9"), "wrong message: %s", ee.Message)
}

func TestErrorInPrelude(t *testing.T) {
	c := &Compiler{Prelude: "let = 1\n"}
	_, e := c.Compile("sample", "write x")
	ee := ExpectErrorCode(t, parser.NoBranchError, e)
	ExpectInt(t, 4, ee.Offset)
	ExpectString(t, PreludeName, ee.SourceName)
}

func TestAnalyzerError(t *testing.T) {
	c := &Compiler{Prelude: DefaultPrelude(), Analyzer: lastId}
	_, e := c.Compile("sample", "write y")
	ee := ExpectErrorCode(t, salgol.AnalysisError, e)
	ExpectBool(t, true, salgol.IsAnalyzerError(e))
	ExpectInt(t, 6, ee.Offset)
	ExpectInt(t, 1, ee.Line)
	ExpectString(t, "undeclared identifier", ee.Reason())
}

func TestGeneratorError(t *testing.T) {
	c := &Compiler{Generator: generatorFunc(func(root *ast.Node) (string, error) {
		return "", salgol.NewUnsupportedError("raster")
	})}
	_, e := c.Compile("sample", "ror a onto b")
	ee := ExpectErrorCode(t, salgol.UnsupportedError, e)
	ExpectBool(t, true, salgol.IsUnsupportedError(e))
	ExpectInt(t, -1, ee.Offset)
}

func TestFormatError(t *testing.T) {
	text := "let a = 1\nlet x = ;"
	_, e := Parse("", text)
	msg := FormatError(text, e)
	Assert(t, strings.HasPrefix(msg, `Error on line 2: unexpected ";" in clause, expecting one of: `), "wrong message: %s", msg)
	Assert(t, !strings.Contains(msg, " at line "), "position must not be repeated: %s", msg)

	ExpectString(t, "Error on line 1: undeclared", FormatError("x", salgol.NewAnalyzerError(0, "undeclared")))
	ExpectString(t, "Error: boom", FormatError(text, errors.New("boom")))
}

func TestFormatPreludeError(t *testing.T) {
	c := &Compiler{Prelude: "let a = 1\nlet = 1\n"}
	text := "write a"
	_, e := c.Compile("sample", text)
	ee := ExpectErrorCode(t, parser.NoBranchError, e)
	ExpectInt(t, 2, ee.Line)

	msg := FormatError(text, e)
	Assert(t, strings.HasPrefix(msg, "Error in prelude on line 2: unexpected \"=\""), "wrong message: %s", msg)
}
