package langdef

import (
	"strconv"
	"strings"
	"testing"

	"github.com/ava12/salgol"
	"github.com/ava12/salgol/lexer"
	"github.com/ava12/salgol/source"
)

func checkErrorCode(t *testing.T, samples []string, code int) {
	eCode := strconv.Itoa(code)
	for index, src := range samples {
		errPrefix := "input #" + strconv.Itoa(index)
		_, e := Parse(source.New("string", []byte(src)))

		if code == 0 {
			if e != nil {
				t.Error(errPrefix + ": unexpected error: " + e.Error())
				return
			}
			continue
		}

		if e == nil {
			t.Error(errPrefix + ": error expected, got success")
			return
		}

		pe, is := e.(*salgol.Error)
		if !is {
			t.Error(errPrefix + ": salgol.Error expected, got \"" + e.Error() + "\"")
			return
		}

		if pe.Code != code {
			t.Error(errPrefix + ": expected error code " + eCode + ", got " + strconv.Itoa(pe.Code) + " (" + pe.Message + ")")
			return
		}

		if !salgol.IsGrammarError(e) {
			t.Error(errPrefix + ": grammar error class expected")
			return
		}
	}
}

func TestValidDescriptions(t *testing.T) {
	samples := []string{
		`a = "x";`,
		"# comment\na = b c:more*; b = id; c = \"y\" b; # trailing\n",
		`a = "x" | "y" a?;`,
		`prog = "let" id:name "=" number | "write" string;`,
	}
	checkErrorCode(t, samples, 0)
}

func TestUnexpectedEof(t *testing.T) {
	samples := []string{
		"foo",
		"foo = ",
		`foo = "bar"`,
		`foo = "bar" |`,
		`foo = bar:`,
	}
	checkErrorCode(t, samples, UnexpectedEofError)
}

func TestEmptyDescription(t *testing.T) {
	samples := []string{
		"",
		" ",
		"# nothing here\n",
	}
	checkErrorCode(t, samples, EmptyDescriptionError)
}

func TestUnexpectedToken(t *testing.T) {
	samples := []string{
		"= foo;",
		`foo "bar";`,
		`foo = bar: "x";`,
		`"foo" = bar;`,
	}
	checkErrorCode(t, samples, UnexpectedTokenError)
}

func TestLexicalErrors(t *testing.T) {
	checkErrorCode(t, []string{"foo = bar & baz;"}, lexer.WrongCharError)
	checkErrorCode(t, []string{`foo = "bar;`, `foo = "";`}, lexer.BadTokenError)
}

func TestProductionDefined(t *testing.T) {
	samples := []string{
		`a = "x"; a = "y";`,
	}
	checkErrorCode(t, samples, ProductionDefinedError)
}

func TestReservedName(t *testing.T) {
	samples := []string{
		`id = "x";`,
		`a = type; type = "x";`,
	}
	checkErrorCode(t, samples, ReservedNameError)
}

func TestEmptyBranch(t *testing.T) {
	samples := []string{
		"a = ;",
		`a = "x" | ;`,
		`a = "x" || "y";`,
	}
	checkErrorCode(t, samples, EmptyBranchError)
}

func TestTerminalModifier(t *testing.T) {
	samples := []string{
		`a = "x"?;`,
		`a = "x"*;`,
		`a = "x":y;`,
	}
	checkErrorCode(t, samples, TerminalModifierError)
}

func TestDuplicateAlias(t *testing.T) {
	samples := []string{
		`a = b b; b = "x";`,
		`a = b c:b; b = "x"; c = "y";`,
		`a = id id;`,
	}
	checkErrorCode(t, samples, DuplicateAliasError)
}

func TestUndefinedReference(t *testing.T) {
	samples := []string{
		"a = b;",
		`a = "x" c;`,
		`a = "x" | "y" identifier;`,
	}
	checkErrorCode(t, samples, UndefinedReferenceError)
}

func TestOptionalFirst(t *testing.T) {
	samples := []string{
		`a = b? "x"; b = "y";`,
		`a = "z" | id* ";";`,
	}
	checkErrorCode(t, samples, OptionalFirstError)
}

func TestCycle(t *testing.T) {
	samples := []string{
		`a = b "x"; b = a "y";`,
		`a = a "x" | "y";`,
		`a = "x" | b; b = c; c = a;`,
	}
	checkErrorCode(t, samples, CycleError)

	_, e := ParseString("", `a = "x" | b; b = c; c = a;`)
	if e == nil || !strings.Contains(e.Error(), "a -> b -> c -> a") {
		t.Errorf("expecting cycle path in error message, got %v", e)
	}

	_, e = ParseString("", `a = "x" b; b = "y" a | "z";`)
	if e != nil {
		t.Errorf("right recursion must be allowed, got %s", e)
	}
}

func TestAmbiguity(t *testing.T) {
	samples := []string{
		`a = "x" b | "x"; b = "y";`,
		`a = b | c; b = "x"; c = "x" "y";`,
		`a = id | id "x";`,
		`a = b | "y"; b = "z" | c; c = "y";`,
	}
	checkErrorCode(t, samples, AmbiguityError)

	_, e := ParseString("", `a = b | c; b = "x"; c = "x" "y";`)
	if e == nil || !strings.Contains(e.Error(), `share lookahead "x"`) {
		t.Errorf("expecting shared token in error message, got %v", e)
	}
}

func TestErrorPosition(t *testing.T) {
	_, e := ParseString("desc", "a = \"x\";\nb = c;")
	se, f := e.(*salgol.Error)
	if !f || se.Code != UndefinedReferenceError {
		t.Fatalf("expecting undefined reference error, got %v", e)
	}
	if se.Line != 2 || se.Col != 5 || se.Offset != 13 || se.SourceName != "desc" {
		t.Errorf("unexpected error position: %s at %d", se.SourceName, se.Offset)
	}
}
