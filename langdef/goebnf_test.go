package langdef

import (
	"strings"
	"testing"

	. "github.com/ava12/salgol/internal/test"
)

func TestGoEBNFName(t *testing.T) {
	samples := map[string]string{
		"program":       "Program",
		"let_decl":      "LetDecl",
		"exp2_tilde":    "Exp2Tilde",
		"sequence_el_":  "SequenceEl",
		"_x":            "X",
		"already_Camel": "AlreadyCamel",
	}
	for name, expected := range samples {
		ExpectString(t, expected, GoEBNFName(name))
	}
}

func TestFormatGoEBNF(t *testing.T) {
	g, e := ParseString("", `
seq = el follow*;
follow = ";" el;
el = "let" id "=" number? | "write" id:target;
`)
	ExpectNoError(t, e)

	text := FormatGoEBNF(g)
	expectedLines := []string{
		`Seq = El { Follow } .`,
		`Follow = separator El .`,
		`El = "let" id "=" [ number ] | "write" id .`,
		`separator = ";" | "\n" .`,
		`number = digit { digit } [ "." { digit } ] [ "e" digit { digit } ] .`,
		`id = ( letter | digit ) [ { letter | digit | "." } ( letter | digit ) ] .`,
		`letter = "a" … "z" | "A" … "Z" | "_" .`,
		`digit = "0" … "9" .`,
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	ExpectInt(t, len(expectedLines), len(lines))
	for i, l := range expectedLines {
		ExpectString(t, l, lines[i])
	}

	ExpectNoError(t, Verify(g))
}

func TestVerifyUnreachable(t *testing.T) {
	g, e := ParseString("", `a = "x" b; b = string; c = type;`)
	ExpectNoError(t, e)
	ExpectErrorCode(t, VerifyError, Verify(g))
}
