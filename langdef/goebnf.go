package langdef

import (
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"

	"github.com/ava12/salgol/grammar"
)

// Lexical productions of Go EBNF rendering, names starting with lowercase letter are lexical.
const (
	separatorName = "separator"
	digitName     = "digit"
	letterName    = "letter"
	charName      = "char"
)

var lexicalDefs = map[string]string{
	separatorName:               `";" | "\n" .`,
	digitName:                   `"0" … "9" .`,
	letterName:                  `"a" … "z" | "A" … "Z" | "_" .`,
	charName:                    `" " … "~" .`,
	grammar.TypeClass.String():   `{ "*" | "c" } ( "int" | "real" | "bool" | "string" | "pixel" | "pic" | "pntr" | "file" | "#pixel" | "#cpixel" ) .`,
	grammar.NumberClass.String(): `digit { digit } [ "." { digit } ] [ "e" digit { digit } ] .`,
	grammar.IdClass.String():     `( letter | digit ) [ { letter | digit | "." } ( letter | digit ) ] .`,
	grammar.StringClass.String(): `"\"" { "'\"" | "''" | char } "\"" .`,
}

var lexicalDeps = map[string][]string{
	grammar.NumberClass.String(): {digitName},
	grammar.IdClass.String():     {letterName, digitName},
	grammar.StringClass.String(): {charName},
}

var lexicalOrder = []string{
	separatorName,
	grammar.TypeClass.String(),
	grammar.NumberClass.String(),
	grammar.IdClass.String(),
	grammar.StringClass.String(),
	letterName,
	digitName,
	charName,
}

// GoEBNFName converts production name to a non-lexical Go EBNF production name,
// e.g. "let_decl" becomes "LetDecl".
func GoEBNFName(name string) string {
	var sb strings.Builder
	upper := true
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}

		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// FormatGoEBNF renders grammar in golang.org/x/exp/ebnf notation.
// Productions keep declaration order, lexical classes and helper productions follow them;
// only lexical productions actually referenced are emitted.
func FormatGoEBNF(g *grammar.Grammar) string {
	used := make(map[string]bool)
	var sb strings.Builder
	for _, p := range g.Productions {
		sb.WriteString(GoEBNFName(p.Name))
		sb.WriteString(" = ")
		for bi, b := range p.Branches {
			if bi > 0 {
				sb.WriteString(" | ")
			}
			for ei, el := range b.Elements {
				if ei > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(formatElement(&el, used))
			}
		}
		sb.WriteString(" .\n")
	}

	for _, name := range lexicalOrder {
		for _, dep := range lexicalDeps[name] {
			if used[name] {
				used[dep] = true
			}
		}
	}
	for _, name := range lexicalOrder {
		if used[name] {
			sb.WriteString(name + " = " + lexicalDefs[name] + "\n")
		}
	}

	return sb.String()
}

func formatElement(el *grammar.Element, used map[string]bool) string {
	var text string
	switch el.Kind {
	case grammar.TermElement:
		if el.Text == grammar.Separator {
			used[separatorName] = true
			return separatorName
		}
		return strconv.Quote(el.Text)

	case grammar.ClassElement:
		text = el.Text
		used[text] = true

	default:
		text = GoEBNFName(el.Text)
	}

	switch el.Card {
	case grammar.Optional:
		return "[ " + text + " ]"
	case grammar.Many:
		return "{ " + text + " }"
	default:
		return text
	}
}

// Verify renders grammar in Go EBNF notation, parses it back with golang.org/x/exp/ebnf
// and verifies that all productions are defined and reachable from the root one.
func Verify(g *grammar.Grammar) error {
	text := FormatGoEBNF(g)
	eg, e := ebnf.Parse(g.Root().Name+".ebnf", strings.NewReader(text))
	if e == nil {
		e = ebnf.Verify(eg, GoEBNFName(g.Root().Name))
	}
	if e != nil {
		return verifyError(e)
	}

	return nil
}
