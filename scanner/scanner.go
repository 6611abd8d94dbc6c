// Package scanner implements lexical classifier for S-algol source text.
//
// There is no separate tokenization pass: parser asks scanner whether a terminal,
// the statement separator, or a lexical class matches at given byte offset.
// Scanner is immutable and safe for concurrent use.
package scanner

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ava12/salgol/grammar"
)

var (
	typeRe      = regexp.MustCompile(`^[*c]*(?:int|real|bool|string|pixel|pic|pntr|file|#pixel|#cpixel)`)
	numberRe    = regexp.MustCompile(`^\d+(?:\.\d*)?(?:e\d+)?`)
	idRe        = regexp.MustCompile(`^\w+(?:[.\w]*\w)?`)
	stringRe    = regexp.MustCompile(`^"((?:'"|''|.)*?)"`)
	spaceRe     = regexp.MustCompile(`^\s+`)
	separatorRe = regexp.MustCompile(`^\s*[\n;]\s*`)
	symbolsRe   = regexp.MustCompile(`^[^\s\w]+`)
	wordTailRe  = regexp.MustCompile(`^[.\w]*\w`)
)

// Keywords tells whether a word is reserved, *grammar.Grammar implements it.
type Keywords interface {
	IsTerminal(text string) bool
}

// Lexeme is a matched lexical class value.
type Lexeme struct {
	Class grammar.Class

	// Text contains matched text, for strings it is the raw content between quotes.
	Text string

	// Number contains numeric value for NumberClass.
	Number float64

	// Len contains byte length of the whole match.
	Len int
}

type Scanner struct {
	text     string
	keywords Keywords
}

// New creates scanner for source text, comments are stripped.
func New(text string, keywords Keywords) *Scanner {
	return &Scanner{StripComments(text), keywords}
}

// Text returns comment-stripped text, it has the same length as original one.
func (s *Scanner) Text() string {
	return s.text
}

// Len returns text length in bytes.
func (s *Scanner) Len() int {
	return len(s.text)
}

func (s *Scanner) rest(pos int) string {
	if pos >= len(s.text) {
		return ""
	}
	return s.text[pos:]
}

// SkipSpace returns offset of the first non-whitespace byte at or after pos.
func (s *Scanner) SkipSpace(pos int) int {
	return pos + len(spaceRe.FindString(s.rest(pos)))
}

// MatchSeparator returns length of statement separator starting exactly at pos, or 0.
func (s *Scanner) MatchSeparator(pos int) int {
	return len(separatorRe.FindString(s.rest(pos)))
}

// IsWord tells whether terminal spelling is word-shaped (i.e. a keyword).
func IsWord(term string) bool {
	return term != "" && isWordChar(term[0])
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// MatchTerminal tells whether terminal spelling matches at pos with no whitespace skipping.
// Keywords must match the entire next word, symbols match by prefix.
func (s *Scanner) MatchTerminal(pos int, term string) bool {
	rest := s.rest(pos)
	if IsWord(term) {
		return idRe.FindString(rest) == term
	}

	run := symbolsRe.FindString(rest)
	return run != "" && strings.HasPrefix(run, term)
}

func (s *Scanner) matchType(rest string) string {
	m := typeRe.FindString(rest)
	if m == "" || wordTailRe.MatchString(rest[len(m):]) || s.keywords.IsTerminal(m) {
		return ""
	}
	return m
}

// MatchClass tries to match lexical class at pos with no whitespace skipping.
// Returns false if class does not match.
func (s *Scanner) MatchClass(pos int, c grammar.Class) (Lexeme, bool) {
	rest := s.rest(pos)
	switch c {
	case grammar.TypeClass:
		m := s.matchType(rest)
		if m != "" {
			return Lexeme{Class: c, Text: m, Len: len(m)}, true
		}

	case grammar.NumberClass:
		m := numberRe.FindString(rest)
		if m != "" {
			n, e := strconv.ParseFloat(m, 64)
			if e == nil || errors.Is(e, strconv.ErrRange) {
				return Lexeme{Class: c, Text: m, Number: n, Len: len(m)}, true
			}
		}

	case grammar.IdClass:
		m := idRe.FindString(rest)
		if m != "" && !s.keywords.IsTerminal(m) && s.matchType(rest) != m {
			return Lexeme{Class: c, Text: m, Len: len(m)}, true
		}

	case grammar.StringClass:
		m := stringRe.FindStringSubmatch(rest)
		if m != nil {
			return Lexeme{Class: c, Text: m[1], Len: len(m[0])}, true
		}
	}

	return Lexeme{}, false
}

// Lexeme returns the text starting at pos that looks like a single token, used in error messages.
// Returns empty string at the end of text.
func (s *Scanner) Lexeme(pos int) string {
	rest := s.rest(s.SkipSpace(pos))
	if rest == "" {
		return ""
	}

	if m := stringRe.FindString(rest); m != "" {
		return m
	}
	if m := idRe.FindString(rest); m != "" {
		return m
	}
	if m := symbolsRe.FindString(rest); m != "" {
		return m
	}

	_, size := utf8.DecodeRuneInString(rest)
	return rest[:size]
}

// StripComments replaces every comment with the same number of spaces.
// A comment starts with "!" outside string literal and lasts until the end of line.
func StripComments(text string) string {
	if strings.IndexByte(text, '!') < 0 {
		return text
	}

	buf := []byte(text)
	inString := false
	for i := 0; i < len(buf); i++ {
		c := buf[i]
		switch {
		case c == '\n':
			inString = false

		case inString:
			if c == '\'' && i+1 < len(buf) && (buf[i+1] == '"' || buf[i+1] == '\'') {
				i++
			} else if c == '"' {
				inString = false
			}

		case c == '"':
			inString = true

		case c == '!':
			for ; i < len(buf) && buf[i] != '\n'; i++ {
				buf[i] = ' '
			}
			i--
		}
	}
	return string(buf)
}
