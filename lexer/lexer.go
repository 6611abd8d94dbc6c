// Package lexer defines regexp-based lexical analyzer used to read grammar descriptions.
package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/ava12/salgol"
	"github.com/ava12/salgol/source"
)

const (
	// ErrorTokenType is the type for fake tokens capturing broken lexemes (e.g. incorrect string literals).
	// Lexer will never return a token of this type, an error with message containing token text will be returned instead.
	ErrorTokenType = -1

	// ErrorTokenName is the type name for ErrorTokenType.
	ErrorTokenName = "-error-"
)

// Error codes used by lexer, they belong to grammar error class:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	// Error message contains the rune at current source position.
	WrongCharError = salgol.GrammarErrors + 80 + iota

	// BadTokenError indicates that lexer has fetched a token of ErrorTokenType.
	BadTokenError
)

// TokenType describes token type for specific capturing group of regular expression.
type TokenType struct {
	// Type contains token type, must be non-negative; ErrorTokenType is treated specially.
	Type int

	// TypeName contains token type name, may be any value.
	TypeName string
}

// Lexer splits source text into tokens using regexp.Regexp.
// Lexer itself is immutable and safe for concurrent use, but it advances the cursor it reads.
// Each token type maps to its own regexp capturing group index.
// A match containing no captured groups is treated as insignificant lexeme (e.g. whitespace or comment),
// in this case lexer tries to fetch a token again at new position.
// Every byte of source text must belong to some lexeme.
type Lexer struct {
	types []TokenType
	re    *regexp.Regexp
}

// New creates new Lexer.
// Each n-th element of types describes token type for (n+1)-th regexp capturing group.
// A group that has no description or has negative token type is treated as ErrorTokenType.
func New(re *regexp.Regexp, types []TokenType) *Lexer {
	ts := make([]TokenType, len(types))
	for i, t := range types {
		ts[i].TypeName = t.TypeName
		if t.Type >= 0 {
			ts[i].Type = t.Type
		} else {
			ts[i].Type = ErrorTokenType
		}
	}
	return &Lexer{types: ts, re: re}
}

func wrongCharError(c *source.Cursor) *salgol.Error {
	r, _ := utf8.DecodeRuneInString(c.Rest())
	return salgol.FormatErrorPos(c.SourcePos(), WrongCharError, "wrong char %q (u+%x)", r, r)
}

func wrongTokenError(t *Token) *salgol.Error {
	return salgol.FormatErrorPos(t, BadTokenError, "bad token %q", t.Text())
}

func (l *Lexer) matchToken(c *source.Cursor) (*Token, int, error) {
	content := c.Rest()
	match := l.re.FindStringSubmatchIndex(content)
	if len(match) == 0 || match[0] != 0 || match[1] <= match[0] {
		return nil, 0, wrongCharError(c)
	}

	for i := 2; i < len(match); i += 2 {
		if match[i] < 0 || match[i+1] < 0 {
			continue
		}

		tokenType := ErrorTokenType
		typeName := ErrorTokenName
		if len(l.types) >= (i >> 1) {
			tokenType = l.types[(i>>1)-1].Type
			typeName = l.types[(i>>1)-1].TypeName
		}
		pos := c.Source().Position(c.Pos() + match[i])
		token := NewToken(tokenType, typeName, content[match[i]:match[i+1]], pos)
		if tokenType == ErrorTokenType {
			return nil, 0, wrongTokenError(token)
		}

		return token, match[1], nil
	}

	return nil, match[1], nil
}

// Next fetches token starting at current cursor position and advances the cursor.
// Returns nil token and salgol.Error and does not move the cursor if there is a lexical error.
// Returns EoF token if the whole text is read.
func (l *Lexer) Next(c *source.Cursor) (*Token, error) {
	for {
		if c.IsEmpty() {
			return EofToken(c.Source()), nil
		}

		t, advance, e := l.matchToken(c)
		if e != nil {
			return nil, e
		}

		c.Skip(advance)
		if t != nil {
			return t, nil
		}
	}
}

// String returns textual token description used in error messages.
func (t *Token) String() string {
	if t.tokenType == EofTokenType {
		return t.typeName
	}
	return fmt.Sprintf("%s %q", t.typeName, t.text)
}
