package lexer

import (
	"github.com/ava12/salgol/source"
)

// Token is a lexeme fetched by Lexer, it implements salgol.SourcePos.
type Token struct {
	tokenType int
	typeName  string
	text      string
	pos       source.Pos
}

func (t *Token) Type() int {
	return t.tokenType
}

func (t *Token) TypeName() string {
	return t.typeName
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Pos() source.Pos {
	return t.pos
}

func (t *Token) SourceName() string {
	return t.pos.SourceName()
}

func (t *Token) Offset() int {
	return t.pos.Offset()
}

func (t *Token) Line() int {
	return t.pos.Line()
}

func (t *Token) Col() int {
	return t.pos.Col()
}

func NewToken(tokenType int, typeName, text string, pos source.Pos) *Token {
	return &Token{tokenType, typeName, text, pos}
}

const (
	EofTokenType = -2
	EofTokenName = "-end-of-file-"
)

// EofToken returns token positioned at the end of s.
func EofToken(s *source.Source) *Token {
	return &Token{tokenType: EofTokenType, typeName: EofTokenName, pos: s.Position(s.Len())}
}
