// Package source defines source text and position conversion.
package source

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Source is an immutable named text with line index.
// All positions are byte offsets, lines and columns are 1-based, columns are counted in runes.
type Source struct {
	name       string
	text       string
	lineStarts []int
}

// New creates Source with given name and content.
func New(name string, content []byte) *Source {
	return NewString(name, string(content))
}

// NewString creates Source with given name and text.
func NewString(name, text string) *Source {
	s := &Source{name: name, text: text}
	lineCnt := strings.Count(text, "\n") + 1
	s.lineStarts = make([]int, 1, lineCnt)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}

	return s
}

// Name returns source name.
func (s *Source) Name() string {
	return s.name
}

// Text returns source text.
func (s *Source) Text() string {
	return s.text
}

// Len returns text length in bytes.
func (s *Source) Len() int {
	return len(s.text)
}

// LineCol converts byte offset to line and column numbers.
// Offsets outside text are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.text) {
		pos = len(s.text)
	}

	lineIndex := s.findLineIndex(pos)
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCountInString(s.text[lineStart:pos]) + 1
}

// Line returns 1-based line number containing byte offset pos.
func (s *Source) Line(pos int) int {
	line, _ := s.LineCol(pos)
	return line
}

// Pos converts line and column numbers to byte offset.
// Column is treated as byte count here, values beyond text are clamped.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.text)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1] + col - 1
	if res > l {
		return l
	}
	return res
}

// Position returns position record for byte offset pos.
func (s *Source) Position(pos int) Pos {
	line, col := s.LineCol(pos)
	return Pos{s, pos, line, col}
}

func (s *Source) findLineIndex(pos int) int {
	return sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
}

// Pos is a position in source text.
type Pos struct {
	src             *Source
	pos, line, col int
}

// Source returns source of this position.
func (p Pos) Source() *Source {
	return p.src
}

// SourceName returns source name or empty string.
func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.name
}

// Offset returns byte offset.
func (p Pos) Offset() int {
	return p.pos
}

// Line returns line number.
func (p Pos) Line() int {
	return p.line
}

// Col returns column number.
func (p Pos) Col() int {
	return p.col
}

// Cursor is a reading position in a single source.
type Cursor struct {
	source *Source
	pos    int
}

// NewCursor creates cursor at the beginning of s.
func NewCursor(s *Source) *Cursor {
	return &Cursor{source: s}
}

// Source returns cursor source.
func (c *Cursor) Source() *Source {
	return c.source
}

// Pos returns current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// SourcePos returns position record for current offset.
func (c *Cursor) SourcePos() Pos {
	return c.source.Position(c.pos)
}

// Rest returns unread part of text.
func (c *Cursor) Rest() string {
	return c.source.text[c.pos:]
}

// IsEmpty tells whether whole text is read.
func (c *Cursor) IsEmpty() bool {
	return c.pos >= len(c.source.text)
}

// Skip advances cursor by size bytes, not beyond the end of text.
func (c *Cursor) Skip(size int) {
	if size <= 0 {
		return
	}

	c.pos += size
	if c.pos > len(c.source.text) {
		c.pos = len(c.source.text)
	}
}
