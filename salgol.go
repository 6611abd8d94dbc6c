/*
Package salgol is a front end for the S-algol teaching language.

Consists of subpackages:
  - grammar: compiled grammar model (symbols, productions, branches, lookahead sets);
  - langdef: converts grammar description (written in EBNF-like language) to grammar model;
  - lexer: regexp-based splitter used to read grammar descriptions;
  - scanner: lexical classifier for S-algol source text;
  - parser: predictive parser interpreting a compiled grammar;
  - ast: syntax tree produced by parser;
  - lang: S-algol grammar and parsing entry points;
  - source: source text and position conversion;
  - cmd/salgolc: console utility to check and dump programs and grammars.

Typical usage is:

1. Describe grammar in EBNF-like language (see langdef).

2. Compile grammar description with langdef once; compiled grammar is immutable.

3. Create parser for compiled grammar and feed it source texts,
parsers may be used concurrently.

4. Hand resulting syntax trees to analyzer and code generator.
*/
package salgol

import (
	"errors"
	"fmt"
)

// Error classes used by subpackages and collaborators, each class contains up to 99 error codes:
const (
	GrammarErrors  = 1   // used by langdef
	ParseErrors    = 101 // used by parser
	AnalyzerErrors = 201 // used by semantic analyzers
	CodeGenErrors  = 301 // used by code generators
)

// Error codes reserved for collaborators:
const (
	// AnalysisError is the generic code for semantic analysis failures.
	AnalysisError = AnalyzerErrors + iota
)

const (
	// UnsupportedError indicates a construct the code generator cannot translate.
	UnsupportedError = CodeGenErrors + iota
)

// Error is the error type used by salgol subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Offset contains byte offset in source text or -1.
	Offset int

	// Line contains line number in source text or 0.
	Line int

	// Col contains column number in source text or 0.
	Col int

	reason string
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Offset returns byte offset in source text.
	Offset() int
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, offset, line, col int) *Error {
	reason := msg
	if line != 0 && col != 0 {
		if name == "" {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		} else {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		}
	}
	return &Error{code, msg, name, offset, line, col, reason}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Reason returns error message without source name and position information.
func (e *Error) Reason() string {
	if e.reason == "" {
		return e.Message
	}
	return e.reason
}

// Relocate returns a copy of e positioned at pos, message is rebuilt.
func (e *Error) Relocate(pos SourcePos) *Error {
	return NewError(e.Code, e.Reason(), pos.SourceName(), pos.Offset(), pos.Line(), pos.Col())
}

// Class returns the first code of error class this error belongs to.
func (e *Error) Class() int {
	return (e.Code-1)/100*100 + 1
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", -1, 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Offset(), pos.Line(), pos.Col())
}

// NewAnalyzerError creates analyzer failure at given source offset.
func NewAnalyzerError(offset int, msg string) *Error {
	return &Error{Code: AnalysisError, Message: msg, Offset: offset, reason: msg}
}

// NewUnsupportedError creates code generator failure for the named construct.
func NewUnsupportedError(construct string) *Error {
	msg := "unsupported construct: " + construct
	return &Error{Code: UnsupportedError, Message: msg, Offset: -1, reason: msg}
}

func hasClass(e error, class int) bool {
	var se *Error
	return errors.As(e, &se) && se.Class() == class
}

// IsGrammarError tells whether e is a grammar description error.
func IsGrammarError(e error) bool {
	return hasClass(e, GrammarErrors)
}

// IsParseError tells whether e is a syntax error in source text.
func IsParseError(e error) bool {
	return hasClass(e, ParseErrors)
}

// IsAnalyzerError tells whether e is a semantic analysis error.
func IsAnalyzerError(e error) bool {
	return hasClass(e, AnalyzerErrors)
}

// IsUnsupportedError tells whether e is a code generation error.
func IsUnsupportedError(e error) bool {
	return hasClass(e, CodeGenErrors)
}
