package langdef

import (
	"strings"

	"github.com/ava12/salgol"
	"github.com/ava12/salgol/lexer"
)

const (
	UnexpectedEofError = salgol.GrammarErrors + iota
	UnexpectedTokenError
	EmptyDescriptionError
	ProductionDefinedError
	ReservedNameError
	EmptyBranchError
	TerminalModifierError
	DuplicateAliasError
	UndefinedReferenceError
	OptionalFirstError
	CycleError
	AmbiguityError
	VerifyError
)

func eofError(token *lexer.Token) *salgol.Error {
	return salgol.FormatErrorPos(token, UnexpectedEofError, "unexpected end of description")
}

func unexpectedTokenError(token *lexer.Token) *salgol.Error {
	return salgol.FormatErrorPos(token, UnexpectedTokenError, "unexpected %s", token)
}

func emptyDescriptionError(name string) *salgol.Error {
	return salgol.FormatError(EmptyDescriptionError, "no productions defined in %q", name)
}

func defProductionError(token *lexer.Token) *salgol.Error {
	return salgol.FormatErrorPos(token, ProductionDefinedError, "production %q already defined", token.Text())
}

func reservedNameError(token *lexer.Token) *salgol.Error {
	return salgol.FormatErrorPos(token, ReservedNameError, "cannot use reserved class name %q as production name", token.Text())
}

func emptyBranchError(token *lexer.Token, prod string) *salgol.Error {
	return salgol.FormatErrorPos(token, EmptyBranchError, "empty branch in %q production", prod)
}

func terminalModifierError(token *lexer.Token) *salgol.Error {
	return salgol.FormatErrorPos(token, TerminalModifierError, "cannot apply %q to terminal", token.Text())
}

func duplicateAliasError(token *lexer.Token, alias, prod string) *salgol.Error {
	return salgol.FormatErrorPos(token, DuplicateAliasError, "duplicate binding %q in %q production", alias, prod)
}

func undefinedError(token *lexer.Token, name string) *salgol.Error {
	return salgol.FormatErrorPos(token, UndefinedReferenceError, "undefined production %q", name)
}

func optionalFirstError(token *lexer.Token, prod string) *salgol.Error {
	return salgol.FormatErrorPos(token, OptionalFirstError, "branch of %q production cannot start with optional element %q", prod, token.Text())
}

func cycleError(names []string) *salgol.Error {
	return salgol.FormatError(CycleError, "cyclic lookahead dependency: "+strings.Join(names, " -> "))
}

func ambiguityError(prod string, first, second int, symbols []string) *salgol.Error {
	return salgol.FormatError(AmbiguityError, "branches #%d and #%d of %q production share lookahead %s", first, second, prod, strings.Join(symbols, ", "))
}

func verifyError(e error) *salgol.Error {
	return salgol.FormatError(VerifyError, "Go EBNF verification failed: %s", e)
}
