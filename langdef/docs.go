/*
Package langdef converts textual grammar description to grammar.Grammar structure.

Grammar is described using language that resembles EBNF. Self-definition of this language is:
*/
//  $space = /\s+/; $comment = /#[^\n]*/;
//  $string = /"[^"\n]+"/;
//  $name = /[a-zA-Z_][a-zA-Z_0-9]*/;
//  $op = /[=|;:?*]/;
//
//  # first production is the root one
//  description = production, {production};
//  production = $name, '=', branch, {'|', branch}, ';';
//  branch = element, {element};
//  element = $string | $name, [':', $name], ['?' | '*'];
/*
Line breaks are insignificant, description may contain line comments starting with # and ending with line feed.

String literal is a non-empty sequence of symbols (except for double quote and line feed) delimited with double quotes.
No escape sequences are recognized. A string literal defines a terminal: either a keyword (if it starts
with a letter, digit, or underscore) or a symbol. The terminal ";" is special: it stands for statement separator,
i.e. a line break or a semicolon with optional surrounding whitespace.

Name is a sequence of latin letters, digits, and underscores, starting with letter or underscore.
Names are case-sensitive. A name in a branch refers either to a production or to one of builtin lexical classes:
type, number, id, string. These names are reserved and cannot be used as production names.

Production definition

	name = branch | branch ... ;

Branches are tried in declaration order, the first branch which lookahead set matches the input is selected.
Lookahead sets of branches of the same production must be disjoint, otherwise the grammar is rejected.
Lookahead is computed from the first element of a branch only, so the first element cannot be optional or repeated.

Element of a branch may be followed by modifiers:

	name:alias   # binds the element to AST field "alias" instead of "name"
	name?        # optional, matches zero or one time
	name*        # repeated, matches zero or more times
	name:alias*  # both

Binding names must be unique within a branch. Modifiers cannot be applied to terminals.
Terminals produce no AST fields.

Separator rule

An optional or repeated element referencing a production whose first branch starts with ";"
is guarded by the separator: the element matches only if the separator is found at the cursor and the
lookahead of the element following ";" in that branch matches right after the separator.

	sequence = sequence_el sequence_follow*;
	sequence_follow = ";" sequence_el;

Here a line break followed by a comment or by "end" does not start another sequence_follow.

Compiled grammar is immutable and may be shared between goroutines.
*/
package langdef
