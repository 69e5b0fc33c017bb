package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer defines the lexical structure of action scripts.
// Keywords are matched as identifiers by the grammar.
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace, including newlines; commands are self-delimiting
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Numbers, optionally signed and fractional
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},

	// Identifiers may contain dashes so symbol ids like resistor-1 lex as one token
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},

	{Name: "Comma", Pattern: `,`},
})
