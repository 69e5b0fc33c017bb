package script

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses action scripts.
type Parser struct {
	parser *participle.Parser[Script]
}

// NewParser creates a new script parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Script](
		participle.Lexer(ScriptLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("script: failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a script from a reader; name is used in error positions.
func (p *Parser) Parse(name string, r io.Reader) (*Script, error) {
	s, err := p.parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("script: parse error: %w", err)
	}
	return s, nil
}

// ParseString parses a script held in memory.
func (p *Parser) ParseString(name, input string) (*Script, error) {
	s, err := p.parser.ParseString(name, input)
	if err != nil {
		return nil, fmt.Errorf("script: parse error: %w", err)
	}
	return s, nil
}

// ParseFile parses a script file.
func (p *Parser) ParseFile(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("script: failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(filename, file)
}
