package commandparsing

import (
	"strings"

	"github.com/AntonioJCosta/staffdir/internal/core/domain/command"
	"github.com/AntonioJCosta/staffdir/internal/core/ports"
)

// BasicParser recognizes the directory's fixed command vocabulary.
type BasicParser struct{}

// NewBasicParser creates a new BasicParser.
func NewBasicParser() ports.CommandParser {
	return &BasicParser{}
}

/*
Parse classifies a line of input. Tokens are separated by runs of whitespace.
The "add" and "list" verbs match in any case, while "exit" and "quit" must be
lower case. Anything that does not fit a known shape is command.Invalid.
*/
func (p *BasicParser) Parse(line string) command.Command {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return command.Invalid{}
	}

	verb := tokens[0]
	switch {
	case strings.EqualFold(verb, verbAdd):
		return parseAdd(tokens)
	case strings.EqualFold(verb, verbList):
		return parseList(tokens)
	case verb == verbExit || verb == verbQuit:
		return command.Exit{}
	default:
		return command.Invalid{}
	}
}
