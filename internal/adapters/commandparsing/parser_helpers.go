package commandparsing

import (
	"strings"

	"github.com/AntonioJCosta/staffdir/internal/core/domain/command"
)

const (
	verbAdd  = "add"
	verbList = "list"
	verbExit = "exit"
	verbQuit = "quit"

	keywordTo  = "to"
	keywordAll = "all"
)

// parseAdd expects exactly "add <name> to <department>".
func parseAdd(tokens []string) command.Command {
	if len(tokens) != 4 || !strings.EqualFold(tokens[2], keywordTo) {
		return command.Invalid{}
	}
	return command.Add{Name: tokens[1], Department: tokens[3]}
}

// parseList only looks at the second token; "list Sales extra words" lists Sales.
func parseList(tokens []string) command.Command {
	if len(tokens) < 2 {
		return command.Invalid{}
	}
	if tokens[1] == keywordAll {
		return command.ListAll{}
	}
	return command.ListDepartment{Department: tokens[1]}
}
