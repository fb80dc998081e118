package ports

import "github.com/AntonioJCosta/staffdir/internal/core/domain/command"

/*
CommandParser defines the contract for turning one line of user input into a
command. Implementations must be pure: the same line always yields the same
command and nothing is mutated.
*/
type CommandParser interface {
	Parse(line string) command.Command
}
