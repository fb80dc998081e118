package testutil

import (
	"github.com/AntonioJCosta/staffdir/internal/core/domain/command"
	"github.com/AntonioJCosta/staffdir/internal/core/ports"
)

// MockCommandParser is a mock implementation of ports.CommandParser.
type MockCommandParser struct {
	// ParseFunc allows you to set a custom function for the Parse method.
	ParseFunc func(line string) command.Command
	// ParseCalls keeps track of the lines passed to Parse.
	ParseCalls []string
}

// NewMockCommandParser creates a new MockCommandParser.
func NewMockCommandParser() *MockCommandParser {
	return &MockCommandParser{
		ParseCalls: make([]string, 0),
	}
}

// Parse implements the ports.CommandParser interface.
// It calls ParseFunc if it's set, otherwise returns command.Invalid.
func (m *MockCommandParser) Parse(line string) command.Command {
	m.ParseCalls = append(m.ParseCalls, line)
	if m.ParseFunc != nil {
		return m.ParseFunc(line)
	}
	return command.Invalid{}
}

var _ ports.CommandParser = (*MockCommandParser)(nil)
