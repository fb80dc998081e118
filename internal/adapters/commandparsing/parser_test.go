package commandparsing

import (
	"reflect"
	"testing"

	"github.com/AntonioJCosta/staffdir/internal/core/domain/command"
)

func TestNewBasicParser(t *testing.T) {
	parser := NewBasicParser()
	if parser == nil {
		t.Fatal("NewBasicParser() returned nil")
	}
	if _, ok := parser.(*BasicParser); !ok {
		t.Errorf("NewBasicParser() did not return a *BasicParser, got %T", parser)
	}
}

func TestBasicParser_Parse(t *testing.T) {
	parser := NewBasicParser()
	tests := []struct {
		name string
		line string
		want command.Command
	}{
		// add
		{name: "add capitalized verb", line: "Add Sally to Engineering", want: command.Add{Name: "Sally", Department: "Engineering"}},
		{name: "add lower verb upper keyword", line: "add Amir TO Sales", want: command.Add{Name: "Amir", Department: "Sales"}},
		{name: "add mixed case keyword", line: "ADD Amir To Sales", want: command.Add{Name: "Amir", Department: "Sales"}},
		{name: "add with extra whitespace", line: "  add\tSally   to  Engineering \n", want: command.Add{Name: "Sally", Department: "Engineering"}},
		{name: "add keeps name case", line: "add sALLY to engineering", want: command.Add{Name: "sALLY", Department: "engineering"}},
		{name: "add missing to", line: "add Sally into Engineering", want: command.Invalid{}},
		{name: "add too few tokens", line: "add Sally to", want: command.Invalid{}},
		{name: "add too many tokens", line: "add Sally Jones to Engineering", want: command.Invalid{}},
		{name: "add alone", line: "add", want: command.Invalid{}},

		// list
		{name: "list all", line: "list all", want: command.ListAll{}},
		{name: "List all capitalized verb", line: "List all", want: command.ListAll{}},
		{name: "list ALL is a department", line: "list ALL", want: command.ListDepartment{Department: "ALL"}},
		{name: "list department", line: "list Engineering", want: command.ListDepartment{Department: "Engineering"}},
		{name: "list ignores extra tokens", line: "list foo bar baz", want: command.ListDepartment{Department: "foo"}},
		{name: "list all with extra tokens", line: "list all please", want: command.ListAll{}},
		{name: "list alone", line: "list", want: command.Invalid{}},

		// exit
		{name: "exit", line: "exit", want: command.Exit{}},
		{name: "quit", line: "quit", want: command.Exit{}},
		{name: "exit with trailing tokens", line: "exit now", want: command.Exit{}},
		{name: "Exit capitalized is invalid", line: "Exit", want: command.Invalid{}},
		{name: "QUIT upper is invalid", line: "QUIT", want: command.Invalid{}},

		// invalid
		{name: "unknown verb", line: "banana", want: command.Invalid{}},
		{name: "empty line", line: "", want: command.Invalid{}},
		{name: "whitespace only", line: "   \t ", want: command.Invalid{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Parse(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestBasicParser_ParseIsPure(t *testing.T) {
	parser := NewBasicParser()
	line := "add Sally to Engineering"
	first := parser.Parse(line)
	second := parser.Parse(line)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse(%q) returned %#v then %#v", line, first, second)
	}
}
