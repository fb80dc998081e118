package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/AntonioJCosta/staffdir/internal/adapters/commandparsing"
	"github.com/AntonioJCosta/staffdir/internal/core/domain/command"
	"github.com/AntonioJCosta/staffdir/internal/core/domain/directory"
	"github.com/AntonioJCosta/staffdir/internal/core/services/directorymanagement"
	"github.com/AntonioJCosta/staffdir/internal/core/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helpText = `
Available commands:
- Add <name> to <department>
- List <department>
- List all
- Exit
`

func newTestInterpreter(opts InterpreterOptions) *Interpreter {
	svc := directorymanagement.NewService(directory.New(), nil)
	return NewInterpreter(commandparsing.NewBasicParser(), svc, opts)
}

func runLines(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := newTestInterpreter(InterpreterOptions{}).Run(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)
	return out.String()
}

func TestInterpreter_EndToEnd(t *testing.T) {
	input := strings.Join([]string{
		"add Sally to Engineering",
		"add Amir to Sales",
		"add Sally to Engineering",
		"list all",
		"exit",
	}, "\n") + "\n"

	want := `Added Sally to Engineering
Added Amir to Sales
Sally is already in Engineering

All departments:

Engineering department:
- Sally

Sales department:
- Amir
Goodbye!
`
	assert.Equal(t, want, runLines(t, input))
}

func TestInterpreter_Commands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "list a department",
			input: "Add Zoe to Ops\nadd Bob TO Ops\nList Ops\nquit\n",
			want:  "Added Zoe to Ops\nAdded Bob to Ops\n\nOps department:\n- Bob\n- Zoe\nGoodbye!\n",
		},
		{
			name:  "list an unknown department",
			input: "list Marketing\nexit\n",
			want:  "No employees found in Marketing\nGoodbye!\n",
		},
		{
			name:  "list all on empty directory",
			input: "list all\nexit\n",
			want:  "No employees in the company\nGoodbye!\n",
		},
		{
			name:  "invalid command prints help and continues",
			input: "banana\nadd Sally to Engineering\nexit\n",
			want:  "Invalid command!\n" + helpText + "Added Sally to Engineering\nGoodbye!\n",
		},
		{
			name:  "empty line is invalid",
			input: "\nexit\n",
			want:  "Invalid command!\n" + helpText + "Goodbye!\n",
		},
		{
			name:  "lines after exit are not processed",
			input: "exit\nadd Sally to Engineering\n",
			want:  "Goodbye!\n",
		},
		{
			name:  "end of input acts as exit",
			input: "add Sally to Engineering\n",
			want:  "Added Sally to Engineering\nGoodbye!\n",
		},
		{
			name:  "final line without newline is processed",
			input: "add Sally to Engineering",
			want:  "Added Sally to Engineering\nGoodbye!\n",
		},
		{
			name:  "empty input",
			input: "",
			want:  "Goodbye!\n",
		},
		{
			name:  "windows line endings",
			input: "add Sally to Engineering\r\nlist Engineering\r\n",
			want:  "Added Sally to Engineering\n\nEngineering department:\n- Sally\nGoodbye!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runLines(t, tt.input))
		})
	}
}

func TestInterpreter_ReadFailure(t *testing.T) {
	errBoom := errors.New("boom")
	in := io.MultiReader(strings.NewReader("add Sally to Engineering\n"), iotest.ErrReader(errBoom))

	var out bytes.Buffer
	err := newTestInterpreter(InterpreterOptions{}).Run(context.Background(), in, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "failed to read command")
	assert.Equal(t, "Added Sally to Engineering\n", out.String())
}

func TestInterpreter_Interactive(t *testing.T) {
	var out bytes.Buffer
	err := newTestInterpreter(InterpreterOptions{Interactive: true}).
		Run(context.Background(), strings.NewReader("exit\n"), &out)
	require.NoError(t, err)

	want := "Welcome to Company Directory!\n" + helpText + "\nEnter command: Goodbye!\n"
	assert.Equal(t, want, out.String())
}

func TestInterpreter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := newTestInterpreter(InterpreterOptions{}).Run(ctx, strings.NewReader("add Sally to Engineering\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestInterpreter_DispatchesToService(t *testing.T) {
	parser := testutil.NewMockCommandParser()
	parser.ParseFunc = func(line string) command.Command {
		switch strings.TrimSpace(line) {
		case "one":
			return command.Add{Name: "Sally", Department: "Engineering"}
		case "two":
			return command.ListDepartment{Department: "Engineering"}
		default:
			return command.Exit{}
		}
	}

	var added [][2]string
	svc := &testutil.MockDirectoryService{
		AddEmployeeFunc: func(name, department string) directory.AddResult {
			added = append(added, [2]string{name, department})
			return directory.AlreadyPresent
		},
		ListDepartmentFunc: func(department string) ([]string, bool) {
			assert.Equal(t, "Engineering", department)
			return []string{"Sally"}, true
		},
	}

	var out bytes.Buffer
	err := NewInterpreter(parser, svc, InterpreterOptions{}).
		Run(context.Background(), strings.NewReader("one\ntwo\nthree\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"one\n", "two\n", "three\n"}, parser.ParseCalls)
	assert.Equal(t, [][2]string{{"Sally", "Engineering"}}, added)
	assert.Equal(t, "Sally is already in Engineering\n\nEngineering department:\n- Sally\nGoodbye!\n", out.String())
}

func TestNewInterpreter_PanicsOnNilDependencies(t *testing.T) {
	assert.Panics(t, func() { NewInterpreter(nil, &testutil.MockDirectoryService{}, InterpreterOptions{}) })
	assert.Panics(t, func() { NewInterpreter(testutil.NewMockCommandParser(), nil, InterpreterOptions{}) })
}
