package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/staffdir/internal/core/domain/command"
	"github.com/AntonioJCosta/staffdir/internal/core/ports"
	"github.com/AntonioJCosta/staffdir/internal/handlers/ui"
	"github.com/AntonioJCosta/staffdir/internal/infra/logger"
	"go.uber.org/zap"
)

// InterpreterOptions tweaks how the interpreter talks to the user.
type InterpreterOptions struct {
	// Interactive prints a welcome banner and a prompt before every read.
	Interactive bool
	Logger      *zap.Logger
}

/*
Interpreter is the read-eval-print loop over a directory. It reads one line at
a time, parses it and prints the outcome. Malformed lines never stop the loop;
only "exit", "quit", end of input or a failing reader do.
*/
type Interpreter struct {
	parser      ports.CommandParser
	service     ports.DirectoryService
	interactive bool
	logger      *zap.Logger
}

// NewInterpreter creates an Interpreter.
// It panics if parser or service is nil.
func NewInterpreter(parser ports.CommandParser, service ports.DirectoryService, opts InterpreterOptions) *Interpreter {
	if parser == nil || service == nil {
		panic("parser and service cannot be nil")
	}
	return &Interpreter{
		parser:      parser,
		service:     service,
		interactive: opts.Interactive,
		logger:      logger.OrNop(opts.Logger),
	}
}

// Run processes lines from in until exit, end of input or a read error.
// Only a read error or a cancelled ctx is returned.
func (i *Interpreter) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	if i.interactive {
		fmt.Fprintln(out, ui.HeaderColor(welcomeMessage))
		printHelp(out)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i.interactive {
			fmt.Fprint(out, ui.PromptColor(promptMessage))
		}

		line, err := reader.ReadString('\n')
		atEOF := errors.Is(err, io.EOF)
		if err != nil && !atEOF {
			i.logger.Error("reading command failed", zap.Error(err))
			return fmt.Errorf("failed to read command: %w", err)
		}

		if line != "" {
			cmd := i.parser.Parse(line)
			i.logger.Debug("command parsed", zap.String("line", strings.TrimSpace(line)), zap.String("command", fmt.Sprintf("%T", cmd)))
			if !i.execute(out, cmd) {
				return nil
			}
		}

		if atEOF {
			// End of input behaves like exit.
			i.logger.Debug("input closed")
			if i.interactive {
				fmt.Fprintln(out)
			}
			printFarewell(out)
			return nil
		}
	}
}

// execute runs one command and reports whether the loop should keep going.
func (i *Interpreter) execute(out io.Writer, cmd command.Command) bool {
	switch c := cmd.(type) {
	case command.Add:
		result := i.service.AddEmployee(c.Name, c.Department)
		printAddResult(out, c.Name, c.Department, result)
	case command.ListDepartment:
		employees, ok := i.service.ListDepartment(c.Department)
		if !ok {
			printNoEmployeesIn(out, c.Department)
			break
		}
		printDepartment(out, c.Department, employees)
	case command.ListAll:
		printAllDepartments(out, i.service.ListAll())
	case command.Exit:
		printFarewell(out)
		return false
	default:
		printInvalid(out)
	}
	return true
}
