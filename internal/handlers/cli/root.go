package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/staffdir/internal/core/ports"
	"github.com/AntonioJCosta/staffdir/internal/handlers/ui"
	"github.com/AntonioJCosta/staffdir/internal/infra/logger"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Deps holds what the commands need to build a directory per invocation.
type Deps struct {
	Parser ports.CommandParser
	// NewDirectory returns an empty directory service logging to l.
	NewDirectory func(l *zap.Logger) ports.DirectoryService
	// NewRoster returns a provider for the roster file at path.
	NewRoster func(path string) (ports.RosterProvider, error)
}

type rootFlags struct {
	rosterPath string
	noColor    bool
	debug      bool
}

// rootState is shared by the root command and its subcommands.
type rootState struct {
	flags rootFlags
	log   *zap.Logger
}

func NewRootCommand(version string, deps Deps) *cobra.Command {
	state := &rootState{}

	rootCmd := &cobra.Command{
		Use:   "staffdir",
		Short: "staffdir keeps a company directory of employees by department.",
		Long: `staffdir reads commands from standard input and keeps an in-memory
directory of employees grouped by department:

  Add <name> to <department>
  List <department>
  List all
  Exit`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Parser == nil || deps.NewDirectory == nil || deps.NewRoster == nil {
				return fmt.Errorf("dependencies not initialized for command %s", cmd.Name())
			}
			if state.flags.noColor {
				ui.SetEnabled(false)
			}
			var err error
			state.log, err = logger.New(logger.Config{Debug: state.flags.debug})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if state.log != nil {
				_ = state.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterpreter(cmd, deps, state)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&state.flags.rosterPath, "roster", "r", "", "YAML roster file used to seed the directory.")
	rootCmd.PersistentFlags().BoolVar(&state.flags.noColor, "no-color", false, "Disable coloured output.")
	rootCmd.PersistentFlags().BoolVar(&state.flags.debug, "debug", false, "Enable debug logging on stderr.")

	rootCmd.AddCommand(NewShowCommand(deps, state))

	return rootCmd
}

func runInterpreter(cmd *cobra.Command, deps Deps, state *rootState) error {
	service := deps.NewDirectory(state.log)

	if state.flags.rosterPath != "" {
		if err := seedFromRoster(service, deps, state.flags.rosterPath, state.log); err != nil {
			return err
		}
	}

	in := cmd.InOrStdin()
	interpreter := NewInterpreter(deps.Parser, service, InterpreterOptions{
		Interactive: isTerminal(in),
		Logger:      state.log,
	})
	return interpreter.Run(cmd.Context(), in, cmd.OutOrStdout())
}

func seedFromRoster(service ports.DirectoryService, deps Deps, path string, log *zap.Logger) error {
	provider, err := deps.NewRoster(path)
	if err != nil {
		return fmt.Errorf("could not open roster: %w", err)
	}
	entries, err := provider.GetRoster()
	if err != nil {
		return fmt.Errorf("could not load roster: %w", err)
	}
	added, skipped := service.Seed(entries)
	logger.OrNop(log).Info("directory seeded from roster",
		zap.String("path", path),
		zap.Int("added", added),
		zap.Int("skipped", skipped))
	return nil
}

// isTerminal reports whether r is a terminal. Prompts are only shown to people.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
