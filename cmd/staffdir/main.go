package main

import (
	"os"

	"github.com/AntonioJCosta/staffdir/internal/adapters/commandparsing"
	"github.com/AntonioJCosta/staffdir/internal/adapters/rosterfile"
	"github.com/AntonioJCosta/staffdir/internal/core/domain/directory"
	"github.com/AntonioJCosta/staffdir/internal/core/ports"
	"github.com/AntonioJCosta/staffdir/internal/core/services/directorymanagement"
	"github.com/AntonioJCosta/staffdir/internal/handlers/cli"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "dev"

func main() {
	deps := cli.Deps{
		Parser: commandparsing.NewBasicParser(),
		NewDirectory: func(l *zap.Logger) ports.DirectoryService {
			return directorymanagement.NewService(directory.New(), l)
		},
		NewRoster: rosterfile.NewYAMLProvider,
	}

	rootCmd := cli.NewRootCommand(Version, deps)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
