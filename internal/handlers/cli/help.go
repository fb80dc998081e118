package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/staffdir/internal/handlers/ui"
)

const (
	welcomeMessage  = "Welcome to Company Directory!"
	farewellMessage = "Goodbye!"
	promptMessage   = "\nEnter command: "
)

var helpLines = []string{
	"- Add <name> to <department>",
	"- List <department>",
	"- List all",
	"- Exit",
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, ui.InfoColor("\nAvailable commands:"))
	for _, line := range helpLines {
		fmt.Fprintln(out, ui.DetailColor(line))
	}
}
