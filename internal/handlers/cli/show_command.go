package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/staffdir/internal/core/domain/directory"
	"github.com/AntonioJCosta/staffdir/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the 'show' subcommand. It reads the root's
// persistent --roster flag through state.
func NewShowCommand(deps Deps, state *rootState) *cobra.Command {
	var department string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a roster file as a table without starting the interpreter.",
		Long: `Loads the roster given with --roster into a fresh directory and prints
every department, or only the one named with --department.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if state.flags.rosterPath == "" {
				return fmt.Errorf("--roster is required for show")
			}
			return runShowCmd(cmd, deps, state, department)
		},
	}

	cmd.Flags().StringVarP(&department, "department", "d", "", "Only show this department.")

	return cmd
}

func runShowCmd(cmd *cobra.Command, deps Deps, state *rootState, department string) error {
	service := deps.NewDirectory(state.log)
	if err := seedFromRoster(service, deps, state.flags.rosterPath, state.log); err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if department != "" {
		employees, ok := service.ListDepartment(department)
		if !ok {
			printNoEmployeesIn(out, department)
			return nil
		}
		renderTable(out, []directory.DepartmentListing{{Department: department, Employees: employees}})
		return nil
	}

	listings := service.ListAll()
	if len(listings) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No employees in the company"))
		return nil
	}
	renderTable(out, listings)
	return nil
}

func renderTable(out io.Writer, listings []directory.DepartmentListing) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Department", "Employee"})
	table.SetBorder(true)
	table.SetAutoMergeCells(true)
	table.SetRowLine(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, l := range listings {
		for _, e := range l.Employees {
			table.Append([]string{l.Department, e})
		}
	}
	table.Render()
}
