package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/staffdir/internal/core/domain/directory"
	"github.com/AntonioJCosta/staffdir/internal/handlers/ui"
)

func printAddResult(out io.Writer, name, department string, result directory.AddResult) {
	if result == directory.AlreadyPresent {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%s is already in %s", name, department)))
		return
	}
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Added %s to %s", name, department)))
}

func printDepartment(out io.Writer, department string, employees []string) {
	fmt.Fprintf(out, "\n%s\n", ui.DepartmentColor(department+" department:"))
	for _, e := range employees {
		fmt.Fprintf(out, "- %s\n", ui.EmployeeColor(e))
	}
}

func printNoEmployeesIn(out io.Writer, department string) {
	fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No employees found in %s", department)))
}

func printAllDepartments(out io.Writer, listings []directory.DepartmentListing) {
	if len(listings) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No employees in the company"))
		return
	}
	fmt.Fprintf(out, "\n%s\n", ui.HeaderColor("All departments:"))
	for _, l := range listings {
		if len(l.Employees) == 0 {
			printNoEmployeesIn(out, l.Department)
			continue
		}
		printDepartment(out, l.Department, l.Employees)
	}
}

func printInvalid(out io.Writer) {
	fmt.Fprintln(out, ui.ErrorColor("Invalid command!"))
	printHelp(out)
}

func printFarewell(out io.Writer) {
	fmt.Fprintln(out, ui.InfoColor(farewellMessage))
}
