package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // Help text and other secondary lines
)

// Directory Specific Colors
var (
	DepartmentColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	EmployeeColor   = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// SetEnabled turns colour output on or off for the whole process.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}
