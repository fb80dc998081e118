package ports

import (
	"github.com/AntonioJCosta/staffdir/internal/core/domain/directory"
	"github.com/AntonioJCosta/staffdir/internal/core/domain/roster"
)

// DirectoryService defines the contract for managing the company directory.
type DirectoryService interface {
	// AddEmployee files name under department and reports whether it was
	// newly added or already present.
	AddEmployee(name, department string) directory.AddResult

	// ListDepartment returns the sorted employees of a department, or false
	// when the department has none.
	ListDepartment(department string) ([]string, bool)

	// ListAll returns every department in name order.
	ListAll() []directory.DepartmentListing

	// Seed adds roster entries, returning how many were added and how many
	// were skipped as duplicates or incomplete entries.
	Seed(entries []roster.Entry) (added int, skipped int)
}
