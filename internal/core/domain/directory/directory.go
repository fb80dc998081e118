/*
Package directory defines the in-memory company directory: departments mapped
to sorted, deduplicated employee names.
*/
package directory

import (
	"slices"
	"sort"
)

// AddResult reports the outcome of AddEmployee.
type AddResult int

const (
	// Added means the name was inserted.
	Added AddResult = iota
	// AlreadyPresent means the name was already filed under the department.
	AlreadyPresent
)

func (r AddResult) String() string {
	switch r {
	case Added:
		return "added"
	case AlreadyPresent:
		return "already present"
	default:
		return "unknown"
	}
}

// DepartmentListing pairs a department with its sorted employees.
type DepartmentListing struct {
	Department string
	Employees  []string
}

/*
Directory maps department names to employee names. Each department's names
are unique and kept in ascending order after every insert. A department only
exists once something has been added to it.

A Directory is not safe for concurrent use.
*/
type Directory struct {
	departments map[string][]string
}

// New returns an empty Directory.
func New() *Directory {
	return &Directory{departments: make(map[string][]string)}
}

// AddEmployee files name under department. Matching is exact and
// case-sensitive. Empty strings are accepted.
func (d *Directory) AddEmployee(name, department string) AddResult {
	employees := d.departments[department]
	if slices.Contains(employees, name) {
		return AlreadyPresent
	}
	employees = append(employees, name)
	slices.Sort(employees)
	d.departments[department] = employees
	return Added
}

// ListDepartment returns a copy of the department's employees in ascending
// order. It returns false when the department is absent or has no employees.
func (d *Directory) ListDepartment(department string) ([]string, bool) {
	employees, ok := d.departments[department]
	if !ok || len(employees) == 0 {
		return nil, false
	}
	return slices.Clone(employees), true
}

// ListAll returns every department in ascending order with its employees.
// The result is empty when nothing has been added yet.
func (d *Directory) ListAll() []DepartmentListing {
	names := make([]string, 0, len(d.departments))
	for name := range d.departments {
		names = append(names, name)
	}
	sort.Strings(names)

	listings := make([]DepartmentListing, 0, len(names))
	for _, name := range names {
		listings = append(listings, DepartmentListing{
			Department: name,
			Employees:  slices.Clone(d.departments[name]),
		})
	}
	return listings
}

// Len returns the number of departments.
func (d *Directory) Len() int {
	return len(d.departments)
}
