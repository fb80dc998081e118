package testutil

import (
	"github.com/AntonioJCosta/staffdir/internal/core/domain/directory"
	"github.com/AntonioJCosta/staffdir/internal/core/domain/roster"
	"github.com/AntonioJCosta/staffdir/internal/core/ports"
)

// MockDirectoryService is a mock implementation of ports.DirectoryService.
type MockDirectoryService struct {
	AddEmployeeFunc    func(name, department string) directory.AddResult
	ListDepartmentFunc func(department string) ([]string, bool)
	ListAllFunc        func() []directory.DepartmentListing
	SeedFunc           func(entries []roster.Entry) (int, int)
}

func (m *MockDirectoryService) AddEmployee(name, department string) directory.AddResult {
	if m.AddEmployeeFunc != nil {
		return m.AddEmployeeFunc(name, department)
	}
	return directory.Added
}

func (m *MockDirectoryService) ListDepartment(department string) ([]string, bool) {
	if m.ListDepartmentFunc != nil {
		return m.ListDepartmentFunc(department)
	}
	return nil, false
}

func (m *MockDirectoryService) ListAll() []directory.DepartmentListing {
	if m.ListAllFunc != nil {
		return m.ListAllFunc()
	}
	return nil
}

func (m *MockDirectoryService) Seed(entries []roster.Entry) (int, int) {
	if m.SeedFunc != nil {
		return m.SeedFunc(entries)
	}
	return 0, 0
}

var _ ports.DirectoryService = (*MockDirectoryService)(nil)
