package directorymanagement

import (
	"github.com/AntonioJCosta/staffdir/internal/core/domain/directory"
	"github.com/AntonioJCosta/staffdir/internal/core/domain/roster"
	"github.com/AntonioJCosta/staffdir/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	dir    *directory.Directory
	logger *zap.Logger
}

// NewService creates a new directory management service around dir.
// It panics if dir is nil. A nil logger discards diagnostics.
func NewService(dir *directory.Directory, l *zap.Logger) ports.DirectoryService {
	if dir == nil {
		panic("directory cannot be nil")
	}
	if l == nil {
		l = zap.NewNop()
	}
	return &service{dir: dir, logger: l}
}

// AddEmployee files name under department.
func (s *service) AddEmployee(name, department string) directory.AddResult {
	result := s.dir.AddEmployee(name, department)
	s.logger.Debug("add employee",
		zap.String("name", name),
		zap.String("department", department),
		zap.Stringer("result", result))
	return result
}

// ListDepartment returns the sorted employees of department.
func (s *service) ListDepartment(department string) ([]string, bool) {
	return s.dir.ListDepartment(department)
}

// ListAll returns every department in name order.
func (s *service) ListAll() []directory.DepartmentListing {
	return s.dir.ListAll()
}

// Seed adds roster entries. Entries missing a name or department are skipped
// with a warning, as are names already filed in their department.
func (s *service) Seed(entries []roster.Entry) (added int, skipped int) {
	for i, e := range entries {
		if e.Name == "" || e.Department == "" {
			s.logger.Warn("skipping incomplete roster entry",
				zap.Int("index", i),
				zap.String("name", e.Name),
				zap.String("department", e.Department))
			skipped++
			continue
		}
		if s.dir.AddEmployee(e.Name, e.Department) == directory.Added {
			added++
		} else {
			skipped++
		}
	}
	s.logger.Debug("roster seeded",
		zap.Int("added", added),
		zap.Int("skipped", skipped),
		zap.Int("departments", s.dir.Len()))
	return added, skipped
}
