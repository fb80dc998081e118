package testutil

import (
	"github.com/AntonioJCosta/staffdir/internal/core/domain/roster"
	"github.com/AntonioJCosta/staffdir/internal/core/ports"
)

// MockRosterProvider is a mock implementation of ports.RosterProvider.
type MockRosterProvider struct {
	GetRosterFunc func() ([]roster.Entry, error)
}

func (m *MockRosterProvider) GetRoster() ([]roster.Entry, error) {
	if m.GetRosterFunc != nil {
		return m.GetRosterFunc()
	}
	return nil, nil // Default behavior
}

var _ ports.RosterProvider = (*MockRosterProvider)(nil)
