package ports

import "github.com/AntonioJCosta/staffdir/internal/core/domain/roster"

// RosterProvider defines the interface for sourcing directory entries
// from a roster, like a YAML file.
type RosterProvider interface {
	// GetRoster loads the roster entries.
	GetRoster() ([]roster.Entry, error)
}
