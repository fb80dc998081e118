package rosterfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/staffdir/internal/core/domain/roster"
	"github.com/AntonioJCosta/staffdir/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the RosterProvider interface
// by reading entries from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to a YAML list of name/department entries.
func NewYAMLProvider(filePath string) (ports.RosterProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("roster file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetRoster reads and parses the configured roster file.
// A missing or empty file yields an empty roster and no error.
func (p *YAMLProvider) GetRoster() ([]roster.Entry, error) {
	entries := []roster.Entry{}

	data, err := os.ReadFile(p.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entries, nil
		}
		return nil, fmt.Errorf("failed to read roster file %s: %w", p.filePath, err)
	}
	if len(data) == 0 {
		return entries, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&entries); err != nil {
		// A file holding only comments or "---" has no documents.
		if errors.Is(err, io.EOF) {
			return []roster.Entry{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal roster from %s: %w", p.filePath, err)
	}
	// A null document decodes to a nil slice.
	if entries == nil {
		entries = []roster.Entry{}
	}

	return entries, nil
}
