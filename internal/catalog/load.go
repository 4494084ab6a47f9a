package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Load reads a seed file from disk. JSON and YAML are both accepted,
// selected by extension (.yml/.yaml → YAML, anything else → JSON).
// A missing file is not an error; it yields an empty snapshot.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("reading seed: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// Parse decodes JSON bytes into a snapshot. The document is a top-level
// object with keys authors, books, users, ratings, reviews, loans, tags,
// genres; missing keys default to empty collections.
func Parse(data []byte) (Snapshot, error) {
	if len(data) == 0 {
		return Snapshot{}, nil
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parsing seed JSON: %w", err)
	}
	return snap, nil
}

// ParseYAML decodes YAML bytes into a snapshot, same shape as Parse.
func ParseYAML(data []byte) (Snapshot, error) {
	if len(data) == 0 {
		return Snapshot{}, nil
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parsing seed YAML: %w", err)
	}
	return snap, nil
}

// Save writes a snapshot as indented JSON. Used by the seed generator;
// the core itself never persists anything.
func Save(path string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling seed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing seed: %w", err)
	}
	return nil
}
