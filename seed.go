package imfs

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/imfs/internal/util"
	"gopkg.in/yaml.v3"
)

// NodeType valid types are FileNodeType "file", DirNodeType "dir"
type NodeType string

const (
	FileNodeType NodeType = "file"
	DirNodeType  NodeType = "dir"
)

// SeedEntry describes one node to create when populating a fresh namespace.
// Path is absolute; a missing leading "/" is assumed. Contents only applies to files.
type SeedEntry struct {
	Path     string   `yaml:"path" json:"path"`
	Type     NodeType `yaml:"type" json:"type"`
	Contents string   `yaml:"contents,omitempty" json:"contents,omitempty"`
}

// LoadSeedFile reads a list of seed entries from a file.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadSeedFile(file string) ([]SeedEntry, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var entries []SeedEntry
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown seed file extension: %s", file)
	}
	return entries, nil
}

// ApplySeed creates each entry in order through ns's own operations, so the
// usual naming and existence rules apply. Parents must come before their
// children. Entries that fail are logged and skipped.
// Returns the number of entries applied.
func ApplySeed(ns Namespace, entries []SeedEntry) int {
	logger := util.GetLogger("ApplySeed")

	applied := 0
	for _, entry := range entries {
		if err := applySeedEntry(ns, entry); err != nil {
			logger.Warn().Err(err).Str("path", entry.Path).Str("type", string(entry.Type)).Msg("Skipped seed entry")
			continue
		}
		applied++
	}
	logger.Info().Int("applied", applied).Int("skipped", len(entries)-applied).Msg("Seeded namespace")
	return applied
}

func applySeedEntry(ns Namespace, entry SeedEntry) error {
	p := strings.TrimRight(strings.TrimSpace(entry.Path), "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	dir, name := path.Split(p)

	switch entry.Type {
	case DirNodeType:
		return ns.Mkdir(name, dir)
	case FileNodeType:
		if err := ns.Touch(name, dir); err != nil {
			return err
		}
		if entry.Contents == "" {
			return nil
		}
		return ns.Write(p, entry.Contents)
	default:
		return fmt.Errorf("unknown node type %q", entry.Type)
	}
}
